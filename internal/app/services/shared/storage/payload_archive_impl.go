package storage

import (
	"bytes"
	"context"
	"fmt"

	"patient-registry-service/internal/app/contracts"
	"patient-registry-service/internal/pkg/constvars"
	"patient-registry-service/internal/pkg/exceptions"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
)

type payloadArchiveService struct {
	MinioClient *minio.Client
	BucketName  string
}

func NewPayloadArchiveService(minioClient *minio.Client, bucketName string) contracts.PayloadArchiveService {
	return &payloadArchiveService{
		MinioClient: minioClient,
		BucketName:  bucketName,
	}
}

func (s *payloadArchiveService) ArchiveResource(ctx context.Context, kind string, id uuid.UUID, document []byte) error {
	objectName := fmt.Sprintf("%s/%s.json", kind, id.String())
	_, err := s.MinioClient.PutObject(
		ctx,
		s.BucketName,
		objectName,
		bytes.NewReader(document),
		int64(len(document)),
		minio.PutObjectOptions{
			ContentType: constvars.MIMEApplicationFHIRJSON,
		},
	)
	if err != nil {
		return exceptions.ErrMinioCreateObject(err, s.BucketName)
	}
	return nil
}
