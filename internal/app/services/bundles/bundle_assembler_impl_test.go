package bundles

import (
	"context"
	"fmt"
	"testing"

	"patient-registry-service/internal/pkg/constvars"
	"patient-registry-service/internal/pkg/dto/requests"
	"patient-registry-service/internal/pkg/fhir_dto"
	"patient-registry-service/internal/pkg/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type MockDocumentEngine struct {
	mock.Mock
}

func (m *MockDocumentEngine) Put(ctx context.Context, kind string, document []byte) (uuid.UUID, error) {
	args := m.Called(ctx, kind, document)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *MockDocumentEngine) Get(ctx context.Context, kind string, id uuid.UUID) ([]byte, error) {
	args := m.Called(ctx, kind, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockDocumentEngine) Search(ctx context.Context, kind string, filter []byte) ([]uuid.UUID, error) {
	args := m.Called(ctx, kind, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]uuid.UUID), args.Error(1)
}

func (m *MockDocumentEngine) Count(ctx context.Context, kind string, filter []byte) (int, error) {
	args := m.Called(ctx, kind, filter)
	return args.Int(0), args.Error(1)
}

func patientDocument(id uuid.UUID) []byte {
	return []byte(fmt.Sprintf(`{"resourceType":"Patient","id":"%s","meta":{"versionId":"1","lastUpdated":"2026-01-01T00:00:00Z"}}`, id))
}

func TestAssemble_EmptyPage(t *testing.T) {
	mockEngine := new(MockDocumentEngine)
	assembler := NewBundleAssembler(mockEngine, zap.NewNop())

	criteria := &queries.SearchCriteria{PageSize: 20}
	request := &requests.SearchPatients{PageSize: 20}

	bundle, err := assembler.Assemble(context.Background(), constvars.ResourcePatient, &fhir_dto.ResultPage{Total: 0}, criteria, request, "/fhir/Patient")
	require.NoError(t, err)

	assert.Equal(t, constvars.ResourceBundle, bundle.ResourceType)
	assert.Equal(t, constvars.FhirBundleTypeSearchset, bundle.Type)
	assert.Equal(t, 0, bundle.Total)
	assert.NotNil(t, bundle.Entry)
	assert.Empty(t, bundle.Entry)

	require.Len(t, bundle.Link, 1)
	assert.Equal(t, constvars.FhirLinkRelationSelf, bundle.Link[0].Relation)

	// nothing fetched when the match set is empty
	mockEngine.AssertNotCalled(t, "Get", mock.Anything, mock.Anything, mock.Anything)
}

func TestAssemble_FirstPageWithNextLink(t *testing.T) {
	mockEngine := new(MockDocumentEngine)
	assembler := NewBundleAssembler(mockEngine, zap.NewNop())

	ids := make([]uuid.UUID, 5)
	for i := range ids {
		ids[i] = uuid.New()
		mockEngine.On("Get", mock.Anything, constvars.ResourcePatient, ids[i]).Return(patientDocument(ids[i]), nil)
	}

	criteria := &queries.SearchCriteria{PageSize: 5, PageOffset: 0}
	request := &requests.SearchPatients{PageSize: 5, PageOffset: 0}

	bundle, err := assembler.Assemble(context.Background(), constvars.ResourcePatient, &fhir_dto.ResultPage{IDs: ids, Total: 6}, criteria, request, "/fhir/Patient")
	require.NoError(t, err)

	assert.Equal(t, 6, bundle.Total)
	assert.Len(t, bundle.Entry, 5)

	require.Len(t, bundle.Link, 2)
	assert.Equal(t, constvars.FhirLinkRelationSelf, bundle.Link[0].Relation)
	assert.Contains(t, bundle.Link[0].URL, "page-offset=0")
	assert.Contains(t, bundle.Link[0].URL, "page-size=5")
	assert.Equal(t, constvars.FhirLinkRelationNext, bundle.Link[1].Relation)
	assert.Contains(t, bundle.Link[1].URL, "page-offset=5")
	assert.Contains(t, bundle.Link[1].URL, "page-size=5")
}

func TestAssemble_LastPageHasNoNextLink(t *testing.T) {
	mockEngine := new(MockDocumentEngine)
	assembler := NewBundleAssembler(mockEngine, zap.NewNop())

	id := uuid.New()
	mockEngine.On("Get", mock.Anything, constvars.ResourcePatient, id).Return(patientDocument(id), nil)

	criteria := &queries.SearchCriteria{PageSize: 5, PageOffset: 5}
	request := &requests.SearchPatients{PageSize: 5, PageOffset: 5}

	bundle, err := assembler.Assemble(context.Background(), constvars.ResourcePatient, &fhir_dto.ResultPage{IDs: []uuid.UUID{id}, Total: 6}, criteria, request, "/fhir/Patient")
	require.NoError(t, err)

	assert.Len(t, bundle.Entry, 1)
	require.Len(t, bundle.Link, 1)
	assert.Equal(t, constvars.FhirLinkRelationSelf, bundle.Link[0].Relation)
}

func TestAssemble_DropsVanishedDocuments(t *testing.T) {
	mockEngine := new(MockDocumentEngine)
	assembler := NewBundleAssembler(mockEngine, zap.NewNop())

	present := uuid.New()
	vanished := uuid.New()
	mockEngine.On("Get", mock.Anything, constvars.ResourcePatient, present).Return(patientDocument(present), nil)
	mockEngine.On("Get", mock.Anything, constvars.ResourcePatient, vanished).Return(nil, nil)

	criteria := &queries.SearchCriteria{PageSize: 20}
	request := &requests.SearchPatients{PageSize: 20}

	bundle, err := assembler.Assemble(context.Background(), constvars.ResourcePatient, &fhir_dto.ResultPage{IDs: []uuid.UUID{present, vanished}, Total: 2}, criteria, request, "/fhir/Patient")
	require.NoError(t, err)

	assert.Equal(t, 2, bundle.Total)
	assert.Len(t, bundle.Entry, 1)
}

func TestAssemble_NextLinkRewritesOffsetStructurally(t *testing.T) {
	mockEngine := new(MockDocumentEngine)
	assembler := NewBundleAssembler(mockEngine, zap.NewNop())

	id := uuid.New()
	mockEngine.On("Get", mock.Anything, constvars.ResourcePatient, id).Return(patientDocument(id), nil)

	// name echoes the literal "5" so a textual offset rewrite would corrupt it
	criteria := &queries.SearchCriteria{PageSize: 5, PageOffset: 5}
	name := "5"
	criteria.Name = &name
	request := &requests.SearchPatients{Name: "5", PageSize: 5, PageOffset: 5}

	bundle, err := assembler.Assemble(context.Background(), constvars.ResourcePatient, &fhir_dto.ResultPage{IDs: []uuid.UUID{id}, Total: 20}, criteria, request, "/fhir/Patient")
	require.NoError(t, err)

	require.Len(t, bundle.Link, 2)
	assert.Contains(t, bundle.Link[1].URL, "name=5")
	assert.Contains(t, bundle.Link[1].URL, "page-offset=10")
	assert.Contains(t, bundle.Link[1].URL, "page-size=5")
}
