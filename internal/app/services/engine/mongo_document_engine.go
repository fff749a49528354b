package engine

import (
	"context"
	"regexp"

	"patient-registry-service/internal/app/contracts"
	"patient-registry-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type mongoDocumentEngine struct {
	DB *mongo.Database
}

func NewMongoDocumentEngine(db *mongo.Database) contracts.DocumentEngine {
	return &mongoDocumentEngine{
		DB: db,
	}
}

func (e *mongoDocumentEngine) Put(ctx context.Context, kind string, document []byte) (uuid.UUID, error) {
	var doc bson.M
	if err := bson.UnmarshalExtJSON(document, true, &doc); err != nil {
		return uuid.Nil, exceptions.ErrEngineMalformedDocument(err)
	}

	id := uuid.New()
	doc["_id"] = id.String()
	doc["id"] = id.String()

	_, err := e.DB.Collection(kind).InsertOne(ctx, doc)
	if err != nil {
		return uuid.Nil, exceptions.ErrEnginePutDocument(err)
	}
	return id, nil
}

func (e *mongoDocumentEngine) Get(ctx context.Context, kind string, id uuid.UUID) ([]byte, error) {
	var doc bson.M
	err := e.DB.Collection(kind).FindOne(ctx, bson.M{"_id": id.String()}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, exceptions.ErrEngineGetDocument(err)
	}

	delete(doc, "_id")
	document, err := bson.MarshalExtJSON(doc, false, false)
	if err != nil {
		return nil, exceptions.ErrEngineMalformedDocument(err)
	}
	return document, nil
}

func (e *mongoDocumentEngine) Search(ctx context.Context, kind string, filter []byte) ([]uuid.UUID, error) {
	spec, err := parseFilter(filter)
	if err != nil {
		return nil, exceptions.ErrEngineMalformedDocument(err)
	}

	findOptions := options.Find().
		SetSort(bson.D{{Key: "_id", Value: 1}}).
		SetSkip(int64(spec.PageOffset)).
		SetLimit(int64(spec.PageSize)).
		SetProjection(bson.M{"_id": 1})

	cursor, err := e.DB.Collection(kind).Find(ctx, spec.query(), findOptions)
	if err != nil {
		return nil, exceptions.ErrEngineSearchDocuments(err)
	}
	defer cursor.Close(ctx)

	var ids []uuid.UUID
	for cursor.Next(ctx) {
		var row struct {
			ID string `bson:"_id"`
		}
		if err := cursor.Decode(&row); err != nil {
			return nil, exceptions.ErrEngineSearchDocuments(err)
		}
		id, err := uuid.Parse(row.ID)
		if err != nil {
			return nil, exceptions.ErrEngineMalformedDocument(err)
		}
		ids = append(ids, id)
	}
	if err := cursor.Err(); err != nil {
		return nil, exceptions.ErrEngineSearchDocuments(err)
	}
	return ids, nil
}

func (e *mongoDocumentEngine) Count(ctx context.Context, kind string, filter []byte) (int, error) {
	spec, err := parseFilter(filter)
	if err != nil {
		return 0, exceptions.ErrEngineMalformedDocument(err)
	}

	total, err := e.DB.Collection(kind).CountDocuments(ctx, spec.query())
	if err != nil {
		return 0, exceptions.ErrEngineCountDocuments(err)
	}
	return int(total), nil
}

// filterSpec mirrors the canonical filter document. Page hints are always
// present; the rest only when supplied.
type filterSpec struct {
	Name          *string `json:"name"`
	Category      *string `json:"category"`
	BirthdateFrom *string `json:"birthdateFrom"`
	BirthdateTo   *string `json:"birthdateTo"`
	PageSize      int     `json:"pageSize"`
	PageOffset    int     `json:"pageOffset"`
}

func parseFilter(filter []byte) (*filterSpec, error) {
	spec := new(filterSpec)
	if err := json.Unmarshal(filter, spec); err != nil {
		return nil, err
	}
	return spec, nil
}

func (s *filterSpec) query() bson.M {
	query := bson.M{}

	if s.Name != nil {
		prefix := primitive.Regex{Pattern: "^" + regexp.QuoteMeta(*s.Name), Options: "i"}
		query["$or"] = bson.A{
			bson.M{"name.family": prefix},
			bson.M{"name.given": prefix},
		}
	}
	if s.Category != nil {
		query["gender"] = *s.Category
	}

	birthDate := bson.M{}
	if s.BirthdateFrom != nil {
		birthDate["$gte"] = *s.BirthdateFrom
	}
	if s.BirthdateTo != nil {
		birthDate["$lte"] = *s.BirthdateTo
	}
	if len(birthDate) > 0 {
		query["birthDate"] = birthDate
	}

	return query
}
