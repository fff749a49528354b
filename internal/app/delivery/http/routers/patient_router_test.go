package routers

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"patient-registry-service/internal/app/config"
	"patient-registry-service/internal/app/delivery/http/controllers"
	"patient-registry-service/internal/app/delivery/http/middlewares"
	"patient-registry-service/internal/app/services/bundles"
	"patient-registry-service/internal/app/services/patients"
	"patient-registry-service/internal/app/services/validation"
	"patient-registry-service/internal/pkg/constvars"
	"patient-registry-service/internal/pkg/fhir_dto"

	"github.com/buger/jsonparser"
	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// memoryDocumentEngine is a filter-agnostic in-memory engine: every stored
// document matches every search. Enough for exercising the transport and
// orchestration paths end to end.
type memoryDocumentEngine struct {
	mu          sync.Mutex
	documents   map[uuid.UUID][]byte
	order       []uuid.UUID
	searchCalls int
	putCalls    int
}

func newMemoryDocumentEngine() *memoryDocumentEngine {
	return &memoryDocumentEngine{documents: map[uuid.UUID][]byte{}}
}

func (e *memoryDocumentEngine) Put(ctx context.Context, kind string, document []byte) (uuid.UUID, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.putCalls++
	id := uuid.New()
	stored, err := jsonparser.Set(append([]byte{}, document...), []byte(`"`+id.String()+`"`), "id")
	if err != nil {
		return uuid.Nil, err
	}
	e.documents[id] = stored
	e.order = append(e.order, id)
	return id, nil
}

func (e *memoryDocumentEngine) Get(ctx context.Context, kind string, id uuid.UUID) ([]byte, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	document, found := e.documents[id]
	if !found {
		return nil, nil
	}
	return document, nil
}

func (e *memoryDocumentEngine) Search(ctx context.Context, kind string, filter []byte) ([]uuid.UUID, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.searchCalls++
	return append([]uuid.UUID{}, e.order...), nil
}

func (e *memoryDocumentEngine) Count(ctx context.Context, kind string, filter []byte) (int, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.order), nil
}

func decodeOutcome(t *testing.T, body *bytes.Buffer) fhir_dto.OperationOutcome {
	t.Helper()
	var outcome fhir_dto.OperationOutcome
	require.NoError(t, json.Unmarshal(body.Bytes(), &outcome))
	return outcome
}

// The controller constructor hands out a process-wide instance, so the whole
// flow is exercised against one router with one shared engine. Subtest order
// matters: searches against the empty store run before anything is created.
func TestPatientRouter(t *testing.T) {
	logger := zap.NewNop()
	internalConfig := &config.InternalConfig{
		App: config.App{
			EndpointPrefix:             "fhir",
			MaxRequests:                1000,
			RequestBodyLimitInMegabyte: 1,
		},
	}

	engine := newMemoryDocumentEngine()
	patientValidator := validation.NewPatientValidator()
	bundleAssembler := bundles.NewBundleAssembler(engine, logger)
	patientUsecase := patients.NewPatientUsecase(engine, patientValidator, bundleAssembler, nil, nil, internalConfig, logger)
	patientController := controllers.NewPatientController(logger, patientUsecase, internalConfig)
	middlewareInstance := middlewares.NewMiddlewares(logger, internalConfig)

	router := chi.NewRouter()
	SetupRoutes(router, internalConfig, middlewareInstance, patientController)

	t.Run("Search empty store", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/fhir/Patient?name=smith", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)

		var bundle fhir_dto.Bundle
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &bundle))
		assert.Equal(t, constvars.ResourceBundle, bundle.ResourceType)
		assert.Equal(t, constvars.FhirBundleTypeSearchset, bundle.Type)
		assert.Equal(t, 0, bundle.Total)
		assert.Empty(t, bundle.Entry)
		require.Len(t, bundle.Link, 1)
		assert.Equal(t, constvars.FhirLinkRelationSelf, bundle.Link[0].Relation)
		assert.Contains(t, bundle.Link[0].URL, "name=smith")
	})

	t.Run("Search rejects malformed date before engine", func(t *testing.T) {
		searchCallsBefore := engine.searchCalls

		req := httptest.NewRequest(http.MethodGet, "/fhir/Patient?birthdate-from=1985/01/01", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		require.Equal(t, http.StatusBadRequest, rr.Code)

		outcome := decodeOutcome(t, rr.Body)
		require.Len(t, outcome.Issue, 1)
		assert.Equal(t, constvars.FhirIssueTypeValue, outcome.Issue[0].Code)

		assert.Equal(t, searchCallsBefore, engine.searchCalls)
	})

	t.Run("Create rejects invalid gender before store", func(t *testing.T) {
		payload := []byte(`{"resourceType":"Patient","gender":"females"}`)
		req := httptest.NewRequest(http.MethodPost, "/fhir/Patient", bytes.NewReader(payload))
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		require.Equal(t, http.StatusBadRequest, rr.Code)

		outcome := decodeOutcome(t, rr.Body)
		assert.Equal(t, constvars.ResourceOperationOutcome, outcome.ResourceType)
		require.Len(t, outcome.Issue, 1)
		assert.Equal(t, constvars.FhirIssueSeverityError, outcome.Issue[0].Severity)
		assert.Contains(t, outcome.Issue[0].Diagnostics, "females")

		assert.Equal(t, 0, engine.putCalls)
	})

	t.Run("Create rejects wrong resource type", func(t *testing.T) {
		payload := []byte(`{"resourceType":"Observation"}`)
		req := httptest.NewRequest(http.MethodPost, "/fhir/Patient", bytes.NewReader(payload))
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, 0, engine.putCalls)
	})

	t.Run("Fetch unknown patient", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/fhir/Patient/"+uuid.NewString(), nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		require.Equal(t, http.StatusNotFound, rr.Code)

		outcome := decodeOutcome(t, rr.Body)
		require.Len(t, outcome.Issue, 1)
		assert.Equal(t, constvars.FhirIssueTypeNotFound, outcome.Issue[0].Code)
	})

	t.Run("Fetch malformed patient id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/fhir/Patient/not-a-uuid", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	var firstPatientID string

	t.Run("Create patient", func(t *testing.T) {
		payload := []byte(`{"resourceType":"Patient","name":[{"family":"Smith"}],"gender":"female","birthDate":"1985-04-12"}`)
		req := httptest.NewRequest(http.MethodPost, "/fhir/Patient", bytes.NewReader(payload))
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
		assert.Equal(t, constvars.MIMEApplicationFHIRJSON, rr.Header().Get(constvars.HeaderContentType))
		assert.Equal(t, `W/"1"`, rr.Header().Get(constvars.HeaderETag))
		assert.NotEmpty(t, rr.Header().Get(constvars.HeaderXRequestID))

		lastModified, err := time.Parse(http.TimeFormat, rr.Header().Get(constvars.HeaderLastModified))
		require.NoError(t, err)
		assert.WithinDuration(t, time.Now().UTC(), lastModified, time.Minute)

		var created fhir_dto.Patient
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &created))
		require.NotEmpty(t, created.ID)
		require.NotNil(t, created.Meta)
		assert.Equal(t, "1", created.Meta.VersionID)
		assert.NotEmpty(t, created.Meta.LastUpdated)

		assert.Equal(t, "/fhir/Patient/"+created.ID, rr.Header().Get(constvars.HeaderLocation))
		firstPatientID = created.ID
	})

	t.Run("Fetch created patient", func(t *testing.T) {
		require.NotEmpty(t, firstPatientID)

		req := httptest.NewRequest(http.MethodGet, "/fhir/Patient/"+firstPatientID, nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, `W/"1"`, rr.Header().Get(constvars.HeaderETag))
		assert.NotEmpty(t, rr.Header().Get(constvars.HeaderLastModified))

		var fetched fhir_dto.Patient
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &fetched))
		assert.Equal(t, firstPatientID, fetched.ID)
		assert.Equal(t, "female", fetched.Gender)
		require.NotNil(t, fetched.Meta)
		assert.Equal(t, "1", fetched.Meta.VersionID)
	})

	t.Run("Search returns stored patients", func(t *testing.T) {
		payload := []byte(`{"resourceType":"Patient","gender":"male"}`)
		req := httptest.NewRequest(http.MethodPost, "/fhir/Patient", bytes.NewReader(payload))
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)
		require.Equal(t, http.StatusCreated, rr.Code)

		req = httptest.NewRequest(http.MethodGet, "/fhir/Patient", nil)
		rr = httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)

		var bundle fhir_dto.Bundle
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &bundle))
		assert.Equal(t, 2, bundle.Total)
		require.Len(t, bundle.Entry, 2)

		for _, entry := range bundle.Entry {
			var resource fhir_dto.Patient
			require.NoError(t, json.Unmarshal(entry.Resource, &resource))
			require.NotNil(t, resource.Meta)
			assert.Equal(t, "1", resource.Meta.VersionID)
		}
	})

	t.Run("Client request id echoed", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/fhir/Patient", nil)
		req.Header.Set(constvars.HeaderXRequestID, "client-supplied-id")
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, "client-supplied-id", rr.Header().Get(constvars.HeaderXRequestID))
	})
}
