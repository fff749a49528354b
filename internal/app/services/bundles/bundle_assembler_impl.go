package bundles

import (
	"context"
	"net/url"
	"strconv"

	"patient-registry-service/internal/app/contracts"
	"patient-registry-service/internal/pkg/constvars"
	"patient-registry-service/internal/pkg/dto/requests"
	"patient-registry-service/internal/pkg/envelope"
	"patient-registry-service/internal/pkg/exceptions"
	"patient-registry-service/internal/pkg/fhir_dto"
	"patient-registry-service/internal/pkg/queries"

	"go.uber.org/zap"
)

type bundleAssembler struct {
	Engine contracts.DocumentEngine
	Log    *zap.Logger
}

func NewBundleAssembler(documentEngine contracts.DocumentEngine, logger *zap.Logger) contracts.BundleAssembler {
	return &bundleAssembler{
		Engine: documentEngine,
		Log:    logger,
	}
}

// Assemble materializes one result page into a searchset bundle. When the
// total is zero no document is fetched at all; ids that vanished between the
// search and the fetch are dropped without failing the bundle. The next link
// exists only while offset+size still lies before the end of the match set,
// and both links are rebuilt from structured query values rather than edited
// as text.
func (a *bundleAssembler) Assemble(
	ctx context.Context,
	kind string,
	page *fhir_dto.ResultPage,
	criteria *queries.SearchCriteria,
	request *requests.SearchPatients,
	selfPath string,
) (*fhir_dto.Bundle, error) {
	bundle := &fhir_dto.Bundle{
		ResourceType: constvars.ResourceBundle,
		Type:         constvars.FhirBundleTypeSearchset,
		Total:        page.Total,
		Entry:        []fhir_dto.BundleEntry{},
	}

	values := searchQueryValues(criteria, request)
	bundle.Link = []fhir_dto.BundleLink{
		{
			Relation: constvars.FhirLinkRelationSelf,
			URL:      selfPath + "?" + values.Encode(),
		},
	}

	if page.Total == 0 {
		return bundle, nil
	}

	for _, id := range page.IDs {
		document, err := a.Engine.Get(ctx, kind, id)
		if err != nil {
			return nil, err
		}
		if document == nil {
			a.Log.Debug("search hit vanished before fetch",
				zap.String(constvars.LoggingResourceKindKey, kind),
				zap.String(constvars.LoggingPatientIDKey, id.String()),
			)
			continue
		}

		normalized, err := envelope.Normalize(document)
		if err != nil {
			return nil, exceptions.ErrEnvelopeNormalization(err)
		}
		bundle.Entry = append(bundle.Entry, fhir_dto.BundleEntry{Resource: normalized})
	}

	offset := criteria.EffectivePageOffset()
	size := criteria.EffectivePageSize()
	if offset+size < page.Total {
		nextValues := searchQueryValues(criteria, request)
		nextValues.Set(constvars.URLQueryParamPageOffset, strconv.Itoa(offset+size))
		bundle.Link = append(bundle.Link, fhir_dto.BundleLink{
			Relation: constvars.FhirLinkRelationNext,
			URL:      selfPath + "?" + nextValues.Encode(),
		})
	}

	return bundle, nil
}

// searchQueryValues echoes the supplied criteria as they arrived, with the
// effective page hints always present.
func searchQueryValues(criteria *queries.SearchCriteria, request *requests.SearchPatients) url.Values {
	values := url.Values{}
	if request.Name != "" {
		values.Set(constvars.URLQueryParamName, request.Name)
	}
	if request.Category != "" {
		values.Set(constvars.URLQueryParamCategory, request.Category)
	}
	if request.BirthdateFrom != "" {
		values.Set(constvars.URLQueryParamBirthdateFrom, request.BirthdateFrom)
	}
	if request.BirthdateTo != "" {
		values.Set(constvars.URLQueryParamBirthdateTo, request.BirthdateTo)
	}
	values.Set(constvars.URLQueryParamPageSize, strconv.Itoa(criteria.EffectivePageSize()))
	values.Set(constvars.URLQueryParamPageOffset, strconv.Itoa(criteria.EffectivePageOffset()))
	return values
}
