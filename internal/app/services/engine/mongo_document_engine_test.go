package engine

import (
	"testing"

	"patient-registry-service/internal/pkg/fhir_dto"
	"patient-registry-service/internal/pkg/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestParseFilter_RoundTripsCompiledCriteria(t *testing.T) {
	name := "smith"
	gender := fhir_dto.GenderFemale
	from := "1980-01-01"
	criteria := &queries.SearchCriteria{
		Name:          &name,
		Category:      &gender,
		BirthdateFrom: &from,
		PageSize:      10,
		PageOffset:    30,
	}

	spec, err := parseFilter(queries.Compile(criteria))
	require.NoError(t, err)

	require.NotNil(t, spec.Name)
	assert.Equal(t, "smith", *spec.Name)
	require.NotNil(t, spec.Category)
	assert.Equal(t, "female", *spec.Category)
	require.NotNil(t, spec.BirthdateFrom)
	assert.Equal(t, "1980-01-01", *spec.BirthdateFrom)
	assert.Nil(t, spec.BirthdateTo)
	assert.Equal(t, 10, spec.PageSize)
	assert.Equal(t, 30, spec.PageOffset)
}

func TestQuery_EmptyCriteriaMatchesEverything(t *testing.T) {
	spec, err := parseFilter([]byte(`{"pageSize":20,"pageOffset":0}`))
	require.NoError(t, err)

	assert.Equal(t, bson.M{}, spec.query())
}

func TestQuery_NamePrefixIsCaseInsensitiveAndEscaped(t *testing.T) {
	name := "o'bri.en"
	spec := &filterSpec{Name: &name}

	query := spec.query()
	clauses, ok := query["$or"].(bson.A)
	require.True(t, ok)
	require.Len(t, clauses, 2)

	family := clauses[0].(bson.M)["name.family"].(primitive.Regex)
	assert.Equal(t, `^o'bri\.en`, family.Pattern)
	assert.Equal(t, "i", family.Options)
}

func TestQuery_BirthdateRange(t *testing.T) {
	from := "1980-01-01"
	to := "1990-12-31"
	spec := &filterSpec{BirthdateFrom: &from, BirthdateTo: &to}

	query := spec.query()
	assert.Equal(t, bson.M{"$gte": "1980-01-01", "$lte": "1990-12-31"}, query["birthDate"])
}

func TestQuery_CategoryEquality(t *testing.T) {
	category := "male"
	spec := &filterSpec{Category: &category}

	assert.Equal(t, bson.M{"gender": "male"}, spec.query())
}
