package schemas

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	schemadocs "github.com/kenh/donor-rfm/schemas"
)

func TestValidateBytes_ValidDocument(t *testing.T) {
	doc := []byte(`{"mode": "discrete", "as_of": "2025-06-01"}`)

	assert.NoError(t, ValidateBytes(schemadocs.RunConfig(), doc))
}

func TestValidateBytes_InvalidField(t *testing.T) {
	doc := []byte(`{"mode": "fancy"}`)

	err := ValidateBytes(schemadocs.RunConfig(), doc)

	require.Error(t, err)
	var validationErr *ValidationError
	require.True(t, errors.As(err, &validationErr))
	require.NotEmpty(t, validationErr.Errors)
	assert.Equal(t, "mode", validationErr.Errors[0].Field)
}

func TestValidateBytes_UnknownProperty(t *testing.T) {
	doc := []byte(`{"modee": "discrete"}`)

	err := ValidateBytes(schemadocs.RunConfig(), doc)

	var validationErr *ValidationError
	require.True(t, errors.As(err, &validationErr))
}

func TestValidateBytes_MalformedDocument(t *testing.T) {
	err := ValidateBytes(schemadocs.RunConfig(), []byte(`{"mode": `))

	var validationErr *ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.Equal(t, "(root)", validationErr.Errors[0].Field)
}

func TestValidateBytes_BrokenSchema(t *testing.T) {
	err := ValidateBytes([]byte(`{`), []byte(`{}`))

	var loadErr *SchemaLoadError
	require.True(t, errors.As(err, &loadErr))
	assert.Contains(t, err.Error(), "failed to load schema")
}

func TestValidateBytes_EnrichRequest(t *testing.T) {
	valid := []byte(`{
		"mode": "continuous",
		"gifts": [
			{"donor_id": "D1", "gift_id": "G1", "gift_date": "2025-03-15", "gift_amount": 50.5}
		]
	}`)
	assert.NoError(t, ValidateBytes(schemadocs.EnrichRequest(), valid))

	missingGifts := []byte(`{"mode": "continuous"}`)
	assert.Error(t, ValidateBytes(schemadocs.EnrichRequest(), missingGifts))

	emptyGifts := []byte(`{"mode": "continuous", "gifts": []}`)
	assert.Error(t, ValidateBytes(schemadocs.EnrichRequest(), emptyGifts))

	bothMode := []byte(`{"mode": "both", "gifts": [
		{"donor_id": "D1", "gift_id": "G1", "gift_date": "2025-03-15", "gift_amount": 1}
	]}`)
	assert.Error(t, ValidateBytes(schemadocs.EnrichRequest(), bothMode))
}

func TestEmbeddedSchemasAreWellFormed(t *testing.T) {
	for _, schema := range [][]byte{schemadocs.RunConfig(), schemadocs.EnrichRequest()} {
		err := ValidateBytes(schema, []byte(`{}`))
		var loadErr *SchemaLoadError
		assert.False(t, errors.As(err, &loadErr))
	}
}
