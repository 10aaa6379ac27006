package contracts

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func validCreateJSON() string {
	return `{
		"title": "Cozy apartment",
		"price": 125000.50,
		"agentId": "7b5db745-0e0e-4b43-b455-7a9d3e038dfb",
		"cityId": "a2b1cc04-35b7-4b67-b62e-6c2f3c6a3a10",
		"propertyTypeId": "5e0e2ed6-6c3e-41fb-b2cc-2b3c3e9a1f77",
		"status": "FOR_SALE"
	}`
}

func TestValidatePropertyCreate_ValidBody(t *testing.T) {
	require.Empty(t, ValidatePropertyCreate([]byte(validCreateJSON())))
}

func TestValidatePropertyCreate_MissingRequiredFields(t *testing.T) {
	errs := ValidatePropertyCreate([]byte(`{"title": "Loft"}`))

	require.Equal(t, "is required", errs["price"])
	require.Equal(t, "is required", errs["agentId"])
	require.Equal(t, "is required", errs["cityId"])
	require.Equal(t, "is required", errs["propertyTypeId"])
	require.Equal(t, "is required", errs["status"])
	require.NotContains(t, errs, "title")
}

func TestValidatePropertyCreate_NegativePrice(t *testing.T) {
	errs := ValidatePropertyCreate([]byte(`{
		"title": "Loft",
		"price": -1,
		"agentId": "7b5db745-0e0e-4b43-b455-7a9d3e038dfb",
		"cityId": "a2b1cc04-35b7-4b67-b62e-6c2f3c6a3a10",
		"propertyTypeId": "5e0e2ed6-6c3e-41fb-b2cc-2b3c3e9a1f77",
		"status": "FOR_SALE"
	}`))

	require.Contains(t, errs, "price")
}

func TestValidatePropertyCreate_BadStatusAndUUID(t *testing.T) {
	errs := ValidatePropertyCreate([]byte(`{
		"title": "Loft",
		"price": 1,
		"agentId": "not-a-uuid",
		"cityId": "a2b1cc04-35b7-4b67-b62e-6c2f3c6a3a10",
		"propertyTypeId": "5e0e2ed6-6c3e-41fb-b2cc-2b3c3e9a1f77",
		"status": "GIVEN_AWAY"
	}`))

	require.Contains(t, errs, "agentId")
	require.Contains(t, errs, "status")
}

func TestValidatePropertyCreate_InvalidJSON(t *testing.T) {
	errs := ValidatePropertyCreate([]byte(`{not json`))
	require.Equal(t, map[string]string{"body": "invalid JSON"}, errs)
}

func TestValidatePropertyUpdate_EmptyObjectIsValid(t *testing.T) {
	require.Empty(t, ValidatePropertyUpdate([]byte(`{}`)))
}

func TestValidatePropertyUpdate_NullFieldsAreValid(t *testing.T) {
	require.Empty(t, ValidatePropertyUpdate([]byte(`{
		"title": null,
		"price": null,
		"features": null
	}`)))
}

func TestValidatePropertyUpdate_RejectsBadPrice(t *testing.T) {
	errs := ValidatePropertyUpdate([]byte(`{"price": "expensive"}`))
	require.Contains(t, errs, "price")
}

func TestValidatePropertyUpdate_ArrayElementErrorMapsToTopField(t *testing.T) {
	errs := ValidatePropertyUpdate([]byte(`{"features": [42]}`))
	require.Contains(t, errs, "features")
}
