package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-material-trade/pkg/validator"
)

type recordPayload struct {
	VendorID   string `json:"vendorId" validate:"required,uuid"`
	CustomerID string `json:"customerId" validate:"required,uuid"`
	MaterialID string `json:"materialId" validate:"required,uuid"`
}

type namePayload struct {
	MaterialName string `json:"materialName" validate:"required,min=3"`
}

type partialPayload struct {
	VendorID   *string `json:"vendorId" validate:"omitempty,uuid"`
	MaterialID *string `json:"materialId" validate:"omitempty,uuid"`
}

func TestValidateStruct_AccumulatesAllFailures(t *testing.T) {
	errs := validator.ValidateStruct(&recordPayload{})

	require.Len(t, errs, 3)
	assert.Equal(t, "vendorId", errs[0].Field)
	assert.Equal(t, "Vendor ID is required", errs[0].Message)
	assert.Equal(t, "customerId", errs[1].Field)
	assert.Equal(t, "Customer ID is required", errs[1].Message)
	assert.Equal(t, "materialId", errs[2].Field)
	assert.Equal(t, "Material ID is required", errs[2].Message)
}

func TestValidateStruct_MalformedUUID(t *testing.T) {
	errs := validator.ValidateStruct(&recordPayload{
		VendorID:   "not-a-uuid",
		CustomerID: "9f4ae0ae-1a06-4f06-8f3b-2d7f7ab0b9d0",
		MaterialID: "also-not-a-uuid",
	})

	require.Len(t, errs, 2)
	assert.Equal(t, "vendorId", errs[0].Field)
	assert.Equal(t, "Vendor ID must be a valid UUID", errs[0].Message)
	assert.Equal(t, "materialId", errs[1].Field)
	assert.Equal(t, "Material ID must be a valid UUID", errs[1].Message)
}

func TestValidateStruct_OneErrorPerField(t *testing.T) {
	// A missing field reports required only, not the format rule too.
	errs := validator.ValidateStruct(&recordPayload{
		CustomerID: "nope",
	})

	require.Len(t, errs, 3)
	assert.Equal(t, "Vendor ID is required", errs[0].Message)
	assert.Equal(t, "Customer ID must be a valid UUID", errs[1].Message)
	assert.Equal(t, "Material ID is required", errs[2].Message)
}

func TestValidateStruct_Valid(t *testing.T) {
	errs := validator.ValidateStruct(&recordPayload{
		VendorID:   "9f4ae0ae-1a06-4f06-8f3b-2d7f7ab0b9d0",
		CustomerID: "9f4ae0ae-1a06-4f06-8f3b-2d7f7ab0b9d0",
		MaterialID: "6a2f6b48-59a3-4c4b-9f1e-0e3d5c1f2a3b",
	})
	assert.Empty(t, errs)
}

func TestValidateStruct_MinLength(t *testing.T) {
	errs := validator.ValidateStruct(&namePayload{MaterialName: "ab"})

	require.Len(t, errs, 1)
	assert.Equal(t, "materialName", errs[0].Field)
	assert.Equal(t, "Material name must be at least 3 characters long", errs[0].Message)
}

func TestValidateStruct_OptionalFields(t *testing.T) {
	assert.Empty(t, validator.ValidateStruct(&partialPayload{}))

	bad := "nope"
	errs := validator.ValidateStruct(&partialPayload{MaterialID: &bad})
	require.Len(t, errs, 1)
	assert.Equal(t, "materialId", errs[0].Field)
	assert.Equal(t, "Material ID must be a valid UUID", errs[0].Message)
}

func TestLabel(t *testing.T) {
	tests := []struct {
		field string
		want  string
	}{
		{"vendorId", "Vendor ID"},
		{"customerId", "Customer ID"},
		{"materialId", "Material ID"},
		{"materialName", "Material name"},
		{"username", "Username"},
		{"id", "ID"},
	}

	for _, tt := range tests {
		t.Run(tt.field, func(t *testing.T) {
			assert.Equal(t, tt.want, validator.Label(tt.field))
		})
	}
}
