package api

import (
	"errors"
	"testing"

	"github.com/gin-gonic/gin/binding"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatValidationError_FieldDetails(t *testing.T) {
	req := SignupRequest{Name: "", Email: "not-an-email", Password: "abc"}
	err := binding.Validator.ValidateStruct(&req)
	require.Error(t, err)

	details := formatValidationError(err)
	require.Len(t, details, 3)

	byField := map[string]string{}
	for _, d := range details {
		byField[d.Field] = d.Message
	}
	assert.Equal(t, "is required", byField["name"])
	assert.Equal(t, "must be a valid email address", byField["email"])
	assert.Equal(t, "must be at least 6 characters", byField["password"])
}

func TestFormatValidationError_NonValidatorError(t *testing.T) {
	details := formatValidationError(errors.New("unexpected EOF"))
	require.Len(t, details, 1)
	assert.Equal(t, "body", details[0].Field)
}
