package response

import (
	"encoding/json"
	"testing"

	"github.com/go-playground/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSuccess(t *testing.T) {
	resp := Success(map[string]any{"trip": "t1"})

	raw, err := json.Marshal(resp)
	require.NoError(t, err)
	assert.JSONEq(t, `{"status":"success","data":{"trip":"t1"}}`, string(raw))
}

func TestSuccessList(t *testing.T) {
	resp := SuccessList(2, map[string]any{"trips": []string{"a", "b"}})

	raw, err := json.Marshal(resp)
	require.NoError(t, err)
	assert.JSONEq(t, `{"status":"success","results":2,"data":{"trips":["a","b"]}}`, string(raw))
}

func TestFail(t *testing.T) {
	resp := Fail("Trip not found.")

	raw, err := json.Marshal(resp)
	require.NoError(t, err)
	assert.JSONEq(t, `{"status":"fail","message":"Trip not found."}`, string(raw))
}

func TestValidationError(t *testing.T) {
	type request struct {
		Name   string  `validate:"required"`
		Email  string  `validate:"required,email"`
		Amount float64 `validate:"omitempty,gt=0"`
	}

	err := validator.New().Struct(request{Email: "not-an-email", Amount: -1})
	require.Error(t, err)

	resp := ValidationError(err.(validator.ValidationErrors))
	assert.Equal(t, StatusFail, resp.Status)
	assert.Contains(t, resp.Message, "field Name is a required field")
	assert.Contains(t, resp.Message, "field Email must be a valid email")
	assert.Contains(t, resp.Message, "field Amount must be greater than 0")
}
