package respond_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/gallery/internal/platform/apperr"
	"github.com/taibuivan/gallery/internal/platform/respond"
)

/*
TestOK_WritesBareArray verifies that list bodies are not wrapped.
*/
func TestOK_WritesBareArray(t *testing.T) {
	recorder := httptest.NewRecorder()

	respond.OK(recorder, []string{})

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Header().Get("Content-Type"), "application/json")
	assert.JSONEq(t, `[]`, recorder.Body.String())
}

/*
TestCreated verifies the 201 helper.
*/
func TestCreated(t *testing.T) {
	recorder := httptest.NewRecorder()

	respond.Created(recorder, map[string]string{"title": "Dusk"})

	assert.Equal(t, http.StatusCreated, recorder.Code)
	assert.JSONEq(t, `{"title":"Dusk"}`, recorder.Body.String())
}

/*
TestError_AppError verifies the error envelope for an AppError.
*/
func TestError_AppError(t *testing.T) {
	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodPost, "/new_painting", nil)

	respond.Error(recorder, request, apperr.ValidationError("Validation failed",
		apperr.FieldError{Field: "title", Message: "can't be blank"}))

	assert.Equal(t, http.StatusUnprocessableEntity, recorder.Code)

	var envelope respond.ErrorEnvelope
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &envelope))
	assert.Equal(t, apperr.CodeValidation, envelope.Code)
	require.Len(t, envelope.Details, 1)
	assert.Equal(t, "title", envelope.Details[0].Field)
}

/*
TestError_PlainErrorIsHidden verifies that plain errors become a generic 500.
*/
func TestError_PlainErrorIsHidden(t *testing.T) {
	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/paintings", nil)

	respond.Error(recorder, request, errors.New("dial tcp: connection refused"))

	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
	assert.NotContains(t, recorder.Body.String(), "connection refused")
	assert.Contains(t, recorder.Body.String(), apperr.CodeInternal)
}
