// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package apperr_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/gallery/internal/platform/apperr"
)

/*
TestConstructors_StatusMapping verifies each constructor maps to its HTTP status.
*/
func TestConstructors_StatusMapping(t *testing.T) {
	tests := []struct {
		name   string
		err    *apperr.AppError
		code   string
		status int
	}{
		{"not_found", apperr.NotFound("Painting"), apperr.CodeNotFound, http.StatusNotFound},
		{"bad_request", apperr.BadRequest("bad id"), apperr.CodeBadRequest, http.StatusBadRequest},
		{"conflict", apperr.Conflict("dup"), apperr.CodeConflict, http.StatusConflict},
		{"validation", apperr.ValidationError("invalid"), apperr.CodeValidation, http.StatusUnprocessableEntity},
		{"media_type", apperr.UnsupportedMediaType("text/xml"), apperr.CodeUnsupportedMediaType, http.StatusUnsupportedMediaType},
		{"internal", apperr.Internal(errors.New("boom")), apperr.CodeInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, tt.err.Code)
			assert.Equal(t, tt.status, tt.err.HTTPStatus)
		})
	}
}

/*
TestNotFound_Message checks the resource name is part of the client message.
*/
func TestNotFound_Message(t *testing.T) {
	assert.Equal(t, "Painting not found", apperr.NotFound("Painting").Error())
}

/*
TestInternal_HidesCause ensures the cause is reachable via errors.Is but not in the message.
*/
func TestInternal_HidesCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := apperr.Internal(cause)

	assert.NotContains(t, err.Error(), "connection refused")
	assert.ErrorIs(t, err, cause)
}

/*
TestAs_WrappedChain extracts an AppError through fmt.Errorf wrapping.
*/
func TestAs_WrappedChain(t *testing.T) {
	wrapped := fmt.Errorf("service: %w", apperr.NotFound("Artist"))

	ae := apperr.As(wrapped)
	require.NotNil(t, ae)
	assert.Equal(t, apperr.CodeNotFound, ae.Code)
	assert.True(t, apperr.IsAppError(wrapped))
	assert.True(t, apperr.HasCode(wrapped, apperr.CodeNotFound))

	assert.Nil(t, apperr.As(errors.New("plain")))
	assert.False(t, apperr.HasCode(errors.New("plain"), apperr.CodeNotFound))
}
