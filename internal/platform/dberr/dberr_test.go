// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package dberr_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/gallery/internal/platform/apperr"
	"github.com/taibuivan/gallery/internal/platform/dberr"
)

/*
TestWrap_Nil verifies that nil stays nil.
*/
func TestWrap_Nil(t *testing.T) {
	assert.NoError(t, dberr.Wrap(nil, "noop"))
}

/*
TestWrap_NoRows verifies that pgx.ErrNoRows maps to NotFound.
*/
func TestWrap_NoRows(t *testing.T) {
	err := dberr.Wrap(fmt.Errorf("scan: %w", pgx.ErrNoRows), "get_painting")
	assert.True(t, apperr.HasCode(err, apperr.CodeNotFound))
}

/*
TestWrap_UniqueViolation verifies that the violated constraint is kept.
*/
func TestWrap_UniqueViolation(t *testing.T) {
	pgErr := &pgconn.PgError{Code: pgerrcode.UniqueViolation, ConstraintName: "paintings_slug_key"}

	err := dberr.Wrap(pgErr, "insert_painting")

	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, apperr.CodeConflict, ae.Code)
	assert.Equal(t, "paintings_slug_key", ae.Constraint)
	assert.True(t, dberr.IsConstraint(err, "paintings_slug_key"))
	assert.False(t, dberr.IsConstraint(err, "artists_name_key"))
}

/*
TestWrap_UnknownBecomesInternal verifies that driver errors are hidden behind Internal.
*/
func TestWrap_UnknownBecomesInternal(t *testing.T) {
	cause := errors.New("connection reset")

	err := dberr.Wrap(cause, "list_paintings")

	assert.True(t, apperr.HasCode(err, apperr.CodeInternal))
	assert.ErrorIs(t, err, cause)
}

/*
TestWrap_KeepsAppError verifies that an AppError passes through unchanged.
*/
func TestWrap_KeepsAppError(t *testing.T) {
	original := apperr.NotFound("Painting")
	assert.Same(t, original, dberr.Wrap(original, "upvote"))
}
