package domain

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSentinelErrors_AreDistinct(t *testing.T) {
	sentinels := []error{
		ErrNotFound,
		ErrConflict,
		ErrValidation,
		ErrForbidden,
		ErrUnauthorized,
		ErrUnavailable,
	}

	for i, a := range sentinels {
		for j, b := range sentinels {
			if i != j {
				assert.NotErrorIs(t, a, b,
					"sentinels should be distinct: %v vs %v", a, b)
			}
		}
	}
}

func TestNotFoundError(t *testing.T) {
	tests := []struct {
		name        string
		entity      string
		id          string
		expectedMsg string
	}{
		{
			name:        "with entity and ID",
			entity:      "article",
			id:          "12",
			expectedMsg: `article with id "12" not found`,
		},
		{
			name:        "with entity only",
			entity:      "comment",
			expectedMsg: "comment not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewNotFoundError(tt.entity, tt.id)

			assert.Equal(t, tt.expectedMsg, err.Error())
			require.ErrorIs(t, err, ErrNotFound)

			var notFound *NotFoundError
			require.ErrorAs(t, err, &notFound)
			assert.Equal(t, tt.entity, notFound.Entity)
			assert.Equal(t, tt.id, notFound.ID)
		})
	}
}

func TestValidationError(t *testing.T) {
	t.Run("single field", func(t *testing.T) {
		err := NewValidationError("title", "This field may not be blank.")

		require.ErrorIs(t, err, ErrValidation)
		assert.Equal(t, "validation failed: title: This field may not be blank.", err.Error())

		var ve *ValidationError
		require.ErrorAs(t, err, &ve)
		assert.Equal(t, map[string]string{"title": "This field may not be blank."}, ve.Fields)
	})

	t.Run("fields are reported in key order", func(t *testing.T) {
		err := NewFieldsValidationError(map[string]string{
			"title":      "required",
			"identifier": "required",
		})

		assert.Equal(t, "validation failed: identifier: required; title: required", err.Error())
	})

	t.Run("empty field map is no error", func(t *testing.T) {
		assert.NoError(t, NewFieldsValidationError(nil))
		assert.NoError(t, NewFieldsValidationError(map[string]string{}))
	})
}

func TestForbiddenError(t *testing.T) {
	err := NewForbiddenError("update article", "You can only update your own articles.")

	require.ErrorIs(t, err, ErrForbidden)
	assert.Equal(t, "You can only update your own articles.", err.Error())

	bare := NewForbiddenError("delete comment", "")
	assert.Equal(t, "delete comment is not allowed", bare.Error())
}

func TestUnauthorizedError(t *testing.T) {
	err := NewUnauthorizedError("create article")

	require.ErrorIs(t, err, ErrUnauthorized)
	assert.False(t, IsForbidden(err))
	assert.Contains(t, err.Error(), "create article")
}

func TestConflictAndUnavailableErrors(t *testing.T) {
	conflict := NewConflictError("article", "identifier taken")
	assert.Equal(t, "article conflict: identifier taken", conflict.Error())
	assert.True(t, IsConflict(conflict))

	unavailable := NewUnavailableError("database", "connection refused")
	assert.Equal(t, "database unavailable: connection refused", unavailable.Error())
	assert.True(t, IsUnavailable(unavailable))
}

func TestIsHelpers_WorkThroughWrapping(t *testing.T) {
	tests := []struct {
		name  string
		err   error
		check func(error) bool
	}{
		{"not found", NewNotFoundError("article", "1"), IsNotFound},
		{"conflict", NewConflictError("tag", "x"), IsConflict},
		{"validation", NewValidationError("body", "required"), IsValidation},
		{"forbidden", NewForbiddenError("delete", ""), IsForbidden},
		{"unauthorized", NewUnauthorizedError("create"), IsUnauthorized},
		{"unavailable", NewUnavailableError("db", ""), IsUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wrapped := fmt.Errorf("layer two: %w", fmt.Errorf("layer one: %w", tt.err))
			assert.True(t, tt.check(wrapped))
		})
	}
}
