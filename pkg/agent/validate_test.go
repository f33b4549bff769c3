package agent

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateOutput(t *testing.T) {
	schema := map[string]string{
		"location":   "string",
		"confidence": "number",
		"tags":       "array",
	}

	t.Run("valid output passes", func(t *testing.T) {
		err := validateOutput(schema, map[string]any{
			"location":   "London",
			"confidence": 0.9,
			"tags":       []any{"flood"},
		})
		assert.NoError(t, err)
	})

	t.Run("missing key", func(t *testing.T) {
		err := validateOutput(schema, map[string]any{
			"location":   "London",
			"confidence": 0.9,
		})
		assert.ErrorIs(t, err, ErrOutputValidation)
		assert.Contains(t, err.Error(), "tags")
	})

	t.Run("extra key", func(t *testing.T) {
		err := validateOutput(schema, map[string]any{
			"location":   "London",
			"confidence": 0.9,
			"tags":       []any{},
			"extra":      "nope",
		})
		assert.ErrorIs(t, err, ErrOutputValidation)
		assert.Contains(t, err.Error(), "extra")
	})

	t.Run("too many keys", func(t *testing.T) {
		err := validateOutput(schema, map[string]any{
			"a": 1, "b": 2, "c": 3, "d": 4, "e": 5, "f": 6,
		})
		assert.ErrorIs(t, err, ErrOutputValidation)
		assert.Contains(t, err.Error(), "cap")
	})

	t.Run("type mismatch", func(t *testing.T) {
		err := validateOutput(schema, map[string]any{
			"location":   "London",
			"confidence": "high",
			"tags":       []any{},
		})
		assert.ErrorIs(t, err, ErrOutputValidation)
		assert.Contains(t, err.Error(), "confidence")
	})

	t.Run("null accepted for any type", func(t *testing.T) {
		err := validateOutput(schema, map[string]any{
			"location":   nil,
			"confidence": nil,
			"tags":       nil,
		})
		assert.NoError(t, err)
	})

	t.Run("unknown type name not enforced", func(t *testing.T) {
		err := validateOutput(map[string]string{"blob": "geometry"},
			map[string]any{"blob": 42.0})
		assert.NoError(t, err)
	})
}
