package ai_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"employee-matcher-backend/internal/ai"
)

func TestNormalize(t *testing.T) {
	t.Run("Clean JSON is a no-op", func(t *testing.T) {
		clean := `{"name":"Jane Doe"}`
		assert.Equal(t, clean, ai.Normalize(clean))
		assert.Equal(t, clean, ai.Normalize(ai.Normalize(clean)))
	})

	t.Run("Strips json-tagged fences", func(t *testing.T) {
		raw := "```json\n{\"name\":\"Jane Doe\"}\n```"
		assert.Equal(t, `{"name":"Jane Doe"}`, ai.Normalize(raw))
	})

	t.Run("Strips bare fences", func(t *testing.T) {
		raw := "```\n[1,2,3]\n```"
		assert.Equal(t, "[1,2,3]", ai.Normalize(raw))
	})

	t.Run("Trims surrounding whitespace", func(t *testing.T) {
		assert.Equal(t, "{}", ai.Normalize("  \n\t{}\n  "))
	})

	t.Run("Empty input stays empty", func(t *testing.T) {
		assert.Equal(t, "", ai.Normalize("   "))
	})
}
