package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScore(t *testing.T) {
	t.Run("Should return zero for empty query", func(t *testing.T) {
		assert.Equal(t, 0, Score("", "any document text"))
	})

	t.Run("Should return zero for whitespace query", func(t *testing.T) {
		assert.Equal(t, 0, Score("   \t\n", "any document text"))
	})

	t.Run("Should count each distinct token once", func(t *testing.T) {
		// "land" repeated three times is still worth one point
		assert.Equal(t, 1, Score("land land land", "agricultural records mention farmland"))
	})

	t.Run("Should add two for a contiguous phrase match", func(t *testing.T) {
		// two token hits plus the phrase bonus
		assert.Equal(t, 4, Score("agricultural land", "dispute over agricultural land ownership"))
	})

	t.Run("Should match case-insensitively", func(t *testing.T) {
		assert.Equal(t, 3, Score("LAND", "Agricultural LAND records"))
	})

	t.Run("Should return zero when nothing matches", func(t *testing.T) {
		assert.Equal(t, 0, Score("maritime salvage", "property dispute over farmland"))
	})

	t.Run("Should match tokens as substrings", func(t *testing.T) {
		// "own" matches inside "ownership"; no phrase bonus for "own rights"
		assert.Equal(t, 2, Score("own rights", "ownership rights of the plaintiff"))
	})
}
