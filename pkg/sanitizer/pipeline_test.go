package sanitizer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/shoplist/pkg/sanitizer"
)

func TestApply(t *testing.T) {
	t.Parallel()

	t.Run("applies transforms in order", func(t *testing.T) {
		t.Parallel()
		result := sanitizer.Apply(" 10 KG ", sanitizer.ToLower, sanitizer.StripWhitespace)
		assert.Equal(t, "10kg", result)
	})

	t.Run("no transforms returns input", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "raw", sanitizer.Apply("raw"))
	})
}

func TestCompose(t *testing.T) {
	t.Parallel()

	clean := sanitizer.Compose(
		sanitizer.ToLower,
		sanitizer.StripWhitespace,
		sanitizer.KeepChars("0123456789kg"),
	)

	assert.Equal(t, "10kg", clean(" 10 Kg "))
	assert.Equal(t, "10k", clean("  1 0 K ᴴᵉᵢ"))
	assert.Equal(t, "", clean("abc"))
}
