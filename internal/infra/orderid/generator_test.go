package orderid

import (
	"strings"
	"testing"

	"storefront/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerator_Generate(t *testing.T) {
	gen := NewGenerator(&config.Config{})

	seen := make(map[string]struct{})
	for range 200 {
		code, err := gen.Generate()
		require.NoError(t, err)
		require.Len(t, code, defaultLength)
		for _, r := range code {
			assert.True(t, strings.ContainsRune(alphabet, r), "unexpected rune %q", r)
		}
		seen[code] = struct{}{}
	}

	assert.Greater(t, len(seen), 190)
}

func TestGenerator_ConfiguredLength(t *testing.T) {
	gen := NewGenerator(&config.Config{Order: &config.OrderConfig{CodeLength: 14}})

	code, err := gen.Generate()

	require.NoError(t, err)
	assert.Len(t, code, 14)
}
