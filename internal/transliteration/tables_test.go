package transliteration

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyOrderingsLongestFirst(t *testing.T) {
	orderings := map[string][]string{
		"vowels":     vowelKeys,
		"consonants": consonantKeys,
		"matras":     matraKeys,
		"specials":   specialKeys,
	}
	for name, keys := range orderings {
		require.NotEmpty(t, keys, "%s key list", name)
		for i := 1; i < len(keys); i++ {
			assert.GreaterOrEqual(t, len(keys[i-1]), len(keys[i]),
				"%s keys out of order at %d: %q before %q", name, i, keys[i-1], keys[i])
		}
	}
}

func TestMatraKeysAreVowelSpellings(t *testing.T) {
	// Every matra spelling must also be a vowel spelling; only the
	// inherent "a" has no dependent form.
	for key := range matras {
		assert.Contains(t, vowels, key, "matra %q has no independent form", key)
	}
	assert.NotContains(t, matras, "a")
}

func TestOverrideKeysLowercase(t *testing.T) {
	for key := range overrides {
		assert.Equal(t, strings.ToLower(key), key, "override key %q must be lowercase", key)
	}
}

func TestPipeIsAlternateDanda(t *testing.T) {
	assert.Equal(t, specials["."], specials["|"])
}

func TestApplyOverrides(t *testing.T) {
	assert.Equal(t, "shrii", applyOverrides("shri"))
	assert.Equal(t, "bhaarat mahaan", applyOverrides("Bharat mahaan"))
	assert.Equal(t, "shrimaan", applyOverrides("shrimaan"))
	assert.Equal(t, "a b", applyOverrides("a  b"))
	assert.Equal(t, "", applyOverrides(""))
}
