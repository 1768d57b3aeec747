package candidates

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDictionaryBareWords(t *testing.T) {
	src := NewDictionary([]string{"alpha", "beta", "gamma"}, DictionaryOptions{})

	got := drain(t, src, 100)
	assert.Equal(t, []string{"alpha", "beta", "gamma"}, got)

	_, ok := src.Next()
	assert.False(t, ok)
}

func TestDictionaryEmpty(t *testing.T) {
	src := NewDictionary(nil, DictionaryOptions{})

	_, ok := src.Next()
	assert.False(t, ok)
	assert.Zero(t, src.SpaceSize().Cmp(big.NewInt(0)))
}

func TestDictionaryExpandsOneWordAtATime(t *testing.T) {
	src := NewDictionary([]string{"admin", "root"}, DictionaryOptions{UseVariations: true})

	got := drain(t, src, 1000)

	require.Contains(t, got, "admin")
	require.Contains(t, got, "@dmin")
	require.Contains(t, got, "root")

	// Every variant of the first word precedes the second base word.
	rootIdx := indexOf(got, "root")

	for i := 0; i < rootIdx; i++ {
		assert.NotEqual(t, "r00t", got[i], "second word variants must not appear before its base word")
	}

	assert.Less(t, indexOf(got, "@dmin"), rootIdx)
}

func TestDictionarySpaceSize(t *testing.T) {
	plain := NewDictionary([]string{"a", "b"}, DictionaryOptions{})
	assert.Zero(t, plain.SpaceSize().Cmp(big.NewInt(2)))

	expanded := NewDictionary([]string{"a", "b"}, DictionaryOptions{UseVariations: true})
	assert.Nil(t, expanded.SpaceSize(), "expanded space is unknown up front")
}

func indexOf(s []string, v string) int {
	for i, x := range s {
		if x == v {
			return i
		}
	}

	return -1
}
