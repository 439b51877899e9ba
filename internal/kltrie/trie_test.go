package kltrie

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func build(t *testing.T, pairs map[string]uint64) *Trie {
	t.Helper()
	keys := make([]string, 0, len(pairs))
	for k := range pairs {
		keys = append(keys, k)
	}
	// simple insertion sort; test inputs are small
	for i := 1; i < len(keys); i++ {
		for j := i; j > 0 && keys[j] < keys[j-1]; j-- {
			keys[j], keys[j-1] = keys[j-1], keys[j]
		}
	}

	b, err := NewBuilder()
	require.NoError(t, err)
	for _, k := range keys {
		require.NoError(t, b.Insert([]byte(k), pairs[k]))
	}
	trie, _, err := b.Close()
	require.NoError(t, err)
	return trie
}

func TestGetPrefixesOrder(t *testing.T) {
	trie := build(t, map[string]uint64{
		"h":     1,
		"hy":    2,
		"hyph":  3,
		"hyzzy": 4,
	})

	ids := trie.GetPrefixes([]byte("hyph"))
	require.Equal(t, []uint64{1, 2, 3}, ids)
}

func TestGetPrefixesNoMatch(t *testing.T) {
	trie := build(t, map[string]uint64{"abc": 1})
	require.Nil(t, trie.GetPrefixes([]byte("xyz")))
	require.Nil(t, trie.GetPrefixes(nil))
}

func TestGetExact(t *testing.T) {
	trie := build(t, map[string]uint64{"abc": 42})
	v, ok := trie.Get([]byte("abc"))
	require.True(t, ok)
	require.Equal(t, uint64(42), v)

	_, ok = trie.Get([]byte("ab"))
	require.False(t, ok)
}

func TestBuilderRejectsOutOfOrderInsert(t *testing.T) {
	b, err := NewBuilder()
	require.NoError(t, err)
	require.NoError(t, b.Insert([]byte("b"), 1))
	require.Error(t, b.Insert([]byte("a"), 2))
}

func TestBuilderRejectsDuplicateInsert(t *testing.T) {
	b, err := NewBuilder()
	require.NoError(t, err)
	require.NoError(t, b.Insert([]byte("a"), 1))
	require.Error(t, b.Insert([]byte("a"), 2))
}

func TestRoundTripThroughBytes(t *testing.T) {
	trie := build(t, map[string]uint64{"a": 1, "ab": 2, "abc": 3})
	raw := trie.Bytes()

	reloaded, err := Load(raw)
	require.NoError(t, err)
	require.Equal(t, []uint64{1, 2, 3}, reloaded.GetPrefixes([]byte("abc")))
}
