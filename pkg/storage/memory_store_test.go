package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore(t *testing.T) {
	s := NewMemoryStore()
	defer s.Close()

	added, err := s.MarkSeen("https://bip.example.pl/wiadomosci?id=1")
	require.NoError(t, err)
	assert.True(t, added, "first mark should report new")

	added, err = s.MarkSeen("https://bip.example.pl/wiadomosci?id=1")
	require.NoError(t, err)
	assert.False(t, added, "second mark should report already seen")

	seen, err := s.WasSeen("https://bip.example.pl/wiadomosci?id=1")
	require.NoError(t, err)
	assert.True(t, seen)

	seen, err = s.WasSeen("https://bip.example.pl/wiadomosci?id=2")
	require.NoError(t, err)
	assert.False(t, seen)

	count, err := s.SeenCount()
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}
