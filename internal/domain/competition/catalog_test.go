package competition

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalog_IDsAreUniqueAndLookupable(t *testing.T) {
	t.Parallel()

	all := All()
	require.Len(t, all, 18)

	seen := make(map[int64]struct{}, len(all))
	for _, item := range all {
		_, dup := seen[item.ID]
		require.False(t, dup, "duplicate id %d", item.ID)
		seen[item.ID] = struct{}{}

		got, ok := Lookup(item.ID)
		require.True(t, ok)
		assert.Equal(t, item, got)
	}
}

func TestLookup_UnknownID(t *testing.T) {
	t.Parallel()

	_, ok := Lookup(999999)
	assert.False(t, ok)
}

func TestAll_ReturnsCopy(t *testing.T) {
	t.Parallel()

	first := All()
	first[0].Name = "mutated"
	assert.Equal(t, "Premier League", All()[0].Name)
}

func TestBroadcastersFor(t *testing.T) {
	t.Parallel()

	pl := BroadcastersFor(47)
	assert.Contains(t, pl.USA, "Peacock")
	assert.Len(t, pl.UK, 6)

	unknown := BroadcastersFor(1)
	assert.NotNil(t, unknown.Poland)
	assert.Empty(t, unknown.Poland)
	assert.Empty(t, unknown.UK)
	assert.Empty(t, unknown.USA)
}
