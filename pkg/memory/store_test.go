package memory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStore_RecentFragmentsNewestFirst(t *testing.T) {
	store := NewFileStore(t.TempDir())

	require.NoError(t, store.AddFragment("user-1", "yuki", "user said they work as a nurse"))
	require.NoError(t, store.AddFragment("user-1", "yuki", "user mentioned they have anxiety"))
	require.NoError(t, store.AddFragment("user-2", "yuki", "user said they live in osaka"))

	fragments, err := store.RecentFragments("user-1", "yuki", 10)
	require.NoError(t, err)
	require.Len(t, fragments, 2)
	assert.Equal(t, "user mentioned they have anxiety", fragments[0])
	assert.Equal(t, "user said they work as a nurse", fragments[1])
}

func TestFileStore_Limit(t *testing.T) {
	store := NewFileStore(t.TempDir())

	for i := 0; i < 5; i++ {
		require.NoError(t, store.AddFragment("user-1", "yuki", "fragment"))
	}

	fragments, err := store.RecentFragments("user-1", "yuki", 3)
	require.NoError(t, err)
	assert.Len(t, fragments, 3)
}

func TestFileStore_DeleteUserData(t *testing.T) {
	store := NewFileStore(t.TempDir())

	require.NoError(t, store.AddFragment("user-1", "yuki", "user said they got fired"))
	require.NoError(t, store.AddFragment("user-2", "yuki", "user said they graduated"))

	require.NoError(t, store.DeleteUserData("user-1"))

	gone, err := store.RecentFragments("user-1", "yuki", 10)
	require.NoError(t, err)
	assert.Empty(t, gone)

	kept, err := store.RecentFragments("user-2", "yuki", 10)
	require.NoError(t, err)
	assert.Len(t, kept, 1)
}

func TestSource_ScopesToPair(t *testing.T) {
	store := NewFileStore(t.TempDir())
	require.NoError(t, store.AddFragment("user-1", "yuki", "user said they broke up recently"))
	require.NoError(t, store.AddFragment("user-1", "hana", "user said they love hiking"))

	source := NewSource(store, "user-1", "yuki")
	fragments, err := source.RecentFragments(10)
	require.NoError(t, err)
	require.Len(t, fragments, 1)
	assert.Contains(t, fragments[0], "broke up")
}
