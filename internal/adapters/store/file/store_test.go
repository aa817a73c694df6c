package file

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/bnema/memory-match-cli/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreRejectsInvalidKeys(t *testing.T) {
	t.Parallel()

	store := NewStore(t.TempDir())
	testCases := []struct {
		name    string
		key     string
		wantErr string
	}{
		{name: "empty", key: "", wantErr: "key is empty"},
		{name: "whitespace", key: "   ", wantErr: "key is empty"},
		{name: "absolute", key: "/absolute/path", wantErr: "invalid key"},
		{name: "traversal", key: "../escape", wantErr: "invalid key"},
		{name: "deep traversal", key: "../../secret", wantErr: "invalid key"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := store.Set(context.Background(), tc.key, "value")
			require.Error(t, err)
			assert.ErrorContains(t, err, tc.wantErr)
		})
	}
}

func TestStoreSetGetRoundTripAndPermissions(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	store := NewStore(root)

	require.NoError(t, store.Set(context.Background(), "best_time", "0,42,7"))

	got, err := store.Get(context.Background(), "best_time")
	require.NoError(t, err)
	assert.Equal(t, "0,42,7", got)

	info, err := os.Stat(filepath.Join(root, "best_time"))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(valueFileMode), info.Mode().Perm())
}

func TestStoreGetTrimsTrailingNewline(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "best_moves"), []byte("17\n"), 0o600))

	got, err := NewStore(root).Get(context.Background(), "best_moves")
	require.NoError(t, err)
	assert.Equal(t, "17", got)
}

func TestStoreGetMissingReturnsNotFound(t *testing.T) {
	t.Parallel()

	_, err := NewStore(t.TempDir()).Get(context.Background(), "best_moves")
	require.ErrorIs(t, err, domain.ErrKeyNotFound)
}

func TestStoreDeleteIsIdempotentWhenValueMissing(t *testing.T) {
	t.Parallel()

	store := NewStore(t.TempDir())

	require.NoError(t, store.Delete(context.Background(), "best_moves"))
	require.NoError(t, store.Delete(context.Background(), "best_moves"))
}
