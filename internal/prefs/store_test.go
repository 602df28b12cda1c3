package prefs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"gitlab.com/donate4khmer/donationflow/internal/models"
)

func TestFileStoreRoundTrip(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		prefs models.Preferences
	}{
		{
			name:  "valid amount and method",
			prefs: models.Preferences{Amount: "25", Method: models.MethodBankTransfer},
		},
		{
			name:  "invalid amount stored verbatim",
			prefs: models.Preferences{Amount: "not-a-number", Method: models.MethodCreditCard},
		},
		{
			name:  "empty amount",
			prefs: models.Preferences{Amount: "", Method: models.MethodABAPay},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			store := NewFileStore(filepath.Join(t.TempDir(), "prefs.json"))

			store.Save(tt.prefs)
			got, ok := store.Load()
			require.True(t, ok)
			require.Equal(t, tt.prefs, got)
		})
	}
}

func TestFileStoreAbsentFile(t *testing.T) {
	t.Parallel()

	store := NewFileStore(filepath.Join(t.TempDir(), "missing.json"))
	_, ok := store.Load()
	require.False(t, ok)
}

func TestFileStoreCorruptFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "prefs.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, ok := NewFileStore(path).Load()
	require.False(t, ok)
}

func TestFileStoreCreatesDirectory(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "nested", "dir", "prefs.json")
	store := NewFileStore(path)

	store.Save(models.Preferences{Amount: "10", Method: models.MethodWingMoney})
	got, ok := store.Load()
	require.True(t, ok)
	require.Equal(t, "10", got.Amount)
}

func TestFileStoreSaveFailureIsSwallowed(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	// The prefs path collides with a directory, so the write must fail.
	require.NoError(t, os.Mkdir(filepath.Join(dir, "prefs.json"), 0o755))
	store := NewFileStore(filepath.Join(dir, "prefs.json"))

	// Must not panic or surface an error.
	store.Save(models.Preferences{Amount: "10", Method: models.MethodCreditCard})

	_, ok := store.Load()
	require.False(t, ok)
}

func TestMemStore(t *testing.T) {
	t.Parallel()

	store := &MemStore{}
	_, ok := store.Load()
	require.False(t, ok)

	p := models.Preferences{Amount: "50", Method: models.MethodABAPay}
	store.Save(p)
	got, ok := store.Load()
	require.True(t, ok)
	require.Equal(t, p, got)
}
