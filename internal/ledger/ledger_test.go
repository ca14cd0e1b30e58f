package ledger

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/tidycli/tidy/internal/migrations"
)

// setupTestDB creates an in-memory database with the schema applied.
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(migrations.InitialSQL)
	require.NoError(t, err)

	return db
}

func TestReplaceAndLatest(t *testing.T) {
	store := NewStore(setupTestDB(t))

	run := &Run{
		RunID:     "run-1",
		Directory: "/data/downloads",
		Records: []Record{
			{Destination: "/data/downloads/Images/a.png", Original: "/data/downloads/a.png"},
			{Destination: "/data/downloads/Documents/b.txt", Original: "/data/downloads/b.txt"},
		},
	}
	require.NoError(t, store.Replace(run))
	assert.NotZero(t, run.ID)

	got, err := store.Latest("/data/downloads")
	require.NoError(t, err)
	assert.Equal(t, "run-1", got.RunID)
	require.Len(t, got.Records, 2)
	// Records come back in move order.
	assert.Equal(t, "/data/downloads/a.png", got.Records[0].Original)
	assert.Equal(t, "/data/downloads/b.txt", got.Records[1].Original)
}

func TestReplace_DiscardsPriorRun(t *testing.T) {
	store := NewStore(setupTestDB(t))

	first := &Run{
		RunID:     "run-1",
		Directory: "/data/downloads",
		Records:   []Record{{Destination: "/data/downloads/Images/a.png", Original: "/data/downloads/a.png"}},
	}
	require.NoError(t, store.Replace(first))

	second := &Run{
		RunID:     "run-2",
		Directory: "/data/downloads",
		Records:   []Record{{Destination: "/data/downloads/Music/c.mp3", Original: "/data/downloads/c.mp3"}},
	}
	require.NoError(t, store.Replace(second))

	got, err := store.Latest("/data/downloads")
	require.NoError(t, err)
	assert.Equal(t, "run-2", got.RunID)
	require.Len(t, got.Records, 1)
	assert.Equal(t, "/data/downloads/c.mp3", got.Records[0].Original)
}

func TestReplace_IndependentDirectories(t *testing.T) {
	store := NewStore(setupTestDB(t))

	require.NoError(t, store.Replace(&Run{RunID: "a", Directory: "/one"}))
	require.NoError(t, store.Replace(&Run{RunID: "b", Directory: "/two"}))

	got, err := store.Latest("/one")
	require.NoError(t, err)
	assert.Equal(t, "a", got.RunID)
}

func TestLatest_NotFound(t *testing.T) {
	store := NewStore(setupTestDB(t))

	_, err := store.Latest("/nowhere")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDelete(t *testing.T) {
	store := NewStore(setupTestDB(t))

	run := &Run{
		RunID:     "run-1",
		Directory: "/data/downloads",
		Records:   []Record{{Destination: "/data/downloads/Images/a.png", Original: "/data/downloads/a.png"}},
	}
	require.NoError(t, store.Replace(run))
	require.NoError(t, store.Delete(run.ID))

	_, err := store.Latest("/data/downloads")
	assert.ErrorIs(t, err, ErrNotFound)

	ok, err := store.Exists("/data/downloads")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestExists(t *testing.T) {
	store := NewStore(setupTestDB(t))

	ok, err := store.Exists("/data/downloads")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.Replace(&Run{RunID: "run-1", Directory: "/data/downloads"}))

	ok, err = store.Exists("/data/downloads")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestRecorded(t *testing.T) {
	dir := t.TempDir()

	// Probing a fresh directory must not create anything.
	assert.False(t, Recorded(dir))
	assert.NoDirExists(t, filepath.Join(dir, StateDirName))

	db, err := Open(dir)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	assert.True(t, Recorded(dir))
}

func TestOpen_CreatesStateDir(t *testing.T) {
	dir := t.TempDir()

	db, err := Open(dir)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`SELECT COUNT(*) FROM runs`)
	require.NoError(t, err)

	assert.DirExists(t, filepath.Join(dir, StateDirName))
}
