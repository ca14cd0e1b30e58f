package organize_test

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/tidycli/tidy/internal/ledger"
	"github.com/tidycli/tidy/internal/organize"
	"github.com/tidycli/tidy/internal/organize/mocks"
)

// testLogger returns a discard logger for tests.
func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// A sort over a directory holding only images must report every other
// category as empty, plus the total summary.
func TestOrganize_ReportsEmptyCategories(t *testing.T) {
	ctrl := gomock.NewController(t)
	dir := t.TempDir()
	writeFiles(t, dir, "pic.png")

	db, err := ledger.Open(dir)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	rec := mocks.NewMockRecorder(ctrl)
	for _, name := range []string{"videos", "music", "documents", "programs", "archives", "others"} {
		rec.EXPECT().Eventf("No %s files were found.", name)
	}
	rec.EXPECT().Eventf("Organization complete! %d files moved.", 1)
	rec.EXPECT().Eventf(gomock.Any(), gomock.Any()).AnyTimes()

	o := organize.New(ledger.NewStore(db), nil, rec, testLogger())
	_, err = o.Organize(dir)
	require.NoError(t, err)
}

func TestUndo_ReportsCompletion(t *testing.T) {
	ctrl := gomock.NewController(t)
	dir := t.TempDir()
	writeFiles(t, dir, "pic.png")

	db, err := ledger.Open(dir)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	store := ledger.NewStore(db)
	quiet := organize.New(store, nil, nil, testLogger())
	_, err = quiet.Organize(dir)
	require.NoError(t, err)

	rec := mocks.NewMockRecorder(ctrl)
	rec.EXPECT().Eventf("Undoing the last sort...")
	rec.EXPECT().Eventf("Restored -> %s", "pic.png")
	rec.EXPECT().Eventf("Undo complete! %d files restored.", 1)

	o := organize.New(store, nil, rec, testLogger())
	_, err = o.Undo(dir)
	require.NoError(t, err)
}
