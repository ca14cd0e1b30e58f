// Package classify maps file extensions to the fixed set of sort categories.
package classify

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/cases"
)

// Category is one of the fixed buckets files are sorted into.
type Category string

const (
	Images    Category = "Images"
	Videos    Category = "Videos"
	Music     Category = "Music"
	Documents Category = "Documents"
	Programs  Category = "Programs"
	Archives  Category = "Archives"
	Others    Category = "Others"
)

// All lists every category in presentation order. Others is last.
var All = []Category{Images, Videos, Music, Documents, Programs, Archives, Others}

// ErrUnknownCategory indicates an override names a category outside the fixed set.
var ErrUnknownCategory = errors.New("unknown category")

var byName = map[string]Category{
	"Images": Images, "Videos": Videos, "Music": Music,
	"Documents": Documents, "Programs": Programs,
	"Archives": Archives, "Others": Others,
}

// baseTable is the built-in extension mapping. Keys are lowercase with no
// leading dot. Additions belong here or in the [categories] section of the
// settings file, never in engine logic.
var baseTable = map[string]Category{
	// Images
	"png": Images, "jpg": Images, "jpeg": Images, "gif": Images,
	"bmp": Images, "webp": Images, "svg": Images, "ico": Images,
	"tiff": Images,

	// Videos
	"mp4": Videos, "mkv": Videos, "avi": Videos, "mov": Videos,
	"wmv": Videos, "flv": Videos, "webm": Videos, "m4v": Videos,

	// Music
	"mp3": Music, "wav": Music, "flac": Music, "aac": Music,
	"ogg": Music, "m4a": Music, "wma": Music,

	// Documents
	"pdf": Documents, "txt": Documents, "doc": Documents,
	"docx": Documents, "xls": Documents, "xlsx": Documents,
	"ppt": Documents, "pptx": Documents,

	// Programs / installers
	"exe": Programs, "msi": Programs, "deb": Programs,
	"dmg": Programs,

	// Archives
	"zip": Archives, "rar": Archives, "7z": Archives,
	"tar": Archives, "gz": Archives, "bz2": Archives,
}

// folder performs Unicode case folding so matching is not limited to ASCII.
var folder = cases.Fold()

// Table resolves extensions to categories. Construct with NewTable or
// Default; the zero value has no entries and classifies everything as
// Others.
type Table struct {
	entries map[string]Category
}

// NewTable builds a table from the built-in mapping plus overrides.
// Override keys are extensions (leading dot optional, any case); values
// must name one of the seven categories.
func NewTable(overrides map[string]string) (*Table, error) {
	entries := make(map[string]Category, len(baseTable)+len(overrides))
	for ext, cat := range baseTable {
		entries[ext] = cat
	}
	for ext, name := range overrides {
		cat, ok := byName[name]
		if !ok {
			return nil, fmt.Errorf("%w: %q for extension %q", ErrUnknownCategory, name, ext)
		}
		entries[normalize(ext)] = cat
	}
	return &Table{entries: entries}, nil
}

// Default returns a table with only the built-in mapping.
func Default() *Table {
	t, err := NewTable(nil)
	if err != nil {
		panic(err) // unreachable: no overrides to reject
	}
	return t
}

// Classify returns the category for a file extension. Matching is
// case-insensitive and the leading dot is optional; empty or unknown
// extensions classify as Others.
func (t *Table) Classify(ext string) Category {
	if cat, ok := t.entries[normalize(ext)]; ok {
		return cat
	}
	return Others
}

func normalize(ext string) string {
	return folder.String(strings.TrimPrefix(strings.TrimSpace(ext), "."))
}
