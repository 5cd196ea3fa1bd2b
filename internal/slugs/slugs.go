// Package slugs derives data file names from book names, built on
// gosimple/slug.
package slugs

import (
	"path/filepath"
	"strings"

	goslug "github.com/gosimple/slug"
)

// DefaultExt is the extension used when a book name carries none.
const DefaultExt = ".json"

var dataExts = map[string]bool{
	".json": true, ".yaml": true, ".yml": true,
	".db": true, ".sqlite": true, ".sqlite3": true,
}

// BookSlug converts a book name to a slug safe for a file name. A known
// data file extension is ignored. Names with nothing sluggable become "book".
func BookSlug(name string) string {
	name = strings.TrimSpace(name)
	if ext := filepath.Ext(name); dataExts[strings.ToLower(ext)] {
		name = strings.TrimSuffix(name, ext)
	}
	if slugged := goslug.Make(name); slugged != "" {
		return slugged
	}
	return "book"
}

// BookFileName returns the data file name for a book: its slug plus the
// extension the name carries, or DefaultExt.
//
//	BookFileName("Work Contacts")  // "work-contacts.json"
//	BookFileName("Clients.db")     // "clients.db"
func BookFileName(name string) string {
	ext := strings.ToLower(filepath.Ext(strings.TrimSpace(name)))
	if !dataExts[ext] {
		ext = DefaultExt
	}
	return BookSlug(name) + ext
}
