// Package storage loads and saves the address book. The backend is chosen
// from the data file's extension.
package storage

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/aidanlsb/rolo/internal/model"
)

var (
	// ErrDuplicatePerson is returned when stored data holds two persons
	// with the same identity.
	ErrDuplicatePerson = errors.New("Person list contains duplicate person(s).")
	// ErrUnsupportedFormat is returned by Open for unknown extensions.
	ErrUnsupportedFormat = errors.New("unsupported data file format")
	// ErrInvalidData wraps field or reference errors found while loading.
	ErrInvalidData = errors.New("invalid address book data")
)

// Storage persists an address book.
type Storage interface {
	// Path is the data file location.
	Path() string
	// Load reads the book. A missing file loads as an empty book.
	Load() (*model.AddressBook, error)
	// Save replaces the stored book with book.
	Save(book *model.AddressBook) error
}

// Format names a storage backend.
type Format string

const (
	FormatJSON   Format = "json"
	FormatYAML   Format = "yaml"
	FormatSQLite Format = "sqlite"
)

// FormatFor returns the backend for path's extension. Paths without an
// extension use JSON.
func FormatFor(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", "":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".db", ".sqlite", ".sqlite3":
		return FormatSQLite, nil
	}
	return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Ext(path))
}

// Open returns the Storage for path.
func Open(path string) (Storage, error) {
	format, err := FormatFor(path)
	if err != nil {
		return nil, err
	}
	switch format {
	case FormatYAML:
		return &YAMLStorage{path: path}, nil
	case FormatSQLite:
		return &SQLiteStorage{path: path}, nil
	default:
		return &JSONStorage{path: path}, nil
	}
}
