package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/aidanlsb/rolo/internal/model"
	"github.com/aidanlsb/rolo/internal/storage"
)

// TestBook is a throwaway data file plus an isolated config directory for
// running the CLI against.
type TestBook struct {
	t          *testing.T
	Dir        string
	Path       string
	ConfigPath string
	StatePath  string
}

// NewTestBook creates an empty book named fileName (the extension picks
// the storage format) in a fresh temp directory.
func NewTestBook(t *testing.T, fileName string) *TestBook {
	t.Helper()
	dir := t.TempDir()
	return &TestBook{
		t:          t,
		Dir:        dir,
		Path:       filepath.Join(dir, fileName),
		ConfigPath: filepath.Join(dir, "config.toml"),
		StatePath:  filepath.Join(dir, "state.toml"),
	}
}

// WithBook saves book to the data file.
func (b *TestBook) WithBook(book *model.AddressBook) *TestBook {
	b.t.Helper()
	store, err := storage.Open(b.Path)
	if err != nil {
		b.t.Fatalf("storage.Open(%s): %v", b.Path, err)
	}
	if err := store.Save(book); err != nil {
		b.t.Fatalf("save %s: %v", b.Path, err)
	}
	return b
}

// WithTypicalPersons saves TypicalAddressBook to the data file.
func (b *TestBook) WithTypicalPersons() *TestBook {
	b.t.Helper()
	return b.WithBook(TypicalAddressBook())
}

// WithConfig writes config.toml content.
func (b *TestBook) WithConfig(content string) *TestBook {
	b.t.Helper()
	if err := os.WriteFile(b.ConfigPath, []byte(content), 0o644); err != nil {
		b.t.Fatalf("write config: %v", err)
	}
	return b
}

// Load reads the data file back.
func (b *TestBook) Load() *model.AddressBook {
	b.t.Helper()
	store, err := storage.Open(b.Path)
	if err != nil {
		b.t.Fatalf("storage.Open(%s): %v", b.Path, err)
	}
	book, err := store.Load()
	if err != nil {
		b.t.Fatalf("load %s: %v", b.Path, err)
	}
	return book
}
