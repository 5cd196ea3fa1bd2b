package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/aidanlsb/rolo/internal/atomicfile"
	"github.com/aidanlsb/rolo/internal/model"
)

// JSONStorage stores the book as one indented JSON document.
type JSONStorage struct {
	path string
}

// Path implements Storage.
func (s *JSONStorage) Path() string { return s.path }

// Load implements Storage.
func (s *JSONStorage) Load() (*model.AddressBook, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return model.NewAddressBook(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", s.path, err)
	}

	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse %s: %w", s.path, err)
	}
	return doc.toBook()
}

// Save implements Storage.
func (s *JSONStorage) Save(book *model.AddressBook) error {
	return withLock(s.path, func() error {
		doc := newDocument(book)
		return atomicfile.Write(s.path, 0, func(w io.Writer) error {
			enc := json.NewEncoder(w)
			enc.SetIndent("", "  ")
			return enc.Encode(doc)
		})
	})
}
