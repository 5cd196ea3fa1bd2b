package storage

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/aidanlsb/rolo/internal/atomicfile"
	"github.com/aidanlsb/rolo/internal/model"
)

// YAMLStorage stores the book as a YAML document with the same shape as
// the JSON format.
type YAMLStorage struct {
	path string
}

// Path implements Storage.
func (s *YAMLStorage) Path() string { return s.path }

// Load implements Storage.
func (s *YAMLStorage) Load() (*model.AddressBook, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return model.NewAddressBook(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", s.path, err)
	}

	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse %s: %w", s.path, err)
	}
	return doc.toBook()
}

// Save implements Storage.
func (s *YAMLStorage) Save(book *model.AddressBook) error {
	return withLock(s.path, func() error {
		doc := newDocument(book)
		return atomicfile.Write(s.path, 0, func(w io.Writer) error {
			enc := yaml.NewEncoder(w)
			enc.SetIndent(2)
			if err := enc.Encode(doc); err != nil {
				return err
			}
			return enc.Close()
		})
	})
}
