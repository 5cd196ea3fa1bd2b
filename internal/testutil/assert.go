package testutil

import (
	"os"
	"strings"
	"testing"

	"github.com/aidanlsb/rolo/internal/model"
)

// AssertFileExists fails the test if the data file does not exist.
func (b *TestBook) AssertFileExists() {
	b.t.Helper()
	if _, err := os.Stat(b.Path); os.IsNotExist(err) {
		b.t.Errorf("expected data file %s to exist", b.Path)
	}
}

// AssertFileContains fails the test if the data file doesn't contain substr.
func (b *TestBook) AssertFileContains(substr string) {
	b.t.Helper()
	content, err := os.ReadFile(b.Path)
	if err != nil {
		b.t.Fatalf("failed to read %s: %v", b.Path, err)
	}
	if !strings.Contains(string(content), substr) {
		b.t.Errorf("expected %s to contain %q", b.Path, substr)
	}
}

// AssertPersonCount checks how many current and archived persons are stored.
func (b *TestBook) AssertPersonCount(current, archived int) {
	b.t.Helper()
	var gotCurrent, gotArchived int
	for _, p := range b.Load().Persons() {
		if p.Archived() {
			gotArchived++
		} else {
			gotCurrent++
		}
	}
	if gotCurrent != current || gotArchived != archived {
		b.t.Errorf("stored persons: expected %d current and %d archived, got %d and %d",
			current, archived, gotCurrent, gotArchived)
	}
}

// AssertPersonStored checks that a person with name is stored.
func (b *TestBook) AssertPersonStored(name string) model.Person {
	b.t.Helper()
	p, ok := b.Load().FindPerson(model.Name(name))
	if !ok {
		b.t.Fatalf("expected %q to be stored in %s", name, b.Path)
	}
	return p
}

// AssertResultCount checks that a result list has the expected length.
func (r *CLIResult) AssertResultCount(t *testing.T, key string, expected int) {
	t.Helper()
	results := r.DataList(key)
	if len(results) != expected {
		t.Errorf("expected %d %s, got %d\nRaw: %s", expected, key, len(results), r.RawJSON)
	}
}

// AssertFeedback checks the command feedback message.
func (r *CLIResult) AssertFeedback(t *testing.T, expected string) {
	t.Helper()
	if got := r.DataString("feedback"); got != expected {
		t.Errorf("expected feedback %q, got %q\nRaw: %s", expected, got, r.RawJSON)
	}
}
