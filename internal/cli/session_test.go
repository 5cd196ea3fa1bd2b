package cli

import (
	"bufio"
	"encoding/json"
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/aidanlsb/rolo/internal/audit"
	"github.com/aidanlsb/rolo/internal/commands"
	"github.com/aidanlsb/rolo/internal/parser"
	"github.com/aidanlsb/rolo/internal/storage"
)

func TestSessionSavesAfterMutation(t *testing.T) {
	path := typicalDataFile(t, "book.json")
	s := openTestSession(t, path, false)

	out, err := s.Run("delete 1")
	if err != nil {
		t.Fatalf("Run(delete 1): %v", err)
	}
	if !strings.HasPrefix(out.Result.Feedback, "Deleted People: ") {
		t.Fatalf("feedback = %q", out.Result.Feedback)
	}

	store, _ := storage.Open(path)
	book, err := store.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	for _, p := range book.Persons() {
		if p.Name() == "Alice Pauline" {
			t.Fatalf("expected Alice Pauline to be deleted from %s", path)
		}
	}
}

func TestSessionDoesNotSaveReadOnlyCommands(t *testing.T) {
	path := typicalDataFile(t, "book.json")
	before, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	s := openTestSession(t, path, false)

	for _, line := range []string{"list", "find n/alice", "sort n/", "get n/"} {
		if _, err := s.Run(line); err != nil {
			t.Fatalf("Run(%q): %v", line, err)
		}
	}
	if s.saved != s.model.Revision() {
		t.Fatalf("expected no unsaved changes")
	}
	after, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if !after.ModTime().Equal(before.ModTime()) {
		t.Fatalf("expected data file to be untouched")
	}
}

func TestSessionReportsParseAndExecutionErrors(t *testing.T) {
	s := openTestSession(t, typicalDataFile(t, "book.json"), false)

	_, err := s.Run("bogus 1")
	var parseErr *parser.ParseError
	if err == nil || !errors.As(err, &parseErr) {
		t.Fatalf("expected ParseError, got %v", err)
	}
	if errorCode(err) != ErrUnknownCommand {
		t.Fatalf("errorCode = %q", errorCode(err))
	}

	out, err := s.Run("delete 99")
	if !commands.IsExecutionError(err, commands.ErrCodeInvalidIndex) {
		t.Fatalf("expected INVALID_INDEX, got %v", err)
	}
	if out.Command == nil {
		t.Fatalf("expected parsed command on execution failure")
	}
	if out.Result.Feedback != "" {
		t.Fatalf("expected no feedback on failure, got %q", out.Result.Feedback)
	}
}

func TestSessionAuditsMutatingCommands(t *testing.T) {
	path := typicalDataFile(t, "book.yaml")
	s := openTestSession(t, path, true)

	if _, err := s.Run("list"); err != nil {
		t.Fatal(err)
	}
	if _, err := s.Run("archive 2"); err != nil {
		t.Fatal(err)
	}
	if _, err := s.Run("archive 99"); err == nil {
		t.Fatal("expected archive 99 to fail")
	}

	f, err := os.Open(audit.LogPath(path))
	if err != nil {
		t.Fatalf("open audit log: %v", err)
	}
	defer f.Close()

	var entries []audit.Entry
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		var e audit.Entry
		if err := json.Unmarshal(scanner.Bytes(), &e); err != nil {
			t.Fatal(err)
		}
		entries = append(entries, e)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 audit entries (list is not audited), got %d", len(entries))
	}
	if entries[0].Command != "archive" || entries[0].Args != "2" || !entries[0].OK {
		t.Errorf("first entry = %+v", entries[0])
	}
	if entries[1].OK || entries[1].Code != commands.ErrCodeInvalidIndex {
		t.Errorf("second entry = %+v", entries[1])
	}
}
