package parser

import (
	"errors"
	"testing"

	"github.com/aidanlsb/rolo/internal/commands"
)

func TestParseCommandDispatch(t *testing.T) {
	tests := []struct {
		line string
		want string
	}{
		{"list", "ListCommand"},
		{"list extra words", "ListCommand"},
		{"LISTARCHIVE", "ListArchiveCommand"},
		{"clear", "ClearCommand"},
		{"help me", "HelpCommand"},
		{"exit", "ExitCommand"},
		{"  find n/alice", "FindCommand{names=[alice], addresses=[], priorities=[]}"},
		{"delete 1, 2", "DeleteCommand{targetIndexes=[1 2]}"},
	}
	for _, tt := range tests {
		cmd, err := ParseLine(tt.line)
		if err != nil {
			t.Errorf("ParseLine(%q): %v", tt.line, err)
			continue
		}
		if got := cmd.String(); got != tt.want {
			t.Errorf("ParseLine(%q) = %q, want %q", tt.line, got, tt.want)
		}
	}
}

func TestParseCommandUnknown(t *testing.T) {
	_, err := ParseCommand("remove", "1")
	var pe *ParseError
	if !errors.As(err, &pe) || pe.Message != commands.MessageUnknownCommand {
		t.Fatalf("err = %v, want unknown command", err)
	}

	if _, err := ParseLine("   "); err == nil {
		t.Fatal("blank line should fail")
	}
	if _, err := ParseLine("listarchive 2"); err == nil {
		t.Fatal("listarchive with arguments should fail")
	}
}

func TestSplitCommandLine(t *testing.T) {
	tests := []struct {
		line, word, args string
	}{
		{"find n/alice", "find", " n/alice"},
		{"  list  ", "list", ""},
		{"delete\t1,2", "delete", "\t1,2"},
		{"", "", ""},
	}
	for _, tt := range tests {
		word, args := SplitCommandLine(tt.line)
		if word != tt.word || args != tt.args {
			t.Errorf("SplitCommandLine(%q) = %q, %q; want %q, %q", tt.line, word, args, tt.word, tt.args)
		}
	}
}
