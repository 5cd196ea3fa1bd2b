package cli

import (
	"errors"
	"fmt"
	"testing"

	"github.com/aidanlsb/rolo/internal/config"
	"github.com/aidanlsb/rolo/internal/parser"
	"github.com/aidanlsb/rolo/internal/storage"
)

func TestErrorCode(t *testing.T) {
	parseErr := func(line string) error {
		t.Helper()
		_, err := parser.ParseLine(line)
		if err == nil {
			t.Fatalf("expected %q to fail parsing", line)
		}
		return err
	}

	tests := []struct {
		name string
		err  error
		want string
	}{
		{"unknown command", parseErr("frobnicate"), ErrUnknownCommand},
		{"invalid format", parseErr("delete"), ErrInvalidFormat},
		{"constraint", parseErr("add n/Bob p/12 e/bob@example.com a/Street"), ErrInvalidValue},
		{"book not found", fmt.Errorf("x: %w", config.ErrBookNotFound), ErrBookNotFound},
		{"unsupported format", fmt.Errorf("x: %w", storage.ErrUnsupportedFormat), ErrUnsupportedFormat},
		{"locked", storage.ErrLocked, ErrDataLocked},
		{"duplicate on load", storage.ErrDuplicatePerson, ErrDataInvalid},
		{"other", errors.New("boom"), ErrInternal},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := errorCode(tt.err); got != tt.want {
				t.Fatalf("errorCode(%v) = %q, want %q", tt.err, got, tt.want)
			}
		})
	}
}
