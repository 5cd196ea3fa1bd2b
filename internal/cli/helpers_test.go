package cli

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/aidanlsb/rolo/internal/audit"
	"github.com/aidanlsb/rolo/internal/storage"
	"github.com/aidanlsb/rolo/internal/testutil"
	"github.com/aidanlsb/rolo/internal/ui"
)

var captureStdoutMu sync.Mutex

func captureStdout(t *testing.T, fn func()) string {
	t.Helper()
	captureStdoutMu.Lock()
	defer captureStdoutMu.Unlock()

	orig := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("os.Pipe: %v", err)
	}

	os.Stdout = w

	outputCh := make(chan string, 1)
	errCh := make(chan error, 1)
	go func() {
		var buf bytes.Buffer
		_, copyErr := io.Copy(&buf, r)
		_ = r.Close()
		if copyErr != nil {
			errCh <- copyErr
			return
		}
		outputCh <- buf.String()
	}()

	fn()

	os.Stdout = orig
	_ = w.Close()
	select {
	case err := <-errCh:
		t.Fatalf("io.Copy: %v", err)
		return ""
	case output := <-outputCh:
		return output
	}
}

// typicalDataFile writes the typical address book to a fresh data file
// and returns its path.
func typicalDataFile(t *testing.T, name string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	store, err := storage.Open(path)
	if err != nil {
		t.Fatalf("storage.Open: %v", err)
	}
	if err := store.Save(testutil.TypicalAddressBook()); err != nil {
		t.Fatalf("Save: %v", err)
	}
	return path
}

func openTestSession(t *testing.T, path string, auditEnabled bool) *Session {
	t.Helper()
	store, err := storage.Open(path)
	if err != nil {
		t.Fatalf("storage.Open: %v", err)
	}
	s, err := OpenSession(store, audit.New(path, auditEnabled), nil)
	if err != nil {
		t.Fatalf("OpenSession: %v", err)
	}
	return s
}

func textRenderer(buf *bytes.Buffer) *renderer {
	return &renderer{out: buf, display: ui.NewDisplayContextWithWidth(160)}
}

// withGlobals restores the package-level flag state after a test.
func withGlobals(t *testing.T) {
	t.Helper()
	prevJSON := jsonOutput
	prevData := resolvedDataPath
	prevCfg := cfg
	t.Cleanup(func() {
		jsonOutput = prevJSON
		resolvedDataPath = prevData
		cfg = prevCfg
	})
}
