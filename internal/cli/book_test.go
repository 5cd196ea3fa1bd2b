package cli

import (
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/aidanlsb/rolo/internal/config"
)

func withConfigDir(t *testing.T) (string, string) {
	t.Helper()
	withGlobals(t)
	prevConfig, prevState := configPath, statePathFlag
	t.Cleanup(func() {
		configPath, statePathFlag = prevConfig, prevState
	})
	dir := t.TempDir()
	configPath = filepath.Join(dir, "config.toml")
	statePathFlag = filepath.Join(dir, "state.toml")
	return configPath, statePathFlag
}

func TestBookAddUseAndList(t *testing.T) {
	cfgPath, statePath := withConfigDir(t)
	jsonOutput = true
	dataPath := filepath.Join(t.TempDir(), "work.yaml")

	bookAddPin = true
	t.Cleanup(func() { bookAddPin = false })
	captureStdout(t, func() {
		if err := bookAddCmd.RunE(bookAddCmd, []string{"work", dataPath}); err != nil {
			t.Fatalf("book add: %v", err)
		}
	})

	loaded, err := config.LoadFrom(cfgPath)
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if loaded.Books["work"] != dataPath || loaded.DefaultBook != "work" {
		t.Fatalf("config after add = %+v", loaded)
	}

	captureStdout(t, func() {
		if err := bookUseCmd.RunE(bookUseCmd, []string{"work"}); err != nil {
			t.Fatalf("book use: %v", err)
		}
	})
	state, err := config.LoadState(statePath)
	if err != nil {
		t.Fatalf("LoadState: %v", err)
	}
	if state.ActiveBook != "work" {
		t.Fatalf("ActiveBook = %q", state.ActiveBook)
	}

	out := captureStdout(t, func() {
		if err := runBookList(bookListCmd, nil); err != nil {
			t.Fatalf("book list: %v", err)
		}
	})
	var resp struct {
		OK   bool `json:"ok"`
		Data struct {
			Books []bookRow `json:"books"`
		} `json:"data"`
	}
	if err := json.Unmarshal([]byte(out), &resp); err != nil {
		t.Fatalf("parse: %v; out=%s", err, out)
	}
	if len(resp.Data.Books) != 1 || !resp.Data.Books[0].IsActive || !resp.Data.Books[0].IsDefault {
		t.Fatalf("books = %+v", resp.Data.Books)
	}
}

func TestBookUseUnknownFails(t *testing.T) {
	withConfigDir(t)
	jsonOutput = true

	out := captureStdout(t, func() {
		if err := bookUseCmd.RunE(bookUseCmd, []string{"nope"}); err != errReported {
			t.Fatalf("expected errReported, got %v", err)
		}
	})
	var resp Response
	if err := json.Unmarshal([]byte(out), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Error == nil || resp.Error.Code != ErrBookNotFound {
		t.Fatalf("unexpected response %+v", resp)
	}
}

func TestBookAddRejectsUnknownExtension(t *testing.T) {
	withConfigDir(t)
	jsonOutput = true

	out := captureStdout(t, func() {
		_ = bookAddCmd.RunE(bookAddCmd, []string{"notes", filepath.Join(t.TempDir(), "notes.txt")})
	})
	var resp Response
	if err := json.Unmarshal([]byte(out), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Error == nil || resp.Error.Code != ErrUnsupportedFormat {
		t.Fatalf("unexpected response %+v", resp)
	}
}

func TestBookAddDefaultsPathFromName(t *testing.T) {
	cfgPath, _ := withConfigDir(t)
	jsonOutput = true

	captureStdout(t, func() {
		if err := bookAddCmd.RunE(bookAddCmd, []string{"Work Contacts"}); err != nil {
			t.Fatalf("book add: %v", err)
		}
	})
	loaded, err := config.LoadFrom(cfgPath)
	if err != nil {
		t.Fatal(err)
	}
	want := filepath.Join(filepath.Dir(config.DefaultDataPath()), "work-contacts.json")
	if abs, err := filepath.Abs(want); err == nil {
		want = abs
	}
	if got := loaded.Books["Work Contacts"]; got != want {
		t.Fatalf("book path = %q, want %q", got, want)
	}
}
