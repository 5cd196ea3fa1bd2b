package cli

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/aidanlsb/rolo/internal/audit"
	"github.com/aidanlsb/rolo/internal/commands"
	"github.com/aidanlsb/rolo/internal/model"
	"github.com/aidanlsb/rolo/internal/parser"
	"github.com/aidanlsb/rolo/internal/storage"
)

// Session executes command lines against one address book and saves it
// whenever a command changed it.
type Session struct {
	store  storage.Storage
	model  *model.Manager
	audit  *audit.Logger
	logger *slog.Logger
	saved  uint64
}

// Outcome is what one command line produced.
type Outcome struct {
	Command commands.Command
	Result  commands.Result
}

// OpenSession loads the book from store. A nil audit logger disables
// auditing.
func OpenSession(store storage.Storage, auditLog *audit.Logger, logger *slog.Logger) (*Session, error) {
	if logger == nil {
		logger = slog.Default()
	}
	book, err := store.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", store.Path(), err)
	}
	m := model.NewManager(book)
	logger.Debug("loaded address book", "path", store.Path(),
		"persons", len(book.Persons()), "appointments", len(book.Appointments()))
	return &Session{
		store:  store,
		model:  m,
		audit:  auditLog,
		logger: logger,
		saved:  m.Revision(),
	}, nil
}

// Model returns the in-memory model.
func (s *Session) Model() model.Model { return s.model }

// Path returns the data file path.
func (s *Session) Path() string { return s.store.Path() }

// Run parses and executes one line. The model is saved when the command
// changed it; a failed save is returned after the command's own result.
func (s *Session) Run(line string) (Outcome, error) {
	word, args := parser.SplitCommandLine(line)
	cmd, err := parser.ParseLine(line)
	if err != nil {
		s.logger.Debug("parse failed", "command", word, "error", err)
		return Outcome{}, err
	}

	id, _ := commands.ResolveCommandID(word)
	result, err := cmd.Execute(s.model)
	if commands.IsMutating(id) {
		s.record(id, args, result, err)
	}
	if err != nil {
		s.logger.Debug("command failed", "command", cmd.String(), "error", err)
		return Outcome{Command: cmd}, err
	}

	out := Outcome{Command: cmd, Result: result}
	if err := s.saveIfChanged(); err != nil {
		return out, err
	}
	return out, nil
}

func (s *Session) saveIfChanged() error {
	rev := s.model.Revision()
	if rev == s.saved {
		return nil
	}
	if err := s.store.Save(s.model.AddressBook()); err != nil {
		return fmt.Errorf("failed to save %s: %w", s.store.Path(), err)
	}
	s.saved = rev
	s.logger.Debug("saved address book", "path", s.store.Path(), "revision", rev)
	return nil
}

func (s *Session) record(id, args string, result commands.Result, err error) {
	if s.audit == nil {
		return
	}
	var logErr error
	if err != nil {
		logErr = s.audit.LogFailure(id, strings.TrimSpace(args), errorCode(err), err.Error())
	} else {
		logErr = s.audit.LogSuccess(id, strings.TrimSpace(args), result.Feedback)
	}
	if logErr != nil {
		s.logger.Warn("audit log write failed", "path", s.audit.Path(), "error", logErr)
	}
}
