package cli

import (
	"errors"

	"github.com/aidanlsb/rolo/internal/commands"
	"github.com/aidanlsb/rolo/internal/config"
	"github.com/aidanlsb/rolo/internal/model"
	"github.com/aidanlsb/rolo/internal/parser"
	"github.com/aidanlsb/rolo/internal/storage"
)

// Error codes for structured error responses. Execution failures use the
// codes from the commands package (INVALID_INDEX, DUPLICATE_PERSON, ...).
// These codes are stable and can be relied upon by scripts.
const (
	// Input errors
	ErrUnknownCommand = "UNKNOWN_COMMAND"
	ErrInvalidFormat  = "INVALID_COMMAND_FORMAT"
	ErrInvalidValue   = "INVALID_VALUE"

	// Book and config errors
	ErrBookNotFound  = "BOOK_NOT_FOUND"
	ErrConfigInvalid = "CONFIG_INVALID"

	// Storage errors
	ErrDataInvalid       = "DATA_INVALID"
	ErrDataLocked        = "DATA_LOCKED"
	ErrFileReadError     = "FILE_READ_ERROR"
	ErrFileWriteError    = "FILE_WRITE_ERROR"
	ErrUnsupportedFormat = "UNSUPPORTED_FORMAT"

	ErrConfirmationRequired = "CONFIRMATION_REQUIRED"
	ErrInternal             = "INTERNAL_ERROR"
)

// errorCode maps an error from parsing or executing a command line to a
// stable code.
func errorCode(err error) string {
	var execErr *commands.ExecutionError
	if errors.As(err, &execErr) {
		return execErr.Code
	}

	var parseErr *parser.ParseError
	if errors.As(err, &parseErr) {
		var constraint *model.ConstraintError
		switch {
		case errors.As(err, &constraint):
			return ErrInvalidValue
		case parseErr.Usage == "":
			return ErrUnknownCommand
		default:
			return ErrInvalidFormat
		}
	}

	switch {
	case errors.Is(err, config.ErrBookNotFound):
		return ErrBookNotFound
	case errors.Is(err, storage.ErrUnsupportedFormat):
		return ErrUnsupportedFormat
	case errors.Is(err, storage.ErrLocked):
		return ErrDataLocked
	case errors.Is(err, storage.ErrInvalidData), errors.Is(err, storage.ErrDuplicatePerson):
		return ErrDataInvalid
	}
	return ErrInternal
}
