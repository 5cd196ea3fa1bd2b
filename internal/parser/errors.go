package parser

import (
	"fmt"

	"github.com/aidanlsb/rolo/internal/commands"
)

// ParseError reports input that could not be turned into a command.
// Usage names the command whose usage text is embedded in Message, if any.
type ParseError struct {
	Message string
	Usage   string
	Err     error
}

func (e *ParseError) Error() string {
	return e.Message
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// invalidFormat is the "Invalid command format!" error for command word.
func invalidFormat(word string, cause error) *ParseError {
	return &ParseError{
		Message: fmt.Sprintf(commands.MessageInvalidCommandFormat, commands.Usage(word)),
		Usage:   word,
		Err:     cause,
	}
}

// constraintFailure reports a field value that broke its constraint,
// followed by the command usage.
func constraintFailure(word string, err error) *ParseError {
	return &ParseError{
		Message: err.Error() + "\n" + commands.Usage(word),
		Usage:   word,
		Err:     err,
	}
}
