// Package parser turns a line of user input into a command.
package parser

import (
	"strings"

	"github.com/aidanlsb/rolo/internal/commands"
)

type parseFunc func(args string) (commands.Command, error)

func noArgs(cmd commands.Command) parseFunc {
	return func(string) (commands.Command, error) { return cmd, nil }
}

// parseListArchive rejects arguments, unlike list.
func parseListArchive(args string) (commands.Command, error) {
	if strings.TrimSpace(args) != "" {
		return nil, invalidFormat("listarchive", nil)
	}
	return commands.ListArchiveCommand{}, nil
}

var parsers = map[string]parseFunc{
	"add":          ParseAdd,
	"edit":         ParseEdit,
	"delete":       ParseDelete,
	"find":         ParseFind,
	"get":          ParseGet,
	"list":         noArgs(commands.ListCommand{}),
	"listarchive":  parseListArchive,
	"archive":      ParseArchive,
	"unarchive":    ParseUnarchive,
	"remark":       ParseRemark,
	"sort":         ParseSort,
	"clear":        noArgs(commands.ClearCommand{}),
	"schedule":     ParseSchedule,
	"cancel":       ParseCancel,
	"appointments": ParseAppointments,
	"help":         noArgs(commands.HelpCommand{}),
	"exit":         noArgs(commands.ExitCommand{}),
}

// ParseCommand parses args for the command word. Unknown words fail with
// "Unknown command".
func ParseCommand(word, args string) (commands.Command, error) {
	id, ok := commands.ResolveCommandID(word)
	if !ok {
		return nil, &ParseError{Message: commands.MessageUnknownCommand}
	}
	parse, ok := parsers[id]
	if !ok {
		return nil, &ParseError{Message: commands.MessageUnknownCommand}
	}
	return parse(args)
}

// ParseLine splits line into a command word and arguments and parses them.
// A blank line is an invalid command format pointing at help.
func ParseLine(line string) (commands.Command, error) {
	word, args := SplitCommandLine(line)
	if word == "" {
		return nil, invalidFormat("help", nil)
	}
	return ParseCommand(word, args)
}

// SplitCommandLine returns the first word of line and the remaining
// arguments, which keep their leading whitespace.
func SplitCommandLine(line string) (word, args string) {
	line = strings.TrimSpace(line)
	i := strings.IndexFunc(line, isSpaceRune)
	if i < 0 {
		return line, ""
	}
	return line[:i], line[i:]
}

func isSpaceRune(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\r' || r == '\v' || r == '\f'
}
