package parser

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/aidanlsb/rolo/internal/syntax"
)

// ArgumentMultimap holds the values found for each prefix, in order, plus
// the preamble (text before the first prefix).
type ArgumentMultimap struct {
	preamble string
	values   map[syntax.Prefix][]string
}

// Value returns the last value given for p.
func (m *ArgumentMultimap) Value(p syntax.Prefix) (string, bool) {
	vals := m.values[p]
	if len(vals) == 0 {
		return "", false
	}
	return vals[len(vals)-1], true
}

// AllValues returns every value given for p, in input order.
func (m *ArgumentMultimap) AllValues(p syntax.Prefix) []string {
	return append([]string{}, m.values[p]...)
}

// Has reports whether p appeared at least once.
func (m *ArgumentMultimap) Has(p syntax.Prefix) bool {
	return len(m.values[p]) > 0
}

// Preamble returns the trimmed text before the first prefix.
func (m *ArgumentMultimap) Preamble() string {
	return m.preamble
}

// VerifyNoDuplicatePrefixes fails if any of prefixes appeared more than once.
func (m *ArgumentMultimap) VerifyNoDuplicatePrefixes(prefixes ...syntax.Prefix) error {
	var dups []string
	for _, p := range prefixes {
		if len(m.values[p]) > 1 {
			dups = append(dups, string(p))
		}
	}
	if len(dups) > 0 {
		return fmt.Errorf("Multiple values specified for the following single-valued field(s): %s", strings.Join(dups, " "))
	}
	return nil
}

type prefixPosition struct {
	prefix syntax.Prefix
	start  int
}

// Tokenize splits args into prefix values. A prefix is recognized only at
// the start of args or directly after whitespace, so "a/b" inside a value
// such as "x/a/b" is not split. Tokenize never fails.
func Tokenize(args string, prefixes ...syntax.Prefix) *ArgumentMultimap {
	positions := findPrefixPositions(args, prefixes)
	m := &ArgumentMultimap{values: make(map[syntax.Prefix][]string)}

	if len(positions) == 0 {
		m.preamble = strings.TrimSpace(args)
		return m
	}
	m.preamble = strings.TrimSpace(args[:positions[0].start])
	for i, pos := range positions {
		end := len(args)
		if i+1 < len(positions) {
			end = positions[i+1].start
		}
		value := strings.TrimSpace(args[pos.start+len(pos.prefix) : end])
		m.values[pos.prefix] = append(m.values[pos.prefix], value)
	}
	return m
}

func findPrefixPositions(args string, prefixes []syntax.Prefix) []prefixPosition {
	var positions []prefixPosition
	for i := 0; i < len(args); i++ {
		if i > 0 && !isSpaceByte(args[i-1]) {
			continue
		}
		if p, ok := longestPrefixAt(args[i:], prefixes); ok {
			positions = append(positions, prefixPosition{prefix: p, start: i})
			i += len(p) - 1
		}
	}
	return positions
}

func longestPrefixAt(s string, prefixes []syntax.Prefix) (syntax.Prefix, bool) {
	var best syntax.Prefix
	for _, p := range prefixes {
		if strings.HasPrefix(s, string(p)) && len(p) > len(best) {
			best = p
		}
	}
	return best, best != ""
}

func isSpaceByte(b byte) bool {
	return b < 0x80 && unicode.IsSpace(rune(b))
}
