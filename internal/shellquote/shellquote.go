// Package shellquote quotes command arguments for display in examples that
// users paste into a POSIX shell.
package shellquote

import "strings"

// shellMeta are characters a shell would interpret in a rolo argument
// string: keyword separators, comments, globs and quotes.
const shellMeta = "#[]()|!\"'*?;&<>$"

// Quote wraps s in single quotes, escaping any internal single quotes.
func Quote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}

// QuoteIfNeeded quotes s only when a shell would otherwise mangle it.
func QuoteIfNeeded(s string) string {
	if strings.ContainsAny(s, shellMeta) {
		return Quote(s)
	}
	return s
}
