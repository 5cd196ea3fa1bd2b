package commands

import "strings"

// mutatingCommandIDs lists registry command IDs that can change the address
// book. The CLI uses this to decide whether to open the audit log and, for
// one-shot invocations, whether a save is expected.
var mutatingCommandIDs = map[string]struct{}{
	"add":       {},
	"edit":      {},
	"delete":    {},
	"archive":   {},
	"unarchive": {},
	"remark":    {},
	"clear":     {},
	"schedule":  {},
	"cancel":    {},
}

func init() {
	for id := range mutatingCommandIDs {
		meta, ok := Registry[id]
		if !ok {
			continue
		}
		meta.MutatesBook = true
		Registry[id] = meta
	}
}

// ResolveCommandID resolves user input to a registry command ID.
// Command words are matched case-insensitively.
func ResolveCommandID(word string) (string, bool) {
	trimmed := strings.ToLower(strings.TrimSpace(word))
	if trimmed == "" {
		return "", false
	}
	if _, ok := Registry[trimmed]; ok {
		return trimmed, true
	}
	return "", false
}

// IsMutating reports whether the command can change the address book.
func IsMutating(id string) bool {
	meta, ok := Registry[id]
	return ok && meta.MutatesBook
}
