// Package commands provides the rolo commands and a central registry of
// their metadata. The registry is the single source of truth for usage
// text, used by the parsers, the help output, and the generated CLI.
package commands

import (
	"fmt"
	"sort"
	"strings"
)

// Meta defines metadata for a command that can be used to generate both
// usage messages and Cobra subcommands.
type Meta struct {
	Name        string     // Command word (e.g., "find", "delete")
	Description string     // Short description
	LongDesc    string     // Long description (for --help)
	Parameters  string     // Parameter synopsis shown in usage errors
	Flags       []FlagMeta // One-shot CLI flags
	Examples    []string   // Usage examples, without the command word
	MutatesBook bool       // Set by lifecycle.go for commands that change the book
	Group       string     // Help grouping: "person", "appointment", "general"
}

// FlagMeta defines a command flag for the one-shot CLI.
type FlagMeta struct {
	Name        string   // Flag name (e.g., "force")
	Short       string   // Short flag (e.g., "f" for -f)
	Description string   // Description
	Type        FlagType // Type of flag
	Default     string   // Default value
}

// FlagType represents the type of a flag.
type FlagType string

const (
	FlagTypeString FlagType = "string"
	FlagTypeBool   FlagType = "bool"
)

// Registry holds all registered commands.
var Registry = map[string]Meta{
	"add": {
		Name:        "add",
		Group:       "person",
		Description: "Adds a person to the address book",
		Parameters:  "n/NAME p/PHONE e/EMAIL a/ADDRESS [pr/PRIORITY] [r/REMARK] [t/TAG]...",
		Examples: []string{
			"n/John Doe p/98765432 e/johnd@example.com a/311, Clementi Ave 2, #02-25 pr/high t/friends t/owesMoney",
		},
	},
	"edit": {
		Name:        "edit",
		Group:       "person",
		Description: "Edits the details of the person identified by the index number used in the displayed person list",
		LongDesc: `Existing values will be overwritten by the input values.
Renaming a person also updates every appointment that refers to them.
Use t/ with no value to remove all tags.`,
		Parameters: "INDEX (must be a positive integer) [n/NAME] [p/PHONE] [e/EMAIL] [a/ADDRESS] [pr/PRIORITY] [r/REMARK] [t/TAG]...",
		Examples:   []string{"1 p/91234567 e/johndoe@example.com"},
	},
	"delete": {
		Name:        "delete",
		Group:       "person",
		Description: "Deletes the people identified by the index numbers used in the displayed person list",
		LongDesc: `Indexes refer to the list as currently displayed (after find/sort).
All indexes are checked before anything is deleted. Appointments for
deleted people are removed as well.`,
		Parameters: "INDEXES (must be positive integers, separated by commas or spaces; ranges like 2-4 allowed)",
		Examples:   []string{"1, 2", "3-5"},
	},
	"find": {
		Name:        "find",
		Group:       "person",
		Description: "Finds all persons matching every given filter and displays them as a list with index numbers",
		LongDesc: `Name and address keywords match case-insensitive substrings; separate
alternatives with |. Priority values are separated by spaces.
Within a filter any keyword may match; every given filter must match.`,
		Parameters: "[n/NAME_KEYWORD[|MORE]...] [a/ADDRESS_KEYWORD[|MORE]...] [pr/PRIORITY [MORE]...]",
		Examples:   []string{"n/alice|bob a/clementi pr/high medium"},
	},
	"get": {
		Name:        "get",
		Group:       "person",
		Description: "Shows only the selected fields of every person in the displayed list",
		Parameters:  "FIELD/ [FIELD/]... (one of n/ p/ e/ a/ pr/ r/ t/)",
		Examples:    []string{"n/ e/"},
	},
	"list": {
		Name:        "list",
		Group:       "person",
		Description: "Lists all current (unarchived) persons",
	},
	"listarchive": {
		Name:        "listarchive",
		Group:       "person",
		Description: "Lists all archived persons",
	},
	"archive": {
		Name:        "archive",
		Group:       "person",
		Description: "Archives the person identified by the index number used in the displayed person list",
		Parameters:  "INDEX (must be a positive integer)",
		Examples:    []string{"1"},
	},
	"unarchive": {
		Name:        "unarchive",
		Group:       "person",
		Description: "Restores the archived person identified by the index number used in the displayed archive list",
		Parameters:  "INDEX (must be a positive integer)",
		Examples:    []string{"1"},
	},
	"remark": {
		Name:        "remark",
		Group:       "person",
		Description: "Edits the remark of the person identified by the index number used in the displayed person list",
		LongDesc:    "Existing remark will be overwritten by the input. An empty r/ removes the remark.",
		Parameters:  "INDEX (must be a positive integer) r/[REMARK]",
		Examples:    []string{"1 r/Likes to swim."},
	},
	"sort": {
		Name:        "sort",
		Group:       "person",
		Description: "Sorts the displayed person list by one field",
		LongDesc:    "n/ and a/ sort alphabetically, pr/ sorts highest priority first. With no field, restores insertion order.",
		Parameters:  "[n/ | a/ | pr/]",
		Examples:    []string{"pr/", "n/"},
	},
	"clear": {
		Name:        "clear",
		Group:       "general",
		Description: "Clears all entries from the address book",
		Flags: []FlagMeta{
			{Name: "force", Short: "f", Description: "Skip confirmation prompt", Type: FlagTypeBool},
		},
	},
	"schedule": {
		Name:        "schedule",
		Group:       "appointment",
		Description: "Schedules an appointment with an existing person",
		LongDesc: `Times use YYYY-MM-DD HH:MM (or YYYY-MM-DDTHH:MM / RFC3339).
An appointment that overlaps another appointment with the same person is rejected.`,
		Parameters: "n/NAME from/START to/END [d/DESCRIPTION]",
		Examples:   []string{"n/Alice Pauline from/2026-10-14 09:00 to/2026-10-14 10:00 d/Annual review"},
	},
	"cancel": {
		Name:        "cancel",
		Group:       "appointment",
		Description: "Cancels the appointment identified by the index number used in the displayed appointment list",
		Parameters:  "INDEX (must be a positive integer)",
		Examples:    []string{"2"},
	},
	"appointments": {
		Name:        "appointments",
		Group:       "appointment",
		Description: "Lists appointments, optionally only those for matching person names",
		Parameters:  "[n/NAME_KEYWORD[|MORE]...]",
		Examples:    []string{"", "n/alice|bob"},
	},
	"help": {
		Name:        "help",
		Group:       "general",
		Description: "Shows program usage instructions",
	},
	"exit": {
		Name:        "exit",
		Group:       "general",
		Description: "Exits the program",
	},
}

// Usage returns the usage message for a command word, in the form shown
// after "Invalid command format!".
func Usage(name string) string {
	meta, ok := Registry[name]
	if !ok {
		return ""
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%s: %s.", meta.Name, meta.Description)
	if meta.Parameters != "" {
		fmt.Fprintf(&b, "\nParameters: %s", meta.Parameters)
	}
	example := ""
	if len(meta.Examples) > 0 {
		example = meta.Examples[0]
	}
	fmt.Fprintf(&b, "\nExample: %s", strings.TrimSpace(meta.Name+" "+example))
	return b.String()
}

// GetCommandMeta returns the metadata for a command.
func GetCommandMeta(name string) (Meta, bool) {
	meta, ok := Registry[name]
	return meta, ok
}

// AllCommandNames returns all registered command names in sorted order.
func AllCommandNames() []string {
	names := make([]string, 0, len(Registry))
	for name := range Registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// HelpMarkdown renders the registry as a markdown command reference.
func HelpMarkdown() string {
	groups := []struct{ key, title string }{
		{"person", "People"},
		{"appointment", "Appointments"},
		{"general", "General"},
	}

	var b strings.Builder
	b.WriteString("# rolo\n\nType a command word followed by its arguments.\n")
	for _, g := range groups {
		fmt.Fprintf(&b, "\n## %s\n\n", g.title)
		for _, name := range AllCommandNames() {
			meta := Registry[name]
			if meta.Group != g.key {
				continue
			}
			synopsis := meta.Name
			if meta.Parameters != "" {
				synopsis += " " + meta.Parameters
			}
			fmt.Fprintf(&b, "- `%s`  \n  %s\n", synopsis, meta.Description)
		}
	}
	return b.String()
}
