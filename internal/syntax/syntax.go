// Package syntax defines the argument prefixes shared by the command
// parsers and the commands that describe their own usage.
package syntax

// Prefix marks which field the text following it belongs to, e.g. "n/".
type Prefix string

func (p Prefix) String() string { return string(p) }

// Person field prefixes.
const (
	Name     Prefix = "n/"
	Phone    Prefix = "p/"
	Email    Prefix = "e/"
	Address  Prefix = "a/"
	Priority Prefix = "pr/"
	Remark   Prefix = "r/"
	Tag      Prefix = "t/"
)

// Appointment prefixes.
const (
	From        Prefix = "from/"
	To          Prefix = "to/"
	Description Prefix = "d/"
)

// PersonPrefixes lists every person field prefix in display order.
var PersonPrefixes = []Prefix{Name, Phone, Email, Address, Priority, Remark, Tag}

// KeywordSeparator separates alternative keywords within one find value.
const KeywordSeparator = "|"
