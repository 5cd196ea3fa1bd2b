package model

import (
	"fmt"
	"regexp"
	"strings"
)

// Field names used in constraint errors and field selectors.
const (
	FieldName     = "name"
	FieldPhone    = "phone"
	FieldEmail    = "email"
	FieldAddress  = "address"
	FieldPriority = "priority"
	FieldRemark   = "remark"
	FieldTag      = "tag"
)

// Validation patterns. NamePattern and AddressPattern are shared with the
// find parser, which validates search keywords against the same rules.
// Alphanumeric means ASCII letters and digits.
var (
	NamePattern    = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9 ]*$`)
	AddressPattern = regexp.MustCompile(`^\S.*$`)
	phonePattern   = regexp.MustCompile(`^\d{3,}$`)
	tagPattern     = regexp.MustCompile(`^[A-Za-z0-9]+$`)
	emailPattern   = regexp.MustCompile(
		`^[A-Za-z0-9]+([+_.-][A-Za-z0-9]+)*` +
			`@([A-Za-z0-9]([A-Za-z0-9-]*[A-Za-z0-9])?\.)*` +
			`[A-Za-z0-9][A-Za-z0-9-]*[A-Za-z0-9]$`)
)

// Constraint messages shown to the user when a value is rejected.
const (
	NameConstraints    = "Names should only contain alphanumeric characters and spaces, and it should not be blank"
	PhoneConstraints   = "Phone numbers should only contain numbers, and it should be at least 3 digits long"
	AddressConstraints = "Addresses can take any values, and it should not be blank"
	TagConstraints     = "Tags names should be alphanumeric"
	EmailConstraints   = `Emails should be of the format local-part@domain and adhere to the following constraints:
1. The local-part should only contain alphanumeric characters and these special characters, excluding the parentheses, (+_.-). The local-part may not start or end with any special characters.
2. This is followed by a '@' and then a domain name. The domain name is made up of domain labels separated by periods.
The domain name must:
    - end with a domain label at least 2 characters long
    - have each domain label start and end with alphanumeric characters
    - have each domain label consist of alphanumeric characters, separated only by hyphens, if any.`
)

// ConstraintError reports a value that is present but violates its field's format.
type ConstraintError struct {
	Field      string
	Value      string
	Constraint string
}

func (e *ConstraintError) Error() string {
	return e.Constraint
}

func newConstraintError(field, value, constraint string) *ConstraintError {
	return &ConstraintError{Field: field, Value: value, Constraint: constraint}
}

// Name is a validated person name. It is the identity key of a Person.
type Name string

// Phone is a validated phone number.
type Phone string

// Email is a validated email address.
type Email string

// Address is a validated postal address.
type Address string

// Tag is a validated single-word label.
type Tag string

// Remark is free-form text attached to a person. Any value is allowed.
type Remark string

// ValidName reports whether s is a valid name.
func ValidName(s string) bool { return NamePattern.MatchString(s) }

// ValidPhone reports whether s is a valid phone number.
func ValidPhone(s string) bool { return phonePattern.MatchString(s) }

// ValidEmail reports whether s is a valid email address.
func ValidEmail(s string) bool { return emailPattern.MatchString(s) }

// ValidAddress reports whether s is a valid address.
func ValidAddress(s string) bool { return AddressPattern.MatchString(s) }

// ValidTag reports whether s is a valid tag name.
func ValidTag(s string) bool { return tagPattern.MatchString(s) }

// NewName validates s and returns it as a Name.
func NewName(s string) (Name, error) {
	if !ValidName(s) {
		return "", newConstraintError(FieldName, s, NameConstraints)
	}
	return Name(s), nil
}

// NewPhone validates s and returns it as a Phone.
func NewPhone(s string) (Phone, error) {
	if !ValidPhone(s) {
		return "", newConstraintError(FieldPhone, s, PhoneConstraints)
	}
	return Phone(s), nil
}

// NewEmail validates s and returns it as an Email.
func NewEmail(s string) (Email, error) {
	if !ValidEmail(s) {
		return "", newConstraintError(FieldEmail, s, EmailConstraints)
	}
	return Email(s), nil
}

// NewAddress validates s and returns it as an Address.
func NewAddress(s string) (Address, error) {
	if !ValidAddress(s) {
		return "", newConstraintError(FieldAddress, s, AddressConstraints)
	}
	return Address(s), nil
}

// NewTag validates s and returns it as a Tag.
func NewTag(s string) (Tag, error) {
	if !ValidTag(s) {
		return "", newConstraintError(FieldTag, s, TagConstraints)
	}
	return Tag(s), nil
}

// String returns the tag in its display form, e.g. "[friends]".
func (t Tag) String() string {
	return fmt.Sprintf("[%s]", string(t))
}

// ContainsFold reports whether keyword occurs in s, ignoring case.
func ContainsFold(s, keyword string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(keyword))
}
