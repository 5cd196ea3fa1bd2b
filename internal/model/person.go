package model

import (
	"slices"
	"strings"
)

// Person is an immutable contact record. Every change produces a new value;
// slices returned by accessors are copies.
type Person struct {
	name     Name
	phone    Phone
	email    Email
	address  Address
	priority Priority
	tags     []Tag
	remark   Remark
	archived bool
}

// PersonFields carries the attributes used to construct a Person.
type PersonFields struct {
	Name     Name
	Phone    Phone
	Email    Email
	Address  Address
	Priority Priority
	Tags     []Tag
	Remark   Remark
	Archived bool
}

// NewPerson builds a Person from already-validated fields.
// Tags are de-duplicated and sorted.
func NewPerson(f PersonFields) Person {
	return Person{
		name:     f.Name,
		phone:    f.Phone,
		email:    f.Email,
		address:  f.Address,
		priority: f.Priority,
		tags:     normalizeTags(f.Tags),
		remark:   f.Remark,
		archived: f.Archived,
	}
}

func normalizeTags(tags []Tag) []Tag {
	if len(tags) == 0 {
		return nil
	}
	out := slices.Clone(tags)
	slices.Sort(out)
	return slices.Compact(out)
}

func (p Person) Name() Name         { return p.name }
func (p Person) Phone() Phone       { return p.phone }
func (p Person) Email() Email       { return p.email }
func (p Person) Address() Address   { return p.address }
func (p Person) Priority() Priority { return p.priority }
func (p Person) Remark() Remark     { return p.remark }
func (p Person) Archived() bool     { return p.archived }

// Tags returns a copy of the person's tags in sorted order.
func (p Person) Tags() []Tag { return slices.Clone(p.tags) }

// Fields returns the person's attributes, suitable for building an edited copy.
func (p Person) Fields() PersonFields {
	return PersonFields{
		Name:     p.name,
		Phone:    p.phone,
		Email:    p.email,
		Address:  p.address,
		Priority: p.priority,
		Tags:     p.Tags(),
		Remark:   p.remark,
		Archived: p.archived,
	}
}

// WithRemark returns a copy of p with the given remark.
func (p Person) WithRemark(r Remark) Person {
	p.tags = slices.Clone(p.tags)
	p.remark = r
	return p
}

// WithArchived returns a copy of p with the archived flag set to archived.
func (p Person) WithArchived(archived bool) Person {
	p.tags = slices.Clone(p.tags)
	p.archived = archived
	return p
}

// IsSamePerson reports whether two persons share an identity (the same name).
// This is weaker than Equal and is what uniqueness is checked against.
func (p Person) IsSamePerson(other Person) bool {
	return p.name == other.name
}

// Equal reports whether every field of p and other matches.
func (p Person) Equal(other Person) bool {
	return p.name == other.name &&
		p.phone == other.phone &&
		p.email == other.email &&
		p.address == other.address &&
		p.priority == other.priority &&
		p.remark == other.remark &&
		p.archived == other.archived &&
		slices.Equal(p.tags, other.tags)
}

// Format renders the person on one line for command feedback, e.g.
// "Alex Yeoh; Phone: 8743; Email: alex@example.com; Address: ...; Priority: HIGH; Tags: [friends]".
func (p Person) Format() string {
	var b strings.Builder
	b.WriteString(string(p.name))
	b.WriteString("; Phone: ")
	b.WriteString(string(p.phone))
	b.WriteString("; Email: ")
	b.WriteString(string(p.email))
	b.WriteString("; Address: ")
	b.WriteString(string(p.address))
	b.WriteString("; Priority: ")
	b.WriteString(p.priority.String())
	if p.remark != "" {
		b.WriteString("; Remark: ")
		b.WriteString(string(p.remark))
	}
	b.WriteString("; Tags: ")
	for _, t := range p.tags {
		b.WriteString(t.String())
	}
	return b.String()
}

// String implements fmt.Stringer.
func (p Person) String() string {
	return p.Format()
}
