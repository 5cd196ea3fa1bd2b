// Package testutil provides reusable fixtures and helpers for rolo tests.
package testutil

import (
	"time"

	"github.com/aidanlsb/rolo/internal/model"
)

// PersonBuilder builds model.Person values with sensible defaults.
type PersonBuilder struct {
	fields model.PersonFields
}

// NewPerson starts a builder with default field values.
func NewPerson() *PersonBuilder {
	return &PersonBuilder{fields: model.PersonFields{
		Name:     "Amy Bee",
		Phone:    "85355255",
		Email:    "amy@gmail.com",
		Address:  "123, Jurong West Ave 6, #08-111",
		Priority: model.PriorityNone,
	}}
}

// From starts a builder with p's fields.
func From(p model.Person) *PersonBuilder {
	return &PersonBuilder{fields: p.Fields()}
}

func (b *PersonBuilder) WithName(name string) *PersonBuilder {
	b.fields.Name = model.Name(name)
	return b
}

func (b *PersonBuilder) WithPhone(phone string) *PersonBuilder {
	b.fields.Phone = model.Phone(phone)
	return b
}

func (b *PersonBuilder) WithEmail(email string) *PersonBuilder {
	b.fields.Email = model.Email(email)
	return b
}

func (b *PersonBuilder) WithAddress(address string) *PersonBuilder {
	b.fields.Address = model.Address(address)
	return b
}

func (b *PersonBuilder) WithPriority(p model.Priority) *PersonBuilder {
	b.fields.Priority = p
	return b
}

func (b *PersonBuilder) WithRemark(remark string) *PersonBuilder {
	b.fields.Remark = model.Remark(remark)
	return b
}

func (b *PersonBuilder) WithTags(tags ...string) *PersonBuilder {
	b.fields.Tags = nil
	for _, t := range tags {
		b.fields.Tags = append(b.fields.Tags, model.Tag(t))
	}
	return b
}

func (b *PersonBuilder) Archived() *PersonBuilder {
	b.fields.Archived = true
	return b
}

// Build returns the person.
func (b *PersonBuilder) Build() model.Person {
	return model.NewPerson(b.fields)
}

// Typical persons shared across tests.
var (
	Alice = NewPerson().WithName("Alice Pauline").WithPhone("94351253").
		WithEmail("alice@example.com").WithAddress("123, Jurong West Ave 6, #08-111").
		WithPriority(model.PriorityHigh).WithTags("friends").Build()
	Benson = NewPerson().WithName("Benson Meier").WithPhone("98765432").
		WithEmail("johnd@example.com").WithAddress("311, Clementi Ave 2, #02-25").
		WithPriority(model.PriorityMedium).WithTags("owesMoney", "friends").Build()
	Carl = NewPerson().WithName("Carl Kurz").WithPhone("95352563").
		WithEmail("heinz@example.com").WithAddress("wall street").Build()
	Daniel = NewPerson().WithName("Daniel Meier").WithPhone("87652533").
		WithEmail("cornelia@example.com").WithAddress("10th street").
		WithPriority(model.PriorityLow).WithTags("friends").Build()
	Elle = NewPerson().WithName("Elle Meyer").WithPhone("9482224").
		WithEmail("werner@example.com").WithAddress("michegan ave").Build()
	Fiona = NewPerson().WithName("Fiona Kunz").WithPhone("9482427").
		WithEmail("lydia@example.com").WithAddress("little tokyo").
		WithPriority(model.PriorityHigh).Build()
	George = NewPerson().WithName("George Best").WithPhone("9482442").
		WithEmail("anna@example.com").WithAddress("4th street").Build()

	// Hoon is archived.
	Hoon = NewPerson().WithName("Hoon Meier").WithPhone("8482424").
		WithEmail("stefan@example.com").WithAddress("little india").Archived().Build()
)

// TypicalPersons returns the current (non-archived) fixture persons in order.
func TypicalPersons() []model.Person {
	return []model.Person{Alice, Benson, Carl, Daniel, Elle, Fiona, George}
}

// TypicalAddressBook returns a book holding TypicalPersons plus Hoon (archived).
func TypicalAddressBook() *model.AddressBook {
	book := model.NewAddressBook()
	for _, p := range append(TypicalPersons(), Hoon) {
		if err := book.AddPerson(p); err != nil {
			panic(err)
		}
	}
	return book
}

// Appointment builds an appointment for name starting at start and lasting d.
func Appointment(name string, start time.Time, d time.Duration) model.Appointment {
	a, err := model.NewAppointment(model.Name(name), start, start.Add(d), "")
	if err != nil {
		panic(err)
	}
	return a
}

// At returns a fixed UTC time on 2026-10-14 at the given hour and minute.
func At(hour, minute int) time.Time {
	return time.Date(2026, time.October, 14, hour, minute, 0, 0, time.UTC)
}
