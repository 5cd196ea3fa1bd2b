package model

import (
	"errors"
	"fmt"
	"slices"
)

var (
	// ErrDuplicatePerson indicates a person with the same identity already exists.
	ErrDuplicatePerson = errors.New("person already exists in the address book")
	// ErrPersonNotFound indicates the target person is not in the address book.
	ErrPersonNotFound = errors.New("person not found in the address book")
	// ErrAppointmentNotFound indicates an appointment index past the end of the list.
	ErrAppointmentNotFound = errors.New("appointment not found")
)

// AddressBook is the full collection: every person (current and archived)
// in insertion order, plus every appointment.
type AddressBook struct {
	persons      []Person
	appointments []Appointment
}

// NewAddressBook returns an empty address book.
func NewAddressBook() *AddressBook {
	return &AddressBook{}
}

// Clone returns an independent copy of the book.
func (b *AddressBook) Clone() *AddressBook {
	if b == nil {
		return NewAddressBook()
	}
	return &AddressBook{
		persons:      slices.Clone(b.persons),
		appointments: slices.Clone(b.appointments),
	}
}

// Persons returns a copy of all persons in insertion order.
func (b *AddressBook) Persons() []Person {
	return slices.Clone(b.persons)
}

// Appointments returns a copy of all appointments in insertion order.
func (b *AddressBook) Appointments() []Appointment {
	return slices.Clone(b.appointments)
}

// HasPerson reports whether a person with the same identity as p exists.
func (b *AddressBook) HasPerson(p Person) bool {
	return b.indexOf(p.Name()) >= 0
}

// FindPerson returns the person with the given name.
func (b *AddressBook) FindPerson(name Name) (Person, bool) {
	i := b.indexOf(name)
	if i < 0 {
		return Person{}, false
	}
	return b.persons[i], true
}

func (b *AddressBook) indexOf(name Name) int {
	return slices.IndexFunc(b.persons, func(p Person) bool { return p.Name() == name })
}

// AddPerson appends p. It fails if the identity is already taken.
func (b *AddressBook) AddPerson(p Person) error {
	if b.HasPerson(p) {
		return fmt.Errorf("%w: %s", ErrDuplicatePerson, p.Name())
	}
	b.persons = append(b.persons, p)
	return nil
}

// AddPersonAt inserts p at offset i of the full collection. Offsets past
// the end append.
func (b *AddressBook) AddPersonAt(p Person, i int) error {
	if b.HasPerson(p) {
		return fmt.Errorf("%w: %s", ErrDuplicatePerson, p.Name())
	}
	if i < 0 {
		i = 0
	}
	if i > len(b.persons) {
		i = len(b.persons)
	}
	b.persons = slices.Insert(b.persons, i, p)
	return nil
}

// SetPerson replaces target with edited, keeping its position. The edited
// identity must not collide with a different existing person.
func (b *AddressBook) SetPerson(target, edited Person) error {
	i := b.indexOf(target.Name())
	if i < 0 {
		return fmt.Errorf("%w: %s", ErrPersonNotFound, target.Name())
	}
	if !target.IsSamePerson(edited) && b.HasPerson(edited) {
		return fmt.Errorf("%w: %s", ErrDuplicatePerson, edited.Name())
	}
	b.persons[i] = edited
	return nil
}

// RemovePerson removes the person with p's identity.
func (b *AddressBook) RemovePerson(p Person) error {
	i := b.indexOf(p.Name())
	if i < 0 {
		return fmt.Errorf("%w: %s", ErrPersonNotFound, p.Name())
	}
	b.persons = slices.Delete(b.persons, i, i+1)
	return nil
}

// AddAppointment appends a.
func (b *AddressBook) AddAppointment(a Appointment) {
	b.appointments = append(b.appointments, a)
}

// RemoveAppointment removes the appointment with the given ID.
func (b *AddressBook) RemoveAppointment(id string) (Appointment, error) {
	i := slices.IndexFunc(b.appointments, func(a Appointment) bool { return a.ID == id })
	if i < 0 {
		return Appointment{}, fmt.Errorf("%w: %s", ErrAppointmentNotFound, id)
	}
	removed := b.appointments[i]
	b.appointments = slices.Delete(b.appointments, i, i+1)
	return removed, nil
}

// RenameAppointments points every appointment for oldName at newName.
// Returns the number of appointments updated.
func (b *AddressBook) RenameAppointments(oldName, newName Name) int {
	n := 0
	for i, a := range b.appointments {
		if a.Person == oldName {
			b.appointments[i] = a.WithPerson(newName)
			n++
		}
	}
	return n
}

// RemoveAppointmentsFor deletes every appointment for name.
// Returns the number removed.
func (b *AddressBook) RemoveAppointmentsFor(name Name) int {
	before := len(b.appointments)
	b.appointments = slices.DeleteFunc(b.appointments, func(a Appointment) bool { return a.Person == name })
	return before - len(b.appointments)
}
