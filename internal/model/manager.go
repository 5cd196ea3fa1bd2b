package model

import (
	"fmt"
	"slices"
)

// Model is the API commands execute against.
type Model interface {
	// AddressBook returns a snapshot of the full collection.
	AddressBook() *AddressBook
	// SetAddressBook replaces the full collection.
	SetAddressBook(book *AddressBook)

	HasPerson(p Person) bool
	// FindPerson looks a person up by identity key, in either partition.
	FindPerson(name Name) (Person, bool)
	AddPerson(p Person) error
	// AddPersonAt inserts p at offset i of the full collection.
	AddPersonAt(p Person, i int) error
	DeletePerson(target Person) error
	// SetPerson replaces target with edited. The edited identity must not
	// collide with another person.
	SetPerson(target, edited Person) error

	// FilteredPersons returns the displayed list: the active partition,
	// narrowed by the content predicate, ordered by the comparator.
	FilteredPersons() []Person
	UpdateFilteredPersons(pred PersonPredicate)
	SetMasterPredicate(master MasterPredicate)
	MasterPredicate() MasterPredicate
	UpdateSortOrder(cmp PersonComparator)

	// AddAppointment stores a. Callers check ConflictingAppointments first.
	AddAppointment(a Appointment)
	// UpdateAppointments renames the person on every appointment for oldName.
	UpdateAppointments(oldName, newName Name)
	// DeleteAppointment removes the displayed appointment at idx.
	DeleteAppointment(idx Index) (Appointment, error)
	// DeleteAppointments removes every appointment for name.
	DeleteAppointments(name Name)
	FilteredAppointments() []Appointment
	UpdateFilteredAppointments(pred AppointmentPredicate)
	// ConflictingAppointments returns stored appointments that conflict with candidate.
	ConflictingAppointments(candidate Appointment) []Appointment

	// Revision changes whenever the collection is mutated.
	Revision() uint64
}

// Manager is the in-memory Model. The displayed lists are recomputed from
// the book on every read and are never stored.
type Manager struct {
	book       *AddressBook
	master     MasterPredicate
	content    PersonPredicate
	comparator PersonComparator
	apptFilter AppointmentPredicate
	revision   uint64
}

var _ Model = (*Manager)(nil)

// NewManager wraps book. A nil book starts empty.
func NewManager(book *AddressBook) *Manager {
	if book == nil {
		book = NewAddressBook()
	}
	return &Manager{
		book:       book.Clone(),
		master:     ShowOnlyCurrent,
		content:    ShowAllPersons,
		apptFilter: ShowAllAppointments,
	}
}

func (m *Manager) touch() { m.revision++ }

// Revision implements Model.
func (m *Manager) Revision() uint64 { return m.revision }

// AddressBook implements Model.
func (m *Manager) AddressBook() *AddressBook { return m.book.Clone() }

// SetAddressBook implements Model.
func (m *Manager) SetAddressBook(book *AddressBook) {
	m.book = book.Clone()
	m.touch()
}

// HasPerson implements Model.
func (m *Manager) HasPerson(p Person) bool { return m.book.HasPerson(p) }

// FindPerson implements Model.
func (m *Manager) FindPerson(name Name) (Person, bool) { return m.book.FindPerson(name) }

// AddPerson implements Model. The view switches back to all persons so the
// new entry is visible, matching what `list` would show.
func (m *Manager) AddPerson(p Person) error {
	if err := m.book.AddPerson(p); err != nil {
		return err
	}
	m.content = ShowAllPersons
	m.touch()
	return nil
}

// AddPersonAt implements Model.
func (m *Manager) AddPersonAt(p Person, i int) error {
	if err := m.book.AddPersonAt(p, i); err != nil {
		return err
	}
	m.touch()
	return nil
}

// DeletePerson implements Model.
func (m *Manager) DeletePerson(target Person) error {
	if err := m.book.RemovePerson(target); err != nil {
		return err
	}
	m.touch()
	return nil
}

// SetPerson implements Model.
func (m *Manager) SetPerson(target, edited Person) error {
	if err := m.book.SetPerson(target, edited); err != nil {
		return err
	}
	m.touch()
	return nil
}

// FilteredPersons implements Model.
func (m *Manager) FilteredPersons() []Person {
	out := make([]Person, 0, len(m.book.persons))
	for _, p := range m.book.persons {
		if m.master.Test(p) && (m.content == nil || m.content(p)) {
			out = append(out, p)
		}
	}
	if m.comparator != nil {
		slices.SortStableFunc(out, m.comparator)
	}
	return out
}

// UpdateFilteredPersons implements Model.
func (m *Manager) UpdateFilteredPersons(pred PersonPredicate) {
	if pred == nil {
		pred = ShowAllPersons
	}
	m.content = pred
}

// SetMasterPredicate implements Model. Switching partitions clears the
// content predicate.
func (m *Manager) SetMasterPredicate(master MasterPredicate) {
	m.master = master
	m.content = ShowAllPersons
}

// MasterPredicate implements Model.
func (m *Manager) MasterPredicate() MasterPredicate { return m.master }

// UpdateSortOrder implements Model.
func (m *Manager) UpdateSortOrder(cmp PersonComparator) { m.comparator = cmp }

// AddAppointment implements Model.
func (m *Manager) AddAppointment(a Appointment) {
	m.book.AddAppointment(a)
	m.touch()
}

// UpdateAppointments implements Model.
func (m *Manager) UpdateAppointments(oldName, newName Name) {
	if m.book.RenameAppointments(oldName, newName) > 0 {
		m.touch()
	}
}

// DeleteAppointment implements Model.
func (m *Manager) DeleteAppointment(idx Index) (Appointment, error) {
	shown := m.FilteredAppointments()
	if !idx.InBounds(len(shown)) {
		return Appointment{}, fmt.Errorf("%w: %d", ErrAppointmentNotFound, idx.OneBased())
	}
	removed, err := m.book.RemoveAppointment(shown[idx.ZeroBased()].ID)
	if err != nil {
		return Appointment{}, err
	}
	m.touch()
	return removed, nil
}

// DeleteAppointments implements Model.
func (m *Manager) DeleteAppointments(name Name) {
	if m.book.RemoveAppointmentsFor(name) > 0 {
		m.touch()
	}
}

// FilteredAppointments implements Model. Appointments are shown in
// chronological order.
func (m *Manager) FilteredAppointments() []Appointment {
	out := make([]Appointment, 0, len(m.book.appointments))
	for _, a := range m.book.appointments {
		if m.apptFilter == nil || m.apptFilter(a) {
			out = append(out, a)
		}
	}
	slices.SortStableFunc(out, CompareAppointments)
	return out
}

// UpdateFilteredAppointments implements Model.
func (m *Manager) UpdateFilteredAppointments(pred AppointmentPredicate) {
	if pred == nil {
		pred = ShowAllAppointments
	}
	m.apptFilter = pred
}

// ConflictingAppointments implements Model.
func (m *Manager) ConflictingAppointments(candidate Appointment) []Appointment {
	var conflicts []Appointment
	for _, a := range m.book.appointments {
		if a.ID != candidate.ID && a.ConflictsWith(candidate) {
			conflicts = append(conflicts, a)
		}
	}
	return conflicts
}
