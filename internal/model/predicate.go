package model

import (
	"cmp"
	"slices"
	"strings"
)

// PersonPredicate selects persons for the displayed list.
type PersonPredicate func(Person) bool

// AppointmentPredicate selects appointments for the displayed appointment list.
type AppointmentPredicate func(Appointment) bool

// PersonComparator orders the displayed list. A nil comparator keeps
// insertion order.
type PersonComparator func(a, b Person) int

// ShowAllPersons matches every person.
func ShowAllPersons(Person) bool { return true }

// ShowAllAppointments matches every appointment.
func ShowAllAppointments(Appointment) bool { return true }

// MasterPredicate selects which partition of the collection is displayed.
// The only values are ShowOnlyCurrent and ShowOnlyArchived.
type MasterPredicate struct {
	name string
	test func(Person) bool
}

var (
	// ShowOnlyCurrent displays persons that are not archived.
	ShowOnlyCurrent = MasterPredicate{name: "current", test: func(p Person) bool { return !p.Archived() }}
	// ShowOnlyArchived displays archived persons.
	ShowOnlyArchived = MasterPredicate{name: "archived", test: Person.Archived}
)

// Test reports whether p belongs to this partition. The zero value behaves
// as ShowOnlyCurrent.
func (m MasterPredicate) Test(p Person) bool {
	if m.test == nil {
		return ShowOnlyCurrent.test(p)
	}
	return m.test(p)
}

// IsArchived reports whether this is ShowOnlyArchived.
func (m MasterPredicate) IsArchived() bool { return m.name == ShowOnlyArchived.name }

func (m MasterPredicate) String() string {
	if m.name == "" {
		return ShowOnlyCurrent.name
	}
	return m.name
}

// FindPredicate matches persons against keyword lists, one per field.
// Keywords within a field are alternatives; fields are combined with AND.
// An empty list places no constraint on its field.
type FindPredicate struct {
	Names      []string
	Addresses  []string
	Priorities []Priority
}

// Test reports whether p satisfies every non-empty keyword list.
func (f FindPredicate) Test(p Person) bool {
	return matchesAny(string(p.Name()), f.Names) &&
		matchesAny(string(p.Address()), f.Addresses) &&
		(len(f.Priorities) == 0 || slices.Contains(f.Priorities, p.Priority()))
}

func matchesAny(value string, keywords []string) bool {
	if len(keywords) == 0 {
		return true
	}
	for _, kw := range keywords {
		if ContainsFold(value, kw) {
			return true
		}
	}
	return false
}

// Equal reports whether both predicates hold identical keyword lists.
func (f FindPredicate) Equal(other FindPredicate) bool {
	return slices.Equal(f.Names, other.Names) &&
		slices.Equal(f.Addresses, other.Addresses) &&
		slices.Equal(f.Priorities, other.Priorities)
}

// AppointmentsForNames matches appointments whose person name contains any
// of the keywords. No keywords matches everything.
func AppointmentsForNames(keywords []string) AppointmentPredicate {
	kws := slices.Clone(keywords)
	return func(a Appointment) bool {
		return matchesAny(string(a.Person), kws)
	}
}

// CompareByName orders persons by name, ignoring case.
func CompareByName(a, b Person) int {
	return cmp.Compare(strings.ToLower(string(a.Name())), strings.ToLower(string(b.Name())))
}

// CompareByAddress orders persons by address, ignoring case.
func CompareByAddress(a, b Person) int {
	return cmp.Compare(strings.ToLower(string(a.Address())), strings.ToLower(string(b.Address())))
}

// CompareByPriority puts higher priorities first.
func CompareByPriority(a, b Person) int {
	return cmp.Compare(b.Priority(), a.Priority())
}

// CompareAppointments orders appointments chronologically.
func CompareAppointments(a, b Appointment) int {
	if c := a.Start.Compare(b.Start); c != 0 {
		return c
	}
	return a.End.Compare(b.End)
}
