package model

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// AppointmentTimeLayout is the layout used to display appointment times.
const AppointmentTimeLayout = "2006-01-02 15:04"

// ErrInvalidWindow is returned when an appointment does not end after it starts.
var ErrInvalidWindow = errors.New("appointment end time must be after its start time")

// Appointment is a scheduled slot with a person. The person is referenced
// by name only; renaming a person requires an explicit UpdateAppointments pass.
type Appointment struct {
	ID          string
	Person      Name
	Start       time.Time
	End         time.Time
	Description string
}

// NewAppointment validates the time window and assigns a fresh ID.
func NewAppointment(person Name, start, end time.Time, description string) (Appointment, error) {
	if !start.Before(end) {
		return Appointment{}, ErrInvalidWindow
	}
	return Appointment{
		ID:          uuid.NewString(),
		Person:      person,
		Start:       start,
		End:         end,
		Description: strings.TrimSpace(description),
	}, nil
}

// Overlaps reports whether the two time windows intersect. Windows that
// merely touch (one ends when the other starts) do not overlap.
func (a Appointment) Overlaps(other Appointment) bool {
	return a.Start.Before(other.End) && other.Start.Before(a.End)
}

// ConflictsWith reports whether a and other are for the same person and overlap.
func (a Appointment) ConflictsWith(other Appointment) bool {
	return a.Person == other.Person && a.Overlaps(other)
}

// WithPerson returns a copy of a referencing a different person name.
func (a Appointment) WithPerson(name Name) Appointment {
	a.Person = name
	return a
}

// Format renders the appointment on one line for command feedback.
func (a Appointment) Format() string {
	s := fmt.Sprintf("%s; From: %s; To: %s", a.Person,
		a.Start.Format(AppointmentTimeLayout), a.End.Format(AppointmentTimeLayout))
	if a.Description != "" {
		s += "; Description: " + a.Description
	}
	return s
}

func (a Appointment) String() string {
	return a.Format()
}
