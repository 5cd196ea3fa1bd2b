package commands

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/aidanlsb/rolo/internal/model"
)

// ScheduleCommand books an appointment with an existing person.
type ScheduleCommand struct {
	Person      model.Name
	Start       time.Time
	End         time.Time
	Description string
}

func (c *ScheduleCommand) Execute(m model.Model) (Result, error) {
	if _, ok := m.FindPerson(c.Person); !ok {
		return Result{}, executionError(ErrCodePersonNotFound, model.ErrPersonNotFound,
			"%s is not in the address book", c.Person)
	}
	appt, err := model.NewAppointment(c.Person, c.Start, c.End, c.Description)
	if err != nil {
		if errors.Is(err, model.ErrInvalidWindow) {
			return Result{}, executionError(ErrCodeInvalidAppointment, err, "Appointment end time must be after its start time")
		}
		return Result{}, err
	}
	if conflicts := m.ConflictingAppointments(appt); len(conflicts) > 0 {
		lines := make([]string, len(conflicts))
		for i, a := range conflicts {
			lines[i] = a.Format()
		}
		return Result{}, executionError(ErrCodeAppointmentConflict, nil,
			"This appointment conflicts with:\n%s", strings.Join(lines, "\n"))
	}
	m.AddAppointment(appt)
	res := Feedback("New appointment scheduled: %s", appt.Format())
	res.ShowAppointments = true
	return res, nil
}

func (c *ScheduleCommand) String() string {
	return fmt.Sprintf("ScheduleCommand{person=%s, from=%s, to=%s}", c.Person,
		c.Start.Format(model.AppointmentTimeLayout), c.End.Format(model.AppointmentTimeLayout))
}

// CancelCommand removes the displayed appointment at Index.
type CancelCommand struct {
	Index model.Index
}

func (c *CancelCommand) Execute(m model.Model) (Result, error) {
	removed, err := m.DeleteAppointment(c.Index)
	if err != nil {
		if errors.Is(err, model.ErrAppointmentNotFound) {
			return Result{}, executionError(ErrCodeInvalidIndex, err, MessageInvalidAppointmentIdx)
		}
		return Result{}, err
	}
	res := Feedback("Cancelled appointment: %s", removed.Format())
	res.ShowAppointments = true
	return res, nil
}

func (c *CancelCommand) String() string {
	return fmt.Sprintf("CancelCommand{index=%s}", c.Index)
}

// AppointmentsCommand shows appointments, optionally only those whose
// person name contains one of Keywords.
type AppointmentsCommand struct {
	Keywords []string
}

func (c *AppointmentsCommand) Execute(m model.Model) (Result, error) {
	m.UpdateFilteredAppointments(model.AppointmentsForNames(c.Keywords))
	res := Feedback(MessageAppointmentsListed, len(m.FilteredAppointments()))
	res.ShowAppointments = true
	return res, nil
}

func (c *AppointmentsCommand) String() string {
	return fmt.Sprintf("AppointmentsCommand{names=%v}", c.Keywords)
}
