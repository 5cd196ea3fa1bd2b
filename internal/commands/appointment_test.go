package commands_test

import (
	"strings"
	"testing"
	"time"

	"github.com/aidanlsb/rolo/internal/commands"
	"github.com/aidanlsb/rolo/internal/model"
	"github.com/aidanlsb/rolo/internal/testutil"
)

func schedule(name string, from, to time.Time) *commands.ScheduleCommand {
	return &commands.ScheduleCommand{Person: model.Name(name), Start: from, End: to}
}

func TestScheduleCommand(t *testing.T) {
	m := typicalModel()
	res, err := schedule("Alice Pauline", testutil.At(9, 0), testutil.At(10, 0)).Execute(m)
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if !res.ShowAppointments {
		t.Error("ShowAppointments = false")
	}
	if want := "New appointment scheduled: Alice Pauline; From: 2026-10-14 09:00; To: 2026-10-14 10:00"; res.Feedback != want {
		t.Errorf("feedback = %q, want %q", res.Feedback, want)
	}

	tests := []struct {
		name     string
		cmd      *commands.ScheduleCommand
		wantCode string
	}{
		{"overlap", schedule("Alice Pauline", testutil.At(9, 30), testutil.At(11, 0)), commands.ErrCodeAppointmentConflict},
		{"enclosing", schedule("Alice Pauline", testutil.At(8, 0), testutil.At(12, 0)), commands.ErrCodeAppointmentConflict},
		{"touching", schedule("Alice Pauline", testutil.At(10, 0), testutil.At(11, 0)), ""},
		{"other person", schedule("Carl Kurz", testutil.At(9, 0), testutil.At(10, 0)), ""},
		{"unknown person", schedule("Nobody Here", testutil.At(13, 0), testutil.At(14, 0)), commands.ErrCodePersonNotFound},
		{"inverted window", schedule("Carl Kurz", testutil.At(15, 0), testutil.At(14, 0)), commands.ErrCodeInvalidAppointment},
		{"archived person", schedule("Hoon Meier", testutil.At(9, 0), testutil.At(10, 0)), ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := len(m.FilteredAppointments())
			_, err := tt.cmd.Execute(m)
			if tt.wantCode == "" {
				if err != nil {
					t.Fatalf("Execute: %v", err)
				}
				if len(m.FilteredAppointments()) != before+1 {
					t.Errorf("appointment not stored")
				}
				return
			}
			mustFailWith(t, err, tt.wantCode)
			if len(m.FilteredAppointments()) != before {
				t.Errorf("failed schedule changed the appointment list")
			}
		})
	}
}

func TestScheduleConflictListsEntries(t *testing.T) {
	m := typicalModel()
	m.AddAppointment(testutil.Appointment("Alice Pauline", testutil.At(9, 0), time.Hour))
	_, err := schedule("Alice Pauline", testutil.At(9, 15), testutil.At(9, 45)).Execute(m)
	mustFailWith(t, err, commands.ErrCodeAppointmentConflict)
	if !strings.Contains(err.Error(), "Alice Pauline; From: 2026-10-14 09:00; To: 2026-10-14 10:00") {
		t.Errorf("message = %q", err.Error())
	}
}

func TestCancelCommand(t *testing.T) {
	m := typicalModel()
	m.AddAppointment(testutil.Appointment("Carl Kurz", testutil.At(14, 0), time.Hour))
	m.AddAppointment(testutil.Appointment("Alice Pauline", testutil.At(9, 0), time.Hour))

	// Displayed chronologically, so index 2 is Carl.
	res, err := (&commands.CancelCommand{Index: idx(2)}).Execute(m)
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if !strings.HasPrefix(res.Feedback, "Cancelled appointment: Carl Kurz") {
		t.Errorf("feedback = %q", res.Feedback)
	}

	_, err = (&commands.CancelCommand{Index: idx(2)}).Execute(m)
	mustFailWith(t, err, commands.ErrCodeInvalidIndex)
}

func TestAppointmentsCommand(t *testing.T) {
	m := typicalModel()
	m.AddAppointment(testutil.Appointment("Carl Kurz", testutil.At(14, 0), time.Hour))
	m.AddAppointment(testutil.Appointment("Alice Pauline", testutil.At(9, 0), time.Hour))
	m.AddAppointment(testutil.Appointment("Benson Meier", testutil.At(11, 0), time.Hour))

	res, err := (&commands.AppointmentsCommand{Keywords: []string{"alice", "kurz"}}).Execute(m)
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if res.Feedback != "2 appointments listed!" {
		t.Errorf("feedback = %q", res.Feedback)
	}

	res, err = (&commands.AppointmentsCommand{}).Execute(m)
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if res.Feedback != "3 appointments listed!" {
		t.Errorf("feedback = %q", res.Feedback)
	}
}
