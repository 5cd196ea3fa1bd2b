package commands

import (
	"fmt"

	"github.com/aidanlsb/rolo/internal/model"
)

// Command is one parsed user intent.
type Command interface {
	// Execute runs the command against m. Failures are *ExecutionError
	// values and leave m unchanged.
	Execute(m model.Model) (Result, error)
	fmt.Stringer
}

// Result is what a command hands back to the presentation layer.
type Result struct {
	Feedback string `json:"feedback"`

	// ShowHelp asks the front end to display the command reference.
	ShowHelp bool `json:"show_help,omitempty"`
	// Exit asks the front end to stop accepting commands.
	Exit bool `json:"exit,omitempty"`
	// ShowPersons asks the front end to display the person list.
	ShowPersons bool `json:"show_persons,omitempty"`
	// ShowAppointments asks the front end to display the appointment list.
	ShowAppointments bool `json:"show_appointments,omitempty"`
}

// Feedback returns a Result carrying only a message.
func Feedback(format string, args ...interface{}) Result {
	return Result{Feedback: fmt.Sprintf(format, args...)}
}

// User-facing messages shared across commands and parsers.
const (
	MessageUnknownCommand        = "Unknown command"
	MessageInvalidCommandFormat  = "Invalid command format! \n%s"
	MessageInvalidPersonIndex    = "The person index provided is invalid"
	MessageInvalidAppointmentIdx = "The appointment index provided is invalid"
	MessagePersonsListed         = "%d persons listed!"
	MessageAppointmentsListed    = "%d appointments listed!"
	MessageDuplicatePerson       = "This person already exists in the address book"
)
