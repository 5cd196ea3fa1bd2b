package cli

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/aidanlsb/rolo/internal/commands"
	"github.com/aidanlsb/rolo/internal/model"
	"github.com/aidanlsb/rolo/internal/ui"
)

// renderer writes command outcomes as text or JSON envelopes.
type renderer struct {
	out     io.Writer
	display *ui.DisplayContext
	json    bool
}

type personView struct {
	Name     string   `json:"name"`
	Phone    string   `json:"phone"`
	Email    string   `json:"email"`
	Address  string   `json:"address"`
	Priority string   `json:"priority"`
	Remark   string   `json:"remark,omitempty"`
	Tags     []string `json:"tags"`
	Archived bool     `json:"archived"`
}

type appointmentView struct {
	ID          string `json:"id"`
	Person      string `json:"person"`
	Start       string `json:"start"`
	End         string `json:"end"`
	Description string `json:"description,omitempty"`
}

type commandData struct {
	Command      string            `json:"command"`
	Feedback     string            `json:"feedback"`
	Persons      []personView      `json:"persons,omitempty"`
	Appointments []appointmentView `json:"appointments,omitempty"`
	Help         string            `json:"help,omitempty"`
	Exit         bool              `json:"exit,omitempty"`
}

func toPersonView(p model.Person) personView {
	tags := make([]string, 0, len(p.Tags()))
	for _, t := range p.Tags() {
		tags = append(tags, string(t))
	}
	return personView{
		Name:     string(p.Name()),
		Phone:    string(p.Phone()),
		Email:    string(p.Email()),
		Address:  string(p.Address()),
		Priority: strings.ToLower(p.Priority().String()),
		Remark:   string(p.Remark()),
		Tags:     tags,
		Archived: p.Archived(),
	}
}

func toAppointmentView(a model.Appointment) appointmentView {
	return appointmentView{
		ID:          a.ID,
		Person:      string(a.Person),
		Start:       a.Start.Format(time.RFC3339),
		End:         a.End.Format(time.RFC3339),
		Description: a.Description,
	}
}

func (r *renderer) render(m model.Model, o Outcome) {
	if r.json {
		r.renderJSON(m, o)
		return
	}

	res := o.Result
	fmt.Fprintln(r.out, res.Feedback)
	if res.ShowHelp {
		fmt.Fprint(r.out, r.helpText())
	}
	if res.ShowPersons {
		if table := ui.PersonTable(r.display, m.FilteredPersons()); table != "" {
			fmt.Fprintln(r.out, table)
		}
	}
	if res.ShowAppointments {
		if table := ui.AppointmentTable(r.display, m.FilteredAppointments()); table != "" {
			fmt.Fprintln(r.out, table)
		}
	}
}

func (r *renderer) renderJSON(m model.Model, o Outcome) {
	res := o.Result
	data := commandData{
		Command:  o.Command.String(),
		Feedback: res.Feedback,
		Exit:     res.Exit,
	}
	var meta *Meta
	if res.ShowHelp {
		data.Help = commands.HelpMarkdown()
	}
	if res.ShowPersons {
		shown := m.FilteredPersons()
		for _, p := range shown {
			data.Persons = append(data.Persons, toPersonView(p))
		}
		meta = &Meta{Count: len(shown)}
	}
	if res.ShowAppointments {
		shown := m.FilteredAppointments()
		for _, a := range shown {
			data.Appointments = append(data.Appointments, toAppointmentView(a))
		}
		meta = &Meta{Count: len(shown)}
	}
	writeJSON(r.out, Response{OK: true, Data: data, Meta: meta})
}

func (r *renderer) renderError(err error) {
	if r.json {
		writeJSON(r.out, Response{Error: &ErrorInfo{Code: errorCode(err), Message: err.Error()}})
		return
	}
	fmt.Fprintln(r.out, ui.Error(err.Error()))
}

// helpText renders the command reference, styled on a terminal and plain
// otherwise.
func (r *renderer) helpText() string {
	reference := commands.HelpMarkdown()
	if !r.display.IsTTY {
		return ui.PlainMarkdown(reference)
	}
	rendered, err := ui.RenderMarkdown(reference, r.display.TermWidth)
	if err != nil {
		return ui.PlainMarkdown(reference)
	}
	return rendered
}
