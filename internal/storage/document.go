package storage

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/aidanlsb/rolo/internal/model"
)

// document is the on-disk shape shared by the JSON and YAML backends.
type document struct {
	Persons         []personRecord      `json:"persons" yaml:"persons"`
	ArchivedPersons []personRecord      `json:"archivedPersons" yaml:"archivedPersons"`
	Appointments    []appointmentRecord `json:"appointments,omitempty" yaml:"appointments,omitempty"`
}

type personRecord struct {
	Name     string   `json:"name" yaml:"name"`
	Phone    string   `json:"phone" yaml:"phone"`
	Email    string   `json:"email" yaml:"email"`
	Address  string   `json:"address" yaml:"address"`
	Priority string   `json:"priority,omitempty" yaml:"priority,omitempty"`
	Remark   string   `json:"remark,omitempty" yaml:"remark,omitempty"`
	Tags     []string `json:"tags" yaml:"tags"`
}

type appointmentRecord struct {
	ID          string    `json:"id" yaml:"id"`
	Person      string    `json:"person" yaml:"person"`
	Start       time.Time `json:"start" yaml:"start"`
	End         time.Time `json:"end" yaml:"end"`
	Description string    `json:"description,omitempty" yaml:"description,omitempty"`
}

func newDocument(book *model.AddressBook) document {
	doc := document{
		Persons:         []personRecord{},
		ArchivedPersons: []personRecord{},
	}
	for _, p := range book.Persons() {
		rec := newPersonRecord(p)
		if p.Archived() {
			doc.ArchivedPersons = append(doc.ArchivedPersons, rec)
		} else {
			doc.Persons = append(doc.Persons, rec)
		}
	}
	for _, a := range book.Appointments() {
		doc.Appointments = append(doc.Appointments, newAppointmentRecord(a))
	}
	return doc
}

func newPersonRecord(p model.Person) personRecord {
	tags := make([]string, 0, len(p.Tags()))
	for _, t := range p.Tags() {
		tags = append(tags, string(t))
	}
	return personRecord{
		Name:     string(p.Name()),
		Phone:    string(p.Phone()),
		Email:    string(p.Email()),
		Address:  string(p.Address()),
		Priority: p.Priority().String(),
		Remark:   string(p.Remark()),
		Tags:     tags,
	}
}

func newAppointmentRecord(a model.Appointment) appointmentRecord {
	return appointmentRecord{
		ID:          a.ID,
		Person:      string(a.Person),
		Start:       a.Start,
		End:         a.End,
		Description: a.Description,
	}
}

// toPerson validates the record. archived marks which list it came from.
func (r personRecord) toPerson(archived bool) (model.Person, error) {
	var f model.PersonFields
	var err error
	if f.Name, err = model.NewName(r.Name); err != nil {
		return model.Person{}, fieldError(model.FieldName, err)
	}
	if f.Phone, err = model.NewPhone(r.Phone); err != nil {
		return model.Person{}, fieldError(model.FieldPhone, err)
	}
	if f.Email, err = model.NewEmail(r.Email); err != nil {
		return model.Person{}, fieldError(model.FieldEmail, err)
	}
	if f.Address, err = model.NewAddress(r.Address); err != nil {
		return model.Person{}, fieldError(model.FieldAddress, err)
	}
	if r.Priority != "" {
		if f.Priority, err = model.ParsePriority(r.Priority); err != nil {
			return model.Person{}, fieldError(model.FieldPriority, err)
		}
	}
	for _, raw := range r.Tags {
		tag, err := model.NewTag(raw)
		if err != nil {
			return model.Person{}, fieldError(model.FieldTag, err)
		}
		f.Tags = append(f.Tags, tag)
	}
	f.Remark = model.Remark(r.Remark)
	f.Archived = archived
	return model.NewPerson(f), nil
}

func fieldError(field string, err error) error {
	return fmt.Errorf("%w: %s: %v", ErrInvalidData, field, err)
}

func (r appointmentRecord) toAppointment() (model.Appointment, error) {
	if !r.Start.Before(r.End) {
		return model.Appointment{}, fmt.Errorf("%w: appointment %s: %v", ErrInvalidData, r.ID, model.ErrInvalidWindow)
	}
	id := r.ID
	if id == "" {
		id = uuid.NewString()
	}
	return model.Appointment{
		ID:          id,
		Person:      model.Name(r.Person),
		Start:       r.Start,
		End:         r.End,
		Description: r.Description,
	}, nil
}

// buildBook assembles a book from current then archived persons and the
// appointments, rejecting duplicates and dangling appointments.
func buildBook(current, archived []model.Person, appointments []model.Appointment) (*model.AddressBook, error) {
	book := model.NewAddressBook()
	for _, p := range append(current, archived...) {
		if err := book.AddPerson(p); err != nil {
			return nil, ErrDuplicatePerson
		}
	}
	for _, a := range appointments {
		if _, ok := book.FindPerson(a.Person); !ok {
			return nil, fmt.Errorf("%w: appointment %s refers to unknown person %q", ErrInvalidData, a.ID, a.Person)
		}
		book.AddAppointment(a)
	}
	return book, nil
}

func (d document) toBook() (*model.AddressBook, error) {
	current, err := toPersons(d.Persons, false)
	if err != nil {
		return nil, err
	}
	archived, err := toPersons(d.ArchivedPersons, true)
	if err != nil {
		return nil, err
	}
	appointments := make([]model.Appointment, 0, len(d.Appointments))
	for _, rec := range d.Appointments {
		a, err := rec.toAppointment()
		if err != nil {
			return nil, err
		}
		appointments = append(appointments, a)
	}
	return buildBook(current, archived, appointments)
}

func toPersons(records []personRecord, archived bool) ([]model.Person, error) {
	out := make([]model.Person, 0, len(records))
	for _, rec := range records {
		p, err := rec.toPerson(archived)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}
