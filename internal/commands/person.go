package commands

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/aidanlsb/rolo/internal/model"
)

// personAt resolves idx against the displayed person list.
func personAt(m model.Model, idx model.Index) (model.Person, error) {
	shown := m.FilteredPersons()
	if !idx.InBounds(len(shown)) {
		return model.Person{}, executionError(ErrCodeInvalidIndex, model.ErrInvalidIndex, MessageInvalidPersonIndex)
	}
	return shown[idx.ZeroBased()], nil
}

// replacePerson swaps target for edited and maps model errors to codes.
func replacePerson(m model.Model, target, edited model.Person) error {
	if err := m.SetPerson(target, edited); err != nil {
		switch {
		case errors.Is(err, model.ErrDuplicatePerson):
			return executionError(ErrCodeDuplicatePerson, err, MessageDuplicatePerson)
		case errors.Is(err, model.ErrPersonNotFound):
			return executionError(ErrCodePersonNotFound, err, "%s is not in the address book", target.Name())
		}
		return err
	}
	return nil
}

// AddCommand adds a new current person.
type AddCommand struct {
	Person model.Person
}

func (c *AddCommand) Execute(m model.Model) (Result, error) {
	if m.HasPerson(c.Person) {
		return Result{}, executionError(ErrCodeDuplicatePerson, model.ErrDuplicatePerson, MessageDuplicatePerson)
	}
	if err := m.AddPerson(c.Person.WithArchived(false)); err != nil {
		return Result{}, executionError(ErrCodeDuplicatePerson, err, MessageDuplicatePerson)
	}
	res := Feedback("New person added: %s", c.Person.Format())
	res.ShowPersons = true
	return res, nil
}

func (c *AddCommand) String() string {
	return fmt.Sprintf("AddCommand{toAdd=%s}", c.Person)
}

// EditDescriptor holds the fields an edit replaces. Nil fields are kept.
type EditDescriptor struct {
	Name     *model.Name
	Phone    *model.Phone
	Email    *model.Email
	Address  *model.Address
	Priority *model.Priority
	Remark   *model.Remark
	// Tags replaces every tag when non-nil. An empty slice clears them.
	Tags *[]model.Tag
}

// IsAnyFieldEdited reports whether at least one field is set.
func (d EditDescriptor) IsAnyFieldEdited() bool {
	return d.Name != nil || d.Phone != nil || d.Email != nil || d.Address != nil ||
		d.Priority != nil || d.Remark != nil || d.Tags != nil
}

// Apply returns a copy of p with the descriptor's fields applied.
func (d EditDescriptor) Apply(p model.Person) model.Person {
	f := p.Fields()
	if d.Name != nil {
		f.Name = *d.Name
	}
	if d.Phone != nil {
		f.Phone = *d.Phone
	}
	if d.Email != nil {
		f.Email = *d.Email
	}
	if d.Address != nil {
		f.Address = *d.Address
	}
	if d.Priority != nil {
		f.Priority = *d.Priority
	}
	if d.Remark != nil {
		f.Remark = *d.Remark
	}
	if d.Tags != nil {
		f.Tags = slices.Clone(*d.Tags)
	}
	return model.NewPerson(f)
}

// EditCommand edits the displayed person at Index.
type EditCommand struct {
	Index      model.Index
	Descriptor EditDescriptor
}

func (c *EditCommand) Execute(m model.Model) (Result, error) {
	target, err := personAt(m, c.Index)
	if err != nil {
		return Result{}, err
	}
	edited := c.Descriptor.Apply(target)
	if err := replacePerson(m, target, edited); err != nil {
		return Result{}, err
	}
	if edited.Name() != target.Name() {
		m.UpdateAppointments(target.Name(), edited.Name())
	}
	res := Feedback("Edited Person: %s", edited.Format())
	res.ShowPersons = true
	return res, nil
}

func (c *EditCommand) String() string {
	return fmt.Sprintf("EditCommand{index=%s}", c.Index)
}

// DeleteCommand deletes every displayed person at Targets.
type DeleteCommand struct {
	Targets []model.Index
}

func (c *DeleteCommand) Execute(m model.Model) (Result, error) {
	shown := m.FilteredPersons()
	for _, idx := range c.Targets {
		if !idx.InBounds(len(shown)) {
			return Result{}, executionError(ErrCodeInvalidIndex, model.ErrInvalidIndex, MessageInvalidPersonIndex)
		}
	}

	// Resolve against the one snapshot, last index first, before deleting
	// anything. Repeated indexes name the same person once.
	toDelete := make([]model.Person, 0, len(c.Targets))
	for i := len(c.Targets) - 1; i >= 0; i-- {
		p := shown[c.Targets[i].ZeroBased()]
		if slices.ContainsFunc(toDelete, p.IsSamePerson) {
			continue
		}
		toDelete = append(toDelete, p)
	}

	lines := make([]string, 0, len(toDelete))
	for _, p := range toDelete {
		if err := m.DeletePerson(p); err != nil {
			return Result{}, executionError(ErrCodePersonNotFound, err, "%s is not in the address book", p.Name())
		}
		m.DeleteAppointments(p.Name())
		lines = append(lines, p.Format())
	}
	res := Feedback("Deleted People: %s", strings.Join(lines, "\n"))
	res.ShowPersons = true
	return res, nil
}

// Equal reports whether both commands target the same indexes in the same order.
func (c *DeleteCommand) Equal(other *DeleteCommand) bool {
	if other == nil {
		return false
	}
	return slices.Equal(c.Targets, other.Targets)
}

func (c *DeleteCommand) String() string {
	return fmt.Sprintf("DeleteCommand{targetIndexes=%v}", c.Targets)
}

// FindCommand narrows the displayed list with a FindPredicate.
type FindCommand struct {
	Predicate model.FindPredicate
}

func (c *FindCommand) Execute(m model.Model) (Result, error) {
	m.UpdateFilteredPersons(c.Predicate.Test)
	res := Feedback(MessagePersonsListed, len(m.FilteredPersons()))
	res.ShowPersons = true
	return res, nil
}

func (c *FindCommand) String() string {
	return fmt.Sprintf("FindCommand{names=%v, addresses=%v, priorities=%v}",
		c.Predicate.Names, c.Predicate.Addresses, c.Predicate.Priorities)
}

// ArchiveCommand moves the displayed person at Index to the archive.
type ArchiveCommand struct {
	Index model.Index
}

func (c *ArchiveCommand) Execute(m model.Model) (Result, error) {
	target, err := personAt(m, c.Index)
	if err != nil {
		return Result{}, err
	}
	if target.Archived() {
		return Result{}, executionError(ErrCodeInvalidPersonState, nil, "%s is already archived", target.Name())
	}
	if err := replacePerson(m, target, target.WithArchived(true)); err != nil {
		return Result{}, err
	}
	res := Feedback("Archived Person: %s", target.Format())
	res.ShowPersons = true
	return res, nil
}

func (c *ArchiveCommand) String() string {
	return fmt.Sprintf("ArchiveCommand{index=%s}", c.Index)
}

// UnarchiveCommand restores the displayed archived person at Index.
type UnarchiveCommand struct {
	Index model.Index
}

func (c *UnarchiveCommand) Execute(m model.Model) (Result, error) {
	target, err := personAt(m, c.Index)
	if err != nil {
		return Result{}, err
	}
	if !target.Archived() {
		return Result{}, executionError(ErrCodeInvalidPersonState, nil, "%s is not archived", target.Name())
	}
	if err := replacePerson(m, target, target.WithArchived(false)); err != nil {
		return Result{}, err
	}
	res := Feedback("Unarchived Person: %s", target.Format())
	res.ShowPersons = true
	return res, nil
}

func (c *UnarchiveCommand) String() string {
	return fmt.Sprintf("UnarchiveCommand{index=%s}", c.Index)
}

// RemarkCommand replaces the remark of the displayed person at Index.
type RemarkCommand struct {
	Index  model.Index
	Remark model.Remark
}

func (c *RemarkCommand) Execute(m model.Model) (Result, error) {
	target, err := personAt(m, c.Index)
	if err != nil {
		return Result{}, err
	}
	edited := target.WithRemark(c.Remark)
	if err := replacePerson(m, target, edited); err != nil {
		return Result{}, err
	}
	msg := "Added remark to Person: %s"
	if c.Remark == "" {
		msg = "Removed remark from Person: %s"
	}
	res := Feedback(msg, edited.Format())
	res.ShowPersons = true
	return res, nil
}

func (c *RemarkCommand) String() string {
	return fmt.Sprintf("RemarkCommand{index=%s, remark=%q}", c.Index, c.Remark)
}
