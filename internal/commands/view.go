package commands

import (
	"fmt"

	"github.com/aidanlsb/rolo/internal/model"
)

// ListCommand shows every current person.
type ListCommand struct{}

func (ListCommand) Execute(m model.Model) (Result, error) {
	m.SetMasterPredicate(model.ShowOnlyCurrent)
	res := Feedback("Listed all persons")
	res.ShowPersons = true
	return res, nil
}

func (ListCommand) String() string { return "ListCommand" }

// ListArchiveCommand shows every archived person.
type ListArchiveCommand struct{}

func (ListArchiveCommand) Execute(m model.Model) (Result, error) {
	m.SetMasterPredicate(model.ShowOnlyArchived)
	res := Feedback("Listed all archived persons")
	res.ShowPersons = true
	return res, nil
}

func (ListArchiveCommand) String() string { return "ListArchiveCommand" }

// SortCommand orders the displayed list. A nil Comparator restores
// insertion order.
type SortCommand struct {
	Field      string
	Comparator model.PersonComparator
}

func (c *SortCommand) Execute(m model.Model) (Result, error) {
	m.UpdateSortOrder(c.Comparator)
	res := Feedback("Sorted persons by %s", c.describe())
	res.ShowPersons = true
	return res, nil
}

func (c *SortCommand) describe() string {
	if c.Comparator == nil || c.Field == "" {
		return "insertion order"
	}
	return c.Field
}

func (c *SortCommand) String() string {
	return fmt.Sprintf("SortCommand{by=%s}", c.describe())
}

// ClearCommand empties the address book.
type ClearCommand struct{}

func (ClearCommand) Execute(m model.Model) (Result, error) {
	m.SetAddressBook(model.NewAddressBook())
	res := Feedback("Address book has been cleared!")
	res.ShowPersons = true
	return res, nil
}

func (ClearCommand) String() string { return "ClearCommand" }

// HelpCommand asks the front end to show the command reference.
type HelpCommand struct{}

func (HelpCommand) Execute(model.Model) (Result, error) {
	return Result{Feedback: "Opened help window.", ShowHelp: true}, nil
}

func (HelpCommand) String() string { return "HelpCommand" }

// ExitCommand asks the front end to stop.
type ExitCommand struct{}

func (ExitCommand) Execute(model.Model) (Result, error) {
	return Result{Feedback: "Exiting Address Book as requested ...", Exit: true}, nil
}

func (ExitCommand) String() string { return "ExitCommand" }
