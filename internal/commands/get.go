package commands

import (
	"fmt"
	"strings"

	"github.com/aidanlsb/rolo/internal/model"
	"github.com/aidanlsb/rolo/internal/syntax"
)

// fieldSelectors maps a get selector to the field it projects.
var fieldSelectors = map[syntax.Prefix]func(model.Person) string{
	syntax.Name:     func(p model.Person) string { return string(p.Name()) },
	syntax.Phone:    func(p model.Person) string { return string(p.Phone()) },
	syntax.Email:    func(p model.Person) string { return string(p.Email()) },
	syntax.Address:  func(p model.Person) string { return string(p.Address()) },
	syntax.Priority: func(p model.Person) string { return p.Priority().String() },
	syntax.Remark:   func(p model.Person) string { return string(p.Remark()) },
	syntax.Tag: func(p model.Person) string {
		var b strings.Builder
		for _, t := range p.Tags() {
			b.WriteString(t.String())
		}
		return b.String()
	},
}

// GetCommand projects selected fields of every displayed person.
type GetCommand struct {
	Selectors []string
}

func (c *GetCommand) Execute(m model.Model) (Result, error) {
	project := make([]func(model.Person) string, 0, len(c.Selectors))
	for _, sel := range c.Selectors {
		fn, ok := fieldSelectors[syntax.Prefix(strings.ToLower(sel))]
		if !ok {
			return Result{}, executionError(ErrCodeUnknownField, nil, "Unknown field: %s", sel)
		}
		project = append(project, fn)
	}

	shown := m.FilteredPersons()
	if len(shown) == 0 {
		return Feedback(MessagePersonsListed, 0), nil
	}
	lines := make([]string, 0, len(shown))
	for _, n := range model.NumberedList(shown) {
		values := make([]string, len(project))
		for i, fn := range project {
			values[i] = fn(n.Item)
		}
		lines = append(lines, fmt.Sprintf("%d. %s", n.Num, strings.Join(values, "; ")))
	}
	return Feedback("%s", strings.Join(lines, "\n")), nil
}

func (c *GetCommand) String() string {
	return fmt.Sprintf("GetCommand{fields=%v}", c.Selectors)
}
