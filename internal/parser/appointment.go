package parser

import (
	"time"

	"github.com/aidanlsb/rolo/internal/commands"
	"github.com/aidanlsb/rolo/internal/dates"
	"github.com/aidanlsb/rolo/internal/model"
	"github.com/aidanlsb/rolo/internal/syntax"
)

// now is the reference for relative appointment times.
var now = time.Now

// ParseSchedule parses "schedule n/NAME from/START to/END [d/DESCRIPTION]".
func ParseSchedule(args string) (commands.Command, error) {
	argMap := Tokenize(args, syntax.Name, syntax.From, syntax.To, syntax.Description)
	if argMap.Preamble() != "" || !argMap.Has(syntax.Name) || !argMap.Has(syntax.From) || !argMap.Has(syntax.To) {
		return nil, invalidFormat("schedule", nil)
	}
	if err := argMap.VerifyNoDuplicatePrefixes(syntax.Name, syntax.From, syntax.To, syntax.Description); err != nil {
		return nil, &ParseError{Message: err.Error(), Usage: "schedule", Err: err}
	}

	nameValue, _ := argMap.Value(syntax.Name)
	name, err := model.NewName(nameValue)
	if err != nil {
		return nil, constraintFailure("schedule", err)
	}

	ref := now()
	fromValue, _ := argMap.Value(syntax.From)
	start, err := dates.ParseDatetime(fromValue, ref)
	if err != nil {
		return nil, constraintFailure("schedule", err)
	}
	toValue, _ := argMap.Value(syntax.To)
	end, err := dates.ParseDatetime(toValue, ref)
	if err != nil {
		return nil, constraintFailure("schedule", err)
	}

	description, _ := argMap.Value(syntax.Description)
	return &commands.ScheduleCommand{Person: name, Start: start, End: end, Description: description}, nil
}

// ParseCancel parses "cancel INDEX".
func ParseCancel(args string) (commands.Command, error) {
	index, err := parseIndex(args)
	if err != nil {
		return nil, invalidFormat("cancel", err)
	}
	return &commands.CancelCommand{Index: index}, nil
}

// ParseAppointments parses "appointments [n/KEYWORD[|MORE]...]".
func ParseAppointments(args string) (commands.Command, error) {
	argMap := Tokenize(args, syntax.Name)
	if argMap.Preamble() != "" {
		return nil, invalidFormat("appointments", nil)
	}
	keywords := splitKeywords(argMap.AllValues(syntax.Name))
	if !allMatch(keywords, model.NamePattern) {
		return nil, constraintFailure("appointments", &model.ConstraintError{Field: model.FieldName, Constraint: model.NameConstraints})
	}
	return &commands.AppointmentsCommand{Keywords: keywords}, nil
}
