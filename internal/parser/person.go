package parser

import (
	"strings"

	"github.com/aidanlsb/rolo/internal/commands"
	"github.com/aidanlsb/rolo/internal/model"
	"github.com/aidanlsb/rolo/internal/syntax"
)

var singleValued = []syntax.Prefix{
	syntax.Name, syntax.Phone, syntax.Email, syntax.Address, syntax.Priority, syntax.Remark,
}

// ParseAdd parses "add n/NAME p/PHONE e/EMAIL a/ADDRESS [pr/] [r/] [t/]...".
func ParseAdd(args string) (commands.Command, error) {
	argMap := Tokenize(args, syntax.PersonPrefixes...)
	for _, required := range []syntax.Prefix{syntax.Name, syntax.Phone, syntax.Email, syntax.Address} {
		if !argMap.Has(required) {
			return nil, invalidFormat("add", nil)
		}
	}
	if argMap.Preamble() != "" {
		return nil, invalidFormat("add", nil)
	}
	if err := argMap.VerifyNoDuplicatePrefixes(singleValued...); err != nil {
		return nil, &ParseError{Message: err.Error(), Usage: "add", Err: err}
	}

	fields, err := personFields(argMap)
	if err != nil {
		return nil, constraintFailure("add", err)
	}
	return &commands.AddCommand{Person: model.NewPerson(fields)}, nil
}

func personFields(argMap *ArgumentMultimap) (model.PersonFields, error) {
	var f model.PersonFields
	var err error

	value := func(p syntax.Prefix) string {
		v, _ := argMap.Value(p)
		return v
	}
	if f.Name, err = model.NewName(value(syntax.Name)); err != nil {
		return f, err
	}
	if f.Phone, err = model.NewPhone(value(syntax.Phone)); err != nil {
		return f, err
	}
	if f.Email, err = model.NewEmail(value(syntax.Email)); err != nil {
		return f, err
	}
	if f.Address, err = model.NewAddress(value(syntax.Address)); err != nil {
		return f, err
	}
	if v, ok := argMap.Value(syntax.Priority); ok {
		if f.Priority, err = model.ParsePriority(v); err != nil {
			return f, err
		}
	}
	f.Remark = model.Remark(value(syntax.Remark))
	if f.Tags, err = parseTags(argMap.AllValues(syntax.Tag)); err != nil {
		return f, err
	}
	return f, nil
}

// ParseEdit parses "edit INDEX [n/] [p/] [e/] [a/] [pr/] [r/] [t/]...".
func ParseEdit(args string) (commands.Command, error) {
	argMap := Tokenize(args, syntax.PersonPrefixes...)
	index, err := parseIndex(argMap.Preamble())
	if err != nil {
		return nil, invalidFormat("edit", err)
	}
	if err := argMap.VerifyNoDuplicatePrefixes(singleValued...); err != nil {
		return nil, &ParseError{Message: err.Error(), Usage: "edit", Err: err}
	}

	var d commands.EditDescriptor
	if v, ok := argMap.Value(syntax.Name); ok {
		name, err := model.NewName(v)
		if err != nil {
			return nil, constraintFailure("edit", err)
		}
		d.Name = &name
	}
	if v, ok := argMap.Value(syntax.Phone); ok {
		phone, err := model.NewPhone(v)
		if err != nil {
			return nil, constraintFailure("edit", err)
		}
		d.Phone = &phone
	}
	if v, ok := argMap.Value(syntax.Email); ok {
		email, err := model.NewEmail(v)
		if err != nil {
			return nil, constraintFailure("edit", err)
		}
		d.Email = &email
	}
	if v, ok := argMap.Value(syntax.Address); ok {
		address, err := model.NewAddress(v)
		if err != nil {
			return nil, constraintFailure("edit", err)
		}
		d.Address = &address
	}
	if v, ok := argMap.Value(syntax.Priority); ok {
		priority, err := model.ParsePriority(v)
		if err != nil {
			return nil, constraintFailure("edit", err)
		}
		d.Priority = &priority
	}
	if v, ok := argMap.Value(syntax.Remark); ok {
		remark := model.Remark(v)
		d.Remark = &remark
	}
	if argMap.Has(syntax.Tag) {
		values := argMap.AllValues(syntax.Tag)
		tags := []model.Tag{}
		// A lone empty t/ clears every tag.
		if !(len(values) == 1 && values[0] == "") {
			if tags, err = parseTags(values); err != nil {
				return nil, constraintFailure("edit", err)
			}
		}
		d.Tags = &tags
	}

	if !d.IsAnyFieldEdited() {
		return nil, &ParseError{Message: "At least one field to edit must be provided.", Usage: "edit"}
	}
	return &commands.EditCommand{Index: index, Descriptor: d}, nil
}

// ParseDelete parses "delete INDEXES".
func ParseDelete(args string) (commands.Command, error) {
	targets, err := parseIndexes(args)
	if err != nil {
		return nil, invalidFormat("delete", err)
	}
	return &commands.DeleteCommand{Targets: targets}, nil
}

// ParseRemark parses "remark INDEX r/[REMARK]".
func ParseRemark(args string) (commands.Command, error) {
	argMap := Tokenize(args, syntax.Remark)
	index, err := parseIndex(argMap.Preamble())
	if err != nil {
		return nil, invalidFormat("remark", err)
	}
	remark, ok := argMap.Value(syntax.Remark)
	if !ok {
		return nil, invalidFormat("remark", nil)
	}
	return &commands.RemarkCommand{Index: index, Remark: model.Remark(remark)}, nil
}

// ParseArchive parses "archive INDEX".
func ParseArchive(args string) (commands.Command, error) {
	index, err := parseIndex(args)
	if err != nil {
		return nil, invalidFormat("archive", err)
	}
	return &commands.ArchiveCommand{Index: index}, nil
}

// ParseUnarchive parses "unarchive INDEX".
func ParseUnarchive(args string) (commands.Command, error) {
	index, err := parseIndex(args)
	if err != nil {
		return nil, invalidFormat("unarchive", err)
	}
	return &commands.UnarchiveCommand{Index: index}, nil
}

// ParseSort parses "sort [n/|a/|pr/]". No field restores insertion order.
func ParseSort(args string) (commands.Command, error) {
	switch strings.ToLower(strings.TrimSpace(args)) {
	case "":
		return &commands.SortCommand{}, nil
	case string(syntax.Name):
		return &commands.SortCommand{Field: "name", Comparator: model.CompareByName}, nil
	case string(syntax.Address):
		return &commands.SortCommand{Field: "address", Comparator: model.CompareByAddress}, nil
	case string(syntax.Priority):
		return &commands.SortCommand{Field: "priority", Comparator: model.CompareByPriority}, nil
	}
	return nil, invalidFormat("sort", nil)
}
