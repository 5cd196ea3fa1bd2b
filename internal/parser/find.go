package parser

import (
	"strings"

	"github.com/aidanlsb/rolo/internal/commands"
	"github.com/aidanlsb/rolo/internal/model"
	"github.com/aidanlsb/rolo/internal/syntax"
)

// ParseFind parses the arguments of "find".
func ParseFind(args string) (commands.Command, error) {
	if strings.TrimSpace(args) == "" {
		return nil, invalidFormat("find", nil)
	}

	argMap := Tokenize(args, syntax.PersonPrefixes...)
	if argMap.Preamble() != "" || hasAny(argMap, syntax.Phone, syntax.Email, syntax.Remark, syntax.Tag) {
		return nil, invalidFormat("find", nil)
	}

	names := splitKeywords(argMap.AllValues(syntax.Name))
	if !allMatch(names, model.NamePattern) {
		return nil, constraintFailure("find", &model.ConstraintError{Field: model.FieldName, Constraint: model.NameConstraints})
	}

	addresses := splitKeywords(argMap.AllValues(syntax.Address))
	if !allMatch(addresses, model.AddressPattern) {
		return nil, constraintFailure("find", &model.ConstraintError{Field: model.FieldAddress, Constraint: model.AddressConstraints})
	}

	var priorities []model.Priority
	for _, word := range splitWords(argMap.AllValues(syntax.Priority)) {
		p, err := model.ParsePriority(word)
		if err != nil {
			return nil, constraintFailure("find", err)
		}
		priorities = append(priorities, p)
	}

	return &commands.FindCommand{Predicate: model.FindPredicate{
		Names:      names,
		Addresses:  addresses,
		Priorities: priorities,
	}}, nil
}

func hasAny(m *ArgumentMultimap, prefixes ...syntax.Prefix) bool {
	for _, p := range prefixes {
		if m.Has(p) {
			return true
		}
	}
	return false
}
