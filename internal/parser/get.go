package parser

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/aidanlsb/rolo/internal/commands"
)

var selectorPattern = regexp.MustCompile(`^[a-zA-Z]+/$`)

// ParseGet parses the field selectors of "get", e.g. "n/ e/".
func ParseGet(args string) (commands.Command, error) {
	selectors := strings.Split(strings.TrimSpace(args), " ")
	for _, sel := range selectors {
		if !selectorPattern.MatchString(strings.TrimSpace(sel)) {
			return nil, invalidFormat("get", fmt.Errorf("invalid field selector %q", sel))
		}
	}
	return &commands.GetCommand{Selectors: selectors}, nil
}
