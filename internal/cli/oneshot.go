package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aidanlsb/rolo/internal/commands"
)

// Commands that only make sense inside the shell.
var shellOnlyCommands = map[string]bool{
	"exit": true,
	"help": true,
}

var errClearNeedsForce = errors.New("clear removes every person and appointment; confirmation required")

// runOneShot executes a single registry command, e.g. `rolo find n/alice`.
// The arguments are joined back into the argument string the shell would
// have seen.
func runOneShot(name string, args []string, flags map[string]interface{}) error {
	if name == "clear" {
		if force, _ := flags["force"].(bool); !force {
			if !shouldPromptForConfirm() {
				return handleError(ErrConfirmationRequired, errClearNeedsForce, "Use --force to clear without a prompt")
			}
			if !promptForConfirm(os.Stdin, os.Stdout, "Clear the whole address book?") {
				fmt.Println("Cancelled.")
				return nil
			}
		}
	}

	s, err := openSession()
	if err != nil {
		return handleError(errorCode(err), err, "")
	}

	line := strings.TrimSpace(name + " " + strings.Join(args, " "))
	r := newRenderer(os.Stdout)
	outcome, err := s.Run(line)
	if err != nil {
		if outcome.Result.Feedback != "" && !jsonOutput {
			r.render(s.Model(), outcome)
		}
		return handleError(errorCode(err), err, "")
	}
	r.render(s.Model(), outcome)
	return nil
}

func registerOneShotCommands() {
	for _, name := range commands.AllCommandNames() {
		if shellOnlyCommands[name] {
			continue
		}
		cmd := commands.GenerateCobraCommand(name, runOneShot)
		cmd.GroupID = groupFor(name)
		rootCmd.AddCommand(cmd)
	}
}

func groupFor(name string) string {
	meta, _ := commands.GetCommandMeta(name)
	switch meta.Group {
	case "appointment":
		return "appointments"
	case "person":
		return "people"
	}
	return "manage"
}

func init() {
	rootCmd.AddGroup(
		&cobra.Group{ID: "people", Title: "People:"},
		&cobra.Group{ID: "appointments", Title: "Appointments:"},
		&cobra.Group{ID: "manage", Title: "Management:"},
	)
	registerOneShotCommands()
}
