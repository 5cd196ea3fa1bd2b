package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aidanlsb/rolo/internal/commands"
)

// helpCmd replaces cobra's help command. With no arguments it renders the
// command reference the shell's help command shows.
var helpCmd = &cobra.Command{
	Use:   "help [command]",
	Short: "Show the command reference, or help for one command",
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) > 0 {
			target, _, err := rootCmd.Find(args)
			if err != nil || target == rootCmd {
				return handleError(ErrUnknownCommand, fmt.Errorf("%s: %s", commands.MessageUnknownCommand, args[0]), "Run 'rolo help' for the command reference")
			}
			return target.Help()
		}

		if isJSONOutput() {
			outputSuccess(map[string]string{"help": commands.HelpMarkdown()}, nil)
			return nil
		}
		r := newRenderer(cmd.OutOrStdout())
		fmt.Fprint(r.out, r.helpText())
		return nil
	},
}

func init() {
	rootCmd.SetHelpCommand(helpCmd)
}
