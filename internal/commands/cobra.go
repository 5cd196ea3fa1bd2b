package commands

import (
	"github.com/spf13/cobra"

	"github.com/aidanlsb/rolo/internal/shellquote"
)

// Handler executes a command word with its raw arguments and flag values.
// The arguments are joined back into one argument string by the caller,
// so `rolo find n/alice a/clementi` behaves like typing the same line in
// the shell.
type Handler func(name string, args []string, flags map[string]interface{}) error

// GenerateCobraCommand creates a Cobra command from registry metadata.
// This reduces boilerplate by generating Use, Short, Long, and flags from
// the registry, while keeping the handler logic separate.
func GenerateCobraCommand(name string, handler Handler) *cobra.Command {
	meta, ok := Registry[name]
	if !ok {
		return nil
	}

	use := name
	if meta.Parameters != "" {
		use += " " + meta.Parameters
	}

	longDesc := meta.Description
	if meta.LongDesc != "" {
		longDesc += "\n\n" + meta.LongDesc
	}
	if len(meta.Examples) > 0 {
		longDesc += "\n\nExamples:\n"
		for _, ex := range meta.Examples {
			longDesc += "  rolo " + name
			if ex != "" {
				longDesc += " " + shellquote.QuoteIfNeeded(ex)
			}
			longDesc += "\n"
		}
	}

	cmd := &cobra.Command{
		Use:   use,
		Short: meta.Description,
		Long:  longDesc,
		Args:  cobra.ArbitraryArgs,
	}

	for _, flag := range meta.Flags {
		switch flag.Type {
		case FlagTypeBool:
			cmd.Flags().BoolP(flag.Name, flag.Short, flag.Default == "true", flag.Description)
		default:
			cmd.Flags().StringP(flag.Name, flag.Short, flag.Default, flag.Description)
		}
	}

	if handler != nil {
		cmd.RunE = func(cmd *cobra.Command, args []string) error {
			flags := make(map[string]interface{})
			for _, flag := range meta.Flags {
				switch flag.Type {
				case FlagTypeBool:
					val, _ := cmd.Flags().GetBool(flag.Name)
					flags[flag.Name] = val
				default:
					val, _ := cmd.Flags().GetString(flag.Name)
					flags[flag.Name] = val
				}
			}
			return handler(name, args, flags)
		}
	}

	return cmd
}
