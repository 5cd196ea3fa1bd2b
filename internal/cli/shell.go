package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/aidanlsb/rolo/internal/ui"
)

// runShell reads command lines from in until EOF or exit. Errors are
// reported and the loop continues. The prompt and banner are only shown
// when interactive.
func runShell(s *Session, in io.Reader, r *renderer, interactive bool) error {
	if interactive && !r.json {
		fmt.Fprintln(r.out, ui.Header("rolo")+" "+ui.Hint(s.Path()))
		fmt.Fprintln(r.out, ui.Hint("Type help to see all commands, exit to quit."))
	}

	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for {
		if interactive && !r.json {
			fmt.Fprint(r.out, ui.AccentBold.Render("> "))
		}
		if !scanner.Scan() {
			break
		}
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}

		outcome, err := s.Run(line)
		// A command that ran but failed to save still shows its result.
		if outcome.Result.Feedback != "" {
			r.render(s.Model(), outcome)
		}
		if err != nil {
			r.renderError(err)
			continue
		}
		if outcome.Result.Exit {
			return nil
		}
	}
	return scanner.Err()
}
