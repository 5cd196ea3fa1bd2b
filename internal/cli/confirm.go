package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"

	"github.com/aidanlsb/rolo/internal/ui"
)

func shouldPromptForConfirm() bool {
	if isJSONOutput() {
		return false
	}
	return isatty.IsTerminal(os.Stdout.Fd()) && isatty.IsTerminal(os.Stdin.Fd())
}

// promptForConfirm asks a yes/no question on out and reads the answer from
// in. Anything but y/yes is a no.
func promptForConfirm(in io.Reader, out io.Writer, message string) bool {
	if message == "" {
		message = "Apply changes?"
	}
	fmt.Fprintf(out, "%s %s ", message, ui.Hint("[y/N]"))
	reader := bufio.NewReader(in)
	response, _ := reader.ReadString('\n')
	response = strings.TrimSpace(strings.ToLower(response))
	return response == "y" || response == "yes"
}
