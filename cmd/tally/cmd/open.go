package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/corey/tally/internal/app"
)

// openApp opens the project-scoped App for the current working directory.
// Callers must Close it.
func openApp() (*app.App, error) {
	return app.Open(projectRoot())
}

// readText joins positional args into the input text, or reads stdin when no
// args were given (so `cat mail.txt | tally classify` works).
func readText(args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	text := strings.TrimSpace(string(data))
	if text == "" {
		return "", fmt.Errorf("no input text (pass arguments or pipe via stdin)")
	}
	return text, nil
}
