// Command podbot is the CLI adapter for the podbot CORE library: it parses
// argv, resolves configuration, and dispatches to the API Facade, mapping
// CommandOutcome and library errors to process exit codes.
package main

import (
	"fmt"
	"os"

	"github.com/leynos/podbot/internal/cmd/root"
	"github.com/leynos/podbot/internal/cmdutil"
)

func main() {
	f := cmdutil.New()
	cmd := root.NewCmdRoot(f)

	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(f.Stderr, err)
		f.CloseConnector()
		os.Exit(cmdutil.ExitCodeForError(err))
	}

	f.CloseConnector()
	os.Exit(f.ExitCode)
}
