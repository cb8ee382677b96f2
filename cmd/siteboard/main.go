package main

import (
	"fmt"
	"os"

	"github.com/ardiansyahp/siteboard/internal/cli"
	"github.com/ardiansyahp/siteboard/internal/suggest"
	"github.com/ardiansyahp/siteboard/internal/workspace"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ws := workspace.Seed(workspace.WithDiagnostics(os.Stderr))

	app := &cli.App{WS: ws}

	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	// Text generation is wired only when credentials are configured;
	// the UI hides its suggestion affordances otherwise.
	cfg := suggest.LoadConfig()
	if cfg.Enabled() {
		var observer suggest.Observer = suggest.NoopObserver{}
		if cfg.LogCalls {
			observer = suggest.NewLogObserver(os.Stderr)
		}
		app.Suggest = suggest.NewService(suggest.NewClient(cfg, observer))
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
