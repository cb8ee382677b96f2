package cli

import (
	"fmt"
	"strings"

	"github.com/ardiansyahp/siteboard/internal/tui"
	"github.com/ardiansyahp/siteboard/internal/workspace"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// App holds the wired application state used by CLI commands.
type App struct {
	WS      *workspace.Workspace
	Suggest tui.Suggester

	// IsInteractive reports whether stdin is a terminal; the root
	// command only starts the TUI when it is.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "siteboard" command and registers
// all subcommands against the provided App. Running the root command
// itself starts the interactive board.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "siteboard",
		Short: "Project tracking board for construction teams",
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive != nil && !app.IsInteractive() {
				return fmt.Errorf("stdin is not a terminal; use a subcommand (see --help)")
			}
			if user, _ := cmd.Flags().GetString("user"); user != "" {
				if err := loginFromFlags(cmd.Flags(), app.WS); err != nil {
					return err
				}
			}
			session := &tui.Session{WS: app.WS, Suggest: app.Suggest}
			_, err := tui.NewProgram(session).Run()
			return err
		},
	}

	root.PersistentFlags().String("user", "", "Sign in as this member (id or name)")

	root.AddCommand(
		newWhoamiCmd(app),
		newProjectCmd(app),
		newIssueCmd(app),
	)

	return root
}

// loginFromFlags signs in the member named by the --user flag. The
// value matches a user id first, then a case-insensitive name.
func loginFromFlags(flags *pflag.FlagSet, ws *workspace.Workspace) error {
	input, err := flags.GetString("user")
	if err != nil {
		return err
	}
	if input == "" {
		return fmt.Errorf("--user is required for this command")
	}

	if ws.Login(input) {
		return nil
	}
	for _, u := range ws.Users() {
		if strings.EqualFold(u.Name, input) {
			ws.Login(u.ID)
			return nil
		}
	}
	return fmt.Errorf("unknown user %q", input)
}
