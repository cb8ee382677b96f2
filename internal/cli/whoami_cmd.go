package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newWhoamiCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the signed-in member and their access",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := loginFromFlags(cmd.Flags(), app.WS); err != nil {
				return err
			}
			u, _ := app.WS.CurrentUser()
			caps := app.WS.Capabilities()

			fmt.Printf("%s (%s)\n", u.Name, u.Role)
			fmt.Printf("  read-only:       %v\n", caps.ReadOnly)
			fmt.Printf("  manage settings: %v\n", caps.CanManageSettings)
			fmt.Printf("  create projects: %v\n", caps.CanCreateProject)
			return nil
		},
	}
}
