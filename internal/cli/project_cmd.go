package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newProjectCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "project",
		Short: "Inspect projects",
	}

	cmd.AddCommand(newProjectListCmd(app))

	return cmd
}

func newProjectListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the projects visible to the signed-in member",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := loginFromFlags(cmd.Flags(), app.WS); err != nil {
				return err
			}

			projects := app.WS.VisibleProjects()
			if len(projects) == 0 {
				fmt.Println("No projects visible.")
				return nil
			}

			users := app.WS.Users()
			for _, p := range projects {
				fmt.Printf("%-6s %-32s manager: %s\n", p.Key, p.Name, users.NameOf(p.ManagerID))
			}
			return nil
		},
	}
}
