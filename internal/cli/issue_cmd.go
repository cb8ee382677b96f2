package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newIssueCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "issue",
		Short: "Inspect and move issues",
	}

	cmd.AddCommand(
		newIssueListCmd(app),
		newIssueMoveCmd(app),
	)

	return cmd
}

func newIssueListCmd(app *App) *cobra.Command {
	var search string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List issues in the active project",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := loginFromFlags(cmd.Flags(), app.WS); err != nil {
				return err
			}
			if _, ok := app.WS.ActiveProject(); !ok {
				fmt.Println("No project visible to this member.")
				return nil
			}
			app.WS.SetSearch(search)

			issues := app.WS.VisibleIssues()
			if len(issues) == 0 {
				fmt.Println("No matching issues.")
				return nil
			}

			cols := app.WS.Columns()
			users := app.WS.Users()
			for _, is := range issues {
				status := is.Status
				if c, ok := cols.ByID(is.Status); ok {
					status = c.Title
				}
				fmt.Printf("%-10s %-44s %-12s %-8s %s\n",
					is.Key, is.Title, status, is.Priority, users.NameOf(is.AssigneeID))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&search, "search", "", "Filter by title or key substring")

	return cmd
}

func newIssueMoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "move <issue-key> <column-id>",
		Short: "Move an issue to another board column",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := loginFromFlags(cmd.Flags(), app.WS); err != nil {
				return err
			}

			is, ok := app.WS.IssueByKey(args[0])
			if !ok {
				return fmt.Errorf("issue not found: %q", args[0])
			}
			col, ok := app.WS.Columns().ByID(args[1])
			if !ok {
				return fmt.Errorf("unknown column %q", args[1])
			}

			if !app.WS.MoveIssue(is.ID, col.ID) {
				return fmt.Errorf("move rejected (read-only role?)")
			}
			fmt.Printf("%s → %s\n", is.Key, col.Title)
			return nil
		},
	}
}
