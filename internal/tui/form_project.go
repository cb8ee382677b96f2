package tui

import (
	"strings"

	"github.com/ardiansyahp/siteboard/internal/domain"
	"github.com/ardiansyahp/siteboard/internal/tui/formatter"
	"github.com/ardiansyahp/siteboard/internal/workspace"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
)

// newProjectFormView creates a project owned by the current user. The
// creator is always part of the member set; the multi-select covers
// everyone else.
func newProjectFormView(session *Session) View {
	var (
		name    string
		key     string
		desc    string
		members []string
	)

	current, _ := session.WS.CurrentUser()
	memberOpts := make([]huh.Option[string], 0)
	for _, u := range session.WS.Users() {
		if u.ID == current.ID {
			continue
		}
		memberOpts = append(memberOpts, huh.NewOption(u.Name+" ("+string(u.Role)+")", u.ID))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Project Name").
				Placeholder("e.g. Medan Ring Road").
				Value(&name).
				Validate(requiredField("Project Name")),
			huh.NewInput().
				Title("Key").
				Placeholder("2-6 uppercase letters, e.g. MRR").
				Value(&key).
				Validate(func(s string) error {
					p := domain.Project{Key: strings.ToUpper(strings.TrimSpace(s))}
					return p.ValidateKey()
				}),
			huh.NewInput().
				Title("Description").
				Placeholder("What is being built?").
				Value(&desc),
			huh.NewMultiSelect[string]().
				Title("Members").
				Options(memberOpts...).
				Value(&members),
		),
	).WithTheme(siteboardHuhTheme()).WithShowHelp(false)

	done := func() tea.Cmd {
		p, ok := session.WS.CreateProject(workspace.ProjectDraft{
			Name:        name,
			Key:         strings.ToUpper(strings.TrimSpace(key)),
			Description: desc,
			MemberIDs:   members,
		})
		if !ok {
			return flash(formatter.StyleRed.Render("Could not create project."))
		}
		// The new project is already active; land on its board.
		return tea.Batch(
			replaceView(newBoardView(session)),
			flash(formatter.StyleGreen.Render("Created project "+p.Key)),
		)
	}

	return newWizardView(session, "New Project", form, done)
}
