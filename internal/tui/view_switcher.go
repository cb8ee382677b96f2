package tui

import (
	"fmt"
	"strings"

	"github.com/ardiansyahp/siteboard/internal/tui/formatter"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// switcherView lists the projects visible to the current user and
// activates the selected one.
type switcherView struct {
	session *Session
	cursor  int
}

func newSwitcherView(session *Session) *switcherView {
	v := &switcherView{session: session}
	if p, ok := session.WS.ActiveProject(); ok {
		for i, vp := range session.WS.VisibleProjects() {
			if vp.ID == p.ID {
				v.cursor = i
				break
			}
		}
	}
	return v
}

func (v *switcherView) ID() ViewID    { return ViewSwitcher }
func (v *switcherView) Title() string { return "Projects" }

func (v *switcherView) ShortHelp() []key.Binding {
	hints := []key.Binding{
		key.NewBinding(key.WithKeys("up", "down"), key.WithHelp("↑↓", "project")),
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open")),
	}
	if v.session.WS.Capabilities().CanCreateProject {
		hints = append(hints, key.NewBinding(key.WithKeys("N"), key.WithHelp("N", "new project")))
	}
	return hints
}

func (v *switcherView) Init() tea.Cmd { return nil }

func (v *switcherView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	projects := v.session.WS.VisibleProjects()

	switch msg := msg.(type) {
	case refreshViewMsg:
		if v.cursor >= len(projects) && len(projects) > 0 {
			v.cursor = len(projects) - 1
		}
		return v, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if v.cursor > 0 {
				v.cursor--
			}
		case "down", "j":
			if v.cursor < len(projects)-1 {
				v.cursor++
			}
		case "enter":
			if v.cursor < len(projects) {
				p := projects[v.cursor]
				if v.session.WS.SetActiveProject(p.ID) {
					return v, tea.Batch(
						replaceView(newBoardView(v.session)),
						flash(formatter.Dim("Switched to "+p.Name)),
					)
				}
			}
		}
	}
	return v, nil
}

func (v *switcherView) View() string {
	var b strings.Builder
	b.WriteString("\n  " + formatter.Header("Projects") + "\n\n")

	projects := v.session.WS.VisibleProjects()
	if len(projects) == 0 {
		b.WriteString("  " + formatter.Dim("No projects are visible to you.") + "\n")
		return b.String()
	}

	active, _ := v.session.WS.ActiveProject()
	users := v.session.WS.Users()

	for i, p := range projects {
		cursor := "  "
		nameStyle := formatter.StyleFg
		if i == v.cursor {
			cursor = formatter.StyleGreen.Render("▸ ")
			nameStyle = formatter.StyleBold
		}
		marker := "  "
		if p.ID == active.ID {
			marker = formatter.StyleGreen.Render("● ")
		}
		b.WriteString(fmt.Sprintf("  %s%s%s %s  %s\n",
			cursor,
			marker,
			formatter.StyleYellow.Render(formatter.PadRight(p.Key, 6)),
			nameStyle.Render(formatter.PadRight(p.Name, 32)),
			formatter.Dim("mgr: "+users.NameOf(p.ManagerID)),
		))
		if p.Description != "" {
			b.WriteString("      " + formatter.Dim(p.Description) + "\n")
		}
	}
	return b.String()
}
