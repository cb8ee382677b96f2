package tui

import (
	"fmt"
	"strings"

	"github.com/ardiansyahp/siteboard/internal/tui/formatter"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// settingsView shows workspace membership and workflow configuration.
// Only roles with the settings capability may open it; others get a
// permission notice instead of the content.
type settingsView struct {
	session *Session
}

func newSettingsView(session *Session) *settingsView {
	return &settingsView{session: session}
}

func (v *settingsView) ID() ViewID    { return ViewSettings }
func (v *settingsView) Title() string { return "Settings" }

func (v *settingsView) ShortHelp() []key.Binding { return nil }

func (v *settingsView) Init() tea.Cmd { return nil }

func (v *settingsView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return v, nil
}

func (v *settingsView) View() string {
	var b strings.Builder
	b.WriteString("\n  " + formatter.Header("Settings") + "\n\n")

	if !v.session.WS.Capabilities().CanManageSettings {
		b.WriteString("  " + formatter.StyleRed.Render("Access denied.") + "\n")
		b.WriteString("  " + formatter.Dim("Your role does not include workspace administration.") + "\n")
		return b.String()
	}

	b.WriteString("  " + formatter.Bold("Members") + "\n")
	for _, u := range v.session.WS.Users() {
		b.WriteString(fmt.Sprintf("  %s %s\n",
			formatter.PadRight(u.Name, 20),
			formatter.RolePill(u.Role),
		))
	}

	b.WriteString("\n  " + formatter.Bold("Workflow") + "\n")
	for _, c := range v.session.WS.Columns().Sorted() {
		b.WriteString(fmt.Sprintf("  %d. %s\n", c.Order, c.Title))
	}

	if p, ok := v.session.WS.ActiveProject(); ok {
		users := v.session.WS.Users()
		b.WriteString("\n  " + formatter.Bold("Project "+p.Key) + "\n")
		b.WriteString("  " + formatter.Dim("Manager: ") + users.NameOf(p.ManagerID) + "\n")
		names := make([]string, 0, len(p.MemberIDs))
		for _, id := range p.MemberIDs {
			names = append(names, users.NameOf(id))
		}
		b.WriteString("  " + formatter.Dim("Members: ") + strings.Join(names, ", ") + "\n")
	}
	return b.String()
}
