package tui

import (
	"fmt"
	"strings"

	"github.com/ardiansyahp/siteboard/internal/board"
	"github.com/ardiansyahp/siteboard/internal/domain"
	"github.com/ardiansyahp/siteboard/internal/tui/formatter"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// dashboardView shows workload counts for the active project and the
// workspace notification feed.
type dashboardView struct {
	session *Session
}

func newDashboardView(session *Session) *dashboardView {
	return &dashboardView{session: session}
}

func (v *dashboardView) ID() ViewID    { return ViewDashboard }
func (v *dashboardView) Title() string { return "Dashboard" }

func (v *dashboardView) ShortHelp() []key.Binding { return nil }

func (v *dashboardView) Init() tea.Cmd { return nil }

func (v *dashboardView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return v, nil
}

func (v *dashboardView) View() string {
	if _, ok := v.session.WS.ActiveProject(); !ok {
		return renderNoProject(v.session)
	}

	issues := v.session.WS.VisibleIssues()
	cols := v.session.WS.Columns().Sorted()
	groups := board.GroupByColumn(issues, v.session.WS.Columns())

	var b strings.Builder
	b.WriteString("\n  " + formatter.Header("Dashboard") + "\n\n")

	b.WriteString("  " + formatter.Bold("By status") + "\n")
	for _, c := range cols {
		n := len(groups[c.ID])
		pct := 0.0
		if len(issues) > 0 {
			pct = float64(n) / float64(len(issues))
		}
		b.WriteString(fmt.Sprintf("  %s %s %s\n",
			formatter.Dim(formatter.PadRight(c.Title, 14)),
			formatter.RenderProgress(pct, 20),
			formatter.Dim(fmt.Sprintf("%d", n)),
		))
	}

	b.WriteString("\n  " + formatter.Bold("By priority") + "\n")
	for _, p := range []domain.Priority{
		domain.PriorityCritical, domain.PriorityHigh, domain.PriorityMedium, domain.PriorityLow,
	} {
		n := 0
		for _, is := range issues {
			if is.Priority == p {
				n++
			}
		}
		label := formatter.PriorityStyle(p).Render(formatter.PadRight(string(p), 12))
		b.WriteString(fmt.Sprintf("  %s %s\n", label, formatter.Dim(fmt.Sprintf("%d", n))))
	}

	b.WriteString("\n  " + formatter.Bold("Activity") + "\n")
	notes := v.session.WS.Notifications()
	if len(notes) == 0 {
		b.WriteString("  " + formatter.Dim("No recent activity.") + "\n")
	}
	for _, n := range notes {
		b.WriteString(fmt.Sprintf("  %s %s %s\n",
			formatter.StyleYellow.Render("•"),
			n.Text,
			formatter.Dim(n.Age),
		))
	}
	return b.String()
}
