package tui

import (
	"fmt"
	"strings"

	"github.com/ardiansyahp/siteboard/internal/domain"
	"github.com/ardiansyahp/siteboard/internal/tui/formatter"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// roadmapView summarizes the active project: overall completion and
// the epics driving it.
type roadmapView struct {
	session *Session
}

func newRoadmapView(session *Session) *roadmapView {
	return &roadmapView{session: session}
}

func (v *roadmapView) ID() ViewID    { return ViewRoadmap }
func (v *roadmapView) Title() string { return "Roadmap" }

func (v *roadmapView) ShortHelp() []key.Binding { return nil }

func (v *roadmapView) Init() tea.Cmd { return nil }

func (v *roadmapView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return v, nil
}

func (v *roadmapView) View() string {
	if _, ok := v.session.WS.ActiveProject(); !ok {
		return renderNoProject(v.session)
	}

	issues := v.session.WS.VisibleIssues()
	cols := v.session.WS.Columns().Sorted()

	doneID := ""
	if len(cols) > 0 {
		doneID = cols[len(cols)-1].ID
	}

	done := 0
	var epics []domain.Issue
	for _, is := range issues {
		if is.Status == doneID {
			done++
		}
		if is.Type == domain.TypeEpic {
			epics = append(epics, is)
		}
	}

	var b strings.Builder
	b.WriteString("\n  " + formatter.Header("Roadmap") + "\n\n")

	pct := 0.0
	if len(issues) > 0 {
		pct = float64(done) / float64(len(issues))
	}
	b.WriteString(fmt.Sprintf("  %s %s %s\n\n",
		formatter.Bold("Delivery"),
		formatter.RenderProgress(pct, 30),
		formatter.Dim(fmt.Sprintf("%d/%d complete", done, len(issues))),
	))

	b.WriteString("  " + formatter.Bold("Epics") + "\n")
	if len(epics) == 0 {
		b.WriteString("  " + formatter.Dim("No epics in this project yet.") + "\n")
		return b.String()
	}

	users := v.session.WS.Users()
	for _, e := range epics {
		status := e.Status
		if c, ok := v.session.WS.Columns().ByID(e.Status); ok {
			status = c.Title
		}
		b.WriteString(fmt.Sprintf("  %s %s  %s %s %s\n",
			formatter.TypeIcon(e.Type),
			formatter.StyleGreen.Render(formatter.PadRight(e.Key, 10)),
			formatter.PadRight(e.Title, 42),
			formatter.Dim(formatter.PadRight(status, 13)),
			formatter.Dim(users.NameOf(e.AssigneeID)),
		))
	}
	return b.String()
}
