package tui

import (
	"fmt"
	"strings"

	"github.com/ardiansyahp/siteboard/internal/domain"
	"github.com/ardiansyahp/siteboard/internal/tui/formatter"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// backlogView is the flat issue list for the active project, with the
// same search filter as the board.
type backlogView struct {
	session *Session
	cursor  int

	searching bool
	search    textinput.Model
}

func newBacklogView(session *Session) *backlogView {
	ti := textinput.New()
	ti.Placeholder = "search title or key"
	ti.CharLimit = 64
	ti.SetValue(session.WS.Search())
	return &backlogView{session: session, search: ti}
}

func (v *backlogView) ID() ViewID           { return ViewBacklog }
func (v *backlogView) Title() string        { return "Backlog" }
func (v *backlogView) CapturingInput() bool { return v.searching }

func (v *backlogView) ShortHelp() []key.Binding {
	hints := []key.Binding{
		key.NewBinding(key.WithKeys("up", "down"), key.WithHelp("↑↓", "issue")),
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "edit")),
		key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
	}
	if !v.session.WS.Capabilities().ReadOnly {
		hints = append(hints, key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "comment")))
	}
	return hints
}

func (v *backlogView) Init() tea.Cmd { return nil }

func (v *backlogView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case refreshViewMsg:
		v.clamp()
		return v, nil

	case tea.KeyMsg:
		if v.searching {
			return v.updateSearch(msg)
		}
		return v.updateNormal(msg)
	}
	return v, nil
}

func (v *backlogView) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		v.searching = false
		v.search.Blur()
		v.search.SetValue("")
		v.session.WS.SetSearch("")
		v.clamp()
		return v, nil
	case tea.KeyEnter:
		v.searching = false
		v.search.Blur()
		return v, nil
	}
	var cmd tea.Cmd
	v.search, cmd = v.search.Update(msg)
	v.session.WS.SetSearch(v.search.Value())
	v.clamp()
	return v, cmd
}

func (v *backlogView) updateNormal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	issues := v.session.WS.VisibleIssues()

	switch msg.String() {
	case "up", "k":
		if v.cursor > 0 {
			v.cursor--
		}
	case "down", "j":
		if v.cursor < len(issues)-1 {
			v.cursor++
		}
	case "enter":
		if v.cursor < len(issues) {
			return v, pushView(newEditIssueFormView(v.session, issues[v.cursor].ID))
		}
	case "c":
		if v.cursor < len(issues) && !v.session.WS.Capabilities().ReadOnly {
			return v, pushView(newCommentFormView(v.session, issues[v.cursor].ID))
		}
	case "/":
		v.searching = true
		v.search.SetValue(v.session.WS.Search())
		return v, v.search.Focus()
	}
	return v, nil
}

func (v *backlogView) clamp() {
	n := len(v.session.WS.VisibleIssues())
	if n == 0 {
		v.cursor = 0
	} else if v.cursor >= n {
		v.cursor = n - 1
	}
}

func (v *backlogView) View() string {
	if _, ok := v.session.WS.ActiveProject(); !ok {
		return renderNoProject(v.session)
	}

	var b strings.Builder
	b.WriteString("\n")
	if v.searching {
		b.WriteString("  " + v.search.View() + "\n\n")
	} else if q := v.session.WS.Search(); q != "" {
		b.WriteString("  " + formatter.Dim("filter: ") + formatter.StyleYellow.Render(q) + "\n\n")
	}

	issues := v.session.WS.VisibleIssues()
	if len(issues) == 0 {
		b.WriteString("  " + formatter.Dim("No matching issues.") + "\n")
		return b.String()
	}

	cols := v.session.WS.Columns()
	users := v.session.WS.Users()

	for i, is := range issues {
		cursor := "  "
		keyStyle := formatter.StyleDim
		if i == v.cursor {
			cursor = formatter.StyleGreen.Render("▸ ")
			keyStyle = formatter.StyleGreen
		}
		status := is.Status
		if c, ok := cols.ByID(is.Status); ok {
			status = c.Title
		}
		b.WriteString(fmt.Sprintf("  %s%s %s  %s %s %s %s\n",
			cursor,
			formatter.TypeIcon(is.Type),
			keyStyle.Render(formatter.PadRight(is.Key, 10)),
			formatter.PadRight(is.Title, 42),
			formatter.Dim(formatter.PadRight(status, 13)),
			formatter.PriorityPill(is.Priority),
			formatter.Dim(" "+users.NameOf(is.AssigneeID)),
		))
	}

	if v.cursor < len(issues) {
		b.WriteString(v.renderComments(issues[v.cursor], users))
	}
	return b.String()
}

// renderComments shows the selected issue's comment trail below the list.
func (v *backlogView) renderComments(is domain.Issue, users domain.UserDirectory) string {
	if len(is.Comments) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString("\n  " + formatter.Dim(fmt.Sprintf("Comments on %s:", is.Key)) + "\n")
	for _, c := range is.Comments {
		b.WriteString(fmt.Sprintf("    %s %s\n",
			formatter.StyleBlue.Render(users.NameOf(c.UserID)+":"),
			c.Text,
		))
	}
	return b.String()
}
