package tui

import (
	"fmt"
	"strings"

	"github.com/ardiansyahp/siteboard/internal/board"
	"github.com/ardiansyahp/siteboard/internal/domain"
	"github.com/ardiansyahp/siteboard/internal/tui/formatter"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	boardColMinWidth = 22
	boardColGap      = 2
)

// boardView renders the active project's issues as workflow columns.
// Issues move between columns with [ and ]; the underlying transition
// is validated and permission-checked by the workspace.
type boardView struct {
	session *Session
	col     int
	row     int

	searching bool
	search    textinput.Model
}

func newBoardView(session *Session) *boardView {
	ti := textinput.New()
	ti.Placeholder = "search title or key"
	ti.CharLimit = 64
	ti.SetValue(session.WS.Search())
	return &boardView{session: session, search: ti}
}

func (v *boardView) ID() ViewID { return ViewBoard }
func (v *boardView) Title() string {
	if p, ok := v.session.WS.ActiveProject(); ok {
		return p.Name
	}
	return "Board"
}

func (v *boardView) CapturingInput() bool { return v.searching }

func (v *boardView) ShortHelp() []key.Binding {
	hints := []key.Binding{
		key.NewBinding(key.WithKeys("left", "right"), key.WithHelp("←→", "column")),
		key.NewBinding(key.WithKeys("up", "down"), key.WithHelp("↑↓", "card")),
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "edit")),
		key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
	}
	if !v.session.WS.Capabilities().ReadOnly {
		hints = append(hints,
			key.NewBinding(key.WithKeys("["), key.WithHelp("[ ]", "move issue")),
			key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "new in column")),
		)
	}
	return hints
}

func (v *boardView) Init() tea.Cmd { return nil }

func (v *boardView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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

func (v *boardView) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
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

func (v *boardView) updateNormal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	cols := v.session.WS.Columns().Sorted()

	switch msg.String() {
	case "left", "h":
		if v.col > 0 {
			v.col--
			v.clamp()
		}
	case "right", "l":
		if v.col < len(cols)-1 {
			v.col++
			v.clamp()
		}
	case "up", "k":
		if v.row > 0 {
			v.row--
		}
	case "down", "j":
		v.row++
		v.clamp()
	case "[", "]":
		if is, ok := v.selectedIssue(); ok {
			target := v.col - 1
			if msg.String() == "]" {
				target = v.col + 1
			}
			if target >= 0 && target < len(cols) {
				if v.session.WS.MoveIssue(is.ID, cols[target].ID) {
					v.col = target
					v.followIssue(is.ID)
					return v, flash(formatter.Dim(fmt.Sprintf("%s → %s", is.Key, cols[target].Title)))
				}
			}
		}
	case "enter":
		if is, ok := v.selectedIssue(); ok {
			return v, pushView(newEditIssueFormView(v.session, is.ID))
		}
	case "n":
		if !v.session.WS.Capabilities().ReadOnly {
			if _, ok := v.session.WS.ActiveProject(); ok && v.col < len(cols) {
				return v, pushView(newIssueFormView(v.session, cols[v.col].ID))
			}
		}
	case "/":
		v.searching = true
		v.search.SetValue(v.session.WS.Search())
		return v, v.search.Focus()
	}
	return v, nil
}

// selectedIssue resolves the cursor to an issue.
func (v *boardView) selectedIssue() (domain.Issue, bool) {
	cols := v.session.WS.Columns().Sorted()
	if v.col >= len(cols) {
		return domain.Issue{}, false
	}
	groups := board.GroupByColumn(v.session.WS.VisibleIssues(), v.session.WS.Columns())
	issues := groups[cols[v.col].ID]
	if v.row >= len(issues) {
		return domain.Issue{}, false
	}
	return issues[v.row], true
}

// followIssue places the row cursor on the issue in the current column.
func (v *boardView) followIssue(issueID string) {
	cols := v.session.WS.Columns().Sorted()
	if v.col >= len(cols) {
		return
	}
	groups := board.GroupByColumn(v.session.WS.VisibleIssues(), v.session.WS.Columns())
	for i, is := range groups[cols[v.col].ID] {
		if is.ID == issueID {
			v.row = i
			return
		}
	}
	v.row = 0
}

// clamp keeps the cursor inside the current column's card list.
func (v *boardView) clamp() {
	cols := v.session.WS.Columns().Sorted()
	if len(cols) == 0 {
		v.col, v.row = 0, 0
		return
	}
	if v.col >= len(cols) {
		v.col = len(cols) - 1
	}
	groups := board.GroupByColumn(v.session.WS.VisibleIssues(), v.session.WS.Columns())
	n := len(groups[cols[v.col].ID])
	if n == 0 {
		v.row = 0
	} else if v.row >= n {
		v.row = n - 1
	}
}

func (v *boardView) View() string {
	if _, ok := v.session.WS.ActiveProject(); !ok {
		return renderNoProject(v.session)
	}

	var b strings.Builder
	b.WriteString("\n")
	if v.searching || v.session.WS.Search() != "" {
		if v.searching {
			b.WriteString("  " + v.search.View() + "\n\n")
		} else {
			b.WriteString("  " + formatter.Dim("filter: ") + formatter.StyleYellow.Render(v.session.WS.Search()) + "\n\n")
		}
	}

	cols := v.session.WS.Columns().Sorted()
	groups := board.GroupByColumn(v.session.WS.VisibleIssues(), v.session.WS.Columns())

	colWidth := boardColMinWidth
	if len(cols) > 0 {
		if w := (v.session.Width - boardColGap*len(cols)) / len(cols); w > colWidth {
			colWidth = w
		}
	}

	rendered := make([]string, 0, len(cols))
	for ci, c := range cols {
		rendered = append(rendered, v.renderColumn(c, groups[c.ID], ci == v.col, colWidth))
	}

	gap := strings.Repeat(" ", boardColGap)
	row := lipgloss.JoinHorizontal(lipgloss.Top, interleave(rendered, gap)...)
	b.WriteString(row)
	return b.String()
}

func (v *boardView) renderColumn(c domain.Column, issues []domain.Issue, active bool, width int) string {
	titleStyle := formatter.StyleDim
	if active {
		titleStyle = formatter.StyleHeader
	}

	var lines []string
	lines = append(lines, titleStyle.Render(strings.ToUpper(c.Title))+" "+formatter.Dim(fmt.Sprintf("(%d)", len(issues))))
	lines = append(lines, formatter.Dim(strings.Repeat("─", width)))

	if len(issues) == 0 {
		lines = append(lines, formatter.Dim("  —"))
	}
	for i, is := range issues {
		cursor := "  "
		keyStyle := formatter.StyleDim
		if active && i == v.row {
			cursor = formatter.StyleGreen.Render("▸ ")
			keyStyle = formatter.StyleGreen
		}
		assignee := v.session.WS.Users().NameOf(is.AssigneeID)
		lines = append(lines,
			fmt.Sprintf("%s%s %s", cursor, formatter.TypeIcon(is.Type), keyStyle.Render(is.Key)),
			"    "+formatter.PadRight(is.Title, width-4),
			"    "+formatter.PriorityPill(is.Priority)+" "+formatter.Dim(assignee),
			"",
		)
	}

	return lipgloss.NewStyle().Width(width).Render(strings.Join(lines, "\n"))
}

// renderNoProject is the shared empty state when the user has no
// visible project or none is selected.
func renderNoProject(session *Session) string {
	var b strings.Builder
	b.WriteString("\n  " + formatter.Header("No project selected") + "\n\n")
	b.WriteString("  " + formatter.Dim("You are not assigned to any projects, or no project is currently selected.") + "\n")
	if session.WS.Capabilities().CanCreateProject {
		b.WriteString("  " + formatter.Dim("Press N to create a new project.") + "\n")
	}
	return b.String()
}

// interleave joins rendered columns with a gap element between them.
func interleave(items []string, gap string) []string {
	out := make([]string, 0, len(items)*2)
	for i, it := range items {
		if i > 0 {
			out = append(out, gap)
		}
		out = append(out, it)
	}
	return out
}
