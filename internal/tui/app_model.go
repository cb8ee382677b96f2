package tui

import (
	"strings"

	"github.com/ardiansyahp/siteboard/internal/tui/formatter"
	tea "github.com/charmbracelet/bubbletea"
)

// appModel is the root bubbletea Model for the TUI. It manages a view
// stack: the login view at the bottom, one main view above it after
// login, and forms pushed on top of that.
type appModel struct {
	session   *Session
	viewStack []View
	flashText string
	quitting  bool
}

func newAppModel(session *Session) appModel {
	return appModel{
		session:   session,
		viewStack: []View{newLoginView(session)},
	}
}

// NewProgram builds the bubbletea program for the board TUI.
func NewProgram(session *Session) *tea.Program {
	return tea.NewProgram(newAppModel(session), tea.WithAltScreen())
}

// activeView returns the top view on the stack, or nil.
func (m *appModel) activeView() View {
	if len(m.viewStack) == 0 {
		return nil
	}
	return m.viewStack[len(m.viewStack)-1]
}

// setActiveView replaces the top of the view stack.
func (m *appModel) setActiveView(v View) {
	if len(m.viewStack) > 0 {
		m.viewStack[len(m.viewStack)-1] = v
	}
}

// ── bubbletea interface ──────────────────────────────────────────────────────

func (m appModel) Init() tea.Cmd {
	if v := m.activeView(); v != nil {
		return v.Init()
	}
	return nil
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.session.Width = msg.Width
		m.session.Height = msg.Height
		if v := m.activeView(); v != nil {
			updated, cmd := v.Update(msg)
			m.setActiveView(updated.(View))
			return m, cmd
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case pushViewMsg:
		m.flashText = ""
		m.viewStack = append(m.viewStack, msg.view)
		return m, msg.view.Init()

	case popViewMsg:
		return m.popOne(), nil

	case replaceViewMsg:
		m.flashText = ""
		if len(m.viewStack) > 0 {
			m.viewStack[len(m.viewStack)-1] = msg.view
		} else {
			m.viewStack = append(m.viewStack, msg.view)
		}
		return m, msg.view.Init()

	case refreshViewMsg:
		// Broadcast so views below a form reload after mutations.
		var cmds []tea.Cmd
		for i, v := range m.viewStack {
			updated, cmd := v.Update(msg)
			m.viewStack[i] = updated.(View)
			if cmd != nil {
				cmds = append(cmds, cmd)
			}
		}
		return m, tea.Batch(cmds...)

	case flashMsg:
		m.flashText = msg.text
		return m, nil

	case wizardCompleteMsg:
		// Atomically pop the wizard view and run the follow-up command.
		if len(m.viewStack) > 1 {
			m.viewStack = m.viewStack[:len(m.viewStack)-1]
		}
		return m, tea.Batch(msg.nextCmd, refreshViews())
	}

	// Forward everything else (async results, ticks) to the active view.
	if v := m.activeView(); v != nil {
		updated, cmd := v.Update(msg)
		m.setActiveView(updated.(View))
		return m, cmd
	}

	return m, nil
}

func (m appModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		m.quitting = true
		return m, tea.Quit
	}

	m.flashText = ""

	// Views with their own text input receive all keys, including 'q'.
	if v := m.activeView(); v != nil && viewCapturesInput(v) {
		updated, cmd := v.Update(msg)
		m.setActiveView(updated.(View))
		return m, cmd
	}

	switch msg.String() {
	case "q":
		m.quitting = true
		return m, tea.Quit

	case "1", "2", "3", "4", "5", "p":
		if cmd := m.switchMainView(msg.String()); cmd != nil {
			return m, cmd
		}

	case "n":
		// New issue, in the board's default column. Hidden from
		// read-only sessions and the no-project state.
		if m.loggedIn() && !m.session.WS.Capabilities().ReadOnly {
			if _, ok := m.session.WS.ActiveProject(); ok {
				return m, pushView(newIssueFormView(m.session, ""))
			}
		}
		return m, nil

	case "N":
		if m.loggedIn() && m.session.WS.Capabilities().CanCreateProject {
			return m, pushView(newProjectFormView(m.session))
		}
		return m, nil

	case "esc":
		if len(m.viewStack) > 1 {
			return m.popOne(), nil
		}
		return m, nil
	}

	if v := m.activeView(); v != nil {
		updated, cmd := v.Update(msg)
		m.setActiveView(updated.(View))
		return m, cmd
	}

	return m, nil
}

// switchMainView replaces the current main view. Returns nil when the
// key is not a view switch in the current state (logged out).
func (m *appModel) switchMainView(k string) tea.Cmd {
	if !m.loggedIn() {
		return nil
	}
	var v View
	switch k {
	case "1":
		v = newDashboardView(m.session)
	case "2":
		v = newBoardView(m.session)
	case "3":
		v = newBacklogView(m.session)
	case "4":
		v = newRoadmapView(m.session)
	case "5":
		v = newSettingsView(m.session)
	case "p":
		v = newSwitcherView(m.session)
	default:
		return nil
	}
	if active := m.activeView(); active != nil && active.ID() == v.ID() {
		return nil
	}
	return replaceView(v)
}

// popOne pops the top view. Popping back down to the login view ends
// the session.
func (m appModel) popOne() appModel {
	if len(m.viewStack) > 1 {
		m.viewStack = m.viewStack[:len(m.viewStack)-1]
		m.flashText = ""
		if v := m.activeView(); v != nil && v.ID() == ViewLogin {
			m.session.WS.Logout()
		}
	}
	return m
}

func (m *appModel) loggedIn() bool {
	_, ok := m.session.WS.CurrentUser()
	return ok
}

func (m appModel) View() string {
	if m.quitting {
		return ""
	}

	sections := []string{m.renderHeader()}

	if v := m.activeView(); v != nil {
		sections = append(sections, v.View())
	}

	sections = append(sections, m.renderStatusBar())

	result := strings.Join(sections, "\n")

	// Pad to terminal height to avoid stale line artifacts from the
	// line-diff renderer in alt-screen mode.
	if m.session.Height > 0 {
		lines := strings.Count(result, "\n") + 1
		if lines < m.session.Height {
			result += strings.Repeat("\n", m.session.Height-lines)
		}
	}

	return result
}

// ── rendering helpers ────────────────────────────────────────────────────────

func (m *appModel) renderHeader() string {
	title := formatter.StylePurple.Render("siteboard")

	var crumbs []string
	for _, v := range m.viewStack {
		if t := v.Title(); t != "" {
			crumbs = append(crumbs, t)
		}
	}
	header := title
	if len(crumbs) > 0 {
		header += " " + formatter.Dim("›") + " " + formatter.Dim(strings.Join(crumbs, " › "))
	}

	if p, ok := m.session.WS.ActiveProject(); ok {
		header += "  " + formatter.Dim("[") + formatter.StyleGreen.Render(p.Key) + formatter.Dim("]")
	}
	if u, ok := m.session.WS.CurrentUser(); ok {
		header += "  " + formatter.Dim(u.Name+" · "+string(u.Role))
	}

	sep := formatter.Dim(strings.Repeat("─", max(m.session.Width, 20)))
	return header + "\n" + sep
}

func (m *appModel) renderStatusBar() string {
	var hints []string

	if m.flashText != "" {
		hints = append(hints, m.flashText)
	} else if v := m.activeView(); v != nil {
		for _, b := range v.ShortHelp() {
			hints = append(hints, formatter.Dim(b.Help().Key+": "+b.Help().Desc))
		}
		if m.loggedIn() && !viewCapturesInput(v) && v.ID() != ViewLogin {
			hints = append(hints, formatter.Dim("1-5: views"), formatter.Dim("p: projects"))
		}
	}

	bar := strings.Join(hints, "  ")
	sep := formatter.Dim(strings.Repeat("─", max(m.session.Width, 20)))
	return sep + "\n" + bar
}
