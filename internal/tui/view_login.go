package tui

import (
	"fmt"
	"strings"

	"github.com/ardiansyahp/siteboard/internal/tui/formatter"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// loginView lets the operator pick a workspace member to sign in as.
// There is no real authentication in this system; the user set is
// fixed at provisioning time.
type loginView struct {
	session *Session
	cursor  int
}

func newLoginView(session *Session) *loginView {
	return &loginView{session: session}
}

func (v *loginView) ID() ViewID    { return ViewLogin }
func (v *loginView) Title() string { return "" }

func (v *loginView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("up", "down"), key.WithHelp("↑↓", "select")),
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "sign in")),
		key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
	}
}

func (v *loginView) Init() tea.Cmd { return nil }

func (v *loginView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	users := v.session.WS.Users()

	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "up", "k":
			if v.cursor > 0 {
				v.cursor--
			}
		case "down", "j":
			if v.cursor < len(users)-1 {
				v.cursor++
			}
		case "enter":
			if v.cursor < len(users) {
				u := users[v.cursor]
				if v.session.WS.Login(u.ID) {
					return v, tea.Batch(
						pushView(newBoardView(v.session)),
						flash(formatter.Dim("Signed in as "+u.Name)),
					)
				}
			}
		}
	}
	return v, nil
}

func (v *loginView) View() string {
	var b strings.Builder
	b.WriteString("\n  " + formatter.Header("Sign in") + "\n\n")

	for i, u := range v.session.WS.Users() {
		cursor := "  "
		nameStyle := formatter.StyleFg
		if i == v.cursor {
			cursor = formatter.StyleGreen.Render("▸ ")
			nameStyle = formatter.StyleBold
		}
		b.WriteString(fmt.Sprintf("  %s%s %s\n",
			cursor,
			nameStyle.Render(formatter.PadRight(u.Name, 20)),
			formatter.RolePill(u.Role),
		))
	}

	b.WriteString("\n  " + formatter.Dim("Pick a workspace member to start a session.") + "\n")
	return b.String()
}
