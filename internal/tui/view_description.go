package tui

import (
	"context"
	"strings"

	"github.com/ardiansyahp/siteboard/internal/tui/formatter"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
)

// descriptionSpec configures the free-text description editor. The
// save callback commits the text and returns the status flash.
type descriptionSpec struct {
	title     string
	issueType string
	initial   string
	save      func(description string) tea.Cmd
}

// suggestResultMsg carries a generated description. seq ties it to the
// request that started it; stale results are dropped.
type suggestResultMsg struct {
	seq  int
	text string
}

// subtasksMsg carries generated subtask titles.
type subtasksMsg struct {
	seq   int
	items []string
}

// descriptionView edits the issue description, with optional text
// generation when a suggester is configured.
type descriptionView struct {
	session *Session
	spec    descriptionSpec
	ta      textarea.Model

	// seq increments per request so a result arriving after the user
	// typed over it, or after a newer request, is discarded.
	seq      int
	busy     bool
	subtasks []string
}

func newDescriptionView(session *Session, spec descriptionSpec) *descriptionView {
	ta := textarea.New()
	ta.Placeholder = "Describe the work, site conditions, acceptance criteria..."
	ta.SetValue(spec.initial)
	ta.SetWidth(72)
	ta.SetHeight(10)
	ta.Focus()
	return &descriptionView{session: session, spec: spec, ta: ta}
}

func (v *descriptionView) ID() ViewID           { return ViewDescription }
func (v *descriptionView) Title() string        { return "Description" }
func (v *descriptionView) CapturingInput() bool { return true }

func (v *descriptionView) ShortHelp() []key.Binding {
	hints := []key.Binding{
		key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "save")),
		key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "discard")),
	}
	if v.session.Suggest != nil {
		hints = append(hints,
			key.NewBinding(key.WithKeys("ctrl+g"), key.WithHelp("ctrl+g", "generate")),
			key.NewBinding(key.WithKeys("ctrl+t"), key.WithHelp("ctrl+t", "subtasks")),
		)
	}
	if len(v.subtasks) > 0 {
		hints = append(hints, key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "insert subtasks")))
	}
	return hints
}

func (v *descriptionView) Init() tea.Cmd { return textarea.Blink }

func (v *descriptionView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case suggestResultMsg:
		if msg.seq != v.seq {
			return v, nil
		}
		v.busy = false
		v.ta.SetValue(msg.text)
		return v, nil

	case subtasksMsg:
		if msg.seq != v.seq {
			return v, nil
		}
		v.busy = false
		v.subtasks = msg.items
		if len(msg.items) == 0 {
			return v, flash(formatter.Dim("No subtasks suggested."))
		}
		return v, nil

	case tea.KeyMsg:
		switch {
		case msg.Type == tea.KeyCtrlS:
			var saveCmd tea.Cmd
			if v.spec.save != nil {
				saveCmd = v.spec.save(v.ta.Value())
			}
			return v, tea.Batch(popView(), refreshViews(), saveCmd)

		case msg.Type == tea.KeyEsc:
			return v, tea.Batch(popView(), flash(formatter.Dim("Discarded.")))

		case msg.Type == tea.KeyCtrlG:
			return v, v.generateDescription()

		case msg.Type == tea.KeyCtrlT:
			return v, v.generateSubtasks()

		case msg.Type == tea.KeyTab && len(v.subtasks) > 0:
			v.insertSubtasks()
			return v, nil
		}
	}

	var cmd tea.Cmd
	v.ta, cmd = v.ta.Update(msg)
	return v, cmd
}

func (v *descriptionView) generateDescription() tea.Cmd {
	if v.session.Suggest == nil {
		return flash(formatter.Dim("Text generation is not configured."))
	}
	v.seq++
	v.busy = true
	seq := v.seq
	suggest := v.session.Suggest
	title, issueType := v.spec.title, v.spec.issueType
	return func() tea.Msg {
		return suggestResultMsg{seq: seq, text: suggest.DescribeIssue(context.Background(), title, issueType)}
	}
}

func (v *descriptionView) generateSubtasks() tea.Cmd {
	if v.session.Suggest == nil {
		return flash(formatter.Dim("Text generation is not configured."))
	}
	v.seq++
	v.busy = true
	seq := v.seq
	suggest := v.session.Suggest
	desc := v.ta.Value()
	return func() tea.Msg {
		return subtasksMsg{seq: seq, items: suggest.SuggestSubtasks(context.Background(), desc)}
	}
}

// insertSubtasks appends the suggested subtasks as a checklist at the
// end of the description.
func (v *descriptionView) insertSubtasks() {
	var b strings.Builder
	b.WriteString(v.ta.Value())
	if b.Len() > 0 && !strings.HasSuffix(v.ta.Value(), "\n") {
		b.WriteString("\n")
	}
	b.WriteString("\nSubtasks:\n")
	for _, s := range v.subtasks {
		b.WriteString("- " + s + "\n")
	}
	v.ta.SetValue(b.String())
	v.subtasks = nil
}

func (v *descriptionView) View() string {
	var b strings.Builder
	b.WriteString("\n  " + formatter.Header("Description") + "\n")
	b.WriteString("  " + formatter.Dim(v.spec.title) + "\n\n")
	b.WriteString(v.ta.View() + "\n")

	if v.busy {
		b.WriteString("\n  " + formatter.StyleYellow.Render("Generating...") + "\n")
	}
	if len(v.subtasks) > 0 {
		b.WriteString("\n  " + formatter.Dim("Suggested subtasks (tab to insert):") + "\n")
		for _, s := range v.subtasks {
			b.WriteString("    " + formatter.StyleGreen.Render("+") + " " + s + "\n")
		}
	}
	return b.String()
}
