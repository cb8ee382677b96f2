package tui

import (
	"fmt"

	"github.com/ardiansyahp/siteboard/internal/domain"
	"github.com/ardiansyahp/siteboard/internal/tui/formatter"
	"github.com/ardiansyahp/siteboard/internal/workspace"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
)

// issueFormState collects the detail fields of the issue form. The
// description is edited in a separate free-text view pushed after the
// form completes.
type issueFormState struct {
	title    string
	typ      string
	priority string
	status   string
	assignee string
}

func requiredField(name string) func(string) error {
	return func(s string) error {
		if s == "" {
			return fmt.Errorf("%s is required", name)
		}
		return nil
	}
}

func typeOptions() []huh.Option[string] {
	return []huh.Option[string]{
		huh.NewOption("Task", string(domain.TypeTask)),
		huh.NewOption("Bug", string(domain.TypeBug)),
		huh.NewOption("Story", string(domain.TypeStory)),
		huh.NewOption("Epic", string(domain.TypeEpic)),
	}
}

func priorityOptions() []huh.Option[string] {
	return []huh.Option[string]{
		huh.NewOption("Low", string(domain.PriorityLow)),
		huh.NewOption("Medium", string(domain.PriorityMedium)),
		huh.NewOption("High", string(domain.PriorityHigh)),
		huh.NewOption("Critical", string(domain.PriorityCritical)),
	}
}

func columnOptions(session *Session) []huh.Option[string] {
	cols := session.WS.Columns().Sorted()
	options := make([]huh.Option[string], 0, len(cols))
	for _, c := range cols {
		options = append(options, huh.NewOption(c.Title, c.ID))
	}
	return options
}

func assigneeOptions(session *Session) []huh.Option[string] {
	users := session.WS.Users()
	options := make([]huh.Option[string], 0, len(users)+1)
	options = append(options, huh.NewOption("Unassigned", ""))
	for _, u := range users {
		options = append(options, huh.NewOption(u.Name, u.ID))
	}
	return options
}

func issueDetailsForm(session *Session, st *issueFormState) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Title").
				Placeholder("Short summary of the work").
				Value(&st.title).
				Validate(requiredField("Title")),
			huh.NewSelect[string]().
				Title("Type").
				Options(typeOptions()...).
				Value(&st.typ),
			huh.NewSelect[string]().
				Title("Priority").
				Options(priorityOptions()...).
				Value(&st.priority),
			huh.NewSelect[string]().
				Title("Status").
				Options(columnOptions(session)...).
				Value(&st.status),
			huh.NewSelect[string]().
				Title("Assignee").
				Options(assigneeOptions(session)...).
				Value(&st.assignee),
		),
	).WithTheme(siteboardHuhTheme()).WithShowHelp(false)
}

// newIssueFormView starts the two-step new-issue flow: the detail form,
// then the description editor. defaultColumnID preselects the status
// for board-initiated creation; empty means the first column.
func newIssueFormView(session *Session, defaultColumnID string) View {
	st := &issueFormState{
		typ:      string(domain.TypeTask),
		priority: string(domain.PriorityMedium),
		status:   defaultColumnID,
	}
	if st.status == "" {
		if first, ok := session.WS.Columns().First(); ok {
			st.status = first.ID
		}
	}

	done := func() tea.Cmd {
		return pushView(newDescriptionView(session, descriptionSpec{
			title:     st.title,
			issueType: st.typ,
			save: func(desc string) tea.Cmd {
				is, ok := session.WS.CreateIssue(workspace.IssueDraft{
					Title:       st.title,
					Description: desc,
					Status:      st.status,
					Priority:    domain.Priority(st.priority),
					Type:        domain.IssueType(st.typ),
					AssigneeID:  st.assignee,
				})
				if !ok {
					return flash(formatter.StyleRed.Render("Could not create issue."))
				}
				return flash(formatter.StyleGreen.Render("Created " + is.Key))
			},
		}))
	}

	return newWizardView(session, "New Issue", issueDetailsForm(session, st), done)
}

// newEditIssueFormView starts the same two-step flow prefilled from an
// existing issue; saving applies a patch instead of creating.
func newEditIssueFormView(session *Session, issueID string) View {
	is, ok := session.WS.IssueByID(issueID)
	if !ok {
		// Stale cursor; show an empty form that cannot save anything.
		return newWizardView(session, "Edit Issue", issueDetailsForm(session, &issueFormState{}), nil)
	}

	st := &issueFormState{
		title:    is.Title,
		typ:      string(is.Type),
		priority: string(is.Priority),
		status:   is.Status,
		assignee: is.AssigneeID,
	}

	done := func() tea.Cmd {
		return pushView(newDescriptionView(session, descriptionSpec{
			title:     st.title,
			issueType: st.typ,
			initial:   is.Description,
			save: func(desc string) tea.Cmd {
				status := st.status
				priority := domain.Priority(st.priority)
				typ := domain.IssueType(st.typ)
				_, ok := session.WS.UpdateIssue(issueID, workspace.IssuePatch{
					Title:       &st.title,
					Description: &desc,
					Status:      &status,
					Priority:    &priority,
					Type:        &typ,
					AssigneeID:  &st.assignee,
				})
				if !ok {
					return flash(formatter.StyleRed.Render("Could not update issue."))
				}
				return flash(formatter.StyleGreen.Render("Updated " + is.Key))
			},
		}))
	}

	return newWizardView(session, "Edit "+is.Key, issueDetailsForm(session, st), done)
}

// newCommentFormView is a single-input form that appends a comment to
// the issue.
func newCommentFormView(session *Session, issueID string) View {
	is, _ := session.WS.IssueByID(issueID)

	var text string
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Comment on " + is.Key).
				Placeholder("What happened?").
				Value(&text).
				Validate(requiredField("Comment")),
		),
	).WithTheme(siteboardHuhTheme()).WithShowHelp(false)

	done := func() tea.Cmd {
		if !session.WS.AddComment(issueID, text) {
			return flash(formatter.StyleRed.Render("Could not add comment."))
		}
		return flash(formatter.StyleGreen.Render("Comment added to " + is.Key))
	}

	return newWizardView(session, "Comment", form, done)
}
