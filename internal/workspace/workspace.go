// Package workspace owns the in-memory application state: the user,
// project, issue and column collections plus the session context
// (logged-in user, active project, search query).
//
// All state is ephemeral — seeded at construction and lost on exit —
// and is mutated only through the methods on Workspace. Views and
// commands read derived snapshots; nothing else writes the collections.
package workspace

import (
	"fmt"
	"io"
	"time"

	"github.com/ardiansyahp/siteboard/internal/access"
	"github.com/ardiansyahp/siteboard/internal/board"
	"github.com/ardiansyahp/siteboard/internal/domain"
)

// Notification is a display-only feed entry shown on the dashboard.
type Notification struct {
	Text string
	Age  string
}

// Workspace is the single coordinating context for one session.
// Operations are synchronous and single-actor; there is no concurrent
// mutation in this system's scope.
type Workspace struct {
	users         domain.UserDirectory
	projects      []domain.Project
	issues        []domain.Issue
	columns       domain.Columns
	notifications []Notification

	currentUser     *domain.User
	activeProjectID string
	search          string

	diag io.Writer
	now  func() time.Time
}

// Option configures a Workspace at construction.
type Option func(*Workspace)

// WithDiagnostics directs rejected-mutation diagnostics to w.
// By default they are discarded.
func WithDiagnostics(w io.Writer) Option {
	return func(ws *Workspace) { ws.diag = w }
}

// WithClock overrides the time source, for tests.
func WithClock(now func() time.Time) Option {
	return func(ws *Workspace) { ws.now = now }
}

// New creates a workspace over the given collections. No user is
// logged in until Login is called.
func New(users []domain.User, projects []domain.Project, issues []domain.Issue, columns domain.Columns, opts ...Option) *Workspace {
	ws := &Workspace{
		users:    users,
		projects: projects,
		issues:   issues,
		columns:  columns,
		diag:     io.Discard,
		now:      func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(ws)
	}
	return ws
}

func (ws *Workspace) diagf(format string, args ...any) {
	fmt.Fprintf(ws.diag, format+"\n", args...)
}

// ── session ──────────────────────────────────────────────────────────────────

// Login sets the current user and activates their default project (the
// first visible one, or none). The search query is reset. Returns false
// when the user id is unknown.
func (ws *Workspace) Login(userID string) bool {
	u, ok := ws.users.ByID(userID)
	if !ok {
		ws.diagf("workspace: login rejected, unknown user %q", userID)
		return false
	}
	ws.currentUser = &u
	ws.search = ""
	if p, ok := access.DefaultProject(ws.projects, u); ok {
		ws.activeProjectID = p.ID
	} else {
		ws.activeProjectID = ""
	}
	return true
}

// Logout clears the session context.
func (ws *Workspace) Logout() {
	ws.currentUser = nil
	ws.activeProjectID = ""
	ws.search = ""
}

// CurrentUser returns the logged-in user, ok false when nobody is.
func (ws *Workspace) CurrentUser() (domain.User, bool) {
	if ws.currentUser == nil {
		return domain.User{}, false
	}
	return *ws.currentUser, true
}

// Capabilities returns the capability set of the logged-in user.
// Logged-out sessions are fully read-only.
func (ws *Workspace) Capabilities() access.Capabilities {
	if ws.currentUser == nil {
		return access.Capabilities{ReadOnly: true}
	}
	return access.CapabilitiesOf(ws.currentUser.Role)
}

// SetActiveProject switches the active project. The switch is refused
// when the project is not visible to the current user.
func (ws *Workspace) SetActiveProject(projectID string) bool {
	u, ok := ws.CurrentUser()
	if !ok {
		return false
	}
	for _, p := range access.VisibleProjects(ws.projects, u) {
		if p.ID == projectID {
			ws.activeProjectID = projectID
			return true
		}
	}
	ws.diagf("workspace: project switch rejected, %q not visible to %s", projectID, u.ID)
	return false
}

// ActiveProject returns the active project, ok false in the
// "no project" state.
func (ws *Workspace) ActiveProject() (domain.Project, bool) {
	if ws.activeProjectID == "" {
		return domain.Project{}, false
	}
	for _, p := range ws.projects {
		if p.ID == ws.activeProjectID {
			return p, true
		}
	}
	return domain.Project{}, false
}

// SetSearch sets the free-text issue filter.
func (ws *Workspace) SetSearch(query string) { ws.search = query }

// Search returns the current free-text issue filter.
func (ws *Workspace) Search() string { return ws.search }

// ── derived snapshots ────────────────────────────────────────────────────────

// Users returns the user directory.
func (ws *Workspace) Users() domain.UserDirectory { return ws.users }

// Columns returns the board column set.
func (ws *Workspace) Columns() domain.Columns { return ws.columns }

// Notifications returns the display-only notification feed.
func (ws *Workspace) Notifications() []Notification { return ws.notifications }

// VisibleProjects returns the projects the current user may see,
// preserving insertion order. Empty when logged out.
func (ws *Workspace) VisibleProjects() []domain.Project {
	u, ok := ws.CurrentUser()
	if !ok {
		return nil
	}
	return access.VisibleProjects(ws.projects, u)
}

// VisibleIssues returns the issues of the active project matching the
// current search query, preserving insertion order.
func (ws *Workspace) VisibleIssues() []domain.Issue {
	return board.VisibleIssues(ws.issues, ws.activeProjectID, ws.search)
}

// IssueByID returns an issue by id.
func (ws *Workspace) IssueByID(id string) (domain.Issue, bool) {
	for _, is := range ws.issues {
		if is.ID == id {
			return is, true
		}
	}
	return domain.Issue{}, false
}

// IssueByKey returns an issue by its human-readable key (e.g. TSTR-101).
func (ws *Workspace) IssueByKey(key string) (domain.Issue, bool) {
	for _, is := range ws.issues {
		if is.Key == key {
			return is, true
		}
	}
	return domain.Issue{}, false
}

// projectIssueCount counts every issue of a project, ignoring the
// search filter. Key numbering must never see a filtered count: a
// search that hides issues would understate it and collide keys.
func (ws *Workspace) projectIssueCount(projectID string) int {
	n := 0
	for _, is := range ws.issues {
		if is.ProjectID == projectID {
			n++
		}
	}
	return n
}
