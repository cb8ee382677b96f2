package workspace

import (
	"github.com/ardiansyahp/siteboard/internal/board"
	"github.com/ardiansyahp/siteboard/internal/domain"
	"github.com/google/uuid"
)

// IssueDraft carries the caller-supplied fields for a new issue.
// Identifier, key, project, reporter and creation time are assigned by
// the workspace.
type IssueDraft struct {
	Title       string
	Description string
	Status      string // column id; empty means the lowest-ordered column
	Priority    domain.Priority
	Type        domain.IssueType
	AssigneeID  string
}

// IssuePatch is a field-wise overwrite for UpdateIssue. Nil fields are
// left untouched. The immutable fields (id, project, key, reporter,
// creation time) have no representation here, so an update cannot
// alter them.
type IssuePatch struct {
	Title       *string
	Description *string
	Status      *string
	Priority    *domain.Priority
	Type        *domain.IssueType
	AssigneeID  *string
}

// ProjectDraft carries the caller-supplied fields for a new project.
type ProjectDraft struct {
	Name        string
	Key         string
	Description string
	MemberIDs   []string
}

// CreateIssue creates an issue in the active project, reported by the
// current user. The call is a silent no-op (ok false) when the caller
// is read-only or no project is active.
//
// The issue key is <project-key>-<100+N+1> where N counts every issue
// in the project; if seeded data already occupies that number the key
// is bumped past it so keys stay unique within the project.
func (ws *Workspace) CreateIssue(draft IssueDraft) (domain.Issue, bool) {
	u, ok := ws.CurrentUser()
	if !ok || ws.Capabilities().ReadOnly {
		ws.diagf("workspace: issue create rejected for read-only session")
		return domain.Issue{}, false
	}
	proj, ok := ws.ActiveProject()
	if !ok {
		ws.diagf("workspace: issue create rejected, no active project")
		return domain.Issue{}, false
	}

	key := NextIssueKey(proj.Key, ws.projectIssueCount(proj.ID))
	for ws.projectHasKey(proj.ID, key) {
		key = bumpKey(key)
	}

	status := draft.Status
	if status == "" || !ws.columns.Contains(status) {
		if first, ok := ws.columns.First(); ok {
			status = first.ID
		}
	}
	priority := draft.Priority
	if !priority.Valid() {
		priority = domain.PriorityMedium
	}
	issueType := draft.Type
	if !issueType.Valid() {
		issueType = domain.TypeTask
	}

	issue := domain.Issue{
		ID:          uuid.New().String(),
		ProjectID:   proj.ID,
		Key:         key,
		Title:       draft.Title,
		Description: draft.Description,
		Status:      status,
		Priority:    priority,
		Type:        issueType,
		AssigneeID:  draft.AssigneeID,
		ReporterID:  u.ID,
		Comments:    []domain.Comment{},
		CreatedAt:   ws.now(),
	}
	ws.issues = append(ws.issues, issue)
	return issue, true
}

// UpdateIssue merges the patch into the issue. Only fields present in
// the patch are overwritten. No-op (ok false) for read-only sessions
// or unknown issue ids.
func (ws *Workspace) UpdateIssue(issueID string, patch IssuePatch) (domain.Issue, bool) {
	if ws.Capabilities().ReadOnly {
		ws.diagf("workspace: issue update rejected for read-only session")
		return domain.Issue{}, false
	}
	for i := range ws.issues {
		if ws.issues[i].ID != issueID {
			continue
		}
		is := &ws.issues[i]
		if patch.Title != nil {
			is.Title = *patch.Title
		}
		if patch.Description != nil {
			is.Description = *patch.Description
		}
		if patch.Status != nil && ws.columns.Contains(*patch.Status) {
			is.Status = *patch.Status
		}
		if patch.Priority != nil && patch.Priority.Valid() {
			is.Priority = *patch.Priority
		}
		if patch.Type != nil && patch.Type.Valid() {
			is.Type = *patch.Type
		}
		if patch.AssigneeID != nil {
			is.AssigneeID = *patch.AssigneeID
		}
		return *is, true
	}
	ws.diagf("workspace: issue update rejected, unknown issue %q", issueID)
	return domain.Issue{}, false
}

// MoveIssue applies a board transition for the current user. Rejected
// moves (read-only session, unknown issue, unknown column) are silent
// no-ops with a diagnostic.
func (ws *Workspace) MoveIssue(issueID, columnID string) bool {
	updated, result := board.Move(ws.issues, issueID, columnID, ws.columns, ws.Capabilities())
	switch result {
	case board.MoveApplied:
		ws.issues = updated
		return true
	case board.MoveDeniedReadOnly:
		ws.diagf("workspace: move rejected for read-only session")
	case board.MoveUnknownIssue:
		ws.diagf("workspace: move rejected, unknown issue %q", issueID)
	case board.MoveUnknownColumn:
		ws.diagf("workspace: move rejected, unknown column %q", columnID)
	}
	return false
}

// AddComment appends a comment to an issue, stamped with the current
// user and time. Comments are append-only.
func (ws *Workspace) AddComment(issueID, text string) bool {
	u, ok := ws.CurrentUser()
	if !ok || ws.Capabilities().ReadOnly {
		ws.diagf("workspace: comment rejected for read-only session")
		return false
	}
	if text == "" {
		return false
	}
	for i := range ws.issues {
		if ws.issues[i].ID != issueID {
			continue
		}
		ws.issues[i].Comments = append(ws.issues[i].Comments, domain.Comment{
			ID:        uuid.New().String(),
			UserID:    u.ID,
			Text:      text,
			CreatedAt: ws.now(),
		})
		return true
	}
	return false
}

// CreateProject creates a project managed by the current user and
// activates it immediately. The creator is always a member, whatever
// member set the caller supplied. No-op (ok false) without the
// create-project capability or with an invalid key.
func (ws *Workspace) CreateProject(draft ProjectDraft) (domain.Project, bool) {
	u, ok := ws.CurrentUser()
	if !ok || !ws.Capabilities().CanCreateProject {
		ws.diagf("workspace: project create rejected, missing capability")
		return domain.Project{}, false
	}

	members := make([]string, 0, len(draft.MemberIDs)+1)
	creatorIncluded := false
	for _, id := range draft.MemberIDs {
		if id == u.ID {
			creatorIncluded = true
		}
		members = append(members, id)
	}
	if !creatorIncluded {
		members = append(members, u.ID)
	}

	proj := domain.Project{
		ID:          uuid.New().String(),
		Name:        draft.Name,
		Key:         draft.Key,
		Description: draft.Description,
		ManagerID:   u.ID,
		MemberIDs:   members,
		CreatedAt:   ws.now(),
	}
	if err := proj.ValidateKey(); err != nil {
		ws.diagf("workspace: project create rejected: %v", err)
		return domain.Project{}, false
	}

	ws.projects = append(ws.projects, proj)
	ws.activeProjectID = proj.ID
	return proj, true
}

func (ws *Workspace) projectHasKey(projectID, key string) bool {
	for _, is := range ws.issues {
		if is.ProjectID == projectID && is.Key == key {
			return true
		}
	}
	return false
}

// bumpKey increments the numeric suffix of an issue key.
func bumpKey(key string) string {
	for i := len(key) - 1; i >= 0; i-- {
		if key[i] == '-' {
			prefix := key[:i]
			n := 0
			for _, r := range key[i+1:] {
				n = n*10 + int(r-'0')
			}
			return NextIssueKey(prefix, n-issueKeyBase)
		}
	}
	return key
}
