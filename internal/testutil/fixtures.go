// Package testutil provides fixture builders for domain objects.
package testutil

import (
	"time"

	"github.com/ardiansyahp/siteboard/internal/domain"
	"github.com/google/uuid"
)

// User options
type UserOption func(*domain.User)

func WithRole(r domain.Role) UserOption {
	return func(u *domain.User) { u.Role = r }
}

func NewTestUser(name string, opts ...UserOption) domain.User {
	u := domain.User{
		ID:   uuid.New().String(),
		Name: name,
		Role: domain.RoleDeveloper,
	}
	for _, opt := range opts {
		opt(&u)
	}
	return u
}

// Project options
type ProjectOption func(*domain.Project)

func WithManager(userID string) ProjectOption {
	return func(p *domain.Project) { p.ManagerID = userID }
}

func WithMembers(userIDs ...string) ProjectOption {
	return func(p *domain.Project) { p.MemberIDs = userIDs }
}

func WithKey(key string) ProjectOption {
	return func(p *domain.Project) { p.Key = key }
}

func NewTestProject(name string, opts ...ProjectOption) domain.Project {
	p := domain.Project{
		ID:        uuid.New().String(),
		Name:      name,
		Key:       "TST",
		CreatedAt: time.Now().UTC(),
	}
	for _, opt := range opts {
		opt(&p)
	}
	return p
}

// Issue options
type IssueOption func(*domain.Issue)

func WithStatus(columnID string) IssueOption {
	return func(is *domain.Issue) { is.Status = columnID }
}

func WithIssueKey(key string) IssueOption {
	return func(is *domain.Issue) { is.Key = key }
}

func WithPriority(p domain.Priority) IssueOption {
	return func(is *domain.Issue) { is.Priority = p }
}

func WithType(t domain.IssueType) IssueOption {
	return func(is *domain.Issue) { is.Type = t }
}

func WithAssignee(userID string) IssueOption {
	return func(is *domain.Issue) { is.AssigneeID = userID }
}

func NewTestIssue(projectID, title string, opts ...IssueOption) domain.Issue {
	is := domain.Issue{
		ID:        uuid.New().String(),
		ProjectID: projectID,
		Key:       "TST-101",
		Title:     title,
		Status:    "c1",
		Priority:  domain.PriorityMedium,
		Type:      domain.TypeTask,
		Comments:  []domain.Comment{},
		CreatedAt: time.Now().UTC(),
	}
	for _, opt := range opts {
		opt(&is)
	}
	return is
}

// NewTestColumns returns the standard four-column workflow.
func NewTestColumns() domain.Columns {
	return domain.Columns{
		{ID: "c1", Title: "To Do", Order: 1},
		{ID: "c2", Title: "In Progress", Order: 2},
		{ID: "c3", Title: "In Review", Order: 3},
		{ID: "c4", Title: "Done", Order: 4},
	}
}
