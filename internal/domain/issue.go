package domain

import "time"

// Priority of an issue, ordered by severity.
type Priority string

const (
	PriorityLow      Priority = "Low"
	PriorityMedium   Priority = "Medium"
	PriorityHigh     Priority = "High"
	PriorityCritical Priority = "Critical"
)

// Rank returns the severity order of the priority, higher is more severe.
func (p Priority) Rank() int {
	switch p {
	case PriorityCritical:
		return 4
	case PriorityHigh:
		return 3
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 1
	}
	return 0
}

// Valid reports whether the priority is one of the four known levels.
func (p Priority) Valid() bool {
	return p.Rank() > 0
}

// IssueType classifies a unit of trackable work.
type IssueType string

const (
	TypeTask  IssueType = "Task"
	TypeBug   IssueType = "Bug"
	TypeStory IssueType = "Story"
	TypeEpic  IssueType = "Epic"
)

// Valid reports whether the type is one of the four known types.
func (t IssueType) Valid() bool {
	switch t {
	case TypeTask, TypeBug, TypeStory, TypeEpic:
		return true
	}
	return false
}

// Comment is an append-only remark on an issue.
type Comment struct {
	ID        string
	UserID    string
	Text      string
	CreatedAt time.Time
}

// Issue is a unit of trackable work within a project.
//
// ID, ProjectID, Key, ReporterID and CreatedAt are set once at creation
// and never change afterwards. Status references a Column id.
type Issue struct {
	ID          string
	ProjectID   string
	Key         string
	Title       string
	Description string
	Status      string
	Priority    Priority
	Type        IssueType
	AssigneeID  string
	ReporterID  string
	Comments    []Comment
	CreatedAt   time.Time
}
