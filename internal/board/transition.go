package board

import (
	"github.com/ardiansyahp/siteboard/internal/access"
	"github.com/ardiansyahp/siteboard/internal/domain"
)

// MoveResult classifies the outcome of a board transition.
type MoveResult int

const (
	// MoveApplied means the issue's status was changed.
	MoveApplied MoveResult = iota
	// MoveDeniedReadOnly means a read-only actor attempted the move.
	// Per the permission model this is a silent no-op, not an error.
	MoveDeniedReadOnly
	// MoveUnknownIssue means the issue id matched nothing.
	MoveUnknownIssue
	// MoveUnknownColumn means the target column is not in the column set.
	MoveUnknownColumn
)

// Move validates and applies a status change, returning the updated
// issue slice and the outcome. On any non-applied outcome the input
// slice is returned untouched.
//
// Only the matched issue's Status field changes; every other field and
// every other issue is left as-is. The returned slice is a copy when a
// change is applied, so callers holding the old snapshot see no
// mutation.
func Move(issues []domain.Issue, issueID, columnID string, cols domain.Columns, caps access.Capabilities) ([]domain.Issue, MoveResult) {
	if caps.ReadOnly {
		return issues, MoveDeniedReadOnly
	}
	if !cols.Contains(columnID) {
		return issues, MoveUnknownColumn
	}
	idx := -1
	for i, is := range issues {
		if is.ID == issueID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return issues, MoveUnknownIssue
	}

	updated := make([]domain.Issue, len(issues))
	copy(updated, issues)
	updated[idx].Status = columnID
	return updated, MoveApplied
}
