package tui

import (
	"context"

	"github.com/ardiansyahp/siteboard/internal/workspace"
)

// Suggester is the slice of the text-generation collaborator the
// editing views consume. Implementations must never return errors:
// failures degrade to placeholder text or an empty list.
type Suggester interface {
	DescribeIssue(ctx context.Context, title, issueType string) string
	SuggestSubtasks(ctx context.Context, description string) []string
}

// Session holds context shared across all views via pointer.
type Session struct {
	WS *workspace.Workspace

	// Suggest is nil when no generation credentials are configured;
	// views hide their suggestion affordances in that case.
	Suggest Suggester

	// Terminal dimensions
	Width  int
	Height int
}

// ContentHeight returns the available height for view content,
// accounting for the header (2 lines) and the status bar (2 lines).
func (s *Session) ContentHeight() int {
	h := s.Height - 4
	if h < 1 {
		return 1
	}
	return h
}
