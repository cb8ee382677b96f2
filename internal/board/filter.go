package board

import (
	"strings"

	"github.com/ardiansyahp/siteboard/internal/domain"
)

// VisibleIssues projects the full issue set down to the issues shown
// for the active project under the current search query.
//
// An issue is included when its ProjectID matches and, for a non-empty
// query, its title or key contains the query case-insensitively. Input
// order is preserved; grouping by column is a presentation concern
// handled separately. The function holds no state and recomputes
// deterministically on every call.
func VisibleIssues(all []domain.Issue, activeProjectID, query string) []domain.Issue {
	q := strings.ToLower(query)
	var visible []domain.Issue
	for _, is := range all {
		if is.ProjectID != activeProjectID {
			continue
		}
		if q != "" &&
			!strings.Contains(strings.ToLower(is.Title), q) &&
			!strings.Contains(strings.ToLower(is.Key), q) {
			continue
		}
		visible = append(visible, is)
	}
	return visible
}

// GroupByColumn buckets issues by their Status column id, preserving
// the relative order within each bucket. Issues whose status names no
// known column are dropped from the board rendering (they remain in
// the underlying set).
func GroupByColumn(issues []domain.Issue, cols domain.Columns) map[string][]domain.Issue {
	groups := make(map[string][]domain.Issue, len(cols))
	for _, is := range issues {
		if !cols.Contains(is.Status) {
			continue
		}
		groups[is.Status] = append(groups[is.Status], is)
	}
	return groups
}
