package formatter

import (
	"github.com/ardiansyahp/siteboard/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// PriorityStyle returns the style for a priority level.
func PriorityStyle(p domain.Priority) lipgloss.Style {
	switch p {
	case domain.PriorityCritical:
		return StyleRed
	case domain.PriorityHigh:
		return StyleYellow
	case domain.PriorityMedium:
		return StyleBlue
	case domain.PriorityLow:
		return StyleDim
	default:
		return StyleDim
	}
}

// PriorityPill renders a colored priority marker such as "▲ Critical".
func PriorityPill(p domain.Priority) string {
	marker := "▲ "
	if p == domain.PriorityLow {
		marker = "▽ "
	}
	return PriorityStyle(p).Render(marker + string(p))
}

// TypeIcon renders the single-character marker for an issue type.
func TypeIcon(t domain.IssueType) string {
	switch t {
	case domain.TypeBug:
		return StyleRed.Render("●")
	case domain.TypeStory:
		return StyleGreen.Render("◆")
	case domain.TypeEpic:
		return StylePurple.Render("◈")
	default: // Task
		return StyleBlue.Render("■")
	}
}

// RolePill renders a user role in its accent color.
func RolePill(r domain.Role) string {
	switch r {
	case domain.RoleAdmin:
		return StylePurple.Render(string(r))
	case domain.RoleManager:
		return StyleYellow.Render(string(r))
	case domain.RoleDeveloper:
		return StyleBlue.Render(string(r))
	case domain.RoleViewer:
		return StyleDim.Render(string(r))
	default:
		return StyleDim.Render(string(r))
	}
}
