package workspace

import (
	"time"

	"github.com/ardiansyahp/siteboard/internal/domain"
)

// Seed builds the workspace provisioned for the construction division:
// the fixed user set, two infrastructure projects, the four-stage
// workflow and the initial issues. All of it lives in memory for the
// lifetime of the process.
func Seed(opts ...Option) *Workspace {
	now := time.Now().UTC()

	users := []domain.User{
		{ID: "1", Name: "Rafa Maheswara", Role: domain.RoleManager, Avatar: "https://picsum.photos/40/40?random=1"},
		{ID: "2", Name: "Farid", Role: domain.RoleDeveloper, Avatar: "https://picsum.photos/40/40?random=2"},
		{ID: "3", Name: "Firman", Role: domain.RoleViewer, Avatar: "https://picsum.photos/40/40?random=3"},
		{ID: "4", Name: "Super User", Role: domain.RoleAdmin, Avatar: "https://picsum.photos/40/40?random=4"},
		{ID: "5", Name: "Admin", Role: domain.RoleAdmin, Avatar: "https://picsum.photos/40/40?random=5"},
	}

	projects := []domain.Project{
		{
			ID: "p1", Name: "Trans Sumatra Phase 2", Key: "TSTR",
			Description: "Infrastructure development for phase 2.",
			ManagerID:   "1", MemberIDs: []string{"1", "2", "3", "4", "5"},
			CreatedAt: now,
		},
		{
			ID: "p2", Name: "Jakarta Metro Upgrade", Key: "JMU",
			Description: "Renovation of station facilities.",
			ManagerID:   "1", MemberIDs: []string{"1", "2", "5"},
			CreatedAt: now,
		},
	}

	columns := domain.Columns{
		{ID: "c1", Title: "To Do", Order: 1},
		{ID: "c2", Title: "In Progress", Order: 2},
		{ID: "c3", Title: "In Review", Order: 3},
		{ID: "c4", Title: "Done", Order: 4},
	}

	issues := []domain.Issue{
		{
			ID: "1", ProjectID: "p1", Key: "TSTR-101",
			Title: "Design Bridge Pillars Foundation", Description: "Create structural drawings for phase 2.",
			Status: "c2", Priority: domain.PriorityHigh, Type: domain.TypeTask,
			AssigneeID: "2", ReporterID: "1", Comments: []domain.Comment{}, CreatedAt: now,
		},
		{
			ID: "2", ProjectID: "p1", Key: "TSTR-102",
			Title: "Procure High Grade Cement", Description: "Contact vendor for bulk pricing.",
			Status: "c1", Priority: domain.PriorityMedium, Type: domain.TypeStory,
			AssigneeID: "1", ReporterID: "1", Comments: []domain.Comment{}, CreatedAt: now,
		},
		{
			ID: "3", ProjectID: "p1", Key: "TSTR-103",
			Title: "Safety Inspection Report Error", Description: "Mobile app crashes on image upload.",
			Status: "c1", Priority: domain.PriorityCritical, Type: domain.TypeBug,
			AssigneeID: "2", ReporterID: "3", Comments: []domain.Comment{}, CreatedAt: now,
		},
		{
			ID: "4", ProjectID: "p1", Key: "TSTR-104",
			Title: "Trans Sumatra Phase 2 Planning", Description: "High level roadmap for Q4.",
			Status: "c2", Priority: domain.PriorityHigh, Type: domain.TypeEpic,
			AssigneeID: "1", ReporterID: "1", Comments: []domain.Comment{}, CreatedAt: now,
		},
		{
			ID: "5", ProjectID: "p2", Key: "JMU-101",
			Title: "Station A Blueprint", Description: "Initial architectural draft.",
			Status: "c2", Priority: domain.PriorityHigh, Type: domain.TypeTask,
			AssigneeID: "5", ReporterID: "5", Comments: []domain.Comment{}, CreatedAt: now,
		},
		{
			ID: "6", ProjectID: "p2", Key: "JMU-102",
			Title: "Escalator Maintenance", Description: "Schedule vendor for checkup.",
			Status: "c1", Priority: domain.PriorityMedium, Type: domain.TypeTask,
			AssigneeID: "2", ReporterID: "5", Comments: []domain.Comment{}, CreatedAt: now,
		},
	}

	ws := New(users, projects, issues, columns, opts...)
	ws.notifications = []Notification{
		{Text: "Farid moved TSTR-101 to In Progress", Age: "10m ago"},
		{Text: "Rafa commented on TSTR-104", Age: "1h ago"},
		{Text: "New project JMU created by Admin", Age: "2h ago"},
		{Text: "Safety inspection due tomorrow", Age: "5h ago"},
	}
	return ws
}
