package workspace

import (
	"bytes"
	"testing"
	"time"

	"github.com/ardiansyahp/siteboard/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedClock() func() time.Time {
	at := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)
	return func() time.Time { return at }
}

func TestCreateIssue_AssignsKeyAndDefaults(t *testing.T) {
	ws := Seed(WithClock(fixedClock()))
	ws.Login("1")

	is, ok := ws.CreateIssue(IssueDraft{Title: "Pour east abutment"})

	require.True(t, ok)
	assert.Equal(t, "TSTR-105", is.Key, "p1 has four issues, so the next number is 105")
	assert.NotEmpty(t, is.ID)
	assert.Equal(t, "p1", is.ProjectID)
	assert.Equal(t, "c1", is.Status, "defaults to the first column")
	assert.Equal(t, domain.PriorityMedium, is.Priority)
	assert.Equal(t, domain.TypeTask, is.Type)
	assert.Equal(t, "1", is.ReporterID, "reporter is the creator")
	assert.NotNil(t, is.Comments)
	assert.Empty(t, is.Comments)
	assert.Equal(t, fixedClock()(), is.CreatedAt)

	stored, ok := ws.IssueByID(is.ID)
	require.True(t, ok)
	assert.Equal(t, is, stored)
}

func TestCreateIssue_KeyNumberingIgnoresSearchFilter(t *testing.T) {
	ws := Seed()
	ws.Login("1")
	ws.SetSearch("bridge") // hides most of p1

	is, ok := ws.CreateIssue(IssueDraft{Title: "Hidden by filter"})

	require.True(t, ok)
	assert.Equal(t, "TSTR-105", is.Key, "numbering counts all project issues, not the filtered view")
}

func TestCreateIssue_BumpsPastOccupiedKeys(t *testing.T) {
	users := []domain.User{{ID: "1", Name: "Rafa", Role: domain.RoleManager}}
	projects := []domain.Project{{ID: "p1", Name: "Test", Key: "TST", ManagerID: "1"}}
	issues := []domain.Issue{{
		ID: "1", ProjectID: "p1", Key: "TST-102", Title: "Occupies the next slot",
		Status: "c1", Priority: domain.PriorityMedium, Type: domain.TypeTask,
	}}
	ws := New(users, projects, issues, domain.Columns{{ID: "c1", Title: "To Do", Order: 1}})
	ws.Login("1")

	is, ok := ws.CreateIssue(IssueDraft{Title: "Next"})

	require.True(t, ok)
	assert.Equal(t, "TST-103", is.Key, "count says 102, but that key exists, so it bumps")
}

func TestCreateIssue_ReadOnlyIsSilentNoop(t *testing.T) {
	var diag bytes.Buffer
	ws := Seed(WithDiagnostics(&diag))
	ws.Login("3") // Viewer

	before := len(ws.VisibleIssues())
	_, ok := ws.CreateIssue(IssueDraft{Title: "Should not exist"})

	assert.False(t, ok)
	assert.Len(t, ws.VisibleIssues(), before)
	assert.Contains(t, diag.String(), "read-only")
}

func TestCreateIssue_NoActiveProject(t *testing.T) {
	users := []domain.User{{ID: "1", Name: "Lonely", Role: domain.RoleDeveloper}}
	ws := New(users, nil, nil, domain.Columns{{ID: "c1", Title: "To Do", Order: 1}})
	ws.Login("1")

	_, ok := ws.CreateIssue(IssueDraft{Title: "Nowhere to go"})

	assert.False(t, ok)
}

func TestUpdateIssue_MergesPatch(t *testing.T) {
	ws := Seed()
	ws.Login("1")
	orig, _ := ws.IssueByKey("TSTR-101")

	title := "Revised pillar design"
	priority := domain.PriorityCritical
	updated, ok := ws.UpdateIssue(orig.ID, IssuePatch{Title: &title, Priority: &priority})

	require.True(t, ok)
	assert.Equal(t, "Revised pillar design", updated.Title)
	assert.Equal(t, domain.PriorityCritical, updated.Priority)

	// Untouched fields keep their values.
	assert.Equal(t, orig.Description, updated.Description)
	assert.Equal(t, orig.Status, updated.Status)
	assert.Equal(t, orig.AssigneeID, updated.AssigneeID)

	// Identity fields cannot change through an update.
	assert.Equal(t, orig.Key, updated.Key)
	assert.Equal(t, orig.ProjectID, updated.ProjectID)
	assert.Equal(t, orig.ReporterID, updated.ReporterID)
	assert.Equal(t, orig.CreatedAt, updated.CreatedAt)
}

func TestUpdateIssue_RejectsInvalidValues(t *testing.T) {
	ws := Seed()
	ws.Login("1")
	orig, _ := ws.IssueByKey("TSTR-101")

	badStatus := "no-such-column"
	badPriority := domain.Priority("Urgent")
	updated, ok := ws.UpdateIssue(orig.ID, IssuePatch{Status: &badStatus, Priority: &badPriority})

	require.True(t, ok)
	assert.Equal(t, orig.Status, updated.Status, "unknown column is ignored")
	assert.Equal(t, orig.Priority, updated.Priority, "invalid priority is ignored")
}

func TestUpdateIssue_ReadOnlyAndUnknown(t *testing.T) {
	ws := Seed()
	ws.Login("3")
	orig, _ := ws.IssueByKey("TSTR-101")
	title := "nope"
	_, ok := ws.UpdateIssue(orig.ID, IssuePatch{Title: &title})
	assert.False(t, ok)

	ws.Login("1")
	_, ok = ws.UpdateIssue("no-such-id", IssuePatch{Title: &title})
	assert.False(t, ok)
}

func TestMoveIssue(t *testing.T) {
	ws := Seed()
	ws.Login("2")
	is, _ := ws.IssueByKey("TSTR-102")

	require.True(t, ws.MoveIssue(is.ID, "c4"))

	moved, _ := ws.IssueByKey("TSTR-102")
	assert.Equal(t, "c4", moved.Status)
}

func TestMoveIssue_ViewerDenied(t *testing.T) {
	var diag bytes.Buffer
	ws := Seed(WithDiagnostics(&diag))
	ws.Login("3")
	is, _ := ws.IssueByKey("TSTR-101")

	assert.False(t, ws.MoveIssue(is.ID, "c4"))

	unmoved, _ := ws.IssueByKey("TSTR-101")
	assert.Equal(t, "c2", unmoved.Status)
	assert.Contains(t, diag.String(), "read-only")
}

func TestAddComment(t *testing.T) {
	ws := Seed(WithClock(fixedClock()))
	ws.Login("2")
	is, _ := ws.IssueByKey("TSTR-101")

	require.True(t, ws.AddComment(is.ID, "Rebar delivery confirmed."))
	require.True(t, ws.AddComment(is.ID, "Pour scheduled for Friday."))

	got, _ := ws.IssueByKey("TSTR-101")
	require.Len(t, got.Comments, 2)
	assert.Equal(t, "Rebar delivery confirmed.", got.Comments[0].Text, "comments are append-only, in order")
	assert.Equal(t, "2", got.Comments[0].UserID)
	assert.Equal(t, fixedClock()(), got.Comments[0].CreatedAt)
	assert.NotEmpty(t, got.Comments[0].ID)
}

func TestAddComment_Rejections(t *testing.T) {
	ws := Seed()
	ws.Login("2")
	is, _ := ws.IssueByKey("TSTR-101")

	assert.False(t, ws.AddComment(is.ID, ""), "empty comment")
	assert.False(t, ws.AddComment("no-such-id", "text"), "unknown issue")

	ws.Login("3")
	assert.False(t, ws.AddComment(is.ID, "viewer comment"), "read-only session")
}

func TestCreateProject(t *testing.T) {
	ws := Seed(WithClock(fixedClock()))
	ws.Login("1")

	p, ok := ws.CreateProject(ProjectDraft{
		Name:      "Medan Ring Road",
		Key:       "MRR",
		MemberIDs: []string{"2", "3"},
	})

	require.True(t, ok)
	assert.Equal(t, "1", p.ManagerID, "creator manages the project")
	assert.Contains(t, p.MemberIDs, "1", "creator is always a member")
	assert.Contains(t, p.MemberIDs, "2")
	assert.Contains(t, p.MemberIDs, "3")

	active, _ := ws.ActiveProject()
	assert.Equal(t, p.ID, active.ID, "new project becomes active immediately")
}

func TestCreateProject_CreatorListedOnce(t *testing.T) {
	ws := Seed()
	ws.Login("1")

	p, ok := ws.CreateProject(ProjectDraft{Name: "X", Key: "XX", MemberIDs: []string{"1", "2"}})

	require.True(t, ok)
	count := 0
	for _, id := range p.MemberIDs {
		if id == "1" {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

func TestCreateProject_CapabilityAndKeyChecks(t *testing.T) {
	var diag bytes.Buffer
	ws := Seed(WithDiagnostics(&diag))

	ws.Login("2") // Developer: no create-project capability
	_, ok := ws.CreateProject(ProjectDraft{Name: "Nope", Key: "NP"})
	assert.False(t, ok)

	ws.Login("1")
	for _, key := range []string{"", "x", "TOOLONGKEY", "ab", "T1"} {
		_, ok := ws.CreateProject(ProjectDraft{Name: "Bad key", Key: key})
		assert.False(t, ok, "key %q should be rejected", key)
	}
	assert.Contains(t, diag.String(), "project create rejected")
}
