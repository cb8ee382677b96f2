package workspace

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogin_ActivatesDefaultProject(t *testing.T) {
	ws := Seed()

	require.True(t, ws.Login("2"), "Farid is a seeded member")

	u, ok := ws.CurrentUser()
	require.True(t, ok)
	assert.Equal(t, "Farid", u.Name)

	p, ok := ws.ActiveProject()
	require.True(t, ok)
	assert.Equal(t, "p1", p.ID, "first visible project becomes active")
}

func TestLogin_UnknownUser(t *testing.T) {
	ws := Seed()

	assert.False(t, ws.Login("99"))
	_, ok := ws.CurrentUser()
	assert.False(t, ok)
}

func TestLogin_ResetsSearch(t *testing.T) {
	ws := Seed()
	ws.Login("1")
	ws.SetSearch("bridge")

	ws.Login("2")

	assert.Empty(t, ws.Search())
}

func TestLogout_ClearsSession(t *testing.T) {
	ws := Seed()
	ws.Login("1")

	ws.Logout()

	_, ok := ws.CurrentUser()
	assert.False(t, ok)
	_, ok = ws.ActiveProject()
	assert.False(t, ok)
	assert.True(t, ws.Capabilities().ReadOnly, "logged-out sessions are read-only")
}

func TestVisibleProjects_PerRole(t *testing.T) {
	tests := []struct {
		name   string
		userID string
		want   []string
	}{
		{"manager of both", "1", []string{"p1", "p2"}},
		{"member of both", "2", []string{"p1", "p2"}},
		{"viewer on p1 only", "3", []string{"p1"}},
		{"admin sees all", "4", []string{"p1", "p2"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ws := Seed()
			require.True(t, ws.Login(tc.userID))

			var ids []string
			for _, p := range ws.VisibleProjects() {
				ids = append(ids, p.ID)
			}
			assert.Equal(t, tc.want, ids)
		})
	}
}

func TestSetActiveProject_RefusesInvisible(t *testing.T) {
	var diag bytes.Buffer
	ws := Seed(WithDiagnostics(&diag))
	ws.Login("3") // Firman is not on p2

	assert.False(t, ws.SetActiveProject("p2"))

	p, ok := ws.ActiveProject()
	require.True(t, ok)
	assert.Equal(t, "p1", p.ID, "active project unchanged after refused switch")
	assert.Contains(t, diag.String(), "project switch rejected")
}

func TestSetActiveProject_SwitchesVisible(t *testing.T) {
	ws := Seed()
	ws.Login("2")

	require.True(t, ws.SetActiveProject("p2"))

	p, _ := ws.ActiveProject()
	assert.Equal(t, "p2", p.ID)
}

func TestVisibleIssues_FollowsActiveProjectAndSearch(t *testing.T) {
	ws := Seed()
	ws.Login("2")

	assert.Len(t, ws.VisibleIssues(), 4, "p1 has four seeded issues")

	ws.SetSearch("cement")
	require.Len(t, ws.VisibleIssues(), 1)
	assert.Equal(t, "TSTR-102", ws.VisibleIssues()[0].Key)

	ws.SetSearch("")
	ws.SetActiveProject("p2")
	assert.Len(t, ws.VisibleIssues(), 2)
}

func TestIssueByKey(t *testing.T) {
	ws := Seed()

	is, ok := ws.IssueByKey("JMU-101")
	require.True(t, ok)
	assert.Equal(t, "Station A Blueprint", is.Title)

	_, ok = ws.IssueByKey("JMU-999")
	assert.False(t, ok)
}
