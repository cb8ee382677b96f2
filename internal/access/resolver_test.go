package access

import (
	"testing"

	"github.com/ardiansyahp/siteboard/internal/domain"
	"github.com/ardiansyahp/siteboard/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVisibleProjects_AdminSeesEverything(t *testing.T) {
	admin := testutil.NewTestUser("Super User", testutil.WithRole(domain.RoleAdmin))
	all := []domain.Project{
		testutil.NewTestProject("Highway"),
		testutil.NewTestProject("Metro"),
		testutil.NewTestProject("Port"),
	}

	visible := VisibleProjects(all, admin)

	require.Len(t, visible, 3)
	for i := range all {
		assert.Equal(t, all[i].ID, visible[i].ID, "input order must be preserved")
	}
}

func TestVisibleProjects_MembershipRules(t *testing.T) {
	dev := testutil.NewTestUser("Farid")
	asManager := testutil.NewTestProject("Managed", testutil.WithManager(dev.ID))
	asMember := testutil.NewTestProject("Member of", testutil.WithMembers("x", dev.ID))
	unrelated := testutil.NewTestProject("Unrelated", testutil.WithMembers("x", "y"))

	visible := VisibleProjects([]domain.Project{asManager, asMember, unrelated}, dev)

	require.Len(t, visible, 2)
	assert.Equal(t, asManager.ID, visible[0].ID)
	assert.Equal(t, asMember.ID, visible[1].ID)
}

func TestVisibleProjects_InputNeverModified(t *testing.T) {
	u := testutil.NewTestUser("Firman", testutil.WithRole(domain.RoleViewer))
	all := []domain.Project{
		testutil.NewTestProject("A", testutil.WithMembers(u.ID)),
		testutil.NewTestProject("B"),
	}
	before := make([]domain.Project, len(all))
	copy(before, all)

	VisibleProjects(all, u)

	assert.Equal(t, before, all)
}

func TestDefaultProject_FirstVisible(t *testing.T) {
	u := testutil.NewTestUser("Farid")
	hidden := testutil.NewTestProject("Hidden")
	first := testutil.NewTestProject("First", testutil.WithMembers(u.ID))
	second := testutil.NewTestProject("Second", testutil.WithMembers(u.ID))

	p, ok := DefaultProject([]domain.Project{hidden, first, second}, u)

	require.True(t, ok)
	assert.Equal(t, first.ID, p.ID)
}

func TestDefaultProject_NoneVisible(t *testing.T) {
	u := testutil.NewTestUser("Outsider", testutil.WithRole(domain.RoleViewer))
	all := []domain.Project{testutil.NewTestProject("Private")}

	_, ok := DefaultProject(all, u)

	assert.False(t, ok)
}
