package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectValidateKey(t *testing.T) {
	tests := []struct {
		name string
		key  string
		ok   bool
	}{
		{"typical", "TSTR", true},
		{"minimum length", "JM", true},
		{"maximum length", "ABCDEF", true},
		{"empty", "", false},
		{"too short", "A", false},
		{"too long", "ABCDEFG", false},
		{"lowercase", "tstr", false},
		{"digits", "TS1", false},
		{"hyphen", "TS-R", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := Project{Key: tc.key}
			err := p.ValidateKey()
			if tc.ok {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestProjectHasMember(t *testing.T) {
	p := Project{ManagerID: "1", MemberIDs: []string{"2", "3"}}

	assert.True(t, p.HasMember("1"), "manager is implicitly a member")
	assert.True(t, p.HasMember("2"))
	assert.False(t, p.HasMember("9"))
}

func TestColumnsSortedAndFirst(t *testing.T) {
	cols := Columns{
		{ID: "c3", Title: "In Review", Order: 3},
		{ID: "c1", Title: "To Do", Order: 1},
		{ID: "c2", Title: "In Progress", Order: 2},
	}

	sorted := cols.Sorted()
	assert.Equal(t, []string{"c1", "c2", "c3"}, []string{sorted[0].ID, sorted[1].ID, sorted[2].ID})
	assert.Equal(t, "c3", cols[0].ID, "Sorted returns a copy")

	first, ok := cols.First()
	require.True(t, ok)
	assert.Equal(t, "c1", first.ID)

	_, ok = Columns{}.First()
	assert.False(t, ok)
}

func TestPriorityRank(t *testing.T) {
	assert.Greater(t, PriorityCritical.Rank(), PriorityHigh.Rank())
	assert.Greater(t, PriorityHigh.Rank(), PriorityMedium.Rank())
	assert.Greater(t, PriorityMedium.Rank(), PriorityLow.Rank())

	assert.False(t, Priority("Urgent").Valid())
	assert.False(t, IssueType("Incident").Valid())
	assert.False(t, Role("Intern").Valid())
}

func TestUserDirectoryNameOf(t *testing.T) {
	d := UserDirectory{{ID: "1", Name: "Rafa Maheswara"}}

	assert.Equal(t, "Rafa Maheswara", d.NameOf("1"))
	assert.Equal(t, "—", d.NameOf(""), "unassigned")
	assert.Equal(t, "—", d.NameOf("missing"))
}
