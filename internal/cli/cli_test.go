package cli

import (
	"io"
	"os"
	"strings"
	"testing"

	"github.com/ardiansyahp/siteboard/internal/workspace"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runCommand executes args against a freshly seeded workspace,
// capturing everything the handlers print to stdout.
func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	app := &App{
		WS:            workspace.Seed(),
		IsInteractive: func() bool { return false },
	}

	origStdout := os.Stdout
	pr, pw, err := os.Pipe()
	require.NoError(t, err)
	os.Stdout = pw

	root := NewRootCmd(app)
	root.SetOut(pw)
	root.SetErr(pw)
	root.SetArgs(args)
	root.SilenceUsage = true
	root.SilenceErrors = true

	var buf strings.Builder
	done := make(chan struct{})
	go func() {
		io.Copy(&buf, pr)
		close(done)
	}()

	execErr := root.Execute()

	pw.Close()
	os.Stdout = origStdout
	<-done

	return buf.String(), execErr
}

func TestWhoami(t *testing.T) {
	out, err := runCommand(t, "whoami", "--user", "Rafa Maheswara")

	require.NoError(t, err)
	assert.Contains(t, out, "Rafa Maheswara (Manager)")
	assert.Contains(t, out, "read-only:       false")
	assert.Contains(t, out, "create projects: true")
}

func TestWhoami_ViewerIsReadOnly(t *testing.T) {
	out, err := runCommand(t, "whoami", "--user", "Firman")

	require.NoError(t, err)
	assert.Contains(t, out, "(Viewer)")
	assert.Contains(t, out, "read-only:       true")
}

func TestWhoami_RequiresUser(t *testing.T) {
	_, err := runCommand(t, "whoami")
	assert.Error(t, err)
}

func TestWhoami_UnknownUser(t *testing.T) {
	_, err := runCommand(t, "whoami", "--user", "nobody")
	assert.ErrorContains(t, err, "unknown user")
}

func TestProjectList_RespectsVisibility(t *testing.T) {
	out, err := runCommand(t, "project", "list", "--user", "3") // Firman: p1 only

	require.NoError(t, err)
	assert.Contains(t, out, "Trans Sumatra Phase 2")
	assert.NotContains(t, out, "Jakarta Metro Upgrade")
}

func TestIssueList_SearchFilter(t *testing.T) {
	out, err := runCommand(t, "issue", "list", "--user", "2", "--search", "cement")

	require.NoError(t, err)
	assert.Contains(t, out, "TSTR-102")
	assert.NotContains(t, out, "TSTR-101")
}

func TestIssueMove(t *testing.T) {
	out, err := runCommand(t, "issue", "move", "TSTR-102", "c2", "--user", "2")

	require.NoError(t, err)
	assert.Contains(t, out, "TSTR-102")
	assert.Contains(t, out, "In Progress")
}

func TestIssueMove_ViewerRejected(t *testing.T) {
	_, err := runCommand(t, "issue", "move", "TSTR-102", "c2", "--user", "3")
	assert.ErrorContains(t, err, "move rejected")
}

func TestIssueMove_UnknownTargets(t *testing.T) {
	_, err := runCommand(t, "issue", "move", "TSTR-999", "c2", "--user", "2")
	assert.ErrorContains(t, err, "issue not found")

	_, err = runCommand(t, "issue", "move", "TSTR-102", "c99", "--user", "2")
	assert.ErrorContains(t, err, "unknown column")
}

func TestRoot_NonInteractiveRefusesTUI(t *testing.T) {
	_, err := runCommand(t)
	assert.ErrorContains(t, err, "not a terminal")
}
