package workspace

import "fmt"

// issueKeyBase is the offset issue numbering starts from: the first
// issue in a project is <key>-101.
const issueKeyBase = 100

// NextIssueKey derives the key for a new issue from the project key
// and the number of issues the project already has.
func NextIssueKey(projectKey string, existingCount int) string {
	return fmt.Sprintf("%s-%d", projectKey, issueKeyBase+existingCount+1)
}
