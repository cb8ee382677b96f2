package domain

import (
	"fmt"
	"regexp"
	"time"
)

var projectKeyPattern = regexp.MustCompile(`^[A-Z]{2,6}$`)

// Project is a container for issues. The manager owns the project and
// is implicitly a member for access purposes even when absent from
// MemberIDs.
type Project struct {
	ID          string
	Name        string
	Key         string
	Description string
	ManagerID   string
	MemberIDs   []string
	CreatedAt   time.Time
}

// ValidateKey checks that the project key is 2-6 uppercase letters
// (e.g. TSTR, JMU). The key prefixes every issue key in the project.
func (p *Project) ValidateKey() error {
	if p.Key == "" {
		return fmt.Errorf("project key is required")
	}
	if !projectKeyPattern.MatchString(p.Key) {
		return fmt.Errorf("project key %q must be 2-6 uppercase letters (e.g. TSTR)", p.Key)
	}
	return nil
}

// HasMember reports whether the user id is the manager or in the member set.
func (p *Project) HasMember(userID string) bool {
	if p.ManagerID == userID {
		return true
	}
	for _, id := range p.MemberIDs {
		if id == userID {
			return true
		}
	}
	return false
}
