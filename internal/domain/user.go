package domain

// Role is a workspace-wide access role. Roles are fixed at
// provisioning time; there is no runtime role management.
type Role string

const (
	RoleAdmin     Role = "Admin"
	RoleManager   Role = "Manager"
	RoleDeveloper Role = "Developer"
	RoleViewer    Role = "Viewer"
)

// Valid reports whether r is one of the defined roles.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleManager, RoleDeveloper, RoleViewer:
		return true
	}
	return false
}

// User is a workspace member.
type User struct {
	ID     string
	Name   string
	Avatar string
	Role   Role
}

// UserDirectory is the fixed set of workspace members.
type UserDirectory []User

// ByID returns the user with the given id.
func (d UserDirectory) ByID(id string) (User, bool) {
	for _, u := range d {
		if u.ID == id {
			return u, true
		}
	}
	return User{}, false
}

// NameOf returns the display name for a user id, or an em dash
// placeholder for empty or unknown ids (e.g. unassigned issues).
func (d UserDirectory) NameOf(id string) string {
	if id == "" {
		return "—"
	}
	if u, ok := d.ByID(id); ok {
		return u.Name
	}
	return "—"
}
