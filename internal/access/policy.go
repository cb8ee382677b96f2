package access

import (
	"fmt"

	"github.com/ardiansyahp/siteboard/internal/domain"
)

// Capabilities is the set of things a role may do in the workspace.
type Capabilities struct {
	ReadOnly          bool
	CanManageSettings bool
	CanCreateProject  bool
}

// CapabilitiesOf maps a role to its capability set.
//
// The table is fixed, not data-driven:
//
//	Admin      write, settings, create-project
//	Manager    write, settings, create-project
//	Developer  write
//	Viewer     read-only
//
// An unrecognized role is a programming error and panics.
func CapabilitiesOf(role domain.Role) Capabilities {
	switch role {
	case domain.RoleAdmin, domain.RoleManager:
		return Capabilities{CanManageSettings: true, CanCreateProject: true}
	case domain.RoleDeveloper:
		return Capabilities{}
	case domain.RoleViewer:
		return Capabilities{ReadOnly: true}
	}
	panic(fmt.Sprintf("access: unknown role %q", role))
}
