package access

import "github.com/ardiansyahp/siteboard/internal/domain"

// VisibleProjects returns the subset of projects the user may see, in
// the input order. A project is visible when the user is an Admin, the
// project's manager, or in its member set. Pure: the input is never
// modified.
func VisibleProjects(all []domain.Project, u domain.User) []domain.Project {
	var visible []domain.Project
	for _, p := range all {
		if u.Role == domain.RoleAdmin || p.HasMember(u.ID) {
			visible = append(visible, p)
		}
	}
	return visible
}

// DefaultProject picks the project activated at login: the first
// visible project. ok is false when the user can see no projects, in
// which case the caller must present a "no project" state.
func DefaultProject(all []domain.Project, u domain.User) (domain.Project, bool) {
	visible := VisibleProjects(all, u)
	if len(visible) == 0 {
		return domain.Project{}, false
	}
	return visible[0], true
}
