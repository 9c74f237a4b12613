package model

// Role is a user's role, either globally or within one tenant.
// Roles carry no behavior; comparisons are free functions so that
// role checks never travel embedded in data records.
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleManager Role = "manager"
	RoleMember  Role = "member"
	RoleViewer  Role = "viewer"
)

// ValidRole reports whether r is one of the known roles
func ValidRole(r Role) bool {
	switch r {
	case RoleAdmin, RoleManager, RoleMember, RoleViewer:
		return true
	}
	return false
}

// HasRole reports whether r equals want
func HasRole(r, want Role) bool {
	return r == want
}

// HasAnyRole reports whether r is one of the wanted roles
func HasAnyRole(r Role, want ...Role) bool {
	for _, w := range want {
		if r == w {
			return true
		}
	}
	return false
}
