package model

// Role is the closed set of access levels. Comparisons go through Level so
// "at least admin" is a single integer comparison, never string matching.
type Role string

const (
	RoleAnonymous  Role = "anonymous"
	RoleUser       Role = "user"
	RoleAdmin      Role = "admin"
	RoleSuperAdmin Role = "super_admin"
)

// Level returns the position of the role in the hierarchy
// anonymous < user < admin < super_admin. Unknown roles rank below anonymous.
func (r Role) Level() int {
	switch r {
	case RoleAnonymous:
		return 0
	case RoleUser:
		return 1
	case RoleAdmin:
		return 2
	case RoleSuperAdmin:
		return 3
	default:
		return -1
	}
}

// AtLeast reports whether r grants everything min grants.
func (r Role) AtLeast(min Role) bool {
	return r.Level() >= min.Level()
}

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r.Level() >= 0
}
