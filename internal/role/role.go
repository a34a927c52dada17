// Package role contains utilities for user roles.
package role

type Role int

const (
	RoleAdmin     Role = 200
	RoleUser      Role = 100
	RoleAnonymous Role = 0
)

func (r Role) String() string {
	switch r {
	case RoleAdmin:
		return "admin"
	case RoleUser:
		return "user"
	default:
		return "anonymous"
	}
}

// Of resolves the role of username. The admin is the single configured
// username; an empty adminUsername disables the admin role.
func Of(username, adminUsername string) Role {
	switch {
	case username == "":
		return RoleAnonymous
	case adminUsername != "" && username == adminUsername:
		return RoleAdmin
	default:
		return RoleUser
	}
}

// SeesAllRecipes reports whether the user page lists every recipe rather than
// only the user's own.
func (r Role) SeesAllRecipes() bool {
	return r == RoleAdmin
}
