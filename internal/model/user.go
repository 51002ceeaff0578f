package model

// Role is a named permission granted to user
type Role string

const (
	// RoleEmployee allows to read customers and gifts
	RoleEmployee Role = "EMPLOYEE"
	// RoleAdmin allows to insert and delete customers and gifts
	RoleAdmin Role = "ADMIN"
)

// Roles is a set of roles granted to user
type Roles []Role

// Has reports whether role is present in the set
func (r Roles) Has(role Role) bool {
	for _, granted := range r {
		if granted == role {
			return true
		}
	}
	return false
}

// HasAny reports whether at least one of provided roles is present in the set
func (r Roles) HasAny(roles ...Role) bool {
	for _, role := range roles {
		if r.Has(role) {
			return true
		}
	}
	return false
}

// Strings returns roles as plain strings
func (r Roles) Strings() []string {
	res := make([]string, 0, len(r))
	for _, role := range r {
		res = append(res, string(role))
	}
	return res
}

// RolesOf converts plain strings to roles
func RolesOf(values ...string) Roles {
	res := make(Roles, 0, len(values))
	for _, v := range values {
		res = append(res, Role(v))
	}
	return res
}

// User is user model entity used for credentials verification
type User struct {
	Username     string
	PasswordHash string
	Roles        Roles
}

// Principal is authenticated user
type Principal struct {
	Username string
	Roles    Roles
}
