package user

type Role string

const (
	RoleAdmin  Role = "admin"
	RoleHeadGA Role = "head_ga"
	RoleHeadOS Role = "head_os"
	RoleUser   Role = "user"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleHeadGA, RoleHeadOS, RoleUser:
		return true
	default:
		return false
	}
}

func NewRole(s string) (Role, error) {
	role := Role(s)
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}

func AllRoles() []Role {
	return []Role{RoleAdmin, RoleHeadGA, RoleHeadOS, RoleUser}
}
