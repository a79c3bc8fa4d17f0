package domain

// Role is the application role carried in the access token.
type Role string

const (
	RoleStudent Role = "student"
	RoleTeacher Role = "teacher"
	RoleParent  Role = "parent"
	RoleAdmin   Role = "admin"
)

func (r Role) String() string { return string(r) }

func (r Role) IsValid() bool {
	switch r {
	case RoleStudent, RoleTeacher, RoleParent, RoleAdmin:
		return true
	}
	return false
}

// CanSelectSubjects reports whether the role owns a subject selection.
func (r Role) CanSelectSubjects() bool {
	return r == RoleStudent || r == RoleAdmin
}
