package constants

// Role user di platform. Satu user satu role.
const (
	RoleTeacher = "teacher"
	RoleStudent = "student"
)

func IsValidRole(r string) bool {
	return r == RoleTeacher || r == RoleStudent
}
