package constants

const (
	RoleAdmin   = "admin"
	RoleTeacher = "teacher"
	RoleStudent = "student"
)

var AllowedRoles = map[string]bool{
	RoleAdmin:   true,
	RoleTeacher: true,
	RoleStudent: true,
}
