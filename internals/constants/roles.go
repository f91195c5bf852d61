package constants

import "fmt"

// Roles carried in the JWT "role" claim
const (
	RoleTeacher = "teacher"
	RoleStudent = "student"
	RoleAdmin   = "admin"
)

// Role error message templates
const (
	ErrOnlyTeachersCanAccess = "Only teachers can access %s."
	ErrOnlyStudentsCanAccess = "Only students can access %s."
	ErrOnlyAdminsCanAccess   = "Only admins can access %s."
)

func RoleErrorTeacher(feature string) string {
	return fmt.Sprintf(ErrOnlyTeachersCanAccess, feature)
}

func RoleErrorStudent(feature string) string {
	return fmt.Sprintf(ErrOnlyStudentsCanAccess, feature)
}

func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminsCanAccess, feature)
}

// ==========================
// ✅ Grouped Role Slices
// ==========================
var (
	AllRoles = []string{
		RoleTeacher,
		RoleStudent,
		RoleAdmin,
	}

	TeacherAndAbove = []string{
		RoleTeacher,
		RoleAdmin,
	}
)
