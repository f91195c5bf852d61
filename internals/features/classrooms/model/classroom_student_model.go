// file: internals/features/classrooms/model/classroom_student_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type ClassroomStudentStatus string

const (
	ClassroomStudentActive  ClassroomStudentStatus = "active"
	ClassroomStudentRemoved ClassroomStudentStatus = "removed"
)

// ClassroomStudentModel: 1 row = 1 student enrolled in 1 classroom
type ClassroomStudentModel struct {
	ClassroomStudentID          uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:classroom_student_id" json:"classroom_student_id"`
	ClassroomStudentClassroomID uuid.UUID `gorm:"type:uuid;not null;index:idx_classroom_student,unique;column:classroom_student_classroom_id" json:"classroom_student_classroom_id"`
	ClassroomStudentStudentID   uuid.UUID `gorm:"type:uuid;not null;index:idx_classroom_student,unique;column:classroom_student_student_id" json:"classroom_student_student_id"`

	ClassroomStudentStatus ClassroomStudentStatus `gorm:"type:varchar(16);not null;default:'active';column:classroom_student_status" json:"classroom_student_status"`

	ClassroomStudentJoinedAt time.Time `gorm:"autoCreateTime;column:classroom_student_joined_at" json:"classroom_student_joined_at"`
}

func (ClassroomStudentModel) TableName() string {
	return "classroom_students"
}
