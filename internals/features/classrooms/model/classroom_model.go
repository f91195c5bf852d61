// file: internals/features/classrooms/model/classroom_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ClassroomModel struct {
	ClassroomID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:classroom_id" json:"classroom_id"`
	ClassroomTeacherID uuid.UUID `gorm:"type:uuid;not null;index;column:classroom_teacher_id" json:"classroom_teacher_id"`

	ClassroomName    string `gorm:"type:varchar(120);not null;column:classroom_name" json:"classroom_name"`
	ClassroomSubject string `gorm:"type:varchar(80);column:classroom_subject" json:"classroom_subject"`

	// Short join code students use to enroll
	ClassroomCode string `gorm:"type:varchar(12);not null;uniqueIndex;column:classroom_code" json:"classroom_code"`

	ClassroomIsActive bool `gorm:"not null;default:true;column:classroom_is_active" json:"classroom_is_active"`

	ClassroomCreatedAt time.Time      `gorm:"autoCreateTime;column:classroom_created_at" json:"classroom_created_at"`
	ClassroomUpdatedAt time.Time      `gorm:"autoUpdateTime;column:classroom_updated_at" json:"classroom_updated_at"`
	ClassroomDeletedAt gorm.DeletedAt `gorm:"column:classroom_deleted_at;index" json:"classroom_deleted_at,omitempty"`
}

func (ClassroomModel) TableName() string {
	return "classrooms"
}
