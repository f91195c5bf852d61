// file: internals/features/tests/model/test_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type TestDifficulty string

const (
	TestDifficultyEasy   TestDifficulty = "easy"
	TestDifficultyMedium TestDifficulty = "medium"
	TestDifficultyHard   TestDifficulty = "hard"
)

/*
=========================================================

	TESTS
	1 row = 1 generated multiple-choice test
	- questions : full question/option/answer snapshot in JSONB
	              (produced by the external AI generator)

=========================================================
*/
type TestModel struct {
	TestID          uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:test_id" json:"test_id"`
	TestClassroomID uuid.UUID `gorm:"type:uuid;not null;index;column:test_classroom_id" json:"test_classroom_id"`
	TestTeacherID   uuid.UUID `gorm:"type:uuid;not null;index;column:test_teacher_id" json:"test_teacher_id"`

	TestTitle      string         `gorm:"type:varchar(160);not null;column:test_title" json:"test_title"`
	TestTopic      string         `gorm:"type:varchar(80);not null;column:test_topic" json:"test_topic"`
	TestDifficulty TestDifficulty `gorm:"type:varchar(10);not null;default:'medium';column:test_difficulty" json:"test_difficulty"`

	// Short code students enter to open the test
	TestCode string `gorm:"type:varchar(12);not null;uniqueIndex;column:test_code" json:"test_code"`

	TestQuestions   datatypes.JSON `gorm:"type:jsonb;column:test_questions" json:"test_questions"`
	TestIsPublished bool           `gorm:"not null;default:false;column:test_is_published" json:"test_is_published"`

	TestCreatedAt time.Time      `gorm:"autoCreateTime;column:test_created_at" json:"test_created_at"`
	TestUpdatedAt time.Time      `gorm:"autoUpdateTime;column:test_updated_at" json:"test_updated_at"`
	TestDeletedAt gorm.DeletedAt `gorm:"column:test_deleted_at;index" json:"test_deleted_at,omitempty"`
}

func (TestModel) TableName() string {
	return "tests"
}
