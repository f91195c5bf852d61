// file: internals/features/results/model/test_result_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	testModel "bodhira_backend/internals/features/tests/model"
)

/*
=========================================================

	TEST RESULTS
	1 row = 1 completed attempt by 1 student
	Immutable once written; the analytics layer only reads.

=========================================================
*/
type TestResultModel struct {
	TestResultID          uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:test_result_id" json:"test_result_id"`
	TestResultTestID      uuid.UUID `gorm:"type:uuid;not null;index;column:test_result_test_id" json:"test_result_test_id"`
	TestResultClassroomID uuid.UUID `gorm:"type:uuid;not null;index;column:test_result_classroom_id" json:"test_result_classroom_id"`
	TestResultStudentID   uuid.UUID `gorm:"type:uuid;not null;index;column:test_result_student_id" json:"test_result_student_id"`

	// Percentage score, 0–100
	TestResultScore float64 `gorm:"type:numeric(5,2);not null;column:test_result_score" json:"test_result_score"`

	// Denormalized from the test row so aggregations skip the join
	TestResultTopic      string                   `gorm:"type:varchar(80);not null;column:test_result_topic" json:"test_result_topic"`
	TestResultDifficulty testModel.TestDifficulty `gorm:"type:varchar(10);not null;default:'medium';column:test_result_difficulty" json:"test_result_difficulty"`

	// Per-question answer snapshot (question id → chosen option, correctness)
	TestResultAnswers datatypes.JSON `gorm:"type:jsonb;column:test_result_answers" json:"test_result_answers"`

	TestResultCreatedAt time.Time `gorm:"autoCreateTime;column:test_result_created_at" json:"test_result_created_at"`
}

func (TestResultModel) TableName() string {
	return "test_results"
}
