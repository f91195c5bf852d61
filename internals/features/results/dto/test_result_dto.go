// file: internals/features/results/dto/test_result_dto.go
package dto

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"bodhira_backend/internals/features/results/model"
)

/* ===============================
   Requests
=================================*/

// SubmitResultRequest records one completed attempt. The score is the
// graded percentage; the answer snapshot rides along for review views.
type SubmitResultRequest struct {
	TestCode string          `json:"test_code" validate:"required,len=6"`
	Score    float64         `json:"score" validate:"gte=0,lte=100"`
	Answers  json.RawMessage `json:"answers" validate:"required"`
}

/* ===============================
   Responses
=================================*/

type TestResultResponse struct {
	TestResultID uuid.UUID `json:"test_result_id"`
	TestID       uuid.UUID `json:"test_id"`
	ClassroomID  uuid.UUID `json:"classroom_id"`
	StudentID    uuid.UUID `json:"student_id"`
	Score        float64   `json:"score"`
	Topic        string    `json:"topic"`
	Difficulty   string    `json:"difficulty"`
	CreatedAt    time.Time `json:"created_at"`
}

func FromTestResultModel(m *model.TestResultModel) TestResultResponse {
	return TestResultResponse{
		TestResultID: m.TestResultID,
		TestID:       m.TestResultTestID,
		ClassroomID:  m.TestResultClassroomID,
		StudentID:    m.TestResultStudentID,
		Score:        m.TestResultScore,
		Topic:        m.TestResultTopic,
		Difficulty:   string(m.TestResultDifficulty),
		CreatedAt:    m.TestResultCreatedAt,
	}
}
