// file: internals/features/tests/dto/test_dto.go
package dto

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"bodhira_backend/internals/features/tests/model"
)

/* ===============================
   Requests
=================================*/

// CreateTestRequest carries the AI-generated question snapshot as
// opaque JSON; the generator itself is an external service.
type CreateTestRequest struct {
	TestClassroomID uuid.UUID       `json:"test_classroom_id" validate:"required"`
	TestTitle       string          `json:"test_title" validate:"required,min=3,max=160"`
	TestTopic       string          `json:"test_topic" validate:"required,min=2,max=80"`
	TestDifficulty  string          `json:"test_difficulty" validate:"omitempty,oneof=easy medium hard"`
	TestQuestions   json.RawMessage `json:"test_questions" validate:"required"`
}

type UpdateTestRequest struct {
	TestTitle       *string `json:"test_title" validate:"omitempty,min=3,max=160"`
	TestIsPublished *bool   `json:"test_is_published"`
}

/* ===============================
   Responses
=================================*/

type TestResponse struct {
	TestID          uuid.UUID       `json:"test_id"`
	TestClassroomID uuid.UUID       `json:"test_classroom_id"`
	TestTitle       string          `json:"test_title"`
	TestTopic       string          `json:"test_topic"`
	TestDifficulty  string          `json:"test_difficulty"`
	TestCode        string          `json:"test_code"`
	TestQuestions   json.RawMessage `json:"test_questions,omitempty"`
	TestIsPublished bool            `json:"test_is_published"`
	TestCreatedAt   time.Time       `json:"test_created_at"`
}

// FromTestModel converts a row; withQuestions controls whether the full
// question snapshot (answers included) is exposed.
func FromTestModel(m *model.TestModel, withQuestions bool) TestResponse {
	resp := TestResponse{
		TestID:          m.TestID,
		TestClassroomID: m.TestClassroomID,
		TestTitle:       m.TestTitle,
		TestTopic:       m.TestTopic,
		TestDifficulty:  string(m.TestDifficulty),
		TestCode:        m.TestCode,
		TestIsPublished: m.TestIsPublished,
		TestCreatedAt:   m.TestCreatedAt,
	}
	if withQuestions {
		resp.TestQuestions = json.RawMessage(m.TestQuestions)
	}
	return resp
}
