// file: internals/features/classrooms/dto/classroom_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	"bodhira_backend/internals/features/classrooms/model"
)

/* ===============================
   Requests
=================================*/

type CreateClassroomRequest struct {
	ClassroomName    string `json:"classroom_name" validate:"required,min=3,max=120"`
	ClassroomSubject string `json:"classroom_subject" validate:"max=80"`
}

type UpdateClassroomRequest struct {
	ClassroomName     *string `json:"classroom_name" validate:"omitempty,min=3,max=120"`
	ClassroomSubject  *string `json:"classroom_subject" validate:"omitempty,max=80"`
	ClassroomIsActive *bool   `json:"classroom_is_active"`
}

type JoinClassroomRequest struct {
	ClassroomCode string `json:"classroom_code" validate:"required,len=6"`
}

/* ===============================
   Responses
=================================*/

type ClassroomResponse struct {
	ClassroomID       uuid.UUID `json:"classroom_id"`
	ClassroomName     string    `json:"classroom_name"`
	ClassroomSubject  string    `json:"classroom_subject"`
	ClassroomCode     string    `json:"classroom_code"`
	ClassroomIsActive bool      `json:"classroom_is_active"`
	ClassroomCreated  time.Time `json:"classroom_created_at"`
}

func FromClassroomModel(m *model.ClassroomModel) ClassroomResponse {
	return ClassroomResponse{
		ClassroomID:       m.ClassroomID,
		ClassroomName:     m.ClassroomName,
		ClassroomSubject:  m.ClassroomSubject,
		ClassroomCode:     m.ClassroomCode,
		ClassroomIsActive: m.ClassroomIsActive,
		ClassroomCreated:  m.ClassroomCreatedAt,
	}
}

type RosterEntry struct {
	StudentID uuid.UUID `json:"student_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	JoinedAt  time.Time `json:"joined_at"`
}
