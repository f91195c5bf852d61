// file: internals/features/classrooms/controller/classroom_controller.go
package controller

import (
	"errors"
	"log"
	"time"

	validator "github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	cdto "bodhira_backend/internals/features/classrooms/dto"
	cmodel "bodhira_backend/internals/features/classrooms/model"
	helper "bodhira_backend/internals/helpers"
	helperAuth "bodhira_backend/internals/helpers/auth"
)

type ClassroomController struct {
	DB        *gorm.DB
	validator *validator.Validate
}

func NewClassroomController(db *gorm.DB) *ClassroomController {
	return &ClassroomController{DB: db}
}

func (ctl *ClassroomController) ensureValidator() {
	if ctl.validator == nil {
		ctl.validator = validator.New()
	}
}

/* =========================================================
   Helpers — ownership
========================================================= */

func (ctl *ClassroomController) findOwned(c *fiber.Ctx) (*cmodel.ClassroomModel, error) {
	classroomID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Invalid classroom ID")
	}
	teacherID, err := helperAuth.GetUserID(c)
	if err != nil {
		return nil, err
	}

	var m cmodel.ClassroomModel
	if err := ctl.DB.
		Where("classroom_id = ?", classroomID).
		First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Classroom not found")
		}
		log.Printf("[ClassroomController] lookup error: %v", err)
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Internal Server Error")
	}
	if m.ClassroomTeacherID != teacherID {
		return nil, fiber.NewError(fiber.StatusForbidden, "You do not own this classroom")
	}
	return &m, nil
}

func respondErr(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return helper.JsonError(c, fe.Code, fe.Message)
	}
	return helper.JsonError(c, fiber.StatusInternalServerError, "Internal Server Error")
}

/* =========================================================
   Handlers — teacher
========================================================= */

// POST /classrooms
func (ctl *ClassroomController) Create(c *fiber.Ctx) error {
	ctl.ensureValidator()

	teacherID, err := helperAuth.GetUserID(c)
	if err != nil {
		return respondErr(c, err)
	}

	var req cdto.CreateClassroomRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := ctl.validator.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	code, err := helper.EnsureUniqueCode(ctl.DB, "classrooms", "classroom_code", 6)
	if err != nil {
		log.Printf("[ClassroomController] code generation error: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal Server Error")
	}

	m := cmodel.ClassroomModel{
		ClassroomTeacherID: teacherID,
		ClassroomName:      req.ClassroomName,
		ClassroomSubject:   req.ClassroomSubject,
		ClassroomCode:      code,
		ClassroomIsActive:  true,
	}
	if err := ctl.DB.Create(&m).Error; err != nil {
		log.Printf("[ClassroomController] create error: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal Server Error")
	}

	return helper.JsonCreated(c, "Classroom created", cdto.FromClassroomModel(&m))
}

// GET /classrooms
func (ctl *ClassroomController) List(c *fiber.Ctx) error {
	teacherID, err := helperAuth.GetUserID(c)
	if err != nil {
		return respondErr(c, err)
	}

	paging := helper.ResolvePaging(c, 20, 100)

	var total int64
	base := ctl.DB.Model(&cmodel.ClassroomModel{}).
		Where("classroom_teacher_id = ?", teacherID)
	if err := base.Count(&total).Error; err != nil {
		log.Printf("[ClassroomController] count error: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal Server Error")
	}

	var rows []cmodel.ClassroomModel
	if err := base.
		Order("classroom_created_at DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		log.Printf("[ClassroomController] list error: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal Server Error")
	}

	out := make([]cdto.ClassroomResponse, 0, len(rows))
	for i := range rows {
		out = append(out, cdto.FromClassroomModel(&rows[i]))
	}
	pagination := helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage)
	return helper.JsonList(c, "Classrooms", out, &pagination)
}

// GET /classrooms/:id
func (ctl *ClassroomController) GetByID(c *fiber.Ctx) error {
	m, err := ctl.findOwned(c)
	if err != nil {
		return respondErr(c, err)
	}
	return helper.JsonOK(c, "Classroom detail", cdto.FromClassroomModel(m))
}

// PATCH /classrooms/:id
func (ctl *ClassroomController) Patch(c *fiber.Ctx) error {
	ctl.ensureValidator()

	m, err := ctl.findOwned(c)
	if err != nil {
		return respondErr(c, err)
	}

	var req cdto.UpdateClassroomRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := ctl.validator.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	updates := map[string]any{}
	if req.ClassroomName != nil {
		updates["classroom_name"] = *req.ClassroomName
	}
	if req.ClassroomSubject != nil {
		updates["classroom_subject"] = *req.ClassroomSubject
	}
	if req.ClassroomIsActive != nil {
		updates["classroom_is_active"] = *req.ClassroomIsActive
	}
	if len(updates) == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Nothing to update")
	}
	updates["classroom_updated_at"] = time.Now()

	if err := ctl.DB.Model(m).Updates(updates).Error; err != nil {
		log.Printf("[ClassroomController] update error: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal Server Error")
	}
	return helper.JsonUpdated(c, "Classroom updated", cdto.FromClassroomModel(m))
}

// DELETE /classrooms/:id (soft delete)
func (ctl *ClassroomController) Delete(c *fiber.Ctx) error {
	m, err := ctl.findOwned(c)
	if err != nil {
		return respondErr(c, err)
	}
	if err := ctl.DB.Delete(m).Error; err != nil {
		log.Printf("[ClassroomController] delete error: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal Server Error")
	}
	return helper.JsonDeleted(c, "Classroom deleted", fiber.Map{"classroom_id": m.ClassroomID})
}

// GET /classrooms/:id/students
func (ctl *ClassroomController) Roster(c *fiber.Ctx) error {
	m, err := ctl.findOwned(c)
	if err != nil {
		return respondErr(c, err)
	}

	var rows []cdto.RosterEntry
	if err := ctl.DB.Raw(`
		SELECT cs.classroom_student_student_id AS student_id,
		       u.user_name                    AS name,
		       u.user_email                   AS email,
		       cs.classroom_student_joined_at AS joined_at
		  FROM classroom_students cs
		  JOIN users u ON u.user_id = cs.classroom_student_student_id
		 WHERE cs.classroom_student_classroom_id = ?
		   AND cs.classroom_student_status = 'active'
		 ORDER BY u.user_name ASC
	`, m.ClassroomID).Scan(&rows).Error; err != nil {
		log.Printf("[ClassroomController] roster error: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal Server Error")
	}
	return helper.JsonOK(c, "Classroom roster", rows)
}

/* =========================================================
   Handlers — student
========================================================= */

// POST /classrooms/join
func (ctl *ClassroomController) Join(c *fiber.Ctx) error {
	ctl.ensureValidator()

	studentID, err := helperAuth.GetUserID(c)
	if err != nil {
		return respondErr(c, err)
	}

	var req cdto.JoinClassroomRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := ctl.validator.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var m cmodel.ClassroomModel
	if err := ctl.DB.
		Where("classroom_code = ? AND classroom_is_active = true", req.ClassroomCode).
		First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Classroom not found")
		}
		log.Printf("[ClassroomController] join lookup error: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal Server Error")
	}

	enrollment := cmodel.ClassroomStudentModel{
		ClassroomStudentClassroomID: m.ClassroomID,
		ClassroomStudentStudentID:   studentID,
		ClassroomStudentStatus:      cmodel.ClassroomStudentActive,
	}
	// re-join reactivates a removed enrollment
	err = ctl.DB.
		Where("classroom_student_classroom_id = ? AND classroom_student_student_id = ?",
			m.ClassroomID, studentID).
		Assign(map[string]any{"classroom_student_status": cmodel.ClassroomStudentActive}).
		FirstOrCreate(&enrollment).Error
	if err != nil {
		log.Printf("[ClassroomController] join error: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal Server Error")
	}

	return helper.JsonOK(c, "Joined classroom", cdto.FromClassroomModel(&m))
}
