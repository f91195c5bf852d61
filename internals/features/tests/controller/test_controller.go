// file: internals/features/tests/controller/test_controller.go
package controller

import (
	"errors"
	"log"
	"time"

	validator "github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	tdto "bodhira_backend/internals/features/tests/dto"
	tmodel "bodhira_backend/internals/features/tests/model"
	helper "bodhira_backend/internals/helpers"
	helperAuth "bodhira_backend/internals/helpers/auth"
)

type TestController struct {
	DB        *gorm.DB
	validator *validator.Validate
}

func NewTestController(db *gorm.DB) *TestController {
	return &TestController{DB: db}
}

func (ctl *TestController) ensureValidator() {
	if ctl.validator == nil {
		ctl.validator = validator.New()
	}
}

/* =========================================================
   Helpers — scope
========================================================= */

// classroomOwner returns the owning teacher of a classroom (Nil when absent).
func (ctl *TestController) classroomOwner(classroomID uuid.UUID) (uuid.UUID, error) {
	var ownerStr string
	if err := ctl.DB.
		Raw(`SELECT classroom_teacher_id::text
		       FROM classrooms
		      WHERE classroom_id = ? AND classroom_deleted_at IS NULL`,
			classroomID).
		Scan(&ownerStr).Error; err != nil {
		return uuid.Nil, err
	}
	if ownerStr == "" {
		return uuid.Nil, nil
	}
	return uuid.Parse(ownerStr)
}

func (ctl *TestController) findOwned(c *fiber.Ctx) (*tmodel.TestModel, error) {
	testID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Invalid test ID")
	}
	teacherID, err := helperAuth.GetUserID(c)
	if err != nil {
		return nil, err
	}

	var m tmodel.TestModel
	if err := ctl.DB.Where("test_id = ?", testID).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Test not found")
		}
		log.Printf("[TestController] lookup error: %v", err)
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Internal Server Error")
	}
	if m.TestTeacherID != teacherID {
		return nil, fiber.NewError(fiber.StatusForbidden, "You do not own this test")
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

// POST /tests
func (ctl *TestController) Create(c *fiber.Ctx) error {
	ctl.ensureValidator()

	teacherID, err := helperAuth.GetUserID(c)
	if err != nil {
		return respondErr(c, err)
	}

	var req tdto.CreateTestRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := ctl.validator.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	owner, err := ctl.classroomOwner(req.TestClassroomID)
	if err != nil {
		log.Printf("[TestController] classroom lookup error: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal Server Error")
	}
	if owner == uuid.Nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Classroom not found")
	}
	if owner != teacherID {
		return helper.JsonError(c, fiber.StatusForbidden, "You do not own this classroom")
	}

	difficulty := tmodel.TestDifficulty(req.TestDifficulty)
	if difficulty == "" {
		difficulty = tmodel.TestDifficultyMedium
	}

	code, err := helper.EnsureUniqueCode(ctl.DB, "tests", "test_code", 6)
	if err != nil {
		log.Printf("[TestController] code generation error: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal Server Error")
	}

	m := tmodel.TestModel{
		TestClassroomID: req.TestClassroomID,
		TestTeacherID:   teacherID,
		TestTitle:       req.TestTitle,
		TestTopic:       req.TestTopic,
		TestDifficulty:  difficulty,
		TestCode:        code,
		TestQuestions:   datatypes.JSON(req.TestQuestions),
	}
	if err := ctl.DB.Create(&m).Error; err != nil {
		log.Printf("[TestController] create error: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal Server Error")
	}

	return helper.JsonCreated(c, "Test created", tdto.FromTestModel(&m, true))
}

// GET /tests?classroom_id=
func (ctl *TestController) ListByClassroom(c *fiber.Ctx) error {
	teacherID, err := helperAuth.GetUserID(c)
	if err != nil {
		return respondErr(c, err)
	}
	classroomID, err := uuid.Parse(c.Query("classroom_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "classroom_id is required")
	}

	owner, err := ctl.classroomOwner(classroomID)
	if err != nil {
		log.Printf("[TestController] classroom lookup error: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal Server Error")
	}
	if owner == uuid.Nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Classroom not found")
	}
	if owner != teacherID {
		return helper.JsonError(c, fiber.StatusForbidden, "You do not own this classroom")
	}

	paging := helper.ResolvePaging(c, 20, 100)

	var total int64
	base := ctl.DB.Model(&tmodel.TestModel{}).
		Where("test_classroom_id = ?", classroomID)
	if err := base.Count(&total).Error; err != nil {
		log.Printf("[TestController] count error: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal Server Error")
	}

	var rows []tmodel.TestModel
	if err := base.
		Order("test_created_at DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		log.Printf("[TestController] list error: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal Server Error")
	}

	out := make([]tdto.TestResponse, 0, len(rows))
	for i := range rows {
		out = append(out, tdto.FromTestModel(&rows[i], false))
	}
	pagination := helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage)
	return helper.JsonList(c, "Tests", out, &pagination)
}

// PATCH /tests/:id — title or publish toggle
func (ctl *TestController) Patch(c *fiber.Ctx) error {
	ctl.ensureValidator()

	m, err := ctl.findOwned(c)
	if err != nil {
		return respondErr(c, err)
	}

	var req tdto.UpdateTestRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := ctl.validator.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	updates := map[string]any{}
	if req.TestTitle != nil {
		updates["test_title"] = *req.TestTitle
	}
	if req.TestIsPublished != nil {
		updates["test_is_published"] = *req.TestIsPublished
	}
	if len(updates) == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Nothing to update")
	}
	updates["test_updated_at"] = time.Now()

	if err := ctl.DB.Model(m).Updates(updates).Error; err != nil {
		log.Printf("[TestController] update error: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal Server Error")
	}
	return helper.JsonUpdated(c, "Test updated", tdto.FromTestModel(m, false))
}

// DELETE /tests/:id (soft delete)
func (ctl *TestController) Delete(c *fiber.Ctx) error {
	m, err := ctl.findOwned(c)
	if err != nil {
		return respondErr(c, err)
	}
	if err := ctl.DB.Delete(m).Error; err != nil {
		log.Printf("[TestController] delete error: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal Server Error")
	}
	return helper.JsonDeleted(c, "Test deleted", fiber.Map{"test_id": m.TestID})
}

/* =========================================================
   Handlers — student
========================================================= */

// GET /tests/code/:code — open a published test for taking.
// Question snapshot is returned as-is; the SPA strips answer keys
// before rendering (they never reach the scoring path server-side).
func (ctl *TestController) GetByCode(c *fiber.Ctx) error {
	studentID, err := helperAuth.GetUserID(c)
	if err != nil {
		return respondErr(c, err)
	}

	var m tmodel.TestModel
	if err := ctl.DB.
		Where("test_code = ? AND test_is_published = true", c.Params("code")).
		First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Test not found")
		}
		log.Printf("[TestController] code lookup error: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal Server Error")
	}

	// must be enrolled in the test's classroom
	var enrolled bool
	if err := ctl.DB.Raw(`
		SELECT EXISTS(
			SELECT 1 FROM classroom_students
			 WHERE classroom_student_classroom_id = ?
			   AND classroom_student_student_id = ?
			   AND classroom_student_status = 'active'
		)
	`, m.TestClassroomID, studentID).Scan(&enrolled).Error; err != nil {
		log.Printf("[TestController] enrollment lookup error: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal Server Error")
	}
	if !enrolled {
		return helper.JsonError(c, fiber.StatusForbidden, "You are not enrolled in this classroom")
	}

	return helper.JsonOK(c, "Test detail", tdto.FromTestModel(&m, true))
}
