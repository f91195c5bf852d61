// file: internals/features/results/controller/test_result_controller.go
package controller

import (
	"errors"
	"log"

	validator "github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	rdto "bodhira_backend/internals/features/results/dto"
	rmodel "bodhira_backend/internals/features/results/model"
	tmodel "bodhira_backend/internals/features/tests/model"
	helper "bodhira_backend/internals/helpers"
	helperAuth "bodhira_backend/internals/helpers/auth"
)

type TestResultController struct {
	DB        *gorm.DB
	validator *validator.Validate
}

func NewTestResultController(db *gorm.DB) *TestResultController {
	return &TestResultController{DB: db}
}

func (ctl *TestResultController) ensureValidator() {
	if ctl.validator == nil {
		ctl.validator = validator.New()
	}
}

func respondErr(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return helper.JsonError(c, fe.Code, fe.Message)
	}
	return helper.JsonError(c, fiber.StatusInternalServerError, "Internal Server Error")
}

/* =========================================================
   Handlers — student
========================================================= */

// POST /results — record a completed attempt. Results are immutable
// historical facts; there is no update or delete route.
func (ctl *TestResultController) Submit(c *fiber.Ctx) error {
	ctl.ensureValidator()

	studentID, err := helperAuth.GetUserID(c)
	if err != nil {
		return respondErr(c, err)
	}

	var req rdto.SubmitResultRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := ctl.validator.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var test tmodel.TestModel
	if err := ctl.DB.
		Where("test_code = ? AND test_is_published = true", req.TestCode).
		First(&test).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Test not found")
		}
		log.Printf("[TestResultController] test lookup error: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal Server Error")
	}

	var enrolled bool
	if err := ctl.DB.Raw(`
		SELECT EXISTS(
			SELECT 1 FROM classroom_students
			 WHERE classroom_student_classroom_id = ?
			   AND classroom_student_student_id = ?
			   AND classroom_student_status = 'active'
		)
	`, test.TestClassroomID, studentID).Scan(&enrolled).Error; err != nil {
		log.Printf("[TestResultController] enrollment lookup error: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal Server Error")
	}
	if !enrolled {
		return helper.JsonError(c, fiber.StatusForbidden, "You are not enrolled in this classroom")
	}

	m := rmodel.TestResultModel{
		TestResultTestID:      test.TestID,
		TestResultClassroomID: test.TestClassroomID,
		TestResultStudentID:   studentID,
		TestResultScore:       req.Score,
		// denormalized so aggregations skip the join
		TestResultTopic:      test.TestTopic,
		TestResultDifficulty: test.TestDifficulty,
		TestResultAnswers:    datatypes.JSON(req.Answers),
	}
	if err := ctl.DB.Create(&m).Error; err != nil {
		log.Printf("[TestResultController] create error: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal Server Error")
	}

	return helper.JsonCreated(c, "Result recorded", rdto.FromTestResultModel(&m))
}

// GET /results — the authenticated student's own attempt history.
func (ctl *TestResultController) ListMine(c *fiber.Ctx) error {
	studentID, err := helperAuth.GetUserID(c)
	if err != nil {
		return respondErr(c, err)
	}

	paging := helper.ResolvePaging(c, 20, 100)

	var total int64
	base := ctl.DB.Model(&rmodel.TestResultModel{}).
		Where("test_result_student_id = ?", studentID)
	if err := base.Count(&total).Error; err != nil {
		log.Printf("[TestResultController] count error: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal Server Error")
	}

	var rows []rmodel.TestResultModel
	if err := base.
		Order("test_result_created_at DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		log.Printf("[TestResultController] list error: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal Server Error")
	}

	out := make([]rdto.TestResultResponse, 0, len(rows))
	for i := range rows {
		out = append(out, rdto.FromTestResultModel(&rows[i]))
	}
	pagination := helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage)
	return helper.JsonList(c, "My results", out, &pagination)
}

/* =========================================================
   Handlers — teacher
========================================================= */

// GET /results/test/:testId — all attempts on one test.
func (ctl *TestResultController) ListByTest(c *fiber.Ctx) error {
	teacherID, err := helperAuth.GetUserID(c)
	if err != nil {
		return respondErr(c, err)
	}
	testID, err := uuid.Parse(c.Params("testId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid test ID")
	}

	var test tmodel.TestModel
	if err := ctl.DB.Where("test_id = ?", testID).First(&test).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Test not found")
		}
		log.Printf("[TestResultController] test lookup error: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal Server Error")
	}
	if test.TestTeacherID != teacherID {
		return helper.JsonError(c, fiber.StatusForbidden, "You do not own this test")
	}

	var rows []rmodel.TestResultModel
	if err := ctl.DB.
		Where("test_result_test_id = ?", testID).
		Order("test_result_score DESC").
		Find(&rows).Error; err != nil {
		log.Printf("[TestResultController] list error: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal Server Error")
	}

	out := make([]rdto.TestResultResponse, 0, len(rows))
	for i := range rows {
		out = append(out, rdto.FromTestResultModel(&rows[i]))
	}
	return helper.JsonOK(c, "Test results", out)
}
