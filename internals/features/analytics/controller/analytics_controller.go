// file: internals/features/analytics/controller/analytics_controller.go
package controller

import (
	"errors"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	adto "bodhira_backend/internals/features/analytics/dto"
	"bodhira_backend/internals/features/analytics/engine"
	helper "bodhira_backend/internals/helpers"
	helperAuth "bodhira_backend/internals/helpers/auth"
)

type AnalyticsController struct {
	DB     *gorm.DB
	Engine *engine.Engine
}

func NewAnalyticsController(db *gorm.DB) *AnalyticsController {
	return &AnalyticsController{
		DB:     db,
		Engine: engine.New(),
	}
}

/* =========================================================
   Helpers — scope & ownership
========================================================= */

// ensureClassroomOwner resolves :id, checks the classroom exists, and
// checks the authenticated teacher owns it.
func (ctl *AnalyticsController) ensureClassroomOwner(c *fiber.Ctx) (uuid.UUID, error) {
	classroomID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "Invalid classroom ID")
	}
	teacherID, err := helperAuth.GetUserID(c)
	if err != nil {
		return uuid.Nil, err
	}

	var ownerStr string
	if err := ctl.DB.
		Raw(`SELECT classroom_teacher_id::text
		       FROM classrooms
		      WHERE classroom_id = ? AND classroom_deleted_at IS NULL`,
			classroomID).
		Scan(&ownerStr).Error; err != nil {
		log.Printf("[AnalyticsController] owner lookup error: %v", err)
		return uuid.Nil, fiber.NewError(fiber.StatusInternalServerError, "Internal Server Error")
	}
	if ownerStr == "" {
		return uuid.Nil, fiber.NewError(fiber.StatusNotFound, "Classroom not found")
	}
	if ownerStr != teacherID.String() {
		return uuid.Nil, fiber.NewError(fiber.StatusForbidden, "You do not own this classroom")
	}
	return classroomID, nil
}

// ensureStudentEnrolled checks the student has an active enrollment row.
func (ctl *AnalyticsController) ensureStudentEnrolled(classroomID, studentID uuid.UUID) error {
	var ok bool
	if err := ctl.DB.Raw(`
		SELECT EXISTS(
			SELECT 1 FROM classroom_students
			 WHERE classroom_student_classroom_id = ?
			   AND classroom_student_student_id = ?
			   AND classroom_student_status = 'active'
		)
	`, classroomID, studentID).Scan(&ok).Error; err != nil {
		log.Printf("[AnalyticsController] enrollment lookup error: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Internal Server Error")
	}
	if !ok {
		return fiber.NewError(fiber.StatusNotFound, "Student not found in this classroom")
	}
	return nil
}

func respondErr(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return helper.JsonError(c, fe.Code, fe.Message)
	}
	return helper.JsonError(c, fiber.StatusInternalServerError, "Internal Server Error")
}

/* =========================================================
   GET /classrooms/:id/analytics/overview
========================================================= */

func (ctl *AnalyticsController) Overview(c *fiber.Ctx) error {
	classroomID, err := ctl.ensureClassroomOwner(c)
	if err != nil {
		return respondErr(c, err)
	}

	var agg struct {
		Total  int64           `gorm:"column:total"`
		Avg    float64         `gorm:"column:avg_score"`
		Min    float64         `gorm:"column:min_score"`
		Max    float64         `gorm:"column:max_score"`
		Scores pq.Float64Array `gorm:"column:scores;type:float8[]"`
	}
	if err := ctl.DB.Raw(`
		SELECT COUNT(*)                                          AS total,
		       COALESCE(ROUND(AVG(test_result_score)::numeric, 2), 0) AS avg_score,
		       COALESCE(MIN(test_result_score), 0)               AS min_score,
		       COALESCE(MAX(test_result_score), 0)               AS max_score,
		       COALESCE(array_agg(test_result_score), '{}')      AS scores
		  FROM test_results
		 WHERE test_result_classroom_id = ?
	`, classroomID).Scan(&agg).Error; err != nil {
		log.Printf("[AnalyticsController] overview aggregate error: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal Server Error")
	}

	// One point per test, ordered by test creation time
	var trendRows []struct {
		TestID    uuid.UUID `gorm:"column:test_id"`
		AvgScore  float64   `gorm:"column:avg_score"`
		CreatedAt time.Time `gorm:"column:created_at"`
		Topic     string    `gorm:"column:topic"`
	}
	if err := ctl.DB.Raw(`
		SELECT t.test_id                                         AS test_id,
		       ROUND(AVG(r.test_result_score)::numeric, 2)       AS avg_score,
		       t.test_created_at                                 AS created_at,
		       t.test_topic                                      AS topic
		  FROM test_results r
		  JOIN tests t ON t.test_id = r.test_result_test_id
		 WHERE r.test_result_classroom_id = ?
		 GROUP BY t.test_id, t.test_created_at, t.test_topic
		 ORDER BY t.test_created_at ASC
	`, classroomID).Scan(&trendRows).Error; err != nil {
		log.Printf("[AnalyticsController] overview trend error: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal Server Error")
	}

	var topicRows []struct {
		Topic      string  `gorm:"column:topic"`
		AvgScore   float64 `gorm:"column:avg_score"`
		Attempts   int     `gorm:"column:attempts"`
		TestsCount int     `gorm:"column:tests_count"`
	}
	if err := ctl.DB.Raw(`
		SELECT test_result_topic                                 AS topic,
		       ROUND(AVG(test_result_score)::numeric, 2)         AS avg_score,
		       COUNT(*)                                          AS attempts,
		       COUNT(DISTINCT test_result_test_id)               AS tests_count
		  FROM test_results
		 WHERE test_result_classroom_id = ?
		 GROUP BY test_result_topic
		 ORDER BY avg_score DESC
	`, classroomID).Scan(&topicRows).Error; err != nil {
		log.Printf("[AnalyticsController] overview topics error: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal Server Error")
	}

	resp := adto.OverviewResponse{
		AvgScore:         agg.Avg,
		MinScore:         agg.Min,
		MaxScore:         agg.Max,
		MedianScore:      engine.Median(agg.Scores),
		TotalResults:     agg.Total,
		Distribution:     engine.DistributionBins(agg.Scores),
		PerformanceTrend: make([]adto.TrendPoint, 0, len(trendRows)),
		TopicStats:       make([]adto.TopicStat, 0, len(topicRows)),
	}
	for _, r := range trendRows {
		resp.PerformanceTrend = append(resp.PerformanceTrend, adto.TrendPoint(r))
	}
	for _, r := range topicRows {
		resp.TopicStats = append(resp.TopicStats, adto.TopicStat(r))
	}

	return helper.JsonOK(c, "Classroom analytics overview", resp)
}

/* =========================================================
   GET /classrooms/:id/analytics/students
========================================================= */

func (ctl *AnalyticsController) StudentsOverview(c *fiber.Ctx) error {
	classroomID, err := ctl.ensureClassroomOwner(c)
	if err != nil {
		return respondErr(c, err)
	}

	// Per-student rollup over active enrollments; score lists come back
	// most-recent-first so the delta windows read straight off the array.
	var rollupRows []struct {
		StudentID  uuid.UUID       `gorm:"column:student_id"`
		Name       string          `gorm:"column:name"`
		TestsTaken int             `gorm:"column:tests_taken"`
		AvgScore   float64         `gorm:"column:avg_score"`
		Scores     pq.Float64Array `gorm:"column:scores;type:float8[]"`
	}
	if err := ctl.DB.Raw(`
		SELECT cs.classroom_student_student_id                   AS student_id,
		       u.user_name                                      AS name,
		       COUNT(r.test_result_id)                          AS tests_taken,
		       COALESCE(ROUND(AVG(r.test_result_score)::numeric, 2), 0) AS avg_score,
		       COALESCE(array_agg(r.test_result_score ORDER BY r.test_result_created_at DESC)
		                FILTER (WHERE r.test_result_id IS NOT NULL), '{}') AS scores
		  FROM classroom_students cs
		  JOIN users u ON u.user_id = cs.classroom_student_student_id
		  LEFT JOIN test_results r
		         ON r.test_result_student_id = cs.classroom_student_student_id
		        AND r.test_result_classroom_id = cs.classroom_student_classroom_id
		 WHERE cs.classroom_student_classroom_id = ?
		   AND cs.classroom_student_status = 'active'
		 GROUP BY cs.classroom_student_student_id, u.user_name
		 ORDER BY avg_score DESC
	`, classroomID).Scan(&rollupRows).Error; err != nil {
		log.Printf("[AnalyticsController] students rollup error: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal Server Error")
	}

	// Raw attempt rows (the engine's input), grouped per student in Go
	var attemptRows []struct {
		StudentID  uuid.UUID `gorm:"column:student_id"`
		Score      float64   `gorm:"column:score"`
		Topic      string    `gorm:"column:topic"`
		Difficulty string    `gorm:"column:difficulty"`
		TestCode   string    `gorm:"column:test_code"`
		CreatedAt  time.Time `gorm:"column:created_at"`
	}
	if err := ctl.DB.Raw(`
		SELECT r.test_result_student_id  AS student_id,
		       r.test_result_score      AS score,
		       r.test_result_topic      AS topic,
		       r.test_result_difficulty AS difficulty,
		       t.test_code              AS test_code,
		       r.test_result_created_at AS created_at
		  FROM test_results r
		  JOIN tests t ON t.test_id = r.test_result_test_id
		 WHERE r.test_result_classroom_id = ?
		 ORDER BY r.test_result_student_id, r.test_result_created_at DESC
	`, classroomID).Scan(&attemptRows).Error; err != nil {
		log.Printf("[AnalyticsController] students attempts error: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal Server Error")
	}

	attemptsByStudent := make(map[uuid.UUID][]adto.TestResultItem, len(rollupRows))
	for _, r := range attemptRows {
		attemptsByStudent[r.StudentID] = append(attemptsByStudent[r.StudentID], adto.TestResultItem{
			Score:      r.Score,
			Topic:      r.Topic,
			Difficulty: r.Difficulty,
			TestCode:   r.TestCode,
			CreatedAt:  r.CreatedAt,
		})
	}

	out := make([]adto.StudentOverview, 0, len(rollupRows))
	for _, r := range rollupRows {
		scoresDesc := []float64(r.Scores)
		lastScore := 0.0
		if len(scoresDesc) > 0 {
			lastScore = scoresDesc[0]
		}
		results := attemptsByStudent[r.StudentID]
		if results == nil {
			results = []adto.TestResultItem{}
		}
		out = append(out, adto.StudentOverview{
			StudentID:        r.StudentID,
			Name:             r.Name,
			AvgScore:         r.AvgScore,
			TestsTaken:       r.TestsTaken,
			LastScore:        lastScore,
			ConsistencyScore: engine.SafeRound(engine.StdDevSample(scoresDesc), 2),
			ImprovementDelta: improvementDelta(scoresDesc),
			TestResults:      results,
		})
	}

	return helper.JsonOK(c, "Classroom students overview", out)
}

/* =========================================================
   GET /classrooms/:id/analytics/students/:studentId/history
========================================================= */

func (ctl *AnalyticsController) StudentHistory(c *fiber.Ctx) error {
	classroomID, err := ctl.ensureClassroomOwner(c)
	if err != nil {
		return respondErr(c, err)
	}
	studentID, err := uuid.Parse(c.Params("studentId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid student ID")
	}
	if err := ctl.ensureStudentEnrolled(classroomID, studentID); err != nil {
		return respondErr(c, err)
	}

	var rows []struct {
		TestID   uuid.UUID `gorm:"column:test_id"`
		TestDate time.Time `gorm:"column:test_date"`
		Topic    string    `gorm:"column:topic"`
		Score    float64   `gorm:"column:score"`
	}
	if err := ctl.DB.Raw(`
		SELECT r.test_result_test_id    AS test_id,
		       r.test_result_created_at AS test_date,
		       r.test_result_topic      AS topic,
		       r.test_result_score      AS score
		  FROM test_results r
		 WHERE r.test_result_classroom_id = ?
		   AND r.test_result_student_id = ?
		 ORDER BY r.test_result_created_at DESC
	`, classroomID, studentID).Scan(&rows).Error; err != nil {
		log.Printf("[AnalyticsController] history error: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal Server Error")
	}

	out := make([]adto.HistoryItem, 0, len(rows))
	for _, r := range rows {
		out = append(out, adto.HistoryItem(r))
	}
	return helper.JsonOK(c, "Student test history", out)
}

/* =========================================================
   GET /classrooms/:id/analytics/students/:studentId/performance
========================================================= */

func (ctl *AnalyticsController) StudentPerformance(c *fiber.Ctx) error {
	classroomID, err := ctl.ensureClassroomOwner(c)
	if err != nil {
		return respondErr(c, err)
	}
	studentID, err := uuid.Parse(c.Params("studentId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid student ID")
	}
	if err := ctl.ensureStudentEnrolled(classroomID, studentID); err != nil {
		return respondErr(c, err)
	}

	attempts, err := ctl.fetchAttempts(classroomID, &studentID)
	if err != nil {
		log.Printf("[AnalyticsController] performance attempts error: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal Server Error")
	}

	pm := ctl.Engine.BuildPerformanceMap(attempts[studentID])
	return helper.JsonOK(c, "Student performance analysis", adto.StudentPerformanceResponse{
		PerformanceMap:     pm,
		LearningPriorities: ctl.Engine.LearningPriorities(pm, 0),
	})
}

/* =========================================================
   GET /classrooms/:id/analytics/class-performance
========================================================= */

func (ctl *AnalyticsController) ClassPerformance(c *fiber.Ctx) error {
	classroomID, err := ctl.ensureClassroomOwner(c)
	if err != nil {
		return respondErr(c, err)
	}

	attempts, err := ctl.fetchAttempts(classroomID, nil)
	if err != nil {
		log.Printf("[AnalyticsController] class attempts error: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal Server Error")
	}

	students := make(map[string]engine.PerformanceMap, len(attempts))
	for studentID, list := range attempts {
		students[studentID.String()] = ctl.Engine.BuildPerformanceMap(list)
	}
	return helper.JsonOK(c, "Class performance rollup", ctl.Engine.AnalyzeClassPerformance(students))
}

/* =========================================================
   Shared attempt fetch
========================================================= */

// fetchAttempts loads engine inputs for the classroom, optionally
// restricted to one student, grouped by student id.
func (ctl *AnalyticsController) fetchAttempts(classroomID uuid.UUID, studentID *uuid.UUID) (map[uuid.UUID][]engine.TestAttempt, error) {
	q := `
		SELECT test_result_student_id  AS student_id,
		       test_result_topic      AS topic,
		       test_result_score      AS score,
		       test_result_difficulty AS difficulty,
		       test_result_created_at AS created_at
		  FROM test_results
		 WHERE test_result_classroom_id = ?`
	args := []any{classroomID}
	if studentID != nil {
		q += ` AND test_result_student_id = ?`
		args = append(args, *studentID)
	}
	q += ` ORDER BY test_result_created_at ASC`

	var rows []struct {
		StudentID  uuid.UUID `gorm:"column:student_id"`
		Topic      string    `gorm:"column:topic"`
		Score      float64   `gorm:"column:score"`
		Difficulty string    `gorm:"column:difficulty"`
		CreatedAt  time.Time `gorm:"column:created_at"`
	}
	if err := ctl.DB.Raw(q, args...).Scan(&rows).Error; err != nil {
		return nil, err
	}

	out := make(map[uuid.UUID][]engine.TestAttempt)
	for _, r := range rows {
		out[r.StudentID] = append(out[r.StudentID], engine.TestAttempt{
			Topic:      r.Topic,
			Score:      r.Score,
			Difficulty: r.Difficulty,
			OccurredAt: r.CreatedAt,
		})
	}
	return out, nil
}
