package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/IqraS-gif/ai-career-coach-backend/internal/coach"
	"github.com/IqraS-gif/ai-career-coach-backend/internal/logging"
	"github.com/IqraS-gif/ai-career-coach-backend/internal/store"
	"github.com/IqraS-gif/ai-career-coach-backend/pkg/models"
)

// GenerateAssessmentHandler produces a skill assessment question set.
func GenerateAssessmentHandler(engine *coach.Engine) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		var req models.AssessmentGenerateRequest
		if err := bindAndValidate(c, &req); err != nil {
			return err
		}
		if len(req.Skills) == 0 {
			return errorJSON(c, http.StatusBadRequest, "validation_failed", "At least one skill is required")
		}

		questions, err := engine.GenerateAssessment(ctx, req.AssessmentType, req.Skills, req.TargetRole, req.NumQuestions)
		if err != nil {
			return generationError(c, err)
		}

		return c.JSON(http.StatusOK, map[string]interface{}{
			"success":    true,
			"questions":  questions,
			"request_id": requestID(c),
		})
	}
}

// EvaluateAssessmentHandler scores a completed assessment and records the
// attempt.
func EvaluateAssessmentHandler(engine *coach.Engine, st *store.Store) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		var req models.AssessmentEvaluateRequest
		if err := bindAndValidate(c, &req); err != nil {
			return err
		}

		results, err := engine.EvaluateAssessment(ctx, req.Answers)
		if err != nil {
			return generationError(c, err)
		}

		if err := st.IncrementStat(ctx, req.UserID, store.StatAssessmentsTaken); err != nil {
			logging.GetGlobalLogger().Warn("failed to record assessment stat", map[string]interface{}{
				"user_id": req.UserID,
				"error":   err.Error(),
			})
		}

		return c.JSON(http.StatusOK, results)
	}
}
