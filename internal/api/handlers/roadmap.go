package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/IqraS-gif/ai-career-coach-backend/internal/coach"
	"github.com/IqraS-gif/ai-career-coach-backend/internal/logging"
	"github.com/IqraS-gif/ai-career-coach-backend/internal/store"
	"github.com/IqraS-gif/ai-career-coach-backend/pkg/models"
)

// GenerateRoadmapHandler builds a fresh career roadmap and persists it as
// the user's single current roadmap.
func GenerateRoadmapHandler(engine *coach.Engine, st *store.Store) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		var req models.RoadmapGenerateRequest
		if err := bindAndValidate(c, &req); err != nil {
			return err
		}

		roadmap, err := engine.GenerateRoadmap(ctx, map[string]interface{}{
			"current_skills_input": req.CurrentSkillsInput,
			"current_level":        req.CurrentLevel,
			"goal_input":           req.GoalInput,
			"goal_level":           req.GoalLevel,
			"duration":             req.Duration,
			"study_hours":          req.StudyHours,
		})
		if err != nil {
			return generationError(c, err)
		}

		if err := st.SaveRoadmap(ctx, req.UserID, roadmap); err != nil {
			return storeError(c, err)
		}
		if err := st.IncrementStat(ctx, req.UserID, store.StatRoadmapsGenerated); err != nil {
			logging.GetGlobalLogger().Warn("failed to record roadmap stat", map[string]interface{}{
				"user_id": req.UserID,
				"error":   err.Error(),
			})
		}

		return c.JSON(http.StatusOK, models.RoadmapResponse{
			Success:   true,
			Roadmap:   roadmap,
			RequestID: requestID(c),
		})
	}
}

// LatestRoadmapHandler returns the user's current roadmap.
func LatestRoadmapHandler(st *store.Store) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		userID := c.Param("user_id")

		roadmap, err := st.GetRoadmap(ctx, userID)
		if err != nil {
			return storeError(c, err)
		}

		return c.JSON(http.StatusOK, models.RoadmapResponse{
			Success:   true,
			Roadmap:   roadmap,
			RequestID: requestID(c),
		})
	}
}

// TaskStatusHandler toggles completion of one roadmap topic.
func TaskStatusHandler(st *store.Store) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		var req models.TaskStatusRequest
		if err := bindAndValidate(c, &req); err != nil {
			return err
		}

		err := st.UpdateTopicStatus(ctx, req.UserID, req.PhaseTitle, req.TopicName, req.IsCompleted)
		if errors.Is(err, store.ErrNotFound) {
			return errorJSON(c, http.StatusNotFound, "not_found", "No roadmap found for this user")
		}
		if err != nil {
			return errorJSON(c, http.StatusNotFound, "task_not_found", err.Error())
		}

		return c.JSON(http.StatusOK, map[string]interface{}{
			"success": true,
			"message": "Task status updated successfully.",
		})
	}
}

// TutorHandler explains one roadmap topic.
func TutorHandler(engine *coach.Engine) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		var req models.TutorRequest
		if err := bindAndValidate(c, &req); err != nil {
			return err
		}

		explanation, err := engine.TutorExplanation(ctx, req.Topic)
		if err != nil {
			return generationError(c, err)
		}

		return c.JSON(http.StatusOK, explanation)
	}
}

// ChatHandler answers a question grounded in the user's stored career plan.
func ChatHandler(engine *coach.Engine, st *store.Store) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		var req models.ChatRequest
		if err := bindAndValidate(c, &req); err != nil {
			return err
		}

		roadmap, err := st.GetRoadmap(ctx, req.UserID)
		if errors.Is(err, store.ErrNotFound) {
			roadmap = map[string]interface{}{}
		} else if err != nil {
			return storeError(c, err)
		}

		reply, err := engine.ChatbotReply(ctx, req.Query, req.History, coach.SummarizePlan(roadmap))
		if err != nil {
			return generationError(c, err)
		}

		return c.JSON(http.StatusOK, models.ChatResponse{
			Success:   true,
			Reply:     reply,
			RequestID: requestID(c),
		})
	}
}
