package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/IqraS-gif/ai-career-coach-backend/internal/coach"
	"github.com/IqraS-gif/ai-career-coach-backend/pkg/models"
)

// InterviewChatHandler advances a mock interview by one interviewer turn.
func InterviewChatHandler(engine *coach.Engine) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		var req models.InterviewChatRequest
		if err := bindAndValidate(c, &req); err != nil {
			return err
		}

		reply, err := engine.InterviewReply(ctx, req.JobDescription, req.Message, req.History, req.Difficulty)
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

// InterviewSummaryHandler scores a finished mock interview.
func InterviewSummaryHandler(engine *coach.Engine) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		var req models.InterviewSummaryRequest
		if err := bindAndValidate(c, &req); err != nil {
			return err
		}

		summary, err := engine.InterviewSummary(ctx, req.JobDescription, req.History)
		if err != nil {
			return generationError(c, err)
		}

		return c.JSON(http.StatusOK, summary)
	}
}
