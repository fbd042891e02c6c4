package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/IqraS-gif/ai-career-coach-backend/internal/store"
)

// GetProfileHandler returns the user's stored profile document. A user with
// no saved resume gets an empty resume_content rather than a 404 so the
// frontend can render an empty state.
func GetProfileHandler(st *store.Store) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		userID := c.Param("user_id")

		profile, err := st.GetProfile(ctx, userID)
		if errors.Is(err, store.ErrNotFound) {
			profile = map[string]interface{}{}
		} else if err != nil {
			return storeError(c, err)
		}

		return c.JSON(http.StatusOK, map[string]interface{}{
			"user_id":        userID,
			"resume_content": profile,
		})
	}
}

// UpdateResumeDetailsHandler applies a partial update over the stored
// profile. Only the keys present in the body are replaced.
func UpdateResumeDetailsHandler(st *store.Store) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		userID := c.Param("user_id")

		var updates map[string]interface{}
		if err := c.Bind(&updates); err != nil {
			return errorJSON(c, http.StatusBadRequest, "invalid_request", "Request body could not be parsed")
		}
		if len(updates) == 0 {
			return errorJSON(c, http.StatusBadRequest, "validation_failed", "No fields to update")
		}

		profile, err := st.MergeProfile(ctx, userID, updates)
		if err != nil {
			return storeError(c, err)
		}

		return c.JSON(http.StatusOK, map[string]interface{}{
			"success":        true,
			"resume_content": profile,
		})
	}
}

// DeleteProfileHandler removes the user's stored profile, both the base and
// optimized variants.
func DeleteProfileHandler(st *store.Store) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		userID := c.Param("user_id")

		if err := st.DeleteProfile(ctx, userID); err != nil {
			return storeError(c, err)
		}

		return c.JSON(http.StatusOK, map[string]interface{}{
			"success": true,
			"message": "Profile deleted successfully.",
		})
	}
}

// GetStatsHandler returns the user's activity counters.
func GetStatsHandler(st *store.Store) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		userID := c.Param("user_id")

		stats, err := st.GetStats(ctx, userID)
		if err != nil {
			return storeError(c, err)
		}

		return c.JSON(http.StatusOK, stats)
	}
}
