package handlers

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/IqraS-gif/ai-career-coach-backend/internal/extractor"
	"github.com/IqraS-gif/ai-career-coach-backend/internal/jobs"
	"github.com/IqraS-gif/ai-career-coach-backend/internal/logging"
	"github.com/IqraS-gif/ai-career-coach-backend/internal/store"
	"github.com/IqraS-gif/ai-career-coach-backend/pkg/models"
)

// FindJobsHandler extracts skills from a resume (uploaded or saved),
// searches live listings per skill, rates them in one batched call and
// returns the deduplicated top matches.
func FindJobsHandler(client *jobs.AdzunaClient, processor *jobs.Processor, st *store.Store, maxFileSize int64) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		logger := logging.LogWithRequestID(requestID(c))

		userID := c.FormValue("user_id")
		if userID == "" {
			return errorJSON(c, http.StatusBadRequest, "validation_failed", "user_id is required")
		}
		location := c.FormValue("location")
		if location == "" {
			location = "India"
		}
		useSaved := strings.EqualFold(c.FormValue("use_saved_resume"), "true")

		var resumeText string

		fileHeader, fileErr := c.FormFile("file")
		switch {
		case fileErr == nil && fileHeader != nil:
			if fileHeader.Size > maxFileSize {
				return errorJSON(c, http.StatusRequestEntityTooLarge, "file_too_large", "Uploaded file exceeds the size limit")
			}
			src, err := fileHeader.Open()
			if err != nil {
				return errorJSON(c, http.StatusBadRequest, "invalid_file", "Uploaded file could not be read")
			}
			data, err := io.ReadAll(src)
			src.Close()
			if err != nil || len(data) == 0 {
				return errorJSON(c, http.StatusBadRequest, "invalid_file", "Uploaded file is empty")
			}
			resumeText, err = extractor.ExtractText(fileHeader.Filename, data)
			if errors.Is(err, extractor.ErrUnsupportedFileType) {
				return errorJSON(c, http.StatusBadRequest, "invalid_file_type", "Only PDF or DOCX files are supported for resume upload")
			}
			if err != nil {
				return errorJSON(c, http.StatusBadRequest, "extraction_failed", "Could not extract text from the uploaded resume file")
			}

		case useSaved:
			profile, err := st.GetProfile(ctx, userID)
			if err != nil {
				if errors.Is(err, store.ErrNotFound) {
					return errorJSON(c, http.StatusNotFound, "not_found", "No previously uploaded resume found in your profile to use for job search")
				}
				return storeError(c, err)
			}
			resumeText = reconstructResumeText(profile)
			if resumeText == "" {
				return errorJSON(c, http.StatusNotFound, "not_found", "Could not retrieve comprehensive content from your saved resume for job search")
			}

		default:
			return errorJSON(c, http.StatusBadRequest, "missing_resume", "No resume file provided and 'use_saved_resume' was not set to true")
		}

		skills := jobs.ExtractSkills(resumeText)
		if len(skills) == 0 {
			return c.JSON(http.StatusOK, models.JobsResponse{
				Success:   true,
				Jobs:      []models.Job{},
				Skills:    []string{},
				RequestID: requestID(c),
			})
		}

		// Fan out one search per skill, splitting the listing budget evenly.
		perSkill := client.MaxResults() / len(skills)
		if perSkill < 1 {
			perSkill = 1
		}

		seen := make(map[string]bool)
		var listings []jobs.Listing
		for _, skill := range skills {
			results, err := client.Search(ctx, skill, location, perSkill)
			if err != nil {
				logger.Warn("job search failed for skill", map[string]interface{}{
					"skill": skill,
					"error": err.Error(),
				})
				continue
			}
			for _, l := range results {
				key := strings.ToLower(l.Title + "|" + l.Company + "|" + l.Location)
				if seen[key] {
					continue
				}
				seen[key] = true
				l.MatchSkill = skill
				listings = append(listings, l)
			}
		}

		if len(listings) == 0 {
			return c.JSON(http.StatusOK, models.JobsResponse{
				Success:   true,
				Jobs:      []models.Job{},
				Skills:    skills,
				RequestID: requestID(c),
			})
		}

		rated := processor.RateJobs(ctx, listings, skills)
		top := jobs.SelectTop(rated)

		if err := st.IncrementStat(ctx, userID, store.StatJobsMatched); err != nil {
			logger.Warn("failed to record job match stat", map[string]interface{}{
				"user_id": userID,
				"error":   err.Error(),
			})
		}

		return c.JSON(http.StatusOK, models.JobsResponse{
			Success:   true,
			Jobs:      top,
			Skills:    skills,
			RequestID: requestID(c),
		})
	}
}

// reconstructResumeText rebuilds prompt-ready text from a stored structured
// profile so a saved resume can feed skill extraction.
func reconstructResumeText(profile map[string]interface{}) string {
	var parts []string

	if raw, ok := profile["raw_text"].(string); ok && strings.TrimSpace(raw) != "" {
		return raw
	}

	if summary, ok := profile["summary"].(string); ok && summary != "" {
		parts = append(parts, summary)
	}
	if skills, ok := profile["skills"].(map[string]interface{}); ok {
		for category, list := range skills {
			if items, ok := list.([]interface{}); ok {
				var names []string
				for _, item := range items {
					if s, ok := item.(string); ok {
						names = append(names, s)
					}
				}
				parts = append(parts, fmt.Sprintf("%s: %s", category, strings.Join(names, ", ")))
			}
		}
	}
	if projects, ok := profile["projects"].([]interface{}); ok {
		for _, p := range projects {
			project, ok := p.(map[string]interface{})
			if !ok {
				continue
			}
			if title, ok := project["title"].(string); ok && title != "" {
				parts = append(parts, "Project: "+title)
			}
			if desc, ok := project["description"].([]interface{}); ok {
				for _, d := range desc {
					if s, ok := d.(string); ok {
						parts = append(parts, s)
					}
				}
			}
		}
	}

	return strings.Join(parts, "\n\n")
}
