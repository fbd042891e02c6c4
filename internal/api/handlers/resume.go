package handlers

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/IqraS-gif/ai-career-coach-backend/internal/coach"
	"github.com/IqraS-gif/ai-career-coach-backend/internal/exporter"
	"github.com/IqraS-gif/ai-career-coach-backend/internal/extractor"
	"github.com/IqraS-gif/ai-career-coach-backend/internal/logging"
	"github.com/IqraS-gif/ai-career-coach-backend/internal/store"
	"github.com/IqraS-gif/ai-career-coach-backend/pkg/models"
	"github.com/IqraS-gif/ai-career-coach-backend/pkg/utils"
)

// UploadResumeHandler receives a resume (new file or the saved copy),
// structures it, categorizes skills, persists the profile and returns a
// full analysis report. The analysis is always returned even when it falls
// back to a placeholder.
func UploadResumeHandler(engine *coach.Engine, st *store.Store, maxFileSize int64) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		logger := logging.LogWithRequestID(requestID(c))

		userID := c.FormValue("user_id")
		if userID == "" {
			return errorJSON(c, http.StatusBadRequest, "validation_failed", "user_id is required")
		}
		jobDescription := c.FormValue("job_description")
		useSaved := strings.EqualFold(c.FormValue("use_saved_resume"), "true")

		var resumeText string
		var fileName string
		reusedProfile := false
		var profile map[string]interface{}

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

			fileName = fileHeader.Filename
			resumeText, err = extractor.ExtractText(fileName, data)
			if errors.Is(err, extractor.ErrUnsupportedFileType) {
				return errorJSON(c, http.StatusBadRequest, "invalid_file_type", "Invalid file type. Only PDF, DOCX and TXT are allowed.")
			}
			if err != nil {
				return errorJSON(c, http.StatusBadRequest, "extraction_failed", "Could not extract text from the uploaded resume file")
			}

		case useSaved:
			saved, err := st.GetProfile(ctx, userID)
			if err != nil {
				if errors.Is(err, store.ErrNotFound) {
					return errorJSON(c, http.StatusNotFound, "not_found", "No previously uploaded resume found in your profile")
				}
				return storeError(c, err)
			}
			raw, _ := saved["raw_text"].(string)
			if raw == "" {
				return errorJSON(c, http.StatusNotFound, "not_found", "No raw resume text found in your profile. Please upload a new resume.")
			}
			resumeText = raw
			if meta, ok := saved["resume_metadata"].(map[string]interface{}); ok {
				fileName, _ = meta["file_name"].(string)
			}
			// The saved structure and skills are reused verbatim when both
			// are present; only then are the generation calls skipped.
			if _, hasSummaryOrMore := saved["personal_info"]; hasSummaryOrMore {
				if _, hasSkills := saved["skills"]; hasSkills {
					profile = saved
					reusedProfile = true
				}
			}

		default:
			return errorJSON(c, http.StatusBadRequest, "missing_resume", "No resume file provided and 'use_saved_resume' was not set to true")
		}

		if !reusedProfile {
			structured, err := engine.StructureResume(ctx, resumeText)
			if err != nil {
				return generationError(c, err)
			}
			if skills, err := engine.CategorizeSkills(ctx, resumeText); err == nil {
				structured["skills"] = skills
			} else {
				logger.Warn("skill categorization failed, saving profile without skills", map[string]interface{}{
					"user_id": userID,
					"error":   err.Error(),
				})
			}
			structured["raw_text"] = resumeText
			structured["resume_metadata"] = map[string]interface{}{
				"file_name":   utils.NormalizeFilename(utils.GetStringOrDefault(fileName, "saved_resume.pdf")),
				"uploaded_at": time.Now().UTC().Format(time.RFC3339),
			}
			if err := st.SaveProfile(ctx, userID, structured); err != nil {
				return storeError(c, err)
			}
			profile = structured
		}

		analysis, err := engine.FullResumeAnalysis(ctx, resumeText, jobDescription)
		if err != nil {
			logger.Warn("full resume analysis failed, returning placeholder report", map[string]interface{}{
				"user_id": userID,
				"error":   err.Error(),
			})
			analysis = placeholderAnalysis(jobDescription)
		}

		return c.JSON(http.StatusOK, models.UploadResponse{
			Success:   true,
			Profile:   profile,
			Analysis:  analysis,
			RequestID: requestID(c),
		})
	}
}

// placeholderAnalysis is the degraded report returned when analysis
// generation fails outright.
func placeholderAnalysis(jobDescription string) map[string]interface{} {
	roleContext := "General Candidate"
	if strings.TrimSpace(jobDescription) != "" {
		roleContext = jobDescription
	}
	return map[string]interface{}{
		"analysis_date":                 time.Now().Format("January 02, 2006"),
		"job_role_context":              roleContext,
		"ai_model":                      "Google Gemini",
		"overall_resume_score":          0,
		"overall_resume_grade":          "N/A",
		"ats_optimization_score":        0,
		"professional_profile_analysis": map[string]interface{}{"title": "Profile Analysis", "summary": "Analysis failed."},
		"education_analysis":            map[string]interface{}{"title": "Education Analysis", "summary": "Analysis failed."},
		"experience_analysis":           map[string]interface{}{"title": "Experience Analysis", "summary": "Analysis failed."},
		"skills_analysis":               map[string]interface{}{"title": "Skills Analysis", "summary": "Analysis failed."},
		"key_strengths":                 []string{"Could not generate report."},
		"areas_for_improvement":         []string{"Could not generate report."},
		"overall_assessment":            "Failed to generate a comprehensive analysis report.",
	}
}

// OptimizeResumeHandler rewrites the saved resume. The engine degrades to
// the unmodified input on failure, so this endpoint always has a document
// to persist and return.
func OptimizeResumeHandler(engine *coach.Engine, st *store.Store) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		var req models.OptimizeResumeRequest
		if err := bindAndValidate(c, &req); err != nil {
			return err
		}

		resume, err := st.GetProfile(ctx, req.UserID)
		if err != nil {
			return storeError(c, err)
		}

		optimized := engine.OptimizeResume(ctx, resume, req.UserRequest, req.JobDescription)

		if err := st.SaveOptimizedProfile(ctx, req.UserID, optimized); err != nil {
			return storeError(c, err)
		}
		if err := st.IncrementStat(ctx, req.UserID, store.StatResumesOptimized); err != nil {
			logging.GetGlobalLogger().Warn("failed to record optimization stat", map[string]interface{}{
				"user_id": req.UserID,
				"error":   err.Error(),
			})
		}

		return c.JSON(http.StatusOK, models.OptimizeResponse{
			Success:   true,
			Profile:   optimized,
			RequestID: requestID(c),
		})
	}
}

// LinkedInOptimizeHandler generates LinkedIn content from the saved resume.
func LinkedInOptimizeHandler(engine *coach.Engine, st *store.Store) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		var req models.LinkedInOptimizeRequest
		if err := bindAndValidate(c, &req); err != nil {
			return err
		}

		resume, err := st.GetProfile(ctx, req.UserID)
		if err != nil {
			return storeError(c, err)
		}

		content, err := engine.OptimizeForLinkedIn(ctx, resume, req.UserRequest, req.JobDescription)
		if err != nil {
			return generationError(c, err)
		}

		return c.JSON(http.StatusOK, content)
	}
}

// GetResumeHandler returns the optimized resume when present, otherwise the
// base profile.
func GetResumeHandler(st *store.Store) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		userID := c.Param("user_id")

		resume, err := st.GetOptimizedProfile(ctx, userID)
		if errors.Is(err, store.ErrNotFound) {
			resume, err = st.GetProfile(ctx, userID)
		}
		if err != nil {
			return storeError(c, err)
		}

		return c.JSON(http.StatusOK, resume)
	}
}

// DownloadResumeHandler renders the optimized resume as a plain-text
// attachment.
func DownloadResumeHandler(st *store.Store) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		userID := c.Param("user_id")

		resume, err := st.GetOptimizedProfile(ctx, userID)
		if errors.Is(err, store.ErrNotFound) {
			resume, err = st.GetProfile(ctx, userID)
		}
		if err != nil {
			return storeError(c, err)
		}

		rendered, err := exporter.RenderText(resume)
		if err != nil {
			return errorJSON(c, http.StatusInternalServerError, "export_failed", err.Error())
		}

		baseName := "resume"
		if meta, ok := resume["resume_metadata"].(map[string]interface{}); ok {
			if name, ok := meta["file_name"].(string); ok && name != "" {
				baseName = strings.TrimSuffix(name, ".pdf")
				baseName = strings.TrimSuffix(baseName, ".docx")
			}
		}

		c.Response().Header().Set(echo.HeaderContentDisposition,
			fmt.Sprintf("attachment; filename=Optimized_%s.txt", utils.NormalizeFilename(baseName)))
		return c.Blob(http.StatusOK, "text/plain; charset=utf-8", []byte(rendered))
	}
}
