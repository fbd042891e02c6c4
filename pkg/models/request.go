package models

// OptimizeResumeRequest asks for a targeted or whole-resume rewrite of the
// user's saved resume.
type OptimizeResumeRequest struct {
	UserID         string `json:"user_id" validate:"required"`
	UserRequest    string `json:"user_request" validate:"required"`
	JobDescription string `json:"job_description,omitempty"`
}

// LinkedInOptimizeRequest asks for LinkedIn-ready content derived from the
// user's saved resume.
type LinkedInOptimizeRequest struct {
	UserID         string `json:"user_id" validate:"required"`
	UserRequest    string `json:"user_request,omitempty"`
	JobDescription string `json:"job_description,omitempty"`
}

// RoadmapGenerateRequest asks for a fresh career roadmap built from the
// user's current state and stated goal.
type RoadmapGenerateRequest struct {
	UserID             string `json:"user_id" validate:"required"`
	CurrentSkillsInput string `json:"current_skills_input" validate:"required"`
	CurrentLevel       string `json:"current_level" validate:"required"`
	GoalInput          string `json:"goal_input" validate:"required"`
	GoalLevel          string `json:"goal_level" validate:"required"`
	Duration           string `json:"duration" validate:"required"`
	StudyHours         string `json:"study_hours" validate:"required"`
}

// TaskStatusRequest toggles completion of a single roadmap topic.
type TaskStatusRequest struct {
	UserID      string `json:"user_id" validate:"required"`
	PhaseTitle  string `json:"phase_title" validate:"required"`
	TopicName   string `json:"topic_name" validate:"required"`
	IsCompleted bool   `json:"is_completed"`
}

// TutorRequest asks the AI tutor to explain a roadmap topic.
type TutorRequest struct {
	Topic string `json:"topic" validate:"required"`
}

// ChatRequest is a conversational query grounded in the user's career plan.
type ChatRequest struct {
	UserID  string `json:"user_id" validate:"required"`
	Query   string `json:"query" validate:"required"`
	History []Turn `json:"history,omitempty" validate:"omitempty,dive"`
}

// InterviewChatRequest advances a mock interview by one turn. Difficulty is
// free-form; anything other than easy/hard gets the medium persona.
type InterviewChatRequest struct {
	JobDescription string `json:"job_description" validate:"required"`
	Message        string `json:"message" validate:"required"`
	History        []Turn `json:"history,omitempty" validate:"omitempty,dive"`
	Difficulty     string `json:"difficulty,omitempty"`
}

// InterviewSummaryRequest asks for a scored summary of a finished interview.
type InterviewSummaryRequest struct {
	JobDescription string `json:"job_description" validate:"required"`
	History        []Turn `json:"history" validate:"required,min=1,dive"`
}

// AssessmentGenerateRequest asks for a skill assessment question set.
type AssessmentGenerateRequest struct {
	UserID         string   `json:"user_id" validate:"required"`
	AssessmentType string   `json:"assessment_type,omitempty"`
	Skills         []string `json:"skills,omitempty"`
	TargetRole     string   `json:"target_role,omitempty"`
	NumQuestions   int      `json:"num_questions,omitempty" validate:"omitempty,min=1,max=25"`
}

// AssessmentAnswer pairs a question with the answer the user gave.
type AssessmentAnswer struct {
	Question   string `json:"question" validate:"required"`
	UserAnswer string `json:"user_answer"`
	Correct    string `json:"correct_answer,omitempty"`
}

// AssessmentEvaluateRequest asks for scoring of a completed assessment.
type AssessmentEvaluateRequest struct {
	UserID  string             `json:"user_id" validate:"required"`
	Answers []AssessmentAnswer `json:"answers" validate:"required,min=1,dive"`
}
