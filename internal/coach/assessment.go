package coach

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/IqraS-gif/ai-career-coach-backend/internal/llm"
	"github.com/IqraS-gif/ai-career-coach-backend/pkg/models"
)

// GenerateAssessment produces a question set for the given skills. The
// difficulty hint is derived from seniority markers in the target role.
func (e *Engine) GenerateAssessment(ctx context.Context, assessmentType string, skills []string, targetRole string, numQuestions int) ([]interface{}, error) {
	if numQuestions <= 0 {
		numQuestions = 5
	}

	roleContext := ""
	if targetRole != "" {
		roleContext = fmt.Sprintf(" for a %s", targetRole)
	}

	difficultyHint := "medium difficulty"
	normalizedRole := strings.ToLower(targetRole)
	if strings.Contains(normalizedRole, "junior") {
		difficultyHint = "beginner to medium difficulty"
	} else if strings.Contains(normalizedRole, "senior") || strings.Contains(normalizedRole, "lead") {
		difficultyHint = "medium to advanced difficulty"
	}

	prompt := fmt.Sprintf(`You are an expert technical interviewer and AI assessment designer.
Your task is to generate a concise, focused skill assessment with exactly %d questions.
The assessment should cover the following skills: **%s**.
The target context is %s role%s, at a %s level.

**Instructions for Question Generation:**
1.  Generate a mix of question types:
    -   **Single-choice (radio buttons):** ~50%% of questions. Provide 4 distinct options.
    -   **Multiple-choice (checkboxes):** ~20%% of questions. Provide 4 distinct options, clearly indicating ALL correct answers.
    -   **Short-answer:** ~20%% of questions. Requires a concise text response.
    -   **Coding challenge:** ~10%% of questions. Provide a clear problem statement and expected output/logic.
2.  Ensure questions cover both theoretical understanding and practical application of the skills.
3.  Assign a unique question_id (e.g., "q1", "q2") to each question.
4.  For each multiple/single choice question, you MUST provide the correct_answer_keys (a list of option values that are correct). This is CRITICAL for automated grading.

**JSON Output Schema (List of Question Objects):**
%s
**Critical Rules:**
- Your final output MUST be a JSON array containing exactly %d question objects.
- DO NOT include any introductory or concluding text outside the JSON.
- Ensure correct_answer_keys is always a LIST, even if only one answer.`,
		numQuestions, strings.Join(skills, ", "),
		titleCase(assessmentType), roleContext, difficultyHint,
		assessmentQuestionsSchema, numQuestions)

	text, err := e.generate(ctx, prompt)
	if err != nil {
		return nil, err
	}

	questions, ok := recoverJSONArray(text)
	if !ok {
		e.logger.Error("assessment generation returned unparseable output")
		return nil, ErrNoUsableOutput
	}
	return questions, nil
}

// EvaluateAssessment scores a finished assessment from the submitted
// answers.
func (e *Engine) EvaluateAssessment(ctx context.Context, answers []models.AssessmentAnswer) (map[string]interface{}, error) {
	summaries := make([]string, 0, len(answers))
	for _, ans := range answers {
		response := ans.UserAnswer
		if strings.TrimSpace(response) == "" {
			response = "No answer provided"
		}
		summaries = append(summaries, fmt.Sprintf("Question: %s\nUser Answer: %s\n---", ans.Question, fencedBlock(response)))
	}
	answersText := strings.Join(summaries, "\n")

	prompt := fmt.Sprintf(`You are an expert technical interviewer and AI grader.
Your task is to evaluate a user's submitted answers for a skill assessment.
Provide a comprehensive, structured evaluation based on the answers provided.

**Instructions for Evaluation:**
1.  **Calculate Overall Score:** Assign an overall percentage score (0-100%%) for the assessment.
2.  **Identify Skills Mastered/Areas to Improve (Counts):** Based on the questions and answers, estimate how many distinct skills were demonstrated proficiently and how many need significant improvement.
3.  **List Strengths:** Provide 2-3 specific bullet points highlighting what the user did well.
4.  **List Weaknesses:** Provide 2-3 specific bullet points highlighting areas where the user struggled or demonstrated gaps.
5.  **Personalized Recommendations:** Provide 2-3 actionable, general recommendations for improvement. These should be text-based recommendations, not URLs.

**User's Submitted Answers:**
------------------------------
%s
------------------------------

**JSON Output Schema:**
%s
**Critical Rules:**
- Your final output MUST be a single, valid JSON object following the schema.
- DO NOT include any introductory or concluding text outside the JSON.
- The skill_scores should be an object mapping skill names (e.g., Python, SQL) to a proficiency score (0-100). Infer these skills from the context of the assessment.`,
		answersText, assessmentEvaluationSchema)

	text, err := e.generate(ctx, prompt)
	if err != nil {
		return nil, err
	}

	var results map[string]interface{}
	if !llm.NormalizeInto(text, &results) {
		e.logger.Error("assessment evaluation returned unparseable output")
		return nil, ErrNoUsableOutput
	}
	return results, nil
}

// recoverJSONArray parses model output whose expected shape is a JSON array,
// with the same fence tolerance and greedy-substring fallback the object
// normalizer applies.
func recoverJSONArray(raw string) ([]interface{}, bool) {
	cleaned := llm.StripFences(raw)

	var list []interface{}
	if err := json.Unmarshal([]byte(cleaned), &list); err == nil {
		return list, true
	}

	if sub, ok := llm.BracketSubstring(raw); ok {
		if err := json.Unmarshal([]byte(sub), &list); err == nil {
			return list, true
		}
	}

	return nil, false
}
