package coach

import (
	"context"
	"fmt"
	"strings"

	"github.com/IqraS-gif/ai-career-coach-backend/internal/llm"
	"github.com/IqraS-gif/ai-career-coach-backend/pkg/models"
)

const interviewPrimer = "Understood. I am ready to begin the interview."

// interviewPersona returns the interviewer persona block for a difficulty
// setting. Anything other than easy/hard falls back to medium.
func interviewPersona(difficulty string) string {
	switch difficulty {
	case "easy":
		return `Your Persona: You are a friendly and encouraging hiring manager for an entry-level role.
Your Goal: Understand the candidate's basic knowledge and potential. Ask foundational, single-topic conceptual questions (e.g., "In Python, what is the difference between a list and a tuple?").
Your Tone: Supportive and patient.
Your First Action: Start with a simple, welcoming question like "Thanks for coming in. To start, could you tell me about a project you're proud of that's relevant to this role?"`
	case "hard":
		return `Your Persona: You are a sharp, direct senior engineer conducting a final-round interview.
Your Goal: Rigorously test the candidate's deep technical expertise, problem-solving, and system design skills. Ask challenging, multi-part, or scenario-based questions (e.g., "Given the requirements in the job description, walk me through how you would design a scalable, resilient API for our service. What bottlenecks would you anticipate and how would you mitigate them?").
Your Tone: Critical, professional, and expecting detailed answers. You will ask tough follow-up questions.
Your First Action: Start directly with a challenging technical question based on a core skill from the job description.`
	default:
		return `Your Persona: You are a professional team lead for a mid-level role.
Your Goal: Assess the candidate's practical skills and real-world project experience. Ask behavioral and technical questions that require specific examples (e.g., "Tell me about a time you had to deal with significant technical debt. How did you handle it and what was the outcome?").
Your Tone: Objective and focused.
Your First Action: Start with a question about the candidate's most relevant experience from their resume, tying it to the job description.`
	}
}

// InterviewReply produces the interviewer's next turn in a mock interview.
// The persona instruction and a fixed model primer are prepended as history
// turns; the candidate's newest message is the prompt.
func (e *Engine) InterviewReply(ctx context.Context, jobDescription, message string, history []models.Turn, difficulty string) (string, error) {
	systemInstruction := fmt.Sprintf(`%s

CRITICAL RULE: You are the INTERVIEWER. The user is the CANDIDATE. You must conduct a realistic interview.
Base ALL of your questions and analysis strictly on the provided job description context below. Do not ask about skills not mentioned.

--- JOB DESCRIPTION CONTEXT ---
%s
--- END CONTEXT ---`, interviewPersona(difficulty), jobDescription)

	fullHistory := make([]models.Turn, 0, len(history)+2)
	fullHistory = append(fullHistory,
		models.Turn{Role: models.RoleUser, Content: systemInstruction},
		models.Turn{Role: models.RoleAssistant, Content: interviewPrimer},
	)
	fullHistory = append(fullHistory, history...)

	return e.generateChat(ctx, message, fullHistory)
}

// InterviewSummary scores a finished mock interview from its transcript.
func (e *Engine) InterviewSummary(ctx context.Context, jobDescription string, history []models.Turn) (map[string]interface{}, error) {
	lines := make([]string, 0, len(history))
	for _, turn := range history {
		lines = append(lines, fmt.Sprintf("%s: %s", turn.Role, turn.Content))
	}
	transcript := strings.Join(lines, "\n")

	prompt := fmt.Sprintf(`You are an expert career coach and technical recruiter. Your task is to analyze the following mock interview transcript and provide a performance summary.

**Job Description Context:**
%s

**Interview Transcript:**
%s

**Your Analysis Task:**
Based on the job description and the transcript, provide a detailed analysis in a valid JSON object. The JSON must have the following keys:
1.  "overall_score": An integer from 0 to 100 representing the candidate's overall performance.
2.  "strengths": A list of 2-3 specific, positive points about the candidate's performance, citing examples from the transcript.
3.  "areas_for_improvement": A list of 2-3 specific, constructive points for improvement, citing examples.
4.  "overall_feedback": A concise paragraph summarizing the performance and providing a final recommendation.

**Critical Rules:**
- Your final output must be ONLY the valid JSON object. Do not include markdown or any other text.
- Be honest and constructive in your feedback.`, fencedBlock(jobDescription), fencedBlock(transcript))

	text, err := e.generate(ctx, prompt)
	if err != nil {
		return nil, err
	}

	var summary map[string]interface{}
	if !llm.NormalizeInto(text, &summary) {
		e.logger.Error("interview summary returned unparseable output")
		return nil, ErrNoUsableOutput
	}
	return summary, nil
}
