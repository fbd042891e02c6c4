package coach

import (
	"context"
	"fmt"

	"github.com/IqraS-gif/ai-career-coach-backend/internal/llm"
	"github.com/IqraS-gif/ai-career-coach-backend/pkg/models"
)

// GenerateRoadmap builds a personalized career action plan from the user's
// profile. Topic lists in the result are normalized to progress objects
// ({name, is_completed}) before the roadmap is handed back for persisting.
func (e *Engine) GenerateRoadmap(ctx context.Context, profile map[string]interface{}) (map[string]interface{}, error) {
	prompt := fmt.Sprintf(`Act as a world-class AI Career Strategist and Technical Project Manager. Your task is to generate a deeply personalized, multi-faceted career action plan.

**STEP 1: ANALYZE THE USER'S PROFILE**
- **User's Current State (from resume or manual input):** %v
- **Stated Current Proficiency:** %v
- **User's Stated Goal (Job Description or Desired Skills):** %v
- **Desired Goal Proficiency:** %v
- **Time Commitment:** Plan for a duration of **%v**, assuming **%v** study hours per month.

**STEP 2: GENERATE THE ACTION PLAN AS A SINGLE, VALID JSON OBJECT**
The JSON output must be perfectly structured with the following keys. Do not include any explanatory text outside of the JSON object.

1.  "domain": A single string representing the most relevant domain inferred from the goal input (e.g., "Data Science", "Cybersecurity").
2.  "extracted_skills_and_projects": A JSON object with "skills" (array of strings) and "projects" (array of strings).
3.  "job_match_score": A JSON object with "score" (number) and "summary" (string).
4.  "skills_to_learn_summary": An array of strings.
5.  "timeline_chart_data": A JSON object with "labels" (array of strings) and "durations" (array of numbers in weeks); the total weeks must equal the user's specified duration.
6.  "detailed_roadmap": An array of "phase" objects, each with "phase_title", "phase_duration", and "topics" (array of strings).
7.  "suggested_projects": An array of 2 "project" objects, each with "project_title", "project_level", "skills_mapped", "what_you_will_learn", and a multi-step "implementation_plan".
8.  "suggested_courses": An array of 2-3 "course" objects, each with "course_name", "platform", "url", and "mapping". The "url" must be a direct, fully-qualified hyperlink and "mapping" a concise sentence explaining how the course helps the roadmap.`,
		profile["current_skills_input"], profile["current_level"],
		profile["goal_input"], profile["goal_level"],
		profile["duration"], profile["study_hours"])

	text, err := e.generate(ctx, prompt)
	if err != nil {
		return nil, err
	}

	var roadmap map[string]interface{}
	if !llm.NormalizeInto(text, &roadmap) {
		e.logger.Error("roadmap generation returned unparseable output")
		return nil, ErrNoUsableOutput
	}

	normalizeRoadmapTopics(roadmap)
	return roadmap, nil
}

// normalizeRoadmapTopics rewrites each phase's topics into progress objects
// so completion can be tracked per topic. Bare strings become
// {name, is_completed: false}; objects already in that shape are kept.
func normalizeRoadmapTopics(roadmap map[string]interface{}) {
	phases, ok := roadmap["detailed_roadmap"].([]interface{})
	if !ok {
		return
	}
	for _, p := range phases {
		phase, ok := p.(map[string]interface{})
		if !ok {
			continue
		}
		topics, ok := phase["topics"].([]interface{})
		if !ok {
			continue
		}
		normalized := make([]interface{}, 0, len(topics))
		for _, t := range topics {
			switch v := t.(type) {
			case string:
				normalized = append(normalized, map[string]interface{}{
					"name":         v,
					"is_completed": false,
				})
			case map[string]interface{}:
				if _, has := v["is_completed"]; !has {
					v["is_completed"] = false
				}
				normalized = append(normalized, v)
			}
		}
		phase["topics"] = normalized
	}
}

// TutorExplanation explains a roadmap topic with an analogy, a technical
// definition and prerequisite pointers.
func (e *Engine) TutorExplanation(ctx context.Context, topic string) (map[string]interface{}, error) {
	prompt := fmt.Sprintf(`Act as a friendly and encouraging expert tutor. A user is currently working through a personalized learning plan and is stuck on the following topic: **"%s"**

Your task is to provide a clear, helpful explanation in a structured JSON format. The JSON object must have the following keys:

1.  **"analogy"**: A simple, real-world analogy to help the user understand the core concept intuitively.
2.  **"technical_definition"**: A concise, technically accurate definition. If the topic involves code, provide a short, well-commented code snippet in the appropriate language (e.g., Python, JavaScript).
3.  **"prerequisites"**: An array of 1-3 prerequisite concepts the user might need to review. This helps them identify foundational knowledge gaps.

Generate the JSON object and nothing else.`, topic)

	text, err := e.generate(ctx, prompt)
	if err != nil {
		return nil, err
	}

	var explanation map[string]interface{}
	if !llm.NormalizeInto(text, &explanation) {
		e.logger.Error("tutor explanation returned unparseable output")
		return nil, ErrNoUsableOutput
	}
	return explanation, nil
}

// ChatbotReply answers a question grounded strictly in the user's summarized
// career plan. Total failure is a hard error here: silently inventing an
// answer without plan context would mislead the user.
func (e *Engine) ChatbotReply(ctx context.Context, query string, history []models.Turn, planSummary string) (string, error) {
	systemPrompt := fmt.Sprintf(`You are an AI career strategist and tutor. Your purpose is to provide concise, point-to-point, and beginner-friendly guidance to the user, strictly based on the career plan provided below.

**Career Plan Details:**
%s

**Your Instructions:**
1. Keep responses brief, beginner-friendly, and to the point.
2. You can answer questions related to the provided career plan, including the **job match score, priority skills, timeline, detailed roadmap, projects, and courses**.
3. If the user asks a question that is **outside the scope** of the career plan's domain or is not directly related to the provided plan data, you must respond with a polite refusal. For example, 'That question seems to be outside the scope of your current career plan. Is there anything I can help you with related to your career plan?'

Let's begin.`, planSummary)

	prompt := fmt.Sprintf("%s\n\nUSER QUESTION: %s", systemPrompt, query)
	return e.generateChat(ctx, prompt, history)
}
