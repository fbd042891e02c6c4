package coach

import (
	"fmt"
	"strings"
)

// SummarizePlan flattens a stored roadmap document into display text for
// chatbot grounding. Only the fields the chatbot is allowed to discuss are
// included.
func SummarizePlan(roadmap map[string]interface{}) string {
	var parts []string

	if domain, ok := roadmap["domain"].(string); ok && domain != "" {
		parts = append(parts, fmt.Sprintf("Domain: %s", domain))
	}

	if match, ok := roadmap["job_match_score"].(map[string]interface{}); ok {
		parts = append(parts, fmt.Sprintf("Job Match Score: %v (%v)", match["score"], match["summary"]))
	}

	if skills, ok := roadmap["skills_to_learn_summary"].([]interface{}); ok && len(skills) > 0 {
		parts = append(parts, fmt.Sprintf("Priority Skills to Learn: %s", strings.ReplaceAll(stringifyListContent(skills), "\n", ", ")))
	}

	if timeline, ok := roadmap["timeline_chart_data"].(map[string]interface{}); ok {
		labels, _ := timeline["labels"].([]interface{})
		durations, _ := timeline["durations"].([]interface{})
		if len(labels) > 0 && len(labels) == len(durations) {
			var segments []string
			for i := range labels {
				segments = append(segments, fmt.Sprintf("%v (%v weeks)", labels[i], durations[i]))
			}
			parts = append(parts, fmt.Sprintf("Timeline: %s", strings.Join(segments, ", ")))
		}
	}

	if phases, ok := roadmap["detailed_roadmap"].([]interface{}); ok && len(phases) > 0 {
		parts = append(parts, "Detailed Roadmap:")
		for _, p := range phases {
			phase, ok := p.(map[string]interface{})
			if !ok {
				continue
			}
			var topicNames []string
			if topics, ok := phase["topics"].([]interface{}); ok {
				for _, t := range topics {
					switch v := t.(type) {
					case string:
						topicNames = append(topicNames, v)
					case map[string]interface{}:
						if name, _ := v["name"].(string); name != "" {
							topicNames = append(topicNames, name)
						}
					}
				}
			}
			parts = append(parts, fmt.Sprintf("- %v (%v): %s", phase["phase_title"], phase["phase_duration"], strings.Join(topicNames, ", ")))
		}
	}

	if projects, ok := roadmap["suggested_projects"].([]interface{}); ok && len(projects) > 0 {
		parts = append(parts, "Suggested Projects:")
		for _, p := range projects {
			if project, ok := p.(map[string]interface{}); ok {
				parts = append(parts, fmt.Sprintf("- %v (%v)", project["project_title"], project["project_level"]))
			}
		}
	}

	if courses, ok := roadmap["suggested_courses"].([]interface{}); ok && len(courses) > 0 {
		parts = append(parts, "Suggested Courses:")
		for _, c := range courses {
			if course, ok := c.(map[string]interface{}); ok {
				parts = append(parts, fmt.Sprintf("- %v on %v: %v", course["course_name"], course["platform"], course["mapping"]))
			}
		}
	}

	if len(parts) == 0 {
		return "No career plan details are available yet."
	}
	return strings.Join(parts, "\n")
}
