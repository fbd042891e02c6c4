package jobs

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/IqraS-gif/ai-career-coach-backend/internal/llm"
	"github.com/IqraS-gif/ai-career-coach-backend/internal/logging"
	"github.com/IqraS-gif/ai-career-coach-backend/pkg/models"
)

const topJobCount = 7

// knownSkills is the fixed vocabulary scanned for by ExtractSkills.
var knownSkills = []string{
	"Python", "Java", "C++", "JavaScript", "TypeScript", "Go", "Rust", "C#",
	"SQL", "NoSQL", "MongoDB", "PostgreSQL", "MySQL", "Redis", "Elasticsearch",
	"React", "Angular", "Vue.js", "Node.js", "Express.js", "Django", "Flask", "Spring Boot",
	"AWS", "Azure", "Google Cloud", "GCP", "Docker", "Kubernetes", "Git", "Jenkins", "Terraform",
	"Machine Learning", "Deep Learning", "NLP", "Computer Vision", "Data Analysis", "Data Science",
	"Cloud Computing", "DevOps", "Cybersecurity", "Blockchain", "Agile", "Scrum",
	"Communication", "Teamwork", "Leadership", "Problem Solving", "Critical Thinking", "Adaptability",
	"Project Management", "UI/UX Design", "Frontend", "Backend", "Fullstack",
}

var skillPatterns = buildSkillPatterns()

func buildSkillPatterns() map[string]*regexp.Regexp {
	patterns := make(map[string]*regexp.Regexp, len(knownSkills))
	for _, skill := range knownSkills {
		patterns[skill] = regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(skill) + `\b`)
	}
	return patterns
}

// ExtractSkills scans text for the fixed skill vocabulary. No model call is
// involved; this is a plain keyword match.
func ExtractSkills(text string) []string {
	var found []string
	for _, skill := range knownSkills {
		if skillPatterns[skill].MatchString(text) {
			found = append(found, skill)
		}
	}
	return found
}

// Processor rates listings against a skill set and selects the best
// matches.
type Processor struct {
	gen    llm.Generator
	logger logging.Logger
}

// NewProcessor creates a processor over any Generator implementation.
func NewProcessor(gen llm.Generator) *Processor {
	return &Processor{
		gen:    gen,
		logger: logging.GetGlobalLogger(),
	}
}

// jobRating is the expected per-job element of the rating reply.
type jobRating struct {
	ID     int    `json:"id"`
	Rating int    `json:"rating"`
	Reason string `json:"reason"`
}

// RateJobs asks for a match rating of every listing in a single batched
// call. This operation never fails the request: on total generation failure
// or unusable output every job carries rating 0 with an error reason.
func (p *Processor) RateJobs(ctx context.Context, listings []Listing, skills []string) []models.Job {
	jobs := make([]models.Job, len(listings))
	for i, l := range listings {
		jobs[i] = models.Job{
			Title:       l.Title,
			Company:     l.Company,
			Location:    l.Location,
			Description: l.Description,
			URL:         l.URL,
			SalaryMin:   l.SalaryMin,
			SalaryMax:   l.SalaryMax,
		}
	}
	if len(jobs) == 0 || len(skills) == 0 {
		return jobs
	}

	outcome, err := p.gen.Invoke(ctx, models.GenerationRequest{Prompt: buildRatingPrompt(listings, skills)})
	if err != nil {
		p.logger.Error("job rating failed, returning unrated jobs", map[string]interface{}{"error": err.Error()})
		markUnrated(jobs, "Error: AI service is currently unavailable.")
		return jobs
	}

	ratings, ok := parseRatings(outcome.Text)
	if !ok {
		p.logger.Error("job rating returned unparseable output")
		markUnrated(jobs, "Error: Invalid response format from AI.")
		return jobs
	}

	for _, r := range ratings {
		if r.ID >= 0 && r.ID < len(jobs) {
			jobs[r.ID].Rating = r.Rating
			jobs[r.ID].Reason = r.Reason
		}
	}
	return jobs
}

// SelectTop deduplicates rated jobs by (title, company, location), keeping
// the best-rated duplicate, and returns at most the top 7 by rating.
func SelectTop(jobs []models.Job) []models.Job {
	best := make(map[string]models.Job)
	order := make([]string, 0, len(jobs))
	for _, job := range jobs {
		key := strings.ToLower(job.Title + "|" + job.Company + "|" + job.Location)
		existing, seen := best[key]
		if !seen {
			order = append(order, key)
			best[key] = job
			continue
		}
		if job.Rating > existing.Rating {
			best[key] = job
		}
	}

	unique := make([]models.Job, 0, len(order))
	for _, key := range order {
		unique = append(unique, best[key])
	}

	sort.SliceStable(unique, func(i, j int) bool {
		return unique[i].Rating > unique[j].Rating
	})

	if len(unique) > topJobCount {
		unique = unique[:topJobCount]
	}
	return unique
}

func buildRatingPrompt(listings []Listing, skills []string) string {
	parts := []string{
		fmt.Sprintf("Based on the following skills from a user's resume: %s.", strings.Join(skills, ", ")),
		"Please evaluate the list of job descriptions below.",
		"For each job, provide a rating from 1 to 10 on how well it matches the skills, and a single sentence reason.",
		"IMPORTANT: You MUST respond with ONLY a valid JSON array of objects. Do not include any other text, explanations, or code markers.",
		"Each JSON object must have exactly three keys: 'id' (the original job index as an integer), 'rating' (an integer 1-10), and 'reason' (a string).",
		"CRITICAL: Ensure every object in the array is separated by a comma (except for the last one).",
		"\nHere are the jobs:\n",
	}

	for i, l := range listings {
		description := l.Description
		if description == "" {
			description = "No description available."
		}
		// The prompt uses --- and ``` as structure; neutralize them inside
		// descriptions.
		description = strings.ReplaceAll(description, "---", "-")
		description = strings.ReplaceAll(description, "```", "'")
		parts = append(parts, fmt.Sprintf("--- Job %d ---\nTitle: %s\nCompany: %s\nDescription: %s\n", i, l.Title, l.Company, description))
	}

	return strings.Join(parts, "\n")
}

func parseRatings(raw string) ([]jobRating, bool) {
	cleaned := llm.StripFences(raw)

	var ratings []jobRating
	if err := json.Unmarshal([]byte(cleaned), &ratings); err == nil {
		return ratings, true
	}

	if sub, ok := llm.BracketSubstring(raw); ok {
		if err := json.Unmarshal([]byte(sub), &ratings); err == nil {
			return ratings, true
		}
	}
	return nil, false
}

func markUnrated(jobs []models.Job, reason string) {
	for i := range jobs {
		jobs[i].Rating = 0
		jobs[i].Reason = reason
	}
}
