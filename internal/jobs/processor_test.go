package jobs

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/IqraS-gif/ai-career-coach-backend/pkg/models"
)

type stubGenerator struct {
	reply   string
	err     error
	prompts []string
}

func (s *stubGenerator) Invoke(_ context.Context, req models.GenerationRequest) (*models.Outcome, error) {
	s.prompts = append(s.prompts, req.Prompt)
	if s.err != nil {
		return nil, s.err
	}
	return &models.Outcome{Text: s.reply, Attempts: 1, Provider: "stub"}, nil
}

func TestExtractSkills(t *testing.T) {
	text := "Built backend services in Go and Python, deployed on AWS with Docker and Kubernetes. Strong communication skills."
	skills := ExtractSkills(text)

	assert.Contains(t, skills, "Go")
	assert.Contains(t, skills, "Python")
	assert.Contains(t, skills, "AWS")
	assert.Contains(t, skills, "Docker")
	assert.Contains(t, skills, "Kubernetes")
	assert.Contains(t, skills, "Communication")
	assert.NotContains(t, skills, "Rust")
}

func TestExtractSkills_WordBoundaries(t *testing.T) {
	// "Going" must not match "Go"; "Java" must not fire from "JavaScript".
	skills := ExtractSkills("Going to learn JavaScript next year.")
	assert.Contains(t, skills, "JavaScript")
	assert.NotContains(t, skills, "Go")
	assert.NotContains(t, skills, "Java")
}

func TestExtractSkills_NoMatches(t *testing.T) {
	assert.Empty(t, ExtractSkills("completely unrelated text"))
}

func sampleListings() []Listing {
	return []Listing{
		{Title: "Backend Engineer", Company: "Acme", Location: "Mumbai", Description: "Go and Redis"},
		{Title: "Data Analyst", Company: "Globex", Location: "Pune", Description: "SQL dashboards"},
	}
}

func TestRateJobs_Success(t *testing.T) {
	gen := &stubGenerator{reply: "```json\n[{\"id\": 0, \"rating\": 9, \"reason\": \"strong overlap\"}, {\"id\": 1, \"rating\": 4, \"reason\": \"partial\"}]\n```"}
	p := NewProcessor(gen)

	jobs := p.RateJobs(context.Background(), sampleListings(), []string{"Go", "Redis"})
	require.Len(t, jobs, 2)
	assert.Equal(t, 9, jobs[0].Rating)
	assert.Equal(t, "strong overlap", jobs[0].Reason)
	assert.Equal(t, 4, jobs[1].Rating)
}

func TestRateJobs_NeverFailsOnGenerationError(t *testing.T) {
	gen := &stubGenerator{err: errors.New("everything is down")}
	p := NewProcessor(gen)

	jobs := p.RateJobs(context.Background(), sampleListings(), []string{"Go"})
	require.Len(t, jobs, 2)
	for _, job := range jobs {
		assert.Equal(t, 0, job.Rating)
		assert.Equal(t, "Error: AI service is currently unavailable.", job.Reason)
	}
}

func TestRateJobs_UnparseableOutput(t *testing.T) {
	gen := &stubGenerator{reply: "no json here"}
	p := NewProcessor(gen)

	jobs := p.RateJobs(context.Background(), sampleListings(), []string{"Go"})
	for _, job := range jobs {
		assert.Equal(t, 0, job.Rating)
		assert.Equal(t, "Error: Invalid response format from AI.", job.Reason)
	}
}

func TestRateJobs_IgnoresOutOfRangeIDs(t *testing.T) {
	gen := &stubGenerator{reply: `[{"id": 0, "rating": 7, "reason": "ok"}, {"id": 99, "rating": 10, "reason": "phantom"}]`}
	p := NewProcessor(gen)

	jobs := p.RateJobs(context.Background(), sampleListings(), []string{"Go"})
	assert.Equal(t, 7, jobs[0].Rating)
	assert.Equal(t, 0, jobs[1].Rating)
}

func TestRateJobs_NoSkillsSkipsModelCall(t *testing.T) {
	gen := &stubGenerator{reply: "[]"}
	p := NewProcessor(gen)

	jobs := p.RateJobs(context.Background(), sampleListings(), nil)
	assert.Len(t, jobs, 2)
	assert.Empty(t, gen.prompts)
}

func TestBuildRatingPrompt_NeutralizesMarkers(t *testing.T) {
	listings := []Listing{{Title: "T", Company: "C", Description: "before --- after ``` end"}}
	prompt := buildRatingPrompt(listings, []string{"Go"})
	assert.NotContains(t, prompt, "before --- after")
	assert.NotContains(t, prompt, "```")
	assert.Contains(t, prompt, "--- Job 0 ---")
}

func TestSelectTop_DedupeKeepsBestRating(t *testing.T) {
	jobs := []models.Job{
		{Title: "Engineer", Company: "Acme", Location: "Mumbai", Rating: 5},
		{Title: "engineer", Company: "ACME", Location: "mumbai", Rating: 8},
		{Title: "Analyst", Company: "Globex", Location: "Pune", Rating: 6},
	}

	top := SelectTop(jobs)
	require.Len(t, top, 2)
	assert.Equal(t, 8, top[0].Rating)
	assert.Equal(t, 6, top[1].Rating)
}

func TestSelectTop_CapsAtSeven(t *testing.T) {
	var jobs []models.Job
	for i := 0; i < 12; i++ {
		jobs = append(jobs, models.Job{
			Title:   string(rune('a' + i)),
			Company: "Acme",
			Rating:  i,
		})
	}

	top := SelectTop(jobs)
	require.Len(t, top, 7)
	assert.Equal(t, 11, top[0].Rating)
	assert.Equal(t, 5, top[6].Rating)
}

func TestParseRatings_BracketRecovery(t *testing.T) {
	raw := "Here are your ratings: [{\"id\": 0, \"rating\": 3, \"reason\": \"weak\"}] hope that helps!"
	ratings, ok := parseRatings(raw)
	require.True(t, ok)
	require.Len(t, ratings, 1)
	assert.Equal(t, 3, ratings[0].Rating)
}

func TestCleanDescription(t *testing.T) {
	assert.Equal(t, "plain text", cleanDescription("plain text"))
	assert.Equal(t, "Bold and link", cleanDescription("<p><b>Bold</b> and <a href='x'>link</a></p>"))
}
