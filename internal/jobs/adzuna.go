package jobs

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/time/rate"

	"github.com/IqraS-gif/ai-career-coach-backend/internal/config"
	"github.com/IqraS-gif/ai-career-coach-backend/internal/logging"
)

// AdzunaClient searches live job listings through the Adzuna REST API.
// Requests are throttled with a shared limiter so skill-by-skill fan-out
// stays inside the API plan.
type AdzunaClient struct {
	appID      string
	appKey     string
	baseURL    string
	country    string
	maxResults int
	httpClient *http.Client
	limiter    *rate.Limiter
	logger     logging.Logger
}

// adzunaSearchResponse is the wire shape of one search page.
type adzunaSearchResponse struct {
	Results []struct {
		Title   string `json:"title"`
		Company struct {
			DisplayName string `json:"display_name"`
		} `json:"company"`
		Location struct {
			DisplayName string `json:"display_name"`
		} `json:"location"`
		Description string  `json:"description"`
		RedirectURL string  `json:"redirect_url"`
		SalaryMin   float64 `json:"salary_min"`
		SalaryMax   float64 `json:"salary_max"`
	} `json:"results"`
}

// Listing is one raw search hit before rating.
type Listing struct {
	Title       string
	Company     string
	Location    string
	Description string
	URL         string
	SalaryMin   float64
	SalaryMax   float64
	MatchSkill  string
}

// NewAdzunaClient creates a search client from configuration.
func NewAdzunaClient(cfg *config.Config) *AdzunaClient {
	perSecond := rate.Limit(float64(cfg.Adzuna.RateLimit) / 60.0)
	return &AdzunaClient{
		appID:      cfg.Adzuna.AppID,
		appKey:     cfg.Adzuna.AppKey,
		baseURL:    cfg.Adzuna.BaseURL,
		country:    cfg.Adzuna.Country,
		maxResults: cfg.Adzuna.MaxResults,
		httpClient: &http.Client{Timeout: cfg.Adzuna.Timeout},
		limiter:    rate.NewLimiter(perSecond, 1),
		logger:     logging.GetGlobalLogger(),
	}
}

// Search fetches one page of listings for a search term. Descriptions come
// back HTML-cleaned so they can be embedded in prompts directly.
func (c *AdzunaClient) Search(ctx context.Context, what, where string, resultsPerPage int) ([]Listing, error) {
	if c.appID == "" || c.appKey == "" {
		return nil, fmt.Errorf("adzuna credentials not configured")
	}
	if resultsPerPage <= 0 {
		resultsPerPage = 10
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait aborted: %w", err)
	}

	endpoint := fmt.Sprintf("%s/jobs/%s/search/1", c.baseURL, c.country)
	params := url.Values{}
	params.Set("app_id", c.appID)
	params.Set("app_key", c.appKey)
	params.Set("what", what)
	params.Set("results_per_page", strconv.Itoa(resultsPerPage))
	params.Set("content-type", "application/json")
	if where != "" {
		params.Set("where", where)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build search request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("job search request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("job search returned status %d: %s", resp.StatusCode, string(body))
	}

	var parsed adzunaSearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("failed to decode search response: %w", err)
	}

	listings := make([]Listing, 0, len(parsed.Results))
	for _, r := range parsed.Results {
		listings = append(listings, Listing{
			Title:       r.Title,
			Company:     r.Company.DisplayName,
			Location:    r.Location.DisplayName,
			Description: cleanDescription(r.Description),
			URL:         r.RedirectURL,
			SalaryMin:   r.SalaryMin,
			SalaryMax:   r.SalaryMax,
		})
	}

	c.logger.Debug("job search page fetched", map[string]interface{}{
		"what":    what,
		"where":   where,
		"results": len(listings),
	})
	return listings, nil
}

// MaxResults returns the configured total listing budget for one search.
func (c *AdzunaClient) MaxResults() int {
	return c.maxResults
}

// cleanDescription strips HTML markup from a listing description. On parse
// failure the raw text is kept.
func cleanDescription(html string) string {
	if !strings.Contains(html, "<") {
		return strings.TrimSpace(html)
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return strings.TrimSpace(html)
	}
	return strings.TrimSpace(doc.Text())
}
