package models

// Job is one live listing returned by the job search, carrying the match
// rating assigned against the user's skill set.
type Job struct {
	Title       string  `json:"title"`
	Company     string  `json:"company"`
	Location    string  `json:"location"`
	Description string  `json:"description,omitempty"`
	URL         string  `json:"url,omitempty"`
	SalaryMin   float64 `json:"salary_min,omitempty"`
	SalaryMax   float64 `json:"salary_max,omitempty"`
	Rating      int     `json:"rating"`
	Reason      string  `json:"reason,omitempty"`
}
