package models

import "time"

// HealthResponse represents the health check response
type HealthResponse struct {
	Status    string            `json:"status"`
	Timestamp time.Time         `json:"timestamp"`
	Version   string            `json:"version"`
	Uptime    time.Duration     `json:"uptime"`
	Checks    map[string]string `json:"checks,omitempty"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error     string    `json:"error"`
	Message   string    `json:"message"`
	RequestID string    `json:"request_id"`
	Timestamp time.Time `json:"timestamp"`
}

// UploadResponse is returned after a resume has been extracted, structured
// and analyzed.
type UploadResponse struct {
	Success   bool        `json:"success"`
	Profile   interface{} `json:"profile,omitempty"`
	Analysis  interface{} `json:"analysis,omitempty"`
	Error     string      `json:"error,omitempty"`
	RequestID string      `json:"request_id"`
}

// OptimizeResponse carries an optimized resume. When no usable rewrite was
// produced the profile is the stored document unchanged.
type OptimizeResponse struct {
	Success   bool        `json:"success"`
	Profile   interface{} `json:"profile,omitempty"`
	RequestID string      `json:"request_id"`
}

// RoadmapResponse carries a generated or stored roadmap document.
type RoadmapResponse struct {
	Success   bool        `json:"success"`
	Roadmap   interface{} `json:"roadmap,omitempty"`
	RequestID string      `json:"request_id"`
}

// ChatResponse carries a single conversational reply.
type ChatResponse struct {
	Success   bool   `json:"success"`
	Reply     string `json:"reply"`
	RequestID string `json:"request_id"`
}

// JobsResponse carries rated job matches.
type JobsResponse struct {
	Success   bool     `json:"success"`
	Jobs      []Job    `json:"jobs"`
	Skills    []string `json:"skills,omitempty"`
	RequestID string   `json:"request_id"`
}
