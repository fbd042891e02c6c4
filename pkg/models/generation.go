package models

// Role identifies the author of a conversation turn.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Turn is a single immutable entry in a conversation history.
type Turn struct {
	Role    Role   `json:"role" validate:"required,oneof=user assistant"`
	Content string `json:"content" validate:"required"`
}

// GenerationRequest describes one generation call. History is only consulted
// when Chat is set; it is replayed in original order before Prompt is
// submitted as the newest turn. The request is owned by the call and never
// mutated after construction.
type GenerationRequest struct {
	Prompt  string
	History []Turn
	Chat    bool
}

// Outcome is the payload of a successful generation call.
type Outcome struct {
	Text     string
	Attempts int
	Provider string
}
