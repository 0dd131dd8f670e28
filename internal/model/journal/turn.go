package journal

import "strings"

// Role identifies the author of a conversation turn.
type Role string

const (
	RoleUser  Role = "user"
	RoleModel Role = "model"
)

// ParseRole accepts "user", "model" and "assistant" (alias of model).
func ParseRole(raw string) (Role, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "user":
		return RoleUser, true
	case "model", "assistant":
		return RoleModel, true
	default:
		return "", false
	}
}

// Turn is one client-supplied message of the running transcript. Turns are
// never persisted.
type Turn struct {
	Role Role   `json:"role"`
	Text string `json:"parts"`
}

// SavedEntry is the payload the assistant embeds when the user agrees to save.
type SavedEntry struct {
	Content string `json:"content"`
	Mood    string `json:"mood"`
	Summary string `json:"summary,omitempty"`
}
