package domain

import "time"

// Status tracks the lifecycle of a generation. Transitions are forward-only:
// pending -> processing -> completed | error. Once a record reaches a terminal
// status it never moves again.
type Status string

const (
	StatusPending    Status = "pending"
	StatusProcessing Status = "processing"
	StatusCompleted  Status = "completed"
	StatusError      Status = "error"
)

// Terminal reports whether the status permits no further transition.
func (s Status) Terminal() bool {
	return s == StatusCompleted || s == StatusError
}

// Generation is one user-submitted image transformation shown in the shared
// gallery.
type Generation struct {
	ID         string    `json:"id"`
	UserID     string    `json:"userId"`
	InputURL   string    `json:"inputUrl"`
	OutputURL  string    `json:"outputUrl"`
	PromptUsed string    `json:"promptUsed"`
	Status     Status    `json:"status"`
	Safe       bool      `json:"safe"`
	Likes      int       `json:"likes"`
	CreatedAt  time.Time `json:"createdAt"`
	Message    string    `json:"message,omitempty"`
	// Error records why the provider call failed. The gallery entry still
	// carries a placeholder output in that case, so operators need this
	// field (and the audit log) to tell real renders from faked ones.
	Error string `json:"error,omitempty"`
}

// LogEntry is one append-only audit record, written once per generation
// attempt and never mutated.
type LogEntry struct {
	ID           string    `json:"id"`
	GenerationID string    `json:"generationId,omitempty"`
	Status       Status    `json:"status"`
	Message      string    `json:"message"`
	CreatedAt    time.Time `json:"createdAt"`
	CookieID     string    `json:"cookieId,omitempty"`
}
