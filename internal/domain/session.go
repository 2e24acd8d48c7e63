package domain

import "time"

// Session represents a conversation session. Sessions are immutable after
// creation and are never evicted.
type Session struct {
	ID        int64     `json:"id"`
	SessionID string    `json:"sessionId"`
	UserID    *int64    `json:"userId,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// Message represents a single message in a session. Messages are append-only;
// insertion order within a session is the order of the autoincrement id.
type Message struct {
	ID        int64            `json:"id"`
	SessionID string           `json:"sessionId"`
	Sender    Sender           `json:"sender"`
	Content   string           `json:"content"`
	Metadata  *MessageMetadata `json:"metadata,omitempty"`
	CreatedAt time.Time        `json:"timestamp"`
}

// MessageMetadata carries the structured payload attached to bot messages
// that include certification recommendations. A nil Metadata means the
// message carries no structured payload.
type MessageMetadata struct {
	Certifications []RecommendedCertification `json:"certifications"`
	Category       string                     `json:"category,omitempty"`
}
