package models

import "time"

// AuthState is the persisted login session. A missing state means nobody is
// logged in.
type AuthState struct {
	IsAuthenticated bool      `json:"isAuthenticated"`
	User            *User     `json:"user"`
	SessionID       string    `json:"sessionId,omitempty"`
	StartedAt       time.Time `json:"startedAt,omitempty"`
}
