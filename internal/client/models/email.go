package models

// EmailConfig is a report notification recipient. Only active entries are
// included when a report is sent.
type EmailConfig struct {
	ID     string `json:"id"`
	Email  string `json:"email"`
	Name   string `json:"name"`
	Active bool   `json:"active"`
}

func (e EmailConfig) GetID() string { return e.ID }

func (e EmailConfig) WithID(id string) EmailConfig {
	e.ID = id
	return e
}
