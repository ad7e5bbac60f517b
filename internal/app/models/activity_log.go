package models

import "time"

// ActivityLog is one entry of the activity document log: who did what, with a
// free-form details document stored as jsonb.
type ActivityLog struct {
	ID        string         `json:"id" db:"id" example:"2f4c9a2e-6f1a-4b7e-9c36-6a1f0a2b3c4d"`
	UserID    *int64         `json:"userId" db:"user_id" example:"1"`
	Action    string         `json:"action" db:"action" example:"session.create"`
	Details   map[string]any `json:"details" db:"details"`
	CreatedAt time.Time      `json:"createdAt" db:"created_at"`
}
