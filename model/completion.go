package model

import "time"

// Completion records that a habit was completed on a calendar day.
// CompletedAt is a day key (YYYY-MM-DD), not a timestamp; CreatedAt keeps the
// wall-clock moment the record was made, which the hourly analytics use.
// The repository enforces at most one record per (habit_id, completed_at).
type Completion struct {
	CompletionID   string    `bson:"_id,omitempty" json:"id"`
	HabitID        string    `bson:"habit_id" json:"habit_id"`
	UserID         string    `bson:"user_id" json:"user_id"`
	CompletedAt    string    `bson:"completed_at" json:"completed_at"`
	CompletedCount int       `bson:"completed_count" json:"completed_count"`
	CreatedAt      time.Time `bson:"created_at" json:"created_at"`
}
