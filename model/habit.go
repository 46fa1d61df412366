package model

import "time"

type Habit struct {
	HabitID         string    `bson:"_id,omitempty" json:"id"`
	UserID          string    `bson:"user_id" json:"user_id"`
	Name            string    `bson:"name" json:"name" binding:"required"`
	Description     string    `bson:"description,omitempty" json:"description,omitempty"`
	CategoryID      string    `bson:"category_id,omitempty" json:"category_id,omitempty"`
	TargetFrequency int       `bson:"target_frequency" json:"target_frequency"` // completions expected per day, >= 1
	IsActive        bool      `bson:"is_active" json:"is_active"`
	CreatedAt       time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt       time.Time `bson:"updated_at" json:"updated_at"`
}
