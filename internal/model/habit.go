package model

import "time"

// DefaultHabitColor is applied when a habit is created without a color.
const DefaultHabitColor = "bg-blue-500"

// Habit represents a habit in the database.
type Habit struct {
	ID          int64
	UserID      int64
	Name        string
	Description string
	Color       string
	CreatedAt   time.Time
}

// HabitCompletion represents a single day's completion of a habit.
// At most one completion exists per habit per calendar date.
type HabitCompletion struct {
	ID          int64
	HabitID     int64
	Date        Date
	Description string
	CreatedAt   time.Time
}

// CreateHabitRequest represents a habit creation request.
type CreateHabitRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Color       string `json:"color"`
}

// UpdateHabitRequest represents a partial habit update.
// Pointer fields distinguish missing (nil -> unchanged) from explicit values.
type UpdateHabitRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Color       *string `json:"color"`
}

// CreateCompletionRequest represents a completion creation request.
type CreateCompletionRequest struct {
	Date        Date   `json:"date"`
	Description string `json:"description"`
}

// UpdateCompletionRequest represents a partial completion update.
type UpdateCompletionRequest struct {
	Description *string `json:"description"`
}

// CompletionResponse represents a completion in API responses.
type CompletionResponse struct {
	ID          int64     `json:"id"`
	HabitID     int64     `json:"habit_id"`
	Date        Date      `json:"date"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// HabitResponse represents a habit in API responses, with its completions.
type HabitResponse struct {
	ID          int64                `json:"id"`
	UserID      int64                `json:"user_id"`
	Name        string               `json:"name"`
	Description string               `json:"description,omitempty"`
	Color       string               `json:"color"`
	CreatedAt   time.Time            `json:"created_at"`
	Completions []CompletionResponse `json:"completions"`
}
