package service

import (
	"context"
	"errors"

	"github.com/habitrack/habitrack-go/internal/model"
	"github.com/habitrack/habitrack-go/internal/repository"
)

var (
	ErrHabitNameRequired = errors.New("name is required")
	ErrHabitNotFound     = errors.New("habit not found")
)

// HabitStore is the persistence boundary for habits.
type HabitStore interface {
	Create(ctx context.Context, habit *model.Habit) error
	GetByID(ctx context.Context, id int64) (*model.Habit, error)
	ListByUser(ctx context.Context, userID int64) ([]model.Habit, error)
	Update(ctx context.Context, habit *model.Habit) error
	Delete(ctx context.Context, id int64) error
}

// CompletionStore is the persistence boundary for habit completions.
type CompletionStore interface {
	Create(ctx context.Context, completion *model.HabitCompletion) error
	GetByHabitAndDate(ctx context.Context, habitID int64, date model.Date) (*model.HabitCompletion, error)
	ListByHabit(ctx context.Context, habitID int64) ([]model.HabitCompletion, error)
	Update(ctx context.Context, completion *model.HabitCompletion) error
	DeleteByHabitAndDate(ctx context.Context, habitID int64, date model.Date) error
}

// HabitService handles habit and completion business logic. Every operation
// on an existing habit goes through the ownership check first.
type HabitService struct {
	habits      HabitStore
	completions CompletionStore
}

// NewHabitService creates a new HabitService.
func NewHabitService(habits HabitStore, completions CompletionStore) *HabitService {
	return &HabitService{habits: habits, completions: completions}
}

// ownedHabit loads a habit and verifies it belongs to the given user.
// A habit that does not exist and a habit owned by someone else are
// indistinguishable: both return ErrHabitNotFound.
func (s *HabitService) ownedHabit(ctx context.Context, userID, habitID int64) (*model.Habit, error) {
	habit, err := s.habits.GetByID(ctx, habitID)
	if err != nil {
		if errors.Is(err, repository.ErrHabitNotFound) {
			return nil, ErrHabitNotFound
		}
		return nil, err
	}
	if habit.UserID != userID {
		return nil, ErrHabitNotFound
	}
	return habit, nil
}

// CreateHabit creates a new habit owned by the given user.
func (s *HabitService) CreateHabit(ctx context.Context, userID int64, req model.CreateHabitRequest) (model.HabitResponse, error) {
	if req.Name == "" {
		return model.HabitResponse{}, ErrHabitNameRequired
	}

	color := req.Color
	if color == "" {
		color = model.DefaultHabitColor
	}

	habit := &model.Habit{
		UserID:      userID,
		Name:        req.Name,
		Description: req.Description,
		Color:       color,
	}

	if err := s.habits.Create(ctx, habit); err != nil {
		return model.HabitResponse{}, err
	}

	return s.habitToResponse(ctx, habit)
}

// GetHabit returns a habit owned by the user, with its completions.
func (s *HabitService) GetHabit(ctx context.Context, userID, habitID int64) (model.HabitResponse, error) {
	habit, err := s.ownedHabit(ctx, userID, habitID)
	if err != nil {
		return model.HabitResponse{}, err
	}
	return s.habitToResponse(ctx, habit)
}

// ListHabits returns all habits owned by the user, with their completions.
func (s *HabitService) ListHabits(ctx context.Context, userID int64) ([]model.HabitResponse, error) {
	habits, err := s.habits.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	result := make([]model.HabitResponse, 0, len(habits))
	for i := range habits {
		resp, err := s.habitToResponse(ctx, &habits[i])
		if err != nil {
			return nil, err
		}
		result = append(result, resp)
	}
	return result, nil
}

// UpdateHabit applies a partial update to a habit owned by the user.
// Nil fields are left unchanged.
func (s *HabitService) UpdateHabit(ctx context.Context, userID, habitID int64, req model.UpdateHabitRequest) (model.HabitResponse, error) {
	habit, err := s.ownedHabit(ctx, userID, habitID)
	if err != nil {
		return model.HabitResponse{}, err
	}

	if req.Name != nil {
		if *req.Name == "" {
			return model.HabitResponse{}, ErrHabitNameRequired
		}
		habit.Name = *req.Name
	}
	if req.Description != nil {
		habit.Description = *req.Description
	}
	if req.Color != nil {
		habit.Color = *req.Color
	}

	if err := s.habits.Update(ctx, habit); err != nil {
		return model.HabitResponse{}, err
	}

	return s.habitToResponse(ctx, habit)
}

// DeleteHabit removes a habit owned by the user, along with its completions.
func (s *HabitService) DeleteHabit(ctx context.Context, userID, habitID int64) error {
	if _, err := s.ownedHabit(ctx, userID, habitID); err != nil {
		return err
	}

	err := s.habits.Delete(ctx, habitID)
	if errors.Is(err, repository.ErrHabitNotFound) {
		return ErrHabitNotFound
	}
	return err
}

func (s *HabitService) habitToResponse(ctx context.Context, habit *model.Habit) (model.HabitResponse, error) {
	completions, err := s.completions.ListByHabit(ctx, habit.ID)
	if err != nil {
		return model.HabitResponse{}, err
	}

	return model.HabitResponse{
		ID:          habit.ID,
		UserID:      habit.UserID,
		Name:        habit.Name,
		Description: habit.Description,
		Color:       habit.Color,
		CreatedAt:   habit.CreatedAt,
		Completions: completionsToResponse(completions),
	}, nil
}

func completionsToResponse(completions []model.HabitCompletion) []model.CompletionResponse {
	result := make([]model.CompletionResponse, len(completions))
	for i, c := range completions {
		result[i] = completionToResponse(&c)
	}
	return result
}

func completionToResponse(c *model.HabitCompletion) model.CompletionResponse {
	return model.CompletionResponse{
		ID:          c.ID,
		HabitID:     c.HabitID,
		Date:        c.Date,
		Description: c.Description,
		CreatedAt:   c.CreatedAt,
	}
}
