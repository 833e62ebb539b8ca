package service

import (
	"context"
	"errors"

	"github.com/habitrack/habitrack-go/internal/model"
	"github.com/habitrack/habitrack-go/internal/repository"
)

var (
	ErrCompletionDateRequired = errors.New("date is required")
	ErrCompletionNotFound     = errors.New("completion not found")
	ErrDuplicateCompletion    = errors.New("completion already exists for this date")
)

// CreateCompletion records a completion for a habit on a calendar date.
// At most one completion may exist per habit per date: an existing completion
// is rejected up front, and the unique key backstops the insert race.
func (s *HabitService) CreateCompletion(ctx context.Context, userID, habitID int64, req model.CreateCompletionRequest) (model.CompletionResponse, error) {
	if _, err := s.ownedHabit(ctx, userID, habitID); err != nil {
		return model.CompletionResponse{}, err
	}

	if req.Date.IsZero() {
		return model.CompletionResponse{}, ErrCompletionDateRequired
	}

	_, err := s.completions.GetByHabitAndDate(ctx, habitID, req.Date)
	if err == nil {
		return model.CompletionResponse{}, ErrDuplicateCompletion
	}
	if !errors.Is(err, repository.ErrCompletionNotFound) {
		return model.CompletionResponse{}, err
	}

	completion := &model.HabitCompletion{
		HabitID:     habitID,
		Date:        req.Date,
		Description: req.Description,
	}

	if err := s.completions.Create(ctx, completion); err != nil {
		if errors.Is(err, repository.ErrDuplicateCompletion) {
			return model.CompletionResponse{}, ErrDuplicateCompletion
		}
		return model.CompletionResponse{}, err
	}

	return completionToResponse(completion), nil
}

// UpdateCompletion applies a partial update to a completion, addressed by
// habit and date.
func (s *HabitService) UpdateCompletion(ctx context.Context, userID, habitID int64, date model.Date, req model.UpdateCompletionRequest) (model.CompletionResponse, error) {
	if _, err := s.ownedHabit(ctx, userID, habitID); err != nil {
		return model.CompletionResponse{}, err
	}

	completion, err := s.completions.GetByHabitAndDate(ctx, habitID, date)
	if err != nil {
		if errors.Is(err, repository.ErrCompletionNotFound) {
			return model.CompletionResponse{}, ErrCompletionNotFound
		}
		return model.CompletionResponse{}, err
	}

	if req.Description != nil {
		completion.Description = *req.Description
	}

	if err := s.completions.Update(ctx, completion); err != nil {
		return model.CompletionResponse{}, err
	}

	return completionToResponse(completion), nil
}

// DeleteCompletion removes a completion, addressed by habit and date.
func (s *HabitService) DeleteCompletion(ctx context.Context, userID, habitID int64, date model.Date) error {
	if _, err := s.ownedHabit(ctx, userID, habitID); err != nil {
		return err
	}

	err := s.completions.DeleteByHabitAndDate(ctx, habitID, date)
	if errors.Is(err, repository.ErrCompletionNotFound) {
		return ErrCompletionNotFound
	}
	return err
}
