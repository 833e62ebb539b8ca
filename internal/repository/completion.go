package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/habitrack/habitrack-go/internal/model"
)

var (
	ErrCompletionNotFound  = errors.New("completion not found")
	ErrDuplicateCompletion = errors.New("completion already exists for this date")
)

// CompletionRepository handles habit completion persistence operations.
type CompletionRepository struct {
	db *sql.DB
}

// NewCompletionRepository creates a new CompletionRepository.
func NewCompletionRepository(db *sql.DB) *CompletionRepository {
	return &CompletionRepository{db: db}
}

// Create inserts a new completion and sets the generated ID. The unique key
// on (habit_id, date) turns a racing insert into ErrDuplicateCompletion.
func (r *CompletionRepository) Create(ctx context.Context, completion *model.HabitCompletion) error {
	query := `INSERT INTO habit_completions (habit_id, date, description) VALUES (?, ?, ?)`

	result, err := r.db.ExecContext(ctx, query,
		completion.HabitID, completion.Date, nullString(completion.Description),
	)
	if err != nil {
		if isDuplicateEntryError(err) {
			return ErrDuplicateCompletion
		}
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}

	completion.ID = id
	return nil
}

// GetByHabitAndDate retrieves a completion by habit ID and calendar date.
func (r *CompletionRepository) GetByHabitAndDate(ctx context.Context, habitID int64, date model.Date) (*model.HabitCompletion, error) {
	query := `SELECT id, habit_id, date, description, created_at
		FROM habit_completions WHERE habit_id = ? AND date = ?`

	completion := &model.HabitCompletion{}
	var description sql.NullString
	err := r.db.QueryRowContext(ctx, query, habitID, date).Scan(
		&completion.ID, &completion.HabitID, &completion.Date, &description, &completion.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrCompletionNotFound
		}
		return nil, err
	}
	completion.Description = description.String

	return completion, nil
}

// ListByHabit retrieves all completions for a habit, most recent date first.
func (r *CompletionRepository) ListByHabit(ctx context.Context, habitID int64) ([]model.HabitCompletion, error) {
	query := `SELECT id, habit_id, date, description, created_at
		FROM habit_completions WHERE habit_id = ? ORDER BY date DESC`

	rows, err := r.db.QueryContext(ctx, query, habitID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var completions []model.HabitCompletion
	for rows.Next() {
		var c model.HabitCompletion
		var description sql.NullString
		if err := rows.Scan(&c.ID, &c.HabitID, &c.Date, &description, &c.CreatedAt); err != nil {
			return nil, err
		}
		c.Description = description.String
		completions = append(completions, c)
	}

	return completions, rows.Err()
}

// Update persists a completion's description.
func (r *CompletionRepository) Update(ctx context.Context, completion *model.HabitCompletion) error {
	query := `UPDATE habit_completions SET description = ? WHERE id = ?`

	_, err := r.db.ExecContext(ctx, query, nullString(completion.Description), completion.ID)
	return err
}

// DeleteByHabitAndDate removes a completion for a habit on a given date.
func (r *CompletionRepository) DeleteByHabitAndDate(ctx context.Context, habitID int64, date model.Date) error {
	query := `DELETE FROM habit_completions WHERE habit_id = ? AND date = ?`

	result, err := r.db.ExecContext(ctx, query, habitID, date)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrCompletionNotFound
	}
	return nil
}
