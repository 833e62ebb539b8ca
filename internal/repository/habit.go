package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/habitrack/habitrack-go/internal/model"
)

var ErrHabitNotFound = errors.New("habit not found")

// HabitRepository handles habit persistence operations.
type HabitRepository struct {
	db *sql.DB
}

// NewHabitRepository creates a new HabitRepository.
func NewHabitRepository(db *sql.DB) *HabitRepository {
	return &HabitRepository{db: db}
}

// Create inserts a new habit and sets the generated ID on the habit struct.
func (r *HabitRepository) Create(ctx context.Context, habit *model.Habit) error {
	query := `INSERT INTO habits (user_id, name, description, color) VALUES (?, ?, ?, ?)`

	result, err := r.db.ExecContext(ctx, query,
		habit.UserID, habit.Name, nullString(habit.Description), habit.Color,
	)
	if err != nil {
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}

	habit.ID = id
	return nil
}

// GetByID retrieves a habit by its ID. The caller is responsible for
// checking the habit's owner before exposing it.
func (r *HabitRepository) GetByID(ctx context.Context, id int64) (*model.Habit, error) {
	query := `SELECT id, user_id, name, description, color, created_at FROM habits WHERE id = ?`

	habit := &model.Habit{}
	var description sql.NullString
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&habit.ID, &habit.UserID, &habit.Name, &description, &habit.Color, &habit.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrHabitNotFound
		}
		return nil, err
	}
	habit.Description = description.String

	return habit, nil
}

// ListByUser retrieves all habits owned by a user, oldest first.
func (r *HabitRepository) ListByUser(ctx context.Context, userID int64) ([]model.Habit, error) {
	query := `SELECT id, user_id, name, description, color, created_at
		FROM habits WHERE user_id = ? ORDER BY created_at ASC, id ASC`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var habits []model.Habit
	for rows.Next() {
		var h model.Habit
		var description sql.NullString
		if err := rows.Scan(&h.ID, &h.UserID, &h.Name, &description, &h.Color, &h.CreatedAt); err != nil {
			return nil, err
		}
		h.Description = description.String
		habits = append(habits, h)
	}

	return habits, rows.Err()
}

// Update persists a habit's mutable fields.
func (r *HabitRepository) Update(ctx context.Context, habit *model.Habit) error {
	query := `UPDATE habits SET name = ?, description = ?, color = ? WHERE id = ?`

	result, err := r.db.ExecContext(ctx, query,
		habit.Name, nullString(habit.Description), habit.Color, habit.ID,
	)
	if err != nil {
		return err
	}

	if _, err := result.RowsAffected(); err != nil {
		return err
	}
	return nil
}

// Delete removes a habit; its completions cascade at the database level.
func (r *HabitRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM habits WHERE id = ?`, id)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrHabitNotFound
	}
	return nil
}
