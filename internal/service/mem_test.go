package service

// In-memory store fakes shared by the service tests. They mirror the
// repository contracts, including the sentinel errors the services map.

import (
	"context"
	"sync"
	"time"

	"github.com/habitrack/habitrack-go/internal/identity"
	"github.com/habitrack/habitrack-go/internal/model"
	"github.com/habitrack/habitrack-go/internal/repository"
)

type memUserStore struct {
	mu     sync.Mutex
	nextID int64
	users  map[int64]model.User
}

func newMemUserStore() *memUserStore {
	return &memUserStore{users: make(map[int64]model.User)}
}

func (s *memUserStore) Create(ctx context.Context, user *model.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Email == user.Email {
			return repository.ErrDuplicateEmail
		}
	}
	s.nextID++
	user.ID = s.nextID
	user.CreatedAt = time.Now()
	s.users[user.ID] = *user
	return nil
}

func (s *memUserStore) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Email == email {
			out := u
			return &out, nil
		}
	}
	return nil, repository.ErrUserNotFound
}

func (s *memUserStore) GetByID(ctx context.Context, id int64) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	out := u
	return &out, nil
}

type memHabitStore struct {
	mu     sync.Mutex
	nextID int64
	habits map[int64]model.Habit
}

func newMemHabitStore() *memHabitStore {
	return &memHabitStore{habits: make(map[int64]model.Habit)}
}

func (s *memHabitStore) Create(ctx context.Context, habit *model.Habit) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	habit.ID = s.nextID
	habit.CreatedAt = time.Now()
	s.habits[habit.ID] = *habit
	return nil
}

func (s *memHabitStore) GetByID(ctx context.Context, id int64) (*model.Habit, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	h, ok := s.habits[id]
	if !ok {
		return nil, repository.ErrHabitNotFound
	}
	out := h
	return &out, nil
}

func (s *memHabitStore) ListByUser(ctx context.Context, userID int64) ([]model.Habit, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var result []model.Habit
	for id := int64(1); id <= s.nextID; id++ {
		if h, ok := s.habits[id]; ok && h.UserID == userID {
			result = append(result, h)
		}
	}
	return result, nil
}

func (s *memHabitStore) Update(ctx context.Context, habit *model.Habit) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.habits[habit.ID]; !ok {
		return repository.ErrHabitNotFound
	}
	s.habits[habit.ID] = *habit
	return nil
}

func (s *memHabitStore) Delete(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.habits[id]; !ok {
		return repository.ErrHabitNotFound
	}
	delete(s.habits, id)
	return nil
}

type completionKey struct {
	habitID int64
	date    string
}

type memCompletionStore struct {
	mu          sync.Mutex
	nextID      int64
	completions map[completionKey]model.HabitCompletion
}

func newMemCompletionStore() *memCompletionStore {
	return &memCompletionStore{completions: make(map[completionKey]model.HabitCompletion)}
}

func (s *memCompletionStore) Create(ctx context.Context, completion *model.HabitCompletion) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := completionKey{completion.HabitID, completion.Date.String()}
	if _, ok := s.completions[key]; ok {
		return repository.ErrDuplicateCompletion
	}
	s.nextID++
	completion.ID = s.nextID
	completion.CreatedAt = time.Now()
	s.completions[key] = *completion
	return nil
}

func (s *memCompletionStore) GetByHabitAndDate(ctx context.Context, habitID int64, date model.Date) (*model.HabitCompletion, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.completions[completionKey{habitID, date.String()}]
	if !ok {
		return nil, repository.ErrCompletionNotFound
	}
	out := c
	return &out, nil
}

func (s *memCompletionStore) ListByHabit(ctx context.Context, habitID int64) ([]model.HabitCompletion, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var result []model.HabitCompletion
	for key, c := range s.completions {
		if key.habitID == habitID {
			result = append(result, c)
		}
	}
	return result, nil
}

func (s *memCompletionStore) Update(ctx context.Context, completion *model.HabitCompletion) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := completionKey{completion.HabitID, completion.Date.String()}
	if _, ok := s.completions[key]; !ok {
		return repository.ErrCompletionNotFound
	}
	s.completions[key] = *completion
	return nil
}

func (s *memCompletionStore) DeleteByHabitAndDate(ctx context.Context, habitID int64, date model.Date) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := completionKey{habitID, date.String()}
	if _, ok := s.completions[key]; !ok {
		return repository.ErrCompletionNotFound
	}
	delete(s.completions, key)
	return nil
}

// fakeVerifier resolves raw tokens against a fixed claim table.
type fakeVerifier struct {
	claims map[string]identity.Claims
}

func (v *fakeVerifier) Verify(ctx context.Context, rawToken string) (identity.Claims, error) {
	c, ok := v.claims[rawToken]
	if !ok {
		return identity.Claims{}, identity.ErrInvalidToken
	}
	if c.Email == "" {
		return identity.Claims{}, identity.ErrNoEmailClaim
	}
	return c, nil
}
