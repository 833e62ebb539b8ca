package repository

import (
	"errors"
	"testing"
)

func TestNewRepositories(t *testing.T) {
	if NewUserRepository(nil) == nil {
		t.Fatal("expected non-nil UserRepository")
	}
	if NewHabitRepository(nil) == nil {
		t.Fatal("expected non-nil HabitRepository")
	}
	if NewCompletionRepository(nil) == nil {
		t.Fatal("expected non-nil CompletionRepository")
	}
}

func TestSentinelErrors(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{ErrUserNotFound, "user not found"},
		{ErrDuplicateEmail, "email already exists"},
		{ErrHabitNotFound, "habit not found"},
		{ErrCompletionNotFound, "completion not found"},
		{ErrDuplicateCompletion, "completion already exists for this date"},
	}

	for _, tt := range tests {
		if tt.err == nil {
			t.Fatal("sentinel error should not be nil")
		}
		if tt.err.Error() != tt.want {
			t.Errorf("unexpected error message: %s", tt.err.Error())
		}
	}
}

func TestIsDuplicateEntryError(t *testing.T) {
	if isDuplicateEntryError(nil) {
		t.Error("nil error should not be a duplicate entry error")
	}
	if isDuplicateEntryError(ErrUserNotFound) {
		t.Error("ErrUserNotFound should not be a duplicate entry error")
	}
	mysqlErr := errors.New("Error 1062 (23000): Duplicate entry 'a@x.com' for key 'users.uq_users_email'")
	if !isDuplicateEntryError(mysqlErr) {
		t.Error("MySQL duplicate entry error should be detected")
	}
}

func TestNullString(t *testing.T) {
	if ns := nullString(""); ns.Valid {
		t.Error("empty string should map to NULL")
	}
	ns := nullString("x")
	if !ns.Valid || ns.String != "x" {
		t.Errorf("nullString(\"x\") = %+v", ns)
	}
}
