package identity

import (
	"testing"

	"google.golang.org/api/idtoken"
)

func TestClaimsFromPayload(t *testing.T) {
	payload := &idtoken.Payload{
		Claims: map[string]interface{}{
			"email": "a@x.com",
			"name":  "A",
		},
	}

	claims, err := claimsFromPayload(payload)
	if err != nil {
		t.Fatalf("claimsFromPayload() unexpected error: %v", err)
	}
	if claims.Email != "a@x.com" {
		t.Errorf("Email = %q, want %q", claims.Email, "a@x.com")
	}
	if claims.Name != "A" {
		t.Errorf("Name = %q, want %q", claims.Name, "A")
	}
}

func TestClaimsFromPayload_MissingName(t *testing.T) {
	payload := &idtoken.Payload{
		Claims: map[string]interface{}{"email": "a@x.com"},
	}

	claims, err := claimsFromPayload(payload)
	if err != nil {
		t.Fatalf("claimsFromPayload() unexpected error: %v", err)
	}
	if claims.Name != "" {
		t.Errorf("Name = %q, want empty", claims.Name)
	}
}

func TestClaimsFromPayload_MissingEmail(t *testing.T) {
	payload := &idtoken.Payload{
		Claims: map[string]interface{}{"name": "A"},
	}

	if _, err := claimsFromPayload(payload); err != ErrNoEmailClaim {
		t.Errorf("expected ErrNoEmailClaim, got %v", err)
	}
}

func TestClaimsFromPayload_NonStringEmail(t *testing.T) {
	payload := &idtoken.Payload{
		Claims: map[string]interface{}{"email": 42},
	}

	if _, err := claimsFromPayload(payload); err != ErrNoEmailClaim {
		t.Errorf("expected ErrNoEmailClaim, got %v", err)
	}
}
