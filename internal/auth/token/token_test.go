package token

import (
	"errors"
	"testing"

	authdomain "github.com/localvocal/localvocal/internal/auth/domain"
)

func TestNewIssuerRequiresSecret(t *testing.T) {
	if _, err := NewIssuer("   "); err == nil {
		t.Fatal("expected error for empty secret")
	}
}

func TestSignVerifyRoundTrip(t *testing.T) {
	issuer, err := NewIssuer("test-secret")
	if err != nil {
		t.Fatalf("NewIssuer: %v", err)
	}

	raw, err := issuer.Sign(42, authdomain.RoleArtisan)
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}

	claims, err := issuer.Verify(raw)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if claims.UserID != 42 {
		t.Fatalf("expected user id 42, got %d", claims.UserID)
	}
	if claims.Role != authdomain.RoleArtisan {
		t.Fatalf("expected artisan role, got %q", claims.Role)
	}
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	a, _ := NewIssuer("secret-a")
	b, _ := NewIssuer("secret-b")

	raw, err := a.Sign(1, authdomain.RoleCustomer)
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}

	if _, err := b.Verify(raw); !errors.Is(err, authdomain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestVerifyRejectsMalformedTokens(t *testing.T) {
	issuer, _ := NewIssuer("test-secret")

	for _, raw := range []string{"", "not-a-token", "a.b.c"} {
		if _, err := issuer.Verify(raw); !errors.Is(err, authdomain.ErrInvalidToken) {
			t.Fatalf("payload %q: expected ErrInvalidToken, got %v", raw, err)
		}
	}
}

func TestVerifyRejectsBogusClaims(t *testing.T) {
	issuer, _ := NewIssuer("test-secret")

	raw, err := issuer.Sign(0, authdomain.RoleCustomer)
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}
	if _, err := issuer.Verify(raw); !errors.Is(err, authdomain.ErrInvalidToken) {
		t.Fatalf("zero user id: expected ErrInvalidToken, got %v", err)
	}

	raw, err = issuer.Sign(7, "admin")
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}
	if _, err := issuer.Verify(raw); !errors.Is(err, authdomain.ErrInvalidToken) {
		t.Fatalf("unknown role: expected ErrInvalidToken, got %v", err)
	}
}
