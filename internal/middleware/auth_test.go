package middleware

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const testSecret = "test-secret"

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("signing failed: %v", err)
	}
	return signed
}

func adminClaims(id primitive.ObjectID, exp time.Time) jwt.MapClaims {
	return jwt.MapClaims{
		"sub":   id.Hex(),
		"role":  "admin",
		"name":  "Test Admin",
		"email": "admin@example.com",
		"exp":   exp.Unix(),
	}
}

func TestAuthenticateRoundtrip(t *testing.T) {
	id := primitive.NewObjectID()
	raw := signToken(t, testSecret, adminClaims(id, time.Now().Add(time.Hour)))

	identity, err := Authenticate(testSecret, raw)
	if err != nil {
		t.Fatalf("expected valid token, got %v", err)
	}
	if identity.ID != id {
		t.Fatalf("expected id %s, got %s", id.Hex(), identity.ID.Hex())
	}
	if identity.Email != "admin@example.com" || identity.Name != "Test Admin" {
		t.Fatalf("claims not carried over: %+v", identity)
	}
}

func TestAuthenticateRejectsExpiredToken(t *testing.T) {
	raw := signToken(t, testSecret, adminClaims(primitive.NewObjectID(), time.Now().Add(-time.Hour)))
	if _, err := Authenticate(testSecret, raw); err == nil {
		t.Fatal("expected expired token to be rejected")
	}
}

func TestAuthenticateRejectsWrongSecret(t *testing.T) {
	raw := signToken(t, "other-secret", adminClaims(primitive.NewObjectID(), time.Now().Add(time.Hour)))
	if _, err := Authenticate(testSecret, raw); err == nil {
		t.Fatal("expected wrong-secret token to be rejected")
	}
}

func TestAuthenticateRejectsNonAdminRole(t *testing.T) {
	claims := adminClaims(primitive.NewObjectID(), time.Now().Add(time.Hour))
	claims["role"] = "user"
	raw := signToken(t, testSecret, claims)
	if _, err := Authenticate(testSecret, raw); err == nil {
		t.Fatal("expected non-admin token to be rejected")
	}
}

func TestAuthenticateRejectsGarbage(t *testing.T) {
	if _, err := Authenticate(testSecret, "not-a-token"); err == nil {
		t.Fatal("expected garbage token to be rejected")
	}
}

func TestBearerToken(t *testing.T) {
	token, err := BearerToken("Bearer abc123")
	if err != nil || token != "abc123" {
		t.Fatalf("expected abc123, got %q err=%v", token, err)
	}

	if token, err := BearerToken("bearer abc123"); err != nil || token != "abc123" {
		t.Fatalf("scheme must be case-insensitive, got %q err=%v", token, err)
	}

	for _, header := range []string{"", "abc123", "Basic abc123", "Bearer"} {
		if _, err := BearerToken(header); err == nil {
			t.Fatalf("expected rejection for header %q", header)
		}
	}
}
