package utils

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/ray-remotestate/rms/config"
	"github.com/ray-remotestate/rms/middlewares"
	"github.com/ray-remotestate/rms/models"
)

func init() {
	config.SecretKey = []byte("test-secret")
}

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("hunter22")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if hash == "hunter22" {
		t.Fatal("password stored in the clear")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte("hunter22")); err != nil {
		t.Errorf("hash does not verify against the original password: %v", err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte("hunter23")); err == nil {
		t.Error("hash verified against the wrong password")
	}
}

func TestGenerateTokenRoundTrip(t *testing.T) {
	id := uuid.New()

	tokenStr, err := GenerateToken(id, models.RoleAdmin)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	claims := &middlewares.Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		return config.SecretKey, nil
	})
	if err != nil || !token.Valid {
		t.Fatalf("token does not parse back: %v", err)
	}

	if claims.StaffID != id {
		t.Errorf("staff id: got %s, want %s", claims.StaffID, id)
	}
	if claims.Role != models.RoleAdmin {
		t.Errorf("role: got %s, want %s", claims.Role, models.RoleAdmin)
	}

	remaining := time.Until(claims.ExpiresAt.Time)
	if remaining < 23*time.Hour || remaining > 24*time.Hour {
		t.Errorf("expiry should be about a day out, got %v", remaining)
	}
}

func TestRespondError(t *testing.T) {
	rec := httptest.NewRecorder()
	RespondError(rec, http.StatusNotFound, "order not found")

	if rec.Code != http.StatusNotFound {
		t.Errorf("status: got %d, want %d", rec.Code, http.StatusNotFound)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("content type: got %s", ct)
	}

	var body map[string]string
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("body is not JSON: %v", err)
	}
	if body["message"] != "order not found" {
		t.Errorf("message: got %q", body["message"])
	}
}

func TestDecodeBodyRejectsUnknownFields(t *testing.T) {
	var dst struct {
		Name string `json:"name"`
	}

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name": "x", "bogus": 1}`))
	if err := DecodeBody(req, &dst); err == nil {
		t.Error("expected error for unknown field")
	}

	req = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name": "x"}`))
	if err := DecodeBody(req, &dst); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}
