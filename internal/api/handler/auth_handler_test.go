package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/saricare/booking-api/internal/core/domain"
	"github.com/saricare/booking-api/internal/core/ports"
)

func TestAuthHandler_Register_Success(t *testing.T) {
	stub := &stubAuthService{
		registerFn: func(ctx context.Context, in ports.RegisterInput) (*ports.AuthResult, error) {
			if in.Name != "Alice" || in.Mobile != "0123456789" || in.Gender != domain.GenderFemale {
				t.Fatalf("unexpected input: %+v", in)
			}
			return &ports.AuthResult{
				Token: "tok",
				User:  &domain.User{ID: "u1", Name: in.Name, Email: in.Email, Role: domain.RoleUser, PasswordHash: "hash"},
			}, nil
		},
	}
	handler := NewAuthHandler(stub)

	body := `{"name":"Alice","email":"alice@example.com","password":"secret1","mobile":"0123456789","gender":"Female"}`
	c, rec := newJSONContext(http.MethodPost, "/api/auth/register", body, nil)

	if err := handler.Register(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["token"] != "tok" {
		t.Fatalf("expected token, got %v", resp["token"])
	}
	user, ok := resp["user"].(map[string]any)
	if !ok {
		t.Fatalf("expected user in response")
	}
	if user["_id"] != "u1" || user["role"] != "user" {
		t.Fatalf("unexpected user payload: %+v", user)
	}
	if strings.Contains(rec.Body.String(), "hash") {
		t.Fatalf("password hash leaked: %s", rec.Body.String())
	}
}

func TestAuthHandler_Register_DuplicateEmail(t *testing.T) {
	stub := &stubAuthService{
		registerFn: func(ctx context.Context, in ports.RegisterInput) (*ports.AuthResult, error) {
			return nil, domain.ErrDuplicateKey
		},
	}
	c, _ := newJSONContext(http.MethodPost, "/api/auth/register", `{"name":"Bob"}`, nil)

	err := NewAuthHandler(stub).Register(c)
	if !errors.Is(err, domain.ErrDuplicateKey) {
		t.Fatalf("expected ErrDuplicateKey, got %v", err)
	}
}

func TestAuthHandler_Register_MalformedJSON(t *testing.T) {
	c, _ := newJSONContext(http.MethodPost, "/api/auth/register", `{"name":`, nil)

	err := NewAuthHandler(&stubAuthService{}).Register(c)
	if !domain.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestAuthHandler_Login_Success(t *testing.T) {
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, email, password string) (*ports.AuthResult, error) {
			if email != "alice@example.com" || password != "secret1" {
				t.Fatalf("unexpected credentials: %s %s", email, password)
			}
			return &ports.AuthResult{Token: "tok", User: &domain.User{ID: "u1"}}, nil
		},
	}
	c, rec := newJSONContext(http.MethodPost, "/api/auth/login", `{"email":"alice@example.com","password":"secret1"}`, nil)

	if err := NewAuthHandler(stub).Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestAuthHandler_Login_MissingFields(t *testing.T) {
	c, _ := newJSONContext(http.MethodPost, "/api/auth/login", `{}`, nil)

	err := NewAuthHandler(&stubAuthService{}).Login(c)
	var ve *domain.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if ve.Error() != "email is required, password is required" {
		t.Fatalf("unexpected message: %q", ve.Error())
	}
}

func TestAuthHandler_Login_BadCredentials(t *testing.T) {
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, email, password string) (*ports.AuthResult, error) {
			return nil, domain.ErrUnauthorized
		},
	}
	c, _ := newJSONContext(http.MethodPost, "/api/auth/login", `{"email":"a@b.co","password":"nope"}`, nil)

	if err := NewAuthHandler(stub).Login(c); !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func TestAuthHandler_Profile(t *testing.T) {
	stub := &stubAuthService{
		profileFn: func(ctx context.Context, id domain.Identity) (*domain.User, error) {
			return &domain.User{ID: id.UserID, Name: id.Name}, nil
		},
	}
	id := &domain.Identity{UserID: "u1", Name: "Alice", Role: domain.RoleUser}
	c, rec := newJSONContext(http.MethodGet, "/api/auth/profile", "", id)

	if err := NewAuthHandler(stub).Profile(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !strings.Contains(rec.Body.String(), `"_id":"u1"`) {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestAuthHandler_Profile_WithoutIdentity(t *testing.T) {
	c, _ := newJSONContext(http.MethodGet, "/api/auth/profile", "", nil)
	if err := NewAuthHandler(&stubAuthService{}).Profile(c); !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}
