package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/soulofsrilanka/travel-api/internal/core/domain"
	"github.com/soulofsrilanka/travel-api/internal/core/ports"
)

type stubAuthService struct {
	registerErr error
	loginErr    error
	lastInput   ports.RegisterInput
}

func (s *stubAuthService) Register(_ context.Context, in ports.RegisterInput) (string, *domain.User, error) {
	s.lastInput = in
	if s.registerErr != nil {
		return "", nil, s.registerErr
	}
	role := in.Role
	if role == "" {
		role = domain.RoleUser
	}
	return "token123", &domain.User{ID: "u1", Username: in.Username, Email: in.Email, Role: role}, nil
}

func (s *stubAuthService) Login(_ context.Context, email, _ string) (string, *domain.User, error) {
	if s.loginErr != nil {
		return "", nil, s.loginErr
	}
	return "token123", &domain.User{ID: "u1", Email: email, Role: domain.RoleUser}, nil
}

func newAuthTestContext(t *testing.T, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestAuthHandler_Register_Success(t *testing.T) {
	svc := &stubAuthService{}
	h := NewAuthHandler(svc)

	c, rec := newAuthTestContext(t, `{"username":"alice","email":"alice@example.com","password":"secret1"}`)
	if err := h.Register(c); err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusCreated)
	}

	var resp struct {
		Token string       `json:"token"`
		User  *domain.User `json:"user"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Token != "token123" || resp.User == nil || resp.User.Username != "alice" {
		t.Fatalf("unexpected response: %+v", resp)
	}
	if strings.Contains(rec.Body.String(), "passwordHash") {
		t.Fatalf("password hash leaked in response: %s", rec.Body.String())
	}
}

func TestAuthHandler_Register_VendorPassesBusinessName(t *testing.T) {
	svc := &stubAuthService{}
	h := NewAuthHandler(svc)

	c, _ := newAuthTestContext(t, `{"username":"vera","email":"vera@example.com","password":"secret1","role":"vendor","businessName":"Vera Tours"}`)
	if err := h.Register(c); err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if svc.lastInput.Role != domain.RoleVendor || svc.lastInput.BusinessName != "Vera Tours" {
		t.Fatalf("vendor fields not forwarded: %+v", svc.lastInput)
	}
}

func TestAuthHandler_Register_ValidationFailures(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{})

	cases := map[string]string{
		"missing username": `{"email":"a@example.com","password":"secret1"}`,
		"bad email":        `{"username":"a","email":"not-an-email","password":"secret1"}`,
		"short password":   `{"username":"a","email":"a@example.com","password":"abc"}`,
		"unknown role":     `{"username":"a","email":"a@example.com","password":"secret1","role":"root"}`,
	}
	for name, body := range cases {
		c, _ := newAuthTestContext(t, body)
		err := h.Register(c)
		var httpErr *echo.HTTPError
		if !errors.As(err, &httpErr) || httpErr.Code != http.StatusBadRequest {
			t.Fatalf("%s: expected 400, got %v", name, err)
		}
	}
}

func TestAuthHandler_Register_ServiceErrorPassesThrough(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{registerErr: domain.ErrDuplicateEmail})

	c, _ := newAuthTestContext(t, `{"username":"bob","email":"bob@example.com","password":"secret1"}`)
	err := h.Register(c)
	if !errors.Is(err, domain.ErrDuplicateEmail) {
		t.Fatalf("expected ErrDuplicateEmail to reach the error handler, got %v", err)
	}
}

func TestAuthHandler_Login_Success(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{})

	c, rec := newAuthTestContext(t, `{"email":"alice@example.com","password":"secret1"}`)
	if err := h.Login(c); err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if !strings.Contains(rec.Body.String(), "token123") {
		t.Fatalf("token missing from response: %s", rec.Body.String())
	}
}

func TestAuthHandler_Login_InvalidCredentialsPassThrough(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{loginErr: domain.ErrInvalidCredentials})

	c, _ := newAuthTestContext(t, `{"email":"alice@example.com","password":"wrong1"}`)
	err := h.Login(c)
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}
