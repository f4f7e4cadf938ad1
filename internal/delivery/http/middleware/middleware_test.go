package middleware

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"dental-care-server/config"
	"dental-care-server/internal/domain/entity"
	"dental-care-server/pkg/jwt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

func testJWTService() *jwt.JWTService {
	return jwt.NewJWTService(config.JWTConfig{
		Secret:      "test-secret",
		TokenExpiry: time.Hour,
	})
}

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

// stubUserRepo serves just the email lookup the role check needs.
type stubUserRepo struct {
	users map[string]*entity.User
}

func (s *stubUserRepo) Create(context.Context, *entity.User) error { return nil }

func (s *stubUserRepo) FindAll(context.Context) ([]entity.User, error) { return nil, nil }

func (s *stubUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	return s.users[email], nil
}

func (s *stubUserRepo) FindByID(context.Context, uuid.UUID) (*entity.User, error) {
	return nil, nil
}

func (s *stubUserRepo) PromoteToAdmin(context.Context, uuid.UUID) (int64, error) {
	return 0, nil
}

func claimEcho(t *testing.T, gotEmail *string) http.Handler {
	t.Helper()
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		email, ok := GetUserEmailFromContext(r.Context())
		if !ok {
			t.Error("no email claim in request context")
		}
		*gotEmail = email
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthenticateMissingHeader(t *testing.T) {
	auth := NewAuthMiddleware(testJWTService())

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/bookings", nil)
	auth.Authenticate(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		t.Error("handler ran without credentials")
	})).ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
}

func TestAuthenticateRejectsBadTokens(t *testing.T) {
	auth := NewAuthMiddleware(testJWTService())

	otherService := jwt.NewJWTService(config.JWTConfig{
		Secret:      "other-secret",
		TokenExpiry: time.Hour,
	})
	foreignToken, err := otherService.GenerateToken("patient@example.com")
	if err != nil {
		t.Fatalf("sign foreign token: %v", err)
	}

	expiredService := jwt.NewJWTService(config.JWTConfig{
		Secret:      "test-secret",
		TokenExpiry: -time.Hour,
	})
	expiredToken, err := expiredService.GenerateToken("patient@example.com")
	if err != nil {
		t.Fatalf("sign expired token: %v", err)
	}

	cases := []struct {
		name   string
		header string
	}{
		{"malformed header", "NotBearer abc"},
		{"garbage token", "Bearer not-a-jwt"},
		{"wrong signing key", "Bearer " + foreignToken},
		{"expired token", "Bearer " + expiredToken},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/bookings", nil)
			req.Header.Set("Authorization", tc.header)

			auth.Authenticate(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
				t.Error("handler ran with a bad token")
			})).ServeHTTP(rec, req)

			if rec.Code != http.StatusForbidden {
				t.Errorf("status = %d, want 403", rec.Code)
			}
		})
	}
}

func TestAuthenticateAttachesEmailClaim(t *testing.T) {
	jwtService := testJWTService()
	auth := NewAuthMiddleware(jwtService)

	token, err := jwtService.GenerateToken("patient@example.com")
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	var gotEmail string
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/bookings", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	auth.Authenticate(claimEcho(t, &gotEmail)).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if gotEmail != "patient@example.com" {
		t.Errorf("context email = %q", gotEmail)
	}
}

func TestRequireAdmin(t *testing.T) {
	repo := &stubUserRepo{users: map[string]*entity.User{
		"admin@example.com":  {Email: "admin@example.com", Role: entity.RoleAdmin},
		"member@example.com": {Email: "member@example.com", Role: entity.RoleNone},
	}}
	role := NewRoleMiddleware(repo, testLogger())

	cases := []struct {
		name     string
		email    string
		wantCode int
	}{
		{"admin passes", "admin@example.com", http.StatusOK},
		{"plain user rejected", "member@example.com", http.StatusForbidden},
		{"unknown user rejected", "stranger@example.com", http.StatusForbidden},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodDelete, "/doctors/1", nil)
			req = req.WithContext(context.WithValue(req.Context(), UserEmailKey, tc.email))

			role.RequireAdmin(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusOK)
			})).ServeHTTP(rec, req)

			if rec.Code != tc.wantCode {
				t.Errorf("status = %d, want %d", rec.Code, tc.wantCode)
			}
		})
	}
}

func TestRequireAdminWithoutIdentity(t *testing.T) {
	role := NewRoleMiddleware(&stubUserRepo{}, testLogger())

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/doctors/1", nil)
	role.RequireAdmin(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		t.Error("handler ran without an identity")
	})).ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
}
