package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"cofre/internal/config"
	apperrors "cofre/internal/errors"
	"cofre/internal/models"
)

func init() {
	config.Set(&config.Config{JWTSecret: "middleware-test-secret"})
}

func testUser(role models.Role) *models.User {
	u := &models.User{Email: "ana@example.com", Role: role, IsActive: true}
	u.ID = "0190f3a2-7c1e-7000-8000-00000000abcd"
	return u
}

type stubLookup struct {
	user *models.User
	err  error
}

func (s stubLookup) GetUserByID(context.Context, string) (*models.User, error) {
	return s.user, s.err
}

func setupAuthRouter(extra ...gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	handlers := append([]gin.HandlerFunc{AuthMiddleware()}, extra...)
	handlers = append(handlers, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user_id": c.GetString(UserIDKey)})
	})
	r.GET("/me", handlers...)
	return r
}

func doAuthRequest(r *gin.Engine, header string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/me", http.NoBody)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestAuthMiddleware(t *testing.T) {
	user := testUser(models.RoleUser)
	access, err := GenerateAccessToken(user)
	if err != nil {
		t.Fatalf("failed to sign access token: %v", err)
	}
	refresh, err := GenerateRefreshToken(user)
	if err != nil {
		t.Fatalf("failed to sign refresh token: %v", err)
	}

	tests := []struct {
		name       string
		header     string
		wantStatus int
	}{
		{"valid_access_token", "Bearer " + access, http.StatusOK},
		{"missing_header", "", http.StatusUnauthorized},
		{"wrong_scheme", "Token " + access, http.StatusUnauthorized},
		{"garbage_token", "Bearer not-a-jwt", http.StatusUnauthorized},
		{"refresh_token_rejected", "Bearer " + refresh, http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doAuthRequest(setupAuthRouter(), tt.header)
			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if tt.wantStatus == http.StatusOK {
				body := parseBody(t, rec)
				if body["user_id"] != user.ID {
					t.Errorf("expected user id %s in context, got %v", user.ID, body["user_id"])
				}
			}
		})
	}
}

func TestValidateRefreshToken(t *testing.T) {
	user := testUser(models.RoleUser)
	refresh, _ := GenerateRefreshToken(user)
	access, _ := GenerateAccessToken(user)

	claims, err := ValidateRefreshToken(refresh)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if claims.UserID != user.ID || claims.Subject != user.ID {
		t.Errorf("unexpected claims: %+v", claims)
	}

	if _, err := ValidateRefreshToken(access); err == nil {
		t.Error("expected access token to be rejected as refresh token")
	}
}

func TestRequireAdmin(t *testing.T) {
	admin := testUser(models.RoleAdmin)
	token, _ := GenerateAccessToken(admin)

	inactive := testUser(models.RoleAdmin)
	inactive.IsActive = false

	tests := []struct {
		name       string
		lookup     stubLookup
		wantStatus int
	}{
		{"active_admin", stubLookup{user: admin}, http.StatusOK},
		{"demoted_since_login", stubLookup{user: testUser(models.RoleUser)}, http.StatusForbidden},
		{"inactive_admin", stubLookup{user: inactive}, http.StatusForbidden},
		{"lookup_error", stubLookup{err: errors.New("gone")}, http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doAuthRequest(setupAuthRouter(RequireAdmin(tt.lookup)), "Bearer "+token)
			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
		})
	}
}

func TestRequireActive(t *testing.T) {
	user := testUser(models.RoleUser)
	token, _ := GenerateAccessToken(user)

	deactivated := testUser(models.RoleUser)
	deactivated.IsActive = false

	tests := []struct {
		name       string
		lookup     stubLookup
		wantStatus int
	}{
		{"active_user", stubLookup{user: user}, http.StatusOK},
		{"deactivated_since_login", stubLookup{user: deactivated}, http.StatusForbidden},
		{"deleted_since_login", stubLookup{err: apperrors.ErrUserNotFound}, http.StatusUnauthorized},
		{"lookup_error", stubLookup{err: errors.New("db down")}, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doAuthRequest(setupAuthRouter(RequireActive(tt.lookup)), "Bearer "+token)
			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
		})
	}
}

func TestHashToken(t *testing.T) {
	if HashToken("abc") != HashToken("abc") {
		t.Error("expected deterministic hash")
	}
	if len(HashToken("abc")) != 64 {
		t.Errorf("expected 64 hex chars, got %d", len(HashToken("abc")))
	}
}
