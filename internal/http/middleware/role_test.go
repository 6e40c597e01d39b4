package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"shopbackend/internal/domain"
	"shopbackend/internal/domain/models"

	"github.com/gin-gonic/gin"
)

// gatedRouter injects a fixed user ahead of the admin gate, standing in
// for RequireAuth.
func gatedRouter(user *models.User) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/admin", func(c *gin.Context) {
		if user != nil {
			c.Set("currentUser", *user)
		}
	}, RequireAdmin(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return r
}

func TestRequireAdminWithoutUser(t *testing.T) {
	r := gatedRouter(nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin", nil))

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}

func TestRequireAdminRejectsStandardRole(t *testing.T) {
	r := gatedRouter(&models.User{ID: 1, Role: domain.RoleStandard})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin", nil))

	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", w.Code)
	}
	if w.Body.String() != `{"message":"you are not an admin","success":false}` {
		t.Fatalf("wrong body: %s", w.Body.String())
	}
}

func TestRequireAdminAllowsNonzeroRole(t *testing.T) {
	for _, role := range []domain.Role{domain.RoleAdmin, domain.Role(2)} {
		r := gatedRouter(&models.User{ID: 1, Role: role})
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin", nil))

		if w.Code != http.StatusOK {
			t.Fatalf("role %d: expected 200, got %d", role, w.Code)
		}
	}
}
