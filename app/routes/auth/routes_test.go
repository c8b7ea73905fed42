package auth

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mirr-x/smart-class-companion/app/models"
)

func newTestApp() *fiber.App {
	app := fiber.New()
	app.Use(AuthMiddleware)
	app.Get("/api/teacher-only", TeacherRequired(), func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})
	app.Get("/api/student-only", StudentRequired(), func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})
	return app
}

func tokenFor(t *testing.T, role models.Role) string {
	t.Helper()
	token, err := GenerateJWT(&models.User{
		ID: "u1", Username: "test", Email: "test@example.com", Role: role,
	})
	require.NoError(t, err)
	return token
}

func TestAuthMiddlewareRejectsMissingToken(t *testing.T) {
	app := newTestApp()

	req := httptest.NewRequest("GET", "/api/teacher-only", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 401, resp.StatusCode)
}

func TestTeacherRequired(t *testing.T) {
	app := newTestApp()

	req := httptest.NewRequest("GET", "/api/teacher-only", nil)
	req.Header.Set("Authorization", "Bearer "+tokenFor(t, models.RoleTeacher))
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	req = httptest.NewRequest("GET", "/api/teacher-only", nil)
	req.Header.Set("Authorization", "Bearer "+tokenFor(t, models.RoleStudent))
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 403, resp.StatusCode)
}

func TestStudentRequired(t *testing.T) {
	app := newTestApp()

	req := httptest.NewRequest("GET", "/api/student-only", nil)
	req.Header.Set("Authorization", "Bearer "+tokenFor(t, models.RoleStudent))
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	req = httptest.NewRequest("GET", "/api/student-only", nil)
	req.Header.Set("Authorization", "Bearer "+tokenFor(t, models.RoleTeacher))
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 403, resp.StatusCode)
}

func TestProfileRoutesRequireAuth(t *testing.T) {
	app := fiber.New()
	SetupAuthRoutes(app)

	for _, path := range []string{"/auth/profile", "/auth/deactivate", "/auth/change-password"} {
		req := httptest.NewRequest("POST", path, nil)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, 302, resp.StatusCode, "POST %s without a session", path)
		assert.Equal(t, "/auth/login", resp.Header.Get("Location"))
	}
}

func TestAuthMiddlewareAcceptsCookie(t *testing.T) {
	app := newTestApp()

	req := httptest.NewRequest("GET", "/api/teacher-only", nil)
	req.Header.Set("Cookie", "jwt_token="+tokenFor(t, models.RoleTeacher))
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
}
