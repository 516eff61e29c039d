package auth

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupTestApp() *fiber.App {
	app := fiber.New()
	handler := NewHandler(NewService(zap.NewNop()))
	handler.RegisterRoutes(app)
	return app
}

func postJSON(t *testing.T, app *fiber.App, path, body string) (int, map[string]any) {
	t.Helper()

	req := httptest.NewRequest("POST", path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)

	raw, _ := io.ReadAll(resp.Body)
	var decoded map[string]any
	_ = json.Unmarshal(raw, &decoded)
	return resp.StatusCode, decoded
}

func TestHandleLogin_Success(t *testing.T) {
	app := setupTestApp()

	status, body := postJSON(t, app, "/api/auth/login",
		`{"email":"coach@demo.com","password":"password123"}`)

	assert.Equal(t, 200, status)
	assert.Equal(t, true, body["success"])
	assert.True(t, strings.HasPrefix(body["token"].(string), "demo_token_"))

	user := body["user"].(map[string]any)
	assert.Equal(t, "user_coach", user["id"])
	assert.Equal(t, "coach", user["role"])
	assert.Equal(t, "Demo Coach", user["name"])
}

func TestHandleLogin_InvalidCredentials(t *testing.T) {
	app := setupTestApp()

	// Wrong password and unknown email both come back as HTTP 200 with the
	// failure only in the body.
	for _, body := range []string{
		`{"email":"coach@demo.com","password":"nope"}`,
		`{"email":"ghost@demo.com","password":"password123"}`,
	} {
		status, decoded := postJSON(t, app, "/api/auth/login", body)

		assert.Equal(t, 200, status)
		assert.Equal(t, false, decoded["success"])
		assert.Equal(t, "Invalid credentials", decoded["error"])
		assert.NotContains(t, decoded, "user")
		assert.NotContains(t, decoded, "token")
	}
}

func TestHandleLogin_MissingFieldsAreEmptyStrings(t *testing.T) {
	app := setupTestApp()

	status, decoded := postJSON(t, app, "/api/auth/login", `{}`)

	assert.Equal(t, 200, status)
	assert.Equal(t, false, decoded["success"])
	assert.Equal(t, "Invalid credentials", decoded["error"])
}

func TestHandleLogin_NonStringFields(t *testing.T) {
	app := setupTestApp()

	// A wrong-typed field is a domain failure (bad credentials), not a
	// transport error: the body parsed as a JSON object, so HTTP stays 200.
	status, decoded := postJSON(t, app, "/api/auth/login",
		`{"email":123,"password":"password123"}`)

	assert.Equal(t, 200, status)
	assert.Equal(t, false, decoded["success"])
	assert.Equal(t, "Invalid credentials", decoded["error"])
}

func TestHandleLogin_InvalidJSON(t *testing.T) {
	app := setupTestApp()

	req := httptest.NewRequest("POST", "/api/auth/login", strings.NewReader("{not json"))
	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, 400, resp.StatusCode)
	raw, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(raw), "Invalid JSON")
}

func TestHandleRegister_Success(t *testing.T) {
	app := setupTestApp()

	status, body := postJSON(t, app, "/api/auth/register",
		`{"name":"New User","email":"new@demo.com","password":"pw","role":"coach"}`)

	assert.Equal(t, 200, status)
	assert.Equal(t, true, body["success"])

	user := body["user"].(map[string]any)
	assert.Equal(t, "New User", user["name"])
	assert.Equal(t, "new@demo.com", user["email"])
	assert.Equal(t, "coach", user["role"])
	assert.True(t, strings.HasPrefix(user["id"].(string), "user_"))
}

func TestHandleRegister_DefaultRole(t *testing.T) {
	app := setupTestApp()

	status, body := postJSON(t, app, "/api/auth/register",
		`{"name":"New User","email":"new@demo.com","password":"pw"}`)

	assert.Equal(t, 200, status)
	user := body["user"].(map[string]any)
	assert.Equal(t, "athlete", user["role"])
}

func TestHandleRegister_MissingFields(t *testing.T) {
	app := setupTestApp()

	status, body := postJSON(t, app, "/api/auth/register",
		`{"email":"new@demo.com","password":"pw"}`)

	assert.Equal(t, 200, status)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Missing required fields", body["error"])
}

func TestHandleRegister_NonStringFields(t *testing.T) {
	app := setupTestApp()

	// A non-string name reads as empty, so validation fails in the body
	// while the HTTP status stays 200.
	status, body := postJSON(t, app, "/api/auth/register",
		`{"name":42,"email":"new@demo.com","password":"pw"}`)

	assert.Equal(t, 200, status)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Missing required fields", body["error"])
}

func TestLoader(t *testing.T) {
	feature := NewFeature(zap.NewNop())

	assert.Equal(t, "auth", feature.Name())
	assert.True(t, feature.IsEnabled())

	app := fiber.New()
	assert.NoError(t, feature.Load(app))
}

func TestHandleRegister_InvalidJSON(t *testing.T) {
	app := setupTestApp()

	req := httptest.NewRequest("POST", "/api/auth/register", strings.NewReader(`[1,2,3]`))
	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, 400, resp.StatusCode)
	raw, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(raw), "Invalid JSON")
}
