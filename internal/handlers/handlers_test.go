package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/quantalyze/backoffice/internal/auth"
	"github.com/quantalyze/backoffice/internal/config"
	"github.com/quantalyze/backoffice/internal/database"
	"github.com/quantalyze/backoffice/internal/middleware"
	"github.com/quantalyze/backoffice/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type testEnv struct {
	app *fiber.App
	db  *gorm.DB
	cfg *config.Config
	mgr *auth.Manager
}

func newTestEnv(t *testing.T, anonWrite ...string) *testEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, database.AutoMigrate(db))

	cfg := &config.Config{
		AppEnv:             "development",
		JWTSecret:          "handlers-test-secret",
		TokenTTL:           time.Hour,
		AnonWriteResources: anonWrite,
	}
	mgr := auth.NewManager(cfg.JWTSecret, cfg.TokenTTL)

	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler})
	Register(app, db, cfg, mgr)

	return &testEnv{app: app, db: db, cfg: cfg, mgr: mgr}
}

func (e *testEnv) token(t *testing.T) string {
	t.Helper()
	token, err := e.mgr.Generate(1, "Admin", "admin")
	require.NoError(t, err)
	return token
}

// request runs one request through the app and decodes the JSON body.
func (e *testEnv) request(t *testing.T, method, path, token string, body any) (int, map[string]any) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	if token != "" {
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	}

	resp, err := e.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	var decoded map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&decoded))
	return resp.StatusCode, decoded
}

func TestCourseLifecycle(t *testing.T) {
	env := newTestEnv(t)
	token := env.token(t)

	// Create.
	status, body := env.request(t, http.MethodPost, "/api/courses", token, fiber.Map{
		"title":       "Applied Analytics",
		"description": "From spreadsheets to dashboards",
		"category":    "data",
		"price":       299.0,
	})
	require.Equal(t, http.StatusCreated, status)
	require.Equal(t, true, body["success"])
	id := uint64(body["id"].(float64))
	require.NotZero(t, id)

	// The create landed in the change log.
	status, body = env.request(t, http.MethodGet,
		fmt.Sprintf("/api/courses?action=history&id=%d", id), token, nil)
	require.Equal(t, http.StatusOK, status)
	history := body["history"].([]any)
	require.Len(t, history, 1)
	assert.Equal(t, "create", history[0].(map[string]any)["action"])

	// Partial update flips one flag.
	status, _ = env.request(t, http.MethodPut, "/api/courses", token, fiber.Map{
		"id":       id,
		"featured": true,
	})
	require.Equal(t, http.StatusOK, status)

	status, body = env.request(t, http.MethodGet, "/api/courses", "", nil)
	require.Equal(t, http.StatusOK, status)
	courses := body["courses"].([]any)
	require.Len(t, courses, 1)
	course := courses[0].(map[string]any)
	assert.Equal(t, true, course["featured"])
	assert.Equal(t, "Applied Analytics", course["title"])

	// The update bracketed the change with before and after snapshots.
	status, body = env.request(t, http.MethodGet,
		fmt.Sprintf("/api/courses?action=history&id=%d", id), token, nil)
	require.Equal(t, http.StatusOK, status)
	history = body["history"].([]any)
	require.Len(t, history, 3)
	assert.Equal(t, "update_after", history[0].(map[string]any)["action"])
	assert.Equal(t, "update_before", history[1].(map[string]any)["action"])

	// Soft delete hides the course from the public listing.
	status, _ = env.request(t, http.MethodDelete, fmt.Sprintf("/api/courses?id=%d", id), token, nil)
	require.Equal(t, http.StatusOK, status)

	status, body = env.request(t, http.MethodGet, "/api/courses", "", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Empty(t, body["courses"])

	// Admins still see it with includeDeleted.
	status, body = env.request(t, http.MethodGet, "/api/courses?includeDeleted=true&status=inactive", token, nil)
	require.Equal(t, http.StatusOK, status)
	courses = body["courses"].([]any)
	require.Len(t, courses, 1)
	assert.NotNil(t, courses[0].(map[string]any)["deleted_at"])

	// Restore brings it back active with its pre-delete fields.
	status, _ = env.request(t, http.MethodPut, "/api/courses", token, fiber.Map{
		"id":      id,
		"restore": true,
	})
	require.Equal(t, http.StatusOK, status)

	status, body = env.request(t, http.MethodGet, "/api/courses", "", nil)
	require.Equal(t, http.StatusOK, status)
	courses = body["courses"].([]any)
	require.Len(t, courses, 1)
	course = courses[0].(map[string]any)
	assert.Equal(t, "active", course["status"])
	assert.Equal(t, true, course["featured"])
}

func TestWritesRequireToken(t *testing.T) {
	env := newTestEnv(t)

	for _, tc := range []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/api/services"},
		{http.MethodPut, "/api/services"},
		{http.MethodDelete, "/api/services?id=1"},
		{http.MethodPost, "/api/courses"},
		{http.MethodPut, "/api/content"},
		{http.MethodPost, "/api/site-settings"},
		{http.MethodPut, "/api/site-settings"},
		{http.MethodPost, "/api/seo-meta"},
		{http.MethodGet, "/api/admin/inquiries"},
	} {
		status, body := env.request(t, tc.method, tc.path, "", fiber.Map{})
		assert.Equal(t, http.StatusUnauthorized, status, "%s %s", tc.method, tc.path)
		assert.Equal(t, false, body["success"])
	}

	// A forged token is as good as none.
	status, _ := env.request(t, http.MethodPost, "/api/services", "not.a.token", fiber.Map{
		"title": "x", "description": "y",
	})
	assert.Equal(t, http.StatusUnauthorized, status)

	// Nothing was written while rejecting.
	var count int64
	require.NoError(t, env.db.Model(&models.Service{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestHistoryRequiresAdmin(t *testing.T) {
	env := newTestEnv(t)

	status, _ := env.request(t, http.MethodGet, "/api/services?action=history&id=1", "", nil)
	assert.Equal(t, http.StatusUnauthorized, status)

	status, _ = env.request(t, http.MethodGet, "/api/site-settings?action=history", "", nil)
	assert.Equal(t, http.StatusUnauthorized, status)
}

func TestAnonWritePolicyOpensResource(t *testing.T) {
	env := newTestEnv(t, "content")

	// The open resource accepts anonymous saves.
	status, _ := env.request(t, http.MethodPut, "/api/content", "", fiber.Map{
		"section": "hero",
		"blocks": []fiber.Map{
			{"component": "banner", "field": "headline", "value": "Hello"},
		},
	})
	require.Equal(t, http.StatusOK, status)

	// Restores stay admin-only even on the open resource.
	status, _ = env.request(t, http.MethodPut, "/api/content", "", fiber.Map{
		"section":          "hero",
		"restoreHistoryId": 1,
	})
	assert.Equal(t, http.StatusUnauthorized, status)

	// Other resources keep the gate.
	status, _ = env.request(t, http.MethodPost, "/api/services", "", fiber.Map{
		"title": "x", "description": "y",
	})
	assert.Equal(t, http.StatusUnauthorized, status)
}

func TestContentRoundTrip(t *testing.T) {
	env := newTestEnv(t)
	token := env.token(t)

	status, _ := env.request(t, http.MethodPut, "/api/content", token, fiber.Map{
		"section": "hero",
		"blocks": []fiber.Map{
			{"component": "banner", "field": "headline", "value": "Grow with us"},
			{"component": "banner", "field": "subtext", "value": "We deliver"},
		},
	})
	require.Equal(t, http.StatusOK, status)

	// A single block posted as an object still parses.
	status, _ = env.request(t, http.MethodPut, "/api/content", token, fiber.Map{
		"section": "hero",
		"blocks":  fiber.Map{"component": "cta", "field": "label", "value": "Go"},
	})
	require.Equal(t, http.StatusOK, status)

	status, body := env.request(t, http.MethodGet, "/api/content?section=hero", "", nil)
	require.Equal(t, http.StatusOK, status)
	content := body["content"].(map[string]any)
	hero := content["hero"].(map[string]any)
	banner := hero["banner"].(map[string]any)
	assert.Equal(t, "Grow with us", banner["headline"])
	assert.Equal(t, "Go", hero["cta"].(map[string]any)["label"])

	// Roll the section back to the first save.
	status, body = env.request(t, http.MethodGet, "/api/content?action=history&section=hero", token, nil)
	require.Equal(t, http.StatusOK, status)
	history := body["history"].([]any)
	require.Len(t, history, 4)
	firstAfter := history[2].(map[string]any)
	require.Equal(t, "upsert_after", firstAfter["action"])

	status, _ = env.request(t, http.MethodPut, "/api/content", token, fiber.Map{
		"section":          "hero",
		"restoreHistoryId": firstAfter["id"],
	})
	require.Equal(t, http.StatusOK, status)

	status, body = env.request(t, http.MethodGet, "/api/content?section=hero", "", nil)
	require.Equal(t, http.StatusOK, status)
	hero = body["content"].(map[string]any)["hero"].(map[string]any)
	_, hasCTA := hero["cta"]
	assert.False(t, hasCTA)
}

func TestSettingsRoundTrip(t *testing.T) {
	env := newTestEnv(t)
	token := env.token(t)

	// Defaults answer before anything is saved.
	status, body := env.request(t, http.MethodGet, "/api/site-settings", "", nil)
	require.Equal(t, http.StatusOK, status)
	settings := body["settings"].(map[string]any)
	assert.Contains(t, settings, "brandText")

	status, _ = env.request(t, http.MethodPost, "/api/site-settings", token, fiber.Map{
		"scope":    "footer",
		"settings": fiber.Map{"brandText": "Quantalyze"},
	})
	require.Equal(t, http.StatusOK, status)

	status, body = env.request(t, http.MethodGet, "/api/site-settings?scope=footer", "", nil)
	require.Equal(t, http.StatusOK, status)
	settings = body["settings"].(map[string]any)
	assert.Equal(t, "Quantalyze", settings["brandText"])

	// History and restore.
	status, body = env.request(t, http.MethodGet, "/api/site-settings?action=history", token, nil)
	require.Equal(t, http.StatusOK, status)
	history := body["history"].([]any)
	require.Len(t, history, 2)

	status, _ = env.request(t, http.MethodPost, "/api/site-settings", token, fiber.Map{
		"scope":    "footer",
		"settings": fiber.Map{"brandText": "Oops"},
	})
	require.Equal(t, http.StatusOK, status)

	after := history[0].(map[string]any)
	require.Equal(t, "upsert_after", after["action"])
	status, _ = env.request(t, http.MethodPut, "/api/site-settings", token, fiber.Map{
		"scope":            "footer",
		"restoreHistoryId": after["id"],
	})
	require.Equal(t, http.StatusOK, status)

	status, body = env.request(t, http.MethodGet, "/api/site-settings", "", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Quantalyze", body["settings"].(map[string]any)["brandText"])
}

func TestSEOMetaEndpoints(t *testing.T) {
	env := newTestEnv(t)
	token := env.token(t)

	status, _ := env.request(t, http.MethodPost, "/api/seo-meta", token, fiber.Map{
		"route": "/", "title": "Quantalyze", "description": "Digital growth partners",
	})
	require.Equal(t, http.StatusOK, status)

	status, body := env.request(t, http.MethodGet, "/api/seo-meta?route=/", "", nil)
	require.Equal(t, http.StatusOK, status)
	rows := body["seo"].([]any)
	require.Len(t, rows, 1)
	assert.Equal(t, "Quantalyze", rows[0].(map[string]any)["title"])

	// Missing title rejects.
	status, _ = env.request(t, http.MethodPost, "/api/seo-meta", token, fiber.Map{"route": "/about"})
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestContactFlow(t *testing.T) {
	env := newTestEnv(t)
	token := env.token(t)

	status, _ := env.request(t, http.MethodPost, "/api/contact", "", fiber.Map{
		"name": "Priya", "email": "priya@example.com", "message": "Need an SEO audit",
	})
	require.Equal(t, http.StatusCreated, status)

	status, _ = env.request(t, http.MethodPost, "/api/contact", "", fiber.Map{
		"name": "", "email": "bad", "message": "",
	})
	assert.Equal(t, http.StatusBadRequest, status)

	status, body := env.request(t, http.MethodGet, "/api/admin/inquiries", token, nil)
	require.Equal(t, http.StatusOK, status)
	inquiries := body["inquiries"].([]any)
	require.Len(t, inquiries, 1)
	inq := inquiries[0].(map[string]any)
	assert.Equal(t, "new", inq["status"])

	status, _ = env.request(t, http.MethodPut, "/api/admin/inquiries", token, fiber.Map{
		"id": inq["id"], "status": "in_progress",
	})
	require.Equal(t, http.StatusOK, status)
}

func TestLoginAndVerify(t *testing.T) {
	env := newTestEnv(t)

	hash, err := bcrypt.GenerateFromPassword([]byte("Sup3r-secret"), bcrypt.DefaultCost)
	require.NoError(t, err)
	user := models.AdminUser{Username: "Admin", Email: "admin@example.com", Password: string(hash), Role: "admin"}
	require.NoError(t, env.db.Create(&user).Error)

	status, _ := env.request(t, http.MethodPost, "/api/admin/login", "", fiber.Map{
		"username": "Admin", "password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, status)

	status, body := env.request(t, http.MethodPost, "/api/admin/login", "", fiber.Map{
		"username": "Admin", "password": "Sup3r-secret",
	})
	require.Equal(t, http.StatusOK, status)
	token := body["token"].(string)
	require.NotEmpty(t, token)

	status, body = env.request(t, http.MethodGet, "/api/admin/verify", token, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Admin", body["user"].(map[string]any)["username"])

	// The password never leaves the server.
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), string(hash))
}

func TestUpdatesPublicListing(t *testing.T) {
	env := newTestEnv(t)
	token := env.token(t)

	status, _ := env.request(t, http.MethodPost, "/api/updates", token, fiber.Map{
		"title": "Draft note", "content": "soon",
	})
	require.Equal(t, http.StatusCreated, status)
	status, _ = env.request(t, http.MethodPost, "/api/updates", token, fiber.Map{
		"title": "Launch", "content": "we shipped", "status": "published",
	})
	require.Equal(t, http.StatusCreated, status)

	status, body := env.request(t, http.MethodGet, "/api/updates", "", nil)
	require.Equal(t, http.StatusOK, status)
	updates := body["updates"].([]any)
	require.Len(t, updates, 1)
	assert.Equal(t, "Launch", updates[0].(map[string]any)["title"])

	status, body = env.request(t, http.MethodGet, "/api/updates", token, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Len(t, body["updates"].([]any), 2)
}

func TestNewsletterFlow(t *testing.T) {
	env := newTestEnv(t)
	token := env.token(t)

	status, body := env.request(t, http.MethodPost, "/api/newsletter", "", fiber.Map{
		"email": "reader@example.com", "name": "Reader", "preferences": []string{"seo"},
	})
	require.Equal(t, http.StatusCreated, status)
	assert.Equal(t, true, body["success"])

	status, body = env.request(t, http.MethodPost, "/api/newsletter", "", fiber.Map{
		"email": "reader@example.com",
	})
	assert.Equal(t, http.StatusConflict, status)
	assert.Equal(t, false, body["success"])

	status, _ = env.request(t, http.MethodPost, "/api/newsletter", "", fiber.Map{
		"email": "not-an-email",
	})
	assert.Equal(t, http.StatusBadRequest, status)

	// The mailing list is admin-only.
	status, _ = env.request(t, http.MethodGet, "/api/admin/newsletter", "", nil)
	assert.Equal(t, http.StatusUnauthorized, status)

	status, body = env.request(t, http.MethodGet, "/api/admin/newsletter", token, nil)
	require.Equal(t, http.StatusOK, status)
	subscribers := body["subscribers"].([]any)
	require.Len(t, subscribers, 1)
	id := subscribers[0].(map[string]any)["id"]

	status, _ = env.request(t, http.MethodPut, "/api/admin/newsletter", token, fiber.Map{
		"id": id, "status": "unsubscribed",
	})
	require.Equal(t, http.StatusOK, status)

	status, body = env.request(t, http.MethodPost, "/api/newsletter", "", fiber.Map{
		"email": "reader@example.com",
	})
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, true, body["reactivated"])
}

func TestAnalyticsCapture(t *testing.T) {
	env := newTestEnv(t)
	token := env.token(t)

	status, _ := env.request(t, http.MethodPost, "/api/analytics", "", fiber.Map{
		"event_type": "page_view",
		"event_data": fiber.Map{"path": "/services"},
		"session_id": "s1",
	})
	require.Equal(t, http.StatusCreated, status)

	status, _ = env.request(t, http.MethodPost, "/api/analytics", "", fiber.Map{
		"event_data": fiber.Map{"path": "/"},
	})
	assert.Equal(t, http.StatusBadRequest, status)

	status, _ = env.request(t, http.MethodGet, "/api/admin/analytics", "", nil)
	assert.Equal(t, http.StatusUnauthorized, status)

	status, body := env.request(t, http.MethodGet, "/api/admin/analytics?days=7", token, nil)
	require.Equal(t, http.StatusOK, status)
	analytics := body["analytics"].(map[string]any)
	assert.Equal(t, float64(1), analytics["total_events"])
	assert.Equal(t, float64(1), analytics["unique_sessions"])
}

func TestChangePasswordErrorMapping(t *testing.T) {
	env := newTestEnv(t)

	hash, err := bcrypt.GenerateFromPassword([]byte("Sup3r-secret"), bcrypt.DefaultCost)
	require.NoError(t, err)
	user := models.AdminUser{Username: "Admin", Email: "admin@example.com", Password: string(hash), Role: "admin"}
	require.NoError(t, env.db.Create(&user).Error)
	token := env.token(t)

	status, _ := env.request(t, http.MethodPost, "/api/admin/change-password", token, fiber.Map{
		"currentPassword": "wrong", "newPassword": "another-secret",
	})
	assert.Equal(t, http.StatusUnauthorized, status)

	status, _ = env.request(t, http.MethodPost, "/api/admin/change-password", token, fiber.Map{
		"currentPassword": "Sup3r-secret", "newPassword": "short",
	})
	assert.Equal(t, http.StatusBadRequest, status)

	// A persistence failure is a 500, never a 400 with raw error text.
	require.NoError(t, env.db.Migrator().DropTable(&models.AdminUser{}))
	status, body := env.request(t, http.MethodPost, "/api/admin/change-password", token, fiber.Map{
		"currentPassword": "Sup3r-secret", "newPassword": "another-secret",
	})
	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, "Internal server error", body["message"])
}

func TestHealthEndpoint(t *testing.T) {
	env := newTestEnv(t)

	status, body := env.request(t, http.MethodGet, "/api/health", "", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, "ok", body["database"])
	assert.Equal(t, middleware.CurrentAPIVersion, body["api_version"])
}
