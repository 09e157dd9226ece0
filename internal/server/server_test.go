package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"HealthCompanion/internal/auth"
	"HealthCompanion/internal/config"
	"HealthCompanion/internal/database"

	"github.com/golang-jwt/jwt/v5"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var secret = strings.Repeat("s", 32)

type fakeStore struct {
	database.Store
}

func (fakeStore) GetUserByID(_ context.Context, id string) (database.User, error) {
	if id != "u1" {
		return database.User{}, pgx.ErrNoRows
	}
	return database.User{UserID: "u1", Email: "ada@example.com"}, nil
}

func (fakeStore) GetUserByEmergencyToken(context.Context, string) (database.User, error) {
	return database.User{}, pgx.ErrNoRows
}

func (fakeStore) ListHealthTips(context.Context) ([]database.HealthTip, error) {
	return []database.HealthTip{{Title: "Drink water", Category: "nutrition", Content: "Stay hydrated.",
		Icon: pgtype.Text{String: "droplet", Valid: true}}}, nil
}

type fakeDB struct {
	status string
}

func (f fakeDB) Health() map[string]string { return map[string]string{"status": f.status} }
func (fakeDB) Close() {}
func (fakeDB) Store() database.Store { return fakeStore{} }
func (fakeDB) Migrate(context.Context) error { return nil }
func (fakeDB) SeedHealthTips(context.Context) (int, error) { return 0, nil }

func newTestServer(t *testing.T, dbStatus string) http.Handler {
	t.Helper()
	cfg := &config.Config{
		Port:          8080,
		AppEnv:        "test",
		AppURL:        "http://localhost:8080",
		SessionSecret: secret,
		CORSOrigins:   []string{"http://localhost:3000"},
		UploadDir:     t.TempDir(),
	}
	srv, err := NewServer(context.Background(), cfg, fakeDB{status: dbStatus})
	require.NoError(t, err)
	assert.Equal(t, ":8080", srv.Addr)
	return srv.Handler
}

func bearer(t *testing.T, userID string) string {
	t.Helper()
	issued := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &auth.JwtCustomClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(issued.Add(time.Minute)),
			IssuedAt:  jwt.NewNumericDate(issued),
			Issuer:    "health-companion",
		},
	})
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return "Bearer " + signed
}

func serve(h http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestNewServerRequiresSecret(t *testing.T) {
	_, err := NewServer(context.Background(), &config.Config{AppURL: "http://localhost"}, fakeDB{status: "up"})
	assert.Error(t, err)
}

func TestHealthEndpoint(t *testing.T) {
	rec := serve(newTestServer(t, "up"), httptest.NewRequest(http.MethodGet, "/health", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "online", body["status"])
	assert.Equal(t, map[string]any{"status": "up"}, body["database"])
	assert.Contains(t, body, "runtime")
	assert.NotEmpty(t, rec.Header().Get(echo.HeaderXRequestID))
}

func TestHealthEndpointDatabaseDown(t *testing.T) {
	rec := serve(newTestServer(t, "down"), httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), `"degraded"`)
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	h := newTestServer(t, "up")
	for _, path := range []string{"/api/profile", "/api/vitals", "/api/health-score", "/api/emergency/qr", "/api/ws"} {
		rec := serve(h, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusUnauthorized, rec.Code, path)
	}
}

func TestAuthenticatedRequest(t *testing.T) {
	h := newTestServer(t, "up")

	req := httptest.NewRequest(http.MethodGet, "/api/health-tips", nil)
	req.Header.Set(echo.HeaderAuthorization, bearer(t, "u1"))
	rec := serve(h, req)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Drink water")

	req = httptest.NewRequest(http.MethodGet, "/api/health-tips", nil)
	req.Header.Set(echo.HeaderAuthorization, bearer(t, "ghost"))
	assert.Equal(t, http.StatusUnauthorized, serve(h, req).Code)
}

func TestUnconfiguredServicesAnswerUnavailable(t *testing.T) {
	h := newTestServer(t, "up")

	req := httptest.NewRequest(http.MethodPost, "/api/insights/generate", nil)
	req.Header.Set(echo.HeaderAuthorization, bearer(t, "u1"))
	assert.Equal(t, http.StatusServiceUnavailable, serve(h, req).Code)
}

func TestPublicEmergencyCardUnknownToken(t *testing.T) {
	rec := serve(newTestServer(t, "up"), httptest.NewRequest(http.MethodGet, "/emergency/nope", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Header().Get(echo.HeaderContentType), "text/html")
}

func TestGoogleRoutesOnlyWhenConfigured(t *testing.T) {
	rec := serve(newTestServer(t, "up"), httptest.NewRequest(http.MethodGet, "/auth/google", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCORSPreflight(t *testing.T) {
	req := httptest.NewRequest(http.MethodOptions, "/api/login", nil)
	req.Header.Set(echo.HeaderOrigin, "http://localhost:3000")
	req.Header.Set(echo.HeaderAccessControlRequestMethod, http.MethodPost)

	rec := serve(newTestServer(t, "up"), req)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "http://localhost:3000", rec.Header().Get(echo.HeaderAccessControlAllowOrigin))
	assert.Equal(t, "true", rec.Header().Get(echo.HeaderAccessControlAllowCredentials))
}
