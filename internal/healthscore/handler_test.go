package healthscore

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"HealthCompanion/internal/database"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeQueries struct {
	database.Querier

	moods   []database.MoodEntry
	saved   database.CreateHealthScoreParams
	saves   int
	latest  *database.HealthScore
	history []database.HealthScore
	limit   int32
	metrics database.GetHealthMetricsParams

	// failOn names the read that returns an error.
	failOn string

	mu    sync.Mutex
	since map[string]time.Time
}

// read records the window bound a list query was called with.
func (f *fakeQueries) read(name string, since pgtype.Timestamptz) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if since.Valid {
		if f.since == nil {
			f.since = make(map[string]time.Time)
		}
		f.since[name] = since.Time
	}
	if f.failOn == name {
		return errors.New("connection reset by peer")
	}
	return nil
}

func (f *fakeQueries) ListVitalSignsSince(_ context.Context, arg database.ListVitalSignsSinceParams) ([]database.VitalSign, error) {
	return nil, f.read("vitals", arg.Since)
}
func (f *fakeQueries) ListSymptoms(context.Context, string) ([]database.Symptom, error) {
	return nil, f.read("symptoms", pgtype.Timestamptz{})
}
func (f *fakeQueries) ListActiveMedications(context.Context, string) ([]database.Medication, error) {
	return nil, f.read("medications", pgtype.Timestamptz{})
}
func (f *fakeQueries) ListAppointmentsSince(_ context.Context, arg database.ListAppointmentsSinceParams) ([]database.Appointment, error) {
	return nil, f.read("appointments", arg.Since)
}
func (f *fakeQueries) ListFoodLogsSince(_ context.Context, arg database.ListFoodLogsSinceParams) ([]database.FoodLog, error) {
	return nil, f.read("food", arg.Since)
}
func (f *fakeQueries) ListExerciseLogsSince(_ context.Context, arg database.ListExerciseLogsSinceParams) ([]database.ExerciseLog, error) {
	return nil, f.read("exercise", arg.Since)
}
func (f *fakeQueries) ListSleepLogsSince(_ context.Context, arg database.ListSleepLogsSinceParams) ([]database.SleepLog, error) {
	return nil, f.read("sleep", arg.Since)
}
func (f *fakeQueries) ListMoodEntriesSince(_ context.Context, arg database.ListMoodEntriesSinceParams) ([]database.MoodEntry, error) {
	if err := f.read("mood", arg.Since); err != nil {
		return nil, err
	}
	return f.moods, nil
}

func (f *fakeQueries) CreateHealthScore(_ context.Context, arg database.CreateHealthScoreParams) (database.HealthScore, error) {
	f.saved = arg
	f.saves++
	return database.HealthScore{
		UserID:       arg.UserID,
		Overall:      arg.Overall,
		Mental:       arg.Mental,
		CalculatedAt: arg.CalculatedAt,
	}, nil
}

func (f *fakeQueries) GetLatestHealthScore(context.Context, string) (database.HealthScore, error) {
	if f.latest == nil {
		return database.HealthScore{}, pgx.ErrNoRows
	}
	return *f.latest, nil
}

func (f *fakeQueries) ListHealthScores(_ context.Context, arg database.ListHealthScoresParams) ([]database.HealthScore, error) {
	f.limit = arg.Limit
	return f.history, nil
}

func (f *fakeQueries) GetHealthMetrics(_ context.Context, arg database.GetHealthMetricsParams) (database.GetHealthMetricsRow, error) {
	f.metrics = arg
	return database.GetHealthMetricsRow{VitalsCount: 3, WeeklyMoodEntries: 2}, nil
}

var fixedNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func setup(t *testing.T, f *fakeQueries) {
	t.Helper()
	InitHealthScorePackage(f)
	now = func() time.Time { return fixedNow }
	t.Cleanup(func() { now = time.Now })
}

func request(method, target string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(method, target, nil), rec)
	c.Set("user_id", "user-1")
	return c, rec
}

func TestCalculateScoreHandler(t *testing.T) {
	f := &fakeQueries{moods: []database.MoodEntry{
		{Mood: "great", Energy: 5, Stress: 2},
		{Mood: "bad", Energy: 5, Stress: 8},
	}}
	setup(t, f)

	c, rec := request(http.MethodPost, "/api/health-score/calculate")
	require.NoError(t, CalculateScoreHandler(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	assert.Equal(t, 1, f.saves)
	assert.Equal(t, "user-1", f.saved.UserID)
	assert.Equal(t, int32(70), f.saved.Mental)
	assert.True(t, f.saved.CalculatedAt.Time.Equal(fixedNow))

	var got database.HealthScore
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, f.saved.Overall, got.Overall)
}

func TestCalculateScoreHandlerReadFailure(t *testing.T) {
	for _, read := range []string{"vitals", "symptoms", "medications", "appointments", "food", "exercise", "sleep", "mood"} {
		t.Run(read, func(t *testing.T) {
			f := &fakeQueries{failOn: read}
			setup(t, f)

			c, rec := request(http.MethodPost, "/api/health-score/calculate")
			require.NoError(t, CalculateScoreHandler(c))
			assert.Equal(t, http.StatusInternalServerError, rec.Code)
			assert.JSONEq(t, `{"error":"Failed to calculate health score"}`, rec.Body.String())
			assert.Zero(t, f.saves)
		})
	}
}

func TestGatherUsesThirtyDayWindow(t *testing.T) {
	f := &fakeQueries{}

	_, err := Gather(context.Background(), f, "user-1", fixedNow)
	require.NoError(t, err)

	want := fixedNow.AddDate(0, 0, -30)
	require.Len(t, f.since, 6)
	for name, since := range f.since {
		assert.True(t, since.Equal(want), "%s: since = %s", name, since)
	}
}

func TestCalculateScoreHandlerUnauthorized(t *testing.T) {
	setup(t, &fakeQueries{})

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodPost, "/", nil), rec)
	require.NoError(t, CalculateScoreHandler(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestGetLatestScoreHandler(t *testing.T) {
	f := &fakeQueries{}
	setup(t, f)

	c, rec := request(http.MethodGet, "/api/health-score")
	require.NoError(t, GetLatestScoreHandler(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"latest_score":null}`, rec.Body.String())

	f.latest = &database.HealthScore{UserID: "user-1", Overall: 81}
	c, rec = request(http.MethodGet, "/api/health-score")
	require.NoError(t, GetLatestScoreHandler(c))

	var body struct {
		LatestScore database.HealthScore `json:"latest_score"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, int32(81), body.LatestScore.Overall)
}

func TestGetScoreHistoryHandler(t *testing.T) {
	tests := []struct {
		query     string
		wantCode  int
		wantLimit int32
	}{
		{"", http.StatusOK, defaultHistory},
		{"?limit=7", http.StatusOK, 7},
		{"?limit=5000", http.StatusOK, maxHistory},
		{"?limit=0", http.StatusBadRequest, 0},
		{"?limit=abc", http.StatusBadRequest, 0},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			f := &fakeQueries{}
			setup(t, f)

			c, rec := request(http.MethodGet, "/api/health-score/history"+tt.query)
			require.NoError(t, GetScoreHistoryHandler(c))
			assert.Equal(t, tt.wantCode, rec.Code)
			assert.Equal(t, tt.wantLimit, f.limit)
			if tt.wantCode == http.StatusOK {
				assert.JSONEq(t, `{"scores":[]}`, rec.Body.String())
			}
		})
	}
}

func TestGetMetricsHandler(t *testing.T) {
	f := &fakeQueries{}
	setup(t, f)

	c, rec := request(http.MethodGet, "/api/health-score/metrics")
	require.NoError(t, GetMetricsHandler(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	assert.True(t, f.metrics.Now.Time.Equal(fixedNow))
	assert.True(t, f.metrics.WeekAgo.Time.Equal(fixedNow.AddDate(0, 0, -7)))

	var got MetricsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, int64(3), got.VitalsCount)
	assert.Equal(t, int64(2), got.WeeklyMoodEntries)
}
