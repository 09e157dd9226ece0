package insights

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"HealthCompanion/internal/database"
	"HealthCompanion/internal/geminiservice"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRateDataQuality(t *testing.T) {
	tests := []struct {
		points int
		score  int
		prefix string
	}{
		{0, 0, "Limited"},
		{39, 39, "Limited"},
		{40, 40, "Good"},
		{69, 69, "Good"},
		{70, 70, "Excellent"},
		{250, 100, "Excellent"},
	}
	for _, tt := range tests {
		got := RateDataQuality(tt.points)
		assert.Equal(t, tt.score, got.Score, tt.points)
		assert.True(t, strings.HasPrefix(got.Message, tt.prefix), got.Message)
	}
}

func TestSummarize(t *testing.T) {
	moods := make([]database.MoodEntry, 10)
	for i := range moods {
		moods[i] = database.MoodEntry{Mood: "good", Energy: int32(i + 1), Stress: 3}
	}
	pain := []database.PainLog{
		{BodyPart: "knee", Intensity: 7},
		{BodyPart: "back", Intensity: 2},
		{BodyPart: "neck", Intensity: 5},
	}
	d := Dataset{
		User:        database.User{Age: pgtype.Int4{Int32: 41, Valid: true}},
		Symptoms:    []database.Symptom{{Resolved: true}, {Resolved: false}},
		MoodEntries: moods,
		PainLogs:    pain,
	}

	s := Summarize(d)
	require.NotNil(t, s.User.Age)
	assert.Equal(t, int32(41), *s.User.Age)
	assert.Nil(t, s.User.Sex)
	assert.Equal(t, 2, s.Metrics.SymptomsCount)
	assert.Equal(t, 1, s.Metrics.ActiveSymptoms)
	assert.Len(t, s.RecentMoods, 7)
	assert.Equal(t, int32(1), s.RecentMoods[0].Energy, "keeps newest-first order")
	assert.Empty(t, s.RecentSleep)
	assert.Equal(t, []activePain{{"knee", 7}, {"neck", 5}}, s.ActivePain)
	assert.Equal(t, 15, d.Points())
}

type fakeGenerator struct {
	req    geminiservice.Request
	answer string
	err    error
}

func (f *fakeGenerator) GenerateJSON(_ context.Context, req geminiservice.Request, out any) error {
	f.req = req
	if f.err != nil {
		return f.err
	}
	return json.Unmarshal([]byte(f.answer), out)
}

func TestAnalyze(t *testing.T) {
	gen := &fakeGenerator{answer: `{
		"correlations":[{"metric1":"Sleep Hours","metric2":"Energy Levels","strength":0.8,"direction":"positive","confidence":"High","insight":"x"}],
		"recommendations":["Sleep earlier"],
		"health_trends":{"improving":["Sleep"]}
	}`}
	d := Dataset{SleepLogs: []database.SleepLog{{TotalHours: 7, Quality: 8}}}

	in, err := Analyze(context.Background(), gen, d)
	require.NoError(t, err)

	assert.Len(t, in.Correlations, 1)
	assert.NotNil(t, in.Predictions)
	assert.NotNil(t, in.HealthTrends.Stable)
	assert.Equal(t, 1, in.DataQuality.Score)
	assert.Contains(t, gen.req.Prompt, `"recent_sleep"`)
	assert.Equal(t, systemPrompt, gen.req.System)
	assert.Same(t, insightsSchema, gen.req.Schema)
}

type fakeQueries struct {
	database.Querier
	userErr error
}

func (f *fakeQueries) GetUserByID(context.Context, string) (database.User, error) {
	return database.User{UserID: "user-1"}, f.userErr
}
func (f *fakeQueries) ListVitalSignsSince(context.Context, database.ListVitalSignsSinceParams) ([]database.VitalSign, error) {
	return make([]database.VitalSign, 45), nil
}
func (f *fakeQueries) ListSymptoms(context.Context, string) ([]database.Symptom, error) {
	return nil, nil
}
func (f *fakeQueries) ListMoodEntriesSince(context.Context, database.ListMoodEntriesSinceParams) ([]database.MoodEntry, error) {
	return nil, nil
}
func (f *fakeQueries) ListSleepLogsSince(context.Context, database.ListSleepLogsSinceParams) ([]database.SleepLog, error) {
	return nil, nil
}
func (f *fakeQueries) ListExerciseLogsSince(context.Context, database.ListExerciseLogsSinceParams) ([]database.ExerciseLog, error) {
	return nil, nil
}
func (f *fakeQueries) ListFoodLogsSince(context.Context, database.ListFoodLogsSinceParams) ([]database.FoodLog, error) {
	return nil, nil
}
func (f *fakeQueries) ListPainLogsSince(context.Context, database.ListPainLogsSinceParams) ([]database.PainLog, error) {
	return nil, nil
}

func newContext(method, userID string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(method, "/api/insights", nil), rec)
	c.Set("user_id", userID)
	return c, rec
}

func TestInsightsHandlers(t *testing.T) {
	gen := &fakeGenerator{answer: `{"recommendations":["Walk daily"]}`}
	InitInsightsPackage(&fakeQueries{}, gen)
	now = func() time.Time { return time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC) }
	t.Cleanup(func() { now = time.Now; latest.Purge() })

	c, rec := newContext(http.MethodGet, "user-1")
	require.NoError(t, GetInsightsHandler(c))
	var before Insights
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &before))
	assert.Equal(t, "Generate insights to see personalized analysis", before.DataQuality.Message)

	c, rec = newContext(http.MethodPost, "user-1")
	require.NoError(t, GenerateInsightsHandler(c))
	require.Equal(t, http.StatusOK, rec.Code)

	c, rec = newContext(http.MethodGet, "user-1")
	require.NoError(t, GetInsightsHandler(c))
	var after Insights
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &after))
	assert.Equal(t, []string{"Walk daily"}, after.Recommendations)
	assert.Equal(t, 45, after.DataQuality.Score)

	c, rec = newContext(http.MethodGet, "user-2")
	require.NoError(t, GetInsightsHandler(c))
	assert.Contains(t, rec.Body.String(), `"score":0`, "cache is per user")
}

func TestGenerateInsightsHandlerFailure(t *testing.T) {
	InitInsightsPackage(&fakeQueries{}, &fakeGenerator{err: errors.New("model down")})
	t.Cleanup(func() { latest.Purge() })

	c, rec := newContext(http.MethodPost, "user-1")
	require.NoError(t, GenerateInsightsHandler(c))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"Failed to generate insights"}`, rec.Body.String())
	_, cached := latest.Get("user-1")
	assert.False(t, cached)
}

func TestGenerateInsightsWithoutModel(t *testing.T) {
	InitInsightsPackage(&fakeQueries{}, nil)

	c, rec := newContext(http.MethodPost, "user-1")
	require.NoError(t, GenerateInsightsHandler(c))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
