package healthtips

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"HealthCompanion/internal/database"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeQueries struct {
	database.Querier
	tips     []database.HealthTip
	countErr error
	offset   int32
}

func (f *fakeQueries) ListHealthTips(context.Context) ([]database.HealthTip, error) {
	return f.tips, nil
}

func (f *fakeQueries) CountHealthTips(context.Context) (int64, error) {
	return int64(len(f.tips)), f.countErr
}

func (f *fakeQueries) GetHealthTipAtOffset(_ context.Context, offset int32) (database.HealthTip, error) {
	f.offset = offset
	return f.tips[offset], nil
}

func get(h echo.HandlerFunc) *httptest.ResponseRecorder {
	e := echo.New()
	rec := httptest.NewRecorder()
	_ = h(e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec))
	return rec
}

func TestGetHealthTipsEmpty(t *testing.T) {
	InitHealthTipsPackage(&fakeQueries{})
	rec := get(GetHealthTipsHandler)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestGetDailyTip(t *testing.T) {
	fq := &fakeQueries{tips: []database.HealthTip{{Title: "Hydrate"}, {Title: "Walk"}, {Title: "Sleep"}}}
	InitHealthTipsPackage(fq)

	var bound int64
	orig := pick
	pick = func(n int64) int64 { bound = n; return 2 }
	t.Cleanup(func() { pick = orig })

	rec := get(GetDailyTipHandler)
	require.Equal(t, http.StatusOK, rec.Code)

	var tip database.HealthTip
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &tip))
	assert.Equal(t, "Sleep", tip.Title)
	assert.Equal(t, int64(3), bound)
	assert.Equal(t, int32(2), fq.offset)
}

func TestGetDailyTipNone(t *testing.T) {
	InitHealthTipsPackage(&fakeQueries{})
	rec := get(GetDailyTipHandler)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"No tips available"}`, rec.Body.String())
}

func TestGetDailyTipCountFails(t *testing.T) {
	InitHealthTipsPackage(&fakeQueries{tips: []database.HealthTip{{}}, countErr: errors.New("db down")})
	rec := get(GetDailyTipHandler)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
