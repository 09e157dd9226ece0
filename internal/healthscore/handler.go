package healthscore

import (
	"net/http"
	"strconv"
	"time"

	"HealthCompanion/internal/database"
	"HealthCompanion/internal/utility"

	"github.com/labstack/echo/v4"
)

const (
	defaultHistory = 30
	maxHistory     = 365
)

var (
	queries database.Querier
	now     = time.Now
)

func InitHealthScorePackage(q database.Querier) {
	queries = q
}

// MetricsResponse summarises tracking activity for the dashboard.
type MetricsResponse struct {
	VitalsCount          int64 `json:"vitals_count"`
	ActiveSymptoms       int64 `json:"active_symptoms"`
	ActiveMedications    int64 `json:"active_medications"`
	UpcomingAppointments int64 `json:"upcoming_appointments"`
	WeeklyFoodLogs       int64 `json:"weekly_food_logs"`
	WeeklyExerciseLogs   int64 `json:"weekly_exercise_logs"`
	WeeklySleepLogs      int64 `json:"weekly_sleep_logs"`
	WeeklyMoodEntries    int64 `json:"weekly_mood_entries"`
}

// GetLatestScoreHandler returns the most recent score, or null.
func GetLatestScoreHandler(c echo.Context) error {
	userID, err := utility.GetUserIDFromContext(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Unauthorized"})
	}

	score, err := queries.GetLatestHealthScore(c.Request().Context(), userID)
	if err != nil {
		if database.IsNotFound(err) {
			return c.JSON(http.StatusOK, map[string]interface{}{"latest_score": nil})
		}
		utility.Logger(c).Error().Err(err).Msg("Failed to fetch latest health score")
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch health score"})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{"latest_score": score})
}

// CalculateScoreHandler recomputes and stores a fresh score.
func CalculateScoreHandler(c echo.Context) error {
	userID, err := utility.GetUserIDFromContext(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Unauthorized"})
	}

	score, err := Recalculate(c.Request().Context(), queries, userID, now())
	if err != nil {
		utility.Logger(c).Error().Err(err).Msg("Failed to calculate health score")
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to calculate health score"})
	}

	utility.Dashboards.Notify(userID, "health_score.updated")
	return c.JSON(http.StatusOK, score)
}

// GetScoreHistoryHandler lists past scores, newest first.
func GetScoreHistoryHandler(c echo.Context) error {
	userID, err := utility.GetUserIDFromContext(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Unauthorized"})
	}

	limit := defaultHistory
	if raw := c.QueryParam("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "limit must be a positive integer"})
		}
		limit = min(n, maxHistory)
	}

	scores, err := queries.ListHealthScores(c.Request().Context(), database.ListHealthScoresParams{
		UserID: userID,
		Limit:  int32(limit),
	})
	if err != nil {
		utility.Logger(c).Error().Err(err).Msg("Failed to list health scores")
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch health score history"})
	}
	if scores == nil {
		scores = []database.HealthScore{}
	}

	return c.JSON(http.StatusOK, map[string]interface{}{"scores": scores})
}

// GetMetricsHandler counts recent tracking activity.
func GetMetricsHandler(c echo.Context) error {
	userID, err := utility.GetUserIDFromContext(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Unauthorized"})
	}

	t := now()
	row, err := queries.GetHealthMetrics(c.Request().Context(), database.GetHealthMetricsParams{
		UserID:  userID,
		WeekAgo: utility.Timestamptz(t.Add(-7 * 24 * time.Hour)),
		Now:     utility.Timestamptz(t),
	})
	if err != nil {
		utility.Logger(c).Error().Err(err).Msg("Failed to fetch health metrics")
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch metrics"})
	}

	return c.JSON(http.StatusOK, MetricsResponse{
		VitalsCount:          row.VitalsCount,
		ActiveSymptoms:       row.ActiveSymptoms,
		ActiveMedications:    row.ActiveMedications,
		UpcomingAppointments: row.UpcomingAppointments,
		WeeklyFoodLogs:       row.WeeklyFoodLogs,
		WeeklyExerciseLogs:   row.WeeklyExerciseLogs,
		WeeklySleepLogs:      row.WeeklySleepLogs,
		WeeklyMoodEntries:    row.WeeklyMoodEntries,
	})
}
