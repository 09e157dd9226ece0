package insights

import (
	"net/http"
	"time"

	"HealthCompanion/internal/database"
	"HealthCompanion/internal/utility"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/labstack/echo/v4"
)

const (
	cacheSize = 1000
	cacheTTL  = 7 * 24 * time.Hour
)

var (
	queries database.Querier
	model   Generator
	now     = time.Now

	// latest holds the last generated analysis per user.
	latest = expirable.NewLRU[string, Insights](cacheSize, nil, cacheTTL)
)

func InitInsightsPackage(q database.Querier, g Generator) {
	queries = q
	model = g
}

// GetInsightsHandler returns the cached analysis or an empty skeleton.
func GetInsightsHandler(c echo.Context) error {
	userID, err := utility.GetUserIDFromContext(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Unauthorized"})
	}

	if in, ok := latest.Get(userID); ok {
		return c.JSON(http.StatusOK, in)
	}
	return c.JSON(http.StatusOK, Empty())
}

// GenerateInsightsHandler runs a fresh analysis over the last 90 days.
func GenerateInsightsHandler(c echo.Context) error {
	userID, err := utility.GetUserIDFromContext(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Unauthorized"})
	}
	if model == nil {
		return c.JSON(http.StatusServiceUnavailable, map[string]string{"error": "Insights are not configured"})
	}
	ctx := c.Request().Context()

	data, err := Collect(ctx, queries, userID, now())
	if err != nil {
		if database.IsNotFound(err) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "User not found"})
		}
		utility.Logger(c).Error().Err(err).Msg("Failed to collect data for insights")
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to generate insights"})
	}

	in, err := Analyze(ctx, model, data)
	if err != nil {
		utility.Logger(c).Error().Err(err).Int("data_points", data.Points()).Msg("Failed to generate insights")
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to generate insights"})
	}

	latest.Add(userID, in)
	return c.JSON(http.StatusOK, in)
}
