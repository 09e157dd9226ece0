// Package healthtips serves the shared catalogue of health tips.
package healthtips

import (
	"math/rand/v2"
	"net/http"

	"HealthCompanion/internal/database"
	"HealthCompanion/internal/utility"

	"github.com/labstack/echo/v4"
)

var (
	queries database.Querier

	// pick returns a uniform offset in [0, n).
	pick = rand.Int64N
)

func InitHealthTipsPackage(q database.Querier) {
	queries = q
}

func GetHealthTipsHandler(c echo.Context) error {
	tips, err := queries.ListHealthTips(c.Request().Context())
	if err != nil {
		utility.Logger(c).Error().Err(err).Msg("Failed to fetch health tips")
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch health tips"})
	}
	if tips == nil {
		tips = []database.HealthTip{}
	}
	return c.JSON(http.StatusOK, tips)
}

// GetDailyTipHandler returns one tip chosen uniformly at random.
func GetDailyTipHandler(c echo.Context) error {
	ctx := c.Request().Context()

	count, err := queries.CountHealthTips(ctx)
	if err != nil {
		utility.Logger(c).Error().Err(err).Msg("Failed to count health tips")
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch daily tip"})
	}
	if count == 0 {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "No tips available"})
	}

	tip, err := queries.GetHealthTipAtOffset(ctx, int32(pick(count)))
	if err != nil {
		if database.IsNotFound(err) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "No tips available"})
		}
		utility.Logger(c).Error().Err(err).Msg("Failed to fetch daily tip")
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch daily tip"})
	}
	return c.JSON(http.StatusOK, tip)
}
