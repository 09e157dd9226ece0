package tracking

import (
	"net/http"

	"HealthCompanion/internal/database"
	"HealthCompanion/internal/utility"

	"github.com/labstack/echo/v4"
)

type CreateSymptomRequest struct {
	Location    string  `json:"location" validate:"required,max=200"`
	Description string  `json:"description" validate:"required,max=2000"`
	Severity    int32   `json:"severity" validate:"required,min=1,max=10"`
	StartDate   string  `json:"start_date" validate:"required"`
	Notes       *string `json:"notes" validate:"omitempty,max=2000"`
}

// UpdateSymptomRequest changes only the fields that are present.
type UpdateSymptomRequest struct {
	Resolved *bool   `json:"resolved"`
	Notes    *string `json:"notes" validate:"omitempty,max=2000"`
}

func GetSymptomsHandler(c echo.Context) error {
	userID, err := utility.GetUserIDFromContext(c)
	if err != nil {
		return unauthorized(c)
	}

	symptoms, err := store.ListSymptoms(c.Request().Context(), userID)
	if err != nil {
		utility.Logger(c).Error().Err(err).Msg("Failed to fetch symptoms")
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch symptoms"})
	}
	return c.JSON(http.StatusOK, orEmpty(symptoms))
}

func CreateSymptomHandler(c echo.Context) error {
	userID, err := utility.GetUserIDFromContext(c)
	if err != nil {
		return unauthorized(c)
	}

	var req CreateSymptomRequest
	if ok, err := bindRequest(c, &req); !ok {
		return err
	}
	start, ok, err := parseTime(c, "start_date", req.StartDate)
	if !ok {
		return err
	}

	symptom, err := store.CreateSymptom(c.Request().Context(), database.CreateSymptomParams{
		UserID:      userID,
		Location:    req.Location,
		Description: req.Description,
		Severity:    req.Severity,
		StartDate:   start,
		Notes:       utility.TextFromPtr(req.Notes),
	})
	if err != nil {
		utility.Logger(c).Error().Err(err).Msg("Failed to create symptom")
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to create symptom"})
	}

	utility.Dashboards.Notify(userID, "symptoms.changed")
	return c.JSON(http.StatusCreated, symptom)
}

// UpdateSymptomHandler resolves or reopens a symptom. Resolving stamps
// end_date with the current time; reopening clears it.
func UpdateSymptomHandler(c echo.Context) error {
	userID, err := utility.GetUserIDFromContext(c)
	if err != nil {
		return unauthorized(c)
	}
	ctx := c.Request().Context()

	_, id, err := findOwned(ctx, userID, c.Param("id"), store.GetSymptom,
		func(s database.Symptom) string { return s.UserID })
	if err != nil {
		return ownershipError(c, err, "Symptom", true)
	}

	var req UpdateSymptomRequest
	if ok, err := bindRequest(c, &req); !ok {
		return err
	}

	updated, err := store.UpdateSymptom(ctx, database.UpdateSymptomParams{
		ID:       id,
		Resolved: utility.BoolFromPtr(req.Resolved),
		Notes:    utility.TextFromPtr(req.Notes),
	})
	if err != nil {
		utility.Logger(c).Error().Err(err).Msg("Failed to update symptom")
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to update symptom"})
	}

	utility.Dashboards.Notify(userID, "symptoms.changed")
	return c.JSON(http.StatusOK, updated)
}

func DeleteSymptomHandler(c echo.Context) error {
	return deleteOwned(c, deletion[database.Symptom]{
		noun:  "Symptom",
		event: "symptoms.changed",
		hide:  true,
		get:   store.GetSymptom,
		del:   store.DeleteSymptom,
		owner: func(s database.Symptom) string { return s.UserID },
	})
}
