package tracking

import (
	"net/http"

	"HealthCompanion/internal/database"
	"HealthCompanion/internal/utility"

	"github.com/labstack/echo/v4"
)

type CreateMedicationRequest struct {
	Name      string  `json:"name" validate:"required,max=200"`
	Dosage    string  `json:"dosage" validate:"required,max=100"`
	Frequency string  `json:"frequency" validate:"required,max=100"`
	StartDate string  `json:"start_date" validate:"required"`
	Notes     *string `json:"notes" validate:"omitempty,max=2000"`
}

type UpdateMedicationRequest struct {
	Active *bool   `json:"active"`
	Notes  *string `json:"notes" validate:"omitempty,max=2000"`
}

func GetMedicationsHandler(c echo.Context) error {
	userID, err := utility.GetUserIDFromContext(c)
	if err != nil {
		return unauthorized(c)
	}

	meds, err := store.ListMedications(c.Request().Context(), userID)
	if err != nil {
		utility.Logger(c).Error().Err(err).Msg("Failed to fetch medications")
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch medications"})
	}
	return c.JSON(http.StatusOK, orEmpty(meds))
}

func CreateMedicationHandler(c echo.Context) error {
	userID, err := utility.GetUserIDFromContext(c)
	if err != nil {
		return unauthorized(c)
	}

	var req CreateMedicationRequest
	if ok, err := bindRequest(c, &req); !ok {
		return err
	}
	start, ok, err := parseTime(c, "start_date", req.StartDate)
	if !ok {
		return err
	}

	med, err := store.CreateMedication(c.Request().Context(), database.CreateMedicationParams{
		UserID:    userID,
		Name:      req.Name,
		Dosage:    req.Dosage,
		Frequency: req.Frequency,
		StartDate: start,
		Notes:     utility.TextFromPtr(req.Notes),
	})
	if err != nil {
		utility.Logger(c).Error().Err(err).Msg("Failed to create medication")
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to create medication"})
	}

	utility.Dashboards.Notify(userID, "medications.changed")
	return c.JSON(http.StatusCreated, med)
}

// UpdateMedicationHandler toggles a medication on or off. Stopping one
// stamps end_date; restarting clears it.
func UpdateMedicationHandler(c echo.Context) error {
	userID, err := utility.GetUserIDFromContext(c)
	if err != nil {
		return unauthorized(c)
	}
	ctx := c.Request().Context()

	_, id, err := findOwned(ctx, userID, c.Param("id"), store.GetMedication,
		func(m database.Medication) string { return m.UserID })
	if err != nil {
		return ownershipError(c, err, "Medication", true)
	}

	var req UpdateMedicationRequest
	if ok, err := bindRequest(c, &req); !ok {
		return err
	}

	updated, err := store.UpdateMedication(ctx, database.UpdateMedicationParams{
		ID:     id,
		Active: utility.BoolFromPtr(req.Active),
		Notes:  utility.TextFromPtr(req.Notes),
	})
	if err != nil {
		utility.Logger(c).Error().Err(err).Msg("Failed to update medication")
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to update medication"})
	}

	utility.Dashboards.Notify(userID, "medications.changed")
	return c.JSON(http.StatusOK, updated)
}

func DeleteMedicationHandler(c echo.Context) error {
	return deleteOwned(c, deletion[database.Medication]{
		noun:  "Medication",
		event: "medications.changed",
		hide:  true,
		get:   store.GetMedication,
		del:   store.DeleteMedication,
		owner: func(m database.Medication) string { return m.UserID },
	})
}
