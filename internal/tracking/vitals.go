package tracking

import (
	"net/http"

	"HealthCompanion/internal/database"
	"HealthCompanion/internal/utility"

	"github.com/labstack/echo/v4"
)

var vitalUnits = map[string]string{
	"blood_pressure": "mmHg",
	"heart_rate":     "bpm",
	"spo2":           "%",
	"temperature":    "°F",
	"glucose":        "mg/dL",
	"weight":         "kg",
}

type CreateVitalRequest struct {
	Type       string   `json:"type" validate:"required,oneof=blood_pressure heart_rate spo2 temperature glucose weight"`
	Systolic   *int32   `json:"systolic" validate:"omitempty,min=1,max=300"`
	Diastolic  *int32   `json:"diastolic" validate:"omitempty,min=1,max=300"`
	Value      *float64 `json:"value" validate:"omitempty,gt=0"`
	MeasuredAt string   `json:"measured_at" validate:"required"`
	Notes      *string  `json:"notes" validate:"omitempty,max=2000"`
}

func GetVitalsHandler(c echo.Context) error {
	userID, err := utility.GetUserIDFromContext(c)
	if err != nil {
		return unauthorized(c)
	}

	vitals, err := store.ListVitalSigns(c.Request().Context(), userID)
	if err != nil {
		utility.Logger(c).Error().Err(err).Msg("Failed to fetch vital signs")
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch vital signs"})
	}
	return c.JSON(http.StatusOK, orEmpty(vitals))
}

// CreateVitalHandler records a reading; the unit is implied by the type.
func CreateVitalHandler(c echo.Context) error {
	userID, err := utility.GetUserIDFromContext(c)
	if err != nil {
		return unauthorized(c)
	}

	var req CreateVitalRequest
	if ok, err := bindRequest(c, &req); !ok {
		return err
	}
	if req.Type == "blood_pressure" {
		if req.Systolic == nil || req.Diastolic == nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "systolic and diastolic are required for blood pressure"})
		}
	} else if req.Value == nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "value is required"})
	}
	measuredAt, ok, err := parseTime(c, "measured_at", req.MeasuredAt)
	if !ok {
		return err
	}

	vital, err := store.CreateVitalSign(c.Request().Context(), database.CreateVitalSignParams{
		UserID:     userID,
		Type:       req.Type,
		Systolic:   utility.Int4FromPtr(req.Systolic),
		Diastolic:  utility.Int4FromPtr(req.Diastolic),
		Value:      utility.Float8FromPtr(req.Value),
		Unit:       vitalUnits[req.Type],
		MeasuredAt: measuredAt,
		Notes:      utility.TextFromPtr(req.Notes),
	})
	if err != nil {
		utility.Logger(c).Error().Err(err).Msg("Failed to create vital sign")
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to create vital sign"})
	}

	utility.Dashboards.Notify(userID, "vitals.changed")
	return c.JSON(http.StatusCreated, vital)
}

func DeleteVitalHandler(c echo.Context) error {
	return deleteOwned(c, deletion[database.VitalSign]{
		noun:  "Vital sign",
		event: "vitals.changed",
		get:   store.GetVitalSign,
		del:   store.DeleteVitalSign,
		owner: func(v database.VitalSign) string { return v.UserID },
	})
}
