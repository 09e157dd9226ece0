package tracking

import (
	"context"
	"net/http"
	"strings"

	"HealthCompanion/internal/database"
	"HealthCompanion/internal/mailer"
	"HealthCompanion/internal/utility"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

const defaultDoctor = "Dr. Internist"

type CreateAppointmentRequest struct {
	DoctorName string  `json:"doctor_name" validate:"omitempty,max=200"`
	Date       string  `json:"date" validate:"required"`
	Time       string  `json:"time" validate:"required,max=20"`
	Reason     string  `json:"reason" validate:"required,max=1000"`
	Notes      *string `json:"notes" validate:"omitempty,max=2000"`
}

type UpdateAppointmentRequest struct {
	Status *string `json:"status" validate:"omitempty,oneof=scheduled completed cancelled"`
	Notes  *string `json:"notes" validate:"omitempty,max=2000"`
}

func GetAppointmentsHandler(c echo.Context) error {
	userID, err := utility.GetUserIDFromContext(c)
	if err != nil {
		return unauthorized(c)
	}

	appts, err := store.ListAppointments(c.Request().Context(), userID)
	if err != nil {
		utility.Logger(c).Error().Err(err).Msg("Failed to fetch appointments")
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch appointments"})
	}
	return c.JSON(http.StatusOK, orEmpty(appts))
}

// CreateAppointmentHandler books a telehealth appointment. A meeting link is
// generated and appended to the notes, and a confirmation email is sent in
// the background; mail failures never fail the booking.
func CreateAppointmentHandler(c echo.Context) error {
	userID, err := utility.GetUserIDFromContext(c)
	if err != nil {
		return unauthorized(c)
	}
	ctx := c.Request().Context()
	logger := utility.Logger(c)

	var req CreateAppointmentRequest
	if ok, err := bindRequest(c, &req); !ok {
		return err
	}
	date, ok, err := parseTime(c, "date", req.Date)
	if !ok {
		return err
	}
	doctor := strings.TrimSpace(req.DoctorName)
	if doctor == "" {
		doctor = defaultDoctor
	}

	meeting, err := mailer.GenerateMeeting()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to generate meeting link")
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to create appointment"})
	}
	notes := meeting.NotesLine()
	if req.Notes != nil && strings.TrimSpace(*req.Notes) != "" {
		notes = strings.TrimSpace(*req.Notes) + "\n" + notes
	}

	appt, err := store.CreateAppointment(ctx, database.CreateAppointmentParams{
		UserID:     userID,
		DoctorName: doctor,
		Date:       date,
		Time:       req.Time,
		Reason:     req.Reason,
		Notes:      utility.TextFromString(notes),
	})
	if err != nil {
		logger.Error().Err(err).Msg("Failed to create appointment")
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to create appointment"})
	}

	user, err := store.GetUserByID(ctx, userID)
	if err != nil {
		logger.Warn().Err(err).Msg("Could not load user for appointment email")
	} else {
		name := user.Name.String
		if name == "" {
			name = "Patient"
		}
		go sendConfirmation(context.WithoutCancel(ctx), *logger, mailer.Appointment{
			PatientName:  name,
			PatientEmail: user.Email,
			DoctorName:   doctor,
			Date:         date.Time,
			Time:         req.Time,
			Reason:       req.Reason,
			Meeting:      meeting,
		})
	}

	utility.Dashboards.Notify(userID, "appointments.changed")
	return c.JSON(http.StatusCreated, appt)
}

func sendConfirmation(ctx context.Context, logger zerolog.Logger, a mailer.Appointment) {
	if mail == nil {
		return
	}
	msg, err := mailer.AppointmentConfirmation(a, appointmentNotify)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to render appointment email")
		return
	}
	if err := mail.Send(ctx, msg); err != nil {
		logger.Error().Err(err).Str("to", a.PatientEmail).Msg("Failed to send appointment email")
		return
	}
	logger.Info().Str("to", a.PatientEmail).Msg("Appointment confirmation sent")
}

func UpdateAppointmentHandler(c echo.Context) error {
	userID, err := utility.GetUserIDFromContext(c)
	if err != nil {
		return unauthorized(c)
	}
	ctx := c.Request().Context()

	_, id, err := findOwned(ctx, userID, c.Param("id"), store.GetAppointment,
		func(a database.Appointment) string { return a.UserID })
	if err != nil {
		return ownershipError(c, err, "Appointment", true)
	}

	var req UpdateAppointmentRequest
	if ok, err := bindRequest(c, &req); !ok {
		return err
	}

	updated, err := store.UpdateAppointment(ctx, database.UpdateAppointmentParams{
		ID:     id,
		Status: utility.TextFromPtr(req.Status),
		Notes:  utility.TextFromPtr(req.Notes),
	})
	if err != nil {
		utility.Logger(c).Error().Err(err).Msg("Failed to update appointment")
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to update appointment"})
	}

	utility.Dashboards.Notify(userID, "appointments.changed")
	return c.JSON(http.StatusOK, updated)
}

func DeleteAppointmentHandler(c echo.Context) error {
	return deleteOwned(c, deletion[database.Appointment]{
		noun:  "Appointment",
		event: "appointments.changed",
		hide:  true,
		get:   store.GetAppointment,
		del:   store.DeleteAppointment,
		owner: func(a database.Appointment) string { return a.UserID },
	})
}
