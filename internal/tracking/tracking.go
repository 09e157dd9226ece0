/*
Package tracking serves the per-user health logs: vitals, symptoms,
medications, appointments, mood, sleep, nutrition, exercise, pain and lab
results. Every record belongs to exactly one user and handlers check that
before reading, changing or deleting it.
*/
package tracking

import (
	"context"
	"errors"
	"net/http"
	"time"

	"HealthCompanion/internal/database"
	"HealthCompanion/internal/geminiservice"
	"HealthCompanion/internal/mailer"
	"HealthCompanion/internal/utility"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/labstack/echo/v4"
)

// Extractor turns an uploaded lab report into structured data.
type Extractor interface {
	GenerateJSON(ctx context.Context, req geminiservice.Request, out any) error
}

// Deps are the collaborators the handlers need.
type Deps struct {
	Store     database.Store
	Mailer    mailer.Sender
	Extractor Extractor
	UploadDir string
	// AppointmentNotify gets a blind copy of every confirmation, if set.
	AppointmentNotify string
}

var (
	store             database.Store
	mail              mailer.Sender
	extractor         Extractor
	uploadDir         string
	appointmentNotify string

	now = time.Now
)

func InitTrackingPackage(d Deps) {
	store = d.Store
	mail = d.Mailer
	extractor = d.Extractor
	uploadDir = d.UploadDir
	appointmentNotify = d.AppointmentNotify
}

var (
	errRecordNotFound = errors.New("record not found")
	errNotOwner       = errors.New("record belongs to another user")
)

// findOwned loads a record by its path id and checks it belongs to userID.
// A malformed id is reported as not found.
func findOwned[T any](ctx context.Context, userID, rawID string,
	get func(context.Context, pgtype.UUID) (T, error), owner func(T) string) (T, pgtype.UUID, error) {

	var zero T
	id, err := utility.StringToPgtypeUUID(rawID)
	if err != nil {
		return zero, id, errRecordNotFound
	}
	rec, err := get(ctx, id)
	if err != nil {
		if database.IsNotFound(err) {
			return zero, id, errRecordNotFound
		}
		return zero, id, err
	}
	if owner(rec) != userID {
		return zero, id, errNotOwner
	}
	return rec, id, nil
}

// ownershipError writes the response for a failed findOwned. When hide is
// set a foreign record is indistinguishable from a missing one.
func ownershipError(c echo.Context, err error, noun string, hide bool) error {
	switch {
	case errors.Is(err, errRecordNotFound), hide && errors.Is(err, errNotOwner):
		return c.JSON(http.StatusNotFound, map[string]string{"error": noun + " not found"})
	case errors.Is(err, errNotOwner):
		return c.JSON(http.StatusForbidden, map[string]string{"error": "Unauthorized"})
	default:
		utility.Logger(c).Error().Err(err).Str("resource", noun).Msg("Failed to load record")
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to load " + noun})
	}
}

// deletion describes how to remove one kind of record.
type deletion[T any] struct {
	noun  string
	event string
	hide  bool
	get   func(context.Context, pgtype.UUID) (T, error)
	del   func(context.Context, pgtype.UUID) error
	owner func(T) string
}

func deleteOwned[T any](c echo.Context, d deletion[T]) error {
	userID, err := utility.GetUserIDFromContext(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Unauthorized"})
	}
	ctx := c.Request().Context()

	_, id, err := findOwned(ctx, userID, c.Param("id"), d.get, d.owner)
	if err != nil {
		return ownershipError(c, err, d.noun, d.hide)
	}

	if err := d.del(ctx, id); err != nil {
		utility.Logger(c).Error().Err(err).Str("resource", d.noun).Msg("Failed to delete record")
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to delete " + d.noun})
	}

	utility.Dashboards.Notify(userID, d.event)
	return c.JSON(http.StatusOK, map[string]bool{"success": true})
}

// bindRequest decodes and validates the body, writing a 400 on failure.
// ok is false when the response has already been written.
func bindRequest(c echo.Context, req interface{}) (ok bool, err error) {
	if err := c.Bind(req); err != nil {
		return false, c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}
	if err := c.Validate(req); err != nil {
		return false, c.JSON(http.StatusBadRequest, map[string]string{"error": utility.ValidationMessage(err)})
	}
	return true, nil
}

// parseTime reads a required timestamp field, writing a 400 on failure.
func parseTime(c echo.Context, field, value string) (pgtype.Timestamptz, bool, error) {
	t, err := utility.ParseTimestamp(value)
	if err != nil {
		return pgtype.Timestamptz{}, false, c.JSON(http.StatusBadRequest, map[string]string{"error": field + " must be a valid date"})
	}
	return utility.Timestamptz(t), true, nil
}

// orEmpty keeps list responses as [] rather than null.
func orEmpty[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}

func unauthorized(c echo.Context) error {
	return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Unauthorized"})
}
