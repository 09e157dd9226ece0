/*
Package user implements profile management and account-level operations
for the signed-in user: reading and editing the health profile, changing
the password and exporting every record the user owns.
*/
package user

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"HealthCompanion/internal/database"
	"HealthCompanion/internal/utility"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/sync/errgroup"
)

var queries database.Querier

/* =================================================================================
							DTOs (Data Transfer Objects)
=================================================================================*/

// UpdateProfileRequest carries a partial profile update. Absent fields are
// left unchanged; an empty list clears the stored one.
type UpdateProfileRequest struct {
	Name        *string  `json:"name" validate:"omitempty,min=1,max=100"`
	Age         *int32   `json:"age" validate:"omitempty,min=0,max=130"`
	Sex         *string  `json:"sex" validate:"omitempty,oneof=male female other"`
	BloodType   *string  `json:"blood_type" validate:"omitempty,oneof=A+ A- B+ B- AB+ AB- O+ O-"`
	Conditions  []string `json:"conditions" validate:"omitempty,max=50,dive,max=200"`
	Allergies   []string `json:"allergies" validate:"omitempty,max=50,dive,max=200"`
	HealthGoals []string `json:"health_goals" validate:"omitempty,max=50,dive,max=200"`
}

// UpdatePasswordRequest changes the password of an email/password account.
type UpdatePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,min=8,max=72"`
	ConfirmPassword string `json:"confirm_password" validate:"required"`
}

// ProfileResponse is the user record with list fields never null.
type ProfileResponse struct {
	database.User
	HasPassword bool `json:"has_password"`
}

// UserDataAllResponse is the full export of a user's records.
type UserDataAllResponse struct {
	Profile           ProfileResponse             `json:"profile"`
	VitalSigns        []database.VitalSign        `json:"vital_signs"`
	Symptoms          []database.Symptom          `json:"symptoms"`
	Medications       []database.Medication       `json:"medications"`
	Appointments      []database.Appointment      `json:"appointments"`
	MoodEntries       []database.MoodEntry        `json:"mood_entries"`
	SleepLogs         []database.SleepLog         `json:"sleep_logs"`
	FoodLogs          []database.FoodLog          `json:"food_logs"`
	ExerciseLogs      []database.ExerciseLog      `json:"exercise_logs"`
	PainLogs          []database.PainLog          `json:"pain_logs"`
	LabResults        []database.LabResult        `json:"lab_results"`
	EmergencyContacts []database.EmergencyContact `json:"emergency_contacts"`
	ExportedAt        time.Time                   `json:"exported_at"`
}

/* =================================================================================
								INITIALIZATION
=================================================================================*/

func InitUserPackage(q database.Querier) {
	queries = q
	log.Info().Msg("User package initialized.")
}

/* =================================================================================
								PROFILE HANDLERS
=================================================================================*/

// GetUserProfileHandler returns the authenticated user's profile.
func GetUserProfileHandler(c echo.Context) error {
	userID, err := utility.GetUserIDFromContext(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Unauthorized"})
	}

	user, err := queries.GetUserByID(c.Request().Context(), userID)
	if err != nil {
		if database.IsNotFound(err) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "User not found"})
		}
		utility.Logger(c).Error().Err(err).Msg("Failed to fetch profile")
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch profile"})
	}

	return c.JSON(http.StatusOK, mapToProfileResponse(user))
}

// UpdateUserProfileHandler applies a partial update to the health profile.
func UpdateUserProfileHandler(c echo.Context) error {
	userID, err := utility.GetUserIDFromContext(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Unauthorized"})
	}

	var req UpdateProfileRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}
	if req.Name != nil {
		trimmed := strings.TrimSpace(*req.Name)
		if trimmed == "" {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "name cannot be empty"})
		}
		req.Name = &trimmed
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": utility.ValidationMessage(err)})
	}

	updated, err := queries.UpdateUserProfile(c.Request().Context(), database.UpdateUserProfileParams{
		UserID:      userID,
		Name:        utility.TextFromPtr(req.Name),
		Age:         utility.Int4FromPtr(req.Age),
		Sex:         utility.TextFromPtr(req.Sex),
		BloodType:   utility.TextFromPtr(req.BloodType),
		Conditions:  trimAll(req.Conditions),
		Allergies:   trimAll(req.Allergies),
		HealthGoals: trimAll(req.HealthGoals),
	})
	if err != nil {
		if database.IsNotFound(err) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "User not found"})
		}
		utility.Logger(c).Error().Err(err).Msg("Failed to update profile")
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Update failed"})
	}

	utility.Dashboards.Notify(userID, "profile.changed")
	return c.JSON(http.StatusOK, mapToProfileResponse(updated))
}

// UpdatePasswordHandler changes the password and signs out every session.
// Accounts created through Google have no password to change.
func UpdatePasswordHandler(c echo.Context) error {
	ctx := c.Request().Context()
	userID, err := utility.GetUserIDFromContext(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Unauthorized"})
	}

	user, err := queries.GetUserByID(ctx, userID)
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "User not found"})
	}
	if !user.PasswordHash.Valid {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "OAuth accounts must manage passwords via provider"})
	}

	var req UpdatePasswordRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": utility.ValidationMessage(err)})
	}
	if err := validatePasswordUpdate(req, user.PasswordHash.String); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		utility.Logger(c).Error().Err(err).Msg("Failed to hash password")
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to update password"})
	}
	if err := queries.UpdateUserPassword(ctx, database.UpdateUserPasswordParams{
		UserID:       userID,
		PasswordHash: pgtype.Text{String: string(hashed), Valid: true},
	}); err != nil {
		utility.Logger(c).Error().Err(err).Msg("Failed to update password")
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to update password"})
	}
	if err := queries.RevokeAllUserRefreshTokens(ctx, userID); err != nil {
		utility.Logger(c).Error().Err(err).Msg("Failed to revoke sessions after password change")
	}

	return c.JSON(http.StatusOK, map[string]string{"message": "Password updated. Please login again."})
}

/* =================================================================================
								DATA EXPORT
=================================================================================*/

// GetUserDataAllHandler gathers every record the user owns in one response.
// The reads run concurrently; any failure fails the export.
func GetUserDataAllHandler(c echo.Context) error {
	userID, err := utility.GetUserIDFromContext(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Unauthorized"})
	}

	var (
		res   = UserDataAllResponse{ExportedAt: time.Now().UTC()}
		user  database.User
		epoch = utility.Timestamptz(time.Unix(0, 0))
	)

	g, ctx := errgroup.WithContext(c.Request().Context())
	g.Go(func() (err error) { user, err = queries.GetUserByID(ctx, userID); return err })
	g.Go(func() (err error) { res.VitalSigns, err = queries.ListVitalSigns(ctx, userID); return err })
	g.Go(func() (err error) { res.Symptoms, err = queries.ListSymptoms(ctx, userID); return err })
	g.Go(func() (err error) { res.Medications, err = queries.ListMedications(ctx, userID); return err })
	g.Go(func() (err error) { res.Appointments, err = queries.ListAppointments(ctx, userID); return err })
	g.Go(func() (err error) { res.LabResults, err = queries.ListLabResults(ctx, userID); return err })
	g.Go(func() (err error) {
		res.EmergencyContacts, err = queries.ListEmergencyContacts(ctx, userID)
		return err
	})
	g.Go(func() (err error) {
		res.MoodEntries, err = queries.ListMoodEntriesSince(ctx, database.ListMoodEntriesSinceParams{UserID: userID, Since: epoch})
		return err
	})
	g.Go(func() (err error) {
		res.SleepLogs, err = queries.ListSleepLogsSince(ctx, database.ListSleepLogsSinceParams{UserID: userID, Since: epoch})
		return err
	})
	g.Go(func() (err error) {
		res.FoodLogs, err = queries.ListFoodLogsSince(ctx, database.ListFoodLogsSinceParams{UserID: userID, Since: epoch})
		return err
	})
	g.Go(func() (err error) {
		res.ExerciseLogs, err = queries.ListExerciseLogsSince(ctx, database.ListExerciseLogsSinceParams{UserID: userID, Since: epoch})
		return err
	})
	g.Go(func() (err error) {
		res.PainLogs, err = queries.ListPainLogsSince(ctx, database.ListPainLogsSinceParams{UserID: userID, Since: epoch})
		return err
	})

	if err := g.Wait(); err != nil {
		if database.IsNotFound(err) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "User not found"})
		}
		utility.Logger(c).Error().Err(err).Msg("Failed to export user data")
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to export data"})
	}

	res.Profile = mapToProfileResponse(user)
	fillEmpty(&res)

	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="health-data.json"`)
	return c.JSON(http.StatusOK, res)
}

/* =================================================================================
								HELPERS
=================================================================================*/

func mapToProfileResponse(u database.User) ProfileResponse {
	if u.Conditions == nil {
		u.Conditions = []string{}
	}
	if u.Allergies == nil {
		u.Allergies = []string{}
	}
	if u.HealthGoals == nil {
		u.HealthGoals = []string{}
	}
	return ProfileResponse{User: u, HasPassword: u.PasswordHash.Valid}
}

// trimAll trims every entry and drops blanks. A nil input stays nil so the
// stored list is kept.
func trimAll(items []string) []string {
	if items == nil {
		return nil
	}
	out := make([]string, 0, len(items))
	for _, it := range items {
		if it = strings.TrimSpace(it); it != "" {
			out = append(out, it)
		}
	}
	return out
}

func validatePasswordUpdate(req UpdatePasswordRequest, currentHash string) error {
	if req.NewPassword != req.ConfirmPassword {
		return errors.New("passwords do not match")
	}
	if bcrypt.CompareHashAndPassword([]byte(currentHash), []byte(req.CurrentPassword)) != nil {
		return errors.New("invalid current password")
	}
	if req.NewPassword == req.CurrentPassword {
		return errors.New("new password must differ from the current one")
	}
	return nil
}

func emptyIfNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}

func fillEmpty(r *UserDataAllResponse) {
	r.VitalSigns = emptyIfNil(r.VitalSigns)
	r.Symptoms = emptyIfNil(r.Symptoms)
	r.Medications = emptyIfNil(r.Medications)
	r.Appointments = emptyIfNil(r.Appointments)
	r.MoodEntries = emptyIfNil(r.MoodEntries)
	r.SleepLogs = emptyIfNil(r.SleepLogs)
	r.FoodLogs = emptyIfNil(r.FoodLogs)
	r.ExerciseLogs = emptyIfNil(r.ExerciseLogs)
	r.PainLogs = emptyIfNil(r.PainLogs)
	r.LabResults = emptyIfNil(r.LabResults)
	r.EmergencyContacts = emptyIfNil(r.EmergencyContacts)
}
