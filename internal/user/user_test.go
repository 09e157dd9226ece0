package user

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"HealthCompanion/internal/database"
	"HealthCompanion/internal/utility"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type fakeQueries struct {
	database.Querier

	users       map[string]database.User
	revoked     []string
	vitals      []database.VitalSign
	failSymptom bool
}

func newFakeQueries(t *testing.T) *fakeQueries {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("Password123"), bcrypt.MinCost)
	require.NoError(t, err)
	return &fakeQueries{users: map[string]database.User{
		"u1": {
			UserID:       "u1",
			Email:        "ada@example.com",
			PasswordHash: pgtype.Text{String: string(hash), Valid: true},
			Name:         pgtype.Text{String: "Ada", Valid: true},
			Allergies:    []string{"penicillin"},
		},
		"g1": {UserID: "g1", Email: "g@example.com", Provider: pgtype.Text{String: "google", Valid: true}},
	}}
}

func (f *fakeQueries) GetUserByID(_ context.Context, id string) (database.User, error) {
	u, ok := f.users[id]
	if !ok {
		return database.User{}, pgx.ErrNoRows
	}
	return u, nil
}

func (f *fakeQueries) UpdateUserProfile(_ context.Context, arg database.UpdateUserProfileParams) (database.User, error) {
	u, ok := f.users[arg.UserID]
	if !ok {
		return database.User{}, pgx.ErrNoRows
	}
	if arg.Name.Valid {
		u.Name = arg.Name
	}
	if arg.Age.Valid {
		u.Age = arg.Age
	}
	if arg.Sex.Valid {
		u.Sex = arg.Sex
	}
	if arg.BloodType.Valid {
		u.BloodType = arg.BloodType
	}
	if arg.Conditions != nil {
		u.Conditions = arg.Conditions
	}
	if arg.Allergies != nil {
		u.Allergies = arg.Allergies
	}
	if arg.HealthGoals != nil {
		u.HealthGoals = arg.HealthGoals
	}
	f.users[arg.UserID] = u
	return u, nil
}

func (f *fakeQueries) UpdateUserPassword(_ context.Context, arg database.UpdateUserPasswordParams) error {
	u := f.users[arg.UserID]
	u.PasswordHash = arg.PasswordHash
	f.users[arg.UserID] = u
	return nil
}

func (f *fakeQueries) RevokeAllUserRefreshTokens(_ context.Context, id string) error {
	f.revoked = append(f.revoked, id)
	return nil
}

func (f *fakeQueries) ListVitalSigns(context.Context, string) ([]database.VitalSign, error) {
	return f.vitals, nil
}

func (f *fakeQueries) ListSymptoms(context.Context, string) ([]database.Symptom, error) {
	if f.failSymptom {
		return nil, errors.New("db down")
	}
	return nil, nil
}

func (f *fakeQueries) ListMedications(context.Context, string) ([]database.Medication, error) {
	return nil, nil
}

func (f *fakeQueries) ListAppointments(context.Context, string) ([]database.Appointment, error) {
	return nil, nil
}

func (f *fakeQueries) ListLabResults(context.Context, string) ([]database.LabResult, error) {
	return nil, nil
}

func (f *fakeQueries) ListEmergencyContacts(context.Context, string) ([]database.EmergencyContact, error) {
	return nil, nil
}

func (f *fakeQueries) ListMoodEntriesSince(context.Context, database.ListMoodEntriesSinceParams) ([]database.MoodEntry, error) {
	return nil, nil
}

func (f *fakeQueries) ListSleepLogsSince(context.Context, database.ListSleepLogsSinceParams) ([]database.SleepLog, error) {
	return nil, nil
}

func (f *fakeQueries) ListFoodLogsSince(context.Context, database.ListFoodLogsSinceParams) ([]database.FoodLog, error) {
	return nil, nil
}

func (f *fakeQueries) ListExerciseLogsSince(context.Context, database.ListExerciseLogsSinceParams) ([]database.ExerciseLog, error) {
	return nil, nil
}

func (f *fakeQueries) ListPainLogsSince(_ context.Context, arg database.ListPainLogsSinceParams) ([]database.PainLog, error) {
	if !arg.Since.Valid || arg.Since.Time.Unix() != 0 {
		return nil, errors.New("export must start at the epoch")
	}
	return nil, nil
}

func setup(t *testing.T) (*echo.Echo, *fakeQueries) {
	t.Helper()
	fq := newFakeQueries(t)
	InitUserPackage(fq)
	e := echo.New()
	e.Validator = utility.NewValidator()
	return e, fq
}

func call(e *echo.Echo, h echo.HandlerFunc, userID, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPut, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if userID != "" {
		c.Set("user_id", userID)
	}
	_ = h(c)
	return rec
}

func errorOf(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body["error"]
}

func TestHandlersRequireUser(t *testing.T) {
	e, _ := setup(t)
	for _, h := range []echo.HandlerFunc{
		GetUserProfileHandler, UpdateUserProfileHandler, UpdatePasswordHandler, GetUserDataAllHandler,
	} {
		rec := call(e, h, "", "{}")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	}
}

func TestGetUserProfile(t *testing.T) {
	e, _ := setup(t)

	rec := call(e, GetUserProfileHandler, "u1", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "ada@example.com", body["email"])
	assert.Equal(t, true, body["has_password"])
	assert.Equal(t, []any{}, body["conditions"])
	assert.NotContains(t, body, "password_hash")
	assert.NotContains(t, rec.Body.String(), "$2a$")

	rec = call(e, GetUserProfileHandler, "missing", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUpdateUserProfile(t *testing.T) {
	t.Run("partial update keeps other fields", func(t *testing.T) {
		e, fq := setup(t)
		rec := call(e, UpdateUserProfileHandler, "u1", `{"blood_type":"O-","conditions":[" asthma ",""],"age":36}`)
		require.Equal(t, http.StatusOK, rec.Code)

		u := fq.users["u1"]
		assert.Equal(t, "O-", u.BloodType.String)
		assert.Equal(t, []string{"asthma"}, u.Conditions)
		assert.Equal(t, int32(36), u.Age.Int32)
		assert.Equal(t, "Ada", u.Name.String)
		assert.Equal(t, []string{"penicillin"}, u.Allergies)
	})

	t.Run("empty list clears", func(t *testing.T) {
		e, fq := setup(t)
		rec := call(e, UpdateUserProfileHandler, "u1", `{"allergies":[]}`)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Empty(t, fq.users["u1"].Allergies)
	})

	cases := []struct {
		name, body, want string
	}{
		{"bad blood type", `{"blood_type":"Z+"}`, "blood_type must be one of"},
		{"bad sex", `{"sex":"unknown"}`, "sex must be one of: male, female, other"},
		{"age too high", `{"age":200}`, "age must be at most 130"},
		{"blank name", `{"name":"   "}`, "name cannot be empty"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e, _ := setup(t)
			rec := call(e, UpdateUserProfileHandler, "u1", tc.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Contains(t, errorOf(t, rec), tc.want)
		})
	}
}

func TestUpdatePassword(t *testing.T) {
	t.Run("success revokes sessions", func(t *testing.T) {
		e, fq := setup(t)
		rec := call(e, UpdatePasswordHandler, "u1",
			`{"current_password":"Password123","new_password":"Another456","confirm_password":"Another456"}`)
		require.Equal(t, http.StatusOK, rec.Code)

		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(fq.users["u1"].PasswordHash.String), []byte("Another456")))
		assert.Equal(t, []string{"u1"}, fq.revoked)
	})

	cases := []struct {
		name, user, body, want string
	}{
		{"oauth account", "g1", `{}`, "OAuth accounts must manage passwords via provider"},
		{"mismatch", "u1", `{"current_password":"Password123","new_password":"Another456","confirm_password":"Another457"}`, "passwords do not match"},
		{"wrong current", "u1", `{"current_password":"nope","new_password":"Another456","confirm_password":"Another456"}`, "invalid current password"},
		{"too short", "u1", `{"current_password":"Password123","new_password":"short","confirm_password":"short"}`, "new_password must be at least 8 characters"},
		{"unchanged", "u1", `{"current_password":"Password123","new_password":"Password123","confirm_password":"Password123"}`, "new password must differ from the current one"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e, fq := setup(t)
			rec := call(e, UpdatePasswordHandler, tc.user, tc.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, tc.want, errorOf(t, rec))
			assert.Empty(t, fq.revoked)
		})
	}
}

func TestGetUserDataAll(t *testing.T) {
	e, fq := setup(t)
	fq.vitals = []database.VitalSign{{UserID: "u1", Type: "heart_rate"}}

	rec := call(e, GetUserDataAllHandler, "u1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get(echo.HeaderContentDisposition), "health-data.json")

	var body map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.JSONEq(t, `[]`, string(body["pain_logs"]))
	assert.JSONEq(t, `[]`, string(body["emergency_contacts"]))

	var vitals []map[string]any
	require.NoError(t, json.Unmarshal(body["vital_signs"], &vitals))
	require.Len(t, vitals, 1)
	assert.Equal(t, "heart_rate", vitals[0]["type"])

	var profile map[string]any
	require.NoError(t, json.Unmarshal(body["profile"], &profile))
	assert.Equal(t, "u1", profile["user_id"])
}

func TestGetUserDataAllFailure(t *testing.T) {
	e, fq := setup(t)
	fq.failSymptom = true

	rec := call(e, GetUserDataAllHandler, "u1", "")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Failed to export data", errorOf(t, rec))

	rec = call(e, GetUserDataAllHandler, "missing", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
