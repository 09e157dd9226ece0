package tracking

import (
	"net/http"

	"HealthCompanion/internal/database"
	"HealthCompanion/internal/utility"

	"github.com/labstack/echo/v4"
)

// Page sizes for the log listings.
const (
	moodListLimit      = 50
	sleepListLimit     = 30
	nutritionListLimit = 100
	exerciseListLimit  = 100
	painListLimit      = 100
)

type CreateMoodRequest struct {
	Mood     string   `json:"mood" validate:"required,oneof=great good okay bad terrible"`
	Energy   int32    `json:"energy" validate:"required,min=1,max=10"`
	Stress   int32    `json:"stress" validate:"required,min=1,max=10"`
	Anxiety  *int32   `json:"anxiety" validate:"omitempty,min=1,max=10"`
	Sleep    *float64 `json:"sleep" validate:"omitempty,min=0,max=24"`
	Notes    *string  `json:"notes" validate:"omitempty,max=2000"`
	LoggedAt string   `json:"logged_at" validate:"required"`
}

func GetMoodEntriesHandler(c echo.Context) error {
	userID, err := utility.GetUserIDFromContext(c)
	if err != nil {
		return unauthorized(c)
	}

	entries, err := store.ListMoodEntries(c.Request().Context(), database.ListMoodEntriesParams{
		UserID: userID,
		Limit:  moodListLimit,
	})
	if err != nil {
		utility.Logger(c).Error().Err(err).Msg("Failed to fetch mood entries")
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch mood entries"})
	}
	return c.JSON(http.StatusOK, orEmpty(entries))
}

func CreateMoodEntryHandler(c echo.Context) error {
	userID, err := utility.GetUserIDFromContext(c)
	if err != nil {
		return unauthorized(c)
	}

	var req CreateMoodRequest
	if ok, err := bindRequest(c, &req); !ok {
		return err
	}
	loggedAt, ok, err := parseTime(c, "logged_at", req.LoggedAt)
	if !ok {
		return err
	}

	entry, err := store.CreateMoodEntry(c.Request().Context(), database.CreateMoodEntryParams{
		UserID:   userID,
		Mood:     req.Mood,
		Energy:   req.Energy,
		Stress:   req.Stress,
		Anxiety:  utility.Int4FromPtr(req.Anxiety),
		Sleep:    utility.Float8FromPtr(req.Sleep),
		Notes:    utility.TextFromPtr(req.Notes),
		LoggedAt: loggedAt,
	})
	if err != nil {
		utility.Logger(c).Error().Err(err).Msg("Failed to create mood entry")
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to create mood entry"})
	}

	utility.Dashboards.Notify(userID, "mood.changed")
	return c.JSON(http.StatusCreated, entry)
}

func DeleteMoodEntryHandler(c echo.Context) error {
	return deleteOwned(c, deletion[database.MoodEntry]{
		noun:  "Mood entry",
		event: "mood.changed",
		get:   store.GetMoodEntry,
		del:   store.DeleteMoodEntry,
		owner: func(m database.MoodEntry) string { return m.UserID },
	})
}

type CreateSleepRequest struct {
	BedTime    string   `json:"bed_time" validate:"required"`
	WakeTime   string   `json:"wake_time" validate:"required"`
	TotalHours *float64 `json:"total_hours" validate:"omitempty,gt=0,max=24"`
	Quality    int32    `json:"quality" validate:"required,min=1,max=10"`
	DeepSleep  *float64 `json:"deep_sleep" validate:"omitempty,min=0,max=24"`
	RemSleep   *float64 `json:"rem_sleep" validate:"omitempty,min=0,max=24"`
	Awakenings *int32   `json:"awakenings" validate:"omitempty,min=0,max=100"`
	Notes      *string  `json:"notes" validate:"omitempty,max=2000"`
}

func GetSleepLogsHandler(c echo.Context) error {
	userID, err := utility.GetUserIDFromContext(c)
	if err != nil {
		return unauthorized(c)
	}

	logs, err := store.ListSleepLogs(c.Request().Context(), database.ListSleepLogsParams{
		UserID: userID,
		Limit:  sleepListLimit,
	})
	if err != nil {
		utility.Logger(c).Error().Err(err).Msg("Failed to fetch sleep logs")
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch sleep logs"})
	}
	return c.JSON(http.StatusOK, orEmpty(logs))
}

// CreateSleepLogHandler records a night. total_hours defaults to the span
// between bed and wake time.
func CreateSleepLogHandler(c echo.Context) error {
	userID, err := utility.GetUserIDFromContext(c)
	if err != nil {
		return unauthorized(c)
	}

	var req CreateSleepRequest
	if ok, err := bindRequest(c, &req); !ok {
		return err
	}
	bed, ok, err := parseTime(c, "bed_time", req.BedTime)
	if !ok {
		return err
	}
	wake, ok, err := parseTime(c, "wake_time", req.WakeTime)
	if !ok {
		return err
	}
	if !wake.Time.After(bed.Time) {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "wake_time must be after bed_time"})
	}
	total := wake.Time.Sub(bed.Time).Hours()
	if req.TotalHours != nil {
		total = *req.TotalHours
	}

	log, err := store.CreateSleepLog(c.Request().Context(), database.CreateSleepLogParams{
		UserID:     userID,
		BedTime:    bed,
		WakeTime:   wake,
		TotalHours: total,
		Quality:    req.Quality,
		DeepSleep:  utility.Float8FromPtr(req.DeepSleep),
		RemSleep:   utility.Float8FromPtr(req.RemSleep),
		Awakenings: utility.Int4FromPtr(req.Awakenings),
		Notes:      utility.TextFromPtr(req.Notes),
	})
	if err != nil {
		utility.Logger(c).Error().Err(err).Msg("Failed to create sleep log")
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to create sleep log"})
	}

	utility.Dashboards.Notify(userID, "sleep.changed")
	return c.JSON(http.StatusCreated, log)
}

func DeleteSleepLogHandler(c echo.Context) error {
	return deleteOwned(c, deletion[database.SleepLog]{
		noun:  "Sleep log",
		event: "sleep.changed",
		get:   store.GetSleepLog,
		del:   store.DeleteSleepLog,
		owner: func(l database.SleepLog) string { return l.UserID },
	})
}

type CreateFoodLogRequest struct {
	MealType   string   `json:"meal_type" validate:"required,oneof=breakfast lunch dinner snack"`
	FoodName   string   `json:"food_name" validate:"required,max=200"`
	Calories   *int32   `json:"calories" validate:"omitempty,min=0,max=20000"`
	Protein    *float64 `json:"protein" validate:"omitempty,min=0"`
	Carbs      *float64 `json:"carbs" validate:"omitempty,min=0"`
	Fat        *float64 `json:"fat" validate:"omitempty,min=0"`
	Notes      *string  `json:"notes" validate:"omitempty,max=2000"`
	ConsumedAt string   `json:"consumed_at" validate:"required"`
}

func GetFoodLogsHandler(c echo.Context) error {
	userID, err := utility.GetUserIDFromContext(c)
	if err != nil {
		return unauthorized(c)
	}

	logs, err := store.ListFoodLogs(c.Request().Context(), database.ListFoodLogsParams{
		UserID: userID,
		Limit:  nutritionListLimit,
	})
	if err != nil {
		utility.Logger(c).Error().Err(err).Msg("Failed to fetch food logs")
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch food logs"})
	}
	return c.JSON(http.StatusOK, orEmpty(logs))
}

func CreateFoodLogHandler(c echo.Context) error {
	userID, err := utility.GetUserIDFromContext(c)
	if err != nil {
		return unauthorized(c)
	}

	var req CreateFoodLogRequest
	if ok, err := bindRequest(c, &req); !ok {
		return err
	}
	consumedAt, ok, err := parseTime(c, "consumed_at", req.ConsumedAt)
	if !ok {
		return err
	}

	log, err := store.CreateFoodLog(c.Request().Context(), database.CreateFoodLogParams{
		UserID:     userID,
		MealType:   req.MealType,
		FoodName:   req.FoodName,
		Calories:   utility.Int4FromPtr(req.Calories),
		Protein:    utility.Float8FromPtr(req.Protein),
		Carbs:      utility.Float8FromPtr(req.Carbs),
		Fat:        utility.Float8FromPtr(req.Fat),
		Notes:      utility.TextFromPtr(req.Notes),
		ConsumedAt: consumedAt,
	})
	if err != nil {
		utility.Logger(c).Error().Err(err).Msg("Failed to create food log")
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to create food log"})
	}

	utility.Dashboards.Notify(userID, "nutrition.changed")
	return c.JSON(http.StatusCreated, log)
}

func DeleteFoodLogHandler(c echo.Context) error {
	return deleteOwned(c, deletion[database.FoodLog]{
		noun:  "Food log",
		event: "nutrition.changed",
		get:   store.GetFoodLog,
		del:   store.DeleteFoodLog,
		owner: func(l database.FoodLog) string { return l.UserID },
	})
}

type CreateExerciseRequest struct {
	ExerciseType string   `json:"exercise_type" validate:"required,oneof=cardio strength flexibility sports"`
	Activity     string   `json:"activity" validate:"required,max=200"`
	Duration     int32    `json:"duration" validate:"required,min=1,max=1440"`
	Intensity    string   `json:"intensity" validate:"required,oneof=light moderate vigorous"`
	Calories     *int32   `json:"calories" validate:"omitempty,min=0,max=20000"`
	Distance     *float64 `json:"distance" validate:"omitempty,min=0"`
	Notes        *string  `json:"notes" validate:"omitempty,max=2000"`
	PerformedAt  string   `json:"performed_at" validate:"required"`
}

func GetExerciseLogsHandler(c echo.Context) error {
	userID, err := utility.GetUserIDFromContext(c)
	if err != nil {
		return unauthorized(c)
	}

	logs, err := store.ListExerciseLogs(c.Request().Context(), database.ListExerciseLogsParams{
		UserID: userID,
		Limit:  exerciseListLimit,
	})
	if err != nil {
		utility.Logger(c).Error().Err(err).Msg("Failed to fetch exercise logs")
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch exercise logs"})
	}
	return c.JSON(http.StatusOK, orEmpty(logs))
}

func CreateExerciseLogHandler(c echo.Context) error {
	userID, err := utility.GetUserIDFromContext(c)
	if err != nil {
		return unauthorized(c)
	}

	var req CreateExerciseRequest
	if ok, err := bindRequest(c, &req); !ok {
		return err
	}
	performedAt, ok, err := parseTime(c, "performed_at", req.PerformedAt)
	if !ok {
		return err
	}

	log, err := store.CreateExerciseLog(c.Request().Context(), database.CreateExerciseLogParams{
		UserID:       userID,
		ExerciseType: req.ExerciseType,
		Activity:     req.Activity,
		Duration:     req.Duration,
		Intensity:    req.Intensity,
		Calories:     utility.Int4FromPtr(req.Calories),
		Distance:     utility.Float8FromPtr(req.Distance),
		Notes:        utility.TextFromPtr(req.Notes),
		PerformedAt:  performedAt,
	})
	if err != nil {
		utility.Logger(c).Error().Err(err).Msg("Failed to create exercise log")
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to create exercise log"})
	}

	utility.Dashboards.Notify(userID, "exercise.changed")
	return c.JSON(http.StatusCreated, log)
}

func DeleteExerciseLogHandler(c echo.Context) error {
	return deleteOwned(c, deletion[database.ExerciseLog]{
		noun:  "Exercise log",
		event: "exercise.changed",
		get:   store.GetExerciseLog,
		del:   store.DeleteExerciseLog,
		owner: func(l database.ExerciseLog) string { return l.UserID },
	})
}

type CreatePainLogRequest struct {
	BodyPart   string  `json:"body_part" validate:"required,max=100"`
	Intensity  int32   `json:"intensity" validate:"required,min=1,max=10"`
	Quality    *string `json:"quality" validate:"omitempty,max=200"`
	Triggers   *string `json:"triggers" validate:"omitempty,max=1000"`
	RelievedBy *string `json:"relieved_by" validate:"omitempty,max=1000"`
	Notes      *string `json:"notes" validate:"omitempty,max=2000"`
	LoggedAt   string  `json:"logged_at" validate:"required"`
}

func GetPainLogsHandler(c echo.Context) error {
	userID, err := utility.GetUserIDFromContext(c)
	if err != nil {
		return unauthorized(c)
	}

	logs, err := store.ListPainLogs(c.Request().Context(), database.ListPainLogsParams{
		UserID: userID,
		Limit:  painListLimit,
	})
	if err != nil {
		utility.Logger(c).Error().Err(err).Msg("Failed to fetch pain logs")
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch pain logs"})
	}
	return c.JSON(http.StatusOK, orEmpty(logs))
}

func CreatePainLogHandler(c echo.Context) error {
	userID, err := utility.GetUserIDFromContext(c)
	if err != nil {
		return unauthorized(c)
	}

	var req CreatePainLogRequest
	if ok, err := bindRequest(c, &req); !ok {
		return err
	}
	loggedAt, ok, err := parseTime(c, "logged_at", req.LoggedAt)
	if !ok {
		return err
	}

	log, err := store.CreatePainLog(c.Request().Context(), database.CreatePainLogParams{
		UserID:     userID,
		BodyPart:   req.BodyPart,
		Intensity:  req.Intensity,
		Quality:    utility.TextFromPtr(req.Quality),
		Triggers:   utility.TextFromPtr(req.Triggers),
		RelievedBy: utility.TextFromPtr(req.RelievedBy),
		Notes:      utility.TextFromPtr(req.Notes),
		LoggedAt:   loggedAt,
	})
	if err != nil {
		utility.Logger(c).Error().Err(err).Msg("Failed to create pain log")
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to create pain log"})
	}

	utility.Dashboards.Notify(userID, "pain.changed")
	return c.JSON(http.StatusCreated, log)
}

func DeletePainLogHandler(c echo.Context) error {
	return deleteOwned(c, deletion[database.PainLog]{
		noun:  "Pain log",
		event: "pain.changed",
		get:   store.GetPainLog,
		del:   store.DeletePainLog,
		owner: func(l database.PainLog) string { return l.UserID },
	})
}
