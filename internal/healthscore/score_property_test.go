package healthscore

import (
	"math"
	"math/rand"
	"testing"
	"time"

	"HealthCompanion/internal/database"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jaswdr/faker"
	"github.com/stretchr/testify/assert"
)

var fake = faker.NewWithSeed(rand.NewSource(20240601))

var (
	moods     = []string{"terrible", "bad", "okay", "good", "great"}
	statuses  = []string{"scheduled", "completed", "cancelled"}
	baseTime  = time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	maxCounts = 40
)

func optionalFloat(upper int) pgtype.Float8 {
	if fake.Bool() {
		return pgtype.Float8{}
	}
	return f8(float64(fake.IntBetween(0, upper)))
}

// randomSnapshot builds a month of records with values anywhere in the
// ranges the API accepts.
func randomSnapshot() Snapshot {
	var s Snapshot
	for range fake.IntBetween(0, maxCounts) {
		s.Vitals = append(s.Vitals, database.VitalSign{Type: "heart_rate"})
	}
	for range fake.IntBetween(0, 25) {
		s.Symptoms = append(s.Symptoms, database.Symptom{Resolved: fake.Bool(), Severity: int32(fake.IntBetween(1, 10))})
	}
	for range fake.IntBetween(0, 3) {
		s.Medications = append(s.Medications, database.Medication{Active: true})
	}
	for range fake.IntBetween(0, 4) {
		s.Appointments = append(s.Appointments, database.Appointment{Status: fake.RandomStringElement(statuses)})
	}
	for range fake.IntBetween(0, maxCounts) {
		s.FoodLogs = append(s.FoodLogs, database.FoodLog{
			Protein: optionalFloat(60),
			Carbs:   optionalFloat(120),
			Fat:     optionalFloat(50),
		})
	}
	for range fake.IntBetween(0, 12) {
		day := baseTime.AddDate(0, 0, -fake.IntBetween(0, 29))
		s.ExerciseLogs = append(s.ExerciseLogs, database.ExerciseLog{PerformedAt: ts(day)})
	}
	for range fake.IntBetween(0, 30) {
		s.SleepLogs = append(s.SleepLogs, database.SleepLog{
			TotalHours: float64(fake.IntBetween(0, 24)),
			Quality:    int32(fake.IntBetween(1, 10)),
		})
	}
	for range fake.IntBetween(0, 50) {
		entry := database.MoodEntry{
			Mood:   fake.RandomStringElement(moods),
			Energy: int32(fake.IntBetween(1, 10)),
			Stress: int32(fake.IntBetween(1, 10)),
		}
		if fake.Bool() {
			entry.Anxiety = pgtype.Int4{Int32: int32(fake.IntBetween(1, 10)), Valid: true}
		}
		s.MoodEntries = append(s.MoodEntries, entry)
	}
	return s
}

func TestRandomSnapshotsStayInRange(t *testing.T) {
	for i := range 500 {
		s := randomSnapshot()
		d := Score(s)
		b := Calculate(s)

		for name, v := range map[string]float64{
			"physical": d.Physical, "mental": d.Mental, "nutrition": d.Nutrition, "exercise": d.Exercise,
			"sleep": d.Sleep, "stress": d.Stress, "preventive": d.Preventive, "social": d.Social,
		} {
			if !assert.True(t, v >= 0 && v <= 100, "run %d: %s = %v", i, name, v) {
				return
			}
		}

		assert.Equal(t, int32(math.Round(d.Overall())), b.Overall, "run %d", i)
		assert.True(t, b.Overall >= 0 && b.Overall <= 100, "run %d: overall = %d", i, b.Overall)
	}
}
