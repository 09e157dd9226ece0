/*
Package healthscore derives the composite 0-100 health score from a
user's recently tracked records, persists it, and serves score history
and activity metrics.
*/
package healthscore

import (
	"math"

	"HealthCompanion/internal/database"
)

// Snapshot is every record the score is computed from.
// Medications holds active medications only.
type Snapshot struct {
	Vitals       []database.VitalSign
	Symptoms     []database.Symptom
	Medications  []database.Medication
	Appointments []database.Appointment
	FoodLogs     []database.FoodLog
	ExerciseLogs []database.ExerciseLog
	SleepLogs    []database.SleepLog
	MoodEntries  []database.MoodEntry
}

// Dimensions holds the eight clamped sub-scores before rounding.
type Dimensions struct {
	Physical   float64
	Mental     float64
	Nutrition  float64
	Exercise   float64
	Sleep      float64
	Stress     float64
	Preventive float64
	Social     float64
}

// Breakdown is the persisted, rounded form of a score.
type Breakdown struct {
	Overall    int32 `json:"overall"`
	Physical   int32 `json:"physical"`
	Mental     int32 `json:"mental"`
	Nutrition  int32 `json:"nutrition"`
	Exercise   int32 `json:"exercise"`
	Sleep      int32 `json:"sleep"`
	Stress     int32 `json:"stress"`
	Preventive int32 `json:"preventive"`
	Social     int32 `json:"social"`
}

var moodValues = map[string]float64{
	"terrible": 1,
	"bad":      2,
	"okay":     3,
	"good":     4,
	"great":    5,
}

// MoodValue maps a mood label onto 1..5; unknown labels count as okay.
func MoodValue(mood string) float64 {
	if v, ok := moodValues[mood]; ok {
		return v
	}
	return 3
}

// Calculate scores a snapshot. Every dimension is clamped to [0,100] and the
// overall score is the rounded weighted sum of the unrounded dimensions.
func Calculate(s Snapshot) Breakdown {
	d := Score(s)
	return Breakdown{
		Overall:    int32(math.Round(d.Overall())),
		Physical:   round(d.Physical),
		Mental:     round(d.Mental),
		Nutrition:  round(d.Nutrition),
		Exercise:   round(d.Exercise),
		Sleep:      round(d.Sleep),
		Stress:     round(d.Stress),
		Preventive: round(d.Preventive),
		Social:     round(d.Social),
	}
}

// Overall weights: 0.15 for physical, mental, nutrition, exercise and sleep;
// 0.10 for stress and preventive care; 0.05 for social. Sums to 1.0.
func (d Dimensions) Overall() float64 {
	return (15*(d.Physical+d.Mental+d.Nutrition+d.Exercise+d.Sleep) +
		10*(d.Stress+d.Preventive) +
		5*d.Social) / 100
}

func Score(s Snapshot) Dimensions {
	return Dimensions{
		Physical:   physical(s.Vitals, s.Symptoms),
		Mental:     mental(s.MoodEntries),
		Nutrition:  nutrition(s.FoodLogs),
		Exercise:   exercise(s.ExerciseLogs),
		Sleep:      sleep(s.SleepLogs),
		Stress:     stress(s.MoodEntries),
		Preventive: preventive(s.Medications, s.Appointments),
		Social:     social(s.MoodEntries),
	}
}

func physical(vitals []database.VitalSign, symptoms []database.Symptom) float64 {
	score := 50.0
	if len(vitals) > 0 {
		score += 20
	}
	if len(vitals) > 10 {
		score += 10
	}
	for _, s := range symptoms {
		if !s.Resolved {
			score -= 5
		}
	}
	return clamp(score)
}

func mental(entries []database.MoodEntry) float64 {
	if len(entries) == 0 {
		return 50
	}
	var moodSum, stressSum float64
	for _, e := range entries {
		moodSum += MoodValue(e.Mood)
		stressSum += float64(e.Stress)
	}
	n := float64(len(entries))
	score := moodSum / n * 20
	// Stress above 5 pulls the score down, below 5 lifts it.
	score -= (stressSum/n - 5) * 5
	return clamp(score)
}

func nutrition(logs []database.FoodLog) float64 {
	score := 50.0
	switch n := len(logs); {
	case n >= 21:
		score = 90
	case n >= 14:
		score = 75
	case n >= 7:
		score = 60
	}

	if len(logs) > 0 {
		balanced := 0
		for _, l := range logs {
			if nonZero(l.Protein.Float64, l.Protein.Valid) &&
				nonZero(l.Carbs.Float64, l.Carbs.Valid) &&
				nonZero(l.Fat.Float64, l.Fat.Valid) {
				balanced++
			}
		}
		if float64(balanced) > float64(len(logs))*0.5 {
			score += 10
		}
	}
	return clamp(score)
}

func exercise(logs []database.ExerciseLog) float64 {
	var score float64
	switch n := len(logs); {
	case n >= 5:
		score = 95
	case n >= 3:
		score = 85
	case n >= 1:
		score = 65
	default:
		score = 30
	}

	days := make(map[string]struct{})
	for _, l := range logs {
		days[l.PerformedAt.Time.UTC().Format("2006-01-02")] = struct{}{}
	}
	if len(days) >= 5 {
		score = math.Min(100, score+5)
	}
	return clamp(score)
}

func sleep(logs []database.SleepLog) float64 {
	if len(logs) == 0 {
		return 50
	}
	var hours, quality float64
	for _, l := range logs {
		hours += l.TotalHours
		quality += float64(l.Quality)
	}
	n := float64(len(logs))
	avgHours := hours / n

	var score float64
	switch {
	case avgHours >= 7 && avgHours <= 9:
		score = 90
	case avgHours >= 6 && avgHours <= 10:
		score = 70
	default:
		score = 50
	}
	score += quality / n * 2
	return clamp(score)
}

func stress(entries []database.MoodEntry) float64 {
	if len(entries) == 0 {
		return 50
	}
	var stressSum, anxietySum float64
	anxietyCount := 0
	for _, e := range entries {
		stressSum += float64(e.Stress)
		if e.Anxiety.Valid {
			anxietySum += float64(e.Anxiety.Int32)
			anxietyCount++
		}
	}
	score := 100 - stressSum/float64(len(entries))*10
	if anxietyCount > 0 {
		score = (score + (100 - anxietySum/float64(anxietyCount)*10)) / 2
	}
	return clamp(score)
}

func preventive(meds []database.Medication, appts []database.Appointment) float64 {
	score := 50.0
	if len(meds) > 0 {
		score += 20
	}
	if len(appts) > 0 {
		score += 20
	}
	for _, a := range appts {
		if a.Status == "completed" {
			score += 10
			break
		}
	}
	return clamp(score)
}

func social(entries []database.MoodEntry) float64 {
	if len(entries) == 0 {
		return 60
	}
	var energy float64
	for _, e := range entries {
		energy += float64(e.Energy)
	}
	return clamp(40 + energy/float64(len(entries))*6)
}

func nonZero(v float64, valid bool) bool {
	return valid && v != 0
}

func clamp(v float64) float64 {
	return math.Max(0, math.Min(100, v))
}

func round(v float64) int32 {
	return int32(math.Round(v))
}
