/*
Package insights asks a language model to find correlations, patterns and
predictions in a user's last 90 days of tracked data. Only a compact summary
of the data is sent; the structured answer is cached per user.
*/
package insights

import (
	"HealthCompanion/internal/database"
	"HealthCompanion/internal/geminiservice"
)

type Correlation struct {
	Metric1    string  `json:"metric1"`
	Metric2    string  `json:"metric2"`
	Strength   float64 `json:"strength"`
	Direction  string  `json:"direction"`
	Confidence string  `json:"confidence"`
	Insight    string  `json:"insight"`
}

type Prediction struct {
	Category       string `json:"category"`
	Prediction     string `json:"prediction"`
	Confidence     string `json:"confidence"`
	Recommendation string `json:"recommendation"`
}

type Pattern struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Frequency   string `json:"frequency"`
	Impact      string `json:"impact"`
}

type HealthTrends struct {
	Improving []string `json:"improving"`
	Declining []string `json:"declining"`
	Stable    []string `json:"stable"`
}

type DataQuality struct {
	Score   int    `json:"score"`
	Message string `json:"message"`
}

// Insights is the model's analysis plus our own data-quality rating.
type Insights struct {
	Correlations    []Correlation `json:"correlations"`
	Predictions     []Prediction  `json:"predictions"`
	Patterns        []Pattern     `json:"patterns"`
	Recommendations []string      `json:"recommendations"`
	HealthTrends    HealthTrends  `json:"health_trends"`
	DataQuality     DataQuality   `json:"data_quality"`
}

// Empty is returned before anything has been generated for a user.
func Empty() Insights {
	return Insights{
		Correlations:    []Correlation{},
		Predictions:     []Prediction{},
		Patterns:        []Pattern{},
		Recommendations: []string{},
		HealthTrends:    HealthTrends{Improving: []string{}, Declining: []string{}, Stable: []string{}},
		DataQuality:     DataQuality{Score: 0, Message: "Generate insights to see personalized analysis"},
	}
}

// RateDataQuality scores coverage as one point per record, capped at 100.
func RateDataQuality(points int) DataQuality {
	score := min(points, 100)
	var msg string
	switch {
	case score >= 70:
		msg = "Excellent data coverage for accurate insights"
	case score >= 40:
		msg = "Good data coverage. Track more metrics for deeper insights"
	default:
		msg = "Limited data. Continue tracking to unlock more insights"
	}
	return DataQuality{Score: score, Message: msg}
}

// Dataset is the raw material for one analysis.
type Dataset struct {
	User         database.User
	Vitals       []database.VitalSign
	Symptoms     []database.Symptom
	MoodEntries  []database.MoodEntry
	SleepLogs    []database.SleepLog
	ExerciseLogs []database.ExerciseLog
	FoodLogs     []database.FoodLog
	PainLogs     []database.PainLog
}

func (d Dataset) Points() int {
	return len(d.Vitals) + len(d.Symptoms) + len(d.MoodEntries) + len(d.SleepLogs) +
		len(d.ExerciseLogs) + len(d.FoodLogs) + len(d.PainLogs)
}

type summaryUser struct {
	Age *int32  `json:"age"`
	Sex *string `json:"sex"`
}

type summaryMetrics struct {
	VitalsCount       int `json:"vitals_count"`
	SymptomsCount     int `json:"symptoms_count"`
	ActiveSymptoms    int `json:"active_symptoms"`
	MoodEntriesCount  int `json:"mood_entries_count"`
	SleepLogsCount    int `json:"sleep_logs_count"`
	ExerciseLogsCount int `json:"exercise_logs_count"`
	FoodLogsCount     int `json:"food_logs_count"`
	PainLogsCount     int `json:"pain_logs_count"`
}

type recentMood struct {
	Mood   string `json:"mood"`
	Energy int32  `json:"energy"`
	Stress int32  `json:"stress"`
}

type recentSleep struct {
	Hours   float64 `json:"hours"`
	Quality int32   `json:"quality"`
}

type recentExercise struct {
	Type     string `json:"type"`
	Duration int32  `json:"duration"`
}

type activePain struct {
	BodyPart  string `json:"body_part"`
	Intensity int32  `json:"intensity"`
}

// Summary is what the model actually sees.
type Summary struct {
	User           summaryUser      `json:"user"`
	Metrics        summaryMetrics   `json:"metrics"`
	RecentMoods    []recentMood     `json:"recent_moods"`
	RecentSleep    []recentSleep    `json:"recent_sleep"`
	RecentExercise []recentExercise `json:"recent_exercise"`
	ActivePain     []activePain     `json:"active_pain"`
}

const (
	recentLimit        = 7
	activePainLimit    = 5
	activePainMinLevel = 5
)

// Summarize reduces a dataset to counts and a few recent samples. The log
// slices must be newest first.
func Summarize(d Dataset) Summary {
	s := Summary{
		RecentMoods:    []recentMood{},
		RecentSleep:    []recentSleep{},
		RecentExercise: []recentExercise{},
		ActivePain:     []activePain{},
	}
	if d.User.Age.Valid {
		s.User.Age = &d.User.Age.Int32
	}
	if d.User.Sex.Valid {
		s.User.Sex = &d.User.Sex.String
	}

	active := 0
	for _, sym := range d.Symptoms {
		if !sym.Resolved {
			active++
		}
	}
	s.Metrics = summaryMetrics{
		VitalsCount:       len(d.Vitals),
		SymptomsCount:     len(d.Symptoms),
		ActiveSymptoms:    active,
		MoodEntriesCount:  len(d.MoodEntries),
		SleepLogsCount:    len(d.SleepLogs),
		ExerciseLogsCount: len(d.ExerciseLogs),
		FoodLogsCount:     len(d.FoodLogs),
		PainLogsCount:     len(d.PainLogs),
	}

	for _, m := range head(d.MoodEntries, recentLimit) {
		s.RecentMoods = append(s.RecentMoods, recentMood{Mood: m.Mood, Energy: m.Energy, Stress: m.Stress})
	}
	for _, l := range head(d.SleepLogs, recentLimit) {
		s.RecentSleep = append(s.RecentSleep, recentSleep{Hours: l.TotalHours, Quality: l.Quality})
	}
	for _, e := range head(d.ExerciseLogs, recentLimit) {
		s.RecentExercise = append(s.RecentExercise, recentExercise{Type: e.ExerciseType, Duration: e.Duration})
	}
	for _, p := range d.PainLogs {
		if len(s.ActivePain) == activePainLimit {
			break
		}
		if p.Intensity >= activePainMinLevel {
			s.ActivePain = append(s.ActivePain, activePain{BodyPart: p.BodyPart, Intensity: p.Intensity})
		}
	}
	return s
}

func head[T any](s []T, n int) []T {
	if len(s) > n {
		return s[:n]
	}
	return s
}

const systemPrompt = `You are an AI health insights analyst. Analyze the user's health data and provide actionable insights in JSON format. Be specific, evidence-based, and helpful.`

const userPromptTemplate = `Analyze this health data and provide insights:

%s

Provide 2-4 items in each category. Be specific and actionable. Base insights on the actual data provided.`

var confidence = geminiservice.Enum("How sure the analysis is", "High", "Medium", "Low")

// insightsSchema constrains the model's answer to the Insights shape.
var insightsSchema = geminiservice.Object(map[string]*geminiservice.GeminiSchema{
	"correlations": geminiservice.ArrayOf("Pairs of metrics that move together",
		geminiservice.Object(map[string]*geminiservice.GeminiSchema{
			"metric1":    geminiservice.String("First metric, e.g. 'Sleep Hours'"),
			"metric2":    geminiservice.String("Second metric, e.g. 'Energy Levels'"),
			"strength":   geminiservice.Number("Correlation strength between 0 and 1"),
			"direction":  geminiservice.Enum("Sign of the relationship", "positive", "negative"),
			"confidence": confidence,
			"insight":    geminiservice.String("One sentence explaining the relationship"),
		})),
	"predictions": geminiservice.ArrayOf("Short-term expectations drawn from recent data",
		geminiservice.Object(map[string]*geminiservice.GeminiSchema{
			"category":       geminiservice.String("Area affected, e.g. 'Energy'"),
			"prediction":     geminiservice.String("What is likely to happen"),
			"confidence":     confidence,
			"recommendation": geminiservice.String("One concrete action"),
		})),
	"patterns": geminiservice.ArrayOf("Recurring behaviours",
		geminiservice.Object(map[string]*geminiservice.GeminiSchema{
			"title":       geminiservice.String("Short name of the pattern"),
			"description": geminiservice.String("What the pattern is, with numbers where possible"),
			"frequency":   geminiservice.String("e.g. 'Weekly'"),
			"impact":      geminiservice.Enum("Health impact", "High", "Moderate", "Low"),
		})),
	"recommendations": geminiservice.ArrayOf("Specific, actionable advice",
		geminiservice.String("")),
	"health_trends": geminiservice.Object(map[string]*geminiservice.GeminiSchema{
		"improving": geminiservice.ArrayOf("Metrics getting better", geminiservice.String("")),
		"declining": geminiservice.ArrayOf("Metrics getting worse", geminiservice.String("")),
		"stable":    geminiservice.ArrayOf("Metrics holding steady", geminiservice.String("")),
	}),
})
