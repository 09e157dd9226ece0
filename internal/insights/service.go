package insights

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"HealthCompanion/internal/database"
	"HealthCompanion/internal/geminiservice"
	"HealthCompanion/internal/utility"

	"golang.org/x/sync/errgroup"
)

// Window is how far back an analysis looks.
const Window = 90 * 24 * time.Hour

// Generator produces structured model output.
type Generator interface {
	GenerateJSON(ctx context.Context, req geminiservice.Request, out any) error
}

// Collect loads the user and their windowed records concurrently.
// Symptoms are not windowed.
func Collect(ctx context.Context, q database.Querier, userID string, now time.Time) (Dataset, error) {
	since := utility.Timestamptz(now.Add(-Window))
	var d Dataset

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		d.User, err = q.GetUserByID(gCtx, userID)
		return err
	})
	g.Go(func() (err error) {
		d.Vitals, err = q.ListVitalSignsSince(gCtx, database.ListVitalSignsSinceParams{UserID: userID, Since: since})
		return err
	})
	g.Go(func() (err error) {
		d.Symptoms, err = q.ListSymptoms(gCtx, userID)
		return err
	})
	g.Go(func() (err error) {
		d.MoodEntries, err = q.ListMoodEntriesSince(gCtx, database.ListMoodEntriesSinceParams{UserID: userID, Since: since})
		return err
	})
	g.Go(func() (err error) {
		d.SleepLogs, err = q.ListSleepLogsSince(gCtx, database.ListSleepLogsSinceParams{UserID: userID, Since: since})
		return err
	})
	g.Go(func() (err error) {
		d.ExerciseLogs, err = q.ListExerciseLogsSince(gCtx, database.ListExerciseLogsSinceParams{UserID: userID, Since: since})
		return err
	})
	g.Go(func() (err error) {
		d.FoodLogs, err = q.ListFoodLogsSince(gCtx, database.ListFoodLogsSinceParams{UserID: userID, Since: since})
		return err
	})
	g.Go(func() (err error) {
		d.PainLogs, err = q.ListPainLogsSince(gCtx, database.ListPainLogsSinceParams{UserID: userID, Since: since})
		return err
	})

	if err := g.Wait(); err != nil {
		return Dataset{}, fmt.Errorf("collect health data: %w", err)
	}
	return d, nil
}

// Analyze sends the summary of d to the model and attaches a data-quality
// rating to the answer.
func Analyze(ctx context.Context, gen Generator, d Dataset) (Insights, error) {
	summary, err := json.MarshalIndent(Summarize(d), "", "  ")
	if err != nil {
		return Insights{}, fmt.Errorf("marshal summary: %w", err)
	}

	var out Insights
	err = gen.GenerateJSON(ctx, geminiservice.Request{
		System: systemPrompt,
		Prompt: fmt.Sprintf(userPromptTemplate, summary),
		Schema: insightsSchema,
	}, &out)
	if err != nil {
		return Insights{}, fmt.Errorf("generate insights: %w", err)
	}

	out.normalize()
	out.DataQuality = RateDataQuality(d.Points())
	return out, nil
}

// normalize replaces nil slices so clients always get arrays.
func (in *Insights) normalize() {
	e := Empty()
	if in.Correlations == nil {
		in.Correlations = e.Correlations
	}
	if in.Predictions == nil {
		in.Predictions = e.Predictions
	}
	if in.Patterns == nil {
		in.Patterns = e.Patterns
	}
	if in.Recommendations == nil {
		in.Recommendations = e.Recommendations
	}
	if in.HealthTrends.Improving == nil {
		in.HealthTrends.Improving = e.HealthTrends.Improving
	}
	if in.HealthTrends.Declining == nil {
		in.HealthTrends.Declining = e.HealthTrends.Declining
	}
	if in.HealthTrends.Stable == nil {
		in.HealthTrends.Stable = e.HealthTrends.Stable
	}
}
