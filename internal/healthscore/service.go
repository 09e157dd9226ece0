package healthscore

import (
	"context"
	"fmt"
	"time"

	"HealthCompanion/internal/database"
	"HealthCompanion/internal/utility"

	"golang.org/x/sync/errgroup"
)

// Window bounds the time-scoped inputs of the score.
const Window = 30 * 24 * time.Hour

// Gather fetches everything Calculate needs, concurrently. Vitals,
// appointments and the log tables are limited to records created inside
// Window; symptoms and active medications are not time-bounded.
func Gather(ctx context.Context, q database.Querier, userID string, now time.Time) (Snapshot, error) {
	since := utility.Timestamptz(now.Add(-Window))
	var snap Snapshot

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		rows, err := q.ListVitalSignsSince(gCtx, database.ListVitalSignsSinceParams{UserID: userID, Since: since})
		if err != nil {
			return fmt.Errorf("vitals: %w", err)
		}
		snap.Vitals = rows
		return nil
	})
	g.Go(func() error {
		rows, err := q.ListSymptoms(gCtx, userID)
		if err != nil {
			return fmt.Errorf("symptoms: %w", err)
		}
		snap.Symptoms = rows
		return nil
	})
	g.Go(func() error {
		rows, err := q.ListActiveMedications(gCtx, userID)
		if err != nil {
			return fmt.Errorf("medications: %w", err)
		}
		snap.Medications = rows
		return nil
	})
	g.Go(func() error {
		rows, err := q.ListAppointmentsSince(gCtx, database.ListAppointmentsSinceParams{UserID: userID, Since: since})
		if err != nil {
			return fmt.Errorf("appointments: %w", err)
		}
		snap.Appointments = rows
		return nil
	})
	g.Go(func() error {
		rows, err := q.ListFoodLogsSince(gCtx, database.ListFoodLogsSinceParams{UserID: userID, Since: since})
		if err != nil {
			return fmt.Errorf("food logs: %w", err)
		}
		snap.FoodLogs = rows
		return nil
	})
	g.Go(func() error {
		rows, err := q.ListExerciseLogsSince(gCtx, database.ListExerciseLogsSinceParams{UserID: userID, Since: since})
		if err != nil {
			return fmt.Errorf("exercise logs: %w", err)
		}
		snap.ExerciseLogs = rows
		return nil
	})
	g.Go(func() error {
		rows, err := q.ListSleepLogsSince(gCtx, database.ListSleepLogsSinceParams{UserID: userID, Since: since})
		if err != nil {
			return fmt.Errorf("sleep logs: %w", err)
		}
		snap.SleepLogs = rows
		return nil
	})
	g.Go(func() error {
		rows, err := q.ListMoodEntriesSince(gCtx, database.ListMoodEntriesSinceParams{UserID: userID, Since: since})
		if err != nil {
			return fmt.Errorf("mood entries: %w", err)
		}
		snap.MoodEntries = rows
		return nil
	})

	if err := g.Wait(); err != nil {
		return Snapshot{}, err
	}
	return snap, nil
}

// Recalculate scores the user's current data and stores a new row stamped now.
func Recalculate(ctx context.Context, q database.Querier, userID string, now time.Time) (database.HealthScore, error) {
	snap, err := Gather(ctx, q, userID, now)
	if err != nil {
		return database.HealthScore{}, fmt.Errorf("gather health data: %w", err)
	}

	b := Calculate(snap)
	score, err := q.CreateHealthScore(ctx, database.CreateHealthScoreParams{
		UserID:       userID,
		Overall:      b.Overall,
		Physical:     b.Physical,
		Mental:       b.Mental,
		Nutrition:    b.Nutrition,
		Exercise:     b.Exercise,
		Sleep:        b.Sleep,
		Stress:       b.Stress,
		Preventive:   b.Preventive,
		Social:       b.Social,
		CalculatedAt: utility.Timestamptz(now),
	})
	if err != nil {
		return database.HealthScore{}, fmt.Errorf("store health score: %w", err)
	}
	return score, nil
}
