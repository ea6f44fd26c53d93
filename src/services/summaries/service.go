package summaries

import (
	DB "Backend-KidCheckin/src/database"
	"Backend-KidCheckin/src/models"
	"Backend-KidCheckin/src/utils"
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Apply folds one successful check-in into the summary in place. Combined
// totals are always recomputed from the parts being mutated instead of
// incremented, so a drifted stored total can never survive an update.
func Apply(s *models.AttendanceSummary, child *models.Child, program models.Program, isFirstAttendance bool) {
	if s.AgeGroups == nil {
		s.AgeGroups = make(map[string]models.AgeGroupCount, len(models.AgeGroups))
	}
	if s.Categories == nil {
		s.Categories = map[string]int{}
	}

	switch program {
	case models.ProgramP1:
		s.TotalP1++
	case models.ProgramP2:
		s.TotalP2++
	}
	s.Total = s.TotalP1 + s.TotalP2

	sessionDate, _ := time.Parse("2006-01-02", s.Date)
	group := child.AgeGroupOn(sessionDate)
	bucket := s.AgeGroups[group]
	switch program {
	case models.ProgramP1:
		bucket.P1++
	case models.ProgramP2:
		bucket.P2++
	}
	bucket.Total = bucket.P1 + bucket.P2
	s.AgeGroups[group] = bucket

	s.Categories[string(child.Category)]++

	if isFirstAttendance {
		s.NewChildrenCount++
	}
}

// ApplyCheckIn loads (or zero-initializes) the summary for the date, folds the
// check-in into it and persists it keyed by date. Called exactly once per
// successful check-in by the orchestrator; inputs are already validated there.
func ApplyCheckIn(date string, child *models.Child, program models.Program, isFirstAttendance bool) (*models.AttendanceSummary, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	summary, err := loadOrCreate(ctx, date)
	if err != nil {
		return nil, err
	}

	Apply(summary, child, program, isFirstAttendance)

	filter := bson.M{"date": date}
	update := bson.M{"$set": bson.M{
		"date":             summary.Date,
		"totalP1":          summary.TotalP1,
		"totalP2":          summary.TotalP2,
		"total":            summary.Total,
		"newChildrenCount": summary.NewChildrenCount,
		"ageGroups":        summary.AgeGroups,
		"categories":       summary.Categories,
	}}
	_, err = DB.AttendanceSummaryCollection.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	if err != nil {
		return nil, fmt.Errorf("failed to persist summary: %w", err)
	}

	// cached dashboard totals for this date are stale now
	utils.InvalidateTodayTotals(date)

	return summary, nil
}

func loadOrCreate(ctx context.Context, date string) (*models.AttendanceSummary, error) {
	var summary models.AttendanceSummary
	err := DB.AttendanceSummaryCollection.FindOne(ctx, bson.M{"date": date}).Decode(&summary)
	if err == mongo.ErrNoDocuments {
		return models.NewAttendanceSummary(date), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load summary: %w", err)
	}
	return &summary, nil
}

// GetSummaryForDate returns the aggregate for a date, or nil when no check-in
// has touched that date yet.
func GetSummaryForDate(date string) (*models.AttendanceSummary, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var summary models.AttendanceSummary
	err := DB.AttendanceSummaryCollection.FindOne(ctx, bson.M{"date": date}).Decode(&summary)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch summary: %w", err)
	}
	return &summary, nil
}

// GetTotalsForDate returns the dashboard counters for a date, served from the
// Redis cache when warm.
func GetTotalsForDate(date string) (*models.TodayTotals, error) {
	if cached := utils.GetCachedTodayTotals(date); cached != nil {
		return cached, nil
	}

	summary, err := GetSummaryForDate(date)
	if err != nil {
		return nil, err
	}

	totals := &models.TodayTotals{}
	if summary != nil {
		totals.TotalP1 = summary.TotalP1
		totals.TotalP2 = summary.TotalP2
		totals.Total = summary.Total
		totals.NewChildren = summary.NewChildrenCount
	}

	utils.CacheTodayTotals(date, totals)
	return totals, nil
}
