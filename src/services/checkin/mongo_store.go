package checkin

import (
	DB "Backend-KidCheckin/src/database"
	"Backend-KidCheckin/src/jobs"
	"Backend-KidCheckin/src/models"
	"Backend-KidCheckin/src/services/children"
	"Backend-KidCheckin/src/services/summaries"
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// mongoChildStore adapts the children service to the orchestrator contract.
type mongoChildStore struct{}

func (mongoChildStore) GetByID(id string) (*models.Child, error) {
	child, err := children.GetChildByID(id)
	if err != nil {
		if errors.Is(err, children.ErrChildNotFound) {
			return nil, ErrChildNotFound
		}
		return nil, err
	}
	return child, nil
}

func (mongoChildStore) MarkFirstAttendance(id, date string) error {
	_, err := children.UpdateChild(id, bson.M{
		"isNew":               true,
		"firstAttendanceDate": date,
	})
	return err
}

// mongoLedger keeps attendance records in the shared attendance collection,
// upserting by the (child, date, program) composite key.
type mongoLedger struct{}

func (mongoLedger) CountPresent(date string, program models.Program) (int, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	count, err := DB.AttendanceCollection.CountDocuments(ctx, bson.M{
		"date":    date,
		"program": program,
		"status":  models.StatusPresent,
	})
	if err != nil {
		return 0, fmt.Errorf("failed to count attendance: %w", err)
	}
	return int(count), nil
}

func (mongoLedger) HasAnyPresent(childID string) (bool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	objID, err := primitive.ObjectIDFromHex(childID)
	if err != nil {
		return false, ErrChildNotFound
	}

	count, err := DB.AttendanceCollection.CountDocuments(ctx, bson.M{
		"childId": objID,
		"status":  models.StatusPresent,
	})
	if err != nil {
		return false, fmt.Errorf("failed to scan attendance history: %w", err)
	}
	return count > 0, nil
}

func (mongoLedger) Upsert(rec *models.AttendanceRecord) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	filter := bson.M{
		"childId": rec.ChildID,
		"date":    rec.Date,
		"program": rec.Program,
	}
	update := bson.M{"$set": bson.M{
		"childId":           rec.ChildID,
		"childName":         rec.ChildName,
		"date":              rec.Date,
		"program":           rec.Program,
		"status":            rec.Status,
		"uniqueCode":        rec.UniqueCode,
		"medicalCheck":      rec.MedicalCheck,
		"checkedInBy":       rec.CheckedInBy,
		"checkedInAt":       rec.CheckedInAt,
		"isFirstAttendance": rec.IsFirstAttendance,
	}}

	after := options.After
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(after)

	var saved models.AttendanceRecord
	if err := DB.AttendanceCollection.FindOneAndUpdate(ctx, filter, update, opts).Decode(&saved); err != nil {
		return fmt.Errorf("failed to upsert attendance record: %w", err)
	}
	rec.ID = saved.ID
	return nil
}

func (mongoLedger) ForDate(date string) ([]models.AttendanceRecord, error) {
	return findRecords(bson.M{"date": date})
}

func (mongoLedger) ForChild(childID string) ([]models.AttendanceRecord, error) {
	objID, err := primitive.ObjectIDFromHex(childID)
	if err != nil {
		return nil, ErrChildNotFound
	}
	return findRecords(bson.M{"childId": objID})
}

func findRecords(filter bson.M) ([]models.AttendanceRecord, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "checkedInAt", Value: 1}})
	cursor, err := DB.AttendanceCollection.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch attendance records: %w", err)
	}
	defer cursor.Close(ctx)

	var records []models.AttendanceRecord
	if err := cursor.All(ctx, &records); err != nil {
		return nil, fmt.Errorf("failed to decode attendance records: %w", err)
	}
	return records, nil
}

// mongoSummaryStore adapts the summaries service.
type mongoSummaryStore struct{}

func (mongoSummaryStore) ApplyCheckIn(date string, child *models.Child, program models.Program, isFirstAttendance bool) (*models.AttendanceSummary, error) {
	return summaries.ApplyCheckIn(date, child, program, isFirstAttendance)
}

// defaultService is the production wiring used by the package-level API.
var defaultService = &Service{
	Children:   mongoChildStore{},
	Ledger:     mongoLedger{},
	Summaries:  mongoSummaryStore{},
	ActiveDate: ActiveSessionDate,
	AfterCheckIn: func(rec *models.AttendanceRecord, tag models.TagData) {
		// printing is simulated through the job queue; a down queue must not
		// fail an otherwise durable check-in
		if err := jobs.EnqueuePrintTag(rec.ID.Hex(), tag); err != nil {
			log.Println("⚠️ Failed to enqueue tag print:", err)
		}
	},
}

// CheckInChild runs the check-in flow against the shared MongoDB stores.
func CheckInChild(childID string, program models.Program, check models.MedicalCheck, checkedInBy string) (*models.AttendanceRecord, error) {
	return defaultService.CheckInChild(childID, program, check, checkedInBy)
}

// GetAttendanceForDate returns all records for a date.
func GetAttendanceForDate(date string) ([]models.AttendanceRecord, error) {
	return defaultService.GetAttendanceForDate(date)
}

// GetAttendanceForChild returns a child's full history.
func GetAttendanceForChild(childID string) ([]models.AttendanceRecord, error) {
	return defaultService.GetAttendanceForChild(childID)
}
