package checkin

import (
	DB "Backend-KidCheckin/src/database"
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const sessionDocID = "active"

// ActiveSessionDate returns the configured session date, falling back to
// today's local date when none is set.
func ActiveSessionDate() (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var doc struct {
		Date string `bson:"date"`
	}
	err := DB.SessionCollection.FindOne(ctx, bson.M{"_id": sessionDocID}).Decode(&doc)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return time.Now().Format("2006-01-02"), nil
		}
		return "", fmt.Errorf("failed to read session date: %w", err)
	}
	return doc.Date, nil
}

// SetActiveSessionDate switches the active session date (front-desk admin op).
func SetActiveSessionDate(date string) error {
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return fmt.Errorf("invalid session date %q", date)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := DB.SessionCollection.UpdateOne(ctx,
		bson.M{"_id": sessionDocID},
		bson.M{"$set": bson.M{"date": date}},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return fmt.Errorf("failed to set session date: %w", err)
	}
	return nil
}
