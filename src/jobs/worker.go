package jobs

import (
	"Backend-KidCheckin/src/database"
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/hibiken/asynq"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// HandlePrintTagTask simulates the label printer: renders the tag to the log
// and stamps tagPrintedAt on the ledger record.
func HandlePrintTagTask(ctx context.Context, t *asynq.Task) error {
	var payload PrintTagPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		log.Println("❌ Payload decode error:", err)
		return err
	}

	log.Printf("🖨️ [job %s] printing tag: %s | %s | %s | %s",
		payload.JobID, payload.Tag.Code, payload.Tag.ChildName, payload.Tag.Program, payload.Tag.Date)

	id, err := primitive.ObjectIDFromHex(payload.RecordID)
	if err != nil {
		log.Println("⚠️ Invalid record id in print task, skipping:", payload.RecordID)
		return nil
	}

	res, err := database.AttendanceCollection.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"tagPrintedAt": time.Now()}},
	)
	if err != nil {
		log.Println("❌ Failed to stamp tagPrintedAt:", err)
		return err
	}
	if res.MatchedCount == 0 {
		// record replaced or gone; the print itself already happened
		log.Println("⚠️ Record not found for print stamp, skipping:", payload.RecordID)
		return nil
	}

	log.Println("✅ Tag printed for record:", payload.RecordID)
	return nil
}

// StartWorker runs the asynq worker loop. No-op when Redis is not configured.
func StartWorker() {
	if database.RedisURI == "" {
		log.Println("⚠️ Redis not available. Print worker will not start.")
		return
	}

	srv := asynq.NewServer(
		asynq.RedisClientOpt{Addr: database.RedisURI},
		asynq.Config{Concurrency: 5},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypePrintTag, HandlePrintTagTask)

	if err := srv.Run(mux); err != nil {
		log.Println("❌ Asynq worker stopped:", err)
	}
}
