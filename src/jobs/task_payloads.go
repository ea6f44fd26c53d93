package jobs

import (
	"Backend-KidCheckin/src/database"
	"Backend-KidCheckin/src/models"
	"encoding/json"
	"errors"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
)

const TypePrintTag = "tag:print"

// PrintTagPayload carries the tag snapshot taken at check-in time so the
// worker never re-derives display fields from live data.
type PrintTagPayload struct {
	JobID    string         `json:"job_id"`
	RecordID string         `json:"record_id"`
	Tag      models.TagData `json:"tag"`
}

func NewPrintTagTask(recordID string, tag models.TagData) (*asynq.Task, error) {
	payload, err := json.Marshal(PrintTagPayload{
		JobID:    uuid.NewString(),
		RecordID: recordID,
		Tag:      tag,
	})
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypePrintTag, payload), nil
}

// EnqueuePrintTag queues a simulated label print for a completed check-in.
func EnqueuePrintTag(recordID string, tag models.TagData) error {
	if database.AsynqClient == nil {
		return errors.New("asynq client not initialized")
	}
	task, err := NewPrintTagTask(recordID, tag)
	if err != nil {
		return err
	}
	_, err = database.AsynqClient.Enqueue(task)
	return err
}
