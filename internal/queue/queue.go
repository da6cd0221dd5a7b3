package queue

import (
	"encoding/json"
	"log"

	"github.com/hibiken/asynq"
)

// EnqueueIngestSync schedules a background refresh of a brand's field-upload
// feed. Fire-and-forget: callers do not wait for the merge.
func EnqueueIngestSync(asynqClient *asynq.Client, payload IngestSyncPayload) error {
	taskPayload, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	task := asynq.NewTask(TaskTypeIngestSync, taskPayload)

	_, err = asynqClient.Enqueue(task)
	if err != nil {
		return err
	}

	log.Printf("Task scheduled: %+v", payload)
	return nil
}
