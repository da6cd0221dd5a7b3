package queue

import (
	"context"
	"encoding/json"
	"log"

	"github.com/hibiken/asynq"
)

func (j *Queue) HandleIngestSyncTask(ctx context.Context, task *asynq.Task) error {
	var payload IngestSyncPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		return err
	}

	// A failed sync keeps the previous cache; logged, not retried by hand.
	if payload.Brand == "" {
		return j.in.Sync(ctx)
	}
	if err := j.in.SyncBrand(ctx, payload.Brand); err != nil {
		log.Printf("Error syncing ingest feed for %s: %v", payload.Brand, err)
		return err
	}
	return nil
}
