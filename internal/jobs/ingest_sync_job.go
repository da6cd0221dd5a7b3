package job

import (
	"context"
	"log/slog"

	"github.com/cryptocreeper94-sudo/paintpros-sub000/internal/service"
)

type IngestSyncJob struct {
	in service.IngestService
}

func NewIngestSyncJob(in service.IngestService) *IngestSyncJob {
	return &IngestSyncJob{in: in}
}

// SyncFeeds refreshes every brand's field-upload feed. Runs on a cron
// schedule so freshly uploaded job-site photos show up without anyone
// pressing refresh.
func (c *IngestSyncJob) SyncFeeds() {
	ctx := context.Background()

	if err := c.in.Sync(ctx); err != nil {
		slog.Info(err.Error())
	}
}
