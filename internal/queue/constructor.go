package queue

import (
	"github.com/cryptocreeper94-sudo/paintpros-sub000/internal/service"
)

type Queue struct {
	in service.IngestService
}

func NewQueue(in service.IngestService) *Queue {
	return &Queue{in: in}
}

const TaskTypeIngestSync = "ingest:sync"

type IngestSyncPayload struct {
	Brand string `json:"brand"`
}
