package model

import (
	"time"

	"github.com/google/uuid"
)

// RunStatus is the outcome of one year's collection attempt.
type RunStatus string

const (
	StatusSuccess RunStatus = "SUCCESS"
	StatusNoData  RunStatus = "NO_DATA"
	StatusFailed  RunStatus = "FAILED"
)

// CollectionRun is an append-only audit row for one attempted year.
type CollectionRun struct {
	ID               int64
	RunID            uuid.UUID
	Year             int
	Status           RunStatus
	RecordsCollected int
	ProvidersFound   int
	ErrorMessage     *string
	Timestamp        time.Time
}
