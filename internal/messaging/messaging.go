package messaging

import (
	"context"
	"errors"
	"time"

	"symptom-checker/pkg/api"

	"github.com/google/uuid"
)

const (
	HistoryQueue    = "history.recorded"
	RetryDelay      = 5 * time.Second
	MaxConnectRetry = 5
)

var ErrQueueClosed = errors.New("queue is closed")

type Task interface {
	Type() string

	Payload() []byte

	Ack() error

	Nack() error

	Reject() error
}

// HistoryRecordedPayload is published once a symptom check has been
// persisted to the history log.
type HistoryRecordedPayload struct {
	EventId uuid.UUID
	Record  api.HistoryRecord
}

type Publisher interface {
	PublishHistoryRecorded(ctx context.Context, payload HistoryRecordedPayload) error

	Close()
}

type Reciever interface {
	Tasks() <-chan Task

	Close()
}
