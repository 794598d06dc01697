package messaging

import (
	"context"
	"encoding/json"
	"log/slog"

	"symptom-checker/internal/history"
)

// Worker copies every published history event into a second Store, keeping
// a mirror of the log that the API server writes.
type Worker struct {
	Receiver Reciever
	Store    history.Store
}

func (w *Worker) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			slog.Info("worker stopping", "reason", ctx.Err())
			return
		case task, ok := <-w.Receiver.Tasks():
			if !ok {
				slog.Info("worker task channel closed")
				return
			}
			w.process(ctx, task)
		}
	}
}

func (w *Worker) process(ctx context.Context, task Task) {
	if task.Type() != HistoryQueue {
		slog.Error("received task with unknown type", "type", task.Type())
		if err := task.Reject(); err != nil {
			slog.Error("error rejecting task", "error", err)
		}
		return
	}

	var payload HistoryRecordedPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		slog.Error("error parsing history event payload", "error", err)
		if err := task.Reject(); err != nil {
			slog.Error("error rejecting task", "error", err)
		}
		return
	}

	if err := w.Store.Prepend(ctx, payload.Record); err != nil {
		slog.Error("error mirroring history record", "event_id", payload.EventId, "error", err)
		if err := task.Nack(); err != nil {
			slog.Error("error nacking task", "error", err)
		}
		return
	}

	slog.Info("mirrored history record", "event_id", payload.EventId, "timestamp", payload.Record.Timestamp)
	if err := task.Ack(); err != nil {
		slog.Error("error acking task", "event_id", payload.EventId, "error", err)
	}
}
