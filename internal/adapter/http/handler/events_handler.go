package handler

import (
	"github.com/JingsthonC/xertiq/internal/core/domain"
	"github.com/JingsthonC/xertiq/internal/core/ports"
	"github.com/JingsthonC/xertiq/pkg/apperror"
	"github.com/JingsthonC/xertiq/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// EventsHandler streams batch progress events over Server-Sent Events.
type EventsHandler struct {
	pipeline ports.BatchPipeline
	broker   ports.ProgressBroker
}

// NewEventsHandler creates a new EventsHandler.
func NewEventsHandler(pipeline ports.BatchPipeline, broker ports.ProgressBroker) *EventsHandler {
	return &EventsHandler{pipeline: pipeline, broker: broker}
}

// StreamEvents handles GET /api/v1/batches/:id/events. The stream ends
// after the batch reaches a terminal stage or the client disconnects.
// Batches already in a terminal status get a single synthetic event so
// late subscribers are not left hanging on a stream that will never emit.
func (h *EventsHandler) StreamEvents(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, apperror.Validation("invalid batch id"))
		return
	}

	// Subscribe before reading the status: a terminal event published
	// between the two is delivered to no one once the broker has dropped
	// the batch, and the run records its status before publishing, so the
	// read below always observes a terminal batch as terminal.
	events, cancel := h.broker.Subscribe(id)
	defer cancel()

	batch, err := h.pipeline.GetBatch(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")

	if terminal, ok := terminalEvent(batch); ok {
		c.SSEvent(string(terminal.Stage), terminal)
		c.Writer.Flush()
		return
	}

	for {
		select {
		case event, open := <-events:
			if !open {
				return
			}
			c.SSEvent(string(event.Stage), event)
			c.Writer.Flush()
			if event.Stage.IsTerminal() {
				return
			}
		case <-c.Request.Context().Done():
			return
		}
	}
}

// terminalEvent synthesises the final event for a batch whose run has
// already finished before the client subscribed.
func terminalEvent(batch *domain.Batch) (domain.ProgressEvent, bool) {
	switch batch.Status {
	case domain.BatchStatusAnchored:
		event := domain.ProgressEvent{Stage: domain.StageCompleted, BatchID: batch.ID}
		if batch.AnchoredAt != nil {
			event.Timestamp = *batch.AnchoredAt
		}
		if batch.LedgerTxRef != nil {
			event.Detail = *batch.LedgerTxRef
		}
		return event, true
	case domain.BatchStatusAnchorFailed:
		event := domain.ProgressEvent{Stage: domain.StageFailed, BatchID: batch.ID, Timestamp: batch.CreatedAt}
		if batch.FailureReason != nil {
			event.Detail = *batch.FailureReason
		}
		return event, true
	}
	return domain.ProgressEvent{}, false
}
