package handler

import (
	"strconv"

	"github.com/JingsthonC/xertiq/internal/adapter/http/dto"
	"github.com/JingsthonC/xertiq/internal/core/domain"
	"github.com/JingsthonC/xertiq/internal/core/ports"
	"github.com/JingsthonC/xertiq/pkg/apperror"
	"github.com/JingsthonC/xertiq/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// BatchHandler handles batch lifecycle endpoints.
type BatchHandler struct {
	pipeline ports.BatchPipeline
	anchorer ports.AnchorCoordinator
}

// NewBatchHandler creates a new BatchHandler.
func NewBatchHandler(pipeline ports.BatchPipeline, anchorer ports.AnchorCoordinator) *BatchHandler {
	return &BatchHandler{pipeline: pipeline, anchorer: anchorer}
}

// CreateBatch handles POST /api/v1/batches. Processing is asynchronous:
// the response is 202 with the batch in status pending.
func (h *BatchHandler) CreateBatch(c *gin.Context) {
	var req dto.CreateBatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	batch, err := h.pipeline.Submit(c.Request.Context(), ports.CreateBatchRequest{
		Name:      req.Name,
		Documents: dto.ToDocumentInputs(req.Documents),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Accepted(c, dto.ToBatchResponse(batch))
}

// GetBatch handles GET /api/v1/batches/:id.
func (h *BatchHandler) GetBatch(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, apperror.Validation("invalid batch id"))
		return
	}

	batch, err := h.pipeline.GetBatch(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.ToBatchResponse(batch))
}

// ListBatches handles GET /api/v1/batches with optional status filter
// and pagination.
func (h *BatchHandler) ListBatches(c *gin.Context) {
	params := ports.BatchListParams{
		Page:     queryInt(c, "page", 1),
		PageSize: queryInt(c, "page_size", 0),
	}
	if raw := c.Query("status"); raw != "" {
		status := domain.BatchStatus(raw)
		switch status {
		case domain.BatchStatusPending, domain.BatchStatusAnchoring,
			domain.BatchStatusAnchored, domain.BatchStatusAnchorFailed:
			params.Status = &status
		default:
			response.Error(c, apperror.Validation("unknown status filter"))
			return
		}
	}

	batches, total, err := h.pipeline.ListBatches(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]dto.BatchResponse, len(batches))
	for i := range batches {
		items[i] = dto.ToBatchResponse(&batches[i])
	}

	response.OK(c, dto.BatchListResponse{
		Batches:  items,
		Total:    total,
		Page:     params.Page,
		PageSize: len(items),
	})
}

// RetryAnchor handles POST /api/v1/batches/:id/anchor — re-queues a
// batch in status anchor_failed.
func (h *BatchHandler) RetryAnchor(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, apperror.Validation("invalid batch id"))
		return
	}

	if err := h.anchorer.RetryAnchor(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.Accepted(c, gin.H{"batch_id": id, "status": string(domain.BatchStatusAnchoring)})
}

func queryInt(c *gin.Context, name string, fallback int) int {
	raw := c.Query(name)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return v
}
