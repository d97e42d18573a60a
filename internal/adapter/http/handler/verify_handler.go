package handler

import (
	"github.com/JingsthonC/xertiq/internal/adapter/http/dto"
	"github.com/JingsthonC/xertiq/internal/core/ports"
	"github.com/JingsthonC/xertiq/pkg/apperror"
	"github.com/JingsthonC/xertiq/pkg/response"

	"github.com/gin-gonic/gin"
)

// VerifyHandler handles proof verification endpoints.
type VerifyHandler struct {
	verifier ports.VerificationEngine
}

// NewVerifyHandler creates a new VerifyHandler.
func NewVerifyHandler(verifier ports.VerificationEngine) *VerifyHandler {
	return &VerifyHandler{verifier: verifier}
}

// VerifyDocument handles GET /api/v1/verify/:documentID — replays the
// stored proof for a document against the ledger-anchored root.
func (h *VerifyHandler) VerifyDocument(c *gin.Context) {
	documentID := c.Param("documentID")
	if documentID == "" {
		response.Error(c, apperror.Validation("document id is required"))
		return
	}

	report, err := h.verifier.VerifyDocument(c.Request.Context(), documentID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, report)
}

// VerifyClaim handles POST /api/v1/verify — verifies caller-supplied
// leaf inputs against the stored proof. All four verdicts are 200s;
// a verdict is an answer, not an error.
func (h *VerifyHandler) VerifyClaim(c *gin.Context) {
	var req dto.VerifyClaimRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	claim := ports.VerifyClaimRequest{
		DocumentID:  req.DocumentID,
		Fingerprint: req.Fingerprint,
		Pointer:     req.Pointer,
	}
	if req.Identity != nil {
		rec := dto.ToIdentityRecord(*req.Identity)
		claim.Identity = &rec
	}

	report, err := h.verifier.VerifyClaim(c.Request.Context(), claim)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, report)
}
