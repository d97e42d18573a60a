package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name     string
		appErr   *AppError
		expected string
	}{
		{
			name:     "without wrapped error",
			appErr:   New("REC_002", "Batch contains no documents", http.StatusBadRequest),
			expected: "[REC_002] Batch contains no documents",
		},
		{
			name:     "with wrapped error",
			appErr:   Wrap("LGR_001", "Ledger submission failed", http.StatusBadGateway, fmt.Errorf("connection refused")),
			expected: "[LGR_001] Ledger submission failed: connection refused",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.appErr.Error())
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	inner := fmt.Errorf("inner error")
	appErr := ErrLedgerSubmissionFailed(inner)

	assert.True(t, errors.Is(appErr, inner))
}

func TestAppError_NilUnwrap(t *testing.T) {
	appErr := ErrEmptyBatch()
	assert.Nil(t, appErr.Unwrap())
}

func TestRecordErrors(t *testing.T) {
	rec := ErrInvalidRecord("birthdate is malformed")
	assert.Equal(t, "REC_001", rec.Code)
	assert.Equal(t, http.StatusBadRequest, rec.HTTPStatus)
	assert.Contains(t, rec.Message, "birthdate is malformed")

	empty := ErrEmptyBatch()
	assert.Equal(t, "REC_002", empty.Code)
	assert.Equal(t, http.StatusBadRequest, empty.HTTPStatus)

	malformed := ErrMalformedProof(fmt.Errorf("bad hex"))
	assert.Equal(t, "REC_003", malformed.Code)
	assert.Equal(t, http.StatusInternalServerError, malformed.HTTPStatus)
}

func TestExternalErrors(t *testing.T) {
	inner := fmt.Errorf("dial tcp: timeout")

	tests := []struct {
		name       string
		err        *AppError
		code       string
		httpStatus int
	}{
		{"StorageUnavailable", ErrStorageUnavailable(inner), "STO_001", 503},
		{"LedgerSubmissionFailed", ErrLedgerSubmissionFailed(inner), "LGR_001", 502},
		{"LedgerConfirmationTimeout", ErrLedgerConfirmationTimeout(inner), "LGR_002", 504},
		{"LedgerUnavailable", ErrLedgerUnavailable(inner), "LGR_003", 503},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, tt.err.Code)
			assert.Equal(t, tt.httpStatus, tt.err.HTTPStatus)
			assert.True(t, errors.Is(tt.err, inner))
		})
	}
}

func TestBatchErrors(t *testing.T) {
	nf := ErrNotFound("Batch")
	assert.Equal(t, "BAT_001", nf.Code)
	assert.Equal(t, 404, nf.HTTPStatus)
	assert.Contains(t, nf.Message, "Batch")

	tr := ErrInvalidStatusTransition("anchored", "anchoring_in_progress")
	assert.Equal(t, "BAT_002", tr.Code)
	assert.Equal(t, 409, tr.HTTPStatus)
	assert.Contains(t, tr.Message, "anchored")

	ip := ErrAnchorInProgress()
	assert.Equal(t, "BAT_003", ip.Code)
	assert.Equal(t, 409, ip.HTTPStatus)
}

func TestCreditError(t *testing.T) {
	err := ErrInsufficientCredit("ledger_anchor")
	assert.Equal(t, "CRD_001", err.Code)
	assert.Equal(t, http.StatusPaymentRequired, err.HTTPStatus)
	assert.Contains(t, err.Message, "ledger_anchor")
}

func TestSystemErrors(t *testing.T) {
	inner := fmt.Errorf("pg: connection closed")

	sys := InternalError(inner)
	assert.Equal(t, "SYS_001", sys.Code)
	assert.Equal(t, 500, sys.HTTPStatus)
	assert.True(t, errors.Is(sys, inner))

	db := ErrMalformedProof(inner)
	assert.True(t, errors.Is(db, inner))
}
