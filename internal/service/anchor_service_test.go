package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/JingsthonC/xertiq/config"
	"github.com/JingsthonC/xertiq/internal/core/domain"
	"github.com/JingsthonC/xertiq/internal/core/ports"
	"github.com/JingsthonC/xertiq/internal/core/ports/mocks"
	"github.com/JingsthonC/xertiq/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testRoot = "d4735e3a265e16eee03f59718b9b5d03019c07d8b6c51f90da3a666eec13ab35"

type anchorTestDeps struct {
	svc       *AnchorServiceImpl
	batchRepo *mocks.MockBatchRepository
	ledger    *mocks.MockLedger
	lock      *mocks.MockAnchorLock
	rootCache *mocks.MockRootCache
	credits   *mocks.MockCreditAuthorizer
	broker    *InMemoryProgressBroker
	ctrl      *gomock.Controller
}

func setupAnchorService(t *testing.T) *anchorTestDeps {
	ctrl := gomock.NewController(t)
	d := &anchorTestDeps{
		batchRepo: mocks.NewMockBatchRepository(ctrl),
		ledger:    mocks.NewMockLedger(ctrl),
		lock:      mocks.NewMockAnchorLock(ctrl),
		rootCache: mocks.NewMockRootCache(ctrl),
		credits:   mocks.NewMockCreditAuthorizer(ctrl),
		broker:    NewInMemoryProgressBroker(zerolog.Nop()),
		ctrl:      ctrl,
	}
	anchorCfg := config.AnchorConfig{
		QueueSize:       8,
		WatchdogTimeout: 5 * time.Second,
		LockTTL:         time.Minute,
		RootCacheTTL:    time.Hour,
	}
	ledgerCfg := config.LedgerConfig{
		SubmitMaxAttempts:  3,
		ConfirmMaxAttempts: 3,
		BackoffBase:        time.Millisecond,
		BackoffMax:         5 * time.Millisecond,
	}
	d.svc = NewAnchorService(
		d.batchRepo, d.ledger, d.lock, d.rootCache, d.credits, d.broker,
		anchorCfg, ledgerCfg, zerolog.Nop(),
	)
	return d
}

func pendingBatch(id uuid.UUID) *domain.Batch {
	root := testRoot
	return &domain.Batch{
		ID:         id,
		Name:       "graduation-2026",
		MerkleRoot: &root,
		Status:     domain.BatchStatusPending,
		LeafCount:  3,
		CreatedAt:  time.Now().UTC(),
	}
}

// ==================== EnqueueAnchor Tests ====================

func TestAnchorService_EnqueueAnchor_Success(t *testing.T) {
	d := setupAnchorService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	batchID := uuid.New()

	d.batchRepo.EXPECT().GetByID(ctx, batchID).Return(pendingBatch(batchID), nil)
	d.credits.EXPECT().Authorize(ctx, domain.OpLedgerAnchor, 1).Return(true, nil)
	d.lock.EXPECT().Acquire(ctx, batchID.String(), time.Minute).Return(true, nil)
	d.batchRepo.EXPECT().
		TransitionStatus(ctx, batchID, domain.BatchStatusPending, domain.BatchStatusAnchoring).
		Return(true, nil)

	events, cancel := d.broker.Subscribe(batchID)
	defer cancel()

	err := d.svc.EnqueueAnchor(ctx, batchID)
	require.NoError(t, err)

	e := <-events
	assert.Equal(t, domain.StageAnchoring, e.Stage)
}

func TestAnchorService_EnqueueAnchor_BatchNotFound(t *testing.T) {
	d := setupAnchorService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	batchID := uuid.New()

	d.batchRepo.EXPECT().GetByID(ctx, batchID).Return(nil, nil)

	err := d.svc.EnqueueAnchor(ctx, batchID)
	requireAppCode(t, err, "BAT_001")
}

func TestAnchorService_EnqueueAnchor_AlreadyAnchored(t *testing.T) {
	d := setupAnchorService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	batchID := uuid.New()
	batch := pendingBatch(batchID)
	batch.Status = domain.BatchStatusAnchored

	d.batchRepo.EXPECT().GetByID(ctx, batchID).Return(batch, nil)

	err := d.svc.EnqueueAnchor(ctx, batchID)
	requireAppCode(t, err, "BAT_002")
}

func TestAnchorService_EnqueueAnchor_AlreadyInProgress(t *testing.T) {
	d := setupAnchorService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	batchID := uuid.New()
	batch := pendingBatch(batchID)
	batch.Status = domain.BatchStatusAnchoring

	d.batchRepo.EXPECT().GetByID(ctx, batchID).Return(batch, nil)

	err := d.svc.EnqueueAnchor(ctx, batchID)
	requireAppCode(t, err, "BAT_003")
}

func TestAnchorService_EnqueueAnchor_InsufficientCredit(t *testing.T) {
	d := setupAnchorService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	batchID := uuid.New()

	d.batchRepo.EXPECT().GetByID(ctx, batchID).Return(pendingBatch(batchID), nil)
	d.credits.EXPECT().Authorize(ctx, domain.OpLedgerAnchor, 1).Return(false, nil)

	err := d.svc.EnqueueAnchor(ctx, batchID)
	requireAppCode(t, err, "CRD_001")
}

func TestAnchorService_EnqueueAnchor_LockHeldElsewhere(t *testing.T) {
	d := setupAnchorService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	batchID := uuid.New()

	d.batchRepo.EXPECT().GetByID(ctx, batchID).Return(pendingBatch(batchID), nil)
	d.credits.EXPECT().Authorize(ctx, domain.OpLedgerAnchor, 1).Return(true, nil)
	d.lock.EXPECT().Acquire(ctx, batchID.String(), time.Minute).Return(false, nil)

	err := d.svc.EnqueueAnchor(ctx, batchID)
	requireAppCode(t, err, "BAT_003")
}

func TestAnchorService_EnqueueAnchor_LostStatusRace(t *testing.T) {
	d := setupAnchorService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	batchID := uuid.New()

	d.batchRepo.EXPECT().GetByID(ctx, batchID).Return(pendingBatch(batchID), nil)
	d.credits.EXPECT().Authorize(ctx, domain.OpLedgerAnchor, 1).Return(true, nil)
	d.lock.EXPECT().Acquire(ctx, batchID.String(), time.Minute).Return(true, nil)
	d.batchRepo.EXPECT().
		TransitionStatus(ctx, batchID, domain.BatchStatusPending, domain.BatchStatusAnchoring).
		Return(false, nil)
	d.lock.EXPECT().Release(gomock.Any(), batchID.String()).Return(nil)

	err := d.svc.EnqueueAnchor(ctx, batchID)
	requireAppCode(t, err, "BAT_003")
}

func TestAnchorService_RetryAnchor_FromFailed(t *testing.T) {
	d := setupAnchorService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	batchID := uuid.New()
	batch := pendingBatch(batchID)
	batch.Status = domain.BatchStatusAnchorFailed

	d.batchRepo.EXPECT().GetByID(ctx, batchID).Return(batch, nil)
	d.credits.EXPECT().Authorize(ctx, domain.OpLedgerAnchor, 1).Return(true, nil)
	d.lock.EXPECT().Acquire(ctx, batchID.String(), time.Minute).Return(true, nil)
	d.batchRepo.EXPECT().
		TransitionStatus(ctx, batchID, domain.BatchStatusAnchorFailed, domain.BatchStatusAnchoring).
		Return(true, nil)

	err := d.svc.RetryAnchor(ctx, batchID)
	require.NoError(t, err)
}

func TestAnchorService_RetryAnchor_NotFailed(t *testing.T) {
	d := setupAnchorService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	batchID := uuid.New()

	d.batchRepo.EXPECT().GetByID(ctx, batchID).Return(pendingBatch(batchID), nil)

	err := d.svc.RetryAnchor(ctx, batchID)
	requireAppCode(t, err, "BAT_002")
}

// ==================== processAnchor Tests ====================

func TestAnchorService_ProcessAnchor_Success(t *testing.T) {
	d := setupAnchorService(t)
	defer d.ctrl.Finish()

	batchID := uuid.New()
	batch := pendingBatch(batchID)
	batch.Status = domain.BatchStatusAnchoring

	d.batchRepo.EXPECT().GetByID(gomock.Any(), batchID).Return(batch, nil)
	d.ledger.EXPECT().Submit(gomock.Any(), testRoot).Return("tx-abc123", nil)
	d.ledger.EXPECT().Confirm(gomock.Any(), "tx-abc123").Return(ports.LedgerTxConfirmed, nil)
	d.ledger.EXPECT().FetchAnchoredRoot(gomock.Any(), "tx-abc123").Return(testRoot, nil)
	d.rootCache.EXPECT().Set(gomock.Any(), "tx-abc123", testRoot, time.Hour).Return(nil)
	d.batchRepo.EXPECT().MarkAnchored(gomock.Any(), batchID, "tx-abc123", gomock.Any()).Return(nil)
	d.lock.EXPECT().Release(gomock.Any(), batchID.String()).Return(nil)

	events, cancel := d.broker.Subscribe(batchID)
	defer cancel()

	d.svc.processAnchor(context.Background(), batchID)

	e := <-events
	assert.Equal(t, domain.StageCompleted, e.Stage)
	assert.Equal(t, "tx-abc123", e.Detail)
}

func TestAnchorService_ProcessAnchor_TransientSubmitFailureThenSuccess(t *testing.T) {
	d := setupAnchorService(t)
	defer d.ctrl.Finish()

	batchID := uuid.New()
	batch := pendingBatch(batchID)
	batch.Status = domain.BatchStatusAnchoring

	d.batchRepo.EXPECT().GetByID(gomock.Any(), batchID).Return(batch, nil)
	gomock.InOrder(
		d.ledger.EXPECT().Submit(gomock.Any(), testRoot).Return("", errors.New("gateway 502")),
		d.ledger.EXPECT().Submit(gomock.Any(), testRoot).Return("", errors.New("gateway 502")),
		d.ledger.EXPECT().Submit(gomock.Any(), testRoot).Return("tx-abc123", nil),
	)
	d.ledger.EXPECT().Confirm(gomock.Any(), "tx-abc123").Return(ports.LedgerTxConfirmed, nil)
	d.ledger.EXPECT().FetchAnchoredRoot(gomock.Any(), "tx-abc123").Return(testRoot, nil)
	d.rootCache.EXPECT().Set(gomock.Any(), "tx-abc123", testRoot, time.Hour).Return(nil)
	d.batchRepo.EXPECT().MarkAnchored(gomock.Any(), batchID, "tx-abc123", gomock.Any()).Return(nil)
	d.lock.EXPECT().Release(gomock.Any(), batchID.String()).Return(nil)

	d.svc.processAnchor(context.Background(), batchID)
}

func TestAnchorService_ProcessAnchor_SubmitExhaustion(t *testing.T) {
	d := setupAnchorService(t)
	defer d.ctrl.Finish()

	batchID := uuid.New()
	batch := pendingBatch(batchID)
	batch.Status = domain.BatchStatusAnchoring

	d.batchRepo.EXPECT().GetByID(gomock.Any(), batchID).Return(batch, nil)
	d.ledger.EXPECT().Submit(gomock.Any(), testRoot).Return("", errors.New("gateway down")).Times(3)
	d.batchRepo.EXPECT().MarkAnchorFailed(gomock.Any(), batchID, gomock.Any()).Return(nil)
	d.lock.EXPECT().Release(gomock.Any(), batchID.String()).Return(nil)

	events, cancel := d.broker.Subscribe(batchID)
	defer cancel()

	d.svc.processAnchor(context.Background(), batchID)

	e := <-events
	assert.Equal(t, domain.StageFailed, e.Stage)
	assert.Contains(t, e.Detail, "submission failed")
}

func TestAnchorService_ProcessAnchor_PendingThenConfirmed(t *testing.T) {
	d := setupAnchorService(t)
	defer d.ctrl.Finish()

	batchID := uuid.New()
	batch := pendingBatch(batchID)
	batch.Status = domain.BatchStatusAnchoring

	d.batchRepo.EXPECT().GetByID(gomock.Any(), batchID).Return(batch, nil)
	d.ledger.EXPECT().Submit(gomock.Any(), testRoot).Return("tx-abc123", nil)
	gomock.InOrder(
		d.ledger.EXPECT().Confirm(gomock.Any(), "tx-abc123").Return(ports.LedgerTxPending, nil),
		d.ledger.EXPECT().Confirm(gomock.Any(), "tx-abc123").Return(ports.LedgerTxConfirmed, nil),
	)
	d.ledger.EXPECT().FetchAnchoredRoot(gomock.Any(), "tx-abc123").Return(testRoot, nil)
	d.rootCache.EXPECT().Set(gomock.Any(), "tx-abc123", testRoot, time.Hour).Return(nil)
	d.batchRepo.EXPECT().MarkAnchored(gomock.Any(), batchID, "tx-abc123", gomock.Any()).Return(nil)
	d.lock.EXPECT().Release(gomock.Any(), batchID.String()).Return(nil)

	d.svc.processAnchor(context.Background(), batchID)
}

func TestAnchorService_ProcessAnchor_LedgerRejectsTransaction(t *testing.T) {
	d := setupAnchorService(t)
	defer d.ctrl.Finish()

	batchID := uuid.New()
	batch := pendingBatch(batchID)
	batch.Status = domain.BatchStatusAnchoring

	d.batchRepo.EXPECT().GetByID(gomock.Any(), batchID).Return(batch, nil)
	d.ledger.EXPECT().Submit(gomock.Any(), testRoot).Return("tx-abc123", nil)
	d.ledger.EXPECT().Confirm(gomock.Any(), "tx-abc123").Return(ports.LedgerTxFailed, nil)
	d.batchRepo.EXPECT().MarkAnchorFailed(gomock.Any(), batchID, gomock.Any()).Return(nil)
	d.lock.EXPECT().Release(gomock.Any(), batchID.String()).Return(nil)

	d.svc.processAnchor(context.Background(), batchID)
}

func TestAnchorService_ProcessAnchor_ConfirmationTimeout(t *testing.T) {
	d := setupAnchorService(t)
	defer d.ctrl.Finish()

	batchID := uuid.New()
	batch := pendingBatch(batchID)
	batch.Status = domain.BatchStatusAnchoring

	d.batchRepo.EXPECT().GetByID(gomock.Any(), batchID).Return(batch, nil)
	d.ledger.EXPECT().Submit(gomock.Any(), testRoot).Return("tx-abc123", nil)
	d.ledger.EXPECT().Confirm(gomock.Any(), "tx-abc123").Return(ports.LedgerTxPending, nil).Times(3)
	d.batchRepo.EXPECT().MarkAnchorFailed(gomock.Any(), batchID, gomock.Any()).Return(nil)
	d.lock.EXPECT().Release(gomock.Any(), batchID.String()).Return(nil)

	events, cancel := d.broker.Subscribe(batchID)
	defer cancel()

	d.svc.processAnchor(context.Background(), batchID)

	e := <-events
	assert.Equal(t, domain.StageFailed, e.Stage)
	assert.Contains(t, e.Detail, "confirmation failed")
}

func TestAnchorService_ProcessAnchor_ReadbackMismatch(t *testing.T) {
	d := setupAnchorService(t)
	defer d.ctrl.Finish()

	batchID := uuid.New()
	batch := pendingBatch(batchID)
	batch.Status = domain.BatchStatusAnchoring

	d.batchRepo.EXPECT().GetByID(gomock.Any(), batchID).Return(batch, nil)
	d.ledger.EXPECT().Submit(gomock.Any(), testRoot).Return("tx-abc123", nil)
	d.ledger.EXPECT().Confirm(gomock.Any(), "tx-abc123").Return(ports.LedgerTxConfirmed, nil)
	d.ledger.EXPECT().FetchAnchoredRoot(gomock.Any(), "tx-abc123").
		Return("0000000000000000000000000000000000000000000000000000000000000000", nil)
	d.batchRepo.EXPECT().MarkAnchorFailed(gomock.Any(), batchID, gomock.Any()).Return(nil)
	d.lock.EXPECT().Release(gomock.Any(), batchID.String()).Return(nil)

	events, cancel := d.broker.Subscribe(batchID)
	defer cancel()

	d.svc.processAnchor(context.Background(), batchID)

	e := <-events
	assert.Equal(t, domain.StageFailed, e.Stage)
	assert.Contains(t, e.Detail, "does not match")
}

func TestAnchorService_ProcessAnchor_CacheFailureNonFatal(t *testing.T) {
	d := setupAnchorService(t)
	defer d.ctrl.Finish()

	batchID := uuid.New()
	batch := pendingBatch(batchID)
	batch.Status = domain.BatchStatusAnchoring

	d.batchRepo.EXPECT().GetByID(gomock.Any(), batchID).Return(batch, nil)
	d.ledger.EXPECT().Submit(gomock.Any(), testRoot).Return("tx-abc123", nil)
	d.ledger.EXPECT().Confirm(gomock.Any(), "tx-abc123").Return(ports.LedgerTxConfirmed, nil)
	d.ledger.EXPECT().FetchAnchoredRoot(gomock.Any(), "tx-abc123").Return(testRoot, nil)
	d.rootCache.EXPECT().Set(gomock.Any(), "tx-abc123", testRoot, time.Hour).Return(errors.New("redis down"))
	d.batchRepo.EXPECT().MarkAnchored(gomock.Any(), batchID, "tx-abc123", gomock.Any()).Return(nil)
	d.lock.EXPECT().Release(gomock.Any(), batchID.String()).Return(nil)

	events, cancel := d.broker.Subscribe(batchID)
	defer cancel()

	d.svc.processAnchor(context.Background(), batchID)

	e := <-events
	assert.Equal(t, domain.StageCompleted, e.Stage)
}

func TestAnchorService_Start_ShutdownFailsQueuedBatches(t *testing.T) {
	d := setupAnchorService(t)
	defer d.ctrl.Finish()

	inFlight := uuid.New()
	queued := uuid.New()

	for _, id := range []uuid.UUID{inFlight, queued} {
		d.batchRepo.EXPECT().GetByID(gomock.Any(), id).Return(pendingBatch(id), nil)
		d.credits.EXPECT().Authorize(gomock.Any(), domain.OpLedgerAnchor, 1).Return(true, nil)
		d.lock.EXPECT().Acquire(gomock.Any(), id.String(), gomock.Any()).Return(true, nil)
		d.batchRepo.EXPECT().
			TransitionStatus(gomock.Any(), id, domain.BatchStatusPending, domain.BatchStatusAnchoring).
			Return(true, nil)
	}

	// The first batch is reloaded by the anchor run and then blocks in
	// Submit until the worker context is cancelled.
	inFlightRow := pendingBatch(inFlight)
	inFlightRow.Status = domain.BatchStatusAnchoring
	d.batchRepo.EXPECT().GetByID(gomock.Any(), inFlight).Return(inFlightRow, nil)

	submitting := make(chan struct{})
	d.ledger.EXPECT().Submit(gomock.Any(), testRoot).
		DoAndReturn(func(ctx context.Context, _ string) (string, error) {
			close(submitting)
			<-ctx.Done()
			return "", ctx.Err()
		})
	d.batchRepo.EXPECT().MarkAnchorFailed(gomock.Any(), inFlight, gomock.Any()).Return(nil)

	queuedFailed := make(chan struct{})
	d.batchRepo.EXPECT().
		MarkAnchorFailed(gomock.Any(), queued, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, reason string) error {
			assert.Contains(t, reason, "shut down")
			close(queuedFailed)
			return nil
		})
	d.lock.EXPECT().Release(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	ctx, cancel := context.WithCancel(context.Background())
	d.svc.Start(ctx)

	require.NoError(t, d.svc.EnqueueAnchor(context.Background(), inFlight))
	select {
	case <-submitting:
	case <-time.After(2 * time.Second):
		t.Fatal("worker never picked up the first batch")
	}
	require.NoError(t, d.svc.EnqueueAnchor(context.Background(), queued))

	cancel()

	select {
	case <-queuedFailed:
	case <-time.After(2 * time.Second):
		t.Fatal("queued batch was not failed on shutdown")
	}
}

func requireAppCode(t *testing.T, err error, code string) {
	t.Helper()
	require.Error(t, err)
	var appErr *apperror.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, code, appErr.Code)
}
