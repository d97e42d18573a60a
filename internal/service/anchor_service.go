package service

import (
	"context"
	"fmt"
	"time"

	"github.com/JingsthonC/xertiq/config"
	"github.com/JingsthonC/xertiq/internal/core/domain"
	"github.com/JingsthonC/xertiq/internal/core/ports"
	"github.com/JingsthonC/xertiq/internal/metrics"
	"github.com/JingsthonC/xertiq/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// AnchorServiceImpl implements ports.AnchorCoordinator.
//
// All submissions funnel through a single worker goroutine because the
// ledger gateway signs with one shared identity; concurrent submissions
// would race on its account nonce. Duplicate anchoring of one batch is
// prevented twice over: a per-batch distributed lock held for the whole
// run, and compare-and-set status transitions in the database.
type AnchorServiceImpl struct {
	batchRepo  ports.BatchRepository
	ledger     ports.Ledger
	lock       ports.AnchorLock
	rootCache  ports.RootCache
	credits    ports.CreditAuthorizer
	broker     ports.ProgressBroker
	anchorCfg  config.AnchorConfig
	ledgerCfg  config.LedgerConfig
	queue      chan uuid.UUID
	log        zerolog.Logger
}

// NewAnchorService creates a new AnchorServiceImpl. Start must be called
// before enqueued batches are processed.
func NewAnchorService(
	batchRepo ports.BatchRepository,
	ledger ports.Ledger,
	lock ports.AnchorLock,
	rootCache ports.RootCache,
	credits ports.CreditAuthorizer,
	broker ports.ProgressBroker,
	anchorCfg config.AnchorConfig,
	ledgerCfg config.LedgerConfig,
	log zerolog.Logger,
) *AnchorServiceImpl {
	return &AnchorServiceImpl{
		batchRepo: batchRepo,
		ledger:    ledger,
		lock:      lock,
		rootCache: rootCache,
		credits:   credits,
		broker:    broker,
		anchorCfg: anchorCfg,
		ledgerCfg: ledgerCfg,
		queue:     make(chan uuid.UUID, anchorCfg.QueueSize),
		log:       log,
	}
}

// Start runs the submission worker until ctx is cancelled. Batches still
// queued at shutdown are already in anchoring_in_progress, a state no API
// path can re-enter, so the worker must fail them before exiting.
func (s *AnchorServiceImpl) Start(ctx context.Context) {
	go func() {
		s.log.Info().Msg("anchor worker started")
		defer func() {
			s.drainQueue()
			s.log.Info().Msg("anchor worker stopped")
		}()
		for {
			// Re-checked every iteration so a cancellation observed during
			// an anchor run drains instead of claiming another batch.
			if ctx.Err() != nil {
				return
			}
			select {
			case <-ctx.Done():
				return
			case batchID := <-s.queue:
				s.processAnchor(ctx, batchID)
			}
		}
	}()
}

// drainQueue fails every batch claimed but not yet submitted, releasing
// its lock so RetryAnchor works after a restart.
func (s *AnchorServiceImpl) drainQueue() {
	for {
		select {
		case batchID := <-s.queue:
			log := s.log.With().Str("batch_id", batchID.String()).Logger()
			s.fail(batchID, "anchor worker shut down before submission", log)
			s.releaseLock(batchID)
		default:
			return
		}
	}
}

// EnqueueAnchor queues a pending batch for anchoring.
func (s *AnchorServiceImpl) EnqueueAnchor(ctx context.Context, batchID uuid.UUID) error {
	return s.enqueue(ctx, batchID, domain.BatchStatusPending)
}

// RetryAnchor re-queues a batch whose previous anchoring run failed.
func (s *AnchorServiceImpl) RetryAnchor(ctx context.Context, batchID uuid.UUID) error {
	return s.enqueue(ctx, batchID, domain.BatchStatusAnchorFailed)
}

func (s *AnchorServiceImpl) enqueue(ctx context.Context, batchID uuid.UUID, from domain.BatchStatus) error {
	batch, err := s.batchRepo.GetByID(ctx, batchID)
	if err != nil {
		return apperror.ErrDatabaseError(fmt.Errorf("load batch: %w", err))
	}
	if batch == nil {
		return apperror.ErrNotFound("batch")
	}
	if batch.Status == domain.BatchStatusAnchoring {
		return apperror.ErrAnchorInProgress()
	}
	if batch.Status != from {
		return apperror.ErrInvalidStatusTransition(string(batch.Status), string(domain.BatchStatusAnchoring))
	}
	if batch.MerkleRoot == nil {
		return apperror.Validation("batch has no merkle root yet")
	}

	ok, err := s.credits.Authorize(ctx, domain.OpLedgerAnchor, 1)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("credit authorization: %w", err))
	}
	if !ok {
		return apperror.ErrInsufficientCredit("ledger anchoring")
	}

	acquired, err := s.lock.Acquire(ctx, batchID.String(), s.anchorCfg.LockTTL)
	if err != nil {
		return apperror.ErrStorageUnavailable(fmt.Errorf("anchor lock: %w", err))
	}
	if !acquired {
		return apperror.ErrAnchorInProgress()
	}

	moved, err := s.batchRepo.TransitionStatus(ctx, batchID, from, domain.BatchStatusAnchoring)
	if err != nil {
		s.releaseLock(batchID)
		return apperror.ErrDatabaseError(fmt.Errorf("transition status: %w", err))
	}
	if !moved {
		// Someone else moved the batch between our read and the CAS.
		s.releaseLock(batchID)
		return apperror.ErrAnchorInProgress()
	}

	select {
	case s.queue <- batchID:
	default:
		// Queue full: undo the claim so the batch stays retryable.
		if _, rbErr := s.batchRepo.TransitionStatus(ctx, batchID, domain.BatchStatusAnchoring, from); rbErr != nil {
			s.log.Error().Err(rbErr).Str("batch_id", batchID.String()).Msg("failed to roll back status after queue overflow")
		}
		s.releaseLock(batchID)
		return apperror.InternalError(fmt.Errorf("anchor queue full"))
	}

	s.broker.Publish(domain.ProgressEvent{
		Stage:     domain.StageAnchoring,
		BatchID:   batchID,
		Timestamp: time.Now().UTC(),
	})
	s.log.Info().Str("batch_id", batchID.String()).Msg("batch queued for anchoring")
	return nil
}

// processAnchor drives one batch through submit, confirm and record. The
// watchdog timeout bounds the whole run so a wedged ledger cannot leave a
// batch in anchoring_in_progress forever.
func (s *AnchorServiceImpl) processAnchor(parent context.Context, batchID uuid.UUID) {
	start := time.Now()
	ctx, cancel := context.WithTimeout(parent, s.anchorCfg.WatchdogTimeout)
	defer cancel()
	defer s.releaseLock(batchID)

	log := s.log.With().Str("batch_id", batchID.String()).Logger()

	batch, err := s.batchRepo.GetByID(ctx, batchID)
	if err != nil || batch == nil {
		log.Error().Err(err).Msg("anchor run could not load batch")
		s.fail(batchID, "batch unavailable at anchor time", log)
		return
	}
	if batch.MerkleRoot == nil {
		s.fail(batchID, "batch has no merkle root", log)
		return
	}
	root := *batch.MerkleRoot

	txRef, attempts, err := s.submitWithRetry(ctx, root, log)
	metrics.AnchorSubmitAttempts.Observe(float64(attempts))
	if err != nil {
		s.fail(batchID, fmt.Sprintf("ledger submission failed: %v", err), log)
		metrics.AnchorDuration.Observe(time.Since(start).Seconds())
		return
	}
	log.Info().Str("ledger_tx_ref", txRef).Int("attempts", attempts).Msg("root submitted to ledger")

	if err := s.awaitConfirmation(ctx, txRef, log); err != nil {
		s.fail(batchID, fmt.Sprintf("ledger confirmation failed: %v", err), log)
		metrics.AnchorDuration.Observe(time.Since(start).Seconds())
		return
	}

	// Read the anchored root back over the public path. The ledger copy is
	// authoritative: a mismatch means the submission was corrupted and the
	// batch must not be reported as anchored.
	anchoredRoot, err := s.ledger.FetchAnchoredRoot(ctx, txRef)
	if err != nil {
		s.fail(batchID, fmt.Sprintf("anchored root readback failed: %v", err), log)
		metrics.AnchorDuration.Observe(time.Since(start).Seconds())
		return
	}
	if anchoredRoot != root {
		s.fail(batchID, "anchored root does not match submitted root", log)
		metrics.AnchorDuration.Observe(time.Since(start).Seconds())
		return
	}

	if err := s.rootCache.Set(ctx, txRef, anchoredRoot, s.anchorCfg.RootCacheTTL); err != nil {
		log.Warn().Err(err).Msg("failed to cache anchored root")
	}

	if err := s.batchRepo.MarkAnchored(ctx, batchID, txRef, time.Now().UTC()); err != nil {
		log.Error().Err(err).Msg("failed to record anchored batch")
		s.fail(batchID, "failed to record anchoring result", log)
		metrics.AnchorDuration.Observe(time.Since(start).Seconds())
		return
	}

	s.broker.Publish(domain.ProgressEvent{
		Stage:     domain.StageCompleted,
		BatchID:   batchID,
		Timestamp: time.Now().UTC(),
		Detail:    txRef,
	})
	metrics.AnchorOutcomes.WithLabelValues("anchored").Inc()
	metrics.AnchorDuration.Observe(time.Since(start).Seconds())
	log.Info().Str("ledger_tx_ref", txRef).Msg("batch anchored")
}

// submitWithRetry submits the root with bounded exponential backoff.
// Returns the transaction reference and the number of attempts used.
func (s *AnchorServiceImpl) submitWithRetry(ctx context.Context, root string, log zerolog.Logger) (string, int, error) {
	var lastErr error
	for attempt := 1; attempt <= s.ledgerCfg.SubmitMaxAttempts; attempt++ {
		txRef, err := s.ledger.Submit(ctx, root)
		if err == nil {
			return txRef, attempt, nil
		}
		lastErr = err
		log.Warn().Err(err).Int("attempt", attempt).Msg("ledger submission attempt failed")

		if attempt < s.ledgerCfg.SubmitMaxAttempts {
			if err := s.sleep(ctx, s.backoff(attempt)); err != nil {
				return "", attempt, err
			}
		}
	}
	return "", s.ledgerCfg.SubmitMaxAttempts, apperror.ErrLedgerSubmissionFailed(lastErr)
}

// awaitConfirmation polls the ledger until the transaction confirms, fails
// or the attempt budget runs out.
func (s *AnchorServiceImpl) awaitConfirmation(ctx context.Context, txRef string, log zerolog.Logger) error {
	for attempt := 1; attempt <= s.ledgerCfg.ConfirmMaxAttempts; attempt++ {
		status, err := s.ledger.Confirm(ctx, txRef)
		switch {
		case err != nil:
			log.Warn().Err(err).Int("attempt", attempt).Msg("ledger confirmation attempt failed")
		case status == ports.LedgerTxConfirmed:
			return nil
		case status == ports.LedgerTxFailed:
			return apperror.ErrLedgerSubmissionFailed(fmt.Errorf("ledger rejected transaction %s", txRef))
		}

		if attempt < s.ledgerCfg.ConfirmMaxAttempts {
			if err := s.sleep(ctx, s.backoff(attempt)); err != nil {
				return err
			}
		}
	}
	return apperror.ErrLedgerConfirmationTimeout(fmt.Errorf("transaction %s unconfirmed after %d attempts", txRef, s.ledgerCfg.ConfirmMaxAttempts))
}

// fail moves the batch to anchor_failed and emits the terminal event. The
// batch stays retryable through RetryAnchor.
func (s *AnchorServiceImpl) fail(batchID uuid.UUID, reason string, log zerolog.Logger) {
	// Detached context: the watchdog may already have fired and the failure
	// must still be recorded.
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := s.batchRepo.MarkAnchorFailed(ctx, batchID, reason); err != nil {
		log.Error().Err(err).Str("reason", reason).Msg("failed to record anchor failure")
	}
	s.broker.Publish(domain.ProgressEvent{
		Stage:     domain.StageFailed,
		BatchID:   batchID,
		Timestamp: time.Now().UTC(),
		Detail:    reason,
	})
	metrics.AnchorOutcomes.WithLabelValues("anchor_failed").Inc()
	log.Error().Str("reason", reason).Msg("anchoring failed")
}

func (s *AnchorServiceImpl) releaseLock(batchID uuid.UUID) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.lock.Release(ctx, batchID.String()); err != nil {
		s.log.Warn().Err(err).Str("batch_id", batchID.String()).Msg("failed to release anchor lock")
	}
}

// backoff computes the bounded exponential delay after `attempt` failures.
func (s *AnchorServiceImpl) backoff(attempt int) time.Duration {
	d := s.ledgerCfg.BackoffBase
	for i := 1; i < attempt; i++ {
		d *= 2
		if d >= s.ledgerCfg.BackoffMax {
			return s.ledgerCfg.BackoffMax
		}
	}
	if d > s.ledgerCfg.BackoffMax {
		return s.ledgerCfg.BackoffMax
	}
	return d
}

func (s *AnchorServiceImpl) sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
