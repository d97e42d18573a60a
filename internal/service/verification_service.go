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
	"github.com/JingsthonC/xertiq/pkg/merkle"

	"github.com/rs/zerolog"
)

// VerificationServiceImpl implements ports.VerificationEngine.
//
// Verdicts come only from replaying proofs against a ledger-observed root.
// The database copy of the root is never trusted for verification: whoever
// could alter stored documents could alter that column too.
type VerificationServiceImpl struct {
	docRepo     ports.DocumentRepository
	batchRepo   ports.BatchRepository
	ledger      ports.Ledger
	rootCache   ports.RootCache
	hasher      ports.IdentityHasher
	leafBuilder ports.LeafBuilder
	anchorCfg   config.AnchorConfig
	log         zerolog.Logger
}

// NewVerificationService creates a new VerificationServiceImpl.
func NewVerificationService(
	docRepo ports.DocumentRepository,
	batchRepo ports.BatchRepository,
	ledger ports.Ledger,
	rootCache ports.RootCache,
	hasher ports.IdentityHasher,
	leafBuilder ports.LeafBuilder,
	anchorCfg config.AnchorConfig,
	log zerolog.Logger,
) *VerificationServiceImpl {
	return &VerificationServiceImpl{
		docRepo:     docRepo,
		batchRepo:   batchRepo,
		ledger:      ledger,
		rootCache:   rootCache,
		hasher:      hasher,
		leafBuilder: leafBuilder,
		anchorCfg:   anchorCfg,
		log:         log,
	}
}

// VerifyDocument replays the stored leaf inputs for documentID.
func (s *VerificationServiceImpl) VerifyDocument(ctx context.Context, documentID string) (*domain.VerificationReport, error) {
	doc, err := s.docRepo.GetByDocumentID(ctx, documentID)
	if err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("load document: %w", err))
	}
	if doc == nil {
		return s.report(&domain.VerificationReport{
			Verdict:    domain.VerdictNotFound,
			DocumentID: documentID,
		}), nil
	}
	return s.verifyLeaf(ctx, doc, doc.Fingerprint, doc.DocumentPointer)
}

// VerifyClaim replays caller-supplied leaf inputs against the stored proof.
func (s *VerificationServiceImpl) VerifyClaim(ctx context.Context, req ports.VerifyClaimRequest) (*domain.VerificationReport, error) {
	if req.Pointer == "" {
		return nil, apperror.Validation("document pointer is required")
	}

	fingerprint := req.Fingerprint
	if fingerprint == "" {
		if req.Identity == nil {
			return nil, apperror.Validation("either identity or fingerprint must be provided")
		}
		var err error
		fingerprint, err = s.hasher.Fingerprint(*req.Identity)
		if err != nil {
			return nil, err
		}
	}

	doc, err := s.docRepo.GetByDocumentID(ctx, req.DocumentID)
	if err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("load document: %w", err))
	}
	if doc == nil {
		return s.report(&domain.VerificationReport{
			Verdict:    domain.VerdictNotFound,
			DocumentID: req.DocumentID,
		}), nil
	}
	return s.verifyLeaf(ctx, doc, fingerprint, req.Pointer)
}

// verifyLeaf rebuilds the leaf from fingerprint+pointer and replays the
// document's stored proof against the anchored root.
func (s *VerificationServiceImpl) verifyLeaf(ctx context.Context, doc *domain.BatchDocument, fingerprint, pointer string) (*domain.VerificationReport, error) {
	batch, err := s.batchRepo.GetByID(ctx, doc.BatchID)
	if err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("load batch: %w", err))
	}
	if batch == nil {
		return s.report(&domain.VerificationReport{
			Verdict:    domain.VerdictNotFound,
			DocumentID: doc.DocumentID,
		}), nil
	}
	if !batch.IsAnchored() || batch.LedgerTxRef == nil {
		return s.report(&domain.VerificationReport{
			Verdict:    domain.VerdictNotAnchored,
			DocumentID: doc.DocumentID,
			BatchID:    &batch.ID,
		}), nil
	}

	anchoredRoot, err := s.anchoredRoot(ctx, *batch.LedgerTxRef)
	if err != nil {
		return nil, err
	}

	leaf, err := s.leafBuilder.Leaf(fingerprint, pointer)
	if err != nil {
		return nil, err
	}

	computedRoot, err := merkle.ReplayRoot(leaf, doc.Proof)
	if err != nil {
		// A stored proof that fails to parse is corrupted state, never a
		// verdict on the document.
		return nil, apperror.ErrMalformedProof(err)
	}

	verdict := domain.VerdictTampered
	if computedRoot == anchoredRoot {
		verdict = domain.VerdictValid
	}
	return s.report(&domain.VerificationReport{
		Verdict:      verdict,
		DocumentID:   doc.DocumentID,
		BatchID:      &batch.ID,
		LeafHash:     leaf,
		Proof:        doc.Proof,
		ComputedRoot: computedRoot,
		AnchoredRoot: anchoredRoot,
		LedgerTxRef:  *batch.LedgerTxRef,
	}), nil
}

// anchoredRoot resolves the root for a ledger transaction. The ledger read
// path is authoritative; the cache only covers ledger outages. With both
// unavailable verification refuses rather than guess.
func (s *VerificationServiceImpl) anchoredRoot(ctx context.Context, txRef string) (string, error) {
	root, ledgerErr := s.ledger.FetchAnchoredRoot(ctx, txRef)
	if ledgerErr == nil {
		if err := s.rootCache.Set(ctx, txRef, root, s.anchorCfg.RootCacheTTL); err != nil {
			s.log.Warn().Err(err).Str("ledger_tx_ref", txRef).Msg("failed to refresh root cache")
		}
		return root, nil
	}
	s.log.Warn().Err(ledgerErr).Str("ledger_tx_ref", txRef).Msg("ledger read failed, trying root cache")

	cached, err := s.rootCache.Get(ctx, txRef)
	if err == nil && cached != "" {
		return cached, nil
	}
	if err != nil {
		s.log.Warn().Err(err).Str("ledger_tx_ref", txRef).Msg("root cache read failed")
	}
	return "", apperror.ErrLedgerUnavailable(ledgerErr)
}

func (s *VerificationServiceImpl) report(r *domain.VerificationReport) *domain.VerificationReport {
	r.CheckedAt = time.Now().UTC()
	metrics.Verifications.WithLabelValues(string(r.Verdict)).Inc()
	return r
}
