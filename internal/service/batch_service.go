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

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// BatchServiceImpl implements ports.BatchPipeline.
//
// Submit persists the pending batch synchronously and runs the rest of the
// pipeline in the background: hash identities, resolve pointers, build
// leaves and tree, persist documents with their proofs, then hand off to
// the anchor coordinator. The run is all-or-nothing — one bad record fails
// the whole batch before anything irreversible happens.
type BatchServiceImpl struct {
	batchRepo   ports.BatchRepository
	docRepo     ports.DocumentRepository
	transactor  ports.DBTransactor
	hasher      ports.IdentityHasher
	leafBuilder ports.LeafBuilder
	docStore    ports.DocumentStore
	credits     ports.CreditAuthorizer
	anchorer    ports.AnchorCoordinator
	broker      ports.ProgressBroker
	pipelineCfg config.PipelineConfig
	log         zerolog.Logger
}

// NewBatchService creates a new BatchServiceImpl.
func NewBatchService(
	batchRepo ports.BatchRepository,
	docRepo ports.DocumentRepository,
	transactor ports.DBTransactor,
	hasher ports.IdentityHasher,
	leafBuilder ports.LeafBuilder,
	docStore ports.DocumentStore,
	credits ports.CreditAuthorizer,
	anchorer ports.AnchorCoordinator,
	broker ports.ProgressBroker,
	pipelineCfg config.PipelineConfig,
	log zerolog.Logger,
) *BatchServiceImpl {
	return &BatchServiceImpl{
		batchRepo:   batchRepo,
		docRepo:     docRepo,
		transactor:  transactor,
		hasher:      hasher,
		leafBuilder: leafBuilder,
		docStore:    docStore,
		credits:     credits,
		anchorer:    anchorer,
		broker:      broker,
		pipelineCfg: pipelineCfg,
		log:         log,
	}
}

// Submit validates the request, persists the pending batch and kicks off
// background processing.
func (s *BatchServiceImpl) Submit(ctx context.Context, req ports.CreateBatchRequest) (*domain.Batch, error) {
	if req.Name == "" {
		return nil, apperror.Validation("batch name is required")
	}
	if len(req.Documents) == 0 {
		return nil, apperror.ErrEmptyBatch()
	}

	uploads := 0
	seen := make(map[string]struct{}, len(req.Documents))
	for i, doc := range req.Documents {
		if doc.DocumentID == "" {
			return nil, apperror.Validation(fmt.Sprintf("document %d has no document id", i))
		}
		if _, dup := seen[doc.DocumentID]; dup {
			return nil, apperror.Validation(fmt.Sprintf("duplicate document id %q", doc.DocumentID))
		}
		seen[doc.DocumentID] = struct{}{}
		if doc.Pointer == "" {
			if len(doc.EncryptedBlob) == 0 {
				return nil, apperror.Validation(fmt.Sprintf("document %q has neither pointer nor blob", doc.DocumentID))
			}
			uploads++
		}
	}

	// The chargeable upload quota is checked up front so the caller learns
	// about a credit shortfall at request time, not from the event stream.
	if uploads > 0 {
		ok, err := s.credits.Authorize(ctx, domain.OpStorageUpload, uploads)
		if err != nil {
			return nil, apperror.InternalError(fmt.Errorf("credit authorization: %w", err))
		}
		if !ok {
			return nil, apperror.ErrInsufficientCredit("document storage upload")
		}
	}

	batch := &domain.Batch{
		ID:        uuid.New(),
		Name:      req.Name,
		Status:    domain.BatchStatusPending,
		LeafCount: len(req.Documents),
		CreatedAt: time.Now().UTC(),
	}

	tx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("begin tx: %w", err))
	}
	defer tx.Rollback(ctx)

	if err := s.batchRepo.Create(ctx, tx, batch); err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("create batch: %w", err))
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("commit batch: %w", err))
	}

	metrics.BatchesCreated.Inc()
	s.log.Info().
		Str("batch_id", batch.ID.String()).
		Int("documents", len(req.Documents)).
		Msg("batch accepted")

	// Detached from the request context: the 202 has been earned and the
	// run must survive the caller disconnecting.
	go s.process(context.Background(), batch.ID, req.Documents)

	return batch, nil
}

// GetBatch returns one batch by id.
func (s *BatchServiceImpl) GetBatch(ctx context.Context, id uuid.UUID) (*domain.Batch, error) {
	batch, err := s.batchRepo.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("load batch: %w", err))
	}
	if batch == nil {
		return nil, apperror.ErrNotFound("batch")
	}
	return batch, nil
}

// ListBatches returns a page of batches plus the total count.
func (s *BatchServiceImpl) ListBatches(ctx context.Context, params ports.BatchListParams) ([]domain.Batch, int64, error) {
	if params.Page < 1 {
		params.Page = 1
	}
	if params.PageSize < 1 {
		params.PageSize = defaultPageSize
	}
	if params.PageSize > maxPageSize {
		params.PageSize = maxPageSize
	}
	batches, total, err := s.batchRepo.List(ctx, params)
	if err != nil {
		return nil, 0, apperror.ErrDatabaseError(fmt.Errorf("list batches: %w", err))
	}
	return batches, total, nil
}

// process runs the pipeline stages for one accepted batch.
func (s *BatchServiceImpl) process(ctx context.Context, batchID uuid.UUID, inputs []domain.DocumentInput) {
	log := s.log.With().Str("batch_id", batchID.String()).Logger()

	fingerprints, err := s.hashRecords(ctx, inputs)
	if err != nil {
		s.failProcessing(ctx, batchID, err, log)
		return
	}
	s.publish(batchID, domain.StageRecordsHashed, "")

	pointers, err := s.resolvePointers(ctx, inputs)
	if err != nil {
		s.failProcessing(ctx, batchID, err, log)
		return
	}
	s.publish(batchID, domain.StagePointersStored, "")

	leaves := make([]string, len(inputs))
	for i := range inputs {
		leaf, err := s.leafBuilder.Leaf(fingerprints[i], pointers[i])
		if err != nil {
			s.failProcessing(ctx, batchID, fmt.Errorf("document %q: %w", inputs[i].DocumentID, err), log)
			return
		}
		leaves[i] = leaf
	}
	s.publish(batchID, domain.StageLeavesBuilt, "")

	tree, err := merkle.New(leaves)
	if err != nil {
		s.failProcessing(ctx, batchID, fmt.Errorf("build tree: %w", err), log)
		return
	}
	root := tree.Root()
	s.publish(batchID, domain.StageTreeBuilt, root)

	docs := make([]domain.BatchDocument, len(inputs))
	for i := range inputs {
		proof, err := tree.Proof(i)
		if err != nil {
			s.failProcessing(ctx, batchID, fmt.Errorf("derive proof %d: %w", i, err), log)
			return
		}
		docs[i] = domain.BatchDocument{
			ID:              uuid.New(),
			BatchID:         batchID,
			DocumentID:      inputs[i].DocumentID,
			Fingerprint:     fingerprints[i],
			DocumentPointer: pointers[i],
			LeafHash:        leaves[i],
			LeafIndex:       i,
			Proof:           proof,
			CreatedAt:       time.Now().UTC(),
		}
	}

	if err := s.persist(ctx, batchID, root, docs); err != nil {
		s.failProcessing(ctx, batchID, err, log)
		return
	}
	s.publish(batchID, domain.StagePersisted, root)
	log.Info().Str("merkle_root", root).Int("documents", len(docs)).Msg("batch processed")

	if err := s.anchorer.EnqueueAnchor(ctx, batchID); err != nil {
		s.failProcessing(ctx, batchID, fmt.Errorf("enqueue anchor: %w", err), log)
		return
	}
}

// hashRecords fingerprints every identity in parallel, preserving input
// order. Any invalid record aborts the whole run.
func (s *BatchServiceImpl) hashRecords(ctx context.Context, inputs []domain.DocumentInput) ([]string, error) {
	fingerprints := make([]string, len(inputs))

	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(s.pipelineCfg.HashWorkers)
	for i := range inputs {
		g.Go(func() error {
			fp, err := s.hasher.Fingerprint(inputs[i].Identity)
			if err != nil {
				return fmt.Errorf("document %q: %w", inputs[i].DocumentID, err)
			}
			fingerprints[i] = fp
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return fingerprints, nil
}

// resolvePointers uploads inline blobs and returns the final pointer per
// document, in input order.
func (s *BatchServiceImpl) resolvePointers(ctx context.Context, inputs []domain.DocumentInput) ([]string, error) {
	pointers := make([]string, len(inputs))
	for i, doc := range inputs {
		if doc.Pointer != "" {
			pointers[i] = doc.Pointer
			continue
		}
		pointer, err := s.docStore.Store(ctx, doc.EncryptedBlob)
		if err != nil {
			return nil, apperror.ErrStorageUnavailable(fmt.Errorf("upload document %q: %w", doc.DocumentID, err))
		}
		pointers[i] = pointer
	}
	return pointers, nil
}

// persist writes the root and all documents in one transaction so a batch
// is never observable half-written.
func (s *BatchServiceImpl) persist(ctx context.Context, batchID uuid.UUID, root string, docs []domain.BatchDocument) error {
	tx, err := s.transactor.Begin(ctx)
	if err != nil {
		return apperror.ErrDatabaseError(fmt.Errorf("begin tx: %w", err))
	}
	defer tx.Rollback(ctx)

	if err := s.batchRepo.SetMerkleRoot(ctx, tx, batchID, root); err != nil {
		return apperror.ErrDatabaseError(fmt.Errorf("set merkle root: %w", err))
	}
	if err := s.docRepo.CreateAll(ctx, tx, docs); err != nil {
		return apperror.ErrDatabaseError(fmt.Errorf("create documents: %w", err))
	}
	if err := tx.Commit(ctx); err != nil {
		return apperror.ErrDatabaseError(fmt.Errorf("commit documents: %w", err))
	}
	return nil
}

// failProcessing records a pipeline abort and emits the terminal event.
func (s *BatchServiceImpl) failProcessing(ctx context.Context, batchID uuid.UUID, cause error, log zerolog.Logger) {
	if err := s.batchRepo.MarkAnchorFailed(ctx, batchID, cause.Error()); err != nil {
		log.Error().Err(err).Msg("failed to record processing failure")
	}
	s.publish(batchID, domain.StageFailed, cause.Error())
	metrics.BatchesFailed.Inc()
	log.Error().Err(cause).Msg("batch processing failed")
}

func (s *BatchServiceImpl) publish(batchID uuid.UUID, stage domain.Stage, detail string) {
	s.broker.Publish(domain.ProgressEvent{
		Stage:     stage,
		BatchID:   batchID,
		Timestamp: time.Now().UTC(),
		Detail:    detail,
	})
}
