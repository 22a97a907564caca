package service

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/sales-admin/internal/adapter"
	"github.com/MKhiriev/sales-admin/internal/logger"
	"github.com/MKhiriev/sales-admin/internal/store"
	"github.com/MKhiriev/sales-admin/internal/utils"
	"github.com/MKhiriev/sales-admin/internal/validators"
	"github.com/MKhiriev/sales-admin/models"
)

type draftService struct {
	kind      models.EntityKind
	steps     []string
	adapter   adapter.ServerAdapter
	drafts    store.DraftRepository
	validator validators.Validator
	ids       *utils.UUIDGenerator
	logger    *logger.Logger
	now       func() time.Time

	mu    sync.Mutex
	draft models.Draft

	// snapshotMu orders snapshot writes against snapshot deletes. It is
	// always taken before mu.
	snapshotMu    sync.Mutex
	savedDraftID  string
	savedRevision int64
}

// NewClientDraftService returns the wizard controller for clients.
func NewClientDraftService(serverAdapter adapter.ServerAdapter, drafts store.DraftRepository, validator validators.Validator, logger *logger.Logger) DraftService {
	return newDraftService(models.KindClient, validators.ClientSteps, serverAdapter, drafts, validator, logger)
}

// NewAgentDraftService returns the wizard controller for agents.
func NewAgentDraftService(serverAdapter adapter.ServerAdapter, drafts store.DraftRepository, validator validators.Validator, logger *logger.Logger) DraftService {
	return newDraftService(models.KindAgent, validators.AgentSteps, serverAdapter, drafts, validator, logger)
}

func newDraftService(kind models.EntityKind, steps []string, serverAdapter adapter.ServerAdapter, drafts store.DraftRepository, validator validators.Validator, logger *logger.Logger) *draftService {
	return &draftService{
		kind:      kind,
		steps:     slices.Clone(steps),
		adapter:   serverAdapter,
		drafts:    drafts,
		validator: validator,
		ids:       utils.NewUUIDGenerator(),
		logger:    logger.WithComponent(kind.String() + "-drafts"),
		now:       time.Now,
		draft:     models.Draft{Kind: kind},
	}
}

func (s *draftService) Kind() models.EntityKind {
	return s.kind
}

func (s *draftService) Steps() []string {
	return slices.Clone(s.steps)
}

func (s *draftService) StartCreate(_ context.Context) (models.Draft, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.draft.State == models.DraftCommitting {
		return s.draft.Clone(), ErrDraftCommitting
	}
	s.draft = s.fresh(false, "")
	s.logger.Debug().Str("draft_id", s.draft.DraftID).Msg("draft started")
	return s.draft.Clone(), nil
}

func (s *draftService) StartEdit(ctx context.Context, id models.ID) (models.Draft, error) {
	if id.IsZero() {
		return models.Draft{}, ErrMissingID
	}

	s.mu.Lock()
	if s.draft.State == models.DraftCommitting {
		defer s.mu.Unlock()
		return s.draft.Clone(), ErrDraftCommitting
	}
	s.draft = s.fresh(true, id)
	placeholder := s.draft.Clone()
	s.mu.Unlock()

	fields, err := s.adapter.Fetch(ctx, s.kind, id)
	if err != nil {
		s.logger.Err(err).Str("func", "draftService.StartEdit").Str("id", id.String()).Msg("failed to fetch entity")
		return placeholder, mapAdapterError(err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.draft.DraftID != placeholder.DraftID {
		// Replaced while fetching; the newer draft wins.
		s.logger.Debug().Str("draft_id", placeholder.DraftID).Msg("fetched entity discarded")
		return s.draft.Clone(), nil
	}

	// Server fields go under anything typed while the fetch was running.
	s.draft.Fields = fields.Merge(s.draft.Fields)
	s.touch()
	return s.draft.Clone(), nil
}

func (s *draftService) UpdateField(patch models.Fields) (models.Draft, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkEditable(); err != nil {
		return s.draft.Clone(), err
	}
	s.draft.Fields = s.draft.Fields.Merge(patch)
	s.touch()
	return s.draft.Clone(), nil
}

func (s *draftService) Apply(step string, patch models.Fields) (models.Confirmation, error) {
	if !slices.Contains(s.steps, step) {
		return models.Confirmation{}, fmt.Errorf("%w: %q", ErrUnknownStep, step)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkEditable(); err != nil {
		return models.Confirmation{}, err
	}

	s.draft.Fields = s.draft.Fields.Merge(patch)
	s.touch()
	if s.draft.Applied == nil {
		s.draft.Applied = make(map[string]int64, len(s.steps))
	}
	s.draft.Applied[step] = s.draft.Revision
	s.draft.Step = step

	pending := s.draft.PendingSteps(s.steps)
	if len(pending) == 0 {
		s.draft.State = models.DraftReadyToCommit
	} else {
		s.draft.State = models.DraftInProgress
	}

	s.logger.Debug().
		Str("step", step).
		Int64("revision", s.draft.Revision).
		Strs("pending", pending).
		Msg("step applied")

	return models.Confirmation{
		Step:     step,
		Revision: s.draft.Revision,
		State:    s.draft.State,
		Pending:  pending,
	}, nil
}

func (s *draftService) Commit(ctx context.Context) (models.ID, error) {
	s.mu.Lock()
	if err := s.checkEditable(); err != nil {
		s.mu.Unlock()
		return "", err
	}
	if pending := s.draft.PendingSteps(s.steps); len(pending) > 0 {
		s.mu.Unlock()
		return "", fmt.Errorf("%w: %s", ErrStepsPending, strings.Join(pending, ", "))
	}

	draft := s.draft.Clone()
	entity, err := s.entityOf(ctx, draft)
	if err != nil {
		s.mu.Unlock()
		return "", err
	}
	s.draft.State = models.DraftCommitting
	s.mu.Unlock()

	id, err := s.save(ctx, entity, draft)

	s.mu.Lock()
	if err != nil {
		s.draft.State = models.DraftReadyToCommit
		s.mu.Unlock()
		s.logger.Err(err).Str("func", "draftService.Commit").Str("draft_id", draft.DraftID).Msg("failed to save entity")
		return "", mapAdapterError(err)
	}
	s.draft = models.Draft{Kind: s.kind, State: models.DraftCommitted, UpdatedAt: s.now()}
	s.mu.Unlock()

	s.logger.Info().Str("id", id.String()).Bool("updating", draft.Updating).Msg("entity saved")
	s.forgetSnapshot(ctx, draft.DraftID)
	return id, nil
}

func (s *draftService) Discard(ctx context.Context) error {
	s.mu.Lock()
	if s.draft.State == models.DraftCommitting {
		s.mu.Unlock()
		return ErrDraftCommitting
	}
	draftID := s.draft.DraftID
	s.draft = models.Draft{Kind: s.kind, UpdatedAt: s.now()}
	s.mu.Unlock()

	if draftID != "" {
		s.forgetSnapshot(ctx, draftID)
	}
	return nil
}

func (s *draftService) Draft() models.Draft {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.draft.Clone()
}

func (s *draftService) Restore(ctx context.Context) (bool, error) {
	if s.drafts == nil {
		return false, nil
	}

	s.snapshotMu.Lock()
	defer s.snapshotMu.Unlock()

	snapshot, err := s.drafts.LoadLatestDraft(ctx, s.kind)
	if errors.Is(err, store.ErrDraftNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("load %s draft: %w", s.kind, err)
	}

	// A commit interrupted mid-flight may or may not have reached the
	// backend; the user decides by committing again.
	if snapshot.State == models.DraftCommitting {
		snapshot.State = models.DraftReadyToCommit
	}
	if !snapshot.Active() || snapshot.Kind != s.kind || snapshot.DraftID == "" {
		return false, nil
	}
	if snapshot.Fields == nil {
		snapshot.Fields = models.Fields{}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.draft.Active() || s.draft.State == models.DraftCommitting {
		return false, nil
	}
	s.draft = snapshot
	s.savedDraftID, s.savedRevision = snapshot.DraftID, snapshot.Revision

	s.logger.Info().Str("draft_id", snapshot.DraftID).Msg("draft restored")
	return true, nil
}

func (s *draftService) Autosave(ctx context.Context) (bool, error) {
	if s.drafts == nil {
		return false, nil
	}

	s.snapshotMu.Lock()
	defer s.snapshotMu.Unlock()

	s.mu.Lock()
	draft := s.draft.Clone()
	s.mu.Unlock()

	if !draft.Active() {
		return false, nil
	}
	if draft.DraftID == s.savedDraftID && draft.Revision == s.savedRevision {
		return false, nil
	}

	if err := s.drafts.SaveDraft(ctx, draft); err != nil {
		return false, fmt.Errorf("save %s draft: %w", s.kind, err)
	}
	s.savedDraftID, s.savedRevision = draft.DraftID, draft.Revision
	return true, nil
}

// forgetSnapshot removes the local snapshot of draftID. Failures are only
// logged: a stale snapshot is dropped by the next save of this kind.
func (s *draftService) forgetSnapshot(ctx context.Context, draftID string) {
	if s.drafts == nil {
		return
	}

	s.snapshotMu.Lock()
	defer s.snapshotMu.Unlock()

	if err := s.drafts.DeleteDraft(context.WithoutCancel(ctx), draftID); err != nil {
		s.logger.Warn().Err(err).Str("draft_id", draftID).Msg("failed to delete draft snapshot")
	}
	if s.savedDraftID == draftID {
		s.savedDraftID, s.savedRevision = "", 0
	}
}

// checkEditable must be called with mu held.
func (s *draftService) checkEditable() error {
	switch s.draft.State {
	case models.DraftInProgress, models.DraftReadyToCommit:
		return nil
	case models.DraftCommitting:
		return ErrDraftCommitting
	default:
		return ErrNoDraft
	}
}

// touch must be called with mu held.
func (s *draftService) touch() {
	s.draft.Revision++
	s.draft.UpdatedAt = s.now()
}

func (s *draftService) fresh(updating bool, id models.ID) models.Draft {
	return models.Draft{
		DraftID:   s.ids.Generate(),
		Kind:      s.kind,
		ID:        id,
		Updating:  updating,
		Fields:    models.Fields{},
		State:     models.DraftInProgress,
		Applied:   make(map[string]int64, len(s.steps)),
		UpdatedAt: s.now(),
	}
}

// entityOf decodes the draft into its typed record and validates it.
func (s *draftService) entityOf(ctx context.Context, draft models.Draft) (any, error) {
	var entity any
	switch s.kind {
	case models.KindClient:
		var c models.Client
		if err := draft.Values().Decode(&c); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidDraft, err)
		}
		c.ID = draft.ID
		entity = c
	case models.KindAgent:
		var a models.Agent
		if err := draft.Values().Decode(&a); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidDraft, err)
		}
		a.ID = draft.ID
		entity = a
	default:
		return nil, fmt.Errorf("%w: %q", models.ErrUnknownEntityKind, s.kind)
	}

	if err := s.validator.Validate(ctx, entity); err != nil {
		return nil, err
	}
	return entity, nil
}

// save creates or updates entity depending on draft.Updating and returns
// the persisted id.
func (s *draftService) save(ctx context.Context, entity any, draft models.Draft) (models.ID, error) {
	var id models.ID
	switch e := entity.(type) {
	case models.Client:
		saved, err := s.saveClient(ctx, e, draft.Updating)
		if err != nil {
			return "", err
		}
		id = saved.ID
	case models.Agent:
		saved, err := s.saveAgent(ctx, e, draft.Updating)
		if err != nil {
			return "", err
		}
		id = saved.ID
	}

	if id.IsZero() {
		id = draft.ID
	}
	return id, nil
}

func (s *draftService) saveClient(ctx context.Context, c models.Client, updating bool) (models.Client, error) {
	if updating {
		return s.adapter.UpdateClient(ctx, c)
	}
	return s.adapter.CreateClient(ctx, c)
}

func (s *draftService) saveAgent(ctx context.Context, a models.Agent, updating bool) (models.Agent, error) {
	if updating {
		return s.adapter.UpdateAgent(ctx, a)
	}
	return s.adapter.CreateAgent(ctx, a)
}
