// Package session runs one review pass over a snapshot of vocabulary items.
//
// An Engine is created by the presentation shell and owned by it. All state
// transitions happen under the engine's lock; catalog calls are made outside
// of it. Answer submissions are serialized by an explicit in-flight flag, so
// duplicate input collapses into a single outcome per item.
package session

//go:generate mockgen -source=engine.go -destination=mock/engine_mock.go

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/chen-yiru/Vocabulary-review/internal/models"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrCommandRejected = errors.New("command rejected")
	ErrAnswerInFlight  = errors.New("answer already in flight")
	ErrSuperseded      = errors.New("load superseded by a newer load")
)

type CatalogI interface {
	DueItems(ctx context.Context) ([]models.VocabularyItem, error)
	Item(ctx context.Context, id int64) (models.VocabularyItem, error)
	SubmitOutcome(ctx context.Context, outcome models.ReviewOutcome) (models.ReviewLog, error)
}

// Journal receives acknowledged outcomes and finished sessions. Its failures
// never affect the session.
type Journal interface {
	AddResult(ctx context.Context, sessionID uuid.UUID, outcome models.ReviewOutcome) error
	AddSession(ctx context.Context, sessionID uuid.UUID, summary models.Summary) error
}

// Request selects the items of a session. A nil ItemID loads the due queue;
// otherwise exactly that item is reviewed, due or not.
type Request struct {
	ItemID *int64
}

func DueQueue() Request {
	return Request{}
}

func SingleItem(id int64) Request {
	return Request{ItemID: &id}
}

type Option func(*Engine)

func WithReviewType(reviewType string) Option {
	return func(e *Engine) {
		if reviewType != "" {
			e.reviewType = reviewType
		}
	}
}

func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		e.now = now
	}
}

func WithJournal(j Journal) Option {
	return func(e *Engine) {
		e.journal = j
	}
}

type Engine struct {
	catalog    CatalogI
	journal    Journal
	log        *zap.Logger
	now        func() time.Time
	reviewType string

	mu         sync.Mutex
	req        Request
	gen        uint64
	sessionID  uuid.UUID
	items      []models.VocabularyItem
	index      int
	revealed   bool
	revealedAt time.Time
	inFlight   bool
	stats      models.SessionStats
	phase      models.Phase
	errMsg     string
}

func NewEngine(catalog CatalogI, log *zap.Logger, opts ...Option) *Engine {
	e := &Engine{
		catalog:    catalog,
		log:        log,
		now:        time.Now,
		reviewType: models.ReviewTypeNormal,
		phase:      models.PhaseLoading,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Load replaces the whole session with a fresh snapshot for req.
func (e *Engine) Load(ctx context.Context, req Request) error {
	e.mu.Lock()
	if e.inFlight {
		e.mu.Unlock()
		return ErrAnswerInFlight
	}
	e.gen++
	gen := e.gen
	e.req = req
	e.resetLocked()
	sessionID := e.sessionID
	e.mu.Unlock()

	items, err := e.fetch(ctx, req)

	e.mu.Lock()
	defer e.mu.Unlock()

	if gen != e.gen {
		return ErrSuperseded
	}

	if err != nil {
		e.phase = models.PhaseError
		e.errMsg = err.Error()
		e.log.Warn("failed to load review session",
			zap.String("session_id", sessionID.String()),
			zap.Error(err))
		return err
	}

	if len(items) == 0 {
		e.phase = models.PhaseEmpty
		e.log.Info("no items to review", zap.String("session_id", sessionID.String()))
		return nil
	}

	e.items = append([]models.VocabularyItem(nil), items...)
	e.phase = models.PhaseInProgress
	e.log.Info("review session loaded",
		zap.String("session_id", sessionID.String()),
		zap.Int("items", len(e.items)))

	return nil
}

func (e *Engine) fetch(ctx context.Context, req Request) ([]models.VocabularyItem, error) {
	if req.ItemID != nil {
		item, err := e.catalog.Item(ctx, *req.ItemID)
		if err != nil {
			return nil, fmt.Errorf("fetch item %d: %w", *req.ItemID, err)
		}
		return []models.VocabularyItem{item}, nil
	}

	items, err := e.catalog.DueItems(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch due items: %w", err)
	}
	return items, nil
}

func (e *Engine) resetLocked() {
	e.sessionID = uuid.New()
	e.items = nil
	e.index = 0
	e.revealed = false
	e.revealedAt = time.Time{}
	e.stats = models.SessionStats{}
	e.phase = models.PhaseLoading
	e.errMsg = ""
}

// Restart loads the session again with the request of the last Load.
func (e *Engine) Restart(ctx context.Context) error {
	e.mu.Lock()
	req := e.req
	e.mu.Unlock()

	return e.Load(ctx, req)
}

// Reveal shows the answer side of the current item. Revealing twice is a no-op.
func (e *Engine) Reveal() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.phase != models.PhaseInProgress {
		return fmt.Errorf("%w: reveal in phase %s", ErrCommandRejected, e.phase)
	}
	if e.revealed {
		return nil
	}

	e.revealed = true
	e.revealedAt = e.now()
	return nil
}

// Answer submits the outcome of the current item and advances only after the
// catalog acknowledged it. A failed submission leaves the session on the same
// revealed item so the caller may retry.
func (e *Engine) Answer(ctx context.Context, isCorrect bool) error {
	e.mu.Lock()
	if e.phase != models.PhaseInProgress {
		phase := e.phase
		e.mu.Unlock()
		return fmt.Errorf("%w: answer in phase %s", ErrCommandRejected, phase)
	}
	if e.inFlight {
		e.mu.Unlock()
		return ErrAnswerInFlight
	}
	if !e.revealed {
		e.mu.Unlock()
		return fmt.Errorf("%w: answer before reveal", ErrCommandRejected)
	}

	item := e.items[e.index]
	outcome := models.ReviewOutcome{
		VocabularyID: item.ID,
		IsCorrect:    isCorrect,
		ResponseTime: e.now().Sub(e.revealedAt),
		ReviewType:   e.reviewType,
	}
	sessionID := e.sessionID
	e.inFlight = true
	e.mu.Unlock()

	// Once sent, the outcome is waited for even if the caller goes away.
	_, err := e.catalog.SubmitOutcome(context.WithoutCancel(ctx), outcome)

	e.mu.Lock()
	e.inFlight = false

	if err != nil {
		e.errMsg = err.Error()
		e.mu.Unlock()
		e.log.Warn("failed to submit review outcome",
			zap.String("session_id", sessionID.String()),
			zap.Int64("vocabulary_id", item.ID),
			zap.Error(err))
		return fmt.Errorf("submit outcome: %w", err)
	}

	e.errMsg = ""
	e.stats.Total++
	if isCorrect {
		e.stats.Correct++
	}

	completed := e.index == len(e.items)-1
	if completed {
		e.phase = models.PhaseCompleted
	} else {
		e.index++
		e.revealed = false
		e.revealedAt = time.Time{}
	}
	summary := summaryOf(e.stats)
	e.mu.Unlock()

	e.record(ctx, sessionID, outcome, completed, summary)

	return nil
}

func (e *Engine) record(ctx context.Context, sessionID uuid.UUID, outcome models.ReviewOutcome, completed bool, summary models.Summary) {
	if e.journal == nil {
		return
	}

	if err := e.journal.AddResult(ctx, sessionID, outcome); err != nil {
		e.log.Warn("failed to journal review result",
			zap.String("session_id", sessionID.String()),
			zap.Int64("vocabulary_id", outcome.VocabularyID),
			zap.Error(err))
	}

	if !completed {
		return
	}

	if err := e.journal.AddSession(ctx, sessionID, summary); err != nil {
		e.log.Warn("failed to journal review session",
			zap.String("session_id", sessionID.String()),
			zap.Error(err))
	}
	e.log.Info("review session completed",
		zap.String("session_id", sessionID.String()),
		zap.Int("correct", summary.Correct),
		zap.Int("total", summary.Total))
}

func (e *Engine) Phase() models.Phase {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.phase
}

func (e *Engine) State() models.SessionState {
	e.mu.Lock()
	defer e.mu.Unlock()

	return models.SessionState{
		SessionID: e.sessionID,
		Phase:     e.phase,
		Index:     e.index,
		Total:     len(e.items),
		Revealed:  e.revealed,
		InFlight:  e.inFlight,
		Stats:     e.stats,
		Err:       e.errMsg,
	}
}

// CurrentView projects the current item. ok is false outside InProgress.
func (e *Engine) CurrentView() (models.View, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.phase != models.PhaseInProgress {
		return models.View{}, false
	}

	total := len(e.items)
	return models.View{
		Item:            e.items[e.index],
		Index:           e.index,
		Total:           total,
		Revealed:        e.revealed,
		ProgressPercent: float64(e.index+1) / float64(total) * 100,
	}, true
}

// Summary is only available once the session is completed.
func (e *Engine) Summary() (models.Summary, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.phase != models.PhaseCompleted {
		return models.Summary{}, false
	}
	return summaryOf(e.stats), true
}

func summaryOf(stats models.SessionStats) models.Summary {
	return models.Summary{
		Correct:         stats.Correct,
		Total:           stats.Total,
		AccuracyPercent: stats.Accuracy(),
	}
}
