package session

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/chen-yiru/Vocabulary-review/internal/models"
	mock_session "github.com/chen-yiru/Vocabulary-review/internal/session/mock"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var (
	w1 = models.VocabularyItem{ID: 1, Word: "abandon", Meaning: "放棄", Familiarity: 2}
	w2 = models.VocabularyItem{ID: 2, Word: "benign", Meaning: "良性的", Familiarity: 4, IsHard: true}
)

func fixedClock() func() time.Time {
	var mu sync.Mutex
	t := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	return func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		t = t.Add(1500 * time.Millisecond)
		return t
	}
}

func newEngineMock(t *testing.T, ctrl *gomock.Controller, setupMock func(*mock_session.MockCatalogI)) *Engine {
	catalog := mock_session.NewMockCatalogI(ctrl)
	if setupMock != nil {
		setupMock(catalog)
	}

	return NewEngine(catalog, zap.NewNop(), WithClock(fixedClock()))
}

func TestEngine_Load(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		req       Request
		f         func(*mock_session.MockCatalogI)
		wantPhase models.Phase
		wantTotal int
		wantErr   error
	}{
		{
			name: "due queue keeps catalog order",
			req:  DueQueue(),
			f: func(mc *mock_session.MockCatalogI) {
				mc.EXPECT().DueItems(gomock.Any()).Return([]models.VocabularyItem{w2, w1}, nil)
			},
			wantPhase: models.PhaseInProgress,
			wantTotal: 2,
		},
		{
			name: "empty due queue",
			req:  DueQueue(),
			f: func(mc *mock_session.MockCatalogI) {
				mc.EXPECT().DueItems(gomock.Any()).Return([]models.VocabularyItem{}, nil)
			},
			wantPhase: models.PhaseEmpty,
		},
		{
			name: "single item ignores due queue",
			req:  SingleItem(42),
			f: func(mc *mock_session.MockCatalogI) {
				mc.EXPECT().Item(gomock.Any(), int64(42)).Return(models.VocabularyItem{ID: 42, Word: "zenith"}, nil)
			},
			wantPhase: models.PhaseInProgress,
			wantTotal: 1,
		},
		{
			name: "transport failure",
			req:  DueQueue(),
			f: func(mc *mock_session.MockCatalogI) {
				mc.EXPECT().DueItems(gomock.Any()).Return(nil, &models.TransportError{Op: "due items", Err: errors.New("connection refused")})
			},
			wantPhase: models.PhaseError,
			wantErr:   models.ErrTransport,
		},
		{
			name: "unknown single item",
			req:  SingleItem(7),
			f: func(mc *mock_session.MockCatalogI) {
				mc.EXPECT().Item(gomock.Any(), int64(7)).Return(models.VocabularyItem{}, &models.NotFoundError{Resource: "vocabulary", ID: 7})
			},
			wantPhase: models.PhaseError,
			wantErr:   models.ErrNotFound,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			e := newEngineMock(t, ctrl, tt.f)

			err := e.Load(context.Background(), tt.req)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}

			st := e.State()
			assert.Equal(t, tt.wantPhase, st.Phase)
			assert.Equal(t, tt.wantTotal, st.Total)
			assert.Equal(t, 0, st.Index)
			assert.False(t, st.Revealed)
			assert.Equal(t, models.SessionStats{}, st.Stats)
			if tt.wantErr != nil {
				assert.NotEmpty(t, st.Err)
			} else {
				assert.Empty(t, st.Err)
			}
		})
	}
}

func TestEngine_ScenarioA(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	var submitted []models.ReviewOutcome
	e := newEngineMock(t, ctrl, func(mc *mock_session.MockCatalogI) {
		mc.EXPECT().DueItems(gomock.Any()).Return([]models.VocabularyItem{w1, w2}, nil)
		mc.EXPECT().SubmitOutcome(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, o models.ReviewOutcome) (models.ReviewLog, error) {
				submitted = append(submitted, o)
				return models.ReviewLog{ID: int64(len(submitted)), VocabularyID: o.VocabularyID}, nil
			}).Times(2)
	})
	ctx := context.Background()

	require.NoError(t, e.Load(ctx, DueQueue()))

	view, ok := e.CurrentView()
	require.True(t, ok)
	assert.Equal(t, w1, view.Item)
	assert.InDelta(t, 50.0, view.ProgressPercent, 0.001)

	require.NoError(t, e.Reveal())
	require.NoError(t, e.Answer(ctx, true))

	view, ok = e.CurrentView()
	require.True(t, ok)
	assert.Equal(t, w2, view.Item)
	assert.Equal(t, 1, view.Index)
	assert.Equal(t, 2, view.Total)
	assert.False(t, view.Revealed)
	assert.InDelta(t, 100.0, view.ProgressPercent, 0.001)
	assert.Equal(t, models.SessionStats{Correct: 1, Total: 1}, e.State().Stats)

	_, ok = e.Summary()
	assert.False(t, ok)

	require.NoError(t, e.Reveal())
	require.NoError(t, e.Answer(ctx, false))

	assert.Equal(t, models.PhaseCompleted, e.Phase())
	summary, ok := e.Summary()
	require.True(t, ok)
	assert.Equal(t, models.Summary{Correct: 1, Total: 2, AccuracyPercent: 50}, summary)

	_, ok = e.CurrentView()
	assert.False(t, ok)

	require.Len(t, submitted, 2)
	assert.Equal(t, int64(1), submitted[0].VocabularyID)
	assert.True(t, submitted[0].IsCorrect)
	assert.Equal(t, models.ReviewTypeNormal, submitted[0].ReviewType)
	assert.Equal(t, 1500*time.Millisecond, submitted[0].ResponseTime)
	assert.Equal(t, int64(2), submitted[1].VocabularyID)
	assert.False(t, submitted[1].IsCorrect)
}

func TestEngine_ScenarioB(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	e := newEngineMock(t, ctrl, func(mc *mock_session.MockCatalogI) {
		mc.EXPECT().DueItems(gomock.Any()).Return(nil, nil)
	})

	require.NoError(t, e.Load(context.Background(), DueQueue()))

	assert.Equal(t, models.PhaseEmpty, e.Phase())
	_, ok := e.Summary()
	assert.False(t, ok)
	_, ok = e.CurrentView()
	assert.False(t, ok)
	require.ErrorIs(t, e.Reveal(), ErrCommandRejected)
	require.ErrorIs(t, e.Answer(context.Background(), true), ErrCommandRejected)
}

func TestEngine_ScenarioC(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	item42 := models.VocabularyItem{ID: 42, Word: "zenith", Meaning: "頂點"}
	e := newEngineMock(t, ctrl, func(mc *mock_session.MockCatalogI) {
		mc.EXPECT().Item(gomock.Any(), int64(42)).Return(item42, nil)
		mc.EXPECT().SubmitOutcome(gomock.Any(), gomock.Any()).Return(models.ReviewLog{ID: 1}, nil)
	})
	ctx := context.Background()

	require.NoError(t, e.Load(ctx, SingleItem(42)))
	view, ok := e.CurrentView()
	require.True(t, ok)
	assert.Equal(t, item42, view.Item)
	assert.Equal(t, 1, view.Total)

	require.NoError(t, e.Reveal())
	require.NoError(t, e.Answer(ctx, true))

	assert.Equal(t, models.PhaseCompleted, e.Phase())
	summary, ok := e.Summary()
	require.True(t, ok)
	assert.Equal(t, models.Summary{Correct: 1, Total: 1, AccuracyPercent: 100}, summary)
}

func TestEngine_ScenarioD(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	e := newEngineMock(t, ctrl, func(mc *mock_session.MockCatalogI) {
		mc.EXPECT().DueItems(gomock.Any()).Return([]models.VocabularyItem{w1, w2}, nil)
		gomock.InOrder(
			mc.EXPECT().SubmitOutcome(gomock.Any(), gomock.Any()).
				Return(models.ReviewLog{}, &models.ValidationError{Message: "is_correct required"}),
			mc.EXPECT().SubmitOutcome(gomock.Any(), gomock.Any()).
				Return(models.ReviewLog{ID: 9}, nil),
		)
	})
	ctx := context.Background()

	require.NoError(t, e.Load(ctx, DueQueue()))
	require.NoError(t, e.Reveal())

	err := e.Answer(ctx, true)
	require.ErrorIs(t, err, models.ErrValidation)

	st := e.State()
	assert.Equal(t, models.PhaseInProgress, st.Phase)
	assert.True(t, st.Revealed)
	assert.False(t, st.InFlight)
	assert.Equal(t, 0, st.Index)
	assert.Equal(t, models.SessionStats{}, st.Stats)
	assert.Contains(t, st.Err, "is_correct required")

	require.NoError(t, e.Answer(ctx, true))

	st = e.State()
	assert.Equal(t, 1, st.Index)
	assert.Equal(t, models.SessionStats{Correct: 1, Total: 1}, st.Stats)
	assert.Empty(t, st.Err)
}

func TestEngine_RevealIdempotent(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	e := newEngineMock(t, ctrl, func(mc *mock_session.MockCatalogI) {
		mc.EXPECT().DueItems(gomock.Any()).Return([]models.VocabularyItem{w1}, nil)
	})

	require.NoError(t, e.Load(context.Background(), DueQueue()))
	require.NoError(t, e.Reveal())
	once := e.State()
	revealedAt := e.revealedAt

	require.NoError(t, e.Reveal())
	assert.Equal(t, once, e.State())
	assert.Equal(t, revealedAt, e.revealedAt)
}

func TestEngine_AnswerBeforeReveal(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	e := newEngineMock(t, ctrl, func(mc *mock_session.MockCatalogI) {
		mc.EXPECT().DueItems(gomock.Any()).Return([]models.VocabularyItem{w1}, nil)
	})

	require.NoError(t, e.Load(context.Background(), DueQueue()))

	err := e.Answer(context.Background(), true)
	require.ErrorIs(t, err, ErrCommandRejected)
	assert.Equal(t, models.SessionStats{}, e.State().Stats)
}

func TestEngine_ConcurrentAnswersCollapse(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	started := make(chan struct{})
	release := make(chan struct{})

	e := newEngineMock(t, ctrl, func(mc *mock_session.MockCatalogI) {
		mc.EXPECT().DueItems(gomock.Any()).Return([]models.VocabularyItem{w1, w2}, nil)
		mc.EXPECT().SubmitOutcome(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, o models.ReviewOutcome) (models.ReviewLog, error) {
				close(started)
				<-release
				return models.ReviewLog{ID: 1, VocabularyID: o.VocabularyID}, nil
			}).Times(1)
	})
	ctx := context.Background()

	require.NoError(t, e.Load(ctx, DueQueue()))
	require.NoError(t, e.Reveal())

	first := make(chan error, 1)
	go func() { first <- e.Answer(ctx, true) }()
	<-started

	assert.True(t, e.State().InFlight)
	require.ErrorIs(t, e.Answer(ctx, true), ErrAnswerInFlight)
	require.ErrorIs(t, e.Answer(ctx, false), ErrAnswerInFlight)
	require.ErrorIs(t, e.Restart(ctx), ErrAnswerInFlight)

	close(release)
	require.NoError(t, <-first)

	st := e.State()
	assert.Equal(t, models.SessionStats{Correct: 1, Total: 1}, st.Stats)
	assert.Equal(t, 1, st.Index)
	assert.False(t, st.InFlight)
}

func TestEngine_StatsNeverOvercount(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	items := []models.VocabularyItem{{ID: 1}, {ID: 2}, {ID: 3}}
	results := []error{nil, errors.New("boom"), nil, errors.New("boom"), errors.New("boom"), nil}
	acked := 0

	e := newEngineMock(t, ctrl, func(mc *mock_session.MockCatalogI) {
		mc.EXPECT().DueItems(gomock.Any()).Return(items, nil)
		calls := 0
		mc.EXPECT().SubmitOutcome(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, _ models.ReviewOutcome) (models.ReviewLog, error) {
				err := results[calls]
				calls++
				if err != nil {
					return models.ReviewLog{}, &models.TransportError{Op: "submit", Err: err}
				}
				acked++
				return models.ReviewLog{ID: int64(calls)}, nil
			}).Times(len(results))
	})
	ctx := context.Background()

	require.NoError(t, e.Load(ctx, DueQueue()))

	for range results {
		_ = e.Reveal()
		before := e.State()
		err := e.Answer(ctx, true)

		after := e.State()
		assert.Equal(t, acked, after.Stats.Total)
		if err != nil {
			assert.Equal(t, before.Index, after.Index)
			assert.Equal(t, before.Revealed, after.Revealed)
		}
	}

	assert.Equal(t, models.PhaseCompleted, e.Phase())
	summary, ok := e.Summary()
	require.True(t, ok)
	assert.Equal(t, 3, summary.Total)
}

func TestEngine_RestartResetsState(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	e := newEngineMock(t, ctrl, func(mc *mock_session.MockCatalogI) {
		mc.EXPECT().Item(gomock.Any(), int64(1)).Return(w1, nil).Times(2)
		mc.EXPECT().SubmitOutcome(gomock.Any(), gomock.Any()).Return(models.ReviewLog{ID: 1}, nil)
	})
	ctx := context.Background()

	require.NoError(t, e.Load(ctx, SingleItem(1)))
	firstID := e.State().SessionID
	require.NoError(t, e.Reveal())
	require.NoError(t, e.Answer(ctx, false))
	require.Equal(t, models.PhaseCompleted, e.Phase())

	require.NoError(t, e.Restart(ctx))

	st := e.State()
	assert.Equal(t, models.PhaseInProgress, st.Phase)
	assert.Equal(t, 0, st.Index)
	assert.False(t, st.Revealed)
	assert.Equal(t, models.SessionStats{}, st.Stats)
	assert.NotEqual(t, firstID, st.SessionID)
}

func TestEngine_RestartAfterLoadError(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	e := newEngineMock(t, ctrl, func(mc *mock_session.MockCatalogI) {
		gomock.InOrder(
			mc.EXPECT().DueItems(gomock.Any()).Return(nil, &models.TransportError{Op: "due items", Err: errors.New("timeout")}),
			mc.EXPECT().DueItems(gomock.Any()).Return([]models.VocabularyItem{w1}, nil),
		)
	})
	ctx := context.Background()

	require.Error(t, e.Load(ctx, DueQueue()))
	assert.Equal(t, models.PhaseError, e.Phase())

	require.NoError(t, e.Restart(ctx))
	st := e.State()
	assert.Equal(t, models.PhaseInProgress, st.Phase)
	assert.Empty(t, st.Err)
}

func TestEngine_SupersededLoad(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	started := make(chan struct{})
	release := make(chan struct{})

	e := newEngineMock(t, ctrl, func(mc *mock_session.MockCatalogI) {
		mc.EXPECT().DueItems(gomock.Any()).DoAndReturn(
			func(_ context.Context) ([]models.VocabularyItem, error) {
				close(started)
				<-release
				return []models.VocabularyItem{w1, w2}, nil
			})
		mc.EXPECT().Item(gomock.Any(), int64(2)).Return(w2, nil)
	})
	ctx := context.Background()

	slow := make(chan error, 1)
	go func() { slow <- e.Load(ctx, DueQueue()) }()
	<-started

	require.NoError(t, e.Load(ctx, SingleItem(2)))
	close(release)
	require.ErrorIs(t, <-slow, ErrSuperseded)

	view, ok := e.CurrentView()
	require.True(t, ok)
	assert.Equal(t, 1, view.Total)
	assert.Equal(t, w2, view.Item)
}

func TestEngine_Journal(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	catalog := mock_session.NewMockCatalogI(ctrl)
	journal := mock_session.NewMockJournal(ctrl)

	catalog.EXPECT().DueItems(gomock.Any()).Return([]models.VocabularyItem{w1, w2}, nil)
	catalog.EXPECT().SubmitOutcome(gomock.Any(), gomock.Any()).Return(models.ReviewLog{ID: 1}, nil).Times(2)
	journal.EXPECT().AddResult(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	journal.EXPECT().AddResult(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("db down"))
	journal.EXPECT().AddSession(gomock.Any(), gomock.Any(), models.Summary{Correct: 2, Total: 2, AccuracyPercent: 100}).Return(nil)

	e := NewEngine(catalog, zap.NewNop(), WithJournal(journal), WithReviewType("cram"))
	ctx := context.Background()

	require.NoError(t, e.Load(ctx, DueQueue()))
	for i := 0; i < 2; i++ {
		require.NoError(t, e.Reveal())
		require.NoError(t, e.Answer(ctx, true))
	}

	assert.Equal(t, models.PhaseCompleted, e.Phase())
	assert.Equal(t, models.SessionStats{Correct: 2, Total: 2}, e.State().Stats)
}

func TestEngine_CancelledCallerStillWaits(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	e := newEngineMock(t, ctrl, func(mc *mock_session.MockCatalogI) {
		mc.EXPECT().DueItems(gomock.Any()).Return([]models.VocabularyItem{w1}, nil)
		mc.EXPECT().SubmitOutcome(gomock.Any(), gomock.Any()).DoAndReturn(
			func(ctx context.Context, _ models.ReviewOutcome) (models.ReviewLog, error) {
				return models.ReviewLog{ID: 1}, ctx.Err()
			})
	})

	require.NoError(t, e.Load(context.Background(), DueQueue()))
	require.NoError(t, e.Reveal())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.NoError(t, e.Answer(ctx, true))
	assert.Equal(t, models.PhaseCompleted, e.Phase())
}
