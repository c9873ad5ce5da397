package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/chen-yiru/Vocabulary-review/internal/models"
	"github.com/chen-yiru/Vocabulary-review/internal/session"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ReviewS struct {
	catalog    CatalogAPII
	repo       RepositoryI
	reviewType string
	log        *zap.Logger
}

func NewReviewService(api CatalogAPII, repo RepositoryI, reviewType string, log *zap.Logger) *ReviewS {
	if reviewType == "" {
		reviewType = models.ReviewTypeNormal
	}
	return &ReviewS{
		catalog:    api,
		repo:       repo,
		reviewType: reviewType,
		log:        log,
	}
}

// NewSession builds an engine for one user. The engine starts in the
// loading phase; the caller drives Load.
func (r *ReviewS) NewSession(userID int64) *session.Engine {
	log := r.log.With(zap.Int64("user_id", userID))

	opts := []session.Option{session.WithReviewType(r.reviewType)}
	if r.repo != nil {
		opts = append(opts, session.WithJournal(&userJournal{userID: userID, repo: r.repo}))
	}

	return session.NewEngine(r.catalog, log, opts...)
}

func (r *ReviewS) Render(e *session.Engine) string {
	return RenderSession(e)
}

type userJournal struct {
	userID int64
	repo   RepositoryI
}

func (j *userJournal) AddResult(ctx context.Context, sessionID uuid.UUID, outcome models.ReviewOutcome) error {
	return j.repo.AddResult(ctx, j.userID, sessionID, outcome)
}

func (j *userJournal) AddSession(ctx context.Context, sessionID uuid.UUID, summary models.Summary) error {
	return j.repo.AddSession(ctx, j.userID, sessionID, summary)
}

type SessionViewI interface {
	State() models.SessionState
	CurrentView() (models.View, bool)
	Summary() (models.Summary, bool)
}

// RenderSession turns the engine's observable state into the text shown by
// the chat and terminal shells.
func RenderSession(s SessionViewI) string {
	state := s.State()

	switch state.Phase {
	case models.PhaseLoading:
		return "⏳ Loading review session..."
	case models.PhaseEmpty:
		return "🎉 Nothing is due for review right now."
	case models.PhaseError:
		return fmt.Sprintf("❌ Could not load the session: %s\n\nRestart to try again.", state.Err)
	case models.PhaseCompleted:
		summary, _ := s.Summary()
		return formatSummary(summary)
	}

	view, ok := s.CurrentView()
	if !ok {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(formatCard(view))
	sb.WriteString(fmt.Sprintf("\n\n✅ %d/%d correct", state.Stats.Correct, state.Stats.Total))
	if state.Err != "" {
		sb.WriteString("\n⚠️ ")
		sb.WriteString(state.Err)
	}

	return sb.String()
}

func formatCard(view models.View) string {
	item := view.Item

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("📖 %d/%d (%.0f%%)\n\n", view.Index+1, view.Total, view.ProgressPercent))

	sb.WriteString(item.Word)
	if item.IsHard {
		sb.WriteString(" 🔥")
	}
	sb.WriteString("\n")

	if item.Phonetic != "" {
		sb.WriteString("🔤 /")
		sb.WriteString(item.Phonetic)
		sb.WriteString("/\n")
	}
	if item.PartOfSpeech != "" {
		sb.WriteString("🔖 ")
		sb.WriteString(item.PartOfSpeech)
		sb.WriteString("\n")
	}
	sb.WriteString(familiarityStars(item.Familiarity))

	if !view.Revealed {
		return sb.String()
	}

	sb.WriteString("\n\n💡 ")
	sb.WriteString(item.Meaning)

	if item.Examples != "" {
		sb.WriteString("\n💬 ")
		sb.WriteString(item.Examples)
	}
	if item.Notes != "" {
		sb.WriteString("\n📝 ")
		sb.WriteString(item.Notes)
	}
	if len(item.Tags) > 0 {
		names := make([]string, 0, len(item.Tags))
		for _, t := range item.Tags {
			names = append(names, "#"+t.Name)
		}
		sb.WriteString("\n🏷 ")
		sb.WriteString(strings.Join(names, " "))
	}

	return sb.String()
}

func familiarityStars(level int) string {
	if level < 1 {
		level = 1
	}
	if level > 5 {
		level = 5
	}
	return strings.Repeat("★", level) + strings.Repeat("☆", 5-level)
}

func formatSummary(summary models.Summary) string {
	var sb strings.Builder

	sb.WriteString("🏁 Session complete!\n\n")
	sb.WriteString(fmt.Sprintf("✅ Correct: %d\n", summary.Correct))
	sb.WriteString(fmt.Sprintf("❌ Wrong: %d\n", summary.Total-summary.Correct))
	sb.WriteString(fmt.Sprintf("📊 Accuracy: %d%%", summary.AccuracyPercent))

	return sb.String()
}
