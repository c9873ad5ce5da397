package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/chen-yiru/Vocabulary-review/internal/models"
	"github.com/chen-yiru/Vocabulary-review/internal/query"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	recentItemsCount   = 5
	recentResultsCount = 10
)

type Dashboard struct {
	DueCount int
	Recent   []models.VocabularyItem
	Catalog  models.ReviewStats
	Journal  models.JournalStats
	// LastResults is newest first.
	LastResults []models.JournalResult
	// HasJournal is false when local totals were unavailable.
	HasJournal bool
}

type StatsS struct {
	catalog CatalogAPII
	repo    RepositoryI
	log     *zap.Logger
}

func NewStatsService(api CatalogAPII, repo RepositoryI, log *zap.Logger) *StatsS {
	return &StatsS{
		catalog: api,
		repo:    repo,
		log:     log,
	}
}

// Dashboard gathers the overview concurrently. Catalog failures fail the
// whole call; a journal failure only drops the local totals.
func (s *StatsS) Dashboard(ctx context.Context, userID int64) (Dashboard, error) {
	var d Dashboard

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		due, err := s.catalog.DueItems(gctx)
		if err != nil {
			return fmt.Errorf("due items: %w", err)
		}
		d.DueCount = len(due)
		return nil
	})

	g.Go(func() error {
		q := query.Compose(models.FilterSpec{}, &models.PageSpec{Page: 1, Size: recentItemsCount})
		page, err := s.catalog.ListItems(gctx, q)
		if err != nil {
			return fmt.Errorf("recent items: %w", err)
		}
		d.Recent = page.Items
		return nil
	})

	g.Go(func() error {
		stats, err := s.catalog.ReviewStats(gctx)
		if err != nil {
			return fmt.Errorf("review stats: %w", err)
		}
		d.Catalog = stats
		return nil
	})

	if s.repo != nil {
		g.Go(func() error {
			stats, err := s.repo.JournalStats(gctx, userID)
			if err != nil {
				s.log.Warn("failed to load journal stats", zap.Int64("user_id", userID), zap.Error(err))
				return nil
			}

			results, err := s.repo.RecentResults(gctx, userID, recentResultsCount)
			if err != nil {
				s.log.Warn("failed to load recent results", zap.Int64("user_id", userID), zap.Error(err))
			}

			d.Journal = stats
			d.LastResults = results
			d.HasJournal = true
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return Dashboard{}, err
	}

	return d, nil
}

func (s *StatsS) DashboardText(ctx context.Context, userID int64) (string, error) {
	d, err := s.Dashboard(ctx, userID)
	if err != nil {
		return "", err
	}

	return formatDashboard(d), nil
}

func formatDashboard(d Dashboard) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("⏰ Due now: %d\n", d.DueCount))
	sb.WriteString(fmt.Sprintf("📚 Vocabulary: %d (hard: %d)\n", d.Catalog.TotalVocabularies, d.Catalog.HardVocabularies))
	sb.WriteString(fmt.Sprintf("🧠 Reviews: %d total, %d today, %.1f%% accuracy\n",
		d.Catalog.TotalReviews, d.Catalog.TodayReviews, d.Catalog.AccuracyRate))

	if d.HasJournal {
		sb.WriteString(fmt.Sprintf("📒 Your sessions: %d | ✅ %d | ❌ %d\n",
			d.Journal.SessionCount, d.Journal.RightCount, d.Journal.WrongCount))
		if len(d.LastResults) > 0 {
			sb.WriteString("🕘 Last answers: ")
			for i := len(d.LastResults) - 1; i >= 0; i-- {
				if d.LastResults[i].IsCorrect {
					sb.WriteString("✅")
				} else {
					sb.WriteString("❌")
				}
			}
			sb.WriteString("\n")
		}
	}

	if len(d.Recent) > 0 {
		sb.WriteString("\n🆕 Recently added:\n")
		for _, item := range d.Recent {
			sb.WriteString("• ")
			sb.WriteString(item.Word)
			sb.WriteString(" → ")
			sb.WriteString(item.Meaning)
			sb.WriteString("\n")
		}
	}

	return strings.TrimSpace(sb.String())
}
