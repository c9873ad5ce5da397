package service

import (
	"context"

	"github.com/chen-yiru/Vocabulary-review/internal/models"
	"github.com/chen-yiru/Vocabulary-review/internal/query"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

//go:generate mockgen -source=service.go -destination=mock/service_mock.go

type CatalogAPII interface {
	DueItems(ctx context.Context) ([]models.VocabularyItem, error)
	Item(ctx context.Context, id int64) (models.VocabularyItem, error)
	SubmitOutcome(ctx context.Context, outcome models.ReviewOutcome) (models.ReviewLog, error)
	ListItems(ctx context.Context, q query.Query) (models.ItemPage, error)
	ReviewStats(ctx context.Context) (models.ReviewStats, error)
	ReviewLogs(ctx context.Context, vocabularyID int64, limit int) ([]models.ReviewLog, error)
	Tags(ctx context.Context) ([]models.Tag, error)
	CreateTag(ctx context.Context, req models.TagCreateRequest) (models.Tag, error)
}

type RepositoryI interface {
	AddResult(ctx context.Context, userID int64, sessionID uuid.UUID, outcome models.ReviewOutcome) error
	AddSession(ctx context.Context, userID int64, sessionID uuid.UUID, summary models.Summary) error
	JournalStats(ctx context.Context, userID int64) (models.JournalStats, error)
	RecentResults(ctx context.Context, userID int64, limit int) ([]models.JournalResult, error)
}

type Service struct {
	*ReviewS
	*VocabS
	*StatsS
	*TagS
}

// InitServices wires the services. repo may be nil, in which case sessions
// are not journaled and the dashboard omits local totals.
func InitServices(api CatalogAPII, repo RepositoryI, reviewType string, log *zap.Logger) *Service {
	return &Service{
		ReviewS: NewReviewService(api, repo, reviewType, log),
		VocabS:  NewVocabService(api, log),
		StatsS:  NewStatsService(api, repo, log),
		TagS:    NewTagService(api, log),
	}
}
