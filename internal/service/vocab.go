package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/chen-yiru/Vocabulary-review/internal/models"
	"github.com/chen-yiru/Vocabulary-review/internal/query"
	"go.uber.org/zap"
)

const historyLimit = 10

type VocabS struct {
	catalog CatalogAPII
	log     *zap.Logger
}

func NewVocabService(api CatalogAPII, log *zap.Logger) *VocabS {
	return &VocabS{
		catalog: api,
		log:     log,
	}
}

// Items fetches one page for the composed query and formats it.
func (v *VocabS) Items(ctx context.Context, q query.Query) (string, models.ItemPage, error) {
	page, err := v.catalog.ListItems(ctx, q)
	if err != nil {
		v.log.Error("failed to list vocabulary", zap.String("query", q.Encode()), zap.Error(err))
		return "", models.ItemPage{}, fmt.Errorf("list vocabulary: %w", err)
	}

	return formatItems(page), page, nil
}

func formatItems(page models.ItemPage) string {
	if page.Total == 0 || len(page.Items) == 0 {
		return "📭 No vocabulary matches the current filters."
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("📚 Page (%d/%d) | Total items (%d):\n\n", page.Page, max(page.PageCount, 1), page.Total))

	for i, item := range page.Items {
		num := (page.Page-1)*page.Size + i + 1
		sb.WriteString(fmt.Sprintf("%d. %s → %s", num, item.Word, item.Meaning))
		if item.IsHard {
			sb.WriteString(" 🔥")
		}
		sb.WriteString("\n   ")
		sb.WriteString(familiarityStars(item.Familiarity))
		if item.NextReviewAt != nil {
			sb.WriteString(" | due ")
			sb.WriteString(item.NextReviewAt.Format(time.DateOnly))
		}

		if i < len(page.Items)-1 {
			sb.WriteString("\n")
		}
	}

	return sb.String()
}

// History shows one item with its latest catalog review logs.
func (v *VocabS) History(ctx context.Context, vocabularyID int64) (string, error) {
	item, err := v.catalog.Item(ctx, vocabularyID)
	if err != nil {
		return "", fmt.Errorf("get vocabulary %d: %w", vocabularyID, err)
	}

	logs, err := v.catalog.ReviewLogs(ctx, vocabularyID, historyLimit)
	if err != nil {
		v.log.Error("failed to load review logs", zap.Int64("vocabulary_id", vocabularyID), zap.Error(err))
		return "", fmt.Errorf("review logs %d: %w", vocabularyID, err)
	}

	return formatHistory(item, logs), nil
}

func formatHistory(item models.VocabularyItem, logs []models.ReviewLog) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("📖 %s → %s\n%s\n", item.Word, item.Meaning, familiarityStars(item.Familiarity)))

	if len(logs) == 0 {
		sb.WriteString("\nNo reviews yet.")
		return sb.String()
	}

	sb.WriteString("\n🕘 Latest reviews:\n")
	for _, l := range logs {
		mark := "❌"
		if l.IsCorrect {
			mark = "✅"
		}
		sb.WriteString(fmt.Sprintf("%s %s", mark, l.CreatedAt.Format(time.DateTime)))
		if l.ResponseTime != nil {
			sb.WriteString(fmt.Sprintf(" (%.1fs)", float64(*l.ResponseTime)/1000))
		}
		sb.WriteString("\n")
	}

	return strings.TrimSpace(sb.String())
}
