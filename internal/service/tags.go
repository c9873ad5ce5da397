package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/chen-yiru/Vocabulary-review/internal/models"
	"go.uber.org/zap"
)

var ErrDuplicateTag = errors.New("tag already exists")

type TagS struct {
	catalog CatalogAPII
	log     *zap.Logger

	mu      sync.Mutex
	pending map[int64][]models.TagRef
	// reconciling marks users whose pending tags are being created.
	reconciling map[int64]bool
}

func NewTagService(api CatalogAPII, log *zap.Logger) *TagS {
	return &TagS{
		catalog: api,
		log:     log,
		pending: make(map[int64][]models.TagRef),

		reconciling: make(map[int64]bool),
	}
}

// Tags lists the catalog's tags followed by the user's pending ones.
func (t *TagS) Tags(ctx context.Context, userID int64) ([]models.TagRef, error) {
	tags, err := t.catalog.Tags(ctx)
	if err != nil {
		return nil, fmt.Errorf("list tags: %w", err)
	}

	sort.SliceStable(tags, func(i, j int) bool { return tags[i].Name < tags[j].Name })

	refs := make([]models.TagRef, 0, len(tags))
	for _, tag := range tags {
		refs = append(refs, models.ConfirmedTag(tag))
	}

	t.mu.Lock()
	refs = append(refs, t.pending[userID]...)
	t.mu.Unlock()

	return refs, nil
}

// AddPending records a tag the catalog has not assigned an id to yet.
func (t *TagS) AddPending(userID int64, name string) (models.TagRef, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.TagRef{}, &models.ValidationError{Message: "tag name is required", Fields: []string{"Name"}}
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	for _, ref := range t.pending[userID] {
		if strings.EqualFold(ref.Name(), name) {
			return models.TagRef{}, fmt.Errorf("%q: %w", name, ErrDuplicateTag)
		}
	}

	ref := models.PendingTag(name)
	t.pending[userID] = append(t.pending[userID], ref)

	return ref, nil
}

// Reconcile creates every pending tag through the catalog. Tags the catalog
// accepts are confirmed and leave the pending list; the rest stay pending.
// A call made while the same user's reconciliation runs returns nothing.
func (t *TagS) Reconcile(ctx context.Context, userID int64) ([]models.TagRef, error) {
	t.mu.Lock()
	if t.reconciling[userID] || len(t.pending[userID]) == 0 {
		t.mu.Unlock()
		return nil, nil
	}
	t.reconciling[userID] = true
	pending := append([]models.TagRef(nil), t.pending[userID]...)
	t.mu.Unlock()

	defer func() {
		t.mu.Lock()
		delete(t.reconciling, userID)
		t.mu.Unlock()
	}()

	existing, err := t.catalog.Tags(ctx)
	if err != nil {
		return nil, fmt.Errorf("list tags: %w", err)
	}

	var (
		confirmed []models.TagRef
		errs      []error
	)
	done := make(map[string]bool, len(pending))

	for _, ref := range pending {
		if tag, ok := tagByName(existing, ref.Name()); ok {
			confirmed = append(confirmed, ref.Confirm(tag))
			done[ref.LocalID().String()] = true
			continue
		}

		tag, err := t.catalog.CreateTag(ctx, models.TagCreateRequest{Name: ref.Name()})
		if err != nil {
			t.log.Warn("failed to create tag",
				zap.Int64("user_id", userID),
				zap.String("tag", ref.Name()),
				zap.Error(err))
			errs = append(errs, fmt.Errorf("create tag %q: %w", ref.Name(), err))
			continue
		}
		confirmed = append(confirmed, ref.Confirm(tag))
		done[ref.LocalID().String()] = true
	}

	t.mu.Lock()
	left := t.pending[userID][:0]
	for _, ref := range t.pending[userID] {
		if !done[ref.LocalID().String()] {
			left = append(left, ref)
		}
	}
	if len(left) == 0 {
		delete(t.pending, userID)
	} else {
		t.pending[userID] = left
	}
	t.mu.Unlock()

	return confirmed, errors.Join(errs...)
}

// TagsText retries pending tags before formatting the list. Reconcile
// failures are only logged; the affected tags show up as pending.
func (t *TagS) TagsText(ctx context.Context, userID int64) (string, error) {
	if _, err := t.Reconcile(ctx, userID); err != nil {
		t.log.Warn("failed to reconcile tags", zap.Int64("user_id", userID), zap.Error(err))
	}

	refs, err := t.Tags(ctx, userID)
	if err != nil {
		return "", err
	}

	return FormatTags(refs), nil
}

// FilterIDs resolves tag names to catalog ids for use in a filter. Names that
// are unknown or still pending are returned separately and never become ids.
func (t *TagS) FilterIDs(ctx context.Context, userID int64, names []string) ([]int64, []string, error) {
	refs, err := t.Tags(ctx, userID)
	if err != nil {
		return nil, nil, err
	}

	ids := make([]int64, 0, len(names))
	var skipped []string

	for _, name := range names {
		id, ok := confirmedID(refs, name)
		if !ok {
			skipped = append(skipped, name)
			continue
		}
		ids = append(ids, id)
	}

	return ids, skipped, nil
}

func tagByName(tags []models.Tag, name string) (models.Tag, bool) {
	for _, tag := range tags {
		if strings.EqualFold(tag.Name, name) {
			return tag, true
		}
	}
	return models.Tag{}, false
}

func confirmedID(refs []models.TagRef, name string) (int64, bool) {
	for _, ref := range refs {
		if !strings.EqualFold(ref.Name(), name) {
			continue
		}
		if tag, ok := ref.Tag(); ok {
			return tag.ID, true
		}
	}
	return 0, false
}

func FormatTags(refs []models.TagRef) string {
	if len(refs) == 0 {
		return "🏷 No tags yet. Add one with /newtag <name>."
	}

	var sb strings.Builder
	sb.WriteString("🏷 Tags:\n")
	for _, ref := range refs {
		sb.WriteString("• ")
		sb.WriteString(ref.Name())
		if ref.Pending() {
			sb.WriteString(" ⏳ pending")
		}
		sb.WriteString("\n")
	}

	return strings.TrimSpace(sb.String())
}
