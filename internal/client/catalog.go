package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/chen-yiru/Vocabulary-review/internal/models"
	"github.com/chen-yiru/Vocabulary-review/internal/query"
	"github.com/chen-yiru/Vocabulary-review/pkg/validator"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

type CatalogAPI struct {
	baseURL *url.URL
	http    *http.Client
	limiter *rate.Limiter
	log     *zap.Logger
}

func NewCatalogAPI(baseURL string, httpClient *http.Client, limiter *rate.Limiter, log *zap.Logger) (*CatalogAPI, error) {
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("parse catalog url: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("catalog url %q must be absolute", baseURL)
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if limiter == nil {
		limiter = rate.NewLimiter(rate.Inf, 1)
	}

	return &CatalogAPI{
		baseURL: u,
		http:    httpClient,
		limiter: limiter,
		log:     log,
	}, nil
}

func (c *CatalogAPI) DueItems(ctx context.Context) ([]models.VocabularyItem, error) {
	var items []models.VocabularyItem
	if err := c.do(ctx, "due items", http.MethodGet, "/vocab/due/review", nil, nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (c *CatalogAPI) Item(ctx context.Context, id int64) (models.VocabularyItem, error) {
	var item models.VocabularyItem
	err := c.do(ctx, "get item", http.MethodGet, "/vocab/"+strconv.FormatInt(id, 10), nil, nil, &item)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return models.VocabularyItem{}, &models.NotFoundError{Resource: "vocabulary", ID: id}
		}
		return models.VocabularyItem{}, err
	}
	return item, nil
}

// ListItems fetches one page of items matching a composed query.
func (c *CatalogAPI) ListItems(ctx context.Context, q query.Query) (models.ItemPage, error) {
	var page models.ItemPage
	if err := c.do(ctx, "list items", http.MethodGet, "/vocab/", q, nil, &page); err != nil {
		return models.ItemPage{}, err
	}
	return page, nil
}

// SubmitOutcome records one review outcome. Outcomes that would be rejected
// anyway are refused locally with a ValidationError.
func (c *CatalogAPI) SubmitOutcome(ctx context.Context, outcome models.ReviewOutcome) (models.ReviewLog, error) {
	if err := validator.ValidateStruct(outcome); err != nil {
		var verrs validator.Errors
		if errors.As(err, &verrs) {
			return models.ReviewLog{}, &models.ValidationError{Message: "invalid review outcome", Fields: verrs.Fields()}
		}
		return models.ReviewLog{}, &models.ValidationError{Message: err.Error()}
	}

	var log models.ReviewLog
	if err := c.do(ctx, "submit outcome", http.MethodPost, "/review/", nil, outcome, &log); err != nil {
		return models.ReviewLog{}, err
	}
	return log, nil
}

func (c *CatalogAPI) ReviewStats(ctx context.Context) (models.ReviewStats, error) {
	var stats models.ReviewStats
	if err := c.do(ctx, "review stats", http.MethodGet, "/review/stats", nil, nil, &stats); err != nil {
		return models.ReviewStats{}, err
	}
	return stats, nil
}

// ReviewLogs lists past outcomes, optionally for one item. Zero values mean
// no constraint.
func (c *CatalogAPI) ReviewLogs(ctx context.Context, vocabularyID int64, limit int) ([]models.ReviewLog, error) {
	var q query.Query
	if vocabularyID > 0 {
		q = append(q, query.Param{Key: "vocabulary_id", Value: strconv.FormatInt(vocabularyID, 10)})
	}
	if limit > 0 {
		q = append(q, query.Param{Key: "limit", Value: strconv.Itoa(limit)})
	}

	var logs []models.ReviewLog
	if err := c.do(ctx, "review logs", http.MethodGet, "/review/logs", q, nil, &logs); err != nil {
		return nil, err
	}
	return logs, nil
}

func (c *CatalogAPI) Tags(ctx context.Context) ([]models.Tag, error) {
	var tags []models.Tag
	if err := c.do(ctx, "list tags", http.MethodGet, "/tags/", nil, nil, &tags); err != nil {
		return nil, err
	}
	return tags, nil
}

func (c *CatalogAPI) CreateTag(ctx context.Context, req models.TagCreateRequest) (models.Tag, error) {
	if err := validator.ValidateStruct(req); err != nil {
		var verrs validator.Errors
		if errors.As(err, &verrs) {
			return models.Tag{}, &models.ValidationError{Message: "invalid tag", Fields: verrs.Fields()}
		}
		return models.Tag{}, &models.ValidationError{Message: err.Error()}
	}

	var tag models.Tag
	if err := c.do(ctx, "create tag", http.MethodPost, "/tags/", nil, req, &tag); err != nil {
		return models.Tag{}, err
	}
	return tag, nil
}

type errorBody struct {
	Detail json.RawMessage `json:"detail"`
}

func (c *CatalogAPI) do(ctx context.Context, op, method, path string, q query.Query, body, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return &models.TransportError{Op: op, Err: err}
	}

	u := *c.baseURL
	u.Path += path
	if len(q) > 0 {
		u.RawQuery = q.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return &models.TransportError{Op: op, Err: fmt.Errorf("encode request: %w", err)}
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), reader)
	if err != nil {
		return &models.TransportError{Op: op, Err: err}
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return &models.TransportError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return c.statusError(op, resp)
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &models.TransportError{Op: op, Status: resp.StatusCode, Err: fmt.Errorf("decode response: %w", err)}
	}

	return nil
}

func (c *CatalogAPI) statusError(op string, resp *http.Response) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	msg := detailMessage(raw)
	if msg == "" {
		msg = http.StatusText(resp.StatusCode)
	}

	c.log.Debug("catalog request failed",
		zap.String("op", op),
		zap.Int("status", resp.StatusCode),
		zap.String("detail", msg))

	switch resp.StatusCode {
	case http.StatusNotFound:
		return fmt.Errorf("%s: %s: %w", op, msg, models.ErrNotFound)
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return &models.ValidationError{Message: msg}
	default:
		return &models.TransportError{Op: op, Status: resp.StatusCode, Err: errors.New(msg)}
	}
}

// detailMessage pulls a readable message out of an error body. The catalog
// sends either {"detail": "text"} or {"detail": [{"msg": "..."}]}.
func detailMessage(raw []byte) string {
	var body errorBody
	if err := json.Unmarshal(raw, &body); err != nil || len(body.Detail) == 0 {
		return strings.TrimSpace(string(raw))
	}

	var text string
	if err := json.Unmarshal(body.Detail, &text); err == nil {
		return text
	}

	var items []struct {
		Msg string `json:"msg"`
	}
	if err := json.Unmarshal(body.Detail, &items); err == nil {
		msgs := make([]string, 0, len(items))
		for _, it := range items {
			if it.Msg != "" {
				msgs = append(msgs, it.Msg)
			}
		}
		return strings.Join(msgs, "; ")
	}

	return string(body.Detail)
}
