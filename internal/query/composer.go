// Package query turns list filters and pagination into the canonical request
// descriptor understood by the catalog.
package query

import (
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/chen-yiru/Vocabulary-review/internal/models"
)

const dateLayout = time.DateOnly

type Param struct {
	Key   string
	Value string
}

// Query is an ordered list of key/value pairs. A key repeats only for
// multi-valued filters.
type Query []Param

// Compose maps a filter and an optional page into a canonical query. Absent
// fields are omitted; tag ids become one pair per id in slice order.
// Nonsensical ranges such as min > max are passed through.
func Compose(f models.FilterSpec, page *models.PageSpec) Query {
	q := make(Query, 0, 16)

	q = q.addString("search", f.Search)
	q = q.addString("letter", f.Letter)
	for _, id := range f.TagIDs {
		q = append(q, Param{Key: "tag_ids", Value: strconv.FormatInt(id, 10)})
	}
	if f.IsHard != nil {
		q = append(q, Param{Key: "is_hard", Value: strconv.FormatBool(*f.IsHard)})
	}
	q = q.addInt("familiarity_min", f.FamiliarityMin)
	q = q.addInt("familiarity_max", f.FamiliarityMax)
	q = q.addDate("created_after", f.CreatedAfter)
	q = q.addDate("created_before", f.CreatedBefore)
	q = q.addDate("last_review_after", f.LastReviewAfter)
	q = q.addDate("last_review_before", f.LastReviewBefore)
	q = q.addDate("due_after", f.DueAfter)
	q = q.addDate("due_before", f.DueBefore)

	if page != nil {
		if page.Page > 0 {
			q = append(q, Param{Key: "page", Value: strconv.Itoa(page.Page)})
		}
		if page.Size > 0 {
			q = append(q, Param{Key: "size", Value: strconv.Itoa(page.Size)})
		}
	}

	return q
}

func (q Query) addString(key, value string) Query {
	if value == "" {
		return q
	}
	return append(q, Param{Key: key, Value: value})
}

func (q Query) addInt(key string, value *int) Query {
	if value == nil {
		return q
	}
	return append(q, Param{Key: key, Value: strconv.Itoa(*value)})
}

func (q Query) addDate(key string, value *time.Time) Query {
	if value == nil || value.IsZero() {
		return q
	}
	return append(q, Param{Key: key, Value: value.Format(dateLayout)})
}

// Encode renders the query string keeping pair order, unlike url.Values.Encode
// which sorts keys.
func (q Query) Encode() string {
	var sb strings.Builder
	for i, p := range q {
		if i > 0 {
			sb.WriteByte('&')
		}
		sb.WriteString(url.QueryEscape(p.Key))
		sb.WriteByte('=')
		sb.WriteString(url.QueryEscape(p.Value))
	}
	return sb.String()
}

func (q Query) String() string {
	return q.Encode()
}
