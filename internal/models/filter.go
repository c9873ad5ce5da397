package models

import "time"

// FilterSpec narrows an item listing. Every field is optional: the zero
// value of a field (empty string, nil pointer, empty slice) means no
// constraint.
type FilterSpec struct {
	Search           string
	Letter           string
	TagIDs           []int64
	IsHard           *bool
	FamiliarityMin   *int
	FamiliarityMax   *int
	CreatedAfter     *time.Time
	CreatedBefore    *time.Time
	LastReviewAfter  *time.Time
	LastReviewBefore *time.Time
	DueAfter         *time.Time
	DueBefore        *time.Time
}

func (f FilterSpec) Clone() FilterSpec {
	c := f
	if f.TagIDs != nil {
		c.TagIDs = append([]int64(nil), f.TagIDs...)
	}
	return c
}

type PageSpec struct {
	Page int
	Size int
}

const DefaultPageSize = 20
