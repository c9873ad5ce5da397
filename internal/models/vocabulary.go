package models

import (
	"time"
)

type VocabularyItem struct {
	ID             int64      `json:"id"`
	Word           string     `json:"word"`
	Meaning        string     `json:"zh_meaning"`
	PartOfSpeech   string     `json:"pos,omitempty"`
	Notes          string     `json:"notes,omitempty"`
	Examples       string     `json:"examples,omitempty"`
	Phonetic       string     `json:"ipa,omitempty"`
	Familiarity    int        `json:"familiarity"`
	IsHard         bool       `json:"is_hard"`
	NextReviewAt   *time.Time `json:"next_review_at,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
	LastReviewedAt *time.Time `json:"last_reviewed_at,omitempty"`
	Tags           []Tag      `json:"tags"`
}

type ItemPage struct {
	Items     []VocabularyItem `json:"items"`
	Total     int              `json:"total"`
	Page      int              `json:"page"`
	Size      int              `json:"size"`
	PageCount int              `json:"pages"`
}

func (p ItemPage) HasNext() bool {
	return p.Page < p.PageCount
}

func (p ItemPage) HasPrev() bool {
	return p.Page > 1
}
