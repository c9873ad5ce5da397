package models

import (
	"time"

	"github.com/google/uuid"
)

type Tag struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Color       string    `json:"color,omitempty"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

type TagCreateRequest struct {
	Name        string `json:"name" validate:"required,max=64"`
	Color       string `json:"color,omitempty" validate:"omitempty,hexcolor"`
	Description string `json:"description,omitempty"`
}

// TagRef is either a tag the catalog has confirmed or a locally created tag
// still waiting for its server id. The local id of a pending tag never
// leaves the client.
type TagRef struct {
	confirmed *Tag
	localID   uuid.UUID
	name      string
}

func ConfirmedTag(tag Tag) TagRef {
	return TagRef{confirmed: &tag, name: tag.Name}
}

func PendingTag(name string) TagRef {
	return TagRef{localID: uuid.New(), name: name}
}

func (r TagRef) Pending() bool {
	return r.confirmed == nil
}

func (r TagRef) Name() string {
	return r.name
}

// LocalID is only meaningful for pending tags.
func (r TagRef) LocalID() uuid.UUID {
	return r.localID
}

// Tag returns the confirmed tag. ok is false for pending tags.
func (r TagRef) Tag() (Tag, bool) {
	if r.confirmed == nil {
		return Tag{}, false
	}
	return *r.confirmed, true
}

// Confirm turns a pending ref into a confirmed one. Confirming an already
// confirmed ref returns it unchanged.
func (r TagRef) Confirm(tag Tag) TagRef {
	if r.confirmed != nil {
		return r
	}
	return ConfirmedTag(tag)
}
