package itemrequest

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"
)

const MaxDescriptionLength = 1000

var (
	ErrEmptyDescription   = errors.New("request description cannot be empty")
	ErrDescriptionTooLong = errors.New("request description exceeds maximum length")
)

// ItemRequest is a user's wish for an item the catalog does not have yet
type ItemRequest struct {
	id          int64
	description string
	requestorID int64
	created     time.Time
}

func NewItemRequest(requestorID int64, description string, now time.Time) (*ItemRequest, error) {
	d := strings.TrimSpace(description)
	if d == "" {
		return nil, ErrEmptyDescription
	}
	if utf8.RuneCountInString(d) > MaxDescriptionLength {
		return nil, ErrDescriptionTooLong
	}
	return &ItemRequest{
		description: d,
		requestorID: requestorID,
		created:     now,
	}, nil
}

func ReconstructItemRequest(id int64, description string, requestorID int64, created time.Time) *ItemRequest {
	return &ItemRequest{
		id:          id,
		description: description,
		requestorID: requestorID,
		created:     created,
	}
}

func (r *ItemRequest) ID() int64           { return r.id }
func (r *ItemRequest) Description() string { return r.description }
func (r *ItemRequest) RequestorID() int64  { return r.requestorID }
func (r *ItemRequest) Created() time.Time  { return r.created }
