package item

import (
	"errors"
	"strings"
	"unicode/utf8"

	"shareit/internal/pkg/patch"
)

const (
	MaxNameLength        = 255
	MaxDescriptionLength = 1000
)

var (
	ErrEmptyName          = errors.New("item name cannot be empty")
	ErrNameTooLong        = errors.New("item name exceeds maximum length")
	ErrEmptyDescription   = errors.New("item description cannot be empty")
	ErrDescriptionTooLong = errors.New("item description exceeds maximum length")
)

type Item struct {
	id          int64
	name        string
	description string
	available   bool
	ownerID     int64
	requestID   *int64
}

// Patch carries the optional fields of a partial update; nil leaves the field unchanged.
type Patch struct {
	Name        *string
	Description *string
	Available   *bool
}

func (p Patch) IsEmpty() bool {
	return p.Name == nil && p.Description == nil && p.Available == nil
}

func NewItem(ownerID int64, name, description string, available bool, requestID *int64) (*Item, error) {
	n, err := validateName(name)
	if err != nil {
		return nil, err
	}
	d, err := validateDescription(description)
	if err != nil {
		return nil, err
	}
	return &Item{
		name:        n,
		description: d,
		available:   available,
		ownerID:     ownerID,
		requestID:   requestID,
	}, nil
}

func ReconstructItem(id int64, name, description string, available bool, ownerID int64, requestID *int64) *Item {
	return &Item{
		id:          id,
		name:        name,
		description: description,
		available:   available,
		ownerID:     ownerID,
		requestID:   requestID,
	}
}

// ApplyPatch validates every present field before changing anything
func (i *Item) ApplyPatch(p Patch) error {
	name := i.name
	if p.Name != nil {
		n, err := validateName(*p.Name)
		if err != nil {
			return err
		}
		name = n
	}

	description := i.description
	if p.Description != nil {
		d, err := validateDescription(*p.Description)
		if err != nil {
			return err
		}
		description = d
	}

	i.name = name
	i.description = description
	i.available = patch.Coalesce(p.Available, i.available)
	return nil
}

func (i *Item) IsOwnedBy(userID int64) bool {
	return i.ownerID == userID
}

func (i *Item) ID() int64           { return i.id }
func (i *Item) Name() string        { return i.name }
func (i *Item) Description() string { return i.description }
func (i *Item) Available() bool     { return i.available }
func (i *Item) OwnerID() int64      { return i.ownerID }
func (i *Item) RequestID() *int64   { return i.requestID }

func validateName(s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", ErrEmptyName
	}
	if utf8.RuneCountInString(s) > MaxNameLength {
		return "", ErrNameTooLong
	}
	return s, nil
}

func validateDescription(s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", ErrEmptyDescription
	}
	if utf8.RuneCountInString(s) > MaxDescriptionLength {
		return "", ErrDescriptionTooLong
	}
	return s, nil
}
