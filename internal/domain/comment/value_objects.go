package comment

import (
	"errors"
	"strings"
	"unicode/utf8"
)

const MaxTextLength = 1000

var (
	ErrEmptyText    = errors.New("comment text cannot be empty")
	ErrTextTooLong  = errors.New("comment text exceeds maximum length")
	ErrNotAvailable = errors.New("comment is not available: no completed approved booking of the item")
)

type Text struct {
	value string
}

func NewText(s string) (Text, error) {
	t := strings.TrimSpace(s)
	if t == "" {
		return Text{}, ErrEmptyText
	}
	if utf8.RuneCountInString(t) > MaxTextLength {
		return Text{}, ErrTextTooLong
	}
	return Text{value: t}, nil
}

func (t Text) String() string { return t.value }
