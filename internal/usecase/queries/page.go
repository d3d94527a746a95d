package queries

import (
	"math"

	"shareit/internal/pkg/errs"
)

const (
	DefaultFrom = 0
	DefaultSize = 10
)

// Page is a from/size window aligned to multiples of size
type Page struct {
	From int
	Size int
}

func NewPage(from, size int) (Page, error) {
	// Limit and Offset are int32 on the wire to the store
	if from < 0 || size < 1 || from > math.MaxInt32 || size > math.MaxInt32 {
		return Page{}, errs.ErrInvalidPage
	}
	return Page{From: from, Size: size}, nil
}

func DefaultPage() Page {
	return Page{From: DefaultFrom, Size: DefaultSize}
}

func (p Page) Limit() int32 {
	return int32(p.Size)
}

// Offset rounds From down to the start of its page
func (p Page) Offset() int32 {
	if p.Size <= 0 {
		return 0
	}
	return int32((p.From / p.Size) * p.Size)
}
