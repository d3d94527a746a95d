package comment

import (
	"context"
	"time"

	"shareit/internal/pkg/clock"
)

type Services struct {
	Clock              clock.Clock
	EligibilityChecker EligibilityChecker
}

type EligibilityInput struct {
	ItemID   int64
	AuthorID int64
	Now      time.Time
}

// EligibilityChecker returns ErrNotAvailable unless the author has an APPROVED booking
// of the item that ended strictly before Now.
type EligibilityChecker interface {
	CanComment(ctx context.Context, input EligibilityInput) error
}
