package shared

import "time"

// Write-side snapshots keep commands independent of read-side view types
type UserSnapshot struct {
	ID    int64
	Name  string
	Email string
}

type ItemSnapshot struct {
	ID          int64
	Name        string
	Description string
	Available   bool
	OwnerID     int64
	RequestID   *int64
}

type BookingSnapshot struct {
	ID          int64
	ItemID      int64
	ItemOwnerID int64
	BookerID    int64
	Start       time.Time
	End         time.Time
	Status      string
}

type RequestSnapshot struct {
	ID          int64
	Description string
	RequestorID int64
	Created     time.Time
}
