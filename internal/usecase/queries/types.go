package queries

import "time"

// UserView represents read-optimized user data
type UserView struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// ItemView is the plain catalog entry
type ItemView struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Available   bool   `json:"available"`
	OwnerID     int64  `json:"ownerId"`
	RequestID   *int64 `json:"requestId,omitempty"`
}

// BookingShortView annotates an item with its last and next approved booking
type BookingShortView struct {
	ID       int64     `json:"id"`
	ItemID   int64     `json:"-"`
	BookerID int64     `json:"bookerId"`
	Start    time.Time `json:"start"`
	End      time.Time `json:"end"`
	Status   string    `json:"status"`
}

type CommentView struct {
	ID         int64     `json:"id"`
	Text       string    `json:"text"`
	ItemID     int64     `json:"itemId"`
	AuthorName string    `json:"authorName"`
	Created    time.Time `json:"created"`
}

// ItemDetailsView carries booking annotations only when read by the owner
type ItemDetailsView struct {
	ItemView
	LastBooking *BookingShortView `json:"lastBooking"`
	NextBooking *BookingShortView `json:"nextBooking"`
	Comments    []*CommentView    `json:"comments"`
}

type BookerView struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type BookingView struct {
	ID     int64      `json:"id"`
	ItemID int64      `json:"itemId"`
	Start  time.Time  `json:"start"`
	End    time.Time  `json:"end"`
	Status string     `json:"status"`
	Item   ItemView   `json:"item"`
	Booker BookerView `json:"booker"`
}

type RequestView struct {
	ID          int64       `json:"id"`
	Description string      `json:"description"`
	RequestorID int64       `json:"requestorId"`
	Created     time.Time   `json:"created"`
	Items       []*ItemView `json:"items"`
}
