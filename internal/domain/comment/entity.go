package comment

import (
	"context"
	"time"
)

type Comment struct {
	id       int64
	text     Text
	itemID   int64
	authorID int64
	created  time.Time
}

func NewComment(ctx context.Context, services *Services, itemID, authorID int64, text Text) (*Comment, error) {
	now := services.Clock.Now()
	err := services.EligibilityChecker.CanComment(ctx, EligibilityInput{
		ItemID:   itemID,
		AuthorID: authorID,
		Now:      now,
	})
	if err != nil {
		return nil, err
	}

	return &Comment{
		text:     text,
		itemID:   itemID,
		authorID: authorID,
		created:  now,
	}, nil
}

func ReconstructComment(id int64, text string, itemID, authorID int64, created time.Time) *Comment {
	return &Comment{
		id:       id,
		text:     Text{value: text},
		itemID:   itemID,
		authorID: authorID,
		created:  created,
	}
}

func (c *Comment) ID() int64          { return c.id }
func (c *Comment) Text() Text         { return c.text }
func (c *Comment) ItemID() int64      { return c.itemID }
func (c *Comment) AuthorID() int64    { return c.authorID }
func (c *Comment) Created() time.Time { return c.created }
