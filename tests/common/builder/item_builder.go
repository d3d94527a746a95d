//go:build unit || e2e

package builder

import (
	"shareit/internal/domain/item"
	reqdto "shareit/internal/handler/dto/request"
	sqlc "shareit/internal/infra/sqlc/generated"
	"shareit/internal/pkg/ptr"
	"shareit/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgtype"
)

type ItemBuilder struct {
	ID          int64
	Name        string
	Description string
	Available   bool
	OwnerID     int64
	RequestID   *int64
}

func NewItemBuilder() *ItemBuilder {
	return &ItemBuilder{
		ID:          1,
		Name:        "Cordless drill",
		Description: "18V drill with two batteries",
		Available:   true,
		OwnerID:     1,
	}
}

func (b *ItemBuilder) With(mutate func(*ItemBuilder)) *ItemBuilder {
	mutate(b)
	return b
}

func (b *ItemBuilder) BuildDomain() (*item.Item, error) {
	return item.NewItem(b.OwnerID, b.Name, b.Description, b.Available, b.RequestID)
}

func (b *ItemBuilder) BuildInfra() sqlc.Item {
	var requestID pgtype.Int8
	if b.RequestID != nil {
		requestID = pgtype.Int8{Int64: *b.RequestID, Valid: true}
	}
	return sqlc.Item{
		ID:          b.ID,
		Name:        b.Name,
		Description: b.Description,
		IsAvailable: b.Available,
		OwnerID:     b.OwnerID,
		RequestID:   requestID,
	}
}

func (b *ItemBuilder) BuildView() *queries.ItemView {
	return &queries.ItemView{
		ID:          b.ID,
		Name:        b.Name,
		Description: b.Description,
		Available:   b.Available,
		OwnerID:     b.OwnerID,
		RequestID:   b.RequestID,
	}
}

func (b *ItemBuilder) BuildDetailsView() *queries.ItemDetailsView {
	return &queries.ItemDetailsView{
		ItemView: *b.BuildView(),
		Comments: []*queries.CommentView{},
	}
}

func (b *ItemBuilder) BuildCreateRequestDTO() reqdto.CreateItemRequest {
	return reqdto.CreateItemRequest{
		Name:        b.Name,
		Description: b.Description,
		Available:   ptr.Of(b.Available),
		RequestID:   b.RequestID,
	}
}

func (b *ItemBuilder) WithID(id int64) *ItemBuilder {
	b.ID = id
	return b
}

func (b *ItemBuilder) WithOwnerID(id int64) *ItemBuilder {
	b.OwnerID = id
	return b
}

func (b *ItemBuilder) WithName(name string) *ItemBuilder {
	b.Name = name
	return b
}

func (b *ItemBuilder) WithDescription(description string) *ItemBuilder {
	b.Description = description
	return b
}

func (b *ItemBuilder) WithRequestID(id int64) *ItemBuilder {
	b.RequestID = &id
	return b
}

func (b *ItemBuilder) AsUnavailable() *ItemBuilder {
	b.Available = false
	return b
}
