package repository

import (
	"context"
	"errors"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

var (
	// ErrProductNotFound is returned when no product matches.
	ErrProductNotFound = errors.New("product not found")
	// ErrRedeemCodeNotFound is returned when no redeem code matches.
	ErrRedeemCodeNotFound = errors.New("redeem code not found")
	// ErrRedeemCodeUsed is returned when assigning a code that was already handed out.
	ErrRedeemCodeUsed = errors.New("redeem code already used")
)

// ProductFilter narrows the catalog listing.
type ProductFilter struct {
	Category    string
	CountryCode string
}

// ProductRepository persists the catalog, the authoritative source of prices.
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)
	// FindByIDs returns the products that exist among ids, keyed by id.
	FindByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*entity.Product, error)
	ExistsByTitle(ctx context.Context, title string) (bool, error)
	List(ctx context.Context, filter ProductFilter, page Page) ([]*entity.Product, int64, error)
	Update(ctx context.Context, product *entity.Product) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// ReviewRepository persists product reviews.
type ReviewRepository interface {
	Create(ctx context.Context, review *entity.Review) error
	ListByProduct(ctx context.Context, productID *uuid.UUID, page Page) ([]*entity.Review, error)
}

// RedeemCodeRepository persists digital codes.
type RedeemCodeRepository interface {
	CreateBatch(ctx context.Context, codes []*entity.RedeemCode) error
	List(ctx context.Context, productID *uuid.UUID, onlyUnused bool, page Page) ([]*entity.RedeemCode, error)
	// Assign marks an unused code as used by userID.
	Assign(ctx context.Context, code string, userID uuid.UUID) (*entity.RedeemCode, error)
}
