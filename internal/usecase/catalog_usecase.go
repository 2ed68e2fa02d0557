package usecase

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SubProductInput is a purchasable variant in a product write.
type SubProductInput struct {
	ID            *uuid.UUID      `json:"id"`
	Name          string          `json:"name" validate:"required"`
	Price         decimal.Decimal `json:"price"`
	OriginalPrice decimal.Decimal `json:"originalPrice"`
	StockQuantity *int            `json:"stockQuantity"`
	InStock       bool            `json:"inStock"`
}

// ProductInput is the admin write model of a product.
type ProductInput struct {
	Title           string                   `json:"title" validate:"required"`
	Description     string                   `json:"description" validate:"required"`
	Guide           string                   `json:"guide"`
	GuideEnabled    bool                     `json:"guideEnabled"`
	ImageURL        string                   `json:"imageUrl" validate:"required"`
	Region          string                   `json:"region" validate:"required"`
	InstantDelivery bool                     `json:"instantDelivery"`
	ImportantNote   string                   `json:"importantNote"`
	Category        string                   `json:"category" validate:"required"`
	Popularity      entity.ProductPopularity `json:"popularity"`
	CountryCode     string                   `json:"countryCode" validate:"required"`
	DisplayOrder    int                      `json:"displayOrder"`
	IsIDBased       bool                     `json:"isIDBased"`
	Price           decimal.Decimal          `json:"price"`
	InStock         bool                     `json:"inStock"`
	SubProducts     []SubProductInput        `json:"subProducts"`
}

// ProductListOutput is a page of products.
type ProductListOutput struct {
	Products []*entity.Product
	Total    int64
}

// UploadImageInput is an image destined for the blob host.
type UploadImageInput struct {
	Filename string
	Data     []byte
}

// CatalogUsecase manages products, the authoritative price source.
type CatalogUsecase interface {
	ListProducts(ctx context.Context, filter repository.ProductFilter, page repository.Page) (*ProductListOutput, error)
	GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error)
	CheckTitle(ctx context.Context, title string) (bool, error)
	CreateProduct(ctx context.Context, input *ProductInput) (*entity.Product, error)
	UpdateProduct(ctx context.Context, id uuid.UUID, input *ProductInput) (*entity.Product, error)
	DeleteProduct(ctx context.Context, id uuid.UUID) error
	UploadImage(ctx context.Context, input *UploadImageInput) (string, error)
}

// CreateReviewInput is a rating left by the signed-in user.
type CreateReviewInput struct {
	ProductID uuid.UUID `json:"productId" validate:"required"`
	Content   string    `json:"content"`
	Rating    int       `json:"rating"`
}

// ReviewUsecase manages product reviews.
type ReviewUsecase interface {
	ListReviews(ctx context.Context, productID *uuid.UUID, page repository.Page) ([]*entity.Review, error)
	CreateReview(ctx context.Context, userID uuid.UUID, input *CreateReviewInput) (*entity.Review, error)
}

// GenerateRedeemCodesInput requests quantity fresh codes for a product.
type GenerateRedeemCodesInput struct {
	ProductID uuid.UUID `json:"productId" validate:"required"`
	Quantity  int       `json:"quantity"`
}

// RedeemUsecase manages digital codes sold against products.
type RedeemUsecase interface {
	GenerateCodes(ctx context.Context, input *GenerateRedeemCodesInput) ([]*entity.RedeemCode, error)
	ListCodes(ctx context.Context, productID *uuid.UUID, onlyUnused bool, page repository.Page) ([]*entity.RedeemCode, error)
	// AssignCode hands an unused code to a user and emails it with a QR image.
	AssignCode(ctx context.Context, code string, userID uuid.UUID) (*entity.RedeemCode, error)
}
