package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductPopularity orders products within a category listing.
type ProductPopularity string

const (
	PopularityRegular  ProductPopularity = "regular"
	PopularityPopular  ProductPopularity = "popular"
	PopularityTrending ProductPopularity = "trending"
)

// Product is a catalog entry. Prices live on its sub-products when it has any.
type Product struct {
	ID              uuid.UUID
	Title           string
	Description     string
	Guide           string
	GuideEnabled    bool
	ImageURL        string
	Region          string
	InstantDelivery bool
	ImportantNote   string
	Category        string
	Popularity      ProductPopularity
	CountryCode     string
	DisplayOrder    int
	IsIDBased       bool
	Price           decimal.Decimal
	InStock         bool
	SubProducts     []SubProduct
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// SubProduct is a purchasable variant (package size, denomination) of a product.
type SubProduct struct {
	ID            uuid.UUID
	Name          string
	Price         decimal.Decimal
	OriginalPrice decimal.Decimal
	StockQuantity *int
	InStock       bool
}

// FindSubProduct returns the variant with id.
func (p *Product) FindSubProduct(id uuid.UUID) (*SubProduct, bool) {
	for i := range p.SubProducts {
		if p.SubProducts[i].ID == id {
			return &p.SubProducts[i], true
		}
	}

	return nil, false
}

// Review is a customer rating of a product.
type Review struct {
	ID        uuid.UUID
	ProductID uuid.UUID
	UserID    uuid.UUID
	Author    string
	Content   string
	Rating    int
	CreatedAt time.Time
}

// RedeemCode is a digital code sold against a product.
type RedeemCode struct {
	ID        uuid.UUID
	Code      string
	ProductID uuid.UUID
	IsUsed    bool
	UserID    *uuid.UUID
	CreatedAt time.Time
	UpdatedAt time.Time
}
