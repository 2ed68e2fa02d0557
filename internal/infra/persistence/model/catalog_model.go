package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SubProductRecord is a purchasable variant stored inside the product row.
type SubProductRecord struct {
	ID            uuid.UUID       `json:"id"`
	Name          string          `json:"name"`
	Price         decimal.Decimal `json:"price"`
	OriginalPrice decimal.Decimal `json:"originalPrice"`
	StockQuantity *int            `json:"stockQuantity,omitempty"`
	InStock       bool            `json:"inStock"`
}

// ProductModel mirrors the 'products' table.
type ProductModel struct {
	ID              uuid.UUID          `gorm:"type:uuid;primaryKey"`
	Title           string             `gorm:"type:varchar(255);not null;uniqueIndex:uq_products_title"`
	Description     string             `gorm:"type:text"`
	Guide           string             `gorm:"type:text"`
	GuideEnabled    bool               `gorm:"not null;default:false"`
	ImageURL        string             `gorm:"type:text"`
	Region          string             `gorm:"type:varchar(100)"`
	InstantDelivery bool               `gorm:"not null;default:false"`
	ImportantNote   string             `gorm:"type:text"`
	Category        string             `gorm:"type:varchar(100);index:idx_products_category"`
	Popularity      string             `gorm:"type:varchar(20);not null;default:'regular'"`
	CountryCode     string             `gorm:"type:varchar(8)"`
	DisplayOrder    int                `gorm:"not null;default:0"`
	IsIDBased       bool               `gorm:"not null;default:false"`
	Price           decimal.Decimal    `gorm:"type:numeric(12,2);not null;default:0"`
	InStock         bool               `gorm:"not null"`
	SubProducts     []SubProductRecord `gorm:"type:jsonb;serializer:json;not null"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}

// ReviewModel mirrors the 'reviews' table.
type ReviewModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	ProductID uuid.UUID `gorm:"type:uuid;not null;index:idx_reviews_product_id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null"`
	Author    string    `gorm:"type:varchar(255);not null"`
	Content   string    `gorm:"type:text;not null"`
	Rating    int       `gorm:"not null;check:chk_reviews_rating,rating BETWEEN 1 AND 5"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (ReviewModel) TableName() string {
	return "reviews"
}

// RedeemCodeModel mirrors the 'redeem_codes' table.
type RedeemCodeModel struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Code      string     `gorm:"type:varchar(64);not null;uniqueIndex:uq_redeem_codes_code"`
	ProductID uuid.UUID  `gorm:"type:uuid;not null;index:idx_redeem_codes_product_id"`
	IsUsed    bool       `gorm:"not null;default:false"`
	UserID    *uuid.UUID `gorm:"type:uuid"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (RedeemCodeModel) TableName() string {
	return "redeem_codes"
}

// All lists every model for schema migration.
func All() []any {
	return []any{
		&UserModel{},
		&OrderModel{},
		&ProductModel{},
		&ReviewModel{},
		&RedeemCodeModel{},
	}
}
