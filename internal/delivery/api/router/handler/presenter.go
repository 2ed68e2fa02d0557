package handler

import (
	"time"

	"storefront/internal/domain/entity"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// UserResponse is the public shape of an account. Credentials are never rendered.
type UserResponse struct {
	ID               uuid.UUID `json:"id"`
	Username         string    `json:"username"`
	Email            string    `json:"email,omitempty"`
	MobileNumber     string    `json:"mobileNumber,omitempty"`
	Provider         string    `json:"provider"`
	IsEmailVerified  bool      `json:"isEmailVerified"`
	IsMobileVerified bool      `json:"isMobileVerified"`
	Role             string    `json:"role"`
	ProfileImage     string    `json:"profileImage,omitempty"`
	RewardPoints     int       `json:"rewardPoints"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

func newUserResponse(user *entity.User) *UserResponse {
	if user == nil {
		return nil
	}

	return &UserResponse{
		ID:               user.ID,
		Username:         user.Username,
		Email:            user.Email,
		MobileNumber:     user.MobileNumber,
		Provider:         user.Provider.String(),
		IsEmailVerified:  user.IsEmailVerified,
		IsMobileVerified: user.IsMobileVerified,
		Role:             user.Role.String(),
		ProfileImage:     user.ProfileImage,
		RewardPoints:     user.RewardPoints,
		CreatedAt:        user.CreatedAt,
		UpdatedAt:        user.UpdatedAt,
	}
}

// AuthResponse is returned by every sign-in and sign-up.
type AuthResponse struct {
	User      *UserResponse `json:"user"`
	Token     string        `json:"token"`
	ExpiresAt time.Time     `json:"expiresAt"`
}

func newAuthResponse(out *usecase.AuthOutput) *AuthResponse {
	return &AuthResponse{
		User:      newUserResponse(out.User),
		Token:     out.Session.Token,
		ExpiresAt: out.Session.ExpiresAt,
	}
}

// SubProductResponse is a purchasable variant.
type SubProductResponse struct {
	ID            uuid.UUID       `json:"id"`
	Name          string          `json:"name"`
	Price         decimal.Decimal `json:"price"`
	OriginalPrice decimal.Decimal `json:"originalPrice"`
	StockQuantity *int            `json:"stockQuantity,omitempty"`
	InStock       bool            `json:"inStock"`
}

// ProductResponse is the public shape of a catalog entry.
type ProductResponse struct {
	ID              uuid.UUID            `json:"id"`
	Title           string               `json:"title"`
	Description     string               `json:"description"`
	Guide           string               `json:"guide,omitempty"`
	GuideEnabled    bool                 `json:"guideEnabled"`
	ImageURL        string               `json:"imageUrl"`
	Region          string               `json:"region"`
	InstantDelivery bool                 `json:"instantDelivery"`
	ImportantNote   string               `json:"importantNote,omitempty"`
	Category        string               `json:"category"`
	Popularity      string               `json:"popularity"`
	CountryCode     string               `json:"countryCode"`
	DisplayOrder    int                  `json:"displayOrder"`
	IsIDBased       bool                 `json:"isIDBased"`
	Price           decimal.Decimal      `json:"price"`
	InStock         bool                 `json:"inStock"`
	SubProducts     []SubProductResponse `json:"subProducts"`
	CreatedAt       time.Time            `json:"createdAt"`
	UpdatedAt       time.Time            `json:"updatedAt"`
}

func newProductResponse(product *entity.Product) *ProductResponse {
	subProducts := make([]SubProductResponse, 0, len(product.SubProducts))
	for _, sub := range product.SubProducts {
		subProducts = append(subProducts, SubProductResponse{
			ID:            sub.ID,
			Name:          sub.Name,
			Price:         sub.Price,
			OriginalPrice: sub.OriginalPrice,
			StockQuantity: sub.StockQuantity,
			InStock:       sub.InStock,
		})
	}

	return &ProductResponse{
		ID:              product.ID,
		Title:           product.Title,
		Description:     product.Description,
		Guide:           product.Guide,
		GuideEnabled:    product.GuideEnabled,
		ImageURL:        product.ImageURL,
		Region:          product.Region,
		InstantDelivery: product.InstantDelivery,
		ImportantNote:   product.ImportantNote,
		Category:        product.Category,
		Popularity:      string(product.Popularity),
		CountryCode:     product.CountryCode,
		DisplayOrder:    product.DisplayOrder,
		IsIDBased:       product.IsIDBased,
		Price:           product.Price,
		InStock:         product.InStock,
		SubProducts:     subProducts,
		CreatedAt:       product.CreatedAt,
		UpdatedAt:       product.UpdatedAt,
	}
}

// ReviewResponse is a product rating.
type ReviewResponse struct {
	ID        uuid.UUID `json:"id"`
	ProductID uuid.UUID `json:"productId"`
	UserID    uuid.UUID `json:"userId"`
	Author    string    `json:"author"`
	Content   string    `json:"content"`
	Rating    int       `json:"rating"`
	CreatedAt time.Time `json:"createdAt"`
}

func newReviewResponse(review *entity.Review) *ReviewResponse {
	return &ReviewResponse{
		ID:        review.ID,
		ProductID: review.ProductID,
		UserID:    review.UserID,
		Author:    review.Author,
		Content:   review.Content,
		Rating:    review.Rating,
		CreatedAt: review.CreatedAt,
	}
}

// RedeemCodeResponse is an admin view of a digital code.
type RedeemCodeResponse struct {
	ID        uuid.UUID  `json:"id"`
	Code      string     `json:"code"`
	ProductID uuid.UUID  `json:"productId"`
	IsUsed    bool       `json:"isUsed"`
	UserID    *uuid.UUID `json:"userId,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

func newRedeemCodeResponse(code *entity.RedeemCode) *RedeemCodeResponse {
	return &RedeemCodeResponse{
		ID:        code.ID,
		Code:      code.Code,
		ProductID: code.ProductID,
		IsUsed:    code.IsUsed,
		UserID:    code.UserID,
		CreatedAt: code.CreatedAt,
		UpdatedAt: code.UpdatedAt,
	}
}

// mapSlice renders every item with render.
func mapSlice[T, R any](items []T, render func(T) R) []R {
	out := make([]R, 0, len(items))
	for _, item := range items {
		out = append(out, render(item))
	}

	return out
}
