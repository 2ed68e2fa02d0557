package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	minRating = 1
	maxRating = 5
)

// reviewService implements the ReviewUsecase interface.
type reviewService struct {
	reviewRepo  repository.ReviewRepository
	productRepo repository.ProductRepository
	userRepo    repository.UserRepository
	logger      *slog.Logger
}

// ReviewServiceParams holds dependencies for ReviewService, injected by Fx.
type ReviewServiceParams struct {
	fx.In

	ReviewRepo  repository.ReviewRepository
	ProductRepo repository.ProductRepository
	UserRepo    repository.UserRepository
	Logger      *slog.Logger
}

// NewReviewService is the constructor for reviewService.
func NewReviewService(params ReviewServiceParams) usecase.ReviewUsecase {
	return &reviewService{
		reviewRepo:  params.ReviewRepo,
		productRepo: params.ProductRepo,
		userRepo:    params.UserRepo,
		logger:      params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *reviewService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListReviews returns the newest reviews, optionally of one product.
func (srv *reviewService) ListReviews(ctx context.Context, productID *uuid.UUID, page repository.Page) ([]*entity.Review, error) {
	reviews, err := srv.reviewRepo.ListByProduct(ctx, productID, page.Normalize())
	if err != nil {
		return nil, translateStorageError(err, "failed to list reviews")
	}

	return reviews, nil
}

// CreateReview records a rating. The author is taken from the account, never from the request.
func (srv *reviewService) CreateReview(ctx context.Context, userID uuid.UUID, input *usecase.CreateReviewInput) (*entity.Review, error) {
	content := strings.TrimSpace(input.Content)
	if content == "" {
		return nil, domainerrors.NewValidationError("content", "review content is required")
	}
	if input.Rating < minRating || input.Rating > maxRating {
		return nil, domainerrors.NewValidationError("rating", "rating must be between 1 and 5")
	}

	if _, err := srv.productRepo.FindByID(ctx, input.ProductID); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, translateStorageError(err, "failed to find product")
	}

	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, translateStorageError(err, "failed to find user")
	}

	author := user.Username
	if author == "" {
		author = user.Email
	}

	review := &entity.Review{
		ProductID: input.ProductID,
		UserID:    userID,
		Author:    author,
		Content:   content,
		Rating:    input.Rating,
	}
	if err := srv.reviewRepo.Create(ctx, review); err != nil {
		return nil, translateStorageError(err, "failed to create review")
	}

	srv.log(ctx).Info("Review created",
		slog.String("review_id", review.ID.String()),
		slog.String("product_id", input.ProductID.String()),
	)

	return review, nil
}
