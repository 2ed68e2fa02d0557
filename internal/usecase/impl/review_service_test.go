package impl

import (
	"context"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	mockRepo "storefront/internal/mocks/repository"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type reviewServiceFixtures struct {
	service     usecase.ReviewUsecase
	reviewRepo  *mockRepo.MockReviewRepository
	productRepo *mockRepo.MockProductRepository
	userRepo    *mockRepo.MockUserRepository
}

func createTestReviewService(t *testing.T) reviewServiceFixtures {
	reviewRepo := mockRepo.NewMockReviewRepository(t)
	productRepo := mockRepo.NewMockProductRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)

	return reviewServiceFixtures{
		service: NewReviewService(ReviewServiceParams{
			ReviewRepo:  reviewRepo,
			ProductRepo: productRepo,
			UserRepo:    userRepo,
			Logger:      newDiscardLogger(),
		}),
		reviewRepo:  reviewRepo,
		productRepo: productRepo,
		userRepo:    userRepo,
	}
}

func TestReviewService_CreateReview(t *testing.T) {
	fx := createTestReviewService(t)
	userID := uuid.New()
	productID := uuid.New()

	fx.productRepo.EXPECT().FindByID(mock.Anything, productID).Return(&entity.Product{ID: productID}, nil)
	fx.userRepo.EXPECT().FindByID(mock.Anything, userID).Return(&entity.User{ID: userID, Email: "jane@example.com"}, nil)
	fx.reviewRepo.EXPECT().
		Create(mock.Anything, mock.MatchedBy(func(r *entity.Review) bool {
			return r.Author == "jane@example.com" && r.Rating == 5 && r.Content == "Fast delivery"
		})).
		Return(nil)

	review, err := fx.service.CreateReview(context.Background(), userID, &usecase.CreateReviewInput{
		ProductID: productID,
		Content:   " Fast delivery ",
		Rating:    5,
	})

	require.NoError(t, err)
	assert.Equal(t, userID, review.UserID)
}

func TestReviewService_CreateReview_Rejects(t *testing.T) {
	t.Run("rating out of range", func(t *testing.T) {
		fx := createTestReviewService(t)

		_, err := fx.service.CreateReview(context.Background(), uuid.New(), &usecase.CreateReviewInput{
			ProductID: uuid.New(),
			Content:   "ok",
			Rating:    6,
		})

		requireValidationField(t, err, "rating")
	})

	t.Run("empty content", func(t *testing.T) {
		fx := createTestReviewService(t)

		_, err := fx.service.CreateReview(context.Background(), uuid.New(), &usecase.CreateReviewInput{
			ProductID: uuid.New(),
			Rating:    3,
		})

		requireValidationField(t, err, "content")
	})

	t.Run("unknown product", func(t *testing.T) {
		fx := createTestReviewService(t)
		fx.productRepo.EXPECT().FindByID(mock.Anything, mock.Anything).Return(nil, repository.ErrProductNotFound)

		_, err := fx.service.CreateReview(context.Background(), uuid.New(), &usecase.CreateReviewInput{
			ProductID: uuid.New(),
			Content:   "ok",
			Rating:    3,
		})

		assert.True(t, errors.Is(err, domainerrors.ErrProductNotFound))
	})
}

func TestReviewService_ListReviews(t *testing.T) {
	fx := createTestReviewService(t)
	productID := uuid.New()
	reviews := []*entity.Review{{ID: uuid.New(), ProductID: productID, Rating: 4}}

	fx.reviewRepo.EXPECT().ListByProduct(mock.Anything, &productID, repository.Page{Limit: 50}).Return(reviews, nil)

	got, err := fx.service.ListReviews(context.Background(), &productID, repository.Page{})

	require.NoError(t, err)
	assert.Equal(t, reviews, got)
}
