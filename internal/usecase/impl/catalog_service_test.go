package impl

import (
	"context"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	mockRepo "storefront/internal/mocks/repository"
	mockSvc "storefront/internal/mocks/service"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// pngHeader is enough for content sniffing to report image/png.
var pngHeader = []byte("\x89PNG\x0D\x0A\x1A\x0A\x00\x00\x00\x0DIHDR")

type catalogServiceFixtures struct {
	service     usecase.CatalogUsecase
	productRepo *mockRepo.MockProductRepository
	uploader    *mockSvc.MockImageUploader
}

func createTestCatalogService(t *testing.T) catalogServiceFixtures {
	productRepo := mockRepo.NewMockProductRepository(t)
	uploader := mockSvc.NewMockImageUploader(t)

	return catalogServiceFixtures{
		service: NewCatalogService(CatalogServiceParams{
			ProductRepo: productRepo,
			Uploader:    uploader,
			Config:      newTestConfig(),
			Logger:      newDiscardLogger(),
		}),
		productRepo: productRepo,
		uploader:    uploader,
	}
}

func productInput() *usecase.ProductInput {
	return &usecase.ProductInput{
		Title:       " PUBG UC ",
		Description: "Unknown Cash top-up",
		ImageURL:    "https://img.example.com/uc.png",
		Region:      "Global",
		Category:    "games",
		CountryCode: "bd",
		SubProducts: []usecase.SubProductInput{
			{Name: "60 UC", Price: decimal.RequireFromString("99"), InStock: true},
		},
	}
}

func TestCatalogService_CreateProduct(t *testing.T) {
	fx := createTestCatalogService(t)

	fx.productRepo.EXPECT().
		Create(mock.Anything, mock.MatchedBy(func(p *entity.Product) bool {
			return p.Title == "PUBG UC" &&
				p.CountryCode == "BD" &&
				p.Popularity == entity.PopularityRegular &&
				len(p.SubProducts) == 1 &&
				p.SubProducts[0].ID != uuid.Nil
		})).
		Return(nil)

	product, err := fx.service.CreateProduct(context.Background(), productInput())

	require.NoError(t, err)
	assert.Equal(t, "PUBG UC", product.Title)
}

func TestCatalogService_CreateProduct_Rejects(t *testing.T) {
	t.Run("duplicate title", func(t *testing.T) {
		fx := createTestCatalogService(t)
		fx.productRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(&repository.UniqueViolationError{Field: "title"})

		_, err := fx.service.CreateProduct(context.Background(), productInput())

		var duplicate *domainerrors.DuplicateFieldError
		require.ErrorAs(t, err, &duplicate)
		assert.Equal(t, "title", duplicate.Field())
	})

	t.Run("negative package price", func(t *testing.T) {
		fx := createTestCatalogService(t)
		input := productInput()
		input.SubProducts[0].Price = decimal.NewFromInt(-1)

		_, err := fx.service.CreateProduct(context.Background(), input)

		requireValidationField(t, err, "subProducts")
	})

	t.Run("unknown popularity", func(t *testing.T) {
		fx := createTestCatalogService(t)
		input := productInput()
		input.Popularity = "viral"

		_, err := fx.service.CreateProduct(context.Background(), input)

		requireValidationField(t, err, "popularity")
	})
}

func TestCatalogService_UpdateProduct_KeepsPackageIDs(t *testing.T) {
	fx := createTestCatalogService(t)
	id := uuid.New()
	subID := uuid.New()
	input := productInput()
	input.SubProducts[0].ID = &subID

	fx.productRepo.EXPECT().FindByID(mock.Anything, id).Return(&entity.Product{ID: id, Title: "Old"}, nil)
	fx.productRepo.EXPECT().
		Update(mock.Anything, mock.MatchedBy(func(p *entity.Product) bool {
			return p.ID == id && p.SubProducts[0].ID == subID
		})).
		Return(nil)

	product, err := fx.service.UpdateProduct(context.Background(), id, input)

	require.NoError(t, err)
	assert.Equal(t, "PUBG UC", product.Title)
}

func TestCatalogService_GetAndDelete_NotFound(t *testing.T) {
	fx := createTestCatalogService(t)
	fx.productRepo.EXPECT().FindByID(mock.Anything, mock.Anything).Return(nil, repository.ErrProductNotFound)
	fx.productRepo.EXPECT().Delete(mock.Anything, mock.Anything).Return(repository.ErrProductNotFound)

	_, err := fx.service.GetProduct(context.Background(), uuid.New())
	assert.True(t, errors.Is(err, domainerrors.ErrProductNotFound))

	err = fx.service.DeleteProduct(context.Background(), uuid.New())
	assert.True(t, errors.Is(err, domainerrors.ErrProductNotFound))
}

func TestCatalogService_CheckTitle(t *testing.T) {
	fx := createTestCatalogService(t)
	fx.productRepo.EXPECT().ExistsByTitle(mock.Anything, "PUBG UC").Return(true, nil)

	available, err := fx.service.CheckTitle(context.Background(), " PUBG UC ")

	require.NoError(t, err)
	assert.False(t, available)
}

func TestCatalogService_UploadImage(t *testing.T) {
	t.Run("uploads images", func(t *testing.T) {
		fx := createTestCatalogService(t)
		fx.uploader.EXPECT().
			UploadImage(mock.Anything, "storefront-test", mock.AnythingOfType("string"), pngHeader).
			Return("https://res.cloudinary.com/demo/image/upload/x.png", nil)

		url, err := fx.service.UploadImage(context.Background(), &usecase.UploadImageInput{Filename: "x.png", Data: pngHeader})

		require.NoError(t, err)
		assert.Equal(t, "https://res.cloudinary.com/demo/image/upload/x.png", url)
	})

	t.Run("rejects non images", func(t *testing.T) {
		fx := createTestCatalogService(t)

		_, err := fx.service.UploadImage(context.Background(), &usecase.UploadImageInput{Filename: "x.txt", Data: []byte("hello")})

		requireValidationField(t, err, "file")
	})

	t.Run("host failure", func(t *testing.T) {
		fx := createTestCatalogService(t)
		fx.uploader.EXPECT().UploadImage(mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return("", errors.New("503"))

		_, err := fx.service.UploadImage(context.Background(), &usecase.UploadImageInput{Data: pngHeader})

		assert.True(t, errors.Is(err, domainerrors.ErrUploadFailed))
	})
}
