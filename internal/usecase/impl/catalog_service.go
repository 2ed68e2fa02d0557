package impl

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	defaultExternalTimeout = 10 * time.Second
	defaultUploadFolder    = "storefront"
)

// catalogService implements the CatalogUsecase interface.
type catalogService struct {
	productRepo     repository.ProductRepository
	uploader        service.ImageUploader
	folder          string
	externalTimeout time.Duration
	logger          *slog.Logger
}

// CatalogServiceParams holds dependencies for CatalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	ProductRepo repository.ProductRepository
	Uploader    service.ImageUploader
	Config      *config.Config
	Logger      *slog.Logger
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	folder := defaultUploadFolder
	externalTimeout := defaultExternalTimeout
	if params.Config != nil {
		if params.Config.Cloudinary != nil && params.Config.Cloudinary.Folder != "" {
			folder = params.Config.Cloudinary.Folder
		}
		if params.Config.Timeouts != nil && params.Config.Timeouts.External > 0 {
			externalTimeout = params.Config.Timeouts.External
		}
	}

	return &catalogService{
		productRepo:     params.ProductRepo,
		uploader:        params.Uploader,
		folder:          folder,
		externalTimeout: externalTimeout,
		logger:          params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *catalogService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListProducts returns a page of the catalog ordered by display order.
func (srv *catalogService) ListProducts(ctx context.Context, filter repository.ProductFilter, page repository.Page) (*usecase.ProductListOutput, error) {
	products, total, err := srv.productRepo.List(ctx, filter, page.Normalize())
	if err != nil {
		return nil, translateStorageError(err, "failed to list products")
	}

	return &usecase.ProductListOutput{Products: products, Total: total}, nil
}

// GetProduct returns one catalog entry.
func (srv *catalogService) GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	product, err := srv.productRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, translateStorageError(err, "failed to find product")
	}

	return product, nil
}

// CheckTitle reports whether title is still available.
func (srv *catalogService) CheckTitle(ctx context.Context, title string) (bool, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return false, domainerrors.NewValidationError("title", "title is required")
	}

	exists, err := srv.productRepo.ExistsByTitle(ctx, title)
	if err != nil {
		return false, translateStorageError(err, "failed to check title")
	}

	return !exists, nil
}

// CreateProduct adds a catalog entry.
func (srv *catalogService) CreateProduct(ctx context.Context, input *usecase.ProductInput) (*entity.Product, error) {
	product := &entity.Product{}
	if err := applyProductInput(product, input); err != nil {
		return nil, err
	}

	if err := srv.productRepo.Create(ctx, product); err != nil {
		return nil, translateStorageError(err, "failed to create product")
	}

	srv.log(ctx).Info("Product created", slog.String("product_id", product.ID.String()), slog.String("title", product.Title))

	return product, nil
}

// UpdateProduct replaces the editable fields of a catalog entry.
func (srv *catalogService) UpdateProduct(ctx context.Context, id uuid.UUID, input *usecase.ProductInput) (*entity.Product, error) {
	product, err := srv.GetProduct(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := applyProductInput(product, input); err != nil {
		return nil, err
	}

	if err := srv.productRepo.Update(ctx, product); err != nil {
		return nil, translateStorageError(err, "failed to update product")
	}

	srv.log(ctx).Info("Product updated", slog.String("product_id", id.String()))

	return product, nil
}

// DeleteProduct removes a catalog entry. Existing orders keep their snapshot.
func (srv *catalogService) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	if err := srv.productRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return domainerrors.ErrProductNotFound
		}

		return translateStorageError(err, "failed to delete product")
	}

	srv.log(ctx).Info("Product deleted", slog.String("product_id", id.String()))

	return nil
}

// UploadImage stores an image on the blob host and returns its public URL.
func (srv *catalogService) UploadImage(ctx context.Context, input *usecase.UploadImageInput) (string, error) {
	if len(input.Data) == 0 {
		return "", domainerrors.NewValidationError("file", "the file is empty")
	}

	contentType := http.DetectContentType(input.Data)
	if !strings.HasPrefix(contentType, "image/") {
		return "", domainerrors.NewValidationError("file", "only images can be uploaded")
	}

	uploadCtx, cancel := context.WithTimeout(ctx, srv.externalTimeout)
	defer cancel()

	url, err := srv.uploader.UploadImage(uploadCtx, srv.folder, uuid.NewString(), input.Data)
	if err != nil {
		srv.log(ctx).Error("Image upload failed",
			slog.String("filename", input.Filename),
			slog.String("content_type", contentType),
			slog.Any("error", err),
		)

		if errors.Is(err, context.DeadlineExceeded) {
			return "", errors.Wrap(domainerrors.ErrTimeout, "image upload timed out")
		}

		return "", errors.Wrap(domainerrors.ErrUploadFailed, err.Error())
	}

	return url, nil
}

func applyProductInput(product *entity.Product, input *usecase.ProductInput) error {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return domainerrors.NewValidationError("title", "title is required")
	}
	if input.Price.IsNegative() {
		return domainerrors.NewValidationError("price", "price cannot be negative")
	}

	popularity := input.Popularity
	switch popularity {
	case "":
		popularity = entity.PopularityRegular
	case entity.PopularityRegular, entity.PopularityPopular, entity.PopularityTrending:
	default:
		return domainerrors.NewValidationError("popularity", "popularity must be one of regular, popular, trending")
	}

	subProducts := make([]entity.SubProduct, 0, len(input.SubProducts))
	for _, sub := range input.SubProducts {
		name := strings.TrimSpace(sub.Name)
		if name == "" {
			return domainerrors.NewValidationError("subProducts", "every package needs a name")
		}
		if sub.Price.IsNegative() || sub.OriginalPrice.IsNegative() {
			return domainerrors.NewValidationError("subProducts", "package prices cannot be negative")
		}
		if sub.StockQuantity != nil && *sub.StockQuantity < 0 {
			return domainerrors.NewValidationError("subProducts", "stock quantity cannot be negative")
		}

		id := uuid.New()
		if sub.ID != nil && *sub.ID != uuid.Nil {
			id = *sub.ID
		}

		subProducts = append(subProducts, entity.SubProduct{
			ID:            id,
			Name:          name,
			Price:         sub.Price,
			OriginalPrice: sub.OriginalPrice,
			StockQuantity: sub.StockQuantity,
			InStock:       sub.InStock,
		})
	}

	product.Title = title
	product.Description = strings.TrimSpace(input.Description)
	product.Guide = input.Guide
	product.GuideEnabled = input.GuideEnabled
	product.ImageURL = strings.TrimSpace(input.ImageURL)
	product.Region = strings.TrimSpace(input.Region)
	product.InstantDelivery = input.InstantDelivery
	product.ImportantNote = input.ImportantNote
	product.Category = strings.TrimSpace(input.Category)
	product.Popularity = popularity
	product.CountryCode = strings.ToUpper(strings.TrimSpace(input.CountryCode))
	product.DisplayOrder = input.DisplayOrder
	product.IsIDBased = input.IsIDBased
	product.Price = input.Price
	product.InStock = input.InStock
	product.SubProducts = subProducts

	return nil
}
