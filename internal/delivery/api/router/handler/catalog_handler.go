package handler

import (
	"io"
	"log/slog"
	"net/http"

	"storefront/internal/delivery/api/response"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// maxImageSize bounds a single uploaded image.
const maxImageSize = 5 << 20

// CatalogHandlerParams holds dependencies for CatalogHandler, injected by Fx.
type CatalogHandlerParams struct {
	fx.In

	CatalogUC usecase.CatalogUsecase
	Logger    *slog.Logger
}

// CatalogHandler serves products and admin image uploads.
type CatalogHandler struct {
	catalogUC usecase.CatalogUsecase
	logger    *slog.Logger
}

// NewCatalogHandler is the constructor for CatalogHandler.
func NewCatalogHandler(params CatalogHandlerParams) *CatalogHandler {
	return &CatalogHandler{
		catalogUC: params.CatalogUC,
		logger:    params.Logger,
	}
}

// ListProducts lists the catalog, optionally by ?category= and ?countryCode=.
func (h *CatalogHandler) ListProducts(c echo.Context) error {
	page, err := parsePage(c)
	if err != nil {
		return err
	}

	filter := repository.ProductFilter{
		Category:    c.QueryParam("category"),
		CountryCode: c.QueryParam("countryCode"),
	}

	output, err := h.catalogUC.ListProducts(c.Request().Context(), filter, page)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, ListResponse[*ProductResponse]{
		Items:  mapSlice(output.Products, newProductResponse),
		Total:  output.Total,
		Limit:  page.Limit,
		Offset: page.Offset,
	}, "")
}

// GetProduct returns one product.
func (h *CatalogHandler) GetProduct(c echo.Context) error {
	id, err := parseUUID(c.Param("id"), "id")
	if err != nil {
		return err
	}

	product, err := h.catalogUC.GetProduct(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newProductResponse(product), "")
}

// CheckTitle reports whether a product title is still free.
func (h *CatalogHandler) CheckTitle(c echo.Context) error {
	title := c.QueryParam("title")
	if title == "" {
		return domainerrors.NewValidationError("title", "title is required")
	}

	available, err := h.catalogUC.CheckTitle(c.Request().Context(), title)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]bool{"available": available}, "")
}

// CreateProduct adds a catalog entry.
func (h *CatalogHandler) CreateProduct(c echo.Context) error {
	var input usecase.ProductInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "Invalid product input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	product, err := h.catalogUC.CreateProduct(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, newProductResponse(product), "Product created")
}

// UpdateProduct replaces a catalog entry.
func (h *CatalogHandler) UpdateProduct(c echo.Context) error {
	id, err := parseUUID(c.Param("id"), "id")
	if err != nil {
		return err
	}

	var input usecase.ProductInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "Invalid product input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	product, err := h.catalogUC.UpdateProduct(c.Request().Context(), id, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newProductResponse(product), "Product updated")
}

// DeleteProduct removes a catalog entry. Past orders keep their snapshot.
func (h *CatalogHandler) DeleteProduct(c echo.Context) error {
	id, err := parseUUID(c.Param("id"), "id")
	if err != nil {
		return err
	}

	if err := h.catalogUC.DeleteProduct(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Product deleted")
}

// UploadImage stores the multipart "image" file and returns its public URL.
func (h *CatalogHandler) UploadImage(c echo.Context) error {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		return domainerrors.NewValidationError("file", "an image file is required")
	}
	if fileHeader.Size > maxImageSize {
		return domainerrors.NewValidationError("file", "image must be at most 5MB")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return errors.Wrap(err, "failed to open uploaded file")
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxImageSize+1))
	if err != nil {
		return errors.Wrap(err, "failed to read uploaded file")
	}

	url, err := h.catalogUC.UploadImage(c.Request().Context(), &usecase.UploadImageInput{
		Filename: fileHeader.Filename,
		Data:     data,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, map[string]string{"url": url}, "Image uploaded")
}
