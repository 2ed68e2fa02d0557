package handler

import (
	"net/http"
	"strconv"

	"storefront/internal/delivery/api/response"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// RedeemHandler serves the admin redeem code endpoints.
type RedeemHandler struct {
	redeemUC usecase.RedeemUsecase
}

// NewRedeemHandler is the constructor for RedeemHandler.
func NewRedeemHandler(redeemUC usecase.RedeemUsecase) *RedeemHandler {
	return &RedeemHandler{redeemUC: redeemUC}
}

// AssignCodeRequest names the user receiving a code.
type AssignCodeRequest struct {
	UserID uuid.UUID `json:"userId" validate:"required"`
}

// GenerateCodes creates fresh codes for a product.
func (h *RedeemHandler) GenerateCodes(c echo.Context) error {
	var input usecase.GenerateRedeemCodesInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "Invalid redeem code input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	codes, err := h.redeemUC.GenerateCodes(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, mapSlice(codes, newRedeemCodeResponse), "Redeem codes generated")
}

// ListCodes lists codes, optionally of ?productId= and only ?unused=true ones.
func (h *RedeemHandler) ListCodes(c echo.Context) error {
	productID, err := parseOptionalUUID(c.QueryParam("productId"), "productId")
	if err != nil {
		return err
	}

	onlyUnused, _ := strconv.ParseBool(c.QueryParam("unused"))

	page, err := parsePage(c)
	if err != nil {
		return err
	}

	codes, err := h.redeemUC.ListCodes(c.Request().Context(), productID, onlyUnused, page)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, mapSlice(codes, newRedeemCodeResponse), "")
}

// AssignCode hands the code in the path to a user and emails it.
func (h *RedeemHandler) AssignCode(c echo.Context) error {
	var req AssignCodeRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid assignment input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	code, err := h.redeemUC.AssignCode(c.Request().Context(), c.Param("code"), req.UserID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newRedeemCodeResponse(code), "Redeem code assigned")
}
