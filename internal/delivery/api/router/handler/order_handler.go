package handler

import (
	"log/slog"
	"net/http"
	"strings"

	"storefront/internal/delivery/api/middleware"
	"storefront/internal/delivery/api/response"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/realtime"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// HeaderIdempotencyKey lets clients retry a checkout without creating a second order.
const HeaderIdempotencyKey = "Idempotency-Key"

// OrderHandlerParams holds dependencies for OrderHandler, injected by Fx.
type OrderHandlerParams struct {
	fx.In

	OrderUC usecase.OrderUsecase
	Logger  *slog.Logger
}

// OrderHandler serves checkout and the order review workflow.
type OrderHandler struct {
	orderUC usecase.OrderUsecase
	logger  *slog.Logger
}

// NewOrderHandler is the constructor for OrderHandler.
func NewOrderHandler(params OrderHandlerParams) *OrderHandler {
	return &OrderHandler{
		orderUC: params.OrderUC,
		logger:  params.Logger,
	}
}

// PlaceOrderRequest is the checkout form. A client supplied total is accepted
// for compatibility and ignored; the catalog prices the order.
type PlaceOrderRequest struct {
	usecase.BillingInput
	Products    []usecase.CartItemInput `json:"products"`
	TotalAmount any                     `json:"totalAmount,omitempty"`
}

// SetOrderStatusRequest is the body of the status endpoint.
type SetOrderStatusRequest struct {
	Status          string `json:"status" validate:"required"`
	RejectionReason string `json:"rejectionReason"`
}

// PlaceOrder creates a Pending order for the caller.
func (h *OrderHandler) PlaceOrder(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return errors.WithStack(domainerrors.ErrUnauthorized)
	}

	var req PlaceOrderRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid order input")
	}

	order, err := h.orderUC.PlaceOrder(c.Request().Context(), &usecase.PlaceOrderInput{
		UserID:         userID,
		Cart:           req.Products,
		Billing:        req.BillingInput,
		IdempotencyKey: strings.TrimSpace(c.Request().Header.Get(HeaderIdempotencyKey)),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, realtime.NewOrderPayload(order), "Order placed")
}

// ListMyOrders lists the orders of ?userId=, defaulting to the caller.
func (h *OrderHandler) ListMyOrders(c echo.Context) error {
	requester, err := middleware.GetRequester(c)
	if err != nil {
		return err
	}

	userID := requester.UserID
	if raw := c.QueryParam("userId"); raw != "" {
		if userID, err = parseUUID(raw, "userId"); err != nil {
			return err
		}
	}

	page, err := parsePage(c)
	if err != nil {
		return err
	}

	output, err := h.orderUC.ListOrdersByUser(c.Request().Context(), userID, requester, page)
	if err != nil {
		return errors.WithStack(err)
	}

	return h.renderList(c, output, page)
}

// GetOrder returns one order to its owner or an admin.
func (h *OrderHandler) GetOrder(c echo.Context) error {
	requester, err := middleware.GetRequester(c)
	if err != nil {
		return err
	}

	order, err := h.orderUC.GetOrder(c.Request().Context(), c.Param("orderId"), requester)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, realtime.NewOrderPayload(order), "")
}

// ListOrders is the admin listing, filtered by ?status= and ?userId=.
func (h *OrderHandler) ListOrders(c echo.Context) error {
	userID, err := parseOptionalUUID(c.QueryParam("userId"), "userId")
	if err != nil {
		return err
	}

	filter := repository.OrderFilter{UserID: userID}
	if status := c.QueryParam("status"); status != "" {
		filter.Status = entity.OrderStatusValue(status)
		if !filter.Status.IsValid() {
			return domainerrors.NewValidationError("status", "status must be one of Pending, Approved, Rejected")
		}
	}

	page, err := parsePage(c)
	if err != nil {
		return err
	}

	output, err := h.orderUC.ListOrders(c.Request().Context(), filter, page)
	if err != nil {
		return errors.WithStack(err)
	}

	return h.renderList(c, output, page)
}

// SetOrderStatus moves an order through the review workflow.
func (h *OrderHandler) SetOrderStatus(c echo.Context) error {
	var req SetOrderStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid status input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	order, err := h.orderUC.SetOrderStatus(c.Request().Context(), &usecase.SetOrderStatusInput{
		OrderID:         c.Param("orderId"),
		Status:          entity.OrderStatusValue(req.Status),
		RejectionReason: req.RejectionReason,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, realtime.NewOrderPayload(order), "Order status updated")
}

func (h *OrderHandler) renderList(c echo.Context, output *usecase.OrderListOutput, page repository.Page) error {
	return response.Success(c, http.StatusOK, ListResponse[*realtime.OrderPayload]{
		Items:  mapSlice(output.Orders, realtime.NewOrderPayload),
		Total:  output.Total,
		Limit:  page.Limit,
		Offset: page.Offset,
	}, "")
}
