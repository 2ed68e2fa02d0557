package handler

import (
	"net/http"
	"testing"
	"time"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/realtime"
	mockUsecase "storefront/internal/mocks/usecase"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type orderHandlerFixtures struct {
	echo    *echo.Echo
	orderUC *mockUsecase.MockOrderUsecase
	userID  uuid.UUID
}

func createTestOrderHandler(t *testing.T, role entity.Role) orderHandlerFixtures {
	fx := orderHandlerFixtures{
		echo:    newTestEcho(),
		orderUC: mockUsecase.NewMockOrderUsecase(t),
		userID:  uuid.New(),
	}

	h := NewOrderHandler(OrderHandlerParams{OrderUC: fx.orderUC, Logger: newDiscardLogger()})
	group := fx.echo.Group("/orders", as(fx.userID, role))
	group.POST("", h.PlaceOrder)
	group.GET("", h.ListMyOrders)
	group.GET("/:orderId", h.GetOrder)
	group.PATCH("/:orderId/status", h.SetOrderStatus)
	fx.echo.GET("/admin/orders", h.ListOrders, as(fx.userID, role))

	return fx
}

func pendingOrder(userID uuid.UUID) *entity.Order {
	return &entity.Order{
		ID:          uuid.New(),
		OrderID:     "A1B2C3D4E5",
		UserID:      userID,
		Billing:     entity.Billing{Name: "Jane", Phone: "01700000000"},
		TotalAmount: decimal.RequireFromString("198"),
		Status:      entity.PendingStatus(),
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
}

func TestOrderHandler_PlaceOrder(t *testing.T) {
	fx := createTestOrderHandler(t, entity.RoleUser)
	productID := uuid.New()

	fx.orderUC.EXPECT().
		PlaceOrder(mock.Anything, mock.MatchedBy(func(in *usecase.PlaceOrderInput) bool {
			return in.UserID == fx.userID &&
				in.IdempotencyKey == "checkout-42" &&
				in.Billing.PaymentMethod == "bkash" &&
				len(in.Cart) == 1 && in.Cart[0].ProductID == productID && in.Cart[0].Quantity == 2
		})).
		Return(pendingOrder(fx.userID), nil)

	body := `{"name":"Jane","phone":"01700000000","paymentMethod":"bkash","bkashNumber":"01700000000",` +
		`"bkashTxnId":"TX1","totalAmount":"1","products":[{"productId":"` + productID.String() + `","quantity":2}]}`
	rec := doJSON(fx.echo, http.MethodPost, "/orders", body, HeaderIdempotencyKey, " checkout-42 ")

	assert.Equal(t, http.StatusCreated, rec.Code)
	got := decodeEnvelope[realtime.OrderPayload](t, rec)
	assert.Equal(t, "A1B2C3D4E5", got.Data.OrderID)
	assert.Equal(t, "Pending", got.Data.Status)
	assert.True(t, decimal.RequireFromString("198").Equal(got.Data.TotalAmount))
}

func TestOrderHandler_PlaceOrder_ValidationError(t *testing.T) {
	fx := createTestOrderHandler(t, entity.RoleUser)
	fx.orderUC.EXPECT().PlaceOrder(mock.Anything, mock.Anything).
		Return(nil, domainerrors.NewValidationError("products", "cart is empty"))

	rec := doJSON(fx.echo, http.MethodPost, "/orders", `{"products":[]}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "products", decodeEnvelope[any](t, rec).Error.Field)
}

func TestOrderHandler_ListMyOrders(t *testing.T) {
	fx := createTestOrderHandler(t, entity.RoleUser)
	requester := usecase.Requester{UserID: fx.userID, Role: entity.RoleUser}

	fx.orderUC.EXPECT().
		ListOrdersByUser(mock.Anything, fx.userID, requester, repository.Page{Limit: 10, Offset: 0}).
		Return(&usecase.OrderListOutput{Orders: []*entity.Order{pendingOrder(fx.userID)}, Total: 1}, nil)

	rec := doJSON(fx.echo, http.MethodGet, "/orders?limit=10", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	got := decodeEnvelope[ListResponse[realtime.OrderPayload]](t, rec)
	assert.Equal(t, int64(1), got.Data.Total)
	assert.Len(t, got.Data.Items, 1)
	assert.Equal(t, 10, got.Data.Limit)
}

func TestOrderHandler_ListMyOrders_OtherUserForbidden(t *testing.T) {
	fx := createTestOrderHandler(t, entity.RoleUser)
	other := uuid.New()

	fx.orderUC.EXPECT().
		ListOrdersByUser(mock.Anything, other, mock.Anything, mock.Anything).
		Return(nil, errors.Wrap(domainerrors.ErrForbidden, "not your orders"))

	rec := doJSON(fx.echo, http.MethodGet, "/orders?userId="+other.String(), "")

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestOrderHandler_GetOrder_NotFound(t *testing.T) {
	fx := createTestOrderHandler(t, entity.RoleUser)
	fx.orderUC.EXPECT().GetOrder(mock.Anything, "MISSING", mock.Anything).
		Return(nil, errors.WithStack(domainerrors.ErrOrderNotFound))

	rec := doJSON(fx.echo, http.MethodGet, "/orders/MISSING", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "ORDER_NOT_FOUND", decodeEnvelope[any](t, rec).Error.Code)
}

func TestOrderHandler_SetOrderStatus(t *testing.T) {
	fx := createTestOrderHandler(t, entity.RoleAdmin)
	rejected := pendingOrder(uuid.New())
	rejected.Status = entity.OrderStatus{Value: entity.OrderStatusRejected, RejectionReason: "Wrong TxnID"}

	fx.orderUC.EXPECT().
		SetOrderStatus(mock.Anything, &usecase.SetOrderStatusInput{
			OrderID:         "A1B2C3D4E5",
			Status:          entity.OrderStatusRejected,
			RejectionReason: "Wrong TxnID",
		}).
		Return(rejected, nil)

	rec := doJSON(fx.echo, http.MethodPatch, "/orders/A1B2C3D4E5/status", `{"status":"Rejected","rejectionReason":"Wrong TxnID"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	got := decodeEnvelope[realtime.OrderPayload](t, rec)
	assert.Equal(t, "Rejected", got.Data.Status)
	assert.Equal(t, "Wrong TxnID", got.Data.RejectionReason)
}

func TestOrderHandler_SetOrderStatus_MissingStatus(t *testing.T) {
	fx := createTestOrderHandler(t, entity.RoleAdmin)

	rec := doJSON(fx.echo, http.MethodPatch, "/orders/A1B2C3D4E5/status", `{}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "status", decodeEnvelope[any](t, rec).Error.Field)
}

func TestOrderHandler_ListOrders_Filters(t *testing.T) {
	t.Run("status and user", func(t *testing.T) {
		fx := createTestOrderHandler(t, entity.RoleAdmin)
		userID := uuid.New()

		fx.orderUC.EXPECT().
			ListOrders(mock.Anything, repository.OrderFilter{UserID: &userID, Status: entity.OrderStatusApproved}, repository.Page{Limit: 50}).
			Return(&usecase.OrderListOutput{}, nil)

		rec := doJSON(fx.echo, http.MethodGet, "/admin/orders?status=Approved&userId="+userID.String(), "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Empty(t, decodeEnvelope[ListResponse[realtime.OrderPayload]](t, rec).Data.Items)
	})

	t.Run("unknown status", func(t *testing.T) {
		fx := createTestOrderHandler(t, entity.RoleAdmin)

		rec := doJSON(fx.echo, http.MethodGet, "/admin/orders?status=Shipped", "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "status", decodeEnvelope[any](t, rec).Error.Field)
	})

	t.Run("bad user id", func(t *testing.T) {
		fx := createTestOrderHandler(t, entity.RoleAdmin)

		rec := doJSON(fx.echo, http.MethodGet, "/admin/orders?userId=nope", "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
