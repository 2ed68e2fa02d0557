package impl

import (
	"context"
	"strings"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
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

// orderServiceFixtures holds all test dependencies for order service tests.
type orderServiceFixtures struct {
	service     usecase.OrderUsecase
	orderRepo   *mockRepo.MockOrderRepository
	productRepo *mockRepo.MockProductRepository
	publisher   *mockSvc.MockEventPublisher
	idGenerator *mockSvc.MockOrderIDGenerator
	idempotency *mockSvc.MockIdempotencyStore
}

func createTestOrderService(t *testing.T) orderServiceFixtures {
	orderRepo := mockRepo.NewMockOrderRepository(t)
	productRepo := mockRepo.NewMockProductRepository(t)
	publisher := mockSvc.NewMockEventPublisher(t)
	idGenerator := mockSvc.NewMockOrderIDGenerator(t)
	idempotency := mockSvc.NewMockIdempotencyStore(t)

	service := NewOrderService(OrderServiceParams{
		OrderRepo:   orderRepo,
		ProductRepo: productRepo,
		Publisher:   publisher,
		IDGenerator: idGenerator,
		Idempotency: idempotency,
		Config:      newTestConfig(),
		Logger:      newDiscardLogger(),
	})

	return orderServiceFixtures{
		service:     service,
		orderRepo:   orderRepo,
		productRepo: productRepo,
		publisher:   publisher,
		idGenerator: idGenerator,
		idempotency: idempotency,
	}
}

func validBillingInput() usecase.BillingInput {
	return usecase.BillingInput{
		Name:          "Rahim",
		Phone:         "01712345678",
		Email:         "rahim@example.com",
		PaymentMethod: "bkash",
		BkashNumber:   "01812345678",
		BkashTxnID:    "TX123",
	}
}

func catalogFixture() (*entity.Product, *entity.Product) {
	stock := 3
	diamonds := &entity.Product{
		ID:      uuid.New(),
		Title:   "Free Fire Diamonds",
		InStock: true,
		SubProducts: []entity.SubProduct{
			{ID: uuid.New(), Name: "100 Diamonds", Price: decimal.RequireFromString("95.50"), InStock: true},
			{ID: uuid.New(), Name: "500 Diamonds", Price: decimal.RequireFromString("450"), InStock: true, StockQuantity: &stock},
		},
	}
	giftCard := &entity.Product{
		ID:      uuid.New(),
		Title:   "Gift Card",
		Price:   decimal.RequireFromString("200"),
		InStock: true,
	}

	return diamonds, giftCard
}

func TestOrderService_PlaceOrder_Success(t *testing.T) {
	fx := createTestOrderService(t)
	userID := uuid.New()
	diamonds, giftCard := catalogFixture()
	subID := diamonds.SubProducts[0].ID

	fx.productRepo.EXPECT().
		FindByIDs(mock.Anything, []uuid.UUID{diamonds.ID, giftCard.ID}).
		Return(map[uuid.UUID]*entity.Product{diamonds.ID: diamonds, giftCard.ID: giftCard}, nil)
	fx.idGenerator.EXPECT().Generate().Return("AB12CD34EF", nil)
	fx.orderRepo.EXPECT().
		Create(mock.Anything, mock.AnythingOfType("*entity.Order")).
		Run(func(_ context.Context, o *entity.Order) { o.ID = uuid.New() }).
		Return(nil)
	fx.publisher.EXPECT().
		PublishOrderEvent(mock.Anything, mock.MatchedBy(func(e *entity.OrderEvent) bool {
			return e.Type == entity.OrderEventCreated && e.Order.OrderID == "AB12CD34EF"
		})).
		Return(nil)

	order, err := fx.service.PlaceOrder(context.Background(), &usecase.PlaceOrderInput{
		UserID: userID,
		Cart: []usecase.CartItemInput{
			{ProductID: diamonds.ID, SubProductID: &subID, Quantity: 2},
			{ProductID: giftCard.ID, Quantity: 1},
		},
		Billing: validBillingInput(),
	})

	require.NoError(t, err)
	assert.Equal(t, "AB12CD34EF", order.OrderID)
	assert.Equal(t, userID, order.UserID)
	assert.Equal(t, entity.OrderStatusPending, order.Status.Value)
	assert.Equal(t, entity.DefaultRejectionReason, order.Status.RejectionReason)
	assert.True(t, decimal.RequireFromString("391").Equal(order.TotalAmount), "got %s", order.TotalAmount)
	require.Len(t, order.Items, 2)
	assert.Equal(t, "Free Fire Diamonds - 100 Diamonds", order.Items[0].Name)
	assert.Equal(t, entity.PaymentMethodBkash, order.Payment.Method())
	assert.Equal(t, "TX123", order.Payment.Fields().BkashTxnID)
}

func TestOrderService_PlaceOrder_ValidationOrder(t *testing.T) {
	diamonds, _ := catalogFixture()
	cart := []usecase.CartItemInput{{ProductID: diamonds.ID, Quantity: 1}}

	tests := []struct {
		name   string
		mutate func(b *usecase.BillingInput)
		cart   []usecase.CartItemInput
		field  string
	}{
		{name: "name first", mutate: func(b *usecase.BillingInput) { b.Name = " "; b.Phone = "1" }, cart: cart, field: "name"},
		{name: "phone too short", mutate: func(b *usecase.BillingInput) { b.Phone = "0171234567" }, cart: cart, field: "phone"},
		{name: "phone not numeric", mutate: func(b *usecase.BillingInput) { b.Phone = "0171234567a" }, cart: cart, field: "phone"},
		{name: "bad email", mutate: func(b *usecase.BillingInput) { b.Email = "nope" }, cart: cart, field: "email"},
		{name: "unknown payment method", mutate: func(b *usecase.BillingInput) { b.PaymentMethod = "paypal" }, cart: cart, field: "paymentMethod"},
		{name: "bkash without txn id", mutate: func(b *usecase.BillingInput) { b.BkashTxnID = "" }, cart: cart, field: "bkashTxnId"},
		{name: "nagad without number", mutate: func(b *usecase.BillingInput) { b.PaymentMethod = "nagad" }, cart: cart, field: "nagadNumber"},
		{name: "empty cart", mutate: func(*usecase.BillingInput) {}, cart: nil, field: "products"},
		{
			name:   "zero quantity",
			mutate: func(*usecase.BillingInput) {},
			cart:   []usecase.CartItemInput{{ProductID: diamonds.ID, Quantity: 0}},
			field:  "quantity",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestOrderService(t)
			billing := validBillingInput()
			tt.mutate(&billing)

			order, err := fx.service.PlaceOrder(context.Background(), &usecase.PlaceOrderInput{
				UserID:  uuid.New(),
				Cart:    tt.cart,
				Billing: billing,
			})

			assert.Nil(t, order)
			requireValidationField(t, err, tt.field)
		})
	}
}

func TestOrderService_PlaceOrder_CatalogChecks(t *testing.T) {
	diamonds, giftCard := catalogFixture()
	bigPack := diamonds.SubProducts[1].ID
	unknown := uuid.New()

	tests := []struct {
		name  string
		cart  []usecase.CartItemInput
		field string
	}{
		{name: "unknown product", cart: []usecase.CartItemInput{{ProductID: unknown, Quantity: 1}}, field: "products"},
		{name: "package required", cart: []usecase.CartItemInput{{ProductID: diamonds.ID, Quantity: 1}}, field: "subProductId"},
		{name: "package of another product", cart: []usecase.CartItemInput{{ProductID: giftCard.ID, SubProductID: &bigPack, Quantity: 1}}, field: "subProductId"},
		{name: "not enough stock", cart: []usecase.CartItemInput{{ProductID: diamonds.ID, SubProductID: &bigPack, Quantity: 4}}, field: "products"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestOrderService(t)
			fx.productRepo.EXPECT().
				FindByIDs(mock.Anything, mock.Anything).
				Return(map[uuid.UUID]*entity.Product{diamonds.ID: diamonds, giftCard.ID: giftCard}, nil)

			_, err := fx.service.PlaceOrder(context.Background(), &usecase.PlaceOrderInput{
				UserID:  uuid.New(),
				Cart:    tt.cart,
				Billing: validBillingInput(),
			})

			requireValidationField(t, err, tt.field)
		})
	}
}

func TestOrderService_PlaceOrder_RegeneratesCollidingOrderID(t *testing.T) {
	fx := createTestOrderService(t)
	_, giftCard := catalogFixture()

	fx.productRepo.EXPECT().
		FindByIDs(mock.Anything, mock.Anything).
		Return(map[uuid.UUID]*entity.Product{giftCard.ID: giftCard}, nil)
	fx.idGenerator.EXPECT().Generate().Return("TAKEN00000", nil).Once()
	fx.idGenerator.EXPECT().Generate().Return("FREE000000", nil).Once()
	fx.orderRepo.EXPECT().
		Create(mock.Anything, mock.MatchedBy(func(o *entity.Order) bool { return o.OrderID == "TAKEN00000" })).
		Return(&repository.UniqueViolationError{Field: "orderId"}).
		Once()
	fx.orderRepo.EXPECT().
		Create(mock.Anything, mock.MatchedBy(func(o *entity.Order) bool { return o.OrderID == "FREE000000" })).
		Return(nil).
		Once()
	fx.publisher.EXPECT().PublishOrderEvent(mock.Anything, mock.Anything).Return(errors.New("hub closed"))

	order, err := fx.service.PlaceOrder(context.Background(), &usecase.PlaceOrderInput{
		UserID:  uuid.New(),
		Cart:    []usecase.CartItemInput{{ProductID: giftCard.ID, Quantity: 1}},
		Billing: validBillingInput(),
	})

	require.NoError(t, err, "a failed publish never fails the order")
	assert.Equal(t, "FREE000000", order.OrderID)
}

func TestOrderService_PlaceOrder_GivesUpAfterMaxAttempts(t *testing.T) {
	fx := createTestOrderService(t)
	_, giftCard := catalogFixture()

	fx.productRepo.EXPECT().
		FindByIDs(mock.Anything, mock.Anything).
		Return(map[uuid.UUID]*entity.Product{giftCard.ID: giftCard}, nil)
	fx.idGenerator.EXPECT().Generate().Return("TAKEN00000", nil).Times(3)
	fx.orderRepo.EXPECT().
		Create(mock.Anything, mock.Anything).
		Return(&repository.UniqueViolationError{Field: "orderId"}).
		Times(3)

	_, err := fx.service.PlaceOrder(context.Background(), &usecase.PlaceOrderInput{
		UserID:  uuid.New(),
		Cart:    []usecase.CartItemInput{{ProductID: giftCard.ID, Quantity: 1}},
		Billing: validBillingInput(),
	})

	assert.True(t, errors.Is(err, domainerrors.ErrInternalError))
}

func TestOrderService_PlaceOrder_Idempotency(t *testing.T) {
	userID := uuid.New()
	reservation := userID.String() + ":key-1"
	_, giftCard := catalogFixture()
	input := func() *usecase.PlaceOrderInput {
		return &usecase.PlaceOrderInput{
			UserID:         userID,
			Cart:           []usecase.CartItemInput{{ProductID: giftCard.ID, Quantity: 1}},
			Billing:        validBillingInput(),
			IdempotencyKey: "key-1",
		}
	}

	t.Run("over-long key is rejected before reserving", func(t *testing.T) {
		fx := createTestOrderService(t)
		long := input()
		long.IdempotencyKey = strings.Repeat("k", maxIdempotencyKeyLength+1)

		_, err := fx.service.PlaceOrder(context.Background(), long)

		requireValidationField(t, err, "idempotencyKey")
	})

	t.Run("key at the column limit is accepted", func(t *testing.T) {
		fx := createTestOrderService(t)
		atLimit := input()
		atLimit.IdempotencyKey = strings.Repeat("k", maxIdempotencyKeyLength)
		fx.idempotency.EXPECT().
			Reserve(mock.Anything, userID.String()+":"+atLimit.IdempotencyKey, defaultIdempotencyWindow).
			Return(service.ReservationInFlight, "", nil)

		_, err := fx.service.PlaceOrder(context.Background(), atLimit)

		var duplicate *domainerrors.DuplicateFieldError
		require.ErrorAs(t, err, &duplicate)
		assert.Equal(t, "idempotencyKey", duplicate.Field())
	})

	t.Run("first submission completes the key", func(t *testing.T) {
		fx := createTestOrderService(t)
		fx.idempotency.EXPECT().Reserve(mock.Anything, reservation, defaultIdempotencyWindow).Return(service.ReservationAcquired, "", nil)
		fx.productRepo.EXPECT().FindByIDs(mock.Anything, mock.Anything).Return(map[uuid.UUID]*entity.Product{giftCard.ID: giftCard}, nil)
		fx.idGenerator.EXPECT().Generate().Return("ORDER00001", nil)
		fx.orderRepo.EXPECT().
			Create(mock.Anything, mock.MatchedBy(func(o *entity.Order) bool { return o.IdempotencyKey == "key-1" })).
			Return(nil)
		fx.publisher.EXPECT().PublishOrderEvent(mock.Anything, mock.Anything).Return(nil)
		fx.idempotency.EXPECT().Complete(mock.Anything, reservation, "ORDER00001", defaultIdempotencyWindow).Return(nil)

		order, err := fx.service.PlaceOrder(context.Background(), input())

		require.NoError(t, err)
		assert.Equal(t, "ORDER00001", order.OrderID)
	})

	t.Run("repeat returns the existing order", func(t *testing.T) {
		fx := createTestOrderService(t)
		existing := &entity.Order{OrderID: "ORDER00001", UserID: userID}
		fx.idempotency.EXPECT().Reserve(mock.Anything, reservation, defaultIdempotencyWindow).Return(service.ReservationCompleted, "ORDER00001", nil)
		fx.orderRepo.EXPECT().FindByOrderID(mock.Anything, "ORDER00001").Return(existing, nil)

		order, err := fx.service.PlaceOrder(context.Background(), input())

		require.NoError(t, err)
		assert.Same(t, existing, order)
	})

	t.Run("concurrent repeat is rejected", func(t *testing.T) {
		fx := createTestOrderService(t)
		fx.idempotency.EXPECT().Reserve(mock.Anything, reservation, defaultIdempotencyWindow).Return(service.ReservationInFlight, "", nil)

		_, err := fx.service.PlaceOrder(context.Background(), input())

		var duplicate *domainerrors.DuplicateFieldError
		require.ErrorAs(t, err, &duplicate)
		assert.Equal(t, "idempotencyKey", duplicate.Field())
	})

	t.Run("failed placement releases the key", func(t *testing.T) {
		fx := createTestOrderService(t)
		fx.idempotency.EXPECT().Reserve(mock.Anything, reservation, defaultIdempotencyWindow).Return(service.ReservationAcquired, "", nil)
		fx.productRepo.EXPECT().FindByIDs(mock.Anything, mock.Anything).Return(nil, repository.ErrStorageTimeout)
		fx.idempotency.EXPECT().Release(mock.Anything, reservation).Return(nil)

		_, err := fx.service.PlaceOrder(context.Background(), input())

		assert.True(t, errors.Is(err, domainerrors.ErrTimeout))
	})

	t.Run("store outage falls back to the ledger index", func(t *testing.T) {
		fx := createTestOrderService(t)
		existing := &entity.Order{OrderID: "ORDER00001", UserID: userID}
		fx.idempotency.EXPECT().Reserve(mock.Anything, reservation, defaultIdempotencyWindow).Return(service.ReservationAcquired, "", errors.New("redis down"))
		fx.productRepo.EXPECT().FindByIDs(mock.Anything, mock.Anything).Return(map[uuid.UUID]*entity.Product{giftCard.ID: giftCard}, nil)
		fx.idGenerator.EXPECT().Generate().Return("ORDER00002", nil)
		fx.orderRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(&repository.UniqueViolationError{Field: "idempotencyKey"})
		fx.orderRepo.EXPECT().FindByIdempotencyKey(mock.Anything, userID, "key-1").Return(existing, nil)

		order, err := fx.service.PlaceOrder(context.Background(), input())

		require.NoError(t, err)
		assert.Same(t, existing, order)
	})
}

func TestOrderService_SetOrderStatus(t *testing.T) {
	t.Run("approve resets the reason and publishes", func(t *testing.T) {
		fx := createTestOrderService(t)
		updated := &entity.Order{OrderID: "ORDER00001", Status: entity.OrderStatus{Value: entity.OrderStatusApproved, RejectionReason: "N/A"}}
		fx.orderRepo.EXPECT().
			UpdateStatus(mock.Anything, "ORDER00001", entity.OrderStatus{Value: entity.OrderStatusApproved, RejectionReason: "N/A"}).
			Return(updated, nil)
		fx.publisher.EXPECT().
			PublishOrderEvent(mock.Anything, mock.MatchedBy(func(e *entity.OrderEvent) bool {
				return e.Type == entity.OrderEventStatusUpdated && e.Order == updated
			})).
			Return(nil)

		order, err := fx.service.SetOrderStatus(context.Background(), &usecase.SetOrderStatusInput{
			OrderID:         "ORDER00001",
			Status:          entity.OrderStatusApproved,
			RejectionReason: "ignored",
		})

		require.NoError(t, err)
		assert.Equal(t, "N/A", order.Status.RejectionReason)
	})

	t.Run("reject requires a reason", func(t *testing.T) {
		fx := createTestOrderService(t)

		_, err := fx.service.SetOrderStatus(context.Background(), &usecase.SetOrderStatusInput{
			OrderID: "ORDER00001",
			Status:  entity.OrderStatusRejected,
		})

		requireValidationField(t, err, "rejectionReason")
	})

	t.Run("unknown status", func(t *testing.T) {
		fx := createTestOrderService(t)

		_, err := fx.service.SetOrderStatus(context.Background(), &usecase.SetOrderStatusInput{
			OrderID: "ORDER00001",
			Status:  "Shipped",
		})

		requireValidationField(t, err, "status")
	})

	t.Run("missing order", func(t *testing.T) {
		fx := createTestOrderService(t)
		fx.orderRepo.EXPECT().
			UpdateStatus(mock.Anything, "MISSING000", mock.Anything).
			Return(nil, repository.ErrOrderNotFound)

		_, err := fx.service.SetOrderStatus(context.Background(), &usecase.SetOrderStatusInput{
			OrderID:         "MISSING000",
			Status:          entity.OrderStatusRejected,
			RejectionReason: "wrong txn id",
		})

		assert.True(t, errors.Is(err, domainerrors.ErrOrderNotFound))
	})
}

func TestOrderService_GetOrder_Ownership(t *testing.T) {
	owner := uuid.New()
	order := &entity.Order{OrderID: "ORDER00001", UserID: owner}

	tests := []struct {
		name      string
		requester usecase.Requester
		wantErr   error
	}{
		{name: "owner", requester: usecase.Requester{UserID: owner, Role: entity.RoleUser}},
		{name: "admin", requester: usecase.Requester{UserID: uuid.New(), Role: entity.RoleAdmin}},
		{name: "stranger", requester: usecase.Requester{UserID: uuid.New(), Role: entity.RoleUser}, wantErr: domainerrors.ErrOrderNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestOrderService(t)
			fx.orderRepo.EXPECT().FindByOrderID(mock.Anything, "ORDER00001").Return(order, nil)

			got, err := fx.service.GetOrder(context.Background(), "ORDER00001", tt.requester)

			if tt.wantErr != nil {
				assert.True(t, errors.Is(err, tt.wantErr))
				assert.Nil(t, got)

				return
			}
			require.NoError(t, err)
			assert.Same(t, order, got)
		})
	}
}

func TestOrderService_ListOrdersByUser(t *testing.T) {
	userID := uuid.New()

	t.Run("own orders", func(t *testing.T) {
		fx := createTestOrderService(t)
		orders := []*entity.Order{{OrderID: "ORDER00001", UserID: userID}}
		fx.orderRepo.EXPECT().
			List(mock.Anything, repository.OrderFilter{UserID: &userID}, repository.Page{Limit: 50}).
			Return(orders, int64(1), nil)

		out, err := fx.service.ListOrdersByUser(context.Background(), userID, usecase.Requester{UserID: userID, Role: entity.RoleUser}, repository.Page{})

		require.NoError(t, err)
		assert.Equal(t, int64(1), out.Total)
		assert.Equal(t, orders, out.Orders)
	})

	t.Run("someone else's orders", func(t *testing.T) {
		fx := createTestOrderService(t)

		_, err := fx.service.ListOrdersByUser(context.Background(), userID, usecase.Requester{UserID: uuid.New(), Role: entity.RoleUser}, repository.Page{})

		assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
	})

	t.Run("admin may list anyone", func(t *testing.T) {
		fx := createTestOrderService(t)
		fx.orderRepo.EXPECT().List(mock.Anything, mock.Anything, mock.Anything).Return(nil, int64(0), nil)

		_, err := fx.service.ListOrdersByUser(context.Background(), userID, usecase.Requester{UserID: uuid.New(), Role: entity.RoleAdmin}, repository.Page{})

		require.NoError(t, err)
	})
}

func TestOrderService_ListOrders_RejectsUnknownStatus(t *testing.T) {
	fx := createTestOrderService(t)

	_, err := fx.service.ListOrders(context.Background(), repository.OrderFilter{Status: "Lost"}, repository.Page{})

	requireValidationField(t, err, "status")
}
