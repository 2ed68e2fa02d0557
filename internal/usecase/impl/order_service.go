package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

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
	defaultMaxCodeAttempts   = 5
	defaultIdempotencyWindow = 10 * time.Minute
	// maxIdempotencyKeyLength matches the orders.idempotency_key column.
	maxIdempotencyKeyLength = 128
)

// orderService implements the OrderUsecase interface.
type orderService struct {
	orderRepo       repository.OrderRepository
	productRepo     repository.ProductRepository
	publisher       service.EventPublisher
	idGenerator     service.OrderIDGenerator
	idempotency     service.IdempotencyStore
	maxCodeAttempts int
	window          time.Duration
	now             func() time.Time
	logger          *slog.Logger
}

// OrderServiceParams holds dependencies for OrderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	OrderRepo   repository.OrderRepository
	ProductRepo repository.ProductRepository
	Publisher   service.EventPublisher
	IDGenerator service.OrderIDGenerator
	Idempotency service.IdempotencyStore
	Config      *config.Config
	Logger      *slog.Logger
}

// NewOrderService is the constructor for orderService.
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	maxCodeAttempts := defaultMaxCodeAttempts
	window := defaultIdempotencyWindow
	if params.Config != nil && params.Config.Order != nil {
		if params.Config.Order.MaxCodeAttempts > 0 {
			maxCodeAttempts = params.Config.Order.MaxCodeAttempts
		}
		if params.Config.Order.IdempotencyWindow > 0 {
			window = params.Config.Order.IdempotencyWindow
		}
	}

	return &orderService{
		orderRepo:       params.OrderRepo,
		productRepo:     params.ProductRepo,
		publisher:       params.Publisher,
		idGenerator:     params.IDGenerator,
		idempotency:     params.Idempotency,
		maxCodeAttempts: maxCodeAttempts,
		window:          window,
		now:             time.Now,
		logger:          params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *orderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// PlaceOrder validates the checkout, prices it from the catalog and records it as Pending.
func (srv *orderService) PlaceOrder(ctx context.Context, input *usecase.PlaceOrderInput) (*entity.Order, error) {
	billing := entity.Billing{
		Name:  input.Billing.Name,
		Phone: input.Billing.Phone,
		Email: input.Billing.Email,
	}.Normalize()
	if err := billing.Validate(); err != nil {
		return nil, err
	}

	payment, err := entity.NewPayment(entity.PaymentMethod(input.Billing.PaymentMethod), entity.PaymentFields{
		BkashNumber: input.Billing.BkashNumber,
		BkashTxnID:  input.Billing.BkashTxnID,
		NagadNumber: input.Billing.NagadNumber,
		UpayNumber:  input.Billing.UpayNumber,
	})
	if err != nil {
		return nil, err
	}

	if err := validateCart(input.Cart); err != nil {
		return nil, err
	}

	key := strings.TrimSpace(input.IdempotencyKey)
	if utf8.RuneCountInString(key) > maxIdempotencyKeyLength {
		return nil, domainerrors.NewValidationError("idempotencyKey", "idempotency key must be at most 128 characters")
	}
	if key == "" {
		return srv.placeOrder(ctx, input.UserID, billing, payment, input.Cart, "")
	}

	reservation := input.UserID.String() + ":" + key
	existing, reserved, err := srv.reserve(ctx, input.UserID, key, reservation)
	if err != nil || existing != nil {
		return existing, err
	}

	order, err := srv.placeOrder(ctx, input.UserID, billing, payment, input.Cart, key)
	if !reserved {
		return order, err
	}

	if err != nil {
		if releaseErr := srv.idempotency.Release(context.WithoutCancel(ctx), reservation); releaseErr != nil {
			srv.log(ctx).Warn("Failed to release idempotency key", slog.Any("error", releaseErr))
		}

		return nil, err
	}

	if completeErr := srv.idempotency.Complete(ctx, reservation, order.OrderID, srv.window); completeErr != nil {
		srv.log(ctx).Warn("Failed to complete idempotency key", slog.String("order_id", order.OrderID), slog.Any("error", completeErr))
	}

	return order, nil
}

// reserve claims the idempotency key. It returns the earlier order when the
// key was already completed. A store outage is logged and the database unique
// index on (user_id, idempotency_key) remains the backstop.
func (srv *orderService) reserve(ctx context.Context, userID uuid.UUID, key, reservation string) (*entity.Order, bool, error) {
	if srv.idempotency == nil {
		return nil, false, nil
	}

	state, ref, err := srv.idempotency.Reserve(ctx, reservation, srv.window)
	if err != nil {
		srv.log(ctx).Warn("Idempotency store unavailable", slog.Any("error", err))

		return nil, false, nil
	}

	switch state {
	case service.ReservationCompleted:
		srv.log(ctx).Info("Replaying idempotent order", slog.String("order_id", ref))

		existing, err := srv.findReplay(ctx, userID, key, ref)
		if err != nil {
			return nil, false, err
		}

		return existing, false, nil
	case service.ReservationInFlight:
		return nil, false, domainerrors.NewDuplicateFieldError("idempotencyKey")
	default:
		return nil, true, nil
	}
}

func (srv *orderService) findReplay(ctx context.Context, userID uuid.UUID, key, orderID string) (*entity.Order, error) {
	var (
		order *entity.Order
		err   error
	)
	if orderID != "" {
		order, err = srv.orderRepo.FindByOrderID(ctx, orderID)
	} else {
		order, err = srv.orderRepo.FindByIdempotencyKey(ctx, userID, key)
	}
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrOrderNotFound
		}

		return nil, translateStorageError(err, "failed to load idempotent order")
	}

	return order, nil
}

func (srv *orderService) placeOrder(
	ctx context.Context,
	userID uuid.UUID,
	billing entity.Billing,
	payment entity.Payment,
	cart []usecase.CartItemInput,
	key string,
) (*entity.Order, error) {
	items, err := srv.priceCart(ctx, cart)
	if err != nil {
		return nil, err
	}

	order := &entity.Order{
		UserID:         userID,
		Billing:        billing,
		Payment:        payment,
		Items:          items,
		TotalAmount:    entity.ComputeTotal(items),
		Status:         entity.PendingStatus(),
		IdempotencyKey: key,
	}

	if err := srv.insertWithFreshCode(ctx, order); err != nil {
		if violation, ok := repository.AsUniqueViolation(err); ok && violation.Field == "idempotencyKey" {
			return srv.findReplay(ctx, userID, key, "")
		}

		return nil, err
	}

	srv.log(ctx).Info("Order placed",
		slog.String("order_id", order.OrderID),
		slog.String("user_id", userID.String()),
		slog.String("total", order.TotalAmount.StringFixed(2)),
	)

	srv.publish(ctx, entity.OrderEventCreated, order)

	return order, nil
}

// insertWithFreshCode generates order codes until one is accepted by the ledger.
func (srv *orderService) insertWithFreshCode(ctx context.Context, order *entity.Order) error {
	for attempt := 1; attempt <= srv.maxCodeAttempts; attempt++ {
		code, err := srv.idGenerator.Generate()
		if err != nil {
			return errors.Wrap(domainerrors.ErrInternalError, "failed to generate order id")
		}
		order.OrderID = code

		err = srv.orderRepo.Create(ctx, order)
		if err == nil {
			return nil
		}

		violation, ok := repository.AsUniqueViolation(err)
		if !ok {
			return translateStorageError(err, "failed to create order")
		}
		if violation.Field != "orderId" {
			return err
		}

		srv.log(ctx).Warn("Order id collision, regenerating", slog.String("order_id", code), slog.Int("attempt", attempt))
	}

	return errors.Wrapf(domainerrors.ErrInternalError, "no free order id after %d attempts", srv.maxCodeAttempts)
}

func validateCart(cart []usecase.CartItemInput) error {
	if len(cart) == 0 {
		return domainerrors.NewValidationError("products", "the cart is empty")
	}

	for _, line := range cart {
		if line.ProductID == uuid.Nil {
			return domainerrors.NewValidationError("products", "every cart line must reference a product")
		}
		if line.Quantity < 1 {
			return domainerrors.NewValidationError("quantity", "quantity must be at least 1")
		}
	}

	return nil
}

// priceCart snapshots each line from the catalog. Client prices are never trusted.
func (srv *orderService) priceCart(ctx context.Context, cart []usecase.CartItemInput) ([]entity.OrderItem, error) {
	ids := make([]uuid.UUID, 0, len(cart))
	for _, line := range cart {
		ids = append(ids, line.ProductID)
	}

	products, err := srv.productRepo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, translateStorageError(err, "failed to load catalog")
	}

	items := make([]entity.OrderItem, 0, len(cart))
	for _, line := range cart {
		product, ok := products[line.ProductID]
		if !ok {
			return nil, domainerrors.NewValidationError("products", "product "+line.ProductID.String()+" does not exist")
		}

		item, err := priceLine(product, line)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return items, nil
}

func priceLine(product *entity.Product, line usecase.CartItemInput) (entity.OrderItem, error) {
	item := entity.OrderItem{
		ProductID: product.ID,
		Name:      product.Title,
		Quantity:  line.Quantity,
		UnitPrice: product.Price,
	}

	if line.SubProductID == nil {
		if len(product.SubProducts) > 0 {
			return entity.OrderItem{}, domainerrors.NewValidationError("subProductId", "choose a package of "+product.Title)
		}
		if !product.InStock {
			return entity.OrderItem{}, domainerrors.NewValidationError("products", product.Title+" is out of stock")
		}

		return item, nil
	}

	sub, ok := product.FindSubProduct(*line.SubProductID)
	if !ok {
		return entity.OrderItem{}, domainerrors.NewValidationError("subProductId", "package does not belong to "+product.Title)
	}
	if !sub.InStock || (sub.StockQuantity != nil && *sub.StockQuantity < line.Quantity) {
		return entity.OrderItem{}, domainerrors.NewValidationError("products", product.Title+" - "+sub.Name+" is out of stock")
	}

	subID := sub.ID
	item.SubProductID = &subID
	item.Name = product.Title + " - " + sub.Name
	item.UnitPrice = sub.Price

	return item, nil
}

// SetOrderStatus moves an order between review states and notifies every subscriber.
func (srv *orderService) SetOrderStatus(ctx context.Context, input *usecase.SetOrderStatusInput) (*entity.Order, error) {
	status, err := entity.NewOrderStatus(input.Status, input.RejectionReason)
	if err != nil {
		return nil, err
	}

	order, err := srv.orderRepo.UpdateStatus(ctx, input.OrderID, status)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrOrderNotFound
		}

		return nil, translateStorageError(err, "failed to update order status")
	}

	srv.log(ctx).Info("Order status updated",
		slog.String("order_id", order.OrderID),
		slog.String("status", status.Value.String()),
	)

	srv.publish(ctx, entity.OrderEventStatusUpdated, order)

	return order, nil
}

// GetOrder returns an order to its owner or to an admin. Anyone else sees not found.
func (srv *orderService) GetOrder(ctx context.Context, orderID string, requester usecase.Requester) (*entity.Order, error) {
	order, err := srv.orderRepo.FindByOrderID(ctx, strings.TrimSpace(orderID))
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrOrderNotFound
		}

		return nil, translateStorageError(err, "failed to find order")
	}

	if !requester.IsAdmin() && order.UserID != requester.UserID {
		return nil, domainerrors.ErrOrderNotFound
	}

	return order, nil
}

// ListOrdersByUser lists the orders of userID. Users may only list their own.
func (srv *orderService) ListOrdersByUser(
	ctx context.Context,
	userID uuid.UUID,
	requester usecase.Requester,
	page repository.Page,
) (*usecase.OrderListOutput, error) {
	if !requester.IsAdmin() && userID != requester.UserID {
		srv.log(ctx).Warn("Rejected cross-user order listing",
			slog.String("requester_id", requester.UserID.String()),
			slog.String("user_id", userID.String()),
		)

		return nil, domainerrors.ErrForbidden
	}

	return srv.ListOrders(ctx, repository.OrderFilter{UserID: &userID}, page)
}

// ListOrders lists orders for the back-office, newest first.
func (srv *orderService) ListOrders(ctx context.Context, filter repository.OrderFilter, page repository.Page) (*usecase.OrderListOutput, error) {
	if filter.Status != "" && !filter.Status.IsValid() {
		return nil, domainerrors.NewValidationError("status", "status must be one of Pending, Approved, Rejected")
	}

	orders, total, err := srv.orderRepo.List(ctx, filter, page.Normalize())
	if err != nil {
		return nil, translateStorageError(err, "failed to list orders")
	}

	return &usecase.OrderListOutput{Orders: orders, Total: total}, nil
}

// publish hands the event to the fan-out. Failures never fail the request.
func (srv *orderService) publish(ctx context.Context, eventType entity.OrderEventType, order *entity.Order) {
	if srv.publisher == nil {
		return
	}

	event := &entity.OrderEvent{Type: eventType, Order: order, OccurredAt: srv.now()}
	if err := srv.publisher.PublishOrderEvent(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish order event",
			slog.String("event", string(eventType)),
			slog.String("order_id", order.OrderID),
			slog.Any("error", err),
		)
	}
}
