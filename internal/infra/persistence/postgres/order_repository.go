package postgres

import (
	"context"

	"storefront/config"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// orderRepository implements repository.OrderRepository. Rows are never deleted.
type orderRepository struct {
	store
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB, cfg *config.Config) repository.OrderRepository {
	return &orderRepository{store: newStore(db, cfg)}
}

func (repo *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	db, cancel := repo.conn(ctx)
	defer cancel()

	if order.ID == uuid.Nil {
		order.ID = uuid.New()
	}

	orderM := fromOrderDomain(order)
	if err := db.Create(orderM).Error; err != nil {
		return translateError(err, nil, "failed to create order")
	}

	order.CreatedAt = orderM.CreatedAt
	order.UpdatedAt = orderM.UpdatedAt

	return nil
}

func (repo *orderRepository) FindByOrderID(ctx context.Context, orderID string) (*entity.Order, error) {
	db, cancel := repo.conn(ctx)
	defer cancel()

	var orderM model.OrderModel
	if err := db.Where("order_id = ?", orderID).First(&orderM).Error; err != nil {
		return nil, translateError(err, repository.ErrOrderNotFound, "failed to find order")
	}

	return toOrderDomain(&orderM), nil
}

func (repo *orderRepository) FindByIdempotencyKey(ctx context.Context, userID uuid.UUID, key string) (*entity.Order, error) {
	db, cancel := repo.conn(ctx)
	defer cancel()

	var orderM model.OrderModel
	if err := db.Where("user_id = ? AND idempotency_key = ?", userID, key).First(&orderM).Error; err != nil {
		return nil, translateError(err, repository.ErrOrderNotFound, "failed to find order by idempotency key")
	}

	return toOrderDomain(&orderM), nil
}

// List returns the newest orders first.
func (repo *orderRepository) List(ctx context.Context, filter repository.OrderFilter, page repository.Page) ([]*entity.Order, int64, error) {
	db, cancel := repo.conn(ctx)
	defer cancel()

	page = page.Normalize()

	scope := func(tx *gorm.DB) *gorm.DB {
		if filter.Status != "" {
			tx = tx.Where("status = ?", filter.Status.String())
		}
		if filter.UserID != nil {
			tx = tx.Where("user_id = ?", *filter.UserID)
		}

		return tx
	}

	var total int64
	if err := db.Model(&model.OrderModel{}).Scopes(scope).Count(&total).Error; err != nil {
		return nil, 0, translateError(err, nil, "failed to count orders")
	}

	var orderMs []model.OrderModel
	if err := db.Scopes(scope).Order("created_at DESC").Limit(page.Limit).Offset(page.Offset).Find(&orderMs).Error; err != nil {
		return nil, 0, translateError(err, nil, "failed to list orders")
	}

	orders := make([]*entity.Order, 0, len(orderMs))
	for i := range orderMs {
		orders = append(orders, toOrderDomain(&orderMs[i]))
	}

	return orders, total, nil
}

func (repo *orderRepository) UpdateStatus(ctx context.Context, orderID string, status entity.OrderStatus) (*entity.Order, error) {
	db, cancel := repo.conn(ctx)
	defer cancel()

	var orderM model.OrderModel
	result := db.Model(&orderM).
		Clauses(clause.Returning{}).
		Where("order_id = ?", orderID).
		Updates(map[string]any{
			"status":           status.Value.String(),
			"rejection_reason": status.RejectionReason,
		})
	if result.Error != nil {
		return nil, translateError(result.Error, nil, "failed to update order status")
	}
	if result.RowsAffected == 0 {
		return nil, repository.ErrOrderNotFound
	}

	return toOrderDomain(&orderM), nil
}

// --- Mapper Functions ---

func toOrderDomain(data *model.OrderModel) *entity.Order {
	if data == nil {
		return nil
	}

	payment, _ := entity.RestorePayment(entity.PaymentMethod(data.PaymentMethod), entity.PaymentFields{
		BkashNumber: data.BkashNumber,
		BkashTxnID:  data.BkashTxnID,
		NagadNumber: data.NagadNumber,
		UpayNumber:  data.UpayNumber,
	})

	items := make([]entity.OrderItem, 0, len(data.Items))
	for _, item := range data.Items {
		items = append(items, entity.OrderItem{
			ProductID:    item.ProductID,
			SubProductID: item.SubProductID,
			Name:         item.Name,
			Quantity:     item.Quantity,
			UnitPrice:    item.UnitPrice,
		})
	}

	return &entity.Order{
		ID:      data.ID,
		OrderID: data.OrderID,
		UserID:  data.UserID,
		Billing: entity.Billing{
			Name:  data.BillingName,
			Phone: data.BillingPhone,
			Email: data.BillingEmail,
		},
		Payment:     payment,
		Items:       items,
		TotalAmount: data.TotalAmount,
		Status: entity.OrderStatus{
			Value:           entity.OrderStatusValue(data.Status),
			RejectionReason: data.RejectionReason,
		},
		IdempotencyKey: deref(data.IdempotencyKey),
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}

func fromOrderDomain(data *entity.Order) *model.OrderModel {
	if data == nil {
		return nil
	}

	items := make([]model.OrderItemRecord, 0, len(data.Items))
	for _, item := range data.Items {
		items = append(items, model.OrderItemRecord{
			ProductID:    item.ProductID,
			SubProductID: item.SubProductID,
			Name:         item.Name,
			Quantity:     item.Quantity,
			UnitPrice:    item.UnitPrice,
		})
	}

	orderM := &model.OrderModel{
		ID:              data.ID,
		OrderID:         data.OrderID,
		UserID:          data.UserID,
		IdempotencyKey:  nullable(data.IdempotencyKey),
		BillingName:     data.Billing.Name,
		BillingPhone:    data.Billing.Phone,
		BillingEmail:    data.Billing.Email,
		Items:           items,
		TotalAmount:     data.TotalAmount,
		Status:          data.Status.Value.String(),
		RejectionReason: data.Status.RejectionReason,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}

	if data.Payment != nil {
		fields := data.Payment.Fields()
		orderM.PaymentMethod = data.Payment.Method().String()
		orderM.BkashNumber = fields.BkashNumber
		orderM.BkashTxnID = fields.BkashTxnID
		orderM.NagadNumber = fields.NagadNumber
		orderM.UpayNumber = fields.UpayNumber
	}

	return orderM
}
