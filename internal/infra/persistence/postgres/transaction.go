// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"fmt"
	"time"

	"storefront/config"
	"storefront/internal/domain/repository"

	"gorm.io/gorm"
)

const defaultStorageTimeout = 5 * time.Second

// store binds a repository to a connection, either the pool or an open
// transaction, and bounds every call by the storage timeout.
type store struct {
	db      *gorm.DB
	timeout time.Duration
}

func newStore(db *gorm.DB, cfg *config.Config) store {
	timeout := defaultStorageTimeout
	if cfg != nil && cfg.Timeouts != nil && cfg.Timeouts.Storage > 0 {
		timeout = cfg.Timeouts.Storage
	}

	return store{db: db, timeout: timeout}
}

// conn returns a session carrying a deadline derived from ctx.
func (s store) conn(ctx context.Context) (*gorm.DB, context.CancelFunc) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)

	return s.db.WithContext(ctx), cancel
}

// gormTransactionManager implements the domain's TransactionManager interface using GORM.
type gormTransactionManager struct {
	store store
}

// gormRepositoryFactory hands out repositories bound to a single transaction.
type gormRepositoryFactory struct {
	tx store
}

func (f *gormRepositoryFactory) UserRepo() repository.UserRepository {
	return &userRepository{store: f.tx}
}

func (f *gormRepositoryFactory) OrderRepo() repository.OrderRepository {
	return &orderRepository{store: f.tx}
}

func (f *gormRepositoryFactory) ProductRepo() repository.ProductRepository {
	return &productRepository{store: f.tx}
}

func (f *gormRepositoryFactory) RedeemCodeRepo() repository.RedeemCodeRepository {
	return &redeemCodeRepository{store: f.tx}
}

// NewTransactionManager is the constructor for gormTransactionManager.
func NewTransactionManager(db *gorm.DB, cfg *config.Config) repository.TransactionManager {
	return &gormTransactionManager{store: newStore(db, cfg)}
}

// Execute runs the given function within a single database transaction.
func (tm *gormTransactionManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	tx := tm.store.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return translateError(tx.Error, nil, "failed to begin transaction")
	}

	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
	}()

	factory := &gormRepositoryFactory{tx: store{db: tx, timeout: tm.store.timeout}}

	if err := fn(factory); err != nil {
		if rbErr := tx.Rollback().Error; rbErr != nil {
			return fmt.Errorf("transaction rollback failed: %v (original error: %w)", rbErr, err)
		}

		return err
	}

	if err := tx.Commit().Error; err != nil {
		return translateError(err, nil, "failed to commit transaction")
	}

	return nil
}
