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

// productRepository implements repository.ProductRepository.
type productRepository struct {
	store
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(db *gorm.DB, cfg *config.Config) repository.ProductRepository {
	return &productRepository{store: newStore(db, cfg)}
}

func (repo *productRepository) Create(ctx context.Context, product *entity.Product) error {
	db, cancel := repo.conn(ctx)
	defer cancel()

	if product.ID == uuid.Nil {
		product.ID = uuid.New()
	}

	productM := fromProductDomain(product)
	if err := db.Create(productM).Error; err != nil {
		return translateError(err, nil, "failed to create product")
	}

	product.CreatedAt = productM.CreatedAt
	product.UpdatedAt = productM.UpdatedAt

	return nil
}

func (repo *productRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	db, cancel := repo.conn(ctx)
	defer cancel()

	var productM model.ProductModel
	if err := db.Where("id = ?", id).First(&productM).Error; err != nil {
		return nil, translateError(err, repository.ErrProductNotFound, "failed to find product")
	}

	return toProductDomain(&productM), nil
}

func (repo *productRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*entity.Product, error) {
	products := make(map[uuid.UUID]*entity.Product, len(ids))
	if len(ids) == 0 {
		return products, nil
	}

	db, cancel := repo.conn(ctx)
	defer cancel()

	var productMs []model.ProductModel
	if err := db.Where("id IN ?", ids).Find(&productMs).Error; err != nil {
		return nil, translateError(err, nil, "failed to load products")
	}

	for i := range productMs {
		products[productMs[i].ID] = toProductDomain(&productMs[i])
	}

	return products, nil
}

func (repo *productRepository) ExistsByTitle(ctx context.Context, title string) (bool, error) {
	db, cancel := repo.conn(ctx)
	defer cancel()

	var count int64
	if err := db.Model(&model.ProductModel{}).Where("title = ?", title).Limit(1).Count(&count).Error; err != nil {
		return false, translateError(err, nil, "failed to check product title")
	}

	return count > 0, nil
}

// List orders by display order, then newest first.
func (repo *productRepository) List(ctx context.Context, filter repository.ProductFilter, page repository.Page) ([]*entity.Product, int64, error) {
	db, cancel := repo.conn(ctx)
	defer cancel()

	page = page.Normalize()

	scope := func(tx *gorm.DB) *gorm.DB {
		if filter.Category != "" {
			tx = tx.Where("category = ?", filter.Category)
		}
		if filter.CountryCode != "" {
			tx = tx.Where("country_code = ?", filter.CountryCode)
		}

		return tx
	}

	var total int64
	if err := db.Model(&model.ProductModel{}).Scopes(scope).Count(&total).Error; err != nil {
		return nil, 0, translateError(err, nil, "failed to count products")
	}

	var productMs []model.ProductModel
	if err := db.Scopes(scope).Order("display_order ASC").Order("created_at DESC").
		Limit(page.Limit).Offset(page.Offset).Find(&productMs).Error; err != nil {
		return nil, 0, translateError(err, nil, "failed to list products")
	}

	products := make([]*entity.Product, 0, len(productMs))
	for i := range productMs {
		products = append(products, toProductDomain(&productMs[i]))
	}

	return products, total, nil
}

func (repo *productRepository) Update(ctx context.Context, product *entity.Product) error {
	db, cancel := repo.conn(ctx)
	defer cancel()

	productM := fromProductDomain(product)
	result := db.Model(productM).Select("*").Omit("id", "created_at").Updates(productM)
	if result.Error != nil {
		return translateError(result.Error, nil, "failed to update product")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	product.UpdatedAt = productM.UpdatedAt

	return nil
}

func (repo *productRepository) Delete(ctx context.Context, id uuid.UUID) error {
	db, cancel := repo.conn(ctx)
	defer cancel()

	result := db.Delete(&model.ProductModel{}, "id = ?", id)
	if result.Error != nil {
		return translateError(result.Error, nil, "failed to delete product")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

// reviewRepository implements repository.ReviewRepository.
type reviewRepository struct {
	store
}

// NewReviewRepository is the constructor for reviewRepository.
func NewReviewRepository(db *gorm.DB, cfg *config.Config) repository.ReviewRepository {
	return &reviewRepository{store: newStore(db, cfg)}
}

func (repo *reviewRepository) Create(ctx context.Context, review *entity.Review) error {
	db, cancel := repo.conn(ctx)
	defer cancel()

	if review.ID == uuid.Nil {
		review.ID = uuid.New()
	}

	reviewM := &model.ReviewModel{
		ID:        review.ID,
		ProductID: review.ProductID,
		UserID:    review.UserID,
		Author:    review.Author,
		Content:   review.Content,
		Rating:    review.Rating,
	}
	if err := db.Create(reviewM).Error; err != nil {
		return translateError(err, nil, "failed to create review")
	}

	review.CreatedAt = reviewM.CreatedAt

	return nil
}

// ListByProduct returns the newest reviews first; a nil productID lists every product.
func (repo *reviewRepository) ListByProduct(ctx context.Context, productID *uuid.UUID, page repository.Page) ([]*entity.Review, error) {
	db, cancel := repo.conn(ctx)
	defer cancel()

	page = page.Normalize()

	query := db.Model(&model.ReviewModel{})
	if productID != nil {
		query = query.Where("product_id = ?", *productID)
	}

	var reviewMs []model.ReviewModel
	if err := query.Order("created_at DESC").Limit(page.Limit).Offset(page.Offset).Find(&reviewMs).Error; err != nil {
		return nil, translateError(err, nil, "failed to list reviews")
	}

	reviews := make([]*entity.Review, 0, len(reviewMs))
	for _, r := range reviewMs {
		reviews = append(reviews, &entity.Review{
			ID:        r.ID,
			ProductID: r.ProductID,
			UserID:    r.UserID,
			Author:    r.Author,
			Content:   r.Content,
			Rating:    r.Rating,
			CreatedAt: r.CreatedAt,
		})
	}

	return reviews, nil
}

// redeemCodeRepository implements repository.RedeemCodeRepository.
type redeemCodeRepository struct {
	store
}

const redeemCodeBatchSize = 100

// NewRedeemCodeRepository is the constructor for redeemCodeRepository.
func NewRedeemCodeRepository(db *gorm.DB, cfg *config.Config) repository.RedeemCodeRepository {
	return &redeemCodeRepository{store: newStore(db, cfg)}
}

func (repo *redeemCodeRepository) CreateBatch(ctx context.Context, codes []*entity.RedeemCode) error {
	if len(codes) == 0 {
		return nil
	}

	db, cancel := repo.conn(ctx)
	defer cancel()

	codeMs := make([]*model.RedeemCodeModel, 0, len(codes))
	for _, code := range codes {
		if code.ID == uuid.Nil {
			code.ID = uuid.New()
		}
		codeMs = append(codeMs, fromRedeemCodeDomain(code))
	}

	if err := db.CreateInBatches(codeMs, redeemCodeBatchSize).Error; err != nil {
		return translateError(err, nil, "failed to create redeem codes")
	}

	for i, codeM := range codeMs {
		codes[i].CreatedAt = codeM.CreatedAt
		codes[i].UpdatedAt = codeM.UpdatedAt
	}

	return nil
}

func (repo *redeemCodeRepository) List(ctx context.Context, productID *uuid.UUID, onlyUnused bool, page repository.Page) ([]*entity.RedeemCode, error) {
	db, cancel := repo.conn(ctx)
	defer cancel()

	page = page.Normalize()

	query := db.Model(&model.RedeemCodeModel{})
	if productID != nil {
		query = query.Where("product_id = ?", *productID)
	}
	if onlyUnused {
		query = query.Where("is_used = ?", false)
	}

	var codeMs []model.RedeemCodeModel
	if err := query.Order("created_at DESC").Limit(page.Limit).Offset(page.Offset).Find(&codeMs).Error; err != nil {
		return nil, translateError(err, nil, "failed to list redeem codes")
	}

	codes := make([]*entity.RedeemCode, 0, len(codeMs))
	for i := range codeMs {
		codes = append(codes, toRedeemCodeDomain(&codeMs[i]))
	}

	return codes, nil
}

// Assign flips an unused code to used in a single conditional update so two
// concurrent assignments cannot both win.
func (repo *redeemCodeRepository) Assign(ctx context.Context, code string, userID uuid.UUID) (*entity.RedeemCode, error) {
	db, cancel := repo.conn(ctx)
	defer cancel()

	var codeM model.RedeemCodeModel
	result := db.Model(&codeM).
		Clauses(clause.Returning{}).
		Where("code = ? AND is_used = ?", code, false).
		Updates(map[string]any{"is_used": true, "user_id": userID})
	if result.Error != nil {
		return nil, translateError(result.Error, nil, "failed to assign redeem code")
	}

	if result.RowsAffected == 0 {
		var count int64
		if err := db.Model(&model.RedeemCodeModel{}).Where("code = ?", code).Count(&count).Error; err != nil {
			return nil, translateError(err, nil, "failed to look up redeem code")
		}
		if count == 0 {
			return nil, repository.ErrRedeemCodeNotFound
		}

		return nil, repository.ErrRedeemCodeUsed
	}

	return toRedeemCodeDomain(&codeM), nil
}

// --- Mapper Functions ---

func toProductDomain(data *model.ProductModel) *entity.Product {
	subProducts := make([]entity.SubProduct, 0, len(data.SubProducts))
	for _, sub := range data.SubProducts {
		subProducts = append(subProducts, entity.SubProduct{
			ID:            sub.ID,
			Name:          sub.Name,
			Price:         sub.Price,
			OriginalPrice: sub.OriginalPrice,
			StockQuantity: sub.StockQuantity,
			InStock:       sub.InStock,
		})
	}

	return &entity.Product{
		ID:              data.ID,
		Title:           data.Title,
		Description:     data.Description,
		Guide:           data.Guide,
		GuideEnabled:    data.GuideEnabled,
		ImageURL:        data.ImageURL,
		Region:          data.Region,
		InstantDelivery: data.InstantDelivery,
		ImportantNote:   data.ImportantNote,
		Category:        data.Category,
		Popularity:      entity.ProductPopularity(data.Popularity),
		CountryCode:     data.CountryCode,
		DisplayOrder:    data.DisplayOrder,
		IsIDBased:       data.IsIDBased,
		Price:           data.Price,
		InStock:         data.InStock,
		SubProducts:     subProducts,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}

func fromProductDomain(data *entity.Product) *model.ProductModel {
	subProducts := make([]model.SubProductRecord, 0, len(data.SubProducts))
	for _, sub := range data.SubProducts {
		subProducts = append(subProducts, model.SubProductRecord{
			ID:            sub.ID,
			Name:          sub.Name,
			Price:         sub.Price,
			OriginalPrice: sub.OriginalPrice,
			StockQuantity: sub.StockQuantity,
			InStock:       sub.InStock,
		})
	}

	return &model.ProductModel{
		ID:              data.ID,
		Title:           data.Title,
		Description:     data.Description,
		Guide:           data.Guide,
		GuideEnabled:    data.GuideEnabled,
		ImageURL:        data.ImageURL,
		Region:          data.Region,
		InstantDelivery: data.InstantDelivery,
		ImportantNote:   data.ImportantNote,
		Category:        data.Category,
		Popularity:      string(data.Popularity),
		CountryCode:     data.CountryCode,
		DisplayOrder:    data.DisplayOrder,
		IsIDBased:       data.IsIDBased,
		Price:           data.Price,
		InStock:         data.InStock,
		SubProducts:     subProducts,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}

func toRedeemCodeDomain(data *model.RedeemCodeModel) *entity.RedeemCode {
	return &entity.RedeemCode{
		ID:        data.ID,
		Code:      data.Code,
		ProductID: data.ProductID,
		IsUsed:    data.IsUsed,
		UserID:    data.UserID,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func fromRedeemCodeDomain(data *entity.RedeemCode) *model.RedeemCodeModel {
	return &model.RedeemCodeModel{
		ID:        data.ID,
		Code:      data.Code,
		ProductID: data.ProductID,
		IsUsed:    data.IsUsed,
		UserID:    data.UserID,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
