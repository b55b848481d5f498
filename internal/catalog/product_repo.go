package catalog

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/modastore/modastore-backend/pkg/db/models"
	"github.com/modastore/modastore-backend/pkg/pagination"
)

// ProductRepository manages product persistence.
type ProductRepository struct {
	db *gorm.DB
}

// NewProductRepository binds the repository to the provided DB handle.
func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

// WithTx scopes the repository to the provided transaction.
func (r *ProductRepository) WithTx(tx *gorm.DB) *ProductRepository {
	if tx == nil {
		return r
	}
	return &ProductRepository{db: tx}
}

// Create inserts a new product row.
func (r *ProductRepository) Create(ctx context.Context, product *models.Product) (*models.Product, error) {
	if err := r.db.WithContext(ctx).Create(product).Error; err != nil {
		return nil, err
	}
	return product, nil
}

// Update saves the provided product.
func (r *ProductRepository) Update(ctx context.Context, product *models.Product) (*models.Product, error) {
	if err := r.db.WithContext(ctx).Save(product).Error; err != nil {
		return nil, err
	}
	return product, nil
}

// Delete removes the product row.
func (r *ProductRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&models.Product{}, "id = ?", id).Error
}

// FindByID loads the product with its category association.
func (r *ProductRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	var product models.Product
	if err := r.db.WithContext(ctx).
		Preload("Category").
		First(&product, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

// List returns a cursor page of products, newest first, with optional
// category filter and name/sku substring search.
func (r *ProductRepository) List(ctx context.Context, input ListProductsInput) ([]models.Product, error) {
	query := r.db.WithContext(ctx).
		Model(&models.Product{}).
		Preload("Category")

	if input.CategoryID != nil {
		query = query.Where("category_id = ?", *input.CategoryID)
	}
	if term := strings.TrimSpace(input.Query); term != "" {
		like := "%" + strings.ToLower(term) + "%"
		query = query.Where("LOWER(name) LIKE ? OR LOWER(sku) LIKE ?", like, like)
	}

	cursor, err := pagination.ParseCursor(input.Pagination.Cursor)
	if err != nil {
		return nil, err
	}
	if cursor != nil {
		query = query.Where(
			"created_at < ? OR (created_at = ? AND id < ?)",
			cursor.CreatedAt, cursor.CreatedAt, cursor.ID,
		)
	}

	var rows []models.Product
	if err := query.
		Order("created_at DESC").
		Order("id DESC").
		Limit(pagination.LimitWithBuffer(input.Pagination.Limit)).
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// Search returns compact rows for products whose name or sku contains the term.
func (r *ProductRepository) Search(ctx context.Context, term string) ([]ProductSearchRow, error) {
	like := "%" + strings.ToLower(strings.TrimSpace(term)) + "%"
	var rows []ProductSearchRow
	if err := r.db.WithContext(ctx).
		Model(&models.Product{}).
		Select("id", "name", "sku", "stock", "price").
		Where("LOWER(name) LIKE ? OR LOWER(sku) LIKE ?", like, like).
		Order("name ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
