package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/modastore/modastore-backend/pkg/db"
	"github.com/modastore/modastore-backend/pkg/db/models"
	"github.com/modastore/modastore-backend/pkg/enums"
	pkgerrors "github.com/modastore/modastore-backend/pkg/errors"
	"github.com/modastore/modastore-backend/pkg/pagination"
)

// Service exposes catalog management operations.
type Service interface {
	CreateCategory(ctx context.Context, name string) (*CategoryDTO, error)
	UpdateCategory(ctx context.Context, id uuid.UUID, name string) (*CategoryDTO, error)
	DeleteCategory(ctx context.Context, id uuid.UUID) error
	ListCategories(ctx context.Context) ([]CategoryDTO, error)

	CreateProduct(ctx context.Context, input CreateProductInput) (*ProductDTO, error)
	UpdateProduct(ctx context.Context, id uuid.UUID, input UpdateProductInput) (*ProductDTO, error)
	DeleteProduct(ctx context.Context, id uuid.UUID) error
	GetProduct(ctx context.Context, id uuid.UUID) (*ProductDTO, error)
	ListProducts(ctx context.Context, input ListProductsInput) (*ProductListResult, error)
	SearchProducts(ctx context.Context, term string) ([]ProductSearchRow, error)
}

type txRunner interface {
	WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}

type service struct {
	categories *CategoryRepository
	products   *ProductRepository
	tx         txRunner
}

// NewService builds a catalog service backed by the provided stack.
func NewService(categories *CategoryRepository, products *ProductRepository, tx txRunner) (Service, error) {
	if categories == nil {
		return nil, fmt.Errorf("category repository required")
	}
	if products == nil {
		return nil, fmt.Errorf("product repository required")
	}
	if tx == nil {
		return nil, fmt.Errorf("transaction runner required")
	}
	return &service{categories: categories, products: products, tx: tx}, nil
}

// CreateCategory persists a new category with a unique name.
func (s *service) CreateCategory(ctx context.Context, name string) (*CategoryDTO, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "category name is required")
	}

	category, err := s.categories.Create(ctx, &models.Category{Name: name})
	if err != nil {
		if db.IsUniqueViolation(err, "idx_categories_name") {
			return nil, pkgerrors.New(pkgerrors.CodeConflict, "category name already exists")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create category")
	}
	dto := NewCategoryDTO(category)
	return &dto, nil
}

// UpdateCategory renames an existing category.
func (s *service) UpdateCategory(ctx context.Context, id uuid.UUID, name string) (*CategoryDTO, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "category name is required")
	}

	category, err := s.categories.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "category not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load category")
	}

	category.Name = name
	if _, err := s.categories.Update(ctx, category); err != nil {
		if db.IsUniqueViolation(err, "idx_categories_name") {
			return nil, pkgerrors.New(pkgerrors.CodeConflict, "category name already exists")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "update category")
	}
	dto := NewCategoryDTO(category)
	return &dto, nil
}

// DeleteCategory removes the category and detaches its products in one transaction.
func (s *service) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	if _, err := s.categories.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.New(pkgerrors.CodeNotFound, "category not found")
		}
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load category")
	}

	if err := s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		txRepo := s.categories.WithTx(tx)
		if err := txRepo.DetachProducts(ctx, id); err != nil {
			return err
		}
		return txRepo.Delete(ctx, id)
	}); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "delete category")
	}
	return nil
}

// ListCategories returns all categories.
func (s *service) ListCategories(ctx context.Context) ([]CategoryDTO, error) {
	rows, err := s.categories.List(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list categories")
	}
	dtos := make([]CategoryDTO, 0, len(rows))
	for i := range rows {
		dtos = append(dtos, NewCategoryDTO(&rows[i]))
	}
	return dtos, nil
}

// CreateProduct validates and persists a new product.
func (s *service) CreateProduct(ctx context.Context, input CreateProductInput) (*ProductDTO, error) {
	gender, err := resolveGender(input.Gender)
	if err != nil {
		return nil, err
	}
	colors, err := normalizeOptions("colors", input.Colors)
	if err != nil {
		return nil, err
	}
	sizes, err := normalizeOptions("sizes", input.Sizes)
	if err != nil {
		return nil, err
	}

	product := &models.Product{
		CategoryID:  input.CategoryID,
		Name:        strings.TrimSpace(input.Name),
		Description: strings.TrimSpace(input.Description),
		Price:       input.Price,
		Cost:        input.Cost,
		Stock:       input.Stock,
		Gender:      gender,
		Colors:      colors,
		Sizes:       sizes,
		SKU:         strings.TrimSpace(input.SKU),
	}
	if err := validateProduct(product); err != nil {
		return nil, err
	}
	if err := s.ensureCategoryExists(ctx, product.CategoryID); err != nil {
		return nil, err
	}

	created, err := s.products.Create(ctx, product)
	if err != nil {
		if db.IsUniqueViolation(err, "idx_products_sku") {
			return nil, pkgerrors.New(pkgerrors.CodeConflict, "sku already exists")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create product")
	}
	dto := NewProductDTO(created)
	return &dto, nil
}

// UpdateProduct applies a partial update with the same validations as create.
func (s *service) UpdateProduct(ctx context.Context, id uuid.UUID, input UpdateProductInput) (*ProductDTO, error) {
	product, err := s.products.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load product")
	}

	if err := applyProductUpdate(product, input); err != nil {
		return nil, err
	}
	if err := validateProduct(product); err != nil {
		return nil, err
	}
	if input.CategoryID != nil {
		if err := s.ensureCategoryExists(ctx, product.CategoryID); err != nil {
			return nil, err
		}
	}

	product.Category = nil
	if _, err := s.products.Update(ctx, product); err != nil {
		if db.IsUniqueViolation(err, "idx_products_sku") {
			return nil, pkgerrors.New(pkgerrors.CodeConflict, "sku already exists")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "update product")
	}

	saved, err := s.products.FindByID(ctx, id)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "reload product")
	}
	dto := NewProductDTO(saved)
	return &dto, nil
}

// DeleteProduct removes a product from the catalog.
func (s *service) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	if _, err := s.products.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
		}
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load product")
	}
	if err := s.products.Delete(ctx, id); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "delete product")
	}
	return nil
}

// GetProduct loads one product with its category.
func (s *service) GetProduct(ctx context.Context, id uuid.UUID) (*ProductDTO, error) {
	product, err := s.products.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load product")
	}
	dto := NewProductDTO(product)
	return &dto, nil
}

// ListProducts returns one catalog page plus the cursor for the next one.
func (s *service) ListProducts(ctx context.Context, input ListProductsInput) (*ProductListResult, error) {
	rows, err := s.products.List(ctx, input)
	if err != nil {
		if typed := pkgerrors.As(err); typed != nil {
			return nil, err
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list products")
	}

	limit := pagination.NormalizeLimit(input.Pagination.Limit)
	result := &ProductListResult{Products: make([]ProductDTO, 0, len(rows))}
	hasMore := len(rows) > limit
	if hasMore {
		rows = rows[:limit]
	}
	for i := range rows {
		result.Products = append(result.Products, NewProductDTO(&rows[i]))
	}
	if hasMore {
		last := rows[len(rows)-1]
		result.NextCursor = pagination.EncodeCursor(pagination.Cursor{
			CreatedAt: last.CreatedAt,
			ID:        last.ID,
		})
	}
	return result, nil
}

// SearchProducts returns compact rows matching the name/sku term.
func (s *service) SearchProducts(ctx context.Context, term string) ([]ProductSearchRow, error) {
	if strings.TrimSpace(term) == "" {
		return []ProductSearchRow{}, nil
	}
	rows, err := s.products.Search(ctx, term)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "search products")
	}
	return rows, nil
}

func (s *service) ensureCategoryExists(ctx context.Context, id *uuid.UUID) error {
	if id == nil {
		return nil
	}
	if _, err := s.categories.FindByID(ctx, *id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.New(pkgerrors.CodeValidation, "category does not exist")
		}
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load category")
	}
	return nil
}

func resolveGender(value string) (enums.Gender, error) {
	if strings.TrimSpace(value) == "" {
		return enums.GenderUnisex, nil
	}
	gender, err := enums.ParseGender(value)
	if err != nil {
		return "", pkgerrors.New(pkgerrors.CodeValidation, "invalid gender")
	}
	return gender, nil
}

func normalizeOptions(field string, values []string) (models.StringList, error) {
	cleaned := make(models.StringList, 0, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, field+" entries must be non-empty")
		}
		cleaned = append(cleaned, v)
	}
	return cleaned, nil
}

func validateProduct(product *models.Product) error {
	if product.Name == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "product name is required")
	}
	if product.SKU == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "sku is required")
	}
	if !product.Price.IsPositive() {
		return pkgerrors.New(pkgerrors.CodeValidation, "price must be positive")
	}
	if product.Cost.IsNegative() {
		return pkgerrors.New(pkgerrors.CodeValidation, "cost cannot be negative")
	}
	if product.Stock < 0 {
		return pkgerrors.New(pkgerrors.CodeValidation, "stock cannot be negative")
	}
	if !product.Gender.IsValid() {
		return pkgerrors.New(pkgerrors.CodeValidation, "invalid gender")
	}
	return nil
}

func applyProductUpdate(product *models.Product, input UpdateProductInput) error {
	if input.CategoryID != nil {
		if *input.CategoryID == uuid.Nil {
			product.CategoryID = nil
		} else {
			id := *input.CategoryID
			product.CategoryID = &id
		}
	}
	if input.Name != nil {
		product.Name = strings.TrimSpace(*input.Name)
	}
	if input.Description != nil {
		product.Description = strings.TrimSpace(*input.Description)
	}
	if input.Price != nil {
		product.Price = *input.Price
	}
	if input.Cost != nil {
		product.Cost = *input.Cost
	}
	if input.Stock != nil {
		product.Stock = *input.Stock
	}
	if input.Gender != nil {
		gender, err := resolveGender(*input.Gender)
		if err != nil {
			return err
		}
		product.Gender = gender
	}
	if input.Colors != nil {
		colors, err := normalizeOptions("colors", *input.Colors)
		if err != nil {
			return err
		}
		product.Colors = colors
	}
	if input.Sizes != nil {
		sizes, err := normalizeOptions("sizes", *input.Sizes)
		if err != nil {
			return err
		}
		product.Sizes = sizes
	}
	if input.SKU != nil {
		product.SKU = strings.TrimSpace(*input.SKU)
	}
	return nil
}
