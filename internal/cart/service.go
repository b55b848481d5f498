package cart

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/modastore/modastore-backend/pkg/db/models"
	pkgerrors "github.com/modastore/modastore-backend/pkg/errors"
)

type txRunner interface {
	WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}

type productLoader interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.Product, error)
}

// Service exposes cart operations for a single authenticated user.
type Service interface {
	Add(ctx context.Context, userID uuid.UUID, input AddItemInput) (*CartItemDTO, error)
	Remove(ctx context.Context, userID, itemID uuid.UUID) error
	List(ctx context.Context, userID uuid.UUID) (*CartDTO, error)
	Total(ctx context.Context, userID uuid.UUID) (decimal.Decimal, error)
}

type service struct {
	repo     *Repository
	products productLoader
	tx       txRunner
}

// NewService builds a cart service backed by the provided stack.
func NewService(repo *Repository, products productLoader, tx txRunner) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("cart repository required")
	}
	if products == nil {
		return nil, fmt.Errorf("product loader required")
	}
	if tx == nil {
		return nil, fmt.Errorf("transaction runner required")
	}
	return &service{repo: repo, products: products, tx: tx}, nil
}

// Add validates the request against live stock and merges it into the cart
// via an atomic upsert. Stock itself is not mutated here.
func (s *service) Add(ctx context.Context, userID uuid.UUID, input AddItemInput) (*CartItemDTO, error) {
	if userID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "user id is required")
	}
	if input.Quantity <= 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "quantity must be positive")
	}

	product, err := s.products.FindByID(ctx, input.ProductID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load product")
	}

	if input.Quantity > product.Stock {
		return nil, pkgerrors.New(pkgerrors.CodeConflict, "insufficient stock")
	}

	var saved *models.CartItem
	if err := s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		txRepo := s.repo.WithTx(tx)
		line := &models.CartItem{
			UserID:    userID,
			ProductID: product.ID,
			Size:      input.Size,
			Color:     input.Color,
			Quantity:  input.Quantity,
		}
		if err := txRepo.UpsertLine(ctx, line); err != nil {
			return err
		}
		saved, err = txRepo.FindLine(ctx, userID, product.ID, input.Size, input.Color)
		return err
	}); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "persist cart line")
	}

	dto := NewCartItemDTO(saved)
	return &dto, nil
}

// Remove deletes the line if it belongs to the user. Removing a missing or
// foreign line is a silent no-op.
func (s *service) Remove(ctx context.Context, userID, itemID uuid.UUID) error {
	if userID == uuid.Nil {
		return pkgerrors.New(pkgerrors.CodeValidation, "user id is required")
	}
	if err := s.repo.DeleteByIDAndUser(ctx, itemID, userID); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "remove cart line")
	}
	return nil
}

// List returns the user's lines in insertion order plus the live total.
func (s *service) List(ctx context.Context, userID uuid.UUID) (*CartDTO, error) {
	if userID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "user id is required")
	}
	rows, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list cart lines")
	}

	result := &CartDTO{Items: make([]CartItemDTO, 0, len(rows)), Total: decimal.Zero}
	for i := range rows {
		dto := NewCartItemDTO(&rows[i])
		result.Items = append(result.Items, dto)
		result.Total = result.Total.Add(dto.LineTotal)
	}
	return result, nil
}

// Total quotes the cart against current product prices.
func (s *service) Total(ctx context.Context, userID uuid.UUID) (decimal.Decimal, error) {
	cart, err := s.List(ctx, userID)
	if err != nil {
		return decimal.Zero, err
	}
	return cart.Total, nil
}
