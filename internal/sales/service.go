package sales

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/modastore/modastore-backend/internal/cart"
	"github.com/modastore/modastore-backend/pkg/db/models"
	pkgerrors "github.com/modastore/modastore-backend/pkg/errors"
)

type txRunner interface {
	WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}

// Service records immutable sales out of cart lines or explicit line lists.
type Service interface {
	Finalize(ctx context.Context, userID uuid.UUID, lines []SaleLine) (*SaleDTO, error)
	Checkout(ctx context.Context, userID uuid.UUID) (*SaleDTO, error)
	GetSale(ctx context.Context, userID, saleID uuid.UUID) (*SaleDTO, error)
	ListSales(ctx context.Context, userID uuid.UUID) ([]SaleDTO, error)
}

type service struct {
	repo *Repository
	tx   txRunner
}

// NewService builds a sales service backed by the provided stack.
func NewService(repo *Repository, tx txRunner) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("sales repository required")
	}
	if tx == nil {
		return nil, fmt.Errorf("transaction runner required")
	}
	return &service{repo: repo, tx: tx}, nil
}

// Finalize re-validates stock, decrements it, and persists the frozen sale in
// one transaction. Any failing line rolls the whole sale back.
func (s *service) Finalize(ctx context.Context, userID uuid.UUID, lines []SaleLine) (*SaleDTO, error) {
	if userID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "user id is required")
	}
	if len(lines) == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "sale must contain at least one item")
	}
	for _, line := range lines {
		if line.Quantity <= 0 {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "quantity must be positive")
		}
	}

	var saved *models.Sale
	if err := s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		txRepo := s.repo.WithTx(tx)

		total := decimal.Zero
		items := make([]models.SaleItem, 0, len(lines))
		var consumed []uuid.UUID

		for _, line := range lines {
			var product models.Product
			if err := tx.WithContext(ctx).First(&product, "id = ?", line.ProductID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
				}
				return err
			}

			// The WHERE stock >= qty guard is the serialization point: of two
			// concurrent finalizes for the last units, only one row update wins.
			ok, err := txRepo.DecrementStock(ctx, line.ProductID, line.Quantity)
			if err != nil {
				return err
			}
			if !ok {
				return pkgerrors.New(pkgerrors.CodeConflict, "insufficient stock").
					WithDetails(map[string]any{"product_id": line.ProductID, "requested": line.Quantity})
			}

			items = append(items, models.SaleItem{
				ProductID:   product.ID,
				Quantity:    line.Quantity,
				PriceAtSale: product.Price,
				CostAtSale:  product.Cost,
				Size:        line.Size,
				Color:       line.Color,
			})
			total = total.Add(product.Price.Mul(decimal.NewFromInt(int64(line.Quantity))))
			if line.CartItemID != nil {
				consumed = append(consumed, *line.CartItemID)
			}
		}

		sale := &models.Sale{
			UserID: userID,
			Total:  total,
			Items:  items,
		}
		created, err := txRepo.Create(ctx, sale)
		if err != nil {
			return err
		}

		if len(consumed) > 0 {
			if err := cart.NewRepository(tx).DeleteLines(ctx, userID, consumed); err != nil {
				return err
			}
		}

		saved = created
		return nil
	}); err != nil {
		if typed := pkgerrors.As(err); typed != nil {
			return nil, typed
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "finalize sale")
	}

	dto := NewSaleDTO(saved)
	return &dto, nil
}

// Checkout finalizes the user's whole cart.
func (s *service) Checkout(ctx context.Context, userID uuid.UUID) (*SaleDTO, error) {
	if userID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "user id is required")
	}

	rows, err := cart.NewRepository(s.repo.db).ListByUser(ctx, userID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load cart")
	}

	lines := make([]SaleLine, 0, len(rows))
	for i := range rows {
		row := rows[i]
		id := row.ID
		lines = append(lines, SaleLine{
			ProductID:  row.ProductID,
			Size:       row.Size,
			Color:      row.Color,
			Quantity:   row.Quantity,
			CartItemID: &id,
		})
	}
	return s.Finalize(ctx, userID, lines)
}

// GetSale loads one sale snapshot scoped to its owner.
func (s *service) GetSale(ctx context.Context, userID, saleID uuid.UUID) (*SaleDTO, error) {
	sale, err := s.repo.FindByIDAndUser(ctx, saleID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "sale not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load sale")
	}
	dto := NewSaleDTO(sale)
	return &dto, nil
}

// ListSales returns the user's sales, newest first.
func (s *service) ListSales(ctx context.Context, userID uuid.UUID) ([]SaleDTO, error) {
	rows, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list sales")
	}
	dtos := make([]SaleDTO, 0, len(rows))
	for i := range rows {
		dtos = append(dtos, NewSaleDTO(&rows[i]))
	}
	return dtos, nil
}
