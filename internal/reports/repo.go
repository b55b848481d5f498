package reports

import (
	"context"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/modastore/modastore-backend/pkg/db/models"
)

// Repository runs the read-only reporting aggregates.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a reports repository bound to the provided DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

type valuationRow struct {
	TotalCost   decimal.Decimal
	TotalRetail decimal.Decimal
}

// InventoryValuation sums stock at cost and at retail over the whole catalog.
// An empty catalog yields zeros.
func (r *Repository) InventoryValuation(ctx context.Context) (*InventoryValuation, error) {
	var row valuationRow
	err := r.db.WithContext(ctx).
		Model(&models.Product{}).
		Select(
			"COALESCE(SUM(stock * cost), 0) AS total_cost",
			"COALESCE(SUM(stock * price), 0) AS total_retail",
		).
		Scan(&row).Error
	if err != nil {
		return nil, err
	}
	return &InventoryValuation{
		TotalCost:       row.TotalCost,
		TotalRetail:     row.TotalRetail,
		PotentialProfit: row.TotalRetail.Sub(row.TotalCost),
	}, nil
}

type summaryRow struct {
	SalesCount   int64
	TotalRevenue decimal.Decimal
}

// SalesSummary aggregates Sale.total and frozen per-item profit over all sales.
func (r *Repository) SalesSummary(ctx context.Context) (*SalesSummary, error) {
	var sales summaryRow
	err := r.db.WithContext(ctx).
		Model(&models.Sale{}).
		Select(
			"COUNT(*) AS sales_count",
			"COALESCE(SUM(total), 0) AS total_revenue",
		).
		Scan(&sales).Error
	if err != nil {
		return nil, err
	}

	var profit decimal.Decimal
	err = r.db.WithContext(ctx).
		Model(&models.SaleItem{}).
		Select("COALESCE(SUM((price_at_sale - cost_at_sale) * quantity), 0)").
		Scan(&profit).Error
	if err != nil {
		return nil, err
	}

	return &SalesSummary{
		SalesCount:   sales.SalesCount,
		TotalRevenue: sales.TotalRevenue,
		TotalProfit:  profit,
	}, nil
}
