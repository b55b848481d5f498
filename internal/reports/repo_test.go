package reports

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/modastore/modastore-backend/pkg/db/models"
	"github.com/modastore/modastore-backend/pkg/enums"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:reports_%s?mode=memory&cache=shared", uuid.NewString())
	conn, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	if err := conn.AutoMigrate(
		&models.Category{},
		&models.Product{},
		&models.Sale{},
		&models.SaleItem{},
	); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return conn
}

func mustCreateTestProduct(t *testing.T, conn *gorm.DB, price, cost string, stock int) *models.Product {
	t.Helper()

	product := &models.Product{
		Name:   "Report Product",
		Price:  decimal.RequireFromString(price),
		Cost:   decimal.RequireFromString(cost),
		Stock:  stock,
		Gender: enums.GenderUnisex,
		Colors: models.StringList{"black"},
		Sizes:  models.StringList{"M"},
		SKU:    fmt.Sprintf("SKU-%s", uuid.NewString()),
	}
	if err := conn.Create(product).Error; err != nil {
		t.Fatalf("create product: %v", err)
	}
	return product
}

func TestInventoryValuationEmptyCatalogIsZero(t *testing.T) {
	t.Parallel()

	repo := NewRepository(openTestDB(t))
	valuation, err := repo.InventoryValuation(context.Background())
	if err != nil {
		t.Fatalf("valuation: %v", err)
	}
	if !valuation.TotalCost.IsZero() || !valuation.TotalRetail.IsZero() || !valuation.PotentialProfit.IsZero() {
		t.Fatalf("expected zeros on empty catalog, got %+v", valuation)
	}
}

func TestInventoryValuationSumsStock(t *testing.T) {
	t.Parallel()

	conn := openTestDB(t)
	repo := NewRepository(conn)

	mustCreateTestProduct(t, conn, "50.50", "20.25", 4)
	mustCreateTestProduct(t, conn, "10.00", "4.00", 10)
	mustCreateTestProduct(t, conn, "99.00", "99.00", 0)

	valuation, err := repo.InventoryValuation(context.Background())
	if err != nil {
		t.Fatalf("valuation: %v", err)
	}
	if !valuation.TotalCost.Equal(decimal.RequireFromString("121")) {
		t.Fatalf("expected total cost 121, got %s", valuation.TotalCost)
	}
	if !valuation.TotalRetail.Equal(decimal.RequireFromString("302")) {
		t.Fatalf("expected total retail 302, got %s", valuation.TotalRetail)
	}
	if !valuation.PotentialProfit.Equal(decimal.RequireFromString("181")) {
		t.Fatalf("expected potential profit 181, got %s", valuation.PotentialProfit)
	}
}

func TestSalesSummaryAggregatesFrozenValues(t *testing.T) {
	t.Parallel()

	conn := openTestDB(t)
	repo := NewRepository(conn)
	product := mustCreateTestProduct(t, conn, "100.00", "60.00", 50)

	sales := []models.Sale{
		{
			UserID: uuid.New(),
			Total:  decimal.RequireFromString("300"),
			Items: []models.SaleItem{
				{ProductID: product.ID, Quantity: 3, PriceAtSale: decimal.RequireFromString("100"), CostAtSale: decimal.RequireFromString("60")},
			},
		},
		{
			UserID: uuid.New(),
			Total:  decimal.RequireFromString("50"),
			Items: []models.SaleItem{
				{ProductID: product.ID, Quantity: 2, PriceAtSale: decimal.RequireFromString("25"), CostAtSale: decimal.RequireFromString("30")},
			},
		},
	}
	for i := range sales {
		if err := conn.Create(&sales[i]).Error; err != nil {
			t.Fatalf("seed sale: %v", err)
		}
	}

	summary, err := repo.SalesSummary(context.Background())
	if err != nil {
		t.Fatalf("summary: %v", err)
	}
	if summary.SalesCount != 2 {
		t.Fatalf("expected 2 sales, got %d", summary.SalesCount)
	}
	if !summary.TotalRevenue.Equal(decimal.RequireFromString("350")) {
		t.Fatalf("expected revenue 350, got %s", summary.TotalRevenue)
	}
	// second sale sold below cost; profit may go negative per line
	if !summary.TotalProfit.Equal(decimal.RequireFromString("110")) {
		t.Fatalf("expected profit 110, got %s", summary.TotalProfit)
	}
}

func TestSalesSummaryEmptyIsZero(t *testing.T) {
	t.Parallel()

	repo := NewRepository(openTestDB(t))
	summary, err := repo.SalesSummary(context.Background())
	if err != nil {
		t.Fatalf("summary: %v", err)
	}
	if summary.SalesCount != 0 || !summary.TotalRevenue.IsZero() || !summary.TotalProfit.IsZero() {
		t.Fatalf("expected zero summary, got %+v", summary)
	}
}
