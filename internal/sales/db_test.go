package sales

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/modastore/modastore-backend/pkg/db"
	"github.com/modastore/modastore-backend/pkg/db/models"
	"github.com/modastore/modastore-backend/pkg/enums"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:sales_%s?mode=memory&cache=shared", uuid.NewString())
	conn, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	if err := conn.AutoMigrate(
		&models.Category{},
		&models.Product{},
		&models.CartItem{},
		&models.Sale{},
		&models.SaleItem{},
	); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return conn
}

func newTestService(t *testing.T) (Service, *gorm.DB) {
	t.Helper()

	conn := openTestDB(t)
	svc, err := NewService(NewRepository(conn), db.NewWithConn(conn))
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	return svc, conn
}

func mustCreateTestProduct(t *testing.T, conn *gorm.DB, price, cost string, stock int) *models.Product {
	t.Helper()

	product := &models.Product{
		Name:   "Test Product",
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

func productStock(t *testing.T, conn *gorm.DB, id uuid.UUID) int {
	t.Helper()

	var product models.Product
	if err := conn.First(&product, "id = ?", id).Error; err != nil {
		t.Fatalf("reload product: %v", err)
	}
	return product.Stock
}
