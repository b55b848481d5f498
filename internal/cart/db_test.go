package cart

import (
	"context"
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

	dsn := fmt.Sprintf("file:cart_%s?mode=memory&cache=shared", uuid.NewString())
	conn, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	if err := conn.AutoMigrate(&models.Category{}, &models.Product{}, &models.CartItem{}); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return conn
}

func newTestService(t *testing.T) (Service, *gorm.DB) {
	t.Helper()

	conn := openTestDB(t)
	svc, err := NewService(NewRepository(conn), &gormProductLoader{db: conn}, db.NewWithConn(conn))
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	return svc, conn
}

type gormProductLoader struct {
	db *gorm.DB
}

func (l *gormProductLoader) FindByID(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	var product models.Product
	if err := l.db.WithContext(ctx).First(&product, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

func mustCreateTestProduct(t *testing.T, conn *gorm.DB, price string, stock int) *models.Product {
	t.Helper()

	product := &models.Product{
		Name:   "Test Product",
		Price:  decimal.RequireFromString(price),
		Cost:   decimal.RequireFromString("10.00"),
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
