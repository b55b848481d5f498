package migrate_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/modastore/modastore-backend/pkg/migrate"
)

func readMigration(t *testing.T, pattern string) string {
	t.Helper()

	matches, err := filepath.Glob(filepath.Join("migrations", pattern))
	if err != nil {
		t.Fatalf("glob migrations: %v", err)
	}
	if len(matches) == 0 {
		t.Fatalf("no migration file matching %q", pattern)
	}

	data, err := os.ReadFile(matches[0])
	if err != nil {
		t.Fatalf("read migration file: %v", err)
	}
	return string(data)
}

func TestCatalogMigrationContainsSchemas(t *testing.T) {
	content := readMigration(t, "*_create_catalog_tables.sql")

	checks := []string{
		"CREATE TABLE IF NOT EXISTS categories",
		"CREATE TABLE IF NOT EXISTS products",
		"CREATE UNIQUE INDEX IF NOT EXISTS idx_categories_name",
		"CREATE UNIQUE INDEX IF NOT EXISTS idx_products_sku",
		"REFERENCES categories (id) ON DELETE SET NULL",
		"price NUMERIC(10,2) NOT NULL",
	}

	for _, sub := range checks {
		if !strings.Contains(content, sub) {
			t.Errorf("missing expected statement %q", sub)
		}
	}
}

func TestCartMigrationEnforcesLineUniqueness(t *testing.T) {
	content := readMigration(t, "*_create_cart_items_table.sql")

	checks := []string{
		"CREATE TABLE IF NOT EXISTS cart_items",
		"CREATE UNIQUE INDEX IF NOT EXISTS idx_cart_items_line",
		"ON cart_items (user_id, product_id, size, color)",
	}

	for _, sub := range checks {
		if !strings.Contains(content, sub) {
			t.Errorf("missing expected statement %q", sub)
		}
	}
}

func TestSalesMigrationSnapshotsPricing(t *testing.T) {
	content := readMigration(t, "*_create_sales_tables.sql")

	checks := []string{
		"CREATE TABLE IF NOT EXISTS sales",
		"CREATE TABLE IF NOT EXISTS sale_items",
		"price_at_sale NUMERIC(10,2) NOT NULL",
		"cost_at_sale NUMERIC(10,2) NOT NULL",
		"REFERENCES sales (id) ON DELETE CASCADE",
	}

	for _, sub := range checks {
		if !strings.Contains(content, sub) {
			t.Errorf("missing expected statement %q", sub)
		}
	}
}

func TestMigrationDirValidates(t *testing.T) {
	if err := migrate.ValidateDir("migrations"); err != nil {
		t.Fatalf("migrations dir invalid: %v", err)
	}
}
