package catalog

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	pkgerrors "github.com/modastore/modastore-backend/pkg/errors"
	"github.com/modastore/modastore-backend/pkg/pagination"
)

func validProductInput() CreateProductInput {
	return CreateProductInput{
		Name:   "Linen Shirt",
		Price:  decimal.RequireFromString("49.90"),
		Cost:   decimal.RequireFromString("21.50"),
		Stock:  10,
		Gender: "male",
		Colors: []string{"white", "navy"},
		Sizes:  []string{"S", "M", "L"},
		SKU:    fmt.Sprintf("SHIRT-%s", uuid.NewString()),
	}
}

func TestCreateProductValidations(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService(t)
	ctx := context.Background()

	cases := []struct {
		name   string
		mutate func(*CreateProductInput)
	}{
		{"zero price", func(in *CreateProductInput) { in.Price = decimal.Zero }},
		{"negative price", func(in *CreateProductInput) { in.Price = decimal.RequireFromString("-1") }},
		{"negative cost", func(in *CreateProductInput) { in.Cost = decimal.RequireFromString("-0.01") }},
		{"negative stock", func(in *CreateProductInput) { in.Stock = -1 }},
		{"unknown gender", func(in *CreateProductInput) { in.Gender = "other" }},
		{"blank color entry", func(in *CreateProductInput) { in.Colors = []string{"red", "  "} }},
		{"blank size entry", func(in *CreateProductInput) { in.Sizes = []string{""} }},
		{"missing name", func(in *CreateProductInput) { in.Name = "  " }},
		{"missing sku", func(in *CreateProductInput) { in.SKU = "" }},
	}

	for _, tc := range cases {
		input := validProductInput()
		tc.mutate(&input)
		_, err := svc.CreateProduct(ctx, input)
		if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeValidation {
			t.Errorf("%s: expected validation error, got %v", tc.name, err)
		}
	}
}

func TestCreateProductDefaultsGenderToUnisex(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService(t)
	input := validProductInput()
	input.Gender = ""

	created, err := svc.CreateProduct(context.Background(), input)
	if err != nil {
		t.Fatalf("create product: %v", err)
	}
	if created.Gender != "unisex" {
		t.Fatalf("expected unisex default, got %s", created.Gender)
	}
	if !created.Profit.Equal(decimal.RequireFromString("28.40")) {
		t.Fatalf("unexpected profit %s", created.Profit)
	}
}

func TestCreateProductDuplicateSKUConflicts(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService(t)
	ctx := context.Background()

	input := validProductInput()
	if _, err := svc.CreateProduct(ctx, input); err != nil {
		t.Fatalf("first create: %v", err)
	}

	second := validProductInput()
	second.SKU = input.SKU
	_, err := svc.CreateProduct(ctx, second)
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeConflict {
		t.Fatalf("expected conflict for duplicate sku, got %v", err)
	}
}

func TestUpdateProductPartial(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService(t)
	ctx := context.Background()

	created, err := svc.CreateProduct(ctx, validProductInput())
	if err != nil {
		t.Fatalf("create product: %v", err)
	}

	newPrice := decimal.RequireFromString("59.90")
	updated, err := svc.UpdateProduct(ctx, created.ID, UpdateProductInput{Price: &newPrice})
	if err != nil {
		t.Fatalf("update product: %v", err)
	}
	if !updated.Price.Equal(newPrice) {
		t.Fatalf("expected price %s, got %s", newPrice, updated.Price)
	}
	if updated.Name != created.Name {
		t.Fatalf("name should be untouched, got %s", updated.Name)
	}

	badStock := -5
	_, err = svc.UpdateProduct(ctx, created.ID, UpdateProductInput{Stock: &badStock})
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error for negative stock, got %v", err)
	}
}

func TestDeleteCategoryDetachesProducts(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService(t)
	ctx := context.Background()

	category, err := svc.CreateCategory(ctx, "Shirts")
	if err != nil {
		t.Fatalf("create category: %v", err)
	}

	input := validProductInput()
	input.CategoryID = &category.ID
	product, err := svc.CreateProduct(ctx, input)
	if err != nil {
		t.Fatalf("create product: %v", err)
	}

	if err := svc.DeleteCategory(ctx, category.ID); err != nil {
		t.Fatalf("delete category: %v", err)
	}

	reloaded, err := svc.GetProduct(ctx, product.ID)
	if err != nil {
		t.Fatalf("product should survive category delete: %v", err)
	}
	if reloaded.CategoryID != nil {
		t.Fatalf("expected category reference cleared, got %s", reloaded.CategoryID)
	}
}

func TestCreateCategoryDuplicateNameConflicts(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService(t)
	ctx := context.Background()

	if _, err := svc.CreateCategory(ctx, "Outerwear"); err != nil {
		t.Fatalf("create category: %v", err)
	}
	_, err := svc.CreateCategory(ctx, "Outerwear")
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeConflict {
		t.Fatalf("expected conflict, got %v", err)
	}
}

func TestListProductsFiltersAndSearch(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService(t)
	ctx := context.Background()

	category, err := svc.CreateCategory(ctx, "Denim")
	if err != nil {
		t.Fatalf("create category: %v", err)
	}

	jeans := validProductInput()
	jeans.Name = "Slim Jeans"
	jeans.SKU = "DENIM-001"
	jeans.CategoryID = &category.ID
	if _, err := svc.CreateProduct(ctx, jeans); err != nil {
		t.Fatalf("create jeans: %v", err)
	}

	jacket := validProductInput()
	jacket.Name = "Denim Jacket"
	jacket.SKU = "DENIM-002"
	if _, err := svc.CreateProduct(ctx, jacket); err != nil {
		t.Fatalf("create jacket: %v", err)
	}

	tee := validProductInput()
	tee.Name = "Basic Tee"
	tee.SKU = "TEE-001"
	if _, err := svc.CreateProduct(ctx, tee); err != nil {
		t.Fatalf("create tee: %v", err)
	}

	byCategory, err := svc.ListProducts(ctx, ListProductsInput{CategoryID: &category.ID})
	if err != nil {
		t.Fatalf("list by category: %v", err)
	}
	if len(byCategory.Products) != 1 || byCategory.Products[0].Name != "Slim Jeans" {
		t.Fatalf("unexpected category filter result: %+v", byCategory.Products)
	}

	byQuery, err := svc.ListProducts(ctx, ListProductsInput{Query: "denim"})
	if err != nil {
		t.Fatalf("list by query: %v", err)
	}
	if len(byQuery.Products) != 2 {
		t.Fatalf("expected 2 denim matches, got %d", len(byQuery.Products))
	}

	rows, err := svc.SearchProducts(ctx, "DENIM-00")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 sku matches, got %d", len(rows))
	}

	empty, err := svc.SearchProducts(ctx, "   ")
	if err != nil || len(empty) != 0 {
		t.Fatalf("expected empty result for blank term, got %v %v", empty, err)
	}
}

func TestListProductsPaginates(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		input := validProductInput()
		input.Name = fmt.Sprintf("Item %d", i)
		if _, err := svc.CreateProduct(ctx, input); err != nil {
			t.Fatalf("create product %d: %v", i, err)
		}
	}

	first, err := svc.ListProducts(ctx, ListProductsInput{Pagination: pagination.Params{Limit: 3}})
	if err != nil {
		t.Fatalf("first page: %v", err)
	}
	if len(first.Products) != 3 || first.NextCursor == "" {
		t.Fatalf("expected full first page with cursor, got %d items", len(first.Products))
	}

	second, err := svc.ListProducts(ctx, ListProductsInput{
		Pagination: pagination.Params{Limit: 3, Cursor: first.NextCursor},
	})
	if err != nil {
		t.Fatalf("second page: %v", err)
	}
	if len(second.Products) != 2 || second.NextCursor != "" {
		t.Fatalf("expected final page of 2, got %d (cursor %q)", len(second.Products), second.NextCursor)
	}

	seen := map[uuid.UUID]bool{}
	for _, p := range append(first.Products, second.Products...) {
		if seen[p.ID] {
			t.Fatalf("duplicate product %s across pages", p.ID)
		}
		seen[p.ID] = true
	}
}

func TestGetProductNotFound(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService(t)
	_, err := svc.GetProduct(context.Background(), uuid.New())
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
}
