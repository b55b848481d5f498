package reports

import "github.com/shopspring/decimal"

// InventoryValuation totals the catalog at cost and at retail.
type InventoryValuation struct {
	TotalCost       decimal.Decimal `json:"total_cost"`
	TotalRetail     decimal.Decimal `json:"total_retail"`
	PotentialProfit decimal.Decimal `json:"potential_profit"`
}

// SalesSummary aggregates revenue and profit over recorded sales.
type SalesSummary struct {
	SalesCount   int64           `json:"sales_count"`
	TotalRevenue decimal.Decimal `json:"total_revenue"`
	TotalProfit  decimal.Decimal `json:"total_profit"`
}
