// Package domain contains artisan dashboard types.
package domain

import "context"

// MonthlySale is a single point of the dashboard sales chart.
type MonthlySale struct {
	Name  string `json:"name"`
	Sales int    `json:"sales"`
}

// Stats is the artisan dashboard payload. Earnings are the artisan's 70%
// share of every ordered product's price.
type Stats struct {
	TotalOrders   int64         `json:"totalOrders"`
	TotalEarnings float64       `json:"totalEarnings"`
	MonthlySales  []MonthlySale `json:"monthlySales"`
}

type Service interface {
	Stats(ctx context.Context, artisanID int64) (*Stats, error)
}
