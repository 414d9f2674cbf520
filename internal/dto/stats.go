package dto

import "github.com/shopspring/decimal"

type OrderStatsDTO struct {
	TotalOrders     int             `json:"total_orders" example:"2"`
	PendingOrders   int             `json:"pending_orders" example:"1"`
	CompletedOrders int             `json:"completed_orders" example:"1"`
	TotalRevenue    decimal.Decimal `json:"total_revenue" example:"200"`
}

type UserStatsDTO struct {
	TotalUsers   int             `json:"total_users" example:"10"`
	TotalBalance decimal.Decimal `json:"total_balance" example:"1500"`
}

type OrderStatsResponseDTO struct {
	Success bool          `json:"success" example:"true"`
	Stats   OrderStatsDTO `json:"stats"`
}

type UserStatsResponseDTO struct {
	Success bool         `json:"success" example:"true"`
	Stats   UserStatsDTO `json:"stats"`
}

type CombinedStatsResponseDTO struct {
	Success bool          `json:"success" example:"true"`
	Orders  OrderStatsDTO `json:"orders"`
	Users   UserStatsDTO  `json:"users"`
}

type VerifyResponseDTO struct {
	Success bool     `json:"success" example:"true"`
	Valid   bool     `json:"valid" example:"false"`
	Issues  []string `json:"issues"`
}
