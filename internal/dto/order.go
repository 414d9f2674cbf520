package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

type CreateOrderRequestDTO struct {
	UID       string          `json:"uid" example:"u_8f3c1"`
	Username  string          `json:"username" example:"panda42"`
	Service   string          `json:"service" example:"Instagram Followers"`
	ServiceID string          `json:"service_id" example:"instagram_followers"`
	Platform  string          `json:"platform" example:"Instagram"`
	Plan      string          `json:"plan" example:"normal"`
	Target    string          `json:"target" example:"someaccount"`
	UTR       string          `json:"utr" example:"UTR123456"`
	Amount    decimal.Decimal `json:"amount" example:"80"`
	Quantity  int             `json:"quantity" example:"1000"`
}

type UpdateOrderStatusRequestDTO struct {
	Status string `json:"status" example:"completed" enums:"pending,completed,rejected"`
}

type OrderDTO struct {
	ID        string          `json:"id" example:"6f1c9a34-84d2-4c53-9a1e-2b9f0d9e1c77"`
	UID       string          `json:"uid" example:"u_8f3c1"`
	Username  string          `json:"username" example:"panda42"`
	Service   string          `json:"service" example:"Instagram Followers"`
	ServiceID string          `json:"service_id" example:"instagram_followers"`
	Platform  string          `json:"platform" example:"Instagram"`
	Plan      string          `json:"plan" example:"normal"`
	Target    string          `json:"target" example:"someaccount"`
	UTR       string          `json:"utr" example:"UTR123456"`
	Amount    decimal.Decimal `json:"amount" example:"80"`
	Quantity  int             `json:"quantity" example:"1000"`
	Status    string          `json:"status" example:"pending"`
	CreatedAt time.Time       `json:"created_at" example:"2024-11-02T16:09:57Z"`
	UpdatedAt time.Time       `json:"updated_at" example:"2024-11-02T16:09:57Z"`
}

type CreateOrderResponseDTO struct {
	Success bool     `json:"success" example:"true"`
	OrderID string   `json:"order_id" example:"6f1c9a34-84d2-4c53-9a1e-2b9f0d9e1c77"`
	Order   OrderDTO `json:"order"`
}

type OrdersResponseDTO struct {
	Success bool       `json:"success" example:"true"`
	Orders  []OrderDTO `json:"orders"`
}
