package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

type CreateUserRequestDTO struct {
	UID   string `json:"uid" example:"u_8f3c1"`
	Email string `json:"email" example:"user@example.com"`
}

type SetUsernameRequestDTO struct {
	Username string `json:"username" example:"panda42"`
}

type BalanceOperationRequestDTO struct {
	Amount decimal.Decimal `json:"amount" example:"500"`
	Action string          `json:"action" example:"add" enums:"add,set,deduct"`
}

type TransferRequestDTO struct {
	ToUID  string          `json:"to_uid" example:"u_77ab2"`
	Amount decimal.Decimal `json:"amount" example:"100"`
}

type BulkAddBalanceRequestDTO struct {
	UIDs   []string        `json:"uids"`
	Amount decimal.Decimal `json:"amount" example:"50"`
}

type UserDTO struct {
	UID       string          `json:"uid" example:"u_8f3c1"`
	Email     string          `json:"email" example:"user@example.com"`
	Username  string          `json:"username" example:"panda42"`
	Balance   decimal.Decimal `json:"balance" example:"420"`
	CreatedAt time.Time       `json:"created_at" example:"2024-11-02T16:09:57Z"`
	UpdatedAt time.Time       `json:"updated_at" example:"2024-11-02T16:09:57Z"`
}

type UserResponseDTO struct {
	Success bool    `json:"success" example:"true"`
	Data    UserDTO `json:"data"`
}

type UsersResponseDTO struct {
	Success bool      `json:"success" example:"true"`
	Users   []UserDTO `json:"users"`
}

type BalanceResponseDTO struct {
	Success bool            `json:"success" example:"true"`
	Balance decimal.Decimal `json:"balance" example:"420"`
}

type BulkAddBalanceResponseDTO struct {
	Success bool            `json:"success" example:"true"`
	Results map[string]bool `json:"results"`
}
