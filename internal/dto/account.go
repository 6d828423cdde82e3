package dto

import (
	"time"

	"github.com/SscSPs/ledgerbook/internal/core/domain"
)

// CreateAccountRequest defines the data needed to create a new account.
// OpeningBalance is in minor units and may be negative.
type CreateAccountRequest struct {
	Name           string                `json:"name" binding:"required"`
	Classification domain.Classification `json:"classification" binding:"required"`
	OpeningBalance int64                 `json:"openingBalance"`
}

// UpdateAccountRequest defines the data allowed for updating an account.
// Use pointers to distinguish between zero-value updates and fields not provided.
type UpdateAccountRequest struct {
	Name           *string `json:"name"`
	OpeningBalance *int64  `json:"openingBalance"`
}

// AccountResponse defines the data returned for an account.
type AccountResponse struct {
	AccountID      int64                 `json:"accountID"`
	ContainerID    int64                 `json:"containerID"`
	Name           string                `json:"name"`
	Classification domain.Classification `json:"classification"`
	OpeningBalance int64                 `json:"openingBalance"`
	CreatedAt      time.Time             `json:"createdAt"`
	LastUpdatedAt  time.Time             `json:"lastUpdatedAt"`
}

// ListAccountsResponse wraps a list of accounts.
type ListAccountsResponse struct {
	Accounts []AccountResponse `json:"accounts"`
}

// AccountBalanceResponse defines the data returned for an account balance query.
type AccountBalanceResponse struct {
	AccountID int64  `json:"accountID"`
	Name      string `json:"name,omitempty"`
	Balance   int64  `json:"balance"`
	Display   string `json:"display,omitempty"`
}

// ListAccountBalancesResponse wraps the balances of every account of a container.
type ListAccountBalancesResponse struct {
	Balances []AccountBalanceResponse `json:"balances"`
}

// ToAccountResponse converts a domain.Account to AccountResponse DTO
func ToAccountResponse(acc *domain.Account) AccountResponse {
	return AccountResponse{
		AccountID:      acc.AccountID,
		ContainerID:    acc.ContainerID,
		Name:           acc.Name,
		Classification: acc.Classification,
		OpeningBalance: acc.OpeningBalance,
		CreatedAt:      acc.CreatedAt,
		LastUpdatedAt:  acc.LastUpdatedAt,
	}
}

// ToListAccountResponse converts a slice of domain.Account to a ListAccountsResponse
func ToListAccountResponse(accounts []domain.Account) ListAccountsResponse {
	res := make([]AccountResponse, len(accounts))
	for i := range accounts {
		res[i] = ToAccountResponse(&accounts[i])
	}
	return ListAccountsResponse{Accounts: res}
}
