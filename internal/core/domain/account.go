package domain

import "time"

// Classification defines the fundamental accounting type of an account.
type Classification string

const (
	Asset       Classification = "asset"
	ContraAsset Classification = "contra_asset"
	Liability   Classification = "liability"
	Equity      Classification = "equity"
)

// Classifications lists the recognized classifications in balance-sheet order.
var Classifications = []Classification{Asset, ContraAsset, Liability, Equity}

// Polarity tells whether a classification's balance grows with positive (debit-natural)
// or negative (credit-natural) amounts relative to the user-facing expense/income semantics.
type Polarity int

const (
	DebitNatural Polarity = iota + 1
	CreditNatural
)

func (p Polarity) String() string {
	switch p {
	case DebitNatural:
		return "debit"
	case CreditNatural:
		return "credit"
	default:
		return "unknown"
	}
}

// IsValid reports whether c is one of the recognized classifications.
func (c Classification) IsValid() bool {
	_, ok := c.Polarity()
	return ok
}

// Polarity returns the polarity of c. The second result is false for unknown classifications.
func (c Classification) Polarity() (Polarity, bool) {
	switch c {
	case Asset, ContraAsset:
		return DebitNatural, true
	case Liability, Equity:
		return CreditNatural, true
	default:
		return 0, false
	}
}

// Account represents a money account owned by exactly one container.
// Classification never changes after creation.
type Account struct {
	AccountID      int64          `json:"accountID"`
	ContainerID    int64          `json:"containerID"`
	Name           string         `json:"name"`
	Classification Classification `json:"classification"`
	OpeningBalance int64          `json:"openingBalance"` // minor units, may be negative
	AuditFields
}

// AccountBalance pairs an account with its derived balance.
type AccountBalance struct {
	Account
	Balance int64 `json:"balance"`
}

// NewAccountBalance derives the balance of acc from the sum of its stored amounts.
func NewAccountBalance(acc Account, sum int64) AccountBalance {
	return AccountBalance{Account: acc, Balance: acc.OpeningBalance + sum}
}

// AccountUpdate holds the mutable attributes of an account.
type AccountUpdate struct {
	Name           string
	OpeningBalance int64
	UpdatedAt      time.Time
}
