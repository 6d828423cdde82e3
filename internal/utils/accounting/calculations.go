package accounting

import (
	"fmt"
	"math"
	"sort"

	"github.com/SscSPs/ledgerbook/internal/core/domain"
)

// SignedAmount applies the write-time sign convention to a user-entered magnitude.
// Expenses are negative and incomes positive from the point of view of a debit-natural
// account; credit-natural accounts store the opposite sign so that a positive stored
// amount always increases the account's balance.
func SignedAmount(userAmount int64, kind domain.Kind, classification domain.Classification) (int64, error) {
	if userAmount == 0 {
		return 0, fmt.Errorf("amount must not be zero")
	}
	if userAmount == math.MinInt64 {
		return 0, fmt.Errorf("amount %d is out of range", userAmount)
	}
	base := userAmount
	if base < 0 {
		base = -base
	}

	var signed int64
	switch kind {
	case domain.KindExpense:
		signed = -base
	case domain.KindIncome:
		signed = base
	default:
		return 0, fmt.Errorf("unknown kind '%s'", kind)
	}

	polarity, ok := classification.Polarity()
	if !ok {
		return 0, fmt.Errorf("unknown classification '%s'", classification)
	}
	if polarity == domain.CreditNatural {
		signed = -signed
	}
	return signed, nil
}

// TransferAmounts returns the stored amounts of the outgoing and incoming legs.
// Transfers move real money and bypass the classification flip.
func TransferAmounts(magnitude int64) (out int64, in int64, err error) {
	if magnitude <= 0 {
		return 0, 0, fmt.Errorf("transfer amount must be positive, got %d", magnitude)
	}
	return -magnitude, magnitude, nil
}

// CheckTransferGroup verifies that the legs of one transfer group form a valid pair:
// exactly two legs, opposite amounts of equal magnitude, and counterparty references
// pointing at each other.
func CheckTransferGroup(legs []domain.Transaction) error {
	if len(legs) != 2 {
		return fmt.Errorf("transfer group must have exactly two legs, found %d", len(legs))
	}
	a, b := legs[0], legs[1]
	if a.TransferGroupID != b.TransferGroupID {
		return fmt.Errorf("legs belong to different transfer groups (%d, %d)", a.TransferGroupID, b.TransferGroupID)
	}
	if a.Amount == 0 || a.Amount+b.Amount != 0 {
		return fmt.Errorf("leg amounts do not cancel: %d and %d", a.Amount, b.Amount)
	}
	if a.AccountID == b.AccountID {
		return fmt.Errorf("both legs are on account %d", a.AccountID)
	}
	if a.CounterpartyAccountID != b.AccountID || b.CounterpartyAccountID != a.AccountID {
		return fmt.Errorf("counterparty references do not point at each other")
	}
	return nil
}

// FindBrokenTransferGroups groups transfer legs by transfer group and returns one
// issue per group that fails CheckTransferGroup, ordered by group id.
func FindBrokenTransferGroups(legs []domain.Transaction) []domain.IntegrityIssue {
	groups := make(map[int64][]domain.Transaction)
	for _, leg := range legs {
		if !leg.IsTransfer() {
			continue
		}
		groups[leg.TransferGroupID] = append(groups[leg.TransferGroupID], leg)
	}

	issues := []domain.IntegrityIssue{}
	for groupID, group := range groups {
		if err := CheckTransferGroup(group); err != nil {
			ids := make([]int64, len(group))
			for i, leg := range group {
				ids[i] = leg.TransactionID
			}
			sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
			issues = append(issues, domain.IntegrityIssue{
				TransferGroupID: groupID,
				TransactionIDs:  ids,
				Reason:          err.Error(),
			})
		}
	}
	sort.Slice(issues, func(i, j int) bool { return issues[i].TransferGroupID < issues[j].TransferGroupID })
	return issues
}
