package domain_test

import (
	"testing"

	"github.com/SscSPs/ledgerbook/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestClassification_Polarity(t *testing.T) {
	tests := []struct {
		name           string
		classification domain.Classification
		want           domain.Polarity
		valid          bool
	}{
		{name: "asset is debit-natural", classification: domain.Asset, want: domain.DebitNatural, valid: true},
		{name: "contra asset follows asset", classification: domain.ContraAsset, want: domain.DebitNatural, valid: true},
		{name: "liability is credit-natural", classification: domain.Liability, want: domain.CreditNatural, valid: true},
		{name: "equity is credit-natural", classification: domain.Equity, want: domain.CreditNatural, valid: true},
		{name: "unknown", classification: domain.Classification("revenue"), valid: false},
		{name: "wrong case", classification: domain.Classification("ASSET"), valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.classification.Polarity()
			assert.Equal(t, tt.valid, ok)
			assert.Equal(t, tt.valid, tt.classification.IsValid())
			if tt.valid {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestNewAccountBalance(t *testing.T) {
	acc := domain.Account{AccountID: 1, Name: "Cash", Classification: domain.Asset, OpeningBalance: 100000}
	bal := domain.NewAccountBalance(acc, -12550)
	assert.Equal(t, int64(87450), bal.Balance)
	assert.Equal(t, "Cash", bal.Name)
}

func TestDefaultCategories(t *testing.T) {
	defaults := domain.DefaultCategories()
	assert.Len(t, defaults, 8)

	income := 0
	for _, c := range defaults {
		assert.True(t, c.IsDefault, c.Name)
		assert.True(t, c.Type.IsValid(), c.Name)
		if c.Type == domain.KindIncome {
			income++
			assert.Equal(t, "Income", c.Name)
		}
	}
	assert.Equal(t, 1, income)
}
