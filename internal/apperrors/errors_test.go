package apperrors_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/SscSPs/ledgerbook/internal/apperrors"
	"github.com/stretchr/testify/assert"
)

func TestConstructorsWrapSentinels(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		sentinel error
		code     int
	}{
		{"duplicate name", apperrors.DuplicateNameError("account", "Cash"), apperrors.ErrConflict, http.StatusConflict},
		{"invalid classification", apperrors.InvalidClassificationError("revenue"), apperrors.ErrValidation, http.StatusBadRequest},
		{"invalid amount", apperrors.InvalidAmountError("must not be zero"), apperrors.ErrValidation, http.StatusBadRequest},
		{"missing category", apperrors.MissingCategoryError(), apperrors.ErrValidation, http.StatusBadRequest},
		{"same account transfer", apperrors.SameAccountTransferError(7), apperrors.ErrValidation, http.StatusBadRequest},
		{"account not found", apperrors.AccountNotFoundError(9), apperrors.ErrNotFound, http.StatusNotFound},
		{"consistency", apperrors.ConsistencyError(1, "group 3 has 1 leg"), apperrors.ErrConsistency, http.StatusLocked},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, tt.err, tt.sentinel)

			wrapped := fmt.Errorf("outer: %w", tt.err)
			var appErr *apperrors.AppError
			if assert.True(t, errors.As(wrapped, &appErr)) {
				assert.Equal(t, tt.code, appErr.Code)
			}
		})
	}
}

func TestAppErrorMessage(t *testing.T) {
	err := apperrors.NewAppError(http.StatusInternalServerError, "failed to begin transaction", assert.AnError)
	assert.Equal(t, "failed to begin transaction: "+assert.AnError.Error(), err.Error())

	bare := apperrors.NewAppError(http.StatusBadRequest, "bad", nil)
	assert.Equal(t, "bad", bare.Error())
}
