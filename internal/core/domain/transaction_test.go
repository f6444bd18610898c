package domain_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/svarno/svarno_backend/internal/core/domain"
)

func TestTransaction_Validate(t *testing.T) {
	now := time.Now()

	valid := domain.Transaction{
		TransactionID: "txn_123",
		UserID:        "user_123",
		Type:          domain.TransactionExpense,
		Amount:        decimal.NewFromInt(250),
		Description:   "Grocery Shopping",
		Category:      "Food & Dining",
		Date:          now,
	}

	tests := []struct {
		name    string
		mutate  func(tx *domain.Transaction)
		wantErr error
	}{
		{
			name:   "valid expense",
			mutate: func(tx *domain.Transaction) {},
		},
		{
			name:    "zero amount",
			mutate:  func(tx *domain.Transaction) { tx.Amount = decimal.Zero },
			wantErr: domain.ErrAmountNotPositive,
		},
		{
			name:    "negative amount",
			mutate:  func(tx *domain.Transaction) { tx.Amount = decimal.NewFromInt(-5) },
			wantErr: domain.ErrAmountNotPositive,
		},
		{
			name:    "blank description",
			mutate:  func(tx *domain.Transaction) { tx.Description = "   " },
			wantErr: domain.ErrDescriptionRequired,
		},
		{
			name:    "missing category",
			mutate:  func(tx *domain.Transaction) { tx.Category = "" },
			wantErr: domain.ErrCategoryRequired,
		},
		{
			name:    "unknown type",
			mutate:  func(tx *domain.Transaction) { tx.Type = "transfer" },
			wantErr: domain.ErrInvalidType,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tx := valid
			tt.mutate(&tx)
			err := tx.Validate()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestTransactionPatch_Normalize(t *testing.T) {
	category := " Bills & Utilities "
	description := "  Phone plan\t"
	amount := decimal.NewFromInt(95)
	patch := domain.TransactionPatch{Category: &category, Description: &description, Amount: &amount}

	normalized := patch.Normalize()

	require.NotNil(t, normalized.Category)
	require.NotNil(t, normalized.Description)
	assert.Equal(t, "Bills & Utilities", *normalized.Category)
	assert.Equal(t, "Phone plan", *normalized.Description)
	assert.True(t, amount.Equal(*normalized.Amount))
	assert.Nil(t, normalized.Date)
	assert.Equal(t, " Bills & Utilities ", category, "caller's value must not be modified")
}

func TestTransactionPatch_Validate(t *testing.T) {
	assert.ErrorIs(t, domain.TransactionPatch{}.Validate(), domain.ErrEmptyPatch)

	empty := ""
	assert.ErrorIs(t, domain.TransactionPatch{Description: &empty}.Validate(), domain.ErrDescriptionRequired)

	zero := decimal.Zero
	assert.ErrorIs(t, domain.TransactionPatch{Amount: &zero}.Validate(), domain.ErrAmountNotPositive)

	kind := domain.TransactionSell
	assert.NoError(t, domain.TransactionPatch{Type: &kind}.Validate())
}

func TestSession_Owns(t *testing.T) {
	session, err := domain.NewSession("user_1", "a@b.c", "jti", time.Now().Add(time.Hour))
	assert.NoError(t, err)
	assert.True(t, session.Owns("user_1"))
	assert.False(t, session.Owns("user_2"))

	_, err = domain.NewSession("", "", "", time.Time{})
	assert.ErrorIs(t, err, domain.ErrNoSessionUser)
}
