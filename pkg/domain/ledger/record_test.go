package ledger_test

import (
	"math"
	"testing"
	"time"

	"github.com/agrosphere/backend/pkg/domain/ledger"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRecord(t *testing.T) {
	t.Parallel()
	userID := uuid.New()
	date := time.Date(2025, 7, 19, 0, 0, 0, 0, time.UTC)

	t.Run("valid expense", func(t *testing.T) {
		r, err := ledger.NewRecord(userID, "expense", "fertilizer", 120.50, "NPK for the east field", date)
		require.NoError(t, err)
		assert.Equal(t, ledger.TypeExpense, r.Type)
		assert.Equal(t, 2025, r.Year)
		assert.Equal(t, 7, r.Month)
		assert.Equal(t, "NPK for the east field", r.Description)
	})

	t.Run("valid earning with normalized category", func(t *testing.T) {
		r, err := ledger.NewRecord(userID, "Earning", " Crop_Sale ", 900, "", date)
		require.NoError(t, err)
		assert.Equal(t, ledger.TypeEarning, r.Type)
		assert.Equal(t, "crop_sale", r.Category)
	})

	testCases := []struct {
		desc     string
		typ      string
		category string
		amount   float64
		date     time.Time
		wantErr  error
	}{
		{desc: "unknown type", typ: "income", category: "other", amount: 10, date: date, wantErr: ledger.ErrInvalidType},
		{desc: "category from wrong type", typ: "earning", category: "fertilizer", amount: 10, date: date, wantErr: ledger.ErrInvalidCategory},
		{desc: "empty category", typ: "expense", category: "", amount: 10, date: date, wantErr: ledger.ErrInvalidCategory},
		{desc: "negative amount", typ: "expense", category: "seeds", amount: -5, date: date, wantErr: ledger.ErrAmountNotPositive},
		{desc: "zero amount", typ: "expense", category: "seeds", amount: 0, date: date, wantErr: ledger.ErrAmountNotPositive},
		{desc: "NaN amount", typ: "expense", category: "seeds", amount: math.NaN(), date: date, wantErr: ledger.ErrAmountNotPositive},
		{desc: "infinite amount", typ: "expense", category: "seeds", amount: math.Inf(1), date: date, wantErr: ledger.ErrAmountNotPositive},
		{desc: "missing date", typ: "expense", category: "seeds", amount: 10, wantErr: ledger.ErrDateRequired},
	}
	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			_, err := ledger.NewRecord(userID, tc.typ, tc.category, tc.amount, "", tc.date)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestCategoriesFor(t *testing.T) {
	t.Parallel()
	assert.Contains(t, ledger.CategoriesFor(ledger.TypeExpense), "seeds")
	assert.Contains(t, ledger.CategoriesFor(ledger.TypeEarning), "subsidy")
	assert.NotContains(t, ledger.CategoriesFor(ledger.TypeEarning), "seeds")
}
