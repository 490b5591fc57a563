// Package ledger models the expense/earning records a farmer tracks and the
// fixed vocabulary they are categorized with.
package ledger

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/agrosphere/backend/pkg/domain"
	"github.com/google/uuid"
)

// Each error wraps domain.ErrValidation so errors.Is resolves both the
// specific failure and its kind.
var (
	// ErrInvalidType is returned for a record type outside expense/earning.
	ErrInvalidType = fmt.Errorf("%w: type must be expense or earning", domain.ErrValidation)
	// ErrInvalidCategory is returned when the category is not in the fixed
	// set for the record's type.
	ErrInvalidCategory = fmt.Errorf("%w: invalid category for record type", domain.ErrValidation)
	// ErrAmountNotPositive is returned for zero, negative or non-finite amounts.
	ErrAmountNotPositive = fmt.Errorf("%w: amount must be positive", domain.ErrValidation)
	// ErrDateRequired is returned when the record has no date.
	ErrDateRequired = fmt.Errorf("%w: date is required", domain.ErrValidation)
)

// Type discriminates money going out from money coming in.
type Type string

const (
	TypeExpense Type = "expense"
	TypeEarning Type = "earning"
)

// ParseType validates a record type.
func ParseType(s string) (Type, error) {
	switch Type(strings.ToLower(strings.TrimSpace(s))) {
	case TypeExpense:
		return TypeExpense, nil
	case TypeEarning:
		return TypeEarning, nil
	default:
		return "", ErrInvalidType
	}
}

// Fixed category vocabularies per type. The frontend renders these as
// dropdowns; anything else is rejected before touching the store.
var (
	ExpenseCategories = []string{
		"seeds", "fertilizer", "pesticides", "equipment", "labor",
		"transport", "livestock", "utilities", "other",
	}
	EarningCategories = []string{
		"crop_sale", "livestock_sale", "dairy", "subsidy", "rental", "other",
	}
)

// CategoriesFor returns the allowed categories for a type.
func CategoriesFor(t Type) []string {
	if t == TypeEarning {
		return EarningCategories
	}
	return ExpenseCategories
}

func validCategory(t Type, category string) bool {
	for _, c := range CategoriesFor(t) {
		if c == category {
			return true
		}
	}
	return false
}

// Record is a single expense or earning. Year and Month are derived from
// OccurredOn at creation time so the dashboard aggregations group on plain
// integer columns.
type Record struct {
	ID          uuid.UUID `json:"id"`
	UserID      uuid.UUID `json:"user_id"`
	Type        Type      `json:"type"`
	Category    string    `json:"category"`
	Amount      float64   `json:"amount"`
	Description string    `json:"description"`
	OccurredOn  time.Time `json:"occurred_on"`
	Year        int       `json:"year"`
	Month       int       `json:"month"`
	CreatedAt   time.Time `json:"created_at"`
}

// NewRecord validates all inputs and derives the year/month columns.
// Validation happens here, before any store mutation.
func NewRecord(userID uuid.UUID, typ, category string, amount float64, description string, occurredOn time.Time) (*Record, error) {
	t, err := ParseType(typ)
	if err != nil {
		return nil, err
	}
	category = strings.ToLower(strings.TrimSpace(category))
	if category == "" || !validCategory(t, category) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidCategory, category)
	}
	if amount <= 0 || math.IsInf(amount, 0) || math.IsNaN(amount) {
		return nil, ErrAmountNotPositive
	}
	if occurredOn.IsZero() {
		return nil, ErrDateRequired
	}
	return &Record{
		ID:          uuid.New(),
		UserID:      userID,
		Type:        t,
		Category:    category,
		Amount:      amount,
		Description: strings.TrimSpace(description),
		OccurredOn:  occurredOn,
		Year:        occurredOn.Year(),
		Month:       int(occurredOn.Month()),
		CreatedAt:   time.Now().UTC(),
	}, nil
}
