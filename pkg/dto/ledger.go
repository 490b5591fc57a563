package dto

import (
	"time"

	"github.com/google/uuid"
)

// RecordRead is a read-optimized view of an expense/earning record.
type RecordRead struct {
	ID          uuid.UUID `json:"id"`
	UserID      uuid.UUID `json:"user_id"`
	Type        string    `json:"type"`
	Category    string    `json:"category"`
	Amount      float64   `json:"amount"`
	Description string    `json:"description,omitempty"`
	OccurredOn  time.Time `json:"occurred_on"`
	Year        int       `json:"year"`
	Month       int       `json:"month"`
	CreatedAt   time.Time `json:"created_at"`
}

// RecordFilter narrows a record listing. Nil fields match everything.
type RecordFilter struct {
	Type     *string
	Category *string
	Year     *int
	Month    *int
}

// TypeSum is an amount total for one record type within a window.
type TypeSum struct {
	Type  string  `json:"type"`
	Total float64 `json:"total"`
}

// MonthlySum is a by-month breakdown entry for the trailing-months window.
type MonthlySum struct {
	Year  int     `json:"year"`
	Month int     `json:"month"`
	Type  string  `json:"type"`
	Total float64 `json:"total"`
}

// YearlySum is a by-year breakdown entry for the trailing-years window.
type YearlySum struct {
	Year  int     `json:"year"`
	Type  string  `json:"type"`
	Total float64 `json:"total"`
}

// DashboardSummary aggregates a user's ledger over the fixed windows the
// dashboard renders.
type DashboardSummary struct {
	CurrentMonth   []TypeSum    `json:"current_month"`
	Last7Days      []TypeSum    `json:"last_7_days"`
	MonthlyTrend   []MonthlySum `json:"monthly_trend"`
	YearlyTrend    []YearlySum  `json:"yearly_trend"`
	CurrentYear    []TypeSum    `json:"current_year"`
	RecentRecords  []RecordRead `json:"recent_records"`
	AvailableYears []int        `json:"available_years"`
}
