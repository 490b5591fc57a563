package ledger

// CreateRecordInput is the request body for adding an expense or earning.
// Date accepts a calendar date (2006-01-02) or an RFC 3339 timestamp.
type CreateRecordInput struct {
	Type        string  `json:"type" validate:"required"`
	Category    string  `json:"category" validate:"required"`
	Amount      float64 `json:"amount" validate:"required,gt=0"`
	Description string  `json:"description,omitempty" validate:"max=500"`
	Date        string  `json:"date" validate:"required"`
}
