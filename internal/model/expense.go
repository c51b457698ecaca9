// Package model defines the core data types for the household ledger.
package model

import (
	"time"

	"github.com/google/uuid"
)

// DateLayout is the calendar-date format used everywhere an expense date
// appears. The fixed width makes lexicographic comparison equivalent to
// chronological comparison.
const DateLayout = "2006-01-02"

// Amount bounds for a single expense, in whole yen.
const (
	MinAmount = 1
	MaxAmount = 9_999_999
)

// MaxMemoLength is the memo limit, counted in Unicode code points.
const MaxMemoLength = 100

// Expense represents one recorded transaction.
type Expense struct {
	ID        string    `json:"id"`
	Amount    int       `json:"amount"`
	Category  string    `json:"category"`
	Date      string    `json:"date"` // YYYY-MM-DD, no time component
	Memo      string    `json:"memo"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// NewID returns a fresh version-4 UUID for a new expense.
func NewID() string {
	return uuid.NewString()
}

// CloneExpenses returns an independent copy of the given collection.
func CloneExpenses(expenses []Expense) []Expense {
	cloned := make([]Expense, len(expenses))
	copy(cloned, expenses)
	return cloned
}
