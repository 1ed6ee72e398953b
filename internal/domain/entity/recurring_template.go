// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Day-of-month bounds for recurring templates. Out-of-range values are
// clamped at construction, not rejected.
const (
	MinDayOfMonth = 1
	MaxDayOfMonth = 31
)

// RecurringTemplate is a user-defined rule that produces one transaction per
// month on a given day.
type RecurringTemplate struct {
	ID         uuid.UUID
	Name       string
	Amount     decimal.Decimal
	CategoryID uuid.UUID
	DayOfMonth int
	Type       TransactionType
	IsActive   bool
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// LastProcessedDate is the calendar date on which this template last
	// produced (or was found already satisfied for) a monthly transaction.
	LastProcessedDate *time.Time
}

// NewRecurringTemplate creates a new RecurringTemplate entity.
// dayOfMonth is clamped into [MinDayOfMonth, MaxDayOfMonth].
func NewRecurringTemplate(
	name string,
	amount decimal.Decimal,
	categoryID uuid.UUID,
	dayOfMonth int,
	transactionType TransactionType,
) *RecurringTemplate {
	now := time.Now().UTC()

	return &RecurringTemplate{
		ID:         uuid.New(),
		Name:       name,
		Amount:     amount,
		CategoryID: categoryID,
		DayOfMonth: ClampDayOfMonth(dayOfMonth),
		Type:       transactionType,
		IsActive:   true,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// ClampDayOfMonth forces a day value into the valid [1, 31] range.
func ClampDayOfMonth(day int) int {
	if day < MinDayOfMonth {
		return MinDayOfMonth
	}
	if day > MaxDayOfMonth {
		return MaxDayOfMonth
	}
	return day
}

// Touch refreshes the UpdatedAt timestamp.
func (t *RecurringTemplate) Touch() {
	t.UpdatedAt = time.Now().UTC()
}

// MarkProcessed records that the template produced (or was satisfied for)
// this month's transaction on the given date.
func (t *RecurringTemplate) MarkProcessed(date time.Time) {
	processed := date
	t.LastProcessedDate = &processed
	t.Touch()
}
