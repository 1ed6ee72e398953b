// Package recurring contains recurring template use cases, including the
// monthly materialization of templates into transactions.
package recurring

import (
	"context"
	"log/slog"
	"time"

	"github.com/pockets-tracker/backend/internal/application/adapter"
	"github.com/pockets-tracker/backend/internal/domain/entity"
)

// ProcessTemplatesOutput reports what one materialization pass did.
type ProcessTemplatesOutput struct {
	Created   []*entity.Transaction
	Processed int
}

// ProcessTemplatesUseCase materializes active recurring templates into
// concrete transactions, at most once per template per calendar month.
type ProcessTemplatesUseCase struct {
	templateStore   adapter.RecurringTemplateStore
	transactionRepo adapter.TransactionRepository
	clock           adapter.Clock
}

// NewProcessTemplatesUseCase creates a new ProcessTemplatesUseCase instance.
func NewProcessTemplatesUseCase(
	templateStore adapter.RecurringTemplateStore,
	transactionRepo adapter.TransactionRepository,
	clock adapter.Clock,
) *ProcessTemplatesUseCase {
	return &ProcessTemplatesUseCase{
		templateStore:   templateStore,
		transactionRepo: transactionRepo,
		clock:           clock,
	}
}

// Execute runs one materialization pass. It never returns an error: every
// failure is logged and skipped, and the next invocation retries the
// affected template (idempotent by construction).
func (uc *ProcessTemplatesUseCase) Execute(ctx context.Context) *ProcessTemplatesOutput {
	output := &ProcessTemplatesOutput{}

	templates, err := uc.templateStore.LoadAll(ctx)
	if err != nil {
		slog.Error("Failed to load recurring templates, skipping cycle", "error", err)
		return output
	}

	today := uc.clock.Now()
	dirty := false

	for _, template := range templates {
		if !ShouldProcess(template, today) {
			continue
		}

		existing, err := uc.transactionRepo.FindBySourceTemplateInMonth(ctx, template.ID, today)
		if err != nil {
			slog.Error("Failed to check for existing materialized transaction",
				"templateID", template.ID,
				"error", err,
			)
			continue
		}

		if existing != nil {
			// Already satisfied for this month; only advance the marker.
			template.MarkProcessed(today)
			output.Processed++
			dirty = true
			continue
		}

		transaction := entity.NewMaterializedTransaction(template, MaterializationDate(today, template.DayOfMonth))
		if err := uc.transactionRepo.Create(ctx, transaction); err != nil {
			// Marker stays untouched so the next run retries this template.
			slog.Error("Failed to create transaction from recurring template",
				"templateID", template.ID,
				"name", template.Name,
				"error", err,
			)
			continue
		}

		template.MarkProcessed(today)
		output.Created = append(output.Created, transaction)
		output.Processed++
		dirty = true

		slog.Info("Materialized recurring template",
			"templateID", template.ID,
			"name", template.Name,
			"amount", template.Amount.String(),
			"date", transaction.Date.Format("2006-01-02"),
		)
	}

	if dirty {
		if err := uc.templateStore.SaveAll(ctx, templates); err != nil {
			// In-memory markers remain the source of truth until the next
			// successful save; a re-run may re-check but cannot duplicate
			// thanks to the source-template lookup.
			slog.Error("Failed to persist recurring template markers", "error", err)
		}
	}

	return output
}

// ShouldProcess reports whether the template is due for materialization on
// the given day. A template is processed at most once per (year, month), and
// only once its target day has arrived within that month; a template added
// mid-month after its day has passed waits until the next month.
func ShouldProcess(template *entity.RecurringTemplate, today time.Time) bool {
	if !template.IsActive {
		return false
	}

	if template.LastProcessedDate == nil {
		return today.Day() >= template.DayOfMonth
	}

	last := *template.LastProcessedDate
	sameMonth := last.Year() == today.Year() && last.Month() == today.Month()
	return !sameMonth && today.Day() >= template.DayOfMonth
}

// MaterializationDate composes the transaction date for the current month.
// The day is clamped to the month's last valid day instead of drifting to
// whatever day the pass happened to run on.
func MaterializationDate(today time.Time, dayOfMonth int) time.Time {
	if last := lastDayOfMonth(today); dayOfMonth > last {
		dayOfMonth = last
	}
	return time.Date(today.Year(), today.Month(), dayOfMonth, 0, 0, 0, 0, today.Location())
}

func lastDayOfMonth(t time.Time) int {
	return time.Date(t.Year(), t.Month()+1, 0, 0, 0, 0, 0, t.Location()).Day()
}
