package transaction

import (
	"context"
	"log/slog"

	"github.com/pockets-tracker/backend/internal/domain/entity"
)

// BudgetChecker re-evaluates the monthly budget after a spending change.
type BudgetChecker interface {
	Execute(ctx context.Context) (entity.BudgetAlert, error)
}

// checkBudget runs the budget evaluation after a mutation. Evaluation
// failures never fail the mutation that triggered them.
func checkBudget(ctx context.Context, checker BudgetChecker) {
	if checker == nil {
		return
	}
	if _, err := checker.Execute(ctx); err != nil {
		slog.Warn("Budget evaluation after transaction change failed", "error", err)
	}
}
