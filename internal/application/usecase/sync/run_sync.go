// Package sync runs the startup pipeline that brings derived state up to
// date: recurring materialization, budget evaluation, and state sweeping.
package sync

import (
	"context"
	"log/slog"

	"github.com/pockets-tracker/backend/internal/application/usecase/budget"
	"github.com/pockets-tracker/backend/internal/application/usecase/recurring"
	"github.com/pockets-tracker/backend/internal/domain/entity"
)

// RunSyncOutput reports what the pipeline did.
type RunSyncOutput struct {
	TemplatesProcessed  int
	TransactionsCreated int
	BudgetAlertRaised   bool
}

// RunSyncUseCase executes the full sync pipeline in order: materialize due
// templates, re-evaluate the budget against the new spending, then sweep
// stale notification state. Each stage is soft-failing; the pipeline always
// runs to the end.
type RunSyncUseCase struct {
	processTemplates *recurring.ProcessTemplatesUseCase
	evaluateBudget   *budget.EvaluateBudgetUseCase
	sweepState       *budget.SweepStateUseCase
}

// NewRunSyncUseCase creates a new RunSyncUseCase instance.
func NewRunSyncUseCase(
	processTemplates *recurring.ProcessTemplatesUseCase,
	evaluateBudget *budget.EvaluateBudgetUseCase,
	sweepState *budget.SweepStateUseCase,
) *RunSyncUseCase {
	return &RunSyncUseCase{
		processTemplates: processTemplates,
		evaluateBudget:   evaluateBudget,
		sweepState:       sweepState,
	}
}

// Execute runs one pass of the pipeline.
func (uc *RunSyncUseCase) Execute(ctx context.Context) *RunSyncOutput {
	output := &RunSyncOutput{}

	processed := uc.processTemplates.Execute(ctx)
	output.TemplatesProcessed = processed.Processed
	output.TransactionsCreated = len(processed.Created)

	alert, err := uc.evaluateBudget.Execute(ctx)
	if err != nil {
		slog.Error("Budget evaluation during sync failed", "error", err)
	} else if alert.Kind != entity.AlertNone {
		output.BudgetAlertRaised = true
	}

	if err := uc.sweepState.Execute(ctx); err != nil {
		slog.Error("Budget state sweep during sync failed", "error", err)
	}

	return output
}
