package budget

import (
	"context"
	"fmt"

	"github.com/pockets-tracker/backend/internal/application/adapter"
	"github.com/pockets-tracker/backend/internal/domain/entity"
)

// SweepStateUseCase drops stale per-month notification state, keeping only
// the current month's record.
type SweepStateUseCase struct {
	stateRepo adapter.BudgetStateRepository
	clock     adapter.Clock
}

// NewSweepStateUseCase creates a new SweepStateUseCase instance.
func NewSweepStateUseCase(stateRepo adapter.BudgetStateRepository, clock adapter.Clock) *SweepStateUseCase {
	return &SweepStateUseCase{
		stateRepo: stateRepo,
		clock:     clock,
	}
}

// Execute removes every month record except the current one.
func (uc *SweepStateUseCase) Execute(ctx context.Context) error {
	key := entity.MonthKeyFor(uc.clock.Now())
	if err := uc.stateRepo.DeleteAllExcept(ctx, key); err != nil {
		return fmt.Errorf("failed to sweep budget notification state: %w", err)
	}
	return nil
}
