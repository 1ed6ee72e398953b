package recurring

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pockets-tracker/backend/internal/application/adapter"
	"github.com/pockets-tracker/backend/internal/domain/entity"
)

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time { return c.now }

type fakeTemplateStore struct {
	templates []*entity.RecurringTemplate
	loadErr   error
	saveErr   error
	saves     int
}

func (s *fakeTemplateStore) LoadAll(ctx context.Context) ([]*entity.RecurringTemplate, error) {
	if s.loadErr != nil {
		return nil, s.loadErr
	}
	return s.templates, nil
}

func (s *fakeTemplateStore) SaveAll(ctx context.Context, templates []*entity.RecurringTemplate) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	s.templates = templates
	s.saves++
	return nil
}

type fakeTransactionRepo struct {
	created   []*entity.Transaction
	existing  map[uuid.UUID]*entity.Transaction
	createErr error
}

func (r *fakeTransactionRepo) Create(ctx context.Context, txn *entity.Transaction) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.created = append(r.created, txn)
	return nil
}

func (r *fakeTransactionRepo) FindBySourceTemplateInMonth(ctx context.Context, templateID uuid.UUID, ref time.Time) (*entity.Transaction, error) {
	return r.existing[templateID], nil
}

func (r *fakeTransactionRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Transaction, error) {
	return nil, nil
}

func (r *fakeTransactionRepo) FindByFilter(ctx context.Context, filter adapter.TransactionFilter) ([]*entity.Transaction, error) {
	return nil, nil
}

func (r *fakeTransactionRepo) FindByMonth(ctx context.Context, ref time.Time) ([]*entity.Transaction, error) {
	return nil, nil
}

func (r *fakeTransactionRepo) MonthlyTotal(ctx context.Context, ref time.Time, transactionType entity.TransactionType) (decimal.Decimal, error) {
	return decimal.Zero, nil
}

func (r *fakeTransactionRepo) MonthlyTotalsByCategory(ctx context.Context, ref time.Time, transactionType entity.TransactionType) ([]*entity.CategoryTotal, error) {
	return nil, nil
}

func (r *fakeTransactionRepo) CountByCategory(ctx context.Context, categoryID uuid.UUID) (int64, error) {
	return 0, nil
}

func (r *fakeTransactionRepo) Update(ctx context.Context, txn *entity.Transaction) error {
	return nil
}

func (r *fakeTransactionRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return nil
}

func newTestTemplate(day int) *entity.RecurringTemplate {
	return entity.NewRecurringTemplate("Netflix", decimal.NewFromFloat(15.99), uuid.New(), day, entity.TransactionTypeExpense)
}

func dateAt(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 8, 0, 0, 0, time.UTC)
}

func TestShouldProcess(t *testing.T) {
	march3 := dateAt(2026, time.March, 3)
	march5 := dateAt(2026, time.March, 5)
	march20 := dateAt(2026, time.March, 20)
	april5 := dateAt(2026, time.April, 5)

	t.Run("never processed waits for the target day", func(t *testing.T) {
		template := newTestTemplate(5)

		if ShouldProcess(template, march3) {
			t.Error("expected not due before day 5")
		}
		if !ShouldProcess(template, march5) {
			t.Error("expected due on day 5")
		}
		if !ShouldProcess(template, march20) {
			t.Error("expected due after day 5")
		}
	})

	t.Run("processed this month is not due again", func(t *testing.T) {
		template := newTestTemplate(5)
		template.MarkProcessed(march5)

		if ShouldProcess(template, march20) {
			t.Error("expected at most one materialization per month")
		}
	})

	t.Run("processed last month is due again", func(t *testing.T) {
		template := newTestTemplate(5)
		template.MarkProcessed(march5)

		if !ShouldProcess(template, april5) {
			t.Error("expected due again in the next month")
		}
	})

	t.Run("next month still waits for the target day", func(t *testing.T) {
		template := newTestTemplate(5)
		template.MarkProcessed(march5)

		if ShouldProcess(template, dateAt(2026, time.April, 3)) {
			t.Error("expected not due before day 5 of the next month")
		}
	})

	t.Run("inactive template is never due", func(t *testing.T) {
		template := newTestTemplate(5)
		template.IsActive = false

		if ShouldProcess(template, march5) {
			t.Error("expected inactive template to be skipped")
		}
	})

	t.Run("same month a year later is due", func(t *testing.T) {
		template := newTestTemplate(5)
		template.MarkProcessed(march5)

		if !ShouldProcess(template, dateAt(2027, time.March, 5)) {
			t.Error("expected same month of a later year to count as a new month")
		}
	})
}

func TestMaterializationDate(t *testing.T) {
	t.Run("uses the target day", func(t *testing.T) {
		got := MaterializationDate(dateAt(2026, time.March, 20), 5)
		want := time.Date(2026, time.March, 5, 0, 0, 0, 0, time.UTC)
		if !got.Equal(want) {
			t.Errorf("expected %v, got %v", want, got)
		}
	})

	t.Run("clamps day 31 in february", func(t *testing.T) {
		got := MaterializationDate(dateAt(2026, time.February, 28), 31)
		want := time.Date(2026, time.February, 28, 0, 0, 0, 0, time.UTC)
		if !got.Equal(want) {
			t.Errorf("expected %v, got %v", want, got)
		}
	})

	t.Run("clamps day 31 in april", func(t *testing.T) {
		got := MaterializationDate(dateAt(2026, time.April, 30), 31)
		want := time.Date(2026, time.April, 30, 0, 0, 0, 0, time.UTC)
		if !got.Equal(want) {
			t.Errorf("expected %v, got %v", want, got)
		}
	})
}

func TestProcessTemplatesExecute(t *testing.T) {
	ctx := context.Background()

	t.Run("materializes a due template once", func(t *testing.T) {
		template := newTestTemplate(5)
		store := &fakeTemplateStore{templates: []*entity.RecurringTemplate{template}}
		repo := &fakeTransactionRepo{existing: map[uuid.UUID]*entity.Transaction{}}
		uc := NewProcessTemplatesUseCase(store, repo, fixedClock{dateAt(2026, time.March, 5)})

		output := uc.Execute(ctx)

		if output.Processed != 1 {
			t.Fatalf("expected 1 processed, got %d", output.Processed)
		}
		if len(repo.created) != 1 {
			t.Fatalf("expected 1 created transaction, got %d", len(repo.created))
		}

		created := repo.created[0]
		if created.SourceTemplateID == nil || *created.SourceTemplateID != template.ID {
			t.Error("expected transaction linked to its source template")
		}
		if created.Note != "Netflix" {
			t.Errorf("expected note %q, got %q", "Netflix", created.Note)
		}
		if template.LastProcessedDate == nil {
			t.Fatal("expected processed marker to advance")
		}
		if store.saves != 1 {
			t.Errorf("expected markers persisted once, got %d saves", store.saves)
		}

		// Second pass in the same month is a no-op.
		output = uc.Execute(ctx)
		if output.Processed != 0 || len(repo.created) != 1 {
			t.Error("expected second pass in the same month to do nothing")
		}
	})

	t.Run("re-arms in the following month", func(t *testing.T) {
		template := newTestTemplate(5)
		store := &fakeTemplateStore{templates: []*entity.RecurringTemplate{template}}
		repo := &fakeTransactionRepo{existing: map[uuid.UUID]*entity.Transaction{}}

		NewProcessTemplatesUseCase(store, repo, fixedClock{dateAt(2026, time.March, 5)}).Execute(ctx)
		NewProcessTemplatesUseCase(store, repo, fixedClock{dateAt(2026, time.April, 5)}).Execute(ctx)

		if len(repo.created) != 2 {
			t.Fatalf("expected one transaction per month, got %d", len(repo.created))
		}
	})

	t.Run("skips an inactive template", func(t *testing.T) {
		template := newTestTemplate(5)
		template.IsActive = false
		store := &fakeTemplateStore{templates: []*entity.RecurringTemplate{template}}
		repo := &fakeTransactionRepo{existing: map[uuid.UUID]*entity.Transaction{}}

		output := NewProcessTemplatesUseCase(store, repo, fixedClock{dateAt(2026, time.March, 5)}).Execute(ctx)

		if output.Processed != 0 || len(repo.created) != 0 {
			t.Error("expected inactive template to be left alone")
		}
	})

	t.Run("advances the marker when the month is already satisfied", func(t *testing.T) {
		template := newTestTemplate(5)
		existing := entity.NewMaterializedTransaction(template, dateAt(2026, time.March, 5))
		store := &fakeTemplateStore{templates: []*entity.RecurringTemplate{template}}
		repo := &fakeTransactionRepo{existing: map[uuid.UUID]*entity.Transaction{template.ID: existing}}

		output := NewProcessTemplatesUseCase(store, repo, fixedClock{dateAt(2026, time.March, 7)}).Execute(ctx)

		if len(repo.created) != 0 {
			t.Error("expected no duplicate transaction")
		}
		if output.Processed != 1 {
			t.Errorf("expected 1 processed, got %d", output.Processed)
		}
		if template.LastProcessedDate == nil {
			t.Error("expected marker to advance anyway")
		}
	})

	t.Run("leaves the marker untouched when the insert fails", func(t *testing.T) {
		template := newTestTemplate(5)
		store := &fakeTemplateStore{templates: []*entity.RecurringTemplate{template}}
		repo := &fakeTransactionRepo{
			existing:  map[uuid.UUID]*entity.Transaction{},
			createErr: errors.New("disk full"),
		}

		output := NewProcessTemplatesUseCase(store, repo, fixedClock{dateAt(2026, time.March, 5)}).Execute(ctx)

		if output.Processed != 0 {
			t.Errorf("expected 0 processed, got %d", output.Processed)
		}
		if template.LastProcessedDate != nil {
			t.Error("expected marker untouched so the next pass retries")
		}
	})

	t.Run("returns an empty result when the store cannot be read", func(t *testing.T) {
		store := &fakeTemplateStore{loadErr: errors.New("permission denied")}
		repo := &fakeTransactionRepo{existing: map[uuid.UUID]*entity.Transaction{}}

		output := NewProcessTemplatesUseCase(store, repo, fixedClock{dateAt(2026, time.March, 5)}).Execute(ctx)

		if output.Processed != 0 || len(output.Created) != 0 {
			t.Error("expected a soft-failed pass to report zero work")
		}
	})
}
