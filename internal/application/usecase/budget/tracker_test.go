package budget

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/pockets-tracker/backend/internal/domain/entity"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestProgress(t *testing.T) {
	cases := []struct {
		name     string
		spending string
		budget   string
		expected string
	}{
		{"quarter spent", "250", "1000", "0.25"},
		{"over budget", "1200", "1000", "1.2"},
		{"zero budget never alerts", "500", "0", "0"},
		{"negative budget never alerts", "500", "-100", "0"},
		{"zero spending", "0", "1000", "0"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Progress(dec(tc.spending), dec(tc.budget))
			if !got.Equal(dec(tc.expected)) {
				t.Errorf("Progress(%s, %s) = %s, want %s", tc.spending, tc.budget, got, tc.expected)
			}
		})
	}
}

// decideSequence feeds progress values through a single state and collects the
// alert kinds raised at each step.
func decideSequence(t *testing.T, threshold string, progresses ...string) []entity.AlertKind {
	t.Helper()

	state := &entity.BudgetNotificationState{
		MonthKey: entity.MonthKey{Year: 2026, Month: time.March},
	}

	kinds := make([]entity.AlertKind, len(progresses))
	for i, p := range progresses {
		kinds[i] = Decide(state, dec(p), dec(threshold)).Kind
	}
	return kinds
}

func TestDecide(t *testing.T) {
	t.Run("threshold fires once as spending climbs", func(t *testing.T) {
		got := decideSequence(t, "0.8", "0.5", "0.85", "0.9")
		want := []entity.AlertKind{entity.AlertNone, entity.AlertThresholdCrossed, entity.AlertNone}
		assertKinds(t, got, want)
	})

	t.Run("flags re-arm when spending drops below the threshold", func(t *testing.T) {
		got := decideSequence(t, "0.8", "0.85", "0.5", "0.85")
		want := []entity.AlertKind{entity.AlertThresholdCrossed, entity.AlertNone, entity.AlertThresholdCrossed}
		assertKinds(t, got, want)
	})

	t.Run("jumping straight past the budget raises only exceeded", func(t *testing.T) {
		got := decideSequence(t, "0.8", "0", "1.2")
		want := []entity.AlertKind{entity.AlertNone, entity.AlertBudgetExceeded}
		assertKinds(t, got, want)
	})

	t.Run("exceeded does not repeat", func(t *testing.T) {
		got := decideSequence(t, "0.8", "1.2", "1.3")
		want := []entity.AlertKind{entity.AlertBudgetExceeded, entity.AlertNone}
		assertKinds(t, got, want)
	})

	t.Run("threshold still fires after dropping back from exceeded", func(t *testing.T) {
		// Exceeding the budget leaves the threshold flag unset, so a refund
		// that lands between threshold and budget still warns once.
		got := decideSequence(t, "0.8", "1.2", "0.9")
		want := []entity.AlertKind{entity.AlertBudgetExceeded, entity.AlertThresholdCrossed}
		assertKinds(t, got, want)
	})

	t.Run("exactly at the threshold fires", func(t *testing.T) {
		got := decideSequence(t, "0.8", "0.8")
		want := []entity.AlertKind{entity.AlertThresholdCrossed}
		assertKinds(t, got, want)
	})

	t.Run("exactly at the budget fires exceeded", func(t *testing.T) {
		got := decideSequence(t, "0.8", "1")
		want := []entity.AlertKind{entity.AlertBudgetExceeded}
		assertKinds(t, got, want)
	})

	t.Run("progress is recorded on the state", func(t *testing.T) {
		state := &entity.BudgetNotificationState{
			MonthKey: entity.MonthKey{Year: 2026, Month: time.March},
		}
		Decide(state, dec("0.42"), dec("0.8"))
		if !state.Progress.Equal(dec("0.42")) {
			t.Errorf("expected recorded progress 0.42, got %s", state.Progress)
		}
	})
}

func assertKinds(t *testing.T, got, want []entity.AlertKind) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("expected %d alerts, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("step %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}
