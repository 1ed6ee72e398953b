package recurring

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pockets-tracker/backend/internal/domain/entity"
)

type fakeScheduler struct {
	scheduled []*entity.ScheduledNotification
	cancelled []string
}

func (s *fakeScheduler) Schedule(ctx context.Context, n *entity.ScheduledNotification) error {
	s.scheduled = append(s.scheduled, n)
	return nil
}

func (s *fakeScheduler) Cancel(ctx context.Context, idOrPrefix string) error {
	s.cancelled = append(s.cancelled, idOrPrefix)
	return nil
}

func (s *fakeScheduler) Pending(ctx context.Context) ([]*entity.ScheduledNotification, error) {
	return s.scheduled, nil
}

func TestNextOccurrence(t *testing.T) {
	cases := []struct {
		name     string
		now      time.Time
		day      int
		expected time.Time
	}{
		{
			name:     "target day still ahead this month",
			now:      dateAt(2026, time.March, 3),
			day:      5,
			expected: time.Date(2026, time.March, 5, 9, 0, 0, 0, time.UTC),
		},
		{
			name:     "target day already passed rolls to next month",
			now:      dateAt(2026, time.March, 10),
			day:      5,
			expected: time.Date(2026, time.April, 5, 9, 0, 0, 0, time.UTC),
		},
		{
			name:     "on the target day rolls to next month",
			now:      dateAt(2026, time.March, 5),
			day:      5,
			expected: time.Date(2026, time.April, 5, 9, 0, 0, 0, time.UTC),
		},
		{
			name:     "day 31 clamps in a short month",
			now:      dateAt(2026, time.March, 31),
			day:      31,
			expected: time.Date(2026, time.April, 30, 9, 0, 0, 0, time.UTC),
		},
		{
			name:     "december rolls into january",
			now:      dateAt(2026, time.December, 20),
			day:      5,
			expected: time.Date(2027, time.January, 5, 9, 0, 0, 0, time.UTC),
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := nextOccurrence(tc.now, tc.day); !got.Equal(tc.expected) {
				t.Errorf("expected %v, got %v", tc.expected, got)
			}
		})
	}
}

func TestSubscriptionAlertScheduler(t *testing.T) {
	ctx := context.Background()
	template := entity.NewRecurringTemplate("Netflix", decimal.NewFromFloat(15.99), uuid.New(), 5, entity.TransactionTypeExpense)

	t.Run("schedules a due alert and a reminder", func(t *testing.T) {
		scheduler := &fakeScheduler{}
		alerts := NewSubscriptionAlertScheduler(scheduler, fixedClock{dateAt(2026, time.March, 1)}, true)

		alerts.Reschedule(ctx, template)

		if len(scheduler.scheduled) != 2 {
			t.Fatalf("expected 2 scheduled notifications, got %d", len(scheduler.scheduled))
		}

		reminder, due := scheduler.scheduled[0], scheduler.scheduled[1]
		if !strings.HasSuffix(reminder.ID, "_reminder") {
			t.Errorf("expected reminder id suffix, got %q", reminder.ID)
		}
		if due.ID != entity.NotificationIDSubscriptionPrefix+template.ID.String() {
			t.Errorf("unexpected due alert id %q", due.ID)
		}
		if due.Repeat != entity.RepeatMonthly {
			t.Errorf("expected monthly repeat, got %q", due.Repeat)
		}
		if !reminder.FireAt.Equal(due.FireAt.AddDate(0, 0, -1)) {
			t.Error("expected reminder one day before the due alert")
		}
		if !strings.Contains(due.Body, "15.99") {
			t.Errorf("expected amount in body, got %q", due.Body)
		}

		// Stale alerts for the template are replaced, not stacked.
		if len(scheduler.cancelled) != 1 {
			t.Fatalf("expected previous alerts cancelled, got %d cancels", len(scheduler.cancelled))
		}
	})

	t.Run("skips the reminder when it would be in the past", func(t *testing.T) {
		scheduler := &fakeScheduler{}
		alerts := NewSubscriptionAlertScheduler(scheduler, fixedClock{time.Date(2026, time.March, 4, 12, 0, 0, 0, time.UTC)}, true)

		alerts.Reschedule(ctx, template)

		if len(scheduler.scheduled) != 1 {
			t.Fatalf("expected only the due alert, got %d notifications", len(scheduler.scheduled))
		}
		if scheduler.scheduled[0].Repeat != entity.RepeatMonthly {
			t.Error("expected the remaining notification to be the due alert")
		}
	})

	t.Run("inactive template only cancels", func(t *testing.T) {
		scheduler := &fakeScheduler{}
		alerts := NewSubscriptionAlertScheduler(scheduler, fixedClock{dateAt(2026, time.March, 1)}, true)

		inactive := entity.NewRecurringTemplate("Gym", decimal.NewFromInt(30), uuid.New(), 10, entity.TransactionTypeExpense)
		inactive.IsActive = false
		alerts.Reschedule(ctx, inactive)

		if len(scheduler.scheduled) != 0 {
			t.Errorf("expected nothing scheduled, got %d", len(scheduler.scheduled))
		}
		if len(scheduler.cancelled) != 1 {
			t.Errorf("expected existing alerts cancelled, got %d", len(scheduler.cancelled))
		}
	})

	t.Run("disabled scheduler only cancels", func(t *testing.T) {
		scheduler := &fakeScheduler{}
		alerts := NewSubscriptionAlertScheduler(scheduler, fixedClock{dateAt(2026, time.March, 1)}, false)

		alerts.Reschedule(ctx, template)

		if len(scheduler.scheduled) != 0 {
			t.Errorf("expected nothing scheduled when disabled, got %d", len(scheduler.scheduled))
		}
	})
}
