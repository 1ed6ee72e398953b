package entity

import (
	"testing"
	"time"
)

func TestScheduledNotificationMarkSent(t *testing.T) {
	fireAt := time.Date(2026, time.March, 5, 9, 0, 0, 0, time.UTC)
	now := time.Date(2026, time.March, 5, 9, 1, 0, 0, time.UTC)

	t.Run("one-shot notification becomes sent", func(t *testing.T) {
		n := NewScheduledNotification("budgetAlert", "Budget Alert", "80%", fireAt, RepeatNone)
		n.MarkSent(now)

		if n.Status != NotificationSent {
			t.Errorf("expected status %q, got %q", NotificationSent, n.Status)
		}
	})

	t.Run("monthly notification re-arms one month later", func(t *testing.T) {
		n := NewScheduledNotification("subscription_x", "Subscription Due Today", "Netflix", fireAt, RepeatMonthly)
		n.MarkSent(now)

		if n.Status != NotificationPending {
			t.Errorf("expected status %q, got %q", NotificationPending, n.Status)
		}
		expected := fireAt.AddDate(0, 1, 0)
		if !n.FireAt.Equal(expected) {
			t.Errorf("expected next fire at %v, got %v", expected, n.FireAt)
		}
	})

	t.Run("daily notification re-arms one day later", func(t *testing.T) {
		n := NewScheduledNotification("dailyExpenseReminder", "Log your expenses", "", fireAt, RepeatDaily)
		n.MarkSent(now)

		if n.Status != NotificationPending {
			t.Errorf("expected status %q, got %q", NotificationPending, n.Status)
		}
		expected := fireAt.AddDate(0, 0, 1)
		if !n.FireAt.Equal(expected) {
			t.Errorf("expected next fire at %v, got %v", expected, n.FireAt)
		}
	})

	t.Run("sending resets the attempt counter", func(t *testing.T) {
		n := NewScheduledNotification("budgetAlert", "Budget Alert", "80%", fireAt, RepeatNone)
		n.Attempts = 2
		n.MarkSent(now)

		if n.Attempts != 0 {
			t.Errorf("expected attempts reset to 0, got %d", n.Attempts)
		}
	})
}

func TestScheduledNotificationMarkFailed(t *testing.T) {
	fireAt := time.Date(2026, time.March, 5, 9, 0, 0, 0, time.UTC)
	now := fireAt.Add(time.Minute)

	n := NewScheduledNotification("budgetAlert", "Budget Alert", "80%", fireAt, RepeatNone)

	n.MarkFailed(now, 3)
	if n.Status != NotificationPending {
		t.Errorf("expected first failure to stay pending, got %q", n.Status)
	}

	n.MarkFailed(now, 3)
	n.MarkFailed(now, 3)
	if n.Status != NotificationFailed {
		t.Errorf("expected status %q after exhausting attempts, got %q", NotificationFailed, n.Status)
	}
	if n.Attempts != 3 {
		t.Errorf("expected 3 attempts, got %d", n.Attempts)
	}
}
