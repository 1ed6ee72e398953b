package notify

import (
	"context"
	"testing"
	"time"

	"github.com/pockets-tracker/backend/internal/domain/entity"
)

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time { return c.now }

type fakeQueue struct {
	notifications []*entity.ScheduledNotification
	updates       int
}

func (q *fakeQueue) Schedule(ctx context.Context, n *entity.ScheduledNotification) error {
	q.notifications = append(q.notifications, n)
	return nil
}

func (q *fakeQueue) Cancel(ctx context.Context, idOrPrefix string) error { return nil }

func (q *fakeQueue) Pending(ctx context.Context) ([]*entity.ScheduledNotification, error) {
	var pending []*entity.ScheduledNotification
	for _, n := range q.notifications {
		if n.Status == entity.NotificationPending {
			pending = append(pending, n)
		}
	}
	return pending, nil
}

func (q *fakeQueue) Due(ctx context.Context, now time.Time) ([]*entity.ScheduledNotification, error) {
	var due []*entity.ScheduledNotification
	for _, n := range q.notifications {
		if n.Status == entity.NotificationPending && !n.FireAt.After(now) {
			due = append(due, n)
		}
	}
	return due, nil
}

func (q *fakeQueue) Update(ctx context.Context, n *entity.ScheduledNotification) error {
	q.updates++
	return nil
}

func testWorkerConfig() WorkerConfig {
	return WorkerConfig{PollInterval: time.Minute, MaxAttempts: 3}
}

func TestWorkerProcessNow(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, time.March, 15, 9, 0, 0, 0, time.UTC)

	t.Run("delivers a due one-shot notification", func(t *testing.T) {
		queue := &fakeQueue{}
		n := entity.NewScheduledNotification("budgetAlert", "Budget Alert", "80%", now.Add(-time.Minute), entity.RepeatNone)
		_ = queue.Schedule(ctx, n)

		sender := NewMockAlertSender()
		worker := NewWorker(queue, sender, fixedClock{now}, testWorkerConfig())
		worker.ProcessNow(ctx)

		if len(sender.SentAlerts) != 1 {
			t.Fatalf("expected 1 delivered alert, got %d", len(sender.SentAlerts))
		}
		if sender.SentAlerts[0].Title != "Budget Alert" {
			t.Errorf("unexpected title %q", sender.SentAlerts[0].Title)
		}
		if n.Status != entity.NotificationSent {
			t.Errorf("expected status %q, got %q", entity.NotificationSent, n.Status)
		}
		if queue.updates != 1 {
			t.Errorf("expected outcome recorded once, got %d updates", queue.updates)
		}
	})

	t.Run("leaves future notifications alone", func(t *testing.T) {
		queue := &fakeQueue{}
		n := entity.NewScheduledNotification("budgetAlert", "Budget Alert", "80%", now.Add(time.Hour), entity.RepeatNone)
		_ = queue.Schedule(ctx, n)

		sender := NewMockAlertSender()
		NewWorker(queue, sender, fixedClock{now}, testWorkerConfig()).ProcessNow(ctx)

		if len(sender.SentAlerts) != 0 {
			t.Errorf("expected nothing delivered, got %d", len(sender.SentAlerts))
		}
		if n.Status != entity.NotificationPending {
			t.Errorf("expected notification still pending, got %q", n.Status)
		}
	})

	t.Run("re-arms a monthly notification after delivery", func(t *testing.T) {
		queue := &fakeQueue{}
		fireAt := now.Add(-time.Minute)
		n := entity.NewScheduledNotification("subscription_x", "Subscription Due Today", "Netflix", fireAt, entity.RepeatMonthly)
		_ = queue.Schedule(ctx, n)

		NewWorker(queue, NewMockAlertSender(), fixedClock{now}, testWorkerConfig()).ProcessNow(ctx)

		if n.Status != entity.NotificationPending {
			t.Fatalf("expected monthly notification back to pending, got %q", n.Status)
		}
		if !n.FireAt.Equal(fireAt.AddDate(0, 1, 0)) {
			t.Errorf("expected fire time advanced one month, got %v", n.FireAt)
		}
	})

	t.Run("permanent failure gives up immediately", func(t *testing.T) {
		queue := &fakeQueue{}
		n := entity.NewScheduledNotification("budgetAlert", "Budget Alert", "80%", now.Add(-time.Minute), entity.RepeatNone)
		_ = queue.Schedule(ctx, n)

		sender := NewMockAlertSender()
		sender.ShouldFail = true
		sender.IsPermanent = true

		NewWorker(queue, sender, fixedClock{now}, testWorkerConfig()).ProcessNow(ctx)

		if n.Status != entity.NotificationFailed {
			t.Errorf("expected status %q after a permanent failure, got %q", entity.NotificationFailed, n.Status)
		}
	})

	t.Run("transient failure retries until attempts run out", func(t *testing.T) {
		queue := &fakeQueue{}
		n := entity.NewScheduledNotification("budgetAlert", "Budget Alert", "80%", now.Add(-time.Minute), entity.RepeatNone)
		_ = queue.Schedule(ctx, n)

		sender := NewMockAlertSender()
		sender.ShouldFail = true
		worker := NewWorker(queue, sender, fixedClock{now}, testWorkerConfig())

		worker.ProcessNow(ctx)
		if n.Status != entity.NotificationPending {
			t.Fatalf("expected retry after first transient failure, got %q", n.Status)
		}

		worker.ProcessNow(ctx)
		worker.ProcessNow(ctx)
		if n.Status != entity.NotificationFailed {
			t.Errorf("expected status %q after exhausting retries, got %q", entity.NotificationFailed, n.Status)
		}
		if n.Attempts != 3 {
			t.Errorf("expected 3 attempts, got %d", n.Attempts)
		}

		// A failed notification never comes back.
		sender.ShouldFail = false
		worker.ProcessNow(ctx)
		if len(sender.SentAlerts) != 0 {
			t.Error("expected a failed notification to stay out of the queue")
		}
	})
}
