package persistence

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/pockets-tracker/backend/internal/application/adapter"
	"github.com/pockets-tracker/backend/internal/domain/entity"
	"github.com/pockets-tracker/backend/internal/integration/persistence/model"
)

// notificationRepository implements the adapter.NotificationScheduler interface.
type notificationRepository struct {
	db *gorm.DB
}

// NewNotificationRepository creates a new notification repository instance.
func NewNotificationRepository(db *gorm.DB) adapter.NotificationQueueRepository {
	return &notificationRepository{
		db: db,
	}
}

// Schedule queues a notification, replacing any pending one with the same id.
func (r *notificationRepository) Schedule(ctx context.Context, notification *entity.ScheduledNotification) error {
	notificationModel := model.ScheduledNotificationFromEntity(notification)
	result := r.db.WithContext(ctx).Save(notificationModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// Cancel removes pending notifications whose id matches exactly or starts
// with the given prefix.
func (r *notificationRepository) Cancel(ctx context.Context, idOrPrefix string) error {
	result := r.db.WithContext(ctx).
		Where("id = ? OR id LIKE ?", idOrPrefix, idOrPrefix+"%").
		Where("status = ?", string(entity.NotificationPending)).
		Delete(&model.ScheduledNotificationModel{})
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// Pending returns notifications that have not been delivered yet, soonest first.
func (r *notificationRepository) Pending(ctx context.Context) ([]*entity.ScheduledNotification, error) {
	var notificationModels []model.ScheduledNotificationModel
	result := r.db.WithContext(ctx).
		Where("status = ?", string(entity.NotificationPending)).
		Order("fire_at ASC").
		Find(&notificationModels)
	if result.Error != nil {
		return nil, result.Error
	}

	notifications := make([]*entity.ScheduledNotification, len(notificationModels))
	for i, nm := range notificationModels {
		notifications[i] = nm.ToEntity()
	}
	return notifications, nil
}

// Update persists delivery bookkeeping changes made by the worker.
func (r *notificationRepository) Update(ctx context.Context, notification *entity.ScheduledNotification) error {
	notificationModel := model.ScheduledNotificationFromEntity(notification)
	result := r.db.WithContext(ctx).Save(notificationModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// Due returns pending notifications whose fire time has passed.
func (r *notificationRepository) Due(ctx context.Context, now time.Time) ([]*entity.ScheduledNotification, error) {
	var notificationModels []model.ScheduledNotificationModel
	result := r.db.WithContext(ctx).
		Where("status = ?", string(entity.NotificationPending)).
		Where("fire_at <= ?", now).
		Order("fire_at ASC").
		Find(&notificationModels)
	if result.Error != nil {
		return nil, result.Error
	}

	notifications := make([]*entity.ScheduledNotification, len(notificationModels))
	for i, nm := range notificationModels {
		notifications[i] = nm.ToEntity()
	}
	return notifications, nil
}
