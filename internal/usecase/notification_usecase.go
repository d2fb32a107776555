package usecase

import (
	"context"

	"github.com/giordanomadjo-lab/sisgped/internal/domain/entities"
	"github.com/giordanomadjo-lab/sisgped/internal/usecase/interfaces"
)

const defaultNotificationLimit = 20

// INotificationUseCase serves the per-user notification feed. Rows are
// created exclusively by the service-record lifecycle; here they are only
// listed and marked read.

type INotificationUseCase interface {
	List(ctx context.Context, actor entities.SessionUser, lida *bool, limit int) ([]entities.Notification, int, error)
	MarkRead(ctx context.Context, actor entities.SessionUser, id string) error
	MarkAllRead(ctx context.Context, actor entities.SessionUser) error
	UnreadCount(ctx context.Context, actor entities.SessionUser) (int, error)
}

type NotificationUseCase struct {
	notifications interfaces.INotificationRepository
}

var _ INotificationUseCase = (*NotificationUseCase)(nil)

func NewNotificationUseCase(notifications interfaces.INotificationRepository) *NotificationUseCase {
	return &NotificationUseCase{notifications: notifications}
}

func (u *NotificationUseCase) List(ctx context.Context, actor entities.SessionUser, lida *bool, limit int) ([]entities.Notification, int, error) {
	if limit < 1 {
		limit = defaultNotificationLimit
	}
	items, err := u.notifications.ListByUser(ctx, actor.ID, lida, limit)
	if err != nil {
		return nil, 0, err
	}
	unread, err := u.notifications.CountUnread(ctx, actor.ID)
	if err != nil {
		return nil, 0, err
	}
	return items, unread, nil
}

func (u *NotificationUseCase) MarkRead(ctx context.Context, actor entities.SessionUser, id string) error {
	return u.notifications.MarkRead(ctx, id, actor.ID)
}

func (u *NotificationUseCase) MarkAllRead(ctx context.Context, actor entities.SessionUser) error {
	return u.notifications.MarkAllRead(ctx, actor.ID)
}

func (u *NotificationUseCase) UnreadCount(ctx context.Context, actor entities.SessionUser) (int, error) {
	return u.notifications.CountUnread(ctx, actor.ID)
}
