package interfaces

import (
	"context"

	"github.com/giordanomadjo-lab/sisgped/internal/domain/entities"
)

// INotificationRepository abstracts DynamoDB persistence for the in-app
// notification feed. All reads and the read-flag writes are scoped by the
// owning user id; MarkRead against another user's row is a no-op.

type INotificationRepository interface {
	Create(ctx context.Context, n entities.Notification) (entities.Notification, error)
	ListByUser(ctx context.Context, userID string, lida *bool, limit int) ([]entities.Notification, error)
	MarkRead(ctx context.Context, id, userID string) error
	MarkAllRead(ctx context.Context, userID string) error
	CountUnread(ctx context.Context, userID string) (int, error)
}
