package usecase

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/giordanomadjo-lab/sisgped/internal/domain/entities"
	mock_interfaces "github.com/giordanomadjo-lab/sisgped/internal/usecase/interfaces/mocks"
)

func newNotificationUseCaseForTest(t *testing.T) (*NotificationUseCase, *mock_interfaces.MockINotificationRepository) {
	ctrl := gomock.NewController(t)
	notifications := mock_interfaces.NewMockINotificationRepository(ctrl)
	return NewNotificationUseCase(notifications), notifications
}

func TestNotificationUseCase_List(t *testing.T) {
	t.Run("defaults the limit and reports unread", func(t *testing.T) {
		uc, notifications := newNotificationUseCaseForTest(t)

		notifications.EXPECT().ListByUser(gomock.Any(), testInstrutor.ID, nil, defaultNotificationLimit).
			Return([]entities.Notification{{ID: "n-1"}, {ID: "n-2"}}, nil)
		notifications.EXPECT().CountUnread(gomock.Any(), testInstrutor.ID).Return(5, nil)

		items, unread, err := uc.List(context.Background(), testInstrutor, nil, 0)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(items) != 2 || unread != 5 {
			t.Fatalf("expected 2 items and 5 unread, got %d/%d", len(items), unread)
		}
	})

	t.Run("unread filter is forwarded", func(t *testing.T) {
		uc, notifications := newNotificationUseCaseForTest(t)

		unreadOnly := false
		notifications.EXPECT().ListByUser(gomock.Any(), testInstrutor.ID, &unreadOnly, 5).Return(nil, nil)
		notifications.EXPECT().CountUnread(gomock.Any(), testInstrutor.ID).Return(0, nil)

		if _, _, err := uc.List(context.Background(), testInstrutor, &unreadOnly, 5); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("repository failure surfaces", func(t *testing.T) {
		uc, notifications := newNotificationUseCaseForTest(t)

		wantErr := errors.New("dynamo down")
		notifications.EXPECT().ListByUser(gomock.Any(), testInstrutor.ID, nil, defaultNotificationLimit).Return(nil, wantErr)

		if _, _, err := uc.List(context.Background(), testInstrutor, nil, 0); !errors.Is(err, wantErr) {
			t.Fatalf("expected repository error, got %v", err)
		}
	})
}

func TestNotificationUseCase_MarkRead(t *testing.T) {
	uc, notifications := newNotificationUseCaseForTest(t)

	// The caller's identity always rides along so a user cannot flip someone
	// else's rows.
	notifications.EXPECT().MarkRead(gomock.Any(), "n-1", testInstrutor.ID).Return(nil)

	if err := uc.MarkRead(context.Background(), testInstrutor, "n-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestNotificationUseCase_MarkAllRead(t *testing.T) {
	uc, notifications := newNotificationUseCaseForTest(t)
	notifications.EXPECT().MarkAllRead(gomock.Any(), testInstrutor.ID).Return(nil)

	if err := uc.MarkAllRead(context.Background(), testInstrutor); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestNotificationUseCase_UnreadCount(t *testing.T) {
	uc, notifications := newNotificationUseCaseForTest(t)
	notifications.EXPECT().CountUnread(gomock.Any(), testInstrutor.ID).Return(3, nil)

	count, err := uc.UnreadCount(context.Background(), testInstrutor)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if count != 3 {
		t.Fatalf("expected 3 unread, got %d", count)
	}
}
