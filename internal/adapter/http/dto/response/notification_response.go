package response

import "github.com/giordanomadjo-lab/sisgped/internal/domain/entities"

type NotificationListResponse struct {
	Notificacoes []entities.Notification `json:"notificacoes"`
	UnreadCount  int                     `json:"unread_count"`
}

type UnreadCountResponse struct {
	UnreadCount int `json:"unread_count"`
}
