package entities

import "time"

// NotificationTipo is the severity of an in-app notification.

type NotificationTipo string

const (
	NotificationInfo    NotificationTipo = "INFO"
	NotificationSucesso NotificationTipo = "SUCESSO"
	NotificationAviso   NotificationTipo = "AVISO"
	NotificationErro    NotificationTipo = "ERRO"
)

// Notification is a persisted in-app message owned by exactly one user.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI (user_id-index): user_id, for the per-user feed
//
// Lida only ever flips false -> true; rows are never deleted.
type Notification struct {
	ID        string           `json:"id"`
	UserID    string           `json:"user_id"`
	Titulo    string           `json:"titulo"`
	Mensagem  string           `json:"mensagem"`
	Tipo      NotificationTipo `json:"tipo"`
	Link      string           `json:"link,omitempty"`
	ServiceID string           `json:"service_id,omitempty"`
	Lida      bool             `json:"lida"`
	CreatedAt time.Time        `json:"created_at"`
}
