package entities

import "time"

// Perfil is the access profile of a login account.
//
// The values are persisted as-is; the frontend and the seed data both rely on
// the uppercase Portuguese names.

type Perfil string

const (
	PerfilInstrutor Perfil = "INSTRUTOR"
	PerfilGestor    Perfil = "GESTOR"
)

func (p Perfil) IsValid() bool {
	return p == PerfilInstrutor || p == PerfilGestor
}

// User is a login account.
//
// Storage model (DynamoDB):
//   - PK: id
//   - email uniqueness is enforced through a companion guard item written in
//     the same transaction (see the user repository).
//
// Matricula links an INSTRUTOR account to its Instructor payee profile. The
// link is a plain string on purpose: service records are scoped by matricula,
// never by a relational reference.
type User struct {
	ID           string     `json:"id"`
	Nome         string     `json:"nome"`
	Email        string     `json:"email"`
	SenhaHash    string     `json:"-"`
	Perfil       Perfil     `json:"perfil"`
	Matricula    string     `json:"matricula,omitempty"`
	Ativo        bool       `json:"ativo"`
	UltimoAcesso *time.Time `json:"ultimo_acesso,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// SessionUser is the resolved identity of an authenticated caller.
//
// It is built once per request from the session cookie and passed explicitly
// into every use case; nothing below the HTTP boundary reads ambient request
// state.
type SessionUser struct {
	ID        string `json:"id"`
	Nome      string `json:"nome"`
	Email     string `json:"email"`
	Perfil    Perfil `json:"perfil"`
	Matricula string `json:"matricula,omitempty"`
}

func (u SessionUser) IsGestor() bool {
	return u.Perfil == PerfilGestor
}
