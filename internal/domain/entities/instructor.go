package entities

import "time"

// Instructor is a payee profile, independent of login capability.
//
// Storage model (DynamoDB):
//   - PK: matricula
//
// We purposely use the matricula as PK: a conditional put is then the
// authority for matricula uniqueness, with no check-then-insert race.
//
// ValorHoraAula is copied into each service record at write time; editing it
// here never touches historical records.
type Instructor struct {
	Matricula     string    `json:"matricula"`
	Nome          string    `json:"nome"`
	Email         string    `json:"email,omitempty"`
	ValorHoraAula float64   `json:"valor_hora_aula"`
	Ativo         bool      `json:"ativo"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
