package entities

import "time"

// TipoDemanda is the demand category of a logged service.
//
// CONSULTORIA is paid consulting work (hourly rate plus the 30% markup);
// DEP is internal departmental work and never generates payment.

type TipoDemanda string

const (
	TipoDemandaConsultoria TipoDemanda = "CONSULTORIA"
	TipoDemandaDEP         TipoDemanda = "DEP"
)

func (t TipoDemanda) IsValid() bool {
	return t == TipoDemandaConsultoria || t == TipoDemandaDEP
}

// ServiceStatus is the review state of a service record.

type ServiceStatus string

const (
	StatusPendente  ServiceStatus = "PENDENTE"
	StatusAprovado  ServiceStatus = "APROVADO"
	StatusRejeitado ServiceStatus = "REJEITADO"
	StatusPago      ServiceStatus = "PAGO"
)

func (s ServiceStatus) IsValid() bool {
	switch s {
	case StatusPendente, StatusAprovado, StatusRejeitado, StatusPago:
		return true
	}
	return false
}

// statusTransitions is the closed transition table of the review workflow.
// PAGO has no outgoing transition: payment is treated as final.
var statusTransitions = map[ServiceStatus][]ServiceStatus{
	StatusPendente:  {StatusAprovado, StatusRejeitado},
	StatusAprovado:  {StatusPago, StatusPendente},
	StatusRejeitado: {StatusPendente},
	StatusPago:      {},
}

// CanTransition reports whether the workflow allows moving from one status to
// another. Every status change must go through this table; there is no other
// path to mutate Status.
func CanTransition(from, to ServiceStatus) bool {
	for _, allowed := range statusTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

// ServiceRecord is one logged unit of pedagogical service.
//
// Storage model (DynamoDB):
//   - PK: id
//
// MatriculaInstrutor is a denormalized string, not a reference: together with
// NomeInstrutor, ValorHoraAula, ValorAdicionalPercentual and ValorCalculado it
// forms the write-time snapshot that keeps historical records immune to later
// instructor-profile edits.
type ServiceRecord struct {
	ID                       string        `json:"id"`
	MatriculaInstrutor       string        `json:"matricula_instrutor"`
	NomeInstrutor            string        `json:"nome_instrutor,omitempty"`
	DataServico              string        `json:"data_servico"`
	HoraInicio               string        `json:"hora_inicio"`
	HoraFim                  string        `json:"hora_fim"`
	DuracaoHoras             float64       `json:"duracao_horas"`
	DescricaoAtividade       string        `json:"descricao_atividade"`
	TipoDemanda              TipoDemanda   `json:"tipo_demanda"`
	ServiceTypeID            string        `json:"service_type_id,omitempty"`
	ValorHoraAula            float64       `json:"valor_hora_aula"`
	ValorAdicionalPercentual float64       `json:"valor_adicional_percentual"`
	ValorCalculado           float64       `json:"valor_calculado"`
	Status                   ServiceStatus `json:"status"`
	Observacoes              string        `json:"observacoes,omitempty"`
	ObservacoesGestor        string        `json:"observacoes_gestor,omitempty"`
	CreatedAt                time.Time     `json:"created_at"`
	UpdatedAt                time.Time     `json:"updated_at"`
}
