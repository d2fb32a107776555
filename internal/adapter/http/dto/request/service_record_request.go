package request

import (
	"github.com/giordanomadjo-lab/sisgped/internal/domain/entities"
	"github.com/giordanomadjo-lab/sisgped/internal/usecase"
)

// CreateServiceRequest carries the submission form. MatriculaInstrutor is
// only honored for managers; for instructors the use case pins it to the
// session regardless of what the payload says.
type CreateServiceRequest struct {
	MatriculaInstrutor string  `json:"matricula_instrutor"`
	NomeInstrutor      string  `json:"nome_instrutor"`
	DataServico        string  `json:"data_servico" binding:"required"`
	HoraInicio         string  `json:"hora_inicio" binding:"required"`
	HoraFim            string  `json:"hora_fim" binding:"required"`
	DescricaoAtividade string  `json:"descricao_atividade" binding:"required"`
	TipoDemanda        string  `json:"tipo_demanda" binding:"required"`
	ServiceTypeID      string  `json:"service_type_id"`
	ValorHoraAula      float64 `json:"valor_hora_aula"`
	Observacoes        string  `json:"observacoes"`
}

func (r CreateServiceRequest) ToInput() usecase.CreateServiceInput {
	return usecase.CreateServiceInput{
		MatriculaInstrutor: r.MatriculaInstrutor,
		NomeInstrutor:      r.NomeInstrutor,
		DataServico:        r.DataServico,
		HoraInicio:         r.HoraInicio,
		HoraFim:            r.HoraFim,
		DescricaoAtividade: r.DescricaoAtividade,
		TipoDemanda:        entities.TipoDemanda(r.TipoDemanda),
		ServiceTypeID:      r.ServiceTypeID,
		ValorHoraAula:      r.ValorHoraAula,
		Observacoes:        r.Observacoes,
	}
}

type UpdateServiceRequest struct {
	NomeInstrutor      string  `json:"nome_instrutor"`
	DataServico        string  `json:"data_servico" binding:"required"`
	HoraInicio         string  `json:"hora_inicio" binding:"required"`
	HoraFim            string  `json:"hora_fim" binding:"required"`
	DescricaoAtividade string  `json:"descricao_atividade" binding:"required"`
	TipoDemanda        string  `json:"tipo_demanda" binding:"required"`
	ServiceTypeID      string  `json:"service_type_id"`
	ValorHoraAula      float64 `json:"valor_hora_aula"`
	Observacoes        string  `json:"observacoes"`
}

func (r UpdateServiceRequest) ToInput() usecase.UpdateServiceInput {
	return usecase.UpdateServiceInput{
		NomeInstrutor:      r.NomeInstrutor,
		DataServico:        r.DataServico,
		HoraInicio:         r.HoraInicio,
		HoraFim:            r.HoraFim,
		DescricaoAtividade: r.DescricaoAtividade,
		TipoDemanda:        entities.TipoDemanda(r.TipoDemanda),
		ServiceTypeID:      r.ServiceTypeID,
		ValorHoraAula:      r.ValorHoraAula,
		Observacoes:        r.Observacoes,
	}
}

type UpdateServiceStatusRequest struct {
	Status            string `json:"status" binding:"required"`
	ObservacoesGestor string `json:"observacoes_gestor"`
}
