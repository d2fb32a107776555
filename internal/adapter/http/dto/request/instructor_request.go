package request

import "github.com/giordanomadjo-lab/sisgped/internal/usecase"

type CreateInstructorRequest struct {
	Matricula     string  `json:"matricula" binding:"required"`
	Nome          string  `json:"nome" binding:"required"`
	Email         string  `json:"email"`
	ValorHoraAula float64 `json:"valor_hora_aula"`
}

func (r CreateInstructorRequest) ToInput() usecase.CreateInstructorInput {
	return usecase.CreateInstructorInput{
		Matricula:     r.Matricula,
		Nome:          r.Nome,
		Email:         r.Email,
		ValorHoraAula: r.ValorHoraAula,
	}
}

type UpdateInstructorRequest struct {
	Nome          string  `json:"nome" binding:"required"`
	Email         string  `json:"email"`
	ValorHoraAula float64 `json:"valor_hora_aula"`
}

func (r UpdateInstructorRequest) ToInput() usecase.UpdateInstructorInput {
	return usecase.UpdateInstructorInput{
		Nome:          r.Nome,
		Email:         r.Email,
		ValorHoraAula: r.ValorHoraAula,
	}
}
