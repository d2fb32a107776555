package request

import (
	"github.com/giordanomadjo-lab/sisgped/internal/domain/entities"
	"github.com/giordanomadjo-lab/sisgped/internal/usecase"
)

type CreateUserRequest struct {
	Nome      string `json:"nome" binding:"required"`
	Email     string `json:"email" binding:"required"`
	Senha     string `json:"senha" binding:"required"`
	Perfil    string `json:"perfil" binding:"required"`
	Matricula string `json:"matricula"`
}

func (r CreateUserRequest) ToInput() usecase.CreateUserInput {
	return usecase.CreateUserInput{
		Nome:      r.Nome,
		Email:     r.Email,
		Senha:     r.Senha,
		Perfil:    entities.Perfil(r.Perfil),
		Matricula: r.Matricula,
	}
}

type UpdateUserRequest struct {
	Nome      string `json:"nome" binding:"required"`
	Email     string `json:"email" binding:"required"`
	Perfil    string `json:"perfil" binding:"required"`
	Matricula string `json:"matricula"`
	Ativo     *bool  `json:"ativo"`
	Senha     string `json:"senha"`
}

func (r UpdateUserRequest) ToInput() usecase.UpdateUserInput {
	return usecase.UpdateUserInput{
		Nome:      r.Nome,
		Email:     r.Email,
		Perfil:    entities.Perfil(r.Perfil),
		Matricula: r.Matricula,
		Ativo:     r.Ativo,
		Senha:     r.Senha,
	}
}
