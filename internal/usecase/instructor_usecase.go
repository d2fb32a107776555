package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/giordanomadjo-lab/sisgped/internal/domain/entities"
	"github.com/giordanomadjo-lab/sisgped/internal/usecase/interfaces"
)

var (
	ErrInstrutorNaoEncontrado      = errors.New("instrutor nao encontrado")
	ErrMatriculaJaCadastrada       = errors.New("matricula ja cadastrada")
	ErrInstrutorCamposObrigatorios = errors.New("matricula e nome sao obrigatorios")
)

type CreateInstructorInput struct {
	Matricula     string
	Nome          string
	Email         string
	ValorHoraAula float64
}

type UpdateInstructorInput struct {
	Nome          string
	Email         string
	ValorHoraAula float64
}

// IInstructorUseCase manages payee profiles. Creation and edits are
// manager-only; reads are available to any authenticated caller because the
// submission form resolves the caller's own profile to snapshot the rate.

type IInstructorUseCase interface {
	List(ctx context.Context, actor entities.SessionUser) ([]entities.Instructor, error)
	GetByMatricula(ctx context.Context, actor entities.SessionUser, matricula string) (entities.Instructor, error)
	Create(ctx context.Context, actor entities.SessionUser, in CreateInstructorInput) (entities.Instructor, error)
	Update(ctx context.Context, actor entities.SessionUser, matricula string, in UpdateInstructorInput) (entities.Instructor, error)
}

type InstructorUseCase struct {
	instructors interfaces.IInstructorRepository
}

var _ IInstructorUseCase = (*InstructorUseCase)(nil)

func NewInstructorUseCase(instructors interfaces.IInstructorRepository) *InstructorUseCase {
	return &InstructorUseCase{instructors: instructors}
}

func (u *InstructorUseCase) List(ctx context.Context, actor entities.SessionUser) ([]entities.Instructor, error) {
	return u.instructors.List(ctx)
}

func (u *InstructorUseCase) GetByMatricula(ctx context.Context, actor entities.SessionUser, matricula string) (entities.Instructor, error) {
	matricula = strings.TrimSpace(matricula)
	if matricula == "" {
		return entities.Instructor{}, ErrInstrutorNaoEncontrado
	}
	instructor, err := u.instructors.GetByMatricula(ctx, matricula)
	if err != nil {
		return entities.Instructor{}, err
	}
	if instructor.Matricula == "" || !instructor.Ativo {
		return entities.Instructor{}, ErrInstrutorNaoEncontrado
	}
	return instructor, nil
}

func (u *InstructorUseCase) Create(ctx context.Context, actor entities.SessionUser, in CreateInstructorInput) (entities.Instructor, error) {
	if !actor.IsGestor() {
		return entities.Instructor{}, ErrAcessoNegado
	}

	in.Matricula = strings.TrimSpace(in.Matricula)
	in.Nome = strings.TrimSpace(in.Nome)
	if in.Matricula == "" || in.Nome == "" {
		return entities.Instructor{}, ErrInstrutorCamposObrigatorios
	}

	now := time.Now().UTC()
	instructor := entities.Instructor{
		Matricula:     in.Matricula,
		Nome:          in.Nome,
		Email:         strings.TrimSpace(in.Email),
		ValorHoraAula: in.ValorHoraAula,
		Ativo:         true,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	created, err := u.instructors.Create(ctx, instructor)
	if errors.Is(err, interfaces.ErrDuplicateKey) {
		return entities.Instructor{}, ErrMatriculaJaCadastrada
	}
	if err != nil {
		return entities.Instructor{}, err
	}
	return created, nil
}

func (u *InstructorUseCase) Update(ctx context.Context, actor entities.SessionUser, matricula string, in UpdateInstructorInput) (entities.Instructor, error) {
	if !actor.IsGestor() {
		return entities.Instructor{}, ErrAcessoNegado
	}

	current, err := u.instructors.GetByMatricula(ctx, strings.TrimSpace(matricula))
	if err != nil {
		return entities.Instructor{}, err
	}
	if current.Matricula == "" {
		return entities.Instructor{}, ErrInstrutorNaoEncontrado
	}

	if nome := strings.TrimSpace(in.Nome); nome != "" {
		current.Nome = nome
	}
	current.Email = strings.TrimSpace(in.Email)
	current.ValorHoraAula = in.ValorHoraAula
	current.UpdatedAt = time.Now().UTC()

	return u.instructors.Update(ctx, current)
}
