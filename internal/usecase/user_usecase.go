package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/giordanomadjo-lab/sisgped/internal/domain/entities"
	"github.com/giordanomadjo-lab/sisgped/internal/usecase/interfaces"
)

var (
	ErrUsuarioNaoEncontrado      = errors.New("usuario nao encontrado")
	ErrEmailJaCadastrado         = errors.New("email ja cadastrado")
	ErrUsuarioCamposObrigatorios = errors.New("nome, email, senha e perfil sao obrigatorios")
	ErrPerfilInvalido            = errors.New("perfil invalido")
)

type CreateUserInput struct {
	Nome      string
	Email     string
	Senha     string
	Perfil    entities.Perfil
	Matricula string
}

type UpdateUserInput struct {
	Nome      string
	Email     string
	Perfil    entities.Perfil
	Matricula string
	Ativo     *bool
	Senha     string // optional; empty keeps the current hash
}

// IUserUseCase is the manager-only account administration surface. Accounts
// are deactivated, never deleted.

type IUserUseCase interface {
	List(ctx context.Context, actor entities.SessionUser) ([]entities.User, error)
	Create(ctx context.Context, actor entities.SessionUser, in CreateUserInput) (entities.User, error)
	Update(ctx context.Context, actor entities.SessionUser, id string, in UpdateUserInput) (entities.User, error)
}

type UserUseCase struct {
	users interfaces.IUserRepository
}

var _ IUserUseCase = (*UserUseCase)(nil)

func NewUserUseCase(users interfaces.IUserRepository) *UserUseCase {
	return &UserUseCase{users: users}
}

func (u *UserUseCase) List(ctx context.Context, actor entities.SessionUser) ([]entities.User, error) {
	if !actor.IsGestor() {
		return nil, ErrAcessoNegado
	}
	return u.users.List(ctx)
}

func (u *UserUseCase) Create(ctx context.Context, actor entities.SessionUser, in CreateUserInput) (entities.User, error) {
	if !actor.IsGestor() {
		return entities.User{}, ErrAcessoNegado
	}

	in.Nome = strings.TrimSpace(in.Nome)
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	if in.Nome == "" || in.Email == "" || in.Senha == "" || in.Perfil == "" {
		return entities.User{}, ErrUsuarioCamposObrigatorios
	}
	if !in.Perfil.IsValid() {
		return entities.User{}, ErrPerfilInvalido
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Senha), bcrypt.DefaultCost)
	if err != nil {
		return entities.User{}, err
	}

	now := time.Now().UTC()
	user := entities.User{
		ID:        uuid.NewString(),
		Nome:      in.Nome,
		Email:     in.Email,
		SenhaHash: string(hash),
		Perfil:    in.Perfil,
		Matricula: strings.TrimSpace(in.Matricula),
		Ativo:     true,
		CreatedAt: now,
		UpdatedAt: now,
	}

	created, err := u.users.Create(ctx, user)
	if errors.Is(err, interfaces.ErrDuplicateKey) {
		return entities.User{}, ErrEmailJaCadastrado
	}
	if err != nil {
		return entities.User{}, err
	}
	return created, nil
}

func (u *UserUseCase) Update(ctx context.Context, actor entities.SessionUser, id string, in UpdateUserInput) (entities.User, error) {
	if !actor.IsGestor() {
		return entities.User{}, ErrAcessoNegado
	}

	current, err := u.users.GetByID(ctx, id)
	if err != nil {
		return entities.User{}, err
	}
	if current.ID == "" {
		return entities.User{}, ErrUsuarioNaoEncontrado
	}

	previousEmail := current.Email
	if nome := strings.TrimSpace(in.Nome); nome != "" {
		current.Nome = nome
	}
	if email := strings.ToLower(strings.TrimSpace(in.Email)); email != "" {
		current.Email = email
	}
	if in.Perfil != "" {
		if !in.Perfil.IsValid() {
			return entities.User{}, ErrPerfilInvalido
		}
		current.Perfil = in.Perfil
	}
	current.Matricula = strings.TrimSpace(in.Matricula)
	if in.Ativo != nil {
		current.Ativo = *in.Ativo
	}
	if in.Senha != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(in.Senha), bcrypt.DefaultCost)
		if err != nil {
			return entities.User{}, err
		}
		current.SenhaHash = string(hash)
	}
	current.UpdatedAt = time.Now().UTC()

	updated, err := u.users.Update(ctx, current, previousEmail)
	if errors.Is(err, interfaces.ErrDuplicateKey) {
		return entities.User{}, ErrEmailJaCadastrado
	}
	if err != nil {
		return entities.User{}, err
	}
	return updated, nil
}
