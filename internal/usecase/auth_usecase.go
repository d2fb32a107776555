package usecase

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"log"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/giordanomadjo-lab/sisgped/internal/domain/entities"
	"github.com/giordanomadjo-lab/sisgped/internal/usecase/interfaces"
)

var (
	ErrCredenciaisInvalidas    = errors.New("email ou senha incorretos")
	ErrUsuarioInativo          = errors.New("usuario inativo")
	ErrLoginCamposObrigatorios = errors.New("email e senha sao obrigatorios")

	// ErrAcessoNegado is shared by every use case that gates an action on the
	// caller's profile. Non-managers attempting manager-only actions fail
	// closed with it.
	ErrAcessoNegado = errors.New("acesso negado")
)

// IAuthUseCase owns the session lifecycle.
//
// ResolveSession maps an unknown, expired, or inactive-user session to
// (nil, nil) — "no identity" — never to an error. The HTTP middleware decides
// what anonymous means per route.

type IAuthUseCase interface {
	Login(ctx context.Context, email, senha string) (entities.SessionUser, string, error)
	Logout(ctx context.Context, sessionID string) error
	ResolveSession(ctx context.Context, sessionID string) (*entities.SessionUser, error)
}

type AuthUseCase struct {
	sessions interfaces.ISessionRepository
	users    interfaces.IUserRepository
}

var _ IAuthUseCase = (*AuthUseCase)(nil)

func NewAuthUseCase(sessions interfaces.ISessionRepository, users interfaces.IUserRepository) *AuthUseCase {
	return &AuthUseCase{sessions: sessions, users: users}
}

func (u *AuthUseCase) Login(ctx context.Context, email, senha string) (entities.SessionUser, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || senha == "" {
		return entities.SessionUser{}, "", ErrLoginCamposObrigatorios
	}

	user, err := u.users.GetByEmail(ctx, email)
	if err != nil {
		return entities.SessionUser{}, "", err
	}
	if user.ID == "" {
		return entities.SessionUser{}, "", ErrCredenciaisInvalidas
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.SenhaHash), []byte(senha)); err != nil {
		return entities.SessionUser{}, "", ErrCredenciaisInvalidas
	}
	if !user.Ativo {
		return entities.SessionUser{}, "", ErrUsuarioInativo
	}

	token, err := newSessionToken()
	if err != nil {
		return entities.SessionUser{}, "", err
	}
	now := time.Now().UTC()
	session := entities.Session{
		ID:        token,
		UserID:    user.ID,
		ExpiresAt: now.Add(entities.SessionTTL),
		CreatedAt: now,
	}
	if _, err := u.sessions.Create(ctx, session); err != nil {
		return entities.SessionUser{}, "", err
	}

	// Best effort; a failed timestamp write must not fail the login.
	if err := u.users.UpdateUltimoAcesso(ctx, user.ID); err != nil {
		log.Printf("[auth][usecase] ultimo_acesso update failed user_id=%s err=%v", user.ID, err)
	}

	return sessionUserFrom(user), token, nil
}

func (u *AuthUseCase) Logout(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil
	}
	return u.sessions.Delete(ctx, sessionID)
}

func (u *AuthUseCase) ResolveSession(ctx context.Context, sessionID string) (*entities.SessionUser, error) {
	if sessionID == "" {
		return nil, nil
	}

	session, err := u.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.ID == "" || session.Expired(time.Now().UTC()) {
		return nil, nil
	}

	user, err := u.users.GetByID(ctx, session.UserID)
	if err != nil {
		return nil, err
	}
	if user.ID == "" || !user.Ativo {
		return nil, nil
	}

	su := sessionUserFrom(user)
	return &su, nil
}

func sessionUserFrom(user entities.User) entities.SessionUser {
	return entities.SessionUser{
		ID:        user.ID,
		Nome:      user.Nome,
		Email:     user.Email,
		Perfil:    user.Perfil,
		Matricula: user.Matricula,
	}
}

func newSessionToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
