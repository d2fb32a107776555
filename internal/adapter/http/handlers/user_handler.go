package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/giordanomadjo-lab/sisgped/internal/adapter/http/dto/request"
	"github.com/giordanomadjo-lab/sisgped/internal/adapter/http/dto/response"
	"github.com/giordanomadjo-lab/sisgped/internal/usecase"
	"github.com/giordanomadjo-lab/sisgped/pkg"
)

var errInvalidUserPayload = pkg.NewDomainErrorSimple("INVALID_USER_INPUT", "Payload de usuário inválido", http.StatusBadRequest)

// UserHandler is the manager-only account administration surface.

type UserHandler struct {
	usecase usecase.IUserUseCase
}

func NewUserHandler(uc usecase.IUserUseCase) *UserHandler {
	return &UserHandler{usecase: uc}
}

// List returns every account.
//
// @Summary      Lista usuários
// @Tags         usuarios
// @Produce      json
// @Success      200  {object}  response.Envelope
// @Router       /auth/users [get]
func (h *UserHandler) List(c *gin.Context) {
	actor, ok := requireSessionUser(c)
	if !ok {
		return
	}

	users, err := h.usecase.List(c.Request.Context(), actor)
	if err != nil {
		appErr := mapUserError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToEnvelope())
		return
	}
	c.JSON(http.StatusOK, response.OK(users))
}

// Create registers a new account.
//
// @Summary      Cria usuário
// @Tags         usuarios
// @Accept       json
// @Produce      json
// @Param        payload  body  request.CreateUserRequest  true  "Usuário"
// @Success      201  {object}  response.Envelope
// @Router       /auth/users [post]
func (h *UserHandler) Create(c *gin.Context) {
	actor, ok := requireSessionUser(c)
	if !ok {
		return
	}

	var payload request.CreateUserRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidUserPayload.HTTPStatus, errInvalidUserPayload.ToEnvelope())
		return
	}

	user, err := h.usecase.Create(c.Request.Context(), actor, payload.ToInput())
	if err != nil {
		appErr := mapUserError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToEnvelope())
		return
	}
	c.JSON(http.StatusCreated, response.OK(user))
}

// Update edits an existing account.
//
// @Summary      Atualiza usuário
// @Tags         usuarios
// @Accept       json
// @Produce      json
// @Param        id       path  string                     true  "ID do usuário"
// @Param        payload  body  request.UpdateUserRequest  true  "Usuário"
// @Success      200  {object}  response.Envelope
// @Router       /auth/users/{id} [put]
func (h *UserHandler) Update(c *gin.Context) {
	actor, ok := requireSessionUser(c)
	if !ok {
		return
	}

	var payload request.UpdateUserRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidUserPayload.HTTPStatus, errInvalidUserPayload.ToEnvelope())
		return
	}

	user, err := h.usecase.Update(c.Request.Context(), actor, c.Param("id"), payload.ToInput())
	if err != nil {
		appErr := mapUserError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToEnvelope())
		return
	}
	c.JSON(http.StatusOK, response.OK(user))
}

func mapUserError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrUsuarioCamposObrigatorios), errors.Is(err, usecase.ErrPerfilInvalido):
		return pkg.NewDomainErrorSimple("INVALID_USER_INPUT", "Payload de usuário inválido", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrAcessoNegado):
		return pkg.NewDomainErrorSimple("ACESSO_NEGADO", "Acesso negado", http.StatusForbidden)
	case errors.Is(err, usecase.ErrEmailJaCadastrado):
		return pkg.NewDomainErrorSimple("EMAIL_JA_CADASTRADO", "Email já cadastrado", http.StatusConflict)
	case errors.Is(err, usecase.ErrUsuarioNaoEncontrado):
		return pkg.NewDomainErrorSimple("USUARIO_NAO_ENCONTRADO", "Usuário não encontrado", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "Erro interno", err, http.StatusInternalServerError)
	}
}
