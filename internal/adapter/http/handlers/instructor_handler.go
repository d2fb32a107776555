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

var errInvalidInstructorPayload = pkg.NewDomainErrorSimple("INVALID_INSTRUTOR_INPUT", "Payload de instrutor inválido", http.StatusBadRequest)

// InstructorHandler manages payee profiles keyed by matricula.

type InstructorHandler struct {
	usecase usecase.IInstructorUseCase
}

func NewInstructorHandler(uc usecase.IInstructorUseCase) *InstructorHandler {
	return &InstructorHandler{usecase: uc}
}

// List returns active instructors.
//
// @Summary      Lista instrutores
// @Tags         instrutores
// @Produce      json
// @Success      200  {object}  response.Envelope
// @Router       /instructors [get]
func (h *InstructorHandler) List(c *gin.Context) {
	actor, ok := requireSessionUser(c)
	if !ok {
		return
	}

	instructors, err := h.usecase.List(c.Request.Context(), actor)
	if err != nil {
		appErr := mapInstructorError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToEnvelope())
		return
	}
	c.JSON(http.StatusOK, response.OK(instructors))
}

// GetByMatricula returns one active instructor profile.
//
// @Summary      Busca instrutor
// @Tags         instrutores
// @Produce      json
// @Param        matricula  path  string  true  "Matrícula"
// @Success      200  {object}  response.Envelope
// @Failure      404  {object}  map[string]any
// @Router       /instructors/by-matricula/{matricula} [get]
func (h *InstructorHandler) GetByMatricula(c *gin.Context) {
	actor, ok := requireSessionUser(c)
	if !ok {
		return
	}

	instructor, err := h.usecase.GetByMatricula(c.Request.Context(), actor, c.Param("matricula"))
	if err != nil {
		appErr := mapInstructorError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToEnvelope())
		return
	}
	c.JSON(http.StatusOK, response.OK(instructor))
}

// Create registers a new instructor profile.
//
// @Summary      Cria instrutor
// @Tags         instrutores
// @Accept       json
// @Produce      json
// @Param        payload  body  request.CreateInstructorRequest  true  "Instrutor"
// @Success      201  {object}  response.Envelope
// @Failure      409  {object}  map[string]any
// @Router       /instructors [post]
func (h *InstructorHandler) Create(c *gin.Context) {
	actor, ok := requireSessionUser(c)
	if !ok {
		return
	}

	var payload request.CreateInstructorRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidInstructorPayload.HTTPStatus, errInvalidInstructorPayload.ToEnvelope())
		return
	}

	instructor, err := h.usecase.Create(c.Request.Context(), actor, payload.ToInput())
	if err != nil {
		appErr := mapInstructorError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToEnvelope())
		return
	}
	c.JSON(http.StatusCreated, response.OK(instructor))
}

// Update edits an instructor profile.
//
// @Summary      Atualiza instrutor
// @Tags         instrutores
// @Accept       json
// @Produce      json
// @Param        id  path  string                           true  "Matrícula do instrutor"
// @Param        payload    body  request.UpdateInstructorRequest  true  "Instrutor"
// @Success      200  {object}  response.Envelope
// @Router       /instructors/{id} [put]
func (h *InstructorHandler) Update(c *gin.Context) {
	actor, ok := requireSessionUser(c)
	if !ok {
		return
	}

	var payload request.UpdateInstructorRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidInstructorPayload.HTTPStatus, errInvalidInstructorPayload.ToEnvelope())
		return
	}

	instructor, err := h.usecase.Update(c.Request.Context(), actor, c.Param("id"), payload.ToInput())
	if err != nil {
		appErr := mapInstructorError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToEnvelope())
		return
	}
	c.JSON(http.StatusOK, response.OK(instructor))
}

func mapInstructorError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInstrutorCamposObrigatorios):
		return pkg.NewDomainErrorSimple("INVALID_INSTRUTOR_INPUT", "Payload de instrutor inválido", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrAcessoNegado):
		return pkg.NewDomainErrorSimple("ACESSO_NEGADO", "Acesso negado", http.StatusForbidden)
	case errors.Is(err, usecase.ErrMatriculaJaCadastrada):
		return pkg.NewDomainErrorSimple("MATRICULA_JA_CADASTRADA", "Matrícula já cadastrada", http.StatusConflict)
	case errors.Is(err, usecase.ErrInstrutorNaoEncontrado):
		return pkg.NewDomainErrorSimple("INSTRUTOR_NAO_ENCONTRADO", "Instrutor não encontrado", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "Erro interno", err, http.StatusInternalServerError)
	}
}
