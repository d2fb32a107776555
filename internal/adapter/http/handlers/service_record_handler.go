package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/giordanomadjo-lab/sisgped/internal/adapter/http/dto/request"
	"github.com/giordanomadjo-lab/sisgped/internal/adapter/http/dto/response"
	"github.com/giordanomadjo-lab/sisgped/internal/domain/entities"
	"github.com/giordanomadjo-lab/sisgped/internal/usecase"
	"github.com/giordanomadjo-lab/sisgped/pkg"
)

var errInvalidServicePayload = pkg.NewDomainErrorSimple("INVALID_SERVICO_INPUT", "Payload de serviço inválido", http.StatusBadRequest)

// ServiceRecordHandler is the submission and review surface for service
// records.

type ServiceRecordHandler struct {
	usecase usecase.IServiceRecordUseCase
}

func NewServiceRecordHandler(uc usecase.IServiceRecordUseCase) *ServiceRecordHandler {
	return &ServiceRecordHandler{usecase: uc}
}

// Create logs a new service as PENDENTE.
//
// @Summary      Registra serviço
// @Tags         servicos
// @Accept       json
// @Produce      json
// @Param        payload  body  request.CreateServiceRequest  true  "Serviço"
// @Success      201  {object}  response.Envelope
// @Failure      400  {object}  map[string]any
// @Router       /services [post]
func (h *ServiceRecordHandler) Create(c *gin.Context) {
	actor, ok := requireSessionUser(c)
	if !ok {
		return
	}

	var payload request.CreateServiceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidServicePayload.HTTPStatus, errInvalidServicePayload.ToEnvelope())
		return
	}

	record, err := h.usecase.Create(c.Request.Context(), actor, payload.ToInput())
	if err != nil {
		appErr := mapServiceRecordError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToEnvelope())
		return
	}
	c.JSON(http.StatusCreated, response.OK(record))
}

// List returns the caller-scoped, filtered, paginated record set.
//
// @Summary      Lista serviços
// @Tags         servicos
// @Produce      json
// @Param        status        query  string  false  "PENDENTE, APROVADO, REJEITADO ou PAGO"
// @Param        tipo_demanda  query  string  false  "CONSULTORIA ou DEP"
// @Param        matricula     query  string  false  "Busca por matrícula (gestor)"
// @Param        data_inicio   query  string  false  "YYYY-MM-DD inclusivo"
// @Param        data_fim      query  string  false  "YYYY-MM-DD inclusivo"
// @Param        page          query  int     false  "Página (1-based)"
// @Param        limit         query  int     false  "Itens por página (máx. 100)"
// @Success      200  {object}  response.Envelope
// @Router       /services [get]
func (h *ServiceRecordHandler) List(c *gin.Context) {
	actor, ok := requireSessionUser(c)
	if !ok {
		return
	}

	in := usecase.ListServicesInput{
		Status:      c.Query("status"),
		TipoDemanda: c.Query("tipo_demanda"),
		Matricula:   c.Query("matricula"),
		DataInicio:  c.Query("data_inicio"),
		DataFim:     c.Query("data_fim"),
		Page:        queryInt(c, "page"),
		Limit:       queryInt(c, "limit"),
	}

	records, pagination, err := h.usecase.List(c.Request.Context(), actor, in)
	if err != nil {
		appErr := mapServiceRecordError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToEnvelope())
		return
	}
	c.JSON(http.StatusOK, response.OKPaginated(records, pagination))
}

// GetByID returns one record visible to the caller.
//
// @Summary      Busca serviço
// @Tags         servicos
// @Produce      json
// @Param        id  path  string  true  "ID do serviço"
// @Success      200  {object}  response.Envelope
// @Failure      404  {object}  map[string]any
// @Router       /services/{id} [get]
func (h *ServiceRecordHandler) GetByID(c *gin.Context) {
	actor, ok := requireSessionUser(c)
	if !ok {
		return
	}

	record, err := h.usecase.GetByID(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		appErr := mapServiceRecordError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToEnvelope())
		return
	}
	c.JSON(http.StatusOK, response.OK(record))
}

// Update edits a record that is still PENDENTE.
//
// @Summary      Atualiza serviço
// @Tags         servicos
// @Accept       json
// @Produce      json
// @Param        id       path  string                        true  "ID do serviço"
// @Param        payload  body  request.UpdateServiceRequest  true  "Serviço"
// @Success      200  {object}  response.Envelope
// @Failure      409  {object}  map[string]any
// @Router       /services/{id} [put]
func (h *ServiceRecordHandler) Update(c *gin.Context) {
	actor, ok := requireSessionUser(c)
	if !ok {
		return
	}

	var payload request.UpdateServiceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidServicePayload.HTTPStatus, errInvalidServicePayload.ToEnvelope())
		return
	}

	record, err := h.usecase.Update(c.Request.Context(), actor, c.Param("id"), payload.ToInput())
	if err != nil {
		appErr := mapServiceRecordError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToEnvelope())
		return
	}
	c.JSON(http.StatusOK, response.OK(record))
}

// Delete removes a record that is still PENDENTE.
//
// @Summary      Remove serviço
// @Tags         servicos
// @Produce      json
// @Param        id  path  string  true  "ID do serviço"
// @Success      200  {object}  response.Envelope
// @Failure      409  {object}  map[string]any
// @Router       /services/{id} [delete]
func (h *ServiceRecordHandler) Delete(c *gin.Context) {
	actor, ok := requireSessionUser(c)
	if !ok {
		return
	}

	if err := h.usecase.Delete(c.Request.Context(), actor, c.Param("id")); err != nil {
		appErr := mapServiceRecordError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToEnvelope())
		return
	}
	c.JSON(http.StatusOK, response.OKMessage("Serviço removido"))
}

// UpdateStatus moves a record through the review workflow.
//
// @Summary      Altera status do serviço
// @Tags         servicos
// @Accept       json
// @Produce      json
// @Param        id       path  string                              true  "ID do serviço"
// @Param        payload  body  request.UpdateServiceStatusRequest  true  "Novo status"
// @Success      200  {object}  response.Envelope
// @Failure      409  {object}  map[string]any
// @Router       /services/{id}/status [patch]
func (h *ServiceRecordHandler) UpdateStatus(c *gin.Context) {
	actor, ok := requireSessionUser(c)
	if !ok {
		return
	}

	var payload request.UpdateServiceStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidServicePayload.HTTPStatus, errInvalidServicePayload.ToEnvelope())
		return
	}

	record, err := h.usecase.UpdateStatus(c.Request.Context(), actor, c.Param("id"),
		entities.ServiceStatus(payload.Status), payload.ObservacoesGestor)
	if err != nil {
		appErr := mapServiceRecordError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToEnvelope())
		return
	}
	c.JSON(http.StatusOK, response.OK(record))
}

func queryInt(c *gin.Context, key string) int {
	v, err := strconv.Atoi(c.Query(key))
	if err != nil {
		return 0
	}
	return v
}

func mapServiceRecordError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrServicoCamposObrigatorios),
		errors.Is(err, usecase.ErrTipoDemandaInvalido),
		errors.Is(err, usecase.ErrHoraFimAntesInicio):
		return pkg.NewDomainError("INVALID_SERVICO_INPUT", err.Error(), err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrAcessoNegado):
		return pkg.NewDomainErrorSimple("ACESSO_NEGADO", "Acesso negado", http.StatusForbidden)
	case errors.Is(err, usecase.ErrServicoNaoEncontrado):
		return pkg.NewDomainErrorSimple("SERVICO_NAO_ENCONTRADO", "Serviço não encontrado", http.StatusNotFound)
	case errors.Is(err, usecase.ErrSomentePendente):
		return pkg.NewDomainErrorSimple("SOMENTE_PENDENTE", "Apenas serviços pendentes podem ser alterados", http.StatusConflict)
	case errors.Is(err, usecase.ErrStatusInvalido):
		return pkg.NewDomainErrorSimple("STATUS_INVALIDO", "Status inválido", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrTransicaoInvalida):
		return pkg.NewDomainErrorSimple("TRANSICAO_INVALIDA", "Transição de status não permitida", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "Erro interno", err, http.StatusInternalServerError)
	}
}
