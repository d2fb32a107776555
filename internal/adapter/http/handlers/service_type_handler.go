package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/giordanomadjo-lab/sisgped/internal/adapter/http/dto/response"
	"github.com/giordanomadjo-lab/sisgped/internal/domain/entities"
	"github.com/giordanomadjo-lab/sisgped/internal/usecase"
	"github.com/giordanomadjo-lab/sisgped/pkg"
)

// ServiceTypeHandler serves the activity-type catalog.

type ServiceTypeHandler struct {
	usecase usecase.IServiceTypeUseCase
}

func NewServiceTypeHandler(uc usecase.IServiceTypeUseCase) *ServiceTypeHandler {
	return &ServiceTypeHandler{usecase: uc}
}

// List returns active types, optionally filtered by category.
//
// @Summary      Lista tipos de serviço
// @Tags         tipos-servico
// @Produce      json
// @Param        categoria  query  string  false  "CONSULTORIA ou DEP"
// @Success      200  {object}  response.Envelope
// @Router       /service-types [get]
func (h *ServiceTypeHandler) List(c *gin.Context) {
	actor, ok := requireSessionUser(c)
	if !ok {
		return
	}

	types, err := h.usecase.List(c.Request.Context(), actor, entities.TipoDemanda(c.Query("categoria")))
	if err != nil {
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "Erro interno", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToEnvelope())
		return
	}
	c.JSON(http.StatusOK, response.OK(types))
}
