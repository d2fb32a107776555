package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/giordanomadjo-lab/sisgped/internal/adapter/http/dto/response"
	"github.com/giordanomadjo-lab/sisgped/internal/usecase"
	"github.com/giordanomadjo-lab/sisgped/pkg"
)

// DashboardHandler serves the aggregated overview.

type DashboardHandler struct {
	usecase usecase.IDashboardUseCase
}

func NewDashboardHandler(uc usecase.IDashboardUseCase) *DashboardHandler {
	return &DashboardHandler{usecase: uc}
}

// Stats returns totals, per-instructor and per-type rollups, and the most
// recent records, scoped to the caller.
//
// @Summary      Estatísticas do dashboard
// @Tags         dashboard
// @Produce      json
// @Param        mes  query  int  false  "Mês (1-12)"
// @Param        ano  query  int  false  "Ano (quatro dígitos)"
// @Success      200  {object}  response.Envelope
// @Router       /dashboard/stats [get]
func (h *DashboardHandler) Stats(c *gin.Context) {
	actor, ok := requireSessionUser(c)
	if !ok {
		return
	}

	stats, err := h.usecase.Stats(c.Request.Context(), actor, queryInt(c, "mes"), queryInt(c, "ano"))
	if err != nil {
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "Erro interno", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToEnvelope())
		return
	}
	c.JSON(http.StatusOK, response.OK(stats))
}
