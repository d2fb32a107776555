package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/giordanomadjo-lab/sisgped/internal/usecase"
	"github.com/giordanomadjo-lab/sisgped/pkg"
)

// ExportHandler streams the filtered record set as a CSV attachment.

type ExportHandler struct {
	usecase usecase.IExportUseCase
}

func NewExportHandler(uc usecase.IExportUseCase) *ExportHandler {
	return &ExportHandler{usecase: uc}
}

// ExportCSV renders and downloads the CSV document.
//
// @Summary      Exporta serviços em CSV
// @Tags         servicos
// @Produce      text/csv
// @Param        status        query  string  false  "PENDENTE, APROVADO, REJEITADO ou PAGO"
// @Param        tipo_demanda  query  string  false  "CONSULTORIA ou DEP"
// @Param        matricula     query  string  false  "Busca por matrícula (gestor)"
// @Param        data_inicio   query  string  false  "YYYY-MM-DD inclusivo"
// @Param        data_fim      query  string  false  "YYYY-MM-DD inclusivo"
// @Param        mes           query  int     false  "Mês (1-12)"
// @Param        ano           query  int     false  "Ano (quatro dígitos)"
// @Success      200  {string}  string  "CSV"
// @Router       /export/csv [get]
func (h *ExportHandler) ExportCSV(c *gin.Context) {
	actor, ok := requireSessionUser(c)
	if !ok {
		return
	}

	in := usecase.ExportInput{
		Status:      c.Query("status"),
		TipoDemanda: c.Query("tipo_demanda"),
		Matricula:   c.Query("matricula"),
		DataInicio:  c.Query("data_inicio"),
		DataFim:     c.Query("data_fim"),
		Mes:         queryInt(c, "mes"),
		Ano:         queryInt(c, "ano"),
	}

	doc, err := h.usecase.ExportCSV(c.Request.Context(), actor, in)
	if err != nil {
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "Erro interno", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToEnvelope())
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+usecase.ExportFileName(time.Now())+`"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", doc)
}
