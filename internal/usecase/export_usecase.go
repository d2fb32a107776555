package usecase

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/giordanomadjo-lab/sisgped/internal/domain/entities"
	"github.com/giordanomadjo-lab/sisgped/internal/usecase/interfaces"
)

// csvHeader is a byte-exact contract with the spreadsheet consumers; do not
// reorder or rename columns.
var csvHeader = []string{
	"ID",
	"Matrícula",
	"Nome Instrutor",
	"Data Serviço",
	"Hora Início",
	"Hora Fim",
	"Duração (h)",
	"Tipo Demanda",
	"Tipo Serviço",
	"Descrição da Atividade",
	"Valor Hora-Aula (R$)",
	"Adicional (%)",
	"Valor Calculado (R$)",
	"Status",
	"Observações",
	"Obs. Gestor",
	"Criado em",
}

// utf8BOM keeps Excel from misreading the accented headers.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

type ExportInput struct {
	Status      string
	TipoDemanda string
	Matricula   string
	DataInicio  string
	DataFim     string
	Mes         int
	Ano         int
}

// IExportUseCase renders the scoped, filtered record set as a CSV document.
// Unlike the listing, the export is never paginated.

type IExportUseCase interface {
	ExportCSV(ctx context.Context, actor entities.SessionUser, in ExportInput) ([]byte, error)
}

type ExportUseCase struct {
	records interfaces.IServiceRecordRepository
	types   interfaces.IServiceTypeRepository
}

var _ IExportUseCase = (*ExportUseCase)(nil)

func NewExportUseCase(records interfaces.IServiceRecordRepository, types interfaces.IServiceTypeRepository) *ExportUseCase {
	return &ExportUseCase{records: records, types: types}
}

// ExportFileName builds the attachment name for an export generated on the
// given date.
func ExportFileName(date time.Time) string {
	return fmt.Sprintf("servicos_pedagogicos_%s.csv", date.Format("2006-01-02"))
}

func (u *ExportUseCase) ExportCSV(ctx context.Context, actor entities.SessionUser, in ExportInput) ([]byte, error) {
	filter := interfaces.ServiceRecordFilter{
		Status:      entities.ServiceStatus(in.Status),
		TipoDemanda: entities.TipoDemanda(in.TipoDemanda),
		DataInicio:  in.DataInicio,
		DataFim:     in.DataFim,
		Mes:         in.Mes,
		Ano:         in.Ano,
	}
	if actor.IsGestor() {
		filter.MatriculaContains = strings.TrimSpace(in.Matricula)
	} else {
		filter.MatriculaExact = actor.Matricula
	}

	records, err := u.records.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	typeNames := map[string]string{}
	if all, err := u.types.List(ctx, ""); err == nil {
		for _, st := range all {
			typeNames[st.ID] = st.Nome
		}
	}

	var buf bytes.Buffer
	buf.Write(utf8BOM)
	w := csv.NewWriter(&buf)
	w.UseCRLF = true

	if err := w.Write(csvHeader); err != nil {
		return nil, err
	}
	for _, r := range records {
		row := []string{
			r.ID,
			r.MatriculaInstrutor,
			r.NomeInstrutor,
			r.DataServico,
			r.HoraInicio,
			r.HoraFim,
			formatHours(r.DuracaoHoras),
			string(r.TipoDemanda),
			typeNames[r.ServiceTypeID],
			r.DescricaoAtividade,
			formatMoney(r.ValorHoraAula),
			formatHours(r.ValorAdicionalPercentual),
			formatMoney(r.ValorCalculado),
			string(r.Status),
			r.Observacoes,
			r.ObservacoesGestor,
			r.CreatedAt.Format("2006-01-02 15:04:05"),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func formatMoney(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

func formatHours(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
