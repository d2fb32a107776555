package usecase

import (
	"context"
	"math"
	"sort"

	"github.com/giordanomadjo-lab/sisgped/internal/domain/entities"
	"github.com/giordanomadjo-lab/sisgped/internal/usecase/interfaces"
)

const (
	dashboardTopInstrutores = 10
	dashboardRecentes       = 5
)

type DashboardTotals struct {
	Total                 int     `json:"total"`
	Pendentes             int     `json:"pendentes"`
	Aprovados             int     `json:"aprovados"`
	Rejeitados            int     `json:"rejeitados"`
	Pagos                 int     `json:"pagos"`
	Consultorias          int     `json:"consultorias"`
	DemandasDEP           int     `json:"demandas_dep"`
	TotalHoras            float64 `json:"total_horas"`
	TotalValorConsultoria float64 `json:"total_valor_consultoria"`
}

type InstrutorRollup struct {
	MatriculaInstrutor string  `json:"matricula_instrutor"`
	NomeInstrutor      string  `json:"nome_instrutor"`
	TotalServicos      int     `json:"total_servicos"`
	TotalHoras         float64 `json:"total_horas"`
	TotalValor         float64 `json:"total_valor"`
}

type TipoRollup struct {
	TipoDemanda entities.TipoDemanda `json:"tipo_demanda"`
	Total       int                  `json:"total"`
	TotalHoras  float64              `json:"total_horas"`
}

type DashboardStats struct {
	Stats        DashboardTotals          `json:"stats"`
	PorInstrutor []InstrutorRollup        `json:"por_instrutor"`
	PorTipo      []TipoRollup             `json:"por_tipo"`
	Recentes     []entities.ServiceRecord `json:"recentes"`
}

// IDashboardUseCase computes the dashboard rollups. Every call recomputes
// from the live record set; there is no cache or materialized view.

type IDashboardUseCase interface {
	Stats(ctx context.Context, actor entities.SessionUser, mes, ano int) (DashboardStats, error)
}

type DashboardUseCase struct {
	records interfaces.IServiceRecordRepository
}

var _ IDashboardUseCase = (*DashboardUseCase)(nil)

func NewDashboardUseCase(records interfaces.IServiceRecordRepository) *DashboardUseCase {
	return &DashboardUseCase{records: records}
}

func (u *DashboardUseCase) Stats(ctx context.Context, actor entities.SessionUser, mes, ano int) (DashboardStats, error) {
	filter := interfaces.ServiceRecordFilter{Mes: mes, Ano: ano}
	if !actor.IsGestor() {
		filter.MatriculaExact = actor.Matricula
	}

	records, err := u.records.List(ctx, filter)
	if err != nil {
		return DashboardStats{}, err
	}
	return aggregateStats(records), nil
}

// aggregateStats folds a record set into the dashboard shape. Records are
// expected newest-first, as the repository returns them.
func aggregateStats(records []entities.ServiceRecord) DashboardStats {
	var totals DashboardTotals
	type instrutorKey struct {
		matricula, nome string
	}
	porInstrutor := map[instrutorKey]*InstrutorRollup{}
	porTipo := map[entities.TipoDemanda]*TipoRollup{}

	var horas, valorConsultoria float64
	for _, r := range records {
		totals.Total++
		switch r.Status {
		case entities.StatusPendente:
			totals.Pendentes++
		case entities.StatusAprovado:
			totals.Aprovados++
		case entities.StatusRejeitado:
			totals.Rejeitados++
		case entities.StatusPago:
			totals.Pagos++
		}
		switch r.TipoDemanda {
		case entities.TipoDemandaConsultoria:
			totals.Consultorias++
			valorConsultoria += r.ValorCalculado
		case entities.TipoDemandaDEP:
			totals.DemandasDEP++
		}
		horas += r.DuracaoHoras

		key := instrutorKey{matricula: r.MatriculaInstrutor, nome: r.NomeInstrutor}
		roll, ok := porInstrutor[key]
		if !ok {
			roll = &InstrutorRollup{MatriculaInstrutor: r.MatriculaInstrutor, NomeInstrutor: r.NomeInstrutor}
			porInstrutor[key] = roll
		}
		roll.TotalServicos++
		roll.TotalHoras += r.DuracaoHoras
		roll.TotalValor += r.ValorCalculado

		tipo, ok := porTipo[r.TipoDemanda]
		if !ok {
			tipo = &TipoRollup{TipoDemanda: r.TipoDemanda}
			porTipo[r.TipoDemanda] = tipo
		}
		tipo.Total++
		tipo.TotalHoras += r.DuracaoHoras
	}

	totals.TotalHoras = round2(horas)
	totals.TotalValorConsultoria = round2(valorConsultoria)

	instrutores := make([]InstrutorRollup, 0, len(porInstrutor))
	for _, roll := range porInstrutor {
		roll.TotalHoras = round2(roll.TotalHoras)
		roll.TotalValor = round2(roll.TotalValor)
		instrutores = append(instrutores, *roll)
	}
	sort.SliceStable(instrutores, func(i, j int) bool {
		if instrutores[i].TotalServicos != instrutores[j].TotalServicos {
			return instrutores[i].TotalServicos > instrutores[j].TotalServicos
		}
		if instrutores[i].MatriculaInstrutor != instrutores[j].MatriculaInstrutor {
			return instrutores[i].MatriculaInstrutor < instrutores[j].MatriculaInstrutor
		}
		return instrutores[i].NomeInstrutor < instrutores[j].NomeInstrutor
	})
	if len(instrutores) > dashboardTopInstrutores {
		instrutores = instrutores[:dashboardTopInstrutores]
	}

	tipos := make([]TipoRollup, 0, len(porTipo))
	for _, roll := range porTipo {
		roll.TotalHoras = round2(roll.TotalHoras)
		tipos = append(tipos, *roll)
	}
	sort.Slice(tipos, func(i, j int) bool { return tipos[i].TipoDemanda < tipos[j].TipoDemanda })

	recentes := records
	if len(recentes) > dashboardRecentes {
		recentes = recentes[:dashboardRecentes]
	}

	return DashboardStats{
		Stats:        totals,
		PorInstrutor: instrutores,
		PorTipo:      tipos,
		Recentes:     recentes,
	}
}

// round2 is display rounding only; stored values keep full precision.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
