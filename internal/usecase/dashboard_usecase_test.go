package usecase

import (
	"context"
	"fmt"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/giordanomadjo-lab/sisgped/internal/domain/entities"
	"github.com/giordanomadjo-lab/sisgped/internal/usecase/interfaces"
	mock_interfaces "github.com/giordanomadjo-lab/sisgped/internal/usecase/interfaces/mocks"
)

func TestDashboardUseCase_Stats_Scoping(t *testing.T) {
	t.Run("instructor sees only their own numbers", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		records := mock_interfaces.NewMockIServiceRecordRepository(ctrl)
		uc := NewDashboardUseCase(records)

		records.EXPECT().List(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, f interfaces.ServiceRecordFilter) ([]entities.ServiceRecord, error) {
				if f.MatriculaExact != testInstrutor.Matricula {
					t.Fatalf("expected scoped filter, got %+v", f)
				}
				if f.Mes != 3 || f.Ano != 2026 {
					t.Fatalf("expected period filter, got mes=%d ano=%d", f.Mes, f.Ano)
				}
				return nil, nil
			})

		if _, err := uc.Stats(context.Background(), testInstrutor, 3, 2026); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("gestor sees the whole period", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		records := mock_interfaces.NewMockIServiceRecordRepository(ctrl)
		uc := NewDashboardUseCase(records)

		records.EXPECT().List(gomock.Any(), interfaces.ServiceRecordFilter{Mes: 0, Ano: 2026}).Return(nil, nil)

		if _, err := uc.Stats(context.Background(), testGestor, 0, 2026); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestAggregateStats(t *testing.T) {
	records := []entities.ServiceRecord{
		{MatriculaInstrutor: "INST-01", NomeInstrutor: "Maria", Status: entities.StatusAprovado, TipoDemanda: entities.TipoDemandaConsultoria, DuracaoHoras: 2.5, ValorCalculado: 130},
		{MatriculaInstrutor: "INST-01", NomeInstrutor: "Maria", Status: entities.StatusPago, TipoDemanda: entities.TipoDemandaConsultoria, DuracaoHoras: 1, ValorCalculado: 52},
		{MatriculaInstrutor: "INST-02", NomeInstrutor: "João", Status: entities.StatusPendente, TipoDemanda: entities.TipoDemandaDEP, DuracaoHoras: 3},
		{MatriculaInstrutor: "INST-03", NomeInstrutor: "Ana", Status: entities.StatusRejeitado, TipoDemanda: entities.TipoDemandaDEP, DuracaoHoras: 1.5},
	}

	stats := aggregateStats(records)

	t.Run("totals", func(t *testing.T) {
		got := stats.Stats
		if got.Total != 4 || got.Pendentes != 1 || got.Aprovados != 1 || got.Rejeitados != 1 || got.Pagos != 1 {
			t.Fatalf("unexpected status totals: %+v", got)
		}
		if got.Consultorias != 2 || got.DemandasDEP != 2 {
			t.Fatalf("unexpected type totals: %+v", got)
		}
		if got.TotalHoras != 8 {
			t.Fatalf("expected 8 total hours, got %v", got.TotalHoras)
		}
		if got.TotalValorConsultoria != 182 {
			t.Fatalf("expected 182 consultoria value, got %v", got.TotalValorConsultoria)
		}
	})

	t.Run("per-instructor rollup sorts by volume then matricula", func(t *testing.T) {
		if len(stats.PorInstrutor) != 3 {
			t.Fatalf("expected 3 instructors, got %d", len(stats.PorInstrutor))
		}
		if stats.PorInstrutor[0].MatriculaInstrutor != "INST-01" || stats.PorInstrutor[0].TotalServicos != 2 {
			t.Fatalf("unexpected leader: %+v", stats.PorInstrutor[0])
		}
		// INST-02 and INST-03 tie on volume; matricula breaks the tie.
		if stats.PorInstrutor[1].MatriculaInstrutor != "INST-02" || stats.PorInstrutor[2].MatriculaInstrutor != "INST-03" {
			t.Fatalf("unexpected tiebreak order: %+v", stats.PorInstrutor)
		}
		if stats.PorInstrutor[0].TotalValor != 182 || stats.PorInstrutor[0].TotalHoras != 3.5 {
			t.Fatalf("unexpected leader rollup: %+v", stats.PorInstrutor[0])
		}
	})

	t.Run("same matricula with distinct nome rolls up separately", func(t *testing.T) {
		renamed := aggregateStats([]entities.ServiceRecord{
			{MatriculaInstrutor: "INST-01", NomeInstrutor: "Maria", DuracaoHoras: 1, Status: entities.StatusPendente, TipoDemanda: entities.TipoDemandaDEP},
			{MatriculaInstrutor: "INST-01", NomeInstrutor: "Maria Souza", DuracaoHoras: 2, Status: entities.StatusPendente, TipoDemanda: entities.TipoDemandaDEP},
		})
		if len(renamed.PorInstrutor) != 2 {
			t.Fatalf("expected one row per (matricula, nome) pair, got %d", len(renamed.PorInstrutor))
		}
		// Equal volume and matricula; nome breaks the tie.
		if renamed.PorInstrutor[0].NomeInstrutor != "Maria" || renamed.PorInstrutor[1].NomeInstrutor != "Maria Souza" {
			t.Fatalf("unexpected order: %+v", renamed.PorInstrutor)
		}
	})

	t.Run("per-type rollup", func(t *testing.T) {
		if len(stats.PorTipo) != 2 {
			t.Fatalf("expected 2 types, got %d", len(stats.PorTipo))
		}
		// CONSULTORIA sorts before DEP.
		if stats.PorTipo[0].TipoDemanda != entities.TipoDemandaConsultoria || stats.PorTipo[0].Total != 2 {
			t.Fatalf("unexpected first type: %+v", stats.PorTipo[0])
		}
		if stats.PorTipo[1].TipoDemanda != entities.TipoDemandaDEP || stats.PorTipo[1].TotalHoras != 4.5 {
			t.Fatalf("unexpected second type: %+v", stats.PorTipo[1])
		}
	})

	t.Run("top list caps at ten", func(t *testing.T) {
		var many []entities.ServiceRecord
		for i := 0; i < 15; i++ {
			many = append(many, entities.ServiceRecord{
				MatriculaInstrutor: fmt.Sprintf("INST-%02d", i),
				TipoDemanda:        entities.TipoDemandaDEP,
				Status:             entities.StatusPendente,
			})
		}
		got := aggregateStats(many)
		if len(got.PorInstrutor) != dashboardTopInstrutores {
			t.Fatalf("expected top %d, got %d", dashboardTopInstrutores, len(got.PorInstrutor))
		}
	})

	t.Run("recentes keeps the newest five", func(t *testing.T) {
		var many []entities.ServiceRecord
		for i := 0; i < 8; i++ {
			many = append(many, entities.ServiceRecord{ID: fmt.Sprintf("svc-%d", i)})
		}
		got := aggregateStats(many)
		if len(got.Recentes) != dashboardRecentes {
			t.Fatalf("expected %d recentes, got %d", dashboardRecentes, len(got.Recentes))
		}
		if got.Recentes[0].ID != "svc-0" {
			t.Fatalf("expected input order preserved, got %q first", got.Recentes[0].ID)
		}
	})

	t.Run("empty set", func(t *testing.T) {
		got := aggregateStats(nil)
		if got.Stats.Total != 0 || len(got.PorInstrutor) != 0 || len(got.Recentes) != 0 {
			t.Fatalf("expected empty aggregation, got %+v", got)
		}
	})
}
