package usecase

import (
	"bytes"
	"context"
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/giordanomadjo-lab/sisgped/internal/domain/entities"
	"github.com/giordanomadjo-lab/sisgped/internal/usecase/interfaces"
	mock_interfaces "github.com/giordanomadjo-lab/sisgped/internal/usecase/interfaces/mocks"
)

func newExportUseCaseForTest(t *testing.T) (*ExportUseCase, *mock_interfaces.MockIServiceRecordRepository, *mock_interfaces.MockIServiceTypeRepository) {
	ctrl := gomock.NewController(t)
	records := mock_interfaces.NewMockIServiceRecordRepository(ctrl)
	types := mock_interfaces.NewMockIServiceTypeRepository(ctrl)
	return NewExportUseCase(records, types), records, types
}

func TestExportFileName(t *testing.T) {
	date := time.Date(2026, 3, 10, 15, 4, 5, 0, time.UTC)
	if got := ExportFileName(date); got != "servicos_pedagogicos_2026-03-10.csv" {
		t.Fatalf("unexpected file name %q", got)
	}
}

func TestExportUseCase_ExportCSV(t *testing.T) {
	record := entities.ServiceRecord{
		ID:                       "svc-1",
		MatriculaInstrutor:       "INST-01",
		NomeInstrutor:            "Maria",
		DataServico:              "2026-03-10",
		HoraInicio:               "08:00",
		HoraFim:                  "10:30",
		DuracaoHoras:             2.5,
		TipoDemanda:              entities.TipoDemandaConsultoria,
		ServiceTypeID:            "st-1",
		DescricaoAtividade:       "Mentoria de projeto",
		ValorHoraAula:            40,
		ValorAdicionalPercentual: 30,
		ValorCalculado:           130,
		Status:                   entities.StatusAprovado,
		Observacoes:              "turma noturna",
		ObservacoesGestor:        "ok",
		CreatedAt:                time.Date(2026, 3, 10, 18, 30, 0, 0, time.UTC),
	}

	t.Run("document shape", func(t *testing.T) {
		uc, records, types := newExportUseCaseForTest(t)
		records.EXPECT().List(gomock.Any(), gomock.Any()).Return([]entities.ServiceRecord{record}, nil)
		types.EXPECT().List(gomock.Any(), entities.TipoDemanda("")).Return([]entities.ServiceType{
			{ID: "st-1", Nome: "Mentoria Técnica"},
		}, nil)

		doc, err := uc.ExportCSV(context.Background(), testGestor, ExportInput{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !bytes.HasPrefix(doc, []byte{0xEF, 0xBB, 0xBF}) {
			t.Fatal("expected UTF-8 BOM prefix")
		}
		if !bytes.Contains(doc, []byte("\r\n")) {
			t.Fatal("expected CRLF line endings")
		}

		reader := csv.NewReader(bytes.NewReader(doc[3:]))
		rows, err := reader.ReadAll()
		if err != nil {
			t.Fatalf("document does not parse as CSV: %v", err)
		}
		if len(rows) != 2 {
			t.Fatalf("expected header plus one row, got %d rows", len(rows))
		}

		header := rows[0]
		if len(header) != 17 {
			t.Fatalf("expected 17 columns, got %d", len(header))
		}
		if header[0] != "ID" || header[1] != "Matrícula" || header[16] != "Criado em" {
			t.Fatalf("unexpected header: %v", header)
		}

		row := rows[1]
		if row[0] != "svc-1" || row[6] != "2.5" || row[8] != "Mentoria Técnica" {
			t.Fatalf("unexpected row: %v", row)
		}
		if row[10] != "40.00" || row[12] != "130.00" {
			t.Fatalf("expected two-decimal money columns, got %q / %q", row[10], row[12])
		}
		if row[16] != "2026-03-10 18:30:00" {
			t.Fatalf("unexpected timestamp: %q", row[16])
		}
	})

	t.Run("commas and quotes survive a round trip", func(t *testing.T) {
		uc, records, types := newExportUseCaseForTest(t)
		tricky := record
		tricky.DescricaoAtividade = `Mentoria, revisão "final" do TCC`
		tricky.Observacoes = "pauta: dúvidas, exercícios"
		records.EXPECT().List(gomock.Any(), gomock.Any()).Return([]entities.ServiceRecord{tricky}, nil)
		types.EXPECT().List(gomock.Any(), entities.TipoDemanda("")).Return(nil, nil)

		doc, err := uc.ExportCSV(context.Background(), testGestor, ExportInput{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		rows, err := csv.NewReader(bytes.NewReader(doc[3:])).ReadAll()
		if err != nil {
			t.Fatalf("document does not parse as CSV: %v", err)
		}
		if len(rows) != 2 {
			t.Fatalf("expected header plus one row, got %d rows", len(rows))
		}
		row := rows[1]
		if row[9] != tricky.DescricaoAtividade {
			t.Fatalf("description did not round-trip: %q", row[9])
		}
		if row[14] != tricky.Observacoes {
			t.Fatalf("observacoes did not round-trip: %q", row[14])
		}
	})

	t.Run("instructor export is scoped", func(t *testing.T) {
		uc, records, types := newExportUseCaseForTest(t)
		records.EXPECT().List(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, f interfaces.ServiceRecordFilter) ([]entities.ServiceRecord, error) {
				if f.MatriculaExact != testInstrutor.Matricula {
					t.Fatalf("expected scoped export, got %+v", f)
				}
				return nil, nil
			})
		types.EXPECT().List(gomock.Any(), entities.TipoDemanda("")).Return(nil, nil)

		doc, err := uc.ExportCSV(context.Background(), testInstrutor, ExportInput{Matricula: "INST-99"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		// Header only, but still a valid document.
		if got := strings.Count(string(doc), "\r\n"); got != 1 {
			t.Fatalf("expected a single header line, got %d lines", got)
		}
	})

	t.Run("period filters are forwarded", func(t *testing.T) {
		uc, records, types := newExportUseCaseForTest(t)
		records.EXPECT().List(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, f interfaces.ServiceRecordFilter) ([]entities.ServiceRecord, error) {
				if f.Mes != 3 || f.Ano != 2026 || f.Status != entities.StatusAprovado {
					t.Fatalf("unexpected filter: %+v", f)
				}
				return nil, nil
			})
		types.EXPECT().List(gomock.Any(), entities.TipoDemanda("")).Return(nil, nil)

		_, err := uc.ExportCSV(context.Background(), testGestor, ExportInput{Status: "APROVADO", Mes: 3, Ano: 2026})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
