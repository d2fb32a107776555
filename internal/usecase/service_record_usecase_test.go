package usecase

import (
	"context"
	"errors"
	"math"
	"strings"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/giordanomadjo-lab/sisgped/internal/domain/entities"
	"github.com/giordanomadjo-lab/sisgped/internal/usecase/interfaces"
	mock_interfaces "github.com/giordanomadjo-lab/sisgped/internal/usecase/interfaces/mocks"
)

var (
	testGestor = entities.SessionUser{ID: "u-gestor", Nome: "Gestor", Perfil: entities.PerfilGestor}

	testInstrutor = entities.SessionUser{
		ID:        "u-inst",
		Nome:      "Maria",
		Perfil:    entities.PerfilInstrutor,
		Matricula: "INST-01",
	}
)

type serviceRecordMocks struct {
	records       *mock_interfaces.MockIServiceRecordRepository
	types         *mock_interfaces.MockIServiceTypeRepository
	users         *mock_interfaces.MockIUserRepository
	notifications *mock_interfaces.MockINotificationRepository
}

func newServiceRecordUseCaseForTest(t *testing.T) (*ServiceRecordUseCase, serviceRecordMocks) {
	ctrl := gomock.NewController(t)
	m := serviceRecordMocks{
		records:       mock_interfaces.NewMockIServiceRecordRepository(ctrl),
		types:         mock_interfaces.NewMockIServiceTypeRepository(ctrl),
		users:         mock_interfaces.NewMockIUserRepository(ctrl),
		notifications: mock_interfaces.NewMockINotificationRepository(ctrl),
	}
	return NewServiceRecordUseCase(m.records, m.types, m.users, m.notifications), m
}

func validCreateInput() CreateServiceInput {
	return CreateServiceInput{
		MatriculaInstrutor: "INST-99",
		NomeInstrutor:      "Maria",
		DataServico:        "2026-03-10",
		HoraInicio:         "08:00",
		HoraFim:            "10:30",
		DescricaoAtividade: "Mentoria de projeto integrador",
		TipoDemanda:        entities.TipoDemandaConsultoria,
		ValorHoraAula:      40,
	}
}

func TestServiceRecordUseCase_Create_Validations(t *testing.T) {
	t.Run("missing required fields", func(t *testing.T) {
		uc, _ := newServiceRecordUseCaseForTest(t)
		in := validCreateInput()
		in.DataServico = ""
		_, err := uc.Create(context.Background(), testInstrutor, in)
		if !errors.Is(err, ErrServicoCamposObrigatorios) {
			t.Fatalf("expected ErrServicoCamposObrigatorios, got %v", err)
		}
	})

	t.Run("invalid demand type", func(t *testing.T) {
		uc, _ := newServiceRecordUseCaseForTest(t)
		in := validCreateInput()
		in.TipoDemanda = "FREELANCE"
		_, err := uc.Create(context.Background(), testInstrutor, in)
		if !errors.Is(err, ErrTipoDemandaInvalido) {
			t.Fatalf("expected ErrTipoDemandaInvalido, got %v", err)
		}
	})

	t.Run("end before start", func(t *testing.T) {
		uc, _ := newServiceRecordUseCaseForTest(t)
		in := validCreateInput()
		in.HoraInicio = "14:00"
		in.HoraFim = "13:00"
		_, err := uc.Create(context.Background(), testInstrutor, in)
		if !errors.Is(err, ErrHoraFimAntesInicio) {
			t.Fatalf("expected ErrHoraFimAntesInicio, got %v", err)
		}
	})

	t.Run("end equal to start", func(t *testing.T) {
		uc, _ := newServiceRecordUseCaseForTest(t)
		in := validCreateInput()
		in.HoraInicio = "14:00"
		in.HoraFim = "14:00"
		_, err := uc.Create(context.Background(), testInstrutor, in)
		if !errors.Is(err, ErrHoraFimAntesInicio) {
			t.Fatalf("expected ErrHoraFimAntesInicio, got %v", err)
		}
	})

	t.Run("instructor without matricula cannot log", func(t *testing.T) {
		uc, _ := newServiceRecordUseCaseForTest(t)
		actor := testInstrutor
		actor.Matricula = ""
		_, err := uc.Create(context.Background(), actor, validCreateInput())
		if !errors.Is(err, ErrServicoCamposObrigatorios) {
			t.Fatalf("expected ErrServicoCamposObrigatorios, got %v", err)
		}
	})
}

func TestServiceRecordUseCase_Create_SnapshotAndScope(t *testing.T) {
	t.Run("instructor matricula is pinned to the session", func(t *testing.T) {
		uc, m := newServiceRecordUseCaseForTest(t)

		var created entities.ServiceRecord
		m.records.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, r entities.ServiceRecord) (entities.ServiceRecord, error) {
				created = r
				return r, nil
			})
		m.users.EXPECT().ListActiveByPerfil(gomock.Any(), entities.PerfilGestor).Return(nil, nil)

		in := validCreateInput()
		in.MatriculaInstrutor = "INST-99" // forged; must be ignored

		if _, err := uc.Create(context.Background(), testInstrutor, in); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if created.MatriculaInstrutor != testInstrutor.Matricula {
			t.Fatalf("expected matricula %q, got %q", testInstrutor.Matricula, created.MatriculaInstrutor)
		}
		if created.Status != entities.StatusPendente {
			t.Fatalf("expected status PENDENTE, got %s", created.Status)
		}
		if created.ID == "" {
			t.Fatal("expected generated id")
		}
	})

	t.Run("consultoria snapshot values", func(t *testing.T) {
		uc, m := newServiceRecordUseCaseForTest(t)

		var created entities.ServiceRecord
		m.records.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, r entities.ServiceRecord) (entities.ServiceRecord, error) {
				created = r
				return r, nil
			})
		m.users.EXPECT().ListActiveByPerfil(gomock.Any(), entities.PerfilGestor).Return(nil, nil)

		if _, err := uc.Create(context.Background(), testGestor, validCreateInput()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if created.DuracaoHoras != 2.5 {
			t.Fatalf("expected 2.5h, got %v", created.DuracaoHoras)
		}
		if math.Abs(created.ValorCalculado-130.0) > 1e-9 {
			t.Fatalf("expected 130.00, got %v", created.ValorCalculado)
		}
		if created.ValorAdicionalPercentual != 30.0 {
			t.Fatalf("expected 30.0 adicional, got %v", created.ValorAdicionalPercentual)
		}
	})

	t.Run("dep is never paid", func(t *testing.T) {
		uc, m := newServiceRecordUseCaseForTest(t)

		var created entities.ServiceRecord
		m.records.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, r entities.ServiceRecord) (entities.ServiceRecord, error) {
				created = r
				return r, nil
			})
		m.users.EXPECT().ListActiveByPerfil(gomock.Any(), entities.PerfilGestor).Return(nil, nil)

		in := validCreateInput()
		in.TipoDemanda = entities.TipoDemandaDEP

		if _, err := uc.Create(context.Background(), testGestor, in); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if created.ValorCalculado != 0 {
			t.Fatalf("expected 0 for DEP, got %v", created.ValorCalculado)
		}
		if created.ValorAdicionalPercentual != 0 {
			t.Fatalf("expected 0 adicional for DEP, got %v", created.ValorAdicionalPercentual)
		}
	})
}

func TestServiceRecordUseCase_Create_FanOut(t *testing.T) {
	t.Run("one notification per active gestor", func(t *testing.T) {
		uc, m := newServiceRecordUseCaseForTest(t)

		m.records.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, r entities.ServiceRecord) (entities.ServiceRecord, error) {
				return r, nil
			})
		m.users.EXPECT().ListActiveByPerfil(gomock.Any(), entities.PerfilGestor).Return([]entities.User{
			{ID: "g1", Perfil: entities.PerfilGestor, Ativo: true},
			{ID: "g2", Perfil: entities.PerfilGestor, Ativo: true},
		}, nil)

		var targets []string
		m.notifications.EXPECT().Create(gomock.Any(), gomock.Any()).Times(2).
			DoAndReturn(func(_ context.Context, n entities.Notification) (entities.Notification, error) {
				targets = append(targets, n.UserID)
				if n.Tipo != entities.NotificationInfo {
					t.Fatalf("expected INFO notification, got %s", n.Tipo)
				}
				if n.ServiceID == "" {
					t.Fatal("expected notification bound to the record")
				}
				return n, nil
			})

		if _, err := uc.Create(context.Background(), testInstrutor, validCreateInput()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(targets) != 2 || targets[0] != "g1" || targets[1] != "g2" {
			t.Fatalf("expected fan-out to g1 and g2, got %v", targets)
		}
	})

	t.Run("creation survives a failed notification insert", func(t *testing.T) {
		uc, m := newServiceRecordUseCaseForTest(t)

		m.records.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, r entities.ServiceRecord) (entities.ServiceRecord, error) {
				return r, nil
			})
		m.users.EXPECT().ListActiveByPerfil(gomock.Any(), entities.PerfilGestor).Return([]entities.User{
			{ID: "g1"}, {ID: "g2"},
		}, nil)
		gomock.InOrder(
			m.notifications.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Notification{}, errors.New("dynamo down")),
			m.notifications.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Notification{}, nil),
		)

		if _, err := uc.Create(context.Background(), testInstrutor, validCreateInput()); err != nil {
			t.Fatalf("expected creation to succeed despite notification failure, got %v", err)
		}
	})
}

func TestServiceRecordUseCase_GetByID_Scoping(t *testing.T) {
	stored := entities.ServiceRecord{
		ID:                 "svc-1",
		MatriculaInstrutor: "INST-02",
		Status:             entities.StatusPendente,
	}

	t.Run("foreign record looks missing to an instructor", func(t *testing.T) {
		uc, m := newServiceRecordUseCaseForTest(t)
		m.records.EXPECT().GetByID(gomock.Any(), "svc-1").Return(stored, nil)

		_, err := uc.GetByID(context.Background(), testInstrutor, "svc-1")
		if !errors.Is(err, ErrServicoNaoEncontrado) {
			t.Fatalf("expected ErrServicoNaoEncontrado, got %v", err)
		}
	})

	t.Run("gestor sees any record", func(t *testing.T) {
		uc, m := newServiceRecordUseCaseForTest(t)
		m.records.EXPECT().GetByID(gomock.Any(), "svc-1").Return(stored, nil)

		view, err := uc.GetByID(context.Background(), testGestor, "svc-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if view.ID != "svc-1" {
			t.Fatalf("expected svc-1, got %q", view.ID)
		}
	})

	t.Run("unknown id", func(t *testing.T) {
		uc, m := newServiceRecordUseCaseForTest(t)
		m.records.EXPECT().GetByID(gomock.Any(), "nope").Return(entities.ServiceRecord{}, nil)

		_, err := uc.GetByID(context.Background(), testGestor, "nope")
		if !errors.Is(err, ErrServicoNaoEncontrado) {
			t.Fatalf("expected ErrServicoNaoEncontrado, got %v", err)
		}
	})
}

func TestServiceRecordUseCase_List(t *testing.T) {
	t.Run("instructor scope wins over matricula filter", func(t *testing.T) {
		uc, m := newServiceRecordUseCaseForTest(t)

		var captured interfaces.ServiceRecordFilter
		m.records.EXPECT().List(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, f interfaces.ServiceRecordFilter) ([]entities.ServiceRecord, error) {
				captured = f
				return nil, nil
			})
		m.types.EXPECT().List(gomock.Any(), entities.TipoDemanda("")).Return(nil, nil)

		_, _, err := uc.List(context.Background(), testInstrutor, ListServicesInput{Matricula: "INST-99"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if captured.MatriculaExact != testInstrutor.Matricula {
			t.Fatalf("expected exact scope %q, got %q", testInstrutor.Matricula, captured.MatriculaExact)
		}
		if captured.MatriculaContains != "" {
			t.Fatalf("expected no contains filter, got %q", captured.MatriculaContains)
		}
	})

	t.Run("gestor free search and pagination defaults", func(t *testing.T) {
		uc, m := newServiceRecordUseCaseForTest(t)

		records := make([]entities.ServiceRecord, 45)
		for i := range records {
			records[i] = entities.ServiceRecord{ID: "svc", ServiceTypeID: "st-1"}
		}
		m.records.EXPECT().List(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, f interfaces.ServiceRecordFilter) ([]entities.ServiceRecord, error) {
				if f.MatriculaContains != "INST" {
					t.Fatalf("expected contains filter, got %q", f.MatriculaContains)
				}
				return records, nil
			})
		m.types.EXPECT().List(gomock.Any(), entities.TipoDemanda("")).Return([]entities.ServiceType{
			{ID: "st-1", Nome: "Mentoria Técnica", Categoria: entities.TipoDemandaConsultoria},
		}, nil)

		views, pagination, err := uc.List(context.Background(), testGestor, ListServicesInput{Matricula: "INST"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(views) != defaultPageLimit {
			t.Fatalf("expected %d items, got %d", defaultPageLimit, len(views))
		}
		if pagination.Total != 45 || pagination.Page != 1 || pagination.Limit != 20 || pagination.Pages != 3 {
			t.Fatalf("unexpected pagination: %+v", pagination)
		}
		if views[0].TipoServicoNome != "Mentoria Técnica" {
			t.Fatalf("expected enriched type name, got %q", views[0].TipoServicoNome)
		}
	})

	t.Run("limit is capped", func(t *testing.T) {
		uc, m := newServiceRecordUseCaseForTest(t)
		m.records.EXPECT().List(gomock.Any(), gomock.Any()).Return(nil, nil)
		m.types.EXPECT().List(gomock.Any(), entities.TipoDemanda("")).Return(nil, nil)

		_, pagination, err := uc.List(context.Background(), testGestor, ListServicesInput{Limit: 500})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if pagination.Limit != maxPageLimit {
			t.Fatalf("expected limit %d, got %d", maxPageLimit, pagination.Limit)
		}
	})
}

func TestServiceRecordUseCase_Update(t *testing.T) {
	pendente := entities.ServiceRecord{
		ID:                 "svc-1",
		MatriculaInstrutor: testInstrutor.Matricula,
		Status:             entities.StatusPendente,
	}
	validUpdate := UpdateServiceInput{
		DataServico:        "2026-03-11",
		HoraInicio:         "09:00",
		HoraFim:            "11:00",
		DescricaoAtividade: "Revisão de plano de aula",
		TipoDemanda:        entities.TipoDemandaDEP,
	}

	t.Run("non-pendente is immutable", func(t *testing.T) {
		uc, m := newServiceRecordUseCaseForTest(t)
		approved := pendente
		approved.Status = entities.StatusAprovado
		m.records.EXPECT().GetByID(gomock.Any(), "svc-1").Return(approved, nil)

		_, err := uc.Update(context.Background(), testInstrutor, "svc-1", validUpdate)
		if !errors.Is(err, ErrSomentePendente) {
			t.Fatalf("expected ErrSomentePendente, got %v", err)
		}
	})

	t.Run("lost race against a concurrent approval", func(t *testing.T) {
		uc, m := newServiceRecordUseCaseForTest(t)
		m.records.EXPECT().GetByID(gomock.Any(), "svc-1").Return(pendente, nil)
		m.records.EXPECT().UpdatePendente(gomock.Any(), gomock.Any()).Return(entities.ServiceRecord{}, nil)

		_, err := uc.Update(context.Background(), testInstrutor, "svc-1", validUpdate)
		if !errors.Is(err, ErrSomentePendente) {
			t.Fatalf("expected ErrSomentePendente on lost condition, got %v", err)
		}
	})

	t.Run("successful edit revalues the record", func(t *testing.T) {
		uc, m := newServiceRecordUseCaseForTest(t)
		m.records.EXPECT().GetByID(gomock.Any(), "svc-1").Return(pendente, nil)

		var saved entities.ServiceRecord
		m.records.EXPECT().UpdatePendente(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, r entities.ServiceRecord) (entities.ServiceRecord, error) {
				saved = r
				return r, nil
			})

		updated, err := uc.Update(context.Background(), testInstrutor, "svc-1", validUpdate)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if saved.DuracaoHoras != 2.0 {
			t.Fatalf("expected 2.0h, got %v", saved.DuracaoHoras)
		}
		if updated.ValorCalculado != 0 {
			t.Fatalf("expected DEP to value 0, got %v", updated.ValorCalculado)
		}
	})

	t.Run("edit replaces the observacoes", func(t *testing.T) {
		uc, m := newServiceRecordUseCaseForTest(t)
		stored := pendente
		stored.Observacoes = "nota antiga"
		m.records.EXPECT().GetByID(gomock.Any(), "svc-1").Return(stored, nil)

		var saved entities.ServiceRecord
		m.records.EXPECT().UpdatePendente(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, r entities.ServiceRecord) (entities.ServiceRecord, error) {
				saved = r
				return r, nil
			})

		in := validUpdate
		in.Observacoes = "nota nova do instrutor"
		if _, err := uc.Update(context.Background(), testInstrutor, "svc-1", in); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if saved.Observacoes != "nota nova do instrutor" {
			t.Fatalf("expected the edited observacoes to persist, got %q", saved.Observacoes)
		}
	})
}

func TestServiceRecordUseCase_Delete(t *testing.T) {
	pendente := entities.ServiceRecord{
		ID:                 "svc-1",
		MatriculaInstrutor: testInstrutor.Matricula,
		Status:             entities.StatusPendente,
	}

	t.Run("success", func(t *testing.T) {
		uc, m := newServiceRecordUseCaseForTest(t)
		m.records.EXPECT().GetByID(gomock.Any(), "svc-1").Return(pendente, nil)
		m.records.EXPECT().DeletePendente(gomock.Any(), "svc-1").Return(true, nil)

		if err := uc.Delete(context.Background(), testInstrutor, "svc-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("lost race reports somente pendente", func(t *testing.T) {
		uc, m := newServiceRecordUseCaseForTest(t)
		m.records.EXPECT().GetByID(gomock.Any(), "svc-1").Return(pendente, nil)
		m.records.EXPECT().DeletePendente(gomock.Any(), "svc-1").Return(false, nil)

		err := uc.Delete(context.Background(), testInstrutor, "svc-1")
		if !errors.Is(err, ErrSomentePendente) {
			t.Fatalf("expected ErrSomentePendente, got %v", err)
		}
	})

	t.Run("already approved", func(t *testing.T) {
		uc, m := newServiceRecordUseCaseForTest(t)
		paid := pendente
		paid.Status = entities.StatusPago
		m.records.EXPECT().GetByID(gomock.Any(), "svc-1").Return(paid, nil)

		err := uc.Delete(context.Background(), testInstrutor, "svc-1")
		if !errors.Is(err, ErrSomentePendente) {
			t.Fatalf("expected ErrSomentePendente, got %v", err)
		}
	})
}

func TestServiceRecordUseCase_UpdateStatus(t *testing.T) {
	stored := entities.ServiceRecord{
		ID:                 "svc-1",
		MatriculaInstrutor: "INST-02",
		DataServico:        "2026-03-10",
		Status:             entities.StatusPendente,
	}

	t.Run("instructor cannot review", func(t *testing.T) {
		uc, _ := newServiceRecordUseCaseForTest(t)
		_, err := uc.UpdateStatus(context.Background(), testInstrutor, "svc-1", entities.StatusAprovado, "")
		if !errors.Is(err, ErrAcessoNegado) {
			t.Fatalf("expected ErrAcessoNegado, got %v", err)
		}
	})

	t.Run("unknown status", func(t *testing.T) {
		uc, _ := newServiceRecordUseCaseForTest(t)
		_, err := uc.UpdateStatus(context.Background(), testGestor, "svc-1", "ARQUIVADO", "")
		if !errors.Is(err, ErrStatusInvalido) {
			t.Fatalf("expected ErrStatusInvalido, got %v", err)
		}
	})

	t.Run("pago is terminal", func(t *testing.T) {
		uc, m := newServiceRecordUseCaseForTest(t)
		paid := stored
		paid.Status = entities.StatusPago
		m.records.EXPECT().GetByID(gomock.Any(), "svc-1").Return(paid, nil)

		_, err := uc.UpdateStatus(context.Background(), testGestor, "svc-1", entities.StatusPendente, "")
		if !errors.Is(err, ErrTransicaoInvalida) {
			t.Fatalf("expected ErrTransicaoInvalida, got %v", err)
		}
	})

	t.Run("pendente cannot jump straight to pago", func(t *testing.T) {
		uc, m := newServiceRecordUseCaseForTest(t)
		m.records.EXPECT().GetByID(gomock.Any(), "svc-1").Return(stored, nil)

		_, err := uc.UpdateStatus(context.Background(), testGestor, "svc-1", entities.StatusPago, "")
		if !errors.Is(err, ErrTransicaoInvalida) {
			t.Fatalf("expected ErrTransicaoInvalida, got %v", err)
		}
	})

	t.Run("approval notifies the owner", func(t *testing.T) {
		uc, m := newServiceRecordUseCaseForTest(t)
		approved := stored
		approved.Status = entities.StatusAprovado

		m.records.EXPECT().GetByID(gomock.Any(), "svc-1").Return(stored, nil)
		m.records.EXPECT().UpdateStatus(gomock.Any(), "svc-1", entities.StatusPendente, entities.StatusAprovado, "").Return(approved, nil)
		m.users.EXPECT().GetByMatricula(gomock.Any(), "INST-02").Return(entities.User{ID: "u-owner"}, nil)
		m.notifications.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, n entities.Notification) (entities.Notification, error) {
				if n.UserID != "u-owner" {
					t.Fatalf("expected owner notification, got user %q", n.UserID)
				}
				if n.Tipo != entities.NotificationSucesso {
					t.Fatalf("expected SUCESSO, got %s", n.Tipo)
				}
				return n, nil
			})

		record, err := uc.UpdateStatus(context.Background(), testGestor, "svc-1", entities.StatusAprovado, "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if record.Status != entities.StatusAprovado {
			t.Fatalf("expected APROVADO, got %s", record.Status)
		}
	})

	t.Run("rejection carries the motive", func(t *testing.T) {
		uc, m := newServiceRecordUseCaseForTest(t)
		rejected := stored
		rejected.Status = entities.StatusRejeitado
		rejected.ObservacoesGestor = "faltou detalhamento"

		m.records.EXPECT().GetByID(gomock.Any(), "svc-1").Return(stored, nil)
		m.records.EXPECT().UpdateStatus(gomock.Any(), "svc-1", entities.StatusPendente, entities.StatusRejeitado, "faltou detalhamento").Return(rejected, nil)
		m.users.EXPECT().GetByMatricula(gomock.Any(), "INST-02").Return(entities.User{ID: "u-owner"}, nil)
		m.notifications.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, n entities.Notification) (entities.Notification, error) {
				if n.Tipo != entities.NotificationErro {
					t.Fatalf("expected ERRO, got %s", n.Tipo)
				}
				if !strings.Contains(n.Mensagem, "faltou detalhamento") {
					t.Fatalf("expected motive in message, got %q", n.Mensagem)
				}
				return n, nil
			})

		if _, err := uc.UpdateStatus(context.Background(), testGestor, "svc-1", entities.StatusRejeitado, "faltou detalhamento"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("owner without a login account is skipped", func(t *testing.T) {
		uc, m := newServiceRecordUseCaseForTest(t)
		approved := stored
		approved.Status = entities.StatusAprovado

		m.records.EXPECT().GetByID(gomock.Any(), "svc-1").Return(stored, nil)
		m.records.EXPECT().UpdateStatus(gomock.Any(), "svc-1", entities.StatusPendente, entities.StatusAprovado, "").Return(approved, nil)
		m.users.EXPECT().GetByMatricula(gomock.Any(), "INST-02").Return(entities.User{}, nil)

		if _, err := uc.UpdateStatus(context.Background(), testGestor, "svc-1", entities.StatusAprovado, ""); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("lost optimistic check", func(t *testing.T) {
		uc, m := newServiceRecordUseCaseForTest(t)
		m.records.EXPECT().GetByID(gomock.Any(), "svc-1").Return(stored, nil)
		m.records.EXPECT().UpdateStatus(gomock.Any(), "svc-1", entities.StatusPendente, entities.StatusAprovado, "").Return(entities.ServiceRecord{}, nil)

		_, err := uc.UpdateStatus(context.Background(), testGestor, "svc-1", entities.StatusAprovado, "")
		if !errors.Is(err, ErrTransicaoInvalida) {
			t.Fatalf("expected ErrTransicaoInvalida, got %v", err)
		}
	})
}

// TestServiceRecordUseCase_FullWorkflow drives one record through the whole
// review cycle: log, reject, reopen via edit visibility, approve, pay.
func TestServiceRecordUseCase_FullWorkflow(t *testing.T) {
	uc, m := newServiceRecordUseCaseForTest(t)

	var stored entities.ServiceRecord
	m.records.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, r entities.ServiceRecord) (entities.ServiceRecord, error) {
			stored = r
			return r, nil
		})
	m.users.EXPECT().ListActiveByPerfil(gomock.Any(), entities.PerfilGestor).Return([]entities.User{{ID: "g1"}}, nil)
	m.notifications.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Notification{}, nil).AnyTimes()
	m.users.EXPECT().GetByMatricula(gomock.Any(), testInstrutor.Matricula).Return(entities.User{ID: testInstrutor.ID}, nil).AnyTimes()

	created, err := uc.Create(context.Background(), testInstrutor, validCreateInput())
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	transition := func(to entities.ServiceStatus) error {
		m.records.EXPECT().GetByID(gomock.Any(), created.ID).Return(stored, nil)
		m.records.EXPECT().UpdateStatus(gomock.Any(), created.ID, stored.Status, to, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, _, to entities.ServiceStatus, obs string) (entities.ServiceRecord, error) {
				stored.Status = to
				stored.ObservacoesGestor = obs
				return stored, nil
			})
		_, err := uc.UpdateStatus(context.Background(), testGestor, created.ID, to, "")
		return err
	}

	if err := transition(entities.StatusAprovado); err != nil {
		t.Fatalf("approve: %v", err)
	}
	if err := transition(entities.StatusPendente); err != nil {
		t.Fatalf("reopen: %v", err)
	}
	if err := transition(entities.StatusAprovado); err != nil {
		t.Fatalf("re-approve: %v", err)
	}
	if err := transition(entities.StatusPago); err != nil {
		t.Fatalf("pay: %v", err)
	}

	m.records.EXPECT().GetByID(gomock.Any(), created.ID).Return(stored, nil)
	if _, err := uc.UpdateStatus(context.Background(), testGestor, created.ID, entities.StatusPendente, ""); !errors.Is(err, ErrTransicaoInvalida) {
		t.Fatalf("expected terminal PAGO to reject further transitions, got %v", err)
	}
}
