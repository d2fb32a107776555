package usecase

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/giordanomadjo-lab/sisgped/internal/domain/entities"
	"github.com/giordanomadjo-lab/sisgped/internal/usecase/interfaces"
	mock_interfaces "github.com/giordanomadjo-lab/sisgped/internal/usecase/interfaces/mocks"
)

func newInstructorUseCaseForTest(t *testing.T) (*InstructorUseCase, *mock_interfaces.MockIInstructorRepository) {
	ctrl := gomock.NewController(t)
	instructors := mock_interfaces.NewMockIInstructorRepository(ctrl)
	return NewInstructorUseCase(instructors), instructors
}

func TestInstructorUseCase_GetByMatricula(t *testing.T) {
	t.Run("blank matricula", func(t *testing.T) {
		uc, _ := newInstructorUseCaseForTest(t)
		_, err := uc.GetByMatricula(context.Background(), testInstrutor, "   ")
		if !errors.Is(err, ErrInstrutorNaoEncontrado) {
			t.Fatalf("expected ErrInstrutorNaoEncontrado, got %v", err)
		}
	})

	t.Run("inactive profile looks missing", func(t *testing.T) {
		uc, instructors := newInstructorUseCaseForTest(t)
		instructors.EXPECT().GetByMatricula(gomock.Any(), "INST-01").Return(entities.Instructor{
			Matricula: "INST-01",
			Nome:      "Maria",
			Ativo:     false,
		}, nil)

		_, err := uc.GetByMatricula(context.Background(), testInstrutor, "INST-01")
		if !errors.Is(err, ErrInstrutorNaoEncontrado) {
			t.Fatalf("expected ErrInstrutorNaoEncontrado, got %v", err)
		}
	})

	t.Run("any authenticated caller can read", func(t *testing.T) {
		uc, instructors := newInstructorUseCaseForTest(t)
		instructors.EXPECT().GetByMatricula(gomock.Any(), "INST-01").Return(entities.Instructor{
			Matricula:     "INST-01",
			Nome:          "Maria",
			ValorHoraAula: 85,
			Ativo:         true,
		}, nil)

		got, err := uc.GetByMatricula(context.Background(), testInstrutor, " INST-01 ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.ValorHoraAula != 85 {
			t.Fatalf("expected rate 85, got %v", got.ValorHoraAula)
		}
	})
}

func TestInstructorUseCase_Create(t *testing.T) {
	valid := CreateInstructorInput{
		Matricula:     " INST-07 ",
		Nome:          "João",
		Email:         "joao@escola.com",
		ValorHoraAula: 92.5,
	}

	t.Run("instructor is denied", func(t *testing.T) {
		uc, _ := newInstructorUseCaseForTest(t)
		_, err := uc.Create(context.Background(), testInstrutor, valid)
		if !errors.Is(err, ErrAcessoNegado) {
			t.Fatalf("expected ErrAcessoNegado, got %v", err)
		}
	})

	t.Run("missing fields", func(t *testing.T) {
		uc, _ := newInstructorUseCaseForTest(t)
		_, err := uc.Create(context.Background(), testGestor, CreateInstructorInput{Matricula: "INST-07"})
		if !errors.Is(err, ErrInstrutorCamposObrigatorios) {
			t.Fatalf("expected ErrInstrutorCamposObrigatorios, got %v", err)
		}
	})

	t.Run("trims and activates", func(t *testing.T) {
		uc, instructors := newInstructorUseCaseForTest(t)

		var created entities.Instructor
		instructors.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, i entities.Instructor) (entities.Instructor, error) {
				created = i
				return i, nil
			})

		if _, err := uc.Create(context.Background(), testGestor, valid); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created.Matricula != "INST-07" {
			t.Fatalf("expected trimmed matricula, got %q", created.Matricula)
		}
		if !created.Ativo {
			t.Fatal("expected new profiles to start active")
		}
	})

	t.Run("duplicate matricula", func(t *testing.T) {
		uc, instructors := newInstructorUseCaseForTest(t)
		instructors.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Instructor{}, interfaces.ErrDuplicateKey)

		_, err := uc.Create(context.Background(), testGestor, valid)
		if !errors.Is(err, ErrMatriculaJaCadastrada) {
			t.Fatalf("expected ErrMatriculaJaCadastrada, got %v", err)
		}
	})
}

func TestInstructorUseCase_Update(t *testing.T) {
	stored := entities.Instructor{
		Matricula:     "INST-01",
		Nome:          "Maria",
		Email:         "maria@escola.com",
		ValorHoraAula: 85,
		Ativo:         true,
	}

	t.Run("instructor is denied", func(t *testing.T) {
		uc, _ := newInstructorUseCaseForTest(t)
		_, err := uc.Update(context.Background(), testInstrutor, "INST-01", UpdateInstructorInput{})
		if !errors.Is(err, ErrAcessoNegado) {
			t.Fatalf("expected ErrAcessoNegado, got %v", err)
		}
	})

	t.Run("unknown matricula", func(t *testing.T) {
		uc, instructors := newInstructorUseCaseForTest(t)
		instructors.EXPECT().GetByMatricula(gomock.Any(), "nope").Return(entities.Instructor{}, nil)

		_, err := uc.Update(context.Background(), testGestor, "nope", UpdateInstructorInput{})
		if !errors.Is(err, ErrInstrutorNaoEncontrado) {
			t.Fatalf("expected ErrInstrutorNaoEncontrado, got %v", err)
		}
	})

	t.Run("rate change applies to future records only", func(t *testing.T) {
		uc, instructors := newInstructorUseCaseForTest(t)
		instructors.EXPECT().GetByMatricula(gomock.Any(), "INST-01").Return(stored, nil)
		instructors.EXPECT().Update(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, i entities.Instructor) (entities.Instructor, error) {
				return i, nil
			})

		got, err := uc.Update(context.Background(), testGestor, "INST-01", UpdateInstructorInput{
			Email:         "maria@escola.com",
			ValorHoraAula: 110,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.ValorHoraAula != 110 {
			t.Fatalf("expected rate 110, got %v", got.ValorHoraAula)
		}
		if got.Nome != "Maria" {
			t.Fatalf("expected name kept, got %q", got.Nome)
		}
	})
}
