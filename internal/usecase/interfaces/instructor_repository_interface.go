package interfaces

import (
	"context"

	"github.com/giordanomadjo-lab/sisgped/internal/domain/entities"
)

// IInstructorRepository abstracts DynamoDB persistence for instructor payee
// profiles. The matricula is the partition key, so Create must return
// ErrDuplicateKey straight from the conditional put when the matricula is
// already registered.

type IInstructorRepository interface {
	Create(ctx context.Context, i entities.Instructor) (entities.Instructor, error)
	GetByMatricula(ctx context.Context, matricula string) (entities.Instructor, error)
	List(ctx context.Context) ([]entities.Instructor, error)
	Update(ctx context.Context, i entities.Instructor) (entities.Instructor, error)
}
