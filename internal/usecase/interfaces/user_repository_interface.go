package interfaces

import (
	"context"
	"errors"

	"github.com/giordanomadjo-lab/sisgped/internal/domain/entities"
)

// ErrDuplicateKey is returned by repositories when a storage-level uniqueness
// condition rejects a write (duplicate email, duplicate matricula). It is the
// authority for conflicts; any pre-read is only a fast path for a friendlier
// message.
var ErrDuplicateKey = errors.New("duplicate key")

// IUserRepository abstracts DynamoDB persistence for login accounts.
//
// Create must write the user and its email guard item atomically and return
// ErrDuplicateKey when the email is taken. Update does the same when the
// email changes. Lookups return a zero-value User when nothing matches.

type IUserRepository interface {
	Create(ctx context.Context, u entities.User) (entities.User, error)
	GetByID(ctx context.Context, id string) (entities.User, error)
	GetByEmail(ctx context.Context, email string) (entities.User, error)
	GetByMatricula(ctx context.Context, matricula string) (entities.User, error)
	List(ctx context.Context) ([]entities.User, error)
	ListActiveByPerfil(ctx context.Context, perfil entities.Perfil) ([]entities.User, error)
	Update(ctx context.Context, u entities.User, previousEmail string) (entities.User, error)
	UpdateUltimoAcesso(ctx context.Context, id string) error
}
