package interfaces

import (
	"context"

	"github.com/giordanomadjo-lab/sisgped/internal/domain/entities"
)

// ISessionRepository abstracts DynamoDB persistence for login sessions.
//
// Get returns a zero-value Session when the token is unknown; expiry is the
// caller's concern. Expired rows are never swept.

type ISessionRepository interface {
	Create(ctx context.Context, s entities.Session) (entities.Session, error)
	Get(ctx context.Context, id string) (entities.Session, error)
	Delete(ctx context.Context, id string) error
}
