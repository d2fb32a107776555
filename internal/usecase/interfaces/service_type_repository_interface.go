package interfaces

import (
	"context"

	"github.com/giordanomadjo-lab/sisgped/internal/domain/entities"
)

// IServiceTypeRepository reads the activity-type catalog. The catalog is
// seeded by cmd/migrate and treated as read-only by the application.

type IServiceTypeRepository interface {
	// List returns active types, optionally restricted to one category,
	// ordered by categoria then nome.
	List(ctx context.Context, categoria entities.TipoDemanda) ([]entities.ServiceType, error)
	GetByID(ctx context.Context, id string) (entities.ServiceType, error)
}
