package usecase

import (
	"context"

	"github.com/giordanomadjo-lab/sisgped/internal/domain/entities"
	"github.com/giordanomadjo-lab/sisgped/internal/usecase/interfaces"
)

// IServiceTypeUseCase exposes the read-only activity-type catalog.

type IServiceTypeUseCase interface {
	List(ctx context.Context, actor entities.SessionUser, categoria entities.TipoDemanda) ([]entities.ServiceType, error)
}

type ServiceTypeUseCase struct {
	types interfaces.IServiceTypeRepository
}

var _ IServiceTypeUseCase = (*ServiceTypeUseCase)(nil)

func NewServiceTypeUseCase(types interfaces.IServiceTypeRepository) *ServiceTypeUseCase {
	return &ServiceTypeUseCase{types: types}
}

func (u *ServiceTypeUseCase) List(ctx context.Context, actor entities.SessionUser, categoria entities.TipoDemanda) ([]entities.ServiceType, error) {
	return u.types.List(ctx, categoria)
}
