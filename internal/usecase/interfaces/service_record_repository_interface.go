package interfaces

import (
	"context"

	"github.com/giordanomadjo-lab/sisgped/internal/domain/entities"
)

// ServiceRecordFilter narrows List scans. Zero values mean "no filter".
//
// MatriculaExact is the authorization scope applied for INSTRUTOR callers and
// always wins over MatriculaContains, which is the manager's free search box.
type ServiceRecordFilter struct {
	Status            entities.ServiceStatus
	TipoDemanda       entities.TipoDemanda
	MatriculaExact    string
	MatriculaContains string
	DataInicio        string // inclusive, YYYY-MM-DD
	DataFim           string // inclusive, YYYY-MM-DD
	Mes               int    // 1-12; combined with Ano when both set
	Ano               int    // four-digit year
}

// IServiceRecordRepository abstracts DynamoDB persistence for service records.
//
// Status-gated writes carry their gate into the storage condition:
//   - Update and Delete succeed only while the stored status is PENDENTE;
//   - UpdateStatus succeeds only while the stored status equals from.
//
// A failed condition is reported by a zero-value result (false for Delete),
// never by overwriting. List returns records ordered by created_at descending.

type IServiceRecordRepository interface {
	Create(ctx context.Context, r entities.ServiceRecord) (entities.ServiceRecord, error)
	GetByID(ctx context.Context, id string) (entities.ServiceRecord, error)
	List(ctx context.Context, filter ServiceRecordFilter) ([]entities.ServiceRecord, error)
	UpdatePendente(ctx context.Context, r entities.ServiceRecord) (entities.ServiceRecord, error)
	UpdateStatus(ctx context.Context, id string, from, to entities.ServiceStatus, observacoesGestor string) (entities.ServiceRecord, error)
	DeletePendente(ctx context.Context, id string) (bool, error)
}
