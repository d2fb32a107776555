package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/giordanomadjo-lab/sisgped/internal/domain/entities"
	"github.com/giordanomadjo-lab/sisgped/internal/usecase/interfaces"
)

var (
	ErrServicoNaoEncontrado      = errors.New("servico nao encontrado")
	ErrServicoCamposObrigatorios = errors.New("campos obrigatorios: matricula, data, hora inicio, hora fim, descricao, tipo de demanda")
	ErrTipoDemandaInvalido       = errors.New("tipo de demanda invalido; use CONSULTORIA ou DEP")
	ErrHoraFimAntesInicio        = errors.New("hora fim deve ser maior que hora inicio")
	ErrSomentePendente           = errors.New("apenas servicos com status PENDENTE podem ser editados ou excluidos")
	ErrStatusInvalido            = errors.New("status invalido")
	ErrTransicaoInvalida         = errors.New("transicao de status nao permitida")
)

type CreateServiceInput struct {
	MatriculaInstrutor string
	NomeInstrutor      string
	DataServico        string
	HoraInicio         string
	HoraFim            string
	DescricaoAtividade string
	TipoDemanda        entities.TipoDemanda
	ServiceTypeID      string
	ValorHoraAula      float64
	Observacoes        string
}

type UpdateServiceInput struct {
	NomeInstrutor      string
	DataServico        string
	HoraInicio         string
	HoraFim            string
	DescricaoAtividade string
	TipoDemanda        entities.TipoDemanda
	ServiceTypeID      string
	ValorHoraAula      float64
	Observacoes        string
}

type ListServicesInput struct {
	Status      string
	TipoDemanda string
	Matricula   string
	DataInicio  string
	DataFim     string
	Page        int
	Limit       int
}

type Pagination struct {
	Total int `json:"total"`
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Pages int `json:"pages"`
}

// ServiceRecordView is a record enriched with its catalog type, the shape the
// listing and detail endpoints serve.
type ServiceRecordView struct {
	entities.ServiceRecord
	TipoServicoNome      string               `json:"tipo_servico_nome,omitempty"`
	TipoServicoCategoria entities.TipoDemanda `json:"tipo_servico_categoria,omitempty"`
}

const (
	defaultPageLimit = 20
	maxPageLimit     = 100
)

// IServiceRecordUseCase is the service-record lifecycle: creation, PENDENTE
// edits, the manager status workflow, and the scoped reads underneath every
// listing. All methods take the resolved caller identity explicitly.

type IServiceRecordUseCase interface {
	Create(ctx context.Context, actor entities.SessionUser, in CreateServiceInput) (entities.ServiceRecord, error)
	GetByID(ctx context.Context, actor entities.SessionUser, id string) (ServiceRecordView, error)
	List(ctx context.Context, actor entities.SessionUser, in ListServicesInput) ([]ServiceRecordView, Pagination, error)
	Update(ctx context.Context, actor entities.SessionUser, id string, in UpdateServiceInput) (entities.ServiceRecord, error)
	Delete(ctx context.Context, actor entities.SessionUser, id string) error
	UpdateStatus(ctx context.Context, actor entities.SessionUser, id string, status entities.ServiceStatus, observacoesGestor string) (entities.ServiceRecord, error)
}

type ServiceRecordUseCase struct {
	records       interfaces.IServiceRecordRepository
	types         interfaces.IServiceTypeRepository
	users         interfaces.IUserRepository
	notifications interfaces.INotificationRepository
}

var _ IServiceRecordUseCase = (*ServiceRecordUseCase)(nil)

func NewServiceRecordUseCase(
	records interfaces.IServiceRecordRepository,
	types interfaces.IServiceTypeRepository,
	users interfaces.IUserRepository,
	notifications interfaces.INotificationRepository,
) *ServiceRecordUseCase {
	return &ServiceRecordUseCase{records: records, types: types, users: users, notifications: notifications}
}

func (u *ServiceRecordUseCase) Create(ctx context.Context, actor entities.SessionUser, in CreateServiceInput) (entities.ServiceRecord, error) {
	// Instructors only log their own services; managers may log on behalf.
	if !actor.IsGestor() {
		in.MatriculaInstrutor = actor.Matricula
	}

	if err := validateServiceFields(in.MatriculaInstrutor, in.DataServico, in.HoraInicio, in.HoraFim, in.DescricaoAtividade, in.TipoDemanda); err != nil {
		return entities.ServiceRecord{}, err
	}

	duracao := entities.DurationHours(in.HoraInicio, in.HoraFim)
	if duracao <= 0 {
		return entities.ServiceRecord{}, ErrHoraFimAntesInicio
	}

	now := time.Now().UTC()
	record := entities.ServiceRecord{
		ID:                       uuid.NewString(),
		MatriculaInstrutor:       strings.TrimSpace(in.MatriculaInstrutor),
		NomeInstrutor:            strings.TrimSpace(in.NomeInstrutor),
		DataServico:              in.DataServico,
		HoraInicio:               in.HoraInicio,
		HoraFim:                  in.HoraFim,
		DuracaoHoras:             duracao,
		DescricaoAtividade:       strings.TrimSpace(in.DescricaoAtividade),
		TipoDemanda:              in.TipoDemanda,
		ServiceTypeID:            in.ServiceTypeID,
		ValorHoraAula:            in.ValorHoraAula,
		ValorAdicionalPercentual: entities.AdicionalPercentual(in.TipoDemanda),
		ValorCalculado:           entities.Amount(duracao, in.ValorHoraAula, in.TipoDemanda),
		Status:                   entities.StatusPendente,
		Observacoes:              in.Observacoes,
		CreatedAt:                now,
		UpdatedAt:                now,
	}

	created, err := u.records.Create(ctx, record)
	if err != nil {
		return entities.ServiceRecord{}, err
	}

	u.notifyGestores(ctx, created)
	return created, nil
}

func (u *ServiceRecordUseCase) GetByID(ctx context.Context, actor entities.SessionUser, id string) (ServiceRecordView, error) {
	record, err := u.fetchScoped(ctx, actor, id)
	if err != nil {
		return ServiceRecordView{}, err
	}
	return u.enrich(ctx, record), nil
}

func (u *ServiceRecordUseCase) List(ctx context.Context, actor entities.SessionUser, in ListServicesInput) ([]ServiceRecordView, Pagination, error) {
	filter := interfaces.ServiceRecordFilter{
		Status:      entities.ServiceStatus(in.Status),
		TipoDemanda: entities.TipoDemanda(in.TipoDemanda),
		DataInicio:  in.DataInicio,
		DataFim:     in.DataFim,
	}
	// Scoping happens here, at the query layer: instructors never see beyond
	// their own matricula no matter what filters they send.
	if actor.IsGestor() {
		filter.MatriculaContains = strings.TrimSpace(in.Matricula)
	} else {
		filter.MatriculaExact = actor.Matricula
	}

	records, err := u.records.List(ctx, filter)
	if err != nil {
		return nil, Pagination{}, err
	}

	page := in.Page
	if page < 1 {
		page = 1
	}
	limit := in.Limit
	if limit < 1 {
		limit = defaultPageLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}

	total := len(records)
	pages := (total + limit - 1) / limit
	start := (page - 1) * limit
	if start > total {
		start = total
	}
	end := start + limit
	if end > total {
		end = total
	}

	typeNames, err := u.typeIndex(ctx)
	if err != nil {
		return nil, Pagination{}, err
	}
	views := make([]ServiceRecordView, 0, end-start)
	for _, r := range records[start:end] {
		views = append(views, enrichWith(r, typeNames))
	}

	return views, Pagination{Total: total, Page: page, Limit: limit, Pages: pages}, nil
}

func (u *ServiceRecordUseCase) Update(ctx context.Context, actor entities.SessionUser, id string, in UpdateServiceInput) (entities.ServiceRecord, error) {
	current, err := u.fetchScoped(ctx, actor, id)
	if err != nil {
		return entities.ServiceRecord{}, err
	}
	if current.Status != entities.StatusPendente {
		return entities.ServiceRecord{}, ErrSomentePendente
	}

	if err := validateServiceFields(current.MatriculaInstrutor, in.DataServico, in.HoraInicio, in.HoraFim, in.DescricaoAtividade, in.TipoDemanda); err != nil {
		return entities.ServiceRecord{}, err
	}
	duracao := entities.DurationHours(in.HoraInicio, in.HoraFim)
	if duracao <= 0 {
		return entities.ServiceRecord{}, ErrHoraFimAntesInicio
	}

	current.NomeInstrutor = strings.TrimSpace(in.NomeInstrutor)
	current.DataServico = in.DataServico
	current.HoraInicio = in.HoraInicio
	current.HoraFim = in.HoraFim
	current.DuracaoHoras = duracao
	current.DescricaoAtividade = strings.TrimSpace(in.DescricaoAtividade)
	current.TipoDemanda = in.TipoDemanda
	current.ServiceTypeID = in.ServiceTypeID
	current.Observacoes = in.Observacoes
	current.ValorHoraAula = in.ValorHoraAula
	current.ValorAdicionalPercentual = entities.AdicionalPercentual(in.TipoDemanda)
	current.ValorCalculado = entities.Amount(duracao, in.ValorHoraAula, in.TipoDemanda)
	current.UpdatedAt = time.Now().UTC()

	updated, err := u.records.UpdatePendente(ctx, current.ServiceRecord)
	if err != nil {
		return entities.ServiceRecord{}, err
	}
	if updated.ID == "" {
		// The storage condition saw a non-PENDENTE status, i.e. a concurrent
		// transition won.
		return entities.ServiceRecord{}, ErrSomentePendente
	}
	return updated, nil
}

func (u *ServiceRecordUseCase) Delete(ctx context.Context, actor entities.SessionUser, id string) error {
	current, err := u.fetchScoped(ctx, actor, id)
	if err != nil {
		return err
	}
	if current.Status != entities.StatusPendente {
		return ErrSomentePendente
	}

	deleted, err := u.records.DeletePendente(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrSomentePendente
	}
	return nil
}

func (u *ServiceRecordUseCase) UpdateStatus(ctx context.Context, actor entities.SessionUser, id string, status entities.ServiceStatus, observacoesGestor string) (entities.ServiceRecord, error) {
	if !actor.IsGestor() {
		return entities.ServiceRecord{}, ErrAcessoNegado
	}
	if !status.IsValid() {
		return entities.ServiceRecord{}, ErrStatusInvalido
	}

	current, err := u.records.GetByID(ctx, id)
	if err != nil {
		return entities.ServiceRecord{}, err
	}
	if current.ID == "" {
		return entities.ServiceRecord{}, ErrServicoNaoEncontrado
	}
	if !entities.CanTransition(current.Status, status) {
		return entities.ServiceRecord{}, ErrTransicaoInvalida
	}

	updated, err := u.records.UpdateStatus(ctx, id, current.Status, status, observacoesGestor)
	if err != nil {
		return entities.ServiceRecord{}, err
	}
	if updated.ID == "" {
		// Lost the optimistic check against a concurrent transition.
		return entities.ServiceRecord{}, ErrTransicaoInvalida
	}

	u.notifyInstrutor(ctx, updated, observacoesGestor)
	return updated, nil
}

// fetchScoped loads a record and applies the visibility rule: instructors can
// only reach their own records, and a foreign id looks exactly like a missing
// one so ids cannot be enumerated.
func (u *ServiceRecordUseCase) fetchScoped(ctx context.Context, actor entities.SessionUser, id string) (ServiceRecordView, error) {
	record, err := u.records.GetByID(ctx, id)
	if err != nil {
		return ServiceRecordView{}, err
	}
	if record.ID == "" {
		return ServiceRecordView{}, ErrServicoNaoEncontrado
	}
	if !actor.IsGestor() && record.MatriculaInstrutor != actor.Matricula {
		return ServiceRecordView{}, ErrServicoNaoEncontrado
	}
	return ServiceRecordView{ServiceRecord: record}, nil
}

func (u *ServiceRecordUseCase) enrich(ctx context.Context, view ServiceRecordView) ServiceRecordView {
	if view.ServiceTypeID == "" {
		return view
	}
	st, err := u.types.GetByID(ctx, view.ServiceTypeID)
	if err != nil || st.ID == "" {
		return view
	}
	view.TipoServicoNome = st.Nome
	view.TipoServicoCategoria = st.Categoria
	return view
}

func (u *ServiceRecordUseCase) typeIndex(ctx context.Context) (map[string]entities.ServiceType, error) {
	all, err := u.types.List(ctx, "")
	if err != nil {
		return nil, err
	}
	index := make(map[string]entities.ServiceType, len(all))
	for _, st := range all {
		index[st.ID] = st
	}
	return index, nil
}

func enrichWith(r entities.ServiceRecord, types map[string]entities.ServiceType) ServiceRecordView {
	view := ServiceRecordView{ServiceRecord: r}
	if st, ok := types[r.ServiceTypeID]; ok {
		view.TipoServicoNome = st.Nome
		view.TipoServicoCategoria = st.Categoria
	}
	return view
}

func validateServiceFields(matricula, data, horaInicio, horaFim, descricao string, tipo entities.TipoDemanda) error {
	if strings.TrimSpace(matricula) == "" || data == "" || horaInicio == "" || horaFim == "" || strings.TrimSpace(descricao) == "" || tipo == "" {
		return ErrServicoCamposObrigatorios
	}
	if !tipo.IsValid() {
		return ErrTipoDemandaInvalido
	}
	// Same-day HH:MM strings compare correctly as text.
	if horaFim <= horaInicio {
		return ErrHoraFimAntesInicio
	}
	return nil
}

// notifyGestores broadcasts a record creation to every active manager, one
// notification row each. The loop is best effort: a failed insert is logged
// and the remaining managers are still notified.
func (u *ServiceRecordUseCase) notifyGestores(ctx context.Context, record entities.ServiceRecord) {
	gestores, err := u.users.ListActiveByPerfil(ctx, entities.PerfilGestor)
	if err != nil {
		log.Printf("[service][usecase] fan-out skipped, could not list gestores service_id=%s err=%v", record.ID, err)
		return
	}

	nome := record.NomeInstrutor
	if nome == "" {
		nome = record.MatriculaInstrutor
	}
	for _, gestor := range gestores {
		n := entities.Notification{
			ID:        uuid.NewString(),
			UserID:    gestor.ID,
			Titulo:    "Novo servico registrado",
			Mensagem:  fmt.Sprintf("%s registrou um servico de %s em %s aguardando aprovacao.", nome, record.TipoDemanda, record.DataServico),
			Tipo:      entities.NotificationInfo,
			Link:      "/servicos",
			ServiceID: record.ID,
			CreatedAt: time.Now().UTC(),
		}
		if _, err := u.notifications.Create(ctx, n); err != nil {
			log.Printf("[service][usecase] manager notification failed service_id=%s user_id=%s err=%v", record.ID, gestor.ID, err)
		}
	}
}

// notifyInstrutor tells the record owner about a status change. When no login
// account carries the record's matricula the notification is silently skipped.
func (u *ServiceRecordUseCase) notifyInstrutor(ctx context.Context, record entities.ServiceRecord, observacoesGestor string) {
	owner, err := u.users.GetByMatricula(ctx, record.MatriculaInstrutor)
	if err != nil {
		log.Printf("[service][usecase] owner lookup failed service_id=%s matricula=%s err=%v", record.ID, record.MatriculaInstrutor, err)
		return
	}
	if owner.ID == "" {
		return
	}

	var titulo, mensagem string
	var tipo entities.NotificationTipo
	switch record.Status {
	case entities.StatusAprovado:
		titulo = "Servico aprovado"
		mensagem = fmt.Sprintf("Seu servico de %s foi aprovado.", record.DataServico)
		tipo = entities.NotificationSucesso
	case entities.StatusRejeitado:
		titulo = "Servico rejeitado"
		mensagem = fmt.Sprintf("Seu servico de %s foi rejeitado.", record.DataServico)
		if observacoesGestor != "" {
			mensagem = fmt.Sprintf("%s Motivo: %s", mensagem, observacoesGestor)
		}
		tipo = entities.NotificationErro
	case entities.StatusPago:
		titulo = "Pagamento confirmado"
		mensagem = fmt.Sprintf("O pagamento do seu servico de %s foi confirmado.", record.DataServico)
		tipo = entities.NotificationSucesso
	case entities.StatusPendente:
		titulo = "Servico reaberto"
		mensagem = fmt.Sprintf("Seu servico de %s voltou para analise.", record.DataServico)
		tipo = entities.NotificationAviso
	default:
		return
	}

	n := entities.Notification{
		ID:        uuid.NewString(),
		UserID:    owner.ID,
		Titulo:    titulo,
		Mensagem:  mensagem,
		Tipo:      tipo,
		Link:      "/servicos",
		ServiceID: record.ID,
		CreatedAt: time.Now().UTC(),
	}
	if _, err := u.notifications.Create(ctx, n); err != nil {
		log.Printf("[service][usecase] owner notification failed service_id=%s user_id=%s err=%v", record.ID, owner.ID, err)
	}
}
