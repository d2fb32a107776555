package repository

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/giordanomadjo-lab/sisgped/internal/domain/entities"
	"github.com/giordanomadjo-lab/sisgped/internal/usecase/interfaces"
)

const defaultServicesTableName = "services"

type serviceRecordItem struct {
	ID                       string  `dynamodbav:"id"`
	MatriculaInstrutor       string  `dynamodbav:"matricula_instrutor"`
	NomeInstrutor            string  `dynamodbav:"nome_instrutor"`
	DataServico              string  `dynamodbav:"data_servico"`
	HoraInicio               string  `dynamodbav:"hora_inicio"`
	HoraFim                  string  `dynamodbav:"hora_fim"`
	DuracaoHoras             float64 `dynamodbav:"duracao_horas"`
	DescricaoAtividade       string  `dynamodbav:"descricao_atividade"`
	TipoDemanda              string  `dynamodbav:"tipo_demanda"`
	ServiceTypeID            string  `dynamodbav:"service_type_id"`
	ValorHoraAula            float64 `dynamodbav:"valor_hora_aula"`
	ValorAdicionalPercentual float64 `dynamodbav:"valor_adicional_percentual"`
	ValorCalculado           float64 `dynamodbav:"valor_calculado"`
	Status                   string  `dynamodbav:"status"`
	Observacoes              string  `dynamodbav:"observacoes"`
	ObservacoesGestor        string  `dynamodbav:"observacoes_gestor"`
	CreatedAt                string  `dynamodbav:"created_at"`
	UpdatedAt                string  `dynamodbav:"updated_at"`
}

// ServiceRecordDynamoRepository persists service records.
//
// Table requirements:
//   - PK: id
//
// Every write that depends on the current status carries that status as a
// ConditionExpression, so a concurrent approval cannot be silently undone by
// a stale edit or delete.

type ServiceRecordDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IServiceRecordRepository = (*ServiceRecordDynamoRepository)(nil)

func NewServiceRecordDynamoRepository(ddb *dynamodb.Client) *ServiceRecordDynamoRepository {
	return &ServiceRecordDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("SERVICES_TABLE", defaultServicesTableName),
	}
}

func (r *ServiceRecordDynamoRepository) Create(ctx context.Context, record entities.ServiceRecord) (entities.ServiceRecord, error) {
	item, err := attributevalue.MarshalMap(toServiceRecordItem(record))
	if err != nil {
		return entities.ServiceRecord{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                item,
		ConditionExpression: aws.String("attribute_not_exists(id)"),
	})
	if err != nil {
		return entities.ServiceRecord{}, err
	}
	return record, nil
}

func (r *ServiceRecordDynamoRepository) GetByID(ctx context.Context, id string) (entities.ServiceRecord, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.ServiceRecord{}, err
	}
	if len(out.Item) == 0 {
		return entities.ServiceRecord{}, nil
	}

	var it serviceRecordItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.ServiceRecord{}, err
	}
	return fromServiceRecordItem(it), nil
}

// List scans with as much of the filter pushed into a FilterExpression as
// DynamoDB can express; the month-without-year case is resolved in memory
// because begins_with needs a prefix and "any year, month 03" has none.
func (r *ServiceRecordDynamoRepository) List(ctx context.Context, filter interfaces.ServiceRecordFilter) ([]entities.ServiceRecord, error) {
	var exprs []string
	names := map[string]string{}
	values := map[string]types.AttributeValue{}

	if filter.Status != "" {
		exprs = append(exprs, "#status = :status")
		names["#status"] = "status"
		values[":status"] = &types.AttributeValueMemberS{Value: string(filter.Status)}
	}
	if filter.TipoDemanda != "" {
		exprs = append(exprs, "tipo_demanda = :tipo")
		values[":tipo"] = &types.AttributeValueMemberS{Value: string(filter.TipoDemanda)}
	}
	if filter.MatriculaExact != "" {
		exprs = append(exprs, "matricula_instrutor = :matricula")
		values[":matricula"] = &types.AttributeValueMemberS{Value: filter.MatriculaExact}
	} else if filter.MatriculaContains != "" {
		exprs = append(exprs, "contains(matricula_instrutor, :matricula)")
		values[":matricula"] = &types.AttributeValueMemberS{Value: filter.MatriculaContains}
	}
	if filter.DataInicio != "" {
		exprs = append(exprs, "data_servico >= :data_inicio")
		values[":data_inicio"] = &types.AttributeValueMemberS{Value: filter.DataInicio}
	}
	if filter.DataFim != "" {
		exprs = append(exprs, "data_servico <= :data_fim")
		values[":data_fim"] = &types.AttributeValueMemberS{Value: filter.DataFim}
	}
	if filter.Ano != 0 {
		prefix := fmt.Sprintf("%04d", filter.Ano)
		if filter.Mes != 0 {
			prefix = fmt.Sprintf("%04d-%02d", filter.Ano, filter.Mes)
		}
		exprs = append(exprs, "begins_with(data_servico, :prefixo)")
		values[":prefixo"] = &types.AttributeValueMemberS{Value: prefix}
	}

	input := &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	}
	if len(exprs) > 0 {
		input.FilterExpression = aws.String(strings.Join(exprs, " AND "))
		input.ExpressionAttributeValues = values
		if len(names) > 0 {
			input.ExpressionAttributeNames = names
		}
	}

	var result []entities.ServiceRecord
	paginator := dynamodb.NewScanPaginator(r.ddb, input)
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		var items []serviceRecordItem
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			record := fromServiceRecordItem(it)
			if filter.Ano == 0 && filter.Mes != 0 && !matchesMonth(record.DataServico, filter.Mes) {
				continue
			}
			result = append(result, record)
		}
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result, nil
}

// UpdatePendente replaces the record only while its stored status is still
// PENDENTE. A rejected condition comes back as an empty struct so callers can
// distinguish "already reviewed" from infrastructure failures.
func (r *ServiceRecordDynamoRepository) UpdatePendente(ctx context.Context, record entities.ServiceRecord) (entities.ServiceRecord, error) {
	item, err := attributevalue.MarshalMap(toServiceRecordItem(record))
	if err != nil {
		return entities.ServiceRecord{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                item,
		ConditionExpression: aws.String("attribute_exists(id) AND #status = :pendente"),
		ExpressionAttributeNames: map[string]string{
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pendente": &types.AttributeValueMemberS{Value: string(entities.StatusPendente)},
		},
	})
	if err != nil {
		if conditionFailed(err) {
			return entities.ServiceRecord{}, nil
		}
		return entities.ServiceRecord{}, err
	}
	return record, nil
}

// UpdateStatus moves the record from one status to another in a single
// conditional UpdateItem, which is what makes concurrent reviews safe: the
// second reviewer's write finds the status changed and fails the condition.
func (r *ServiceRecordDynamoRepository) UpdateStatus(ctx context.Context, id string, from, to entities.ServiceStatus, observacoesGestor string) (entities.ServiceRecord, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		UpdateExpression:    aws.String("SET #status = :to, observacoes_gestor = :obs, updated_at = :updated_at"),
		ConditionExpression: aws.String("attribute_exists(id) AND #status = :from"),
		ExpressionAttributeNames: map[string]string{
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":to":         &types.AttributeValueMemberS{Value: string(to)},
			":from":       &types.AttributeValueMemberS{Value: string(from)},
			":obs":        &types.AttributeValueMemberS{Value: observacoesGestor},
			":updated_at": &types.AttributeValueMemberS{Value: formatTime(nowUTC())},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		if conditionFailed(err) {
			return entities.ServiceRecord{}, nil
		}
		return entities.ServiceRecord{}, err
	}

	var it serviceRecordItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.ServiceRecord{}, err
	}
	return fromServiceRecordItem(it), nil
}

func (r *ServiceRecordDynamoRepository) DeletePendente(ctx context.Context, id string) (bool, error) {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(id) AND #status = :pendente"),
		ExpressionAttributeNames: map[string]string{
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pendente": &types.AttributeValueMemberS{Value: string(entities.StatusPendente)},
		},
	})
	if err != nil {
		if conditionFailed(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// matchesMonth checks the MM slice of a YYYY-MM-DD date string.
func matchesMonth(dataServico string, mes int) bool {
	if len(dataServico) < 7 {
		return false
	}
	return dataServico[5:7] == fmt.Sprintf("%02d", mes)
}

func toServiceRecordItem(r entities.ServiceRecord) serviceRecordItem {
	return serviceRecordItem{
		ID:                       r.ID,
		MatriculaInstrutor:       r.MatriculaInstrutor,
		NomeInstrutor:            r.NomeInstrutor,
		DataServico:              r.DataServico,
		HoraInicio:               r.HoraInicio,
		HoraFim:                  r.HoraFim,
		DuracaoHoras:             r.DuracaoHoras,
		DescricaoAtividade:       r.DescricaoAtividade,
		TipoDemanda:              string(r.TipoDemanda),
		ServiceTypeID:            r.ServiceTypeID,
		ValorHoraAula:            r.ValorHoraAula,
		ValorAdicionalPercentual: r.ValorAdicionalPercentual,
		ValorCalculado:           r.ValorCalculado,
		Status:                   string(r.Status),
		Observacoes:              r.Observacoes,
		ObservacoesGestor:        r.ObservacoesGestor,
		CreatedAt:                formatTime(r.CreatedAt),
		UpdatedAt:                formatTime(r.UpdatedAt),
	}
}

func fromServiceRecordItem(it serviceRecordItem) entities.ServiceRecord {
	return entities.ServiceRecord{
		ID:                       it.ID,
		MatriculaInstrutor:       it.MatriculaInstrutor,
		NomeInstrutor:            it.NomeInstrutor,
		DataServico:              it.DataServico,
		HoraInicio:               it.HoraInicio,
		HoraFim:                  it.HoraFim,
		DuracaoHoras:             it.DuracaoHoras,
		DescricaoAtividade:       it.DescricaoAtividade,
		TipoDemanda:              entities.TipoDemanda(it.TipoDemanda),
		ServiceTypeID:            it.ServiceTypeID,
		ValorHoraAula:            it.ValorHoraAula,
		ValorAdicionalPercentual: it.ValorAdicionalPercentual,
		ValorCalculado:           it.ValorCalculado,
		Status:                   entities.ServiceStatus(it.Status),
		Observacoes:              it.Observacoes,
		ObservacoesGestor:        it.ObservacoesGestor,
		CreatedAt:                parseTime(it.CreatedAt),
		UpdatedAt:                parseTime(it.UpdatedAt),
	}
}
