package repository

import (
	"context"
	"sort"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/giordanomadjo-lab/sisgped/internal/domain/entities"
	"github.com/giordanomadjo-lab/sisgped/internal/usecase/interfaces"
)

const defaultServiceTypesTableName = "service_types"

type serviceTypeItem struct {
	ID        string `dynamodbav:"id"`
	Nome      string `dynamodbav:"nome"`
	Categoria string `dynamodbav:"categoria"`
	Ativo     bool   `dynamodbav:"ativo"`
}

// ServiceTypeDynamoRepository reads the activity-type catalog seeded by
// cmd/migrate.
//
// Table requirements:
//   - PK: id

type ServiceTypeDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IServiceTypeRepository = (*ServiceTypeDynamoRepository)(nil)

func NewServiceTypeDynamoRepository(ddb *dynamodb.Client) *ServiceTypeDynamoRepository {
	return &ServiceTypeDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("SERVICE_TYPES_TABLE", defaultServiceTypesTableName),
	}
}

func (r *ServiceTypeDynamoRepository) List(ctx context.Context, categoria entities.TipoDemanda) ([]entities.ServiceType, error) {
	filter := "ativo = :ativo"
	values := map[string]types.AttributeValue{
		":ativo": &types.AttributeValueMemberBOOL{Value: true},
	}
	if categoria != "" {
		filter += " AND categoria = :categoria"
		values[":categoria"] = &types.AttributeValueMemberS{Value: string(categoria)}
	}

	input := &dynamodb.ScanInput{
		TableName:                 aws.String(r.tableName),
		FilterExpression:          aws.String(filter),
		ExpressionAttributeValues: values,
	}

	var result []entities.ServiceType
	paginator := dynamodb.NewScanPaginator(r.ddb, input)
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		var items []serviceTypeItem
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			result = append(result, fromServiceTypeItem(it))
		}
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].Categoria != result[j].Categoria {
			return result[i].Categoria < result[j].Categoria
		}
		return result[i].Nome < result[j].Nome
	})
	return result, nil
}

func (r *ServiceTypeDynamoRepository) GetByID(ctx context.Context, id string) (entities.ServiceType, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	if err != nil {
		return entities.ServiceType{}, err
	}
	if len(out.Item) == 0 {
		return entities.ServiceType{}, nil
	}

	var it serviceTypeItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.ServiceType{}, err
	}
	return fromServiceTypeItem(it), nil
}

func fromServiceTypeItem(it serviceTypeItem) entities.ServiceType {
	return entities.ServiceType{
		ID:        it.ID,
		Nome:      it.Nome,
		Categoria: entities.TipoDemanda(it.Categoria),
		Ativo:     it.Ativo,
	}
}
