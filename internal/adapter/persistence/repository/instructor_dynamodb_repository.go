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

const defaultInstructorsTableName = "instructors"

type instructorItem struct {
	Matricula     string  `dynamodbav:"matricula"`
	Nome          string  `dynamodbav:"nome"`
	Email         string  `dynamodbav:"email,omitempty"`
	ValorHoraAula float64 `dynamodbav:"valor_hora_aula"`
	Ativo         bool    `dynamodbav:"ativo"`
	CreatedAt     string  `dynamodbav:"created_at"`
	UpdatedAt     string  `dynamodbav:"updated_at"`
}

// InstructorDynamoRepository persists payee profiles in DynamoDB.
//
// Table requirements:
//   - PK: matricula
//
// We purposely use the matricula as PK: the conditional put below is the
// single authority for matricula uniqueness.

type InstructorDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IInstructorRepository = (*InstructorDynamoRepository)(nil)

func NewInstructorDynamoRepository(ddb *dynamodb.Client) *InstructorDynamoRepository {
	return &InstructorDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("INSTRUCTORS_TABLE", defaultInstructorsTableName),
	}
}

func (r *InstructorDynamoRepository) Create(ctx context.Context, i entities.Instructor) (entities.Instructor, error) {
	av, err := attributevalue.MarshalMap(toInstructorItem(i))
	if err != nil {
		return entities.Instructor{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                aws.String(r.tableName),
		Item:                     av,
		ConditionExpression:      aws.String("attribute_not_exists(#matricula)"),
		ExpressionAttributeNames: map[string]string{"#matricula": "matricula"},
	})
	if err != nil {
		if conditionFailed(err) {
			return entities.Instructor{}, interfaces.ErrDuplicateKey
		}
		return entities.Instructor{}, err
	}
	return i, nil
}

func (r *InstructorDynamoRepository) GetByMatricula(ctx context.Context, matricula string) (entities.Instructor, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"matricula": &types.AttributeValueMemberS{Value: matricula},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Instructor{}, err
	}
	if len(out.Item) == 0 {
		return entities.Instructor{}, nil
	}

	var it instructorItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Instructor{}, err
	}
	return fromInstructorItem(it), nil
}

func (r *InstructorDynamoRepository) List(ctx context.Context) ([]entities.Instructor, error) {
	input := &dynamodb.ScanInput{
		TableName:        aws.String(r.tableName),
		FilterExpression: aws.String("ativo = :ativo"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":ativo": &types.AttributeValueMemberBOOL{Value: true},
		},
	}

	var instructors []entities.Instructor
	paginator := dynamodb.NewScanPaginator(r.ddb, input)
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		var items []instructorItem
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			instructors = append(instructors, fromInstructorItem(it))
		}
	}

	sort.Slice(instructors, func(i, j int) bool { return instructors[i].Nome < instructors[j].Nome })
	return instructors, nil
}

func (r *InstructorDynamoRepository) Update(ctx context.Context, i entities.Instructor) (entities.Instructor, error) {
	av, err := attributevalue.MarshalMap(toInstructorItem(i))
	if err != nil {
		return entities.Instructor{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                aws.String(r.tableName),
		Item:                     av,
		ConditionExpression:      aws.String("attribute_exists(#matricula)"),
		ExpressionAttributeNames: map[string]string{"#matricula": "matricula"},
	})
	if err != nil {
		if conditionFailed(err) {
			return entities.Instructor{}, nil
		}
		return entities.Instructor{}, err
	}
	return i, nil
}

func toInstructorItem(i entities.Instructor) instructorItem {
	return instructorItem{
		Matricula:     i.Matricula,
		Nome:          i.Nome,
		Email:         i.Email,
		ValorHoraAula: i.ValorHoraAula,
		Ativo:         i.Ativo,
		CreatedAt:     formatTime(i.CreatedAt),
		UpdatedAt:     formatTime(i.UpdatedAt),
	}
}

func fromInstructorItem(it instructorItem) entities.Instructor {
	return entities.Instructor{
		Matricula:     it.Matricula,
		Nome:          it.Nome,
		Email:         it.Email,
		ValorHoraAula: it.ValorHoraAula,
		Ativo:         it.Ativo,
		CreatedAt:     parseTime(it.CreatedAt),
		UpdatedAt:     parseTime(it.UpdatedAt),
	}
}
