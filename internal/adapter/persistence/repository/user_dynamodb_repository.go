package repository

import (
	"context"
	"sort"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/giordanomadjo-lab/sisgped/internal/domain/entities"
	"github.com/giordanomadjo-lab/sisgped/internal/usecase/interfaces"
)

const (
	defaultUsersTableName = "users"
	emailGuardPrefix      = "email#"
)

type userItem struct {
	ID           string `dynamodbav:"id"`
	Nome         string `dynamodbav:"nome"`
	Email        string `dynamodbav:"email"`
	SenhaHash    string `dynamodbav:"senha_hash"`
	Perfil       string `dynamodbav:"perfil"`
	Matricula    string `dynamodbav:"matricula,omitempty"`
	Ativo        bool   `dynamodbav:"ativo"`
	UltimoAcesso string `dynamodbav:"ultimo_acesso,omitempty"`
	CreatedAt    string `dynamodbav:"created_at"`
	UpdatedAt    string `dynamodbav:"updated_at"`
}

// emailGuardItem reserves a normalized email address. It shares the users
// table: guard ids carry the "email#" prefix and a user_id attribute, nothing
// else, which is also how scans tell guards and accounts apart.
type emailGuardItem struct {
	ID     string `dynamodbav:"id"`
	UserID string `dynamodbav:"user_id"`
}

// UserDynamoRepository persists login accounts in DynamoDB.
//
// Table requirements:
//   - PK: id
//
// Email uniqueness is enforced with a TransactWriteItems pair (account item +
// email guard item, both condition-guarded), so there is no window between a
// pre-check and the insert.

type UserDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IUserRepository = (*UserDynamoRepository)(nil)

func NewUserDynamoRepository(ddb *dynamodb.Client) *UserDynamoRepository {
	return &UserDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("USERS_TABLE", defaultUsersTableName),
	}
}

func (r *UserDynamoRepository) Create(ctx context.Context, u entities.User) (entities.User, error) {
	userAV, err := attributevalue.MarshalMap(toUserItem(u))
	if err != nil {
		return entities.User{}, err
	}
	guardAV, err := attributevalue.MarshalMap(emailGuardItem{ID: emailGuardPrefix + u.Email, UserID: u.ID})
	if err != nil {
		return entities.User{}, err
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{Put: &types.Put{
				TableName:                aws.String(r.tableName),
				Item:                     guardAV,
				ConditionExpression:      aws.String("attribute_not_exists(#id)"),
				ExpressionAttributeNames: map[string]string{"#id": "id"},
			}},
			{Put: &types.Put{
				TableName:                aws.String(r.tableName),
				Item:                     userAV,
				ConditionExpression:      aws.String("attribute_not_exists(#id)"),
				ExpressionAttributeNames: map[string]string{"#id": "id"},
			}},
		},
	})
	if err != nil {
		if conditionFailed(err) {
			return entities.User{}, interfaces.ErrDuplicateKey
		}
		return entities.User{}, err
	}
	return u, nil
}

func (r *UserDynamoRepository) GetByID(ctx context.Context, id string) (entities.User, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.User{}, err
	}
	if len(out.Item) == 0 {
		return entities.User{}, nil
	}

	var it userItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.User{}, err
	}
	return fromUserItem(it), nil
}

func (r *UserDynamoRepository) GetByEmail(ctx context.Context, email string) (entities.User, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: emailGuardPrefix + email},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.User{}, err
	}
	if len(out.Item) == 0 {
		return entities.User{}, nil
	}

	var guard emailGuardItem
	if err := attributevalue.UnmarshalMap(out.Item, &guard); err != nil {
		return entities.User{}, err
	}
	return r.GetByID(ctx, guard.UserID)
}

func (r *UserDynamoRepository) GetByMatricula(ctx context.Context, matricula string) (entities.User, error) {
	if matricula == "" {
		return entities.User{}, nil
	}
	users, err := r.scan(ctx, aws.String("matricula = :matricula"), map[string]types.AttributeValue{
		":matricula": &types.AttributeValueMemberS{Value: matricula},
	})
	if err != nil {
		return entities.User{}, err
	}
	if len(users) == 0 {
		return entities.User{}, nil
	}
	return users[0], nil
}

func (r *UserDynamoRepository) List(ctx context.Context) ([]entities.User, error) {
	users, err := r.scan(ctx, aws.String("attribute_not_exists(user_id)"), nil)
	if err != nil {
		return nil, err
	}
	sort.Slice(users, func(i, j int) bool {
		if users[i].Perfil != users[j].Perfil {
			return users[i].Perfil < users[j].Perfil
		}
		return users[i].Nome < users[j].Nome
	})
	return users, nil
}

func (r *UserDynamoRepository) ListActiveByPerfil(ctx context.Context, perfil entities.Perfil) ([]entities.User, error) {
	return r.scan(ctx, aws.String("perfil = :perfil AND ativo = :ativo"), map[string]types.AttributeValue{
		":perfil": &types.AttributeValueMemberS{Value: string(perfil)},
		":ativo":  &types.AttributeValueMemberBOOL{Value: true},
	})
}

func (r *UserDynamoRepository) Update(ctx context.Context, u entities.User, previousEmail string) (entities.User, error) {
	userAV, err := attributevalue.MarshalMap(toUserItem(u))
	if err != nil {
		return entities.User{}, err
	}

	if u.Email == previousEmail {
		_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
			TableName:                aws.String(r.tableName),
			Item:                     userAV,
			ConditionExpression:      aws.String("attribute_exists(#id)"),
			ExpressionAttributeNames: map[string]string{"#id": "id"},
		})
		if err != nil {
			return entities.User{}, err
		}
		return u, nil
	}

	// Email change: claim the new guard, release the old one, and rewrite the
	// account, all or nothing.
	guardAV, err := attributevalue.MarshalMap(emailGuardItem{ID: emailGuardPrefix + u.Email, UserID: u.ID})
	if err != nil {
		return entities.User{}, err
	}
	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{Put: &types.Put{
				TableName:                aws.String(r.tableName),
				Item:                     guardAV,
				ConditionExpression:      aws.String("attribute_not_exists(#id)"),
				ExpressionAttributeNames: map[string]string{"#id": "id"},
			}},
			{Delete: &types.Delete{
				TableName: aws.String(r.tableName),
				Key: map[string]types.AttributeValue{
					"id": &types.AttributeValueMemberS{Value: emailGuardPrefix + previousEmail},
				},
			}},
			{Put: &types.Put{
				TableName:                aws.String(r.tableName),
				Item:                     userAV,
				ConditionExpression:      aws.String("attribute_exists(#id)"),
				ExpressionAttributeNames: map[string]string{"#id": "id"},
			}},
		},
	})
	if err != nil {
		if conditionFailed(err) {
			return entities.User{}, interfaces.ErrDuplicateKey
		}
		return entities.User{}, err
	}
	return u, nil
}

func (r *UserDynamoRepository) UpdateUltimoAcesso(ctx context.Context, id string) error {
	_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET ultimo_acesso = :agora"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":agora": &types.AttributeValueMemberS{Value: formatTime(time.Now())},
		},
	})
	return err
}

func (r *UserDynamoRepository) scan(ctx context.Context, filter *string, values map[string]types.AttributeValue) ([]entities.User, error) {
	input := &dynamodb.ScanInput{
		TableName:                 aws.String(r.tableName),
		FilterExpression:          filter,
		ExpressionAttributeValues: values,
	}
	if len(values) == 0 {
		input.ExpressionAttributeValues = nil
	}

	var users []entities.User
	paginator := dynamodb.NewScanPaginator(r.ddb, input)
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		var items []userItem
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			users = append(users, fromUserItem(it))
		}
	}
	return users, nil
}

func toUserItem(u entities.User) userItem {
	it := userItem{
		ID:        u.ID,
		Nome:      u.Nome,
		Email:     u.Email,
		SenhaHash: u.SenhaHash,
		Perfil:    string(u.Perfil),
		Matricula: u.Matricula,
		Ativo:     u.Ativo,
		CreatedAt: formatTime(u.CreatedAt),
		UpdatedAt: formatTime(u.UpdatedAt),
	}
	if u.UltimoAcesso != nil {
		it.UltimoAcesso = formatTime(*u.UltimoAcesso)
	}
	return it
}

func fromUserItem(it userItem) entities.User {
	u := entities.User{
		ID:        it.ID,
		Nome:      it.Nome,
		Email:     it.Email,
		SenhaHash: it.SenhaHash,
		Perfil:    entities.Perfil(it.Perfil),
		Matricula: it.Matricula,
		Ativo:     it.Ativo,
		CreatedAt: parseTime(it.CreatedAt),
		UpdatedAt: parseTime(it.UpdatedAt),
	}
	if it.UltimoAcesso != "" {
		t := parseTime(it.UltimoAcesso)
		u.UltimoAcesso = &t
	}
	return u
}
