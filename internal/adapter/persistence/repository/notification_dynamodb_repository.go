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

const (
	defaultNotificationsTableName = "notifications"
	notificationsUserIndex        = "user_id-index"
)

type notificationItem struct {
	ID        string `dynamodbav:"id"`
	UserID    string `dynamodbav:"user_id"`
	Titulo    string `dynamodbav:"titulo"`
	Mensagem  string `dynamodbav:"mensagem"`
	Tipo      string `dynamodbav:"tipo"`
	Link      string `dynamodbav:"link"`
	ServiceID string `dynamodbav:"service_id"`
	Lida      bool   `dynamodbav:"lida"`
	CreatedAt string `dynamodbav:"created_at"`
}

// NotificationDynamoRepository persists the per-user notification feed.
//
// Table requirements:
//   - PK: id
//   - GSI user_id-index: HASH user_id, RANGE created_at

type NotificationDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.INotificationRepository = (*NotificationDynamoRepository)(nil)

func NewNotificationDynamoRepository(ddb *dynamodb.Client) *NotificationDynamoRepository {
	return &NotificationDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("NOTIFICATIONS_TABLE", defaultNotificationsTableName),
	}
}

func (r *NotificationDynamoRepository) Create(ctx context.Context, n entities.Notification) (entities.Notification, error) {
	item, err := attributevalue.MarshalMap(toNotificationItem(n))
	if err != nil {
		return entities.Notification{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                item,
		ConditionExpression: aws.String("attribute_not_exists(id)"),
	})
	if err != nil {
		return entities.Notification{}, err
	}
	return n, nil
}

func (r *NotificationDynamoRepository) ListByUser(ctx context.Context, userID string, lida *bool, limit int) ([]entities.Notification, error) {
	input := &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(notificationsUserIndex),
		KeyConditionExpression: aws.String("user_id = :uid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":uid": &types.AttributeValueMemberS{Value: userID},
		},
		ScanIndexForward: aws.Bool(false),
	}
	if lida != nil {
		input.FilterExpression = aws.String("lida = :lida")
		input.ExpressionAttributeValues[":lida"] = &types.AttributeValueMemberBOOL{Value: *lida}
	}

	var result []entities.Notification
	paginator := dynamodb.NewQueryPaginator(r.ddb, input)
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		var items []notificationItem
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			result = append(result, fromNotificationItem(it))
		}
		if limit > 0 && len(result) >= limit {
			break
		}
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	if limit > 0 && len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

// MarkRead flips lida on a single row. The user_id condition keeps one user
// from acknowledging another user's notifications; a failed condition is
// swallowed because the caller cannot act on it anyway.
func (r *NotificationDynamoRepository) MarkRead(ctx context.Context, id, userID string) error {
	_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		UpdateExpression:    aws.String("SET lida = :lida"),
		ConditionExpression: aws.String("attribute_exists(id) AND user_id = :uid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":lida": &types.AttributeValueMemberBOOL{Value: true},
			":uid":  &types.AttributeValueMemberS{Value: userID},
		},
	})
	if err != nil && !conditionFailed(err) {
		return err
	}
	return nil
}

func (r *NotificationDynamoRepository) MarkAllRead(ctx context.Context, userID string) error {
	unread := false
	pending, err := r.ListByUser(ctx, userID, &unread, 0)
	if err != nil {
		return err
	}
	for _, n := range pending {
		if err := r.MarkRead(ctx, n.ID, userID); err != nil {
			return err
		}
	}
	return nil
}

func (r *NotificationDynamoRepository) CountUnread(ctx context.Context, userID string) (int, error) {
	input := &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(notificationsUserIndex),
		KeyConditionExpression: aws.String("user_id = :uid"),
		FilterExpression:       aws.String("lida = :lida"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":uid":  &types.AttributeValueMemberS{Value: userID},
			":lida": &types.AttributeValueMemberBOOL{Value: false},
		},
		Select: types.SelectCount,
	}

	total := 0
	paginator := dynamodb.NewQueryPaginator(r.ddb, input)
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return 0, err
		}
		total += int(page.Count)
	}
	return total, nil
}

func toNotificationItem(n entities.Notification) notificationItem {
	return notificationItem{
		ID:        n.ID,
		UserID:    n.UserID,
		Titulo:    n.Titulo,
		Mensagem:  n.Mensagem,
		Tipo:      string(n.Tipo),
		Link:      n.Link,
		ServiceID: n.ServiceID,
		Lida:      n.Lida,
		CreatedAt: formatTime(n.CreatedAt),
	}
}

func fromNotificationItem(it notificationItem) entities.Notification {
	return entities.Notification{
		ID:        it.ID,
		UserID:    it.UserID,
		Titulo:    it.Titulo,
		Mensagem:  it.Mensagem,
		Tipo:      entities.NotificationTipo(it.Tipo),
		Link:      it.Link,
		ServiceID: it.ServiceID,
		Lida:      it.Lida,
		CreatedAt: parseTime(it.CreatedAt),
	}
}
