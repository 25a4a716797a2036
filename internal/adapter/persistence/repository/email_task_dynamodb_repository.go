package repository

import (
	"context"

	"billing_core/internal/config"
	"billing_core/internal/domain/entities"
	"billing_core/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const emailTasksStatementIndex = "billing_statement_id-index"

type emailTaskItem struct {
	ID                 string `dynamodbav:"id"`
	BillingStatementID string `dynamodbav:"billing_statement_id"`
	Status             string `dynamodbav:"status"`
	SendAction         string `dynamodbav:"send_action,omitempty"`
	CreatedAt          string `dynamodbav:"created_at"`
}

// EmailTaskDynamoRepository persists statement email tasks.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: billing_statement_id-index (PK: billing_statement_id)
type EmailTaskDynamoRepository struct {
	ddb       DynamoDBAPI
	tableName string
}

var _ interfaces.IEmailTaskRepository = (*EmailTaskDynamoRepository)(nil)

func NewEmailTaskDynamoRepository(ddb DynamoDBAPI, tables config.Tables) *EmailTaskDynamoRepository {
	return &EmailTaskDynamoRepository{ddb: ddb, tableName: tables.EmailTasks}
}

func (r *EmailTaskDynamoRepository) ListOpen(ctx context.Context) ([]entities.EmailTask, error) {
	return scanAll(ctx, r.ddb, openTaskScan(r.tableName), decodeMapped(fromEmailTaskItem))
}

func (r *EmailTaskDynamoRepository) ListOpenByStatement(ctx context.Context, billingStatementID string) ([]entities.EmailTask, error) {
	return queryKeysAll(ctx, r.ddb, []string{billingStatementID}, openTaskQuery(r.tableName, emailTasksStatementIndex, "billing_statement_id"), decodeMapped(fromEmailTaskItem))
}

func (r *EmailTaskDynamoRepository) Create(ctx context.Context, task entities.EmailTask) (entities.EmailTask, error) {
	av, err := attributevalue.MarshalMap(toEmailTaskItem(task))
	if err != nil {
		return entities.EmailTask{}, err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.EmailTask{}, err
	}
	return task, nil
}

func (r *EmailTaskDynamoRepository) CreateBatch(ctx context.Context, tasks []entities.EmailTask) ([]string, error) {
	items := make([]map[string]types.AttributeValue, 0, len(tasks))
	ids := make([]string, 0, len(tasks))
	for _, t := range tasks {
		av, err := attributevalue.MarshalMap(toEmailTaskItem(t))
		if err != nil {
			return nil, err
		}
		items = append(items, av)
		ids = append(ids, t.ID)
	}
	if err := putBatched(ctx, r.ddb, r.tableName, items); err != nil {
		return nil, err
	}
	return ids, nil
}

func toEmailTaskItem(t entities.EmailTask) emailTaskItem {
	return emailTaskItem{
		ID:                 t.ID,
		BillingStatementID: t.BillingStatementID,
		Status:             string(t.Status),
		SendAction:         t.SendAction,
		CreatedAt:          formatTime(t.CreatedAt),
	}
}

func fromEmailTaskItem(it emailTaskItem) entities.EmailTask {
	return entities.EmailTask{
		ID:                 it.ID,
		BillingStatementID: it.BillingStatementID,
		Status:             entities.EmailTaskStatus(it.Status),
		SendAction:         it.SendAction,
		CreatedAt:          parseTime(it.CreatedAt),
	}
}
