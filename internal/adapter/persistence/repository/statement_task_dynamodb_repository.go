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

const tasksContractIndex = "contract_id-index"

type statementTaskItem struct {
	ID                 string `dynamodbav:"id"`
	CustomerSiteID     string `dynamodbav:"customer_site_id"`
	ContractID         string `dynamodbav:"contract_id"`
	Status             string `dynamodbav:"status"`
	Source             string `dynamodbav:"source"`
	ServicePeriodStart string `dynamodbav:"service_period_start,omitempty"`
	CreatedAt          string `dynamodbav:"created_at"`
}

// StatementTaskDynamoRepository persists statement generation tasks.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: contract_id-index (PK: contract_id)
type StatementTaskDynamoRepository struct {
	ddb       DynamoDBAPI
	tableName string
}

var _ interfaces.IStatementTaskRepository = (*StatementTaskDynamoRepository)(nil)

func NewStatementTaskDynamoRepository(ddb DynamoDBAPI, tables config.Tables) *StatementTaskDynamoRepository {
	return &StatementTaskDynamoRepository{ddb: ddb, tableName: tables.StatementTasks}
}

func (r *StatementTaskDynamoRepository) ListOpen(ctx context.Context) ([]entities.StatementTask, error) {
	return scanAll(ctx, r.ddb, openTaskScan(r.tableName), decodeMapped(fromStatementTaskItem))
}

func (r *StatementTaskDynamoRepository) ListOpenByContract(ctx context.Context, contractID string) ([]entities.StatementTask, error) {
	return queryKeysAll(ctx, r.ddb, []string{contractID}, openTaskQuery(r.tableName, tasksContractIndex, "contract_id"), decodeMapped(fromStatementTaskItem))
}

func (r *StatementTaskDynamoRepository) Create(ctx context.Context, task entities.StatementTask) (entities.StatementTask, error) {
	av, err := attributevalue.MarshalMap(toStatementTaskItem(task))
	if err != nil {
		return entities.StatementTask{}, err
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
		return entities.StatementTask{}, err
	}
	return task, nil
}

// CreateBatch writes tasks in BatchWriteItem groups and returns their ids in order.
func (r *StatementTaskDynamoRepository) CreateBatch(ctx context.Context, tasks []entities.StatementTask) ([]string, error) {
	items := make([]map[string]types.AttributeValue, 0, len(tasks))
	ids := make([]string, 0, len(tasks))
	for _, t := range tasks {
		av, err := attributevalue.MarshalMap(toStatementTaskItem(t))
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

// openTaskFilter selects Pending and InProgress tasks. Statement and email
// tasks share the status names.
const openTaskFilter = "#status IN (:pending, :in_progress)"

func openTaskNames() map[string]string {
	return map[string]string{"#status": "status"}
}

func openTaskValues() map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		":pending":     &types.AttributeValueMemberS{Value: string(entities.StatementTaskStatusPending)},
		":in_progress": &types.AttributeValueMemberS{Value: string(entities.StatementTaskStatusInProgress)},
	}
}

func openTaskScan(table string) func() *dynamodb.ScanInput {
	return func() *dynamodb.ScanInput {
		return &dynamodb.ScanInput{
			TableName:                 aws.String(table),
			FilterExpression:          aws.String(openTaskFilter),
			ExpressionAttributeNames:  openTaskNames(),
			ExpressionAttributeValues: openTaskValues(),
		}
	}
}

func openTaskQuery(table, index, attr string) func(key string) *dynamodb.QueryInput {
	base := indexQuery(table, index, attr)
	return func(key string) *dynamodb.QueryInput {
		in := base(key)
		in.FilterExpression = aws.String(openTaskFilter)
		in.ExpressionAttributeNames = mergeNames(in.ExpressionAttributeNames, openTaskNames())
		for k, v := range openTaskValues() {
			in.ExpressionAttributeValues[k] = v
		}
		return in
	}
}

func toStatementTaskItem(t entities.StatementTask) statementTaskItem {
	return statementTaskItem{
		ID:                 t.ID,
		CustomerSiteID:     t.CustomerSiteID,
		ContractID:         t.ContractID,
		Status:             string(t.Status),
		Source:             t.Source,
		ServicePeriodStart: formatOptTime(t.ServicePeriodStart),
		CreatedAt:          formatTime(t.CreatedAt),
	}
}

func fromStatementTaskItem(it statementTaskItem) entities.StatementTask {
	return entities.StatementTask{
		ID:                 it.ID,
		CustomerSiteID:     it.CustomerSiteID,
		ContractID:         it.ContractID,
		Status:             entities.StatementTaskStatus(it.Status),
		Source:             it.Source,
		ServicePeriodStart: parseOptTime(it.ServicePeriodStart),
		CreatedAt:          parseTime(it.CreatedAt),
	}
}
