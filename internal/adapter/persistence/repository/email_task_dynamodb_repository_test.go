package repository

import (
	"context"
	"testing"
	"time"

	"billing_core/internal/domain/entities"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func emailTaskAttrs(id, statementID, status string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"id":                   sAttr(id),
		"billing_statement_id": sAttr(statementID),
		"status":               sAttr(status),
		"created_at":           sAttr("2024-06-01T00:00:00Z"),
	}
}

func TestEmailTaskRepository_ListOpen(t *testing.T) {
	var scans []*dynamodb.ScanInput
	ddb := &fakeDynamo{scan: func(in *dynamodb.ScanInput) (*dynamodb.ScanOutput, error) {
		scans = append(scans, in)
		if len(scans) == 1 {
			return &dynamodb.ScanOutput{
				Items:            []map[string]types.AttributeValue{emailTaskAttrs("e1", "st-1", "Pending")},
				LastEvaluatedKey: map[string]types.AttributeValue{"id": sAttr("e1")},
			}, nil
		}
		return &dynamodb.ScanOutput{Items: []map[string]types.AttributeValue{emailTaskAttrs("e2", "st-2", "InProgress")}}, nil
	}}
	repo := NewEmailTaskDynamoRepository(ddb, testTables())

	tasks, err := repo.ListOpen(context.Background())

	require.NoError(t, err)
	require.Len(t, tasks, 2)
	assert.Equal(t, "st-1", tasks[0].BillingStatementID)
	assert.Equal(t, entities.EmailTaskStatusInProgress, tasks[1].Status)
	require.Len(t, scans, 2)
	assert.Equal(t, "email_tasks", *scans[0].TableName)
	assert.Equal(t, openTaskFilter, *scans[0].FilterExpression)
	assert.Nil(t, scans[0].ExclusiveStartKey)
	assert.Equal(t, "e1", scans[1].ExclusiveStartKey["id"].(*types.AttributeValueMemberS).Value)
}

func TestEmailTaskRepository_ListOpenByStatement(t *testing.T) {
	var got *dynamodb.QueryInput
	ddb := &fakeDynamo{query: func(in *dynamodb.QueryInput) (*dynamodb.QueryOutput, error) {
		got = in
		return &dynamodb.QueryOutput{Items: []map[string]types.AttributeValue{emailTaskAttrs("e1", "st-1", "Pending")}}, nil
	}}
	repo := NewEmailTaskDynamoRepository(ddb, testTables())

	tasks, err := repo.ListOpenByStatement(context.Background(), "st-1")

	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.True(t, tasks[0].IsOpen())
	assert.Empty(t, tasks[0].SendAction)
	assert.Equal(t, "billing_statement_id-index", *got.IndexName)
	assert.Equal(t, openTaskFilter, *got.FilterExpression)
	assert.Equal(t, "billing_statement_id", got.ExpressionAttributeNames["#pk"])
	assert.Equal(t, "status", got.ExpressionAttributeNames["#status"])
	assert.Equal(t, "st-1", got.ExpressionAttributeValues[":pk"].(*types.AttributeValueMemberS).Value)
	assert.Equal(t, "Pending", got.ExpressionAttributeValues[":pending"].(*types.AttributeValueMemberS).Value)
}

func TestEmailTaskRepository_Create(t *testing.T) {
	var got *dynamodb.PutItemInput
	ddb := &fakeDynamo{putItem: func(in *dynamodb.PutItemInput) (*dynamodb.PutItemOutput, error) {
		got = in
		return &dynamodb.PutItemOutput{}, nil
	}}
	repo := NewEmailTaskDynamoRepository(ddb, testTables())
	task := entities.EmailTask{
		ID:                 "e1",
		BillingStatementID: "st-1",
		Status:             entities.EmailTaskStatusPending,
		SendAction:         entities.EmailSendActionAll,
		CreatedAt:          time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
	}

	created, err := repo.Create(context.Background(), task)

	require.NoError(t, err)
	assert.Equal(t, task, created)
	assert.Equal(t, "attribute_not_exists(#id)", *got.ConditionExpression)
	assert.Equal(t, "SendAll", got.Item["send_action"].(*types.AttributeValueMemberS).Value)
	assert.Equal(t, "st-1", got.Item["billing_statement_id"].(*types.AttributeValueMemberS).Value)
}

func TestEmailTaskRepository_CreateBatch(t *testing.T) {
	var batches []int
	ddb := &fakeDynamo{batchWriteItem: func(in *dynamodb.BatchWriteItemInput) (*dynamodb.BatchWriteItemOutput, error) {
		batches = append(batches, len(in.RequestItems["email_tasks"]))
		return &dynamodb.BatchWriteItemOutput{}, nil
	}}
	repo := NewEmailTaskDynamoRepository(ddb, testTables())

	tasks := []entities.EmailTask{
		{ID: "e1", BillingStatementID: "st-1", Status: entities.EmailTaskStatusPending},
		{ID: "e2", BillingStatementID: "st-2", Status: entities.EmailTaskStatusPending},
	}

	ids, err := repo.CreateBatch(context.Background(), tasks)

	require.NoError(t, err)
	assert.Equal(t, []string{"e1", "e2"}, ids)
	assert.Equal(t, []int{2}, batches)
}
