package repository

import (
	"context"
	"errors"
	"strconv"

	"billing_core/internal/config"
	"billing_core/internal/domain/entities"
	"billing_core/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
)

type resourceLockItem struct {
	ResourceID string `dynamodbav:"resource_id"`
	ID         string `dynamodbav:"id"`
	IsLocked   bool   `dynamodbav:"is_locked"`
	Version    int64  `dynamodbav:"version"`
}

// ResourceLockDynamoRepository persists resource locks keyed by resource id.
//
// Table requirements:
//   - PK: resource_id (string)
type ResourceLockDynamoRepository struct {
	ddb       DynamoDBAPI
	tableName string
}

var _ interfaces.IResourceLockRepository = (*ResourceLockDynamoRepository)(nil)

func NewResourceLockDynamoRepository(ddb DynamoDBAPI, tables config.Tables) *ResourceLockDynamoRepository {
	return &ResourceLockDynamoRepository{ddb: ddb, tableName: tables.ResourceLocks}
}

func (r *ResourceLockDynamoRepository) Fetch(ctx context.Context, resourceID string) (entities.ResourceLock, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            lockKey(resourceID),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.ResourceLock{}, err
	}
	if len(out.Item) == 0 {
		return entities.ResourceLock{}, interfaces.ErrLockNotFound
	}
	it, err := decodeItem[resourceLockItem](out.Item)
	if err != nil {
		return entities.ResourceLock{}, err
	}
	return fromResourceLockItem(it), nil
}

func (r *ResourceLockDynamoRepository) Create(ctx context.Context, resourceID string, locked bool) (entities.ResourceLock, error) {
	it := resourceLockItem{
		ResourceID: resourceID,
		ID:         uuid.NewString(),
		IsLocked:   locked,
		Version:    1,
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.ResourceLock{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#resource_id)"),
		ExpressionAttributeNames: map[string]string{
			"#resource_id": "resource_id",
		},
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return entities.ResourceLock{}, interfaces.ErrLockAlreadyExists
		}
		return entities.ResourceLock{}, err
	}
	return fromResourceLockItem(it), nil
}

func (r *ResourceLockDynamoRepository) Update(ctx context.Context, lock entities.ResourceLock) (entities.ResourceLock, error) {
	return r.swap(ctx, lock, lock.IsLocked)
}

func (r *ResourceLockDynamoRepository) Release(ctx context.Context, lock entities.ResourceLock) (entities.ResourceLock, error) {
	return r.swap(ctx, lock, false)
}

// swap writes the lock state only if the stored version still equals lock.Version.
// A failed condition with no stored item means the resource was never registered.
func (r *ResourceLockDynamoRepository) swap(ctx context.Context, lock entities.ResourceLock, locked bool) (entities.ResourceLock, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:           aws.String(r.tableName),
		Key:                 lockKey(lock.ResourceID),
		ConditionExpression: aws.String("#version = :expected"),
		UpdateExpression:    aws.String("SET #is_locked = :locked, #version = #version + :one"),
		ExpressionAttributeNames: map[string]string{
			"#version":   "version",
			"#is_locked": "is_locked",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":expected": &types.AttributeValueMemberN{Value: strconv.FormatInt(lock.Version, 10)},
			":locked":   &types.AttributeValueMemberBOOL{Value: locked},
			":one":      &types.AttributeValueMemberN{Value: "1"},
		},
		ReturnValues:                        types.ReturnValueAllNew,
		ReturnValuesOnConditionCheckFailure: types.ReturnValuesOnConditionCheckFailureAllOld,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			if len(cfe.Item) == 0 {
				return entities.ResourceLock{}, interfaces.ErrLockNotFound
			}
			return entities.ResourceLock{}, interfaces.ErrLockConflict
		}
		return entities.ResourceLock{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.ResourceLock{}, errors.New("lock update returned no attributes")
	}
	it, err := decodeItem[resourceLockItem](out.Attributes)
	if err != nil {
		return entities.ResourceLock{}, err
	}
	return fromResourceLockItem(it), nil
}

func lockKey(resourceID string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"resource_id": &types.AttributeValueMemberS{Value: resourceID},
	}
}

func fromResourceLockItem(it resourceLockItem) entities.ResourceLock {
	return entities.ResourceLock{
		ID:         it.ID,
		ResourceID: it.ResourceID,
		IsLocked:   it.IsLocked,
		Version:    it.Version,
	}
}
