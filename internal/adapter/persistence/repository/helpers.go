package repository

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"billing_core/internal/usecase/paging"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
)

// DynamoDBAPI is the subset of *dynamodb.Client used by the repositories.
type DynamoDBAPI interface {
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	UpdateItem(ctx context.Context, params *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error)
	Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
	Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
	BatchGetItem(ctx context.Context, params *dynamodb.BatchGetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.BatchGetItemOutput, error)
	BatchWriteItem(ctx context.Context, params *dynamodb.BatchWriteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.BatchWriteItemOutput, error)
}

var _ DynamoDBAPI = (*dynamodb.Client)(nil)

var ErrInvalidContinuationToken = errors.New("invalid continuation token")

// sortableTime keeps a fixed width so stored timestamps compare lexicographically.
const sortableTime = "2006-01-02T15:04:05.000000000Z07:00"

type keyAttr struct {
	T string `json:"t"`
	V string `json:"v"`
}

// cursor is the continuation state of a query over one or more partition keys:
// the index of the key being read and the last evaluated key within it.
type cursor struct {
	Key  int                `json:"k,omitempty"`
	Last map[string]keyAttr `json:"l,omitempty"`
}

func encodeCursor(c cursor) string {
	raw, _ := json.Marshal(c)
	return base64.RawURLEncoding.EncodeToString(raw)
}

func decodeCursor(token string) (cursor, error) {
	var c cursor
	if token == "" {
		return c, nil
	}
	raw, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return c, fmt.Errorf("%w: %v", ErrInvalidContinuationToken, err)
	}
	if err := json.Unmarshal(raw, &c); err != nil || c.Key < 0 {
		return cursor{}, fmt.Errorf("%w: malformed", ErrInvalidContinuationToken)
	}
	return c, nil
}

func toKeyAttrs(key map[string]types.AttributeValue) map[string]keyAttr {
	if len(key) == 0 {
		return nil
	}
	out := make(map[string]keyAttr, len(key))
	for name, av := range key {
		switch v := av.(type) {
		case *types.AttributeValueMemberS:
			out[name] = keyAttr{T: "S", V: v.Value}
		case *types.AttributeValueMemberN:
			out[name] = keyAttr{T: "N", V: v.Value}
		}
	}
	return out
}

func fromKeyAttrs(attrs map[string]keyAttr) map[string]types.AttributeValue {
	if len(attrs) == 0 {
		return nil
	}
	out := make(map[string]types.AttributeValue, len(attrs))
	for name, a := range attrs {
		if a.T == "N" {
			out[name] = &types.AttributeValueMemberN{Value: a.V}
			continue
		}
		out[name] = &types.AttributeValueMemberS{Value: a.V}
	}
	return out
}

// queryKeysPage reads one page of a query repeated per partition key. Keys are
// read one after another; the continuation token carries the key index and the
// last evaluated key.
func queryKeysPage[T any](
	ctx context.Context,
	ddb DynamoDBAPI,
	keys []string,
	req paging.Request,
	build func(key string) *dynamodb.QueryInput,
	decode func(map[string]types.AttributeValue) (T, error),
) (paging.Page[T], error) {
	cur, err := decodeCursor(req.ContinuationToken)
	if err != nil {
		return paging.Page[T]{}, err
	}
	if cur.Key >= len(keys) {
		return paging.Page[T]{}, nil
	}

	in := build(keys[cur.Key])
	if req.PageCount > 0 {
		in.Limit = aws.Int32(int32(req.PageCount))
	}
	in.ExclusiveStartKey = fromKeyAttrs(cur.Last)

	out, err := ddb.Query(ctx, in)
	if err != nil {
		return paging.Page[T]{}, err
	}
	items, err := decodeAll(out.Items, decode)
	if err != nil {
		return paging.Page[T]{}, err
	}

	next := cursor{Key: cur.Key + 1}
	if len(out.LastEvaluatedKey) > 0 {
		next = cursor{Key: cur.Key, Last: toKeyAttrs(out.LastEvaluatedKey)}
	}
	if next.Key >= len(keys) {
		return paging.Page[T]{Items: items}, nil
	}
	return paging.Page[T]{Items: items, MoreRecords: true, ContinuationToken: encodeCursor(next)}, nil
}

// queryKeysAll drains queryKeysPage through the paging driver.
func queryKeysAll[T any](
	ctx context.Context,
	ddb DynamoDBAPI,
	keys []string,
	build func(key string) *dynamodb.QueryInput,
	decode func(map[string]types.AttributeValue) (T, error),
) ([]T, error) {
	if len(keys) == 0 {
		return []T{}, nil
	}
	if len(keys) > paging.MaxBatchSize {
		return nil, fmt.Errorf("lookup accepts at most %d keys, got %d", paging.MaxBatchSize, len(keys))
	}
	return paging.FetchAll(ctx, paging.MaxPageSize, func(ctx context.Context, req paging.Request) (paging.Page[T], error) {
		return queryKeysPage(ctx, ddb, keys, req, build, decode)
	})
}

func decodeAll[T any](items []map[string]types.AttributeValue, decode func(map[string]types.AttributeValue) (T, error)) ([]T, error) {
	out := make([]T, 0, len(items))
	for _, item := range items {
		v, err := decode(item)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// scanAll drains a filtered table scan through the paging driver.
func scanAll[T any](
	ctx context.Context,
	ddb DynamoDBAPI,
	build func() *dynamodb.ScanInput,
	decode func(map[string]types.AttributeValue) (T, error),
) ([]T, error) {
	return paging.FetchAll(ctx, paging.MaxPageSize, func(ctx context.Context, req paging.Request) (paging.Page[T], error) {
		cur, err := decodeCursor(req.ContinuationToken)
		if err != nil {
			return paging.Page[T]{}, err
		}
		in := build()
		in.ExclusiveStartKey = fromKeyAttrs(cur.Last)
		in.Limit = aws.Int32(int32(req.PageCount))

		out, err := ddb.Scan(ctx, in)
		if err != nil {
			return paging.Page[T]{}, err
		}
		items, err := decodeAll(out.Items, decode)
		if err != nil {
			return paging.Page[T]{}, err
		}
		if len(out.LastEvaluatedKey) == 0 {
			return paging.Page[T]{Items: items}, nil
		}
		return paging.Page[T]{
			Items:             items,
			MoreRecords:       true,
			ContinuationToken: encodeCursor(cursor{Last: toKeyAttrs(out.LastEvaluatedKey)}),
		}, nil
	})
}

// batchWriteLimit is the DynamoDB BatchWriteItem request limit.
const batchWriteLimit = 25

// putBatched writes items in BatchWriteItem groups, resubmitting unprocessed
// items until the table accepts them.
func putBatched(ctx context.Context, ddb DynamoDBAPI, table string, items []map[string]types.AttributeValue) error {
	for start := 0; start < len(items); start += batchWriteLimit {
		end := min(start+batchWriteLimit, len(items))
		writes := make([]types.WriteRequest, 0, end-start)
		for _, av := range items[start:end] {
			writes = append(writes, types.WriteRequest{PutRequest: &types.PutRequest{Item: av}})
		}

		request := map[string][]types.WriteRequest{table: writes}
		for len(request) > 0 {
			out, err := ddb.BatchWriteItem(ctx, &dynamodb.BatchWriteItemInput{RequestItems: request})
			if err != nil {
				return fmt.Errorf("write items %d..%d: %w", start, end-1, err)
			}
			request = out.UnprocessedItems
		}
	}
	return nil
}

// indexQuery builds an equality query on a secondary index.
func indexQuery(table, index, attr string) func(key string) *dynamodb.QueryInput {
	return func(key string) *dynamodb.QueryInput {
		return &dynamodb.QueryInput{
			TableName:                 aws.String(table),
			IndexName:                 aws.String(index),
			KeyConditionExpression:    aws.String("#pk = :pk"),
			ExpressionAttributeNames:  map[string]string{"#pk": attr},
			ExpressionAttributeValues: map[string]types.AttributeValue{":pk": &types.AttributeValueMemberS{Value: key}},
		}
	}
}

func isConditionalCheckFailed(err error) bool {
	var cfe *types.ConditionalCheckFailedException
	return errors.As(err, &cfe)
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(sortableTime)
}

func formatOptTime(t *time.Time) string {
	if t == nil {
		return ""
	}
	return formatTime(*t)
}

func parseTime(s string) time.Time {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}
	}
	return t
}

func parseOptTime(s string) *time.Time {
	if s == "" {
		return nil
	}
	t := parseTime(s)
	if t.IsZero() {
		return nil
	}
	return &t
}

func parseDecimal(s string) decimal.Decimal {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero
	}
	return d
}

func parseOptDecimal(s string) *decimal.Decimal {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	d := parseDecimal(s)
	return &d
}

func mergeNames(a, b map[string]string) map[string]string {
	if len(a) == 0 {
		return b
	}
	if len(b) == 0 {
		return a
	}
	out := make(map[string]string, len(a)+len(b))
	for k, v := range a {
		out[k] = v
	}
	for k, v := range b {
		out[k] = v
	}
	return out
}
