package repository

import (
	"context"

	"billing_core/internal/config"
	"billing_core/internal/domain/entities"
	"billing_core/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type billableExpenseItem struct {
	SiteID                string `dynamodbav:"site_id"`
	Period                string `dynamodbav:"period"`
	PayrollExpenseBudget  string `dynamodbav:"payroll_expense_budget"`
	BillableExpenseBudget string `dynamodbav:"billable_expense_budget"`
	OtherExpenseBudget    string `dynamodbav:"other_expense_budget"`
}

// BillableExpenseDynamoRepository reads monthly expense budgets.
//
// Table requirements:
//   - PK: site_id (string), SK: period (string, YYYYMM)
type BillableExpenseDynamoRepository struct {
	ddb       DynamoDBAPI
	tableName string
}

var _ interfaces.IBillableExpenseRepository = (*BillableExpenseDynamoRepository)(nil)

func NewBillableExpenseDynamoRepository(ddb DynamoDBAPI, tables config.Tables) *BillableExpenseDynamoRepository {
	return &BillableExpenseDynamoRepository{ddb: ddb, tableName: tables.BillableExpenses}
}

func (r *BillableExpenseDynamoRepository) Get(ctx context.Context, siteID string, period string) (entities.BillableExpense, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"site_id": &types.AttributeValueMemberS{Value: siteID},
			"period":  &types.AttributeValueMemberS{Value: period},
		},
	})
	if err != nil {
		return entities.BillableExpense{}, err
	}
	if len(out.Item) == 0 {
		return entities.BillableExpense{}, interfaces.ErrNotFound
	}
	it, err := decodeItem[billableExpenseItem](out.Item)
	if err != nil {
		return entities.BillableExpense{}, err
	}
	return entities.BillableExpense{
		SiteID:                it.SiteID,
		Period:                it.Period,
		PayrollExpenseBudget:  parseDecimal(it.PayrollExpenseBudget),
		BillableExpenseBudget: parseDecimal(it.BillableExpenseBudget),
		OtherExpenseBudget:    parseDecimal(it.OtherExpenseBudget),
	}, nil
}
