package repository

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"billing_core/internal/config"
	"billing_core/internal/domain/entities"
	"billing_core/internal/usecase/interfaces"
	"billing_core/internal/usecase/paging"
	"billing_core/internal/usecase/reconcile"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	statementsCustomerSiteIndex = "customer_site_id-index"
	invoicesStatementIndex      = "billing_statement_id-index"
	confirmationsSiteIndex      = "site_number-index"

	// batchGetLimit is the DynamoDB BatchGetItem key limit.
	batchGetLimit = 100
)

type billingStatementItem struct {
	ID                 string `dynamodbav:"id"`
	CreatedOn          string `dynamodbav:"created_on"`
	ServicePeriodStart string `dynamodbav:"service_period_start"`
	ServicePeriodEnd   string `dynamodbav:"service_period_end"`
	Status             int    `dynamodbav:"status"`
	PurchaseOrder      string `dynamodbav:"purchase_order,omitempty"`
	ForecastData       string `dynamodbav:"forecast_data,omitempty"`
	CustomerSiteID     string `dynamodbav:"customer_site_id"`
}

type invoiceItem struct {
	ID                 string `dynamodbav:"id"`
	InvoiceNumber      string `dynamodbav:"invoice_number"`
	Amount             string `dynamodbav:"amount"`
	BillingStatementID string `dynamodbav:"billing_statement_id"`
}

type confirmationItem struct {
	ID         string `dynamodbav:"id"`
	Comments   string `dynamodbav:"comments"`
	Period     string `dynamodbav:"period"`
	SiteNumber string `dynamodbav:"site_number"`
}

// BillingStatementDynamoRepository serves statement rows joined with their
// customer site, invoices and the site's confirmation records.
//
// Table requirements:
//   - statements PK: id; GSI customer_site_id-index (PK: customer_site_id, SK: id)
//   - invoices PK: id; GSI billing_statement_id-index (PK: billing_statement_id)
//   - confirmations PK: id; GSI site_number-index (PK: site_number)
//   - customer sites PK: id
//
// Paging counts statements: every page carries all joined rows of its
// statements, one row per (invoice, confirmation) pair, left-outer on both.
type BillingStatementDynamoRepository struct {
	ddb    DynamoDBAPI
	tables config.Tables
}

var _ interfaces.IBillingStatementRepository = (*BillingStatementDynamoRepository)(nil)

func NewBillingStatementDynamoRepository(ddb DynamoDBAPI, tables config.Tables) *BillingStatementDynamoRepository {
	return &BillingStatementDynamoRepository{ddb: ddb, tables: tables}
}

func (r *BillingStatementDynamoRepository) CurrentStatementRows(ctx context.Context, from, to time.Time, req paging.Request) (paging.Page[reconcile.Row], error) {
	cur, err := decodeCursor(req.ContinuationToken)
	if err != nil {
		return paging.Page[reconcile.Row]{}, err
	}

	in := &dynamodb.ScanInput{
		TableName:                 aws.String(r.tables.Statements),
		FilterExpression:          aws.String(currentFilter),
		ExpressionAttributeNames:  currentFilterNames(),
		ExpressionAttributeValues: currentFilterValues(from, to),
		ExclusiveStartKey:         fromKeyAttrs(cur.Last),
	}
	if req.PageCount > 0 {
		in.Limit = aws.Int32(int32(req.PageCount))
	}
	out, err := r.ddb.Scan(ctx, in)
	if err != nil {
		return paging.Page[reconcile.Row]{}, err
	}

	statements, err := decodeAll(out.Items, decodeItem[billingStatementItem])
	if err != nil {
		return paging.Page[reconcile.Row]{}, err
	}
	rows, err := r.joinRows(ctx, statements)
	if err != nil {
		return paging.Page[reconcile.Row]{}, err
	}
	if len(out.LastEvaluatedKey) == 0 {
		return paging.Page[reconcile.Row]{Items: rows}, nil
	}
	return paging.Page[reconcile.Row]{
		Items:             rows,
		MoreRecords:       true,
		ContinuationToken: encodeCursor(cursor{Last: toKeyAttrs(out.LastEvaluatedKey)}),
	}, nil
}

func (r *BillingStatementDynamoRepository) StatementRowsByCustomerSite(ctx context.Context, siteID string, req paging.Request) (paging.Page[reconcile.Row], error) {
	page, err := queryKeysPage(ctx, r.ddb, []string{siteID}, req,
		indexQuery(r.tables.Statements, statementsCustomerSiteIndex, "customer_site_id"),
		decodeItem[billingStatementItem],
	)
	if err != nil {
		return paging.Page[reconcile.Row]{}, err
	}
	rows, err := r.joinRows(ctx, page.Items)
	if err != nil {
		return paging.Page[reconcile.Row]{}, err
	}
	return paging.Page[reconcile.Row]{Items: rows, MoreRecords: page.MoreRecords, ContinuationToken: page.ContinuationToken}, nil
}

// StatementRowsByIDs pages over the id list itself; the token is the next offset.
func (r *BillingStatementDynamoRepository) StatementRowsByIDs(ctx context.Context, ids []string, req paging.Request) (paging.Page[reconcile.Row], error) {
	if len(ids) > paging.MaxBatchSize {
		return paging.Page[reconcile.Row]{}, fmt.Errorf("lookup accepts at most %d ids, got %d", paging.MaxBatchSize, len(ids))
	}
	offset := 0
	if req.ContinuationToken != "" {
		n, err := strconv.Atoi(req.ContinuationToken)
		if err != nil || n < 0 || n > len(ids) {
			return paging.Page[reconcile.Row]{}, ErrInvalidContinuationToken
		}
		offset = n
	}
	end := len(ids)
	if req.PageCount > 0 && offset+req.PageCount < end {
		end = offset + req.PageCount
	}

	statements, err := r.batchGetStatements(ctx, ids[offset:end])
	if err != nil {
		return paging.Page[reconcile.Row]{}, err
	}
	rows, err := r.joinRows(ctx, statements)
	if err != nil {
		return paging.Page[reconcile.Row]{}, err
	}
	if end >= len(ids) {
		return paging.Page[reconcile.Row]{Items: rows}, nil
	}
	return paging.Page[reconcile.Row]{Items: rows, MoreRecords: true, ContinuationToken: strconv.Itoa(end)}, nil
}

func (r *BillingStatementDynamoRepository) CurrentStatementIDsByCustomerSites(ctx context.Context, siteIDs []string, from, to time.Time, req paging.Request) (paging.Page[string], error) {
	if len(siteIDs) > paging.MaxBatchSize {
		return paging.Page[string]{}, fmt.Errorf("lookup accepts at most %d site ids, got %d", paging.MaxBatchSize, len(siteIDs))
	}
	base := indexQuery(r.tables.Statements, statementsCustomerSiteIndex, "customer_site_id")
	return queryKeysPage(ctx, r.ddb, siteIDs, req,
		func(key string) *dynamodb.QueryInput {
			in := base(key)
			in.FilterExpression = aws.String(currentFilter)
			in.ExpressionAttributeNames = mergeNames(in.ExpressionAttributeNames, currentFilterNames())
			for k, v := range currentFilterValues(from, to) {
				in.ExpressionAttributeValues[k] = v
			}
			in.ProjectionExpression = aws.String("#id, #status, #created_on")
			in.ExpressionAttributeNames["#id"] = "id"
			return in
		},
		func(item map[string]types.AttributeValue) (string, error) {
			it, err := decodeItem[billingStatementItem](item)
			return it.ID, err
		},
	)
}

func (r *BillingStatementDynamoRepository) UpdateStatus(ctx context.Context, id string, status entities.StatementStatus) error {
	return r.update(ctx, id, "status", &types.AttributeValueMemberN{Value: strconv.Itoa(int(status))})
}

func (r *BillingStatementDynamoRepository) UpdateForecastData(ctx context.Context, id string, forecastData string) error {
	return r.update(ctx, id, "forecast_data", &types.AttributeValueMemberS{Value: forecastData})
}

func (r *BillingStatementDynamoRepository) update(ctx context.Context, id, attr string, value types.AttributeValue) error {
	_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tables.Statements),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String("attribute_exists(#id)"),
		UpdateExpression:          aws.String("SET #attr = :value, #modified_on = :modified_on"),
		ExpressionAttributeValues: map[string]types.AttributeValue{":value": value, ":modified_on": &types.AttributeValueMemberS{Value: formatTime(time.Now())}},
		ExpressionAttributeNames:  map[string]string{"#id": "id", "#attr": attr, "#modified_on": "modified_on"},
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return interfaces.ErrNotFound
		}
		return err
	}
	return nil
}

// currentFilter selects statements that are not sent or were created inside the window.
const currentFilter = "#status <> :sent OR #created_on BETWEEN :from AND :to"

func currentFilterNames() map[string]string {
	return map[string]string{"#status": "status", "#created_on": "created_on"}
}

func currentFilterValues(from, to time.Time) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		":sent": &types.AttributeValueMemberN{Value: strconv.Itoa(int(entities.StatementStatusSent))},
		":from": &types.AttributeValueMemberS{Value: formatTime(from)},
		":to":   &types.AttributeValueMemberS{Value: formatTime(to)},
	}
}

func (r *BillingStatementDynamoRepository) batchGetStatements(ctx context.Context, ids []string) ([]billingStatementItem, error) {
	byID := make(map[string]billingStatementItem, len(ids))
	for start := 0; start < len(ids); start += batchGetLimit {
		end := min(start+batchGetLimit, len(ids))
		keys := make([]map[string]types.AttributeValue, 0, end-start)
		for _, id := range ids[start:end] {
			keys = append(keys, map[string]types.AttributeValue{"id": &types.AttributeValueMemberS{Value: id}})
		}

		request := map[string]types.KeysAndAttributes{r.tables.Statements: {Keys: keys}}
		for len(request) > 0 {
			out, err := r.ddb.BatchGetItem(ctx, &dynamodb.BatchGetItemInput{RequestItems: request})
			if err != nil {
				return nil, err
			}
			for _, raw := range out.Responses[r.tables.Statements] {
				it, err := decodeItem[billingStatementItem](raw)
				if err != nil {
					return nil, err
				}
				byID[it.ID] = it
			}
			request = out.UnprocessedKeys
		}
	}

	statements := make([]billingStatementItem, 0, len(byID))
	for _, id := range ids {
		if it, ok := byID[id]; ok {
			statements = append(statements, it)
		}
	}
	return statements, nil
}

// joinRows expands statements into flattened rows. Sites and confirmation
// lists are loaded once per page.
func (r *BillingStatementDynamoRepository) joinRows(ctx context.Context, statements []billingStatementItem) ([]reconcile.Row, error) {
	sites := make(map[string]*customerSiteItem)
	confirmations := make(map[string][]confirmationItem)
	var rows []reconcile.Row

	for _, st := range statements {
		site, ok := sites[st.CustomerSiteID]
		if !ok {
			var err error
			site, err = r.getSite(ctx, st.CustomerSiteID)
			if err != nil {
				return nil, err
			}
			sites[st.CustomerSiteID] = site
		}

		invoices, err := queryKeysAll(ctx, r.ddb, []string{st.ID},
			indexQuery(r.tables.Invoices, invoicesStatementIndex, "billing_statement_id"),
			decodeItem[invoiceItem],
		)
		if err != nil {
			return nil, fmt.Errorf("invoices of statement %s: %w", st.ID, err)
		}

		var confs []confirmationItem
		if site != nil && site.SiteNumber != "" {
			cached, ok := confirmations[site.SiteNumber]
			if !ok {
				cached, err = queryKeysAll(ctx, r.ddb, []string{site.SiteNumber},
					indexQuery(r.tables.Confirmations, confirmationsSiteIndex, "site_number"),
					decodeItem[confirmationItem],
				)
				if err != nil {
					return nil, fmt.Errorf("confirmations of site %s: %w", site.SiteNumber, err)
				}
				confirmations[site.SiteNumber] = cached
			}
			confs = cached
		}

		rows = append(rows, statementRows(st, site, invoices, confs)...)
	}
	return rows, nil
}

func (r *BillingStatementDynamoRepository) getSite(ctx context.Context, id string) (*customerSiteItem, error) {
	if id == "" {
		return nil, nil
	}
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tables.CustomerSites),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	if err != nil {
		return nil, err
	}
	if len(out.Item) == 0 {
		return nil, nil
	}
	it, err := decodeItem[customerSiteItem](out.Item)
	if err != nil {
		return nil, err
	}
	return &it, nil
}

// statementRows is the left-outer join of a statement with its invoices and its
// site's confirmations.
func statementRows(st billingStatementItem, site *customerSiteItem, invoices []invoiceItem, confs []confirmationItem) []reconcile.Row {
	base := reconcile.Row{
		reconcile.ColStatementID:        st.ID,
		reconcile.ColCreatedOn:          st.CreatedOn,
		reconcile.ColServicePeriodStart: st.ServicePeriodStart,
		reconcile.ColServicePeriodEnd:   st.ServicePeriodEnd,
		reconcile.ColStatus:             entities.StatementStatus(st.Status),
		reconcile.ColPurchaseOrder:      st.PurchaseOrder,
		reconcile.ColForecastData:       st.ForecastData,
		reconcile.ColCustomerSiteID:     st.CustomerSiteID,
	}
	if site != nil {
		base[reconcile.Col(reconcile.AliasCustomerSite, reconcile.ColSiteID)] = site.ID
		base[reconcile.Col(reconcile.AliasCustomerSite, reconcile.ColSiteNumber)] = site.SiteNumber
		base[reconcile.Col(reconcile.AliasCustomerSite, reconcile.ColSiteName)] = site.SiteName
	}

	invoiceCols := []reconcile.Row{nil}
	if len(invoices) > 0 {
		invoiceCols = invoiceCols[:0]
		for _, inv := range invoices {
			invoiceCols = append(invoiceCols, reconcile.Row{
				reconcile.Col(reconcile.AliasInvoice, reconcile.ColInvoiceID):     inv.ID,
				reconcile.Col(reconcile.AliasInvoice, reconcile.ColInvoiceNumber): inv.InvoiceNumber,
				reconcile.Col(reconcile.AliasInvoice, reconcile.ColAmount):        inv.Amount,
			})
		}
	}
	confCols := []reconcile.Row{nil}
	if len(confs) > 0 {
		confCols = confCols[:0]
		for _, c := range confs {
			confCols = append(confCols, reconcile.Row{
				reconcile.Col(reconcile.AliasConfirmation, reconcile.ColConfirmationID):     c.ID,
				reconcile.Col(reconcile.AliasConfirmation, reconcile.ColConfirmationNote):   c.Comments,
				reconcile.Col(reconcile.AliasConfirmation, reconcile.ColConfirmationPeriod): c.Period,
			})
		}
	}

	rows := make([]reconcile.Row, 0, len(invoiceCols)*len(confCols))
	for _, inv := range invoiceCols {
		for _, conf := range confCols {
			row := base.Clone()
			for k, v := range inv {
				row[k] = v
			}
			for k, v := range conf {
				row[k] = v
			}
			rows = append(rows, row)
		}
	}
	return rows
}

func decodeItem[T any](item map[string]types.AttributeValue) (T, error) {
	var it T
	err := attributevalue.UnmarshalMap(item, &it)
	return it, err
}
