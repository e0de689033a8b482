package repository

import (
	"context"
	"strconv"
	"time"

	"voltflow_crm/internal/domain/entities"
	"voltflow_crm/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultPaymentsTableName = "invoice_payments"
	paymentsInvoiceIDIndex   = "invoice_id-index"
)

type invoicePaymentItem struct {
	ID             string                 `dynamodbav:"id"`
	InvoiceID      int64                  `dynamodbav:"invoice_id"`
	Amount         string                 `dynamodbav:"amount"`
	Date           string                 `dynamodbav:"date"`
	Status         string                 `dynamodbav:"status"`
	ProviderStatus string                 `dynamodbav:"provider_status,omitempty"`
	Payload        map[string]interface{} `dynamodbav:"payload,omitempty"`
	PayloadRaw     string                 `dynamodbav:"payload_raw,omitempty"`
}

// InvoicePaymentDynamoRepository persists InvoicePayment entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: invoice_id-index (PK: invoice_id, number)
type InvoicePaymentDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IInvoicePaymentRepository = (*InvoicePaymentDynamoRepository)(nil)

func NewInvoicePaymentDynamoRepository(ddb DynamoAPI) *InvoicePaymentDynamoRepository {
	return &InvoicePaymentDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PAYMENTS_TABLE", defaultPaymentsTableName),
	}
}

func (r *InvoicePaymentDynamoRepository) Create(ctx context.Context, p entities.InvoicePayment) (entities.InvoicePayment, error) {
	av, err := attributevalue.MarshalMap(toInvoicePaymentItem(p))
	if err != nil {
		return entities.InvoicePayment{}, err
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
		return entities.InvoicePayment{}, err
	}
	return p, nil
}

func (r *InvoicePaymentDynamoRepository) ListByInvoiceID(ctx context.Context, invoiceID uint) ([]entities.InvoicePayment, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(paymentsInvoiceIDIndex),
		KeyConditionExpression: aws.String("invoice_id = :iid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":iid": &types.AttributeValueMemberN{Value: strconv.FormatUint(uint64(invoiceID), 10)},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.InvoicePayment, 0, len(out.Items))
	for _, raw := range out.Items {
		var it invoicePaymentItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromInvoicePaymentItem(it))
	}
	return items, nil
}

func toInvoicePaymentItem(p entities.InvoicePayment) invoicePaymentItem {
	return invoicePaymentItem{
		ID:             p.ID,
		InvoiceID:      int64(p.InvoiceID),
		Amount:         floatToString(p.Amount),
		Date:           p.Date.UTC().Format(time.RFC3339Nano),
		Status:         string(p.Status),
		ProviderStatus: p.ProviderStatus,
		Payload:        p.Payload,
		PayloadRaw:     string(p.PayloadRaw),
	}
}

func fromInvoicePaymentItem(it invoicePaymentItem) entities.InvoicePayment {
	dt, _ := time.Parse(time.RFC3339Nano, it.Date)
	amount, _ := strconv.ParseFloat(it.Amount, 64)
	return entities.InvoicePayment{
		ID:             it.ID,
		InvoiceID:      uint(it.InvoiceID),
		Amount:         amount,
		Date:           dt,
		Status:         entities.PaymentStatus(it.Status),
		ProviderStatus: it.ProviderStatus,
		Payload:        it.Payload,
		PayloadRaw:     []byte(it.PayloadRaw),
	}
}
