package repository

import (
	"context"
	"encoding/json"
	"errors"

	"logistica_xpto/internal/domain/entities"
	"logistica_xpto/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultBillsTableName = "bills"
	billsBillIDIndex      = "bill_id-index"
)

type billItem struct {
	ID                string  `dynamodbav:"id"`
	BillID            int     `dynamodbav:"bill_id"`
	ClientKey         string  `dynamodbav:"client_key"`
	ShipmentKey       string  `dynamodbav:"shipment_key"`
	IssueDate         string  `dynamodbav:"issue_date"`
	DueDate           string  `dynamodbav:"due_date"`
	Amount            float64 `dynamodbav:"amount"`
	TaxAmount         float64 `dynamodbav:"tax_amount"`
	TotalAmount       float64 `dynamodbav:"total_amount"`
	PaymentStatus     string  `dynamodbav:"payment_status"`
	PaymentMethod     string  `dynamodbav:"payment_method,omitempty"`
	PaymentDate       string  `dynamodbav:"payment_date,omitempty"`
	ProviderPaymentID string  `dynamodbav:"provider_payment_id,omitempty"`
	ProviderResponse  string  `dynamodbav:"provider_response,omitempty"`
	TaxID             string  `dynamodbav:"tax_id,omitempty"`
	FuelCost          float64 `dynamodbav:"fuel_cost,omitempty"`
	CreatedAt         string  `dynamodbav:"created_at"`
	UpdatedAt         string  `dynamodbav:"updated_at"`
}

// BillDynamoRepository persists Bill entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: bill_id-index (PK: bill_id, number)

type BillDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IBillRepository = (*BillDynamoRepository)(nil)

func NewBillDynamoRepository(ddb *dynamodb.Client) *BillDynamoRepository {
	return &BillDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("BILLS_TABLE", defaultBillsTableName),
	}
}

func (r *BillDynamoRepository) Create(ctx context.Context, b entities.Bill) (entities.Bill, error) {
	av, err := attributevalue.MarshalMap(toBillItem(b))
	if err != nil {
		return entities.Bill{}, err
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
		return entities.Bill{}, err
	}
	return b, nil
}

func (r *BillDynamoRepository) GetByBillID(ctx context.Context, billID int) (entities.Bill, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(billsBillIDIndex),
		KeyConditionExpression: aws.String("bill_id = :bid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":bid": numberAttr(intToString(billID)),
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.Bill{}, err
	}
	if len(out.Items) == 0 {
		return entities.Bill{}, nil
	}

	var it billItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.Bill{}, err
	}
	return fromBillItem(it), nil
}

func (r *BillDynamoRepository) List(ctx context.Context) ([]entities.Bill, error) {
	out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	if err != nil {
		return nil, err
	}

	bills := make([]entities.Bill, 0, len(out.Items))
	for _, raw := range out.Items {
		var it billItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		bills = append(bills, fromBillItem(it))
	}
	return bills, nil
}

func (r *BillDynamoRepository) UpdateByBillID(ctx context.Context, billID int, upd interfaces.BillUpdate) (entities.Bill, error) {
	existing, err := r.GetByBillID(ctx, billID)
	if err != nil {
		return entities.Bill{}, err
	}
	if existing.ID == "" {
		return entities.Bill{}, nil
	}

	b := newUpdateBuilder()
	b.setTime("issue_date", upd.IssueDate)
	b.setTime("due_date", upd.DueDate)
	b.setFloat("amount", upd.Amount)
	b.setFloat("tax_amount", upd.TaxAmount)
	b.setFloat("total_amount", upd.TotalAmount)
	if upd.PaymentStatus != nil {
		s := string(*upd.PaymentStatus)
		b.setString("payment_status", &s)
	}
	b.setString("tax_id", upd.TaxID)
	b.setFloat("fuel_cost", upd.FuelCost)

	return r.applyUpdate(ctx, existing.ID, b)
}

func (r *BillDynamoRepository) MarkPaidByBillID(ctx context.Context, billID int, p interfaces.BillPayment) (entities.Bill, error) {
	existing, err := r.GetByBillID(ctx, billID)
	if err != nil {
		return entities.Bill{}, err
	}
	if existing.ID == "" {
		return entities.Bill{}, nil
	}

	paid := string(entities.PaymentStatusPaid)
	b := newUpdateBuilder()
	b.setString("payment_status", &paid)
	b.setString("payment_method", &p.PaymentMethod)
	b.setTime("payment_date", &p.PaymentDate)
	if p.ProviderPaymentID != "" {
		b.setString("provider_payment_id", &p.ProviderPaymentID)
	}
	if len(p.ProviderResponse) > 0 {
		resp := string(p.ProviderResponse)
		b.setString("provider_response", &resp)
	}

	return r.applyUpdate(ctx, existing.ID, b)
}

func (r *BillDynamoRepository) applyUpdate(ctx context.Context, id string, b *updateBuilder) (entities.Bill, error) {
	out, err := r.ddb.UpdateItem(ctx, b.input(r.tableName, id))
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Bill{}, nil
		}
		return entities.Bill{}, err
	}

	var it billItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Bill{}, err
	}
	return fromBillItem(it), nil
}

func (r *BillDynamoRepository) DeleteByBillID(ctx context.Context, billID int) (bool, error) {
	existing, err := r.GetByBillID(ctx, billID)
	if err != nil {
		return false, err
	}
	if existing.ID == "" {
		return false, nil
	}

	_, err = r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": stringAttr(existing.ID),
		},
	})
	if err != nil {
		return false, err
	}
	return true, nil
}

func toBillItem(b entities.Bill) billItem {
	it := billItem{
		ID:                b.ID,
		BillID:            b.BillID,
		ClientKey:         b.ClientKey,
		ShipmentKey:       b.ShipmentKey,
		IssueDate:         formatTime(b.IssueDate),
		DueDate:           formatTime(b.DueDate),
		Amount:            b.Amount,
		TaxAmount:         b.TaxAmount,
		TotalAmount:       b.TotalAmount,
		PaymentStatus:     string(b.PaymentStatus),
		PaymentMethod:     b.PaymentMethod,
		ProviderPaymentID: b.ProviderPaymentID,
		ProviderResponse:  string(b.ProviderResponse),
		TaxID:             b.TaxID,
		FuelCost:          b.FuelCost,
		CreatedAt:         formatTime(b.CreatedAt),
		UpdatedAt:         formatTime(b.UpdatedAt),
	}
	if b.PaymentDate != nil {
		it.PaymentDate = formatTime(*b.PaymentDate)
	}
	return it
}

func fromBillItem(it billItem) entities.Bill {
	b := entities.Bill{
		ID:                it.ID,
		BillID:            it.BillID,
		ClientKey:         it.ClientKey,
		ShipmentKey:       it.ShipmentKey,
		IssueDate:         parseTime(it.IssueDate),
		DueDate:           parseTime(it.DueDate),
		Amount:            it.Amount,
		TaxAmount:         it.TaxAmount,
		TotalAmount:       it.TotalAmount,
		PaymentStatus:     entities.PaymentStatus(it.PaymentStatus),
		PaymentMethod:     it.PaymentMethod,
		ProviderPaymentID: it.ProviderPaymentID,
		TaxID:             it.TaxID,
		FuelCost:          it.FuelCost,
		CreatedAt:         parseTime(it.CreatedAt),
		UpdatedAt:         parseTime(it.UpdatedAt),
	}
	if it.PaymentDate != "" {
		t := parseTime(it.PaymentDate)
		b.PaymentDate = &t
	}
	if it.ProviderResponse != "" {
		b.ProviderResponse = json.RawMessage(it.ProviderResponse)
	}
	return b
}
