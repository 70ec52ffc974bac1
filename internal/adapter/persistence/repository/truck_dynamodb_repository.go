package repository

import (
	"context"
	"errors"

	"logistica_xpto/internal/domain/entities"
	"logistica_xpto/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultTrucksTableName = "trucks"
	trucksTruckIDIndex     = "truck_id-index"
)

type truckItem struct {
	ID          string  `dynamodbav:"id"`
	TruckID     int     `dynamodbav:"truck_id"`
	PlateNumber string  `dynamodbav:"plate_number"`
	Model       string  `dynamodbav:"model,omitempty"`
	Capacity    float64 `dynamodbav:"capacity,omitempty"`
	Status      string  `dynamodbav:"status"`
	CreatedAt   string  `dynamodbav:"created_at"`
	UpdatedAt   string  `dynamodbav:"updated_at"`
}

// TruckDynamoRepository persists Truck entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: truck_id-index (PK: truck_id, number)

type TruckDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ITruckRepository = (*TruckDynamoRepository)(nil)

func NewTruckDynamoRepository(ddb *dynamodb.Client) *TruckDynamoRepository {
	return &TruckDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("TRUCKS_TABLE", defaultTrucksTableName),
	}
}

func (r *TruckDynamoRepository) Create(ctx context.Context, t entities.Truck) (entities.Truck, error) {
	av, err := attributevalue.MarshalMap(toTruckItem(t))
	if err != nil {
		return entities.Truck{}, err
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
		return entities.Truck{}, err
	}
	return t, nil
}

func (r *TruckDynamoRepository) GetByTruckID(ctx context.Context, truckID int) (entities.Truck, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(trucksTruckIDIndex),
		KeyConditionExpression: aws.String("truck_id = :tid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":tid": numberAttr(intToString(truckID)),
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.Truck{}, err
	}
	if len(out.Items) == 0 {
		return entities.Truck{}, nil
	}

	var it truckItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.Truck{}, err
	}
	return fromTruckItem(it), nil
}

func (r *TruckDynamoRepository) List(ctx context.Context) ([]entities.Truck, error) {
	out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	if err != nil {
		return nil, err
	}

	trucks := make([]entities.Truck, 0, len(out.Items))
	for _, raw := range out.Items {
		var it truckItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		trucks = append(trucks, fromTruckItem(it))
	}
	return trucks, nil
}

func (r *TruckDynamoRepository) UpdateByTruckID(ctx context.Context, truckID int, upd interfaces.TruckUpdate) (entities.Truck, error) {
	existing, err := r.GetByTruckID(ctx, truckID)
	if err != nil {
		return entities.Truck{}, err
	}
	if existing.ID == "" {
		return entities.Truck{}, nil
	}

	b := newUpdateBuilder()
	b.setString("plate_number", upd.PlateNumber)
	b.setString("model", upd.Model)
	b.setFloat("capacity", upd.Capacity)
	if upd.Status != nil {
		s := string(*upd.Status)
		b.setString("status", &s)
	}

	out, err := r.ddb.UpdateItem(ctx, b.input(r.tableName, existing.ID))
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Truck{}, nil
		}
		return entities.Truck{}, err
	}

	var it truckItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Truck{}, err
	}
	return fromTruckItem(it), nil
}

func (r *TruckDynamoRepository) DeleteByTruckID(ctx context.Context, truckID int) (bool, error) {
	existing, err := r.GetByTruckID(ctx, truckID)
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

func toTruckItem(t entities.Truck) truckItem {
	return truckItem{
		ID:          t.ID,
		TruckID:     t.TruckID,
		PlateNumber: t.PlateNumber,
		Model:       t.Model,
		Capacity:    t.Capacity,
		Status:      string(t.Status),
		CreatedAt:   formatTime(t.CreatedAt),
		UpdatedAt:   formatTime(t.UpdatedAt),
	}
}

func fromTruckItem(it truckItem) entities.Truck {
	return entities.Truck{
		ID:          it.ID,
		TruckID:     it.TruckID,
		PlateNumber: it.PlateNumber,
		Model:       it.Model,
		Capacity:    it.Capacity,
		Status:      entities.Availability(it.Status),
		CreatedAt:   parseTime(it.CreatedAt),
		UpdatedAt:   parseTime(it.UpdatedAt),
	}
}
