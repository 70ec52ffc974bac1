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
	defaultDriversTableName   = "drivers"
	driversDriverIDIndex      = "driver_id-index"
	driversLicenseNumberIndex = "license_number-index"
)

type driverItem struct {
	ID            string  `dynamodbav:"id"`
	DriverID      int     `dynamodbav:"driver_id"`
	Name          string  `dynamodbav:"name"`
	LicenseNumber string  `dynamodbav:"license_number"`
	Phone         string  `dynamodbav:"phone,omitempty"`
	Address       string  `dynamodbav:"address,omitempty"`
	Salary        float64 `dynamodbav:"salary"`
	Status        string  `dynamodbav:"status"`
	AssignedTruck *int    `dynamodbav:"assigned_truck,omitempty"`
	CreatedAt     string  `dynamodbav:"created_at"`
	UpdatedAt     string  `dynamodbav:"updated_at"`
}

// DriverDynamoRepository persists Driver entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: driver_id-index (PK: driver_id, number)
//   - GSI: license_number-index (PK: license_number, string)

type DriverDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IDriverRepository = (*DriverDynamoRepository)(nil)

func NewDriverDynamoRepository(ddb *dynamodb.Client) *DriverDynamoRepository {
	return &DriverDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("DRIVERS_TABLE", defaultDriversTableName),
	}
}

func (r *DriverDynamoRepository) Create(ctx context.Context, d entities.Driver) (entities.Driver, error) {
	av, err := attributevalue.MarshalMap(toDriverItem(d))
	if err != nil {
		return entities.Driver{}, err
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
		return entities.Driver{}, err
	}
	return d, nil
}

func (r *DriverDynamoRepository) GetByDriverID(ctx context.Context, driverID int) (entities.Driver, error) {
	return r.queryOne(ctx, driversDriverIDIndex, "driver_id = :v", numberAttr(intToString(driverID)))
}

func (r *DriverDynamoRepository) GetByLicenseNumber(ctx context.Context, licenseNumber string) (entities.Driver, error) {
	return r.queryOne(ctx, driversLicenseNumberIndex, "license_number = :v", stringAttr(licenseNumber))
}

func (r *DriverDynamoRepository) queryOne(ctx context.Context, index, keyCond string, v types.AttributeValue) (entities.Driver, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(index),
		KeyConditionExpression: aws.String(keyCond),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":v": v,
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.Driver{}, err
	}
	if len(out.Items) == 0 {
		return entities.Driver{}, nil
	}

	var it driverItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.Driver{}, err
	}
	return fromDriverItem(it), nil
}

func (r *DriverDynamoRepository) List(ctx context.Context) ([]entities.Driver, error) {
	out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	if err != nil {
		return nil, err
	}

	drivers := make([]entities.Driver, 0, len(out.Items))
	for _, raw := range out.Items {
		var it driverItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		drivers = append(drivers, fromDriverItem(it))
	}
	return drivers, nil
}

func (r *DriverDynamoRepository) UpdateByDriverID(ctx context.Context, driverID int, upd interfaces.DriverUpdate) (entities.Driver, error) {
	existing, err := r.GetByDriverID(ctx, driverID)
	if err != nil {
		return entities.Driver{}, err
	}
	if existing.ID == "" {
		return entities.Driver{}, nil
	}

	b := buildDriverUpdate(upd)

	out, err := r.ddb.UpdateItem(ctx, b.input(r.tableName, existing.ID))
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Driver{}, nil
		}
		return entities.Driver{}, err
	}

	var it driverItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Driver{}, err
	}
	return fromDriverItem(it), nil
}

// buildDriverUpdate maps a DriverUpdate onto the write expression. Flipping
// a driver back to Available releases any active assignment, so
// assigned_truck is dropped alongside.
func buildDriverUpdate(upd interfaces.DriverUpdate) *updateBuilder {
	b := newUpdateBuilder()
	b.setString("name", upd.Name)
	b.setString("license_number", upd.LicenseNumber)
	b.setString("phone", upd.Phone)
	b.setString("address", upd.Address)
	b.setFloat("salary", upd.Salary)
	if upd.Status != nil {
		s := string(*upd.Status)
		b.setString("status", &s)
		if *upd.Status == entities.AvailabilityAvailable {
			b.remove("assigned_truck")
		}
	}
	return b
}

func (r *DriverDynamoRepository) DeleteByDriverID(ctx context.Context, driverID int) (bool, error) {
	existing, err := r.GetByDriverID(ctx, driverID)
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

func toDriverItem(d entities.Driver) driverItem {
	return driverItem{
		ID:            d.ID,
		DriverID:      d.DriverID,
		Name:          d.Name,
		LicenseNumber: d.LicenseNumber,
		Phone:         d.Phone,
		Address:       d.Address,
		Salary:        d.Salary,
		Status:        string(d.Status),
		AssignedTruck: d.AssignedTruck,
		CreatedAt:     formatTime(d.CreatedAt),
		UpdatedAt:     formatTime(d.UpdatedAt),
	}
}

func fromDriverItem(it driverItem) entities.Driver {
	return entities.Driver{
		ID:            it.ID,
		DriverID:      it.DriverID,
		Name:          it.Name,
		LicenseNumber: it.LicenseNumber,
		Phone:         it.Phone,
		Address:       it.Address,
		Salary:        it.Salary,
		Status:        entities.Availability(it.Status),
		AssignedTruck: it.AssignedTruck,
		CreatedAt:     parseTime(it.CreatedAt),
		UpdatedAt:     parseTime(it.UpdatedAt),
	}
}
