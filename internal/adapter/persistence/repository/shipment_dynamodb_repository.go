package repository

import (
	"context"
	"errors"
	"time"

	"logistica_xpto/internal/domain/entities"
	"logistica_xpto/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultShipmentsTableName = "shipments"
	shipmentsShipmentIDIndex  = "shipment_id-index"

	conditionalCheckFailedCode = "ConditionalCheckFailed"
)

type shipmentItem struct {
	ID                  string  `dynamodbav:"id"`
	ShipmentID          int     `dynamodbav:"shipment_id"`
	Name                string  `dynamodbav:"name"`
	ClientID            int     `dynamodbav:"client_id"`
	TruckID             *int    `dynamodbav:"truck_id,omitempty"`
	DriverID            *int    `dynamodbav:"driver_id,omitempty"`
	PickupLocation      string  `dynamodbav:"pickup_location"`
	DeliveryLocation    string  `dynamodbav:"delivery_location"`
	CargoType           string  `dynamodbav:"cargo_type"`
	CargoWeight         float64 `dynamodbav:"cargo_weight"`
	DepartureDate       string  `dynamodbav:"departure_date"`
	ArrivalDate         string  `dynamodbav:"arrival_date"`
	Status              string  `dynamodbav:"status"`
	SpecialInstructions string  `dynamodbav:"special_instructions,omitempty"`
	CreatedAt           string  `dynamodbav:"created_at"`
	UpdatedAt           string  `dynamodbav:"updated_at"`
}

// ShipmentDynamoRepository persists Shipment entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: shipment_id-index (PK: shipment_id, number)
//
// CreateAssigned is the write side of the shipment workflow: the shipment
// insert and the truck/driver availability flips go through one
// TransactWriteItems call, each flip guarded by a "still Available"
// condition. Two concurrent requests racing for the same truck or driver can
// therefore never both commit.

type ShipmentDynamoRepository struct {
	ddb          *dynamodb.Client
	tableName    string
	trucksTable  string
	driversTable string
}

var _ interfaces.IShipmentRepository = (*ShipmentDynamoRepository)(nil)

func NewShipmentDynamoRepository(ddb *dynamodb.Client) *ShipmentDynamoRepository {
	return &ShipmentDynamoRepository{
		ddb:          ddb,
		tableName:    getenvDefault("SHIPMENTS_TABLE", defaultShipmentsTableName),
		trucksTable:  getenvDefault("TRUCKS_TABLE", defaultTrucksTableName),
		driversTable: getenvDefault("DRIVERS_TABLE", defaultDriversTableName),
	}
}

func (r *ShipmentDynamoRepository) Create(ctx context.Context, s entities.Shipment) (entities.Shipment, error) {
	av, err := attributevalue.MarshalMap(toShipmentItem(s))
	if err != nil {
		return entities.Shipment{}, err
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
		return entities.Shipment{}, err
	}
	return s, nil
}

func (r *ShipmentDynamoRepository) CreateAssigned(ctx context.Context, s entities.Shipment, a interfaces.ShipmentAssignment) (entities.Shipment, error) {
	av, err := attributevalue.MarshalMap(toShipmentItem(s))
	if err != nil {
		return entities.Shipment{}, err
	}

	items, truckIdx, driverIdx := r.assignmentWriteItems(av, a, formatTime(time.Now()))

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: items,
	})
	if err != nil {
		return entities.Shipment{}, assignmentWriteError(err, truckIdx, driverIdx)
	}
	return s, nil
}

// assignmentWriteItems builds the transaction: the shipment put first, then
// the conditional truck and driver flips. The returned indexes locate the
// truck and driver updates inside the transaction (-1 when absent) so a
// cancellation can be mapped back to the losing entity.
func (r *ShipmentDynamoRepository) assignmentWriteItems(av map[string]types.AttributeValue, a interfaces.ShipmentAssignment, now string) ([]types.TransactWriteItem, int, int) {
	items := []types.TransactWriteItem{{
		Put: &types.Put{
			TableName:           aws.String(r.tableName),
			Item:                av,
			ConditionExpression: aws.String("attribute_not_exists(#id)"),
			ExpressionAttributeNames: map[string]string{
				"#id": "id",
			},
		},
	}}

	truckIdx, driverIdx := -1, -1

	if a.TruckKey != "" {
		truckIdx = len(items)
		items = append(items, types.TransactWriteItem{
			Update: &types.Update{
				TableName: aws.String(r.trucksTable),
				Key: map[string]types.AttributeValue{
					"id": stringAttr(a.TruckKey),
				},
				ConditionExpression: aws.String("#status = :available"),
				UpdateExpression:    aws.String("SET #status = :not_available, #updated_at = :now"),
				ExpressionAttributeNames: map[string]string{
					"#status":     "status",
					"#updated_at": "updated_at",
				},
				ExpressionAttributeValues: map[string]types.AttributeValue{
					":available":     stringAttr(string(entities.AvailabilityAvailable)),
					":not_available": stringAttr(string(entities.AvailabilityNotAvailable)),
					":now":           stringAttr(now),
				},
			},
		})
	}

	if a.DriverKey != "" {
		updateExpr := "SET #status = :not_available, #updated_at = :now REMOVE #assigned_truck"
		values := map[string]types.AttributeValue{
			":available":     stringAttr(string(entities.AvailabilityAvailable)),
			":not_available": stringAttr(string(entities.AvailabilityNotAvailable)),
			":now":           stringAttr(now),
		}
		if a.TruckKey != "" {
			updateExpr = "SET #status = :not_available, #updated_at = :now, #assigned_truck = :truck_id"
			values[":truck_id"] = numberAttr(intToString(a.TruckID))
		}

		driverIdx = len(items)
		items = append(items, types.TransactWriteItem{
			Update: &types.Update{
				TableName: aws.String(r.driversTable),
				Key: map[string]types.AttributeValue{
					"id": stringAttr(a.DriverKey),
				},
				ConditionExpression: aws.String("#status = :available"),
				UpdateExpression:    aws.String(updateExpr),
				ExpressionAttributeNames: map[string]string{
					"#status":         "status",
					"#updated_at":     "updated_at",
					"#assigned_truck": "assigned_truck",
				},
				ExpressionAttributeValues: values,
			},
		})
	}

	return items, truckIdx, driverIdx
}

// assignmentWriteError maps a cancelled assignment transaction onto the
// conflict sentinel of the entity whose availability condition failed.
// Anything else comes back unchanged.
func assignmentWriteError(err error, truckIdx, driverIdx int) error {
	var tce *types.TransactionCanceledException
	if !errors.As(err, &tce) {
		return err
	}
	for i, reason := range tce.CancellationReasons {
		if reason.Code == nil || *reason.Code != conditionalCheckFailedCode {
			continue
		}
		switch i {
		case truckIdx:
			return interfaces.ErrTruckAssignmentConflict
		case driverIdx:
			return interfaces.ErrDriverAssignmentConflict
		}
	}
	return err
}

func (r *ShipmentDynamoRepository) GetByShipmentID(ctx context.Context, shipmentID int) (entities.Shipment, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(shipmentsShipmentIDIndex),
		KeyConditionExpression: aws.String("shipment_id = :sid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":sid": numberAttr(intToString(shipmentID)),
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.Shipment{}, err
	}
	if len(out.Items) == 0 {
		return entities.Shipment{}, nil
	}

	var it shipmentItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.Shipment{}, err
	}
	return fromShipmentItem(it), nil
}

func (r *ShipmentDynamoRepository) GetByKey(ctx context.Context, id string) (entities.Shipment, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": stringAttr(id),
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Shipment{}, err
	}
	if len(out.Item) == 0 {
		return entities.Shipment{}, nil
	}

	var it shipmentItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Shipment{}, err
	}
	return fromShipmentItem(it), nil
}

func (r *ShipmentDynamoRepository) List(ctx context.Context) ([]entities.Shipment, error) {
	out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	if err != nil {
		return nil, err
	}

	shipments := make([]entities.Shipment, 0, len(out.Items))
	for _, raw := range out.Items {
		var it shipmentItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		shipments = append(shipments, fromShipmentItem(it))
	}
	return shipments, nil
}

func (r *ShipmentDynamoRepository) UpdateByShipmentID(ctx context.Context, shipmentID int, upd interfaces.ShipmentUpdate) (entities.Shipment, error) {
	existing, err := r.GetByShipmentID(ctx, shipmentID)
	if err != nil {
		return entities.Shipment{}, err
	}
	if existing.ID == "" {
		return entities.Shipment{}, nil
	}

	b := newUpdateBuilder()
	b.setString("name", upd.Name)
	b.setString("pickup_location", upd.PickupLocation)
	b.setString("delivery_location", upd.DeliveryLocation)
	b.setString("cargo_type", upd.CargoType)
	b.setFloat("cargo_weight", upd.CargoWeight)
	b.setTime("departure_date", upd.DepartureDate)
	b.setTime("arrival_date", upd.ArrivalDate)
	if upd.Status != nil {
		s := string(*upd.Status)
		b.setString("status", &s)
	}
	b.setString("special_instructions", upd.SpecialInstructions)

	out, err := r.ddb.UpdateItem(ctx, b.input(r.tableName, existing.ID))
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Shipment{}, nil
		}
		return entities.Shipment{}, err
	}

	var it shipmentItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Shipment{}, err
	}
	return fromShipmentItem(it), nil
}

func (r *ShipmentDynamoRepository) DeleteByShipmentID(ctx context.Context, shipmentID int) (bool, error) {
	existing, err := r.GetByShipmentID(ctx, shipmentID)
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

func toShipmentItem(s entities.Shipment) shipmentItem {
	return shipmentItem{
		ID:                  s.ID,
		ShipmentID:          s.ShipmentID,
		Name:                s.Name,
		ClientID:            s.ClientID,
		TruckID:             s.TruckID,
		DriverID:            s.DriverID,
		PickupLocation:      s.PickupLocation,
		DeliveryLocation:    s.DeliveryLocation,
		CargoType:           s.CargoType,
		CargoWeight:         s.CargoWeight,
		DepartureDate:       formatTime(s.DepartureDate),
		ArrivalDate:         formatTime(s.ArrivalDate),
		Status:              string(s.Status),
		SpecialInstructions: s.SpecialInstructions,
		CreatedAt:           formatTime(s.CreatedAt),
		UpdatedAt:           formatTime(s.UpdatedAt),
	}
}

func fromShipmentItem(it shipmentItem) entities.Shipment {
	return entities.Shipment{
		ID:                  it.ID,
		ShipmentID:          it.ShipmentID,
		Name:                it.Name,
		ClientID:            it.ClientID,
		TruckID:             it.TruckID,
		DriverID:            it.DriverID,
		PickupLocation:      it.PickupLocation,
		DeliveryLocation:    it.DeliveryLocation,
		CargoType:           it.CargoType,
		CargoWeight:         it.CargoWeight,
		DepartureDate:       parseTime(it.DepartureDate),
		ArrivalDate:         parseTime(it.ArrivalDate),
		Status:              entities.ShipmentStatus(it.Status),
		SpecialInstructions: it.SpecialInstructions,
		CreatedAt:           parseTime(it.CreatedAt),
		UpdatedAt:           parseTime(it.UpdatedAt),
	}
}
