package entities

import "time"

// ShipmentStatus represents the delivery lifecycle of a shipment.

type ShipmentStatus string

const (
	ShipmentStatusPending   ShipmentStatus = "pending"
	ShipmentStatusDelivered ShipmentStatus = "delivered"
	ShipmentStatusCancelled ShipmentStatus = "cancelled"
)

// Shipment is the cargo order persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (shipment_id-index): shipment_id
//
// TruckID and DriverID are numeric references resolved at read time; both are
// nil for unassigned shipments.

type Shipment struct {
	ID                  string         `json:"id"`
	ShipmentID          int            `json:"shipmentId"`
	Name                string         `json:"name"`
	ClientID            int            `json:"clientId"`
	TruckID             *int           `json:"truckId,omitempty"`
	DriverID            *int           `json:"driverId,omitempty"`
	PickupLocation      string         `json:"pickupLocation"`
	DeliveryLocation    string         `json:"deliveryLocation"`
	CargoType           string         `json:"cargoType"`
	CargoWeight         float64        `json:"cargoWeight"`
	DepartureDate       time.Time      `json:"departureDate"`
	ArrivalDate         time.Time      `json:"arrivalDate"`
	Status              ShipmentStatus `json:"status"`
	SpecialInstructions string         `json:"specialInstructions,omitempty"`
	CreatedAt           time.Time      `json:"createdAt"`
	UpdatedAt           time.Time      `json:"updatedAt"`
}
