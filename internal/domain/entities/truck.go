package entities

import "time"

// Truck is a vehicle that shipments reference by TruckID.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (truck_id-index): truck_id

type Truck struct {
	ID          string       `json:"id"`
	TruckID     int          `json:"truckId"`
	PlateNumber string       `json:"plateNumber"`
	Model       string       `json:"model,omitempty"`
	Capacity    float64      `json:"capacity,omitempty"`
	Status      Availability `json:"status"`
	CreatedAt   time.Time    `json:"createdAt"`
	UpdatedAt   time.Time    `json:"updatedAt"`
}
