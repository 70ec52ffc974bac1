package entities

import "time"

// Driver is a truck driver that shipments reference by DriverID.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (driver_id-index): driver_id
//
// AssignedTruck holds the numeric id of the truck the driver was attached to
// by the shipment workflow; nil while unassigned.

type Driver struct {
	ID            string       `json:"id"`
	DriverID      int          `json:"driverId"`
	Name          string       `json:"name"`
	LicenseNumber string       `json:"licenseNumber"`
	Phone         string       `json:"phone,omitempty"`
	Address       string       `json:"address,omitempty"`
	Salary        float64      `json:"salary"`
	Status        Availability `json:"status"`
	AssignedTruck *int         `json:"assignedTruck,omitempty"`
	CreatedAt     time.Time    `json:"createdAt"`
	UpdatedAt     time.Time    `json:"updatedAt"`
}
