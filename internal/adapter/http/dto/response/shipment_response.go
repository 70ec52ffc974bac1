package response

import (
	"time"

	"logistica_xpto/internal/usecase"
)

// ShipmentResponse is the composed shipment view: the record itself plus the
// resolved truck, driver and client. A dangling reference yields a null
// field, never an error; ClientName is only set when the client resolved.
type ShipmentResponse struct {
	ID                  string          `json:"id"`
	ShipmentID          int             `json:"shipmentId"`
	Name                string          `json:"name"`
	ClientID            int             `json:"clientId"`
	ClientName          *string         `json:"clientName"`
	TruckID             *int            `json:"truckId,omitempty"`
	DriverID            *int            `json:"driverId,omitempty"`
	PickupLocation      string          `json:"pickupLocation"`
	DeliveryLocation    string          `json:"deliveryLocation"`
	CargoType           string          `json:"cargoType"`
	CargoWeight         float64         `json:"cargoWeight"`
	DepartureDate       time.Time       `json:"departureDate"`
	ArrivalDate         time.Time       `json:"arrivalDate"`
	Status              string          `json:"status"`
	SpecialInstructions string          `json:"specialInstructions,omitempty"`
	Truck               *TruckResponse  `json:"truck"`
	Driver              *DriverResponse `json:"driver"`
	Client              *ClientResponse `json:"client"`
	CreatedAt           time.Time       `json:"createdAt"`
	UpdatedAt           time.Time       `json:"updatedAt"`
}

// ShipmentCreated is the 201 body of the shipment workflow.
type ShipmentCreated struct {
	Message  string           `json:"message"`
	Shipment ShipmentResponse `json:"shipment"`
}

func FromShipmentDetail(d usecase.ShipmentDetail) ShipmentResponse {
	s := d.Shipment
	resp := ShipmentResponse{
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
		DepartureDate:       s.DepartureDate,
		ArrivalDate:         s.ArrivalDate,
		Status:              string(s.Status),
		SpecialInstructions: s.SpecialInstructions,
		CreatedAt:           s.CreatedAt,
		UpdatedAt:           s.UpdatedAt,
	}
	if d.Truck != nil {
		t := FromTruck(*d.Truck)
		resp.Truck = &t
	}
	if d.Driver != nil {
		dr := FromDriver(*d.Driver)
		resp.Driver = &dr
	}
	if d.Client != nil {
		c := FromClient(*d.Client)
		resp.Client = &c
		resp.ClientName = &c.Name
	}
	return resp
}

func FromShipmentDetails(details []usecase.ShipmentDetail) []ShipmentResponse {
	out := make([]ShipmentResponse, 0, len(details))
	for _, d := range details {
		out = append(out, FromShipmentDetail(d))
	}
	return out
}
