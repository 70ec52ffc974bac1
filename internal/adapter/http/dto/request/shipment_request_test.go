package request

import (
	"testing"
	"time"

	"logistica_xpto/internal/domain/entities"
)

func TestShipmentCreateRequest_ToEntity(t *testing.T) {
	clientID := 7
	truckID := 3
	weight := 1200.5
	departure := time.Date(2026, 9, 1, 8, 0, 0, 0, time.UTC)
	arrival := time.Date(2026, 9, 2, 18, 0, 0, 0, time.UTC)

	r := ShipmentCreateRequest{
		ClientID:         &clientID,
		Name:             "Steel coils SP-RJ",
		PickupLocation:   "Sao Paulo",
		DeliveryLocation: "Rio de Janeiro",
		CargoType:        "steel",
		CargoWeight:      &weight,
		DepartureDate:    &departure,
		ArrivalDate:      &arrival,
		TruckID:          &truckID,
	}

	s := r.ToEntity()
	if s.ClientID != 7 || s.CargoWeight != 1200.5 {
		t.Fatalf("unexpected mapped fields: %+v", s)
	}
	if s.TruckID == nil || *s.TruckID != 3 || s.DriverID != nil {
		t.Fatalf("unexpected references: %+v", s)
	}
	if !s.DepartureDate.Equal(departure) || !s.ArrivalDate.Equal(arrival) {
		t.Fatalf("unexpected dates: %+v", s)
	}
	if s.Status != "" {
		t.Fatalf("expected empty status, got %q", s.Status)
	}
}

func TestShipmentUpdateRequest_ToUpdate(t *testing.T) {
	status := "delivered"
	weight := 900.0
	r := ShipmentUpdateRequest{CargoWeight: &weight, Status: &status}

	upd := r.ToUpdate()
	if upd.CargoWeight == nil || *upd.CargoWeight != 900.0 {
		t.Fatalf("unexpected cargo weight: %+v", upd.CargoWeight)
	}
	if upd.Status == nil || *upd.Status != entities.ShipmentStatusDelivered {
		t.Fatalf("unexpected status: %+v", upd.Status)
	}
	if upd.Name != nil || upd.DepartureDate != nil {
		t.Fatalf("expected untouched fields to stay nil: %+v", upd)
	}
}
