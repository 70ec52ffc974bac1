package response

import (
	"testing"
	"time"

	"logistica_xpto/internal/domain/entities"
	"logistica_xpto/internal/usecase"
)

func TestFromShipmentDetail(t *testing.T) {
	now := time.Now().UTC()
	truckID := 3
	driverID := 9
	d := usecase.ShipmentDetail{
		Shipment: entities.Shipment{
			ID:          "s-1",
			ShipmentID:  41,
			Name:        "Steel coils SP-RJ",
			ClientID:    7,
			TruckID:     &truckID,
			DriverID:    &driverID,
			CargoWeight: 1200.5,
			Status:      entities.ShipmentStatusPending,
			CreatedAt:   now,
			UpdatedAt:   now,
		},
		Truck:  &entities.Truck{ID: "t-1", TruckID: 3, Status: entities.AvailabilityNotAvailable},
		Driver: &entities.Driver{ID: "d-1", DriverID: 9, Name: "Ana"},
		Client: &entities.Client{ID: "c-1", ClientID: 7, Name: "Acme"},
	}

	res := FromShipmentDetail(d)
	if res.ID != "s-1" || res.ShipmentID != 41 {
		t.Fatalf("unexpected ids: %+v", res)
	}
	if res.Truck == nil || res.Truck.TruckID != 3 {
		t.Fatalf("unexpected truck: %+v", res.Truck)
	}
	if res.Driver == nil || res.Driver.Name != "Ana" {
		t.Fatalf("unexpected driver: %+v", res.Driver)
	}
	if res.ClientName == nil || *res.ClientName != "Acme" {
		t.Fatalf("unexpected client name: %+v", res.ClientName)
	}
	if res.Status != "pending" {
		t.Fatalf("unexpected status: %q", res.Status)
	}
}

func TestFromShipmentDetail_DanglingReferences(t *testing.T) {
	truckID := 3
	d := usecase.ShipmentDetail{
		Shipment: entities.Shipment{ID: "s-1", ShipmentID: 41, ClientID: 7, TruckID: &truckID},
	}

	res := FromShipmentDetail(d)
	if res.Truck != nil || res.Driver != nil || res.Client != nil {
		t.Fatalf("expected nil references, got %+v", res)
	}
	if res.ClientName != nil {
		t.Fatalf("expected nil client name, got %q", *res.ClientName)
	}
	if res.TruckID == nil || *res.TruckID != 3 {
		t.Fatalf("expected raw truck id preserved, got %+v", res.TruckID)
	}
}
