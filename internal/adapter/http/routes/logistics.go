package routes

import (
	"logistica_xpto/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathClients   = "/clients"
	PathDrivers   = "/drivers"
	PathTrucks    = "/trucks"
	PathShipments = "/shipments"
	PathBills     = "/bills"
)

func addLogisticsRoutes(
	rg *gin.RouterGroup,
	clientHandler *handlers.ClientHandler,
	driverHandler *handlers.DriverHandler,
	truckHandler *handlers.TruckHandler,
	shipmentHandler *handlers.ShipmentHandler,
	billHandler *handlers.BillHandler,
) {
	clients := rg.Group(PathClients)
	{
		clients.POST("", clientHandler.CreateClient)
		clients.GET("", clientHandler.GetAllClients)
		clients.GET("/:client_id", clientHandler.GetClientByID)
		clients.PUT("/:client_id", clientHandler.UpdateClient)
		clients.DELETE("/:client_id", clientHandler.DeleteClient)
	}

	drivers := rg.Group(PathDrivers)
	{
		drivers.POST("", driverHandler.CreateDriver)
		drivers.GET("", driverHandler.GetAllDrivers)
		drivers.GET("/:driver_id", driverHandler.GetDriverByID)
		drivers.PUT("/:driver_id", driverHandler.UpdateDriver)
		drivers.DELETE("/:driver_id", driverHandler.DeleteDriver)
	}

	trucks := rg.Group(PathTrucks)
	{
		trucks.POST("", truckHandler.CreateTruck)
		trucks.GET("", truckHandler.GetAllTrucks)
		trucks.GET("/:truck_id", truckHandler.GetTruckByID)
		trucks.PUT("/:truck_id", truckHandler.UpdateTruck)
		trucks.DELETE("/:truck_id", truckHandler.DeleteTruck)
	}

	shipments := rg.Group(PathShipments)
	{
		shipments.POST("", shipmentHandler.CreateShipment)
		shipments.GET("", shipmentHandler.GetAllShipments)
		shipments.GET("/:shipment_id", shipmentHandler.GetShipmentByID)
		shipments.PUT("/:shipment_id", shipmentHandler.UpdateShipment)
		shipments.DELETE("/:shipment_id", shipmentHandler.DeleteShipment)
	}

	bills := rg.Group(PathBills)
	{
		bills.POST("", billHandler.CreateBill)
		bills.GET("", billHandler.GetAllBills)
		bills.GET("/:bill_id", billHandler.GetBillByID)
		bills.PUT("/:bill_id", billHandler.UpdateBill)
		bills.PATCH("/:bill_id/pay", billHandler.PayBill)
		bills.DELETE("/:bill_id", billHandler.DeleteBill)
	}
}
