package entities

// Availability gates whether a Truck or Driver may be newly assigned to a
// shipment. The only code path that flips it to NotAvailable is shipment
// creation; there is no automatic release when a shipment completes.

type Availability string

const (
	AvailabilityAvailable    Availability = "Available"
	AvailabilityNotAvailable Availability = "Not Available"
)
