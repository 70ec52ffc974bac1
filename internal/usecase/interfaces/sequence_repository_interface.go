package interfaces

import "context"

// Sequence keys, one counter per entity type.
const (
	SequenceClient   = "client"
	SequenceDriver   = "driver"
	SequenceTruck    = "truck"
	SequenceShipment = "shipment"
	SequenceBill     = "bill"
)

// ISequenceRepository hands out human-facing numeric ids.
//
// Next must be atomic with respect to concurrent callers: no two callers may
// observe the same value for the same key. The sequence starts at 1 and is
// initialized implicitly on first use; there is no decrement or reset.
type ISequenceRepository interface {
	Next(ctx context.Context, key string) (int, error)
}
