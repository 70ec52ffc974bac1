package entities

import "time"

// Client is a customer that shipments and bills reference by ClientID.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (client_id-index): client_id
//
// ClientID is the human-facing sequential id; ID is the opaque storage key.

type Client struct {
	ID        string    `json:"id"`
	ClientID  int       `json:"clientId"`
	Name      string    `json:"name"`
	Email     string    `json:"email,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	Address   string    `json:"address,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
