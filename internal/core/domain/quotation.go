package domain

import "time"

// QuotationStatus represents the lifecycle state of a quotation.
type QuotationStatus string

const (
	QuotationDraft    QuotationStatus = "draft"
	QuotationSent     QuotationStatus = "sent"
	QuotationAccepted QuotationStatus = "accepted"
	QuotationRejected QuotationStatus = "rejected"
)

// Quotation is a priced offer attached to a client. ClientName is a
// denormalized snapshot of the related client's display name, refreshed
// whenever the relation's target changes.
type Quotation struct {
	ID         string          `json:"id" bson:"_id,omitempty"`
	OwnerID    string          `json:"owner_id" bson:"owner_id"`
	ClientID   string          `json:"client_id" bson:"client_id"`
	ClientName string          `json:"client_name" bson:"client_name"`
	Details    string          `json:"details" bson:"details"`
	Amount     float64         `json:"amount" bson:"amount"`
	Status     QuotationStatus `json:"status" bson:"status"`
	CreatedAt  time.Time       `json:"created_at" bson:"created_at"`
}
