package domain

import "time"

// Priority is the follow-up timeline assigned to a client.
type Priority string

const (
	PriorityNone        Priority = "none"
	PriorityOneMonth    Priority = "1 month"
	PriorityTwoMonths   Priority = "2 months"
	PriorityThreeMonths Priority = "3 months"
)

// Client is a CRM client record. OwnerID is set at creation and never
// reassigned afterwards.
type Client struct {
	ID           string    `json:"id" bson:"_id,omitempty"`
	OwnerID      string    `json:"owner_id" bson:"owner_id"`
	Name         string    `json:"name" bson:"name"`
	Email        string    `json:"email" bson:"email"`
	Phone        string    `json:"phone" bson:"phone"`
	Requirements string    `json:"requirements" bson:"requirements"`
	Priority     Priority  `json:"priority" bson:"priority"`
	CreatedAt    time.Time `json:"created_at" bson:"created_at"`
}
