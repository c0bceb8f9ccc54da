package domain

import "time"

// ReminderType classifies how the follow-up is meant to happen.
type ReminderType string

const (
	ReminderEmail    ReminderType = "email"
	ReminderWhatsapp ReminderType = "whatsapp"
	ReminderMeeting  ReminderType = "meeting"
	ReminderFollowUp ReminderType = "follow-up"
)

// Reminder is a dated follow-up note attached to a client.
type Reminder struct {
	ID         string       `json:"id" bson:"_id,omitempty"`
	OwnerID    string       `json:"owner_id" bson:"owner_id"`
	ClientID   string       `json:"client_id" bson:"client_id"`
	ClientName string       `json:"client_name" bson:"client_name"`
	Message    string       `json:"message" bson:"message"`
	RemindAt   time.Time    `json:"remind_at" bson:"remind_at"`
	Type       ReminderType `json:"type" bson:"type"`
	Completed  bool         `json:"completed" bson:"completed"`
	CreatedAt  time.Time    `json:"created_at" bson:"created_at"`
}
