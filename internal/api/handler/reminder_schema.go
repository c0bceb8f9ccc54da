package handler

import "time"

type createReminderRequest struct {
	ClientID string    `json:"client_id" validate:"required"`
	Message  string    `json:"message"   validate:"required,min=5"`
	RemindAt time.Time `json:"remind_at" validate:"required"`
	Type     string    `json:"type"      validate:"required,oneof=email whatsapp meeting follow-up"`
}

// toggleReminderRequest is the PATCH body; only the completion flag is
// mutable through this route.
type toggleReminderRequest struct {
	Completed *bool `json:"completed" validate:"required"`
}
