package handler

type createQuotationRequest struct {
	ClientID string  `json:"client_id" validate:"required"`
	Details  string  `json:"details"   validate:"required,min=10"`
	Amount   float64 `json:"amount"    validate:"required,gt=0"`
	Status   string  `json:"status"    validate:"required,oneof=draft sent accepted rejected"`
}

// updateQuotationRequest allows re-targeting the client relation; when
// client_id is omitted the existing relation and its name snapshot stay.
type updateQuotationRequest struct {
	ClientID string  `json:"client_id"`
	Details  string  `json:"details" validate:"required,min=10"`
	Amount   float64 `json:"amount"  validate:"required,gt=0"`
	Status   string  `json:"status"  validate:"required,oneof=draft sent accepted rejected"`
}
