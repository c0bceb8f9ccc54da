package handler

// errorResponse is the standard error envelope returned on all 4xx/5xx
// responses.
type errorResponse struct {
	Error string `json:"error"`
}

// messageResponse is the envelope for acknowledgement-only responses.
type messageResponse struct {
	Message string `json:"message"`
}

type clientRequest struct {
	Name         string `json:"name"         validate:"required,min=2"`
	Email        string `json:"email"        validate:"required,email"`
	Phone        string `json:"phone"        validate:"required,min=10"`
	Requirements string `json:"requirements" validate:"required,min=5"`
	Priority     string `json:"priority"     validate:"required,oneof=none '1 month' '2 months' '3 months'"`
}
