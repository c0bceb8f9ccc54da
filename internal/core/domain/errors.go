package domain

import "errors"

var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrIncorrectPassword  = errors.New("incorrect current password")
	ErrUserExists         = errors.New("username or email already registered")
	ErrUserNotFound       = errors.New("user not found")
	ErrForbidden          = errors.New("access forbidden")

	ErrClientNotFound    = errors.New("client not found")
	ErrQuotationNotFound = errors.New("quotation not found")
	ErrReminderNotFound  = errors.New("reminder not found")
)
