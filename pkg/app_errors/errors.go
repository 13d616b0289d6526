package apperrors

import "errors"

var (
	ErrTeeTimeNotFound     = errors.New("tee time not found")
	ErrBookingNotFound     = errors.New("booking not found")
	ErrCustomerNotFound    = errors.New("customer not found")
	ErrTransactionNotFound = errors.New("transaction not found")
	ErrTransactionExists   = errors.New("transaction already exists for booking")
)

var (
	ErrInvalidInput        = errors.New("invalid input")
	ErrValidation          = errors.New("validation error")
	ErrInternalServerError = errors.New("internal server error")
)

var (
	ErrInvalidSignature = errors.New("invalid webhook signature")
	ErrSMSNotConfigured = errors.New("sms gateway is not configured")
	ErrSMSRejected      = errors.New("sms gateway rejected message")
)

// ValidationError 寫入前的輸入檢查失敗，Message 可直接顯示給使用者
type ValidationError struct {
	Field   string
	Message string
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

func (e *ValidationError) Error() string {
	return e.Message
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// IsNotFound reports whether err is any of the entity not-found errors.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrTeeTimeNotFound) ||
		errors.Is(err, ErrBookingNotFound) ||
		errors.Is(err, ErrCustomerNotFound) ||
		errors.Is(err, ErrTransactionNotFound)
}
