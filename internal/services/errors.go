package services

// ValidationError reports request data that cannot be applied to a product.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NumericFieldsMessage is returned when price or quantity cannot be coerced.
const NumericFieldsMessage = "price and quantity fields must be numeric"

func errNumericFields() error {
	return &ValidationError{Message: NumericFieldsMessage}
}
