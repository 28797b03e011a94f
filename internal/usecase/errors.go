package usecase

import (
	"errors"
	"fmt"

	"oficina_nova_brasil/internal/usecase/interfaces"
)

var (
	ErrClientNotFound       = errors.New("client not found")
	ErrCarNotFound          = errors.New("car not found")
	ErrEmployeeNotFound     = errors.New("employee not found")
	ErrServiceNotFound      = errors.New("service not found")
	ErrServiceOrderNotFound = errors.New("service order not found")
	ErrOrderItemNotFound    = errors.New("service order item not found")

	// ErrMissingReference reports that a record being written points at a
	// parent that does not exist.
	ErrMissingReference = errors.New("referenced record not found")
)

// ErrValidation is the root of every input validation failure.
var ErrValidation = errors.New("validation failed")

var (
	ErrInvalidID         = fmt.Errorf("%w: invalid id", ErrValidation)
	ErrInvalidStatus     = fmt.Errorf("%w: invalid status", ErrValidation)
	ErrInvalidQuantity   = fmt.Errorf("%w: quantity must be positive", ErrValidation)
	ErrInvalidValue      = fmt.Errorf("%w: value and estimated time must not be negative", ErrValidation)
	ErrInvalidYear       = fmt.Errorf("%w: invalid year", ErrValidation)
	ErrEmptyOrder        = fmt.Errorf("%w: a service order needs at least one item", ErrValidation)
	ErrCarClientMismatch = fmt.Errorf("%w: car does not belong to client", ErrValidation)
	ErrServiceInactive   = fmt.Errorf("%w: service is inactive", ErrValidation)
	ErrEmployeeInactive  = fmt.Errorf("%w: employee is inactive", ErrValidation)
)

func requiredField(name string) error {
	return fmt.Errorf("%w: %s is required", ErrValidation, name)
}

func missingReference(kind, id string) error {
	return fmt.Errorf("%w: %s %q", ErrMissingReference, kind, id)
}

// translateNotFound maps the repository NotFound onto the use-case sentinel.
func translateNotFound(err, target error) error {
	if errors.Is(err, interfaces.ErrNotFound) {
		return target
	}
	return err
}
