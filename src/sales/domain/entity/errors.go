package entity

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// NotFoundError is returned when a sale with the given ID does not exist.
type NotFoundError struct {
	SaleID uuid.UUID
}

// Error implements the error interface for NotFoundError.
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("Sale with ID %s not found.", e.SaleID)
}

// Is allows error type checking with errors.Is().
func (e *NotFoundError) Is(target error) bool {
	_, ok := target.(*NotFoundError)
	return ok
}

// NewNotFoundError creates a NotFoundError for the given sale ID.
func NewNotFoundError(saleID uuid.UUID) *NotFoundError {
	return &NotFoundError{SaleID: saleID}
}

// DomainRuleError is returned when an aggregate-level business rule is broken:
// the per-product quantity cap, a mutation against a cancelled sale, or a
// double cancellation.
type DomainRuleError struct {
	Message string
}

// Error implements the error interface for DomainRuleError.
func (e *DomainRuleError) Error() string {
	return e.Message
}

// Is allows error type checking with errors.Is().
func (e *DomainRuleError) Is(target error) bool {
	_, ok := target.(*DomainRuleError)
	return ok
}

// NewDomainRuleError creates a DomainRuleError with a formatted message.
func NewDomainRuleError(format string, args ...interface{}) *DomainRuleError {
	return &DomainRuleError{Message: fmt.Sprintf(format, args...)}
}

// InvalidStateError is returned when an operation is attempted against a sale
// whose state forbids it, such as updating a cancelled sale.
type InvalidStateError struct {
	Message string
}

// Error implements the error interface for InvalidStateError.
func (e *InvalidStateError) Error() string {
	return e.Message
}

// Is allows error type checking with errors.Is().
func (e *InvalidStateError) Is(target error) bool {
	_, ok := target.(*InvalidStateError)
	return ok
}

// ValidationError is returned when declarative validation of an aggregate or
// an incoming query fails. It carries every violated rule so all problems are
// reported together.
type ValidationError struct {
	Violations []string
}

// Error implements the error interface for ValidationError.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %s", strings.Join(e.Violations, "; "))
}

// Is allows error type checking with errors.Is().
func (e *ValidationError) Is(target error) bool {
	_, ok := target.(*ValidationError)
	return ok
}
