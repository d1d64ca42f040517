package response

import "github.com/google/uuid"

// CancelSaleResponse reports the outcome of a sale cancellation.
type CancelSaleResponse struct {
	ID      uuid.UUID `json:"id"`
	Success bool      `json:"success"`
}
