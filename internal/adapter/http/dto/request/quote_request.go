package request

import "strings"

// QuoteItemRequest is one quote line (service or part).
type QuoteItemRequest struct {
	Description string  `json:"description" binding:"required"`
	Price       float64 `json:"price" binding:"required"`
	Quantity    int     `json:"quantity" binding:"required"`
}

// CreateQuoteRequest creates a draft quote, optionally already linked to a
// work order.
type CreateQuoteRequest struct {
	WorkOrderID string             `json:"work_order_id"`
	Items       []QuoteItemRequest `json:"items"`
	User        string             `json:"user"`
}

func (r CreateQuoteRequest) ResolveWorkOrderID() string {
	return strings.TrimSpace(r.WorkOrderID)
}

// SaveQuoteRequest is the partial-update payload of a quote save. Nil
// fields are left untouched; a status change drives the linked work order's
// stage.
type SaveQuoteRequest struct {
	Status      *string            `json:"status"`
	Items       []QuoteItemRequest `json:"items"`
	Total       *float64           `json:"total"`
	WorkOrderID *string            `json:"work_order_id"`
	User        string             `json:"user"`
}

func (r SaveQuoteRequest) ResolveStatus() (string, bool) {
	if r.Status == nil {
		return "", false
	}
	return strings.TrimSpace(*r.Status), true
}
