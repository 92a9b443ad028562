package response

import (
	"os_service_api/internal/domain/entities"
	"time"
)

type QuoteItemResponse struct {
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Quantity    int     `json:"quantity"`
}

type QuoteResponse struct {
	QuoteID     string              `json:"quote_id"`
	ID          string              `json:"id"`
	WorkOrderID string              `json:"work_order_id,omitempty"`
	Status      string              `json:"status"`
	Total       float64             `json:"total"`
	Items       []QuoteItemResponse `json:"items,omitempty"`
	CreatedAt   time.Time           `json:"created_at"`
	UpdatedAt   time.Time           `json:"updated_at"`
}

func FromQuote(q entities.Quote) QuoteResponse {
	items := make([]QuoteItemResponse, 0, len(q.Items))
	for _, it := range q.Items {
		items = append(items, QuoteItemResponse(it))
	}
	return QuoteResponse{
		QuoteID:     q.ID,
		ID:          q.ID,
		WorkOrderID: q.WorkOrderID,
		Status:      string(q.Status),
		Total:       q.Total,
		Items:       items,
		CreatedAt:   q.CreatedAt,
		UpdatedAt:   q.UpdatedAt,
	}
}

func FromQuotes(quotes []entities.Quote) []QuoteResponse {
	out := make([]QuoteResponse, 0, len(quotes))
	for _, q := range quotes {
		out = append(out, FromQuote(q))
	}
	return out
}
