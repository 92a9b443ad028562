package entities

import "time"

// QuoteStatus represents the lifecycle of a quote (orçamento).
//
// Domain notes:
//   - Sent/Approved/Rejected saves drive the owning work order's stage.
//   - Once Faturado (invoiced) the quote never drives stage changes again.

type QuoteStatus string

const (
	QuoteStatusRascunho  QuoteStatus = "rascunho"
	QuoteStatusEnviado   QuoteStatus = "enviado"
	QuoteStatusRevisado  QuoteStatus = "revisado"
	QuoteStatusAprovado  QuoteStatus = "aprovado"
	QuoteStatusRejeitado QuoteStatus = "rejeitado"
	QuoteStatusFaturado  QuoteStatus = "faturado"
)

// IsValid reports whether s is one of the defined quote statuses.
func (s QuoteStatus) IsValid() bool {
	switch s {
	case QuoteStatusRascunho, QuoteStatusEnviado, QuoteStatusRevisado,
		QuoteStatusAprovado, QuoteStatusRejeitado, QuoteStatusFaturado:
		return true
	}
	return false
}

// QuoteItem is one line of a quote (service or part).
type QuoteItem struct {
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Quantity    int     `json:"quantity"`
}

// Quote is a repair quote persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI (work_order_id-index): work_order_id
//
// WorkOrderID is empty only for manually created, unlinked quotes.
type Quote struct {
	ID          string      `json:"id"`
	WorkOrderID string      `json:"work_order_id,omitempty"`
	Status      QuoteStatus `json:"status"`
	Total       float64     `json:"total"`
	Items       []QuoteItem `json:"items,omitempty"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

// ItemsTotal sums the quote lines. Negative prices and non-positive
// quantities are ignored.
func (q Quote) ItemsTotal() float64 {
	total := 0.0
	for _, it := range q.Items {
		if it.Price > 0 && it.Quantity > 0 {
			total += it.Price * float64(it.Quantity)
		}
	}
	return total
}
