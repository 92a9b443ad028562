package entities

import (
	"encoding/json"
	"time"
)

// PaymentStatus mirrors the provider outcome for a delivery payment request.

type PaymentStatus string

const (
	PaymentStatusPendente PaymentStatus = "pendente"
	PaymentStatusAprovado PaymentStatus = "aprovado"
	PaymentStatusNegado   PaymentStatus = "negado"
)

// PaymentRecord documents the payment request fired when a delivery is
// registered. It is a side-effect artifact: the billing-service owns the
// authoritative payment state; this record exists for traceability on the
// OS side.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI (work_order_id-index): work_order_id
//
// ProviderPayloadRaw keeps the original provider response (JSON) for audit.
type PaymentRecord struct {
	ID                 string          `json:"id"`
	WorkOrderID        string          `json:"work_order_id"`
	QuoteID            string          `json:"quote_id,omitempty"`
	Amount             float64         `json:"amount"`
	Status             PaymentStatus   `json:"status"`
	Date               time.Time       `json:"date"`
	ProviderPayloadRaw json.RawMessage `json:"provider_payload_raw,omitempty"`
}
