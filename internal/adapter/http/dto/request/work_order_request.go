package request

import (
	"strings"
	"time"
)

// CreateWorkOrderRequest opens a new service order at reception.
type CreateWorkOrderRequest struct {
	ClientID  string `json:"client_id" binding:"required"`
	VehicleID string `json:"vehicle_id" binding:"required"`
	User      string `json:"user"`
}

// StageActionRequest carries the actor of a manual advance/retreat.
type StageActionRequest struct {
	User string `json:"user"`
}

// RecommendedItemRequest mirrors a diagnostic recommendation line.
type RecommendedItemRequest struct {
	Description string  `json:"description" binding:"required"`
	Price       float64 `json:"price"`
	Quantity    int     `json:"quantity"`
}

// DiagnosticRequest is the payload of a diagnostic save.
type DiagnosticRequest struct {
	Summary          string                   `json:"summary" binding:"required"`
	Type             string                   `json:"type"`
	StaffIDs         []string                 `json:"staff_ids"`
	RecommendedItems []RecommendedItemRequest `json:"recommended_items"`
	User             string                   `json:"user"`
}

// DeliveryRequest is the payload of a delivery registration. Zero dates are
// defaulted server-side (delivered-at: now; next maintenance: +6 months).
type DeliveryRequest struct {
	ReceivedBy          string    `json:"received_by"`
	Odometer            int64     `json:"odometer"`
	Notes               string    `json:"notes"`
	DeliveredAt         time.Time `json:"delivered_at"`
	NextMaintenanceDate time.Time `json:"next_maintenance_date"`
	NextMaintenanceNote string    `json:"next_maintenance_note"`
	User                string    `json:"user"`
}

// CancelWorkOrderRequest carries the cancellation reason.
type CancelWorkOrderRequest struct {
	Reason string `json:"reason" binding:"required"`
	User   string `json:"user"`
}

func (r CancelWorkOrderRequest) ResolveReason() string {
	return strings.TrimSpace(r.Reason)
}

// UnforeseenIssueRequest reports a mid-repair issue.
type UnforeseenIssueRequest struct {
	Description string `json:"description" binding:"required"`
	User        string `json:"user"`
}

func (r UnforeseenIssueRequest) ResolveDescription() string {
	return strings.TrimSpace(r.Description)
}
