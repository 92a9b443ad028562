package response

import (
	"os_service_api/internal/domain/entities"
	"time"
)

type HistoryEntryResponse struct {
	Stage string    `json:"stage"`
	Date  time.Time `json:"date"`
	User  string    `json:"user"`
	Notes string    `json:"notes,omitempty"`
}

type RecommendedItemResponse struct {
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Quantity    int     `json:"quantity"`
}

type DiagnosticResponse struct {
	Summary          string                    `json:"summary"`
	Type             string                    `json:"type,omitempty"`
	StaffIDs         []string                  `json:"staff_ids,omitempty"`
	RecommendedItems []RecommendedItemResponse `json:"recommended_items,omitempty"`
	CompletedAt      time.Time                 `json:"completed_at"`
}

type DeliveryResponse struct {
	DeliveredAt         time.Time `json:"delivered_at"`
	ReceivedBy          string    `json:"received_by,omitempty"`
	Odometer            int64     `json:"odometer,omitempty"`
	Notes               string    `json:"notes,omitempty"`
	NextMaintenanceDate time.Time `json:"next_maintenance_date"`
	NextMaintenanceNote string    `json:"next_maintenance_note,omitempty"`
}

type UnforeseenIssueResponse struct {
	ID          string    `json:"id"`
	Description string    `json:"description"`
	ReportedBy  string    `json:"reported_by"`
	ReportedAt  time.Time `json:"reported_at"`
}

type WorkOrderResponse struct {
	ID               string                    `json:"id"`
	WorkOrderID      string                    `json:"work_order_id"`
	ClientID         string                    `json:"client_id"`
	VehicleID        string                    `json:"vehicle_id"`
	Stage            string                    `json:"stage"`
	Status           string                    `json:"status"`
	LinkedQuoteIDs   []string                  `json:"linked_quote_ids"`
	History          []HistoryEntryResponse    `json:"history"`
	Diagnostic       *DiagnosticResponse       `json:"diagnostic_data,omitempty"`
	UnforeseenIssues []UnforeseenIssueResponse `json:"unforeseen_issues,omitempty"`
	Delivery         *DeliveryResponse         `json:"delivery,omitempty"`
	CancelReason     string                    `json:"cancel_reason,omitempty"`
	CreatedAt        time.Time                 `json:"created_at"`
	UpdatedAt        time.Time                 `json:"updated_at"`
}

func FromWorkOrder(wo entities.WorkOrder) WorkOrderResponse {
	history := make([]HistoryEntryResponse, 0, len(wo.History))
	for _, h := range wo.History {
		history = append(history, HistoryEntryResponse{
			Stage: string(h.Stage),
			Date:  h.Date,
			User:  h.User,
			Notes: h.Notes,
		})
	}

	resp := WorkOrderResponse{
		ID:             wo.ID,
		WorkOrderID:    wo.ID,
		ClientID:       wo.ClientID,
		VehicleID:      wo.VehicleID,
		Stage:          string(wo.Stage),
		Status:         string(wo.Status),
		LinkedQuoteIDs: wo.LinkedQuoteIDs,
		History:        history,
		CancelReason:   wo.CancelReason,
		CreatedAt:      wo.CreatedAt,
		UpdatedAt:      wo.UpdatedAt,
	}
	if resp.LinkedQuoteIDs == nil {
		resp.LinkedQuoteIDs = []string{}
	}

	if wo.DiagnosticData != nil {
		items := make([]RecommendedItemResponse, 0, len(wo.DiagnosticData.RecommendedItems))
		for _, it := range wo.DiagnosticData.RecommendedItems {
			items = append(items, RecommendedItemResponse(it))
		}
		resp.Diagnostic = &DiagnosticResponse{
			Summary:          wo.DiagnosticData.Summary,
			Type:             wo.DiagnosticData.Type,
			StaffIDs:         wo.DiagnosticData.StaffIDs,
			RecommendedItems: items,
			CompletedAt:      wo.DiagnosticData.CompletedAt,
		}
	}
	if len(wo.UnforeseenIssues) > 0 {
		issues := make([]UnforeseenIssueResponse, 0, len(wo.UnforeseenIssues))
		for _, i := range wo.UnforeseenIssues {
			issues = append(issues, UnforeseenIssueResponse(i))
		}
		resp.UnforeseenIssues = issues
	}
	if wo.Delivery != nil {
		d := DeliveryResponse(*wo.Delivery)
		resp.Delivery = &d
	}
	return resp
}

func FromWorkOrders(orders []entities.WorkOrder) []WorkOrderResponse {
	out := make([]WorkOrderResponse, 0, len(orders))
	for _, wo := range orders {
		out = append(out, FromWorkOrder(wo))
	}
	return out
}
