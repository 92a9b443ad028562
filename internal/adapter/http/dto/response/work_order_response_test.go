package response

import (
	"testing"
	"time"

	"os_service_api/internal/domain/entities"
)

func TestFromWorkOrder(t *testing.T) {
	now := time.Now().UTC()
	wo := entities.WorkOrder{
		ID:             "os-1",
		ClientID:       "c-1",
		VehicleID:      "v-1",
		Stage:          entities.StageInRepair,
		Status:         entities.OSStatusEmAndamento,
		LinkedQuoteIDs: []string{"q-1"},
		History: []entities.HistoryEntry{
			{Stage: entities.StageReception, Date: now, User: "system", Notes: "work order created"},
			{Stage: entities.StageInRepair, Date: now, User: "cliente"},
		},
		DiagnosticData: &entities.DiagnosticData{
			Summary:          "brake wear",
			RecommendedItems: []entities.RecommendedItem{{Description: "brake pads", Price: 150, Quantity: 2}},
			CompletedAt:      now,
		},
		UnforeseenIssues: []entities.UnforeseenIssue{{ID: "i-1", Description: "leak", ReportedBy: "mecanico", ReportedAt: now}},
		Delivery:         &entities.DeliveryInfo{DeliveredAt: now, NextMaintenanceDate: now.AddDate(0, 6, 0)},
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	res := FromWorkOrder(wo)
	if res.ID != "os-1" || res.WorkOrderID != "os-1" {
		t.Fatalf("unexpected ids: %+v", res)
	}
	if res.Stage != "em_reparo" || res.Status != "em_andamento" {
		t.Fatalf("unexpected stage fields: %+v", res)
	}
	if len(res.History) != 2 || res.History[0].Stage != "recepcao" {
		t.Fatalf("unexpected history: %+v", res.History)
	}
	if res.Diagnostic == nil || res.Diagnostic.Summary != "brake wear" || len(res.Diagnostic.RecommendedItems) != 1 {
		t.Fatalf("unexpected diagnostic: %+v", res.Diagnostic)
	}
	if len(res.UnforeseenIssues) != 1 || res.UnforeseenIssues[0].ID != "i-1" {
		t.Fatalf("unexpected issues: %+v", res.UnforeseenIssues)
	}
	if res.Delivery == nil || !res.Delivery.DeliveredAt.Equal(now) {
		t.Fatalf("unexpected delivery: %+v", res.Delivery)
	}
}

func TestFromWorkOrder_EmptyLinkedQuotes(t *testing.T) {
	res := FromWorkOrder(entities.WorkOrder{ID: "os-1", Stage: entities.StageReception})
	if res.LinkedQuoteIDs == nil || len(res.LinkedQuoteIDs) != 0 {
		t.Fatalf("expected empty slice, got %#v", res.LinkedQuoteIDs)
	}
	if res.Diagnostic != nil || res.Delivery != nil || res.UnforeseenIssues != nil {
		t.Fatalf("expected optional sections omitted: %+v", res)
	}
}
