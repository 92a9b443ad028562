package response

import (
	"testing"
	"time"

	"os_service_api/internal/domain/entities"
)

func TestFromQuote(t *testing.T) {
	now := time.Now().UTC()
	q := entities.Quote{
		ID:          "q-1",
		WorkOrderID: "os-1",
		Status:      entities.QuoteStatusEnviado,
		Total:       380,
		Items:       []entities.QuoteItem{{Description: "brake pads", Price: 150, Quantity: 2}},
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	res := FromQuote(q)
	if res.ID != "q-1" || res.QuoteID != "q-1" {
		t.Fatalf("unexpected ids: %+v", res)
	}
	if res.WorkOrderID != "os-1" || res.Status != "enviado" || res.Total != 380 {
		t.Fatalf("unexpected mapped fields: %+v", res)
	}
	if len(res.Items) != 1 || res.Items[0].Description != "brake pads" {
		t.Fatalf("unexpected items: %+v", res.Items)
	}
	if !res.CreatedAt.Equal(now) || !res.UpdatedAt.Equal(now) {
		t.Fatalf("unexpected dates: %+v", res)
	}
}

func TestFromQuotes(t *testing.T) {
	out := FromQuotes([]entities.Quote{{ID: "q-1"}, {ID: "q-2"}})
	if len(out) != 2 || out[0].ID != "q-1" || out[1].ID != "q-2" {
		t.Fatalf("unexpected result: %+v", out)
	}

	if got := FromQuotes(nil); got == nil || len(got) != 0 {
		t.Fatalf("expected empty slice, got %#v", got)
	}
}
