package entities

import "testing"

func TestQuoteItemsTotal(t *testing.T) {
	q := Quote{Items: []QuoteItem{
		{Description: "brake pads", Price: 150, Quantity: 2},
		{Description: "labor", Price: 80, Quantity: 1},
		{Description: "bad price", Price: -5, Quantity: 3},
		{Description: "bad quantity", Price: 40, Quantity: 0},
	}}
	if got := q.ItemsTotal(); got != 380 {
		t.Fatalf("expected 380, got %v", got)
	}

	if got := (Quote{}).ItemsTotal(); got != 0 {
		t.Fatalf("expected 0, got %v", got)
	}
}

func TestQuoteStatusIsValid(t *testing.T) {
	valid := []QuoteStatus{
		QuoteStatusRascunho, QuoteStatusEnviado, QuoteStatusRevisado,
		QuoteStatusAprovado, QuoteStatusRejeitado, QuoteStatusFaturado,
	}
	for _, s := range valid {
		if !s.IsValid() {
			t.Fatalf("expected %s to be valid", s)
		}
	}
	if QuoteStatus("pago").IsValid() {
		t.Fatalf("expected unknown status to be invalid")
	}
}

func TestWorkOrderHelpers(t *testing.T) {
	wo := WorkOrder{
		LinkedQuoteIDs: []string{"q-1", "q-2"},
		History: []HistoryEntry{
			{Stage: StageReception},
			{Stage: StageDiagnosis},
		},
	}

	if !wo.HasLinkedQuote("q-2") || wo.HasLinkedQuote("q-9") {
		t.Fatalf("unexpected linked quote lookup")
	}
	if !wo.HasHistoryStage(StageDiagnosis) || wo.HasHistoryStage(StageInRepair) {
		t.Fatalf("unexpected history lookup")
	}
}
