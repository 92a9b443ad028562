package request

import "testing"

func TestCreateQuoteRequest_ResolveWorkOrderID(t *testing.T) {
	r := CreateQuoteRequest{WorkOrderID: " os-123 "}
	if got := r.ResolveWorkOrderID(); got != "os-123" {
		t.Fatalf("expected os-123, got %q", got)
	}

	r2 := CreateQuoteRequest{}
	if got := r2.ResolveWorkOrderID(); got != "" {
		t.Fatalf("expected empty, got %q", got)
	}
}

func TestSaveQuoteRequest_ResolveStatus(t *testing.T) {
	if _, ok := (SaveQuoteRequest{}).ResolveStatus(); ok {
		t.Fatalf("expected no status")
	}

	s := " enviado "
	got, ok := (SaveQuoteRequest{Status: &s}).ResolveStatus()
	if !ok || got != "enviado" {
		t.Fatalf("expected enviado, got %q ok=%v", got, ok)
	}
}
