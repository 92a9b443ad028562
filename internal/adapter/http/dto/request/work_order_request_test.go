package request

import "testing"

func TestCancelWorkOrderRequest_ResolveReason(t *testing.T) {
	r := CancelWorkOrderRequest{Reason: " client gave up "}
	if got := r.ResolveReason(); got != "client gave up" {
		t.Fatalf("expected trimmed reason, got %q", got)
	}

	r2 := CancelWorkOrderRequest{Reason: "   "}
	if got := r2.ResolveReason(); got != "" {
		t.Fatalf("expected empty, got %q", got)
	}
}

func TestUnforeseenIssueRequest_ResolveDescription(t *testing.T) {
	r := UnforeseenIssueRequest{Description: " cracked mount "}
	if got := r.ResolveDescription(); got != "cracked mount" {
		t.Fatalf("expected trimmed description, got %q", got)
	}
}
