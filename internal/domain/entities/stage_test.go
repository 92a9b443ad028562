package entities

import "testing"

func TestStageOrderNavigation(t *testing.T) {
	t.Run("next of each position", func(t *testing.T) {
		for i, s := range StageOrder[:len(StageOrder)-1] {
			next, ok := NextOf(s)
			if !ok {
				t.Fatalf("expected next of %s", s)
			}
			if next != StageOrder[i+1] {
				t.Fatalf("expected %s after %s, got %s", StageOrder[i+1], s, next)
			}
		}
	})

	t.Run("no next after last", func(t *testing.T) {
		if _, ok := NextOf(StageDelivered); ok {
			t.Fatalf("expected no next after %s", StageDelivered)
		}
	})

	t.Run("no previous before first", func(t *testing.T) {
		if _, ok := PreviousOf(StageReception); ok {
			t.Fatalf("expected no previous before %s", StageReception)
		}
	})

	t.Run("previous of each position", func(t *testing.T) {
		for i := 1; i < len(StageOrder); i++ {
			prev, ok := PreviousOf(StageOrder[i])
			if !ok || prev != StageOrder[i-1] {
				t.Fatalf("expected %s before %s, got %s ok=%v", StageOrder[i-1], StageOrder[i], prev, ok)
			}
		}
	})

	t.Run("cancelled has no position", func(t *testing.T) {
		if StageIndex(StageCancelled) != -1 {
			t.Fatalf("expected -1 index for cancelled")
		}
		if _, ok := NextOf(StageCancelled); ok {
			t.Fatalf("expected no next for cancelled")
		}
		if _, ok := PreviousOf(StageCancelled); ok {
			t.Fatalf("expected no previous for cancelled")
		}
	})

	t.Run("unknown stage has no position", func(t *testing.T) {
		if StageIndex(Stage("lavagem")) != -1 {
			t.Fatalf("expected -1 index for unknown stage")
		}
	})
}

func TestStageIsTerminal(t *testing.T) {
	if !StageDelivered.IsTerminal() {
		t.Fatalf("expected delivered to be terminal")
	}
	if !StageCancelled.IsTerminal() {
		t.Fatalf("expected cancelled to be terminal")
	}
	for _, s := range StageOrder[:len(StageOrder)-1] {
		if s.IsTerminal() {
			t.Fatalf("expected %s to be non-terminal", s)
		}
	}
}

func TestStageIsValid(t *testing.T) {
	for _, s := range StageOrder {
		if !s.IsValid() {
			t.Fatalf("expected %s to be valid", s)
		}
	}
	if !StageCancelled.IsValid() {
		t.Fatalf("expected cancelled to be valid")
	}
	if Stage("").IsValid() {
		t.Fatalf("expected empty stage to be invalid")
	}
	if Stage("lavagem").IsValid() {
		t.Fatalf("expected unknown stage to be invalid")
	}
}
