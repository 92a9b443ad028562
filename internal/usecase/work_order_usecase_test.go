package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"os_service_api/internal/domain/entities"
	mock_interfaces "os_service_api/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func newWorkOrderMocks(t *testing.T) (*gomock.Controller, *mock_interfaces.MockIWorkOrderRepository, *mock_interfaces.MockIQuoteRepository, *mock_interfaces.MockISideEffectDispatcher, *WorkOrderUseCase) {
	ctrl := gomock.NewController(t)
	repo := mock_interfaces.NewMockIWorkOrderRepository(ctrl)
	quoteRepo := mock_interfaces.NewMockIQuoteRepository(ctrl)
	dispatcher := mock_interfaces.NewMockISideEffectDispatcher(ctrl)
	uc := NewWorkOrderUseCase(repo, quoteRepo, dispatcher)
	return ctrl, repo, quoteRepo, dispatcher, uc
}

func TestWorkOrderUseCase_CreateWorkOrder(t *testing.T) {
	t.Run("create success with defaults", func(t *testing.T) {
		ctrl, repo, _, dispatcher, uc := newWorkOrderMocks(t)
		defer ctrl.Finish()

		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.WorkOrder{})).DoAndReturn(
			func(_ context.Context, wo entities.WorkOrder) (entities.WorkOrder, error) {
				if wo.ID == "" || wo.ClientID != "client-1" || wo.VehicleID != "vehicle-1" {
					t.Fatalf("unexpected work order: %+v", wo)
				}
				if wo.Stage != entities.StageReception || wo.Status != entities.OSStatusRecebida {
					t.Fatalf("expected reception stage, got %s/%s", wo.Stage, wo.Status)
				}
				if len(wo.History) != 1 || wo.History[0].Stage != entities.StageReception || wo.History[0].User != "system" {
					t.Fatalf("unexpected history: %+v", wo.History)
				}
				if wo.CreatedAt.IsZero() || wo.UpdatedAt.IsZero() {
					t.Fatalf("expected timestamps")
				}
				return wo, nil
			},
		)
		dispatcher.EXPECT().Notify(gomock.Any(), gomock.Any()).Do(
			func(_ context.Context, n entities.Notification) {
				if n.Type != entities.NotificationOSCreated {
					t.Fatalf("unexpected notification type: %s", n.Type)
				}
			},
		)

		wo, err := uc.CreateWorkOrder(context.Background(), " client-1 ", " vehicle-1 ", "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if wo.ID == "" {
			t.Fatalf("expected generated id")
		}
	})

	t.Run("repo error", func(t *testing.T) {
		ctrl, repo, _, _, uc := newWorkOrderMocks(t)
		defer ctrl.Finish()

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.WorkOrder{}, errors.New("db"))

		_, err := uc.CreateWorkOrder(context.Background(), "client-1", "vehicle-1", "maria")
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}

func TestWorkOrderUseCase_GetByID(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		ctrl, _, _, _, uc := newWorkOrderMocks(t)
		defer ctrl.Finish()

		_, err := uc.GetByID(context.Background(), "   ")
		if !errors.Is(err, ErrInvalidWorkOrderID) {
			t.Fatalf("expected ErrInvalidWorkOrderID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl, repo, _, _, uc := newWorkOrderMocks(t)
		defer ctrl.Finish()

		repo.EXPECT().GetByID(gomock.Any(), "os-1").Return(entities.WorkOrder{}, nil)

		_, err := uc.GetByID(context.Background(), "os-1")
		if !errors.Is(err, ErrWorkOrderNotFound) {
			t.Fatalf("expected ErrWorkOrderNotFound, got %v", err)
		}
	})

	t.Run("success trims id", func(t *testing.T) {
		ctrl, repo, _, _, uc := newWorkOrderMocks(t)
		defer ctrl.Finish()

		repo.EXPECT().GetByID(gomock.Any(), "os-1").Return(entities.WorkOrder{ID: "os-1"}, nil)

		wo, err := uc.GetByID(context.Background(), "  os-1  ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if wo.ID != "os-1" {
			t.Fatalf("unexpected work order: %+v", wo)
		}
	})
}

func TestWorkOrderUseCase_AdvanceStage(t *testing.T) {
	t.Run("advance one position", func(t *testing.T) {
		ctrl, repo, _, dispatcher, uc := newWorkOrderMocks(t)
		defer ctrl.Finish()

		repo.EXPECT().GetByID(gomock.Any(), "os-1").Return(entities.WorkOrder{ID: "os-1", Stage: entities.StageReception}, nil)
		repo.EXPECT().UpdateStage(gomock.Any(), "os-1", entities.StageDiagnosis, entities.OSStatusEmAndamento, gomock.Any()).DoAndReturn(
			func(_ context.Context, id string, stage entities.Stage, status entities.OSStatus, entry entities.HistoryEntry) (entities.WorkOrder, error) {
				if entry.Stage != entities.StageDiagnosis || entry.User != "joao" {
					t.Fatalf("unexpected entry: %+v", entry)
				}
				return entities.WorkOrder{ID: id, Stage: stage, Status: status}, nil
			},
		)
		dispatcher.EXPECT().Notify(gomock.Any(), gomock.Any())

		wo, err := uc.AdvanceStage(context.Background(), "os-1", "joao")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if wo.Stage != entities.StageDiagnosis {
			t.Fatalf("expected diagnosis, got %s", wo.Stage)
		}
	})

	t.Run("cannot advance into delivered", func(t *testing.T) {
		ctrl, repo, _, _, uc := newWorkOrderMocks(t)
		defer ctrl.Finish()

		repo.EXPECT().GetByID(gomock.Any(), "os-1").Return(entities.WorkOrder{ID: "os-1", Stage: entities.StageReadyForDelivery}, nil)

		_, err := uc.AdvanceStage(context.Background(), "os-1", "")
		if !errors.Is(err, ErrInvalidTransition) {
			t.Fatalf("expected ErrInvalidTransition, got %v", err)
		}
	})

	t.Run("terminal stages reject advance", func(t *testing.T) {
		for _, stage := range []entities.Stage{entities.StageDelivered, entities.StageCancelled} {
			ctrl, repo, _, _, uc := newWorkOrderMocks(t)

			repo.EXPECT().GetByID(gomock.Any(), "os-1").Return(entities.WorkOrder{ID: "os-1", Stage: stage}, nil)

			_, err := uc.AdvanceStage(context.Background(), "os-1", "")
			if !errors.Is(err, ErrInvalidTransition) {
				t.Fatalf("stage %s: expected ErrInvalidTransition, got %v", stage, err)
			}
			ctrl.Finish()
		}
	})
}

func TestWorkOrderUseCase_RetreatStage(t *testing.T) {
	t.Run("retreat one position", func(t *testing.T) {
		ctrl, repo, _, dispatcher, uc := newWorkOrderMocks(t)
		defer ctrl.Finish()

		repo.EXPECT().GetByID(gomock.Any(), "os-1").Return(entities.WorkOrder{ID: "os-1", Stage: entities.StageInRepair}, nil)
		repo.EXPECT().UpdateStage(gomock.Any(), "os-1", entities.StageAttentionRequired, entities.OSStatusEmAndamento, gomock.Any()).Return(
			entities.WorkOrder{ID: "os-1", Stage: entities.StageAttentionRequired}, nil,
		)
		dispatcher.EXPECT().Notify(gomock.Any(), gomock.Any())

		wo, err := uc.RetreatStage(context.Background(), "os-1", "admin")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if wo.Stage != entities.StageAttentionRequired {
			t.Fatalf("expected atencao_requerida, got %s", wo.Stage)
		}
	})

	t.Run("cannot retreat from first stage", func(t *testing.T) {
		ctrl, repo, _, _, uc := newWorkOrderMocks(t)
		defer ctrl.Finish()

		repo.EXPECT().GetByID(gomock.Any(), "os-1").Return(entities.WorkOrder{ID: "os-1", Stage: entities.StageReception}, nil)

		_, err := uc.RetreatStage(context.Background(), "os-1", "")
		if !errors.Is(err, ErrInvalidTransition) {
			t.Fatalf("expected ErrInvalidTransition, got %v", err)
		}
	})

	t.Run("cannot retreat from delivered", func(t *testing.T) {
		ctrl, repo, _, _, uc := newWorkOrderMocks(t)
		defer ctrl.Finish()

		repo.EXPECT().GetByID(gomock.Any(), "os-1").Return(entities.WorkOrder{ID: "os-1", Stage: entities.StageDelivered}, nil)

		_, err := uc.RetreatStage(context.Background(), "os-1", "")
		if !errors.Is(err, ErrInvalidTransition) {
			t.Fatalf("expected ErrInvalidTransition, got %v", err)
		}
	})
}

func TestWorkOrderUseCase_SaveDiagnostic(t *testing.T) {
	t.Run("empty summary", func(t *testing.T) {
		ctrl, repo, _, _, uc := newWorkOrderMocks(t)
		defer ctrl.Finish()

		repo.EXPECT().GetByID(gomock.Any(), "os-1").Return(entities.WorkOrder{ID: "os-1", Stage: entities.StageReception}, nil)

		_, err := uc.SaveDiagnostic(context.Background(), "os-1", entities.DiagnosticData{Summary: "   "}, "")
		if !errors.Is(err, ErrInvalidDiagnostic) {
			t.Fatalf("expected ErrInvalidDiagnostic, got %v", err)
		}
	})

	t.Run("first save appends ledger entry", func(t *testing.T) {
		ctrl, repo, _, dispatcher, uc := newWorkOrderMocks(t)
		defer ctrl.Finish()

		repo.EXPECT().GetByID(gomock.Any(), "os-1").Return(entities.WorkOrder{
			ID:      "os-1",
			Stage:   entities.StageReception,
			History: []entities.HistoryEntry{{Stage: entities.StageReception}},
		}, nil)
		repo.EXPECT().SetDiagnostic(gomock.Any(), "os-1", gomock.Any(), entities.StageDiagnosis, gomock.Any()).DoAndReturn(
			func(_ context.Context, id string, diag entities.DiagnosticData, stage entities.Stage, entry *entities.HistoryEntry) (entities.WorkOrder, error) {
				if entry == nil || entry.Stage != entities.StageDiagnosis {
					t.Fatalf("expected diagnosis ledger entry, got %+v", entry)
				}
				if diag.CompletedAt.IsZero() {
					t.Fatalf("expected completed_at default")
				}
				return entities.WorkOrder{ID: id, Stage: stage}, nil
			},
		)
		dispatcher.EXPECT().Notify(gomock.Any(), gomock.Any())

		wo, err := uc.SaveDiagnostic(context.Background(), "os-1", entities.DiagnosticData{Summary: "brake wear"}, "mecanico-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if wo.Stage != entities.StageDiagnosis {
			t.Fatalf("expected diagnosis, got %s", wo.Stage)
		}
	})

	t.Run("repeated save skips ledger entry", func(t *testing.T) {
		ctrl, repo, _, dispatcher, uc := newWorkOrderMocks(t)
		defer ctrl.Finish()

		repo.EXPECT().GetByID(gomock.Any(), "os-1").Return(entities.WorkOrder{
			ID:    "os-1",
			Stage: entities.StageDiagnosis,
			History: []entities.HistoryEntry{
				{Stage: entities.StageReception},
				{Stage: entities.StageDiagnosis},
			},
		}, nil)
		repo.EXPECT().SetDiagnostic(gomock.Any(), "os-1", gomock.Any(), entities.StageDiagnosis, gomock.Nil()).Return(
			entities.WorkOrder{ID: "os-1", Stage: entities.StageDiagnosis}, nil,
		)
		dispatcher.EXPECT().Notify(gomock.Any(), gomock.Any())

		_, err := uc.SaveDiagnostic(context.Background(), "os-1", entities.DiagnosticData{Summary: "revised summary"}, "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("cancelled order rejects diagnostic", func(t *testing.T) {
		ctrl, repo, _, _, uc := newWorkOrderMocks(t)
		defer ctrl.Finish()

		repo.EXPECT().GetByID(gomock.Any(), "os-1").Return(entities.WorkOrder{ID: "os-1", Stage: entities.StageCancelled}, nil)

		_, err := uc.SaveDiagnostic(context.Background(), "os-1", entities.DiagnosticData{Summary: "late"}, "")
		if !errors.Is(err, ErrInvalidTransition) {
			t.Fatalf("expected ErrInvalidTransition, got %v", err)
		}
	})
}

func TestWorkOrderUseCase_ApplyQuoteStatus(t *testing.T) {
	quote := func(status entities.QuoteStatus) entities.Quote {
		return entities.Quote{ID: "q-1", WorkOrderID: "os-1", Status: status, Total: 350}
	}

	t.Run("sent moves to awaiting approval", func(t *testing.T) {
		ctrl, repo, _, dispatcher, uc := newWorkOrderMocks(t)
		defer ctrl.Finish()

		repo.EXPECT().GetByID(gomock.Any(), "os-1").Return(entities.WorkOrder{
			ID: "os-1", Stage: entities.StagePendingQuote, LinkedQuoteIDs: []string{"q-1"},
		}, nil)
		repo.EXPECT().UpdateStage(gomock.Any(), "os-1", entities.StageAwaitingApproval, entities.OSStatusEmAndamento, gomock.Any()).Return(
			entities.WorkOrder{ID: "os-1", Stage: entities.StageAwaitingApproval}, nil,
		)
		dispatcher.EXPECT().Notify(gomock.Any(), gomock.Any()).Do(
			func(_ context.Context, n entities.Notification) {
				if n.Type != entities.NotificationQuoteUpdated {
					t.Fatalf("unexpected notification type: %s", n.Type)
				}
			},
		)

		wo, err := uc.ApplyQuoteStatus(context.Background(), quote(entities.QuoteStatusEnviado), "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if wo.Stage != entities.StageAwaitingApproval {
			t.Fatalf("expected aguardando_aprovacao, got %s", wo.Stage)
		}
	})

	t.Run("approved moves to in repair and links the quote", func(t *testing.T) {
		ctrl, repo, _, dispatcher, uc := newWorkOrderMocks(t)
		defer ctrl.Finish()

		repo.EXPECT().GetByID(gomock.Any(), "os-1").Return(entities.WorkOrder{ID: "os-1", Stage: entities.StageAwaitingApproval}, nil)
		repo.EXPECT().AddLinkedQuote(gomock.Any(), "os-1", "q-1").Return(entities.WorkOrder{
			ID: "os-1", Stage: entities.StageAwaitingApproval, LinkedQuoteIDs: []string{"q-1"},
		}, nil)
		repo.EXPECT().UpdateStage(gomock.Any(), "os-1", entities.StageInRepair, entities.OSStatusEmAndamento, gomock.Any()).Return(
			entities.WorkOrder{ID: "os-1", Stage: entities.StageInRepair}, nil,
		)
		dispatcher.EXPECT().Notify(gomock.Any(), gomock.Any())

		wo, err := uc.ApplyQuoteStatus(context.Background(), quote(entities.QuoteStatusAprovado), "cliente")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if wo.Stage != entities.StageInRepair {
			t.Fatalf("expected em_reparo, got %s", wo.Stage)
		}
	})

	t.Run("rejected moves to attention required", func(t *testing.T) {
		ctrl, repo, _, dispatcher, uc := newWorkOrderMocks(t)
		defer ctrl.Finish()

		repo.EXPECT().GetByID(gomock.Any(), "os-1").Return(entities.WorkOrder{
			ID: "os-1", Stage: entities.StageAwaitingApproval, LinkedQuoteIDs: []string{"q-1"},
		}, nil)
		repo.EXPECT().UpdateStage(gomock.Any(), "os-1", entities.StageAttentionRequired, entities.OSStatusEmAndamento, gomock.Any()).Return(
			entities.WorkOrder{ID: "os-1", Stage: entities.StageAttentionRequired}, nil,
		)
		dispatcher.EXPECT().Notify(gomock.Any(), gomock.Any()).Do(
			func(_ context.Context, n entities.Notification) {
				if n.Type != entities.NotificationQuoteRejected {
					t.Fatalf("unexpected notification type: %s", n.Type)
				}
			},
		)

		_, err := uc.ApplyQuoteStatus(context.Background(), quote(entities.QuoteStatusRejeitado), "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("invoiced quote never drives stage", func(t *testing.T) {
		ctrl, repo, _, _, uc := newWorkOrderMocks(t)
		defer ctrl.Finish()

		repo.EXPECT().GetByID(gomock.Any(), "os-1").Return(entities.WorkOrder{
			ID: "os-1", Stage: entities.StageDelivered, LinkedQuoteIDs: []string{"q-1"},
		}, nil)

		wo, err := uc.ApplyQuoteStatus(context.Background(), quote(entities.QuoteStatusFaturado), "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if wo.Stage != entities.StageDelivered {
			t.Fatalf("expected stage untouched, got %s", wo.Stage)
		}
	})

	t.Run("draft save on advanced order keeps stage with note", func(t *testing.T) {
		ctrl, repo, _, _, uc := newWorkOrderMocks(t)
		defer ctrl.Finish()

		repo.EXPECT().GetByID(gomock.Any(), "os-1").Return(entities.WorkOrder{
			ID: "os-1", Stage: entities.StageInRepair, LinkedQuoteIDs: []string{"q-1"},
		}, nil)
		repo.EXPECT().AppendHistory(gomock.Any(), "os-1", gomock.Any()).DoAndReturn(
			func(_ context.Context, id string, entry entities.HistoryEntry) (entities.WorkOrder, error) {
				if entry.Stage != entities.StageInRepair {
					t.Fatalf("expected note-only entry at current stage, got %+v", entry)
				}
				if !strings.Contains(entry.Notes, "q-1") {
					t.Fatalf("expected quote id in notes, got %q", entry.Notes)
				}
				return entities.WorkOrder{ID: id, Stage: entities.StageInRepair}, nil
			},
		)

		wo, err := uc.ApplyQuoteStatus(context.Background(), quote(entities.QuoteStatusRascunho), "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if wo.Stage != entities.StageInRepair {
			t.Fatalf("expected em_reparo, got %s", wo.Stage)
		}
	})

	t.Run("draft save on fresh order moves to pending quote", func(t *testing.T) {
		ctrl, repo, _, dispatcher, uc := newWorkOrderMocks(t)
		defer ctrl.Finish()

		repo.EXPECT().GetByID(gomock.Any(), "os-1").Return(entities.WorkOrder{
			ID: "os-1", Stage: entities.StageDiagnosis, LinkedQuoteIDs: []string{"q-1"},
		}, nil)
		repo.EXPECT().UpdateStage(gomock.Any(), "os-1", entities.StagePendingQuote, entities.OSStatusEmAndamento, gomock.Any()).Return(
			entities.WorkOrder{ID: "os-1", Stage: entities.StagePendingQuote}, nil,
		)
		dispatcher.EXPECT().Notify(gomock.Any(), gomock.Any())

		_, err := uc.ApplyQuoteStatus(context.Background(), quote(entities.QuoteStatusRascunho), "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("same target stage is a no-op", func(t *testing.T) {
		ctrl, repo, _, _, uc := newWorkOrderMocks(t)
		defer ctrl.Finish()

		repo.EXPECT().GetByID(gomock.Any(), "os-1").Return(entities.WorkOrder{
			ID: "os-1", Stage: entities.StageAwaitingApproval, LinkedQuoteIDs: []string{"q-1"},
		}, nil)

		wo, err := uc.ApplyQuoteStatus(context.Background(), quote(entities.QuoteStatusEnviado), "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if wo.Stage != entities.StageAwaitingApproval {
			t.Fatalf("expected stage untouched, got %s", wo.Stage)
		}
	})

	t.Run("delivered order rejects stage change", func(t *testing.T) {
		ctrl, repo, _, _, uc := newWorkOrderMocks(t)
		defer ctrl.Finish()

		repo.EXPECT().GetByID(gomock.Any(), "os-1").Return(entities.WorkOrder{
			ID: "os-1", Stage: entities.StageDelivered, LinkedQuoteIDs: []string{"q-1"},
		}, nil)

		_, err := uc.ApplyQuoteStatus(context.Background(), quote(entities.QuoteStatusEnviado), "")
		if !errors.Is(err, ErrInvalidTransition) {
			t.Fatalf("expected ErrInvalidTransition, got %v", err)
		}
	})

	t.Run("cancelled order rejects quote save", func(t *testing.T) {
		ctrl, repo, _, _, uc := newWorkOrderMocks(t)
		defer ctrl.Finish()

		repo.EXPECT().GetByID(gomock.Any(), "os-1").Return(entities.WorkOrder{ID: "os-1", Stage: entities.StageCancelled}, nil)

		_, err := uc.ApplyQuoteStatus(context.Background(), quote(entities.QuoteStatusEnviado), "")
		if !errors.Is(err, ErrInvalidTransition) {
			t.Fatalf("expected ErrInvalidTransition, got %v", err)
		}
	})
}

func TestWorkOrderUseCase_RegisterDelivery(t *testing.T) {
	t.Run("delivery from ready for delivery", func(t *testing.T) {
		ctrl, repo, _, dispatcher, uc := newWorkOrderMocks(t)
		defer ctrl.Finish()

		repo.EXPECT().GetByID(gomock.Any(), "os-1").Return(entities.WorkOrder{ID: "os-1", Stage: entities.StageReadyForDelivery}, nil)
		repo.EXPECT().SetDelivery(gomock.Any(), "os-1", gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, id string, delivery entities.DeliveryInfo, entry entities.HistoryEntry) (entities.WorkOrder, error) {
				if delivery.DeliveredAt.IsZero() {
					t.Fatalf("expected delivered_at default")
				}
				want := delivery.DeliveredAt.AddDate(0, 6, 0)
				if !delivery.NextMaintenanceDate.Equal(want) {
					t.Fatalf("expected next maintenance 6 months out, got %s", delivery.NextMaintenanceDate)
				}
				if entry.Stage != entities.StageDelivered {
					t.Fatalf("unexpected entry: %+v", entry)
				}
				return entities.WorkOrder{ID: id, Stage: entities.StageDelivered, Status: entities.OSStatusFinalizada}, nil
			},
		)
		dispatcher.EXPECT().Notify(gomock.Any(), gomock.Any())
		dispatcher.EXPECT().RequestDeliveryPayment(gomock.Any(), gomock.Any())

		wo, err := uc.RegisterDelivery(context.Background(), "os-1", entities.DeliveryInfo{ReceivedBy: "cliente"}, "atendente")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if wo.Stage != entities.StageDelivered {
			t.Fatalf("expected entregue, got %s", wo.Stage)
		}
	})

	t.Run("explicit dates are kept", func(t *testing.T) {
		ctrl, repo, _, dispatcher, uc := newWorkOrderMocks(t)
		defer ctrl.Finish()

		deliveredAt := time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC)
		next := time.Date(2026, 12, 1, 0, 0, 0, 0, time.UTC)

		repo.EXPECT().GetByID(gomock.Any(), "os-1").Return(entities.WorkOrder{ID: "os-1", Stage: entities.StageReadyForDelivery}, nil)
		repo.EXPECT().SetDelivery(gomock.Any(), "os-1", gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, id string, delivery entities.DeliveryInfo, _ entities.HistoryEntry) (entities.WorkOrder, error) {
				if !delivery.DeliveredAt.Equal(deliveredAt) || !delivery.NextMaintenanceDate.Equal(next) {
					t.Fatalf("expected explicit dates kept, got %+v", delivery)
				}
				return entities.WorkOrder{ID: id, Stage: entities.StageDelivered}, nil
			},
		)
		dispatcher.EXPECT().Notify(gomock.Any(), gomock.Any())
		dispatcher.EXPECT().RequestDeliveryPayment(gomock.Any(), gomock.Any())

		_, err := uc.RegisterDelivery(context.Background(), "os-1", entities.DeliveryInfo{DeliveredAt: deliveredAt, NextMaintenanceDate: next}, "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("delivery requires ready for delivery", func(t *testing.T) {
		ctrl, repo, _, _, uc := newWorkOrderMocks(t)
		defer ctrl.Finish()

		repo.EXPECT().GetByID(gomock.Any(), "os-1").Return(entities.WorkOrder{ID: "os-1", Stage: entities.StageInRepair}, nil)

		_, err := uc.RegisterDelivery(context.Background(), "os-1", entities.DeliveryInfo{}, "")
		if !errors.Is(err, ErrInvalidTransition) {
			t.Fatalf("expected ErrInvalidTransition, got %v", err)
		}
	})
}

func TestWorkOrderUseCase_CancelOrder(t *testing.T) {
	t.Run("cancel with reason", func(t *testing.T) {
		ctrl, repo, _, dispatcher, uc := newWorkOrderMocks(t)
		defer ctrl.Finish()

		repo.EXPECT().GetByID(gomock.Any(), "os-1").Return(entities.WorkOrder{ID: "os-1", Stage: entities.StageAwaitingApproval}, nil)
		repo.EXPECT().SetCancelled(gomock.Any(), "os-1", "client gave up", gomock.Any()).DoAndReturn(
			func(_ context.Context, id, reason string, entry entities.HistoryEntry) (entities.WorkOrder, error) {
				if entry.Stage != entities.StageCancelled || !strings.Contains(entry.Notes, reason) {
					t.Fatalf("unexpected entry: %+v", entry)
				}
				return entities.WorkOrder{ID: id, Stage: entities.StageCancelled, Status: entities.OSStatusCancelada, CancelReason: reason}, nil
			},
		)
		dispatcher.EXPECT().Notify(gomock.Any(), gomock.Any())

		wo, err := uc.CancelOrder(context.Background(), "os-1", " client gave up ", "atendente")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if wo.Stage != entities.StageCancelled {
			t.Fatalf("expected cancelada, got %s", wo.Stage)
		}
	})

	t.Run("cannot cancel twice", func(t *testing.T) {
		ctrl, repo, _, _, uc := newWorkOrderMocks(t)
		defer ctrl.Finish()

		repo.EXPECT().GetByID(gomock.Any(), "os-1").Return(entities.WorkOrder{ID: "os-1", Stage: entities.StageCancelled}, nil)

		_, err := uc.CancelOrder(context.Background(), "os-1", "again", "")
		if !errors.Is(err, ErrInvalidTransition) {
			t.Fatalf("expected ErrInvalidTransition, got %v", err)
		}
	})

	t.Run("cannot cancel delivered", func(t *testing.T) {
		ctrl, repo, _, _, uc := newWorkOrderMocks(t)
		defer ctrl.Finish()

		repo.EXPECT().GetByID(gomock.Any(), "os-1").Return(entities.WorkOrder{ID: "os-1", Stage: entities.StageDelivered}, nil)

		_, err := uc.CancelOrder(context.Background(), "os-1", "too late", "")
		if !errors.Is(err, ErrInvalidTransition) {
			t.Fatalf("expected ErrInvalidTransition, got %v", err)
		}
	})
}

func TestWorkOrderUseCase_ReportUnforeseenIssue(t *testing.T) {
	t.Run("empty description", func(t *testing.T) {
		ctrl, repo, _, _, uc := newWorkOrderMocks(t)
		defer ctrl.Finish()

		repo.EXPECT().GetByID(gomock.Any(), "os-1").Return(entities.WorkOrder{ID: "os-1", Stage: entities.StageInRepair}, nil)

		_, err := uc.ReportUnforeseenIssue(context.Background(), "os-1", "   ", "")
		if !errors.Is(err, ErrInvalidIssue) {
			t.Fatalf("expected ErrInvalidIssue, got %v", err)
		}
	})

	t.Run("append issue", func(t *testing.T) {
		ctrl, repo, _, dispatcher, uc := newWorkOrderMocks(t)
		defer ctrl.Finish()

		repo.EXPECT().GetByID(gomock.Any(), "os-1").Return(entities.WorkOrder{ID: "os-1", Stage: entities.StageInRepair}, nil)
		repo.EXPECT().AppendUnforeseenIssue(gomock.Any(), "os-1", gomock.Any()).DoAndReturn(
			func(_ context.Context, id string, issue entities.UnforeseenIssue) (entities.WorkOrder, error) {
				if issue.ID == "" || issue.Description != "cracked engine mount" || issue.ReportedBy != "mecanico-2" {
					t.Fatalf("unexpected issue: %+v", issue)
				}
				if issue.ReportedAt.IsZero() {
					t.Fatalf("expected reported_at")
				}
				return entities.WorkOrder{ID: id, Stage: entities.StageInRepair, UnforeseenIssues: []entities.UnforeseenIssue{issue}}, nil
			},
		)
		dispatcher.EXPECT().Notify(gomock.Any(), gomock.Any())

		wo, err := uc.ReportUnforeseenIssue(context.Background(), "os-1", " cracked engine mount ", "mecanico-2")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(wo.UnforeseenIssues) != 1 {
			t.Fatalf("expected one issue, got %d", len(wo.UnforeseenIssues))
		}
	})

	t.Run("cancelled order rejects issues", func(t *testing.T) {
		ctrl, repo, _, _, uc := newWorkOrderMocks(t)
		defer ctrl.Finish()

		repo.EXPECT().GetByID(gomock.Any(), "os-1").Return(entities.WorkOrder{ID: "os-1", Stage: entities.StageCancelled}, nil)

		_, err := uc.ReportUnforeseenIssue(context.Background(), "os-1", "leak", "")
		if !errors.Is(err, ErrInvalidTransition) {
			t.Fatalf("expected ErrInvalidTransition, got %v", err)
		}
	})
}

func TestWorkOrderUseCase_RepairQuoteLinks(t *testing.T) {
	t.Run("existing links are kept", func(t *testing.T) {
		ctrl, repo, _, _, uc := newWorkOrderMocks(t)
		defer ctrl.Finish()

		repo.EXPECT().GetByID(gomock.Any(), "os-1").Return(entities.WorkOrder{
			ID: "os-1", LinkedQuoteIDs: []string{"q-1"},
		}, nil)

		wo, err := uc.RepairQuoteLinks(context.Background(), "os-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(wo.LinkedQuoteIDs) != 1 {
			t.Fatalf("expected links untouched, got %+v", wo.LinkedQuoteIDs)
		}
	})

	t.Run("no quotes is a no-op", func(t *testing.T) {
		ctrl, repo, quoteRepo, _, uc := newWorkOrderMocks(t)
		defer ctrl.Finish()

		repo.EXPECT().GetByID(gomock.Any(), "os-1").Return(entities.WorkOrder{ID: "os-1"}, nil)
		quoteRepo.EXPECT().ListByWorkOrderID(gomock.Any(), "os-1").Return(nil, nil)

		_, err := uc.RepairQuoteLinks(context.Background(), "os-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("links rebuilt from reverse lookup", func(t *testing.T) {
		ctrl, repo, quoteRepo, _, uc := newWorkOrderMocks(t)
		defer ctrl.Finish()

		repo.EXPECT().GetByID(gomock.Any(), "os-1").Return(entities.WorkOrder{ID: "os-1"}, nil)
		quoteRepo.EXPECT().ListByWorkOrderID(gomock.Any(), "os-1").Return([]entities.Quote{
			{ID: "q-1", WorkOrderID: "os-1"},
			{ID: "q-2", WorkOrderID: "os-1"},
			{ID: "q-1", WorkOrderID: "os-1"},
			{WorkOrderID: "os-1"},
		}, nil)
		repo.EXPECT().SetLinkedQuotes(gomock.Any(), "os-1", []string{"q-1", "q-2"}).Return(entities.WorkOrder{
			ID: "os-1", LinkedQuoteIDs: []string{"q-1", "q-2"},
		}, nil)

		wo, err := uc.RepairQuoteLinks(context.Background(), "os-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(wo.LinkedQuoteIDs) != 2 {
			t.Fatalf("expected two links, got %+v", wo.LinkedQuoteIDs)
		}
	})
}
