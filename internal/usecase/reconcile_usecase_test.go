package usecase

import (
	"context"
	"errors"
	"testing"

	"os_service_api/internal/domain/entities"
	mock_interfaces "os_service_api/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func newReconcileMocks(t *testing.T) (*gomock.Controller, *mock_interfaces.MockIWorkOrderRepository, *mock_interfaces.MockIQuoteRepository, *mock_interfaces.MockISideEffectDispatcher, *ReconcileUseCase) {
	ctrl := gomock.NewController(t)
	repo := mock_interfaces.NewMockIWorkOrderRepository(ctrl)
	quoteRepo := mock_interfaces.NewMockIQuoteRepository(ctrl)
	dispatcher := mock_interfaces.NewMockISideEffectDispatcher(ctrl)
	uc := NewReconcileUseCase(repo, quoteRepo, dispatcher)
	return ctrl, repo, quoteRepo, dispatcher, uc
}

func TestReconcileUseCase_ReconcileAllStages(t *testing.T) {
	diag := &entities.DiagnosticData{Summary: "done"}

	t.Run("list error", func(t *testing.T) {
		ctrl, repo, _, _, uc := newReconcileMocks(t)
		defer ctrl.Finish()

		repo.EXPECT().List(gomock.Any()).Return(nil, errors.New("db"))

		_, err := uc.ReconcileAllStages(context.Background())
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("consistent orders perform zero writes", func(t *testing.T) {
		ctrl, repo, quoteRepo, _, uc := newReconcileMocks(t)
		defer ctrl.Finish()

		repo.EXPECT().List(gomock.Any()).Return([]entities.WorkOrder{
			{ID: "os-1", Stage: entities.StageReception},
			{ID: "os-2", Stage: entities.StagePendingQuote, DiagnosticData: diag},
			{ID: "os-3", Stage: entities.StageAwaitingApproval, DiagnosticData: diag, LinkedQuoteIDs: []string{"q-3"}},
			{ID: "os-4", Stage: entities.StageDelivered},
			{ID: "os-5", Stage: entities.StageCancelled},
		}, nil)
		quoteRepo.EXPECT().GetByID(gomock.Any(), "q-3").Return(entities.Quote{ID: "q-3", Status: entities.QuoteStatusEnviado}, nil)

		res, err := uc.ReconcileAllStages(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Updated != 0 || res.Skipped != 5 || len(res.Errors) != 0 {
			t.Fatalf("unexpected result: %+v", res)
		}
	})

	t.Run("missing diagnostic corrects back to reception", func(t *testing.T) {
		ctrl, repo, _, dispatcher, uc := newReconcileMocks(t)
		defer ctrl.Finish()

		repo.EXPECT().List(gomock.Any()).Return([]entities.WorkOrder{
			{ID: "os-1", Stage: entities.StageDiagnosis},
		}, nil)
		repo.EXPECT().UpdateStage(gomock.Any(), "os-1", entities.StageReception, entities.OSStatusRecebida, gomock.Any()).DoAndReturn(
			func(_ context.Context, id string, stage entities.Stage, status entities.OSStatus, entry entities.HistoryEntry) (entities.WorkOrder, error) {
				if entry.User != "system" {
					t.Fatalf("expected system actor, got %q", entry.User)
				}
				return entities.WorkOrder{ID: id, Stage: stage, Status: status}, nil
			},
		)
		dispatcher.EXPECT().Notify(gomock.Any(), gomock.Any()).Do(
			func(_ context.Context, n entities.Notification) {
				if n.Type != entities.NotificationStageCorrected {
					t.Fatalf("unexpected notification type: %s", n.Type)
				}
			},
		)

		res, err := uc.ReconcileAllStages(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Updated != 1 {
			t.Fatalf("unexpected result: %+v", res)
		}
	})

	t.Run("rejected quote wins over sent", func(t *testing.T) {
		ctrl, repo, quoteRepo, dispatcher, uc := newReconcileMocks(t)
		defer ctrl.Finish()

		repo.EXPECT().List(gomock.Any()).Return([]entities.WorkOrder{
			{ID: "os-1", Stage: entities.StageAwaitingApproval, DiagnosticData: diag, LinkedQuoteIDs: []string{"q-1", "q-2"}},
		}, nil)
		quoteRepo.EXPECT().GetByID(gomock.Any(), "q-1").Return(entities.Quote{ID: "q-1", Status: entities.QuoteStatusEnviado}, nil)
		quoteRepo.EXPECT().GetByID(gomock.Any(), "q-2").Return(entities.Quote{ID: "q-2", Status: entities.QuoteStatusRejeitado}, nil)
		repo.EXPECT().UpdateStage(gomock.Any(), "os-1", entities.StageAttentionRequired, entities.OSStatusEmAndamento, gomock.Any()).Return(
			entities.WorkOrder{ID: "os-1", Stage: entities.StageAttentionRequired}, nil,
		)
		dispatcher.EXPECT().Notify(gomock.Any(), gomock.Any())

		res, err := uc.ReconcileAllStages(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Updated != 1 {
			t.Fatalf("unexpected result: %+v", res)
		}
	})

	t.Run("approved quote moves to in repair", func(t *testing.T) {
		ctrl, repo, quoteRepo, dispatcher, uc := newReconcileMocks(t)
		defer ctrl.Finish()

		repo.EXPECT().List(gomock.Any()).Return([]entities.WorkOrder{
			{ID: "os-1", Stage: entities.StageAwaitingApproval, DiagnosticData: diag, LinkedQuoteIDs: []string{"q-1"}},
		}, nil)
		quoteRepo.EXPECT().GetByID(gomock.Any(), "q-1").Return(entities.Quote{ID: "q-1", Status: entities.QuoteStatusAprovado}, nil)
		repo.EXPECT().UpdateStage(gomock.Any(), "os-1", entities.StageInRepair, entities.OSStatusEmAndamento, gomock.Any()).Return(
			entities.WorkOrder{ID: "os-1", Stage: entities.StageInRepair}, nil,
		)
		dispatcher.EXPECT().Notify(gomock.Any(), gomock.Any())

		res, err := uc.ReconcileAllStages(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Updated != 1 {
			t.Fatalf("unexpected result: %+v", res)
		}
	})

	t.Run("approved quote never regresses a later stage", func(t *testing.T) {
		ctrl, repo, quoteRepo, _, uc := newReconcileMocks(t)
		defer ctrl.Finish()

		repo.EXPECT().List(gomock.Any()).Return([]entities.WorkOrder{
			{ID: "os-1", Stage: entities.StageQualityControl, DiagnosticData: diag, LinkedQuoteIDs: []string{"q-1"}},
		}, nil)
		quoteRepo.EXPECT().GetByID(gomock.Any(), "q-1").Return(entities.Quote{ID: "q-1", Status: entities.QuoteStatusAprovado}, nil)

		res, err := uc.ReconcileAllStages(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Updated != 0 || res.Skipped != 1 {
			t.Fatalf("unexpected result: %+v", res)
		}
	})

	t.Run("invoiced and dangling quotes leave the order alone", func(t *testing.T) {
		ctrl, repo, quoteRepo, _, uc := newReconcileMocks(t)
		defer ctrl.Finish()

		repo.EXPECT().List(gomock.Any()).Return([]entities.WorkOrder{
			{ID: "os-1", Stage: entities.StageReadyForDelivery, DiagnosticData: diag, LinkedQuoteIDs: []string{"q-1", "q-gone"}},
		}, nil)
		quoteRepo.EXPECT().GetByID(gomock.Any(), "q-1").Return(entities.Quote{ID: "q-1", Status: entities.QuoteStatusFaturado}, nil)
		quoteRepo.EXPECT().GetByID(gomock.Any(), "q-gone").Return(entities.Quote{}, nil)

		res, err := uc.ReconcileAllStages(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Updated != 0 || res.Skipped != 1 {
			t.Fatalf("unexpected result: %+v", res)
		}
	})

	t.Run("per order failures are isolated", func(t *testing.T) {
		ctrl, repo, quoteRepo, dispatcher, uc := newReconcileMocks(t)
		defer ctrl.Finish()

		repo.EXPECT().List(gomock.Any()).Return([]entities.WorkOrder{
			{ID: "os-1", Stage: entities.StageAwaitingApproval, DiagnosticData: diag, LinkedQuoteIDs: []string{"q-1"}},
			{ID: "os-2", Stage: entities.StageDiagnosis},
		}, nil)
		quoteRepo.EXPECT().GetByID(gomock.Any(), "q-1").Return(entities.Quote{}, errors.New("quote db down"))
		repo.EXPECT().UpdateStage(gomock.Any(), "os-2", entities.StageReception, entities.OSStatusRecebida, gomock.Any()).Return(
			entities.WorkOrder{ID: "os-2", Stage: entities.StageReception}, nil,
		)
		dispatcher.EXPECT().Notify(gomock.Any(), gomock.Any())

		res, err := uc.ReconcileAllStages(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Updated != 1 || len(res.Errors) != 1 || res.Errors[0].WorkOrderID != "os-1" {
			t.Fatalf("unexpected result: %+v", res)
		}
	})

	t.Run("context cancellation stops the scan", func(t *testing.T) {
		ctrl, repo, _, _, uc := newReconcileMocks(t)
		defer ctrl.Finish()

		repo.EXPECT().List(gomock.Any()).Return([]entities.WorkOrder{
			{ID: "os-1", Stage: entities.StageReception},
		}, nil)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := uc.ReconcileAllStages(ctx)
		if !errors.Is(err, context.Canceled) {
			t.Fatalf("expected context.Canceled, got %v", err)
		}
	})
}
