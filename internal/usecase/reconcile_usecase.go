package usecase

import (
	"context"
	"fmt"
	"log"
	"time"

	"os_service_api/internal/domain/entities"
	"os_service_api/internal/usecase/interfaces"
)

// ReconcileError is one per-order failure collected during a scan.
type ReconcileError struct {
	WorkOrderID string `json:"work_order_id"`
	Error       string `json:"error"`
}

// ReconcileResult summarizes a full reconciliation pass.
type ReconcileResult struct {
	Updated int              `json:"updated"`
	Skipped int              `json:"skipped"`
	Errors  []ReconcileError `json:"errors,omitempty"`
}

// IReconcileUseCase recomputes every work order's stage from derived facts
// (diagnostic presence, linked-quote statuses) and corrects drift.

type IReconcileUseCase interface {
	ReconcileAllStages(ctx context.Context) (ReconcileResult, error)
}

type ReconcileUseCase struct {
	repo       interfaces.IWorkOrderRepository
	quoteRepo  interfaces.IQuoteRepository
	dispatcher interfaces.ISideEffectDispatcher
}

var _ IReconcileUseCase = (*ReconcileUseCase)(nil)

func NewReconcileUseCase(repo interfaces.IWorkOrderRepository, quoteRepo interfaces.IQuoteRepository, dispatcher interfaces.ISideEffectDispatcher) *ReconcileUseCase {
	return &ReconcileUseCase{repo: repo, quoteRepo: quoteRepo, dispatcher: dispatcher}
}

// ReconcileAllStages walks every work order sequentially. Each order is
// isolated: a failure lands in the result's error list and the scan moves
// on. The operation is idempotent: a second pass over unchanged data
// performs zero writes. Context cancellation is honored between items.
func (u *ReconcileUseCase) ReconcileAllStages(ctx context.Context) (ReconcileResult, error) {
	res := ReconcileResult{}

	orders, err := u.repo.List(ctx)
	if err != nil {
		return res, err
	}
	log.Printf("[reconcile][usecase] scan start orders=%d", len(orders))

	for _, wo := range orders {
		if err := ctx.Err(); err != nil {
			return res, err
		}

		desired, err := u.desiredStage(ctx, wo)
		if err != nil {
			res.Errors = append(res.Errors, ReconcileError{WorkOrderID: wo.ID, Error: err.Error()})
			continue
		}
		if desired == wo.Stage {
			res.Skipped++
			continue
		}

		entry := entities.HistoryEntry{
			Stage: desired,
			Date:  time.Now().UTC(),
			User:  systemActor,
			Notes: fmt.Sprintf("stage corrected automatically from %s to %s", wo.Stage, desired),
		}
		if _, err := u.repo.UpdateStage(ctx, wo.ID, desired, statusForStage(desired), entry); err != nil {
			res.Errors = append(res.Errors, ReconcileError{WorkOrderID: wo.ID, Error: err.Error()})
			continue
		}
		res.Updated++

		u.dispatcher.Notify(ctx, entities.Notification{
			Type:        entities.NotificationStageCorrected,
			WorkOrderID: wo.ID,
			Message:     fmt.Sprintf("work order %s stage corrected from %s to %s", wo.ID, wo.Stage, desired),
		})
	}

	log.Printf("[reconcile][usecase] scan done updated=%d skipped=%d errors=%d", res.Updated, res.Skipped, len(res.Errors))
	return res, nil
}

// desiredStage derives the authoritative stage from facts, not from the
// forced-transition history that led the order here.
func (u *ReconcileUseCase) desiredStage(ctx context.Context, wo entities.WorkOrder) (entities.Stage, error) {
	// Terminal orders are never touched.
	if wo.Stage == entities.StageCancelled || wo.Status == entities.OSStatusCancelada {
		return entities.StageCancelled, nil
	}
	if wo.Stage == entities.StageDelivered {
		return entities.StageDelivered, nil
	}

	if wo.DiagnosticData == nil {
		return entities.StageReception, nil
	}
	if len(wo.LinkedQuoteIDs) == 0 {
		return entities.StagePendingQuote, nil
	}

	var hasRejected, hasSent, hasDrivable bool
	for _, quoteID := range wo.LinkedQuoteIDs {
		q, err := u.quoteRepo.GetByID(ctx, quoteID)
		if err != nil {
			return "", err
		}
		if q.ID == "" {
			// Dangling link; ignore it rather than failing the order.
			continue
		}
		switch q.Status {
		case entities.QuoteStatusAprovado:
			// Approved wins, but never regress an order that already moved
			// past the repair stage.
			if entities.StageIndex(wo.Stage) >= entities.StageIndex(entities.StageInRepair) {
				return wo.Stage, nil
			}
			return entities.StageInRepair, nil
		case entities.QuoteStatusRejeitado:
			hasRejected = true
			hasDrivable = true
		case entities.QuoteStatusEnviado:
			hasSent = true
			hasDrivable = true
		case entities.QuoteStatusFaturado:
			// Invoiced quotes never drive stage.
		default:
			hasDrivable = true
		}
	}

	switch {
	case hasRejected:
		return entities.StageAttentionRequired, nil
	case hasSent:
		return entities.StageAwaitingApproval, nil
	case hasDrivable:
		return entities.StagePendingQuote, nil
	default:
		// Only invoiced or dangling quotes remain; leave the order alone.
		return wo.Stage, nil
	}
}
