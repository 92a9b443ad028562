package interfaces

import (
	"context"
	"os_service_api/internal/domain/entities"
)

// IWorkOrderRepository abstracts DynamoDB persistence for WorkOrder.
//
// Every stage mutation method writes the new stage/status and appends the
// history entry in a single UpdateItem, so the ledger can never drift from
// the stage field. A nil entry on SetDiagnostic skips the ledger append
// (repeated diagnostic saves).

type IWorkOrderRepository interface {
	Create(ctx context.Context, wo entities.WorkOrder) (entities.WorkOrder, error)
	GetByID(ctx context.Context, id string) (entities.WorkOrder, error)
	List(ctx context.Context) ([]entities.WorkOrder, error)

	UpdateStage(ctx context.Context, id string, stage entities.Stage, status entities.OSStatus, entry entities.HistoryEntry) (entities.WorkOrder, error)
	SetDiagnostic(ctx context.Context, id string, diag entities.DiagnosticData, stage entities.Stage, entry *entities.HistoryEntry) (entities.WorkOrder, error)
	SetDelivery(ctx context.Context, id string, delivery entities.DeliveryInfo, entry entities.HistoryEntry) (entities.WorkOrder, error)
	SetCancelled(ctx context.Context, id string, reason string, entry entities.HistoryEntry) (entities.WorkOrder, error)

	AddLinkedQuote(ctx context.Context, id string, quoteID string) (entities.WorkOrder, error)
	SetLinkedQuotes(ctx context.Context, id string, quoteIDs []string) (entities.WorkOrder, error)
	AppendHistory(ctx context.Context, id string, entry entities.HistoryEntry) (entities.WorkOrder, error)
	AppendUnforeseenIssue(ctx context.Context, id string, issue entities.UnforeseenIssue) (entities.WorkOrder, error)
}
