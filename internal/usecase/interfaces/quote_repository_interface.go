package interfaces

import (
	"context"
	"os_service_api/internal/domain/entities"
)

// IQuoteRepository abstracts DynamoDB persistence for Quote.
//
// ListByWorkOrderID is the reverse lookup (GSI work_order_id-index) used by
// the linked-quote repair routine.

type IQuoteRepository interface {
	Create(ctx context.Context, q entities.Quote) (entities.Quote, error)
	GetByID(ctx context.Context, id string) (entities.Quote, error)
	Update(ctx context.Context, q entities.Quote) (entities.Quote, error)
	ListByWorkOrderID(ctx context.Context, workOrderID string) ([]entities.Quote, error)
}
