package interfaces

import (
	"context"
	"os_service_api/internal/domain/entities"
)

// INotificationRepository abstracts DynamoDB persistence for Notification.

type INotificationRepository interface {
	Create(ctx context.Context, n entities.Notification) (entities.Notification, error)
	ListByWorkOrderID(ctx context.Context, workOrderID string) ([]entities.Notification, error)
}

// IPaymentRecordRepository abstracts DynamoDB persistence for PaymentRecord.
type IPaymentRecordRepository interface {
	Create(ctx context.Context, p entities.PaymentRecord) (entities.PaymentRecord, error)
	ListByWorkOrderID(ctx context.Context, workOrderID string) ([]entities.PaymentRecord, error)
}
