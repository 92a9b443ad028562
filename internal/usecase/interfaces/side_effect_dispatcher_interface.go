package interfaces

import (
	"context"
	"os_service_api/internal/domain/entities"
)

// ISideEffectDispatcher fires the secondary effects of a stage transition.
//
// All methods are best-effort: implementations log failures and never
// return them, so a broken notification channel cannot fail the transition
// that triggered it.

type ISideEffectDispatcher interface {
	Notify(ctx context.Context, n entities.Notification)

	// RequestDeliveryPayment asks the payment provider to charge the
	// approved quote total after a delivery is registered and records the
	// attempt.
	RequestDeliveryPayment(ctx context.Context, wo entities.WorkOrder)
}
