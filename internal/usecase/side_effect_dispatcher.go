package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"os_service_api/internal/domain/entities"
	"os_service_api/internal/usecase/interfaces"

	"github.com/google/uuid"
)

// SideEffectDispatcher persists notifications and fires the delivery
// payment request. Every failure is logged and swallowed: the stage change
// is the durable fact, side effects are best-effort.
//
// quoteRepo, paymentRepo and gateway may be nil (e.g. in deployments
// without the payment integration); the dispatcher degrades to logging.

type SideEffectDispatcher struct {
	notificationRepo interfaces.INotificationRepository
	paymentRepo      interfaces.IPaymentRecordRepository
	quoteRepo        interfaces.IQuoteRepository
	gateway          interfaces.IPaymentGateway
}

var _ interfaces.ISideEffectDispatcher = (*SideEffectDispatcher)(nil)

func NewSideEffectDispatcher(notificationRepo interfaces.INotificationRepository, paymentRepo interfaces.IPaymentRecordRepository, quoteRepo interfaces.IQuoteRepository, gateway interfaces.IPaymentGateway) *SideEffectDispatcher {
	return &SideEffectDispatcher{
		notificationRepo: notificationRepo,
		paymentRepo:      paymentRepo,
		quoteRepo:        quoteRepo,
		gateway:          gateway,
	}
}

func (d *SideEffectDispatcher) Notify(ctx context.Context, n entities.Notification) {
	if d.notificationRepo == nil {
		log.Printf("[notify] repository not configured; dropping type=%s work_order_id=%s", n.Type, n.WorkOrderID)
		return
	}

	if n.ID == "" {
		n.ID = uuid.NewString()
	}
	if n.CreatedAt.IsZero() {
		n.CreatedAt = time.Now().UTC()
	}

	if _, err := d.notificationRepo.Create(ctx, n); err != nil {
		log.Printf("[notify] create failed type=%s work_order_id=%s err=%v", n.Type, n.WorkOrderID, err)
	}
}

// RequestDeliveryPayment charges the approved quote total for a freshly
// delivered order through the payment provider and records the attempt.
func (d *SideEffectDispatcher) RequestDeliveryPayment(ctx context.Context, wo entities.WorkOrder) {
	if d.gateway == nil || d.paymentRepo == nil || d.quoteRepo == nil {
		log.Printf("[payment][dispatcher] payment integration not configured work_order_id=%s", wo.ID)
		return
	}

	quote, ok := d.approvedQuote(ctx, wo)
	if !ok {
		log.Printf("[payment][dispatcher] no approved quote to charge work_order_id=%s", wo.ID)
		return
	}

	payload, err := json.Marshal(map[string]any{
		"external_reference": wo.ID,
		"description":        fmt.Sprintf("Work order %s delivery", wo.ID),
		"transaction_amount": quote.Total,
	})
	if err != nil {
		log.Printf("[payment][dispatcher] payload marshal failed work_order_id=%s err=%v", wo.ID, err)
		return
	}

	providerPaymentID, providerStatus, providerResp, err := d.gateway.CreatePayment(ctx, payload)
	if err != nil {
		log.Printf("[payment][dispatcher] gateway failed work_order_id=%s err=%v", wo.ID, err)
		return
	}

	status := entities.PaymentStatusPendente
	switch providerStatus {
	case "approved":
		status = entities.PaymentStatusAprovado
	case "rejected", "cancelled":
		status = entities.PaymentStatusNegado
	}

	record := entities.PaymentRecord{
		ID:                 providerPaymentID,
		WorkOrderID:        wo.ID,
		QuoteID:            quote.ID,
		Amount:             quote.Total,
		Status:             status,
		Date:               time.Now().UTC(),
		ProviderPayloadRaw: providerResp,
	}
	if record.ID == "" {
		record.ID = uuid.NewString()
	}

	if _, err := d.paymentRepo.Create(ctx, record); err != nil {
		log.Printf("[payment][dispatcher] record create failed work_order_id=%s payment_id=%s err=%v", wo.ID, record.ID, err)
		return
	}
	log.Printf("[payment][dispatcher] payment recorded work_order_id=%s payment_id=%s status=%s amount=%.2f", wo.ID, record.ID, record.Status, record.Amount)
}

// approvedQuote picks the most recently updated approved (or already
// invoiced) linked quote as the amount source.
func (d *SideEffectDispatcher) approvedQuote(ctx context.Context, wo entities.WorkOrder) (entities.Quote, bool) {
	var best entities.Quote
	found := false
	for _, quoteID := range wo.LinkedQuoteIDs {
		q, err := d.quoteRepo.GetByID(ctx, quoteID)
		if err != nil {
			log.Printf("[payment][dispatcher] quote lookup failed work_order_id=%s quote_id=%s err=%v", wo.ID, quoteID, err)
			continue
		}
		if q.ID == "" {
			continue
		}
		if q.Status != entities.QuoteStatusAprovado && q.Status != entities.QuoteStatusFaturado {
			continue
		}
		if !found || q.UpdatedAt.After(best.UpdatedAt) {
			best = q
			found = true
		}
	}
	return best, found
}
