package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"os_service_api/internal/domain/entities"
	"os_service_api/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrWorkOrderNotFound  = errors.New("work order not found")
	ErrInvalidWorkOrderID = errors.New("invalid work order id")
	ErrInvalidTransition  = errors.New("invalid stage transition")
	ErrInvalidDiagnostic  = errors.New("invalid diagnostic data")
	ErrInvalidIssue       = errors.New("invalid issue description")
)

const systemActor = "system"

// IWorkOrderUseCase exposes the work-order lifecycle operations.
//
// Two kinds of stage mutation exist and must not be confused:
//   - ordered transitions (AdvanceStage/RetreatStage): move exactly one
//     position along entities.StageOrder;
//   - forced transitions (SaveDiagnostic, ApplyQuoteStatus,
//     RegisterDelivery, CancelOrder): event-driven sets that may skip
//     positions.
//
// Permission gating (who may retreat, who may deliver) is the caller's
// responsibility; the engine enforces only the lifecycle boundaries.

type IWorkOrderUseCase interface {
	CreateWorkOrder(ctx context.Context, clientID, vehicleID, user string) (entities.WorkOrder, error)
	GetByID(ctx context.Context, id string) (entities.WorkOrder, error)
	List(ctx context.Context) ([]entities.WorkOrder, error)
	AdvanceStage(ctx context.Context, id, user string) (entities.WorkOrder, error)
	RetreatStage(ctx context.Context, id, user string) (entities.WorkOrder, error)
	SaveDiagnostic(ctx context.Context, id string, diag entities.DiagnosticData, user string) (entities.WorkOrder, error)
	ApplyQuoteStatus(ctx context.Context, q entities.Quote, user string) (entities.WorkOrder, error)
	RegisterDelivery(ctx context.Context, id string, delivery entities.DeliveryInfo, user string) (entities.WorkOrder, error)
	CancelOrder(ctx context.Context, id, reason, user string) (entities.WorkOrder, error)
	ReportUnforeseenIssue(ctx context.Context, id, description, user string) (entities.WorkOrder, error)
	RepairQuoteLinks(ctx context.Context, id string) (entities.WorkOrder, error)
}

type WorkOrderUseCase struct {
	repo       interfaces.IWorkOrderRepository
	quoteRepo  interfaces.IQuoteRepository
	dispatcher interfaces.ISideEffectDispatcher
}

var _ IWorkOrderUseCase = (*WorkOrderUseCase)(nil)

func NewWorkOrderUseCase(repo interfaces.IWorkOrderRepository, quoteRepo interfaces.IQuoteRepository, dispatcher interfaces.ISideEffectDispatcher) *WorkOrderUseCase {
	return &WorkOrderUseCase{repo: repo, quoteRepo: quoteRepo, dispatcher: dispatcher}
}

func (u *WorkOrderUseCase) CreateWorkOrder(ctx context.Context, clientID, vehicleID, user string) (entities.WorkOrder, error) {
	clientID = strings.TrimSpace(clientID)
	vehicleID = strings.TrimSpace(vehicleID)
	actor := actorOrSystem(user)

	now := time.Now().UTC()
	wo := entities.WorkOrder{
		ID:        uuid.NewString(),
		ClientID:  clientID,
		VehicleID: vehicleID,
		Stage:     entities.StageReception,
		Status:    entities.OSStatusRecebida,
		History: []entities.HistoryEntry{{
			Stage: entities.StageReception,
			Date:  now,
			User:  actor,
			Notes: "work order created",
		}},
		CreatedAt: now,
		UpdatedAt: now,
	}

	created, err := u.repo.Create(ctx, wo)
	if err != nil {
		return entities.WorkOrder{}, err
	}

	u.dispatcher.Notify(ctx, entities.Notification{
		Type:        entities.NotificationOSCreated,
		WorkOrderID: created.ID,
		Message:     fmt.Sprintf("work order %s created", created.ID),
	})
	return created, nil
}

func (u *WorkOrderUseCase) GetByID(ctx context.Context, id string) (entities.WorkOrder, error) {
	wo, _, err := u.load(ctx, id)
	return wo, err
}

func (u *WorkOrderUseCase) List(ctx context.Context) ([]entities.WorkOrder, error) {
	return u.repo.List(ctx)
}

// AdvanceStage moves the work order forward by exactly one position.
// Delivered is excluded: the only path into it is RegisterDelivery.
func (u *WorkOrderUseCase) AdvanceStage(ctx context.Context, id, user string) (entities.WorkOrder, error) {
	wo, id, err := u.load(ctx, id)
	if err != nil {
		return entities.WorkOrder{}, err
	}
	if wo.Stage.IsTerminal() {
		return entities.WorkOrder{}, fmt.Errorf("%w: cannot advance from %s", ErrInvalidTransition, wo.Stage)
	}

	next, ok := entities.NextOf(wo.Stage)
	if !ok || next == entities.StageDelivered {
		return entities.WorkOrder{}, fmt.Errorf("%w: cannot advance from %s", ErrInvalidTransition, wo.Stage)
	}

	entry := entities.HistoryEntry{
		Stage: next,
		Date:  time.Now().UTC(),
		User:  actorOrSystem(user),
		Notes: fmt.Sprintf("manually advanced from %s to %s", wo.Stage, next),
	}
	updated, err := u.repo.UpdateStage(ctx, id, next, statusForStage(next), entry)
	if err != nil {
		return entities.WorkOrder{}, err
	}

	u.dispatcher.Notify(ctx, entities.Notification{
		Type:        entities.NotificationStageAdvanced,
		WorkOrderID: id,
		Message:     fmt.Sprintf("work order %s advanced to %s", id, next),
	})
	return updated, nil
}

// RetreatStage moves the work order back by exactly one position. It is an
// administrative correction tool; the engine only enforces the boundaries.
func (u *WorkOrderUseCase) RetreatStage(ctx context.Context, id, user string) (entities.WorkOrder, error) {
	wo, id, err := u.load(ctx, id)
	if err != nil {
		return entities.WorkOrder{}, err
	}
	if wo.Stage.IsTerminal() {
		return entities.WorkOrder{}, fmt.Errorf("%w: cannot retreat from %s", ErrInvalidTransition, wo.Stage)
	}

	prev, ok := entities.PreviousOf(wo.Stage)
	if !ok {
		return entities.WorkOrder{}, fmt.Errorf("%w: cannot retreat from %s", ErrInvalidTransition, wo.Stage)
	}

	entry := entities.HistoryEntry{
		Stage: prev,
		Date:  time.Now().UTC(),
		User:  actorOrSystem(user),
		Notes: fmt.Sprintf("manually retreated from %s to %s", wo.Stage, prev),
	}
	updated, err := u.repo.UpdateStage(ctx, id, prev, statusForStage(prev), entry)
	if err != nil {
		return entities.WorkOrder{}, err
	}

	u.dispatcher.Notify(ctx, entities.Notification{
		Type:        entities.NotificationStageRetreated,
		WorkOrderID: id,
		Message:     fmt.Sprintf("work order %s retreated to %s", id, prev),
	})
	return updated, nil
}

// SaveDiagnostic records the diagnostic result and forces the stage to
// Diagnosis (diagnosis may complete straight from Reception). The
// "diagnostico" ledger entry is appended at most once per work order so
// repeated saves of the same diagnostic do not pollute the history.
func (u *WorkOrderUseCase) SaveDiagnostic(ctx context.Context, id string, diag entities.DiagnosticData, user string) (entities.WorkOrder, error) {
	wo, id, err := u.load(ctx, id)
	if err != nil {
		return entities.WorkOrder{}, err
	}
	if wo.Stage.IsTerminal() {
		return entities.WorkOrder{}, fmt.Errorf("%w: order is %s", ErrInvalidTransition, wo.Stage)
	}
	if strings.TrimSpace(diag.Summary) == "" {
		return entities.WorkOrder{}, ErrInvalidDiagnostic
	}

	now := time.Now().UTC()
	if diag.CompletedAt.IsZero() {
		diag.CompletedAt = now
	}

	var entry *entities.HistoryEntry
	if !wo.HasHistoryStage(entities.StageDiagnosis) {
		entry = &entities.HistoryEntry{
			Stage: entities.StageDiagnosis,
			Date:  now,
			User:  actorOrSystem(user),
			Notes: fmt.Sprintf("diagnostic completed (%s)", diag.Type),
		}
	}

	updated, err := u.repo.SetDiagnostic(ctx, id, diag, entities.StageDiagnosis, entry)
	if err != nil {
		return entities.WorkOrder{}, err
	}

	u.dispatcher.Notify(ctx, entities.Notification{
		Type:        entities.NotificationDiagnosticCompleted,
		WorkOrderID: id,
		Message:     fmt.Sprintf("diagnostic completed for work order %s", id),
	})
	return updated, nil
}

// ApplyQuoteStatus is the forced, event-driven transition fired after a
// quote save. The quote's own status dictates the resulting stage,
// regardless of the current one:
//
//	enviado   -> aguardando_aprovacao
//	aprovado  -> em_reparo
//	rejeitado -> atencao_requerida
//	rascunho/revisado -> aguardando_orcamento, but never regressing an order
//	          that already moved past it (a note-only ledger entry is kept)
//	faturado  -> never drives stage
//
// The quote id is always folded into linked_quote_ids first.
func (u *WorkOrderUseCase) ApplyQuoteStatus(ctx context.Context, q entities.Quote, user string) (entities.WorkOrder, error) {
	wo, id, err := u.load(ctx, q.WorkOrderID)
	if err != nil {
		return entities.WorkOrder{}, err
	}
	if wo.Stage == entities.StageCancelled {
		return entities.WorkOrder{}, fmt.Errorf("%w: order is cancelled", ErrInvalidTransition)
	}

	if q.ID != "" && !wo.HasLinkedQuote(q.ID) {
		if wo, err = u.repo.AddLinkedQuote(ctx, id, q.ID); err != nil {
			return entities.WorkOrder{}, err
		}
	}

	actor := actorOrSystem(user)
	now := time.Now().UTC()

	var target entities.Stage
	switch q.Status {
	case entities.QuoteStatusEnviado:
		target = entities.StageAwaitingApproval
	case entities.QuoteStatusAprovado:
		target = entities.StageInRepair
	case entities.QuoteStatusRejeitado:
		target = entities.StageAttentionRequired
	case entities.QuoteStatusFaturado:
		// Invoiced quotes are immutable as stage drivers.
		return wo, nil
	default:
		if entities.StageIndex(wo.Stage) >= entities.StageIndex(entities.StagePendingQuote) {
			// Draft re-save on an already-advanced order: keep the ledger
			// note, keep the stage.
			return u.repo.AppendHistory(ctx, id, entities.HistoryEntry{
				Stage: wo.Stage,
				Date:  now,
				User:  actor,
				Notes: fmt.Sprintf("quote %s saved as %s (total %.2f)", q.ID, q.Status, q.Total),
			})
		}
		target = entities.StagePendingQuote
	}

	if wo.Stage == entities.StageDelivered {
		return entities.WorkOrder{}, fmt.Errorf("%w: order is delivered", ErrInvalidTransition)
	}
	if target == wo.Stage {
		return wo, nil
	}

	entry := entities.HistoryEntry{
		Stage: target,
		Date:  now,
		User:  actor,
		Notes: fmt.Sprintf("quote %s %s (total %.2f); stage set from %s to %s", q.ID, q.Status, q.Total, wo.Stage, target),
	}
	updated, err := u.repo.UpdateStage(ctx, id, target, statusForStage(target), entry)
	if err != nil {
		return entities.WorkOrder{}, err
	}

	notifType := entities.NotificationQuoteUpdated
	if q.Status == entities.QuoteStatusRejeitado {
		notifType = entities.NotificationQuoteRejected
	}
	u.dispatcher.Notify(ctx, entities.Notification{
		Type:        notifType,
		WorkOrderID: id,
		QuoteID:     q.ID,
		Message:     fmt.Sprintf("quote %s is %s; work order %s moved to %s", q.ID, q.Status, id, target),
	})
	return updated, nil
}

// RegisterDelivery is the only path into the Delivered stage. The caller
// gates it behind permissions, but we still re-check the precondition here.
func (u *WorkOrderUseCase) RegisterDelivery(ctx context.Context, id string, delivery entities.DeliveryInfo, user string) (entities.WorkOrder, error) {
	wo, id, err := u.load(ctx, id)
	if err != nil {
		return entities.WorkOrder{}, err
	}
	if wo.Stage != entities.StageReadyForDelivery {
		return entities.WorkOrder{}, fmt.Errorf("%w: delivery requires %s, order is %s", ErrInvalidTransition, entities.StageReadyForDelivery, wo.Stage)
	}

	now := time.Now().UTC()
	if delivery.DeliveredAt.IsZero() {
		delivery.DeliveredAt = now
	}
	if delivery.NextMaintenanceDate.IsZero() {
		delivery.NextMaintenanceDate = delivery.DeliveredAt.AddDate(0, 6, 0)
	}

	entry := entities.HistoryEntry{
		Stage: entities.StageDelivered,
		Date:  now,
		User:  actorOrSystem(user),
		Notes: "vehicle delivered to client",
	}
	updated, err := u.repo.SetDelivery(ctx, id, delivery, entry)
	if err != nil {
		return entities.WorkOrder{}, err
	}

	u.dispatcher.Notify(ctx, entities.Notification{
		Type:        entities.NotificationOSDelivered,
		WorkOrderID: id,
		Message:     fmt.Sprintf("work order %s delivered; next maintenance %s", id, delivery.NextMaintenanceDate.Format("2006-01-02")),
	})
	u.dispatcher.RequestDeliveryPayment(ctx, updated)
	return updated, nil
}

// CancelOrder moves the work order to the terminal Cancelled stage. Every
// later mutation fails.
func (u *WorkOrderUseCase) CancelOrder(ctx context.Context, id, reason, user string) (entities.WorkOrder, error) {
	wo, id, err := u.load(ctx, id)
	if err != nil {
		return entities.WorkOrder{}, err
	}
	if wo.Stage.IsTerminal() {
		return entities.WorkOrder{}, fmt.Errorf("%w: order is %s", ErrInvalidTransition, wo.Stage)
	}

	reason = strings.TrimSpace(reason)
	notes := "work order cancelled"
	if reason != "" {
		notes = fmt.Sprintf("work order cancelled: %s", reason)
	}
	entry := entities.HistoryEntry{
		Stage: entities.StageCancelled,
		Date:  time.Now().UTC(),
		User:  actorOrSystem(user),
		Notes: notes,
	}
	updated, err := u.repo.SetCancelled(ctx, id, reason, entry)
	if err != nil {
		return entities.WorkOrder{}, err
	}

	u.dispatcher.Notify(ctx, entities.Notification{
		Type:        entities.NotificationOSCancelled,
		WorkOrderID: id,
		Message:     fmt.Sprintf("work order %s cancelled", id),
	})
	return updated, nil
}

// ReportUnforeseenIssue appends to the append-only issue list. It does not
// change the stage.
func (u *WorkOrderUseCase) ReportUnforeseenIssue(ctx context.Context, id, description, user string) (entities.WorkOrder, error) {
	wo, id, err := u.load(ctx, id)
	if err != nil {
		return entities.WorkOrder{}, err
	}
	if wo.Stage == entities.StageCancelled {
		return entities.WorkOrder{}, fmt.Errorf("%w: order is cancelled", ErrInvalidTransition)
	}

	description = strings.TrimSpace(description)
	if description == "" {
		return entities.WorkOrder{}, ErrInvalidIssue
	}

	issue := entities.UnforeseenIssue{
		ID:          uuid.NewString(),
		Description: description,
		ReportedBy:  actorOrSystem(user),
		ReportedAt:  time.Now().UTC(),
	}
	updated, err := u.repo.AppendUnforeseenIssue(ctx, id, issue)
	if err != nil {
		return entities.WorkOrder{}, err
	}

	u.dispatcher.Notify(ctx, entities.Notification{
		Type:        entities.NotificationUnforeseenIssue,
		WorkOrderID: id,
		Message:     fmt.Sprintf("unforeseen issue on work order %s: %s", id, description),
	})
	return updated, nil
}

// RepairQuoteLinks rebuilds linked_quote_ids from the quotes table reverse
// lookup when the list has gone missing. No-op when links already exist or
// no quotes reference the order.
func (u *WorkOrderUseCase) RepairQuoteLinks(ctx context.Context, id string) (entities.WorkOrder, error) {
	wo, id, err := u.load(ctx, id)
	if err != nil {
		return entities.WorkOrder{}, err
	}
	if len(wo.LinkedQuoteIDs) > 0 {
		return wo, nil
	}

	quotes, err := u.quoteRepo.ListByWorkOrderID(ctx, id)
	if err != nil {
		return entities.WorkOrder{}, err
	}
	if len(quotes) == 0 {
		return wo, nil
	}

	seen := make(map[string]bool, len(quotes))
	ids := make([]string, 0, len(quotes))
	for _, q := range quotes {
		if q.ID == "" || seen[q.ID] {
			continue
		}
		seen[q.ID] = true
		ids = append(ids, q.ID)
	}

	log.Printf("[workorder][usecase] repairing quote links work_order_id=%s quotes=%d", id, len(ids))
	return u.repo.SetLinkedQuotes(ctx, id, ids)
}

// load trims the id, fetches the work order and normalizes not-found.
func (u *WorkOrderUseCase) load(ctx context.Context, id string) (entities.WorkOrder, string, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.WorkOrder{}, "", ErrInvalidWorkOrderID
	}

	wo, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.WorkOrder{}, id, err
	}
	if wo.ID == "" {
		return entities.WorkOrder{}, id, ErrWorkOrderNotFound
	}
	return wo, id, nil
}

func actorOrSystem(user string) string {
	if v := strings.TrimSpace(user); v != "" {
		return v
	}
	return systemActor
}

// statusForStage maps a stage onto the coarse legacy status tag.
func statusForStage(s entities.Stage) entities.OSStatus {
	switch s {
	case entities.StageReception:
		return entities.OSStatusRecebida
	case entities.StageDelivered:
		return entities.OSStatusFinalizada
	case entities.StageCancelled:
		return entities.OSStatusCancelada
	default:
		return entities.OSStatusEmAndamento
	}
}
