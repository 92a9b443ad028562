package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"os_service_api/internal/domain/entities"
	"os_service_api/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrQuoteNotFound      = errors.New("quote not found")
	ErrInvalidQuoteID     = errors.New("invalid quote id")
	ErrInvalidQuoteStatus = errors.New("invalid quote status")
	ErrQuoteInvoiced      = errors.New("quote already invoiced")
)

// QuotePatch carries the partial fields of a quote save. Nil fields are
// left untouched.
type QuotePatch struct {
	Status      *entities.QuoteStatus
	Items       []entities.QuoteItem
	Total       *float64
	WorkOrderID *string
}

// IQuoteUseCase exposes quote operations. Saving a quote with a known
// work_order_id drives the owning work order's stage through the
// work-order engine.

type IQuoteUseCase interface {
	CreateQuote(ctx context.Context, workOrderID string, items []entities.QuoteItem, user string) (entities.Quote, error)
	SaveQuote(ctx context.Context, id string, patch QuotePatch, user string) (entities.Quote, error)
	GetByID(ctx context.Context, id string) (entities.Quote, error)
	ListByWorkOrderID(ctx context.Context, workOrderID string) ([]entities.Quote, error)
}

type QuoteUseCase struct {
	repo       interfaces.IQuoteRepository
	workOrders IWorkOrderUseCase
}

var _ IQuoteUseCase = (*QuoteUseCase)(nil)

func NewQuoteUseCase(repo interfaces.IQuoteRepository, workOrders IWorkOrderUseCase) *QuoteUseCase {
	return &QuoteUseCase{repo: repo, workOrders: workOrders}
}

// CreateQuote creates a draft quote. workOrderID may be empty for manually
// created, unlinked quotes; when present, the quote is immediately linked
// to the order (which may force it to aguardando_orcamento).
func (u *QuoteUseCase) CreateQuote(ctx context.Context, workOrderID string, items []entities.QuoteItem, user string) (entities.Quote, error) {
	workOrderID = strings.TrimSpace(workOrderID)

	now := time.Now().UTC()
	q := entities.Quote{
		ID:          uuid.NewString(),
		WorkOrderID: workOrderID,
		Status:      entities.QuoteStatusRascunho,
		Items:       items,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	q.Total = q.ItemsTotal()

	created, err := u.repo.Create(ctx, q)
	if err != nil {
		return entities.Quote{}, err
	}

	if created.WorkOrderID != "" {
		if _, err := u.workOrders.ApplyQuoteStatus(ctx, created, user); err != nil {
			return entities.Quote{}, err
		}
	}
	return created, nil
}

// SaveQuote applies the partial fields and persists the quote, then lets
// the quote's status drive the linked work order. An invoiced quote is
// immutable.
func (u *QuoteUseCase) SaveQuote(ctx context.Context, id string, patch QuotePatch, user string) (entities.Quote, error) {
	q, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Quote{}, err
	}
	if q.Status == entities.QuoteStatusFaturado {
		return entities.Quote{}, ErrQuoteInvoiced
	}

	if patch.Status != nil {
		if !patch.Status.IsValid() {
			return entities.Quote{}, ErrInvalidQuoteStatus
		}
		q.Status = *patch.Status
	}
	if patch.WorkOrderID != nil {
		q.WorkOrderID = strings.TrimSpace(*patch.WorkOrderID)
	}
	if patch.Items != nil {
		q.Items = patch.Items
		q.Total = q.ItemsTotal()
	}
	if patch.Total != nil && *patch.Total > 0 {
		q.Total = *patch.Total
	}
	q.UpdatedAt = time.Now().UTC()

	updated, err := u.repo.Update(ctx, q)
	if err != nil {
		return entities.Quote{}, err
	}
	if updated.ID == "" {
		return entities.Quote{}, ErrQuoteNotFound
	}

	if updated.WorkOrderID != "" {
		if _, err := u.workOrders.ApplyQuoteStatus(ctx, updated, user); err != nil {
			return entities.Quote{}, err
		}
	}
	return updated, nil
}

func (u *QuoteUseCase) GetByID(ctx context.Context, id string) (entities.Quote, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Quote{}, ErrInvalidQuoteID
	}

	q, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Quote{}, err
	}
	if q.ID == "" {
		return entities.Quote{}, ErrQuoteNotFound
	}
	return q, nil
}

func (u *QuoteUseCase) ListByWorkOrderID(ctx context.Context, workOrderID string) ([]entities.Quote, error) {
	workOrderID = strings.TrimSpace(workOrderID)
	if workOrderID == "" {
		return nil, ErrInvalidWorkOrderID
	}
	return u.repo.ListByWorkOrderID(ctx, workOrderID)
}
