package entities

import "time"

// OSStatus is the coarse legacy status tag kept loosely in sync with Stage.
// It is a secondary, best-effort field; Stage is authoritative.

type OSStatus string

const (
	OSStatusRecebida    OSStatus = "recebida"
	OSStatusEmAndamento OSStatus = "em_andamento"
	OSStatusFinalizada  OSStatus = "finalizada"
	OSStatusCancelada   OSStatus = "cancelada"
)

// HistoryEntry is one immutable line of the work-order stage ledger.
// Entries are appended atomically with the stage write and are never
// mutated, deleted or reordered. The last entry's Date is authoritative for
// time-in-stage calculations.
type HistoryEntry struct {
	Stage Stage     `json:"stage"`
	Date  time.Time `json:"date"`
	User  string    `json:"user"`
	Notes string    `json:"notes,omitempty"`
}

// DiagnosticData is the result of a completed diagnosis. Its presence on a
// work order signals that diagnosis has been done (reconciliation relies on
// this).
type DiagnosticData struct {
	Summary          string            `json:"summary"`
	Type             string            `json:"type,omitempty"`
	StaffIDs         []string          `json:"staff_ids,omitempty"`
	RecommendedItems []RecommendedItem `json:"recommended_items,omitempty"`
	CompletedAt      time.Time         `json:"completed_at"`
}

// RecommendedItem is a service or part the diagnosis recommends quoting.
type RecommendedItem struct {
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Quantity    int     `json:"quantity"`
}

// DeliveryInfo is recorded when the vehicle is handed back to the client.
type DeliveryInfo struct {
	DeliveredAt         time.Time `json:"delivered_at"`
	ReceivedBy          string    `json:"received_by,omitempty"`
	Odometer            int64     `json:"odometer,omitempty"`
	Notes               string    `json:"notes,omitempty"`
	NextMaintenanceDate time.Time `json:"next_maintenance_date"`
	NextMaintenanceNote string    `json:"next_maintenance_note,omitempty"`
}

// UnforeseenIssue is an issue reported mid-repair. The list is append-only.
type UnforeseenIssue struct {
	ID          string    `json:"id"`
	Description string    `json:"description"`
	ReportedBy  string    `json:"reported_by"`
	ReportedAt  time.Time `json:"reported_at"`
}

// WorkOrder is the service order (OS) persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//
// Invariants:
//   - Stage is always one of the defined values; Delivered and Cancelled are
//     terminal.
//   - History grows by exactly one entry per stage mutation, atomically with
//     the stage write.
//   - LinkedQuoteIDs has set semantics (never duplicates); it must agree
//     with the quotes' own work_order_id back references.
type WorkOrder struct {
	ID               string            `json:"id"`
	ClientID         string            `json:"client_id"`
	VehicleID        string            `json:"vehicle_id"`
	Stage            Stage             `json:"stage"`
	Status           OSStatus          `json:"status"`
	LinkedQuoteIDs   []string          `json:"linked_quote_ids,omitempty"`
	History          []HistoryEntry    `json:"history"`
	DiagnosticData   *DiagnosticData   `json:"diagnostic_data,omitempty"`
	UnforeseenIssues []UnforeseenIssue `json:"unforeseen_issues,omitempty"`
	Delivery         *DeliveryInfo     `json:"delivery,omitempty"`
	CancelReason     string            `json:"cancel_reason,omitempty"`
	CreatedAt        time.Time         `json:"created_at"`
	UpdatedAt        time.Time         `json:"updated_at"`
}

// HasHistoryStage reports whether the ledger already contains an entry for
// the given stage. Used to keep repeated diagnostic saves from producing
// duplicate ledger noise.
func (w WorkOrder) HasHistoryStage(s Stage) bool {
	for _, h := range w.History {
		if h.Stage == s {
			return true
		}
	}
	return false
}

// HasLinkedQuote reports whether quoteID is already in LinkedQuoteIDs.
func (w WorkOrder) HasLinkedQuote(quoteID string) bool {
	for _, id := range w.LinkedQuoteIDs {
		if id == quoteID {
			return true
		}
	}
	return false
}
