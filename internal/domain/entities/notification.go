package entities

import "time"

// NotificationType keys the event that produced a notification.

type NotificationType string

const (
	NotificationOSCreated           NotificationType = "os_created"
	NotificationStageAdvanced       NotificationType = "stage_advanced"
	NotificationStageRetreated      NotificationType = "stage_retreated"
	NotificationStageCorrected      NotificationType = "stage_corrected"
	NotificationDiagnosticCompleted NotificationType = "diagnostic_completed"
	NotificationQuoteUpdated        NotificationType = "quote_updated"
	NotificationQuoteRejected       NotificationType = "quote_rejected"
	NotificationOSDelivered         NotificationType = "os_delivered"
	NotificationOSCancelled         NotificationType = "os_cancelled"
	NotificationUnforeseenIssue     NotificationType = "unforeseen_issue"
)

// Notification is a best-effort event record persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//
// Notifications are fire-and-forget: a failed write is logged and never
// fails the transition that produced it.
type Notification struct {
	ID          string           `json:"id"`
	Type        NotificationType `json:"type"`
	WorkOrderID string           `json:"work_order_id,omitempty"`
	QuoteID     string           `json:"quote_id,omitempty"`
	Message     string           `json:"message"`
	CreatedAt   time.Time        `json:"created_at"`
}
