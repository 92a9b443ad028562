package repository

import (
	"context"
	"errors"
	"time"

	"os_service_api/internal/domain/entities"
	"os_service_api/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultWorkOrdersTableName = "work_orders"

type historyEntryItem struct {
	Stage string `dynamodbav:"stage"`
	Date  string `dynamodbav:"date"`
	User  string `dynamodbav:"user"`
	Notes string `dynamodbav:"notes,omitempty"`
}

type recommendedItemItem struct {
	Description string  `dynamodbav:"description"`
	Price       float64 `dynamodbav:"price"`
	Quantity    int     `dynamodbav:"quantity"`
}

type diagnosticDataItem struct {
	Summary          string                `dynamodbav:"summary"`
	Type             string                `dynamodbav:"type,omitempty"`
	StaffIDs         []string              `dynamodbav:"staff_ids,omitempty"`
	RecommendedItems []recommendedItemItem `dynamodbav:"recommended_items,omitempty"`
	CompletedAt      string                `dynamodbav:"completed_at"`
}

type deliveryInfoItem struct {
	DeliveredAt         string `dynamodbav:"delivered_at"`
	ReceivedBy          string `dynamodbav:"received_by,omitempty"`
	Odometer            int64  `dynamodbav:"odometer,omitempty"`
	Notes               string `dynamodbav:"notes,omitempty"`
	NextMaintenanceDate string `dynamodbav:"next_maintenance_date"`
	NextMaintenanceNote string `dynamodbav:"next_maintenance_note,omitempty"`
}

type unforeseenIssueItem struct {
	ID          string `dynamodbav:"id"`
	Description string `dynamodbav:"description"`
	ReportedBy  string `dynamodbav:"reported_by"`
	ReportedAt  string `dynamodbav:"reported_at"`
}

type workOrderItem struct {
	ID               string                `dynamodbav:"id"`
	ClientID         string                `dynamodbav:"client_id,omitempty"`
	VehicleID        string                `dynamodbav:"vehicle_id,omitempty"`
	Stage            string                `dynamodbav:"stage"`
	Status           string                `dynamodbav:"status"`
	LinkedQuoteIDs   []string              `dynamodbav:"linked_quote_ids,stringset,omitempty"`
	History          []historyEntryItem    `dynamodbav:"history"`
	DiagnosticData   *diagnosticDataItem   `dynamodbav:"diagnostic_data,omitempty"`
	UnforeseenIssues []unforeseenIssueItem `dynamodbav:"unforeseen_issues,omitempty"`
	Delivery         *deliveryInfoItem     `dynamodbav:"delivery,omitempty"`
	CancelReason     string                `dynamodbav:"cancel_reason,omitempty"`
	CreatedAt        string                `dynamodbav:"created_at"`
	UpdatedAt        string                `dynamodbav:"updated_at"`
}

// WorkOrderDynamoRepository persists WorkOrder entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Stage mutations are single UpdateItem calls that SET the stage and
// list_append the history entry together, so the ledger and the stage field
// cannot diverge. linked_quote_ids is a string set, which gives AddLinkedQuote
// its idempotent, duplicate-free semantics for free.

type WorkOrderDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IWorkOrderRepository = (*WorkOrderDynamoRepository)(nil)

func NewWorkOrderDynamoRepository(ddb *dynamodb.Client) *WorkOrderDynamoRepository {
	return &WorkOrderDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("WORK_ORDERS_TABLE", defaultWorkOrdersTableName),
	}
}

func (r *WorkOrderDynamoRepository) Create(ctx context.Context, wo entities.WorkOrder) (entities.WorkOrder, error) {
	it := toWorkOrderItem(wo)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.WorkOrder{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.WorkOrder{}, err
	}
	return wo, nil
}

func (r *WorkOrderDynamoRepository) GetByID(ctx context.Context, id string) (entities.WorkOrder, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.WorkOrder{}, err
	}
	if len(out.Item) == 0 {
		return entities.WorkOrder{}, nil
	}

	var it workOrderItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.WorkOrder{}, err
	}
	return fromWorkOrderItem(it), nil
}

func (r *WorkOrderDynamoRepository) List(ctx context.Context) ([]entities.WorkOrder, error) {
	var orders []entities.WorkOrder
	var startKey map[string]types.AttributeValue

	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(r.tableName),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}

		for _, item := range out.Items {
			var it workOrderItem
			if err := attributevalue.UnmarshalMap(item, &it); err != nil {
				return nil, err
			}
			orders = append(orders, fromWorkOrderItem(it))
		}

		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}
	return orders, nil
}

func (r *WorkOrderDynamoRepository) UpdateStage(ctx context.Context, id string, stage entities.Stage, status entities.OSStatus, entry entities.HistoryEntry) (entities.WorkOrder, error) {
	entryAV, err := marshalHistoryEntry(entry)
	if err != nil {
		return entities.WorkOrder{}, err
	}

	return r.update(ctx, id, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #stage = :stage, #status = :status, #history = list_append(#history, :entry), #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":stage":      &types.AttributeValueMemberS{Value: string(stage)},
			":status":     &types.AttributeValueMemberS{Value: string(status)},
			":entry":      entryAV,
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#stage":      "stage",
			"#status":     "status",
			"#history":    "history",
			"#updated_at": "updated_at",
		}
		return expr, vals, names
	})
}

func (r *WorkOrderDynamoRepository) SetDiagnostic(ctx context.Context, id string, diag entities.DiagnosticData, stage entities.Stage, entry *entities.HistoryEntry) (entities.WorkOrder, error) {
	diagAV, err := attributevalue.MarshalMap(toDiagnosticDataItem(diag))
	if err != nil {
		return entities.WorkOrder{}, err
	}

	var entryAV types.AttributeValue
	if entry != nil {
		if entryAV, err = marshalHistoryEntry(*entry); err != nil {
			return entities.WorkOrder{}, err
		}
	}

	return r.update(ctx, id, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #diag = :diag, #stage = :stage, #status = :status, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":diag":       &types.AttributeValueMemberM{Value: diagAV},
			":stage":      &types.AttributeValueMemberS{Value: string(stage)},
			":status":     &types.AttributeValueMemberS{Value: string(entities.OSStatusEmAndamento)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#diag":       "diagnostic_data",
			"#stage":      "stage",
			"#status":     "status",
			"#updated_at": "updated_at",
		}
		if entryAV != nil {
			expr += ", #history = list_append(#history, :entry)"
			vals[":entry"] = entryAV
			names["#history"] = "history"
		}
		return expr, vals, names
	})
}

func (r *WorkOrderDynamoRepository) SetDelivery(ctx context.Context, id string, delivery entities.DeliveryInfo, entry entities.HistoryEntry) (entities.WorkOrder, error) {
	deliveryAV, err := attributevalue.MarshalMap(toDeliveryInfoItem(delivery))
	if err != nil {
		return entities.WorkOrder{}, err
	}
	entryAV, err := marshalHistoryEntry(entry)
	if err != nil {
		return entities.WorkOrder{}, err
	}

	return r.update(ctx, id, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #delivery = :delivery, #stage = :stage, #status = :status, #history = list_append(#history, :entry), #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":delivery":   &types.AttributeValueMemberM{Value: deliveryAV},
			":stage":      &types.AttributeValueMemberS{Value: string(entities.StageDelivered)},
			":status":     &types.AttributeValueMemberS{Value: string(entities.OSStatusFinalizada)},
			":entry":      entryAV,
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#delivery":   "delivery",
			"#stage":      "stage",
			"#status":     "status",
			"#history":    "history",
			"#updated_at": "updated_at",
		}
		return expr, vals, names
	})
}

func (r *WorkOrderDynamoRepository) SetCancelled(ctx context.Context, id string, reason string, entry entities.HistoryEntry) (entities.WorkOrder, error) {
	entryAV, err := marshalHistoryEntry(entry)
	if err != nil {
		return entities.WorkOrder{}, err
	}

	return r.update(ctx, id, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #stage = :stage, #status = :status, #reason = :reason, #history = list_append(#history, :entry), #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":stage":      &types.AttributeValueMemberS{Value: string(entities.StageCancelled)},
			":status":     &types.AttributeValueMemberS{Value: string(entities.OSStatusCancelada)},
			":reason":     &types.AttributeValueMemberS{Value: reason},
			":entry":      entryAV,
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#stage":      "stage",
			"#status":     "status",
			"#reason":     "cancel_reason",
			"#history":    "history",
			"#updated_at": "updated_at",
		}
		return expr, vals, names
	})
}

func (r *WorkOrderDynamoRepository) AddLinkedQuote(ctx context.Context, id string, quoteID string) (entities.WorkOrder, error) {
	return r.update(ctx, id, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "ADD #linked :quote SET #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":quote":      &types.AttributeValueMemberSS{Value: []string{quoteID}},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#linked":     "linked_quote_ids",
			"#updated_at": "updated_at",
		}
		return expr, vals, names
	})
}

func (r *WorkOrderDynamoRepository) SetLinkedQuotes(ctx context.Context, id string, quoteIDs []string) (entities.WorkOrder, error) {
	return r.update(ctx, id, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #linked = :linked, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":linked":     &types.AttributeValueMemberSS{Value: quoteIDs},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#linked":     "linked_quote_ids",
			"#updated_at": "updated_at",
		}
		return expr, vals, names
	})
}

func (r *WorkOrderDynamoRepository) AppendHistory(ctx context.Context, id string, entry entities.HistoryEntry) (entities.WorkOrder, error) {
	entryAV, err := marshalHistoryEntry(entry)
	if err != nil {
		return entities.WorkOrder{}, err
	}

	return r.update(ctx, id, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #history = list_append(#history, :entry), #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":entry":      entryAV,
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#history":    "history",
			"#updated_at": "updated_at",
		}
		return expr, vals, names
	})
}

func (r *WorkOrderDynamoRepository) AppendUnforeseenIssue(ctx context.Context, id string, issue entities.UnforeseenIssue) (entities.WorkOrder, error) {
	issueAV, err := attributevalue.MarshalMap(toUnforeseenIssueItem(issue))
	if err != nil {
		return entities.WorkOrder{}, err
	}

	return r.update(ctx, id, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #issues = list_append(if_not_exists(#issues, :empty), :issue), #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":issue":      &types.AttributeValueMemberL{Value: []types.AttributeValue{&types.AttributeValueMemberM{Value: issueAV}}},
			":empty":      &types.AttributeValueMemberL{Value: []types.AttributeValue{}},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#issues":     "unforeseen_issues",
			"#updated_at": "updated_at",
		}
		return expr, vals, names
	})
}

func (r *WorkOrderDynamoRepository) update(
	ctx context.Context,
	id string,
	build func(now string) (updateExpr string, values map[string]types.AttributeValue, names map[string]string),
) (entities.WorkOrder, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)
	updateExpr, values, names := build(now)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String("attribute_exists(#id)"),
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.WorkOrder{}, nil
		}
		return entities.WorkOrder{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.WorkOrder{}, nil
	}
	var it workOrderItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.WorkOrder{}, err
	}
	return fromWorkOrderItem(it), nil
}

func marshalHistoryEntry(entry entities.HistoryEntry) (types.AttributeValue, error) {
	m, err := attributevalue.MarshalMap(toHistoryEntryItem(entry))
	if err != nil {
		return nil, err
	}
	return &types.AttributeValueMemberL{Value: []types.AttributeValue{&types.AttributeValueMemberM{Value: m}}}, nil
}

func toHistoryEntryItem(e entities.HistoryEntry) historyEntryItem {
	return historyEntryItem{
		Stage: string(e.Stage),
		Date:  e.Date.UTC().Format(time.RFC3339Nano),
		User:  e.User,
		Notes: e.Notes,
	}
}

func fromHistoryEntryItem(it historyEntryItem) entities.HistoryEntry {
	date, _ := time.Parse(time.RFC3339Nano, it.Date)
	return entities.HistoryEntry{
		Stage: entities.Stage(it.Stage),
		Date:  date,
		User:  it.User,
		Notes: it.Notes,
	}
}

func toDiagnosticDataItem(d entities.DiagnosticData) diagnosticDataItem {
	items := make([]recommendedItemItem, 0, len(d.RecommendedItems))
	for _, it := range d.RecommendedItems {
		items = append(items, recommendedItemItem(it))
	}
	return diagnosticDataItem{
		Summary:          d.Summary,
		Type:             d.Type,
		StaffIDs:         d.StaffIDs,
		RecommendedItems: items,
		CompletedAt:      d.CompletedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromDiagnosticDataItem(it diagnosticDataItem) entities.DiagnosticData {
	completedAt, _ := time.Parse(time.RFC3339Nano, it.CompletedAt)
	items := make([]entities.RecommendedItem, 0, len(it.RecommendedItems))
	for _, ri := range it.RecommendedItems {
		items = append(items, entities.RecommendedItem(ri))
	}
	return entities.DiagnosticData{
		Summary:          it.Summary,
		Type:             it.Type,
		StaffIDs:         it.StaffIDs,
		RecommendedItems: items,
		CompletedAt:      completedAt,
	}
}

func toDeliveryInfoItem(d entities.DeliveryInfo) deliveryInfoItem {
	return deliveryInfoItem{
		DeliveredAt:         d.DeliveredAt.UTC().Format(time.RFC3339Nano),
		ReceivedBy:          d.ReceivedBy,
		Odometer:            d.Odometer,
		Notes:               d.Notes,
		NextMaintenanceDate: d.NextMaintenanceDate.UTC().Format(time.RFC3339Nano),
		NextMaintenanceNote: d.NextMaintenanceNote,
	}
}

func fromDeliveryInfoItem(it deliveryInfoItem) entities.DeliveryInfo {
	deliveredAt, _ := time.Parse(time.RFC3339Nano, it.DeliveredAt)
	nextMaintenance, _ := time.Parse(time.RFC3339Nano, it.NextMaintenanceDate)
	return entities.DeliveryInfo{
		DeliveredAt:         deliveredAt,
		ReceivedBy:          it.ReceivedBy,
		Odometer:            it.Odometer,
		Notes:               it.Notes,
		NextMaintenanceDate: nextMaintenance,
		NextMaintenanceNote: it.NextMaintenanceNote,
	}
}

func toUnforeseenIssueItem(i entities.UnforeseenIssue) unforeseenIssueItem {
	return unforeseenIssueItem{
		ID:          i.ID,
		Description: i.Description,
		ReportedBy:  i.ReportedBy,
		ReportedAt:  i.ReportedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromUnforeseenIssueItem(it unforeseenIssueItem) entities.UnforeseenIssue {
	reportedAt, _ := time.Parse(time.RFC3339Nano, it.ReportedAt)
	return entities.UnforeseenIssue{
		ID:          it.ID,
		Description: it.Description,
		ReportedBy:  it.ReportedBy,
		ReportedAt:  reportedAt,
	}
}

func toWorkOrderItem(wo entities.WorkOrder) workOrderItem {
	history := make([]historyEntryItem, 0, len(wo.History))
	for _, h := range wo.History {
		history = append(history, toHistoryEntryItem(h))
	}
	issues := make([]unforeseenIssueItem, 0, len(wo.UnforeseenIssues))
	for _, i := range wo.UnforeseenIssues {
		issues = append(issues, toUnforeseenIssueItem(i))
	}

	it := workOrderItem{
		ID:               wo.ID,
		ClientID:         wo.ClientID,
		VehicleID:        wo.VehicleID,
		Stage:            string(wo.Stage),
		Status:           string(wo.Status),
		LinkedQuoteIDs:   wo.LinkedQuoteIDs,
		History:          history,
		UnforeseenIssues: issues,
		CancelReason:     wo.CancelReason,
		CreatedAt:        wo.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:        wo.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
	if wo.DiagnosticData != nil {
		d := toDiagnosticDataItem(*wo.DiagnosticData)
		it.DiagnosticData = &d
	}
	if wo.Delivery != nil {
		d := toDeliveryInfoItem(*wo.Delivery)
		it.Delivery = &d
	}
	return it
}

func fromWorkOrderItem(it workOrderItem) entities.WorkOrder {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)

	history := make([]entities.HistoryEntry, 0, len(it.History))
	for _, h := range it.History {
		history = append(history, fromHistoryEntryItem(h))
	}
	issues := make([]entities.UnforeseenIssue, 0, len(it.UnforeseenIssues))
	for _, i := range it.UnforeseenIssues {
		issues = append(issues, fromUnforeseenIssueItem(i))
	}

	wo := entities.WorkOrder{
		ID:               it.ID,
		ClientID:         it.ClientID,
		VehicleID:        it.VehicleID,
		Stage:            entities.Stage(it.Stage),
		Status:           entities.OSStatus(it.Status),
		LinkedQuoteIDs:   it.LinkedQuoteIDs,
		History:          history,
		UnforeseenIssues: issues,
		CancelReason:     it.CancelReason,
		CreatedAt:        createdAt,
		UpdatedAt:        updatedAt,
	}
	if len(issues) == 0 {
		wo.UnforeseenIssues = nil
	}
	if it.DiagnosticData != nil {
		d := fromDiagnosticDataItem(*it.DiagnosticData)
		wo.DiagnosticData = &d
	}
	if it.Delivery != nil {
		d := fromDeliveryInfoItem(*it.Delivery)
		wo.Delivery = &d
	}
	return wo
}
