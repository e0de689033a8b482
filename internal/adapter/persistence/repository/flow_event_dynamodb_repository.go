package repository

import (
	"context"
	"time"

	"voltflow_crm/internal/domain/entities"
	"voltflow_crm/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultFlowEventsTableName = "flow_events"
	flowEventsEntityKeyIndex   = "entity_key-index"
	flowEventsFeedIndex        = "feed-index"

	// every event shares one feed partition so the newest ones can be queried
	// in order without a scan
	flowEventsFeed = "all"

	// fixed width so created_at sorts lexically
	sortableTimeLayout = "2006-01-02T15:04:05.000000000Z07:00"
)

type flowEventItem struct {
	ID            string `dynamodbav:"id"`
	EntityKey     string `dynamodbav:"entity_key"`
	Feed          string `dynamodbav:"feed"`
	Module        string `dynamodbav:"module"`
	EntityID      int64  `dynamodbav:"entity_id"`
	Action        string `dynamodbav:"action"`
	FromStatus    string `dynamodbav:"from_status,omitempty"`
	ToStatus      string `dynamodbav:"to_status,omitempty"`
	RelatedModule string `dynamodbav:"related_module,omitempty"`
	RelatedID     int64  `dynamodbav:"related_id,omitempty"`
	Details       string `dynamodbav:"details,omitempty"`
	CreatedAt     string `dynamodbav:"created_at"`
}

// FlowEventDynamoRepository persists the activity feed in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: entity_key-index (PK: entity_key, SK: created_at)
//   - GSI: feed-index (PK: feed, SK: created_at)
type FlowEventDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IFlowEventRepository = (*FlowEventDynamoRepository)(nil)

func NewFlowEventDynamoRepository(ddb DynamoAPI) *FlowEventDynamoRepository {
	return &FlowEventDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("FLOW_EVENTS_TABLE", defaultFlowEventsTableName),
	}
}

func (r *FlowEventDynamoRepository) Create(ctx context.Context, e entities.FlowEvent) (entities.FlowEvent, error) {
	av, err := attributevalue.MarshalMap(toFlowEventItem(e))
	if err != nil {
		return entities.FlowEvent{}, err
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
		return entities.FlowEvent{}, err
	}
	return e, nil
}

// ListByEntity returns the events of one record, newest first.
func (r *FlowEventDynamoRepository) ListByEntity(ctx context.Context, module entities.Module, entityID uint) ([]entities.FlowEvent, error) {
	return r.query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(flowEventsEntityKeyIndex),
		KeyConditionExpression: aws.String("entity_key = :key"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":key": &types.AttributeValueMemberS{Value: entities.EntityKey(module, entityID)},
		},
		ScanIndexForward: aws.Bool(false),
	})
}

func (r *FlowEventDynamoRepository) ListRecent(ctx context.Context, limit int) ([]entities.FlowEvent, error) {
	return r.query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(flowEventsFeedIndex),
		KeyConditionExpression: aws.String("feed = :feed"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":feed": &types.AttributeValueMemberS{Value: flowEventsFeed},
		},
		ScanIndexForward: aws.Bool(false),
		Limit:            aws.Int32(int32(limit)),
	})
}

func (r *FlowEventDynamoRepository) query(ctx context.Context, in *dynamodb.QueryInput) ([]entities.FlowEvent, error) {
	out, err := r.ddb.Query(ctx, in)
	if err != nil {
		return nil, err
	}

	events := make([]entities.FlowEvent, 0, len(out.Items))
	for _, raw := range out.Items {
		var it flowEventItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		events = append(events, fromFlowEventItem(it))
	}
	return events, nil
}

func toFlowEventItem(e entities.FlowEvent) flowEventItem {
	return flowEventItem{
		ID:            e.ID,
		EntityKey:     entities.EntityKey(e.Module, e.EntityID),
		Feed:          flowEventsFeed,
		Module:        string(e.Module),
		EntityID:      int64(e.EntityID),
		Action:        string(e.Action),
		FromStatus:    e.FromStatus,
		ToStatus:      e.ToStatus,
		RelatedModule: string(e.RelatedModule),
		RelatedID:     int64(e.RelatedID),
		Details:       e.Details,
		CreatedAt:     e.CreatedAt.UTC().Format(sortableTimeLayout),
	}
}

func fromFlowEventItem(it flowEventItem) entities.FlowEvent {
	createdAt, _ := time.Parse(sortableTimeLayout, it.CreatedAt)
	return entities.FlowEvent{
		ID:            it.ID,
		Module:        entities.Module(it.Module),
		EntityID:      uint(it.EntityID),
		Action:        entities.FlowAction(it.Action),
		FromStatus:    it.FromStatus,
		ToStatus:      it.ToStatus,
		RelatedModule: entities.Module(it.RelatedModule),
		RelatedID:     uint(it.RelatedID),
		Details:       it.Details,
		CreatedAt:     createdAt,
	}
}
