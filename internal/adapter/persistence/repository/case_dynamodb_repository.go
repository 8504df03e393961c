package repository

import (
	"context"
	"errors"
	"strconv"

	"vehicle_acquisition/internal/domain/entities"
	"vehicle_acquisition/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultCasesTableName = "cases"

type caseItem struct {
	ID             string                `json:"id"`
	CurrentStage   int                   `json:"current_stage"`
	Status         string                `json:"status"`
	StageStatuses  map[string]string     `json:"stage_statuses"`
	StageStartedAt map[string]string     `json:"stage_started_at"`
	Completion     entities.Completion   `json:"completion"`
	LastActivity   entities.LastActivity `json:"last_activity"`
	AssignedTo     string                `json:"assigned_to"`
	CreatedAt      string                `json:"created_at"`
	UpdatedAt      string                `json:"updated_at"`

	Customer    *entities.Customer    `json:"customer,omitempty"`
	Vehicle     *entities.Vehicle     `json:"vehicle,omitempty"`
	Inspection  *entities.Inspection  `json:"inspection,omitempty"`
	Quote       *entities.Quote       `json:"quote,omitempty"`
	Transaction *entities.Transaction `json:"transaction,omitempty"`
}

// CaseDynamoRepository persists case aggregates in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// The collaborator snapshots live in the same item as the workflow fields.
// UpdateWorkflow only touches the workflow fields.

type CaseDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ICaseRepository = (*CaseDynamoRepository)(nil)

func NewCaseDynamoRepository(ddb *dynamodb.Client, tableName string) *CaseDynamoRepository {
	if tableName == "" {
		tableName = defaultCasesTableName
	}
	return &CaseDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *CaseDynamoRepository) Create(ctx context.Context, agg entities.CaseAggregate) (entities.CaseAggregate, error) {
	av, err := marshalItem(toCaseItem(agg))
	if err != nil {
		return entities.CaseAggregate{}, err
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
		return entities.CaseAggregate{}, err
	}
	agg.Tracking = nil
	return agg, nil
}

func (r *CaseDynamoRepository) GetAggregate(ctx context.Context, id string) (entities.CaseAggregate, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.CaseAggregate{}, err
	}
	if len(out.Item) == 0 {
		return entities.CaseAggregate{}, nil
	}

	var it caseItem
	if err := unmarshalItem(out.Item, &it); err != nil {
		return entities.CaseAggregate{}, err
	}
	return fromCaseItem(it), nil
}

func (r *CaseDynamoRepository) UpdateWorkflow(ctx context.Context, c entities.Case) (entities.Case, error) {
	completion, err := marshalValue(c.Completion)
	if err != nil {
		return entities.Case{}, err
	}
	lastActivity, err := marshalValue(c.LastActivity)
	if err != nil {
		return entities.Case{}, err
	}
	statuses, err := marshalValue(stageStatusesToStrings(c.StageStatuses))
	if err != nil {
		return entities.Case{}, err
	}
	started, err := marshalValue(stageTimesToStrings(c.StageStartedAt))
	if err != nil {
		return entities.Case{}, err
	}

	expr := "SET #current_stage = :current_stage, #status = :status, #stage_statuses = :stage_statuses, " +
		"#stage_started_at = :stage_started_at, #completion = :completion, #last_activity = :last_activity, " +
		"#updated_at = :updated_at"
	names := map[string]string{
		"#current_stage":    "current_stage",
		"#status":           "status",
		"#stage_statuses":   "stage_statuses",
		"#stage_started_at": "stage_started_at",
		"#completion":       "completion",
		"#last_activity":    "last_activity",
		"#updated_at":       "updated_at",
	}
	values := map[string]types.AttributeValue{
		":current_stage":    &types.AttributeValueMemberN{Value: strconv.Itoa(int(c.CurrentStage))},
		":status":           &types.AttributeValueMemberS{Value: string(c.Status)},
		":stage_statuses":   statuses,
		":stage_started_at": started,
		":completion":       completion,
		":last_activity":    lastActivity,
		":updated_at":       &types.AttributeValueMemberS{Value: formatTime(c.UpdatedAt)},
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: c.ID},
		},
		ConditionExpression:       aws.String("attribute_exists(#id)"),
		UpdateExpression:          aws.String(expr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Case{}, nil
		}
		return entities.Case{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Case{}, nil
	}
	var it caseItem
	if err := unmarshalItem(out.Attributes, &it); err != nil {
		return entities.Case{}, err
	}
	return fromCaseItem(it).Case, nil
}

// MarkPDFGenerated sets the pdf flags inside the completion map and the last
// activity. Stage fields are left as stored.
func (r *CaseDynamoRepository) MarkPDFGenerated(ctx context.Context, id string, activity entities.LastActivity) (entities.Case, error) {
	expr, names, values, err := pdfGeneratedUpdate(activity)
	if err != nil {
		return entities.Case{}, err
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String("attribute_exists(#id)"),
		UpdateExpression:          aws.String(expr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Case{}, nil
		}
		return entities.Case{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Case{}, nil
	}
	var it caseItem
	if err := unmarshalItem(out.Attributes, &it); err != nil {
		return entities.Case{}, err
	}
	return fromCaseItem(it).Case, nil
}

func pdfGeneratedUpdate(activity entities.LastActivity) (string, map[string]string, map[string]types.AttributeValue, error) {
	at, err := marshalValue(activity.Timestamp)
	if err != nil {
		return "", nil, nil, err
	}
	lastActivity, err := marshalValue(activity)
	if err != nil {
		return "", nil, nil, err
	}

	expr := "SET #completion.#pdf_generated = :pdf_generated, #completion.#pdf_generated_at = :pdf_generated_at, " +
		"#last_activity = :last_activity, #updated_at = :updated_at"
	names := map[string]string{
		"#completion":       "completion",
		"#pdf_generated":    "pdfGenerated",
		"#pdf_generated_at": "pdfGeneratedAt",
		"#last_activity":    "last_activity",
		"#updated_at":       "updated_at",
	}
	values := map[string]types.AttributeValue{
		":pdf_generated":    &types.AttributeValueMemberBOOL{Value: true},
		":pdf_generated_at": at,
		":last_activity":    lastActivity,
		":updated_at":       &types.AttributeValueMemberS{Value: formatTime(activity.Timestamp)},
	}
	return expr, names, values, nil
}

func toCaseItem(agg entities.CaseAggregate) caseItem {
	c := agg.Case
	return caseItem{
		ID:             c.ID,
		CurrentStage:   int(c.CurrentStage),
		Status:         string(c.Status),
		StageStatuses:  stageStatusesToStrings(c.StageStatuses),
		StageStartedAt: stageTimesToStrings(c.StageStartedAt),
		Completion:     c.Completion,
		LastActivity:   c.LastActivity,
		AssignedTo:     c.AssignedTo,
		CreatedAt:      formatTime(c.CreatedAt),
		UpdatedAt:      formatTime(c.UpdatedAt),
		Customer:       agg.Customer,
		Vehicle:        agg.Vehicle,
		Inspection:     agg.Inspection,
		Quote:          agg.Quote,
		Transaction:    agg.Transaction,
	}
}

func fromCaseItem(it caseItem) entities.CaseAggregate {
	return entities.CaseAggregate{
		Case: entities.Case{
			ID:             it.ID,
			CurrentStage:   entities.Stage(it.CurrentStage),
			StageStatuses:  stageStatusesFromStrings(it.StageStatuses),
			StageStartedAt: stageTimesFromStrings(it.StageStartedAt),
			Status:         entities.CaseStatus(it.Status),
			Completion:     it.Completion,
			LastActivity:   it.LastActivity,
			AssignedTo:     it.AssignedTo,
			CreatedAt:      parseTime(it.CreatedAt),
			UpdatedAt:      parseTime(it.UpdatedAt),
		},
		Customer:    it.Customer,
		Vehicle:     it.Vehicle,
		Inspection:  it.Inspection,
		Quote:       it.Quote,
		Transaction: it.Transaction,
	}
}
