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

const defaultTimeTrackingTableName = "time_tracking"

type timeTrackingItem struct {
	CaseID      string                        `json:"case_id"`
	StageTimes  map[string]entities.StageTime `json:"stage_times"`
	TotalTime   int64                         `json:"total_time"`
	Version     int64                         `json:"version"`
	LastUpdated string                        `json:"last_updated"`
}

// TimeTrackingDynamoRepository persists TimeTracking records in DynamoDB.
//
// Table requirements:
//   - PK: case_id (string)
//
// Save is a conditional put on the version attribute.

type TimeTrackingDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ITimeTrackingRepository = (*TimeTrackingDynamoRepository)(nil)

func NewTimeTrackingDynamoRepository(ddb *dynamodb.Client, tableName string) *TimeTrackingDynamoRepository {
	if tableName == "" {
		tableName = defaultTimeTrackingTableName
	}
	return &TimeTrackingDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *TimeTrackingDynamoRepository) GetByCaseID(ctx context.Context, caseID string) (entities.TimeTracking, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"case_id": &types.AttributeValueMemberS{Value: caseID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.TimeTracking{}, err
	}
	if len(out.Item) == 0 {
		return entities.TimeTracking{}, nil
	}

	var it timeTrackingItem
	if err := unmarshalItem(out.Item, &it); err != nil {
		return entities.TimeTracking{}, err
	}
	return fromTimeTrackingItem(it), nil
}

func (r *TimeTrackingDynamoRepository) Save(ctx context.Context, t entities.TimeTracking, expectedVersion int64) error {
	av, err := marshalItem(toTimeTrackingItem(t))
	if err != nil {
		return err
	}

	in := &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	}
	if expectedVersion == 0 {
		in.ConditionExpression = aws.String("attribute_not_exists(#case_id)")
		in.ExpressionAttributeNames = map[string]string{"#case_id": "case_id"}
	} else {
		in.ConditionExpression = aws.String("#version = :expected")
		in.ExpressionAttributeNames = map[string]string{"#version": "version"}
		in.ExpressionAttributeValues = map[string]types.AttributeValue{
			":expected": &types.AttributeValueMemberN{Value: strconv.FormatInt(expectedVersion, 10)},
		}
	}

	if _, err := r.ddb.PutItem(ctx, in); err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return interfaces.ErrVersionConflict
		}
		return err
	}
	return nil
}

func toTimeTrackingItem(t entities.TimeTracking) timeTrackingItem {
	stageTimes := t.StageTimes
	if stageTimes == nil {
		stageTimes = map[string]entities.StageTime{}
	}
	return timeTrackingItem{
		CaseID:      t.CaseID,
		StageTimes:  stageTimes,
		TotalTime:   t.TotalTime,
		Version:     t.Version,
		LastUpdated: formatTime(t.LastUpdated),
	}
}

func fromTimeTrackingItem(it timeTrackingItem) entities.TimeTracking {
	return entities.TimeTracking{
		CaseID:      it.CaseID,
		StageTimes:  it.StageTimes,
		TotalTime:   it.TotalTime,
		Version:     it.Version,
		LastUpdated: parseTime(it.LastUpdated),
	}
}
