package repository

import (
	"strconv"
	"time"

	"vehicle_acquisition/internal/domain/entities"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// Items reuse the json tags of the entity types so nested records keep the
// same field names in DynamoDB, Postgres jsonb and the HTTP API.
func jsonTags(o *attributevalue.EncoderOptions) { o.TagKey = "json" }

func jsonTagsDecode(o *attributevalue.DecoderOptions) { o.TagKey = "json" }

func marshalItem(v any) (map[string]types.AttributeValue, error) {
	return attributevalue.MarshalMapWithOptions(v, jsonTags)
}

func unmarshalItem(m map[string]types.AttributeValue, out any) error {
	return attributevalue.UnmarshalMapWithOptions(m, out, jsonTagsDecode)
}

func marshalValue(v any) (types.AttributeValue, error) {
	return attributevalue.MarshalWithOptions(v, jsonTags)
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339Nano)
}

func parseTime(s string) time.Time {
	t, _ := time.Parse(time.RFC3339Nano, s)
	return t
}

func stageStatusesToStrings(in map[entities.Stage]entities.StageStatus) map[string]string {
	out := make(map[string]string, len(in))
	for s, st := range in {
		out[strconv.Itoa(int(s))] = string(st)
	}
	return out
}

func stageStatusesFromStrings(in map[string]string) map[entities.Stage]entities.StageStatus {
	out := make(map[entities.Stage]entities.StageStatus, len(in))
	for k, v := range in {
		n, err := strconv.Atoi(k)
		if err != nil {
			continue
		}
		out[entities.Stage(n)] = entities.StageStatus(v)
	}
	return out
}

func stageTimesToStrings(in map[entities.Stage]time.Time) map[string]string {
	out := make(map[string]string, len(in))
	for s, t := range in {
		out[strconv.Itoa(int(s))] = formatTime(t)
	}
	return out
}

func stageTimesFromStrings(in map[string]string) map[entities.Stage]time.Time {
	out := make(map[entities.Stage]time.Time, len(in))
	for k, v := range in {
		n, err := strconv.Atoi(k)
		if err != nil {
			continue
		}
		out[entities.Stage(n)] = parseTime(v)
	}
	return out
}

func mergeNames(a, b map[string]string) map[string]string {
	if len(a) == 0 {
		return b
	}
	if len(b) == 0 {
		return a
	}
	out := make(map[string]string, len(a)+len(b))
	for k, v := range a {
		out[k] = v
	}
	for k, v := range b {
		out[k] = v
	}
	return out
}
