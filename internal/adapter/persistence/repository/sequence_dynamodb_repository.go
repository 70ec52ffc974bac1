package repository

import (
	"context"
	"fmt"
	"strconv"

	"logistica_xpto/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultCountersTableName = "counters"

// SequenceDynamoRepository hands out numeric ids from a DynamoDB counters
// table, one item per entity-type key.
//
// Table requirements:
//   - PK: entity_type (string)
//
// The counter lives on the store, never in process memory, so multiple
// service instances share one source of truth. ADD initializes the attribute
// to zero on first use, so the first value returned for a key is 1.

type SequenceDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ISequenceRepository = (*SequenceDynamoRepository)(nil)

func NewSequenceDynamoRepository(ddb *dynamodb.Client) *SequenceDynamoRepository {
	return &SequenceDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("COUNTERS_TABLE", defaultCountersTableName),
	}
}

func (r *SequenceDynamoRepository) Next(ctx context.Context, key string) (int, error) {
	out, err := r.ddb.UpdateItem(ctx, r.nextInput(key))
	if err != nil {
		return 0, err
	}

	attr, ok := out.Attributes["seq"]
	if !ok {
		return 0, fmt.Errorf("counter %q: missing seq attribute", key)
	}
	n, ok := attr.(*types.AttributeValueMemberN)
	if !ok {
		return 0, fmt.Errorf("counter %q: seq is not a number", key)
	}
	v, err := strconv.Atoi(n.Value)
	if err != nil {
		return 0, fmt.Errorf("counter %q: %w", key, err)
	}
	return v, nil
}

// nextInput is one atomic increment against the counter item. ADD makes
// concurrent callers serialize on the store, so no two of them can read the
// same value back.
func (r *SequenceDynamoRepository) nextInput(key string) *dynamodb.UpdateItemInput {
	return &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"entity_type": stringAttr(key),
		},
		UpdateExpression: aws.String("ADD #seq :one"),
		ExpressionAttributeNames: map[string]string{
			"#seq": "seq",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":one": numberAttr("1"),
		},
		ReturnValues: types.ReturnValueAllNew,
	}
}
