package repository

import (
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

func TestSequenceRepository_NextInput(t *testing.T) {
	r := NewSequenceDynamoRepository(nil)
	in := r.nextInput("shipment")

	if got := aws.ToString(in.UpdateExpression); got != "ADD #seq :one" {
		t.Fatalf("expected atomic ADD, got %q", got)
	}
	if in.ReturnValues != types.ReturnValueAllNew {
		t.Fatalf("expected ALL_NEW return values, got %s", in.ReturnValues)
	}

	key, ok := in.Key["entity_type"].(*types.AttributeValueMemberS)
	if !ok || key.Value != "shipment" {
		t.Fatalf("unexpected key: %+v", in.Key)
	}
	one, ok := in.ExpressionAttributeValues[":one"].(*types.AttributeValueMemberN)
	if !ok || one.Value != "1" {
		t.Fatalf("unexpected increment: %+v", in.ExpressionAttributeValues)
	}
}
