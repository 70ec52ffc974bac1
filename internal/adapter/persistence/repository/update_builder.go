package repository

import (
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// updateBuilder assembles an allow-listed SET (plus optional REMOVE)
// expression. Nil field pointers are skipped, so only fields the caller
// explicitly provided are written; updated_at is always touched.
type updateBuilder struct {
	sets    []string
	removes []string
	names   map[string]string
	values  map[string]types.AttributeValue
}

func newUpdateBuilder() *updateBuilder {
	return &updateBuilder{
		names:  map[string]string{},
		values: map[string]types.AttributeValue{},
	}
}

func (b *updateBuilder) set(attr string, value types.AttributeValue) {
	name := "#" + attr
	placeholder := ":" + attr
	b.sets = append(b.sets, name+" = "+placeholder)
	b.names[name] = attr
	b.values[placeholder] = value
}

func (b *updateBuilder) remove(attr string) {
	name := "#" + attr
	b.removes = append(b.removes, name)
	b.names[name] = attr
}

func (b *updateBuilder) setString(attr string, v *string) {
	if v != nil {
		b.set(attr, stringAttr(*v))
	}
}

func (b *updateBuilder) setFloat(attr string, v *float64) {
	if v != nil {
		b.set(attr, numberAttr(floatToString(*v)))
	}
}

func (b *updateBuilder) setTime(attr string, v *time.Time) {
	if v != nil {
		b.set(attr, stringAttr(formatTime(*v)))
	}
}

func (b *updateBuilder) input(tableName, id string) *dynamodb.UpdateItemInput {
	b.set("updated_at", stringAttr(formatTime(time.Now())))

	expr := "SET " + strings.Join(b.sets, ", ")
	if len(b.removes) > 0 {
		expr += " REMOVE " + strings.Join(b.removes, ", ")
	}

	return &dynamodb.UpdateItemInput{
		TableName: aws.String(tableName),
		Key: map[string]types.AttributeValue{
			"id": stringAttr(id),
		},
		ConditionExpression:       aws.String("attribute_exists(#id)"),
		UpdateExpression:          aws.String(expr),
		ExpressionAttributeValues: b.values,
		ExpressionAttributeNames:  mergeNames(b.names, map[string]string{"#id": "id"}),
		ReturnValues:              types.ReturnValueAllNew,
	}
}
