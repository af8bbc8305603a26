package store

import (
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/jacentio/hello/greeting"
)

// Record is the stored form of an event. All attributes are strings.
type Record struct {
	Email     string `dynamodbav:"email"`
	FirstName string `dynamodbav:"first_name"`
	LastName  string `dynamodbav:"last_name"`
}

// RecordFrom projects an event onto the table schema.
func RecordFrom(e greeting.Event) Record {
	return Record{
		Email:     e.Email,
		FirstName: e.FirstName,
		LastName:  e.LastName,
	}
}

// Item marshals the record into a DynamoDB item.
func (r Record) Item() (map[string]types.AttributeValue, error) {
	return attributevalue.MarshalMap(r)
}
