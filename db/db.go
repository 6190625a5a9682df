package db

import (
	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/dynamodb"
	"github.com/aws/aws-sdk-go/service/dynamodb/dynamodbattribute"
	"github.com/aws/aws-sdk-go/service/dynamodb/dynamodbiface"
	"github.com/jsphweid/midiroll/model"
	"github.com/pkg/errors"
)

// dynamo limits per batch request
const (
	maxBatchWrite = 25
	maxBatchGet   = 100
)

// item is how a summary is laid out in the table; PK is the filename.
type item struct {
	PK string
	model.RollSummary
}

type Store struct {
	client dynamodbiface.DynamoDBAPI
	table  string
}

func New(endpoint, table string) (*Store, error) {
	sess, err := session.NewSession(&aws.Config{
		Region:   aws.String("localhost"),
		Endpoint: aws.String(endpoint),
	})
	if err != nil {
		return nil, errors.Wrap(err, "could not create a new DynamoDB session")
	}
	return NewWithClient(dynamodb.New(sess), table), nil
}

func NewWithClient(client dynamodbiface.DynamoDBAPI, table string) *Store {
	return &Store{client: client, table: table}
}

func (s *Store) PutRollSummaries(summaries []model.RollSummary) error {
	for start := 0; start < len(summaries); start += maxBatchWrite {
		end := start + maxBatchWrite
		if end > len(summaries) {
			end = len(summaries)
		}

		var requests []*dynamodb.WriteRequest
		for _, summary := range summaries[start:end] {
			av, err := dynamodbattribute.MarshalMap(item{PK: summary.Filename, RollSummary: summary})
			if err != nil {
				return errors.Wrapf(err, "could not marshal summary for %v", summary.Filename)
			}
			requests = append(requests, &dynamodb.WriteRequest{
				PutRequest: &dynamodb.PutRequest{Item: av},
			})
		}

		pending := map[string][]*dynamodb.WriteRequest{s.table: requests}
		for len(pending) > 0 {
			out, err := s.client.BatchWriteItem(&dynamodb.BatchWriteItemInput{RequestItems: pending})
			if err != nil {
				return errors.Wrap(err, "error from DynamoDB")
			}
			pending = out.UnprocessedItems
		}
	}
	return nil
}

func (s *Store) GetRollSummaries(filenames []string) (map[string]model.RollSummary, error) {
	res := make(map[string]model.RollSummary)

	for start := 0; start < len(filenames); start += maxBatchGet {
		end := start + maxBatchGet
		if end > len(filenames) {
			end = len(filenames)
		}

		var keys []map[string]*dynamodb.AttributeValue
		for _, filename := range filenames[start:end] {
			keys = append(keys, map[string]*dynamodb.AttributeValue{
				"PK": {S: aws.String(filename)},
			})
		}

		pending := map[string]*dynamodb.KeysAndAttributes{s.table: {Keys: keys}}
		for len(pending) > 0 {
			out, err := s.client.BatchGetItem(&dynamodb.BatchGetItemInput{RequestItems: pending})
			if err != nil {
				return nil, errors.Wrap(err, "error from DynamoDB")
			}
			for _, v := range out.Responses[s.table] {
				var it item
				if err := dynamodbattribute.UnmarshalMap(v, &it); err != nil {
					return nil, errors.Wrap(err, "could not unmarshal summary")
				}
				res[it.PK] = it.RollSummary
			}
			pending = out.UnprocessedKeys
		}
	}

	return res, nil
}
