package repository

import (
	"context"

	"thaki_platform/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultRecordsTableName = "records"

type recordItem struct {
	Key   string `dynamodbav:"key"`
	Value string `dynamodbav:"value"`
}

// DynamoKVStore keeps each named entry as a single item holding the whole
// JSON blob, mirroring the flat stored-state layout.
//
// Table requirements:
//   - PK: key (string)

type DynamoKVStore struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IKeyValueStore = (*DynamoKVStore)(nil)

func NewDynamoKVStore(ddb *dynamodb.Client) *DynamoKVStore {
	return &DynamoKVStore{
		ddb:       ddb,
		tableName: getenvDefault("RECORDS_TABLE", defaultRecordsTableName),
	}
}

func (s *DynamoKVStore) Get(ctx context.Context, key string) ([]byte, error) {
	out, err := s.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(s.tableName),
		Key: map[string]types.AttributeValue{
			"key": &types.AttributeValueMemberS{Value: key},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, err
	}
	if len(out.Item) == 0 {
		return nil, nil
	}

	var it recordItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return nil, err
	}
	return []byte(it.Value), nil
}

func (s *DynamoKVStore) Set(ctx context.Context, key string, value []byte) error {
	av, err := attributevalue.MarshalMap(recordItem{Key: key, Value: string(value)})
	if err != nil {
		return err
	}

	_, err = s.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(s.tableName),
		Item:      av,
	})
	return err
}
