package dynamo

import (
	"context"
	"fmt"
	"time"

	"oficina_nova_brasil/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultStateTableName = "oficina_state"

// API is the subset of *dynamodb.Client used by Store.
type API interface {
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
}

type slotItem struct {
	Name      string `dynamodbav:"name"`
	Payload   string `dynamodbav:"payload"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// Store persists each slot as one DynamoDB item.
//
// Table requirements:
//   - PK: name (string)
//
// A PutItem replaces the whole item, which gives the atomic full-replace
// contract of IKeyValueStore.
type Store struct {
	ddb       API
	tableName string
}

var _ interfaces.IKeyValueStore = (*Store)(nil)

func NewStore(ddb API, tableName string) *Store {
	if tableName == "" {
		tableName = defaultStateTableName
	}
	return &Store{ddb: ddb, tableName: tableName}
}

func (s *Store) Get(ctx context.Context, name string) ([]byte, bool, error) {
	out, err := s.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(s.tableName),
		Key: map[string]types.AttributeValue{
			"name": &types.AttributeValueMemberS{Value: name},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, false, fmt.Errorf("get slot %s: %w", name, err)
	}
	if len(out.Item) == 0 {
		return nil, false, nil
	}

	var it slotItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return nil, false, fmt.Errorf("decode slot %s: %w", name, err)
	}
	return []byte(it.Payload), true, nil
}

func (s *Store) Set(ctx context.Context, name string, payload []byte) error {
	av, err := attributevalue.MarshalMap(slotItem{
		Name:      name,
		Payload:   string(payload),
		UpdatedAt: time.Now().UTC().Format(time.RFC3339Nano),
	})
	if err != nil {
		return fmt.Errorf("encode slot %s: %w", name, err)
	}

	if _, err := s.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(s.tableName),
		Item:      av,
	}); err != nil {
		return fmt.Errorf("put slot %s: %w", name, err)
	}
	return nil
}
