// Package dynamodb persists documents to a DynamoDB table, one item per
// document key. It is the hosted counterpart of the embedded Bolt store
// and honors the same whole-document write-through contract.
package dynamodb

import (
	"context"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	awsdynamodb "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"go.uber.org/zap"

	apperrors "inkwell/pkg/errors"
)

// Store is a DynamoDB-backed durable document store.
type Store struct {
	client    *awsdynamodb.Client
	tableName string
	logger    *zap.Logger
}

// documentItem is the table shape: partition key is the document key, the
// document itself is an opaque JSON blob.
type documentItem struct {
	PK        string `dynamodbav:"PK"`
	Document  []byte `dynamodbav:"Document"`
	UpdatedAt string `dynamodbav:"UpdatedAt"`
}

// NewStore creates a store over the given table.
func NewStore(client *awsdynamodb.Client, tableName string, logger *zap.Logger) *Store {
	return &Store{
		client:    client,
		tableName: tableName,
		logger:    logger,
	}
}

// Get returns the document stored under key, or (nil, nil) when absent.
func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	out, err := s.client.GetItem(ctx, &awsdynamodb.GetItemInput{
		TableName: aws.String(s.tableName),
		Key: map[string]types.AttributeValue{
			"PK": &types.AttributeValueMemberS{Value: key},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, apperrors.NewStorageError("get", err)
	}
	if out.Item == nil {
		return nil, nil
	}

	var item documentItem
	if err := attributevalue.UnmarshalMap(out.Item, &item); err != nil {
		return nil, apperrors.NewStorageError("get", err)
	}
	return item.Document, nil
}

// Put writes the whole document under key.
func (s *Store) Put(ctx context.Context, key string, value []byte) error {
	item, err := attributevalue.MarshalMap(documentItem{
		PK:        key,
		Document:  value,
		UpdatedAt: time.Now().UTC().Format(time.RFC3339),
	})
	if err != nil {
		return apperrors.NewStorageError("put", err)
	}

	_, err = s.client.PutItem(ctx, &awsdynamodb.PutItemInput{
		TableName: aws.String(s.tableName),
		Item:      item,
	})
	if err != nil {
		return apperrors.NewStorageError("put", err)
	}
	s.logger.Debug("document written",
		zap.String("key", key),
		zap.Int("bytes", len(value)),
	)
	return nil
}

// Delete removes the document under key. Absent keys are not an error.
func (s *Store) Delete(ctx context.Context, key string) error {
	_, err := s.client.DeleteItem(ctx, &awsdynamodb.DeleteItemInput{
		TableName: aws.String(s.tableName),
		Key: map[string]types.AttributeValue{
			"PK": &types.AttributeValueMemberS{Value: key},
		},
	})
	if err != nil {
		return apperrors.NewStorageError("delete", err)
	}
	return nil
}
