package storage

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/inkpaste/inkpaste/models"
)

var _ PasteStore = (*DynamoStore)(nil)

// DynamoStore implements PasteStore using DynamoDB.
type DynamoStore struct {
	client    *dynamodb.Client
	tableName string
}

// NewDynamoStore creates a new DynamoDB storage backend.
func NewDynamoStore(tableName, region string) (*DynamoStore, error) {
	cfg, err := awsconfig.LoadDefaultConfig(context.TODO(),
		awsconfig.WithRegion(region),
	)
	if err != nil {
		return nil, err
	}

	client := dynamodb.NewFromConfig(cfg)

	return &DynamoStore{
		client:    client,
		tableName: tableName,
	}, nil
}

// Put inserts a new paste. The conditional expression rejects the write
// when the ID already exists, which maps to ErrDuplicateID.
func (d *DynamoStore) Put(ctx context.Context, paste *models.Paste) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	item := map[string]types.AttributeValue{
		"id":                    &types.AttributeValueMemberS{Value: paste.ID},
		"title":                 &types.AttributeValueMemberS{Value: paste.Title},
		"content":               &types.AttributeValueMemberS{Value: paste.Content},
		"expiry":                &types.AttributeValueMemberN{Value: strconv.FormatInt(paste.Expiry, 10)},
		"is_password_protected": &types.AttributeValueMemberBOOL{Value: paste.PasswordProtected},
		"burn_after_read":       &types.AttributeValueMemberBOOL{Value: paste.BurnAfterRead},
		"created_at":            &types.AttributeValueMemberN{Value: strconv.FormatInt(paste.CreatedAt.Unix(), 10)},
	}
	if paste.Password != "" {
		item["password"] = &types.AttributeValueMemberS{Value: paste.Password}
	}
	if paste.Syntax != "" {
		item["syntax"] = &types.AttributeValueMemberS{Value: paste.Syntax}
	}

	_, err := d.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(d.tableName),
		Item:                item,
		ConditionExpression: aws.String("attribute_not_exists(id)"),
	})
	if err != nil {
		var conditionFailed *types.ConditionalCheckFailedException
		if errors.As(err, &conditionFailed) {
			return ErrDuplicateID
		}
		return err
	}
	return nil
}

// Get retrieves a paste by its ID.
func (d *DynamoStore) Get(ctx context.Context, id string) (*models.Paste, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	result, err := d.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(d.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, err
	}

	if result.Item == nil {
		return nil, ErrNotFound
	}

	return d.itemToPaste(result.Item), nil
}

// Delete removes a paste; deleting an absent ID is not an error.
func (d *DynamoStore) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	_, err := d.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(d.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})

	return err
}

// Take removes the paste and returns it. DeleteItem with ALL_OLD return
// values is atomic per key, so at most one concurrent caller gets the
// record back.
func (d *DynamoStore) Take(ctx context.Context, id string) (*models.Paste, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	result, err := d.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(d.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ReturnValues: types.ReturnValueAllOld,
	})
	if err != nil {
		return nil, err
	}

	if len(result.Attributes) == 0 {
		return nil, ErrNotFound
	}

	return d.itemToPaste(result.Attributes), nil
}

// Ping verifies the table is reachable.
func (d *DynamoStore) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	_, err := d.client.DescribeTable(ctx, &dynamodb.DescribeTableInput{
		TableName: aws.String(d.tableName),
	})
	return err
}

// Close is a no-op for DynamoDB.
func (d *DynamoStore) Close() error {
	return nil
}

// itemToPaste converts a DynamoDB item to a Paste model.
func (d *DynamoStore) itemToPaste(item map[string]types.AttributeValue) *models.Paste {
	paste := &models.Paste{}

	if id, ok := item["id"].(*types.AttributeValueMemberS); ok {
		paste.ID = id.Value
	}

	if title, ok := item["title"].(*types.AttributeValueMemberS); ok {
		paste.Title = title.Value
	}

	if content, ok := item["content"].(*types.AttributeValueMemberS); ok {
		paste.Content = content.Value
	}

	if expiry, ok := item["expiry"].(*types.AttributeValueMemberN); ok {
		if ts, err := strconv.ParseInt(expiry.Value, 10, 64); err == nil {
			paste.Expiry = ts
		}
	}

	if protected, ok := item["is_password_protected"].(*types.AttributeValueMemberBOOL); ok {
		paste.PasswordProtected = protected.Value
	}

	if password, ok := item["password"].(*types.AttributeValueMemberS); ok {
		paste.Password = password.Value
	}

	if syntax, ok := item["syntax"].(*types.AttributeValueMemberS); ok {
		paste.Syntax = syntax.Value
	}

	if burn, ok := item["burn_after_read"].(*types.AttributeValueMemberBOOL); ok {
		paste.BurnAfterRead = burn.Value
	}

	if createdAt, ok := item["created_at"].(*types.AttributeValueMemberN); ok {
		if ts, err := strconv.ParseInt(createdAt.Value, 10, 64); err == nil {
			paste.CreatedAt = time.Unix(ts, 0)
		}
	}

	return paste
}
