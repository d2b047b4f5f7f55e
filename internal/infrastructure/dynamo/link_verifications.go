package dynamo

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/go-account-verify/internal/domain"
)

// LinkVerificationRepo manages pending link-token records.
// PK: account_id. One live record per account; a re-issue overwrites.
type LinkVerificationRepo struct {
	client    *dynamodb.Client
	tableName string
}

func NewLinkVerificationRepo(client *dynamodb.Client, tableName string) *LinkVerificationRepo {
	return &LinkVerificationRepo{client: client, tableName: tableName}
}

func (r *LinkVerificationRepo) Put(ctx context.Context, v *domain.LinkVerification) error {
	item, err := attributevalue.MarshalMap(v)
	if err != nil {
		return fmt.Errorf("marshal link verification: %w", err)
	}
	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      item,
	})
	return err
}

func (r *LinkVerificationRepo) Get(ctx context.Context, accountID string) (*domain.LinkVerification, error) {
	out, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key:       strKey("account_id", accountID),
	})
	if err != nil {
		return nil, err
	}
	if out.Item == nil {
		return nil, fmt.Errorf("link verification not found: %w", domain.ErrNotFound)
	}
	var v domain.LinkVerification
	if err := attributevalue.UnmarshalMap(out.Item, &v); err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *LinkVerificationRepo) Delete(ctx context.Context, accountID string) error {
	_, err := r.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key:       strKey("account_id", accountID),
	})
	return err
}
