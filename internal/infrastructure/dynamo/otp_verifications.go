package dynamo

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/go-account-verify/internal/domain"
)

// batchDeleteMax is the DynamoDB BatchWriteItem request limit.
const batchDeleteMax = 25

// OTPVerificationRepo manages pending OTP records.
// PK: account_id, SK: otp_id. Several rows can exist per account; the
// flows treat the first row as authoritative and clear all of them.
type OTPVerificationRepo struct {
	client    *dynamodb.Client
	tableName string
}

func NewOTPVerificationRepo(client *dynamodb.Client, tableName string) *OTPVerificationRepo {
	return &OTPVerificationRepo{client: client, tableName: tableName}
}

func (r *OTPVerificationRepo) Put(ctx context.Context, v *domain.OTPVerification) error {
	item, err := attributevalue.MarshalMap(v)
	if err != nil {
		return fmt.Errorf("marshal otp verification: %w", err)
	}
	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      item,
	})
	return err
}

// FirstByAccount returns the first pending OTP row for an account, or
// ErrNotFound when none exist.
func (r *OTPVerificationRepo) FirstByAccount(ctx context.Context, accountID string) (*domain.OTPVerification, error) {
	out, err := r.client.Query(ctx, &dynamodb.QueryInput{
		TableName:                 aws.String(r.tableName),
		KeyConditionExpression:    aws.String("#a = :v"),
		ExpressionAttributeNames:  map[string]string{"#a": "account_id"},
		ExpressionAttributeValues: map[string]types.AttributeValue{":v": &types.AttributeValueMemberS{Value: accountID}},
		Limit:                     aws.Int32(1),
	})
	if err != nil {
		return nil, err
	}
	if len(out.Items) == 0 {
		return nil, fmt.Errorf("otp verification not found: %w", domain.ErrNotFound)
	}
	var v domain.OTPVerification
	if err := attributevalue.UnmarshalMap(out.Items[0], &v); err != nil {
		return nil, err
	}
	return &v, nil
}

// DeleteAllByAccount removes every OTP row for an account: a key-only
// query followed by batched deletes.
func (r *OTPVerificationRepo) DeleteAllByAccount(ctx context.Context, accountID string) error {
	out, err := r.client.Query(ctx, &dynamodb.QueryInput{
		TableName:                 aws.String(r.tableName),
		KeyConditionExpression:    aws.String("#a = :v"),
		ExpressionAttributeNames:  map[string]string{"#a": "account_id"},
		ExpressionAttributeValues: map[string]types.AttributeValue{":v": &types.AttributeValueMemberS{Value: accountID}},
		ProjectionExpression:      aws.String("account_id, otp_id"),
	})
	if err != nil {
		return err
	}
	if len(out.Items) == 0 {
		return nil
	}

	writes := make([]types.WriteRequest, 0, len(out.Items))
	for _, item := range out.Items {
		writes = append(writes, types.WriteRequest{
			DeleteRequest: &types.DeleteRequest{Key: item},
		})
	}
	for start := 0; start < len(writes); start += batchDeleteMax {
		end := start + batchDeleteMax
		if end > len(writes) {
			end = len(writes)
		}
		_, err := r.client.BatchWriteItem(ctx, &dynamodb.BatchWriteItemInput{
			RequestItems: map[string][]types.WriteRequest{
				r.tableName: writes[start:end],
			},
		})
		if err != nil {
			return err
		}
	}
	return nil
}
