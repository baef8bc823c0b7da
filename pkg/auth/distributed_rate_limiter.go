package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// DistributedRateLimiter enforces a shared request budget across instances
// using a DynamoDB counter per key and window bucket. Counters expire via
// the table's TTL attribute.
type DistributedRateLimiter struct {
	client    *dynamodb.Client
	tableName string
	limit     int
	window    time.Duration
	keyPrefix string
}

// NewDistributedRateLimiter creates a DynamoDB-backed limiter
func NewDistributedRateLimiter(client *dynamodb.Client, tableName string, limit int, window time.Duration, keyPrefix string) *DistributedRateLimiter {
	return &DistributedRateLimiter{
		client:    client,
		tableName: tableName,
		limit:     limit,
		window:    window,
		keyPrefix: keyPrefix,
	}
}

// Allow atomically increments the counter for the key's current window
// bucket and reports whether the request fits the budget. Errors fail open
// so a DynamoDB outage never blocks traffic.
func (rl *DistributedRateLimiter) Allow(ctx context.Context, key string) (bool, error) {
	bucket := time.Now().Unix() / int64(rl.window.Seconds())
	pk := fmt.Sprintf("RATELIMIT#%s#%s", rl.keyPrefix, key)
	sk := fmt.Sprintf("WINDOW#%d", bucket)
	ttl := time.Now().Add(2 * rl.window).Unix()

	result, err := rl.client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(rl.tableName),
		Key: map[string]types.AttributeValue{
			"PK": &types.AttributeValueMemberS{Value: pk},
			"SK": &types.AttributeValueMemberS{Value: sk},
		},
		UpdateExpression: aws.String("ADD RequestCount :one SET #ttl = :ttl"),
		ExpressionAttributeNames: map[string]string{
			"#ttl": "TTL",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":one": &types.AttributeValueMemberN{Value: "1"},
			":ttl": &types.AttributeValueMemberN{Value: fmt.Sprintf("%d", ttl)},
		},
		ReturnValues: types.ReturnValueUpdatedNew,
	})
	if err != nil {
		return true, err
	}

	countAttr, ok := result.Attributes["RequestCount"].(*types.AttributeValueMemberN)
	if !ok {
		return true, nil
	}

	var count int
	if _, err := fmt.Sscanf(countAttr.Value, "%d", &count); err != nil {
		return true, nil
	}

	return count <= rl.limit, nil
}
