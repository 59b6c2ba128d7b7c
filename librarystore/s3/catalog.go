package s3

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// Catalog tracks published library versions in DynamoDB. S3 alone lacks the
// atomic compare-and-swap needed for multiple publishers; a conditional
// write on (library, version) guarantees each version is published once and
// the latest pointer never moves backwards.
//
// Table schema:
//   - Partition key: library (string) - the library name
//   - Sort key: version (number) - monotonically increasing version
//
// Create table with:
//
//	aws dynamodb create-table \
//	  --table-name diffindex-libraries \
//	  --attribute-definitions AttributeName=library,AttributeType=S AttributeName=version,AttributeType=N \
//	  --key-schema AttributeName=library,KeyType=HASH AttributeName=version,KeyType=RANGE \
//	  --billing-mode PAY_PER_REQUEST
type Catalog struct {
	client    DDBClient
	tableName string
}

// DDBClient is the interface for DynamoDB operations.
type DDBClient interface {
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
}

// ErrConcurrentPublish is returned when another publisher claimed the same
// version first.
var ErrConcurrentPublish = errors.New("concurrent publish detected")

// ErrNoVersions is returned when a library has no published versions.
var ErrNoVersions = errors.New("no published versions")

// NewCatalog creates a catalog on the given DynamoDB table.
func NewCatalog(client DDBClient, tableName string) *Catalog {
	return &Catalog{
		client:    client,
		tableName: tableName,
	}
}

// Publish registers objectKey as the next version of the named library and
// returns the assigned version. The conditional write fails with
// ErrConcurrentPublish if another publisher assigned the version first.
func (c *Catalog) Publish(ctx context.Context, libraryName, objectKey string) (uint64, error) {
	current, _, err := c.latest(ctx, libraryName)
	if err != nil && !errors.Is(err, ErrNoVersions) {
		return 0, err
	}

	newVersion := current + 1
	_, err = c.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(c.tableName),
		Item: map[string]types.AttributeValue{
			"library":    &types.AttributeValueMemberS{Value: libraryName},
			"version":    &types.AttributeValueMemberN{Value: fmt.Sprintf("%d", newVersion)},
			"object_key": &types.AttributeValueMemberS{Value: objectKey},
		},
		ConditionExpression: aws.String("attribute_not_exists(version)"),
	})
	if err != nil {
		var ccf *types.ConditionalCheckFailedException
		if errors.As(err, &ccf) {
			return 0, ErrConcurrentPublish
		}
		return 0, err
	}

	return newVersion, nil
}

// Current returns the object key of the latest published version.
func (c *Catalog) Current(ctx context.Context, libraryName string) (string, error) {
	_, objectKey, err := c.latest(ctx, libraryName)
	if err != nil {
		return "", err
	}
	return objectKey, nil
}

// latest queries DynamoDB for the highest committed version.
func (c *Catalog) latest(ctx context.Context, libraryName string) (uint64, string, error) {
	resp, err := c.client.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(c.tableName),
		KeyConditionExpression: aws.String("library = :lib"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":lib": &types.AttributeValueMemberS{Value: libraryName},
		},
		ScanIndexForward: aws.Bool(false), // Descending order
		Limit:            aws.Int32(1),
	})
	if err != nil {
		return 0, "", fmt.Errorf("failed to query DynamoDB: %w", err)
	}

	if len(resp.Items) == 0 {
		return 0, "", ErrNoVersions
	}

	item := resp.Items[0]
	versionAttr, ok := item["version"].(*types.AttributeValueMemberN)
	if !ok {
		return 0, "", errors.New("invalid version attribute in DynamoDB")
	}
	keyAttr, ok := item["object_key"].(*types.AttributeValueMemberS)
	if !ok {
		return 0, "", errors.New("invalid object_key attribute in DynamoDB")
	}

	var version uint64
	if _, err := fmt.Sscanf(versionAttr.Value, "%d", &version); err != nil {
		return 0, "", fmt.Errorf("failed to parse version: %w", err)
	}

	return version, keyAttr.Value, nil
}
