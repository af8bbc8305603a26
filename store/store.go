package store

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/aws/aws-sdk-go-v2/aws"
	awshttp "github.com/aws/aws-sdk-go-v2/aws/transport/http"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/smithy-go"

	"github.com/jacentio/hello/greeting"
	"github.com/jacentio/hello/region"
)

// Placeholder credentials accepted by DynamoDB Local.
const (
	localAccessKey = "fakeKey"
	localSecretKey = "fakeSecret"
)

// PutItemAPI is the subset of the DynamoDB client used by Store.
type PutItemAPI interface {
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
}

var _ PutItemAPI = (*dynamodb.Client)(nil)

// Store writes hello events to DynamoDB.
type Store struct {
	client PutItemAPI
	config Config
	logger *slog.Logger
}

// New creates a Store around an existing client. A nil logger uses
// slog.Default().
func New(client PutItemAPI, config Config, logger *slog.Logger) *Store {
	config.validate()
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{
		client: client,
		config: config,
		logger: logger,
	}
}

// Open builds a DynamoDB client for loc and wraps it in a Store.
func Open(ctx context.Context, loc region.Location, config Config, logger *slog.Logger) (*Store, error) {
	client, err := NewClient(ctx, loc, logger)
	if err != nil {
		return nil, err
	}
	return New(client, config, logger), nil
}

// NewClient creates a DynamoDB client for loc. Local targets get placeholder
// credentials and a plain HTTP transport; well-known regions use the default
// credential chain.
func NewClient(ctx context.Context, loc region.Location, logger *slog.Logger) (*dynamodb.Client, error) {
	if logger == nil {
		logger = slog.Default()
	}
	switch l := loc.(type) {
	case region.Local:
		logger.Info("creating local connection",
			"location", l.Name(),
			"endpoint", l.Endpoint,
		)
		return dynamodb.NewFromConfig(localConfig(l)), nil

	case region.WellKnown:
		cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(l.Region))
		if err != nil {
			logger.Error("failed to load aws config",
				"region", l.Region,
				"error", err,
			)
			return nil, greeting.NewStoreError(greeting.CategoryUnknown, fmt.Sprintf("load aws config: %v", err))
		}
		return dynamodb.NewFromConfig(cfg), nil

	default:
		return nil, greeting.NewStoreError(greeting.CategoryUnknown, fmt.Sprintf("unsupported location %T", loc))
	}
}

// localConfig returns the SDK configuration for a DynamoDB Local endpoint.
func localConfig(l region.Local) aws.Config {
	return aws.Config{
		Region:       l.Name(),
		BaseEndpoint: aws.String(l.Endpoint),
		Credentials:  credentials.NewStaticCredentialsProvider(localAccessKey, localSecretKey, ""),
		HTTPClient:   awshttp.NewBuildableClient(),
	}
}

// Put writes the event, replacing any existing item with the same email.
// The event must already be validated.
func (s *Store) Put(ctx context.Context, e greeting.Event) (*dynamodb.PutItemOutput, error) {
	item, err := RecordFrom(e).Item()
	if err != nil {
		s.logger.Error("failed to marshal event",
			"event", e,
			"error", err,
		)
		return nil, greeting.NewStoreError(greeting.CategoryUnknown, fmt.Sprintf("marshal record: %v", err))
	}

	out, err := s.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(s.config.TableName),
		Item:      item,
	})
	if err != nil {
		return nil, s.mapPutError(e, err)
	}

	return out, nil
}

// mapPutError logs a failed write and converts it to a store error.
func (s *Store) mapPutError(e greeting.Event, err error) *greeting.Error {
	category := Classify(err)

	var (
		generic  *smithy.GenericAPIError
		deserErr *smithy.DeserializationError
	)
	switch {
	case errors.As(err, &deserErr):
		// The error response was not JSON; Snapshot holds the raw body.
		s.logger.Error("unknown error putting event",
			"event", e,
			"status", statusCode(err),
			"body", string(deserErr.Snapshot),
			"error", err,
		)
	case errors.As(err, &generic):
		// Unmodelled error: the code and message are all we could parse
		// out of the response body.
		s.logger.Error("unknown error putting event",
			"event", e,
			"status", statusCode(err),
			"code", generic.Code,
			"body", generic.Message,
		)
	case category == greeting.CategoryUnknown:
		s.logger.Error("unknown error putting event",
			"event", e,
			"status", statusCode(err),
			"error", err,
		)
	default:
		s.logger.Error("error putting event",
			"event", e,
			"category", category,
			"retryable", category.Retryable(),
			"error", err,
		)
	}

	return greeting.NewStoreError(category, describe(err))
}
