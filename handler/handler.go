// Package handler runs the hello pipeline for a single Lambda invocation:
// validate, resolve the target, store the event, and build the greeting.
package handler

import (
	"context"
	"errors"
	"log/slog"

	"github.com/aws/aws-lambda-go/lambda/messages"
	"github.com/aws/aws-lambda-go/lambdacontext"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/google/uuid"

	"github.com/jacentio/hello/greeting"
	"github.com/jacentio/hello/region"
	"github.com/jacentio/hello/store"
)

// Resolver picks the DynamoDB target for an invocation.
type Resolver interface {
	Resolve() region.Location
}

// Putter persists a validated event.
type Putter interface {
	Put(ctx context.Context, e greeting.Event) (*dynamodb.PutItemOutput, error)
}

// Opener builds a Putter for a location. It is called once per invocation.
type Opener func(ctx context.Context, loc region.Location) (Putter, error)

// StoreOpener opens a DynamoDB-backed store with cfg.
func StoreOpener(cfg store.Config, logger *slog.Logger) Opener {
	return func(ctx context.Context, loc region.Location) (Putter, error) {
		s, err := store.Open(ctx, loc, cfg, logger)
		if err != nil {
			return nil, err
		}
		return s, nil
	}
}

// Handler processes hello events.
type Handler struct {
	resolver Resolver
	open     Opener
	logger   *slog.Logger
}

// New creates a Handler. A nil logger uses slog.Default().
func New(resolver Resolver, open Opener, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{
		resolver: resolver,
		open:     open,
		logger:   logger,
	}
}

// Handle validates and stores the event and returns its greeting. Every
// error is a *greeting.Error.
func (h *Handler) Handle(ctx context.Context, e greeting.Event) (greeting.Output, error) {
	logger := h.logger.With("requestID", RequestID(ctx))

	valid, err := greeting.Validate(e)
	if err != nil {
		logger.Error("invalid event", "error", err)
		return greeting.Output{}, err
	}

	loc := h.resolver.Resolve()

	putter, err := h.open(ctx, loc)
	if err != nil {
		logger.Error("failed to open store",
			"location", loc.Name(),
			"error", err,
		)
		return greeting.Output{}, storeError(err)
	}

	if _, err := putter.Put(ctx, valid); err != nil {
		logger.Error("failed to store event",
			"location", loc.Name(),
			"error", err,
		)
		return greeting.Output{}, storeError(err)
	}

	logger.Info("stored event", "location", loc.Name())

	return greeting.NewOutput(valid), nil
}

// Invoke is the Lambda entry point. Errors are reported to the runtime with
// their greeting type, e.g. ValidationError or DatabaseError.
func (h *Handler) Invoke(ctx context.Context, e greeting.Event) (greeting.Output, error) {
	out, err := h.Handle(ctx, e)
	if err != nil {
		return greeting.Output{}, LambdaError(err)
	}
	return out, nil
}

// LambdaError converts err into the error shape the Lambda runtime reports
// verbatim.
func LambdaError(err error) messages.InvokeResponse_Error {
	var gErr *greeting.Error
	if errors.As(err, &gErr) {
		return messages.InvokeResponse_Error{
			Type:    gErr.Type(),
			Message: gErr.Error(),
		}
	}
	return messages.InvokeResponse_Error{
		Type:    greeting.TypeDatabase,
		Message: err.Error(),
	}
}

// RequestID returns the Lambda request id, or a fresh UUID outside Lambda.
func RequestID(ctx context.Context) string {
	if lc, ok := lambdacontext.FromContext(ctx); ok && lc.AwsRequestID != "" {
		return lc.AwsRequestID
	}
	return uuid.NewString()
}

// storeError makes sure only *greeting.Error leaves the handler.
func storeError(err error) error {
	var gErr *greeting.Error
	if errors.As(err, &gErr) {
		return gErr
	}
	return greeting.NewStoreError(greeting.CategoryUnknown, err.Error())
}
