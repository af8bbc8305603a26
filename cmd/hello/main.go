// Command hello is the Lambda function that stores hello events in DynamoDB
// and answers with a greeting.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/caarlos0/env/v11"

	"github.com/jacentio/hello/handler"
	"github.com/jacentio/hello/region"
	"github.com/jacentio/hello/store"
)

type appConfig struct {
	LogLevel slog.Level `env:"LOG_LEVEL" envDefault:"info"`
}

func main() {
	h, err := newHandler()
	if err != nil {
		slog.Error("failed to initialize", "error", err)
		os.Exit(1)
	}
	lambda.Start(h.Invoke)
}

// newHandler reads all configuration once and wires the pipeline.
func newHandler() (*handler.Handler, error) {
	var app appConfig
	if err := env.Parse(&app); err != nil {
		return nil, fmt.Errorf("parse app env: %w", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: app.LogLevel}))
	slog.SetDefault(logger)

	regionCfg, err := region.LoadConfig()
	if err != nil {
		return nil, err
	}
	storeCfg, err := store.LoadConfig()
	if err != nil {
		return nil, err
	}

	logger.Info("hello function initialized",
		"region", regionCfg.Region,
		"table", storeCfg.TableName,
	)

	return handler.New(
		region.NewResolver(regionCfg, logger),
		handler.StoreOpener(storeCfg, logger),
		logger,
	), nil
}
