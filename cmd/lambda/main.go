// Command lambda serves the items API as an AWS Lambda function behind
// API Gateway (HTTP API or REST API proxy integration).
package main

import (
	"context"
	"os"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/rs/zerolog/log"

	"github.com/tbourn/go-items-api/internal/config"
	"github.com/tbourn/go-items-api/internal/lambdaapi"
	"github.com/tbourn/go-items-api/internal/observability"
	"github.com/tbourn/go-items-api/internal/services"
	"github.com/tbourn/go-items-api/internal/sysutil"
)

func main() {
	cfg := config.MustLoad()
	// Lambda ships stdout to CloudWatch.
	sysutil.SetupLogger(os.Stdout, cfg.LogLevel, cfg.LogPretty, cfg.OTEL.ServiceName)

	pipeline, err := services.NewPipelineFromConfig(cfg.Fault)
	if err != nil {
		log.Fatal().Err(err).Msg("pipeline setup failed")
	}

	version := sysutil.FirstNonEmpty(os.Getenv("AWS_LAMBDA_FUNCTION_VERSION"), os.Getenv("APP_VERSION"), "dev")
	shutdownOTel, err := observability.SetupOTel(context.Background(), cfg.OTEL, version)
	if err != nil {
		log.Fatal().Err(err).Msg("otel setup failed")
	}

	h := lambdaapi.New(pipeline)
	lambda.StartWithOptions(h.HandleEvent,
		lambda.WithEnableSIGTERM(func() {
			_ = shutdownOTel(context.Background())
		}),
	)
}
