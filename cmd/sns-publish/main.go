// cmd/sns-publish/main.go
package main

import (
	"context"
	"os"

	"go.uber.org/zap"

	"sns-publish-action/internal/ci"
	awsclient "sns-publish-action/internal/common/aws"
	"sns-publish-action/internal/common/config"
	"sns-publish-action/internal/common/logger"
	"sns-publish-action/internal/publish"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		ci.Error(err.Error())
		os.Exit(1)
	}

	zapLogger := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	defer zapLogger.Sync()
	log := logger.NewZapAdapter(zapLogger)

	ctx := context.Background()

	client, err := awsclient.NewSNSClient(ctx, cfg.AWS.Region)
	if err != nil {
		zapLogger.Error("failed to build SNS client", zap.Error(err))
		ci.Error(err.Error())
		os.Exit(1)
	}

	publisher := publish.NewPublisher(client, log)
	result, err := publisher.Publish(ctx, &publish.MessageConfig{
		TopicARN:               cfg.Input.TopicARN,
		Message:                cfg.Input.Message,
		Subject:                cfg.Input.Subject,
		MessageAttributes:      cfg.Input.MessageAttributes,
		MessageGroupID:         cfg.Input.MessageGroupID,
		MessageDeduplicationID: cfg.Input.MessageDeduplicationID,
		MessageStructure:       cfg.Input.MessageStructure,
	})
	if err != nil {
		ci.Error(err.Error())
		os.Exit(1)
	}

	for _, warning := range result.Warnings {
		ci.Warning(warning)
	}

	if err := ci.SetOutput("message-id", result.MessageID); err != nil {
		zapLogger.Warn("failed to set output", zap.Error(err))
	}
	if result.SequenceNumber != "" {
		if err := ci.SetOutput("sequence-number", result.SequenceNumber); err != nil {
			zapLogger.Warn("failed to set output", zap.Error(err))
		}
	}
}
