// internal/publish/publisher.go
package publish

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/google/uuid"

	awsclient "sns-publish-action/internal/common/aws"
	"sns-publish-action/internal/common/errors"
	"sns-publish-action/internal/common/logger"
)

// Publisher validates a MessageConfig, assembles the SNS request and sends
// it through the injected client. The client is an interface so tests run
// against a fake with no network or credential dependency.
type Publisher struct {
	client awsclient.SNSAPI
	logger logger.Logger
}

func NewPublisher(client awsclient.SNSAPI, log logger.Logger) *Publisher {
	return &Publisher{
		client: client,
		logger: log.WithFields(map[string]interface{}{"invocationId": uuid.New().String()}),
	}
}

// Publish runs every validation pass, and only if all of them succeed
// issues the single SNS Publish call. Validation failures and remote
// failures both come back as coded errors; no failure escapes as a panic.
func (p *Publisher) Publish(ctx context.Context, cfg *MessageConfig) (*Result, error) {
	log := p.logger.WithFields(map[string]interface{}{"topicArn": cfg.TopicARN})

	warnings, err := validate(cfg)
	if err != nil {
		log.WithError(err).Error("validation failed", nil)
		return nil, err
	}
	for _, warning := range warnings {
		log.Warn(warning, nil)
	}

	input := &sns.PublishInput{
		TopicArn: aws.String(cfg.TopicARN),
		Message:  aws.String(cfg.Message),
	}
	if cfg.Subject != "" {
		input.Subject = aws.String(cfg.Subject)
	}
	if cfg.MessageStructure != "" {
		input.MessageStructure = aws.String(cfg.MessageStructure)
	}
	if cfg.MessageGroupID != "" {
		input.MessageGroupId = aws.String(cfg.MessageGroupID)
	}
	if cfg.MessageDeduplicationID != "" {
		input.MessageDeduplicationId = aws.String(cfg.MessageDeduplicationID)
	}
	if cfg.MessageAttributes != "" {
		attributes, err := parseMessageAttributes(cfg.MessageAttributes)
		if err != nil {
			stdErr := errors.NewInvalidMessageAttributesError(err)
			log.WithError(stdErr).Error("attribute parsing failed", nil)
			return nil, stdErr
		}
		input.MessageAttributes = attributes
	}

	log.Info("publishing message", map[string]interface{}{
		"messageBytes": len(cfg.Message),
		"fifo":         IsFIFOTopic(cfg.TopicARN),
		"attributes":   len(input.MessageAttributes),
	})

	output, err := p.client.Publish(ctx, input)
	if err != nil {
		stdErr := errors.NewPublishFailedError(err)
		log.WithError(stdErr).Error("publish call failed", nil)
		return nil, stdErr
	}

	result := &Result{Warnings: warnings}
	if output.MessageId != nil {
		result.MessageID = *output.MessageId
	}
	if output.SequenceNumber != nil {
		result.SequenceNumber = *output.SequenceNumber
	}

	log.Info("message published", map[string]interface{}{
		"messageId":      result.MessageID,
		"sequenceNumber": result.SequenceNumber,
	})

	return result, nil
}
