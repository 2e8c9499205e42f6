// Package errors provides standardized error handling for the publish action.
package errors

import (
	stderrors "errors"
	"fmt"
	"time"

	"github.com/aws/smithy-go"
)

// ErrorCode represents standardized internal error codes.
type ErrorCode string

const (
	ErrCodeInvalidTopicARN          ErrorCode = "INVALID_TOPIC_ARN"
	ErrCodeMessageTooLong           ErrorCode = "MESSAGE_TOO_LONG"
	ErrCodeInvalidMessageStructure  ErrorCode = "INVALID_MESSAGE_STRUCTURE"
	ErrCodeMissingMessageGroupID    ErrorCode = "MISSING_MESSAGE_GROUP_ID"
	ErrCodeInvalidMessageAttributes ErrorCode = "INVALID_MESSAGE_ATTRIBUTES"
	ErrCodePublishFailed            ErrorCode = "PUBLISH_FAILED"
)

// StandardError represents a structured application error.
type StandardError struct {
	Code      ErrorCode `json:"code"`
	Message   string    `json:"message"`
	Details   string    `json:"details,omitempty"`
	Retryable bool      `json:"retryable"`
	Timestamp time.Time `json:"timestamp"`
}

func (e *StandardError) Error() string {
	return e.Message
}

// NewInvalidTopicARNError creates a non-retryable ARN format error.
func NewInvalidTopicARNError(arn string) *StandardError {
	return &StandardError{
		Code:      ErrCodeInvalidTopicARN,
		Message:   fmt.Sprintf("invalid topic ARN %q: expected format arn:aws:sns:<region>:<account-id>:<topic-name>", arn),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewMessageTooLongError creates a non-retryable size-limit error.
func NewMessageTooLongError(actual, max int) *StandardError {
	return &StandardError{
		Code:      ErrCodeMessageTooLong,
		Message:   fmt.Sprintf("message is %d bytes, which exceeds the maximum of %d bytes", actual, max),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewInvalidMessageStructureError creates a non-retryable structure-mode error.
func NewInvalidMessageStructureError(value string) *StandardError {
	return &StandardError{
		Code:      ErrCodeInvalidMessageStructure,
		Message:   fmt.Sprintf("invalid message structure %q: the only supported value is \"json\"", value),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewMissingMessageGroupIDError creates a non-retryable FIFO precondition error.
func NewMissingMessageGroupIDError(arn string) *StandardError {
	return &StandardError{
		Code:      ErrCodeMissingMessageGroupID,
		Message:   fmt.Sprintf("message group id is required for FIFO topic %q", arn),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewInvalidMessageAttributesError wraps any attribute parse or schema failure.
func NewInvalidMessageAttributesError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeInvalidMessageAttributes,
		Message:   fmt.Sprintf("invalid message attributes: %v", err),
		Details:   err.Error(),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewPublishFailedError converts an SNS call failure into a StandardError.
// For AWS API errors the remote error code and message are surfaced; transport
// errors keep their own text.
func NewPublishFailedError(err error) *StandardError {
	message := fmt.Sprintf("publish failed: %v", err)
	retryable := true

	var apiErr smithy.APIError
	if stderrors.As(err, &apiErr) {
		message = fmt.Sprintf("publish failed: %s: %s", apiErr.ErrorCode(), apiErr.ErrorMessage())
		retryable = apiErr.ErrorFault() == smithy.FaultServer
	}

	return &StandardError{
		Code:      ErrCodePublishFailed,
		Message:   message,
		Details:   err.Error(),
		Retryable: retryable,
		Timestamp: time.Now().UTC(),
	}
}

// CodeOf returns the ErrorCode carried by err, or empty if err is not a StandardError.
func CodeOf(err error) ErrorCode {
	var stdErr *StandardError
	if stderrors.As(err, &stdErr) {
		return stdErr.Code
	}
	return ""
}
