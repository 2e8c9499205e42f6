// internal/common/errors/errors_test.go
package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/aws/smithy-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPublishFailedError_APIError(t *testing.T) {
	apiErr := &smithy.GenericAPIError{
		Code:    "InvalidParameter",
		Message: "Invalid parameter: Message Structure",
		Fault:   smithy.FaultClient,
	}

	err := NewPublishFailedError(apiErr)

	assert.Equal(t, ErrCodePublishFailed, err.Code)
	assert.Contains(t, err.Message, "InvalidParameter")
	assert.Contains(t, err.Message, "Message Structure")
	assert.False(t, err.Retryable)
}

func TestNewPublishFailedError_WrappedAPIError(t *testing.T) {
	apiErr := &smithy.GenericAPIError{Code: "InternalError", Message: "service unavailable", Fault: smithy.FaultServer}
	wrapped := fmt.Errorf("operation error SNS: Publish: %w", apiErr)

	err := NewPublishFailedError(wrapped)

	assert.Contains(t, err.Message, "InternalError")
	assert.True(t, err.Retryable)
}

func TestNewPublishFailedError_TransportError(t *testing.T) {
	err := NewPublishFailedError(stderrors.New("dial tcp: i/o timeout"))

	assert.Contains(t, err.Message, "i/o timeout")
	assert.True(t, err.Retryable)
}

func TestCodeOf(t *testing.T) {
	err := NewInvalidTopicARNError("bogus")
	require.Error(t, err)

	assert.Equal(t, ErrCodeInvalidTopicARN, CodeOf(err))
	assert.Equal(t, ErrCodeInvalidTopicARN, CodeOf(fmt.Errorf("wrapped: %w", err)))
	assert.Equal(t, ErrorCode(""), CodeOf(stderrors.New("plain")))
}

func TestConstructorMessages(t *testing.T) {
	arn := NewInvalidTopicARNError("sns:us-east-1:123:x")
	assert.Contains(t, arn.Error(), "sns:us-east-1:123:x")
	assert.Contains(t, arn.Error(), "arn:aws:sns:<region>:<account-id>:<topic-name>")

	size := NewMessageTooLongError(262145, 262144)
	assert.Contains(t, size.Error(), "262145")
	assert.Contains(t, size.Error(), "262144")

	structure := NewInvalidMessageStructureError("xml")
	assert.Contains(t, structure.Error(), `"xml"`)

	group := NewMissingMessageGroupIDError("arn:aws:sns:us-east-1:123456789012:t.fifo")
	assert.Contains(t, group.Error(), "t.fifo")
	assert.Contains(t, group.Error(), "message group id")
}
