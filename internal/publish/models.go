// internal/publish/models.go
package publish

// MessageConfig carries the untyped string inputs of one invocation.
// All fields except TopicARN and Message are optional; an empty string
// means the caller did not supply the input.
type MessageConfig struct {
	TopicARN               string
	Message                string
	Subject                string
	MessageAttributes      string // raw JSON-encoded attribute map, parsed by parseMessageAttributes
	MessageGroupID         string
	MessageDeduplicationID string
	MessageStructure       string
}

// Result is the outcome of a successful publish.
type Result struct {
	MessageID      string
	SequenceNumber string // FIFO topics only
	Warnings       []string
}

// Maximum sizes enforced before any network call. Both limits mirror the
// SNS Publish API.
const (
	MaxMessageBytes      = 262144
	MaxMessageAttributes = 10
)

// Attribute data types accepted by SNS.
const (
	DataTypeString      = "String"
	DataTypeNumber      = "Number"
	DataTypeBinary      = "Binary"
	DataTypeStringArray = "String.Array"
)

// FIFOTopicSuffix marks a FIFO topic; the suffix is part of the topic name.
const FIFOTopicSuffix = ".fifo"

// MessageStructureJSON is the only recognized message-structure value.
const MessageStructureJSON = "json"
