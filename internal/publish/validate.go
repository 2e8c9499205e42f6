// internal/publish/validate.go
package publish

import (
	"fmt"
	"regexp"
	"strings"

	"sns-publish-action/internal/common/errors"
)

// topicARNPattern matches arn:aws:sns:<region>:<account-id>:<name>. The
// region is lowercase letters, digits and hyphens, the account id is all
// digits, and the name is any non-empty remainder (a .fifo suffix is part
// of the name).
var topicARNPattern = regexp.MustCompile(`^arn:aws:sns:[a-z0-9-]+:[0-9]+:.+$`)

func validateTopicARN(arn string) error {
	if !topicARNPattern.MatchString(arn) {
		return errors.NewInvalidTopicARNError(arn)
	}
	return nil
}

// validateMessageSize checks the UTF-8 byte length of the body, which is
// what SNS bills against; multi-byte characters count fully.
func validateMessageSize(message string) error {
	if size := len(message); size > MaxMessageBytes {
		return errors.NewMessageTooLongError(size, MaxMessageBytes)
	}
	return nil
}

// validateMessageStructure accepts an absent value or the literal "json".
// The body itself is not parsed here even in json mode; SNS rejects
// malformed platform JSON on the remote side.
func validateMessageStructure(structure string) error {
	if structure != "" && structure != MessageStructureJSON {
		return errors.NewInvalidMessageStructureError(structure)
	}
	return nil
}

// IsFIFOTopic reports whether the ARN denotes a FIFO topic.
func IsFIFOTopic(arn string) bool {
	return strings.HasSuffix(arn, FIFOTopicSuffix)
}

// validateFIFO enforces the group-id precondition for FIFO topics. A group
// id on a standard topic is not an error: it is returned as a warning and
// still carried in the request, which SNS ignores for standard topics.
// Whether a deduplication id can be honored depends on the topic's
// content-based dedup setting, which is unknown here, so it is not checked.
func validateFIFO(arn, groupID string) (string, error) {
	if IsFIFOTopic(arn) {
		if groupID == "" {
			return "", errors.NewMissingMessageGroupIDError(arn)
		}
		return "", nil
	}
	if groupID != "" {
		return fmt.Sprintf("message group id %q is ignored for non-FIFO topic %q", groupID, arn), nil
	}
	return "", nil
}

// validate runs the check functions in a fixed order, short-circuiting on
// the first failure, and collects warnings from the checks that passed.
func validate(cfg *MessageConfig) ([]string, error) {
	if err := validateTopicARN(cfg.TopicARN); err != nil {
		return nil, err
	}
	if err := validateMessageSize(cfg.Message); err != nil {
		return nil, err
	}
	if err := validateMessageStructure(cfg.MessageStructure); err != nil {
		return nil, err
	}

	var warnings []string
	warning, err := validateFIFO(cfg.TopicARN, cfg.MessageGroupID)
	if err != nil {
		return nil, err
	}
	if warning != "" {
		warnings = append(warnings, warning)
	}

	return warnings, nil
}
