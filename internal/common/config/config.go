// internal/common/config/config.go
package config

import (
	"fmt"
	"strings"
)

// Config is the main application configuration struct.
type Config struct {
	Input   InputConfig   `mapstructure:"input"`
	AWS     AWSConfig     `mapstructure:"aws"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// InputConfig holds the named string inputs the CI step is invoked with.
// Every field maps to an INPUT_* environment variable following the
// GitHub Actions convention (input "topic-arn" -> INPUT_TOPIC_ARN).
type InputConfig struct {
	TopicARN               string `mapstructure:"topic_arn"`
	Message                string `mapstructure:"message"`
	Subject                string `mapstructure:"subject"`
	MessageAttributes      string `mapstructure:"message_attributes"`
	MessageGroupID         string `mapstructure:"message_group_id"`
	MessageDeduplicationID string `mapstructure:"message_deduplication_id"`
	MessageStructure       string `mapstructure:"message_structure"`
}

type AWSConfig struct {
	Region string `mapstructure:"region"`
}

type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Validate checks that the required inputs are present.
func (c *Config) Validate() error {
	var missing []string
	if c.Input.TopicARN == "" {
		missing = append(missing, "topic-arn")
	}
	if c.Input.Message == "" {
		missing = append(missing, "message")
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required input(s): %s", strings.Join(missing, ", "))
	}
	return nil
}
