// internal/common/config/loader.go
package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Load reads the action configuration from the environment.
//
// CI runners supply step inputs as INPUT_<UPPER_SNAKE> environment variables;
// a local .env file is honored too so the action can be exercised outside a
// runner. AWS credentials and region stay ambient (shared config chain), with
// an optional aws-region input override.
func Load() (*Config, error) {
	loadEnvFile()

	v := viper.New()
	v.SetEnvPrefix("INPUT")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	cfg := &Config{
		Input: InputConfig{
			TopicARN:               v.GetString("topic-arn"),
			Message:                v.GetString("message"),
			Subject:                v.GetString("subject"),
			MessageAttributes:      v.GetString("message-attributes"),
			MessageGroupID:         v.GetString("message-group-id"),
			MessageDeduplicationID: v.GetString("message-deduplication-id"),
			MessageStructure:       v.GetString("message-structure"),
		},
		AWS: AWSConfig{
			Region: v.GetString("aws-region"),
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
	}

	if cfg.AWS.Region == "" {
		cfg.AWS.Region = os.Getenv("AWS_REGION")
	}
	// RUNNER_DEBUG=1 is how CI runners ask steps for verbose output.
	if os.Getenv("RUNNER_DEBUG") == "1" {
		cfg.Logging.Level = "debug"
	}
	if format := os.Getenv("LOG_FORMAT"); format != "" {
		cfg.Logging.Format = format
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// loadEnvFile probes the usual locations so the action works when run from
// the repo root or from a package directory during tests.
func loadEnvFile() {
	possiblePaths := []string{
		".env",
		"../.env",
		"../../.env",
		"../../../.env",
	}

	for _, path := range possiblePaths {
		if _, err := os.Stat(path); err == nil {
			_ = godotenv.Load(path)
			return
		}
	}
}
