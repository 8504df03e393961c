package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	StoreDynamoDB = "dynamodb"
	StorePostgres = "postgres"
)

// Config holds the service configuration, read from the environment.
type Config struct {
	HTTPPort string

	StoreDriver       string
	AWSRegion         string
	DynamoDBEndpoint  string
	CasesTable        string
	TimeTrackingTable string
	DatabaseDSN       string

	DocumentsBucket string
	S3Endpoint      string
	DocumentURLTTL  time.Duration

	Webhook WebhookConfig
	Company CompanyConfig

	TimeTrackingMaxRetries int
}

// WebhookConfig is handed to the delivery client at construction.
type WebhookConfig struct {
	URL     string
	Timeout time.Duration
}

// CompanyConfig names the buying business on generated documents.
type CompanyConfig struct {
	Name    string
	Address string
	Phone   string
	Email   string
}

// Load reads the configuration from environment variables with defaults.
func Load() (*Config, error) {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("HTTP_PORT", "8080")
	v.SetDefault("STORE_DRIVER", StoreDynamoDB)
	v.SetDefault("AWS_REGION", "us-east-1")
	v.SetDefault("CASES_TABLE", "cases")
	v.SetDefault("TIME_TRACKING_TABLE", "time_tracking")
	v.SetDefault("DOCUMENT_URL_TTL_SECONDS", 3600)
	v.SetDefault("WEBHOOK_TIMEOUT_SECONDS", 15)
	v.SetDefault("TIME_TRACKING_MAX_RETRIES", 5)

	cfg := &Config{
		HTTPPort:          v.GetString("HTTP_PORT"),
		StoreDriver:       strings.ToLower(strings.TrimSpace(v.GetString("STORE_DRIVER"))),
		AWSRegion:         v.GetString("AWS_REGION"),
		DynamoDBEndpoint:  v.GetString("DYNAMODB_ENDPOINT"),
		CasesTable:        v.GetString("CASES_TABLE"),
		TimeTrackingTable: v.GetString("TIME_TRACKING_TABLE"),
		DatabaseDSN:       v.GetString("DATABASE_DSN"),
		DocumentsBucket:   v.GetString("DOCUMENTS_BUCKET"),
		S3Endpoint:        v.GetString("S3_ENDPOINT"),
		DocumentURLTTL:    time.Duration(v.GetInt("DOCUMENT_URL_TTL_SECONDS")) * time.Second,
		Webhook: WebhookConfig{
			URL:     v.GetString("WEBHOOK_URL"),
			Timeout: time.Duration(v.GetInt("WEBHOOK_TIMEOUT_SECONDS")) * time.Second,
		},
		Company: CompanyConfig{
			Name:    v.GetString("BUYER_COMPANY_NAME"),
			Address: v.GetString("BUYER_COMPANY_ADDRESS"),
			Phone:   v.GetString("BUYER_COMPANY_PHONE"),
			Email:   v.GetString("BUYER_COMPANY_EMAIL"),
		},
		TimeTrackingMaxRetries: v.GetInt("TIME_TRACKING_MAX_RETRIES"),
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks if required configuration is present
func (c *Config) Validate() error {
	switch c.StoreDriver {
	case StoreDynamoDB:
		if strings.TrimSpace(c.CasesTable) == "" {
			return fmt.Errorf("CASES_TABLE is required")
		}
		if strings.TrimSpace(c.TimeTrackingTable) == "" {
			return fmt.Errorf("TIME_TRACKING_TABLE is required")
		}
	case StorePostgres:
		if strings.TrimSpace(c.DatabaseDSN) == "" {
			return fmt.Errorf("DATABASE_DSN is required when STORE_DRIVER=postgres")
		}
	default:
		return fmt.Errorf("unknown STORE_DRIVER %q", c.StoreDriver)
	}
	if c.HTTPPort == "" {
		return fmt.Errorf("HTTP_PORT is required")
	}
	if c.DocumentURLTTL <= 0 {
		return fmt.Errorf("DOCUMENT_URL_TTL_SECONDS must be positive")
	}
	if c.Webhook.Timeout <= 0 {
		return fmt.Errorf("WEBHOOK_TIMEOUT_SECONDS must be positive")
	}
	if c.TimeTrackingMaxRetries <= 0 {
		return fmt.Errorf("TIME_TRACKING_MAX_RETRIES must be positive")
	}
	return nil
}
