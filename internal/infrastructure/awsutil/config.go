// Package awsutil loads the AWS configuration shared by the DynamoDB and S3 clients.
package awsutil

import (
	"context"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsCfg "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
)

// Load returns the AWS configuration for region. When local is true (a local
// endpoint such as DynamoDB Local or LocalStack is in use) static credentials
// are used, since the SDK requires some even if the emulator ignores them.
//
// Supported env vars when local:
//   - AWS_ACCESS_KEY_ID (default: local)
//   - AWS_SECRET_ACCESS_KEY (default: local)
func Load(ctx context.Context, region string, local bool) (aws.Config, error) {
	if region == "" {
		region = "us-east-1"
	}
	opts := []func(*awsCfg.LoadOptions) error{awsCfg.WithRegion(region)}
	if local {
		creds := credentials.NewStaticCredentialsProvider(
			getenvDefault("AWS_ACCESS_KEY_ID", "local"),
			getenvDefault("AWS_SECRET_ACCESS_KEY", "local"),
			"",
		)
		opts = append(opts, awsCfg.WithCredentialsProvider(creds))
	}
	return awsCfg.LoadDefaultConfig(ctx, opts...)
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
