// Package sts performs the caller-identity check used to decide
// whether AWS credentials are usable at all.
package sts

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sts"
)

// API is the subset of the STS service the client depends on.
type API interface {
	GetCallerIdentity(ctx context.Context, params *sts.GetCallerIdentityInput, optFns ...func(*sts.Options)) (*sts.GetCallerIdentityOutput, error)
}

var _ API = (*sts.Client)(nil)

// Client wraps the STS identity check.
type Client struct {
	sts API
}

// NewClient creates a client using the default credential chain.
func NewClient(ctx context.Context, region string) (*Client, error) {
	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}
	return &Client{sts: sts.NewFromConfig(cfg)}, nil
}

// NewClientFromAPI wraps an existing API implementation. Used by tests.
func NewClientFromAPI(api API) *Client {
	return &Client{sts: api}
}

// Account returns the account id of the configured credentials. Any
// failure here means the credentials are not usable.
func (c *Client) Account(ctx context.Context) (string, error) {
	identity, err := c.sts.GetCallerIdentity(ctx, &sts.GetCallerIdentityInput{})
	if err != nil {
		return "", fmt.Errorf("credential check failed: %w", err)
	}
	return aws.ToString(identity.Account), nil
}
