// Package sagemaker provides a client for the managed ML hosting
// service's endpoint, endpoint-config, and model resources.
package sagemaker

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sagemaker"

	"github.com/animal-insights/pipelinectl/internal/reconcile"
)

// API is the subset of the SageMaker service the client depends on.
type API interface {
	ListEndpoints(ctx context.Context, params *sagemaker.ListEndpointsInput, optFns ...func(*sagemaker.Options)) (*sagemaker.ListEndpointsOutput, error)
	DeleteEndpoint(ctx context.Context, params *sagemaker.DeleteEndpointInput, optFns ...func(*sagemaker.Options)) (*sagemaker.DeleteEndpointOutput, error)
	ListEndpointConfigs(ctx context.Context, params *sagemaker.ListEndpointConfigsInput, optFns ...func(*sagemaker.Options)) (*sagemaker.ListEndpointConfigsOutput, error)
	DeleteEndpointConfig(ctx context.Context, params *sagemaker.DeleteEndpointConfigInput, optFns ...func(*sagemaker.Options)) (*sagemaker.DeleteEndpointConfigOutput, error)
	ListModels(ctx context.Context, params *sagemaker.ListModelsInput, optFns ...func(*sagemaker.Options)) (*sagemaker.ListModelsOutput, error)
	DeleteModel(ctx context.Context, params *sagemaker.DeleteModelInput, optFns ...func(*sagemaker.Options)) (*sagemaker.DeleteModelOutput, error)
}

var _ API = (*sagemaker.Client)(nil)

// Client wraps the SageMaker service for listing and deleting hosting
// resources.
type Client struct {
	sm API
}

// NewClient creates a client using the default credential chain.
func NewClient(ctx context.Context, region string) (*Client, error) {
	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}
	return &Client{sm: sagemaker.NewFromConfig(cfg)}, nil
}

// NewClientFromAPI wraps an existing API implementation. Used by tests.
func NewClientFromAPI(api API) *Client {
	return &Client{sm: api}
}

// ListHostingResources returns all endpoints, endpoint configs, and
// models in the account, unfiltered. The ownership filter is applied
// by the caller.
func (c *Client) ListHostingResources(ctx context.Context) ([]reconcile.Resource, error) {
	var resources []reconcile.Resource

	endpoints, err := c.sm.ListEndpoints(ctx, &sagemaker.ListEndpointsInput{})
	if err != nil {
		return nil, fmt.Errorf("failed to list endpoints: %w", err)
	}
	for _, ep := range endpoints.Endpoints {
		resources = append(resources, reconcile.Resource{
			Kind:   reconcile.KindEndpoint,
			Name:   aws.ToString(ep.EndpointName),
			Status: string(ep.EndpointStatus),
		})
	}

	configs, err := c.sm.ListEndpointConfigs(ctx, &sagemaker.ListEndpointConfigsInput{})
	if err != nil {
		return nil, fmt.Errorf("failed to list endpoint configs: %w", err)
	}
	for _, cfg := range configs.EndpointConfigs {
		resources = append(resources, reconcile.Resource{
			Kind: reconcile.KindEndpointConfig,
			Name: aws.ToString(cfg.EndpointConfigName),
		})
	}

	models, err := c.sm.ListModels(ctx, &sagemaker.ListModelsInput{})
	if err != nil {
		return nil, fmt.Errorf("failed to list models: %w", err)
	}
	for _, m := range models.Models {
		resources = append(resources, reconcile.Resource{
			Kind: reconcile.KindModel,
			Name: aws.ToString(m.ModelName),
		})
	}

	return resources, nil
}

// DeleteResource deletes a single hosting resource by kind and name.
// Implements reconcile.Deleter.
func (c *Client) DeleteResource(ctx context.Context, r reconcile.Resource) error {
	switch r.Kind {
	case reconcile.KindEndpoint:
		_, err := c.sm.DeleteEndpoint(ctx, &sagemaker.DeleteEndpointInput{
			EndpointName: aws.String(r.Name),
		})
		if err != nil {
			return fmt.Errorf("failed to delete endpoint %s: %w", r.Name, err)
		}
	case reconcile.KindEndpointConfig:
		_, err := c.sm.DeleteEndpointConfig(ctx, &sagemaker.DeleteEndpointConfigInput{
			EndpointConfigName: aws.String(r.Name),
		})
		if err != nil {
			return fmt.Errorf("failed to delete endpoint config %s: %w", r.Name, err)
		}
	case reconcile.KindModel:
		_, err := c.sm.DeleteModel(ctx, &sagemaker.DeleteModelInput{
			ModelName: aws.String(r.Name),
		})
		if err != nil {
			return fmt.Errorf("failed to delete model %s: %w", r.Name, err)
		}
	default:
		return fmt.Errorf("unknown resource kind %q", r.Kind)
	}
	return nil
}
