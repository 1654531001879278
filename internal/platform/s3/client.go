package s3

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"

	"github.com/animal-insights/pipelinectl/internal/reconcile"
)

// API is the subset of the S3 service the client depends on.
type API interface {
	HeadBucket(ctx context.Context, params *s3.HeadBucketInput, optFns ...func(*s3.Options)) (*s3.HeadBucketOutput, error)
	ListBuckets(ctx context.Context, params *s3.ListBucketsInput, optFns ...func(*s3.Options)) (*s3.ListBucketsOutput, error)
	ListObjectVersions(ctx context.Context, params *s3.ListObjectVersionsInput, optFns ...func(*s3.Options)) (*s3.ListObjectVersionsOutput, error)
	DeleteObjects(ctx context.Context, params *s3.DeleteObjectsInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectsOutput, error)
}

var _ API = (*s3.Client)(nil)

// Probe outcomes for the bucket head-check.
var (
	// ErrBucketNotFound means the configured bucket does not exist.
	ErrBucketNotFound = errors.New("bucket does not exist")

	// ErrBucketForbidden means the credentials cannot access the bucket.
	ErrBucketForbidden = errors.New("access to bucket denied")
)

// Client wraps the S3 service for bucket checks and teardown.
type Client struct {
	s3 API
}

// NewClient creates a client using the default credential chain, as
// configured by `aws configure`.
func NewClient(ctx context.Context, region string) (*Client, error) {
	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}
	return &Client{s3: s3.NewFromConfig(cfg)}, nil
}

// NewClientFromAPI wraps an existing API implementation. Used by tests.
func NewClientFromAPI(api API) *Client {
	return &Client{s3: api}
}

// CheckBucket performs a head-check against the bucket. It returns
// nil when the bucket is accessible, ErrBucketNotFound or
// ErrBucketForbidden for the two misconfiguration cases, and the raw
// error otherwise (transient failures the caller may tolerate).
func (c *Client) CheckBucket(ctx context.Context, bucketName string) error {
	_, err := c.s3.HeadBucket(ctx, &s3.HeadBucketInput{
		Bucket: aws.String(bucketName),
	})
	if err == nil {
		return nil
	}
	if isNotFoundError(err) {
		return fmt.Errorf("%w: %s", ErrBucketNotFound, bucketName)
	}
	if isForbiddenError(err) {
		return fmt.Errorf("%w: %s", ErrBucketForbidden, bucketName)
	}
	return fmt.Errorf("failed to check bucket %s: %w", bucketName, err)
}

// Empty deletes every object version and delete marker in the bucket.
// The paginated listing is drained fully, then identifiers are deleted
// in batches no larger than the provider's bulk-delete limit. Returns
// the number of identifiers deleted.
//
// The bucket must be emptied before terraform destroy runs; the
// provider refuses to delete a non-empty bucket.
func (c *Client) Empty(ctx context.Context, bucketName string) (int, error) {
	keys, err := c.collectVersions(ctx, bucketName)
	if err != nil {
		return 0, err
	}

	deleted := 0
	for _, batch := range reconcile.Batch(keys, reconcile.MaxDeleteBatch) {
		objects := make([]types.ObjectIdentifier, 0, len(batch))
		for _, k := range batch {
			obj := types.ObjectIdentifier{Key: aws.String(k.Key)}
			if k.VersionID != "" {
				obj.VersionId = aws.String(k.VersionID)
			}
			objects = append(objects, obj)
		}

		_, err := c.s3.DeleteObjects(ctx, &s3.DeleteObjectsInput{
			Bucket: aws.String(bucketName),
			Delete: &types.Delete{Objects: objects},
		})
		if err != nil {
			return deleted, fmt.Errorf("failed to delete batch of %d objects from %s: %w", len(batch), bucketName, err)
		}
		deleted += len(batch)
	}

	return deleted, nil
}

// collectVersions drains the object-version listing for the bucket,
// returning every version id and delete-marker id.
func (c *Client) collectVersions(ctx context.Context, bucketName string) ([]reconcile.ObjectKey, error) {
	var keys []reconcile.ObjectKey
	input := &s3.ListObjectVersionsInput{Bucket: aws.String(bucketName)}

	for {
		page, err := c.s3.ListObjectVersions(ctx, input)
		if err != nil {
			return nil, fmt.Errorf("failed to list object versions in %s: %w", bucketName, err)
		}

		for _, v := range page.Versions {
			keys = append(keys, reconcile.ObjectKey{
				Key:       aws.ToString(v.Key),
				VersionID: aws.ToString(v.VersionId),
			})
		}
		for _, m := range page.DeleteMarkers {
			keys = append(keys, reconcile.ObjectKey{
				Key:       aws.ToString(m.Key),
				VersionID: aws.ToString(m.VersionId),
			})
		}

		if !aws.ToBool(page.IsTruncated) {
			return keys, nil
		}
		input.KeyMarker = page.NextKeyMarker
		input.VersionIdMarker = page.NextVersionIdMarker
	}
}

// ListBucketNames returns the names of all buckets in the account.
func (c *Client) ListBucketNames(ctx context.Context) ([]string, error) {
	result, err := c.s3.ListBuckets(ctx, &s3.ListBucketsInput{})
	if err != nil {
		return nil, fmt.Errorf("failed to list buckets: %w", err)
	}

	names := make([]string, 0, len(result.Buckets))
	for _, b := range result.Buckets {
		if b.Name != nil {
			names = append(names, *b.Name)
		}
	}
	return names, nil
}

// isNotFoundError checks if the error is a not found error.
func isNotFoundError(err error) bool {
	if err == nil {
		return false
	}

	// Typed S3 errors first
	var nsb *types.NoSuchBucket
	if errors.As(err, &nsb) {
		return true
	}

	var nf *types.NotFound
	if errors.As(err, &nf) {
		return true
	}

	// Fall back to API error code checking; HeadBucket errors often
	// surface only as a bare status code
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		code := apiErr.ErrorCode()
		return code == "NotFound" || code == "NoSuchBucket" || code == "404"
	}

	return false
}

// isForbiddenError checks if the error is an access-denied error.
func isForbiddenError(err error) bool {
	if err == nil {
		return false
	}

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		code := apiErr.ErrorCode()
		return code == "Forbidden" || code == "AccessDenied" || code == "403"
	}

	return false
}
