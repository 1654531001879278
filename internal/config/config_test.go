package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestFromOutputs(t *testing.T) {
	t.Parallel()

	outputs := map[string]any{
		"s3_bucket_name":               "animal-insights-prod-a1b2c3",
		"aws_region":                   "us-east-1",
		"snowflake_role_arn":           "arn:aws:iam::123456789012:role/snowflake-s3-role",
		"sagemaker_role_arn":           "arn:aws:iam::123456789012:role/sagemaker-execution-role",
		"snowflake_integration_status": "ENABLED",
		"vpc_id":                       "vpc-0abc", // unknown outputs are ignored
		"instance_count":               3,
	}

	r := FromOutputs(outputs)
	require.Equal(t, "animal-insights-prod-a1b2c3", r.S3BucketName)
	require.Equal(t, "us-east-1", r.AWSRegion)
	require.Equal(t, "ENABLED", r.SnowflakeIntegrationStatus)
	require.Empty(t, r.CreatedAt)
}

func TestWriteHasExactKeys(t *testing.T) {
	t.Parallel()

	r := Record{S3BucketName: "animal-insights-prod", AWSRegion: "us-east-1"}
	r.Stamp(time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC))

	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, r.Write(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	// The file must contain exactly the five record keys plus the
	// three metadata keys, two-space indented.
	var raw map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))
	require.Len(t, raw, 8)
	for _, key := range []string{
		"s3_bucket_name", "aws_region", "snowflake_role_arn",
		"sagemaker_role_arn", "snowflake_integration_status",
		"created_at", "version", "generator",
	} {
		require.Contains(t, raw, key)
	}
	require.Contains(t, string(data), "  \"s3_bucket_name\"")
	require.Equal(t, "1.0", raw["version"])
	require.Equal(t, GeneratorName, raw["generator"])
	require.Equal(t, "2026-03-14T09:26:53Z", raw["created_at"])
}

func TestWriteOverwritesOnRegeneration(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.json")

	first := Record{S3BucketName: "animal-insights-old", AWSRegion: "us-east-1"}
	first.Stamp(time.Now())
	require.NoError(t, first.Write(path))

	second := Record{S3BucketName: "animal-insights-new", AWSRegion: "us-west-2"}
	second.Stamp(time.Now())
	require.NoError(t, second.Write(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "animal-insights-new", loaded.S3BucketName)
	require.Equal(t, "us-west-2", loaded.AWSRegion)
}

func TestLoadMissingFile(t *testing.T) {
	t.Parallel()

	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
}
