package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidBucketName(t *testing.T) {
	t.Parallel()

	valid := []string{
		"abc",
		"animal-insights-prod",
		"animal-insights-prod-a1b2c3",
		"my.bucket.name",
		"a-b.c-d",
		"012345678901234567890123456789012345678901234567890123456789012", // 63 chars
	}
	for _, name := range valid {
		require.True(t, ValidBucketName(name), "expected %q to be valid", name)
	}

	invalid := []string{
		"",
		"ab",         // too short
		"Animal_Insights!",
		"UPPERCASE-bucket",
		"has spaces",
		"bad..dots",
		"bad.-mix",
		"bad-.mix",
		"under_score",
		"0123456789012345678901234567890123456789012345678901234567890123", // 64 chars
	}
	for _, name := range invalid {
		require.False(t, ValidBucketName(name), "expected %q to be invalid", name)
	}
}

func TestValidateCleanRecord(t *testing.T) {
	t.Parallel()

	// The happy-path tutorial scenario: conforming bucket, region set,
	// no role ARNs. Zero errors and zero warnings.
	r := Record{S3BucketName: "animal-insights-prod", AWSRegion: "us-east-1"}
	result := Validate(r)

	require.True(t, result.OK())
	require.True(t, result.Clean())
}

func TestValidateBadCharactersIsHardFailure(t *testing.T) {
	t.Parallel()

	r := Record{S3BucketName: "Animal_Insights!", AWSRegion: "us-east-1"}
	result := Validate(r)

	require.False(t, result.OK())
	require.Contains(t, result.Errors[0], "invalid characters")
}

func TestValidateMissingFields(t *testing.T) {
	t.Parallel()

	result := Validate(Record{})
	require.False(t, result.OK())
	require.Len(t, result.Errors, 2) // bucket and region
}

func TestValidateAdjacentSequences(t *testing.T) {
	t.Parallel()

	for _, name := range []string{"animal..prod", "animal.-prod", "animal-.prod"} {
		result := Validate(Record{S3BucketName: name, AWSRegion: "us-east-1"})
		require.False(t, result.OK(), "expected hard failure for %q", name)
	}
}

func TestValidateUnconventionalBucketWarns(t *testing.T) {
	t.Parallel()

	result := Validate(Record{S3BucketName: "my-data-bucket", AWSRegion: "us-east-1"})
	require.True(t, result.OK())
	require.Len(t, result.Warnings, 1)
}

func TestValidateRoleARNs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		record       Record
		wantErrors   int
		wantWarnings int
	}{
		{
			name: "bad snowflake prefix is hard",
			record: Record{
				S3BucketName:     "animal-insights-prod",
				AWSRegion:        "us-east-1",
				SnowflakeRoleARN: "iam::123456789012:role/snowflake-s3-role",
			},
			wantErrors: 1,
		},
		{
			name: "snowflake missing fragment is soft",
			record: Record{
				S3BucketName:     "animal-insights-prod",
				AWSRegion:        "us-east-1",
				SnowflakeRoleARN: "arn:aws:iam::123456789012:role/some-role",
			},
			// fragment warning plus the integration-status warning
			wantWarnings: 2,
		},
		{
			name: "conforming snowflake role with enabled status",
			record: Record{
				S3BucketName:               "animal-insights-prod",
				AWSRegion:                  "us-east-1",
				SnowflakeRoleARN:           "arn:aws:iam::123456789012:role/snowflake-s3-role",
				SnowflakeIntegrationStatus: "ENABLED",
			},
		},
		{
			name: "bad sagemaker prefix is hard",
			record: Record{
				S3BucketName:     "animal-insights-prod",
				AWSRegion:        "us-east-1",
				SageMakerRoleARN: "role/sagemaker-execution-role",
			},
			wantErrors: 1,
		},
		{
			name: "sagemaker missing fragment is soft",
			record: Record{
				S3BucketName:     "animal-insights-prod",
				AWSRegion:        "us-east-1",
				SageMakerRoleARN: "arn:aws:iam::123456789012:role/other-role",
			},
			wantWarnings: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			result := Validate(tt.record)
			require.Len(t, result.Errors, tt.wantErrors)
			require.Len(t, result.Warnings, tt.wantWarnings)
		})
	}
}

func TestValidateIntegrationStatusWarning(t *testing.T) {
	t.Parallel()

	// No snowflake role: status is not checked at all.
	result := Validate(Record{S3BucketName: "animal-insights-prod", AWSRegion: "us-east-1"})
	require.True(t, result.Clean())

	// Role set but status not enabled: warn.
	result = Validate(Record{
		S3BucketName:     "animal-insights-prod",
		AWSRegion:        "us-east-1",
		SnowflakeRoleARN: "arn:aws:iam::123456789012:role/snowflake-s3-role",
	})
	require.True(t, result.OK())
	require.Len(t, result.Warnings, 1)
}
