package config

import (
	"fmt"
	"regexp"
	"strings"
)

// Naming conventions the tutorial expects. Violating these produces
// warnings, not errors: the underlying calls still work.
const (
	ExpectedBucketPrefix   = "animal-insights-"
	arnPrefix              = "arn:aws:iam::"
	snowflakeRoleFragment  = "snowflake-s3-role"
	sagemakerRoleFragment  = "sagemaker-execution-role"
	enabledStatusFragment  = "ENABLED"
)

// bucketNameRegex is the provider's bucket naming grammar: lowercase
// alphanumerics, dots, and hyphens, 3-63 characters.
var bucketNameRegex = regexp.MustCompile(`^[a-z0-9.-]{3,63}$`)

// Result separates hard failures from soft warnings. Errors mean the
// downstream tool calls will outright fail and block proceeding;
// warnings mean the tutorial's conventions are not followed but the
// calls will still function, so the operator may confirm and proceed.
type Result struct {
	Errors   []string
	Warnings []string
}

// OK reports whether the record has no hard failures.
func (r Result) OK() bool {
	return len(r.Errors) == 0
}

// Clean reports whether the record has no failures or warnings.
func (r Result) Clean() bool {
	return r.OK() && len(r.Warnings) == 0
}

// ValidBucketName checks a candidate against the provider's bucket
// naming grammar, including the ban on adjacent dot/hyphen sequences.
func ValidBucketName(name string) bool {
	if !bucketNameRegex.MatchString(name) {
		return false
	}
	return !strings.Contains(name, "..") &&
		!strings.Contains(name, ".-") &&
		!strings.Contains(name, "-.")
}

// Validate applies all checks to a record. No remote calls are made;
// this is pure string validation.
func Validate(r Record) Result {
	var result Result

	bucket := strings.TrimSpace(r.S3BucketName)
	switch {
	case bucket == "":
		result.Errors = append(result.Errors, "missing S3 bucket name")
	case !bucketNameRegex.MatchString(bucket):
		result.Errors = append(result.Errors, fmt.Sprintf("S3 bucket name %q contains invalid characters", bucket))
	case strings.Contains(bucket, "..") || strings.Contains(bucket, ".-") || strings.Contains(bucket, "-."):
		result.Errors = append(result.Errors, fmt.Sprintf("S3 bucket name %q has invalid character sequences", bucket))
	default:
		if !strings.HasPrefix(bucket, ExpectedBucketPrefix) {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("S3 bucket name %q doesn't follow expected pattern %q", bucket, ExpectedBucketPrefix+"*"))
		}
	}

	if strings.TrimSpace(r.AWSRegion) == "" {
		result.Errors = append(result.Errors, "missing AWS region")
	}

	snowflakeRole := strings.TrimSpace(r.SnowflakeRoleARN)
	if snowflakeRole != "" {
		if !strings.HasPrefix(snowflakeRole, arnPrefix) {
			result.Errors = append(result.Errors, "Snowflake role ARN format is invalid")
		} else if !strings.Contains(snowflakeRole, snowflakeRoleFragment) {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("Snowflake role ARN doesn't contain expected %q pattern", snowflakeRoleFragment))
		}
	}

	sagemakerRole := strings.TrimSpace(r.SageMakerRoleARN)
	if sagemakerRole != "" {
		if !strings.HasPrefix(sagemakerRole, arnPrefix) {
			result.Errors = append(result.Errors, "SageMaker role ARN format is invalid")
		} else if !strings.Contains(sagemakerRole, sagemakerRoleFragment) {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("SageMaker role ARN doesn't contain expected %q pattern", sagemakerRoleFragment))
		}
	}

	if snowflakeRole != "" && !strings.Contains(r.SnowflakeIntegrationStatus, enabledStatusFragment) {
		result.Warnings = append(result.Warnings, "Snowflake integration may not be fully configured")
	}

	return result
}
