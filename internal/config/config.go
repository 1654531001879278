// Package config defines the pipeline configuration record consumed
// by the downstream notebooks, and its validation rules.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// SchemaVersion is the literal version written to every record.
const SchemaVersion = "1.0"

// GeneratorName identifies this tool in generated records.
const GeneratorName = "pipelinectl"

// Record is the flat configuration written to config.json. It is
// regenerated in full on every run and read-only for the notebooks;
// teardown never deletes it.
type Record struct {
	S3BucketName               string `json:"s3_bucket_name"`
	AWSRegion                  string `json:"aws_region"`
	SnowflakeRoleARN           string `json:"snowflake_role_arn"`
	SageMakerRoleARN           string `json:"sagemaker_role_arn"`
	SnowflakeIntegrationStatus string `json:"snowflake_integration_status"`

	CreatedAt string `json:"created_at"`
	Version   string `json:"version"`
	Generator string `json:"generator"`
}

// FromOutputs builds a record from flattened terraform outputs,
// ignoring outputs it does not know about.
func FromOutputs(outputs map[string]any) Record {
	str := func(name string) string {
		if s, ok := outputs[name].(string); ok {
			return s
		}
		return ""
	}
	return Record{
		S3BucketName:               str("s3_bucket_name"),
		AWSRegion:                  str("aws_region"),
		SnowflakeRoleARN:           str("snowflake_role_arn"),
		SageMakerRoleARN:           str("sagemaker_role_arn"),
		SnowflakeIntegrationStatus: str("snowflake_integration_status"),
	}
}

// Stamp fills the generation metadata.
func (r *Record) Stamp(now time.Time) {
	r.CreatedAt = now.Format(time.RFC3339)
	r.Version = SchemaVersion
	r.Generator = GeneratorName
}

// Write serializes the record to path with two-space indentation,
// overwriting any previous file.
func (r Record) Write(path string) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o600); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// Load reads a record from path.
func Load(path string) (Record, error) {
	var r Record
	data, err := os.ReadFile(path)
	if err != nil {
		return r, fmt.Errorf("failed to read %s: %w", path, err)
	}
	if err := json.Unmarshal(data, &r); err != nil {
		return r, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return r, nil
}
