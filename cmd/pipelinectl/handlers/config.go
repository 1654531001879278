package handlers

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/animal-insights/pipelinectl/internal/config"
	"github.com/animal-insights/pipelinectl/internal/platform/s3"
	"github.com/animal-insights/pipelinectl/internal/ui"
)

// timeNow is replaced in tests for deterministic timestamps.
var timeNow = time.Now

// probeConnectivity is replaced in tests to avoid live AWS calls.
var probeConnectivity = defaultProbeConnectivity

// GenerateOptions configures configuration generation.
type GenerateOptions struct {
	// TerraformDir is the directory holding the terraform configuration.
	TerraformDir string

	// OutputPath is where the configuration file is written.
	OutputPath string
}

// GenerateConfig handles the config command.
//
// Values come from terraform outputs when available, otherwise from
// interactive input. The record is validated, connectivity is probed,
// and the file is written in full, replacing any previous one.
func GenerateConfig(ctx context.Context, opts GenerateOptions) error {
	fmt.Print(ui.Header("Animal Insights Pipeline Configuration Generator"))

	record, ok := recordFromTerraform(ctx, opts.TerraformDir)
	if !ok {
		fmt.Println(ui.Warn("Could not read terraform outputs. The infrastructure may not be deployed yet."))
		manual, err := confirm(ctx, "Enter configuration values manually?",
			"You will be asked for the bucket name, region, and role ARNs.")
		if err != nil {
			return err
		}
		if !manual {
			return errors.New("configuration cancelled: no terraform outputs and manual input declined")
		}
		record, err = runManualInput(ctx)
		if err != nil {
			return err
		}
	}
	record.Stamp(timeNow())

	result := config.Validate(record)
	reportValidation(result)
	if !result.OK() {
		retry, err := confirm(ctx, "Re-enter values manually?",
			"The current values cannot work; manual input replaces them.")
		if err != nil {
			return err
		}
		if !retry {
			return errors.New("configuration validation failed")
		}
		manual, err := runManualInput(ctx)
		if err != nil {
			return err
		}
		record = mergeManual(record, manual)
		record.Stamp(timeNow())
		result = config.Validate(record)
		reportValidation(result)
		if !result.OK() {
			return errors.New("manual configuration also failed validation")
		}
	}
	if !result.Clean() {
		proceed, err := confirm(ctx, "Continue with warnings?",
			"The configuration does not follow the tutorial conventions but should still work.")
		if err != nil {
			return err
		}
		if !proceed {
			return errors.New("configuration cancelled")
		}
	}

	if !probeConnectivity(ctx, record) {
		proceed, err := confirm(ctx, "Continue with configuration anyway?",
			"The AWS connectivity check failed; the notebooks may not run until it is fixed.")
		if err != nil {
			return err
		}
		if !proceed {
			return errors.New("configuration cancelled after failed connectivity check")
		}
	}

	if err := record.Write(opts.OutputPath); err != nil {
		return fmt.Errorf("write configuration: %w", err)
	}
	printConfigSummary(record, opts.OutputPath)
	return nil
}

// recordFromTerraform attempts to build a record from the deployed
// infrastructure. A false return means the caller should fall back to
// interactive input.
func recordFromTerraform(ctx context.Context, terraformDir string) (config.Record, bool) {
	r := newTerraformRunner(terraformDir)
	if !r.Available() {
		return config.Record{}, false
	}
	outputs, err := r.Outputs(ctx)
	if err != nil || len(outputs) == 0 {
		return config.Record{}, false
	}
	fmt.Println(ui.Pass("Read configuration from terraform outputs"))
	return config.FromOutputs(outputs), true
}

// mergeManual overlays interactive input on a record. The bucket and
// region are always replaced; role ARNs only when the operator entered
// one, so terraform-provided ARNs survive a partial correction.
func mergeManual(base, manual config.Record) config.Record {
	base.S3BucketName = manual.S3BucketName
	base.AWSRegion = manual.AWSRegion
	if manual.SnowflakeRoleARN != "" {
		base.SnowflakeRoleARN = manual.SnowflakeRoleARN
	}
	if manual.SageMakerRoleARN != "" {
		base.SageMakerRoleARN = manual.SageMakerRoleARN
	}
	return base
}

func reportValidation(result config.Result) {
	for _, w := range result.Warnings {
		fmt.Println(ui.Warn(w))
	}
	for _, e := range result.Errors {
		fmt.Println(ui.Fail(e))
	}
	if result.Clean() {
		fmt.Println(ui.Pass("Configuration values look good"))
	}
}

// defaultProbeConnectivity checks that the credentials and bucket in
// the record are usable. Identity failures and a missing or forbidden
// bucket count as failures; transient bucket errors only warn.
func defaultProbeConnectivity(ctx context.Context, record config.Record) bool {
	idc, err := newIdentityClient(ctx, record.AWSRegion)
	if err != nil {
		fmt.Println(ui.Fail(fmt.Sprintf("Could not initialize AWS client: %v", err)))
		return false
	}
	account, err := idc.Account(ctx)
	if err != nil {
		fmt.Println(ui.Fail(fmt.Sprintf("AWS credentials check failed: %v", err)))
		return false
	}
	fmt.Println(ui.Pass("AWS credentials valid (account " + account + ")"))

	if record.S3BucketName == "" {
		return true
	}
	sc, err := newStorageClient(ctx, record.AWSRegion)
	if err != nil {
		fmt.Println(ui.Warn(fmt.Sprintf("Could not check bucket access: %v", err)))
		return true
	}
	switch err := sc.CheckBucket(ctx, record.S3BucketName); {
	case err == nil:
		fmt.Println(ui.Pass("S3 bucket accessible: " + record.S3BucketName))
		return true
	case errors.Is(err, s3.ErrBucketNotFound):
		fmt.Println(ui.Fail("S3 bucket not found: " + record.S3BucketName))
		return false
	case errors.Is(err, s3.ErrBucketForbidden):
		fmt.Println(ui.Fail("Access denied to S3 bucket: " + record.S3BucketName))
		return false
	default:
		fmt.Println(ui.Warn(fmt.Sprintf("Could not verify bucket access: %v", err)))
		return true
	}
}

func printConfigSummary(record config.Record, path string) {
	fmt.Print(ui.Section("Configuration Summary"))
	fmt.Println(ui.Row("S3 bucket", record.S3BucketName != "", record.S3BucketName))
	fmt.Println(ui.Row("AWS region", record.AWSRegion != "", record.AWSRegion))
	fmt.Println(ui.Row("Snowflake role ARN", record.SnowflakeRoleARN != "", record.SnowflakeRoleARN))
	fmt.Println(ui.Row("SageMaker role ARN", record.SageMakerRoleARN != "", record.SageMakerRoleARN))
	fmt.Println()
	fmt.Println(ui.Pass("Configuration written to " + path))
}
