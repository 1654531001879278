// Package wizard gathers configuration values from the operator when
// terraform outputs are unavailable, and collects the warehouse
// integration values during setup.
package wizard

import (
	"context"
	"strings"
	"unicode"

	"github.com/charmbracelet/huh"

	"github.com/animal-insights/pipelinectl/internal/config"
)

// minExternalIDLength guards against a partially pasted external ID.
const minExternalIDLength = 10

// RunManualInput prompts for the configuration values normally read
// from terraform outputs. Each field re-asks until its validator
// accepts.
func RunManualInput(ctx context.Context) (config.Record, error) {
	var record config.Record
	record.AWSRegion = "us-east-1"

	err := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("S3 Bucket Name").
				Description("The bucket holding the tutorial data").
				Placeholder("animal-insights-prod").
				Value(&record.S3BucketName).
				Validate(validateBucketName),
			huh.NewInput().
				Title("AWS Region").
				Description("Region the infrastructure was deployed to").
				Value(&record.AWSRegion).
				Validate(validateRegion),
			huh.NewInput().
				Title("Snowflake Role ARN (optional)").
				Placeholder("arn:aws:iam::123456789012:role/snowflake-s3-role").
				Value(&record.SnowflakeRoleARN),
			huh.NewInput().
				Title("SageMaker Role ARN (optional)").
				Placeholder("arn:aws:iam::123456789012:role/sagemaker-execution-role").
				Value(&record.SageMakerRoleARN),
		).Title("Manual Configuration Input"),
	).RunWithContext(ctx)
	if err != nil {
		return config.Record{}, err
	}

	record.S3BucketName = strings.TrimSpace(record.S3BucketName)
	record.AWSRegion = strings.TrimSpace(record.AWSRegion)
	record.SnowflakeRoleARN = strings.TrimSpace(record.SnowflakeRoleARN)
	record.SageMakerRoleARN = strings.TrimSpace(record.SageMakerRoleARN)
	return record, nil
}

// IntegrationInput holds the values the operator copies out of the
// warehouse's DESC STORAGE INTEGRATION output.
type IntegrationInput struct {
	// AccountID is the 12-digit account number inside
	// STORAGE_AWS_IAM_USER_ARN.
	AccountID string

	// ExternalID is the complete STORAGE_AWS_EXTERNAL_ID string.
	ExternalID string
}

// RunIntegrationInput prompts for the warehouse integration values.
func RunIntegrationInput(ctx context.Context) (IntegrationInput, error) {
	var input IntegrationInput

	err := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Snowflake Account ID").
				Description("The 12-digit number inside STORAGE_AWS_IAM_USER_ARN (for arn:aws:iam::123456789012:user/la761000-s it is 123456789012)").
				Value(&input.AccountID).
				Validate(validateAccountID),
			huh.NewInput().
				Title("STORAGE_AWS_EXTERNAL_ID").
				Description("The complete external-id string").
				Value(&input.ExternalID).
				Validate(validateExternalID),
		).Title("Snowflake Integration"),
	).RunWithContext(ctx)
	if err != nil {
		return IntegrationInput{}, err
	}

	input.AccountID = strings.TrimSpace(input.AccountID)
	input.ExternalID = strings.TrimSpace(input.ExternalID)
	return input, nil
}

// Confirm asks a yes/no question and returns the answer.
func Confirm(ctx context.Context, title, description string) (bool, error) {
	var confirmed bool
	err := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(title).
				Description(description).
				Affirmative("Yes").
				Negative("No").
				Value(&confirmed),
		),
	).RunWithContext(ctx)
	if err != nil {
		return false, err
	}
	return confirmed, nil
}

func validateBucketName(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return errBucketRequired
	}
	if !config.ValidBucketName(s) {
		return errBucketInvalid
	}
	return nil
}

func validateRegion(s string) error {
	if strings.TrimSpace(s) == "" {
		return errRegionRequired
	}
	return nil
}

func validateAccountID(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return errAccountIDRequired
	}
	if len(s) != 12 {
		return errAccountIDInvalid
	}
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return errAccountIDInvalid
		}
	}
	return nil
}

func validateExternalID(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return errExternalIDRequired
	}
	if len(s) < minExternalIDLength {
		return errExternalIDShort
	}
	return nil
}
