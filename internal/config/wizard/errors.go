package wizard

import "errors"

// Validation errors for the interactive prompts.
var (
	errBucketRequired     = errors.New("S3 bucket name is required")
	errBucketInvalid      = errors.New("bucket name must be 3-63 lowercase alphanumerics, dots, or hyphens, with no '..', '.-', or '-.' sequences")
	errRegionRequired     = errors.New("AWS region is required")
	errAccountIDRequired  = errors.New("this value is required for secure integration")
	errAccountIDInvalid   = errors.New("account ID must be a 12-digit number; copy it from the STORAGE_AWS_IAM_USER_ARN value")
	errExternalIDRequired = errors.New("this value is required for secure integration")
	errExternalIDShort    = errors.New("external ID seems too short - copy the complete value")
)
