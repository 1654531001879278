// Package s3 provides a client for the tutorial's storage bucket.
//
// It handles the bucket head-check used by the connectivity probe,
// the versioned-object teardown that must run to completion before
// terraform can destroy the bucket, and the filtered bucket listing
// used by the cleanup verification pass.
package s3
