// Package handlers implements the business logic for CLI commands.
//
// Handlers receive parsed arguments from the commands package and
// orchestrate the terraform runner, AWS clients, and interactive prompts.
// External dependencies are created through factory function variables so
// tests can substitute mocks.
package handlers

import (
	"context"
	"encoding/json"
	"os"
	"os/exec"
	"strings"

	"github.com/animal-insights/pipelinectl/internal/config/wizard"
	"github.com/animal-insights/pipelinectl/internal/platform/s3"
	"github.com/animal-insights/pipelinectl/internal/platform/terraform"
	"github.com/animal-insights/pipelinectl/internal/platform/sagemaker"
	"github.com/animal-insights/pipelinectl/internal/platform/sts"
	"github.com/animal-insights/pipelinectl/internal/reconcile"
)

// defaultRegion is used when no deployed infrastructure reports one.
const defaultRegion = "us-east-1"

// terraformRunner is the subset of the terraform runner the handlers use.
type terraformRunner interface {
	Available() bool
	Init(ctx context.Context) error
	Plan(ctx context.Context) error
	Apply(ctx context.Context) error
	Destroy(ctx context.Context) error
	Outputs(ctx context.Context) (map[string]any, error)
	OutputRaw(ctx context.Context, name string) (string, error)
}

// storageClient wraps the object-storage operations used during
// configuration probing and teardown.
type storageClient interface {
	CheckBucket(ctx context.Context, bucketName string) error
	Empty(ctx context.Context, bucketName string) (int, error)
	ListBucketNames(ctx context.Context) ([]string, error)
}

// hostingClient lists and deletes hosting-service resources. It
// satisfies reconcile.Deleter.
type hostingClient interface {
	ListHostingResources(ctx context.Context) ([]reconcile.Resource, error)
	DeleteResource(ctx context.Context, r reconcile.Resource) error
}

// identityClient resolves the caller's AWS account.
type identityClient interface {
	Account(ctx context.Context) (string, error)
}

// Factory function variables - can be replaced in tests.
var (
	newTerraformRunner = defaultNewTerraformRunner

	newStorageClient = func(ctx context.Context, region string) (storageClient, error) {
		return s3.NewClient(ctx, region)
	}

	newHostingClient = func(ctx context.Context, region string) (hostingClient, error) {
		return sagemaker.NewClient(ctx, region)
	}

	newIdentityClient = func(ctx context.Context, region string) (identityClient, error) {
		return sts.NewClient(ctx, region)
	}

	confirm             = wizard.Confirm
	runManualInput      = wizard.RunManualInput
	runIntegrationInput = wizard.RunIntegrationInput

	runCommand     = defaultRunCommand
	runInteractive = defaultRunInteractive
)

func defaultNewTerraformRunner(dir string) terraformRunner {
	return terraform.NewRunner(dir)
}

// defaultRunCommand runs a command and returns its combined output.
func defaultRunCommand(ctx context.Context, name string, args ...string) (string, error) {
	out, err := exec.CommandContext(ctx, name, args...).CombinedOutput()
	return strings.TrimSpace(string(out)), err
}

// defaultRunInteractive runs a command wired to the operator's terminal,
// for tools that prompt on their own (aws configure, pip progress bars).
func defaultRunInteractive(ctx context.Context, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

// callerIdentity mirrors the JSON shape of `aws sts get-caller-identity`.
type callerIdentity struct {
	Account string `json:"Account"`
	Arn     string `json:"Arn"`
}

// awsCallerIdentity shells out to the aws CLI to check credentials.
// The SDK-based identityClient is used where the account number feeds
// generated configuration; this path validates the operator's CLI setup
// specifically, since the tutorial notebooks rely on it.
func awsCallerIdentity(ctx context.Context) (callerIdentity, error) {
	out, err := runCommand(ctx, "aws", "sts", "get-caller-identity", "--output", "json")
	if err != nil {
		return callerIdentity{}, err
	}
	var id callerIdentity
	if err := json.Unmarshal([]byte(out), &id); err != nil {
		return callerIdentity{}, err
	}
	return id, nil
}
