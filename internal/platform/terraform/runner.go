// Package terraform invokes the terraform CLI as a subprocess against
// an explicit working directory.
package terraform

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// ErrNotInstalled is returned when the terraform binary is not in PATH.
var ErrNotInstalled = errors.New("terraform not found in PATH; install from https://developer.hashicorp.com/terraform/install")

// Runner executes terraform commands in a fixed working directory.
// The directory is passed explicitly to every invocation instead of
// mutating the process working directory.
type Runner struct {
	// Dir is the terraform configuration directory.
	Dir string
}

// NewRunner returns a Runner bound to dir.
func NewRunner(dir string) *Runner {
	return &Runner{Dir: dir}
}

// Available reports whether the configuration directory exists.
func (r *Runner) Available() bool {
	info, err := os.Stat(r.Dir)
	return err == nil && info.IsDir()
}

// Init runs terraform init, streaming output to the operator.
func (r *Runner) Init(ctx context.Context) error {
	return r.runStreaming(ctx, "init")
}

// Plan runs terraform plan, streaming output to the operator.
func (r *Runner) Plan(ctx context.Context) error {
	return r.runStreaming(ctx, "plan")
}

// Apply runs terraform apply -auto-approve, streaming output.
func (r *Runner) Apply(ctx context.Context) error {
	return r.runStreaming(ctx, "apply", "-auto-approve")
}

// Destroy runs terraform destroy -auto-approve, streaming output.
func (r *Runner) Destroy(ctx context.Context) error {
	return r.runStreaming(ctx, "destroy", "-auto-approve")
}

// OutputRaw returns the value of a single output via output -raw.
func (r *Runner) OutputRaw(ctx context.Context, name string) (string, error) {
	out, err := r.runCaptured(ctx, "output", "-raw", name)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}

// runStreaming runs terraform with inherited stdio so the operator
// sees progress and can answer any terraform-side prompts.
func (r *Runner) runStreaming(ctx context.Context, args ...string) error {
	cmd := exec.CommandContext(ctx, "terraform", args...)
	cmd.Dir = r.Dir
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return classify(err, args, "")
	}
	return nil
}

// runCaptured runs terraform and returns its stdout.
func (r *Runner) runCaptured(ctx context.Context, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, "terraform", args...)
	cmd.Dir = r.Dir
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return "", classify(err, args, stderr.String())
	}
	return stdout.String(), nil
}

// classify distinguishes a missing binary from a non-zero exit.
func classify(err error, args []string, stderr string) error {
	if errors.Is(err, exec.ErrNotFound) {
		return ErrNotInstalled
	}
	if stderr != "" {
		return fmt.Errorf("terraform %s failed: %w: %s", strings.Join(args, " "), err, strings.TrimSpace(stderr))
	}
	return fmt.Errorf("terraform %s failed: %w", strings.Join(args, " "), err)
}
