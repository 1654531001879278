package commands

import (
	"github.com/spf13/cobra"

	"github.com/animal-insights/pipelinectl/cmd/pipelinectl/handlers"
)

// Cleanup returns the cleanup command.
//
// The cleanup command removes all tutorial resources from AWS. It deletes
// SageMaker resources in dependency order, empties the S3 bucket, destroys
// the terraform-managed infrastructure, and verifies that nothing is left
// running.
func Cleanup() *cobra.Command {
	var terraformDir string

	cmd := &cobra.Command{
		Use:   "cleanup",
		Short: "Delete all tutorial resources from AWS",
		Long: `Cleanup removes all AWS resources created for the tutorial.

This command deletes, in order:
  - SageMaker endpoints, endpoint configurations, and models
  - All objects and versions in the tutorial S3 bucket
  - The terraform-managed infrastructure

A final verification pass reports anything still running so it can be
removed manually from the AWS Console.

Example:
  pipelinectl cleanup

WARNING: This operation is irreversible. All pipeline data will be lost.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Cleanup(cmd.Context(), terraformDir)
		},
	}

	cmd.Flags().StringVarP(&terraformDir, "dir", "d", "terraform", "Path to the terraform configuration directory")

	return cmd
}
