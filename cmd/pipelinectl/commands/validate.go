package commands

import (
	"github.com/spf13/cobra"

	"github.com/animal-insights/pipelinectl/cmd/pipelinectl/handlers"
)

// Validate returns the command for validating the tutorial environment.
//
// This command checks command line tools, Python packages, AWS credentials,
// deployed infrastructure, and required project files, then prints a
// pass/fail summary.
//
// Optional flags:
//
//	--dir, -d: Path to the terraform configuration directory (default: terraform)
func Validate() *cobra.Command {
	var terraformDir string

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate the tutorial environment and deployed infrastructure",
		Long: `Validate checks that everything the tutorial needs is in place.

It verifies:
  - Command line tools (python3, pip3, terraform, aws)
  - Python packages (pandas, numpy, boto3, scikit-learn, matplotlib, jupyter)
  - AWS credentials
  - Deployed terraform infrastructure
  - Required project files

Example:
  pipelinectl validate`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Validate(cmd.Context(), terraformDir)
		},
	}

	cmd.Flags().StringVarP(&terraformDir, "dir", "d", "terraform", "Path to the terraform configuration directory")

	return cmd
}
