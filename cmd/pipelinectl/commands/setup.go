package commands

import (
	"github.com/spf13/cobra"

	"github.com/animal-insights/pipelinectl/cmd/pipelinectl/handlers"
)

// Setup returns the command for the guided environment setup.
//
// The setup command walks through the full tutorial bootstrap in order:
// prerequisites, Python environment, AWS credentials, infrastructure
// deployment, Snowflake integration, and configuration generation. Each
// step must succeed before the next one runs.
//
// Optional flags:
//
//	--dir, -d: Path to the terraform configuration directory (default: terraform)
//	--outputs: Path for the saved terraform outputs file (default: terraform_outputs.json)
//	--output, -o: Path for the generated configuration file (default: config.json)
func Setup() *cobra.Command {
	var terraformDir string
	var outputsPath string
	var configPath string

	cmd := &cobra.Command{
		Use:   "setup",
		Short: "Run the guided environment setup for the tutorial",
		Long: `Setup walks through the full tutorial bootstrap step by step.

Steps run in order and stop at the first failure:
  1. Check prerequisites
  2. Set up the Python environment
  3. Configure AWS credentials
  4. Deploy infrastructure with terraform
  5. Set up the Snowflake integration
  6. Generate the pipeline configuration

Example:
  pipelinectl setup`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Setup(cmd.Context(), terraformDir, outputsPath, configPath)
		},
	}

	cmd.Flags().StringVarP(&terraformDir, "dir", "d", "terraform", "Path to the terraform configuration directory")
	cmd.Flags().StringVar(&outputsPath, "outputs", "terraform_outputs.json", "Path for the saved terraform outputs file")
	cmd.Flags().StringVarP(&configPath, "output", "o", "config.json", "Path for the generated configuration file")

	return cmd
}
