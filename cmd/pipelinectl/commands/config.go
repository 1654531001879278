package commands

import (
	"github.com/spf13/cobra"

	"github.com/animal-insights/pipelinectl/cmd/pipelinectl/handlers"
)

// Config returns the command for generating the pipeline configuration.
//
// The command reads terraform outputs from the deployed infrastructure,
// validates them, probes AWS connectivity, and writes config.json. When
// terraform outputs are unavailable it falls back to interactive input.
//
// Optional flags:
//
//	--dir, -d: Path to the terraform configuration directory (default: terraform)
//	--output, -o: Path for the generated configuration file (default: config.json)
func Config() *cobra.Command {
	var terraformDir string
	var outputPath string

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Generate the pipeline configuration file",
		Long: `Config generates the pipeline configuration file (config.json).

Values come from terraform outputs when the infrastructure is deployed,
or from interactive prompts when it is not. The configuration is
validated and AWS connectivity is checked before the file is written.

Re-running the command regenerates the file from current values.

Example:
  pipelinectl config`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.GenerateConfig(cmd.Context(), handlers.GenerateOptions{
				TerraformDir: terraformDir,
				OutputPath:   outputPath,
			})
		},
	}

	cmd.Flags().StringVarP(&terraformDir, "dir", "d", "terraform", "Path to the terraform configuration directory")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "config.json", "Path for the generated configuration file")

	return cmd
}
