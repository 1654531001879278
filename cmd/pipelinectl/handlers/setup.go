package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/animal-insights/pipelinectl/internal/platform/terraform"
	"github.com/animal-insights/pipelinectl/internal/ui"
	"github.com/animal-insights/pipelinectl/internal/util/prerequisites"
)

// setupState carries paths and intermediate results between steps.
type setupState struct {
	terraformDir string
	outputsPath  string
	configPath   string

	outputs map[string]any
}

// setupStep is one stage of the guided setup. Steps run in order and
// the first failure stops the run.
type setupStep struct {
	name string
	run  func(context.Context, *setupState) error
}

// setupSteps is a variable so tests can substitute stub steps.
var setupSteps = []setupStep{
	{"Checking Prerequisites", stepPrerequisites},
	{"Setting Up Python Environment", stepPythonEnvironment},
	{"Configuring AWS", stepConfigureAWS},
	{"Deploying Infrastructure", stepDeployInfrastructure},
	{"Setting Up Snowflake Integration", stepSnowflakeIntegration},
	{"Final Setup", stepFinal},
}

// Setup handles the setup command.
func Setup(ctx context.Context, terraformDir, outputsPath, configPath string) error {
	fmt.Print(ui.Header("Animal Insights Pipeline Setup"))
	fmt.Println("This will walk you through setting up the complete tutorial environment.")

	state := &setupState{
		terraformDir: terraformDir,
		outputsPath:  outputsPath,
		configPath:   configPath,
	}
	for i, step := range setupSteps {
		fmt.Print(ui.Section(fmt.Sprintf("Step %d/%d: %s", i+1, len(setupSteps), step.name)))
		if err := step.run(ctx, state); err != nil {
			return fmt.Errorf("setup failed at step %d (%s): %w", i+1, step.name, err)
		}
	}

	fmt.Println()
	fmt.Println(ui.Pass("Setup complete!"))
	printNextSteps(state)
	return nil
}

func stepPrerequisites(_ context.Context, _ *setupState) error {
	results := prerequisites.CheckDefault()
	for _, r := range results.Results {
		fmt.Println(ui.Row(r.Tool.Name, r.Found, r.Version))
	}
	if err := results.Error(); err != nil {
		return err
	}
	return nil
}

func stepPythonEnvironment(ctx context.Context, _ *setupState) error {
	if _, err := os.Stat(venvDir); err == nil {
		fmt.Println(ui.Pass("Virtual environment already exists"))
	} else {
		fmt.Println("Creating virtual environment...")
		if err := runInteractive(ctx, "python3", "-m", "venv", venvDir); err != nil {
			return fmt.Errorf("create virtual environment: %w", err)
		}
	}

	pip := venvPip()
	fmt.Println("Installing Python dependencies...")
	if err := runInteractive(ctx, pip, "install", "-r", "requirements.txt"); err != nil {
		return fmt.Errorf("install requirements: %w", err)
	}
	if err := runInteractive(ctx, pip, "install", "boto3"); err != nil {
		return fmt.Errorf("install boto3: %w", err)
	}
	fmt.Println(ui.Pass("Python environment ready"))
	fmt.Println(ui.Dim("Activate it with: " + venvActivate()))
	return nil
}

func stepConfigureAWS(ctx context.Context, _ *setupState) error {
	if id, err := awsCallerIdentity(ctx); err == nil {
		fmt.Println(ui.Pass("AWS credentials already configured (account " + id.Account + ")"))
		return nil
	}

	fmt.Println("AWS credentials are not configured yet.")
	fmt.Println("You will need an access key ID and secret access key for an")
	fmt.Println("IAM user with permissions for S3, SageMaker, and IAM.")
	ready, err := confirm(ctx, "Do you have your AWS credentials ready?",
		"aws configure will prompt for them next.")
	if err != nil {
		return err
	}
	if !ready {
		return errors.New("AWS credentials are required to continue; create them in the IAM Console and re-run setup")
	}

	if err := runInteractive(ctx, "aws", "configure"); err != nil {
		return fmt.Errorf("aws configure: %w", err)
	}
	id, err := awsCallerIdentity(ctx)
	if err != nil {
		return fmt.Errorf("credentials still not working after aws configure: %w", err)
	}
	fmt.Println(ui.Pass("AWS credentials configured (account " + id.Account + ")"))
	return nil
}

func stepDeployInfrastructure(ctx context.Context, st *setupState) error {
	r := newTerraformRunner(st.terraformDir)
	if !r.Available() {
		return fmt.Errorf("terraform configuration directory %q not found", st.terraformDir)
	}

	if err := r.Init(ctx); err != nil {
		return err
	}
	if err := r.Plan(ctx); err != nil {
		return err
	}
	deploy, err := confirm(ctx, "Deploy the infrastructure shown above?",
		"This creates AWS resources that incur small charges while running.")
	if err != nil {
		return err
	}
	if !deploy {
		return errors.New("infrastructure deployment declined")
	}
	if err := r.Apply(ctx); err != nil {
		return err
	}

	outputs, err := r.Outputs(ctx)
	if err != nil {
		return fmt.Errorf("read terraform outputs: %w", err)
	}
	st.outputs = outputs
	if err := writeOutputsFile(st.outputsPath, outputs); err != nil {
		return err
	}

	fmt.Println(ui.Pass("Infrastructure deployed"))
	fmt.Println(ui.Row("S3 bucket", true, terraform.StringOutput(outputs, "s3_bucket_name")))
	fmt.Println(ui.Row("Snowflake role", true, terraform.StringOutput(outputs, "snowflake_role_arn")))
	return nil
}

func stepSnowflakeIntegration(ctx context.Context, st *setupState) error {
	bucket := terraform.StringOutput(st.outputs, "s3_bucket_name")
	roleARN := terraform.StringOutput(st.outputs, "snowflake_role_arn")

	fmt.Println("Run this SQL in your Snowflake worksheet, then run")
	fmt.Println("DESC STORAGE INTEGRATION animal_insights_s3 and copy the values below.")
	fmt.Println()
	fmt.Printf(`CREATE STORAGE INTEGRATION animal_insights_s3
  TYPE = EXTERNAL_STAGE
  STORAGE_PROVIDER = 'S3'
  ENABLED = TRUE
  STORAGE_AWS_ROLE_ARN = '%s'
  STORAGE_ALLOWED_LOCATIONS = ('s3://%s/');
`, roleARN, bucket)
	fmt.Println()

	input, err := runIntegrationInput(ctx)
	if err != nil {
		return err
	}

	region := terraform.StringOutput(st.outputs, "aws_region")
	if region == "" {
		region = defaultRegion
	}
	vars := terraform.Vars{
		Region:                     region,
		SnowflakeAccountID:         input.AccountID,
		SnowflakeExternalID:        input.ExternalID,
		EnableSnowflakeIntegration: true,
	}
	if err := terraform.WriteVars(filepath.Join(st.terraformDir, "terraform.tfvars"), vars); err != nil {
		return fmt.Errorf("write terraform.tfvars: %w", err)
	}

	// Second apply updates the trust policy with the integration values.
	r := newTerraformRunner(st.terraformDir)
	if err := r.Plan(ctx); err != nil {
		return err
	}
	if err := r.Apply(ctx); err != nil {
		return err
	}
	fmt.Println(ui.Pass("Snowflake integration configured"))
	return nil
}

func stepFinal(ctx context.Context, st *setupState) error {
	return GenerateConfig(ctx, GenerateOptions{
		TerraformDir: st.terraformDir,
		OutputPath:   st.configPath,
	})
}

func writeOutputsFile(path string, outputs map[string]any) error {
	data, err := json.MarshalIndent(outputs, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal terraform outputs: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o600); err != nil {
		return fmt.Errorf("write terraform outputs: %w", err)
	}
	return nil
}

func printNextSteps(st *setupState) {
	bucket := terraform.StringOutput(st.outputs, "s3_bucket_name")

	fmt.Print(ui.Section("Next Steps"))
	fmt.Println("  1. Activate the Python environment:")
	fmt.Println("       " + venvActivate())
	if bucket != "" {
		fmt.Println("  2. Upload the tutorial dataset:")
		fmt.Printf("       aws s3 cp data/austin_animal_outcomes.csv s3://%s/raw/\n", bucket)
	} else {
		fmt.Println("  2. Upload the tutorial dataset to the raw/ prefix of your bucket")
	}
	fmt.Println("  3. Start Jupyter and open the first notebook:")
	fmt.Println("       jupyter notebook")
	fmt.Println()
	fmt.Println(ui.Dim("Run 'pipelinectl validate' at any time to re-check the environment."))
}
