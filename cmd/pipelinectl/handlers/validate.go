package handlers

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/animal-insights/pipelinectl/internal/platform/terraform"
	"github.com/animal-insights/pipelinectl/internal/ui"
	"github.com/animal-insights/pipelinectl/internal/util/prerequisites"
)

// requiredFiles are the project files the notebooks depend on, relative
// to the working directory. The terraform entry point is resolved
// against the configured directory at check time.
var requiredFiles = []struct {
	Path        string
	Description string
}{
	{"requirements.txt", "Python dependencies"},
	{filepath.Join("data", "austin_animal_outcomes.csv"), "Tutorial dataset"},
}

// Validate handles the validate command.
//
// It runs every check regardless of earlier failures so the operator
// sees the complete picture in one pass, then returns an error if any
// check failed.
func Validate(ctx context.Context, terraformDir string) error {
	fmt.Print(ui.Header("Validating Animal Insights Pipeline Setup"))

	passed, total := 0, 0
	record := func(ok bool) {
		total++
		if ok {
			passed++
		}
	}

	fmt.Print(ui.Section("Command Line Tools"))
	for _, r := range prerequisites.CheckDefault().Results {
		record(r.Found)
		fmt.Println(ui.Row(r.Tool.Name, r.Found, r.Version))
	}

	fmt.Print(ui.Section("Python Packages"))
	interpreter := pythonInterpreter()
	for _, r := range prerequisites.CheckPythonPackages(interpreter, prerequisites.DefaultPythonPackages()) {
		record(r.Found)
		fmt.Println(ui.Row(r.Package.Display, r.Found, ""))
	}

	fmt.Print(ui.Section("AWS Credentials"))
	record(checkAWSCredentials(ctx))

	fmt.Print(ui.Section("Infrastructure"))
	record(checkInfrastructure(ctx, terraformDir))

	fmt.Print(ui.Section("Project Files"))
	for _, ok := range checkFiles(terraformDir) {
		record(ok)
	}

	fmt.Print(ui.Summary(passed, total))
	if passed < total {
		return fmt.Errorf("%d of %d checks failed", total-passed, total)
	}
	fmt.Println("Environment is ready. Open the notebooks and start the tutorial.")
	return nil
}

func checkAWSCredentials(ctx context.Context) bool {
	id, err := awsCallerIdentity(ctx)
	if err != nil {
		fmt.Println(ui.Row("AWS credentials", false, "run 'aws configure'"))
		return false
	}
	fmt.Println(ui.Row("AWS credentials", true, "account "+id.Account))
	return true
}

func checkInfrastructure(ctx context.Context, terraformDir string) bool {
	r := newTerraformRunner(terraformDir)
	outputs, err := r.Outputs(ctx)
	if err != nil || len(outputs) == 0 {
		fmt.Println(ui.Row("Terraform state", false, "run 'pipelinectl setup' to deploy"))
		return false
	}
	extra := ""
	if bucket := terraform.StringOutput(outputs, "s3_bucket_name"); bucket != "" {
		extra = "bucket " + bucket
	}
	fmt.Println(ui.Row("Terraform state", true, extra))
	return true
}

func checkFiles(terraformDir string) []bool {
	checks := []struct {
		Path        string
		Description string
	}{{filepath.Join(terraformDir, "main.tf"), "Terraform configuration"}}
	checks = append(checks, requiredFiles...)

	results := make([]bool, 0, len(checks))
	for _, f := range checks {
		_, err := os.Stat(f.Path)
		ok := err == nil
		fmt.Println(ui.Row(f.Path, ok, f.Description))
		results = append(results, ok)
	}
	return results
}
