package handlers

import (
	"context"
	"fmt"
	"time"

	"github.com/animal-insights/pipelinectl/internal/platform/terraform"
	"github.com/animal-insights/pipelinectl/internal/reconcile"
	"github.com/animal-insights/pipelinectl/internal/ui"
)

// settleWait is how long deletions are given to propagate before the
// bucket is emptied and terraform destroy runs. Variable for tests.
var settleWait = 30 * time.Second

// Cleanup handles the cleanup command.
//
// After the confirmation gate every stage is best-effort: failures are
// reported and the remaining stages still run, since a partial teardown
// left silent costs more than a noisy one. The final verification pass
// reports anything still active. Cleanup itself only returns an error
// when the operator declines or the context is cancelled.
func Cleanup(ctx context.Context, terraformDir string) error {
	fmt.Print(ui.Header("Animal Insights Pipeline Cleanup"))
	fmt.Println("This deletes the SageMaker resources, empties the S3 bucket,")
	fmt.Println("and destroys all terraform-managed infrastructure.")

	proceed, err := confirm(ctx, "Delete ALL tutorial resources?",
		"This cannot be undone. All pipeline data will be lost.")
	if err != nil {
		return err
	}
	if !proceed {
		fmt.Println("Cleanup cancelled.")
		return nil
	}

	r := newTerraformRunner(terraformDir)
	region := regionFromState(ctx, r)

	fmt.Print(ui.Section("Step 1: SageMaker Resources"))
	sweepHosting(ctx, region)

	fmt.Printf("\nWaiting %s for deletions to process...\n", settleWait)
	if err := settle(ctx); err != nil {
		return err
	}

	fmt.Print(ui.Section("Step 2: S3 Bucket"))
	emptyBucket(ctx, r, region)

	fmt.Print(ui.Section("Step 3: Terraform Destroy"))
	if err := r.Destroy(ctx); err != nil {
		fmt.Println(ui.Fail(fmt.Sprintf("terraform destroy failed: %v", err)))
		fmt.Println(ui.Warn("Run 'terraform destroy' manually in " + terraformDir + " or remove the resources in the AWS Console."))
	} else {
		fmt.Println(ui.Pass("Infrastructure destroyed"))
	}

	fmt.Print(ui.Section("Step 4: Verification"))
	verifyTeardown(ctx, region)

	printCostAdvisory()
	return nil
}

// regionFromState reads the region from terraform outputs while they
// still exist. Falls back to the tutorial default.
func regionFromState(ctx context.Context, r terraformRunner) string {
	if outputs, err := r.Outputs(ctx); err == nil {
		if region := terraform.StringOutput(outputs, "aws_region"); region != "" {
			return region
		}
	}
	return defaultRegion
}

func settle(ctx context.Context) error {
	select {
	case <-time.After(settleWait):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func sweepHosting(ctx context.Context, region string) {
	hc, err := newHostingClient(ctx, region)
	if err != nil {
		fmt.Println(ui.Fail(fmt.Sprintf("Could not initialize SageMaker client: %v", err)))
		return
	}
	resources, err := hc.ListHostingResources(ctx)
	if err != nil {
		fmt.Println(ui.Fail(fmt.Sprintf("Could not list SageMaker resources: %v", err)))
		return
	}

	outcomes := reconcile.Sweep(ctx, hc, resources, reconcile.Marker)
	for _, o := range outcomes {
		if o.Err != nil {
			fmt.Println(ui.Fail(fmt.Sprintf("Failed to delete %s %q: %v", o.Resource.Kind, o.Resource.Name, o.Err)))
			continue
		}
		fmt.Println(ui.Pass(fmt.Sprintf("Deleted %s %q", o.Resource.Kind, o.Resource.Name)))
	}
	failed := len(reconcile.Failed(outcomes))
	switch {
	case len(outcomes) == 0:
		fmt.Println("No SageMaker resources found.")
	case failed == 0:
		fmt.Printf("Cleaned up %d SageMaker resources.\n", len(outcomes))
	default:
		fmt.Printf("Cleaned up %d of %d SageMaker resources.\n", len(outcomes)-failed, len(outcomes))
	}
}

func emptyBucket(ctx context.Context, r terraformRunner, region string) {
	bucket, err := r.OutputRaw(ctx, "s3_bucket_name")
	if err != nil {
		fmt.Println(ui.Warn(fmt.Sprintf("Could not get the bucket name from terraform: %v", err)))
		fmt.Println(ui.Warn("If the bucket still exists, empty it in the AWS Console."))
		return
	}

	sc, err := newStorageClient(ctx, region)
	if err != nil {
		fmt.Println(ui.Fail(fmt.Sprintf("Could not initialize S3 client: %v", err)))
		return
	}
	deleted, err := sc.Empty(ctx, bucket)
	if err != nil {
		fmt.Println(ui.Fail(fmt.Sprintf("Failed to empty bucket %q: %v", bucket, err)))
		return
	}
	if deleted == 0 {
		fmt.Printf("Bucket %q was already empty.\n", bucket)
		return
	}
	fmt.Printf("Deleted %d objects and versions from %q.\n", deleted, bucket)
}

// teardownLister adapts the AWS clients to the verification interface.
type teardownLister struct {
	hosting hostingClient
	storage storageClient
}

func (l teardownLister) ListHostingResources(ctx context.Context) ([]reconcile.Resource, error) {
	return l.hosting.ListHostingResources(ctx)
}

func (l teardownLister) ListBucketNames(ctx context.Context) ([]string, error) {
	return l.storage.ListBucketNames(ctx)
}

func verifyTeardown(ctx context.Context, region string) {
	hc, hostErr := newHostingClient(ctx, region)
	sc, storeErr := newStorageClient(ctx, region)
	if hostErr != nil || storeErr != nil {
		fmt.Println(ui.Warn("Could not verify cleanup; check the AWS Console manually."))
		return
	}

	report, err := reconcile.Verify(ctx, teardownLister{hosting: hc, storage: sc}, reconcile.Marker, reconcile.BucketMarker)
	if err != nil {
		fmt.Println(ui.Warn(fmt.Sprintf("Verification incomplete: %v", err)))
		return
	}
	if report.Clean() {
		fmt.Println(ui.Pass("No tutorial resources left running."))
		return
	}
	for _, e := range report.ActiveEndpoints {
		fmt.Println(ui.Warn(fmt.Sprintf("Endpoint still active: %s (%s)", e.Name, e.Status)))
	}
	for _, b := range report.ResidualBuckets {
		fmt.Println(ui.Warn("Bucket still exists: " + b))
	}
	fmt.Println(ui.Warn("Remove the resources above in the AWS Console to stop all charges."))
}

func printCostAdvisory() {
	fmt.Print(ui.Section("Cost Check"))
	fmt.Println("SageMaker endpoints are the main recurring cost (~$50/month each")
	fmt.Println("for ml.t2.medium). S3 storage for the tutorial data is under $1/month.")
	fmt.Println(ui.Dim("Review the Billing Console in a day or two to confirm charges stopped."))
}
