package reconcile

import "context"

// Lister queries remote state for the verification pass.
type Lister interface {
	// ListHostingResources returns all hosting-service resources with
	// their current status, filtered or not.
	ListHostingResources(ctx context.Context) ([]Resource, error)

	// ListBucketNames returns the names of all storage buckets in the
	// account.
	ListBucketNames(ctx context.Context) ([]string, error)
}

// Statuses counted as not fully deleted by the verification pass.
var activeStatuses = map[string]bool{
	"InService": true,
	"Creating":  true,
}

// Active reports whether a status means the resource still bills.
func Active(status string) bool {
	return activeStatuses[status]
}

// Report lists residual resources found after teardown. Surfacing
// them is the terminal outcome; nothing is retried.
type Report struct {
	ActiveEndpoints []Resource
	ResidualBuckets []string
}

// Clean reports whether the verification found nothing left behind.
func (r Report) Clean() bool {
	return len(r.ActiveEndpoints) == 0 && len(r.ResidualBuckets) == 0
}

// Issues returns the number of residual-resource categories found.
func (r Report) Issues() int {
	n := 0
	if len(r.ActiveEndpoints) > 0 {
		n++
	}
	if len(r.ResidualBuckets) > 0 {
		n++
	}
	return n
}

// Verify re-queries remote state after teardown. It reports hosting
// endpoints that match the marker and are still active, and storage
// buckets whose names contain the bucket marker. Running it twice
// against unchanged state yields the same report.
func Verify(ctx context.Context, l Lister, marker, bucketMarker string) (Report, error) {
	var report Report

	resources, err := l.ListHostingResources(ctx)
	if err != nil {
		return report, err
	}
	for _, r := range resources {
		if r.Kind == KindEndpoint && Owned(r.Name, marker) && Active(r.Status) {
			report.ActiveEndpoints = append(report.ActiveEndpoints, r)
		}
	}

	buckets, err := l.ListBucketNames(ctx)
	if err != nil {
		return report, err
	}
	for _, name := range buckets {
		if Owned(name, bucketMarker) {
			report.ResidualBuckets = append(report.ResidualBuckets, name)
		}
	}

	return report, nil
}
