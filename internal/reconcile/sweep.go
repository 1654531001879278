package reconcile

import "context"

// Deleter deletes a single hosting-service resource.
type Deleter interface {
	DeleteResource(ctx context.Context, r Resource) error
}

// Outcome records the result of one deletion attempt.
type Outcome struct {
	Resource Resource
	Err      error
}

// Sweep deletes all marker-matching resources in stage order:
// endpoints, then endpoint configs, then models. Deletion is
// best-effort: a failure is recorded in the returned outcomes and the
// sweep continues with the remaining resources. Non-matching
// resources are never passed to the deleter.
func Sweep(ctx context.Context, d Deleter, resources []Resource, marker string) []Outcome {
	var outcomes []Outcome
	for _, kind := range StageOrder {
		for _, r := range resources {
			if r.Kind != kind || !Owned(r.Name, marker) {
				continue
			}
			outcomes = append(outcomes, Outcome{
				Resource: r,
				Err:      d.DeleteResource(ctx, r),
			})
		}
	}
	return outcomes
}

// Failed returns the outcomes that recorded an error.
func Failed(outcomes []Outcome) []Outcome {
	var failed []Outcome
	for _, o := range outcomes {
		if o.Err != nil {
			failed = append(failed, o)
		}
	}
	return failed
}
