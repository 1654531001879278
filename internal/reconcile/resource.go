// Package reconcile decides which remote resources belong to the
// tutorial and in what order they are removed.
//
// Ownership is a naming convention: any resource whose name contains
// the tutorial marker substring (case-insensitive) is considered
// tutorial-owned. Resources without the marker are never touched.
package reconcile

import "strings"

// Kind identifies a hosting-service resource type.
type Kind string

const (
	KindEndpoint       Kind = "endpoint"
	KindEndpointConfig Kind = "endpoint-config"
	KindModel          Kind = "model"
)

// StageOrder is the fixed deletion order. The provider rejects
// deletion of an endpoint config referenced by an endpoint, and of a
// model referenced by a config, so endpoints go first and models last.
var StageOrder = []Kind{KindEndpoint, KindEndpointConfig, KindModel}

// Marker is the substring identifying tutorial-owned resources.
const Marker = "animal"

// BucketMarker identifies tutorial-owned storage buckets.
const BucketMarker = "animal-insights"

// Resource is a remote hosting-service resource identified by name.
type Resource struct {
	Kind   Kind
	Name   string
	Status string
}

// Owned reports whether a resource name matches the ownership marker.
// The match is case-insensitive on both sides.
func Owned(name, marker string) bool {
	return strings.Contains(strings.ToLower(name), strings.ToLower(marker))
}

// FilterOwned returns the subset of resources whose names match the
// marker, preserving input order.
func FilterOwned(resources []Resource, marker string) []Resource {
	var owned []Resource
	for _, r := range resources {
		if Owned(r.Name, marker) {
			owned = append(owned, r)
		}
	}
	return owned
}
