package reconcile

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

// staticLister serves a fixed remote state.
type staticLister struct {
	resources []Resource
	buckets   []string
	listErr   error
}

func (l *staticLister) ListHostingResources(_ context.Context) ([]Resource, error) {
	return l.resources, l.listErr
}

func (l *staticLister) ListBucketNames(_ context.Context) ([]string, error) {
	return l.buckets, nil
}

func TestVerifyFindsResiduals(t *testing.T) {
	t.Parallel()

	l := &staticLister{
		resources: []Resource{
			{Kind: KindEndpoint, Name: "animal-outcomes-ep", Status: "InService"},
			{Kind: KindEndpoint, Name: "animal-adoption-ep", Status: "Creating"},
			{Kind: KindEndpoint, Name: "animal-old-ep", Status: "Deleting"},
			{Kind: KindEndpoint, Name: "fraud-ep", Status: "InService"},
			{Kind: KindModel, Name: "animal-model", Status: "InService"},
		},
		buckets: []string{"animal-insights-prod", "company-logs", "animal-insights-dev"},
	}

	report, err := Verify(context.Background(), l, Marker, BucketMarker)
	require.NoError(t, err)

	require.Len(t, report.ActiveEndpoints, 2)
	require.Equal(t, []string{"animal-insights-prod", "animal-insights-dev"}, report.ResidualBuckets)
	require.False(t, report.Clean())
	require.Equal(t, 2, report.Issues())
}

func TestVerifyIdempotent(t *testing.T) {
	t.Parallel()

	l := &staticLister{
		resources: []Resource{
			{Kind: KindEndpoint, Name: "animal-ep", Status: "InService"},
		},
		buckets: []string{"animal-insights-prod"},
	}

	first, err := Verify(context.Background(), l, Marker, BucketMarker)
	require.NoError(t, err)
	second, err := Verify(context.Background(), l, Marker, BucketMarker)
	require.NoError(t, err)

	// Unchanged remote state yields identical reports.
	require.Equal(t, first, second)
}

func TestVerifyCleanState(t *testing.T) {
	t.Parallel()

	l := &staticLister{buckets: []string{"company-logs"}}

	report, err := Verify(context.Background(), l, Marker, BucketMarker)
	require.NoError(t, err)
	require.True(t, report.Clean())
	require.Equal(t, 0, report.Issues())
}

func TestVerifyListError(t *testing.T) {
	t.Parallel()

	boom := errors.New("AccessDenied")
	l := &staticLister{listErr: boom}

	_, err := Verify(context.Background(), l, Marker, BucketMarker)
	require.ErrorIs(t, err, boom)
}
