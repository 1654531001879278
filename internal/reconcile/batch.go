package reconcile

// MaxDeleteBatch is the provider's limit on identifiers per bulk
// object deletion call.
const MaxDeleteBatch = 1000

// ObjectKey identifies one object version or delete marker.
type ObjectKey struct {
	Key       string
	VersionID string
}

// Batch splits keys into groups of at most size, preserving order and
// multiplicity. A non-positive size falls back to MaxDeleteBatch.
func Batch(keys []ObjectKey, size int) [][]ObjectKey {
	if size <= 0 {
		size = MaxDeleteBatch
	}
	var batches [][]ObjectKey
	for len(keys) > 0 {
		n := size
		if len(keys) < n {
			n = len(keys)
		}
		batches = append(batches, keys[:n])
		keys = keys[n:]
	}
	return batches
}
