package services

// ReconcileResult partitions a submitted dependent-row collection against the
// stored one.
type ReconcileResult[T any] struct {
	ToInsert []T
	ToUpdate []T
	ToDelete []uint
}

// Reconcile diffs submitted items against the ids currently in storage.
// Submitted items without an id are inserts; items whose id exists in storage
// are updates; stored ids absent from the submission are deletes. A submitted
// id that no longer exists in storage is ignored, and a duplicated id in the
// submission is processed once. The result does not depend on the order of
// either input, so resubmitting the same collection is a pure no-op diff:
// every row lands in ToUpdate and nothing is inserted or deleted.
func Reconcile[T any](existingIDs []uint, submitted []T, idOf func(T) uint) ReconcileResult[T] {
	existing := make(map[uint]bool, len(existingIDs))
	for _, id := range existingIDs {
		existing[id] = true
	}

	var result ReconcileResult[T]
	seen := make(map[uint]bool, len(submitted))
	for _, item := range submitted {
		id := idOf(item)
		switch {
		case id == 0:
			result.ToInsert = append(result.ToInsert, item)
		case seen[id]:
			// duplicate submission of the same row
		case existing[id]:
			result.ToUpdate = append(result.ToUpdate, item)
			seen[id] = true
		default:
			// stale id, the row is gone from storage
		}
	}

	for _, id := range existingIDs {
		if !seen[id] {
			result.ToDelete = append(result.ToDelete, id)
		}
	}
	return result
}
