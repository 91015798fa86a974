package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeRow struct {
	ID     uint
	Number string
}

func rowID(r fakeRow) uint { return r.ID }

func TestReconcile_Partitions(t *testing.T) {
	existing := []uint{1, 2, 3}
	submitted := []fakeRow{
		{ID: 0, Number: "new"},
		{ID: 2, Number: "changed"},
	}

	r := Reconcile(existing, submitted, rowID)

	assert.Len(t, r.ToInsert, 1)
	assert.Equal(t, "new", r.ToInsert[0].Number)
	assert.Len(t, r.ToUpdate, 1)
	assert.Equal(t, uint(2), r.ToUpdate[0].ID)
	assert.ElementsMatch(t, []uint{1, 3}, r.ToDelete)
}

func TestReconcile_Idempotent(t *testing.T) {
	// Resubmitting exactly what is stored must change nothing.
	existing := []uint{5, 6}
	submitted := []fakeRow{{ID: 5}, {ID: 6}}

	r := Reconcile(existing, submitted, rowID)

	assert.Empty(t, r.ToInsert)
	assert.Empty(t, r.ToDelete)
	assert.Len(t, r.ToUpdate, 2)
}

func TestReconcile_OrderIndependent(t *testing.T) {
	existing := []uint{1, 2, 3}
	a := Reconcile(existing, []fakeRow{{ID: 3}, {ID: 1}}, rowID)
	b := Reconcile([]uint{3, 2, 1}, []fakeRow{{ID: 1}, {ID: 3}}, rowID)

	assert.ElementsMatch(t, a.ToDelete, b.ToDelete)
	assert.ElementsMatch(t, idsOf(a.ToUpdate), idsOf(b.ToUpdate))
}

func TestReconcile_DuplicateSubmissionProcessedOnce(t *testing.T) {
	r := Reconcile([]uint{7}, []fakeRow{{ID: 7, Number: "a"}, {ID: 7, Number: "b"}}, rowID)

	assert.Len(t, r.ToUpdate, 1)
	assert.Equal(t, "a", r.ToUpdate[0].Number)
	assert.Empty(t, r.ToDelete)
}

func TestReconcile_StaleIDIgnored(t *testing.T) {
	// An id that is no longer in storage is neither updated nor inserted.
	r := Reconcile([]uint{1}, []fakeRow{{ID: 99}}, rowID)

	assert.Empty(t, r.ToInsert)
	assert.Empty(t, r.ToUpdate)
	assert.Equal(t, []uint{1}, r.ToDelete)
}

func TestReconcile_EmptySubmissionDeletesAll(t *testing.T) {
	r := Reconcile([]uint{1, 2}, nil, rowID)

	assert.ElementsMatch(t, []uint{1, 2}, r.ToDelete)
	assert.Empty(t, r.ToInsert)
	assert.Empty(t, r.ToUpdate)
}

func idsOf(rows []fakeRow) []uint {
	ids := make([]uint, 0, len(rows))
	for _, r := range rows {
		ids = append(ids, r.ID)
	}
	return ids
}
