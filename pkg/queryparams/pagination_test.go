package queryparams

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPaginationMeta_Derivation(t *testing.T) {
	tests := []struct {
		name       string
		page       int
		perPage    int
		count      int64
		totalPages int
		hasPrev    bool
		hasNext    bool
	}{
		{"first of many", 1, 20, 100, 5, false, true},
		{"middle page", 3, 20, 100, 5, true, true},
		{"last page", 5, 20, 100, 5, true, false},
		{"partial last page", 5, 20, 85, 5, true, false},
		{"single page", 1, 20, 7, 1, false, false},
		{"exact fit", 2, 10, 20, 2, true, false},
		{"page past the end", 3, 20, 10, 1, true, false},
		{"zero count", 1, 20, 0, 0, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewPaginationMeta(tt.page, tt.perPage, tt.count)
			assert.Equal(t, tt.totalPages, m.TotalPages)
			assert.Equal(t, tt.hasPrev, m.HasPrev, "HasPrev")
			assert.Equal(t, tt.hasNext, m.HasNext, "HasNext")
		})
	}
}

func TestNewPaginationMeta_ZeroCountDoesNotPanic(t *testing.T) {
	assert.NotPanics(t, func() {
		m := NewPaginationMeta(1, 0, 0)
		assert.Equal(t, 0, m.TotalPages)
		assert.Empty(t, m.PageNumbers())
		assert.False(t, m.ShowLast())
	})
}

func TestPageNumbers_SlidingWindow(t *testing.T) {
	tests := []struct {
		name       string
		page       int
		totalPages int
		want       []int
	}{
		{"centered", 10, 20, []int{8, 9, 10, 11, 12}},
		{"clamped at start", 1, 20, []int{1, 2, 3, 4, 5}},
		{"near start", 2, 20, []int{1, 2, 3, 4, 5}},
		{"clamped at end", 20, 20, []int{16, 17, 18, 19, 20}},
		{"near end", 19, 20, []int{16, 17, 18, 19, 20}},
		{"fewer pages than window", 2, 3, []int{1, 2, 3}},
		{"single page", 1, 1, []int{1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := PaginationMeta{CurrentPage: tt.page, TotalPages: tt.totalPages}
			assert.Equal(t, tt.want, m.PageNumbers())
		})
	}
}

func TestShowLast_SuppressedNearEnd(t *testing.T) {
	// Shortcut shown only when more than 3 pages remain after the current one.
	assert.True(t, PaginationMeta{CurrentPage: 1, TotalPages: 10}.ShowLast())
	assert.True(t, PaginationMeta{CurrentPage: 6, TotalPages: 10}.ShowLast())
	assert.False(t, PaginationMeta{CurrentPage: 7, TotalPages: 10}.ShowLast())
	assert.False(t, PaginationMeta{CurrentPage: 10, TotalPages: 10}.ShowLast())
	assert.False(t, PaginationMeta{CurrentPage: 1, TotalPages: 0}.ShowLast())
}

func TestSlicePage(t *testing.T) {
	rows := make([]int, 45)
	for i := range rows {
		rows[i] = i
	}

	assert.Len(t, SlicePage(rows, 1, 20), 20)
	assert.Len(t, SlicePage(rows, 2, 20), 20)
	assert.Len(t, SlicePage(rows, 3, 20), 5)
	assert.Empty(t, SlicePage(rows, 4, 20))
	assert.Equal(t, 20, SlicePage(rows, 2, 20)[0])

	// Pages partition the full set.
	total := 0
	for page := 1; ; page++ {
		w := SlicePage(rows, page, 20)
		if len(w) == 0 {
			break
		}
		total += len(w)
	}
	assert.Equal(t, len(rows), total)
}

func TestNeedsPaging(t *testing.T) {
	assert.False(t, NeedsPaging(make([]int, 20), 20))
	assert.True(t, NeedsPaging(make([]int, 21), 20))
	assert.False(t, NeedsPaging([]int{}, 20))
}
