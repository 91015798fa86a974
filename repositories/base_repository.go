package repositories

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

// ErrNotFound is returned by every repository when a lookup matches no row.
var ErrNotFound = errors.New("record not found")

// BaseRepository carries the sort-column whitelist shared by the paginated
// finders. Row access stays in the concrete repositories, which know their
// preloads and guards.
type BaseRepository[T any] struct {
	db                 *gorm.DB
	allowedSortColumns map[string]string
}

// NewBaseRepository wraps db for records of type T.
func NewBaseRepository[T any](db *gorm.DB) *BaseRepository[T] {
	return &BaseRepository[T]{db: db, allowedSortColumns: map[string]string{}}
}

// SetAllowedSortColumns whitelists sortable columns, mapping the request name
// to the database column.
func (r *BaseRepository[T]) SetAllowedSortColumns(cols map[string]string) {
	r.allowedSortColumns = cols
}

// OrderClause builds a safe ORDER BY fragment, falling back to created_at.
func (r *BaseRepository[T]) OrderClause(sortBy, orderBy string) string {
	col, ok := r.allowedSortColumns[sortBy]
	if !ok {
		col = "created_at"
	}
	dir := strings.ToLower(orderBy)
	if dir != "asc" && dir != "desc" {
		dir = "asc"
	}
	return col + " " + dir
}

// searchPattern builds the case-insensitive substring pattern used by the
// paginated finders: LOWER(col) LIKE searchPattern(q).
func searchPattern(q string) string {
	return "%" + strings.ToLower(q) + "%"
}
