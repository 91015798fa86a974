package queryparams

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidate_Defaults(t *testing.T) {
	var p ListParams
	p.Validate()
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, DefaultPerPage, p.PerPage)
	assert.Equal(t, DefaultOrderBy, p.OrderBy)
}

func TestValidate_Clamps(t *testing.T) {
	p := ListParams{Page: -3, PerPage: 500, OrderBy: "sideways"}
	p.Validate()
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, MaxPerPage, p.PerPage)
	assert.Equal(t, "asc", p.OrderBy)

	p = ListParams{Page: 7, PerPage: 10, OrderBy: "desc"}
	p.Validate()
	assert.Equal(t, 7, p.Page)
	assert.Equal(t, "desc", p.OrderBy)
}

func TestCalculateOffset(t *testing.T) {
	assert.Equal(t, 0, ListParams{Page: 1, PerPage: 20}.CalculateOffset())
	assert.Equal(t, 20, ListParams{Page: 2, PerPage: 20}.CalculateOffset())
	assert.Equal(t, 90, ListParams{Page: 10, PerPage: 10}.CalculateOffset())
}
