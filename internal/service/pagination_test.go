package service

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPageWindow(t *testing.T) {
	cases := []struct {
		name                  string
		page, perPage         int
		wantPage, wantPerPage int
		wantOffset            int
	}{
		{"defaults", 0, 0, 1, defaultPerPage, 0},
		{"second page", 2, 25, 2, 25, 25},
		{"per page capped", 1, 1000, 1, maxPerPage, 0},
		{"negative page", -4, 10, 1, 10, 0},
		{"huge page", math.MaxInt, 10, math.MaxInt32 / 10, 10, (math.MaxInt32/10 - 1) * 10},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			page, perPage, limit, offset := pageWindow(tc.page, tc.perPage)
			assert.Equal(t, tc.wantPage, page)
			assert.Equal(t, tc.wantPerPage, perPage)
			assert.Equal(t, perPage, limit)
			assert.Equal(t, tc.wantOffset, offset)
			assert.GreaterOrEqual(t, offset, 0)
		})
	}
}
