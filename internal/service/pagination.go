package service

import (
	"math"

	"github.com/shramik/admin-backend/internal/response"
)

const (
	defaultPerPage = 10
	maxPerPage     = 100
)

// pageWindow clamps page/perPage and returns the matching limit and offset.
func pageWindow(page, perPage int) (int, int, int, int) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = defaultPerPage
	}
	if perPage > maxPerPage {
		perPage = maxPerPage
	}
	// Keeps (page-1)*perPage from overflowing into a negative offset.
	if limit := math.MaxInt32 / perPage; page > limit {
		page = limit
	}
	return page, perPage, perPage, (page - 1) * perPage
}

func buildPagination(page, perPage, total int) *response.Pagination {
	return &response.Pagination{
		Page:       page,
		PerPage:    perPage,
		TotalItems: total,
		TotalPages: (total + perPage - 1) / perPage,
	}
}
