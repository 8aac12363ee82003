package controller

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// Pagination is the list-response envelope block.
type Pagination struct {
	Current int   `json:"current"`
	Pages   int   `json:"pages"`
	Total   int64 `json:"total"`
}

func newPagination(page, limit int, total int64) Pagination {
	pages := 0
	if limit > 0 {
		pages = int((total + int64(limit) - 1) / int64(limit))
	}
	return Pagination{
		Current: page,
		Pages:   pages,
		Total:   total,
	}
}

const maxPageSize = 100

// listParams are the query parameters shared by all list endpoints.
type listParams struct {
	Page          int
	Limit         int
	SortBy        string
	SortAscending bool
}

func parseListParams(c *gin.Context, defaultLimit int) listParams {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}

	limit, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultLimit)))
	if err != nil || limit < 1 {
		limit = defaultLimit
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}

	return listParams{
		Page:          page,
		Limit:         limit,
		SortBy:        c.Query("sortBy"),
		SortAscending: c.Query("sortOrder") == "asc",
	}
}

func parseIDParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}
