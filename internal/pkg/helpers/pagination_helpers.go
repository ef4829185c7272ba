package helpers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/cariesreview/catalog/internal/app/models/dto"
)

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
	DefaultPage     = 1 // Default page is 1-based
)

// NormalizePageSize replaces a missing or oversized page size with the default.
func NormalizePageSize(size int) int {
	if size <= 0 || size > MaxPageSize {
		return DefaultPageSize
	}
	return size
}

// TotalPages returns the number of pages needed for totalItems, never less
// than one.
func TotalPages(totalItems int64, size int) int {
	if size <= 0 {
		size = DefaultPageSize
	}
	if totalItems <= 0 {
		return 1
	}
	return int((totalItems + int64(size) - 1) / int64(size))
}

// ClampPage moves page into [1, TotalPages].
func ClampPage(page, size int, totalItems int64) int {
	if page < 1 {
		return DefaultPage
	}
	if last := TotalPages(totalItems, size); page > last {
		return last
	}
	return page
}

// CalculateOffsetLimit calculates the offset and limit for SQL queries based on 1-based page index.
func CalculateOffsetLimit(page, size int) (offset uint64, limit uint64) {
	size = NormalizePageSize(size)
	if page < 1 {
		page = DefaultPage
	}
	return uint64((page - 1) * size), uint64(size)
}

// NewPaginationInfo creates a standard PaginationInfo DTO.
// page should be the 1-based page number.
func NewPaginationInfo(totalItems int64, page, size int) dto.PaginationInfo {
	if size <= 0 {
		size = DefaultPageSize
	}
	totalPages := TotalPages(totalItems, size)
	currentPage := ClampPage(page, size, totalItems)

	return dto.PaginationInfo{
		CurrentPage: currentPage,
		TotalPages:  totalPages,
		PageSize:    size,
		TotalItems:  totalItems,
		HasPrevious: currentPage > 1,
		HasNext:     currentPage < totalPages,
	}
}

// ParsePage reads the 1-based ?page= parameter. Missing or malformed values
// fall back to the first page.
func ParsePage(c *gin.Context) int {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		return DefaultPage
	}
	return page
}
