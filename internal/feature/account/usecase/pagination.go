package usecase

// DefaultPageSize is the page size used when a request does not specify one.
const DefaultPageSize = 10

// PageInfo describes the position of a listing window within the full
// ordered result set. It is derived, never persisted.
type PageInfo struct {
	TotalQuantity   int64
	CurrentPage     int
	TotalPages      int
	HasNextPage     bool
	HasPreviousPage bool
}

// newPageInfo computes the window metadata for a total row count, a page
// size and a row offset. quantity must be positive; callers normalize it
// before querying so the metadata matches the rows actually returned.
func newPageInfo(total int64, quantity, offset int) PageInfo {
	totalPages := int((total + int64(quantity) - 1) / int64(quantity))

	return PageInfo{
		TotalQuantity:   total,
		CurrentPage:     offset / quantity,
		TotalPages:      totalPages,
		HasNextPage:     int64(offset+quantity) < total,
		HasPreviousPage: offset != 0,
	}
}
