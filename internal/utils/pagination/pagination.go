package pagination

// DefaultLimit is used when a caller does not ask for a page size.
const DefaultLimit = 20

// TotalPages returns ceil(totalCount / pageSize), or 0 when there is nothing to show.
func TotalPages(totalCount, pageSize int) int {
	if totalCount <= 0 || pageSize <= 0 {
		return 0
	}
	return (totalCount + pageSize - 1) / pageSize
}

// Offset converts a 1-based page number into a row offset.
func Offset(page, limit int) int {
	if page < 1 || limit <= 0 {
		return 0
	}
	return (page - 1) * limit
}

// ClampLimit applies the default for non-positive limits and caps the rest at max.
func ClampLimit(limit, max int) int {
	if limit <= 0 {
		return DefaultLimit
	}
	if max > 0 && limit > max {
		return max
	}
	return limit
}
