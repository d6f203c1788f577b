package entrylist

import "github.com/SscSPs/journal_entries_app/internal/utils/pagination"

// DefaultPageSize is the number of entries shown per page.
const DefaultPageSize = 20

// Recompute returns the number of pages needed for totalCount rows.
func Recompute(totalCount, pageSize int) int {
	return pagination.TotalPages(totalCount, pageSize)
}

// PageAfterDeletion picks the page to show after rowsDeleted rows were removed
// from a page that held rowsBefore. It steps back one page when the current
// page would be left empty, and never goes below 1.
func PageAfterDeletion(currentPage, rowsBefore, rowsDeleted int) int {
	if currentPage < 1 {
		return 1
	}
	if rowsBefore-rowsDeleted <= 0 && currentPage > 1 {
		return currentPage - 1
	}
	return currentPage
}
