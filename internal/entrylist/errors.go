package entrylist

import "errors"

var (
	// ErrPageOutOfRange is returned by page navigation outside 1..TotalPages. No fetch is issued.
	ErrPageOutOfRange = errors.New("page out of range")

	// ErrSuperseded is returned when a newer fetch was issued before this one settled.
	// The response has been discarded and state left untouched.
	ErrSuperseded = errors.New("superseded by a newer request")

	// ErrInvalidDateRange is returned under DateRangeReject when from is after to.
	ErrInvalidDateRange = errors.New("date from is after date to")

	// ErrNoPendingDelete is returned by ConfirmDelete when no deletion was requested.
	ErrNoPendingDelete = errors.New("no deletion pending")
)
