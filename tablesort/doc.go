// Package tablesort sorts two-column numeric tables with a recursive,
// in-place merge sort over an inclusive row range.
//
// # Algorithm
//
// The sort is classic top-down merge sort:
//   - The range [left, right] is split at the floor midpoint until each
//     sub-range holds a single row
//   - Adjacent sorted halves are merged through a scratch buffer sized to
//     the merged range, then copied back in place
//   - Ties take the row from the left half, so the sort is stable
//
// Rows outside [left, right] are never read or written.
//
// # Ordering
//
// Rows are ordered by one column, X (ColumnX) or Y (ColumnY), ascending or
// descending. Values use IEEE ordering with -0 equal to +0. NaN orders
// after every number and equal to another NaN, so NaN rows end up last when
// ascending and first when descending.
//
// # Example Usage
//
//	import "github.com/ajroetker/go-tablesort/tablesort"
//
//	func ByY(t tablesort.Table) error {
//	    return tablesort.SortAll(t, tablesort.Descending, tablesort.ColumnY)
//	}
//
// ArraySort is the entry point for interactive front ends: it never panics
// and returns the original table alongside a descriptive error on failure.
//
// # Errors
//
// Arguments are validated before the table is touched. Failures match
// ErrIndexOutOfRange, ErrInvalidRange, ErrInvalidColumn and
// ErrInvalidDirection with errors.Is.
package tablesort
