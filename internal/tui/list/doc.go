// Package listview provides the selectable list container for Bubble Tea.
//
// The container owns the rows and the single selection state. It renders one
// rowitem per row in input order, hands each row a deferred activation
// callback bound to that row's position, and derives each row's selected flag
// by comparing the selection with the row's position. Key properties:
//   - At most one row is selected; clicking a selected row keeps it selected
//   - Mouse clicks hit-test by line; keyboard focus moves independently of
//     selection and enter activates the focused row
//   - Rows whose props are unchanged reuse their cached render, keyed by the
//     row's stable key
//   - Only rows inside the viewport are drawn once the window height is known
package listview
