// Package components holds small templ fragments shared across pages.
package components

//go:generate templ generate

// Pagination describes the state of the pagination controls fragment.
type Pagination struct {
	CurrentPage int
	TotalPages  int
	TotalItems  int
	PageSize    int
	HasPrev     bool
	HasNext     bool
}
