package dashboard

import "fmt"

// pageWindowWidth is the number of page buttons shown at once.
const pageWindowWidth = 5

// Pagination describes the pagination controls for one rendered page.
type Pagination struct {
	Visible      bool
	Pages        []int
	Current      int
	TotalPages   int
	PrevDisabled bool
	NextDisabled bool
	RangeLabel   string
}

// NewPagination computes the controls for the given page position.
// Controls are hidden when there is at most one page; the range label is always set.
func NewPagination(current, totalPages, totalCount, perPage int) Pagination {
	p := Pagination{
		Current:    current,
		TotalPages: totalPages,
		RangeLabel: RangeLabel(current, perPage, totalCount),
	}
	if totalPages <= 1 {
		return p
	}
	p.Visible = true
	p.Pages = PageWindow(current, totalPages)
	p.PrevDisabled = current <= 1
	p.NextDisabled = current >= totalPages
	return p
}

// PageWindow returns the page numbers to render as buttons.
// The window starts at max(1, current-2) and ends at min(total, start+4).
func PageWindow(current, total int) []int {
	if total <= 1 {
		return nil
	}
	start := max(1, current-2)
	end := min(total, start+pageWindowWidth-1)

	pages := make([]int, 0, end-start+1)
	for i := start; i <= end; i++ {
		pages = append(pages, i)
	}
	return pages
}

// RangeLabel formats "{start}-{end} of {total}" for the current page.
func RangeLabel(current, perPage, totalCount int) string {
	start := (current-1)*perPage + 1
	end := min(current*perPage, totalCount)
	return fmt.Sprintf("%d-%d of %d", start, end, totalCount)
}
