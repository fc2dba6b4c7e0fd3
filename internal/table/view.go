package table

import (
	"slices"

	"github.com/MKhiriev/go-xref/models"
)

// PageSizes are the page sizes offered by the usage table.
var PageSizes = []int{10, 25, 50}

// DefaultPageSize is the initial page size of a View.
const DefaultPageSize = 10

// Page is one rendered window of a View.
type Page struct {
	Rows       []models.UsageRow
	Page       int
	TotalPages int
	// Total is the number of rows after filtering.
	Total int
	// Offset is the zero-based index of Rows[0] within the filtered rows.
	Offset int
}

// View holds the usage table's presentation state over an immutable
// snapshot of rows. It is not safe for concurrent use.
type View struct {
	source   []models.UsageRow
	filter   string
	key      SortKey
	dir      Direction
	page     int
	pageSize int

	// derived caches the filtered and sorted rows; page moves only reslice it.
	derived []models.UsageRow
	stale   bool
}

// NewView returns a view over a private copy of rows, sorted by search
// count descending, on page 1.
func NewView(rows []models.UsageRow) *View {
	return &View{
		source:   slices.Clone(rows),
		key:      SortBySearchCount,
		dir:      Desc,
		page:     1,
		pageSize: DefaultPageSize,
		stale:    true,
	}
}

// Replace swaps in a new snapshot of rows, keeping the filter, sort and
// page size. The view returns to page 1.
func (v *View) Replace(rows []models.UsageRow) {
	v.source = slices.Clone(rows)
	v.stale = true
	v.page = 1
}

// SetFilter changes the filter text and returns to page 1.
func (v *View) SetFilter(text string) {
	v.filter = text
	v.stale = true
	v.page = 1
}

// Filter returns the current filter text.
func (v *View) Filter() string { return v.filter }

// ToggleSort flips the direction when key is already active; otherwise it
// selects key in descending order. Either way the view returns to page 1.
func (v *View) ToggleSort(key SortKey) {
	if v.key == key {
		v.dir = v.dir.Flip()
	} else {
		v.key = key
		v.dir = Desc
	}
	v.stale = true
	v.page = 1
}

// SortState returns the active sort key and direction.
func (v *View) SortState() (SortKey, Direction) { return v.key, v.dir }

// SetPageSize changes the page size and returns to page 1. Non-positive
// sizes are ignored.
func (v *View) SetPageSize(size int) {
	if size < 1 {
		return
	}
	v.pageSize = size
	v.page = 1
}

// PageSize returns the current page size.
func (v *View) PageSize() int { return v.pageSize }

// CyclePageSize advances to the next entry of PageSizes.
func (v *View) CyclePageSize() {
	i := slices.Index(PageSizes, v.pageSize)
	v.SetPageSize(PageSizes[(i+1)%len(PageSizes)])
}

// SetPage moves the window; the value is clamped when rows are computed.
func (v *View) SetPage(page int) {
	v.page = page
}

// NextPage moves the window forward one page, stopping at the last page.
func (v *View) NextPage() { v.movePage(1) }

// PrevPage moves the window back one page, stopping at page 1.
func (v *View) PrevPage() { v.movePage(-1) }

func (v *View) movePage(delta int) {
	n := len(v.rows())
	v.page = ClampPage(ClampPage(v.page, n, v.pageSize)+delta, n, v.pageSize)
}

// Rows derives the visible page: filter, then sort, then paginate.
func (v *View) Rows() Page {
	filtered := v.rows()
	rows, page := Paginate(filtered, v.page, v.pageSize)

	return Page{
		Rows:       rows,
		Page:       page,
		TotalPages: TotalPages(len(filtered), v.pageSize),
		Total:      len(filtered),
		Offset:     (page - 1) * v.pageSize,
	}
}

// rows returns the filtered and sorted rows, rebuilding them only after the
// snapshot, filter or sort changed.
func (v *View) rows() []models.UsageRow {
	if v.stale {
		v.derived = Sort(Filter(v.source, v.filter), v.key, v.dir)
		v.stale = false
	}
	return v.derived
}

// Len returns the number of rows in the snapshot.
func (v *View) Len() int { return len(v.source) }

// TotalSearches sums search counts over the whole snapshot, ignoring the
// filter. It is the denominator of the share column.
func (v *View) TotalSearches() int {
	return TotalSearches(v.source)
}
