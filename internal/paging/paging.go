// Package paging models the arithmetic of the generated PageRequest and
// PageResponse classes. The companion templates take their defaults and
// examples from here so the Java and Go sides cannot drift apart.
package paging

const (
	DefaultPage = 1
	DefaultSize = 10

	// ExampleTotalCount is the totalCount shown in generated API docs.
	ExampleTotalCount int64 = 100
)

// Request is a 1-based page request. Page and Size never drop below 1 once
// set through the setters.
type Request struct {
	Page int
	Size int
}

func NewRequest() Request {
	return Request{Page: DefaultPage, Size: DefaultSize}
}

func (r *Request) SetPage(page int) {
	r.Page = max(page, 1)
}

func (r *Request) SetSize(size int) {
	r.Size = max(size, 1)
}

// Offset is the zero-based index of the first row on the page.
func (r Request) Offset() int {
	return (r.Page - 1) * r.Size
}

// TotalPages is ceil(total / size). A size below 1 counts as 1.
func TotalPages(total int64, size int) int {
	if total <= 0 {
		return 0
	}
	s := int64(max(size, 1))
	return int((total + s - 1) / s)
}
