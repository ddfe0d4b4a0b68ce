package db

const (
	DefaultPageSize = 10
	DefaultPage     = 1
)

// PageCount returns the number of pages needed for total items. An empty
// collection still has one (empty) page.
func PageCount(total int64, pageSize int) int {
	if total <= 0 {
		return 1
	}
	pages := int((total + int64(pageSize) - 1) / int64(pageSize))
	return pages
}

// ClampPage normalizes a requested 1-based page against the collection
// size: anything below 1 becomes the first page, anything past the end
// becomes the last page. Returns the effective page and its row offset.
func ClampPage(page int, total int64, pageSize int) (int, int) {
	if page < DefaultPage {
		page = DefaultPage
	}
	if last := PageCount(total, pageSize); page > last {
		page = last
	}
	offset := (page - 1) * pageSize
	return page, offset
}
