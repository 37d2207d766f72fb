package repositories

import "strings"

// DefaultPageSize applies when a listing request does not name a size.
const DefaultPageSize = 20

// PageRequest carries the externally supplied page number (zero-based), page
// size and sort order for a listing query.
type PageRequest struct {
	Page int
	Size int
	Sort string // "field" or "field,desc"
}

// NewPageRequest normalizes raw paging parameters.
func NewPageRequest(page, size int, sort string) PageRequest {
	if page < 0 {
		page = 0
	}
	if size <= 0 {
		size = DefaultPageSize
	}
	return PageRequest{Page: page, Size: size, Sort: sort}
}

// Offset returns the row offset for this page.
func (p PageRequest) Offset() int {
	return p.Page * p.Size
}

// sortable whitelists the product columns a client may order by.
var sortable = map[string]bool{
	"id":    true,
	"name":  true,
	"price": true,
}

// OrderClause translates the sort parameter into a safe ORDER BY expression.
// Unknown columns fall back to the primary key so paging stays deterministic.
func (p PageRequest) OrderClause() string {
	column := "id"
	direction := "asc"
	if parts := strings.SplitN(p.Sort, ",", 2); parts[0] != "" {
		if sortable[strings.ToLower(strings.TrimSpace(parts[0]))] {
			column = strings.ToLower(strings.TrimSpace(parts[0]))
		}
		if len(parts) == 2 && strings.EqualFold(strings.TrimSpace(parts[1]), "desc") {
			direction = "desc"
		}
	}
	return column + " " + direction
}

// Page is one slice of a listing plus the metadata needed to walk the rest.
type Page[T any] struct {
	Content       []T   `json:"content"`
	Page          int   `json:"page"`
	Size          int   `json:"size"`
	TotalElements int64 `json:"totalElements"`
	TotalPages    int   `json:"totalPages"`
}

// NewPage assembles a page envelope, deriving the page count from the total.
func NewPage[T any](content []T, req PageRequest, total int64) Page[T] {
	pages := int(total) / req.Size
	if int(total)%req.Size != 0 {
		pages++
	}
	return Page[T]{
		Content:       content,
		Page:          req.Page,
		Size:          req.Size,
		TotalElements: total,
		TotalPages:    pages,
	}
}

// MapPage converts a page's content while preserving order and metadata.
func MapPage[T, U any](p Page[T], f func(*T) U) Page[U] {
	out := make([]U, 0, len(p.Content))
	for i := range p.Content {
		out = append(out, f(&p.Content[i]))
	}
	return Page[U]{
		Content:       out,
		Page:          p.Page,
		Size:          p.Size,
		TotalElements: p.TotalElements,
		TotalPages:    p.TotalPages,
	}
}
