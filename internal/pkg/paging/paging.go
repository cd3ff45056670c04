// Package paging implements the generic filter/sort/paginate helper consumed
// by all list queries. It turns a raw query map into a validated page request
// and computes result-page metadata.
package paging

import (
	"strconv"
	"strings"
)

const (
	// DefaultLimit is used when the raw query carries no limit.
	DefaultLimit = 20

	// MaxLimit caps the page size a caller may request.
	MaxLimit = 200
)

// Request is a validated page request extracted from a raw query map.
type Request struct {
	Page   int
	Limit  int
	Sort   string
	Search string
}

// Meta describes a result page.
type Meta struct {
	Page      int   `json:"page"`
	Limit     int   `json:"limit"`
	TotalPage int   `json:"totalPage"`
	TotalDoc  int64 `json:"totalDoc"`
}

// FromQuery builds a Request from a raw query map. Recognized keys are
// "page", "limit", "sort" and "search"; everything else is left for the
// caller's own filters. Out-of-range values are clamped rather than rejected.
func FromQuery(raw map[string]string) Request {
	req := Request{Page: 1, Limit: DefaultLimit}

	if v, ok := raw["page"]; ok {
		if page, err := strconv.Atoi(v); err == nil && page > 0 {
			req.Page = page
		}
	}

	if v, ok := raw["limit"]; ok {
		if limit, err := strconv.Atoi(v); err == nil && limit > 0 {
			req.Limit = min(limit, MaxLimit)
		}
	}

	req.Sort = sanitizeSort(raw["sort"])
	req.Search = strings.TrimSpace(raw["search"])

	return req
}

// Offset returns the row offset for the request.
func (r Request) Offset() int {
	return (r.Page - 1) * r.Limit
}

// MetaFor computes page metadata for a total document count.
func (r Request) MetaFor(totalDoc int64) Meta {
	totalPage := int((totalDoc + int64(r.Limit) - 1) / int64(r.Limit))
	return Meta{
		Page:      r.Page,
		Limit:     r.Limit,
		TotalPage: totalPage,
		TotalDoc:  totalDoc,
	}
}

// sanitizeSort accepts "field" or "-field" specs and rewrites them as SQL
// order clauses. Field names are restricted to identifier characters so the
// value can be interpolated into a query.
func sanitizeSort(spec string) string {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return ""
	}

	desc := strings.HasPrefix(spec, "-")
	field := strings.TrimPrefix(spec, "-")
	for _, r := range field {
		validRune := r == '_' ||
			(r >= 'a' && r <= 'z') ||
			(r >= 'A' && r <= 'Z') ||
			(r >= '0' && r <= '9')
		if !validRune {
			return ""
		}
	}

	if desc {
		return field + " DESC"
	}
	return field + " ASC"
}
