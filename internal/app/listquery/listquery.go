// Package listquery turns raw collection query parameters into a structured
// query plan: filter predicates, sort order, field projection and pagination.
// The plan is applied to a squirrel builder by the calling repository; this
// package never touches the database itself.
package listquery

import (
	"encoding/json"
	"fmt"
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"github.com/Masterminds/squirrel"

	"github.com/mattwebdev/devcamper/internal/app/models/dto"
	"github.com/mattwebdev/devcamper/internal/pkg/apperrors"
)

const (
	DefaultPage  = 1
	DefaultLimit = 25
	MaxLimit     = 100
)

// Reserved parameter names consumed by the builder, never part of the filter
// predicate.
var reservedParams = map[string]bool{
	"select": true,
	"sort":   true,
	"page":   true,
	"limit":  true,
}

// Op is a comparison operator recognized in filter parameters
type Op string

const (
	OpEq  Op = "eq"
	OpLt  Op = "lt"
	OpLte Op = "lte"
	OpGt  Op = "gt"
	OpGte Op = "gte"
	OpIn  Op = "in"
)

// operatorKey matches keys of the form field[op], e.g. tuition[gte]
var operatorKey = regexp.MustCompile(`^([A-Za-z][A-Za-z0-9_]*)\[(lt|lte|gt|gte|in)\]$`)

// Filter is a single structured constraint derived from one query parameter
type Filter struct {
	Field string // query-facing field name
	Op    Op
	Value interface{} // string, or []string for OpIn
}

// SortField is one component of the requested sort order
type SortField struct {
	Field string
	Desc  bool
}

// Resource describes the queryable surface of a collection: which
// query-facing field names are allowed and which database columns they map to.
type Resource struct {
	Table       string
	Columns     map[string]string // field name -> column name
	Arrays      map[string]bool   // fields backed by Postgres array columns
	DefaultSort string            // column for the default order, descending
}

// Query is a fully-specified list query plan
type Query struct {
	res     Resource
	Filters []Filter
	Sort    []SortField
	Select  []string // projected field names; empty means all
	Page    int
	Limit   int
}

// Parse builds a query plan from raw query parameters. Reserved parameters
// (select, sort, page, limit) are consumed; every other parameter becomes a
// filter. Unknown filter or sort fields are rejected.
func Parse(values url.Values, res Resource) (*Query, error) {
	q := &Query{
		res:   res,
		Page:  DefaultPage,
		Limit: DefaultLimit,
	}

	for key, vals := range values {
		if reservedParams[key] || len(vals) == 0 {
			continue
		}

		field, op := key, OpEq
		if m := operatorKey.FindStringSubmatch(key); m != nil {
			field, op = m[1], Op(m[2])
		}

		if _, ok := res.Columns[field]; !ok {
			return nil, apperrors.NewBadRequestError(fmt.Sprintf("cannot filter on field %q", field))
		}
		if res.Arrays[field] && op != OpEq && op != OpIn {
			return nil, apperrors.NewBadRequestError(fmt.Sprintf("operator %q is not supported on field %q", op, field))
		}

		var value interface{} = vals[0]
		if op == OpIn {
			value = strings.Split(vals[0], ",")
		}

		q.Filters = append(q.Filters, Filter{Field: field, Op: op, Value: value})
	}

	if err := q.parseSort(values.Get("sort")); err != nil {
		return nil, err
	}
	q.parseSelect(values.Get("select"))
	q.parsePage(values.Get("page"), values.Get("limit"))

	return q, nil
}

func (q *Query) parseSort(raw string) error {
	if raw == "" {
		return nil
	}
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		sf := SortField{Field: part}
		if strings.HasPrefix(part, "-") {
			sf.Field = part[1:]
			sf.Desc = true
		}
		if _, ok := q.res.Columns[sf.Field]; !ok {
			return apperrors.NewBadRequestError(fmt.Sprintf("cannot sort on field %q", sf.Field))
		}
		q.Sort = append(q.Sort, sf)
	}
	return nil
}

func (q *Query) parseSelect(raw string) {
	if raw == "" {
		return
	}
	seen := map[string]bool{}
	for _, field := range strings.Split(raw, ",") {
		field = strings.TrimSpace(field)
		if field == "" || seen[field] {
			continue
		}
		seen[field] = true
		q.Select = append(q.Select, field)
	}
	// identity is always projected
	if !seen["id"] {
		q.Select = append(q.Select, "id")
	}
}

func (q *Query) parsePage(pageRaw, limitRaw string) {
	if page, err := strconv.Atoi(pageRaw); err == nil && page >= 1 {
		q.Page = page
	}
	if limit, err := strconv.Atoi(limitRaw); err == nil && limit >= 1 && limit <= MaxLimit {
		q.Limit = limit
	}
}

// Offset returns the number of rows skipped before the current page
func (q *Query) Offset() int {
	return (q.Page - 1) * q.Limit
}

// ApplyFilters adds the filter predicate to a squirrel builder. Used on both
// the page query and the count query so the total reflects the filtered set.
func (q *Query) ApplyFilters(b squirrel.SelectBuilder) squirrel.SelectBuilder {
	for _, f := range q.Filters {
		col := q.res.Columns[f.Field]

		// Array columns take membership and overlap predicates; pgx encodes
		// the []string value as a Postgres array parameter.
		if q.res.Arrays[f.Field] {
			if f.Op == OpIn {
				b = b.Where(squirrel.Expr(col+" && ?", f.Value))
			} else {
				b = b.Where(squirrel.Expr("? = ANY("+col+")", f.Value))
			}
			continue
		}

		switch f.Op {
		case OpLt:
			b = b.Where(squirrel.Lt{col: f.Value})
		case OpLte:
			b = b.Where(squirrel.LtOrEq{col: f.Value})
		case OpGt:
			b = b.Where(squirrel.Gt{col: f.Value})
		case OpGte:
			b = b.Where(squirrel.GtOrEq{col: f.Value})
		default:
			// OpEq and OpIn; squirrel renders IN for slice values
			b = b.Where(squirrel.Eq{col: f.Value})
		}
	}
	return b
}

// Apply adds filters, sort order and the page window to a squirrel builder
func (q *Query) Apply(b squirrel.SelectBuilder) squirrel.SelectBuilder {
	b = q.ApplyFilters(b)

	if len(q.Sort) == 0 {
		b = b.OrderBy(q.res.DefaultSort + " DESC")
	} else {
		for _, sf := range q.Sort {
			dir := " ASC"
			if sf.Desc {
				dir = " DESC"
			}
			b = b.OrderBy(q.res.Columns[sf.Field] + dir)
		}
	}

	return b.Limit(uint64(q.Limit)).Offset(uint64(q.Offset()))
}

// Paginate builds the pagination descriptor for a filtered total
func (q *Query) Paginate(total int64) *dto.Pagination {
	p := &dto.Pagination{
		Page:  q.Page,
		Limit: q.Limit,
		Total: total,
	}
	if int64(q.Page*q.Limit) < total {
		p.Next = &dto.PageRef{Page: q.Page + 1, Limit: q.Limit}
	}
	if q.Page > 1 {
		p.Prev = &dto.PageRef{Page: q.Page - 1, Limit: q.Limit}
	}
	return p
}

// Project applies the select projection to a value that marshals to a JSON
// object or array of objects, keeping only the selected fields. With no
// select parameter the value passes through untouched.
func (q *Query) Project(v interface{}) interface{} {
	if len(q.Select) == 0 {
		return v
	}

	raw, err := json.Marshal(v)
	if err != nil {
		return v
	}

	keep := map[string]bool{}
	for _, f := range q.Select {
		keep[f] = true
	}

	var list []map[string]interface{}
	if err := json.Unmarshal(raw, &list); err == nil {
		for i := range list {
			list[i] = projectObject(list[i], keep)
		}
		return list
	}

	var obj map[string]interface{}
	if err := json.Unmarshal(raw, &obj); err == nil {
		return projectObject(obj, keep)
	}

	return v
}

func projectObject(obj map[string]interface{}, keep map[string]bool) map[string]interface{} {
	out := make(map[string]interface{}, len(keep))
	for k, v := range obj {
		if keep[k] {
			out[k] = v
		}
	}
	return out
}
