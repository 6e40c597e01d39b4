package repositories

import (
	"database/sql"
	"sort"
	"strings"

	"shopbackend/internal/domain"
)

// FilterParams carries the client-declared listing parameters, untrusted
// and already decoded from the request by the handler. Limit and Skip are
// nil when absent or non-numeric.
type FilterParams struct {
	SortBy  string
	Order   string
	Limit   *int
	Skip    *int
	Filters map[string][]any
}

// BuildFilterSpec normalizes client parameters into a FilterSpec.
// Defaults: sort by the primary id ascending, limit 100. Skip has no
// default: an absent or unparseable value stays a null offset.
func BuildFilterSpec(p FilterParams) domain.FilterSpec {
	spec := domain.FilterSpec{
		SortField: "id",
		SortOrder: "asc",
		Limit:     100,
		Predicate: domain.Predicate{Fields: map[string][]any{}},
	}

	if s := strings.TrimSpace(p.SortBy); s != "" {
		spec.SortField = s
	}
	if o := strings.TrimSpace(p.Order); o != "" {
		spec.SortOrder = o
	}
	if p.Limit != nil {
		spec.Limit = *p.Limit
	}
	if p.Skip != nil {
		spec.Skip = sql.NullInt64{Int64: int64(*p.Skip), Valid: true}
	}

	var priceBounds []any
	for key, vals := range p.Filters {
		if len(vals) == 0 {
			continue
		}
		if key == "price" {
			priceBounds = vals
			continue
		}
		// Field names are not validated against the product model here;
		// unknown fields pass through to the executor unchanged.
		spec.Predicate.Fields[key] = vals
	}
	if priceBounds != nil {
		applyPriceRange(&spec.Predicate, priceBounds)
	}

	return spec
}

// applyPriceRange builds the [lowerBound, upperBound] matcher for price and
// REPLACES the entire predicate accumulated so far. Inherited from the
// legacy API, which assigned the range over the whole filter object instead
// of merging; pinned by tests so a future merge fix is a one-line change.
func applyPriceRange(p *domain.Predicate, bounds []any) {
	rng := domain.PriceRange{}
	if len(bounds) > 0 {
		rng.Low = bounds[0]
	}
	if len(bounds) > 1 {
		rng.High = bounds[1]
	}
	*p = domain.Predicate{Price: &rng}
}

// columnFor maps wire field names onto products columns. Anything unknown
// passes through with only identifier sanitization, so a bogus field name
// surfaces as a store error on the read path, never as SQL of its own.
func columnFor(field string) string {
	switch field {
	case "", "_id", "id":
		return "id"
	case "brand":
		return "brand_id"
	case "productType":
		return "product_type_id"
	case "createdAt":
		return "created_at"
	case "updatedAt":
		return "updated_at"
	default:
		return sanitizeIdent(field)
	}
}

func sanitizeIdent(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r == '_' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return "id"
	}
	return b.String()
}

func orderKeyword(order string) string {
	if strings.EqualFold(strings.TrimSpace(order), "desc") {
		return "DESC"
	}
	return "ASC"
}

// renderPredicate turns a predicate into a WHERE fragment (without the
// keyword) plus its args. Equality matchers bind every element of the
// literal array: a single element behaves as plain equality, several
// elements demand the column equal all of them at once and match nothing,
// mirroring exact-match (not any-of) semantics.
func renderPredicate(p domain.Predicate) (string, []any) {
	if p.Price != nil {
		conds := []string{}
		args := []any{}
		if p.Price.Low != nil {
			conds = append(conds, "p.price >= ?")
			args = append(args, p.Price.Low)
		}
		if p.Price.High != nil {
			conds = append(conds, "p.price <= ?")
			args = append(args, p.Price.High)
		}
		return strings.Join(conds, " AND "), args
	}

	fields := make([]string, 0, len(p.Fields))
	for f := range p.Fields {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	conds := []string{}
	args := []any{}
	for _, f := range fields {
		col := columnFor(f)
		for _, v := range p.Fields[f] {
			conds = append(conds, "p.`"+col+"` = ?")
			args = append(args, v)
		}
	}
	return strings.Join(conds, " AND "), args
}
