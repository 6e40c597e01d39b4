package domain

import "database/sql"

// Role is the two-tier account scheme: zero is a standard account, any
// nonzero value is an administrator. The wire form stays a plain integer.
type Role int

const (
	RoleStandard Role = 0
	RoleAdmin    Role = 1
)

func (r Role) IsAdmin() bool { return r != RoleStandard }

// PriceRange is the two-bound matcher built from a client-supplied
// [lowerBound, upperBound] pair. Bounds keep the literal values sent.
type PriceRange struct {
	Low  any
	High any
}

// Predicate maps product fields to equality matchers, or holds a single
// price range. When Price is set, Fields is empty: building the range
// replaces everything accumulated before it.
type Predicate struct {
	Fields map[string][]any
	Price  *PriceRange
}

// FilterSpec is the normalized, request-scoped description of
// sort/pagination/predicate used to query products.
type FilterSpec struct {
	SortField string
	SortOrder string
	Limit     int
	// Skip stays invalid when the client sent nothing parseable; the
	// executor decides what an invalid offset means, not the builder.
	Skip      sql.NullInt64
	Predicate Predicate
}
