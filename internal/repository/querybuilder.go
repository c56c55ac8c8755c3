package repository

import (
	"fmt"
	"math"
	"strings"
)

// DefaultSearchLimit is applied whenever a caller does not supply a
// positive row limit.
const DefaultSearchLimit = 10

// PropertyFilter expresses the optional predicates of a property search.
// Nil/empty fields mean "no constraint". Prices are in major currency
// units (dollars); they are converted to minor units at build time.
type PropertyFilter struct {
	// City is matched as a substring of the property's city.
	City string

	// OwnerID restricts results to listings owned by this user.
	OwnerID *int64

	// MinPricePerNight and MaxPricePerNight bound the nightly cost,
	// inclusive on both ends.
	MinPricePerNight *float64
	MaxPricePerNight *float64

	// MinRating keeps only properties with a review rating of at least
	// this value. Coerced to an integer before binding.
	MinRating *float64
}

// IsZero reports whether no criterion is present.
func (f PropertyFilter) IsZero() bool {
	return f.City == "" &&
		f.OwnerID == nil &&
		f.MinPricePerNight == nil &&
		f.MaxPricePerNight == nil &&
		f.MinRating == nil
}

// queryBuilder accumulates WHERE conditions and their bind arguments,
// keeping the two in lockstep: a condition's placeholder number is the
// 1-based position of its argument at the moment it is appended.
type queryBuilder struct {
	conditions []string
	args       []any
}

// add appends arg to the argument list and formats condition with the
// argument's 1-based position. condition must contain exactly one "$%d".
func (qb *queryBuilder) add(condition string, arg any) {
	qb.args = append(qb.args, arg)
	qb.conditions = append(qb.conditions, fmt.Sprintf(condition, len(qb.args)))
}

// whereClause renders the accumulated conditions: empty when there are
// none, otherwise a single WHERE with the conditions joined by AND.
func (qb *queryBuilder) whereClause() string {
	if len(qb.conditions) == 0 {
		return ""
	}
	return "WHERE " + strings.Join(qb.conditions, " AND ") + "\n"
}

// ToMinorUnits converts a major-unit price (dollars) to the integer
// minor units (cents) every persisted monetary value is stored in.
func ToMinorUnits(major float64) int64 {
	return int64(math.Round(major * 100))
}

const propertySearchBase = `SELECT properties.*, avg(property_reviews.rating) AS average_rating
FROM properties
JOIN property_reviews ON properties.id = property_reviews.property_id
`

// buildPropertySearch translates a filter and row limit into a query
// string with positional placeholders and the matching argument list.
//
// Criteria are applied in a fixed order — city, owner, minimum price,
// maximum price, minimum rating — and placeholders are numbered by
// insertion order, so the returned text and args must always travel
// together. The limit is bound as the final parameter.
func buildPropertySearch(filter PropertyFilter, limit int) (string, []any) {
	if limit <= 0 {
		limit = DefaultSearchLimit
	}

	qb := &queryBuilder{}

	if filter.City != "" {
		qb.add("properties.city LIKE $%d", "%"+filter.City+"%")
	}
	if filter.OwnerID != nil {
		qb.add("properties.owner_id = $%d", *filter.OwnerID)
	}
	if filter.MinPricePerNight != nil {
		qb.add("properties.cost_per_night >= $%d", ToMinorUnits(*filter.MinPricePerNight))
	}
	if filter.MaxPricePerNight != nil {
		qb.add("properties.cost_per_night <= $%d", ToMinorUnits(*filter.MaxPricePerNight))
	}
	if filter.MinRating != nil {
		qb.add("property_reviews.rating >= $%d", int(*filter.MinRating))
	}

	qb.args = append(qb.args, limit)
	query := propertySearchBase + qb.whereClause() + fmt.Sprintf(
		"GROUP BY properties.id\nORDER BY properties.cost_per_night\nLIMIT $%d", len(qb.args))

	return query, qb.args
}
