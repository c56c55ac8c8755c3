package repository

import (
	"fmt"
	"strings"
	"testing"
)

func int64Ptr(v int64) *int64       { return &v }
func float64Ptr(v float64) *float64 { return &v }

func TestBuildPropertySearch_NoCriteria(t *testing.T) {
	query, args := buildPropertySearch(PropertyFilter{}, 10)

	if strings.Contains(query, "WHERE") {
		t.Errorf("expected no WHERE clause, got query:\n%s", query)
	}
	if len(args) != 1 {
		t.Fatalf("expected exactly one arg (the limit), got %d: %v", len(args), args)
	}
	if args[0] != 10 {
		t.Errorf("expected limit arg 10, got %v", args[0])
	}
	if !strings.Contains(query, "GROUP BY properties.id") {
		t.Errorf("missing GROUP BY clause:\n%s", query)
	}
	if !strings.Contains(query, "ORDER BY properties.cost_per_night") {
		t.Errorf("missing ORDER BY clause:\n%s", query)
	}
	if !strings.Contains(query, "LIMIT $1") {
		t.Errorf("limit should bind to $1 when no criteria are present:\n%s", query)
	}
}

func TestBuildPropertySearch_DefaultLimit(t *testing.T) {
	_, args := buildPropertySearch(PropertyFilter{}, 0)

	if len(args) != 1 || args[0] != DefaultSearchLimit {
		t.Errorf("expected default limit %d, got args %v", DefaultSearchLimit, args)
	}

	_, args = buildPropertySearch(PropertyFilter{}, -3)
	if len(args) != 1 || args[0] != DefaultSearchLimit {
		t.Errorf("expected default limit %d for negative input, got args %v", DefaultSearchLimit, args)
	}
}

func TestBuildPropertySearch_CitySubstringMatch(t *testing.T) {
	query, args := buildPropertySearch(PropertyFilter{City: "Vancouver"}, 10)

	if !strings.Contains(query, "properties.city LIKE $1") {
		t.Errorf("expected city LIKE predicate bound to $1:\n%s", query)
	}
	if args[0] != "%Vancouver%" {
		t.Errorf("city value should be wrapped in wildcards, got %v", args[0])
	}
}

func TestBuildPropertySearch_OwnerExactMatch(t *testing.T) {
	query, args := buildPropertySearch(PropertyFilter{OwnerID: int64Ptr(42)}, 10)

	if !strings.Contains(query, "properties.owner_id = $1") {
		t.Errorf("expected owner equality predicate:\n%s", query)
	}
	if args[0] != int64(42) {
		t.Errorf("owner id should bind unwrapped, got %v", args[0])
	}
	if strings.Contains(fmt.Sprint(args[0]), "%") {
		t.Errorf("owner id must not be wildcard-wrapped, got %v", args[0])
	}
}

func TestBuildPropertySearch_PricesBindAsMinorUnits(t *testing.T) {
	query, args := buildPropertySearch(PropertyFilter{
		MinPricePerNight: float64Ptr(50),
		MaxPricePerNight: float64Ptr(120.5),
	}, 10)

	if !strings.Contains(query, "properties.cost_per_night >= $1") {
		t.Errorf("expected minimum price predicate at $1:\n%s", query)
	}
	if !strings.Contains(query, "properties.cost_per_night <= $2") {
		t.Errorf("expected maximum price predicate at $2:\n%s", query)
	}
	if args[0] != int64(5000) {
		t.Errorf("minimum price 50 should bind as 5000 minor units, got %v", args[0])
	}
	if args[1] != int64(12050) {
		t.Errorf("maximum price 120.5 should bind as 12050 minor units, got %v", args[1])
	}
}

func TestBuildPropertySearch_MinRatingCoercedToInt(t *testing.T) {
	query, args := buildPropertySearch(PropertyFilter{MinRating: float64Ptr(3.7)}, 10)

	if !strings.Contains(query, "property_reviews.rating >= $1") {
		t.Errorf("expected rating predicate at $1:\n%s", query)
	}
	if args[0] != 3 {
		t.Errorf("rating 3.7 should coerce to int 3, got %v (%T)", args[0], args[0])
	}
}

// filterForMask builds a filter from a 5-bit mask over the criteria in
// their fixed application order: city, owner, min price, max price,
// min rating.
func filterForMask(mask int) PropertyFilter {
	var f PropertyFilter
	if mask&1 != 0 {
		f.City = "Toronto"
	}
	if mask&2 != 0 {
		f.OwnerID = int64Ptr(7)
	}
	if mask&4 != 0 {
		f.MinPricePerNight = float64Ptr(25)
	}
	if mask&8 != 0 {
		f.MaxPricePerNight = float64Ptr(200)
	}
	if mask&16 != 0 {
		f.MinRating = float64Ptr(4)
	}
	return f
}

func TestBuildPropertySearch_AllCriteriaCombinations(t *testing.T) {
	for mask := 0; mask < 32; mask++ {
		filter := filterForMask(mask)
		query, args := buildPropertySearch(filter, 10)

		k := 0
		for bit := 0; bit < 5; bit++ {
			if mask&(1<<bit) != 0 {
				k++
			}
		}

		// Exactly one WHERE for any non-empty subset, none otherwise.
		wantWhere := 0
		if k > 0 {
			wantWhere = 1
		}
		if got := strings.Count(query, "WHERE"); got != wantWhere {
			t.Errorf("mask %05b: expected %d WHERE tokens, got %d:\n%s", mask, wantWhere, got, query)
		}

		// k-1 AND tokens joining the predicates.
		wantAnd := 0
		if k > 0 {
			wantAnd = k - 1
		}
		if got := strings.Count(query, " AND "); got != wantAnd {
			t.Errorf("mask %05b: expected %d AND tokens, got %d:\n%s", mask, wantAnd, got, query)
		}

		// Criteria args plus the trailing limit.
		if len(args) != k+1 {
			t.Errorf("mask %05b: expected %d args, got %d: %v", mask, k+1, len(args), args)
		}

		// Every placeholder $1..$n must appear, in increasing order,
		// matching the 1-based position of its argument.
		lastIdx := -1
		for i := 1; i <= len(args); i++ {
			placeholder := fmt.Sprintf("$%d", i)
			idx := strings.Index(query, placeholder)
			if idx == -1 {
				t.Errorf("mask %05b: placeholder %s missing from query:\n%s", mask, placeholder, query)
				continue
			}
			if idx <= lastIdx {
				t.Errorf("mask %05b: placeholder %s out of order in query:\n%s", mask, placeholder, query)
			}
			lastIdx = idx
		}

		// The limit is always the final argument.
		if args[len(args)-1] != 10 {
			t.Errorf("mask %05b: expected trailing limit arg 10, got %v", mask, args[len(args)-1])
		}
	}
}

func TestToMinorUnits(t *testing.T) {
	cases := []struct {
		major float64
		want  int64
	}{
		{50, 5000},
		{0.01, 1},
		{99.99, 9999},
		{120.505, 12051}, // rounds, never truncates
		{0, 0},
	}

	for _, c := range cases {
		if got := ToMinorUnits(c.major); got != c.want {
			t.Errorf("ToMinorUnits(%v) = %d, want %d", c.major, got, c.want)
		}
	}
}

func TestNormalizeEmail(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"A@B.com", "a@b.com"},
		{"  Guest@Example.COM ", "guest@example.com"},
		{"already@lower.ca", "already@lower.ca"},
	}

	for _, c := range cases {
		if got := NormalizeEmail(c.in); got != c.want {
			t.Errorf("NormalizeEmail(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}
