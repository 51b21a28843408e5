package engine

// FilterState holds the sidebar filters. Value semantics: the With*
// setters return a new state and never mutate the receiver, so the
// projection stays a pure function of (table, filters).
type FilterState struct {
	Countries map[string]struct{}
	Year      int32
}

// NewFilterState builds a filter over the given countries and year.
// An empty country list is valid and yields an empty view.
func NewFilterState(countries []string, year int32) FilterState {
	return FilterState{Countries: countrySet(countries), Year: year}
}

func countrySet(list []string) map[string]struct{} {
	set := make(map[string]struct{}, len(list))
	for _, c := range list {
		set[c] = struct{}{}
	}
	return set
}

// WithCountries replaces the country filter.
func (f FilterState) WithCountries(list []string) FilterState {
	f.Countries = countrySet(list)
	return f
}

// WithYear replaces the year filter.
func (f FilterState) WithYear(y int32) FilterState {
	f.Year = y
	return f
}

// DatasetView is the ordered set of rows visible under the current
// filters, always in ingestion order. Recomputed fresh every cycle.
type DatasetView []RowID

// Project filters the base table: country membership AND year equality.
func Project(t *Table, f FilterState) DatasetView {
	view := make(DatasetView, 0, 64)
	for i := 0; i < t.Len(); i++ {
		r := RowID(i)
		if t.Years[r] != f.Year {
			continue
		}
		if _, ok := f.Countries[t.CountryDict[t.CountryIDs[r]]]; !ok {
			continue
		}
		view = append(view, r)
	}
	return view
}

// Equal reports whether two views contain the same rows in the same
// order. Used to decide whether a recompute produced a new epoch.
func (v DatasetView) Equal(o DatasetView) bool {
	if len(v) != len(o) {
		return false
	}
	for i := range v {
		if v[i] != o[i] {
			return false
		}
	}
	return true
}

// Rows returns the view's identities as a set, for pruning.
func (v DatasetView) Rows() SelectionSet {
	set := make(SelectionSet, len(v))
	for _, r := range v {
		set[r] = struct{}{}
	}
	return set
}
