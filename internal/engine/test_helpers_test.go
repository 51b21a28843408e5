package engine

// testTable builds a 10-record fixture:
//
//	rows 0-1: country A, year 2020
//	rows 2-3: country B, year 2020
//	rows 4-5: country A, year 2021
//	rows 6-7: country B, year 2021
//	rows 8-9: country C, years 2020/2021
//
// Expenditure grows linearly with the row id, life expectancy with it,
// infant and neonatal mortality against it, so correlation signs are
// known exactly.
func testTable() *Table {
	years := []int32{2020, 2020, 2020, 2020, 2021, 2021, 2021, 2021, 2020, 2021}
	countries := []int32{0, 0, 1, 1, 0, 0, 1, 1, 2, 2}

	t := &Table{
		CountryIDs:  countries,
		Years:       years,
		CountryDict: []string{"A", "B", "C"},
	}
	n := len(years)
	for i := range t.Values {
		t.Values[i] = make([]float64, n)
	}
	for r := 0; r < n; r++ {
		t.Values[Expenditure][r] = float64(100 + 10*r)
		t.Values[LifeExpect][r] = float64(70 + r)
		t.Values[InfantMortality][r] = float64(30 - r)
		t.Values[Undernourishment][r] = float64(5 + r%3)
		t.Values[NeonatalMortality][r] = float64(20 - 2*r)
	}
	return t
}

func rowPtr(r RowID) *RowID { return &r }

func selection(rows ...RowID) SelectionSet {
	set := make(SelectionSet, len(rows))
	for _, r := range rows {
		set[r] = struct{}{}
	}
	return set
}
