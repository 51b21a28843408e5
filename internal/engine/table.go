package engine

// RowID is the stable identity of one record: its load-order index in
// the base table. Assigned once at load, never derived from a filtered
// view's position.
type RowID int32

// Indicator identifies one numeric column of the base table.
type Indicator int

const (
	Expenditure Indicator = iota
	LifeExpect
	InfantMortality
	Undernourishment
	NeonatalMortality

	numIndicators
)

var indicatorLabels = [numIndicators]string{
	"expenditure",
	"life_expect",
	"infant_mortality",
	"undernourishment",
	"neonatal_mortality",
}

func (ind Indicator) String() string { return indicatorLabels[ind] }

// Table holds the base dataset in Struct-of-Arrays format. Immutable
// once loaded; every slice is indexed by RowID.
type Table struct {
	// Dictionary Encoded IDs (0..N)
	CountryIDs []int32
	Years      []int32

	// Indicator Columns (Flat Arrays, NaN = missing cell)
	Values [numIndicators][]float64

	// Dictionary (ID -> Country Name)
	CountryDict []string
}

// Len reports the number of records; RowIDs are 0..Len-1.
func (t *Table) Len() int { return len(t.Years) }

func (t *Table) Country(r RowID) string { return t.CountryDict[t.CountryIDs[r]] }

func (t *Table) Year(r RowID) int32 { return t.Years[r] }

func (t *Table) Value(ind Indicator, r RowID) float64 { return t.Values[ind][r] }

// YearBounds returns the min and max year present in the table.
func (t *Table) YearBounds() (min, max int32) {
	if t.Len() == 0 {
		return 0, 0
	}
	min, max = t.Years[0], t.Years[0]
	for _, y := range t.Years[1:] {
		if y < min {
			min = y
		}
		if y > max {
			max = y
		}
	}
	return min, max
}
