package engine

import (
	"bytes"
	"fmt"
	"log"
	"math"
	"os"
	"strings"
	"time"
)

// Column names the loader resolves against the CSV header. The exact
// names come first; undernourishment and neonatal mortality are matched
// by substring because the source files carry suffixed variants of
// those columns.
const (
	colCountry     = "country_x"
	colYear        = "year"
	colExpenditure = "Health expenditure per capita - Total"
	colLifeExpect  = "life_expect"
	colInfantMort  = "infant_mortality"

	subUndernourish = "prev_unde"
	subNeonatal     = "neonatal_mortality"
)

// --- 1. FAST PARSERS ---

// fastInt parses "2021" -> 2021. Digits only; year fields never carry
// signs or separators.
func fastInt(b []byte) int32 {
	var n int32
	for _, c := range b {
		n = n*10 + int32(c-'0')
	}
	return n
}

// fastFloat parses "-123.45" -> -123.45. An empty or non-numeric field
// yields NaN, which marks the cell as missing.
func fastFloat(b []byte) float64 {
	if len(b) == 0 {
		return math.NaN()
	}
	neg := false
	if b[0] == '-' {
		neg = true
		b = b[1:]
	}
	var num float64
	var i int
	for i < len(b) && b[i] != '.' {
		c := b[i]
		if c < '0' || c > '9' {
			return math.NaN()
		}
		num = num*10 + float64(c-'0')
		i++
	}
	if i < len(b) {
		i++
		div := 10.0
		for i < len(b) {
			c := b[i]
			if c < '0' || c > '9' {
				return math.NaN()
			}
			num += float64(c-'0') / div
			div *= 10
			i++
		}
	}
	if neg {
		return -num
	}
	return num
}

// --- 2. HEADER RESOLUTION ---

// columnLayout maps each logical column to its physical index in a row.
type columnLayout struct {
	country    int
	year       int
	indicators [numIndicators]int
}

// resolveColumns locates every logical column in the header. The base
// columns and the three exact-name indicators are required; the two
// substring-matched indicators fall back to a required column when no
// header matches (life expectancy for undernourishment, infant
// mortality for neonatal), so a sparse export still loads.
func resolveColumns(header []string) (columnLayout, error) {
	lay := columnLayout{country: -1, year: -1}
	for i := range lay.indicators {
		lay.indicators[i] = -1
	}

	for i, name := range header {
		switch name {
		case colCountry:
			lay.country = i
		case colYear:
			lay.year = i
		case colExpenditure:
			lay.indicators[Expenditure] = i
		case colLifeExpect:
			lay.indicators[LifeExpect] = i
		case colInfantMort:
			lay.indicators[InfantMortality] = i
		}
		if lay.indicators[Undernourishment] == -1 && strings.Contains(name, subUndernourish) {
			lay.indicators[Undernourishment] = i
		}
		if lay.indicators[NeonatalMortality] == -1 && strings.Contains(name, subNeonatal) {
			lay.indicators[NeonatalMortality] = i
		}
	}

	if lay.country == -1 {
		return lay, fmt.Errorf("missing required column %q", colCountry)
	}
	if lay.year == -1 {
		return lay, fmt.Errorf("missing required column %q", colYear)
	}
	for _, ind := range []Indicator{Expenditure, LifeExpect, InfantMortality} {
		if lay.indicators[ind] == -1 {
			return lay, fmt.Errorf("missing required column for %s", ind)
		}
	}
	if lay.indicators[Undernourishment] == -1 {
		log.Printf("no %q column found, falling back to %s", subUndernourish, LifeExpect)
		lay.indicators[Undernourishment] = lay.indicators[LifeExpect]
	}
	if lay.indicators[NeonatalMortality] == -1 {
		log.Printf("no %q column found, falling back to %s", subNeonatal, InfantMortality)
		lay.indicators[NeonatalMortality] = lay.indicators[InfantMortality]
	}
	return lay, nil
}

// --- 3. MAIN LOADER ---

// Load reads the merged health dataset and returns the base table with
// row identity fixed in ingestion order. An error here is fatal for the
// session; a partially loaded table is never returned.
func Load(path string) (*Table, error) {
	start := time.Now()

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	// Header row
	idx := bytes.IndexByte(content, '\n')
	if idx == -1 {
		return nil, fmt.Errorf("%s: no data rows", path)
	}
	headerLine := bytes.TrimSuffix(content[:idx], []byte{'\r'})
	content = content[idx+1:]

	header := strings.Split(string(headerLine), ",")
	lay, err := resolveColumns(header)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	totalRows := bytes.Count(content, []byte{'\n'})
	if len(content) > 0 && content[len(content)-1] != '\n' {
		totalRows++
	}

	// Allocate Store ONCE
	table := &Table{
		CountryIDs:  make([]int32, totalRows),
		Years:       make([]int32, totalRows),
		CountryDict: make([]string, 0, 256),
	}
	for i := range table.Values {
		table.Values[i] = make([]float64, totalRows)
	}
	cMap := make(map[string]int32, 256)

	// HOT LOOP: split each line once, pick fields by resolved index.
	// Row id is simply the running row counter.
	fields := make([][]byte, 0, len(header))
	pos := 0
	row := 0
	for pos < len(content) {
		nextPos := len(content)
		if i := bytes.IndexByte(content[pos:], '\n'); i != -1 {
			nextPos = pos + i
		}
		line := bytes.TrimSuffix(content[pos:nextPos], []byte{'\r'})
		pos = nextPos + 1

		if len(line) == 0 {
			continue
		}

		fields = fields[:0]
		rest := line
		for {
			field, tail, found := bytes.Cut(rest, []byte{','})
			fields = append(fields, field)
			if !found {
				break
			}
			rest = tail
		}
		if len(fields) < len(header) {
			continue // truncated row
		}

		// Country (dictionary encoded)
		c := fields[lay.country]
		if id, ok := cMap[string(c)]; ok {
			table.CountryIDs[row] = id
		} else {
			id = int32(len(table.CountryDict))
			str := string(c)
			table.CountryDict = append(table.CountryDict, str)
			cMap[str] = id
			table.CountryIDs[row] = id
		}

		table.Years[row] = fastInt(fields[lay.year])
		for ind := Indicator(0); ind < numIndicators; ind++ {
			table.Values[ind][row] = fastFloat(fields[lay.indicators[ind]])
		}
		row++
	}

	// Trim skipped rows off the tail.
	if row < totalRows {
		table.CountryIDs = table.CountryIDs[:row]
		table.Years = table.Years[:row]
		for i := range table.Values {
			table.Values[i] = table.Values[i][:row]
		}
	}

	log.Printf("Load Complete. Rows: %d. Countries: %d. Time: %v", row, len(table.CountryDict), time.Since(start))
	return table, nil
}
