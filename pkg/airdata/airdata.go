// Package airdata loads tabulated thermodynamic properties of air from
// Sonntag-format text files. The tables list one temperature per row with
// enthalpy, internal energy, relative pressure, relative volume, and
// standard-state entropy columns.
package airdata

import (
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"
)

// Column layout of a Sonntag air table row.
const (
	numColumns = 6
	colTemp    = 0 // temperature [K]
	colEnth    = 1 // enthalpy [kJ/kg]
	colEntropy = 5 // standard-state entropy s° [kJ/kg·K]
)

// numberPattern matches every numeric token in the file. The source tables
// are fixed-width dumps with ragged whitespace, so parsing is "every float
// in the file, reshaped into rows" rather than line-oriented.
var numberPattern = regexp.MustCompile(`[-+]?\d*\.\d+|[-+]?\d+`)

// Table holds the temperature, enthalpy and entropy columns of an air
// property table, sorted by strictly increasing temperature.
type Table struct {
	Temp     []float64 // [K]
	Enthalpy []float64 // [kJ/kg]
	Entropy  []float64 // [kJ/kg·K]
}

// Len returns the number of rows in the table.
func (t *Table) Len() int {
	return len(t.Temp)
}

// Load reads and parses an air property table from a file.
func Load(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening air data file: %w", err)
	}
	defer f.Close()

	table, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return table, nil
}

// Parse extracts all numeric tokens from r, reshapes them into six-column
// rows and returns the temperature, enthalpy and entropy columns. A
// trailing partial row is discarded.
func Parse(r io.Reader) (*Table, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading air data: %w", err)
	}

	tokens := numberPattern.FindAll(content, -1)
	numbers := make([]float64, 0, len(tokens))
	for _, tok := range tokens {
		v, err := strconv.ParseFloat(string(tok), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid numeric token %q: %w", tok, err)
		}
		numbers = append(numbers, v)
	}

	numRows := len(numbers) / numColumns
	if numRows < 2 {
		return nil, fmt.Errorf("air data contains %d complete rows, need at least 2", numRows)
	}

	table := &Table{
		Temp:     make([]float64, numRows),
		Enthalpy: make([]float64, numRows),
		Entropy:  make([]float64, numRows),
	}
	for i := 0; i < numRows; i++ {
		row := numbers[i*numColumns : (i+1)*numColumns]
		table.Temp[i] = row[colTemp]
		table.Enthalpy[i] = row[colEnth]
		table.Entropy[i] = row[colEntropy]
	}

	// The interpolator downstream requires strictly increasing
	// temperatures, and the cycle math requires monotone properties.
	for i := 1; i < numRows; i++ {
		if table.Temp[i] <= table.Temp[i-1] {
			return nil, fmt.Errorf("temperature column not strictly increasing at row %d (%.2f K after %.2f K)",
				i, table.Temp[i], table.Temp[i-1])
		}
		if table.Enthalpy[i] <= table.Enthalpy[i-1] {
			return nil, fmt.Errorf("enthalpy column not monotonic at row %d", i)
		}
		if table.Entropy[i] <= table.Entropy[i-1] {
			return nil, fmt.Errorf("entropy column not monotonic at row %d", i)
		}
	}

	return table, nil
}
