// Package dataset loads and cleans the historical weather CSV.
package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/Utkarsh-0805/weather-prediction-project/internal/domain"
)

// missingTokens are the field values treated as missing, in addition to the
// empty string.
var missingTokens = map[string]struct{}{
	"NA": {}, "N/A": {}, "NaN": {}, "nan": {}, "null": {}, "NULL": {},
}

// Stats summarizes a cleaning pass.
type Stats struct {
	RowsRead      int `json:"rows_read"`
	RowsMissing   int `json:"rows_missing"`
	RowsDuplicate int `json:"rows_duplicate"`
}

// Table is a cleaned historical dataset in source row order.
type Table struct {
	Records []domain.HistoricalRecord
	Stats   Stats

	// rows keeps the full source rows so Clean can deduplicate across all
	// columns, including ones the models never read.
	rows   [][]string
	colIdx colIndex
}

// Len returns the number of usable records.
func (t Table) Len() int {
	return len(t.Records)
}

// Column returns the values of a continuous column in row order.
func (t Table) Column(column string) ([]float64, error) {
	out := make([]float64, len(t.Records))
	for i, r := range t.Records {
		v, ok := r.Continuous(column)
		if !ok {
			return nil, fmt.Errorf("column %q is not continuous", column)
		}
		out[i] = v
	}
	return out, nil
}

// WindGustDirs returns the WindGustDir column in row order.
func (t Table) WindGustDirs() []string {
	out := make([]string, len(t.Records))
	for i, r := range t.Records {
		out[i] = r.WindGustDir
	}
	return out
}

// RainLabels returns the RainTomorrow column in row order.
func (t Table) RainLabels() []string {
	out := make([]string, len(t.Records))
	for i, r := range t.Records {
		out[i] = r.RainTomorrow
	}
	return out
}

// Load reads a CSV with a header row and returns the cleaned table. Rows with
// any missing field are dropped, then exact duplicate rows keep their first
// occurrence.
func Load(r io.Reader) (Table, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return Table{}, fmt.Errorf("%w: read header: %v", domain.ErrDataLoad, err)
	}
	index, err := columnIndex(header)
	if err != nil {
		return Table{}, fmt.Errorf("%w: %v", domain.ErrDataLoad, err)
	}

	var rows [][]string
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return Table{}, fmt.Errorf("%w: read row %d: %v", domain.ErrDataLoad, len(rows)+1, err)
		}
		// Short rows are padded so the missing cells count as missing fields.
		for len(row) < len(header) {
			row = append(row, "")
		}
		row = row[:len(header)]
		rows = append(rows, row)
	}

	table := clean(rows, index)
	if table.Len() == 0 {
		return table, fmt.Errorf("%w: no usable rows out of %d", domain.ErrDataQuality, table.Stats.RowsRead)
	}
	return table, nil
}

// Clean reapplies the cleaning rules to an existing table. Cleaning an
// already clean table returns it unchanged.
func Clean(t Table) Table {
	if t.rows == nil {
		rows := make([][]string, len(t.Records))
		for i, r := range t.Records {
			rows[i] = recordRow(r)
		}
		return clean(rows, identityIndex())
	}
	return clean(t.rows, t.colIdx)
}

// FromRecords builds a table from in-memory records and cleans it.
func FromRecords(records []domain.HistoricalRecord) Table {
	return Clean(Table{Records: records})
}

type colIndex map[string]int

func columnIndex(header []string) (colIndex, error) {
	index := make(colIndex, len(header))
	for i, name := range header {
		index[strings.TrimSpace(strings.TrimPrefix(name, "\ufeff"))] = i
	}
	var missing []string
	for _, col := range domain.RequiredColumns {
		if _, ok := index[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("missing required columns: %s", strings.Join(missing, ", "))
	}
	return index, nil
}

// identityIndex addresses rows built by recordRow.
func identityIndex() colIndex {
	index := make(colIndex, len(domain.RequiredColumns))
	for i, col := range domain.RequiredColumns {
		index[col] = i
	}
	return index
}

func clean(rows [][]string, index colIndex) Table {
	table := Table{Stats: Stats{RowsRead: len(rows)}, colIdx: index}
	seen := make(map[string]struct{}, len(rows))

	for _, row := range rows {
		if hasMissing(row) {
			table.Stats.RowsMissing++
			continue
		}
		rec, ok := parseRecord(row, index)
		if !ok {
			table.Stats.RowsMissing++
			continue
		}
		key := rowKey(row)
		if _, dup := seen[key]; dup {
			table.Stats.RowsDuplicate++
			continue
		}
		seen[key] = struct{}{}
		table.Records = append(table.Records, rec)
		table.rows = append(table.rows, row)
	}
	return table
}

// rowKey identifies a row by its values rather than its text, so "10" and
// "10.0 " collide.
func rowKey(row []string) string {
	cells := make([]string, len(row))
	for i, f := range row {
		f = strings.TrimSpace(f)
		if v, err := strconv.ParseFloat(f, 64); err == nil {
			f = strconv.FormatFloat(v, 'g', -1, 64)
		}
		cells[i] = f
	}
	return strings.Join(cells, "\x1f")
}

func hasMissing(row []string) bool {
	for _, f := range row {
		f = strings.TrimSpace(f)
		if f == "" {
			return true
		}
		if _, ok := missingTokens[f]; ok {
			return true
		}
	}
	return false
}

// parseRecord extracts the required columns. A numeric column that does not
// parse to a finite value makes the row unusable.
func parseRecord(row []string, index colIndex) (domain.HistoricalRecord, bool) {
	num := func(col string) (float64, bool) {
		v, err := strconv.ParseFloat(strings.TrimSpace(row[index[col]]), 64)
		if err != nil || math.IsInf(v, 0) || math.IsNaN(v) {
			return 0, false
		}
		return v, true
	}
	str := func(col string) string {
		return strings.TrimSpace(row[index[col]])
	}

	var rec domain.HistoricalRecord
	var ok [6]bool
	rec.MinTemp, ok[0] = num(domain.ColMinTemp)
	rec.MaxTemp, ok[1] = num(domain.ColMaxTemp)
	rec.WindGustSpeed, ok[2] = num(domain.ColWindGustSpeed)
	rec.Humidity, ok[3] = num(domain.ColHumidity)
	rec.Pressure, ok[4] = num(domain.ColPressure)
	rec.Temp, ok[5] = num(domain.ColTemp)
	for _, b := range ok {
		if !b {
			return domain.HistoricalRecord{}, false
		}
	}
	rec.WindGustDir = str(domain.ColWindGustDir)
	rec.RainTomorrow = str(domain.ColRainTomorrow)
	return rec, true
}

// recordRow renders a record in RequiredColumns order.
func recordRow(r domain.HistoricalRecord) []string {
	f := func(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }
	return []string{
		f(r.MinTemp), f(r.MaxTemp), r.WindGustDir, f(r.WindGustSpeed),
		f(r.Humidity), f(r.Pressure), f(r.Temp), r.RainTomorrow,
	}
}
