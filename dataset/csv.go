// Package dataset loads the small CSV datasets used by the course demos.
package dataset

import (
	"encoding/csv"
	"os"
	"strconv"

	"github.com/pkg/errors"
)

// LoadXY reads two numeric columns from a CSV file. xCol and yCol are
// zero-based column indices. If header is true the first record is skipped.
func LoadXY(path string, xCol, yCol int, header bool) (x, y []float64, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, errors.Wrap(err, "dataset: opening file")
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1 // column counts are checked per row below
	records, err := r.ReadAll()
	if err != nil {
		return nil, nil, errors.Wrapf(err, "dataset: reading %s", path)
	}

	start := 0
	if header {
		start = 1
	}

	for i := start; i < len(records); i++ {
		record := records[i]
		if xCol >= len(record) || yCol >= len(record) {
			return nil, nil, errors.Errorf("dataset: %s row %d has %d columns, need columns %d and %d",
				path, i+1, len(record), xCol, yCol)
		}

		xv, err := strconv.ParseFloat(record[xCol], 64)
		if err != nil {
			return nil, nil, errors.Wrapf(err, "dataset: %s row %d column %d", path, i+1, xCol)
		}
		yv, err := strconv.ParseFloat(record[yCol], 64)
		if err != nil {
			return nil, nil, errors.Wrapf(err, "dataset: %s row %d column %d", path, i+1, yCol)
		}

		x = append(x, xv)
		y = append(y, yv)
	}
	return x, y, nil
}

// LoadMatrix reads all numeric columns of a CSV file into a row-major slice
// of rows. Every record must have the same number of columns. If header is
// true the first record is skipped.
func LoadMatrix(path string, header bool) ([][]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "dataset: opening file")
	}
	defer f.Close()

	r := csv.NewReader(f)
	records, err := r.ReadAll()
	if err != nil {
		return nil, errors.Wrapf(err, "dataset: reading %s", path)
	}

	start := 0
	if header {
		start = 1
	}

	var rows [][]float64
	for i := start; i < len(records); i++ {
		record := records[i]
		row := make([]float64, len(record))
		for j, field := range record {
			row[j], err = strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, errors.Wrapf(err, "dataset: %s row %d column %d", path, i+1, j)
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}
