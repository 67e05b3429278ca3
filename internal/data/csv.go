package data

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// LoadCSV reads a comma-separated dataset from path. See ParseCSV.
func LoadCSV(path string) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()

	d, err := ParseCSV(f, ',')
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return d, nil
}

// ParseCSV reads delimited numeric records: every column but the last is a
// feature, the last is the target.
//
// A first line whose first field is not a number is treated as a header and
// skipped. Blank lines are ignored. comma 0 means ','. Every record must have
// the same number of fields, at least two.
func ParseCSV(r io.Reader, comma rune) (*Dataset, error) {
	cr := csv.NewReader(r)
	if comma != 0 {
		cr.Comma = comma
	}
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = -1
	cr.ReuseRecord = true

	d := &Dataset{}
	width := -1
	for line := 0; ; line++ {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrFormat, err)
		}

		if line == 0 && !isNumber(record[0]) {
			width = len(record)
			continue
		}
		if width == -1 {
			width = len(record)
		}
		if len(record) != width {
			return nil, fmt.Errorf("%w: record %d has %d fields, want %d", ErrFormat, line+1, len(record), width)
		}
		if width < 2 {
			return nil, fmt.Errorf("%w: need at least one feature and a target", ErrFormat)
		}

		row := make([]float64, width)
		for i, field := range record {
			v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
			if err != nil {
				return nil, fmt.Errorf("%w: record %d field %d: %w", ErrFormat, line+1, i+1, err)
			}
			row[i] = v
		}
		d.X = append(d.X, row[:width-1:width-1])
		d.Y = append(d.Y, row[width-1])
	}

	if d.Len() == 0 {
		return nil, ErrEmpty
	}
	return d, nil
}

// WriteCSV writes d with a header of x0..xN,y.
func WriteCSV(w io.Writer, d *Dataset) error {
	cw := csv.NewWriter(w)

	header := make([]string, 0, d.Features()+1)
	for i := range d.Features() {
		header = append(header, "x"+strconv.Itoa(i))
	}
	header = append(header, "y")
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	record := make([]string, d.Features()+1)
	for i, x := range d.X {
		for j, v := range x {
			record[j] = strconv.FormatFloat(v, 'g', -1, 64)
		}
		record[len(x)] = strconv.FormatFloat(d.Y[i], 'g', -1, 64)
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("write record %d: %w", i, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

func isNumber(s string) bool {
	_, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	return err == nil
}
