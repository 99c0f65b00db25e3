// Package csvimport reads lot manufacturing-date exports.
//
// The expected layout is a header line followed by rows of
// "lot_number,manufacturing_date". Dates come either as the spreadsheet export
// form "2025.6.13 0:00" or as ISO "2025-06-13".
package csvimport

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var dottedDate = regexp.MustCompile(`^(\d{4})\.(\d{1,2})\.(\d{1,2})`)

// Record is one parsed row.
type Record struct {
	Line             int
	LotNumber        string
	ManufacturedDate time.Time
}

// Skipped describes a row that was not turned into a Record.
type Skipped struct {
	Line   int
	Reason string
}

// Result holds parsed records in file order together with skipped rows.
type Result struct {
	Records []Record
	Skipped []Skipped
}

// Parse reads the whole input. Blank rows are ignored silently; rows with a
// missing field or an unreadable date are reported in Result.Skipped. Only
// malformed CSV framing is returned as an error.
func Parse(r io.Reader) (Result, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	var res Result
	header := true
	for {
		fields, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return Result{}, fmt.Errorf("read csv: %w", err)
		}
		if header {
			header = false
			continue
		}
		line, _ := reader.FieldPos(0)
		if isBlank(fields) {
			continue
		}

		if len(fields) < 2 || strings.TrimSpace(fields[0]) == "" || strings.TrimSpace(fields[1]) == "" {
			res.Skipped = append(res.Skipped, Skipped{Line: line, Reason: "lot number or date is missing"})
			continue
		}

		date, err := ParseDate(fields[1])
		if err != nil {
			res.Skipped = append(res.Skipped, Skipped{Line: line, Reason: err.Error()})
			continue
		}

		res.Records = append(res.Records, Record{
			Line:             line,
			LotNumber:        strings.TrimSpace(fields[0]),
			ManufacturedDate: date,
		})
	}

	return res, nil
}

// ParseDate accepts "2025.6.13 0:00", "2025.6.13" and "2025-06-13". The time
// part is discarded; the result is UTC midnight.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)

	if m := dottedDate.FindStringSubmatch(s); m != nil {
		year, _ := strconv.Atoi(m[1])
		month, _ := strconv.Atoi(m[2])
		day, _ := strconv.Atoi(m[3])
		t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
		if t.Year() != year || int(t.Month()) != month || t.Day() != day {
			return time.Time{}, fmt.Errorf("invalid date %q", s)
		}
		return t, nil
	}

	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q", s)
	}
	return t, nil
}

func isBlank(fields []string) bool {
	for _, f := range fields {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}
	return true
}
