// Package issuelog keeps a CSV audit trail of issued invoices next to
// the documents themselves. The file name starts with a dot so it can
// never shadow a slug prefix during numbering.
package issuelog

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Entry is one row in the issue log.
type Entry struct {
	Timestamp  time.Time
	Number     string
	Filename   string
	TotalGross string
	Currency   string
}

// Header is the CSV header for the issue log.
const Header = "timestamp,number,filename,total_gross,currency"

const (
	logFile       = ".fakturo-log.csv"
	numFields     = 5
	colTimestamp  = 0
	colNumber     = 1
	colFilename   = 2
	colTotalGross = 3
	colCurrency   = 4
)

// MarshalEntry converts an Entry to a CSV row.
func MarshalEntry(e Entry) []string {
	row := make([]string, numFields)
	row[colTimestamp] = e.Timestamp.Format(time.RFC3339)
	row[colNumber] = e.Number
	row[colFilename] = e.Filename
	row[colTotalGross] = e.TotalGross
	row[colCurrency] = e.Currency
	return row
}

// UnmarshalEntry converts a CSV row to an Entry.
func UnmarshalEntry(record []string) (Entry, error) {
	if len(record) != numFields {
		return Entry{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}

	ts, err := time.Parse(time.RFC3339, record[colTimestamp])
	if err != nil {
		return Entry{}, fmt.Errorf("parsing timestamp %q: %w", record[colTimestamp], err)
	}

	return Entry{
		Timestamp:  ts,
		Number:     record[colNumber],
		Filename:   record[colFilename],
		TotalGross: record[colTotalGross],
		Currency:   record[colCurrency],
	}, nil
}

// Append writes an entry to <dir>/.fakturo-log.csv, creating the file
// and header if needed.
func Append(dir string, e Entry) error {
	path := filepath.Join(dir, logFile)
	needsHeader := false
	if _, err := os.Stat(path); os.IsNotExist(err) {
		needsHeader = true
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("opening issue log: %w", err)
	}
	defer f.Close()

	cw := csv.NewWriter(f)
	defer cw.Flush()

	if needsHeader {
		if err := cw.Write(strings.Split(Header, ",")); err != nil {
			return fmt.Errorf("writing header: %w", err)
		}
	}

	if err := cw.Write(MarshalEntry(e)); err != nil {
		return fmt.Errorf("writing entry: %w", err)
	}

	return cw.Error()
}

// Read returns all entries from <dir>/.fakturo-log.csv.
// Returns an empty slice if the file does not exist.
func Read(dir string) ([]Entry, error) {
	f, err := os.Open(filepath.Join(dir, logFile))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("opening issue log: %w", err)
	}
	defer f.Close()

	return readEntries(f)
}

func readEntries(r io.Reader) ([]Entry, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading issue log CSV: %w", err)
	}

	if len(records) <= 1 {
		return nil, nil
	}

	var entries []Entry
	for i, rec := range records[1:] {
		e, err := UnmarshalEntry(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		entries = append(entries, e)
	}
	return entries, nil
}
