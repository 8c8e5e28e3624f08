package testutil

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"github.com/hupe1980/aerodex"
)

// Airports returns the canonical three-airport fixture used across tests.
func Airports() []aerodex.Record {
	return []aerodex.Record{
		aerodex.NewRecord("KJFK", "John F. Kennedy International Airport"),
		aerodex.NewRecord("KLAX", "Los Angeles International Airport"),
		aerodex.NewRecord("EGLL", "London Heathrow Airport"),
	}
}

// CSVDocument builds a header-addressed CSV document from (ident, name) rows.
func CSVDocument(rows ...[2]string) string {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	_ = w.Write([]string{"ident", "name"})
	for _, row := range rows {
		_ = w.Write(row[:])
	}
	w.Flush()
	return buf.String()
}

// GenerateRecords produces n synthetic records with deterministic, distinct
// identifiers. Useful for exercising the parallel filter path on datasets
// large enough to matter.
func GenerateRecords(n int) []aerodex.Record {
	records := make([]aerodex.Record, 0, n)
	for i := 0; i < n; i++ {
		records = append(records, aerodex.NewRecord(
			fmt.Sprintf("X%05d", i),
			fmt.Sprintf("Synthetic Airfield %d", i),
		))
	}
	return records
}
