package aerodex

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/hupe1980/aerodex/source"
)

// Record is a single airport entry. The display fields keep their original
// casing; the lowercase keys exist only for matching and are never serialized.
type Record struct {
	// ICAO is the official identifier code (e.g., "KJFK").
	ICAO string `json:"icao"`
	// Name is the full airport name (e.g., "John F. Kennedy International Airport").
	Name string `json:"name"`

	lowerICAO string
	lowerName string
}

// NewRecord builds a Record, computing the lowercase search keys exactly once.
func NewRecord(icao, name string) Record {
	return Record{
		ICAO:      icao,
		Name:      name,
		lowerICAO: strings.ToLower(icao),
		lowerName: strings.ToLower(name),
	}
}

// Lookup is a construct-once, read-many container of airport records.
//
// The dataset is immutable after construction and every operation is
// read-only, so a Lookup is safe for concurrent use without locking.
type Lookup struct {
	records []Record

	logger            *Logger
	metricsCollector  MetricsCollector
	numWorkers        int
	parallelThreshold int
}

// New creates a Lookup over the given records.
//
// Records with a blank (post-trim) identifier are excluded entirely, and the
// lowercase search keys are recomputed so the normalization invariant holds
// even for literal Record values.
func New(records []Record, optFns ...Option) *Lookup {
	o := applyOptions(optFns)

	rs := make([]Record, 0, len(records))
	for _, r := range records {
		if strings.TrimSpace(r.ICAO) == "" {
			continue
		}
		rs = append(rs, NewRecord(r.ICAO, r.Name))
	}

	return &Lookup{
		records:           rs,
		logger:            o.logger,
		metricsCollector:  o.metricsCollector,
		numWorkers:        o.numWorkers,
		parallelThreshold: o.parallelThreshold,
	}
}

// FromCSV parses a header-addressed CSV document with "ident" and "name"
// columns into a Lookup, preserving source row order.
//
// Rows with a blank identifier are silently skipped. Any other failure
// (missing column, malformed row) is returned as an error: a partial
// dataset is no dataset, so callers are expected to abort startup.
func FromCSV(r io.Reader, optFns ...Option) (*Lookup, error) {
	start := time.Now()

	rd := csv.NewReader(r)

	header, err := rd.Read()
	if err != nil {
		return nil, fmt.Errorf("read csv header: %w", err)
	}

	identIdx, nameIdx := -1, -1
	for i, col := range header {
		switch strings.TrimSpace(col) {
		case "ident":
			identIdx = i
		case "name":
			nameIdx = i
		}
	}
	if identIdx < 0 {
		return nil, &ErrMissingColumn{Column: "ident"}
	}
	if nameIdx < 0 {
		return nil, &ErrMissingColumn{Column: "name"}
	}

	var records []Record
	for {
		row, err := rd.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv row: %w", err)
		}
		if strings.TrimSpace(row[identIdx]) == "" {
			continue
		}
		records = append(records, NewRecord(row[identIdx], row[nameIdx]))
	}

	lk := New(records, optFns...)
	lk.metricsCollector.RecordLoad(len(lk.records), time.Since(start), nil)
	lk.logger.LogLoad(len(lk.records))
	return lk, nil
}

// Open fetches the dataset from src and parses it via FromCSV.
//
// Intended for startup: any failure means the process has nothing valid
// to serve.
func Open(ctx context.Context, src source.Source, optFns ...Option) (*Lookup, error) {
	rc, err := src.Open(ctx)
	if err != nil {
		return nil, fmt.Errorf("open source %s: %w", src, err)
	}
	defer rc.Close()

	return FromCSV(rc, optFns...)
}

// List paginates the full dataset in load order.
func (lk *Lookup) List(offset, limit *int) Page[Record] {
	start := time.Now()
	page := Paginate(lk.records, offset, limit)
	lk.metricsCollector.RecordList(time.Since(start))
	return page
}

// Len returns the number of records in the dataset.
func (lk *Lookup) Len() int {
	return len(lk.records)
}

// Records returns the underlying dataset. Callers must not modify it.
func (lk *Lookup) Records() []Record {
	return lk.records
}
