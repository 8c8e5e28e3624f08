package aerodex

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewRecord(t *testing.T) {
	r := NewRecord("KJFK", "John F. Kennedy International Airport")
	assert.Equal(t, "KJFK", r.ICAO)
	assert.Equal(t, "kjfk", r.lowerICAO)
	assert.Equal(t, "john f. kennedy international airport", r.lowerName)
}

func TestNewNormalizesLiteralRecords(t *testing.T) {
	lk := New([]Record{{ICAO: "EGLL", Name: "London Heathrow Airport"}})
	assert.Equal(t, 1, lk.Len())
	assert.Equal(t, "egll", lk.records[0].lowerICAO)
	assert.Equal(t, "london heathrow airport", lk.records[0].lowerName)
}

func TestNewDropsBlankIdentifiers(t *testing.T) {
	lk := New([]Record{
		{ICAO: "KLAX", Name: "Los Angeles International Airport"},
		{ICAO: "   ", Name: "No Identifier Field"},
		{ICAO: "", Name: "Empty Identifier Field"},
	})
	assert.Equal(t, 1, lk.Len())
	assert.Equal(t, "KLAX", lk.records[0].ICAO)
}

func TestFilterChunk(t *testing.T) {
	records := []Record{
		NewRecord("KJFK", "John F. Kennedy International Airport"),
		NewRecord("KLAX", "Los Angeles International Airport"),
		NewRecord("EGLL", "London Heathrow Airport"),
	}

	t.Run("MatchOnName", func(t *testing.T) {
		out := filterChunk(records, "international")
		assert.Len(t, out, 2)
	})

	t.Run("MatchOnIdentifier", func(t *testing.T) {
		out := filterChunk(records, "egll")
		assert.Len(t, out, 1)
		assert.Equal(t, "EGLL", out[0].ICAO)
	})

	t.Run("EmptyQueryMatchesAll", func(t *testing.T) {
		out := filterChunk(records, "")
		assert.Len(t, out, 3)
	})
}
