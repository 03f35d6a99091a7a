package datasource

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/rs/zerolog"

	"github.com/nightingaleproject/csv2fhir/deathrecord"
)

// CSVSource reads flat death records from a CSV stream. The first row names
// the columns; every following row becomes one Record.
type CSVSource struct {
	reader io.Reader
	log    zerolog.Logger
}

// NewCSVSource creates a new CSVSource
func NewCSVSource(reader io.Reader, log zerolog.Logger) *CSVSource {
	return &CSVSource{
		reader: reader,
		log:    log,
	}
}

// Read consumes the whole stream and returns one Record per data row
func (s *CSVSource) Read() ([]deathrecord.Record, error) {
	r := csv.NewReader(s.reader)
	r.FieldsPerRecord = -1 // ragged rows surface as missing fields, not read errors

	header, err := r.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("input has no header row")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read header row: %w", err)
	}

	var records []deathrecord.Record
	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read row %d: %w", len(records)+2, err)
		}

		record := make(deathrecord.Record, len(header))
		for i, column := range header {
			if i < len(row) {
				record[column] = row[i]
			}
		}
		records = append(records, record)
	}

	s.log.Debug().
		Int("columns", len(header)).
		Int("records", len(records)).
		Msg("Parsed CSV input")

	return records, nil
}
