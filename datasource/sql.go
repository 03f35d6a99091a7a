package datasource

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog"

	"github.com/nightingaleproject/csv2fhir/deathrecord"
)

// SQLSource reads flat death records from a database. The configured query
// must return one row per record with columns named like the CSV headers.
type SQLSource struct {
	db    *sqlx.DB
	query string
	log   zerolog.Logger
}

// NewSQLSource creates a new SQLSource
func NewSQLSource(db *sqlx.DB, query string, log zerolog.Logger) *SQLSource {
	return &SQLSource{
		db:    db,
		query: query,
		log:   log,
	}
}

// Read executes the query and returns one Record per row. Column values are
// rendered to their string form, matching the CSV input contract.
func (s *SQLSource) Read(ctx context.Context) ([]deathrecord.Record, error) {
	rows, err := s.db.QueryxContext(ctx, s.query)
	if err != nil {
		return nil, fmt.Errorf("error executing records query: %w", err)
	}
	defer rows.Close()

	var records []deathrecord.Record
	for rows.Next() {
		row := map[string]interface{}{}
		if err := rows.MapScan(row); err != nil {
			return nil, fmt.Errorf("error scanning row %d: %w", len(records)+1, err)
		}

		record := make(deathrecord.Record, len(row))
		for column, value := range row {
			record[column] = renderValue(value)
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating records: %w", err)
	}

	s.log.Debug().
		Int("records", len(records)).
		Msg("Read records from database")

	return records, nil
}

func renderValue(v interface{}) string {
	switch val := v.(type) {
	case nil:
		return ""
	case []byte:
		return string(val)
	case string:
		return val
	default:
		return fmt.Sprintf("%v", val)
	}
}
