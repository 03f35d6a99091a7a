package deathrecord

import (
	"errors"
	"runtime"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/nightingaleproject/csv2fhir/models/fhir"
)

// Transformer converts flat death records into FHIR document bundles. A
// record is transformed by a pure, synchronous pass with no shared state
// between records, so batches can run in parallel.
type Transformer struct {
	gen   Generator
	clock func() time.Time
	log   zerolog.Logger
}

// NewTransformer creates a new Transformer
func NewTransformer(gen Generator, log zerolog.Logger) *Transformer {
	return &Transformer{
		gen:   gen,
		clock: time.Now,
		log:   log,
	}
}

// Transform produces one document bundle for one record. On failure the
// record contributes no bundle; the error names the offending field.
func (t *Transformer) Transform(record Record) (map[string]any, error) {
	ids := NewIdentifierSet(t.gen)
	now := t.clock().UTC()

	patient, err := BuildDecedent(record, ids, t.gen, now)
	if err != nil {
		return nil, err
	}
	practitioner, err := BuildCertifier(record, ids)
	if err != nil {
		return nil, err
	}
	findings, err := BuildFindings(record, ids)
	if err != nil {
		return nil, err
	}

	resources := make([]fhir.Resource, 0, len(findings)+2)
	resources = append(resources, patient, practitioner)
	resources = append(resources, findings...)

	composition := BuildComposition(ids, resources, now)

	doc, err := ComposeBundle(ids, composition, resources, t.gen)
	if err != nil {
		return nil, err
	}

	t.log.Debug().
		Str("subject", ids[RolePatient]).
		Int("findings", len(findings)).
		Msg("Assembled document bundle")

	return doc, nil
}

// RecordError attributes a failure to one input record
type RecordError struct {
	Index int   `json:"record"`
	Err   error `json:"-"`
}

func (e *RecordError) Error() string {
	return e.Err.Error()
}

func (e *RecordError) Unwrap() error { return e.Err }

// BatchResult holds the outcome of a batch: one document per record that
// succeeded, in input order, plus the errors of the records that did not
type BatchResult struct {
	Documents []map[string]any
	Errors    []*RecordError
}

// TransformBatch transforms records on a bounded worker pool. Failing
// records are isolated: they are reported in the result and do not affect
// their siblings. A ConsistencyError is the exception, since it signals an
// engine defect rather than bad input, and aborts the whole batch.
func (t *Transformer) TransformBatch(records []Record) (*BatchResult, error) {
	type outcome struct {
		doc map[string]any
		err error
	}

	outcomes := make([]outcome, len(records))
	sem := make(chan struct{}, runtime.NumCPU())
	var wg sync.WaitGroup

	for i, record := range records {
		wg.Add(1)
		go func(i int, record Record) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			doc, err := t.Transform(record)
			outcomes[i] = outcome{doc: doc, err: err}
		}(i, record)
	}
	wg.Wait()

	result := &BatchResult{}
	for i, out := range outcomes {
		if out.err != nil {
			var consistency *ConsistencyError
			if errors.As(out.err, &consistency) {
				t.log.Error().Err(out.err).Int("record", i).Msg("Referential integrity violated")
				return nil, out.err
			}
			t.log.Warn().Err(out.err).Int("record", i).Msg("Record rejected")
			result.Errors = append(result.Errors, &RecordError{Index: i, Err: out.err})
			continue
		}
		result.Documents = append(result.Documents, out.doc)
	}

	t.log.Info().
		Int("records", len(records)).
		Int("bundles", len(result.Documents)).
		Int("rejected", len(result.Errors)).
		Msg("Completed batch")

	return result, nil
}
