// Package pipeline runs one classification pass: read names from a
// directory or datfile, classify them, and hand the records to the sinks.
package pipeline

import (
	"context"
	"fmt"

	"tosec-parser/internal/export"
	"tosec-parser/internal/source"
	"tosec-parser/internal/tosec"
	"tosec-parser/internal/worker"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
)

// RecordSink receives the records of a run after they are exported.
type RecordSink interface {
	Name() string
	Write(ctx context.Context, records []tosec.Record) (int, error)
}

// Options configures a run.
type Options struct {
	Input     string
	OutputDir string
	Recursive bool
	Workers   int
	// Sinks receive the records after the CSV/JSON export. A failing sink is
	// logged and does not fail the run.
	Sinks []RecordSink
}

// Summary reports what a run produced.
type Summary struct {
	Names int
	// Unrecognized counts records with text in either unknown bucket.
	Unrecognized int
	Outputs      []string
	Written      map[string]int
}

// Classify turns entries into records, preserving their order.
func Classify(ctx context.Context, entries []source.Entry, workers int) ([]tosec.Record, error) {
	return worker.Map(ctx, workers, entries, func(e source.Entry) tosec.Record {
		r := tosec.Parse(e.Name)
		r.ROM = e.ROM
		return r
	})
}

// Run reads, classifies and exports the input named in opts.
func Run(ctx context.Context, opts Options) (*Summary, error) {
	entries, err := source.Open(opts.Input, opts.Recursive)
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}

	records, err := Classify(ctx, entries, opts.Workers)
	if err != nil {
		return nil, fmt.Errorf("classify: %w", err)
	}

	outputs, err := export.NewExporter(opts.OutputDir).Export(export.BaseName(opts.Input), records)
	if err != nil {
		return nil, err
	}

	summary := &Summary{
		Names:        len(records),
		Unrecognized: len(Unrecognized(records)),
		Outputs:      outputs,
		Written:      make(map[string]int, len(opts.Sinks)),
	}

	for _, sink := range opts.Sinks {
		n, err := sink.Write(ctx, records)
		if err != nil {
			log.Warn().Err(err).Str("sink", sink.Name()).Msg("Sink failed")
		}
		summary.Written[sink.Name()] = n
	}

	log.Info().
		Int("names", summary.Names).
		Int("unrecognized", summary.Unrecognized).
		Strs("outputs", summary.Outputs).
		Interface("sinks", summary.Written).
		Msg("Classification complete")

	return summary, nil
}

// Unrecognized returns the records with text left in either unknown bucket.
func Unrecognized(records []tosec.Record) []tosec.Record {
	return lo.Filter(records, func(r tosec.Record, _ int) bool {
		return r.Unknown != "" || r.UnknownDump != ""
	})
}
