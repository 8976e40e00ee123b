package pipeline

import (
	"context"

	"tosec-parser/internal/graph"
	"tosec-parser/internal/store"
	"tosec-parser/internal/tosec"
)

// StoreSink upserts records into PostgreSQL.
type StoreSink struct {
	Store     *store.RecordStore
	BatchSize int
}

func (s StoreSink) Name() string { return "postgres" }

func (s StoreSink) Write(ctx context.Context, records []tosec.Record) (int, error) {
	return s.Store.Upsert(ctx, records, s.BatchSize)
}

// GraphSink links records into Neo4j.
type GraphSink struct {
	Linker    *graph.Linker
	BatchSize int
}

func (g GraphSink) Name() string { return "neo4j" }

func (g GraphSink) Write(ctx context.Context, records []tosec.Record) (int, error) {
	return g.Linker.Link(ctx, records, g.BatchSize)
}
