package graph

import (
	"context"
	"fmt"

	"tosec-parser/internal/textutil"
	"tosec-parser/internal/tosec"
	"tosec-parser/internal/worker"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"github.com/rs/zerolog/log"
)

// Linker writes classified records into a Neo4j release graph:
//
//	(:Rom)-[:RELEASE_OF]->(:Title)
//	(:Rom)-[:PUBLISHED_BY]->(:Publisher)
//	(:Rom)-[:RUNS_ON]->(:System)
//	(:Rom)-[:RELEASED_IN]->(:Country)
//	(:Rom)-[:IN_LANGUAGE]->(:Language)
type Linker struct {
	driver neo4j.DriverWithContext
}

// Connect opens a driver and verifies connectivity.
func Connect(ctx context.Context, uri, user, password string) (neo4j.DriverWithContext, error) {
	driver, err := neo4j.NewDriverWithContext(uri, neo4j.BasicAuth(user, password, ""))
	if err != nil {
		return nil, fmt.Errorf("connect Neo4j: %w", err)
	}
	if err := driver.VerifyConnectivity(ctx); err != nil {
		driver.Close(ctx)
		return nil, fmt.Errorf("verify Neo4j connectivity: %w", err)
	}
	log.Info().Msg("Connected to Neo4j")
	return driver, nil
}

// NewLinker creates a new graph linker.
func NewLinker(driver neo4j.DriverWithContext) *Linker {
	return &Linker{driver: driver}
}

var constraints = []string{
	"CREATE CONSTRAINT IF NOT EXISTS FOR (r:Rom) REQUIRE r.name IS UNIQUE",
	"CREATE CONSTRAINT IF NOT EXISTS FOR (t:Title) REQUIRE t.name IS UNIQUE",
	"CREATE CONSTRAINT IF NOT EXISTS FOR (p:Publisher) REQUIRE p.name IS UNIQUE",
	"CREATE CONSTRAINT IF NOT EXISTS FOR (s:System) REQUIRE s.name IS UNIQUE",
	"CREATE CONSTRAINT IF NOT EXISTS FOR (c:Country) REQUIRE c.code IS UNIQUE",
	"CREATE CONSTRAINT IF NOT EXISTS FOR (l:Language) REQUIRE l.code IS UNIQUE",
}

// EnsureSchema creates uniqueness constraints for every node label.
func (l *Linker) EnsureSchema(ctx context.Context) error {
	session := l.driver.NewSession(ctx, neo4j.SessionConfig{})
	defer session.Close(ctx)

	for _, c := range constraints {
		if _, err := session.Run(ctx, c, nil); err != nil {
			return fmt.Errorf("create constraint: %w", err)
		}
	}

	log.Info().Msg("Graph schema ensured")
	return nil
}

const linkQuery = `
	UNWIND $rows AS row
	MERGE (r:Rom {name: row.rom})
	SET r.title = row.title,
	    r.version = row.version,
	    r.date = row.date,
	    r.media_type = row.media_type,
	    r.media_label = row.media_label,
	    r.verified = row.verified
	MERGE (t:Title {name: row.title})
	MERGE (r)-[:RELEASE_OF]->(t)
	FOREACH (name IN row.publishers |
	    MERGE (p:Publisher {name: name})
	    MERGE (r)-[:PUBLISHED_BY]->(p))
	FOREACH (name IN row.systems |
	    MERGE (s:System {name: name})
	    MERGE (r)-[:RUNS_ON]->(s))
	FOREACH (code IN row.countries |
	    MERGE (c:Country {code: code})
	    MERGE (r)-[:RELEASED_IN]->(c))
	FOREACH (code IN row.languages |
	    MERGE (lang:Language {code: code})
	    MERGE (r)-[:IN_LANGUAGE]->(lang))
`

// optional wraps a possibly empty value as a zero- or one-element list, so
// the FOREACH clauses skip absent flags.
func optional(v string) []string {
	if v == "" {
		return []string{}
	}
	return []string{v}
}

// linkRow maps a record to the parameters of one UNWIND row.
func linkRow(r tosec.Record) map[string]any {
	countries := textutil.SplitCodes(r.Country)
	if countries == nil {
		countries = []string{}
	}
	languages := textutil.SplitCodes(r.Language)
	if languages == nil {
		languages = []string{}
	}
	return map[string]any{
		"rom":         r.ROM,
		"title":       r.Title,
		"version":     r.Version,
		"date":        r.Date,
		"media_type":  r.MediaType,
		"media_label": r.MediaLabel,
		"verified":    r.Verified != "",
		"publishers":  optional(r.Publisher),
		"systems":     optional(r.System),
		"countries":   countries,
		"languages":   languages,
	}
}

// Link merges records into the graph in batches and returns how many were
// written.
func (l *Linker) Link(ctx context.Context, records []tosec.Record, batchSize int) (int, error) {
	session := l.driver.NewSession(ctx, neo4j.SessionConfig{})
	defer session.Close(ctx)

	linked := 0
	for _, chunk := range worker.Batch(records, batchSize) {
		rows := make([]any, 0, len(chunk))
		for _, r := range chunk {
			rows = append(rows, linkRow(r))
		}
		if _, err := session.Run(ctx, linkQuery, map[string]any{"rows": rows}); err != nil {
			return linked, fmt.Errorf("link records: %w", err)
		}
		linked += len(chunk)
	}

	log.Info().Int("linked", linked).Msg("Linked records into graph")
	return linked, nil
}
