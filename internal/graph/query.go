package graph

import (
	"context"
	"fmt"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
)

// Release is one ROM of a title as stored in the graph.
type Release struct {
	ROM       string
	Date      string
	Publisher string
	System    string
	Countries []string
}

// Releases lists the ROMs linked to a title.
func (l *Linker) Releases(ctx context.Context, title string) ([]Release, error) {
	session := l.driver.NewSession(ctx, neo4j.SessionConfig{AccessMode: neo4j.AccessModeRead})
	defer session.Close(ctx)

	result, err := session.Run(ctx, `
		MATCH (r:Rom)-[:RELEASE_OF]->(:Title {name: $title})
		OPTIONAL MATCH (r)-[:PUBLISHED_BY]->(p:Publisher)
		OPTIONAL MATCH (r)-[:RUNS_ON]->(s:System)
		OPTIONAL MATCH (r)-[:RELEASED_IN]->(c:Country)
		RETURN r.name AS rom, r.date AS date, p.name AS publisher, s.name AS system,
		       collect(c.code) AS countries
		ORDER BY rom
	`, map[string]any{"title": title})
	if err != nil {
		return nil, fmt.Errorf("query releases: %w", err)
	}

	var releases []Release
	for result.Next(ctx) {
		record := result.Record()
		rel := Release{
			ROM:       stringValue(record, "rom"),
			Date:      stringValue(record, "date"),
			Publisher: stringValue(record, "publisher"),
			System:    stringValue(record, "system"),
		}
		if raw, ok := record.Get("countries"); ok {
			if list, ok := raw.([]any); ok {
				for _, c := range list {
					if s, ok := c.(string); ok {
						rel.Countries = append(rel.Countries, s)
					}
				}
			}
		}
		releases = append(releases, rel)
	}
	if err := result.Err(); err != nil {
		return nil, fmt.Errorf("read releases: %w", err)
	}
	return releases, nil
}

// stringValue reads a string column, treating null as empty.
func stringValue(record *neo4j.Record, key string) string {
	v, ok := record.Get(key)
	if !ok || v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", v)
}
