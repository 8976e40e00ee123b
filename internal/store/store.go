package store

import (
	"context"
	"fmt"
	"strings"

	"tosec-parser/internal/textutil"
	"tosec-parser/internal/tosec"
	"tosec-parser/internal/worker"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	pgvector "github.com/pgvector/pgvector-go"
	"github.com/rs/zerolog/log"
)

const tableName = "tosec_roms"

// RecordStore persists classified records in PostgreSQL, with a pgvector
// index over titles for similarity search.
type RecordStore struct {
	pool *pgxpool.Pool
}

// Match is one similarity search hit.
type Match struct {
	ROM   string
	Title string
	Score float64
}

// Connect opens and pings a PostgreSQL pool.
func Connect(ctx context.Context, url string) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("connect PostgreSQL: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping PostgreSQL: %w", err)
	}
	log.Info().Msg("Connected to PostgreSQL")
	return pool, nil
}

// NewRecordStore creates a new record store.
func NewRecordStore(pool *pgxpool.Pool) *RecordStore {
	return &RecordStore{pool: pool}
}

// EnsureSchema creates the vector extension and the records table.
func (s *RecordStore) EnsureSchema(ctx context.Context) error {
	for _, stmt := range schemaStatements() {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	log.Info().Str("table", tableName).Msg("Record schema ensured")
	return nil
}

func schemaStatements() []string {
	cols := make([]string, 0, len(tosec.Columns())+3)
	cols = append(cols, "hash TEXT PRIMARY KEY")
	for _, c := range tosec.Columns() {
		cols = append(cols, fmt.Sprintf("%s TEXT NOT NULL DEFAULT ''", strings.ToLower(c)))
	}
	cols = append(cols,
		fmt.Sprintf("title_vec vector(%d)", VectorDims),
		"updated_at TIMESTAMPTZ NOT NULL DEFAULT now()",
	)

	return []string{
		"CREATE EXTENSION IF NOT EXISTS vector",
		fmt.Sprintf("CREATE TABLE IF NOT EXISTS %s (\n\t%s\n)", tableName, strings.Join(cols, ",\n\t")),
		fmt.Sprintf("CREATE INDEX IF NOT EXISTS %s_title_idx ON %s (title)", tableName, tableName),
	}
}

// upsertSQL builds the insert statement: hash, one parameter per column,
// then the title vector.
func upsertSQL() string {
	cols := []string{"hash"}
	for _, c := range tosec.Columns() {
		cols = append(cols, strings.ToLower(c))
	}
	cols = append(cols, "title_vec")

	params := make([]string, len(cols))
	updates := make([]string, 0, len(cols))
	for i, c := range cols {
		params[i] = fmt.Sprintf("$%d", i+1)
		if c != "hash" {
			updates = append(updates, fmt.Sprintf("%s = EXCLUDED.%s", c, c))
		}
	}
	updates = append(updates, "updated_at = now()")

	return fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s) ON CONFLICT (hash) DO UPDATE SET %s",
		tableName,
		strings.Join(cols, ", "),
		strings.Join(params, ", "),
		strings.Join(updates, ", "),
	)
}

// upsertArgs lines up a record with the parameters of upsertSQL.
func upsertArgs(r tosec.Record) []any {
	values := r.Values()
	args := make([]any, 0, len(values)+2)
	args = append(args, textutil.Hash(r.ROM))
	for _, v := range values {
		args = append(args, v)
	}
	if vec := TitleVector(r.Title); vec != nil {
		args = append(args, pgvector.NewVector(vec))
	} else {
		args = append(args, nil)
	}
	return args
}

// Upsert writes records in batches, replacing earlier rows for the same ROM.
func (s *RecordStore) Upsert(ctx context.Context, records []tosec.Record, batchSize int) (int, error) {
	sql := upsertSQL()
	stored := 0

	for _, chunk := range worker.Batch(records, batchSize) {
		batch := &pgx.Batch{}
		for _, r := range chunk {
			batch.Queue(sql, upsertArgs(r)...)
		}

		br := s.pool.SendBatch(ctx, batch)
		for i := range chunk {
			if _, err := br.Exec(); err != nil {
				br.Close()
				return stored, fmt.Errorf("upsert %s: %w", textutil.Truncate(chunk[i].ROM, 60), err)
			}
			stored++
		}
		if err := br.Close(); err != nil {
			return stored, fmt.Errorf("close batch: %w", err)
		}
	}

	log.Info().Int("stored", stored).Msg("Upserted records")
	return stored, nil
}

// Similar returns the topK stored titles closest to title.
func (s *RecordStore) Similar(ctx context.Context, title string, topK int) ([]Match, error) {
	vec := TitleVector(title)
	if vec == nil {
		return nil, nil
	}

	rows, err := s.pool.Query(ctx, fmt.Sprintf(`
		SELECT rom, title, 1 - (title_vec <=> $1) AS similarity
		FROM %s
		WHERE title_vec IS NOT NULL
		ORDER BY title_vec <=> $1
		LIMIT $2
	`, tableName), pgvector.NewVector(vec), topK)
	if err != nil {
		return nil, fmt.Errorf("similarity search: %w", err)
	}
	defer rows.Close()

	var matches []Match
	for rows.Next() {
		var m Match
		if err := rows.Scan(&m.ROM, &m.Title, &m.Score); err != nil {
			return nil, fmt.Errorf("scan match: %w", err)
		}
		matches = append(matches, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("similarity search: %w", err)
	}
	return matches, nil
}
