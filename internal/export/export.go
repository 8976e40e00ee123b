package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"tosec-parser/internal/tosec"

	"github.com/rs/zerolog/log"
)

// WriteCSV writes a header row of column names followed by one row per record.
func WriteCSV(w io.Writer, records []tosec.Record) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(tosec.Columns()); err != nil {
		return fmt.Errorf("write CSV header: %w", err)
	}
	for i := range records {
		if err := cw.Write(records[i].Values()); err != nil {
			return fmt.Errorf("write CSV row %d: %w", i, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteJSON writes the records as an indented JSON array.
func WriteJSON(w io.Writer, records []tosec.Record) error {
	if records == nil {
		records = []tosec.Record{}
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	encoder.SetEscapeHTML(false)

	if err := encoder.Encode(records); err != nil {
		return fmt.Errorf("encode JSON: %w", err)
	}
	return nil
}

// Exporter writes classified records to CSV and JSON files.
type Exporter struct {
	OutputDir string
}

// NewExporter creates an exporter writing into dir.
func NewExporter(dir string) *Exporter {
	return &Exporter{OutputDir: dir}
}

// Export writes <base>.csv and <base>.json and returns their paths.
func (e *Exporter) Export(base string, records []tosec.Record) ([]string, error) {
	if err := os.MkdirAll(e.OutputDir, 0755); err != nil {
		return nil, fmt.Errorf("create output directory: %w", err)
	}

	csvPath := filepath.Join(e.OutputDir, base+".csv")
	if err := writeFile(csvPath, records, WriteCSV); err != nil {
		return nil, err
	}
	log.Info().Str("path", csvPath).Int("records", len(records)).Msg("Exported records to CSV")

	jsonPath := filepath.Join(e.OutputDir, base+".json")
	if err := writeFile(jsonPath, records, WriteJSON); err != nil {
		return nil, err
	}
	log.Info().Str("path", jsonPath).Int("records", len(records)).Msg("Exported records to JSON")

	return []string{csvPath, jsonPath}, nil
}

func writeFile(path string, records []tosec.Record, write func(io.Writer, []tosec.Record) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", filepath.Base(path), err)
	}
	if err := write(f, records); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", filepath.Base(path), err)
	}
	return nil
}

// BaseName derives the output file stem from an input path.
func BaseName(input string) string {
	base := filepath.Base(filepath.Clean(input))
	if ext := filepath.Ext(base); ext != "" && ext != base {
		base = base[:len(base)-len(ext)]
	}
	return base
}
