package pipeline

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"tosec-parser/internal/source"
	"tosec-parser/internal/tosec"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memorySink struct {
	name    string
	err     error
	records []tosec.Record
}

func (m *memorySink) Name() string { return m.name }

func (m *memorySink) Write(_ context.Context, records []tosec.Record) (int, error) {
	if m.err != nil {
		return 0, m.err
	}
	m.records = append(m.records, records...)
	return len(records), nil
}

func TestClassifyPreservesOrder(t *testing.T) {
	entries := []source.Entry{
		{ROM: "B (1990)(Acme).zip", Name: "B (1990)(Acme)"},
		{ROM: "A (Taito)(US).zip", Name: "A (Taito)(US)"},
		{ROM: "C [!].zip", Name: "C [!]"},
	}
	records, err := Classify(context.Background(), entries, 4)
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, "B (1990)(Acme).zip", records[0].ROM)
	assert.Equal(t, "Acme", records[0].Publisher)
	assert.Equal(t, "Taito", records[1].MediaLabel)
	assert.Equal(t, "!", records[2].Verified)
}

func TestRunDirectory(t *testing.T) {
	root := t.TempDir()
	in := filepath.Join(root, "Amiga")
	require.NoError(t, os.MkdirAll(in, 0755))
	for _, name := range []string{
		"Lemmings (1991)(Psygnosis)(Disk 1 of 2).adf",
		"Zool (1992)(Gremlin)(AGA)[cr Skid Row] junk.adf",
	} {
		require.NoError(t, os.WriteFile(filepath.Join(in, name), nil, 0644))
	}

	good := &memorySink{name: "memory"}
	bad := &memorySink{name: "broken", err: errors.New("offline")}

	out := filepath.Join(root, "out")
	summary, err := Run(context.Background(), Options{
		Input:     in,
		OutputDir: out,
		Workers:   2,
		Sinks:     []RecordSink{good, bad},
	})
	require.NoError(t, err)

	assert.Equal(t, 2, summary.Names)
	assert.Equal(t, 1, summary.Unrecognized)
	assert.Equal(t, []string{filepath.Join(out, "Amiga.csv"), filepath.Join(out, "Amiga.json")}, summary.Outputs)
	assert.Equal(t, map[string]int{"memory": 2, "broken": 0}, summary.Written)
	require.Len(t, good.records, 2)

	data, err := os.ReadFile(filepath.Join(out, "Amiga.json"))
	require.NoError(t, err)
	var decoded []map[string]string
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Len(t, decoded, 2)
	assert.Equal(t, "Lemmings (1991)(Psygnosis)(Disk 1 of 2).adf", decoded[0]["rom"])
	assert.Equal(t, "Disk 1 of 2", decoded[0]["media_type_flag"])
	assert.Equal(t, "AGA", decoded[1]["system_flag"])
	assert.Equal(t, "cr Skid Row", decoded[1]["cracked_dump_flag"])
	assert.Equal(t, "junk", decoded[1]["unknown_dump_flags"])

	unknown := Unrecognized(good.records)
	require.Len(t, unknown, 1)
	assert.Equal(t, "Zool", unknown[0].Title)
}

func TestRunDatfile(t *testing.T) {
	root := t.TempDir()
	dat := filepath.Join(root, "Sega Mega Drive - Games (TOSEC-v2023).dat")
	require.NoError(t, os.WriteFile(dat, []byte(`<datafile>
	<game name="Sonic">
		<rom name="Sonic the Hedgehog (1991)(Sega)(EU)(en)[!].bin" size="524288"/>
	</game>
</datafile>`), 0644))

	summary, err := Run(context.Background(), Options{Input: dat, OutputDir: root, Workers: 1})
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Names)
	assert.FileExists(t, filepath.Join(root, "Sega Mega Drive - Games (TOSEC-v2023).csv"))
}

func TestRunMissingInput(t *testing.T) {
	_, err := Run(context.Background(), Options{Input: filepath.Join(t.TempDir(), "nope"), OutputDir: t.TempDir()})
	assert.Error(t, err)
}
