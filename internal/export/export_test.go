package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"tosec-parser/internal/tosec"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleRecords() []tosec.Record {
	return []tosec.Record{
		tosec.ParseFile("Sonic the Hedgehog (1991)(Sega)(EU)(en)[!].bin"),
		tosec.ParseFile("Dungeons & Dragons, Part 1 (1992)(SSI)(Disk 1 of 2).adf"),
	}
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, sampleRecords()))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, tosec.Columns(), rows[0])
	assert.Equal(t, "Sonic the Hedgehog", rows[1][tosec.FieldTitle])
	assert.Equal(t, "!", rows[1][tosec.FieldVerified])
	assert.Equal(t, "Dungeons & Dragons, Part 1", rows[2][tosec.FieldTitle])
	assert.Equal(t, "Disk 1 of 2", rows[2][tosec.FieldMediaType])
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, sampleRecords()))
	assert.Contains(t, buf.String(), `"title": "Dungeons & Dragons, Part 1"`)

	var decoded []map[string]string
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded, 2)
	assert.Equal(t, "Sega", decoded[0]["publisher_flag"])
	assert.Len(t, decoded[0], len(tosec.Columns()))
}

func TestWriteJSONEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, nil))
	assert.Equal(t, "[]\n", buf.String())
}

func TestExporter(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out", "nested")
	paths, err := NewExporter(dir).Export("amiga", sampleRecords())
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(dir, "amiga.csv"),
		filepath.Join(dir, "amiga.json"),
	}, paths)

	for _, p := range paths {
		info, err := os.Stat(p)
		require.NoError(t, err)
		assert.Greater(t, info.Size(), int64(0))
	}
}

func TestBaseName(t *testing.T) {
	assert.Equal(t, "Commodore Amiga - Games (TOSEC-v2023)", BaseName("/dats/Commodore Amiga - Games (TOSEC-v2023).dat"))
	assert.Equal(t, "roms", BaseName("/data/roms/"))
	assert.Equal(t, ".hidden", BaseName(".hidden"))
}
