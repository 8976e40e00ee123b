package tosec

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFileScenarios(t *testing.T) {
	cases := []struct {
		name string
		file string
		want Record
	}{
		{
			name: "full release with verified dump",
			file: "Sonic the Hedgehog (1991)(Sega)(EU)(en)[!].bin",
			want: Record{
				ROM:       "Sonic the Hedgehog (1991)(Sega)(EU)(en)[!].bin",
				Title:     "Sonic the Hedgehog",
				Date:      "1991",
				Publisher: "Sega",
				Country:   "EU",
				Language:  "en",
				Verified:  "!",
			},
		},
		{
			name: "media type and cracked dump",
			file: "Game (1990)(Acme)(Disk 1 of 3)[cr PiratedGroup].img",
			want: Record{
				ROM:       "Game (1990)(Acme)(Disk 1 of 3)[cr PiratedGroup].img",
				Title:     "Game",
				Date:      "1990",
				Publisher: "Acme",
				MediaType: "Disk 1 of 3",
				Cracked:   "cr PiratedGroup",
			},
		},
		{
			name: "no date makes the label a media label",
			file: "Game (Taito)(US).rom",
			want: Record{
				ROM:        "Game (Taito)(US).rom",
				Title:      "Game",
				Country:    "US",
				MediaLabel: "Taito",
			},
		},
		{
			name: "every flags category",
			file: "Cannon Fodder v1.1 (demo)(1993)(Virgin)(A1200)(PAL)(GB)(en-de)(PD)(beta)(Disk 2 of 2)(Save Disk).adf",
			want: Record{
				ROM:        "Cannon Fodder v1.1 (demo)(1993)(Virgin)(A1200)(PAL)(GB)(en-de)(PD)(beta)(Disk 2 of 2)(Save Disk).adf",
				Title:      "Cannon Fodder",
				Version:    "v1.1",
				Demo:       "demo",
				Date:       "1993",
				Publisher:  "Virgin",
				System:     "A1200",
				Video:      "PAL",
				Country:    "GB",
				Language:   "en-de",
				Copyright:  "PD",
				DevStatus:  "beta",
				MediaType:  "Disk 2 of 2",
				MediaLabel: "Save Disk",
			},
		},
		{
			name: "only dump flags",
			file: "Game [!].bin",
			want: Record{
				ROM:      "Game [!].bin",
				Title:    "Game",
				Verified: "!",
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ParseFile(tc.file))
		})
	}
}

func TestParseWithoutFlags(t *testing.T) {
	for _, raw := range []string{"Plain Title", "Zork", "Spy vs Spy", ""} {
		r := Parse(raw)
		assert.Equal(t, raw, r.ROM)
		assert.Equal(t, raw, r.Title)
		for f := FieldVersion; f < numFields; f++ {
			assert.Empty(t, r.Get(f), "%s should be empty for %q", f, raw)
		}
	}
}

func TestParseVersion(t *testing.T) {
	cases := []struct {
		raw, title, version string
	}{
		{"Defender of the Crown v1.2 (1987)(Cinemaware)", "Defender of the Crown", "v1.2"},
		{"Game Rev1 (1990)", "Game", "Rev1"},
		{"Game V2 rev3.01 (1990)", "Game", "rev3.01"},
		{"Spy v. Spy (1984)", "Spy v. Spy", ""},
		{"Vortex (1990)", "Vortex", ""},
	}
	for _, tc := range cases {
		r := Parse(tc.raw)
		assert.Equal(t, tc.title, r.Title, tc.raw)
		assert.Equal(t, tc.version, r.Version, tc.raw)
	}
}

func TestParseIsIdempotent(t *testing.T) {
	names := []string{
		"Sonic the Hedgehog (1991)(Sega)(EU)(en)[!]",
		"Game (1990)(Acme)(Disk 1 of 3)[cr PiratedGroup][a2] (info)",
		"Broken (1990)(Acme",
	}
	for _, n := range names {
		assert.Equal(t, Parse(n), Parse(n))
	}
}

func TestParseUnterminatedFlag(t *testing.T) {
	r := Parse("Broken (1990)(Acme")
	assert.Equal(t, "1990", r.Date)
	assert.Equal(t, "Acme", r.Publisher)
}

func TestColumnsOrderMatchesJSON(t *testing.T) {
	cols := Columns()
	require.Len(t, cols, int(numFields))
	assert.Equal(t, "ROM", cols[0])
	assert.Equal(t, "UNKNOWN_DUMP_FLAGS", cols[len(cols)-1])

	data, err := json.Marshal(Parse("Game (1990)(Acme)[!]"))
	require.NoError(t, err)

	var ordered []string
	dec := json.NewDecoder(bytes.NewReader(data))
	_, err = dec.Token()
	require.NoError(t, err)
	for dec.More() {
		key, err := dec.Token()
		require.NoError(t, err)
		ordered = append(ordered, key.(string))
		_, err = dec.Token()
		require.NoError(t, err)
	}

	for i, col := range cols {
		assert.Equal(t, Field(i).Key(), ordered[i], col)
	}
}

func TestRecordValuesAndMap(t *testing.T) {
	r := Parse("Game (1990)(Acme)[!]")
	row := r.Values()
	require.Len(t, row, int(numFields))
	assert.Equal(t, "Game", row[FieldTitle])
	assert.Equal(t, "Acme", row[FieldPublisher])
	assert.Equal(t, "!", row[FieldVerified])

	m := r.Map()
	assert.Equal(t, "1990", m["date_flag"])
	assert.Equal(t, "", m["media_label_flag"])
}

func TestStripExtension(t *testing.T) {
	cases := map[string]string{
		"Game (1990)(Acme)[!].zip": "Game (1990)(Acme)[!]",
		"Game.adf":                 "Game",
		"Game (1990)":              "Game (1990)",
		"Game [a]":                 "Game [a]",
		".hidden":                  ".hidden",
		"Trailing.":                "Trailing.",
		"Dr. Who (1990)":           "Dr. Who (1990)",
	}
	for in, want := range cases {
		assert.Equal(t, want, StripExtension(in), in)
	}
}
