package tosec

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplit(t *testing.T) {
	cases := []struct {
		raw                string
		title, flags, dump string
	}{
		{"Game", "Game", "", ""},
		{"Game (1990)(Acme)", "Game ", "(1990)(Acme)", ""},
		{"Game (1990)(Acme)[!][a]", "Game ", "(1990)(Acme)", "[!][a]"},
		{"Game [!]", "Game ", "", "[!]"},
		{"Game [b] (1990)", "Game ", "", "[b] (1990)"},
		{"Game (1990", "Game ", "(1990", ""},
		{"", "", "", ""},
	}
	for _, tc := range cases {
		title, flags, dump := Split(tc.raw)
		assert.Equal(t, tc.title, title, tc.raw)
		assert.Equal(t, tc.flags, flags, tc.raw)
		assert.Equal(t, tc.dump, dump, tc.raw)
	}
}

func TestSplitPartitionsName(t *testing.T) {
	names := []string{
		"Sonic the Hedgehog (1991)(Sega)(EU)(en)[!]",
		"Game [b] (1990)",
		"((([[[",
		"a)b(c]d[e",
		"Title v1.0 (demo)(1990)(Pub)[cr][more info]",
	}
	for _, n := range names {
		title, flags, dump := Split(n)
		assert.Equal(t, n, title+flags+dump)
	}
}

func TestTokenize(t *testing.T) {
	assert.Equal(t,
		[]string{"(1990)", "(Acme)", "stray (US)", "(tail"},
		tokenize("(1990)(Acme) stray (US)(tail", ')'))
	assert.Equal(t, []string{"[!]", "[a]"}, tokenize("[!] [a]  ", ']'))
	assert.Empty(t, tokenize("   ", ')'))
	assert.Empty(t, tokenize("", ']'))
}

// The title, version and the flags tokens read back in order rebuild the part
// of the name before the first '['.
func TestFlagsRoundTrip(t *testing.T) {
	names := []string{
		"Sonic the Hedgehog (1991)(Sega)(EU)(en)[!]",
		"Cannon Fodder v1.1 (demo)(1993)(Virgin)(A1200)(PAL)(GB)(en-de)(PD)(beta)(Disk 2 of 2)(Save Disk)",
		"Game (Taito)(US)",
	}
	for _, n := range names {
		r := Parse(n)
		_, flags, _ := Split(n)

		parts := []string{r.Title}
		if r.Version != "" {
			parts = append(parts, r.Version)
		}
		rebuilt := strings.Join(parts, " ") + " " + strings.Join(tokenize(flags, ')'), "")

		pre := n
		if i := strings.IndexByte(n, '['); i >= 0 {
			pre = n[:i]
		}
		assert.Equal(t, squash(pre), squash(rebuilt))
	}
}
