// Package tosec classifies ROM names written in the TOSEC naming convention
// into a Record of named flags.
//
// A name has three regions: the title (with an optional version word), the
// parenthesized flags and the bracketed dump flags:
//
//	Title v1.0 (demo)(1990)(Publisher)(System)(Video)(Country)(Language)(Copyright)(Devstatus)(Media Type)(Media Label)[cr][f][h][m][p][t][tr][o][u][v][b][a][!][more info]
//
// Parsing is total: every input yields a Record, and text that fits no
// category lands in the unknown buckets.
package tosec

import "strings"

// Parse classifies a raw name that has already had its file extension
// removed. ROM is set to the raw name.
func Parse(raw string) Record {
	r := Record{ROM: raw}

	titleSeg, flagsRegion, dumpRegion := Split(raw)
	r.Title, r.Version = classifyTitle(titleSeg)
	classifyFlags(flagsRegion, &r)
	classifyDumpFlags(dumpRegion, &r)

	return r
}

// ParseFile classifies a file name. The extension is stripped before
// parsing and kept in ROM.
func ParseFile(filename string) Record {
	r := Parse(StripExtension(filename))
	r.ROM = filename
	return r
}

// StripExtension removes the text after the final '.' when it looks like a
// file extension: non-empty and free of spaces and flag delimiters.
func StripExtension(name string) string {
	i := strings.LastIndexByte(name, '.')
	if i <= 0 {
		return name
	}
	ext := name[i+1:]
	if ext == "" || strings.ContainsAny(ext, " ()[]") {
		return name
	}
	return name[:i]
}
