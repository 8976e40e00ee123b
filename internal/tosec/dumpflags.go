package tosec

import (
	"regexp"
	"strings"
)

// dumpPattern matches a dump-flag prefix with an optional one or two digit
// index and optional free text, e.g. "cr", "a2", "h Group", "t +3 Group".
var dumpPattern = regexp.MustCompile(`^(cr|tr|[fhmptouvba])([0-9]{1,2})?( .*)?$`)

const verifiedMark = "!"

// classifyDumpFlag maps the inner text of a bracketed token to its slot.
func classifyDumpFlag(inner string) (Field, bool) {
	if inner == verifiedMark {
		return FieldVerified, true
	}
	m := dumpPattern.FindStringSubmatch(inner)
	if m == nil {
		return 0, false
	}
	f, ok := dumpPrefixes[m[1]]
	return f, ok
}

// classifyDumpFlags walks the dump region left to right. Parenthesized text
// goes to the more-info bucket, stray words and unrecognized brackets to the
// unknown bucket.
func classifyDumpFlags(region string, r *Record) {
	for _, chunk := range tokenize(region, ']') {
		lead, token := chunk, ""
		if i := strings.IndexByte(chunk, '['); i >= 0 {
			lead, token = chunk[:i], chunk[i:]
		}

		for _, sub := range tokenize(lead, ')') {
			bare, info := cutOpener(sub, '(')
			r.appendTo(FieldUnknownDump, bare)
			r.appendTo(FieldMoreInfo, info)
		}

		if token == "" {
			continue
		}
		inner := unwrap(token, '[', ']')
		if f, ok := classifyDumpFlag(inner); ok {
			r.set(f, inner)
			continue
		}
		r.appendTo(FieldUnknownDump, token)
	}
}
