package tosec

import (
	"regexp"
	"strings"
)

var (
	datePattern      = regexp.MustCompile(`^[12][90][0-9x]{2}(-[0-9x]{2}(-[0-9x]{2})?)?$`)
	mediaTypePattern = regexp.MustCompile(`^(Disc|Disk|File|Part|Side|Tape)( \S+( of \S+)?)?$`)
	multiLangPattern = regexp.MustCompile(`^M[0-9]$`)
	twoLetterPattern = regexp.MustCompile(`^[A-Za-z]{2}$`)
)

// publisherBlockers are the categories whose presence turns an unmatched
// token into a media label rather than a publisher.
var publisherBlockers = []Field{
	FieldPublisher,
	FieldSystem,
	FieldVideo,
	FieldCountry,
	FieldLanguage,
	FieldCopyright,
	FieldDevStatus,
	FieldMediaType,
	FieldMediaLabel,
}

// classifyFlag decides the category of one parenthesized token given the
// flags already assigned in r. It does not modify r.
func classifyFlag(inner string, r *Record) Field {
	switch {
	case demoFlags.Has(inner):
		return FieldDemo
	case datePattern.MatchString(inner):
		return FieldDate
	case Systems.Has(inner):
		return FieldSystem
	case VideoStandards.Has(inner):
		return FieldVideo
	case isCountry(inner):
		return FieldCountry
	case isLanguage(inner):
		return FieldLanguage
	case copyrightFlags.Has(inner):
		return FieldCopyright
	case devStatusFlags.Has(inner):
		return FieldDevStatus
	case mediaTypePattern.MatchString(inner):
		return FieldMediaType
	}
	if publisherSlotOpen(r) {
		return FieldPublisher
	}
	return FieldMediaLabel
}

// publisherSlotOpen reports whether the next ambiguous token sits in the
// publisher position: right after the date, before any other flag.
func publisherSlotOpen(r *Record) bool {
	if !r.Has(FieldDate) {
		return false
	}
	for _, f := range publisherBlockers {
		if r.Has(f) {
			return false
		}
	}
	return true
}

// isCountry accepts a known code, or a known code joined to any second
// two-letter code. The second code is not checked against the table.
func isCountry(s string) bool {
	first, second, paired := strings.Cut(s, "-")
	if !Countries.Has(first) {
		return false
	}
	return !paired || twoLetterPattern.MatchString(second)
}

// isLanguage accepts a known code or an M<n> multi-language marker,
// optionally followed by a second code that is not checked against the
// table.
func isLanguage(s string) bool {
	first, second, paired := strings.Cut(s, "-")
	if !Languages.Has(first) && !multiLangPattern.MatchString(first) {
		return false
	}
	return !paired || twoLetterPattern.MatchString(second) || multiLangPattern.MatchString(second)
}

// classifyFlags walks the flags region left to right.
func classifyFlags(region string, r *Record) {
	for _, chunk := range tokenize(region, ')') {
		bare, token := cutOpener(chunk, '(')
		r.appendTo(FieldUnknown, bare)
		if token == "" {
			continue
		}
		inner := unwrap(token, '(', ')')
		r.set(classifyFlag(inner, r), inner)
	}
}
