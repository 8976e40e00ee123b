package tosec

// Lookup tables for the enumerated flag categories. Matching against them is
// exact and case-sensitive.

// Set is a static string lookup table.
type Set map[string]struct{}

func newSet(items ...string) Set {
	s := make(Set, len(items))
	for _, it := range items {
		s[it] = struct{}{}
	}
	return s
}

// Has reports whether v is a member.
func (s Set) Has(v string) bool {
	_, ok := s[v]
	return ok
}

var demoFlags = newSet(
	"demo",
	"demo-kiosk",
	"demo-playable",
	"demo-rolling",
	"demo-slideshow",
)

// Systems lists the hardware model names accepted as a system flag.
var Systems = newSet(
	"+2", "+2a", "+3",
	"130XE",
	"A1000", "A1200", "A1200-A4000", "A2000", "A2000-A3000", "A2024",
	"A2500-A3000UX", "A3000", "A4000", "A4000T", "A500", "A500+",
	"A500-A1000-A2000", "A500-A1000-A2000-CDTV", "A500-A1200",
	"A500-A1200-A2000-A4000", "A500-A2000", "A500-A600-A2000", "A570",
	"A600", "A600HD",
	"AGA", "AGA-CD32",
	"Aladdin Deck Enhancer",
	"CD32", "CDTV",
	"Computrainer",
	"Doctor PC Jr.",
	"ECS", "ECS-AGA",
	"Executive",
	"Mega ST", "Mega-STE",
	"OCS", "OCS-AGA",
	"ORCH80",
	"Osbourne 1",
	"PIANO90",
	"PlayChoice-10",
	"Plus4",
	"Primo-A", "Primo-A64", "Primo-B", "Primo-B64", "Pro-Primo",
	"ST", "STE", "STE-Falcon",
	"TT",
	"TURBO-R GT", "TURBO-R ST",
	"VS DualSystem", "VS UniSystem",
)

// VideoStandards lists the accepted video flags.
var VideoStandards = newSet(
	"CGA", "EGA", "HGC", "MCGA", "MDA",
	"NTSC", "NTSC-PAL", "PAL", "PAL-60", "PAL-NTSC",
	"SVGA", "VGA", "XGA",
)

// Countries lists the two-letter country/region codes.
var Countries = newSet(
	"AE", "AL", "AS", "AT", "AU", "BA", "BE", "BG", "BR", "CA", "CH", "CL",
	"CN", "CS", "CY", "CZ", "DE", "DK", "EE", "EG", "ES", "EU", "FI", "FR",
	"GB", "GR", "HK", "HR", "HU", "ID", "IE", "IL", "IN", "IR", "IS", "IT",
	"JO", "JP", "KR", "LT", "LU", "LV", "MN", "MX", "MY", "NL", "NO", "NP",
	"NZ", "OM", "PE", "PH", "PL", "PT", "QA", "RO", "RU", "SE", "SG", "SI",
	"SK", "TH", "TR", "TW", "US", "VN", "YU", "ZA",
)

// Languages lists the two-letter language codes.
var Languages = newSet(
	"ar", "bg", "bs", "cs", "cy", "da", "de", "el", "en", "eo", "es", "et",
	"fa", "fi", "fr", "ga", "gu", "he", "hi", "hr", "hu", "is", "it", "ja",
	"ko", "lt", "lv", "ms", "nl", "no", "pl", "pt", "ro", "ru", "sk", "sl",
	"sq", "sr", "sv", "th", "tr", "ur", "vi", "yi", "zh",
)

var copyrightFlags = newSet(
	"CW", "CW-R", "FW", "GW", "GW-R", "LW", "PD", "SW", "SW-R",
)

var devStatusFlags = newSet(
	"alpha", "beta", "preview", "pre-release", "proto",
)

// dumpPrefixes maps a dump-flag prefix to its slot.
var dumpPrefixes = map[string]Field{
	"cr": FieldCracked,
	"f":  FieldFixed,
	"h":  FieldHacked,
	"m":  FieldModified,
	"p":  FieldPirated,
	"t":  FieldTrained,
	"tr": FieldTranslated,
	"o":  FieldOverDump,
	"u":  FieldUnderDump,
	"v":  FieldVirus,
	"b":  FieldBadDump,
	"a":  FieldAlternate,
}
