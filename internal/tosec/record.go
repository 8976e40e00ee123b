package tosec

import "strings"

// Field identifies one column of a classified record. Fields are declared in
// output order.
type Field int

const (
	FieldROM Field = iota
	FieldTitle
	FieldVersion
	FieldDemo
	FieldDate
	FieldPublisher
	FieldSystem
	FieldVideo
	FieldCountry
	FieldLanguage
	FieldCopyright
	FieldDevStatus
	FieldMediaType
	FieldMediaLabel
	FieldUnknown
	FieldCracked
	FieldFixed
	FieldHacked
	FieldModified
	FieldPirated
	FieldTrained
	FieldTranslated
	FieldOverDump
	FieldUnderDump
	FieldVirus
	FieldBadDump
	FieldAlternate
	FieldVerified
	FieldMoreInfo
	FieldUnknownDump

	numFields
)

var fieldNames = [numFields]string{
	"ROM",
	"TITLE",
	"VERSION_FLAG",
	"DEMO_FLAG",
	"DATE_FLAG",
	"PUBLISHER_FLAG",
	"SYSTEM_FLAG",
	"VIDEO_FLAG",
	"COUNTRY_REGION_FLAG",
	"LANGUAGE_FLAG",
	"COPYRIGHT_STATUS_FLAG",
	"DEVELOPMENT_STATUS_FLAG",
	"MEDIA_TYPE_FLAG",
	"MEDIA_LABEL_FLAG",
	"UNKNOWN_FLAGS",
	"CRACKED_DUMP_FLAG",
	"FIXED_DUMP_FLAG",
	"HACKED_DUMP_FLAG",
	"MODIFIED_DUMP_FLAG",
	"PIRATED_DUMP_FLAG",
	"TRAINED_DUMP_FLAG",
	"TRANSLATED_DUMP_FLAG",
	"OVER_DUMP_FLAG",
	"UNDER_DUMP_FLAG",
	"VIRUS_DUMP_FLAG",
	"BAD_DUMP_FLAG",
	"ALTERNATE_DUMP_FLAG",
	"KNOWN_VERIFIED_DUMP_FLAG",
	"MORE_INFO_DUMP_FLAGS",
	"UNKNOWN_DUMP_FLAGS",
}

// String returns the upper-case column name.
func (f Field) String() string {
	if f < 0 || f >= numFields {
		return "UNKNOWN_FIELD"
	}
	return fieldNames[f]
}

// Key returns the lower-case JSON key.
func (f Field) Key() string {
	return strings.ToLower(f.String())
}

// Columns returns the column names in output order.
func Columns() []string {
	cols := make([]string, numFields)
	copy(cols, fieldNames[:])
	return cols
}

// Record is the classified form of one ROM name. Struct field order matches
// the column order, so JSON encoding keeps the keys in order.
type Record struct {
	ROM        string `json:"rom"`
	Title      string `json:"title"`
	Version    string `json:"version_flag"`
	Demo       string `json:"demo_flag"`
	Date       string `json:"date_flag"`
	Publisher  string `json:"publisher_flag"`
	System     string `json:"system_flag"`
	Video      string `json:"video_flag"`
	Country    string `json:"country_region_flag"`
	Language   string `json:"language_flag"`
	Copyright  string `json:"copyright_status_flag"`
	DevStatus  string `json:"development_status_flag"`
	MediaType  string `json:"media_type_flag"`
	MediaLabel string `json:"media_label_flag"`
	Unknown    string `json:"unknown_flags"`

	Cracked     string `json:"cracked_dump_flag"`
	Fixed       string `json:"fixed_dump_flag"`
	Hacked      string `json:"hacked_dump_flag"`
	Modified    string `json:"modified_dump_flag"`
	Pirated     string `json:"pirated_dump_flag"`
	Trained     string `json:"trained_dump_flag"`
	Translated  string `json:"translated_dump_flag"`
	OverDump    string `json:"over_dump_flag"`
	UnderDump   string `json:"under_dump_flag"`
	Virus       string `json:"virus_dump_flag"`
	BadDump     string `json:"bad_dump_flag"`
	Alternate   string `json:"alternate_dump_flag"`
	Verified    string `json:"known_verified_dump_flag"`
	MoreInfo    string `json:"more_info_dump_flags"`
	UnknownDump string `json:"unknown_dump_flags"`
}

func (r *Record) slot(f Field) *string {
	switch f {
	case FieldROM:
		return &r.ROM
	case FieldTitle:
		return &r.Title
	case FieldVersion:
		return &r.Version
	case FieldDemo:
		return &r.Demo
	case FieldDate:
		return &r.Date
	case FieldPublisher:
		return &r.Publisher
	case FieldSystem:
		return &r.System
	case FieldVideo:
		return &r.Video
	case FieldCountry:
		return &r.Country
	case FieldLanguage:
		return &r.Language
	case FieldCopyright:
		return &r.Copyright
	case FieldDevStatus:
		return &r.DevStatus
	case FieldMediaType:
		return &r.MediaType
	case FieldMediaLabel:
		return &r.MediaLabel
	case FieldUnknown:
		return &r.Unknown
	case FieldCracked:
		return &r.Cracked
	case FieldFixed:
		return &r.Fixed
	case FieldHacked:
		return &r.Hacked
	case FieldModified:
		return &r.Modified
	case FieldPirated:
		return &r.Pirated
	case FieldTrained:
		return &r.Trained
	case FieldTranslated:
		return &r.Translated
	case FieldOverDump:
		return &r.OverDump
	case FieldUnderDump:
		return &r.UnderDump
	case FieldVirus:
		return &r.Virus
	case FieldBadDump:
		return &r.BadDump
	case FieldAlternate:
		return &r.Alternate
	case FieldVerified:
		return &r.Verified
	case FieldMoreInfo:
		return &r.MoreInfo
	case FieldUnknownDump:
		return &r.UnknownDump
	}
	return nil
}

// Get returns the value of f, or "" for an unknown field.
func (r *Record) Get(f Field) string {
	if p := r.slot(f); p != nil {
		return *p
	}
	return ""
}

// Has reports whether f holds a value.
func (r *Record) Has(f Field) bool {
	return r.Get(f) != ""
}

// set overwrites a named slot; later tokens of the same category win.
func (r *Record) set(f Field, v string) {
	if p := r.slot(f); p != nil {
		*p = v
	}
}

// appendTo adds v to a space-joined bucket.
func (r *Record) appendTo(f Field, v string) {
	p := r.slot(f)
	if p == nil || v == "" {
		return
	}
	if *p == "" {
		*p = v
		return
	}
	*p += " " + v
}

// Values returns the record as a row in column order.
func (r *Record) Values() []string {
	row := make([]string, numFields)
	for f := Field(0); f < numFields; f++ {
		row[f] = r.Get(f)
	}
	return row
}

// Map returns the record keyed by lower-case column name.
func (r *Record) Map() map[string]string {
	m := make(map[string]string, numFields)
	for f := Field(0); f < numFields; f++ {
		m[f.Key()] = r.Get(f)
	}
	return m
}
