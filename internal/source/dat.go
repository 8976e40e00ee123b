package source

import (
	"bufio"
	"fmt"
	"os"
	"regexp"
	"strings"

	"tosec-parser/internal/tosec"

	"github.com/rs/zerolog/log"
)

// romNamePattern captures the name attribute of a <rom> element.
var romNamePattern = regexp.MustCompile(`<rom\s[^>]*?\bname="([^"]*)"`)

// DatReader extracts declared rom names from a datfile.
type DatReader struct{}

func NewDatReader() *DatReader { return &DatReader{} }

func (d *DatReader) CanRead(path string, info os.FileInfo) bool {
	return info.Mode().IsRegular()
}

// Read returns one entry per rom element, in file order.
func (d *DatReader) Read(path string) ([]Entry, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open datfile: %w", err)
	}
	defer file.Close()

	var entries []Entry

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 1024*1024), 1024*1024)

	for scanner.Scan() {
		for _, m := range romNamePattern.FindAllStringSubmatch(scanner.Text(), -1) {
			rom := UnescapeName(m[1])
			entries = append(entries, Entry{
				ROM:  rom,
				Name: tosec.StripExtension(rom),
				Path: path,
			})
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan datfile: %w", err)
	}

	log.Info().Int("count", len(entries)).Str("datfile", path).Msg("Read datfile rom names")
	return entries, nil
}

// UnescapeName undoes the one entity datfiles use in rom names.
func UnescapeName(s string) string {
	return strings.ReplaceAll(s, "&amp;", "&")
}
