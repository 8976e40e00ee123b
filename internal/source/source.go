package source

import (
	"fmt"
	"os"
)

// Open reads the entries of path with the first reader that accepts it: a
// directory is listed, a regular file is read as a datfile.
func Open(path string, recursive bool) ([]Entry, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat input: %w", err)
	}

	readers := []Reader{
		NewWalker(recursive),
		NewDatReader(),
	}
	for _, r := range readers {
		if r.CanRead(path, info) {
			return r.Read(path)
		}
	}
	return nil, fmt.Errorf("unsupported input: %s", path)
}
