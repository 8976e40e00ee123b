package source

import (
	"fmt"
	"os"
	"path/filepath"

	"tosec-parser/internal/tosec"

	"github.com/rs/zerolog/log"
)

// Walker lists the ROM files of a directory.
type Walker struct {
	// Recursive descends into subdirectories.
	Recursive bool
}

// NewWalker creates a Walker.
func NewWalker(recursive bool) *Walker {
	return &Walker{Recursive: recursive}
}

func (w *Walker) CanRead(path string, info os.FileInfo) bool {
	return info.IsDir()
}

// Read returns one entry per regular file under root, in lexical order.
func (w *Walker) Read(root string) ([]Entry, error) {
	root, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolve root path: %w", err)
	}

	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("stat root: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("root is not a directory: %s", root)
	}

	var entries []Entry

	err = filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			log.Warn().Err(err).Str("path", path).Msg("Error walking path")
			return nil
		}

		if info.IsDir() {
			if path != root && !w.Recursive {
				return filepath.SkipDir
			}
			return nil
		}
		if !info.Mode().IsRegular() {
			return nil
		}

		name := info.Name()
		entries = append(entries, Entry{
			ROM:  name,
			Name: tosec.StripExtension(name),
			Path: path,
		})
		return nil
	})

	if err != nil {
		return nil, fmt.Errorf("walk directory: %w", err)
	}

	log.Info().Int("count", len(entries)).Str("root", root).Msg("Discovered ROM files")
	return entries, nil
}
