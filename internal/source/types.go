package source

import "os"

// Entry is one ROM name handed to the classifier.
type Entry struct {
	// ROM is the name as found: a file name or a datfile's declared rom name.
	ROM string
	// Name is ROM with its file extension removed.
	Name string
	// Path is the file the entry came from.
	Path string
}

// Reader is the interface for all name producers.
type Reader interface {
	// CanRead returns true if this reader handles the given input.
	CanRead(path string, info os.FileInfo) bool
	// Read produces the entries of the input in order.
	Read(path string) ([]Entry, error)
}
