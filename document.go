package elematch

import "iter"

// Document is a parsed, immutable tree-structured document.
// Implementations hide the underlying parser (HTML vs XML).
type Document interface {
	// Path returns the source path the document was loaded from.
	Path() string

	// Checksum returns a hash of the raw source bytes, used for logging
	// and run persistence, never for matching.
	Checksum() uint64

	// ElementByID returns the first element in document order whose "id"
	// attribute equals id. Returns ENOTFOUND if no element matches.
	ElementByID(id string) (*Node, error)

	// Elements returns a lazy depth-first traversal of every element in
	// document order, each annotated with its structural path. The
	// sequence is finite and can be ranged over any number of times;
	// each range is an independent single pass.
	Elements() iter.Seq[*Node]
}

// DocumentOpener loads documents from persistent storage.
// Implementations parse eagerly; returned documents perform no further I/O.
type DocumentOpener interface {
	// OpenDocument reads and parses the file at path.
	// Returns EUNAVAILABLE if the file is missing or unreadable and
	// EINVALID if it cannot be parsed.
	OpenDocument(path string) (Document, error)
}
