package mock

import (
	"iter"

	"github.com/MartinCastroAlvarez/elematch"
)

var _ elematch.Document = (*Document)(nil)

// Document is a mock implementation of elematch.Document.
type Document struct {
	PathFn        func() string
	ChecksumFn    func() uint64
	ElementByIDFn func(id string) (*elematch.Node, error)
	ElementsFn    func() iter.Seq[*elematch.Node]
}

func (d *Document) Path() string {
	return d.PathFn()
}

func (d *Document) Checksum() uint64 {
	return d.ChecksumFn()
}

func (d *Document) ElementByID(id string) (*elematch.Node, error) {
	return d.ElementByIDFn(id)
}

func (d *Document) Elements() iter.Seq[*elematch.Node] {
	return d.ElementsFn()
}

// StaticDocument builds a mock Document over a fixed slice of nodes, which
// covers most tests: ElementByID scans the slice in order and Elements
// yields it lazily.
func StaticDocument(path string, nodes ...*elematch.Node) *Document {
	return &Document{
		PathFn:     func() string { return path },
		ChecksumFn: func() uint64 { return 0 },
		ElementByIDFn: func(id string) (*elematch.Node, error) {
			for _, n := range nodes {
				if n.ID() == id {
					return n, nil
				}
			}
			return nil, elematch.Errorf(elematch.ENOTFOUND, "no element with id %q in %q", id, path)
		},
		ElementsFn: func() iter.Seq[*elematch.Node] {
			return func(yield func(*elematch.Node) bool) {
				for _, n := range nodes {
					if !yield(n) {
						return
					}
				}
			}
		},
	}
}

var _ elematch.DocumentOpener = (*DocumentOpener)(nil)

// DocumentOpener is a mock implementation of elematch.DocumentOpener.
type DocumentOpener struct {
	OpenDocumentFn func(path string) (elematch.Document, error)
}

func (o *DocumentOpener) OpenDocument(path string) (elematch.Document, error) {
	return o.OpenDocumentFn(path)
}
