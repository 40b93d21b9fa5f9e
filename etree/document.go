// Package etree provides an XML implementation of elematch.Document.
package etree

import (
	"iter"
	"os"
	"strconv"
	"strings"

	"github.com/MartinCastroAlvarez/elematch"
	"github.com/beevik/etree"
	"github.com/cespare/xxhash/v2"
)

// Ensure interfaces are implemented.
var (
	_ elematch.Document       = (*Document)(nil)
	_ elematch.DocumentOpener = (*Opener)(nil)
)

// Opener loads XML documents from disk.
type Opener struct{}

// NewOpener creates a new Opener.
func NewOpener() *Opener {
	return &Opener{}
}

// OpenDocument implements elematch.DocumentOpener.
func (o *Opener) OpenDocument(path string) (elematch.Document, error) {
	return Open(path)
}

// Document wraps a parsed XML document. It is immutable after parsing and
// performs no I/O.
type Document struct {
	path string
	sum  uint64
	doc  *etree.Document
}

// Open reads and parses the XML file at path.
func Open(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, elematch.Errorf(elematch.EUNAVAILABLE, "cannot read document %q: %v", path, err)
	}
	return Parse(path, data)
}

// Parse parses raw XML bytes. The path is recorded for reporting only.
func Parse(path string, data []byte) (*Document, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, elematch.Errorf(elematch.EINVALID, "failed to parse XML in %q: %v", path, err)
	}
	if doc.Root() == nil {
		return nil, elematch.Errorf(elematch.EINVALID, "no root element in %q", path)
	}
	return &Document{path: path, sum: xxhash.Sum64(data), doc: doc}, nil
}

// Path implements elematch.Document.
func (d *Document) Path() string {
	return d.path
}

// Checksum implements elematch.Document.
func (d *Document) Checksum() uint64 {
	return d.sum
}

// ElementByID implements elematch.Document. When several elements carry the
// same id, the first in document order wins.
func (d *Document) ElementByID(id string) (*elematch.Node, error) {
	if id == "" {
		return nil, elematch.Errorf(elematch.EINVALID, "element id required")
	}
	var found *etree.Element
	var walk func(e *etree.Element) bool
	walk = func(e *etree.Element) bool {
		if e.SelectAttrValue("id", "") == id {
			found = e
			return false
		}
		for _, c := range e.ChildElements() {
			if !walk(c) {
				return false
			}
		}
		return true
	}
	walk(d.doc.Root())
	if found == nil {
		return nil, elematch.Errorf(elematch.ENOTFOUND, "no element with id %q in %q", id, d.path)
	}
	return newNode(found), nil
}

// Elements implements elematch.Document. Each range over the returned
// sequence is an independent depth-first pass in document order.
func (d *Document) Elements() iter.Seq[*elematch.Node] {
	return func(yield func(*elematch.Node) bool) {
		var walk func(e *etree.Element) bool
		walk = func(e *etree.Element) bool {
			if !yield(newNode(e)) {
				return false
			}
			for _, c := range e.ChildElements() {
				if !walk(c) {
					return false
				}
			}
			return true
		}
		walk(d.doc.Root())
	}
}

// newNode projects an etree.Element into the domain representation.
func newNode(e *etree.Element) *elematch.Node {
	attr := make(map[string]elematch.Text, len(e.Attr))
	for _, a := range e.Attr {
		if a.Value == "" {
			continue
		}
		key := a.Key
		if a.Space != "" {
			key = a.Space + ":" + a.Key
		}
		attr[key] = elematch.NewText(a.Value)
	}
	return &elematch.Node{
		Tag:  e.Tag,
		Text: elematch.NewText(e.Text()),
		Attr: attr,
		Path: nodePath(e),
	}
}

// nodePath returns the structural path of an element relative to the
// document root element, same convention as the HTML accessor: tag segments
// separated by "/", each indexed [n] (1-based) only when the element has
// same-tag siblings. The root element itself resolves to ".".
func nodePath(e *etree.Element) string {
	var segs []string
	for cur := e; cur != nil; cur = cur.Parent() {
		parent := cur.Parent()
		// The document itself is modeled as a tagless pseudo-element.
		if parent == nil || parent.Tag == "" {
			break
		}
		segs = append([]string{pathSegment(cur, parent)}, segs...)
	}
	if len(segs) == 0 {
		return "."
	}
	return strings.Join(segs, "/")
}

func pathSegment(e, parent *etree.Element) string {
	position, total := 0, 0
	for _, c := range parent.ChildElements() {
		if c.Tag != e.Tag {
			continue
		}
		total++
		if c == e {
			position = total
		}
	}
	if total > 1 {
		return e.Tag + "[" + strconv.Itoa(position) + "]"
	}
	return e.Tag
}
