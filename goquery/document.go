// Package goquery provides an HTML implementation of elematch.Document.
package goquery

import (
	"bytes"
	"iter"
	"os"
	"strconv"
	"strings"

	"github.com/MartinCastroAlvarez/elematch"
	"github.com/PuerkitoBio/goquery"
	"github.com/cespare/xxhash/v2"
	"golang.org/x/net/html"
)

// Ensure interfaces are implemented.
var (
	_ elematch.Document       = (*Document)(nil)
	_ elematch.DocumentOpener = (*Opener)(nil)
)

// Opener loads HTML documents from disk.
type Opener struct{}

// NewOpener creates a new Opener.
func NewOpener() *Opener {
	return &Opener{}
}

// OpenDocument implements elematch.DocumentOpener.
func (o *Opener) OpenDocument(path string) (elematch.Document, error) {
	return Open(path)
}

// Document wraps a parsed HTML document. It is immutable after parsing and
// performs no I/O.
type Document struct {
	path string
	sum  uint64
	doc  *goquery.Document
}

// Open reads and parses the HTML file at path.
func Open(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, elematch.Errorf(elematch.EUNAVAILABLE, "cannot read document %q: %v", path, err)
	}
	return Parse(path, data)
}

// Parse parses raw HTML bytes. The path is recorded for reporting only.
func Parse(path string, data []byte) (*Document, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(data))
	if err != nil {
		return nil, elematch.Errorf(elematch.EINVALID, "failed to parse HTML in %q: %v", path, err)
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
	var found *html.Node
	d.doc.Find("*").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		if v, ok := sel.Attr("id"); ok && v == id {
			found = sel.Get(0)
			return false
		}
		return true
	})
	if found == nil {
		return nil, elematch.Errorf(elematch.ENOTFOUND, "no element with id %q in %q", id, d.path)
	}
	return newNode(found), nil
}

// Elements implements elematch.Document. Each range over the returned
// sequence is an independent depth-first pass in document order.
func (d *Document) Elements() iter.Seq[*elematch.Node] {
	return func(yield func(*elematch.Node) bool) {
		var walk func(n *html.Node) bool
		walk = func(n *html.Node) bool {
			if n.Type == html.ElementNode && !yield(newNode(n)) {
				return false
			}
			for c := n.FirstChild; c != nil; c = c.NextSibling {
				if !walk(c) {
					return false
				}
			}
			return true
		}
		for _, root := range d.doc.Nodes {
			if !walk(root) {
				return
			}
		}
	}
}

// newNode projects an html.Node into the domain representation.
func newNode(n *html.Node) *elematch.Node {
	attr := make(map[string]elematch.Text, len(n.Attr))
	for _, a := range n.Attr {
		if a.Val == "" {
			continue
		}
		attr[a.Key] = elematch.NewText(a.Val)
	}
	return &elematch.Node{
		Tag:  n.Data,
		Text: elematch.NewText(leadingText(n)),
		Attr: attr,
		Path: nodePath(n),
	}
}

// leadingText returns the character data between the element's opening tag
// and its first child element, if any.
func leadingText(n *html.Node) string {
	var sb strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			break
		}
		if c.Type == html.TextNode {
			sb.WriteString(c.Data)
		}
	}
	return sb.String()
}

// nodePath returns the structural path of an element relative to the
// document root element: tag segments separated by "/", each indexed [n]
// (1-based) only when the element has same-tag siblings. The root element
// itself resolves to ".".
func nodePath(n *html.Node) string {
	var segs []string
	for cur := n; cur != nil && cur.Type == html.ElementNode; cur = cur.Parent {
		parent := cur.Parent
		if parent == nil || parent.Type != html.ElementNode {
			break
		}
		segs = append([]string{pathSegment(cur, parent)}, segs...)
	}
	if len(segs) == 0 {
		return "."
	}
	return strings.Join(segs, "/")
}

func pathSegment(n, parent *html.Node) string {
	position, total := 0, 0
	for c := parent.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode || c.Data != n.Data {
			continue
		}
		total++
		if c == n {
			position = total
		}
	}
	if total > 1 {
		return n.Data + "[" + strconv.Itoa(position) + "]"
	}
	return n.Data
}
